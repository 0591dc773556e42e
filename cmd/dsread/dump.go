package main

import (
	"fmt"
	"io"
	"os"

	ct "github.com/daviddengcn/go-colortext"
	"github.com/sigmamathy/DataScript/datascript"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "List the tokens and labels of a document",
	Long:  "Print every value token with its index, kind, source line and raw literal, followed by the label table.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

var kindColors = map[datascript.Kind]ct.Color{
	datascript.KindInt32:   ct.Cyan,
	datascript.KindUint32:  ct.Cyan,
	datascript.KindInt64:   ct.Blue,
	datascript.KindUint64:  ct.Blue,
	datascript.KindFloat32: ct.Magenta,
	datascript.KindFloat64: ct.Magenta,
	datascript.KindString:  ct.Green,
}

func runDump(cmd *cobra.Command, args []string) error {
	path := args[0]
	r, err := openReader(path, newLogger())
	if err != nil {
		return err
	}
	if err := malformedError(path, r); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	// Colors are written straight to the terminal, so only use them there.
	color := viper.GetBool("color") && out == os.Stdout
	dumpDocument(out, r.Document(), color)
	return nil
}

func dumpDocument(w io.Writer, doc *datascript.Document, color bool) {
	labelsAt := make(map[int][]string)
	for _, l := range doc.Labels() {
		labelsAt[l.Index] = append(labelsAt[l.Index], l.Name)
	}

	for i, tok := range doc.Tokens() {
		for _, name := range labelsAt[i] {
			fmt.Fprintf(w, "[%s]\n", name)
		}
		fmt.Fprintf(w, "%6d  line %-5d ", i, tok.Line)
		if color {
			ct.ChangeColor(kindColors[tok.Kind], false, ct.None, false)
		}
		fmt.Fprintf(w, "%-6s", tok.Kind)
		if color {
			ct.ResetColor()
		}
		fmt.Fprintf(w, "  %s\n", tok.Literal)
	}
	for _, name := range labelsAt[doc.Len()] {
		fmt.Fprintf(w, "[%s]\n", name)
	}

	fmt.Fprintf(w, "%d value(s), %d label(s)\n", doc.Len(), len(doc.Labels()))
}
