package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sigmamathy/DataScript/datascript"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Read values through the typed cursor",
	Long: "Position the cursor by label or index, then extract values by repeating the given type list. " +
		"Reading stops at the first mismatch or at the end of the document.",
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().StringP("types", "t", "", "Comma-separated type list to read, e.g. string,int,float (required)")
	readCmd.Flags().StringP("label", "l", "", "Start at this label")
	readCmd.Flags().IntP("index", "i", -1, "Start at this value index")
	readCmd.Flags().IntP("records", "n", 1, "Number of times to apply the type list (0 reads to the end)")
	_ = readCmd.MarkFlagRequired("types")

	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	path := args[0]
	typeList, _ := cmd.Flags().GetString("types")
	label, _ := cmd.Flags().GetString("label")
	index, _ := cmd.Flags().GetInt("index")
	records, _ := cmd.Flags().GetInt("records")

	kinds, err := parseKinds(typeList)
	if err != nil {
		return fmt.Errorf("parsing --types: %w", err)
	}

	log := newLogger()
	r, err := openReader(path, log)
	if err != nil {
		return err
	}
	if err := malformedError(path, r); err != nil {
		return err
	}

	if label != "" {
		if _, ok := r.LabelIndex(label); !ok {
			return fmt.Errorf("label %q not found in %s", label, path)
		}
		r.GotoLabel(label)
	}
	if index >= 0 {
		r.Goto(index)
	}

	st := readRecords(cmd.OutOrStdout(), r, kinds, records, log)
	if st.Has(datascript.TypeMismatch) {
		got, _ := r.Peek()
		return fmt.Errorf("type mismatch at index %d: value is %s", r.Index(), got)
	}
	return nil
}

// readRecords applies kinds to the cursor records times (or until the end
// when records is 0) and prints each value. It returns the final status.
func readRecords(w io.Writer, r *datascript.Reader, kinds []datascript.Kind, records int, log *slog.Logger) datascript.Status {
	for n := 0; records == 0 || n < records; n++ {
		for _, k := range kinds {
			if r.Status().Has(datascript.Exhausted) {
				fmt.Fprintf(w, "-- %s at index %d\n", r.Status(), r.Index())
				return r.Status()
			}
			idx := r.Index()
			v := readKind(r, k)
			if r.Status().Has(datascript.TypeMismatch) {
				log.Debug("type mismatch", "index", idx, "want", k)
				return r.Status()
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", idx, k, formatValue(v))
		}
	}
	fmt.Fprintf(w, "-- %s at index %d\n", r.Status(), r.Index())
	return r.Status()
}
