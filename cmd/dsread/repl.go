package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/sigmamathy/DataScript/datascript"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".dsread_history"
	promptMain  = "ds> "
)

const replHelp = `commands:
  int uint long ulong float double string   read one value of that type
  goto <index>                               move the cursor to an index
  label <name>                               move the cursor to a label
  peek                                       show the kind under the cursor
  pos                                        show the cursor position
  status                                     show the reader status
  labels                                     list labels
  quit                                       leave`

var replCmd = &cobra.Command{
	Use:   "repl <file>",
	Short: "Browse a document interactively with the typed cursor",
	Args:  cobra.ExactArgs(1),
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	path := args[0]
	log := newLogger()
	r, err := openReader(path, log)
	if err != nil {
		return err
	}
	if err := malformedError(path, r); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d value(s). Type help for commands.\n", path, r.Len())

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completeCommand)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		reply, quit := evalCommand(r, line)
		log.Debug("repl command", "input", line, "index", r.Index(), "status", r.Status())
		if quit {
			return nil
		}
		fmt.Fprintln(out, reply)
	}
}

// evalCommand runs one REPL command against r and returns the text to show.
// quit is true when the session should end.
func evalCommand(r *datascript.Reader, line string) (reply string, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	name, rest := fields[0], fields[1:]

	if kind, ok := datascript.LookupKind(name); ok {
		idx := r.Index()
		v := readKind(r, kind)
		if r.Index() == idx {
			got, _ := r.Peek()
			if r.Status().Has(datascript.TypeMismatch) {
				return fmt.Sprintf("type mismatch at %d: value is %s", idx, got), false
			}
			return fmt.Sprintf("no value (%s)", r.Status()), false
		}
		return fmt.Sprintf("%d: %s", idx, formatValue(v)), false
	}

	switch name {
	case "goto":
		if len(rest) != 1 {
			return "usage: goto <index>", false
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil || n < 0 {
			return fmt.Sprintf("invalid index %q", rest[0]), false
		}
		r.Goto(n)
		return position(r), false
	case "label":
		if len(rest) != 1 {
			return "usage: label <name>", false
		}
		if _, ok := r.LabelIndex(rest[0]); !ok {
			return fmt.Sprintf("unknown label %q", rest[0]), false
		}
		r.GotoLabel(rest[0])
		return position(r), false
	case "peek":
		kind, ok := r.Peek()
		if !ok {
			return fmt.Sprintf("no value (%s)", r.Status()), false
		}
		return kind.String(), false
	case "pos":
		return position(r), false
	case "status":
		return r.Status().String(), false
	case "labels":
		labels := r.Document().Labels()
		if len(labels) == 0 {
			return "no labels", false
		}
		lines := make([]string, 0, len(labels))
		for _, l := range labels {
			lines = append(lines, fmt.Sprintf("%-16s %d", l.Name, l.Index))
		}
		return strings.Join(lines, "\n"), false
	case "help":
		return replHelp, false
	case "quit", "exit":
		return "", true
	default:
		return fmt.Sprintf("unknown command %q. Type help for commands.", name), false
	}
}

func position(r *datascript.Reader) string {
	return fmt.Sprintf("index %d of %d (%s)", r.Index(), r.Len(), r.Status())
}

var replCommands = []string{
	"int", "uint", "long", "ulong", "float", "double", "string",
	"goto", "label", "peek", "pos", "status", "labels", "help", "quit",
}

func completeCommand(line string) []string {
	var out []string
	for _, c := range replCommands {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}
	return out
}
