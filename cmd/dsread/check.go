package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate DataScript documents",
	Long:  "Parse each document and report its value count or the first syntax error with its line.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := newLogger()
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range args {
		r, err := openReader(path, log)
		if err != nil {
			return err
		}
		if err := malformedError(path, r); err != nil {
			fmt.Fprintf(out, "FAIL %v\n", err)
			failed++
			continue
		}
		fmt.Fprintf(out, "ok   %s (%d values)\n", path, r.Len())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d document(s) malformed", failed, len(args))
	}
	return nil
}
