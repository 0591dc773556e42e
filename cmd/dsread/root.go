package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sigmamathy/DataScript/datascript"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:          "dsread",
	Short:        "DataScript document reader",
	Long:         "dsread checks, dumps and reads DataScript documents through the typed cursor API.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("syntax", "s", "canonical", "Source syntax: canonical or commands")
	rootCmd.PersistentFlags().Bool("color", false, "Colorize output by value kind")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")

	_ = viper.BindPFlag("syntax", rootCmd.PersistentFlags().Lookup("syntax"))
	_ = viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	viper.SetEnvPrefix("DSREAD")
	viper.AutomaticEnv()
}

// newLogger returns a stderr logger that only emits when --debug is set.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if viper.GetBool("debug") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openReader loads path with the configured syntax. A malformed document is
// not an error here; callers decide how to report it.
func openReader(path string, log *slog.Logger) (*datascript.Reader, error) {
	syntax, err := datascript.ParseSyntax(viper.GetString("syntax"))
	if err != nil {
		return nil, err
	}

	r, err := datascript.LoadFile(path, datascript.WithSyntax(syntax))
	if err != nil {
		return nil, err
	}

	log.Debug("loaded document",
		"path", path,
		"syntax", syntax,
		"values", r.Len(),
		"labels", len(r.Document().Labels()),
		"status", r.Status())

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Document: %s (%d values, %d labels, %s syntax)\n",
			path, r.Len(), len(r.Document().Labels()), syntax)
	}
	return r, nil
}

// malformedError turns the load diagnostic of a Malformed reader into a
// command error.
func malformedError(path string, r *datascript.Reader) error {
	if !r.Status().Has(datascript.Malformed) {
		return nil
	}
	return fmt.Errorf("%s: %w", path, r.Err())
}
