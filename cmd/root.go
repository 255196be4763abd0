// Package cmd wires the demonstration sequence into a cobra command tree.
package cmd

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"funcflow/pkg/version"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "funcflow",
	Short: "Functional-style string transformation demos",
	Long: `funcflow runs a fixed sequence of functional-programming demonstrations:
function values and closures, function composition, a lazy string pipeline
with an observation callback, and a loop-versus-stream micro-benchmark.`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd.ErrOrStderr(), logLevel)
		return runDemos(cmd.OutOrStdout(), log)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"diagnostic log level (trace, debug, info, warn, error)")
}

// newLogger builds a console logger on the given writer. Diagnostic logging
// goes to stderr so that the demo's result lines on stdout stay clean.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	cw := zerolog.ConsoleWriter{Out: w}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}

// Execute runs the root command. Unexpected faults propagate out of RunE and
// terminate the process with a non-zero exit code; there is no recovery path.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
