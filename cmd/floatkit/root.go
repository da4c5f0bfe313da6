package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/logging"
)

type rootFlags struct {
	verbose  bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "floatkit",
		Short:         "floatkit positions floating elements against anchors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newComputeCmd(flags))
	cmd.AddCommand(newSimulateCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newPlaygroundCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) level() string {
	if f.verbose {
		return "debug"
	}
	return f.logLevel
}

// newLogger writes human-readable logs to w.
func (f *rootFlags) newLogger(w io.Writer, component string) (*logging.Logger, error) {
	return logging.New(logging.Options{
		Writer:        w,
		Level:         f.level(),
		HumanReadable: true,
		Layer:         "cli",
		Component:     component,
	})
}
