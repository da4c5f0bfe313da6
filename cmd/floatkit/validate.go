package main

import (
	"fmt"

	"github.com/spf13/cobra"

	infraconfig "github.com/alexisbeaulieu97/floatkit/internal/infrastructure/config"
)

const (
	kindOptions  = "options"
	kindScenario = "scenario"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an options or scenario file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger(cmd.ErrOrStderr(), "validate")
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			ctx := cmd.Context()
			path := args[0]

			switch kind {
			case kindOptions:
				err = infraconfig.NewOptionsLoader(log).Validate(ctx, path)
			case kindScenario:
				err = infraconfig.NewScenarioLoader(log).Validate(ctx, path)
			default:
				return fmt.Errorf("--kind must be %s or %s; got %q", kindOptions, kindScenario, kind)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✔ %s is a valid %s file\n", path, kind)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", kindScenario, "File kind (options, scenario)")
	return cmd
}
