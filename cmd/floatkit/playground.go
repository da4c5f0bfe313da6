package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/floatkit/internal/tui/playground"
)

const playgroundLogLimit = 500

func newPlaygroundCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Move an anchor around the terminal and watch its tooltip follow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayground(cmd, root)
		},
	}
	return cmd
}

func runPlayground(cmd *cobra.Command, root *rootFlags) error {
	log, err := root.newLogger(cmd.ErrOrStderr(), "playground")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	// The alternate screen owns the terminal until the program exits, so
	// logs are held back and written afterwards.
	buffer := logging.NewEventBuffer(playgroundLogLimit)
	defer buffer.Flush(log)
	buffered, err := logging.NewBufferedLogger(buffer).AtLevel(root.level())
	if err != nil {
		return err
	}

	cfg := playground.Config{
		Options: playground.DefaultOptions(),
		Logger:  buffered,
	}
	if size, ok := terminalSize(); ok {
		cfg.Width, cfg.Height = int(size.Width), int(size.Height)
	}

	m, err := playground.New(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run playground: %w", err)
	}
	if fm, ok := final.(playground.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
