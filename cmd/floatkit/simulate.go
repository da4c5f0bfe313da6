package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	infraconfig "github.com/alexisbeaulieu97/floatkit/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/floatkit/internal/simulate"
)

type simulateOptions struct {
	ScenarioPath  string
	Realtime      bool
	FrameInterval time.Duration
	Output        string
	Strict        bool
}

func newSimulateCmd(root *rootFlags) *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate <scenario-file>",
		Short: "Replay a scenario of scroll and resize events against a session",
		Long: `Simulate builds the layout described by a scenario file, mounts a session,
replays the timeline of host events and reports every applied placement.
With --strict the command fails when listeners or frames outlive the unmount.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ScenarioPath = args[0]
			return runSimulate(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Realtime, "realtime", false, "Drive frames from the wall clock instead of a virtual clock")
	cmd.Flags().DurationVar(&opts.FrameInterval, "frame-interval", 0, "Frame interval (default 16ms)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", outputText, "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when the session leaks listeners or frames")

	return cmd
}

func runSimulate(cmd *cobra.Command, root *rootFlags, opts simulateOptions) error {
	if err := checkOutput(opts.Output); err != nil {
		return err
	}
	log, err := root.newLogger(cmd.ErrOrStderr(), "simulate")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	ctx := cmd.Context()

	scenario, err := infraconfig.NewScenarioLoader(log).Load(ctx, opts.ScenarioPath)
	if err != nil {
		return err
	}

	runner := simulate.NewRunner(simulate.Options{
		Realtime:      opts.Realtime,
		FrameInterval: opts.FrameInterval,
		Logger:        log,
	})
	report, err := runner.Run(ctx, scenario)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.Output == outputText {
		printReport(out, report)
	} else if err := writeStructured(out, opts.Output, report); err != nil {
		return err
	}

	if opts.Strict && !report.Clean() {
		return fmt.Errorf("scenario %q left %d listeners and %d frames behind", report.Scenario, report.LeakedListeners, report.PendingFrames)
	}
	return nil
}

func printReport(w io.Writer, report *simulate.Report) {
	fmt.Fprintf(w, "Scenario %s (%s, %d frames)\n", report.Scenario, report.Duration, report.Frames)
	for _, ev := range report.Events {
		fmt.Fprintf(w, "  %8s  %-7s %s\n", ev.At, ev.Type, ev.Target)
	}
	fmt.Fprintln(w, "Placements:")
	for _, rec := range report.Placements {
		fmt.Fprintf(w, "  %8s  %-12s %-9s top=%s left=%s\n", rec.At, rec.Placement, rec.Decision, rec.Top, rec.Left)
	}
	fmt.Fprintf(w, "Stats: computations=%d flips=%d events=%d coalesced=%d skipped=%d\n",
		report.Stats.Computations, report.Stats.Flips, report.Stats.Events,
		report.Stats.Scheduler.Coalesced, report.Stats.Scheduler.Skipped)
	if report.UnmountError != "" {
		fmt.Fprintf(w, "Unmount error: %s\n", report.UnmountError)
	}
	fmt.Fprintf(w, "Leaked listeners: %d, pending frames: %d\n", report.LeakedListeners, report.PendingFrames)
}
