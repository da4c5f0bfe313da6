package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/floatkit/internal/application/popper"
	"github.com/alexisbeaulieu97/floatkit/internal/config"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	infraconfig "github.com/alexisbeaulieu97/floatkit/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/floatkit/internal/simulate"
)

type computeOptions struct {
	ConfigPath       string
	Placement        string
	SideOffset       float64
	AlignOffset      float64
	CollisionPadding float64
	ArrowPadding     float64
	NoCollisions     bool
	Anchor           string
	Floating         string
	Viewport         string
	Output           string
}

func newComputeCmd(root *rootFlags) *cobra.Command {
	opts := computeOptions{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute one placement and print the resulting styles",
		Long: `Compute mounts a session against a single anchor rect, places the floating
element once and prints the snapshot. Options come from --config and are
overridden by any flag given explicitly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Options YAML file")
	cmd.Flags().StringVarP(&opts.Placement, "placement", "p", "bottom", "Placement such as bottom, top-start or left-end")
	cmd.Flags().Float64Var(&opts.SideOffset, "side-offset", 0, "Gap between anchor and floating element")
	cmd.Flags().Float64Var(&opts.AlignOffset, "align-offset", 0, "Shift along the anchor edge for start/end alignment")
	cmd.Flags().Float64Var(&opts.CollisionPadding, "collision-padding", 0, "Viewport inset used for collision checks")
	cmd.Flags().Float64Var(&opts.ArrowPadding, "arrow-padding", 0, "Minimum distance from the arrow to the floating element's corners")
	cmd.Flags().BoolVar(&opts.NoCollisions, "no-collisions", false, "Disable flipping")
	cmd.Flags().StringVar(&opts.Anchor, "anchor", "", "Anchor rect as x,y,width,height")
	cmd.Flags().StringVar(&opts.Floating, "floating", "", "Floating element size as width,height")
	cmd.Flags().StringVar(&opts.Viewport, "viewport", "", "Viewport size as width,height (defaults to the terminal size)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", outputText, "Output format (text, json, yaml)")
	_ = cmd.MarkFlagRequired("anchor")
	_ = cmd.MarkFlagRequired("floating")

	return cmd
}

func runCompute(cmd *cobra.Command, root *rootFlags, opts computeOptions) error {
	if err := checkOutput(opts.Output); err != nil {
		return err
	}
	log, err := root.newLogger(cmd.ErrOrStderr(), "compute")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	ctx := cmd.Context()

	resolved := popper.DefaultOptions()
	if opts.ConfigPath != "" {
		loaded, err := infraconfig.NewOptionsLoader(log).Load(ctx, opts.ConfigPath)
		if err != nil {
			return err
		}
		resolved = *loaded
	}
	if err := applyComputeFlags(cmd, opts, &resolved); err != nil {
		return err
	}

	scenario, err := computeScenario(opts, resolved)
	if err != nil {
		return err
	}
	if err := config.ValidateScenario(scenario); err != nil {
		return err
	}

	report, err := simulate.NewRunner(simulate.Options{Logger: log}).Run(ctx, scenario)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.Output != outputText {
		return writeStructured(out, opts.Output, report.Final)
	}
	printSnapshot(out, report.Final)
	return nil
}

// applyComputeFlags overlays explicitly set flags on the loaded options.
func applyComputeFlags(cmd *cobra.Command, opts computeOptions, target *popper.Options) error {
	flags := cmd.Flags()
	if flags.Changed("placement") || opts.ConfigPath == "" {
		placement, err := geometry.ParsePlacement(opts.Placement)
		if err != nil {
			return err
		}
		target.Placement = placement
	}
	if flags.Changed("side-offset") {
		target.SideOffset = opts.SideOffset
	}
	if flags.Changed("align-offset") {
		target.AlignOffset = opts.AlignOffset
	}
	if flags.Changed("collision-padding") {
		target.CollisionPadding = opts.CollisionPadding
	}
	if flags.Changed("arrow-padding") {
		target.ArrowPadding = opts.ArrowPadding
	}
	if flags.Changed("no-collisions") {
		target.AvoidCollisions = !opts.NoCollisions
	}
	return target.Validate()
}

// computeScenario lays out a root-level anchor and floating element with no
// events, so the replay stops after the synchronous first placement.
func computeScenario(opts computeOptions, resolved popper.Options) (*config.Scenario, error) {
	anchor, err := parseRect("anchor", opts.Anchor)
	if err != nil {
		return nil, err
	}
	floating, err := parseSize("floating", opts.Floating)
	if err != nil {
		return nil, err
	}
	viewport := defaultViewport()
	if opts.Viewport != "" {
		if viewport, err = parseSize("viewport", opts.Viewport); err != nil {
			return nil, err
		}
	}

	return &config.Scenario{
		Name:     "compute",
		Viewport: geometry.Viewport{Width: viewport.Width, Height: viewport.Height},
		Elements: []config.Element{
			{Name: "anchor", Rect: anchor},
			{Name: "floating", Rect: geometry.NewRect(0, 0, floating.Width, floating.Height)},
		},
		Anchor:   "anchor",
		Floating: "floating",
		Options:  config.FromPopper(resolved),
	}, nil
}

func printSnapshot(w io.Writer, snap popper.Snapshot) {
	fmt.Fprintf(w, "placement: %s (requested %s, %s)\n", snap.Resolved, snap.Requested, snap.Decision)
	fmt.Fprintf(w, "position:  %s top=%s left=%s\n", snap.Styles.Position, snap.Styles.Top, snap.Styles.Left)
	fmt.Fprintf(w, "origin:    %s\n", snap.Origin)
	fmt.Fprintf(w, "arrow:     left=%s top=%s transform=%q\n", snap.ArrowStyles.Left, snap.ArrowStyles.Top, snap.ArrowStyles.Transform)
}
