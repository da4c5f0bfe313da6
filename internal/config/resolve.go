package config

import (
	"github.com/alexisbeaulieu97/floatkit/internal/application/popper"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

// Resolve overlays the document on popper.DefaultOptions.
func (o Options) Resolve() (popper.Options, error) {
	out := popper.DefaultOptions()

	if o.Side != "" {
		side, err := geometry.ParseSide(o.Side)
		if err != nil {
			return popper.Options{}, err
		}
		out.Placement.Side = side
	}
	align, err := geometry.ParseAlignment(o.Align)
	if err != nil {
		return popper.Options{}, err
	}
	out.Placement.Align = align

	out.SideOffset = o.SideOffset
	out.AlignOffset = o.AlignOffset
	out.CollisionPadding = o.CollisionPadding
	out.ArrowPadding = o.ArrowPadding
	if o.AvoidCollisions != nil {
		out.AvoidCollisions = *o.AvoidCollisions
	}
	if o.Arrow.Width != nil {
		out.ArrowWidth = *o.Arrow.Width
	}
	if o.Arrow.Height != nil {
		out.ArrowHeight = *o.Arrow.Height
	}
	if o.Refresh.MinInterval != nil {
		out.MinInterval = *o.Refresh.MinInterval
	}

	if err := out.Validate(); err != nil {
		return popper.Options{}, err
	}
	return out, nil
}

// FromPopper converts engine options back into their YAML form.
func FromPopper(opts popper.Options) Options {
	avoid := opts.AvoidCollisions
	width, height := opts.ArrowWidth, opts.ArrowHeight
	interval := opts.MinInterval
	return Options{
		Side:             opts.Placement.Side.String(),
		Align:            opts.Placement.Align.String(),
		SideOffset:       opts.SideOffset,
		AlignOffset:      opts.AlignOffset,
		AvoidCollisions:  &avoid,
		CollisionPadding: opts.CollisionPadding,
		ArrowPadding:     opts.ArrowPadding,
		Arrow:            ArrowOptions{Width: &width, Height: &height},
		Refresh:          RefreshOption{MinInterval: &interval},
	}
}
