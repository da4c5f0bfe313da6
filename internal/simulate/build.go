package simulate

import (
	"github.com/alexisbeaulieu97/floatkit/internal/config"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/scene"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// BuildScene creates the scenario's layout tree.
func BuildScene(sc *config.Scenario, clock ports.Clock, logger ports.Logger) (*scene.Scene, error) {
	s := scene.New(sc.Viewport, clock, logger)
	for _, el := range sc.Elements {
		if _, err := s.Add(scene.ElementSpec{
			Name:        el.Name,
			Parent:      el.Parent,
			Rect:        el.Rect,
			Overflow:    ports.Overflow(el.Overflow),
			Positioning: ports.Positioning(el.Position),
		}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// apply performs a scroll, move or resize against the scene and returns the
// target it touched. Refresh and unmount are handled by the runner.
func apply(s *scene.Scene, ev config.Event) (target string, err error) {
	switch ev.Type {
	case config.EventScroll:
		target = orWindow(ev.Scroll.Target)
		return target, s.Scroll(target, ev.Scroll.DX, ev.Scroll.DY)
	case config.EventMove:
		el, err := s.Element(ev.Move.Target)
		if err != nil {
			return ev.Move.Target, err
		}
		el.MoveBy(ev.Move.DX, ev.Move.DY)
		return ev.Move.Target, nil
	case config.EventResize:
		target = orWindow(ev.Resize.Target)
		if target == scene.WindowName {
			s.Window().Resize(ev.Resize.Width, ev.Resize.Height)
			return target, nil
		}
		el, err := s.Element(target)
		if err != nil {
			return target, err
		}
		el.SetSize(ev.Resize.Width, ev.Resize.Height)
		return target, nil
	}
	return "", nil
}

func orWindow(target string) string {
	if target == "" {
		return scene.WindowName
	}
	return target
}
