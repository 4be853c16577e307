package ui

import "github.com/whyrusleeping/whine/noise"

// Control is a slider change coming from outside the pointer path (MIDI knobs,
// the console). With Unit set, Value is a position in [0, 1] along the slider.
type Control struct {
	ID    WidgetID
	Value float64
	Unit  bool
}

// Panel is one frame's worth of UI state: the sliders bound to the live
// generator, the drag arbitration between them and the preview they drive.
// It must only be used from the UI goroutine.
type Panel struct {
	Drag    DragController
	Sliders []*Slider
	Preview *Preview

	gen   *noise.Gen
	shown params
	cmds  []DrawCmd
}

// params is the generator setting the preview was last built from.
type params struct {
	period, volume float64
	interp         noise.Interp
}

func paramsOf(g *noise.Gen) params {
	return params{period: g.Period(), volume: g.Volume(), interp: g.Interp()}
}

func NewPanel(gen *noise.Gen, preview *Preview, sliders ...*Slider) *Panel {
	p := &Panel{
		Sliders: sliders,
		Preview: preview,
		gen:     gen,
	}
	p.regenerate()
	return p
}

func (p *Panel) Slider(id WidgetID) *Slider {
	for _, s := range p.Sliders {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Frame applies queued controls, runs pointer handling over the sliders in
// draw order, rebuilds the preview if anything moved and returns the draw
// commands for the frame. Parameters written straight to the generator, such
// as the interpolation mode from the console, are picked up here as well. The
// returned slice is reused by the next call.
func (p *Panel) Frame(ptr Pointer, controls []Control) []DrawCmd {
	changed := false
	for _, c := range controls {
		s := p.Slider(c.ID)
		if s == nil {
			continue
		}
		if c.Unit {
			changed = s.SetUnit(&p.Drag, c.Value) || changed
		} else {
			changed = s.SetValue(&p.Drag, c.Value) || changed
		}
	}

	for _, s := range p.Sliders {
		if s.Update(&p.Drag, ptr) {
			changed = true
		}
	}

	if changed || paramsOf(p.gen) != p.shown {
		p.regenerate()
	}

	p.cmds = p.cmds[:0]
	for _, s := range p.Sliders {
		p.cmds = s.Draw(p.cmds)
	}
	p.cmds = p.Preview.Draw(p.cmds)
	return p.cmds
}

func (p *Panel) regenerate() {
	p.shown = paramsOf(p.gen)
	p.Preview.Regenerate(p.gen)
}
