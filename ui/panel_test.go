package ui

import (
	"math"
	"slices"
	"testing"

	"github.com/whyrusleeping/whine/noise"
)

const (
	periodSlider WidgetID = iota
	volumeSlider
)

func newTestPanel(t *testing.T) (*Panel, *noise.Gen) {
	t.Helper()
	gen := noise.New(noise.Config{Period: 10, Volume: 0.5}, noise.NewRand(1))
	p := NewPanel(gen, NewPreview(100, 300, DefaultPreviewLen, 7),
		NewSlider(periodSlider, 100, 100, 500, gen.PeriodParam(noise.Samples), 1, 50),
		NewSlider(volumeSlider, 100, 200, 500, gen.VolumeParam(), 0, 1),
	)
	return p, gen
}

func TestPanelInitialPreview(t *testing.T) {
	p, gen := newTestPanel(t)
	want := make([]int16, DefaultPreviewLen)
	gen.Fork(noise.NewRand(7)).Fill(want)
	if !slices.Equal(p.Preview.Samples(), want) {
		t.Fatal("initial preview does not match a fork of the live generator")
	}
}

func TestPanelRegeneratesOnDrag(t *testing.T) {
	p, gen := newTestPanel(t)
	before := slices.Clone(p.Preview.Samples())

	// grip of the volume slider sits at x = 100 - 30 + 0.5*500
	p.Frame(press(350, 200), nil)
	if !p.Drag.Owns(volumeSlider) {
		t.Fatal("expected volume slider to take the drag")
	}
	if !slices.Equal(p.Preview.Samples(), before) {
		t.Fatal("preview changed without a value change")
	}

	p.Frame(press(100, 200), nil)
	if gen.Volume() != 0 {
		t.Fatalf("expected volume 0, got %v", gen.Volume())
	}
	for i, s := range p.Preview.Samples() {
		if s != 0 {
			t.Fatalf("preview sample %d is %d at zero volume", i, s)
		}
	}

	p.Frame(release(100, 200), nil)
	if _, held := p.Drag.Active(); held {
		t.Fatal("release did not clear the drag")
	}

	if gen.Phase() != 0 || gen.Rollovers() != 0 {
		t.Fatal("preview regeneration advanced the live generator")
	}
}

func TestPanelControls(t *testing.T) {
	p, gen := newTestPanel(t)

	p.Frame(release(0, 0), []Control{
		{ID: periodSlider, Value: 1, Unit: true},
		{ID: volumeSlider, Value: 0.25},
		{ID: 99, Value: 1},
	})
	if gen.Period() != 50 {
		t.Fatalf("expected period 50, got %v", gen.Period())
	}
	if gen.Volume() != 0.25 {
		t.Fatalf("expected volume 0.25, got %v", gen.Volume())
	}
	want := make([]int16, DefaultPreviewLen)
	gen.Fork(noise.NewRand(7)).Fill(want)
	if !slices.Equal(p.Preview.Samples(), want) {
		t.Fatal("preview not rebuilt after controls")
	}

	p.Frame(release(0, 0), []Control{
		{ID: volumeSlider, Value: math.NaN()},
		{ID: periodSlider, Value: math.NaN(), Unit: true},
	})
	if gen.Volume() != 0.25 || gen.Period() != 50 {
		t.Fatalf("NaN control changed the generator: volume %v period %v", gen.Volume(), gen.Period())
	}

	// a knob turned while the slider is held is ignored
	p.Frame(press(225, 200), nil)
	p.Frame(press(225, 200), []Control{{ID: volumeSlider, Value: 1}})
	if gen.Volume() == 1 {
		t.Fatal("control overrode a dragged slider")
	}
}

func TestPanelDrawCommands(t *testing.T) {
	p, _ := newTestPanel(t)
	cmds := p.Frame(release(0, 0), nil)
	if len(cmds) != 2*2+DefaultPreviewLen {
		t.Fatalf("unexpected command count %d", len(cmds))
	}
	for _, c := range cmds[4:] {
		if c.Rect.H < 0 || c.Rect.W <= 0 {
			t.Fatalf("bad bar %+v", c.Rect)
		}
		if c.Rect.Y < 300 || c.Rect.Y+c.Rect.H > 300+PreviewHeight {
			t.Fatalf("bar outside the preview frame: %+v", c.Rect)
		}
	}
}

func TestPreviewDrawEmpty(t *testing.T) {
	p := NewPreview(0, 0, 0, 1)
	if cmds := p.Draw(nil); len(cmds) != 0 {
		t.Fatalf("expected no commands, got %d", len(cmds))
	}
}
