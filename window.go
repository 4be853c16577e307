package main

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/whyrusleeping/whine/noise"
	"github.com/whyrusleeping/whine/ui"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

func init() {
	// SDL wants every video call on the thread that initialised it.
	runtime.LockOSThread()
}

func runWindow(cfg Config, gen *noise.Gen, controls <-chan ui.Control) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "could not initialize SDL")
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("Whine", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, screenWidth, screenHeight, sdl.WINDOW_RESIZABLE)
	if err != nil {
		return errors.Wrap(err, "could not create a window")
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return errors.Wrap(err, "could not create a renderer")
	}
	defer renderer.Destroy()

	panel := newPanel(cfg, gen)

	var pending []ui.Control
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
			}
		}

		pending = drainControls(controls, pending[:0])

		x, y, buttons := sdl.GetMouseState()
		ptr := ui.Pointer{
			Pos:     ui.Point{X: float64(x), Y: float64(y)},
			Pressed: buttons&sdl.ButtonLMask() != 0,
		}
		cmds := panel.Frame(ptr, pending)

		bg := ui.BackgroundColor
		renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
		renderer.Clear()
		for _, c := range cmds {
			renderer.SetDrawColor(c.Color.R, c.Color.G, c.Color.B, c.Color.A)
			r := sdlRect(c.Rect)
			renderer.FillRect(&r)
		}
		renderer.Present()
	}

	return nil
}

// drainControls collects whatever MIDI and the console queued since the last
// frame without waiting for more.
func drainControls(controls <-chan ui.Control, buf []ui.Control) []ui.Control {
	for {
		select {
		case c := <-controls:
			buf = append(buf, c)
		default:
			return buf
		}
	}
}

func sdlRect(r ui.Rect) sdl.Rect {
	return sdl.Rect{
		X: int32(r.X),
		Y: int32(r.Y),
		W: int32(r.W),
		H: int32(r.H),
	}
}
