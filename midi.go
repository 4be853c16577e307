package main

import (
	"log"
	"time"

	"github.com/pkg/errors"
	"github.com/rakyll/portmidi"

	"github.com/whyrusleeping/whine/ui"
)

const (
	midiControlChange = 0xb0
	midiMaxValue      = 127
)

// MidiController turns knob (control change) messages into slider controls.
// It never touches UI state; the window loop applies what it posts.
type MidiController struct {
	stream *portmidi.Stream

	knobBinds map[int64]ui.WidgetID

	out     chan<- ui.Control
	done    chan struct{}
	stopped chan struct{}
}

// OpenController starts reading device id. binds maps CC numbers to sliders.
func OpenController(id int, binds map[int64]ui.WidgetID, out chan<- ui.Control) (*MidiController, error) {
	if err := portmidi.Initialize(); err != nil {
		return nil, errors.Wrap(err, "could not initialize portmidi")
	}

	in, err := portmidi.NewInputStream(portmidi.DeviceID(id), 1024)
	if err != nil {
		portmidi.Terminate()
		return nil, errors.Wrapf(err, "could not open MIDI device %d", id)
	}

	mc := newController(out)
	mc.stream = in
	for knob, w := range binds {
		mc.BindKnob(knob, w)
	}

	go mc.run()

	return mc, nil
}

func newController(out chan<- ui.Control) *MidiController {
	return &MidiController{
		knobBinds: make(map[int64]ui.WidgetID),
		out:       out,
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
}

// BindKnob is not safe once the reader goroutine runs.
func (mc *MidiController) BindKnob(knob int64, id ui.WidgetID) {
	mc.knobBinds[knob] = id
}

func (mc *MidiController) Shutdown() {
	close(mc.done)
	<-mc.stopped
	mc.stream.Close()
	portmidi.Terminate()
}

func (mc *MidiController) run() {
	defer close(mc.stopped)
	for {
		select {
		case <-mc.done:
			return
		default:
		}

		events, err := mc.stream.Read(1024)
		if err != nil {
			log.Printf("ERROR: reading MIDI events: %s", err)
			return
		}
		if len(events) == 0 {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		mc.handle(events)
	}
}

func (mc *MidiController) handle(events []portmidi.Event) {
	for _, event := range events {
		if event.Status&0xf0 != midiControlChange {
			continue
		}
		id, ok := mc.knobBinds[event.Data1]
		if !ok {
			continue
		}
		c := ui.Control{
			ID:    id,
			Value: float64(event.Data2) / midiMaxValue,
			Unit:  true,
		}
		select {
		case mc.out <- c:
		default:
			// the window is behind; the next turn of the knob will catch up
		}
	}
}
