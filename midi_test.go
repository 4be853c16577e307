package main

import (
	"testing"

	"github.com/rakyll/portmidi"

	"github.com/whyrusleeping/whine/ui"
)

func TestMidiKnobs(t *testing.T) {
	out := make(chan ui.Control, 8)
	mc := newController(out)
	mc.BindKnob(1, periodSlider)
	mc.BindKnob(2, volumeSlider)

	mc.handle([]portmidi.Event{
		{Status: 0xb0, Data1: 1, Data2: 127},
		{Status: 0x90, Data1: 60, Data2: 100}, // note on, ignored
		{Status: 0xb3, Data1: 2, Data2: 0},    // any channel
		{Status: 0xb0, Data1: 7, Data2: 64},   // unbound knob
	})

	got := drainControls(out, nil)
	want := []ui.Control{
		{ID: periodSlider, Value: 1, Unit: true},
		{ID: volumeSlider, Value: 0, Unit: true},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d controls, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("control %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMidiDropsWhenFull(t *testing.T) {
	out := make(chan ui.Control, 1)
	mc := newController(out)
	mc.BindKnob(1, volumeSlider)

	mc.handle([]portmidi.Event{
		{Status: 0xb0, Data1: 1, Data2: 10},
		{Status: 0xb0, Data1: 1, Data2: 20},
	})
	if got := drainControls(out, nil); len(got) != 1 {
		t.Fatalf("expected the second event to be dropped, got %+v", got)
	}
}
