package main

import (
	"flag"
	"log"

	"github.com/whyrusleeping/whine/noise"
	"github.com/whyrusleeping/whine/ui"
)

const (
	periodSlider ui.WidgetID = iota
	volumeSlider
)

type Config struct {
	Audio       string
	SampleRate  int
	Buffer      int
	Unit        noise.Unit
	Interp      noise.Interp
	PreviewLen  int
	PreviewSeed uint64
	Seed        uint64
	MidiDevice  int
	PeriodKnob  int64
	VolumeKnob  int64
	Console     bool
}

func parseFlags() Config {
	var (
		cfg    Config
		unit   string
		interp string
	)
	flag.StringVar(&cfg.Audio, "audio", "oto", "audio backend: oto or beep")
	flag.IntVar(&cfg.SampleRate, "rate", noise.DefaultSampleRate, "sample rate in Hz")
	flag.IntVar(&cfg.Buffer, "buffer", 1024, "frames per audio callback")
	flag.StringVar(&unit, "unit", "samples", "period slider unit: samples or seconds")
	flag.StringVar(&interp, "interp", "linear", "interpolation: linear or cosine")
	flag.IntVar(&cfg.PreviewLen, "preview", ui.DefaultPreviewLen, "samples shown in the preview")
	flag.Uint64Var(&cfg.PreviewSeed, "preview-seed", 0, "seed of the preview generator")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "seed of the live generator (0 picks one)")
	flag.IntVar(&cfg.MidiDevice, "midi", -1, "portmidi input device id, -1 disables MIDI")
	flag.Int64Var(&cfg.PeriodKnob, "period-knob", 1, "MIDI CC number bound to the period slider")
	flag.Int64Var(&cfg.VolumeKnob, "volume-knob", 2, "MIDI CC number bound to the volume slider")
	flag.BoolVar(&cfg.Console, "console", false, "read parameter commands from stdin")
	flag.Parse()

	var err error
	if cfg.Unit, err = noise.ParseUnit(unit); err != nil {
		log.Fatalf("ERROR: %s", err)
	}
	if cfg.Interp, err = noise.ParseInterp(interp); err != nil {
		log.Fatalf("ERROR: %s", err)
	}
	if cfg.SampleRate <= 0 || cfg.Buffer <= 0 {
		log.Fatalf("ERROR: sample rate and buffer must be positive")
	}
	return cfg
}

func main() {
	cfg := parseFlags()

	gen := noise.New(noise.Config{
		SampleRate: cfg.SampleRate,
		Period:     10,
		Volume:     0.5,
		Interp:     cfg.Interp,
	}, noise.NewRand(liveSeed(cfg.Seed)))

	stopAudio, err := startAudio(cfg, gen)
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}
	defer stopAudio()

	controls := make(chan ui.Control, 64)

	if cfg.MidiDevice >= 0 {
		mc, err := OpenController(cfg.MidiDevice, map[int64]ui.WidgetID{
			cfg.PeriodKnob: periodSlider,
			cfg.VolumeKnob: volumeSlider,
		}, controls)
		if err != nil {
			log.Fatalf("ERROR: %s", err)
		}
		defer mc.Shutdown()
	}

	if cfg.Console {
		go NewConsole(gen, cfg.Unit, controls).Run()
	}

	if err := runWindow(cfg, gen, controls); err != nil {
		log.Fatalf("ERROR: %s", err)
	}
}

// newPanel lays out the widgets the way the window shows them.
func newPanel(cfg Config, gen *noise.Gen) *ui.Panel {
	lo, hi := 1.0, 50.0
	if cfg.Unit == noise.Seconds {
		lo /= float64(cfg.SampleRate)
		hi /= float64(cfg.SampleRate)
	}
	// TODO: lay the widgets out from the window size instead of fixed offsets.
	return ui.NewPanel(gen, ui.NewPreview(100, 300, cfg.PreviewLen, cfg.PreviewSeed),
		ui.NewSlider(periodSlider, 100, 100, 500, gen.PeriodParam(cfg.Unit), lo, hi),
		ui.NewSlider(volumeSlider, 100, 200, 500, gen.VolumeParam(), 0, 1),
	)
}
