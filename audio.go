package main

import (
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/whyrusleeping/whine/noise"
)

// startAudio plays gen on the selected backend until the returned stop
// function is called. Both backends pull mono 16-bit frames straight from the
// generator on their own goroutine.
func startAudio(cfg Config, gen *noise.Gen) (func(), error) {
	switch cfg.Audio {
	case "oto":
		return startOto(cfg, gen)
	case "beep":
		return startBeep(cfg, gen)
	default:
		return nil, errors.Errorf("unknown audio backend %q", cfg.Audio)
	}
}

func startOto(cfg Config, gen *noise.Gen) (func(), error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   time.Duration(cfg.Buffer) * time.Second / time.Duration(cfg.SampleRate),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not open audio device")
	}
	<-ready

	player := ctx.NewPlayer(&noise.PCMReader{Gen: gen})
	player.Play()

	return func() {
		player.Pause()
	}, nil
}

func startBeep(cfg Config, gen *noise.Gen) (func(), error) {
	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, cfg.Buffer); err != nil {
		return nil, errors.Wrap(err, "could not open audio device")
	}
	speaker.Play(gen)
	return speaker.Close, nil
}

func liveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}
