// Package noise implements the stepped white noise generator that feeds the
// audio callback and the waveform preview.
//
// A Gen walks from one random amplitude to the next over a segment of
// Period samples. Period, Volume and Interp may be changed from any goroutine;
// everything else belongs to whoever pulls samples.
package noise

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync/atomic"
)

const (
	// MaxAmplitude is the largest magnitude of a segment endpoint (10 bits).
	MaxAmplitude = 1<<10 - 1

	DefaultSampleRate = 48000
)

type Interp int32

const (
	Linear Interp = iota
	Cosine
)

func (i Interp) String() string {
	switch i {
	case Linear:
		return "linear"
	case Cosine:
		return "cosine"
	default:
		return fmt.Sprintf("Interp(%d)", int32(i))
	}
}

func ParseInterp(s string) (Interp, error) {
	switch s {
	case "linear", "lerp":
		return Linear, nil
	case "cosine", "cos":
		return Cosine, nil
	default:
		return 0, fmt.Errorf("unknown interpolation %q", s)
	}
}

// Unit selects how a period is expressed to the outside. Internally the
// period is always a number of samples.
type Unit int

const (
	Samples Unit = iota
	Seconds
)

func (u Unit) String() string {
	switch u {
	case Samples:
		return "samples"
	case Seconds:
		return "seconds"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

func ParseUnit(s string) (Unit, error) {
	switch s {
	case "samples":
		return Samples, nil
	case "seconds", "time":
		return Seconds, nil
	default:
		return 0, fmt.Errorf("unknown period unit %q", s)
	}
}

// Rand is the source of segment targets. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type Config struct {
	SampleRate int
	Period     float64 // samples per segment
	Volume     float64
	Interp     Interp
}

type Gen struct {
	sampleRate float64

	period atomicFloat
	volume atomicFloat
	interp atomic.Int32

	// owned by the caller of Sample
	rng         Rand
	initialized bool
	current     int16
	next        int16
	step        int // samples into the current segment
	rollovers   uint64
}

func New(cfg Config, rng Rand) *Gen {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	g := &Gen{
		sampleRate: float64(cfg.SampleRate),
		rng:        rng,
	}
	g.SetPeriod(cfg.Period)
	g.SetVolume(cfg.Volume)
	g.SetInterp(cfg.Interp)
	return g
}

func (g *Gen) SampleRate() int { return int(g.sampleRate) }

func (g *Gen) Period() float64 { return g.period.Load() }

func (g *Gen) SetPeriod(samples float64) {
	if !(samples > 0) {
		panic(fmt.Sprintf("noise: period must be positive, got %v", samples))
	}
	g.period.Store(samples)
}

// StepTime is the segment length in seconds.
func (g *Gen) StepTime() float64 { return g.Period() / g.sampleRate }

func (g *Gen) SetStepTime(seconds float64) {
	g.SetPeriod(seconds * g.sampleRate)
}

func (g *Gen) Volume() float64 { return g.volume.Load() }

func (g *Gen) SetVolume(v float64) {
	if !(v >= 0 && v <= 1) {
		panic(fmt.Sprintf("noise: volume must be within [0, 1], got %v", v))
	}
	g.volume.Store(v)
}

func (g *Gen) Interp() Interp { return Interp(g.interp.Load()) }

func (g *Gen) SetInterp(i Interp) { g.interp.Store(int32(i)) }

// Phase reports the progress through the current segment, in [0, 1).
func (g *Gen) Phase() float64 { return float64(g.step) / g.Period() }

// Rollovers counts the segments completed so far.
func (g *Gen) Rollovers() uint64 { return g.rollovers }

// Sample produces the next sample. It never allocates or blocks.
//
// The first segment starts at zero so playback fades in from silence instead
// of jumping to a random level.
func (g *Gen) Sample() int16 {
	if !g.initialized {
		g.current = 0
		g.next = g.target()
		g.step = 0
		g.initialized = true
	}

	period := g.period.Load()
	length := math.Ceil(period)
	// the period shrank below where this segment already is
	if float64(g.step) >= length {
		g.rollover()
	}

	t := float64(g.step) / period
	if Interp(g.interp.Load()) == Cosine {
		t = (1 - math.Cos(t*math.Pi)) / 2
	}
	v := lerp(float64(g.current), float64(g.next), t) * g.volume.Load()

	g.step++
	if float64(g.step) >= length {
		g.rollover()
	}

	// floor the magnitude so both signs stay within MaxAmplitude*volume
	return int16(math.Trunc(v))
}

// Fill writes exactly len(buf) samples.
func (g *Gen) Fill(buf []int16) {
	for i := range buf {
		buf[i] = g.Sample()
	}
}

// Fork returns a generator with the same parameters and fresh segment state.
// The receiver's phase, amplitudes and source are left untouched.
func (g *Gen) Fork(rng Rand) *Gen {
	f := &Gen{
		sampleRate: g.sampleRate,
		rng:        rng,
	}
	f.period.Store(g.period.Load())
	f.volume.Store(g.volume.Load())
	f.interp.Store(g.interp.Load())
	return f
}

// Segments are counted in whole samples with no carry, so every segment lasts
// exactly ceil(period) samples.
func (g *Gen) rollover() {
	g.current = g.next
	g.next = g.target()
	g.step = 0
	g.rollovers++
}

// target draws magnitude and sign separately, so zero is drawn twice as often
// as any other value.
func (g *Gen) target() int16 {
	mag := g.rng.IntN(MaxAmplitude + 1)
	sign := g.rng.IntN(2)*2 - 1
	return int16(mag * sign)
}

func lerp(a, b, t float64) float64 {
	return (b-a)*t + a
}
