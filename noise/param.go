package noise

import (
	"math"
	"sync/atomic"
)

// Param is a scalar that the UI writes while the audio callback reads it.
type Param interface {
	Get() float64
	Set(v float64)
}

// atomicFloat holds a float64 as its bit pattern so the audio path can load it
// without locking.
type atomicFloat struct {
	bits atomic.Uint64
}

func (f *atomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

func (f *atomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

type paramFunc struct {
	get func() float64
	set func(float64)
}

func (p paramFunc) Get() float64  { return p.get() }
func (p paramFunc) Set(v float64) { p.set(v) }

// PeriodParam exposes the segment length in the given unit.
func (g *Gen) PeriodParam(u Unit) Param {
	if u == Seconds {
		return paramFunc{get: g.StepTime, set: g.SetStepTime}
	}
	return paramFunc{get: g.Period, set: g.SetPeriod}
}

func (g *Gen) VolumeParam() Param {
	return paramFunc{get: g.Volume, set: g.SetVolume}
}
