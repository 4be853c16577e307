package ui

import "github.com/whyrusleeping/whine/noise"

const (
	PreviewWidth      = 1000.0
	PreviewHeight     = 300.0
	DefaultPreviewLen = 100
)

// Preview shows a short run of a generator forked from the live one. It is
// rebuilt only when Regenerate is called; the live generator's phase is never
// touched.
type Preview struct {
	X, Y float64
	Seed uint64

	samples []int16
}

func NewPreview(x, y float64, n int, seed uint64) *Preview {
	if n < 0 {
		n = 0
	}
	return &Preview{
		X:       x,
		Y:       y,
		Seed:    seed,
		samples: make([]int16, n),
	}
}

// Regenerate replaces the preview with a fresh run at src's current
// parameters. The same seed is used every time so the picture only moves
// when a parameter does.
func (p *Preview) Regenerate(src *noise.Gen) {
	src.Fork(noise.NewRand(p.Seed)).Fill(p.samples)
}

func (p *Preview) Samples() []int16 {
	return p.samples
}

// Draw emits one bar per sample, from the centre line to the sample level.
func (p *Preview) Draw(cmds []DrawCmd) []DrawCmd {
	if len(p.samples) == 0 {
		return cmds
	}
	w := PreviewWidth / float64(len(p.samples))
	axis := p.Y + PreviewHeight*0.5
	for i, s := range p.samples {
		sy := lerp(p.Y+PreviewHeight, p.Y, ilerp(-noise.MaxAmplitude, noise.MaxAmplitude, float64(s)))
		r := Rect{X: p.X + float64(i)*w, Y: axis, W: w, H: sy - axis}
		if r.H < 0 {
			r.Y, r.H = sy, -r.H
		}
		cmds = append(cmds, DrawCmd{Rect: r, Color: sampleColor})
	}
	return cmds
}
