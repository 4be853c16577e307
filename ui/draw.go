// Package ui holds the slider widgets, the drag arbitration between them and
// the waveform preview. It never draws anything itself; widgets append DrawCmds
// that the host turns into filled rectangles.
package ui

import "image/color"

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies in r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Pointer is the mouse state sampled once per frame.
type Pointer struct {
	Pos     Point
	Pressed bool
}

type DrawCmd struct {
	Rect  Rect
	Color color.RGBA
}

// Hex converts 0xRRGGBBAA.
func Hex(code uint32) color.RGBA {
	return color.RGBA{
		R: uint8(code >> 24),
		G: uint8(code >> 16),
		B: uint8(code >> 8),
		A: uint8(code),
	}
}

var (
	BackgroundColor = Hex(0x181818FF)
	sliderColor     = Hex(0x00FF00FF)
	gripColor       = Hex(0xFF0000FF)
	sampleColor     = Hex(0xFFFF00FF)
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return (b-a)*t + a
}

func ilerp(a, b, v float64) float64 {
	return (v - a) / (b - a)
}
