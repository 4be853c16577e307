package ui

import (
	"fmt"
	"math"
)

const (
	SliderThickness = 5.0
	// GripSize is half the side of the square grip.
	GripSize = 30.0
)

// Value is the live quantity a slider edits. noise.Param satisfies it.
type Value interface {
	Get() float64
	Set(v float64)
}

type floatValue struct {
	p *float64
}

func (f floatValue) Get() float64  { return *f.p }
func (f floatValue) Set(v float64) { *f.p = v }

// FloatValue binds a slider to a plain variable.
func FloatValue(p *float64) Value {
	return floatValue{p: p}
}

// Slider is a horizontal slider. X is the left end of the body and Y its
// vertical centre.
type Slider struct {
	ID       WidgetID
	X, Y     float64
	Len      float64
	Min, Max float64
	Value    Value
}

func NewSlider(id WidgetID, x, y, length float64, v Value, lo, hi float64) *Slider {
	if lo > hi {
		panic(fmt.Sprintf("ui: slider %d has min %v > max %v", id, lo, hi))
	}
	if !(length > 0) {
		panic(fmt.Sprintf("ui: slider %d has non-positive length %v", id, length))
	}
	return &Slider{
		ID:    id,
		X:     x,
		Y:     y,
		Len:   length,
		Min:   lo,
		Max:   hi,
		Value: v,
	}
}

func (s *Slider) BodyRect() Rect {
	return Rect{
		X: s.X,
		Y: s.Y - SliderThickness*0.5,
		W: s.Len,
		H: SliderThickness,
	}
}

func (s *Slider) GripRect() Rect {
	return Rect{
		X: s.X - GripSize + s.unit()*s.Len,
		Y: s.Y - GripSize,
		W: GripSize * 2,
		H: GripSize * 2,
	}
}

// unit is the value's position along the body in [0, 1].
func (s *Slider) unit() float64 {
	if s.Max == s.Min {
		return 0
	}
	return clamp(ilerp(s.Min, s.Max, s.Value.Get()), 0, 1)
}

func (s *Slider) HitTest(p Point) bool {
	return s.GripRect().Contains(p)
}

// Update runs one frame of pointer handling and reports whether the value was
// written. The slider takes the drag only when nobody holds it, the button is
// down and the pointer is on the grip; it lets go as soon as the button is
// up, wherever the pointer is.
func (s *Slider) Update(dc *DragController, ptr Pointer) bool {
	if dc.Owns(s.ID) {
		if !ptr.Pressed {
			dc.release(s.ID)
			return false
		}
		// TODO: keep the offset between the pointer and the grip centre
		// captured at acquisition instead of snapping the grip to the pointer.
		x := clamp(ptr.Pos.X-s.X, 0, s.Len)
		s.Value.Set(lerp(s.Min, s.Max, ilerp(0, s.Len, x)))
		return true
	}

	if ptr.Pressed && s.HitTest(ptr.Pos) {
		dc.acquire(s.ID)
	}
	return false
}

// SetValue writes v, clamped to the slider range, on behalf of something other
// than the pointer. It refuses while the slider is being dragged, and NaN is
// dropped.
func (s *Slider) SetValue(dc *DragController, v float64) bool {
	if dc.Owns(s.ID) || math.IsNaN(v) {
		return false
	}
	s.Value.Set(clamp(v, s.Min, s.Max))
	return true
}

// SetUnit is SetValue with t in [0, 1] mapped onto the range.
func (s *Slider) SetUnit(dc *DragController, t float64) bool {
	return s.SetValue(dc, lerp(s.Min, s.Max, clamp(t, 0, 1)))
}

func (s *Slider) Draw(cmds []DrawCmd) []DrawCmd {
	return append(cmds,
		DrawCmd{Rect: s.BodyRect(), Color: sliderColor},
		DrawCmd{Rect: s.GripRect(), Color: gripColor},
	)
}
