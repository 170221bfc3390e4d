// Package geometry provides the primitive types used throughout layout:
// points, sizes, per-edge rectangles, and an optional float for values
// that may be unknown while constraints are still being resolved.
package geometry

import "math"

// Float is a float64 that may be unset. The zero Float is unset.
// Layout works with many quantities that are unknown until a later
// pass (percentages against an indefinite parent, auto sizes), and an
// unset Float propagates that absence instead of collapsing it to zero.
type Float struct {
	val float64
	set bool
}

// Some returns a Float holding v.
func Some(v float64) Float {
	return Float{val: v, set: true}
}

// None returns an unset Float.
func None() Float {
	return Float{}
}

// IsSet reports whether the value is known.
func (f Float) IsSet() bool {
	return f.set
}

// Get returns the value and whether it is known.
func (f Float) Get() (float64, bool) {
	return f.val, f.set
}

// Or returns the value if known, otherwise def.
func (f Float) Or(def float64) float64 {
	if f.set {
		return f.val
	}
	return def
}

// OrElse returns f if known, otherwise other.
func (f Float) OrElse(other Float) Float {
	if f.set {
		return f
	}
	return other
}

// Add returns f+v, or unset if f is unset.
func (f Float) Add(v float64) Float {
	if !f.set {
		return f
	}
	return Some(f.val + v)
}

// Sub returns f-v, or unset if f is unset.
func (f Float) Sub(v float64) Float {
	if !f.set {
		return f
	}
	return Some(f.val - v)
}

// Min returns the smaller of f and bound. An unset bound leaves f
// untouched; an unset f stays unset.
func (f Float) Min(bound Float) Float {
	if !f.set || !bound.set {
		return f
	}
	return Some(math.Min(f.val, bound.val))
}

// Max returns the larger of f and bound. An unset bound leaves f
// untouched; an unset f stays unset.
func (f Float) Max(bound Float) Float {
	if !f.set || !bound.set {
		return f
	}
	return Some(math.Max(f.val, bound.val))
}

// Clamp constrains f to [min, max]. Unset bounds do not constrain and
// an unset f stays unset. The max bound is applied first so that a min
// above max resolves in favor of min.
func (f Float) Clamp(min, max Float) Float {
	return f.Min(max).Max(min)
}

// Clamp constrains v to [min, max]. Unset bounds do not constrain.
// The max bound is applied first so that a min above max resolves in
// favor of min.
func Clamp(v float64, min, max Float) float64 {
	if max.set && v > max.val {
		v = max.val
	}
	if min.set && v < min.val {
		v = min.val
	}
	return v
}

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Size is a width/height pair.
type Size struct {
	Width  float64
	Height float64
}

// Main returns the size along the main axis of a row or column container.
func (s Size) Main(row bool) float64 {
	if row {
		return s.Width
	}
	return s.Height
}

// Cross returns the size along the cross axis of a row or column container.
func (s Size) Cross(row bool) float64 {
	if row {
		return s.Height
	}
	return s.Width
}

// OptionSize is a Size whose axes may individually be unknown.
type OptionSize struct {
	Width  Float
	Height Float
}

// Main returns the main-axis component for a row or column container.
func (s OptionSize) Main(row bool) Float {
	if row {
		return s.Width
	}
	return s.Height
}

// Cross returns the cross-axis component for a row or column container.
func (s OptionSize) Cross(row bool) Float {
	if row {
		return s.Height
	}
	return s.Width
}

// SetMain replaces the main-axis component for a row or column container.
func (s OptionSize) SetMain(row bool, v Float) OptionSize {
	if row {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// SetCross replaces the cross-axis component for a row or column container.
func (s OptionSize) SetCross(row bool, v Float) OptionSize {
	if row {
		s.Height = v
	} else {
		s.Width = v
	}
	return s
}

// OrElse fills unknown axes of s from other.
func (s OptionSize) OrElse(other OptionSize) OptionSize {
	return OptionSize{
		Width:  s.Width.OrElse(other.Width),
		Height: s.Height.OrElse(other.Height),
	}
}

// Clamp constrains each axis to the matching bounds.
func (s OptionSize) Clamp(min, max OptionSize) OptionSize {
	return OptionSize{
		Width:  s.Width.Clamp(min.Width, max.Width),
		Height: s.Height.Clamp(min.Height, max.Height),
	}
}

// Rect holds one value per box edge (margins, padding, borders, insets).
type Rect struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Horizontal returns Left+Right.
func (r Rect) Horizontal() float64 {
	return r.Left + r.Right
}

// Vertical returns Top+Bottom.
func (r Rect) Vertical() float64 {
	return r.Top + r.Bottom
}

// MainAxisSum returns the sum of the two edges along the main axis.
func (r Rect) MainAxisSum(row bool) float64 {
	if row {
		return r.Horizontal()
	}
	return r.Vertical()
}

// CrossAxisSum returns the sum of the two edges along the cross axis.
func (r Rect) CrossAxisSum(row bool) float64 {
	if row {
		return r.Vertical()
	}
	return r.Horizontal()
}

// MainStart returns the leading edge along the main axis.
func (r Rect) MainStart(row bool) float64 {
	if row {
		return r.Left
	}
	return r.Top
}

// MainEnd returns the trailing edge along the main axis.
func (r Rect) MainEnd(row bool) float64 {
	if row {
		return r.Right
	}
	return r.Bottom
}

// CrossStart returns the leading edge along the cross axis.
func (r Rect) CrossStart(row bool) float64 {
	if row {
		return r.Top
	}
	return r.Left
}

// CrossEnd returns the trailing edge along the cross axis.
func (r Rect) CrossEnd(row bool) float64 {
	if row {
		return r.Bottom
	}
	return r.Right
}
