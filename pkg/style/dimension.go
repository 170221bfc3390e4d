package style

import "github.com/ickshonpe/taffy/pkg/geometry"

// DimensionKind discriminates the tri-state of a style length.
type DimensionKind int

const (
	// DimensionAuto leaves the value to be determined by layout.
	DimensionAuto DimensionKind = iota
	// DimensionPoints is an absolute length.
	DimensionPoints
	// DimensionPercent is a fraction of a reference size (0.5 = 50%).
	DimensionPercent
)

// Dimension is a style length: an absolute number of points, a
// percentage of some reference size, or auto. The zero Dimension is
// auto.
type Dimension struct {
	kind  DimensionKind
	value float64
}

// Auto returns the auto dimension.
func Auto() Dimension {
	return Dimension{kind: DimensionAuto}
}

// Points returns an absolute dimension of v points.
func Points(v float64) Dimension {
	return Dimension{kind: DimensionPoints, value: v}
}

// Percent returns a percentage dimension. The fraction is given in
// unit terms: Percent(0.5) is 50%.
func Percent(fraction float64) Dimension {
	return Dimension{kind: DimensionPercent, value: fraction}
}

// Kind returns the tri-state discriminant.
func (d Dimension) Kind() DimensionKind {
	return d.kind
}

// IsAuto reports whether the dimension is auto.
func (d Dimension) IsAuto() bool {
	return d.kind == DimensionAuto
}

// Resolve turns the dimension into a concrete length. Points pass
// through, percentages multiply by the reference when it is known, and
// auto (or a percentage of an unknown reference) yields unset.
func (d Dimension) Resolve(reference geometry.Float) geometry.Float {
	switch d.kind {
	case DimensionPoints:
		return geometry.Some(d.value)
	case DimensionPercent:
		if ref, ok := reference.Get(); ok {
			return geometry.Some(d.value * ref)
		}
		return geometry.None()
	default:
		return geometry.None()
	}
}

// ResolveOrZero resolves the dimension and substitutes zero when the
// result is unset. Used for edges, where an unresolvable percentage
// contributes nothing.
func (d Dimension) ResolveOrZero(reference geometry.Float) float64 {
	return d.Resolve(reference).Or(0)
}

// Size is a width/height pair of dimensions.
type Size struct {
	Width  Dimension
	Height Dimension
}

// Resolve resolves both axes against their references.
func (s Size) Resolve(reference geometry.OptionSize) geometry.OptionSize {
	return geometry.OptionSize{
		Width:  s.Width.Resolve(reference.Width),
		Height: s.Height.Resolve(reference.Height),
	}
}

// Main returns the main-axis dimension for a row or column container.
func (s Size) Main(row bool) Dimension {
	if row {
		return s.Width
	}
	return s.Height
}

// Cross returns the cross-axis dimension for a row or column container.
func (s Size) Cross(row bool) Dimension {
	if row {
		return s.Height
	}
	return s.Width
}

// Rect is a per-edge set of dimensions for margins, padding, borders
// and insets.
type Rect struct {
	Left   Dimension
	Right  Dimension
	Top    Dimension
	Bottom Dimension
}

// Uniform returns a Rect with the same dimension on every edge.
func Uniform(d Dimension) Rect {
	return Rect{Left: d, Right: d, Top: d, Bottom: d}
}

// ResolveOrZero resolves every edge against the horizontal reference
// for left/right and the vertical reference for top/bottom, with unset
// results becoming zero.
func (r Rect) ResolveOrZero(horizontal, vertical geometry.Float) geometry.Rect {
	return geometry.Rect{
		Left:   r.Left.ResolveOrZero(horizontal),
		Right:  r.Right.ResolveOrZero(horizontal),
		Top:    r.Top.ResolveOrZero(vertical),
		Bottom: r.Bottom.ResolveOrZero(vertical),
	}
}
