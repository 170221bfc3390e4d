package layout

import "github.com/ickshonpe/taffy/pkg/geometry"

// availableSpaceKind discriminates the tri-state of available space.
type availableSpaceKind int

const (
	availableDefinite availableSpaceKind = iota
	availableMinContent
	availableMaxContent
)

// AvailableSpace is the space a parent offers a node on one axis: a
// definite extent, or a request for the node's min-content or
// max-content size. The zero AvailableSpace is Definite(0).
type AvailableSpace struct {
	kind  availableSpaceKind
	value float64
}

// Definite returns available space of exactly v.
func Definite(v float64) AvailableSpace {
	return AvailableSpace{kind: availableDefinite, value: v}
}

// MinContent asks the node for its smallest possible size.
func MinContent() AvailableSpace {
	return AvailableSpace{kind: availableMinContent}
}

// MaxContent asks the node for its size under unlimited space.
func MaxContent() AvailableSpace {
	return AvailableSpace{kind: availableMaxContent}
}

// IsDefinite reports whether the space is a definite extent.
func (a AvailableSpace) IsDefinite() bool {
	return a.kind == availableDefinite
}

// Get returns the definite extent and whether one exists.
func (a AvailableSpace) Get() (float64, bool) {
	return a.value, a.kind == availableDefinite
}

// IntoFloat converts the space into an optional float: definite
// extents are known, content requests are unknown.
func (a AvailableSpace) IntoFloat() geometry.Float {
	if a.kind == availableDefinite {
		return geometry.Some(a.value)
	}
	return geometry.None()
}

// WithDefinite replaces the space with a definite extent when v is
// known, and keeps the existing mode otherwise.
func (a AvailableSpace) WithDefinite(v geometry.Float) AvailableSpace {
	if value, ok := v.Get(); ok {
		return Definite(value)
	}
	return a
}

// equal reports tolerant cache equality: content requests match by
// mode identity, definite extents by numeric value.
func (a AvailableSpace) equal(other AvailableSpace) bool {
	if a.kind != other.kind {
		return false
	}
	return a.kind != availableDefinite || a.value == other.value
}

// AvailableSize is the per-axis available space offered to a node.
type AvailableSize struct {
	Width  AvailableSpace
	Height AvailableSpace
}

// DefiniteSize returns definite available space on both axes.
func DefiniteSize(width, height float64) AvailableSize {
	return AvailableSize{Width: Definite(width), Height: Definite(height)}
}

// MaxContentSize returns max-content available space on both axes.
func MaxContentSize() AvailableSize {
	return AvailableSize{Width: MaxContent(), Height: MaxContent()}
}

// MinContentSize returns min-content available space on both axes.
func MinContentSize() AvailableSize {
	return AvailableSize{Width: MinContent(), Height: MinContent()}
}

// IntoOptions converts both axes into optional floats.
func (a AvailableSize) IntoOptions() geometry.OptionSize {
	return geometry.OptionSize{
		Width:  a.Width.IntoFloat(),
		Height: a.Height.IntoFloat(),
	}
}

// Main returns the main-axis space for a row or column container.
func (a AvailableSize) Main(row bool) AvailableSpace {
	if row {
		return a.Width
	}
	return a.Height
}

// Cross returns the cross-axis space for a row or column container.
func (a AvailableSize) Cross(row bool) AvailableSpace {
	if row {
		return a.Height
	}
	return a.Width
}

// SetMain replaces the main-axis space for a row or column container.
func (a AvailableSize) SetMain(row bool, s AvailableSpace) AvailableSize {
	if row {
		a.Width = s
	} else {
		a.Height = s
	}
	return a
}

// SetCross replaces the cross-axis space for a row or column container.
func (a AvailableSize) SetCross(row bool, s AvailableSpace) AvailableSize {
	if row {
		a.Height = s
	} else {
		a.Width = s
	}
	return a
}

// WithDefinite overrides each axis with a definite extent where known.
func (a AvailableSize) WithDefinite(size geometry.OptionSize) AvailableSize {
	return AvailableSize{
		Width:  a.Width.WithDefinite(size.Width),
		Height: a.Height.WithDefinite(size.Height),
	}
}

// equal reports tolerant cache equality on both axes.
func (a AvailableSize) equal(other AvailableSize) bool {
	return a.Width.equal(other.Width) && a.Height.equal(other.Height)
}
