// Package style defines the style model for flexbox layout: the
// tri-state dimension type, the container and item property enums, and
// the pure resolution functions that turn abstract style values into
// concrete lengths against a reference size.
package style

// Display controls whether a node generates a flex formatting context
// or is removed from layout entirely.
type Display int

const (
	DisplayFlex Display = iota
	DisplayNone
)

// Position controls whether a node participates in sibling flex
// distribution or is positioned from its insets.
type Position int

const (
	PositionRelative Position = iota
	PositionAbsolute
)

// FlexDirection sets the main axis of a container.
type FlexDirection int

const (
	Row FlexDirection = iota
	RowReverse
	Column
	ColumnReverse
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse reports whether items are placed against the axis direction.
func (d FlexDirection) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// FlexWrap controls line breaking of flex items.
type FlexWrap int

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// JustifyContent distributes free space along the main axis.
type JustifyContent int

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// AlignItems sets the default cross-axis alignment of items in a line.
type AlignItems int

const (
	AlignItemsStretch AlignItems = iota
	AlignItemsStart
	AlignItemsEnd
	AlignItemsCenter
)

// AlignSelf overrides the container's AlignItems for a single item.
type AlignSelf int

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStart
	AlignSelfEnd
	AlignSelfCenter
	AlignSelfStretch
)

// AlignContent distributes a container's lines along the cross axis
// when there is more than one line.
type AlignContent int

const (
	AlignContentStretch AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentSpaceEvenly
)

// Style describes how a single node is laid out. The zero value is not
// a useful style; use Default as the starting point.
type Style struct {
	Display  Display
	Position Position

	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	JustifyContent JustifyContent
	AlignItems     AlignItems
	AlignSelf      AlignSelf
	AlignContent   AlignContent

	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Dimension

	Size    Size
	MinSize Size
	MaxSize Size

	// Margin, Padding and Border are length-or-percentage per edge;
	// percentages resolve against the parent's content size on the
	// matching axis.
	Margin  Rect
	Padding Rect
	Border  Rect

	// Inset positions absolutely positioned nodes relative to the
	// containing node's padding box. Auto edges are unconstrained.
	Inset Rect

	// Gap is the spacing between adjacent in-flow items on the main
	// axis and between lines on the cross axis.
	Gap Size
}

// Default returns the initial values for every property: an in-flow
// row container that neither grows nor wraps, with auto sizing and
// flex-shrink 1.
func Default() Style {
	return Style{
		Display:        DisplayFlex,
		Position:       PositionRelative,
		FlexDirection:  Row,
		FlexWrap:       NoWrap,
		JustifyContent: JustifyStart,
		AlignItems:     AlignItemsStretch,
		AlignSelf:      AlignSelfAuto,
		AlignContent:   AlignContentStretch,
		FlexGrow:       0,
		FlexShrink:     1,
		FlexBasis:      Auto(),
		Size:           Size{Width: Auto(), Height: Auto()},
		MinSize:        Size{Width: Auto(), Height: Auto()},
		MaxSize:        Size{Width: Auto(), Height: Auto()},
		Margin:         Rect{Left: Points(0), Right: Points(0), Top: Points(0), Bottom: Points(0)},
		Padding:        Rect{Left: Points(0), Right: Points(0), Top: Points(0), Bottom: Points(0)},
		Border:         Rect{Left: Points(0), Right: Points(0), Top: Points(0), Bottom: Points(0)},
		Inset:          Rect{Left: Auto(), Right: Auto(), Top: Auto(), Bottom: Auto()},
		Gap:            Size{Width: Points(0), Height: Points(0)},
	}
}

// Align returns the effective cross-axis alignment for an item inside
// a container: the item's AlignSelf when set, else the container's
// AlignItems.
func Align(container, item *Style) AlignItems {
	switch item.AlignSelf {
	case AlignSelfStart:
		return AlignItemsStart
	case AlignSelfEnd:
		return AlignItemsEnd
	case AlignSelfCenter:
		return AlignItemsCenter
	case AlignSelfStretch:
		return AlignItemsStretch
	default:
		return container.AlignItems
	}
}
