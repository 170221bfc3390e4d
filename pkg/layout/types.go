package layout

import (
	"fmt"

	"github.com/ickshonpe/taffy/pkg/geometry"
	"github.com/ickshonpe/taffy/pkg/style"
)

// NodeID is a stable identifier for a node in an Arena. Identifiers
// carry a generation tag so that an identifier freed by Remove is
// detected as stale even after its storage slot is reused.
type NodeID struct {
	index      uint32
	generation uint32
}

// String formats the identifier for debugging.
func (id NodeID) String() string {
	return fmt.Sprintf("node(%d:%d)", id.index, id.generation)
}

// MeasureFunc reports the intrinsic size of a leaf's content. It
// receives the dimensions already fixed by styles or by the flex
// algorithm (unset axes are the ones being asked about) and the
// available space on each axis. Implementations must be deterministic
// for a given input; the layout cache assumes it.
type MeasureFunc func(known geometry.OptionSize, available AvailableSize) geometry.Size

// Layout is the computed geometry of a single node.
//
// Size is the border-box size. Location is the offset of the border
// box relative to the parent's content box; the root's location is the
// origin. The resolved margin, border and padding edges are retained
// so hosts can derive every box without re-resolving styles.
type Layout struct {
	Location geometry.Point
	Size     geometry.Size
	Margin   geometry.Rect
	Border   geometry.Rect
	Padding  geometry.Rect
}

// ContentSize returns the content-box size: the border-box size less
// padding and borders, floored at zero.
func (l Layout) ContentSize() geometry.Size {
	w := l.Size.Width - l.Padding.Horizontal() - l.Border.Horizontal()
	h := l.Size.Height - l.Padding.Vertical() - l.Border.Vertical()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return geometry.Size{Width: w, Height: h}
}

// runMode selects whether a recursive pass only measures a node or
// also positions its descendants.
type runMode int

const (
	performLayout runMode = iota
	computeSize
)

// flexItem tracks one in-flow child during a container's layout pass.
type flexItem struct {
	node NodeID

	grow   float64
	shrink float64
	align  style.AlignItems

	margin    geometry.Rect
	styleSize geometry.OptionSize
	minSize   geometry.OptionSize
	maxSize   geometry.OptionSize

	// flexBasis is the flex base size; hypotheticalMain is the base
	// size clamped by the item's min/max constraints.
	flexBasis        float64
	hypotheticalMain float64

	targetMain float64
	crossSize  float64
	frozen     bool
	violation  float64

	mainPos  float64
	crossPos float64
}

// outerHypotheticalMain is the hypothetical main size plus main-axis margins.
func (it *flexItem) outerHypotheticalMain(row bool) float64 {
	return it.hypotheticalMain + it.margin.MainAxisSum(row)
}

// outerTargetMain is the target main size plus main-axis margins.
func (it *flexItem) outerTargetMain(row bool) float64 {
	return it.targetMain + it.margin.MainAxisSum(row)
}

// outerCross is the cross size plus cross-axis margins.
func (it *flexItem) outerCross(row bool) float64 {
	return it.crossSize + it.margin.CrossAxisSum(row)
}

// flexLine is one row of items produced by line breaking.
type flexLine struct {
	items     []*flexItem
	crossSize float64
	crossPos  float64
}
