package layout

import (
	"math"

	"github.com/ickshonpe/taffy/pkg/geometry"
	"github.com/ickshonpe/taffy/pkg/style"
)

// ComputeLayout lays out the tree rooted at root within the given
// available space and stores the resulting geometry on every visited
// node, where Layout reads it back in O(1).
//
// The pass is a pure function of the tree's current styles and
// children, so repeating it without intervening mutation reproduces
// identical results (typically served from the per-node cache).
func (a *Arena) ComputeLayout(root NodeID, available AvailableSize) error {
	s, err := a.slot(root)
	if err != nil {
		return err
	}

	known := s.style.Size.Resolve(available.IntoOptions()).
		Clamp(
			s.style.MinSize.Resolve(available.IntoOptions()),
			s.style.MaxSize.Resolve(available.IntoOptions()),
		)

	a.compute(root, known, available, performLayout)

	s.layout.Location = geometry.Point{}
	if a.rounding {
		a.roundSubtree(root, 0, 0)
	}
	return nil
}

// compute sizes one node, consulting and filling the per-node cache.
// In performLayout mode it additionally positions the node's
// descendants and commits their geometry to the arena; commitment
// happens only after the node's children have fully resolved, so a
// pass never leaves partially updated state behind.
func (a *Arena) compute(node NodeID, known geometry.OptionSize, available AvailableSize, mode runMode) geometry.Size {
	s, err := a.slot(node)
	if err != nil {
		// Unreachable from public entry points: recursion only visits
		// live children.
		return geometry.Size{}
	}

	if s.style.Display == style.DisplayNone {
		return a.computeHidden(node, mode)
	}

	if size, ok := s.cache.find(known, available, mode); ok {
		if mode == performLayout {
			s.layout.Size = storedSize(size)
			s.hasLayout = true
		}
		return size
	}

	var size geometry.Size
	if len(s.children) == 0 {
		size = a.computeLeaf(s, known, available)
	} else {
		size = a.computeFlexbox(node, known, available, mode)
	}

	s.cache.store(known, available, mode, size)
	if mode == performLayout {
		s.layout.Size = storedSize(size)
		s.layout.Margin = s.style.Margin.ResolveOrZero(available.Width.IntoFloat(), available.Height.IntoFloat())
		s.layout.Border = s.style.Border.ResolveOrZero(available.Width.IntoFloat(), available.Height.IntoFloat())
		s.layout.Padding = s.style.Padding.ResolveOrZero(available.Width.IntoFloat(), available.Height.IntoFloat())
		s.hasLayout = true
	}
	return size
}

// computeHidden zeroes the geometry of a display:none subtree. Hidden
// nodes occupy no space and their descendants are not measured.
func (a *Arena) computeHidden(node NodeID, mode runMode) geometry.Size {
	if mode == performLayout {
		a.zeroSubtree(node)
	}
	return geometry.Size{}
}

// zeroSubtree writes an all-zero layout for node and its descendants.
func (a *Arena) zeroSubtree(node NodeID) {
	s, err := a.slot(node)
	if err != nil {
		return
	}
	s.layout = Layout{}
	s.hasLayout = true
	for _, child := range s.children {
		a.zeroSubtree(child)
	}
}

// storedSize floors negative resolved sizes to zero at the point of
// storage into a Layout.
func storedSize(size geometry.Size) geometry.Size {
	if size.Width < 0 {
		size.Width = 0
	}
	if size.Height < 0 {
		size.Height = 0
	}
	return size
}

// roundSubtree rounds stored geometry to whole pixels. Locations are
// rounded in absolute coordinates and converted back, so that adjacent
// boxes stay adjacent instead of accumulating per-level drift.
func (a *Arena) roundSubtree(node NodeID, absX, absY float64) {
	s, err := a.slot(node)
	if err != nil {
		return
	}
	x := absX + s.layout.Location.X
	y := absY + s.layout.Location.Y
	s.layout.Location.X = math.Round(x) - math.Round(absX)
	s.layout.Location.Y = math.Round(y) - math.Round(absY)
	s.layout.Size.Width = math.Round(x+s.layout.Size.Width) - math.Round(x)
	s.layout.Size.Height = math.Round(y+s.layout.Size.Height) - math.Round(y)
	for _, child := range s.children {
		a.roundSubtree(child, x+s.layout.Padding.Left+s.layout.Border.Left, y+s.layout.Padding.Top+s.layout.Border.Top)
	}
}
