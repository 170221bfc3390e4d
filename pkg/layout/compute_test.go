package layout

import (
	"errors"
	"testing"

	"github.com/ickshonpe/taffy/pkg/geometry"
	"github.com/ickshonpe/taffy/pkg/style"
)

func TestCompute_HeaderBodySplit(t *testing.T) {
	arena := NewArena()

	header := style.Default()
	header.Size.Height = style.Points(100)
	headerNode, _ := arena.NewLeaf(header)

	body := style.Default()
	body.FlexGrow = 1
	bodyNode, _ := arena.NewLeaf(body)

	root := sized(style.Points(800), style.Points(600))
	root.FlexDirection = style.Column
	rootNode, _ := arena.NewWithChildren(root, headerNode, bodyNode)

	if err := arena.ComputeLayout(rootNode, DefiniteSize(800, 600)); err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}

	hl := mustLayout(t, arena, headerNode)
	if hl.Size != (geometry.Size{Width: 800, Height: 100}) || hl.Location != (geometry.Point{}) {
		t.Errorf("header = %v at %v, want 800x100 at (0,0)", hl.Size, hl.Location)
	}
	bl := mustLayout(t, arena, bodyNode)
	if bl.Size != (geometry.Size{Width: 800, Height: 500}) || bl.Location != (geometry.Point{X: 0, Y: 100}) {
		t.Errorf("body = %v at %v, want 800x500 at (0,100)", bl.Size, bl.Location)
	}
}

func TestCompute_IsIdempotent(t *testing.T) {
	arena := NewArena()
	childA, _ := arena.NewLeaf(sized(style.Points(33), style.Points(7)))
	b := style.Default()
	b.FlexGrow = 1
	childB, _ := arena.NewLeaf(b)
	root, _ := arena.NewWithChildren(sized(style.Points(250), style.Points(40)), childA, childB)

	arena.ComputeLayout(root, MaxContentSize())
	first := make(map[NodeID]Layout)
	for _, node := range []NodeID{root, childA, childB} {
		first[node] = mustLayout(t, arena, node)
	}

	arena.ComputeLayout(root, MaxContentSize())
	for _, node := range []NodeID{root, childA, childB} {
		if got := mustLayout(t, arena, node); got != first[node] {
			t.Errorf("%v changed between identical computes: %+v then %+v", node, first[node], got)
		}
	}
}

func TestCompute_StaleRootRejected(t *testing.T) {
	arena := NewArena()
	node, _ := arena.NewLeaf(style.Default())
	arena.Remove(node)
	if err := arena.ComputeLayout(node, MaxContentSize()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCompute_MeasureFuncSizesLeaf(t *testing.T) {
	arena := NewArena()
	leaf, err := arena.NewLeafWithMeasure(style.Default(), func(known geometry.OptionSize, available AvailableSize) geometry.Size {
		return geometry.Size{
			Width:  known.Width.Or(120),
			Height: known.Height.Or(30),
		}
	})
	if err != nil {
		t.Fatalf("NewLeafWithMeasure: %v", err)
	}

	if err := arena.ComputeLayout(leaf, MaxContentSize()); err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}
	if l := mustLayout(t, arena, leaf); l.Size != (geometry.Size{Width: 120, Height: 30}) {
		t.Errorf("size = %v, want 120x30", l.Size)
	}
}

func TestCompute_MeasureClampedByStyle(t *testing.T) {
	arena := NewArena()
	s := style.Default()
	s.MaxSize.Width = style.Points(80)
	s.MinSize.Height = style.Points(50)
	leaf, _ := arena.NewLeafWithMeasure(s, func(known geometry.OptionSize, available AvailableSize) geometry.Size {
		return geometry.Size{Width: 120, Height: 30}
	})

	arena.ComputeLayout(leaf, MaxContentSize())
	if l := mustLayout(t, arena, leaf); l.Size != (geometry.Size{Width: 80, Height: 50}) {
		t.Errorf("size = %v, want 80x50", l.Size)
	}
}

func TestCompute_CacheAvoidsRepeatedMeasurement(t *testing.T) {
	arena := NewArena()
	calls := 0
	leaf, _ := arena.NewLeafWithMeasure(style.Default(), func(known geometry.OptionSize, available AvailableSize) geometry.Size {
		calls++
		return geometry.Size{Width: known.Width.Or(40), Height: known.Height.Or(10)}
	})
	other, _ := arena.NewLeaf(sized(style.Points(20), style.Points(10)))
	root, _ := arena.NewWithChildren(sized(style.Points(200), style.Points(50)), leaf, other)

	arena.ComputeLayout(root, MaxContentSize())
	afterFirst := calls
	if afterFirst == 0 {
		t.Fatal("measure func never invoked")
	}

	arena.ComputeLayout(root, MaxContentSize())
	if calls != afterFirst {
		t.Errorf("recompute re-measured: %d calls, then %d", afterFirst, calls)
	}
}

func TestCompute_InvalidationReachesAncestors(t *testing.T) {
	arena := NewArena()
	child, _ := arena.NewLeaf(sized(style.Points(40), style.Points(10)))
	inner, _ := arena.NewWithChildren(style.Default(), child)
	root, _ := arena.NewWithChildren(sized(style.Points(200), style.Points(100)), inner)

	arena.ComputeLayout(root, MaxContentSize())

	grown := sized(style.Points(90), style.Points(10))
	if err := arena.SetStyle(child, grown); err != nil {
		t.Fatalf("SetStyle: %v", err)
	}
	arena.ComputeLayout(root, MaxContentSize())

	if l := mustLayout(t, arena, child); l.Size.Width != 90 {
		t.Errorf("child width = %v, want 90", l.Size.Width)
	}
}

func TestCompute_SetChildrenInvalidatesParent(t *testing.T) {
	arena := NewArena()
	child, _ := arena.NewLeaf(sized(style.Points(40), style.Points(10)))
	rs := style.Default()
	rs.Size.Height = style.Points(10)
	root, _ := arena.NewWithChildren(rs, child)

	arena.ComputeLayout(root, MaxContentSize())
	if l := mustLayout(t, arena, root); l.Size.Width != 40 {
		t.Fatalf("root width = %v, want 40", l.Size.Width)
	}

	extra, _ := arena.NewLeaf(sized(style.Points(40), style.Points(10)))
	arena.AddChild(root, extra)
	arena.ComputeLayout(root, MaxContentSize())
	if l := mustLayout(t, arena, root); l.Size.Width != 80 {
		t.Errorf("root width = %v after adding a child, want 80", l.Size.Width)
	}
}

func TestCompute_MaxContentSizesToContent(t *testing.T) {
	arena := NewArena()
	leaf, _ := arena.NewLeafWithMeasure(style.Default(), func(known geometry.OptionSize, available AvailableSize) geometry.Size {
		return geometry.Size{Width: known.Width.Or(200), Height: known.Height.Or(200)}
	})
	root, _ := arena.NewWithChildren(style.Default(), leaf)

	arena.ComputeLayout(root, MaxContentSize())
	if l := mustLayout(t, arena, root); l.Size != (geometry.Size{Width: 200, Height: 200}) {
		t.Errorf("root size = %v, want 200x200", l.Size)
	}
}

func TestCompute_NestedContainers(t *testing.T) {
	arena := NewArena()
	leaf, _ := arena.NewLeaf(sized(style.Points(30), style.Points(30)))

	inner := style.Default()
	inner.FlexGrow = 1
	inner.Padding = style.Uniform(style.Points(5))
	innerNode, _ := arena.NewWithChildren(inner, leaf)

	rootStyle := sized(style.Points(100), style.Points(100))
	rootNode, _ := arena.NewWithChildren(rootStyle, innerNode)
	arena.ComputeLayout(rootNode, MaxContentSize())

	il := mustLayout(t, arena, innerNode)
	if il.Size != (geometry.Size{Width: 100, Height: 100}) {
		t.Errorf("inner size = %v, want 100x100", il.Size)
	}
	// The leaf is positioned relative to the inner content box, which
	// starts inside the 5pt padding.
	ll := mustLayout(t, arena, leaf)
	if ll.Location != (geometry.Point{X: 0, Y: 0}) {
		t.Errorf("leaf at %v, want (0,0)", ll.Location)
	}
	if ll.Size.Width != 30 {
		t.Errorf("leaf width = %v, want 30", ll.Size.Width)
	}
}

func TestCompute_RoundingSnapsToWholePixels(t *testing.T) {
	arena := NewArena()
	child := func() NodeID {
		s := style.Default()
		s.FlexGrow = 1
		id, _ := arena.NewLeaf(s)
		return id
	}
	c1, c2, c3 := child(), child(), child()
	root, _ := arena.NewWithChildren(sized(style.Points(100), style.Points(10)), c1, c2, c3)
	arena.ComputeLayout(root, MaxContentSize())

	total := 0.0
	for _, node := range []NodeID{c1, c2, c3} {
		l := mustLayout(t, arena, node)
		if l.Size.Width != float64(int(l.Size.Width)) {
			t.Errorf("width %v is not a whole pixel", l.Size.Width)
		}
		total += l.Size.Width
	}
	// Cumulative rounding keeps the children covering the container
	// exactly even though 100/3 is fractional.
	if total != 100 {
		t.Errorf("children cover %v, want 100", total)
	}
}

func TestCompute_RoundingCanBeDisabled(t *testing.T) {
	arena := NewArena()
	arena.DisableRounding()
	s := style.Default()
	s.FlexGrow = 1
	c1, _ := arena.NewLeaf(s)
	c2, _ := arena.NewLeaf(s)
	c3, _ := arena.NewLeaf(s)
	root, _ := arena.NewWithChildren(sized(style.Points(100), style.Points(10)), c1, c2, c3)
	arena.ComputeLayout(root, MaxContentSize())

	l := mustLayout(t, arena, c1)
	if !near(l.Size.Width, 100.0/3) {
		t.Errorf("width = %v, want 100/3", l.Size.Width)
	}
}

func TestCompute_HiddenSubtreeZeroed(t *testing.T) {
	arena := NewArena()
	leaf, _ := arena.NewLeaf(sized(style.Points(50), style.Points(50)))
	hs := style.Default()
	hs.Display = style.DisplayNone
	hidden, _ := arena.NewWithChildren(hs, leaf)
	root, _ := arena.NewWithChildren(sized(style.Points(200), style.Points(100)), hidden)
	arena.ComputeLayout(root, MaxContentSize())

	if l := mustLayout(t, arena, leaf); l.Size != (geometry.Size{}) {
		t.Errorf("descendant of hidden node sized %v, want zero", l.Size)
	}
}
