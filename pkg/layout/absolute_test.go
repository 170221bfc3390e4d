package layout

import (
	"testing"

	"github.com/ickshonpe/taffy/pkg/geometry"
	"github.com/ickshonpe/taffy/pkg/style"
)

func absolute(width, height style.Dimension) style.Style {
	s := style.Default()
	s.Position = style.PositionAbsolute
	s.Size = style.Size{Width: width, Height: height}
	return s
}

func TestAbsolute_TopLeftInset(t *testing.T) {
	arena := NewArena()
	cs := absolute(style.Points(50), style.Points(50))
	cs.Inset.Top = style.Points(10)
	cs.Inset.Left = style.Points(10)
	child, _ := arena.NewLeaf(cs)
	root, _ := arena.NewWithChildren(sized(style.Points(200), style.Points(200)), child)
	arena.ComputeLayout(root, MaxContentSize())

	l := mustLayout(t, arena, child)
	if l.Location != (geometry.Point{X: 10, Y: 10}) {
		t.Errorf("location = %v, want (10,10)", l.Location)
	}
	if l.Size != (geometry.Size{Width: 50, Height: 50}) {
		t.Errorf("size = %v, want 50x50", l.Size)
	}
}

func TestAbsolute_BottomRightInset(t *testing.T) {
	arena := NewArena()
	cs := absolute(style.Points(50), style.Points(50))
	cs.Inset.Bottom = style.Points(10)
	cs.Inset.Right = style.Points(10)
	child, _ := arena.NewLeaf(cs)
	root, _ := arena.NewWithChildren(sized(style.Points(200), style.Points(200)), child)
	arena.ComputeLayout(root, MaxContentSize())

	if l := mustLayout(t, arena, child); l.Location != (geometry.Point{X: 140, Y: 140}) {
		t.Errorf("location = %v, want (140,140)", l.Location)
	}
}

func TestAbsolute_OpposingInsetsDeriveSize(t *testing.T) {
	arena := NewArena()
	cs := absolute(style.Auto(), style.Auto())
	cs.Inset = style.Rect{
		Left:   style.Points(20),
		Right:  style.Points(30),
		Top:    style.Points(10),
		Bottom: style.Points(40),
	}
	child, _ := arena.NewLeaf(cs)
	root, _ := arena.NewWithChildren(sized(style.Points(200), style.Points(200)), child)
	arena.ComputeLayout(root, MaxContentSize())

	l := mustLayout(t, arena, child)
	if l.Size != (geometry.Size{Width: 150, Height: 150}) {
		t.Errorf("size = %v, want 150x150", l.Size)
	}
	if l.Location != (geometry.Point{X: 20, Y: 10}) {
		t.Errorf("location = %v, want (20,10)", l.Location)
	}
}

func TestAbsolute_PercentInsetAgainstPaddingBox(t *testing.T) {
	arena := NewArena()
	cs := absolute(style.Points(40), style.Points(40))
	cs.Inset.Left = style.Percent(0.25)
	cs.Inset.Top = style.Percent(0.5)
	child, _ := arena.NewLeaf(cs)
	root, _ := arena.NewWithChildren(sized(style.Points(200), style.Points(100)), child)
	arena.ComputeLayout(root, MaxContentSize())

	if l := mustLayout(t, arena, child); l.Location != (geometry.Point{X: 50, Y: 50}) {
		t.Errorf("location = %v, want (50,50)", l.Location)
	}
}

func TestAbsolute_DoesNotAffectSiblings(t *testing.T) {
	arena := NewArena()
	cs := absolute(style.Points(50), style.Points(50))
	cs.Inset.Left = style.Points(0)
	cs.Inset.Top = style.Points(0)
	abs, _ := arena.NewLeaf(cs)

	flow := style.Default()
	flow.FlexGrow = 1
	flowNode, _ := arena.NewLeaf(flow)

	root, _ := arena.NewWithChildren(sized(style.Points(200), style.Points(100)), abs, flowNode)
	arena.ComputeLayout(root, MaxContentSize())

	l := mustLayout(t, arena, flowNode)
	if l.Location.X != 0 || l.Size.Width != 200 {
		t.Errorf("in-flow sibling at X=%v width %v, want 0 and 200", l.Location.X, l.Size.Width)
	}
}

func TestAbsolute_InsideContainerPadding(t *testing.T) {
	arena := NewArena()
	cs := absolute(style.Points(50), style.Points(50))
	cs.Inset.Left = style.Points(10)
	cs.Inset.Top = style.Points(10)
	child, _ := arena.NewLeaf(cs)

	rs := sized(style.Points(200), style.Points(200))
	rs.Padding = style.Uniform(style.Points(20))
	root, _ := arena.NewWithChildren(rs, child)
	arena.ComputeLayout(root, MaxContentSize())

	// Insets are measured from the padding box edge; reported
	// locations are relative to the content box, 20pt further in.
	if l := mustLayout(t, arena, child); l.Location != (geometry.Point{X: -10, Y: -10}) {
		t.Errorf("location = %v, want (-10,-10)", l.Location)
	}
}
