package layout

import "github.com/ickshonpe/taffy/pkg/geometry"

// layoutAbsoluteChild sizes and places an absolutely positioned child.
// Such children take no part in sibling flex distribution; they are
// sized by their own styles (with opposing insets fixing a dimension
// when the size is auto) and positioned from their insets relative to
// the container's padding box.
func (a *Arena) layoutAbsoluteChild(child NodeID, containerSize geometry.Size, padding, border geometry.Rect, childAvailable AvailableSize) {
	cs, err := a.slot(child)
	if err != nil {
		return
	}
	st := cs.style

	// The padding box: border box less borders.
	padBox := geometry.Size{
		Width:  maxFloat(containerSize.Width-border.Horizontal(), 0),
		Height: maxFloat(containerSize.Height-border.Vertical(), 0),
	}
	// Content size is the percentage reference for dimensions and margins.
	content := geometry.OptionSize{
		Width:  geometry.Some(maxFloat(padBox.Width-padding.Horizontal(), 0)),
		Height: geometry.Some(maxFloat(padBox.Height-padding.Vertical(), 0)),
	}

	left := st.Inset.Left.Resolve(geometry.Some(padBox.Width))
	right := st.Inset.Right.Resolve(geometry.Some(padBox.Width))
	top := st.Inset.Top.Resolve(geometry.Some(padBox.Height))
	bottom := st.Inset.Bottom.Resolve(geometry.Some(padBox.Height))

	margin := st.Margin.ResolveOrZero(content.Width, content.Height)
	minSize := st.MinSize.Resolve(content)
	maxSize := st.MaxSize.Resolve(content)
	known := st.Size.Resolve(content)

	// Opposing insets determine an auto dimension.
	if !known.Width.IsSet() {
		if l, lok := left.Get(); lok {
			if r, rok := right.Get(); rok {
				known.Width = geometry.Some(maxFloat(padBox.Width-l-r-margin.Horizontal(), 0))
			}
		}
	}
	if !known.Height.IsSet() {
		if t, tok := top.Get(); tok {
			if b, bok := bottom.Get(); bok {
				known.Height = geometry.Some(maxFloat(padBox.Height-t-b-margin.Vertical(), 0))
			}
		}
	}
	known = known.Clamp(minSize, maxSize)

	size := a.compute(child, known, childAvailable, performLayout)

	// Positions in padding-box coordinates, converted to the parent's
	// content-box coordinate space that Layout.Location uses.
	var x float64
	switch {
	case left.IsSet():
		x = left.Or(0) + margin.Left - padding.Left
	case right.IsSet():
		x = padBox.Width - right.Or(0) - size.Width - margin.Right - padding.Left
	default:
		x = 0
	}
	var y float64
	switch {
	case top.IsSet():
		y = top.Or(0) + margin.Top - padding.Top
	case bottom.IsSet():
		y = padBox.Height - bottom.Or(0) - size.Height - margin.Bottom - padding.Top
	default:
		y = 0
	}

	cs.layout.Location = geometry.Point{X: x, Y: y}
}
