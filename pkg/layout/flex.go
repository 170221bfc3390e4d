package layout

import (
	"github.com/ickshonpe/taffy/pkg/geometry"
	"github.com/ickshonpe/taffy/pkg/style"
)

// computeFlexbox runs the flex algorithm for a container node:
// flex-basis determination, line breaking, grow/shrink distribution,
// cross sizing, and (in perform-layout mode) item placement plus
// absolutely positioned children.
func (a *Arena) computeFlexbox(node NodeID, known geometry.OptionSize, available AvailableSize, mode runMode) geometry.Size {
	s, err := a.slot(node)
	if err != nil {
		return geometry.Size{}
	}
	st := s.style

	row := st.FlexDirection.IsRow()
	reverse := st.FlexDirection.IsReverse()
	wrap := st.FlexWrap != style.NoWrap
	wrapReverse := st.FlexWrap == style.WrapReverse

	refs := available.IntoOptions()
	styleSize := st.Size.Resolve(refs)
	minSize := st.MinSize.Resolve(refs)
	maxSize := st.MaxSize.Resolve(refs)
	nodeSize := known.OrElse(styleSize).Clamp(minSize, maxSize)

	padding := st.Padding.ResolveOrZero(refs.Width, refs.Height)
	border := st.Border.ResolveOrZero(refs.Width, refs.Height)
	pbMain := padding.MainAxisSum(row) + border.MainAxisSum(row)
	pbCross := padding.CrossAxisSum(row) + border.CrossAxisSum(row)

	// Content-box size where already determined.
	innerSize := geometry.OptionSize{}.
		SetMain(row, nodeSize.Main(row).Sub(pbMain)).
		SetCross(row, nodeSize.Cross(row).Sub(pbCross))

	mainGap := st.Gap.Main(row).ResolveOrZero(innerSize.Main(row))
	crossGap := st.Gap.Cross(row).ResolveOrZero(innerSize.Cross(row))

	// Space offered to children: the container's own constraints,
	// overridden by its resolved size, less its own edges.
	childAvailable := available.WithDefinite(nodeSize)
	childAvailable = childAvailable.SetMain(row, shrinkDefinite(childAvailable.Main(row), pbMain))
	childAvailable = childAvailable.SetCross(row, shrinkDefinite(childAvailable.Cross(row), pbCross))

	items, absolute, hidden := a.collectFlexItems(s, row, innerSize, childAvailable)

	// Line breaking is greedy in order; a lone oversized item still
	// gets a line of its own. Indefinite main space never wraps.
	lines := breakLines(items, wrap, innerSize.Main(row), mainGap, row)

	// The container's main size: styles win, otherwise the widest
	// line's hypothetical content.
	containerMain, ok := nodeSize.Main(row).Get()
	if !ok {
		contentMain := 0.0
		for _, line := range lines {
			contentMain = maxFloat(contentMain, lineHypotheticalMain(line, mainGap, row))
		}
		containerMain = geometry.Clamp(contentMain+pbMain, minSize.Main(row), maxSize.Main(row))
	}
	innerMain := maxFloat(containerMain-pbMain, 0)

	for _, line := range lines {
		resolveFlexibleLengths(line, innerMain, mainGap, row)
	}

	// Cross sizes need resolved main sizes: an item's cross extent may
	// come from its own styles or from measuring its content at the
	// final main size.
	for _, line := range lines {
		for _, it := range line.items {
			a.measureItemCross(it, row, childAvailable)
		}
	}

	// Line cross extents. A single no-wrap line fills a definite
	// container cross size.
	innerCrossStyle := innerSize.Cross(row)
	for _, line := range lines {
		line.crossSize = 0
		for _, it := range line.items {
			line.crossSize = maxFloat(line.crossSize, it.outerCross(row))
		}
	}
	if !wrap && len(lines) == 1 {
		if v, ok := innerCrossStyle.Get(); ok {
			lines[0].crossSize = v
		}
	}

	// The container's cross size: styles win, otherwise the stacked
	// line extents.
	linesCross := 0.0
	for i, line := range lines {
		if i > 0 {
			linesCross += crossGap
		}
		linesCross += line.crossSize
	}
	containerCross, ok := nodeSize.Cross(row).Get()
	if !ok {
		containerCross = geometry.Clamp(linesCross+pbCross, minSize.Cross(row), maxSize.Cross(row))
	}
	innerCross := maxFloat(containerCross-pbCross, 0)

	// Distribute leftover cross space across lines, then stretch items
	// whose cross dimension is auto into their (final) line extent.
	alignLines(lines, st.AlignContent, innerCross, crossGap, wrapReverse)
	for _, line := range lines {
		for _, it := range line.items {
			if it.align == style.AlignItemsStretch && !it.styleSize.Cross(row).IsSet() {
				stretched := line.crossSize - it.margin.CrossAxisSum(row)
				it.crossSize = maxFloat(geometry.Clamp(stretched, it.minSize.Cross(row), it.maxSize.Cross(row)), 0)
			}
		}
	}

	size := sizeFromAxes(row, containerMain, containerCross)
	if mode == computeSize {
		return size
	}

	// Placement. Positions are computed in flex order and flipped for
	// reversed directions, so start/end follow the flex axis.
	for _, line := range lines {
		justifyLine(line, st.JustifyContent, innerMain, mainGap, row, reverse)
		for _, it := range line.items {
			it.crossPos = line.crossPos + alignItemCross(it, line, row)
		}
	}

	for _, line := range lines {
		for _, it := range line.items {
			childKnown := geometry.OptionSize{}.
				SetMain(row, geometry.Some(it.targetMain)).
				SetCross(row, geometry.Some(it.crossSize))
			a.compute(it.node, childKnown, childAvailable, performLayout)
			cs, _ := a.slot(it.node)
			cs.layout.Location = locationFromAxes(row,
				it.mainPos+it.margin.MainStart(row),
				it.crossPos+it.margin.CrossStart(row),
			)
		}
	}

	for _, child := range absolute {
		a.layoutAbsoluteChild(child, size, padding, border, childAvailable)
	}
	for _, child := range hidden {
		a.zeroSubtree(child)
	}

	return size
}

// collectFlexItems splits a container's children into in-flow flex
// items, absolutely positioned children and hidden children, and
// resolves each item's flex basis.
func (a *Arena) collectFlexItems(s *nodeSlot, row bool, innerSize geometry.OptionSize, childAvailable AvailableSize) (items []*flexItem, absolute, hidden []NodeID) {
	st := s.style
	for _, child := range s.children {
		cs, err := a.slot(child)
		if err != nil {
			continue
		}
		childStyle := cs.style
		if childStyle.Display == style.DisplayNone {
			hidden = append(hidden, child)
			continue
		}
		if childStyle.Position == style.PositionAbsolute {
			absolute = append(absolute, child)
			continue
		}

		it := &flexItem{
			node:      child,
			grow:      childStyle.FlexGrow,
			shrink:    childStyle.FlexShrink,
			align:     style.Align(&st, &childStyle),
			margin:    childStyle.Margin.ResolveOrZero(innerSize.Width, innerSize.Height),
			styleSize: childStyle.Size.Resolve(innerSize),
			minSize:   childStyle.MinSize.Resolve(innerSize),
			maxSize:   childStyle.MaxSize.Resolve(innerSize),
		}

		// Flex basis: the explicit basis, else the item's main-axis
		// style size, else a speculative content measurement.
		basis := childStyle.FlexBasis.Resolve(innerSize.Main(row))
		basis = basis.OrElse(it.styleSize.Main(row))
		if v, ok := basis.Get(); ok {
			it.flexBasis = v
		} else {
			measured := a.compute(child, it.styleSize.SetMain(row, geometry.None()), childAvailable, computeSize)
			it.flexBasis = measured.Main(row)
		}
		it.hypotheticalMain = maxFloat(geometry.Clamp(it.flexBasis, it.minSize.Main(row), it.maxSize.Main(row)), 0)
		items = append(items, it)
	}
	return items, absolute, hidden
}

// breakLines groups items into flex lines. With wrapping enabled and a
// definite main extent, items accumulate greedily in order; a new line
// starts when the next item would overflow a non-empty line.
func breakLines(items []*flexItem, wrap bool, innerMain geometry.Float, mainGap float64, row bool) []*flexLine {
	if len(items) == 0 {
		return []*flexLine{{}}
	}
	limit, definite := innerMain.Get()
	if !wrap || !definite {
		return []*flexLine{{items: items}}
	}

	var lines []*flexLine
	current := &flexLine{}
	used := 0.0
	for _, it := range items {
		outer := it.outerHypotheticalMain(row)
		extra := outer
		if len(current.items) > 0 {
			extra += mainGap
		}
		if len(current.items) > 0 && used+extra > limit {
			lines = append(lines, current)
			current = &flexLine{}
			used = 0
			extra = outer
		}
		current.items = append(current.items, it)
		used += extra
	}
	return append(lines, current)
}

// lineHypotheticalMain is a line's main-axis content extent before
// grow/shrink: outer hypothetical sizes plus gaps.
func lineHypotheticalMain(line *flexLine, mainGap float64, row bool) float64 {
	total := 0.0
	for i, it := range line.items {
		if i > 0 {
			total += mainGap
		}
		total += it.outerHypotheticalMain(row)
	}
	return total
}

// lineTargetMain is a line's main-axis content extent after
// grow/shrink: outer target sizes plus gaps.
func lineTargetMain(line *flexLine, mainGap float64, row bool) float64 {
	total := 0.0
	for i, it := range line.items {
		if i > 0 {
			total += mainGap
		}
		total += it.outerTargetMain(row)
	}
	return total
}

// resolveFlexibleLengths distributes a line's free main-axis space:
// positive space goes to items in proportion to their grow factors,
// negative space is removed in proportion to shrink factor times flex
// basis. Items that hit a min/max clamp are frozen and excluded from
// further redistribution; each iteration freezes at least one item, so
// the loop is bounded by the line's item count.
func resolveFlexibleLengths(line *flexLine, innerMain, mainGap float64, row bool) {
	if len(line.items) == 0 {
		return
	}
	gaps := mainGap * float64(len(line.items)-1)

	used := gaps
	for _, it := range line.items {
		it.targetMain = it.hypotheticalMain
		it.frozen = false
		used += it.outerHypotheticalMain(row)
	}
	free := innerMain - used
	growing := free > 0

	// Inflexible items freeze at their hypothetical size immediately:
	// no factor, or a basis already past the size the clamp allows.
	for _, it := range line.items {
		switch {
		case growing && (it.grow == 0 || it.flexBasis > it.hypotheticalMain):
			it.frozen = true
		case !growing && (it.shrink == 0 || it.flexBasis < it.hypotheticalMain):
			it.frozen = true
		}
	}
	if free == 0 {
		for _, it := range line.items {
			it.frozen = true
		}
		return
	}

	for range line.items {
		unfrozen := line.items[:0:0]
		for _, it := range line.items {
			if !it.frozen {
				unfrozen = append(unfrozen, it)
			}
		}
		if len(unfrozen) == 0 {
			return
		}

		remaining := innerMain - gaps
		for _, it := range line.items {
			if it.frozen {
				remaining -= it.outerTargetMain(row)
			} else {
				remaining -= it.flexBasis + it.margin.MainAxisSum(row)
			}
		}

		totalFactor := 0.0
		for _, it := range unfrozen {
			if growing {
				totalFactor += it.grow
			} else {
				totalFactor += it.shrink * it.flexBasis
			}
		}
		if totalFactor == 0 {
			for _, it := range unfrozen {
				it.frozen = true
			}
			return
		}

		totalViolation := 0.0
		for _, it := range unfrozen {
			var raw float64
			if growing {
				raw = it.flexBasis + remaining*(it.grow/totalFactor)
			} else {
				raw = it.flexBasis + remaining*(it.shrink*it.flexBasis/totalFactor)
			}
			clamped := maxFloat(geometry.Clamp(raw, it.minSize.Main(row), it.maxSize.Main(row)), 0)
			it.violation = clamped - raw
			it.targetMain = clamped
			totalViolation += it.violation
		}

		switch {
		case totalViolation > 0:
			for _, it := range unfrozen {
				if it.violation > 0 {
					it.frozen = true
				}
			}
		case totalViolation < 0:
			for _, it := range unfrozen {
				if it.violation < 0 {
					it.frozen = true
				}
			}
		default:
			for _, it := range unfrozen {
				it.frozen = true
			}
		}
	}
}

// measureItemCross determines an item's cross size at its resolved
// main size: the item's own cross style if set, else a content
// measurement.
func (a *Arena) measureItemCross(it *flexItem, row bool, childAvailable AvailableSize) {
	cross := it.styleSize.Cross(row)
	if v, ok := cross.Get(); ok {
		it.crossSize = maxFloat(geometry.Clamp(v, it.minSize.Cross(row), it.maxSize.Cross(row)), 0)
		return
	}
	known := geometry.OptionSize{}.SetMain(row, geometry.Some(it.targetMain))
	measured := a.compute(it.node, known, childAvailable, computeSize)
	it.crossSize = maxFloat(geometry.Clamp(measured.Cross(row), it.minSize.Cross(row), it.maxSize.Cross(row)), 0)
}

// alignLines distributes leftover cross space between lines per
// align-content. Stretch grows every line equally; the spacing
// variants place lines with gaps in the usual flexbox patterns.
func alignLines(lines []*flexLine, align style.AlignContent, innerCross, crossGap float64, wrapReverse bool) {
	total := 0.0
	for i, line := range lines {
		if i > 0 {
			total += crossGap
		}
		total += line.crossSize
	}
	free := innerCross - total

	offset := 0.0
	spacing := 0.0
	n := float64(len(lines))
	switch align {
	case style.AlignContentStretch:
		if free > 0 {
			for _, line := range lines {
				line.crossSize += free / n
			}
			free = 0
		}
	case style.AlignContentStart:
	case style.AlignContentEnd:
		offset = free
	case style.AlignContentCenter:
		offset = free / 2
	case style.AlignContentSpaceBetween:
		if len(lines) > 1 {
			spacing = maxFloat(free, 0) / (n - 1)
		}
	case style.AlignContentSpaceAround:
		spacing = maxFloat(free, 0) / n
		offset = spacing / 2
	case style.AlignContentSpaceEvenly:
		spacing = maxFloat(free, 0) / (n + 1)
		offset = spacing
	}

	pos := offset
	for _, line := range lines {
		line.crossPos = pos
		pos += line.crossSize + crossGap + spacing
	}

	if wrapReverse {
		for _, line := range lines {
			line.crossPos = innerCross - line.crossPos - line.crossSize
		}
	}
}

// justifyLine assigns main-axis positions within a line per
// justify-content, flipping for reversed flex directions.
func justifyLine(line *flexLine, justify style.JustifyContent, innerMain, mainGap float64, row, reverse bool) {
	if len(line.items) == 0 {
		return
	}
	free := innerMain - lineTargetMain(line, mainGap, row)

	offset := 0.0
	spacing := 0.0
	n := float64(len(line.items))
	switch justify {
	case style.JustifyStart:
	case style.JustifyEnd:
		offset = free
	case style.JustifyCenter:
		offset = free / 2
	case style.JustifySpaceBetween:
		if len(line.items) > 1 {
			spacing = maxFloat(free, 0) / (n - 1)
		}
	case style.JustifySpaceAround:
		spacing = maxFloat(free, 0) / n
		offset = spacing / 2
	case style.JustifySpaceEvenly:
		spacing = maxFloat(free, 0) / (n + 1)
		offset = spacing
	}

	pos := offset
	for _, it := range line.items {
		it.mainPos = pos
		pos += it.outerTargetMain(row) + mainGap + spacing
	}

	if reverse {
		for _, it := range line.items {
			it.mainPos = innerMain - it.mainPos - it.outerTargetMain(row)
		}
	}
}

// alignItemCross returns an item's cross offset within its line per
// the effective alignment. Stretched items were already sized to the
// line, so stretch behaves as start.
func alignItemCross(it *flexItem, line *flexLine, row bool) float64 {
	switch it.align {
	case style.AlignItemsEnd:
		return line.crossSize - it.outerCross(row)
	case style.AlignItemsCenter:
		return (line.crossSize - it.outerCross(row)) / 2
	default:
		return 0
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// shrinkDefinite reduces definite available space by delta, flooring
// at zero; content requests pass through.
func shrinkDefinite(space AvailableSpace, delta float64) AvailableSpace {
	if v, ok := space.Get(); ok {
		return Definite(maxFloat(v-delta, 0))
	}
	return space
}

// sizeFromAxes assembles a Size from main/cross components.
func sizeFromAxes(row bool, main, cross float64) geometry.Size {
	if row {
		return geometry.Size{Width: main, Height: cross}
	}
	return geometry.Size{Width: cross, Height: main}
}

// locationFromAxes assembles a Point from main/cross components.
func locationFromAxes(row bool, main, cross float64) geometry.Point {
	if row {
		return geometry.Point{X: main, Y: cross}
	}
	return geometry.Point{X: cross, Y: main}
}
