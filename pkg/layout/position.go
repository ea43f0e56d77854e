package layout

// assignPositions places the element at (x, y) and lays out its subtree,
// depth-first. Children advance a cursor along the main axis; the starting
// offset and effective gap come from the distribution mode, and each child
// is aligned independently on the cross axis. A scroll container's offset
// shifts the cursor before placement; clipping is the renderer's job.
func (c *Context) assignPositions(idx int32, x, y float32) {
	e := &c.elements[idx]
	e.box = Rect{X: x, Y: y, Width: e.width, Height: e.height}
	e.content = e.box.Inset(e.decl.Layout.Padding)

	n := e.childCount - e.floatingChildCount
	if n <= 0 {
		return
	}

	xMain := e.decl.Layout.Direction == LeftToRight
	contentMain := extent(e.content, xMain)
	contentCross := extent(e.content, !xMain)

	var childTotal float32
	for ci := e.firstChild; ci != noIndex; ci = c.elements[ci].nextSibling {
		child := &c.elements[ci]
		if !child.isFloating() {
			childTotal += child.size(xMain)
		}
	}

	declaredGap := float32(e.decl.Layout.ChildGap)
	gap, startOffset := distribution(e.decl.Layout.Justify, contentMain, childTotal, declaredGap, int(n))

	cursor := startOffset
	if e.decl.Scroll.enabled() {
		if xMain {
			cursor -= e.decl.Scroll.Offset.X
		} else {
			cursor -= e.decl.Scroll.Offset.Y
		}
	}
	crossScroll := float32(0)
	if e.decl.Scroll.enabled() {
		if xMain {
			crossScroll = e.decl.Scroll.Offset.Y
		} else {
			crossScroll = e.decl.Scroll.Offset.X
		}
	}

	for ci := e.firstChild; ci != noIndex; ci = c.elements[ci].nextSibling {
		child := &c.elements[ci]
		if child.isFloating() {
			continue
		}
		cross := alignOffset(e.decl.Layout.Align, contentCross, child.size(!xMain)) - crossScroll

		var cx, cy float32
		if xMain {
			cx = e.content.X + cursor
			cy = e.content.Y + cross
		} else {
			cx = e.content.X + cross
			cy = e.content.Y + cursor
		}
		c.assignPositions(ci, cx, cy)
		cursor += child.size(xMain) + gap
	}
}

// extent returns a rect's size along the given axis.
func extent(r Rect, xAxis bool) float32 {
	if xAxis {
		return r.Width
	}
	return r.Height
}

// distribution derives the effective inter-child gap and starting offset
// from the main-axis distribution mode. remaining is the space left over
// after the children themselves; the space_* modes redistribute it and
// ignore the declared gap.
func distribution(j Justify, contentMain, childTotal, declaredGap float32, n int) (gap, offset float32) {
	switch j {
	case JustifySpaceBetween:
		if n > 1 {
			return (contentMain - childTotal) / float32(n-1), 0
		}
		return declaredGap, 0
	case JustifySpaceAround:
		g := (contentMain - childTotal) / float32(n)
		return g, g / 2
	case JustifySpaceEvenly:
		g := (contentMain - childTotal) / float32(n+1)
		return g, g
	case JustifyCenter:
		span := childTotal + declaredGap*float32(n-1)
		return declaredGap, (contentMain - span) / 2
	case JustifyEnd:
		span := childTotal + declaredGap*float32(n-1)
		return declaredGap, contentMain - span
	default: // JustifyStart
		return declaredGap, 0
	}
}

// alignOffset positions a child on the cross axis within the content extent.
func alignOffset(a Align, cross, childSize float32) float32 {
	switch a {
	case AlignCenter:
		return (cross - childSize) / 2
	case AlignEnd:
		return cross - childSize
	default: // AlignStart
		return 0
	}
}
