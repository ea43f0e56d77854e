package layout

// The sizing pipeline runs in two phases per axis. Phase A walks the tree
// bottom-up computing each element's minimum (the shrink floor) and preferred
// (the size it wants when space allows). Phase B walks top-down resolving
// final sizes, distributing each container's content box among its children
// along the main axis.
//
// Elements are stored append-only, so a parent's index is always lower than
// its children's; iterating the array backwards is a valid post-order and
// forwards a valid pre-order.

// computeMinimums runs Phase A for one axis.
func (c *Context) computeMinimums(xAxis bool) {
	for i := len(c.elements) - 1; i >= 0; i-- {
		e := &c.elements[i]
		contentMin, contentPref := c.contentSize(e, xAxis)

		a := e.sizing(xAxis)
		var min, pref float32
		switch a.Type {
		case SizingFixed:
			min, pref = a.Min, a.Min
		case SizingPercent:
			// Percent resolves against the parent later; only an explicit
			// clamp floor can inflate ancestors.
			min, pref = a.Min, a.Min
		case SizingGrow:
			min = a.clamp(contentMin)
			pref = min
		default: // SizingFit
			min = a.clamp(contentMin)
			if a.hasMax() {
				pref = a.Max
			} else {
				pref = a.clamp(contentPref)
			}
			if pref < min {
				pref = min
			}
		}
		e.setMinSize(xAxis, min)
		e.setPrefSize(xAxis, pref)
	}
}

// contentSize returns the (minimum, preferred) extent of an element's own
// content along the axis: measured payload for leaves, aggregated children
// plus gaps for containers, plus padding in both cases. Floating children
// never contribute, and a scrollable axis contributes padding only.
func (c *Context) contentSize(e *Element, xAxis bool) (float32, float32) {
	pad := e.decl.Layout.Padding.axis(xAxis)

	switch e.kind {
	case kindText:
		min, pref := c.measureTextElement(e, xAxis)
		return min + pad, pref + pad
	case kindImage:
		if xAxis {
			return 0, e.decl.Image.SourceDims.Width
		}
		return 0, e.decl.Image.SourceDims.Height
	case kindSVG:
		if xAxis {
			return 0, e.decl.SVG.Dims.Width
		}
		return 0, e.decl.SVG.Dims.Height
	case kindCanvas:
		return 0, 0
	}

	if e.decl.Scroll.axis(xAxis) {
		return pad, pad
	}

	mainAxis := (e.decl.Layout.Direction == LeftToRight) == xAxis
	gap := float32(e.decl.Layout.ChildGap)
	var min, pref float32
	n := 0
	for ci := e.firstChild; ci != noIndex; ci = c.elements[ci].nextSibling {
		child := &c.elements[ci]
		if child.isFloating() {
			continue
		}
		if mainAxis {
			min += child.minSize(xAxis)
			pref += child.prefSize(xAxis)
		} else {
			min = maxf(min, child.minSize(xAxis))
			pref = maxf(pref, child.prefSize(xAxis))
		}
		n++
	}
	if mainAxis && n > 1 {
		total := gap * float32(n-1)
		min += total
		pref += total
	}
	return min + pad, pref + pad
}

// resolveFinalSizes runs Phase B for the subtree at root, given the space
// its parent (or the viewport) offers on each axis.
func (c *Context) resolveFinalSizes(root int32, offeredW, offeredH float32) {
	e := &c.elements[root]
	e.width = c.resolveOwnSize(e, true, offeredW)
	e.height = c.resolveOwnSize(e, false, offeredH)
	if e.decl.AspectRatio > 0 {
		// Width resolves first in this pipeline, so the ratio always derives
		// height from width.
		e.height = e.width / e.decl.AspectRatio
	}
	c.sizeChildren(root, true)
	c.sizeChildren(root, false)
}

// resolveOwnSize resolves one axis of an element's box from its sizing
// policy and the space offered to it.
func (c *Context) resolveOwnSize(e *Element, xAxis bool, offered float32) float32 {
	a := e.sizing(xAxis)
	var v float32
	switch a.Type {
	case SizingFixed:
		v = a.Min
	case SizingGrow:
		v = a.clamp(offered)
	case SizingPercent:
		v = a.clamp(offered * a.Percent)
	default: // SizingFit
		// Content-sized; may overflow the offered space (clipping is the
		// renderer's concern).
		v = e.prefSize(xAxis)
	}
	return maxf(v, e.minSize(xAxis))
}

// sizeChildren resolves the given axis for all non-floating children of the
// element at idx, then recurses. Along the element's main axis the content
// box is distributed between the children; along the cross axis each child
// independently resolves against the full content extent.
func (c *Context) sizeChildren(idx int32, xAxis bool) {
	e := &c.elements[idx]
	if e.firstChild == noIndex {
		return
	}
	content := e.size(xAxis) - e.decl.Layout.Padding.axis(xAxis)
	if content < 0 {
		content = 0
	}

	mainAxis := (e.decl.Layout.Direction == LeftToRight) == xAxis
	if mainAxis {
		c.distributeMain(idx, xAxis, content)
	} else {
		scrollAxis := e.decl.Scroll.axis(xAxis)
		for ci := e.firstChild; ci != noIndex; ci = c.elements[ci].nextSibling {
			child := &c.elements[ci]
			if child.isFloating() {
				continue
			}
			v := c.resolveOwnSize(child, xAxis, content)
			// Off-axis, a child never exceeds the inner extent: text wrap
			// constraints come from this size, so an uncapped preferred
			// width here would defeat wrapping in column containers. A
			// scrollable axis keeps the overflow; scrolling is its point.
			if !scrollAxis && v > content {
				v = maxf(content, child.minSize(xAxis))
			}
			child.setSize(xAxis, v)
			c.applyAspect(child, xAxis)
		}
	}

	for ci := e.firstChild; ci != noIndex; ci = c.elements[ci].nextSibling {
		if !c.elements[ci].isFloating() {
			c.sizeChildren(ci, xAxis)
		}
	}
}

// applyAspect derives the height from the width once the width axis has been
// resolved, for elements declaring an aspect ratio.
func (c *Context) applyAspect(e *Element, xAxis bool) {
	if !xAxis && e.decl.AspectRatio > 0 {
		e.height = e.width / e.decl.AspectRatio
	}
}

// distributeMain splits a container's content extent among its non-floating
// children along the main axis.
func (c *Context) distributeMain(idx int32, xAxis bool, content float32) {
	e := &c.elements[idx]
	n := e.childCount - e.floatingChildCount
	if n <= 0 {
		return
	}
	gapTotal := float32(e.decl.Layout.ChildGap) * float32(n-1)

	// Fast path: every non-floating child is an unconstrained grow element on
	// both axes, so the available space splits evenly in one pass. The stored
	// child counts make the correction for floating children free.
	if c.allUnconstrainedGrow(e) {
		share := (content - gapTotal) / float32(n)
		if share < 0 {
			share = 0
		}
		for ci := e.firstChild; ci != noIndex; ci = c.elements[ci].nextSibling {
			child := &c.elements[ci]
			if child.isFloating() {
				continue
			}
			child.setSize(xAxis, share)
			c.applyAspect(child, xAxis)
		}
		return
	}

	// Slow path, first pass: desired sizes and totals.
	var totalNonGrow, growMinTotal float32
	numGrow := 0
	for ci := e.firstChild; ci != noIndex; ci = c.elements[ci].nextSibling {
		child := &c.elements[ci]
		if child.isFloating() {
			continue
		}
		if child.sizing(xAxis).Type == SizingGrow {
			growMinTotal += child.minSize(xAxis)
			numGrow++
		} else {
			totalNonGrow += c.desiredSize(child, xAxis, content)
		}
	}

	remainder := content - gapTotal - totalNonGrow - growMinTotal
	if remainder < 0 {
		// Shrink: scale fit/percent children down proportionally, each
		// floored at its own minimum; grow children collapse to their
		// minimum; fixed children keep their size.
		overflow := -remainder
		scale := float32(0)
		if totalNonGrow > 0 {
			scale = maxf(0, 1-overflow/totalNonGrow)
		}
		for ci := e.firstChild; ci != noIndex; ci = c.elements[ci].nextSibling {
			child := &c.elements[ci]
			if child.isFloating() {
				continue
			}
			a := child.sizing(xAxis)
			switch a.Type {
			case SizingGrow:
				child.setSize(xAxis, child.minSize(xAxis))
			case SizingFixed:
				child.setSize(xAxis, a.Min)
			default:
				desired := c.desiredSize(child, xAxis, content)
				child.setSize(xAxis, maxf(child.minSize(xAxis), desired*scale))
			}
			c.applyAspect(child, xAxis)
		}
		return
	}

	// Grow: non-grow children get their desired size exactly; the positive
	// remainder splits evenly across grow children, each floored at its own
	// minimum and capped at its own maximum.
	var growShare float32
	if numGrow > 0 {
		growShare = remainder / float32(numGrow)
	}
	for ci := e.firstChild; ci != noIndex; ci = c.elements[ci].nextSibling {
		child := &c.elements[ci]
		if child.isFloating() {
			continue
		}
		a := child.sizing(xAxis)
		if a.Type == SizingGrow {
			child.setSize(xAxis, maxf(child.minSize(xAxis), a.clamp(child.minSize(xAxis)+growShare)))
		} else {
			child.setSize(xAxis, c.desiredSize(child, xAxis, content))
		}
		c.applyAspect(child, xAxis)
	}
}

// desiredSize is a child's size before space distribution: fixed value,
// preferred size for fit and leaves, fraction of the offered content for
// percent, minimum for grow.
func (c *Context) desiredSize(e *Element, xAxis bool, content float32) float32 {
	a := e.sizing(xAxis)
	switch a.Type {
	case SizingFixed:
		return a.Min
	case SizingPercent:
		return a.clamp(content * a.Percent)
	case SizingGrow:
		return e.minSize(xAxis)
	default:
		return e.prefSize(xAxis)
	}
}

// allUnconstrainedGrow reports whether every non-floating child qualifies
// for the even-split fast path.
func (c *Context) allUnconstrainedGrow(e *Element) bool {
	for ci := e.firstChild; ci != noIndex; ci = c.elements[ci].nextSibling {
		child := &c.elements[ci]
		if child.isFloating() {
			continue
		}
		if child.decl.AspectRatio > 0 ||
			!child.sizing(true).isUnconstrainedGrow() ||
			!child.sizing(false).isUnconstrainedGrow() {
			return false
		}
	}
	return true
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampf(v, lo, hi float32) float32 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
