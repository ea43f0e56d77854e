package layout

// layoutFloating runs the decoupled size+position pass for floating roots,
// in declaration order. Each root attaches to a reference box resolved at
// creation time (its parent, a named ancestor, or the viewport), is sized
// against the viewport or the reference box, wrapped, clamped into the
// viewport, and then positions its own subtree.
func (c *Context) layoutFloating() error {
	for _, idx := range c.floatingRoots {
		e := &c.elements[idx]
		cfg := e.decl.Floating

		ref := Rect{Width: c.viewport.Width, Height: c.viewport.Height}
		if e.floatingParent != noIndex {
			ref = c.elements[e.floatingParent].box
		}

		offeredW := c.viewport.Width
		offeredH := c.viewport.Height
		if cfg.MatchWidth {
			offeredW = ref.Width
		}
		if cfg.MatchHeight {
			offeredH = ref.Height
		}

		c.resolveFinalSizes(idx, offeredW, offeredH)
		if err := c.wrapSubtree(idx); err != nil {
			return err
		}

		e = &c.elements[idx] // wrap may have updated the root's size
		refX, refY := cfg.AttachAt.fractions()
		ownX, ownY := cfg.Anchor.fractions()
		x := ref.X + ref.Width*refX - e.width*ownX + cfg.Offset.X
		y := ref.Y + ref.Height*refY - e.height*ownY + cfg.Offset.Y

		// Keep the whole box inside the viewport.
		x = clampf(x, 0, maxf(0, c.viewport.Width-e.width))
		y = clampf(y, 0, maxf(0, c.viewport.Height-e.height))

		c.assignPositions(idx, x, y)
	}
	return nil
}

// wrapSubtree wraps all text inside a floating subtree once its constraints
// are known. Height changes re-propagate through fit ancestors up to the
// floating root so the subtree can re-settle before positioning.
func (c *Context) wrapSubtree(root int32) error {
	return c.walkSubtree(root, func(idx int32) error {
		if c.elements[idx].kind != kindText {
			return nil
		}
		return c.wrapElement(idx)
	})
}

// walkSubtree visits the subtree rooted at root in pre-order, skipping
// nested floating roots (they run their own overlay pass).
func (c *Context) walkSubtree(root int32, fn func(int32) error) error {
	if err := fn(root); err != nil {
		return err
	}
	for ci := c.elements[root].firstChild; ci != noIndex; ci = c.elements[ci].nextSibling {
		if c.elements[ci].isFloating() {
			continue
		}
		if err := c.walkSubtree(ci, fn); err != nil {
			return err
		}
	}
	return nil
}
