package layout

import "unicode/utf8"

// TextMeasurer is the caller-supplied text measurement collaborator. The
// engine invokes it once per word and once for the space character per text
// element. Implementations carry whatever shaping context they need.
type TextMeasurer interface {
	Measure(text string, cfg TextConfig) Dimensions
}

// MeasureFunc adapts a plain function to the TextMeasurer interface.
type MeasureFunc func(text string, cfg TextConfig) Dimensions

// Measure implements TextMeasurer.
func (f MeasureFunc) Measure(text string, cfg TextConfig) Dimensions {
	return f(text, cfg)
}

// heuristicMeasurer approximates text size as charCount*fontSize*constant.
// It is the fallback when no measurer is injected; real rendering needs a
// proper shaping backend.
type heuristicMeasurer struct{}

const heuristicAdvance = 0.6

func (heuristicMeasurer) Measure(text string, cfg TextConfig) Dimensions {
	size := float32(cfg.FontSize)
	if size == 0 {
		size = 16
	}
	n := utf8.RuneCountInString(text)
	return Dimensions{
		Width:  float32(n) * size * heuristicAdvance,
		Height: size,
	}
}

// measuredWord is one token of a text scan: a run of non-space, non-newline
// bytes with its measured width, or a forced line break.
type measuredWord struct {
	start, end int32
	width      float32
	newline    bool
}

// measureText scans every non-floating-independent text element once,
// measuring each word exactly once and the space character once per element,
// and records the pre-wrap minimum/preferred widths.
func (c *Context) measureText() error {
	c.words = c.words[:0]
	for i := range c.elements {
		e := &c.elements[i]
		if e.kind != kindText {
			continue
		}
		if err := c.scanWords(e); err != nil {
			return err
		}
	}
	return nil
}

// scanWords tokenizes one element's text at word boundaries. Malformed UTF-8
// is carried through byte-wise; the scan never fails on encoding, only on
// capacity.
func (c *Context) scanWords(e *Element) error {
	space := c.measurer.Measure(" ", e.textConfig)
	e.spaceWidth = space.Width + float32(e.textConfig.LetterSpacing)
	e.lineHeight = float32(e.textConfig.LineHeight)
	e.wordStart = int32(len(c.words))

	text := e.text
	var widest, lineWidth, prefWidth, measuredH float32
	lines := int32(1)
	wordsOnLine := 0
	start := -1

	flushWord := func(end int) error {
		if start < 0 {
			return nil
		}
		if len(c.words) >= c.maxWords {
			return &CapacityError{Resource: ResourceWords, Limit: c.maxWords}
		}
		word := text[start:end]
		dims := c.measurer.Measure(word, e.textConfig)
		measuredH = maxf(measuredH, dims.Height)
		c.words = append(c.words, measuredWord{
			start: int32(start),
			end:   int32(end),
			width: dims.Width,
		})
		widest = maxf(widest, dims.Width)
		if wordsOnLine > 0 {
			lineWidth += e.spaceWidth
		}
		lineWidth += dims.Width
		wordsOnLine++
		start = -1
		return nil
	}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ':
			if err := flushWord(i); err != nil {
				return err
			}
		case '\n':
			if err := flushWord(i); err != nil {
				return err
			}
			if len(c.words) >= c.maxWords {
				return &CapacityError{Resource: ResourceWords, Limit: c.maxWords}
			}
			c.words = append(c.words, measuredWord{start: int32(i), end: int32(i + 1), newline: true})
			prefWidth = maxf(prefWidth, lineWidth)
			lineWidth = 0
			wordsOnLine = 0
			lines++
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if err := flushWord(len(text)); err != nil {
		return err
	}
	prefWidth = maxf(prefWidth, lineWidth)

	e.wordCount = int32(len(c.words)) - e.wordStart
	e.forcedLines = lines
	if e.lineHeight == 0 {
		e.lineHeight = maxf(measuredH, space.Height)
	}
	e.textPrefWidth = prefWidth
	if e.textConfig.Wrap == WrapWords {
		e.textMinWidth = widest
	} else {
		e.textMinWidth = prefWidth
	}
	return nil
}

// measureTextElement returns the (minimum, preferred) content extent of a
// text element along the axis, from the pre-wrap scan.
func (c *Context) measureTextElement(e *Element, xAxis bool) (float32, float32) {
	if xAxis {
		return e.textMinWidth, e.textPrefWidth
	}
	h := e.lineHeight * float32(e.forcedLines)
	return h, h
}

// wrapAllText wraps every text element in normal flow against its resolved
// width and propagates resulting height changes through fit-sized ancestors.
// Text inside floating subtrees is wrapped by the overlay pass instead, once
// its constraints are known.
func (c *Context) wrapAllText() error {
	for i := range c.elements {
		e := &c.elements[i]
		if e.kind != kindText || e.inFloatingSubtree {
			continue
		}
		if err := c.wrapElement(int32(i)); err != nil {
			return err
		}
	}
	return nil
}

// wrapElement greedily packs the element's measured words into lines against
// its resolved width. A word wider than the container gets a line of its
// own rather than being split.
func (c *Context) wrapElement(idx int32) error {
	e := &c.elements[idx]
	maxWidth := e.width
	noWrap := e.textConfig.Wrap != WrapWords

	e.lineStart = int32(len(c.lines))
	e.lineCount = 0

	var cur WrappedLine
	var widestLine float32
	curEmpty := true
	flushLine := func() error {
		if len(c.lines) >= c.maxLines {
			return &CapacityError{Resource: ResourceLines, Limit: c.maxLines}
		}
		c.lines = append(c.lines, cur)
		e.lineCount++
		widestLine = maxf(widestLine, cur.Width)
		cur = WrappedLine{}
		curEmpty = true
		return nil
	}

	words := c.words[e.wordStart : e.wordStart+e.wordCount]
	for _, w := range words {
		if w.newline {
			if err := flushLine(); err != nil {
				return err
			}
			continue
		}
		switch {
		case curEmpty:
			cur = WrappedLine{Start: w.start, End: w.end, Width: w.width}
			curEmpty = false
		case noWrap || cur.Width+e.spaceWidth+w.width <= maxWidth:
			cur.End = w.end
			cur.Width += e.spaceWidth + w.width
		default:
			if err := flushLine(); err != nil {
				return err
			}
			cur = WrappedLine{Start: w.start, End: w.end, Width: w.width}
			curEmpty = false
		}
	}
	if !curEmpty {
		if err := flushLine(); err != nil {
			return err
		}
	}

	// A fit-width element hugs its widest packed line, so line alignment and
	// the reported box reflect the post-wrap extent, not the pre-wrap one.
	if a := e.sizing(true); a.Type == SizingFit {
		e.width = maxf(a.clamp(widestLine), e.minWidth)
	}

	newHeight := e.lineHeight * float32(e.lineCount)
	if newHeight != e.height {
		e.height = newHeight
		c.propagateFitHeights(e.parent)
	}
	return nil
}

// propagateFitHeights re-aggregates heights up the ancestor chain, stopping
// at the first ancestor whose height policy is not fit (its box cannot move
// in response to content).
func (c *Context) propagateFitHeights(idx int32) {
	for idx != noIndex {
		e := &c.elements[idx]
		a := e.sizing(false)
		if a.Type != SizingFit {
			return
		}
		var h float32
		n := 0
		for ci := e.firstChild; ci != noIndex; ci = c.elements[ci].nextSibling {
			child := &c.elements[ci]
			if child.isFloating() {
				continue
			}
			if e.decl.Layout.Direction == TopToBottom {
				h += child.height
			} else {
				h = maxf(h, child.height)
			}
			n++
		}
		if e.decl.Layout.Direction == TopToBottom && n > 1 {
			h += float32(e.decl.Layout.ChildGap) * float32(n-1)
		}
		h += e.decl.Layout.Padding.Vertical()
		h = maxf(a.clamp(h), e.minHeight)
		if h == e.height {
			return
		}
		e.height = h
		if e.isFloating() {
			// Floating boxes never push on their normal-flow ancestors.
			return
		}
		idx = e.parent
	}
}
