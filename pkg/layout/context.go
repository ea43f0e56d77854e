package layout

import (
	"go.uber.org/zap"

	"github.com/duanebester/gooey-sub004/internal/debug"
)

// Default capacity limits. Every per-frame collection is bounded so no frame
// can allocate unboundedly; exceeding a limit is a CapacityError, not
// undefined behavior.
const (
	DefaultMaxElements = 8192
	DefaultMaxDepth    = 128
	DefaultMaxFloating = 256
	DefaultMaxLines    = 8192
	DefaultMaxWords    = 2048
	DefaultMaxCommands = 16384
	DefaultArenaBytes  = 1 << 20
)

// Context is one layout engine instance. It is owned and driven by exactly
// one goroutine at a time; the whole declare/compute cycle for a frame runs
// synchronously inside BeginFrame..EndFrame with no internal goroutines.
type Context struct {
	arena    *Arena
	elements []Element
	commands []Command
	lines    []WrappedLine
	words    []measuredWord

	openStack     []int32
	floatingRoots []int32
	idIndex       map[ID]int32

	viewport Dimensions
	measurer TextMeasurer
	logger   *zap.Logger

	maxElements int
	maxDepth    int
	maxFloating int
	maxLines    int
	maxWords    int
	maxCommands int

	idSeq    uint32
	inFrame  bool
	frameNum uint64
}

// Option configures a Context.
type Option func(*Context)

// WithMaxElements bounds the number of elements per frame.
func WithMaxElements(n int) Option {
	return func(c *Context) { c.maxElements = n }
}

// WithMaxDepth bounds the open-element stack depth.
func WithMaxDepth(n int) Option {
	return func(c *Context) { c.maxDepth = n }
}

// WithMaxFloating bounds the number of floating roots per frame.
func WithMaxFloating(n int) Option {
	return func(c *Context) { c.maxFloating = n }
}

// WithMaxLines bounds the total wrapped text lines per frame.
func WithMaxLines(n int) Option {
	return func(c *Context) { c.maxLines = n }
}

// WithMaxWords bounds the total measured words per frame.
func WithMaxWords(n int) Option {
	return func(c *Context) { c.maxWords = n }
}

// WithMaxCommands bounds the emitted render commands per frame.
func WithMaxCommands(n int) Option {
	return func(c *Context) { c.maxCommands = n }
}

// WithArenaBytes sets the frame arena's byte capacity.
func WithArenaBytes(n int) Option {
	return func(c *Context) { c.arena = NewArena(n) }
}

// WithMeasurer sets the text measurement collaborator. Without one, a crude
// character-count heuristic is used.
func WithMeasurer(m TextMeasurer) Option {
	return func(c *Context) { c.measurer = m }
}

// WithLogger sets the diagnostics logger. The default logs only when the
// GOOEY_DEBUG environment variable names a file.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) { c.logger = l }
}

// New creates a layout Context. All backing storage is allocated up front;
// steady-state frames do not touch the heap.
func New(opts ...Option) *Context {
	c := &Context{
		maxElements: DefaultMaxElements,
		maxDepth:    DefaultMaxDepth,
		maxFloating: DefaultMaxFloating,
		maxLines:    DefaultMaxLines,
		maxWords:    DefaultMaxWords,
		maxCommands: DefaultMaxCommands,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.arena == nil {
		c.arena = NewArena(DefaultArenaBytes)
	}
	if c.measurer == nil {
		c.measurer = heuristicMeasurer{}
	}
	if c.logger == nil {
		c.logger = debug.Logger()
	}
	c.elements = make([]Element, 0, c.maxElements)
	c.commands = make([]Command, 0, c.maxCommands)
	c.lines = make([]WrappedLine, 0, c.maxLines)
	c.words = make([]measuredWord, 0, c.maxWords)
	c.openStack = make([]int32, 0, c.maxDepth)
	c.floatingRoots = make([]int32, 0, c.maxFloating)
	c.idIndex = make(map[ID]int32, c.maxElements)
	return c
}

// BeginFrame resets all per-frame state and starts declaring a new frame at
// the given viewport size. The previous frame's elements, commands, and
// arena contents are invalidated in O(1) plus the id-index clear.
func (c *Context) BeginFrame(width, height float32) {
	c.arena.Reset()
	c.elements = c.elements[:0]
	c.commands = c.commands[:0]
	c.lines = c.lines[:0]
	c.openStack = c.openStack[:0]
	c.floatingRoots = c.floatingRoots[:0]
	clear(c.idIndex)
	c.viewport = Dimensions{Width: width, Height: height}
	c.idSeq = 0
	c.inFrame = true
	c.frameNum++
}

// Open declares a container element and makes it the parent of subsequent
// declarations until the matching Close. On id collision (two declarations
// hashing to the same non-zero id) the last registration wins the id index;
// the collision is logged through the diagnostics logger.
//
// A CapacityError return means the declaration was dropped; the tree is
// still well-formed and the caller must skip the matching Close.
func (c *Context) Open(decl Declaration) error {
	if !c.inFrame {
		panic("layout: Open called outside BeginFrame/EndFrame")
	}
	if len(c.openStack) >= c.maxDepth {
		return &CapacityError{Resource: ResourceOpenStack, Limit: c.maxDepth}
	}
	idx, err := c.addElement(decl, kindContainer)
	if err != nil {
		return err
	}
	c.openStack = append(c.openStack, idx)
	return nil
}

// Close pops the most recently opened element. Calling Close with no open
// element is a programmer error in the builder layer and panics.
func (c *Context) Close() {
	if len(c.openStack) == 0 {
		panic("layout: Close without matching Open")
	}
	c.openStack = c.openStack[:len(c.openStack)-1]
}

// Text declares a text leaf under the currently open element. The content is
// copied into the frame arena, so the caller's string may be rebuilt or
// reused immediately.
func (c *Context) Text(content string, cfg TextConfig) error {
	c.requireOpen("Text")
	copied, err := c.arena.String(content)
	if err != nil {
		return err
	}
	idx, err := c.addElement(Declaration{}, kindText)
	if err != nil {
		return err
	}
	e := &c.elements[idx]
	e.text = copied
	e.textConfig = cfg
	e.lineStart = noIndex
	return nil
}

// Image declares an image leaf under the currently open element.
func (c *Context) Image(cfg ImageConfig) error {
	c.requireOpen("Image")
	return c.addLeaf(Declaration{Image: &cfg}, kindImage)
}

// SVG declares a vector-shape leaf under the currently open element.
func (c *Context) SVG(cfg SVGConfig) error {
	c.requireOpen("SVG")
	return c.addLeaf(Declaration{SVG: &cfg}, kindSVG)
}

// Canvas reserves a draw region for caller-side custom rendering under the
// currently open element.
func (c *Context) Canvas(cfg CanvasConfig) error {
	c.requireOpen("Canvas")
	return c.addLeaf(Declaration{Canvas: &cfg}, kindCanvas)
}

func (c *Context) addLeaf(decl Declaration, kind elementKind) error {
	_, err := c.addElement(decl, kind)
	return err
}

// requireOpen panics if no container is open. Leaves require a parent;
// violating that indicates a buggy builder layer, not bad data.
func (c *Context) requireOpen(op string) {
	if !c.inFrame {
		panic("layout: " + op + " called outside BeginFrame/EndFrame")
	}
	if len(c.openStack) == 0 {
		panic("layout: " + op + " requires an open element")
	}
}

// addElement allocates an element and links it as the last child of the
// current stack top. Child linking is O(1) via the maintained lastChild
// index.
func (c *Context) addElement(decl Declaration, kind elementKind) (int32, error) {
	if len(c.elements) >= c.maxElements {
		return noIndex, &CapacityError{Resource: ResourceElements, Limit: c.maxElements}
	}
	floating := decl.Floating.AttachTo != AttachToNone
	if floating && len(c.floatingRoots) >= c.maxFloating {
		return noIndex, &CapacityError{Resource: ResourceFloating, Limit: c.maxFloating}
	}

	idx := int32(len(c.elements))
	c.elements = append(c.elements, Element{
		ID:             decl.ID,
		kind:           kind,
		decl:           decl,
		parent:         noIndex,
		firstChild:     noIndex,
		lastChild:      noIndex,
		nextSibling:    noIndex,
		lineStart:      noIndex,
		floatingParent: noIndex,
	})
	e := &c.elements[idx]

	if e.ID == 0 {
		// Anonymous elements get a frame-stable generated id so post-hoc
		// queries and z-index caching still work.
		c.idSeq++
		e.ID = HashIndexed("gooey#anon", c.idSeq)
	}
	if prev, ok := c.idIndex[e.ID]; ok && decl.ID != 0 {
		c.logger.Warn("duplicate element id",
			zap.Uint32("id", uint32(e.ID)),
			zap.Int32("firstIndex", prev),
			zap.Int32("newIndex", idx),
		)
	}
	// Last write wins, deterministically.
	c.idIndex[e.ID] = idx

	e.inFloatingSubtree = floating
	if len(c.openStack) > 0 {
		parentIdx := c.openStack[len(c.openStack)-1]
		p := &c.elements[parentIdx]
		e.parent = parentIdx
		e.inFloatingSubtree = floating || p.inFloatingSubtree
		if p.lastChild == noIndex {
			p.firstChild = idx
		} else {
			c.elements[p.lastChild].nextSibling = idx
		}
		p.lastChild = idx
		p.childCount++
		if floating {
			p.floatingChildCount++
		}
	}

	if floating {
		// Capture the attach target now so the overlay pass needs no lookup.
		switch decl.Floating.AttachTo {
		case AttachToParent:
			e.floatingParent = e.parent
		case AttachToElement:
			if target, ok := c.idIndex[decl.Floating.ParentID]; ok {
				e.floatingParent = target
			} else {
				c.logger.Warn("floating attach target not declared yet; attaching to root",
					zap.Uint32("id", uint32(decl.Floating.ParentID)))
			}
		}
		c.floatingRoots = append(c.floatingRoots, idx)
	}
	return idx, nil
}

// EndFrame finishes the declared tree, runs the sizing, wrapping, position,
// floating, and render passes, and returns the ordered command list. The
// returned slice is valid until the next BeginFrame.
//
// An unbalanced Open (non-empty open stack) is a programmer error and
// panics: the tree's invariants can no longer be trusted.
func (c *Context) EndFrame() ([]Command, error) {
	if !c.inFrame {
		panic("layout: EndFrame without BeginFrame")
	}
	if len(c.openStack) != 0 {
		panic("layout: EndFrame with unclosed elements")
	}
	c.inFrame = false

	if len(c.elements) == 0 {
		return c.commands, nil
	}

	if err := c.measureText(); err != nil {
		return nil, err
	}
	c.computeMinimums(true)
	c.computeMinimums(false)
	for _, root := range c.rootIndices() {
		c.resolveFinalSizes(root, c.viewport.Width, c.viewport.Height)
	}
	if err := c.wrapAllText(); err != nil {
		return nil, err
	}
	for _, root := range c.rootIndices() {
		c.assignPositions(root, 0, 0)
	}
	if err := c.layoutFloating(); err != nil {
		return nil, err
	}
	if err := c.emitCommands(); err != nil {
		return nil, err
	}
	return c.commands, nil
}

// rootIndices returns the indices of top-level, non-floating elements in
// declaration order.
func (c *Context) rootIndices() []int32 {
	// Roots are rare (normally one); collect them on the stack slice, which
	// is empty by the time EndFrame runs.
	roots := c.openStack[:0]
	for i := range c.elements {
		if c.elements[i].parent == noIndex && !c.elements[i].isFloating() {
			roots = append(roots, int32(i))
		}
	}
	return roots
}

// Viewport returns the current frame's viewport dimensions.
func (c *Context) Viewport() Dimensions {
	return c.viewport
}

// BoundingBox returns the computed bounding box of the element with the
// given id from the last completed frame.
func (c *Context) BoundingBox(id ID) (Rect, bool) {
	if idx, ok := c.idIndex[id]; ok {
		return c.elements[idx].box, true
	}
	return Rect{}, false
}

// ContentBox returns the computed padding-inset content box of the element
// with the given id from the last completed frame.
func (c *Context) ContentBox(id ID) (Rect, bool) {
	if idx, ok := c.idIndex[id]; ok {
		return c.elements[idx].content, true
	}
	return Rect{}, false
}

// ZIndex returns the effective z-index of the element with the given id from
// the last completed frame.
func (c *Context) ZIndex(id ID) (int16, bool) {
	if idx, ok := c.idIndex[id]; ok {
		return c.elements[idx].zIndex, true
	}
	return 0, false
}

// Element returns the element with the given id from the current frame, or
// nil if no such id was declared.
func (c *Context) Element(id ID) *Element {
	if idx, ok := c.idIndex[id]; ok {
		return &c.elements[idx]
	}
	return nil
}
