package layout

// noIndex is the sentinel for "no element" in tree links.
const noIndex = int32(-1)

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	LeftToRight Direction = iota // Children laid out horizontally
	TopToBottom                  // Children laid out vertically
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart  Align = iota // Align to start of cross axis
	AlignCenter              // Center on cross axis
	AlignEnd                 // Align to end of cross axis
)

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// withOpacity scales the alpha channel by opacity in [0, 1].
func (c Color) withOpacity(opacity float32) Color {
	if opacity >= 1 {
		return c
	}
	c.A = uint8(float32(c.A) * opacity)
	return c
}

// IsZero returns true for the fully transparent zero color.
func (c Color) IsZero() bool {
	return c == Color{}
}

// CornerRadius holds per-corner rounding in pixels.
type CornerRadius struct {
	TopLeft, TopRight, BottomLeft, BottomRight float32
}

// CornerRadiusAll creates a CornerRadius with the same value on all corners.
func CornerRadiusAll(r float32) CornerRadius {
	return CornerRadius{TopLeft: r, TopRight: r, BottomLeft: r, BottomRight: r}
}

// LayoutConfig holds the layout properties of an element.
type LayoutConfig struct {
	Sizing    Sizing
	Padding   Padding
	ChildGap  uint16
	Direction Direction
	Justify   Justify // Main-axis distribution
	Align     Align   // Cross-axis alignment of children
}

// BorderWidth holds per-edge border widths in pixels.
type BorderWidth struct {
	Left, Right, Top, Bottom uint16
}

// IsZero returns true if no edge has a border.
func (b BorderWidth) IsZero() bool {
	return b == BorderWidth{}
}

// BorderConfig describes an element's border.
type BorderConfig struct {
	Color Color
	Width BorderWidth
}

// ShadowConfig describes a drop shadow drawn behind the element.
type ShadowConfig struct {
	Color  Color
	Offset Vector2
	Blur   float32
	Spread float32
}

// ScrollConfig marks an element as a scroll container. Children are
// positioned with Offset subtracted; content outside the box is signaled to
// the renderer via scissor commands, not clipped here.
type ScrollConfig struct {
	Horizontal bool
	Vertical   bool
	Offset     Vector2
}

// enabled returns true if scrolling is on for either axis.
func (s ScrollConfig) enabled() bool {
	return s.Horizontal || s.Vertical
}

// axis returns whether scrolling is enabled along the given axis.
func (s ScrollConfig) axis(xAxis bool) bool {
	if xAxis {
		return s.Horizontal
	}
	return s.Vertical
}

// AttachPoint names an anchor on a box as a fraction of its extent.
type AttachPoint uint8

const (
	AttachLeftTop AttachPoint = iota
	AttachLeftCenter
	AttachLeftBottom
	AttachCenterTop
	AttachCenterCenter
	AttachCenterBottom
	AttachRightTop
	AttachRightCenter
	AttachRightBottom
)

// fractions returns the anchor as (fx, fy) fractions of a box's extent.
func (a AttachPoint) fractions() (float32, float32) {
	var fx, fy float32
	switch a {
	case AttachCenterTop, AttachCenterCenter, AttachCenterBottom:
		fx = 0.5
	case AttachRightTop, AttachRightCenter, AttachRightBottom:
		fx = 1
	}
	switch a {
	case AttachLeftCenter, AttachCenterCenter, AttachRightCenter:
		fy = 0.5
	case AttachLeftBottom, AttachCenterBottom, AttachRightBottom:
		fy = 1
	}
	return fx, fy
}

// AttachTo selects the reference box a floating element is positioned
// against.
type AttachTo uint8

const (
	AttachToNone    AttachTo = iota // Not floating
	AttachToParent                  // The direct parent's bounding box
	AttachToElement                 // A previously declared element, by ID
	AttachToRoot                    // The viewport
)

// FloatingConfig detaches an element from normal flow and positions it
// against a reference box. Floating elements never contribute to their
// parent's sizing.
type FloatingConfig struct {
	AttachTo AttachTo
	ParentID ID // Reference element when AttachTo == AttachToElement

	// Anchor on the reference box and on the element itself.
	AttachAt AttachPoint // Point on the reference box
	Anchor   AttachPoint // Point on this element placed at AttachAt

	Offset Vector2 // Extra pixel offset applied after anchoring
	ZIndex int16

	// Size-match the reference box instead of the viewport as the offered
	// constraint on an axis.
	MatchWidth  bool
	MatchHeight bool
}

// WrapMode specifies how text breaks into lines.
type WrapMode uint8

const (
	WrapWords    WrapMode = iota // Break at word boundaries
	WrapNewlines                 // Break only at forced newlines
	WrapNone                     // Never break
)

// TextConfig holds the styling of a text leaf.
type TextConfig struct {
	Color         Color
	FontID        uint16
	FontSize      uint16
	LetterSpacing uint16
	LineHeight    uint16 // 0 means use the measured height
	Wrap          WrapMode
	Align         TextAlign
}

// TextAlign specifies how wrapped lines sit within the element's width.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// ImageConfig holds an image leaf's payload. Data is an opaque handle passed
// through to the renderer untouched.
type ImageConfig struct {
	Data       any
	SourceDims Dimensions
}

// SVGConfig holds a vector-shape leaf's payload.
type SVGConfig struct {
	Data string
	Tint Color
	Dims Dimensions
}

// CanvasConfig reserves a draw region for caller-side custom rendering.
type CanvasConfig struct {
	Data any
}

// Declaration is the per-frame configuration of one element, passed to
// Context.Open.
type Declaration struct {
	ID              ID
	Layout          LayoutConfig
	BackgroundColor Color
	CornerRadius    CornerRadius
	AspectRatio     float32 // Width/height; 0 means none
	Opacity         float32 // 0 means opaque (1.0); multiplies down the tree
	Border          BorderConfig
	Shadow          ShadowConfig
	Scroll          ScrollConfig
	Floating        FloatingConfig
	Image           *ImageConfig
	SVG             *SVGConfig
	Canvas          *CanvasConfig
}

// elementKind discriminates leaf payloads.
type elementKind uint8

const (
	kindContainer elementKind = iota
	kindText
	kindImage
	kindSVG
	kindCanvas
)

// WrappedLine is one line of wrapped text: a byte range into the element's
// content plus its measured pixel width.
type WrappedLine struct {
	Start int32
	End   int32
	Width float32
}

// Element is one node in the per-frame tree. All cross-references are
// indices into the Context's element array, never pointers, so the store is
// trivially relocatable and frame reset invalidates nothing dangling.
type Element struct {
	ID   ID
	kind elementKind
	decl Declaration

	// Text payload
	text       string // arena copy
	textConfig TextConfig
	lineStart  int32 // range into Context.lines
	lineCount  int32
	lineHeight float32
	wordStart  int32 // range into Context.words
	wordCount  int32
	spaceWidth float32
	// Pre-wrap measurements: shrink floor, unwrapped width, forced line count.
	textMinWidth  float32
	textPrefWidth float32
	forcedLines   int32

	// Tree links (indices; noIndex means none)
	parent      int32
	firstChild  int32
	lastChild   int32
	nextSibling int32

	childCount         int32
	floatingChildCount int32
	inFloatingSubtree  bool

	// Computed results
	minWidth, minHeight   float32
	prefWidth, prefHeight float32
	width, height         float32
	box                   Rect
	content               Rect

	floatingParent int32 // resolved attach target for floating elements
	zIndex         int16 // cached effective z-index after emission
}

// BoundingBox returns the element's computed outer box.
func (e *Element) BoundingBox() Rect {
	return e.box
}

// ContentBox returns the computed box inside padding.
func (e *Element) ContentBox() Rect {
	return e.content
}

// isFloating reports whether the element is detached from normal flow.
func (e *Element) isFloating() bool {
	return e.decl.Floating.AttachTo != AttachToNone
}

// opacity returns the element's own declared opacity, treating 0 as opaque.
func (e *Element) opacity() float32 {
	if e.decl.Opacity <= 0 || e.decl.Opacity > 1 {
		return 1
	}
	return e.decl.Opacity
}

// size returns the resolved size along the given axis.
func (e *Element) size(xAxis bool) float32 {
	if xAxis {
		return e.width
	}
	return e.height
}

// setSize stores the resolved size along the given axis.
func (e *Element) setSize(xAxis bool, v float32) {
	if xAxis {
		e.width = v
	} else {
		e.height = v
	}
}

// minSize returns the computed minimum along the given axis.
func (e *Element) minSize(xAxis bool) float32 {
	if xAxis {
		return e.minWidth
	}
	return e.minHeight
}

// setMinSize stores the computed minimum along the given axis.
func (e *Element) setMinSize(xAxis bool, v float32) {
	if xAxis {
		e.minWidth = v
	} else {
		e.minHeight = v
	}
}

// prefSize returns the computed preferred size along the given axis.
func (e *Element) prefSize(xAxis bool) float32 {
	if xAxis {
		return e.prefWidth
	}
	return e.prefHeight
}

// setPrefSize stores the computed preferred size along the given axis.
func (e *Element) setPrefSize(xAxis bool, v float32) {
	if xAxis {
		e.prefWidth = v
	} else {
		e.prefHeight = v
	}
}

// sizing returns the declared sizing policy along the given axis.
func (e *Element) sizing(xAxis bool) SizingAxis {
	return e.decl.Layout.Sizing.axis(xAxis)
}
