// gooey.go re-exports the engine types from pkg/layout.
// Any changes to pkg/layout types must be mirrored here.
package gooey

import (
	"go.uber.org/zap"

	"github.com/duanebester/gooey-sub004/pkg/layout"
)

// Context is one layout engine instance, driven by one goroutine at a time.
type Context = layout.Context

// Option configures a Context.
type Option = layout.Option

// Declaration is the per-frame configuration of one element.
type Declaration = layout.Declaration

// LayoutConfig holds the layout properties of an element.
type LayoutConfig = layout.LayoutConfig

// Command is one emitted drawing instruction.
type Command = layout.Command

// CommandKind identifies a render command's payload.
type CommandKind = layout.CommandKind

// ID is a stable 32-bit element identifier.
type ID = layout.ID

// Element is one node in the per-frame tree, as returned by Context.Element.
type Element = layout.Element

// TextMeasurer is the caller-supplied text measurement collaborator.
type TextMeasurer = layout.TextMeasurer

// MeasureFunc adapts a plain function to the TextMeasurer interface.
type MeasureFunc = layout.MeasureFunc

// CapacityError reports that a bounded per-frame collection is full.
type CapacityError = layout.CapacityError

// Geometry and styling types.
type (
	Rect         = layout.Rect
	Dimensions   = layout.Dimensions
	Vector2      = layout.Vector2
	Padding      = layout.Padding
	Sizing       = layout.Sizing
	SizingAxis   = layout.SizingAxis
	Color        = layout.Color
	CornerRadius = layout.CornerRadius

	TextConfig     = layout.TextConfig
	ImageConfig    = layout.ImageConfig
	SVGConfig      = layout.SVGConfig
	CanvasConfig   = layout.CanvasConfig
	BorderConfig   = layout.BorderConfig
	BorderWidth    = layout.BorderWidth
	ShadowConfig   = layout.ShadowConfig
	ScrollConfig   = layout.ScrollConfig
	FloatingConfig = layout.FloatingConfig
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	LeftToRight = layout.LeftToRight
	TopToBottom = layout.TopToBottom
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are positioned on the cross axis.
type Align = layout.Align

const (
	AlignStart  = layout.AlignStart
	AlignCenter = layout.AlignCenter
	AlignEnd    = layout.AlignEnd
)

// WrapMode specifies how text breaks into lines.
type WrapMode = layout.WrapMode

const (
	WrapWords    = layout.WrapWords
	WrapNewlines = layout.WrapNewlines
	WrapNone     = layout.WrapNone
)

// TextAlign specifies how wrapped lines sit within the element's width.
type TextAlign = layout.TextAlign

const (
	TextAlignLeft   = layout.TextAlignLeft
	TextAlignCenter = layout.TextAlignCenter
	TextAlignRight  = layout.TextAlignRight
)

// AttachTo selects the reference box a floating element positions against.
type AttachTo = layout.AttachTo

const (
	AttachToNone    = layout.AttachToNone
	AttachToParent  = layout.AttachToParent
	AttachToElement = layout.AttachToElement
	AttachToRoot    = layout.AttachToRoot
)

// AttachPoint names an anchor on a box as a fraction of its extent.
type AttachPoint = layout.AttachPoint

const (
	AttachLeftTop      = layout.AttachLeftTop
	AttachLeftCenter   = layout.AttachLeftCenter
	AttachLeftBottom   = layout.AttachLeftBottom
	AttachCenterTop    = layout.AttachCenterTop
	AttachCenterCenter = layout.AttachCenterCenter
	AttachCenterBottom = layout.AttachCenterBottom
	AttachRightTop     = layout.AttachRightTop
	AttachRightCenter  = layout.AttachRightCenter
	AttachRightBottom  = layout.AttachRightBottom
)

// Render command kinds.
const (
	CommandShadow       = layout.CommandShadow
	CommandRectangle    = layout.CommandRectangle
	CommandBorder       = layout.CommandBorder
	CommandText         = layout.CommandText
	CommandSVG          = layout.CommandSVG
	CommandImage        = layout.CommandImage
	CommandCanvas       = layout.CommandCanvas
	CommandScissorStart = layout.CommandScissorStart
	CommandScissorEnd   = layout.CommandScissorEnd
)

// New creates a layout Context.
func New(opts ...Option) *Context {
	return layout.New(opts...)
}

// Sizing constructors.

// Fit returns a SizingAxis that sizes to content.
func Fit() SizingAxis { return layout.Fit() }

// FitMinMax returns a content-sized SizingAxis bounded to [min, max].
func FitMinMax(min, max float32) SizingAxis { return layout.FitMinMax(min, max) }

// Grow returns a SizingAxis that fills the remaining space.
func Grow() SizingAxis { return layout.Grow() }

// GrowMinMax returns a space-filling SizingAxis bounded to [min, max].
func GrowMinMax(min, max float32) SizingAxis { return layout.GrowMinMax(min, max) }

// Fixed returns a SizingAxis with an exact pixel size.
func Fixed(px float32) SizingAxis { return layout.Fixed(px) }

// Percent returns a SizingAxis sized as a fraction (0..1) of the space the
// parent offers.
func Percent(p float32) SizingAxis { return layout.Percent(p) }

// PaddingAll creates Padding with the same value on all sides.
func PaddingAll(n uint16) Padding { return layout.PaddingAll(n) }

// PaddingSymmetric creates Padding with horizontal and vertical values.
func PaddingSymmetric(h, v uint16) Padding { return layout.PaddingSymmetric(h, v) }

// CornerRadiusAll creates a CornerRadius with the same value on all corners.
func CornerRadiusAll(r float32) CornerRadius { return layout.CornerRadiusAll(r) }

// Identifier derivations.

// HashString hashes a name into an ID.
func HashString(s string) ID { return layout.HashString(s) }

// HashIndexed hashes a name together with a numeric index.
func HashIndexed(s string, index uint32) ID { return layout.HashIndexed(s, index) }

// HashScoped hashes a name using the parent's ID as the seed.
func HashScoped(s string, parent ID) ID { return layout.HashScoped(s, parent) }

// Context options.

// WithMeasurer sets the text measurement collaborator.
func WithMeasurer(m TextMeasurer) Option { return layout.WithMeasurer(m) }

// WithMaxElements bounds the number of elements per frame.
func WithMaxElements(n int) Option { return layout.WithMaxElements(n) }

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.Logger) Option { return layout.WithLogger(l) }
