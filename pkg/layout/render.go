package layout

import "sort"

// CommandKind identifies a render command's payload.
type CommandKind uint8

const (
	CommandNone CommandKind = iota
	CommandShadow
	CommandRectangle
	CommandBorder
	CommandText
	CommandSVG
	CommandImage
	CommandCanvas
	CommandScissorStart
	CommandScissorEnd
)

// String returns the command kind name.
func (k CommandKind) String() string {
	switch k {
	case CommandShadow:
		return "shadow"
	case CommandRectangle:
		return "rectangle"
	case CommandBorder:
		return "border"
	case CommandText:
		return "text"
	case CommandSVG:
		return "svg"
	case CommandImage:
		return "image"
	case CommandCanvas:
		return "canvas"
	case CommandScissorStart:
		return "scissorStart"
	case CommandScissorEnd:
		return "scissorEnd"
	default:
		return "none"
	}
}

// RectangleData is the payload of rectangle commands.
type RectangleData struct {
	Color        Color
	CornerRadius CornerRadius
}

// ShadowData is the payload of shadow commands.
type ShadowData struct {
	Color        Color
	Offset       Vector2
	Blur         float32
	Spread       float32
	CornerRadius CornerRadius
}

// BorderData is the payload of border commands.
type BorderData struct {
	Color        Color
	Width        BorderWidth
	CornerRadius CornerRadius
}

// TextData is the payload of one text-line command. Content points into the
// frame arena and is valid until the next BeginFrame.
type TextData struct {
	Content       string
	Color         Color
	FontID        uint16
	FontSize      uint16
	LetterSpacing uint16
	LineHeight    float32
}

// SVGData is the payload of vector-shape commands.
type SVGData struct {
	Data string
	Tint Color
}

// ImageData is the payload of image commands. Data is the opaque handle the
// caller declared.
type ImageData struct {
	Data       any
	SourceDims Dimensions
}

// CanvasData is the payload of canvas-reservation commands.
type CanvasData struct {
	Data any
}

// Command is one emitted drawing instruction. Commands are produced in
// paint order and never mutated after emission; when any floating elements
// exist in a frame the list is stable-sorted by ZIndex afterwards.
type Command struct {
	BoundingBox Rect
	Kind        CommandKind
	ZIndex      int16
	ElementID   ID

	Rectangle RectangleData
	Shadow    ShadowData
	Border    BorderData
	Text      TextData
	SVG       SVGData
	Image     ImageData
	Canvas    CanvasData
}

// emitCommands walks the whole tree depth-first pre-order, emitting shadow,
// background, border, content, and scissor commands with inherited z-index
// and multiplicatively inherited opacity.
func (c *Context) emitCommands() error {
	for i := range c.elements {
		if c.elements[i].parent == noIndex {
			if err := c.emitElement(int32(i), 0, 1); err != nil {
				return err
			}
		}
	}
	if len(c.floatingRoots) > 0 {
		// Emission order is already correct for a z-uniform tree; only
		// floating elements introduce distinct z-indices.
		sort.SliceStable(c.commands, func(i, j int) bool {
			return c.commands[i].ZIndex < c.commands[j].ZIndex
		})
	}
	return nil
}

func (c *Context) emitElement(idx int32, inheritedZ int16, inheritedOpacity float32) error {
	e := &c.elements[idx]

	z := inheritedZ
	if e.isFloating() {
		z = e.decl.Floating.ZIndex
	}
	e.zIndex = z
	opacity := inheritedOpacity * e.opacity()

	if !e.decl.Shadow.Color.IsZero() {
		sh := e.decl.Shadow
		box := e.box.Translate(sh.Offset.X, sh.Offset.Y)
		box.X -= sh.Spread
		box.Y -= sh.Spread
		box.Width += sh.Spread * 2
		box.Height += sh.Spread * 2
		if err := c.push(Command{
			BoundingBox: box,
			Kind:        CommandShadow,
			ZIndex:      z,
			ElementID:   e.ID,
			Shadow: ShadowData{
				Color:        sh.Color.withOpacity(opacity),
				Offset:       sh.Offset,
				Blur:         sh.Blur,
				Spread:       sh.Spread,
				CornerRadius: e.decl.CornerRadius,
			},
		}); err != nil {
			return err
		}
	}

	if !e.decl.BackgroundColor.IsZero() {
		if err := c.push(Command{
			BoundingBox: e.box,
			Kind:        CommandRectangle,
			ZIndex:      z,
			ElementID:   e.ID,
			Rectangle: RectangleData{
				Color:        e.decl.BackgroundColor.withOpacity(opacity),
				CornerRadius: e.decl.CornerRadius,
			},
		}); err != nil {
			return err
		}
	}

	if !e.decl.Border.Width.IsZero() {
		if err := c.push(Command{
			BoundingBox: e.box,
			Kind:        CommandBorder,
			ZIndex:      z,
			ElementID:   e.ID,
			Border: BorderData{
				Color:        e.decl.Border.Color.withOpacity(opacity),
				Width:        e.decl.Border.Width,
				CornerRadius: e.decl.CornerRadius,
			},
		}); err != nil {
			return err
		}
	}

	switch e.kind {
	case kindText:
		if err := c.emitText(e, z, opacity); err != nil {
			return err
		}
	case kindSVG:
		if err := c.push(Command{
			BoundingBox: e.box,
			Kind:        CommandSVG,
			ZIndex:      z,
			ElementID:   e.ID,
			SVG: SVGData{
				Data: e.decl.SVG.Data,
				Tint: e.decl.SVG.Tint.withOpacity(opacity),
			},
		}); err != nil {
			return err
		}
	case kindImage:
		if err := c.push(Command{
			BoundingBox: e.box,
			Kind:        CommandImage,
			ZIndex:      z,
			ElementID:   e.ID,
			Image: ImageData{
				Data:       e.decl.Image.Data,
				SourceDims: e.decl.Image.SourceDims,
			},
		}); err != nil {
			return err
		}
	case kindCanvas:
		if err := c.push(Command{
			BoundingBox: e.box,
			Kind:        CommandCanvas,
			ZIndex:      z,
			ElementID:   e.ID,
			Canvas:      CanvasData{Data: e.decl.Canvas.Data},
		}); err != nil {
			return err
		}
	}

	scroll := e.decl.Scroll.enabled()
	if scroll {
		if err := c.push(Command{
			BoundingBox: e.box,
			Kind:        CommandScissorStart,
			ZIndex:      z,
			ElementID:   e.ID,
		}); err != nil {
			return err
		}
	}

	for ci := e.firstChild; ci != noIndex; ci = c.elements[ci].nextSibling {
		if err := c.emitElement(ci, z, opacity); err != nil {
			return err
		}
	}

	if scroll {
		if err := c.push(Command{
			BoundingBox: c.elements[idx].box,
			Kind:        CommandScissorEnd,
			ZIndex:      z,
			ElementID:   c.elements[idx].ID,
		}); err != nil {
			return err
		}
	}
	return nil
}

// emitText emits one command per wrapped line, each with its own box and
// horizontal alignment inside the element's width.
func (c *Context) emitText(e *Element, z int16, opacity float32) error {
	cfg := e.textConfig
	color := cfg.Color.withOpacity(opacity)

	if e.lineCount == 0 {
		return nil
	}
	for i := int32(0); i < e.lineCount; i++ {
		line := c.lines[e.lineStart+i]
		x := e.box.X
		switch cfg.Align {
		case TextAlignCenter:
			x += (e.box.Width - line.Width) / 2
		case TextAlignRight:
			x += e.box.Width - line.Width
		}
		if err := c.push(Command{
			BoundingBox: Rect{
				X:      x,
				Y:      e.box.Y + float32(i)*e.lineHeight,
				Width:  line.Width,
				Height: e.lineHeight,
			},
			Kind:      CommandText,
			ZIndex:    z,
			ElementID: e.ID,
			Text: TextData{
				Content:       e.text[line.Start:line.End],
				Color:         color,
				FontID:        cfg.FontID,
				FontSize:      cfg.FontSize,
				LetterSpacing: cfg.LetterSpacing,
				LineHeight:    e.lineHeight,
			},
		}); err != nil {
			return err
		}
	}
	return nil
}

// push appends a command, enforcing the frame's command capacity.
func (c *Context) push(cmd Command) error {
	if len(c.commands) >= c.maxCommands {
		return &CapacityError{Resource: ResourceCommands, Limit: c.maxCommands}
	}
	c.commands = append(c.commands, cmd)
	return nil
}
