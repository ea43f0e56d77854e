package layout

// Rect represents a rectangle in pixel space.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and
// bottom edges are outside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns a new Rect shrunk inward by the given padding.
func (r Rect) Inset(p Padding) Rect {
	return Rect{
		X:      r.X + float32(p.Left),
		Y:      r.Y + float32(p.Top),
		Width:  r.Width - float32(p.Left) - float32(p.Right),
		Height: r.Height - float32(p.Top) - float32(p.Bottom),
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Dimensions represents a width/height pair.
type Dimensions struct {
	Width, Height float32
}

// Vector2 represents an (X, Y) offset or point.
type Vector2 struct {
	X, Y float32
}

// Add returns a new Vector2 offset by other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Padding represents inner spacing on four sides of an element.
type Padding struct {
	Left, Right, Top, Bottom uint16
}

// PaddingAll creates Padding with the same value on all sides.
func PaddingAll(n uint16) Padding {
	return Padding{Left: n, Right: n, Top: n, Bottom: n}
}

// PaddingSymmetric creates Padding with horizontal (left/right) and
// vertical (top/bottom) values.
func PaddingSymmetric(h, v uint16) Padding {
	return Padding{Left: h, Right: h, Top: v, Bottom: v}
}

// Horizontal returns the sum of Left and Right.
func (p Padding) Horizontal() float32 {
	return float32(p.Left) + float32(p.Right)
}

// Vertical returns the sum of Top and Bottom.
func (p Padding) Vertical() float32 {
	return float32(p.Top) + float32(p.Bottom)
}

// axis returns the padding total along the given axis.
func (p Padding) axis(xAxis bool) float32 {
	if xAxis {
		return p.Horizontal()
	}
	return p.Vertical()
}
