// Package basics provides the scalar, geometric and pixel primitives shared
// by every package of the rasterizer. Coordinates are single-precision floats
// and pixels are 32-bit premultiplied ARGB.
package basics

// Point is a position or displacement in device or user space.
type Point struct {
	X, Y float32
}

// Vector is a displacement; it shares Point's representation.
type Vector = Point

// Pt is shorthand for constructing a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns the point scaled by s.
func (p Point) Scale(s float32) Point {
	return Point{p.X * s, p.Y * s}
}

// Length returns the Euclidean norm of the point treated as a vector.
func (p Point) Length() float32 {
	return Sqrt(p.X*p.X + p.Y*p.Y)
}

// Rect is an axis-aligned rectangle. Left/Top are inclusive, Right/Bottom
// exclusive when the rectangle addresses pixels.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// RectLTRB constructs a rectangle from its four sides.
func RectLTRB(l, t, r, b float32) Rect {
	return Rect{Left: l, Top: t, Right: r, Bottom: b}
}

// RectWH constructs a rectangle anchored at the origin.
func RectWH(w, h float32) Rect {
	return Rect{Right: w, Bottom: h}
}

// RectXYWH constructs a rectangle from an origin and a size.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 {
	return r.Bottom - r.Top
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}
