package gfx

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/blend"
	"github.com/arujbansal/2D-Graphics-Engine/internal/curves"
	"github.com/arujbansal/2D-Graphics-Engine/internal/raster"
)

// Canvas draws into a destination bitmap under an affine transform stack.
// The canvas holds exclusive mutable access to the bitmap for the duration
// of each draw call; the reference itself never changes.
type Canvas struct {
	device *Bitmap
	stack  []Matrix
}

// NewCanvas creates a canvas over the device bitmap. The transform stack
// starts as a single identity matrix.
func NewCanvas(device *Bitmap) *Canvas {
	stack := make([]Matrix, 1, 8)
	stack[0] = Identity()

	return &Canvas{device: device, stack: stack}
}

// Device returns the destination bitmap.
func (c *Canvas) Device() *Bitmap {
	return c.device
}

func (c *Canvas) ctm() Matrix {
	return c.stack[len(c.stack)-1]
}

// Save pushes a copy of the current transform. Every Save must be paired
// with a Restore.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.ctm())
}

// Restore pops the current transform. Popping the bottom identity is a
// caller bug and panics.
func (c *Canvas) Restore() {
	if len(c.stack) == 1 {
		panic("gfx: Restore without matching Save")
	}
	c.stack = c.stack[:len(c.stack)-1]
}

// Concat post-multiplies the current transform by m: subsequent draws see
// m applied before everything already on the stack.
func (c *Canvas) Concat(m Matrix) {
	c.stack[len(c.stack)-1] = Concat(c.ctm(), m)
}

// Translate is shorthand for Concat of a translation.
func (c *Canvas) Translate(tx, ty float32) {
	c.Concat(Translate(tx, ty))
}

// Scale is shorthand for Concat of a scale.
func (c *Canvas) Scale(sx, sy float32) {
	c.Concat(Scale(sx, sy))
}

// Rotate is shorthand for Concat of a rotation by radians.
func (c *Canvas) Rotate(radians float32) {
	c.Concat(Rotate(radians))
}

// Clear overwrites every device pixel with the premultiplied color,
// ignoring the transform stack and any blend mode.
func (c *Canvas) Clear(color Color) {
	pix := color.Premul255()

	for y := 0; y < c.device.Height; y++ {
		row := c.device.Row(y)
		for x := range row {
			row[x] = pix
		}
	}
}

// DrawRect fills the rectangle with the paint, equivalent to drawing its
// four corners as a convex polygon.
func (c *Canvas) DrawRect(r Rect, paint Paint) {
	pts := []Point{
		Pt(r.Left, r.Top),
		Pt(r.Right, r.Top),
		Pt(r.Right, r.Bottom),
		Pt(r.Left, r.Bottom),
	}

	c.DrawConvexPolygon(pts, paint)
}

// DrawConvexPolygon fills the convex polygon through the current transform.
// Fewer than two vertices, a fully clipped result, or a shader that fails to
// bind all degrade to drawing nothing.
func (c *Canvas) DrawConvexPolygon(pts []Point, paint Paint) {
	if len(pts) < 2 {
		return
	}

	device := make([]Point, len(pts))
	c.ctm().MapPoints(device, pts)

	segments := make([]raster.Segment, 0, len(device))
	for i := range device {
		segments = append(segments, raster.Segment{
			P1: device[i],
			P2: device[(i+1)%len(device)],
		})
	}

	edges := raster.ClipSegments(segments, c.device.Width, c.device.Height)
	c.fillEdges(edges, paint, raster.FillConvex)
}

// DrawPath fills the path with the non-zero winding rule. Curves are
// flattened at the fixed tolerance; open contours close implicitly.
func (c *Canvas) DrawPath(path *Path, paint Paint) {
	devicePath := path.Clone()
	devicePath.Transform(c.ctm())

	segments := make([]raster.Segment, 0, devicePath.CountPoints())
	emit := func(p1, p2 Point) {
		segments = append(segments, raster.Segment{P1: p1, P2: p2})
	}

	var pts [MaxNextPoints]Point
	edger := NewEdger(devicePath)

	for {
		verb, ok := edger.Next(pts[:])
		if !ok {
			break
		}

		switch verb {
		case VerbLine:
			emit(pts[0], pts[1])
		case VerbQuad:
			curves.FlattenQuad(pts[:3], curves.FlattenTolerance, emit)
		case VerbCubic:
			curves.FlattenCubic(pts[:4], curves.FlattenTolerance, emit)
		}
	}

	edges := raster.ClipSegments(segments, c.device.Width, c.device.Height)
	c.fillEdges(edges, paint, raster.FillWinding)
}

// fillEdges drives one fill: sorts the clipped edges, resolves the source
// class once (shader row, opaque row, constant opaque, constant transparent,
// constant general), then streams spans into the row blitters.
func (c *Canvas) fillEdges(edges []raster.Edge, paint Paint, fill func([]raster.Edge, raster.SpanFunc)) {
	if len(edges) < 2 {
		return
	}
	raster.SortEdges(edges)

	if paint.Shader != nil {
		if !paint.Shader.SetContext(c.ctm()) {
			return
		}

		proc := blend.Normal[paint.Blend]
		if paint.Shader.IsOpaque() {
			proc = blend.Opaque[paint.Blend]
		}

		rowBuf := make([]Pixel, c.device.Width)

		fill(edges, func(y, left, right int) {
			if right <= left {
				return
			}
			row := rowBuf[:right-left]
			paint.Shader.ShadeRow(left, y, right-left, row)
			blend.BlitRowShader(c.device, y, left, right, row, proc)
		})
		return
	}

	src := paint.Color.Premul255()
	proc := blend.ProcFor(paint.Blend, src.A())

	fill(edges, func(y, left, right int) {
		if right <= left {
			return
		}
		blend.BlitRowSolid(c.device, y, left, right, src, proc)
	})
}
