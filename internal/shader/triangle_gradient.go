package shader

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
	"github.com/arujbansal/2D-Graphics-Engine/internal/transform"
)

// TriangleGradient interpolates three vertex colors barycentrically across a
// triangle. Device positions are pulled back through the triangle basis, so
// the color delta per pixel step is constant along a row.
type TriangleGradient struct {
	unitMapper transform.Matrix
	inv        transform.Matrix

	color0     basics.Color
	diffColor1 basics.Color
	diffColor2 basics.Color
}

// NewTriangleGradient creates the shader for the triangle verts[0..2] with
// the matching colors.
func NewTriangleGradient(verts [3]basics.Point, colors [3]basics.Color) *TriangleGradient {
	return &TriangleGradient{
		unitMapper: transform.TriangleBasis(verts[0], verts[1], verts[2]),
		color0:     colors[0],
		diffColor1: colors[1].Sub(colors[0]),
		diffColor2: colors[2].Sub(colors[0]),
	}
}

// IsOpaque always reports false.
func (sh *TriangleGradient) IsOpaque() bool {
	return false
}

// SetContext stores the inverse of ctm * triangle basis.
func (sh *TriangleGradient) SetContext(ctm transform.Matrix) bool {
	inv, ok := transform.Concat(ctm, sh.unitMapper).Invert()
	if !ok {
		return false
	}
	sh.inv = inv
	return true
}

// ShadeRow walks the row adding the constant color delta. The first and last
// pixel clamp before premultiplying; rounding can push their interpolated
// channels just outside the unit range at triangle edges.
func (sh *TriangleGradient) ShadeRow(x, y, count int, row []basics.Pixel) {
	p := sh.inv.MapPoint(basics.Pt(float32(x)+0.5, float32(y)+0.5))

	diff := sh.diffColor1.Scale(sh.inv.At(0)).Add(sh.diffColor2.Scale(sh.inv.At(1)))
	cur := sh.diffColor1.Scale(p.X).Add(sh.diffColor2.Scale(p.Y)).Add(sh.color0)

	row[0] = cur.Premul255Clamp()
	cur = cur.Add(diff)

	for i := 1; i < count-1; i++ {
		row[i] = cur.Premul255()
		cur = cur.Add(diff)
	}

	if count > 1 {
		row[count-1] = cur.Premul255Clamp()
	}
}
