// Package transform provides the 2x3 affine matrix algebra used by the
// canvas, the shaders and the tessellators.
package transform

import (
	"math"

	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
)

// Matrix is a 2x3 affine transform stored column by column:
//
//	[ a  c  e ]      indices [ 0 2 4 ]
//	[ b  d  f ]              [ 1 3 5 ]
//	[ 0  0  1 ]  implied, not stored
//
// mapping x' = a*x + c*y + e and y' = b*x + d*y + f.
type Matrix struct {
	m [6]float32
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{m: [6]float32{1, 0, 0, 1, 0, 0}}
}

// New constructs a matrix from its six coefficients in the order
// a, c, e, b, d, f (first row then second row).
func New(a, c, e, b, d, f float32) Matrix {
	return Matrix{m: [6]float32{a, b, c, d, e, f}}
}

// FromBasis constructs the matrix whose columns are the basis vectors e0 and
// e1 and whose translation is origin.
func FromBasis(e0, e1, origin basics.Vector) Matrix {
	return New(e0.X, e1.X, origin.X,
		e0.Y, e1.Y, origin.Y)
}

// TriangleBasis returns the matrix mapping the unit triangle
// (0,0), (1,0), (0,1) onto v0, v1, v2.
func TriangleBasis(v0, v1, v2 basics.Point) Matrix {
	return FromBasis(v1.Sub(v0), v2.Sub(v0), v0)
}

// Translate returns a pure translation.
func Translate(tx, ty float32) Matrix {
	return New(1, 0, tx,
		0, 1, ty)
}

// Scale returns a pure scale about the origin.
func Scale(sx, sy float32) Matrix {
	return New(sx, 0, 0,
		0, sy, 0)
}

// Rotate returns a rotation by radians about the origin.
func Rotate(radians float32) Matrix {
	sin := float32(math.Sin(float64(radians)))
	cos := float32(math.Cos(float64(radians)))

	return New(cos, -sin, 0,
		sin, cos, 0)
}

// Concat returns the product a * b, the transform that applies b first and
// then a.
func Concat(a, b Matrix) Matrix {
	return New(a.m[0]*b.m[0]+a.m[2]*b.m[1], a.m[0]*b.m[2]+a.m[2]*b.m[3], a.m[0]*b.m[4]+a.m[2]*b.m[5]+a.m[4],
		a.m[1]*b.m[0]+a.m[3]*b.m[1], a.m[1]*b.m[2]+a.m[3]*b.m[3], a.m[1]*b.m[4]+a.m[3]*b.m[5]+a.m[5])
}

// At returns the coefficient at the given storage index (0..5).
func (t Matrix) At(index int) float32 {
	return t.m[index]
}

// E0 returns the first basis column (a, b).
func (t Matrix) E0() basics.Vector {
	return basics.Pt(t.m[0], t.m[1])
}

// E1 returns the second basis column (c, d).
func (t Matrix) E1() basics.Vector {
	return basics.Pt(t.m[2], t.m[3])
}

// Origin returns the translation column (e, f).
func (t Matrix) Origin() basics.Vector {
	return basics.Pt(t.m[4], t.m[5])
}

// Equal reports bit-wise equality of all six coefficients.
func (t Matrix) Equal(o Matrix) bool {
	return t.m == o.m
}

// Determinant returns a*d - b*c.
func (t Matrix) Determinant() float32 {
	return t.m[0]*t.m[3] - t.m[1]*t.m[2]
}

// Invert returns the analytic inverse. It fails exactly when the determinant
// is zero.
func (t Matrix) Invert() (Matrix, bool) {
	det := t.Determinant()
	if det == 0 {
		return Matrix{}, false
	}

	k := 1 / det
	inv := New(k*t.m[3], k*-t.m[2], k*(t.m[2]*t.m[5]-t.m[3]*t.m[4]),
		k*-t.m[1], k*t.m[0], k*(t.m[1]*t.m[4]-t.m[0]*t.m[5]))
	return inv, true
}

// MapPoint applies the transform to a single point.
func (t Matrix) MapPoint(p basics.Point) basics.Point {
	return basics.Pt(t.m[0]*p.X+t.m[2]*p.Y+t.m[4],
		t.m[1]*p.X+t.m[3]*p.Y+t.m[5])
}

// MapPoints transforms src into dst. dst and src may be the same slice; they
// must not partially overlap. dst must be at least as long as src.
func (t Matrix) MapPoints(dst, src []basics.Point) {
	for i, p := range src {
		dst[i] = t.MapPoint(p)
	}
}
