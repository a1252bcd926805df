// Package curves provides the Bézier kernel: Bernstein evaluation,
// de Casteljau subdivision, derivative roots, and adaptive flattening of
// quadratic and cubic segments into chords.
package curves

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
)

// EvalQuad evaluates the quadratic Bézier with control points pts[0..2] at t
// using the Bernstein form.
func EvalQuad(t float32, pts []basics.Point) basics.Point {
	u := 1 - t
	return pts[0].Scale(u * u).
		Add(pts[1].Scale(2 * t * u)).
		Add(pts[2].Scale(t * t))
}

// EvalCubic evaluates the cubic Bézier with control points pts[0..3] at t.
func EvalCubic(t float32, pts []basics.Point) basics.Point {
	u := 1 - t
	return pts[0].Scale(u * u * u).
		Add(pts[1].Scale(3 * t * u * u)).
		Add(pts[2].Scale(3 * u * t * t)).
		Add(pts[3].Scale(t * t * t))
}

// DerivativeZeroQuad returns the parameter where the quadratic with scalar
// control values a, b, c has zero derivative, or -1 when the derivative is
// constant.
func DerivativeZeroQuad(a, b, c float32) float32 {
	denominator := c - 2*b + a
	if denominator == 0 {
		return -1
	}
	return (a - b) / denominator
}

// DerivativeZeroCubic returns the two parameters where the cubic with scalar
// control values a, b, c, d has zero derivative, or (-1, -1) when the leading
// coefficient vanishes. Results outside [0, 1] carry no meaning and must be
// ignored by the caller; a negative discriminant surfaces as NaN the same way.
func DerivativeZeroCubic(a, b, c, d float32) (float32, float32) {
	lead := d - a + 3*b - 3*c
	if lead == 0 {
		return -1, -1
	}

	linear := -a + 2*b - c
	root := basics.Sqrt(b*b - d*b - b*c + d*a + c*c - a*c)

	return (linear + root) / lead, (linear - root) / lead
}

// ChopQuadAt splits the quadratic src[0..2] at parameter t, writing the five
// control points of the two sub-curves to dst. dst[2] is shared by both
// halves.
func ChopQuadAt(src, dst []basics.Point, t float32) {
	dst[0] = src[0]
	dst[4] = src[2]

	dst[1] = lerp(src[0], src[1], t)
	dst[3] = lerp(src[1], src[2], t)

	dst[2] = lerp(dst[1], dst[3], t)
}

// ChopCubicAt splits the cubic src[0..3] at parameter t, writing the seven
// control points of the two sub-curves to dst. dst[3] is shared.
func ChopCubicAt(src, dst []basics.Point, t float32) {
	dst[0] = src[0]
	dst[6] = src[3]

	dst[1] = lerp(src[0], src[1], t)
	dst[5] = lerp(src[2], src[3], t)

	mid := lerp(src[1], src[2], t)
	dst[2] = lerp(dst[1], mid, t)
	dst[4] = lerp(mid, dst[5], t)

	dst[3] = lerp(dst[2], dst[4], t)
}

func lerp(p, q basics.Point, t float32) basics.Point {
	return p.Scale(1 - t).Add(q.Scale(t))
}
