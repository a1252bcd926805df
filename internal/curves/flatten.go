package curves

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
)

// FlattenTolerance is the maximum geometric distance, in pixels, between a
// curve and its chord approximation.
const FlattenTolerance = 0.25

// SegmentFunc receives one chord of a flattened curve.
type SegmentFunc func(p1, p2 basics.Point)

// FlattenQuad subdivides the quadratic pts[0..2] into chords no farther than
// tolerance from the curve and emits each chord in parameter order.
//
// The deviation of a quadratic from its chord is bounded by
// |P0 - 2*P1 + P2| / 4, so n = ceil(sqrt(err/tol)) uniform steps suffice.
func FlattenQuad(pts []basics.Point, tolerance float32, emit SegmentFunc) {
	errVec := pts[0].Sub(pts[1].Scale(2)).Add(pts[2]).Scale(0.25)
	segments := basics.CeilToInt(basics.Sqrt(errVec.Length() / tolerance))

	inv := 1 / float32(segments)
	prev := EvalQuad(0, pts)
	t := inv

	for segment := 0; segment < segments; segment++ {
		cur := EvalQuad(t, pts)
		emit(prev, cur)
		t += inv
		prev = cur
	}
}

// FlattenCubic subdivides the cubic pts[0..3] the same way. The deviation
// bound uses the larger of the two second differences per axis, giving
// n = ceil(sqrt(3*err / (4*tol))).
func FlattenCubic(pts []basics.Point, tolerance float32, emit SegmentFunc) {
	e0 := pts[0].Sub(pts[1].Scale(2)).Add(pts[2])
	e1 := pts[1].Sub(pts[2].Scale(2)).Add(pts[3])

	err := basics.Pt(max(basics.Abs(e0.X), basics.Abs(e1.X)),
		max(basics.Abs(e0.Y), basics.Abs(e1.Y)))
	segments := basics.CeilToInt(basics.Sqrt(3 * err.Length() / (4 * tolerance)))

	inv := 1 / float32(segments)
	prev := EvalCubic(0, pts)
	t := inv

	for segment := 0; segment < segments; segment++ {
		cur := EvalCubic(t, pts)
		emit(prev, cur)
		t += inv
		prev = cur
	}
}
