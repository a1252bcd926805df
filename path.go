package gfx

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/curves"
)

// Verb identifies one path segment kind.
type Verb int

const (
	VerbMove Verb = iota
	VerbLine
	VerbQuad
	VerbCubic
)

const noVerb Verb = -1

// MaxNextPoints is the most points a single verb yields during iteration
// (four, for a cubic).
const MaxNextPoints = 4

// Path is a sequence of contours built from move/line/quad/cubic verbs over
// a shared point array. The zero value is an empty path.
type Path struct {
	pts   []Point
	verbs []Verb
}

// Reset empties the path, keeping its storage.
func (p *Path) Reset() {
	p.pts = p.pts[:0]
	p.verbs = p.verbs[:0]
}

// CountPoints returns the number of stored points.
func (p *Path) CountPoints() int {
	return len(p.pts)
}

// MoveTo starts a new contour at pt.
func (p *Path) MoveTo(pt Point) {
	p.pts = append(p.pts, pt)
	p.verbs = append(p.verbs, VerbMove)
}

// LineTo appends a line segment to the current contour. The path must have
// been started with MoveTo.
func (p *Path) LineTo(pt Point) {
	p.pts = append(p.pts, pt)
	p.verbs = append(p.verbs, VerbLine)
}

// QuadTo appends a quadratic Bézier with control point p1 ending at p2.
func (p *Path) QuadTo(p1, p2 Point) {
	p.pts = append(p.pts, p1, p2)
	p.verbs = append(p.verbs, VerbQuad)
}

// CubicTo appends a cubic Bézier with control points p1, p2 ending at p3.
func (p *Path) CubicTo(p1, p2, p3 Point) {
	p.pts = append(p.pts, p1, p2, p3)
	p.verbs = append(p.verbs, VerbCubic)
}

// Direction selects a contour winding for the shape helpers.
type Direction int

const (
	DirCW Direction = iota
	DirCCW
)

// AddRect appends the rectangle as a closed contour in the given direction.
func (p *Path) AddRect(r Rect, dir Direction) {
	p.MoveTo(Pt(r.Left, r.Top))

	if dir == DirCW {
		p.LineTo(Pt(r.Right, r.Top))
		p.LineTo(Pt(r.Right, r.Bottom))
		p.LineTo(Pt(r.Left, r.Bottom))
		return
	}

	p.LineTo(Pt(r.Left, r.Bottom))
	p.LineTo(Pt(r.Right, r.Bottom))
	p.LineTo(Pt(r.Right, r.Top))
}

// AddPolygon appends the points as one closed contour.
func (p *Path) AddPolygon(pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
}

// circleKappa is the cubic control offset approximating a quarter circle.
const circleKappa = 0.551915

// AddCircle appends a circle as four cubic segments wound in the given
// direction.
func (p *Path) AddCircle(center Point, radius float32, dir Direction) {
	mapper := Concat(Translate(center.X, center.Y), Scale(radius, radius))

	p.MoveTo(mapper.MapPoint(Pt(0, 1)))

	var unit []Point
	if dir == DirCCW {
		unit = []Point{
			{X: circleKappa, Y: 1}, {X: 1, Y: circleKappa}, {X: 1, Y: 0},
			{X: 1, Y: -circleKappa}, {X: circleKappa, Y: -1}, {X: 0, Y: -1},
			{X: -circleKappa, Y: -1}, {X: -1, Y: -circleKappa}, {X: -1, Y: 0},
			{X: -1, Y: circleKappa}, {X: -circleKappa, Y: 1}, {X: 0, Y: 1},
		}
	} else {
		unit = []Point{
			{X: -circleKappa, Y: 1}, {X: -1, Y: circleKappa}, {X: -1, Y: 0},
			{X: -1, Y: -circleKappa}, {X: -circleKappa, Y: -1}, {X: 0, Y: -1},
			{X: circleKappa, Y: -1}, {X: 1, Y: -circleKappa}, {X: 1, Y: 0},
			{X: 1, Y: circleKappa}, {X: circleKappa, Y: 1}, {X: 0, Y: 1},
		}
	}

	mapper.MapPoints(unit, unit)

	p.CubicTo(unit[0], unit[1], unit[2])
	p.CubicTo(unit[3], unit[4], unit[5])
	p.CubicTo(unit[6], unit[7], unit[8])
	p.CubicTo(unit[9], unit[10], unit[11])
}

// Transform maps every stored point through the matrix in place.
func (p *Path) Transform(m Matrix) {
	m.MapPoints(p.pts, p.pts)
}

// Clone returns an independent copy of the path.
func (p *Path) Clone() *Path {
	c := &Path{
		pts:   make([]Point, len(p.pts)),
		verbs: make([]Verb, len(p.verbs)),
	}
	copy(c.pts, p.pts)
	copy(c.verbs, p.verbs)
	return c
}

// Bounds returns a conservative bounding rectangle: exact for line contours,
// curve extrema included where the derivative roots land inside (0, 1).
// An empty path has zero bounds.
func (p *Path) Bounds() Rect {
	if len(p.pts) == 0 {
		return Rect{}
	}

	first := true
	var left, top, right, bottom float32

	grow := func(pt Point) {
		if first {
			left, right = pt.X, pt.X
			top, bottom = pt.Y, pt.Y
			first = false
			return
		}
		left = min(left, pt.X)
		right = max(right, pt.X)
		top = min(top, pt.Y)
		bottom = max(bottom, pt.Y)
	}

	growAt := func(t float32, eval func(float32) Point) {
		if t > 0 && t < 1 {
			grow(eval(t))
		}
	}

	var pts [MaxNextPoints]Point
	edger := NewEdger(p)

	for {
		verb, ok := edger.Next(pts[:])
		if !ok {
			break
		}

		switch verb {
		case VerbLine:
			grow(pts[0])
			grow(pts[1])
		case VerbQuad:
			grow(pts[0])
			grow(pts[2])
			quad := pts[:3]
			evalQ := func(t float32) Point { return curves.EvalQuad(t, quad) }
			growAt(curves.DerivativeZeroQuad(pts[0].X, pts[1].X, pts[2].X), evalQ)
			growAt(curves.DerivativeZeroQuad(pts[0].Y, pts[1].Y, pts[2].Y), evalQ)
		case VerbCubic:
			grow(pts[0])
			grow(pts[3])
			cubic := pts[:4]
			evalC := func(t float32) Point { return curves.EvalCubic(t, cubic) }
			tx1, tx2 := curves.DerivativeZeroCubic(pts[0].X, pts[1].X, pts[2].X, pts[3].X)
			ty1, ty2 := curves.DerivativeZeroCubic(pts[0].Y, pts[1].Y, pts[2].Y, pts[3].Y)
			growAt(tx1, evalC)
			growAt(tx2, evalC)
			growAt(ty1, evalC)
			growAt(ty2, evalC)
		}
	}

	return RectLTRB(left, top, right, bottom)
}

// ChopQuadAt splits the quadratic src[0..2] at t into dst[0..4].
func ChopQuadAt(src, dst []Point, t float32) {
	curves.ChopQuadAt(src, dst, t)
}

// ChopCubicAt splits the cubic src[0..3] at t into dst[0..6].
func ChopCubicAt(src, dst []Point, t float32) {
	curves.ChopCubicAt(src, dst, t)
}

// Iter walks a path verb by verb. Next fills pts with the verb's points;
// pts[0] is the previous on-curve point for every verb except Move.
type Iter struct {
	path    *Path
	ptIdx   int
	verbIdx int
}

// NewIter returns a walker positioned at the start of the path.
func NewIter(p *Path) *Iter {
	return &Iter{path: p}
}

// Next yields the next verb and its points. A Move fills pts[0], a Line
// pts[0..1], a Quad pts[0..2], a Cubic pts[0..3]. It reports false when the
// path is exhausted.
func (it *Iter) Next(pts []Point) (Verb, bool) {
	if it.verbIdx == len(it.path.verbs) {
		return noVerb, false
	}

	v := it.path.verbs[it.verbIdx]
	it.verbIdx++

	switch v {
	case VerbMove:
		pts[0] = it.path.pts[it.ptIdx]
		it.ptIdx++
	case VerbLine:
		pts[0] = it.path.pts[it.ptIdx-1]
		pts[1] = it.path.pts[it.ptIdx]
		it.ptIdx++
	case VerbQuad:
		pts[0] = it.path.pts[it.ptIdx-1]
		pts[1] = it.path.pts[it.ptIdx]
		pts[2] = it.path.pts[it.ptIdx+1]
		it.ptIdx += 2
	case VerbCubic:
		pts[0] = it.path.pts[it.ptIdx-1]
		pts[1] = it.path.pts[it.ptIdx]
		pts[2] = it.path.pts[it.ptIdx+1]
		pts[3] = it.path.pts[it.ptIdx+2]
		it.ptIdx += 3
	}

	return v, true
}

// Edger walks a path like Iter but closes every contour: when a Move follows
// drawn geometry, or the path ends after drawn geometry, it emits the
// implicit closing Line back to the contour start. Move verbs update
// internal state and are not yielded.
type Edger struct {
	path     *Path
	ptIdx    int
	verbIdx  int
	moveIdx  int
	prevVerb Verb
}

// NewEdger returns a closing walker positioned at the start of the path.
func NewEdger(p *Path) *Edger {
	return &Edger{path: p, prevVerb: noVerb}
}

func (e *Edger) contourOpen() bool {
	return e.prevVerb == VerbLine || e.prevVerb == VerbQuad || e.prevVerb == VerbCubic
}

// Next yields the next drawing verb. pts[0] is always the previous on-curve
// point. It reports false when the path, including closing lines, is
// exhausted.
func (e *Edger) Next(pts []Point) (Verb, bool) {
	for e.verbIdx < len(e.path.verbs) {
		v := e.path.verbs[e.verbIdx]
		e.verbIdx++

		switch v {
		case VerbMove:
			closing := e.contourOpen()
			if closing {
				pts[0] = e.path.pts[e.ptIdx-1]
				pts[1] = e.path.pts[e.moveIdx]
			}

			e.moveIdx = e.ptIdx
			e.ptIdx++
			e.prevVerb = VerbMove

			if closing {
				return VerbLine, true
			}
		case VerbLine:
			pts[0] = e.path.pts[e.ptIdx-1]
			pts[1] = e.path.pts[e.ptIdx]
			e.ptIdx++
			e.prevVerb = VerbLine
			return VerbLine, true
		case VerbQuad:
			pts[0] = e.path.pts[e.ptIdx-1]
			pts[1] = e.path.pts[e.ptIdx]
			pts[2] = e.path.pts[e.ptIdx+1]
			e.ptIdx += 2
			e.prevVerb = VerbQuad
			return VerbQuad, true
		case VerbCubic:
			pts[0] = e.path.pts[e.ptIdx-1]
			pts[1] = e.path.pts[e.ptIdx]
			pts[2] = e.path.pts[e.ptIdx+1]
			pts[3] = e.path.pts[e.ptIdx+2]
			e.ptIdx += 3
			e.prevVerb = VerbCubic
			return VerbCubic, true
		}
	}

	if e.contourOpen() {
		pts[0] = e.path.pts[e.ptIdx-1]
		pts[1] = e.path.pts[e.moveIdx]
		e.prevVerb = noVerb
		return VerbLine, true
	}

	return noVerb, false
}
