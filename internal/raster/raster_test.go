package raster

import (
	"testing"

	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
)

func segmentsForPolygon(pts []basics.Point) []Segment {
	segs := make([]Segment, 0, len(pts))
	for i := range pts {
		segs = append(segs, Segment{P1: pts[i], P2: pts[(i+1)%len(pts)]})
	}
	return segs
}

func collectSpans(fill func([]Edge, SpanFunc), edges []Edge) map[int][2]int {
	spans := make(map[int][2]int)
	fill(edges, func(y, left, right int) {
		spans[y] = [2]int{left, right}
	})
	return spans
}

func TestClipDropsHorizontalEdges(t *testing.T) {
	segs := []Segment{
		{P1: basics.Pt(0, 5), P2: basics.Pt(10, 5)},
		{P1: basics.Pt(0, 5.2), P2: basics.Pt(10, 4.8)}, // rounds to the same row
	}

	if edges := ClipSegments(segs, 20, 20); len(edges) != 0 {
		t.Errorf("horizontal segments should be dropped, got %d edges", len(edges))
	}
}

func TestClipDropsOffscreenEdges(t *testing.T) {
	segs := []Segment{
		{P1: basics.Pt(5, -10), P2: basics.Pt(5, -2)}, // above
		{P1: basics.Pt(5, 25), P2: basics.Pt(5, 30)},  // below
	}

	if edges := ClipSegments(segs, 20, 20); len(edges) != 0 {
		t.Errorf("offscreen segments should be dropped, got %d edges", len(edges))
	}
}

func TestClipWindingSign(t *testing.T) {
	down := ClipSegments([]Segment{{P1: basics.Pt(5, 0), P2: basics.Pt(5, 10)}}, 20, 20)
	up := ClipSegments([]Segment{{P1: basics.Pt(5, 10), P2: basics.Pt(5, 0)}}, 20, 20)

	if len(down) != 1 || len(up) != 1 {
		t.Fatalf("expected one edge each, got %d and %d", len(down), len(up))
	}
	if down[0].Winding != -1 {
		t.Errorf("downward segment winding = %d, want -1", down[0].Winding)
	}
	if up[0].Winding != 1 {
		t.Errorf("upward segment winding = %d, want 1", up[0].Winding)
	}
}

func TestClipVertical(t *testing.T) {
	// Crosses both the top and bottom of a 10-high device.
	edges := ClipSegments([]Segment{{P1: basics.Pt(2, -5), P2: basics.Pt(8, 15)}}, 10, 10)

	if len(edges) != 1 {
		t.Fatalf("expected one edge, got %d", len(edges))
	}
	if edges[0].Top != 0 || edges[0].Bottom != 10 {
		t.Errorf("edge rows [%d, %d), want [0, 10)", edges[0].Top, edges[0].Bottom)
	}
}

func TestClipProjectsLeftOfDevice(t *testing.T) {
	edges := ClipSegments([]Segment{{P1: basics.Pt(-8, 0), P2: basics.Pt(-2, 10)}}, 10, 10)

	if len(edges) != 1 {
		t.Fatalf("expected one boundary edge, got %d", len(edges))
	}
	e := edges[0]
	if e.SlopeX != 0 {
		t.Errorf("boundary edge should be vertical, slope %v", e.SlopeX)
	}
	if x := e.QueryXRound(); x != 0 {
		t.Errorf("boundary edge x = %d, want 0", x)
	}
}

func TestClipSplitsSpanningSegment(t *testing.T) {
	// Crosses the full width of a 10-wide device: left boundary piece, right
	// boundary piece, interior piece.
	edges := ClipSegments([]Segment{{P1: basics.Pt(-10, 0), P2: basics.Pt(20, 9)}}, 10, 10)

	if len(edges) != 3 {
		t.Fatalf("expected three edges, got %d", len(edges))
	}
	for _, e := range edges {
		if e.Winding != -1 {
			t.Errorf("split pieces must keep the original winding, got %d", e.Winding)
		}
	}
}

func TestFillConvexRect(t *testing.T) {
	segs := segmentsForPolygon([]basics.Point{
		basics.Pt(2, 3), basics.Pt(8, 3), basics.Pt(8, 7), basics.Pt(2, 7),
	})
	edges := ClipSegments(segs, 10, 10)
	SortEdges(edges)

	spans := collectSpans(FillConvex, edges)

	for y := 3; y < 7; y++ {
		got, ok := spans[y]
		if !ok {
			t.Fatalf("no span for row %d", y)
		}
		if got != [2]int{2, 8} {
			t.Errorf("row %d span %v, want [2 8]", y, got)
		}
	}
	if _, ok := spans[2]; ok {
		t.Error("row above rect should be empty")
	}
	if _, ok := spans[7]; ok {
		t.Error("row below rect should be empty")
	}
}

func TestFillConvexTriangle(t *testing.T) {
	segs := segmentsForPolygon([]basics.Point{
		basics.Pt(5, 0), basics.Pt(10, 10), basics.Pt(0, 10),
	})
	edges := ClipSegments(segs, 10, 10)
	SortEdges(edges)

	spans := collectSpans(FillConvex, edges)

	if len(spans) == 0 {
		t.Fatal("triangle produced no spans")
	}
	// Spans must widen monotonically toward the base.
	prevWidth := -1
	for y := 0; y < 10; y++ {
		s, ok := spans[y]
		if !ok {
			continue
		}
		width := s[1] - s[0]
		if width < prevWidth {
			t.Errorf("row %d narrower than the row above (%d < %d)", y, width, prevWidth)
		}
		prevWidth = width
	}
}

func TestFillConvexNeedsTwoEdges(t *testing.T) {
	edges := ClipSegments([]Segment{{P1: basics.Pt(5, 0), P2: basics.Pt(5, 10)}}, 10, 10)

	called := false
	FillConvex(edges, func(y, l, r int) { called = true })
	if called {
		t.Error("a single edge must not produce spans")
	}
}

func TestFillWindingRectMatchesConvex(t *testing.T) {
	pts := []basics.Point{basics.Pt(1, 1), basics.Pt(9, 1), basics.Pt(9, 9), basics.Pt(1, 9)}

	convexEdges := ClipSegments(segmentsForPolygon(pts), 10, 10)
	SortEdges(convexEdges)
	convexSpans := collectSpans(FillConvex, convexEdges)

	windingEdges := ClipSegments(segmentsForPolygon(pts), 10, 10)
	SortEdges(windingEdges)
	windingSpans := collectSpans(FillWinding, windingEdges)

	if len(convexSpans) != len(windingSpans) {
		t.Fatalf("span row counts differ: %d vs %d", len(convexSpans), len(windingSpans))
	}
	for y, s := range convexSpans {
		if windingSpans[y] != s {
			t.Errorf("row %d: convex %v, winding %v", y, s, windingSpans[y])
		}
	}
}

func TestFillWindingOverlapStaysFilled(t *testing.T) {
	// Two same-direction overlapping squares: the overlap accumulates
	// winding 2 and must stay inside a single span.
	outer := segmentsForPolygon([]basics.Point{
		basics.Pt(1, 1), basics.Pt(9, 1), basics.Pt(9, 9), basics.Pt(1, 9),
	})
	inner := segmentsForPolygon([]basics.Point{
		basics.Pt(3, 3), basics.Pt(7, 3), basics.Pt(7, 7), basics.Pt(3, 7),
	})

	edges := ClipSegments(append(outer, inner...), 10, 10)
	SortEdges(edges)

	rows := make(map[int][][2]int)
	FillWinding(edges, func(y, l, r int) {
		rows[y] = append(rows[y], [2]int{l, r})
	})

	for y := 1; y < 9; y++ {
		if len(rows[y]) != 1 {
			t.Fatalf("row %d: expected one span, got %v", y, rows[y])
		}
		if rows[y][0] != [2]int{1, 9} {
			t.Errorf("row %d span %v, want [1 9]", y, rows[y][0])
		}
	}
}

func TestFillWindingOppositeWindingCancels(t *testing.T) {
	// A CCW square inside a CW square cancels to zero in the middle: the
	// classic donut.
	outer := segmentsForPolygon([]basics.Point{
		basics.Pt(1, 1), basics.Pt(9, 1), basics.Pt(9, 9), basics.Pt(1, 9),
	})
	hole := segmentsForPolygon([]basics.Point{
		basics.Pt(3, 3), basics.Pt(3, 7), basics.Pt(7, 7), basics.Pt(7, 3),
	})

	edges := ClipSegments(append(outer, hole...), 10, 10)
	SortEdges(edges)

	rows := make(map[int][][2]int)
	FillWinding(edges, func(y, l, r int) {
		rows[y] = append(rows[y], [2]int{l, r})
	})

	for y := 3; y < 7; y++ {
		if len(rows[y]) != 2 {
			t.Fatalf("row %d: expected two spans around the hole, got %v", y, rows[y])
		}
		if rows[y][0] != [2]int{1, 3} || rows[y][1] != [2]int{7, 9} {
			t.Errorf("row %d spans %v, want [1 3] and [7 9]", y, rows[y])
		}
	}
	for _, y := range []int{1, 2, 7, 8} {
		if len(rows[y]) != 1 || rows[y][0] != [2]int{1, 9} {
			t.Errorf("row %d spans %v, want single [1 9]", y, rows[y])
		}
	}
}

func TestEdgeIncrementalQueryMatchesAnalytic(t *testing.T) {
	p1, p2 := basics.Pt(0, 0), basics.Pt(10, 10)
	e := NewEdge(p1, p2, 1)

	slope, intercept := basics.LinePropertiesX(p1, p2)
	for y := e.Top; y < e.Bottom; y++ {
		want := basics.QueryX(float32(y)+0.5, slope, intercept)
		got := e.QueryX()
		if basics.Abs(got-want) > 1e-4 {
			t.Fatalf("row %d: incremental x %v, analytic %v", y, got, want)
		}
	}
}
