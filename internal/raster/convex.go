package raster

import (
	"sort"

	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
)

// SpanFunc receives one filled span per scanline. left is the first pixel
// column of the span and right the first column past it.
type SpanFunc func(y, left, right int)

// SortEdges orders edges by their top scanline, the order both fill drivers
// require.
func SortEdges(edges []Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Top < edges[j].Top
	})
}

// FillConvex walks a sorted convex edge list with two active cursors and
// emits one span per scanline. Convexity guarantees exactly two active edges
// at any scanline, so when a cursor's edge runs out the next unused edge
// replaces it.
func FillConvex(edges []Edge, span SpanFunc) {
	if len(edges) < 2 {
		return
	}

	top := edges[0].Top
	bottom := edges[len(edges)-1].Bottom

	edge1, edge2 := 0, 1

	for y := top; y < bottom; y++ {
		if y >= edges[edge1].Bottom {
			edge1 = basics.IMax(edge1, edge2) + 1
		}
		if y >= edges[edge2].Bottom {
			edge2 = basics.IMax(edge1, edge2) + 1
		}

		x1 := edges[edge1].QueryXRound()
		x2 := edges[edge2].QueryXRound()

		if x1 > x2 {
			x1, x2 = x2, x1
		}

		span(y, x1, x2)
	}
}
