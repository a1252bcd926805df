package raster

import (
	"sort"

	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
)

type crossing struct {
	x       int
	winding int
}

// FillWinding walks a sorted edge list and emits the spans selected by the
// non-zero winding rule. Active edges are tracked in a singly-linked
// next-index list so an expired edge is spliced out in O(1) without losing
// array locality.
func FillWinding(edges []Edge, span SpanFunc) {
	if len(edges) < 2 {
		return
	}

	top := edges[0].Top
	bottom := edges[0].Bottom
	for _, e := range edges {
		top = basics.IMin(top, e.Top)
		bottom = basics.IMax(bottom, e.Bottom)
	}

	next := make([]int, len(edges))
	for i := range next {
		next[i] = i + 1
	}

	crossings := make([]crossing, 0, len(edges))
	start := 0

	for y := top; y < bottom; y++ {
		crossings = crossings[:0]

		prev, cur := start, start

		for cur < len(edges) {
			if edges[cur].Bottom <= y {
				// Fell out above this row.
				if cur == start {
					start = next[cur]
					prev = start
				} else {
					next[prev] = next[cur]
				}
				cur = next[cur]
				continue
			}

			if !basics.IsInside(y, edges[cur].Top, edges[cur].Bottom) {
				// Sorted by top, so nothing further down is active yet.
				break
			}

			crossings = append(crossings, crossing{
				x:       edges[cur].QueryXRound(),
				winding: edges[cur].Winding,
			})

			if basics.IsInside(y+1, edges[cur].Top, edges[cur].Bottom) {
				prev = cur
			} else {
				// Last row for this edge; unlink now so it is never visited
				// again.
				if cur == start {
					start = next[cur]
					prev = start
				} else {
					next[prev] = next[cur]
				}
			}

			cur = next[cur]
		}

		sort.Slice(crossings, func(i, j int) bool {
			if crossings[i].x != crossings[j].x {
				return crossings[i].x < crossings[j].x
			}
			return crossings[i].winding < crossings[j].winding
		})

		accum, left := 0, 0

		for _, c := range crossings {
			if accum == 0 {
				left = c.x
			}

			accum += c.winding

			if accum == 0 {
				span(y, left, c.x)
			}
		}
	}
}
