package raster

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
)

// ClipSegments clips every segment against the device rectangle
// [0,width] x [0,height] and returns the surviving edges, each tagged with
// the orientation of its source segment. Segments landing on a horizontal
// scanline boundary are dropped; parts sliding off the left or right side are
// projected onto the vertical device boundary instead of discarded, because
// winding accumulation needs those boundary edges to count partially clipped
// contours correctly.
func ClipSegments(segments []Segment, width, height int) []Edge {
	clipped := make([]Edge, 0, 4*len(segments))

	fWidth := float32(width)
	fHeight := float32(height)

	for _, seg := range segments {
		p1, p2 := seg.P1, seg.P2

		// Horizontal edges never cross a scanline center.
		if basics.RoundToInt(p1.Y) == basics.RoundToInt(p2.Y) {
			continue
		}

		orientation := -1
		if p1.Y > p2.Y {
			orientation = 1
		}

		// Vertical clip. Canonicalize p1 as the top point first.
		if p1.Y > p2.Y {
			p1, p2 = p2, p1
		}
		if p2.Y <= 0 || p1.Y >= fHeight {
			continue
		}

		slopeX, interceptX := basics.LinePropertiesX(p1, p2)

		y1 := max(p1.Y, 0)
		p1 = basics.Pt(basics.QueryX(y1, slopeX, interceptX), y1)

		y2 := min(p2.Y, fHeight)
		p2 = basics.Pt(basics.QueryX(y2, slopeX, interceptX), y2)

		// Horizontal clip. Canonicalize p1 as the left point.
		if p1.X > p2.X {
			p1, p2 = p2, p1
		}

		slopeY, interceptY := basics.LinePropertiesY(p1, p2)

		switch {
		case p2.X <= 0:
			// Entirely left of the device: project onto x = 0.
			clipped = append(clipped, NewEdge(basics.Pt(0, p1.Y), basics.Pt(0, p2.Y), orientation))

		case p1.X >= fWidth:
			// Entirely right of the device: project onto x = width.
			clipped = append(clipped, NewEdge(basics.Pt(fWidth, p1.Y), basics.Pt(fWidth, p2.Y), orientation))

		case p1.X < 0 && p2.X > fWidth:
			// Spans the whole device: left boundary piece, right boundary
			// piece, and the interior between the two intersections.
			clipLeft := basics.Pt(0, basics.QueryY(0, slopeY, interceptY))
			clipRight := basics.Pt(fWidth, basics.QueryY(fWidth, slopeY, interceptY))

			clipped = append(clipped,
				NewEdge(basics.Pt(0, p1.Y), clipLeft, orientation),
				NewEdge(basics.Pt(fWidth, p2.Y), clipRight, orientation),
				NewEdge(clipLeft, clipRight, orientation))

		case p1.X < 0:
			clipLeft := basics.Pt(0, basics.QueryY(0, slopeY, interceptY))

			clipped = append(clipped,
				NewEdge(basics.Pt(0, p1.Y), clipLeft, orientation),
				NewEdge(clipLeft, p2, orientation))

		case p2.X > fWidth:
			clipRight := basics.Pt(fWidth, basics.QueryY(fWidth, slopeY, interceptY))

			clipped = append(clipped,
				NewEdge(basics.Pt(fWidth, p2.Y), clipRight, orientation),
				NewEdge(p1, clipRight, orientation))

		default:
			clipped = append(clipped, NewEdge(p1, p2, orientation))
		}
	}

	return clipped
}
