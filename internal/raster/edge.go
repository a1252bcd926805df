// Package raster provides the scanline rasterizer: device-rect clipping of
// oriented segments into edges, a two-cursor convex fill, and a non-zero
// winding fill for arbitrary edge lists.
package raster

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
)

// Segment is one oriented line segment in device coordinates.
type Segment struct {
	P1, P2 basics.Point
}

// Edge is a clipped, monotone-in-y segment prepared for scanline walking.
// Top is inclusive, Bottom exclusive. CurX steps incrementally: one QueryX
// per scanline costs a single add.
type Edge struct {
	Top, Bottom int
	Winding     int
	CurX        float32
	SlopeX      float32
	InterceptX  float32
}

// NewEdge builds an edge from a segment and its winding sign. CurX is primed
// so that the first QueryX lands on the center of scanline Top.
func NewEdge(p1, p2 basics.Point, winding int) Edge {
	slope, intercept := basics.LinePropertiesX(p1, p2)

	y1 := basics.RoundToInt(p1.Y)
	y2 := basics.RoundToInt(p2.Y)

	top := basics.IMin(y1, y2)
	return Edge{
		Top:        top,
		Bottom:     basics.IMax(y1, y2),
		Winding:    winding,
		CurX:       (float32(top)-0.5)*slope + intercept,
		SlopeX:     slope,
		InterceptX: intercept,
	}
}

// QueryX advances the running x by one scanline and returns it. Callers must
// query each scanline exactly once, in order.
func (e *Edge) QueryX() float32 {
	e.CurX += e.SlopeX
	return e.CurX
}

// QueryXRound is QueryX snapped to the nearest pixel column.
func (e *Edge) QueryXRound() int {
	return basics.RoundToInt(e.QueryX())
}
