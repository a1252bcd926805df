package gfx

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/shader"
	"github.com/arujbansal/2D-Graphics-Engine/internal/transform"
)

// DrawMesh fills triCount triangles indexed into verts. When colors are
// given, each triangle carries a barycentric gradient of its vertex colors;
// when texs are given, the paint's shader is warped from texture space onto
// each device triangle; with both, the two are multiplied together.
// Degenerate texture triangles are skipped.
func (c *Canvas) DrawMesh(verts []Point, colors []Color, texs []Point, triCount int, indices []int, paint Paint) {
	if colors != nil && texs == nil {
		for i, n := 0, 0; i < triCount; i, n = i+1, n+3 {
			tri := [3]Point{verts[indices[n]], verts[indices[n+1]], verts[indices[n+2]]}
			triColors := [3]Color{colors[indices[n]], colors[indices[n+1]], colors[indices[n+2]]}

			gradient := shader.NewTriangleGradient(tri, triColors)
			c.DrawConvexPolygon(tri[:], Paint{Shader: gradient, Blend: paint.Blend})
		}
	}

	if texs != nil {
		for i, n := 0, 0; i < triCount; i, n = i+1, n+3 {
			tri := [3]Point{verts[indices[n]], verts[indices[n+1]], verts[indices[n+2]]}
			triTexs := [3]Point{texs[indices[n]], texs[indices[n+1]], texs[indices[n+2]]}

			deviceBasis := transform.TriangleBasis(tri[0], tri[1], tri[2])
			texBasis := transform.TriangleBasis(triTexs[0], triTexs[1], triTexs[2])

			texInv, ok := texBasis.Invert()
			if !ok {
				continue
			}

			proxy := shader.NewProxy(paint.Shader, transform.Concat(deviceBasis, texInv))

			if colors != nil {
				triColors := [3]Color{colors[indices[n]], colors[indices[n+1]], colors[indices[n+2]]}
				gradient := shader.NewTriangleGradient(tri, triColors)

				composed := shader.NewCompose(gradient, proxy)
				c.DrawConvexPolygon(tri[:], Paint{Shader: composed, Blend: paint.Blend})
			} else {
				c.DrawConvexPolygon(tri[:], Paint{Shader: proxy, Blend: paint.Blend})
			}
		}
	}
}

// bilinearPoint interpolates the quad payload at parameters (s, t). The
// payload order is row-major: 0-1 across the top, 2-3 across the bottom.
func bilinearPoint(s, t float32, payload [4]Point) Point {
	return payload[0].Scale((1 - s) * (1 - t)).
		Add(payload[1].Scale(s * (1 - t))).
		Add(payload[2].Scale((1 - s) * t)).
		Add(payload[3].Scale(s * t))
}

func bilinearColor(s, t float32, payload [4]Color) Color {
	return payload[0].Scale((1 - s) * (1 - t)).
		Add(payload[1].Scale(s * (1 - t))).
		Add(payload[2].Scale((1 - s) * t)).
		Add(payload[3].Scale(s * t))
}

// DrawQuad tessellates the bilinear patch verts[0..3] (wound v0, v1, v2, v3
// around the quad) into a (level+2) x (level+2) grid of sample points and
// draws the resulting triangle mesh. colors and texs are optional per-corner
// payloads interpolated over the same grid.
func (c *Canvas) DrawQuad(verts [4]Point, colors []Color, texs []Point, level int, paint Paint) {
	pointCount := level + 2

	gridPoints := make([]Point, 0, pointCount*pointCount)

	var gridColors []Color
	if colors != nil {
		gridColors = make([]Color, 0, pointCount*pointCount)
	}
	var gridTexs []Point
	if texs != nil {
		gridTexs = make([]Point, 0, pointCount*pointCount)
	}

	// Swap the last two corners so the payload reads row-major.
	vertsPayload := [4]Point{verts[0], verts[1], verts[3], verts[2]}

	var colorsPayload [4]Color
	if colors != nil {
		colorsPayload = [4]Color{colors[0], colors[1], colors[3], colors[2]}
	}
	var texsPayload [4]Point
	if texs != nil {
		texsPayload = [4]Point{texs[0], texs[1], texs[3], texs[2]}
	}

	step := 1 / float32(level+1)

	t := float32(0)
	for i := 0; i < pointCount; i++ {
		s := float32(0)
		for j := 0; j < pointCount; j++ {
			gridPoints = append(gridPoints, bilinearPoint(s, t, vertsPayload))

			if colors != nil {
				gridColors = append(gridColors, bilinearColor(s, t, colorsPayload))
			}
			if texs != nil {
				gridTexs = append(gridTexs, bilinearPoint(s, t, texsPayload))
			}

			s += step
		}
		t += step
	}

	indices := make([]int, 0, 6*(pointCount-1)*(pointCount-1))

	for i := 0; i < pointCount-1; i++ {
		for j := 0; j < pointCount; j++ {
			cur := i*pointCount + j

			if j < pointCount-1 {
				indices = append(indices, cur, cur+1, cur+pointCount)
			}
			if j >= 1 {
				indices = append(indices, cur, cur+pointCount-1, cur+pointCount)
			}
		}
	}

	c.DrawMesh(gridPoints, gridColors, gridTexs, len(indices)/3, indices, paint)
}
