// Package shader provides the programmable paint sources: bitmap sampling
// with three tile modes, linear and triangle-barycentric gradients, and the
// proxy/compose combinators used by mesh texturing.
//
// A shader is bound to the canvas transform once per draw via SetContext and
// then asked for one premultiplied row at a time. Composite shaders hold
// plain references to their delegates; the caller keeps every delegate alive
// for at least the duration of the draw.
package shader

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
	"github.com/arujbansal/2D-Graphics-Engine/internal/transform"
)

// Shader turns device positions into premultiplied source pixels.
type Shader interface {
	// IsOpaque reports whether every pixel the shader can produce has full
	// alpha, enabling the opaque-source blend table.
	IsOpaque() bool

	// SetContext binds the canvas transform for the coming draw. It returns
	// false when the combined matrix is singular, in which case the draw is
	// abandoned.
	SetContext(ctm transform.Matrix) bool

	// ShadeRow fills row[0..count) with the shader's pixels for the device
	// positions (x..x+count, y), sampled at pixel centers.
	ShadeRow(x, y, count int, row []basics.Pixel)
}

// TileMode selects how source lookups outside the natural domain wrap.
type TileMode int

const (
	TileClamp TileMode = iota
	TileRepeat
	TileMirror
)
