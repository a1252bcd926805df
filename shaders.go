package gfx

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/shader"
)

// NewBitmapShader samples src through the local matrix with the given tile
// mode. The bitmap is read, never written; an empty bitmap shades
// transparent black.
func NewBitmapShader(src *Bitmap, local Matrix, mode TileMode) Shader {
	return shader.NewBitmap(src, local, mode)
}

// NewLinearGradient ramps through the color stops along p0 -> p1. It returns
// nil when colors is empty; a single color shades as a constant.
func NewLinearGradient(p0, p1 Point, colors []Color, mode TileMode) Shader {
	if sh := shader.NewLinearGradient(p0, p1, colors, mode); sh != nil {
		return sh
	}
	return nil
}

// NewTriangleGradient interpolates the three vertex colors barycentrically
// across the triangle.
func NewTriangleGradient(verts [3]Point, colors [3]Color) Shader {
	return shader.NewTriangleGradient(verts, colors)
}

// NewProxyShader presents real under an extra matrix appended to the canvas
// transform.
func NewProxyShader(real Shader, extra Matrix) Shader {
	return shader.NewProxy(real, extra)
}

// NewComposeShader multiplies the outputs of a and b channel by channel.
func NewComposeShader(a, b Shader) Shader {
	return shader.NewCompose(a, b)
}
