package gfx

// Paint describes how a primitive is filled: a solid color or a shader,
// combined with the destination under a blend mode. A Paint does not own its
// shader; the caller keeps the shader alive for every draw that uses it.
type Paint struct {
	Color  Color
	Shader Shader
	Blend  BlendMode
}

// PaintColor returns a solid-color paint with SrcOver blending.
func PaintColor(c Color) Paint {
	return Paint{Color: c, Blend: BlendSrcOver}
}

// PaintShader returns a shader paint with SrcOver blending.
func PaintShader(sh Shader) Paint {
	return Paint{Color: ColorRGBA(0, 0, 0, 1), Shader: sh, Blend: BlendSrcOver}
}

// WithBlend returns a copy of the paint using the given blend mode.
func (p Paint) WithBlend(mode BlendMode) Paint {
	p.Blend = mode
	return p
}
