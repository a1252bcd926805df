package shader

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
	"github.com/arujbansal/2D-Graphics-Engine/internal/transform"
)

// Proxy forwards to another shader with an extra matrix appended to the
// canvas transform. Mesh texturing uses it to map texture space onto a
// device triangle.
type Proxy struct {
	real  Shader
	extra transform.Matrix
}

// NewProxy wraps real so it sees ctm * extra as its context.
func NewProxy(real Shader, extra transform.Matrix) *Proxy {
	return &Proxy{real: real, extra: extra}
}

// IsOpaque delegates to the wrapped shader.
func (sh *Proxy) IsOpaque() bool {
	return sh.real.IsOpaque()
}

// SetContext delegates with the extra matrix appended.
func (sh *Proxy) SetContext(ctm transform.Matrix) bool {
	return sh.real.SetContext(transform.Concat(ctm, sh.extra))
}

// ShadeRow delegates unchanged.
func (sh *Proxy) ShadeRow(x, y, count int, row []basics.Pixel) {
	sh.real.ShadeRow(x, y, count, row)
}
