package shader

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
	"github.com/arujbansal/2D-Graphics-Engine/internal/transform"
)

// Compose multiplies the output of two shaders channel by channel. Mesh
// drawing uses it to modulate a textured triangle by its vertex colors.
type Compose struct {
	a, b Shader
}

// NewCompose wraps two shaders into their multiplicative composition.
func NewCompose(a, b Shader) *Compose {
	return &Compose{a: a, b: b}
}

// IsOpaque reports whether both inputs are opaque; the product of two full
// alphas is the only way to keep full alpha.
func (sh *Compose) IsOpaque() bool {
	return sh.a.IsOpaque() && sh.b.IsOpaque()
}

// SetContext binds both inputs; the composition is usable only when both
// succeed.
func (sh *Compose) SetContext(ctm transform.Matrix) bool {
	return sh.a.SetContext(ctm) && sh.b.SetContext(ctm)
}

// ShadeRow shades both inputs into scratch rows and multiplies them with the
// divide-by-255 approximation.
func (sh *Compose) ShadeRow(x, y, count int, row []basics.Pixel) {
	rowA := make([]basics.Pixel, count)
	rowB := make([]basics.Pixel, count)

	sh.a.ShadeRow(x, y, count, rowA)
	sh.b.ShadeRow(x, y, count, rowB)

	for i := 0; i < count; i++ {
		row[i] = basics.PackARGB(
			int(basics.DivBy255(int32(rowA[i].A())*int32(rowB[i].A()))),
			int(basics.DivBy255(int32(rowA[i].R())*int32(rowB[i].R()))),
			int(basics.DivBy255(int32(rowA[i].G())*int32(rowB[i].G()))),
			int(basics.DivBy255(int32(rowA[i].B())*int32(rowB[i].B()))))
	}
}
