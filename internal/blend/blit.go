package blend

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
	"github.com/arujbansal/2D-Graphics-Engine/internal/buffer"
)

// BlitRowShader composites row[0..x2-x1] onto the pixels [x1, x2) of
// scanline y. The proc is chosen once per scanline by the caller so the
// inner loop carries no branches.
func BlitRowShader(dst *buffer.Bitmap, y, x1, x2 int, row []basics.Pixel, proc Proc) {
	pixels := dst.Row(y)
	for x := x1; x < x2; x++ {
		pixels[x] = proc(row[x-x1], pixels[x])
	}
}

// BlitRowSolid composites a constant source pixel onto [x1, x2) of
// scanline y.
func BlitRowSolid(dst *buffer.Bitmap, y, x1, x2 int, src basics.Pixel, proc Proc) {
	pixels := dst.Row(y)
	for x := x1; x < x2; x++ {
		pixels[x] = proc(src, pixels[x])
	}
}
