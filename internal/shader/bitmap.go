package shader

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
	"github.com/arujbansal/2D-Graphics-Engine/internal/buffer"
	"github.com/arujbansal/2D-Graphics-Engine/internal/transform"
)

type tileFunc func(x, y, width, height int) (int, int)

// Bitmap samples a source bitmap through a local matrix and a tile mode.
type Bitmap struct {
	src   *buffer.Bitmap
	local transform.Matrix
	tiler tileFunc
	inv   transform.Matrix
}

// NewBitmap creates a bitmap shader. The local matrix positions the bitmap
// in user space.
func NewBitmap(src *buffer.Bitmap, local transform.Matrix, mode TileMode) *Bitmap {
	sh := &Bitmap{src: src, local: local}

	switch mode {
	case TileClamp:
		sh.tiler = tileClamp
	case TileRepeat:
		sh.tiler = tileRepeat
	case TileMirror:
		sh.tiler = tileMirror
	}

	return sh
}

// IsOpaque reports whether the source bitmap is fully opaque.
func (sh *Bitmap) IsOpaque() bool {
	return sh.src.IsOpaque()
}

// SetContext stores the inverse of ctm * local.
func (sh *Bitmap) SetContext(ctm transform.Matrix) bool {
	inv, ok := transform.Concat(ctm, sh.local).Invert()
	if !ok {
		return false
	}
	sh.inv = inv
	return true
}

// ShadeRow maps the row's pixel centers into source space and samples with
// floor coordinates, advancing by the inverse's first column per step.
func (sh *Bitmap) ShadeRow(x, y, count int, row []basics.Pixel) {
	if sh.src.IsEmpty() {
		for i := 0; i < count; i++ {
			row[i] = 0
		}
		return
	}

	p := sh.inv.MapPoint(basics.Pt(float32(x)+0.5, float32(y)+0.5))
	invX, invY := p.X, p.Y

	for i := 0; i < count; i++ {
		sx, sy := sh.tiler(basics.FloorToInt(invX), basics.FloorToInt(invY),
			sh.src.Width, sh.src.Height)

		row[i] = sh.src.At(sx, sy)

		invX += sh.inv.At(0)
		invY += sh.inv.At(1)
	}
}

func tileClamp(x, y, width, height int) (int, int) {
	return basics.IMax(0, basics.IMin(x, width-1)),
		basics.IMax(0, basics.IMin(y, height-1))
}

func tileRepeat(x, y, width, height int) (int, int) {
	x %= width
	y %= height

	if x < 0 {
		x += width
	}
	if y < 0 {
		y += height
	}

	return x, y
}

func tileMirror(x, y, width, height int) (int, int) {
	x %= 2 * width
	y %= 2 * height

	if x < 0 {
		x += 2 * width
	}
	if y < 0 {
		y += 2 * height
	}

	if x >= width {
		x = 2*width - x - 1
	}
	if y >= height {
		y = 2*height - y - 1
	}

	return x, y
}
