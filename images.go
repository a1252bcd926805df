package gfx

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
)

// BitmapFromImage converts any image into a premultiplied bitmap, ready to
// back a bitmap shader or serve as a canvas device.
func BitmapFromImage(src image.Image) *Bitmap {
	bounds := src.Bounds()
	bm := NewBitmap(bounds.Dx(), bounds.Dy())

	for y := 0; y < bm.Height; y++ {
		row := bm.Row(y)
		for x := 0; x < bm.Width; x++ {
			// RGBA() is already alpha-premultiplied, 16 bits per channel.
			r, g, b, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			row[x] = PackARGB(int(a>>8), int(r>>8), int(g>>8), int(b>>8))
		}
	}

	return bm
}

// BitmapFromImageScaled resamples the image to width x height before
// conversion. Useful for sizing shader textures independently of their
// source assets.
func BitmapFromImageScaled(src image.Image, width, height int) *Bitmap {
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return BitmapFromImage(scaled)
}

// ToRGBA copies the bitmap into the standard library's premultiplied RGBA
// image type.
func ToRGBA(bm *Bitmap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bm.Width, bm.Height))

	for y := 0; y < bm.Height; y++ {
		for x, p := range bm.Row(y) {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(p.R()),
				G: uint8(p.G()),
				B: uint8(p.B()),
				A: uint8(p.A()),
			})
		}
	}

	return img
}

// ToNRGBA unpremultiplies the bitmap into a straight-alpha image, the format
// most encoders expect.
func ToNRGBA(bm *Bitmap) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, bm.Width, bm.Height))

	for y := 0; y < bm.Height; y++ {
		for x, p := range bm.Row(y) {
			img.SetNRGBA(x, y, unpremultiply(p))
		}
	}

	return img
}

func unpremultiply(p basics.Pixel) color.NRGBA {
	a := p.A()
	if a == 0 {
		return color.NRGBA{}
	}

	return color.NRGBA{
		R: uint8((p.R()*255 + a/2) / a),
		G: uint8((p.G()*255 + a/2) / a),
		B: uint8((p.B()*255 + a/2) / a),
		A: uint8(a),
	}
}
