package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
	"github.com/arujbansal/2D-Graphics-Engine/internal/buffer"
)

func pix(a, r, g, b int) basics.Pixel {
	return basics.PackARGB(a, r, g, b)
}

func TestTrivialModes(t *testing.T) {
	assert := assert.New(t)

	src := pix(200, 100, 50, 25)
	dst := pix(255, 10, 20, 30)

	assert.Equal(basics.Pixel(0), Normal[Clear](src, dst))
	assert.Equal(src, Normal[Src](src, dst))
	assert.Equal(dst, Normal[Dst](src, dst))
}

func TestSrcOver(t *testing.T) {
	assert := assert.New(t)

	// Half-coverage green over opaque black: result keeps full alpha and
	// roughly half the green.
	src := pix(128, 0, 128, 0)
	dst := pix(255, 0, 0, 0)

	out := Normal[SrcOver](src, dst)
	assert.Equal(255, out.A())
	assert.Equal(0, out.R())
	assert.Equal(128, out.G())
	assert.Equal(0, out.B())
}

func TestSrcOverOpaqueSourceEqualsSrc(t *testing.T) {
	assert := assert.New(t)

	src := pix(255, 200, 100, 50)
	dst := pix(255, 1, 2, 3)

	assert.Equal(Normal[Src](src, dst), Normal[SrcOver](src, dst))
	assert.Equal(src, Opaque[SrcOver](src, dst))
}

func TestPorterDuffAgainstReference(t *testing.T) {
	assert := assert.New(t)

	// Reference results computed from the Porter-Duff formulas on the same
	// premultiplied inputs, using the same divide-by-255 approximation.
	src := pix(100, 60, 40, 20)
	dst := pix(200, 80, 120, 160)

	type expectation struct {
		mode Mode
		want basics.Pixel
	}

	mulRef := func(a, b int) int { return int(basics.DivBy255(int32(a) * int32(b))) }

	cases := []expectation{
		{SrcIn, pix(mulRef(100, 200), mulRef(60, 200), mulRef(40, 200), mulRef(20, 200))},
		{DstIn, pix(mulRef(200, 100), mulRef(80, 100), mulRef(120, 100), mulRef(160, 100))},
		{SrcOut, pix(mulRef(100, 55), mulRef(60, 55), mulRef(40, 55), mulRef(20, 55))},
		{DstOut, pix(mulRef(200, 155), mulRef(80, 155), mulRef(120, 155), mulRef(160, 155))},
	}

	for _, c := range cases {
		assert.Equal(c.want, Normal[c.mode](src, dst), "mode %d", c.mode)
	}
}

func TestSrcATopPreservesDestinationAlpha(t *testing.T) {
	assert := assert.New(t)

	src := pix(100, 60, 40, 20)
	dst := pix(200, 80, 120, 160)

	out := Normal[SrcATop](src, dst)
	// Sa*Da/255 + (1-Sa)*Da/255 == Da up to rounding.
	assert.InDelta(200, out.A(), 1)
}

func TestXorExtremes(t *testing.T) {
	assert := assert.New(t)

	opaqueSrc := pix(255, 255, 0, 0)
	opaqueDst := pix(255, 0, 255, 0)

	// Opaque xor opaque erases everything.
	assert.Equal(basics.Pixel(0), Normal[Xor](opaqueSrc, opaqueDst))

	// Xor against an empty destination is Src.
	assert.Equal(opaqueSrc, Normal[Xor](opaqueSrc, 0))
}

func TestOpaqueTableAgreesWithNormal(t *testing.T) {
	assert := assert.New(t)

	src := pix(255, 180, 90, 45)
	dsts := []basics.Pixel{0, pix(255, 1, 2, 3), pix(128, 64, 32, 16)}

	for mode := Mode(0); mode < NumModes; mode++ {
		for _, dst := range dsts {
			assert.Equal(Normal[mode](src, dst), Opaque[mode](src, dst),
				"mode %d dst %08x", mode, uint32(dst))
		}
	}
}

func TestTransparentTableAgreesWithNormal(t *testing.T) {
	assert := assert.New(t)

	src := basics.Pixel(0)
	dsts := []basics.Pixel{0, pix(255, 1, 2, 3), pix(128, 64, 32, 16)}

	for mode := Mode(0); mode < NumModes; mode++ {
		for _, dst := range dsts {
			assert.Equal(Normal[mode](src, dst), Transparent[mode](src, dst),
				"mode %d dst %08x", mode, uint32(dst))
		}
	}
}

func TestProcFor(t *testing.T) {
	assert := assert.New(t)

	src := pix(255, 10, 20, 30)
	dst := pix(200, 5, 10, 15)

	// Alpha 255 routes through the opaque table: SrcOver behaves as Src.
	assert.Equal(src, ProcFor(SrcOver, 255)(src, dst))

	// Alpha 0 routes through the transparent table exclusively: Src clears.
	assert.Equal(basics.Pixel(0), ProcFor(Src, 0)(0, dst))
	assert.Equal(dst, ProcFor(Xor, 0)(0, dst))

	// Anything else uses the full formula.
	general := pix(100, 50, 25, 10)
	assert.Equal(Normal[SrcOver](general, dst), ProcFor(SrcOver, 100)(general, dst))
}

func TestBlitRowSolid(t *testing.T) {
	assert := assert.New(t)

	bm := buffer.NewBitmap(8, 2)
	src := pix(255, 255, 0, 0)

	BlitRowSolid(bm, 1, 2, 6, src, Normal[Src])

	for x := 0; x < 8; x++ {
		want := basics.Pixel(0)
		if x >= 2 && x < 6 {
			want = src
		}
		assert.Equal(want, bm.At(x, 1), "x=%d", x)
	}
	for x := 0; x < 8; x++ {
		assert.Equal(basics.Pixel(0), bm.At(x, 0), "row 0 must be untouched")
	}
}

func TestBlitRowShader(t *testing.T) {
	assert := assert.New(t)

	bm := buffer.NewBitmap(4, 1)
	row := []basics.Pixel{pix(255, 1, 0, 0), pix(255, 2, 0, 0), pix(255, 3, 0, 0)}

	BlitRowShader(bm, 0, 1, 4, row, Normal[Src])

	assert.Equal(basics.Pixel(0), bm.At(0, 0))
	assert.Equal(row[0], bm.At(1, 0))
	assert.Equal(row[1], bm.At(2, 0))
	assert.Equal(row[2], bm.At(3, 0))
}
