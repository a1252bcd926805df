package shader

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
	"github.com/arujbansal/2D-Graphics-Engine/internal/transform"
)

// gradientTileFunc reduces an out-of-range gradient parameter to a color
// stop index and the fractional distance toward the next stop.
type gradientTileFunc func(u float32, numColors int) (int, float32)

// LinearGradient interpolates a color ramp along the segment p0 -> p1.
type LinearGradient struct {
	mode       TileMode
	tiler      gradientTileFunc
	lineMapper transform.Matrix
	inv        transform.Matrix

	numColors  int
	premulP0   basics.Pixel
	premulP1   basics.Pixel
	colors     []basics.Color
	colorsDiff []basics.Color
}

// NewLinearGradient creates a gradient shader from at least one color stop.
// It returns nil when colors is empty.
func NewLinearGradient(p0, p1 basics.Point, colors []basics.Color, mode TileMode) *LinearGradient {
	if len(colors) < 1 {
		return nil
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	sh := &LinearGradient{
		mode: mode,
		// Maps the unit x-axis onto p0 -> p1 so the gradient parameter is
		// plain x in local space.
		lineMapper: transform.New(dx, -dy, p0.X,
			dy, dx, p0.Y),
		numColors: len(colors),
		premulP0:  colors[0].Premul255(),
		premulP1:  colors[len(colors)-1].Premul255(),
	}

	switch mode {
	case TileRepeat:
		sh.tiler = gradientTileRepeat
	case TileMirror:
		sh.tiler = gradientTileMirror
	}

	if sh.numColors == 1 {
		return sh
	}

	sh.colors = make([]basics.Color, len(colors))
	copy(sh.colors, colors)

	// One extra zero entry so a tile fold landing exactly on the last stop
	// (mirror at u = 1) indexes a no-op delta.
	sh.colorsDiff = make([]basics.Color, len(colors))
	for i := 0; i < len(colors)-1; i++ {
		sh.colorsDiff[i] = colors[i+1].Sub(colors[i])
	}

	return sh
}

// IsOpaque always reports false; stop interpolation can produce any alpha.
func (sh *LinearGradient) IsOpaque() bool {
	return false
}

// SetContext stores the inverse of ctm * lineMapper.
func (sh *LinearGradient) SetContext(ctm transform.Matrix) bool {
	inv, ok := transform.Concat(ctm, sh.lineMapper).Invert()
	if !ok {
		return false
	}
	sh.inv = inv
	return true
}

// ShadeRow emits the ramp for one row. Only the x coordinate of the mapped
// point matters, so the walk is a scalar add per pixel.
func (sh *LinearGradient) ShadeRow(x, y, count int, row []basics.Pixel) {
	switch sh.numColors {
	case 1:
		for i := 0; i < count; i++ {
			row[i] = sh.premulP0
		}
	case 2:
		sh.shadeRow(x, y, count, row, true)
	default:
		sh.shadeRow(x, y, count, row, false)
	}
}

func (sh *LinearGradient) shadeRow(x, y, count int, row []basics.Pixel, twoColors bool) {
	u := sh.inv.At(0)*(float32(x)+0.5) + sh.inv.At(2)*(float32(y)+0.5) + sh.inv.At(4)

	for i := 0; i < count; i++ {
		smaller := u <= 0
		greater := u >= 1

		switch {
		case smaller && sh.mode == TileClamp:
			row[i] = sh.premulP0
		case greater && sh.mode == TileClamp:
			row[i] = sh.premulP1
		default:
			var index int
			var frac float32

			if smaller || greater {
				index, frac = sh.tiler(u, sh.numColors)
			} else if twoColors {
				index, frac = 0, u
			} else {
				scaled := u * float32(sh.numColors-1)
				index = basics.FloorToInt(scaled)
				frac = scaled - float32(index)
			}

			c := sh.colors[index].Add(sh.colorsDiff[index].Scale(frac))
			if i == 0 || i == count-1 {
				row[i] = c.Premul255Clamp()
			} else {
				row[i] = c.Premul255()
			}
		}

		u += sh.inv.At(0)
	}
}

func gradientTileRepeat(u float32, numColors int) (int, float32) {
	u -= basics.Floor(u)

	scaled := u * float32(numColors-1)
	index := basics.FloorToInt(scaled)
	return index, scaled - float32(index)
}

func gradientTileMirror(u float32, numColors int) (int, float32) {
	u *= 0.5
	u -= basics.Floor(u)
	if u > 0.5 {
		u = 1 - u
	}
	u *= 2

	scaled := u * float32(numColors-1)
	index := basics.FloorToInt(scaled)
	return index, scaled - float32(index)
}
