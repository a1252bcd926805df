package basics

// Color is an unpremultiplied RGBA color with channels in the linear unit
// range. Values outside [0, 1] can appear transiently during interpolation;
// premultiplication is where they get resolved.
type Color struct {
	R, G, B, A float32
}

// ColorRGBA constructs a color from its four channels.
func ColorRGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Add returns the component-wise sum c + d.
func (c Color) Add(d Color) Color {
	return Color{c.R + d.R, c.G + d.G, c.B + d.B, c.A + d.A}
}

// Sub returns the component-wise difference c - d.
func (c Color) Sub(d Color) Color {
	return Color{c.R - d.R, c.G - d.G, c.B - d.B, c.A - d.A}
}

// Scale returns the color with every component scaled by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

func unit255(v float32) int {
	return RoundToInt(v * 255)
}

// Premul255 converts the color to a premultiplied pixel. The channels must
// already be inside [0, 1]; use Premul255Clamp where rounding may escape.
func (c Color) Premul255() Pixel {
	return PackARGB(unit255(c.A),
		unit255(c.A*c.R),
		unit255(c.A*c.G),
		unit255(c.A*c.B))
}

// Premul255Clamp is Premul255 with each premultiplied channel clamped to the
// unit range first.
func (c Color) Premul255Clamp() Pixel {
	clamp := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}

	return PackARGB(unit255(clamp(c.A)),
		unit255(clamp(c.A*c.R)),
		unit255(clamp(c.A*c.G)),
		unit255(clamp(c.A*c.B)))
}
