package basics

import "math"

// RoundToInt rounds half away from zero. All pixel-snapping in the rasterizer
// goes through this so that scanline sampling stays bit-consistent.
func RoundToInt(v float32) int {
	if v < 0 {
		return -int(math.Floor(float64(-v) + 0.5))
	}
	return int(math.Floor(float64(v) + 0.5))
}

// FloorToInt truncates toward negative infinity.
func FloorToInt(v float32) int {
	return int(math.Floor(float64(v)))
}

// CeilToInt rounds toward positive infinity.
func CeilToInt(v float32) int {
	return int(math.Ceil(float64(v)))
}

// Sqrt is the single-precision square root.
func Sqrt(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// Abs is the single-precision absolute value.
func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Floor is the single-precision floor.
func Floor(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

// IMin returns the smaller of two ints.
func IMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IMax returns the larger of two ints.
func IMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// LinePropertiesX returns the slope and intercept of x as a function of y for
// the line through p1 and p2: x = slope*y + intercept.
func LinePropertiesX(p1, p2 Point) (slope, intercept float32) {
	slope = (p1.X - p2.X) / (p1.Y - p2.Y)
	intercept = p2.X - p2.Y*slope
	return slope, intercept
}

// LinePropertiesY returns the slope and intercept of y as a function of x for
// the line through p1 and p2: y = slope*x + intercept.
func LinePropertiesY(p1, p2 Point) (slope, intercept float32) {
	slope = (p1.Y - p2.Y) / (p1.X - p2.X)
	intercept = p2.Y - p2.X*slope
	return slope, intercept
}

// QueryX evaluates x = slope*y + intercept.
func QueryX(y, slope, intercept float32) float32 {
	return y*slope + intercept
}

// QueryY evaluates y = slope*x + intercept.
func QueryY(x, slope, intercept float32) float32 {
	return x*slope + intercept
}

// IsInside reports whether y lies in the half-open range [top, bottom).
func IsInside(y, top, bottom int) bool {
	return y >= top && y < bottom
}
