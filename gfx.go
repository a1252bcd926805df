// Package gfx is a CPU software rasterizer. It converts vector primitives
// (rectangles, convex polygons, paths of lines and Bézier curves, and
// parametric meshes) into pixels of a destination bitmap, with solid-color
// or shader paints, the twelve Porter-Duff blend modes, and an affine
// transform stack.
//
// Basic usage:
//
//	device := gfx.NewBitmap(256, 256)
//	canvas := gfx.NewCanvas(device)
//	canvas.Clear(gfx.ColorRGBA(1, 1, 1, 1))
//	canvas.DrawRect(gfx.RectLTRB(10, 10, 100, 100),
//		gfx.PaintColor(gfx.ColorRGBA(1, 0, 0, 1)))
//
// Rendering is aliased: edges snap to pixel centers sampled at y + 0.5.
// Every Canvas owns exclusive access to its Bitmap during a draw call; no
// package-level state is shared between canvases.
package gfx

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
	"github.com/arujbansal/2D-Graphics-Engine/internal/blend"
	"github.com/arujbansal/2D-Graphics-Engine/internal/buffer"
	"github.com/arujbansal/2D-Graphics-Engine/internal/shader"
	"github.com/arujbansal/2D-Graphics-Engine/internal/transform"
)

// Geometry and pixel value types, re-exported from the internal packages so
// callers never import internal paths.
type (
	// Point is a position or displacement with single-precision coordinates.
	Point = basics.Point
	// Vector is an alias of Point used where a displacement is meant.
	Vector = basics.Vector
	// Rect is an axis-aligned rectangle.
	Rect = basics.Rect
	// Color is an unpremultiplied RGBA color in the unit range.
	Color = basics.Color
	// Pixel is a 32-bit premultiplied ARGB pixel.
	Pixel = basics.Pixel
	// Bitmap is the destination (or shader source) pixel grid.
	Bitmap = buffer.Bitmap
	// Matrix is a 2x3 affine transform.
	Matrix = transform.Matrix
	// Shader produces premultiplied source rows for a draw.
	Shader = shader.Shader
	// TileMode selects out-of-domain behavior for bitmaps and gradients.
	TileMode = shader.TileMode
	// BlendMode selects one of the twelve Porter-Duff operators.
	BlendMode = blend.Mode
)

// Constructors re-exported alongside their types.
var (
	Pt         = basics.Pt
	RectLTRB   = basics.RectLTRB
	RectWH     = basics.RectWH
	RectXYWH   = basics.RectXYWH
	ColorRGBA  = basics.ColorRGBA
	PackARGB   = basics.PackARGB
	NewBitmap = buffer.NewBitmap
	Identity  = transform.Identity
	NewMatrix = transform.New
	FromBasis = transform.FromBasis
	Translate = transform.Translate
	Scale     = transform.Scale
	Rotate    = transform.Rotate
	Concat    = transform.Concat
)

// Tile modes.
const (
	TileClamp  = shader.TileClamp
	TileRepeat = shader.TileRepeat
	TileMirror = shader.TileMirror
)

// Blend modes. The integer values are stable and index the internal dispatch
// tables.
const (
	BlendClear   = blend.Clear
	BlendSrc     = blend.Src
	BlendDst     = blend.Dst
	BlendSrcOver = blend.SrcOver
	BlendDstOver = blend.DstOver
	BlendSrcIn   = blend.SrcIn
	BlendDstIn   = blend.DstIn
	BlendSrcOut  = blend.SrcOut
	BlendDstOut  = blend.DstOut
	BlendSrcATop = blend.SrcATop
	BlendDstATop = blend.DstATop
	BlendXor     = blend.Xor
)
