// Package blend implements the twelve Porter-Duff compositing operators on
// premultiplied ARGB pixels, plus the specialized dispatch tables for the
// opaque-source and transparent-source fast paths.
package blend

import (
	"github.com/arujbansal/2D-Graphics-Engine/internal/basics"
)

// Mode selects a Porter-Duff operator. The integer values are stable; the
// dispatch tables below index by them.
type Mode int

const (
	Clear Mode = iota // 0
	Src
	Dst
	SrcOver
	DstOver
	SrcIn
	DstIn
	SrcOut
	DstOut
	SrcATop
	DstATop
	Xor

	NumModes = iota
)

// Proc combines one source pixel with one destination pixel. Both are
// premultiplied.
type Proc func(src, dst basics.Pixel) basics.Pixel

func mul(a, b int) int32 {
	return basics.DivBy255(int32(a) * int32(b))
}

func clearDst(src, dst basics.Pixel) basics.Pixel {
	return 0
}

func srcCopy(src, dst basics.Pixel) basics.Pixel {
	return src
}

func dstKeep(src, dst basics.Pixel) basics.Pixel {
	return dst
}

// S + (1 - Sa) * D
func srcOver(src, dst basics.Pixel) basics.Pixel {
	isa := 255 - src.A()
	return basics.PackARGB(src.A()+int(mul(isa, dst.A())),
		src.R()+int(mul(isa, dst.R())),
		src.G()+int(mul(isa, dst.G())),
		src.B()+int(mul(isa, dst.B())))
}

// D + (1 - Da) * S
func dstOver(src, dst basics.Pixel) basics.Pixel {
	ida := 255 - dst.A()
	return basics.PackARGB(dst.A()+int(mul(ida, src.A())),
		dst.R()+int(mul(ida, src.R())),
		dst.G()+int(mul(ida, src.G())),
		dst.B()+int(mul(ida, src.B())))
}

// Da * S
func srcIn(src, dst basics.Pixel) basics.Pixel {
	da := dst.A()
	return basics.PackARGB(int(mul(src.A(), da)),
		int(mul(src.R(), da)),
		int(mul(src.G(), da)),
		int(mul(src.B(), da)))
}

// Sa * D
func dstIn(src, dst basics.Pixel) basics.Pixel {
	sa := src.A()
	return basics.PackARGB(int(mul(dst.A(), sa)),
		int(mul(dst.R(), sa)),
		int(mul(dst.G(), sa)),
		int(mul(dst.B(), sa)))
}

// (1 - Da) * S
func srcOut(src, dst basics.Pixel) basics.Pixel {
	ida := 255 - dst.A()
	return basics.PackARGB(int(mul(src.A(), ida)),
		int(mul(src.R(), ida)),
		int(mul(src.G(), ida)),
		int(mul(src.B(), ida)))
}

// (1 - Sa) * D
func dstOut(src, dst basics.Pixel) basics.Pixel {
	isa := 255 - src.A()
	return basics.PackARGB(int(mul(dst.A(), isa)),
		int(mul(dst.R(), isa)),
		int(mul(dst.G(), isa)),
		int(mul(dst.B(), isa)))
}

// Da * S + (1 - Sa) * D
func srcATop(src, dst basics.Pixel) basics.Pixel {
	da := dst.A()
	isa := 255 - src.A()
	return basics.PackARGB(int(mul(src.A(), da))+int(mul(dst.A(), isa)),
		int(mul(src.R(), da))+int(mul(dst.R(), isa)),
		int(mul(src.G(), da))+int(mul(dst.G(), isa)),
		int(mul(src.B(), da))+int(mul(dst.B(), isa)))
}

// Sa * D + (1 - Da) * S
func dstATop(src, dst basics.Pixel) basics.Pixel {
	sa := src.A()
	ida := 255 - dst.A()
	return basics.PackARGB(int(mul(dst.A(), sa))+int(mul(src.A(), ida)),
		int(mul(dst.R(), sa))+int(mul(src.R(), ida)),
		int(mul(dst.G(), sa))+int(mul(src.G(), ida)),
		int(mul(dst.B(), sa))+int(mul(src.B(), ida)))
}

// (1 - Da) * S + (1 - Sa) * D
func xor(src, dst basics.Pixel) basics.Pixel {
	isa := 255 - src.A()
	ida := 255 - dst.A()
	return basics.PackARGB(int(mul(src.A(), ida))+int(mul(dst.A(), isa)),
		int(mul(src.R(), ida))+int(mul(dst.R(), isa)),
		int(mul(src.G(), ida))+int(mul(dst.G(), isa)),
		int(mul(src.B(), ida))+int(mul(dst.B(), isa)))
}

// Normal dispatches every mode to its full formula.
var Normal = [NumModes]Proc{
	clearDst, srcCopy, dstKeep, srcOver, dstOver, srcIn,
	dstIn, srcOut, dstOut, srcATop, dstATop, xor,
}

// Opaque is the dispatch for sources known to have alpha 255. Modes whose
// formula collapses when Sa = 1 point at the collapsed operator.
var Opaque = [NumModes]Proc{
	clearDst, // Clear
	srcCopy,  // Src
	dstKeep,  // Dst
	srcCopy,  // SrcOver  -> Src
	dstOver,  // DstOver
	srcIn,    // SrcIn
	dstKeep,  // DstIn    -> Dst
	srcOut,   // SrcOut
	clearDst, // DstOut   -> Clear
	srcIn,    // SrcATop  -> SrcIn
	dstOver,  // DstATop  -> DstOver
	srcOut,   // Xor      -> SrcOut
}

// Transparent is the dispatch for sources known to have alpha 0. Every mode
// collapses to either Clear or Dst.
var Transparent = [NumModes]Proc{
	clearDst, // Clear
	clearDst, // Src      -> Clear
	dstKeep,  // Dst
	dstKeep,  // SrcOver  -> Dst
	dstKeep,  // DstOver  -> Dst
	clearDst, // SrcIn    -> Clear
	clearDst, // DstIn    -> Clear
	clearDst, // SrcOut   -> Clear
	dstKeep,  // DstOut   -> Dst
	dstKeep,  // SrcATop  -> Dst
	clearDst, // DstATop  -> Clear
	dstKeep,  // Xor      -> Dst
}

// ProcFor picks the row procedure for a solid source once per draw from its
// premultiplied alpha: 255 selects the Opaque table, 0 the Transparent
// table, anything else Normal.
func ProcFor(mode Mode, srcAlpha int) Proc {
	switch srcAlpha {
	case 255:
		return Opaque[mode]
	case 0:
		return Transparent[mode]
	default:
		return Normal[mode]
	}
}
