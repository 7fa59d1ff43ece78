// Package blend provides straight-alpha compositing for 8-bit RGBA
// pixels.
package blend

import (
	"image/color"
	"math"
)

// Over composites src over dst. Both colors use straight
// (non-premultiplied) alpha.
func Over(dst, src color.RGBA) color.RGBA {
	switch {
	case src.A == 255:
		return src
	case src.A == 0:
		return dst
	case dst.A == 255:
		// Opaque destinations stay in byte math.
		inv := inv255(src.A)
		return color.RGBA{
			R: mulDiv255(src.R, src.A) + mulDiv255(dst.R, inv),
			G: mulDiv255(src.G, src.A) + mulDiv255(dst.G, inv),
			B: mulDiv255(src.B, src.A) + mulDiv255(dst.B, inv),
			A: 255,
		}
	}

	srcA := float64(src.A) / 255
	dstA := float64(dst.A) / 255
	invSrcA := 1 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return color.RGBA{}
	}

	return color.RGBA{
		R: channel(src.R, dst.R, srcA, dstA, invSrcA, outA),
		G: channel(src.G, dst.G, srcA, dstA, invSrcA, outA),
		B: channel(src.B, dst.B, srcA, dstA, invSrcA, outA),
		A: uint8(math.Round(outA * 255)),
	}
}

// channel composites one color channel, un-premultiplying by the
// output alpha.
func channel(src, dst uint8, srcA, dstA, invSrcA, outA float64) uint8 {
	return uint8(math.Round((float64(src)*srcA + float64(dst)*dstA*invSrcA) / outA))
}

// OverOpacity blends src into dst at the given opacity in [0, 1],
// ignoring src's stored alpha for the channel mix. The stored alpha is
// carried through unchanged as the result's alpha.
func OverOpacity(dst, src color.RGBA, opacity float64) color.RGBA {
	return OverCoverage(dst, src, Alpha8(opacity))
}

// OverCoverage is OverOpacity with the opacity already converted to
// byte coverage, for callers that blend many pixels at one opacity.
func OverCoverage(dst, src color.RGBA, coverage uint8) color.RGBA {
	t := uint32(coverage)
	return color.RGBA{
		R: lerp8(dst.R, src.R, t),
		G: lerp8(dst.G, src.G, t),
		B: lerp8(dst.B, src.B, t),
		A: src.A,
	}
}

// lerp8 interpolates between a and b by t/255 with rounding.
func lerp8(a, b uint8, t uint32) uint8 {
	return uint8((uint32(a)*(255-t) + uint32(b)*t + 127) / 255)
}

// Alpha8 converts an opacity in [0, 1] to byte coverage. Out of range
// values are clamped.
func Alpha8(opacity float64) uint8 {
	switch {
	case opacity <= 0:
		return 0
	case opacity >= 1:
		return 255
	}
	return uint8(math.Round(opacity * 255))
}
