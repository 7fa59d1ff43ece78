package freehand

import (
	"image"
	"image/color"

	"github.com/vishusandy/freehand/internal/blend"
)

// BlendAt blends c into the pixel of img at (x, y) at the given
// opacity in [0, 1]. The channel mix uses opacity alone; c's stored
// alpha becomes the pixel's new alpha. Out-of-bounds coordinates are
// a no-op.
func BlendAt(img *image.RGBA, x, y int, opacity float64, c color.RGBA) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return
	}
	img.SetRGBA(x, y, blend.OverOpacity(img.RGBAAt(x, y), c, opacity))
}

// blendPx composites c over the pixel at p with the given coverage in
// place of the color's own alpha. Out-of-bounds points are dropped.
func blendPx(img *image.RGBA, p image.Point, c color.RGBA, coverage uint8) {
	if !p.In(img.Bounds()) {
		return
	}
	src := color.RGBA{R: c.R, G: c.G, B: c.B, A: coverage}
	img.SetRGBA(p.X, p.Y, blend.Over(img.RGBAAt(p.X, p.Y), src))
}

// blendCoverPx blends c into the pixel at (x, y) at a precomputed
// byte coverage. Callers clip before calling.
func blendCoverPx(img *image.RGBA, x, y int, c color.RGBA, coverage uint8) {
	img.SetRGBA(x, y, blend.OverCoverage(img.RGBAAt(x, y), c, coverage))
}
