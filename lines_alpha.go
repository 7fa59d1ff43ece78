package freehand

import (
	"image"
	"image/color"
	"math"

	"github.com/vishusandy/freehand/internal/blend"
)

// DrawHorizontalLineAlpha blends a horizontal line into img at the
// given opacity, from x0 to x1 inclusive at row y.
func DrawHorizontalLineAlpha(img *image.RGBA, y, x0, x1 int, opacity float64, c color.RGBA) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, b.Min.X)
	x1 = min(x1, b.Max.X-1)
	t := blend.Alpha8(opacity)
	for x := x0; x <= x1; x++ {
		blendCoverPx(img, x, y, c, t)
	}
}

// DrawVerticalLineAlpha blends a vertical line into img at the given
// opacity, from y0 to y1 inclusive at column x.
func DrawVerticalLineAlpha(img *image.RGBA, x, y0, y1 int, opacity float64, c color.RGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, b.Min.Y)
	y1 = min(y1, b.Max.Y-1)
	t := blend.Alpha8(opacity)
	for y := y0; y <= y1; y++ {
		blendCoverPx(img, x, y, c, t)
	}
}

// DrawDiagonalLineAlpha blends a 45 degree line into img at the given
// opacity.
func DrawDiagonalLineAlpha(img *image.RGBA, a, b image.Point, opacity float64, c color.RGBA) {
	if a.X > b.X {
		a, b = b, a
	}
	step := 1
	if b.Y < a.Y {
		step = -1
	}
	dist := min(b.X-a.X, abs(b.Y-a.Y))
	bb := img.Bounds()
	t := blend.Alpha8(opacity)
	for i := 0; i <= dist; i++ {
		if pt := image.Pt(a.X+i, a.Y+i*step); pt.In(bb) {
			blendCoverPx(img, pt.X, pt.Y, c, t)
		}
	}
}

// DrawHorizontalDashedLineAlpha blends a dashed horizontal line into
// img at the given opacity. A dash length of zero draws nothing.
func DrawHorizontalDashedLineAlpha(img *image.RGBA, y, x0, x1, dash int, opacity float64, c color.RGBA) {
	b := img.Bounds()
	if dash <= 0 || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	end := min(x1, b.Max.X)
	t := blend.Alpha8(opacity)
	for x, i := x0, 0; x < end; {
		if x >= b.Min.X {
			blendCoverPx(img, x, y, c, t)
		}
		if i == dash-1 {
			x += dash + 1
			i = 0
		} else {
			x++
			i++
		}
	}
}

// DrawVerticalDashedLineAlpha blends a dashed vertical line into img
// at the given opacity. A dash length of zero draws nothing.
func DrawVerticalDashedLineAlpha(img *image.RGBA, x, y0, y1, dash int, opacity float64, c color.RGBA) {
	b := img.Bounds()
	if dash <= 0 || x < b.Min.X || x >= b.Max.X {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	end := min(y1, b.Max.Y)
	t := blend.Alpha8(opacity)
	for y, i := y0, 0; y < end; {
		if y >= b.Min.Y {
			blendCoverPx(img, x, y, c, t)
		}
		if i == dash-1 {
			y += dash + 1
			i = 0
		} else {
			y++
			i++
		}
	}
}

// DrawDiagonalDashedLineAlpha blends a dashed 45 degree line into img
// at the given opacity. A dash length of zero draws nothing.
func DrawDiagonalDashedLineAlpha(img *image.RGBA, a, b image.Point, dash int, opacity float64, c color.RGBA) {
	if dash <= 0 {
		return
	}
	if a.X > b.X {
		a, b = b, a
	}
	step := 1
	if b.Y < a.Y {
		step = -1
	}
	dist := min(b.X-a.X, abs(b.Y-a.Y))
	bb := img.Bounds()
	t := blend.Alpha8(opacity)
	for i := 0; i <= dist; i++ {
		if (i/dash)%2 != 0 {
			continue
		}
		if pt := image.Pt(a.X+i, a.Y+i*step); pt.In(bb) {
			blendCoverPx(img, pt.X, pt.Y, c, t)
		}
	}
}

// DrawLineAlpha blends a line from a to b inclusive into img at the
// given opacity.
func DrawLineAlpha(img *image.RGBA, a, b image.Point, opacity float64, c color.RGBA) {
	switch {
	case a.Y == b.Y:
		DrawHorizontalLineAlpha(img, a.Y, a.X, b.X, opacity, c)
	case a.X == b.X:
		DrawVerticalLineAlpha(img, a.X, a.Y, b.Y, opacity, c)
	case abs(b.X-a.X) == abs(b.Y-a.Y):
		DrawDiagonalLineAlpha(img, a, b, opacity, c)
	default:
		bb := img.Bounds()
		t := blend.Alpha8(opacity)
		bresenham(a, b, func(pt image.Point) {
			if pt.In(bb) {
				blendCoverPx(img, pt.X, pt.Y, c, t)
			}
		})
	}
}

// DrawDashedLineAlpha blends a dashed line from a toward b into img
// at the given opacity. A dash length of zero draws nothing.
func DrawDashedLineAlpha(img *image.RGBA, a, b image.Point, dash int, opacity float64, c color.RGBA) {
	if dash <= 0 {
		return
	}
	switch {
	case a.Y == b.Y:
		DrawHorizontalDashedLineAlpha(img, a.Y, a.X, b.X, dash, opacity, c)
	case a.X == b.X:
		DrawVerticalDashedLineAlpha(img, a.X, a.Y, b.Y, dash, opacity, c)
	case abs(b.X-a.X) == abs(b.Y-a.Y):
		DrawDiagonalDashedLineAlpha(img, a, b, dash, opacity, c)
	default:
		bb := img.Bounds()
		t := blend.Alpha8(opacity)
		i := 0
		bresenham(a, b, func(pt image.Point) {
			if (i/dash)%2 == 0 && pt.In(bb) {
				blendCoverPx(img, pt.X, pt.Y, c, t)
			}
			i++
		})
	}
}

// DrawAntialiasedLine draws an antialiased line from a to b, blending
// c into the two pixels bracketing the true line at each step with
// coverage split by the line's fractional offset, the same split the
// antialiased arc uses. The color's alpha is replaced per pixel by the
// computed coverage.
func DrawAntialiasedLine(img *image.RGBA, a, b image.Point, c color.RGBA) {
	if a == b {
		blendPx(img, a, c, 255)
		return
	}
	steep := abs(b.Y-a.Y) > abs(b.X-a.X)
	if steep {
		a.X, a.Y = a.Y, a.X
		b.X, b.Y = b.Y, b.X
	}
	if a.X > b.X {
		a, b = b, a
	}
	grad := float64(b.Y-a.Y) / float64(b.X-a.X)
	y := float64(a.Y)
	for x := a.X; x <= b.X; x++ {
		row := math.Floor(y)
		o := uint8(iround((y - row) * 255))
		p1 := image.Pt(x, int(row))
		p2 := image.Pt(x, int(row)+1)
		if steep {
			p1.X, p1.Y = p1.Y, p1.X
			p2.X, p2.Y = p2.Y, p2.X
		}
		blendPx(img, p1, c, 255-o)
		blendPx(img, p2, c, o)
		y += grad
	}
}
