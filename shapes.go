package freehand

import (
	"image"
	"image/color"
	"image/draw"
)

// DrawRect draws the outline of a w by h rectangle whose top-left
// corner is at pt.
func DrawRect(img draw.Image, pt image.Point, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x1, y1 := pt.X+w-1, pt.Y+h-1
	DrawHorizontalLine(img, pt.Y, pt.X, x1, c)
	if h > 1 {
		DrawHorizontalLine(img, y1, pt.X, x1, c)
	}
	if h > 2 {
		DrawVerticalLine(img, pt.X, pt.Y+1, y1-1, c)
		if w > 1 {
			DrawVerticalLine(img, x1, pt.Y+1, y1-1, c)
		}
	}
}

// DrawRectFilled fills a w by h rectangle whose top-left corner is at
// pt.
func DrawRectFilled(img draw.Image, pt image.Point, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x1 := pt.X + w - 1
	for y := pt.Y; y < pt.Y+h; y++ {
		DrawHorizontalLine(img, y, pt.X, x1, c)
	}
}

// DrawRectAlpha blends the outline of a w by h rectangle into img at
// the given opacity. Each outline pixel is blended once, so corners
// do not darken.
func DrawRectAlpha(img *image.RGBA, pt image.Point, w, h int, opacity float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x1, y1 := pt.X+w-1, pt.Y+h-1
	DrawHorizontalLineAlpha(img, pt.Y, pt.X, x1, opacity, c)
	if h > 1 {
		DrawHorizontalLineAlpha(img, y1, pt.X, x1, opacity, c)
	}
	if h > 2 {
		DrawVerticalLineAlpha(img, pt.X, pt.Y+1, y1-1, opacity, c)
		if w > 1 {
			DrawVerticalLineAlpha(img, x1, pt.Y+1, y1-1, opacity, c)
		}
	}
}

// DrawRectFilledAlpha blends a filled w by h rectangle into img at the
// given opacity.
func DrawRectFilledAlpha(img *image.RGBA, pt image.Point, w, h int, opacity float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x1 := pt.X + w - 1
	for y := pt.Y; y < pt.Y+h; y++ {
		DrawHorizontalLineAlpha(img, y, pt.X, x1, opacity, c)
	}
}
