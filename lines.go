package freehand

import (
	"image"
	"image/color"
	"image/draw"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawHorizontalLine draws a horizontal line at row y from x0 to x1
// inclusive, clipped to the image bounds.
func DrawHorizontalLine(img draw.Image, y, x0, x1 int, c color.Color) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, b.Min.X)
	x1 = min(x1, b.Max.X-1)
	for x := x0; x <= x1; x++ {
		img.Set(x, y, c)
	}
}

// DrawVerticalLine draws a vertical line at column x from y0 to y1
// inclusive, clipped to the image bounds.
func DrawVerticalLine(img draw.Image, x, y0, y1 int, c color.Color) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, b.Min.Y)
	y1 = min(y1, b.Max.Y-1)
	for y := y0; y <= y1; y++ {
		img.Set(x, y, c)
	}
}

// DrawDiagonalLine draws a 45 degree line from a toward b. When the
// segment is not an exact diagonal it stops at the shorter axis span.
func DrawDiagonalLine(img draw.Image, a, b image.Point, c color.Color) {
	if a.X > b.X {
		a, b = b, a
	}
	step := 1
	if b.Y < a.Y {
		step = -1
	}
	dist := min(b.X-a.X, abs(b.Y-a.Y))
	bb := img.Bounds()
	for i := 0; i <= dist; i++ {
		if pt := image.Pt(a.X+i, a.Y+i*step); pt.In(bb) {
			img.Set(pt.X, pt.Y, c)
		}
	}
}

// DrawHorizontalDashedLine draws a dashed horizontal line at row y
// from x0 up to but not including x1, alternating dash pixels on and
// dash pixels off. A dash length of zero draws nothing.
func DrawHorizontalDashedLine(img draw.Image, y, x0, x1, dash int, c color.Color) {
	b := img.Bounds()
	if dash <= 0 || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	end := min(x1, b.Max.X)
	for x, i := x0, 0; x < end; {
		if x >= b.Min.X {
			img.Set(x, y, c)
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

// DrawVerticalDashedLine draws a dashed vertical line at column x from
// y0 up to but not including y1. A dash length of zero draws nothing.
func DrawVerticalDashedLine(img draw.Image, x, y0, y1, dash int, c color.Color) {
	b := img.Bounds()
	if dash <= 0 || x < b.Min.X || x >= b.Max.X {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	end := min(y1, b.Max.Y)
	for y, i := y0, 0; y < end; {
		if y >= b.Min.Y {
			img.Set(x, y, c)
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

// DrawDiagonalDashedLine draws a dashed 45 degree line from a toward
// b. A dash length of zero draws nothing.
func DrawDiagonalDashedLine(img draw.Image, a, b image.Point, dash int, c color.Color) {
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
	for i := 0; i <= dist; i++ {
		if (i/dash)%2 != 0 {
			continue
		}
		if pt := image.Pt(a.X+i, a.Y+i*step); pt.In(bb) {
			img.Set(pt.X, pt.Y, c)
		}
	}
}

// DrawLine draws a line from a to b inclusive. Horizontal, vertical
// and exact diagonal segments take the fast paths; everything else is
// a Bresenham walk.
func DrawLine(img draw.Image, a, b image.Point, c color.Color) {
	switch {
	case a.Y == b.Y:
		DrawHorizontalLine(img, a.Y, a.X, b.X, c)
	case a.X == b.X:
		DrawVerticalLine(img, a.X, a.Y, b.Y, c)
	case abs(b.X-a.X) == abs(b.Y-a.Y):
		DrawDiagonalLine(img, a, b, c)
	default:
		bb := img.Bounds()
		bresenham(a, b, func(pt image.Point) {
			if pt.In(bb) {
				img.Set(pt.X, pt.Y, c)
			}
		})
	}
}

// DrawDashedLine draws a dashed line from a toward b, alternating
// dash pixels on and dash pixels off. A dash length of zero draws
// nothing.
func DrawDashedLine(img draw.Image, a, b image.Point, dash int, c color.Color) {
	if dash <= 0 {
		return
	}
	switch {
	case a.Y == b.Y:
		DrawHorizontalDashedLine(img, a.Y, a.X, b.X, dash, c)
	case a.X == b.X:
		DrawVerticalDashedLine(img, a.X, a.Y, b.Y, dash, c)
	case abs(b.X-a.X) == abs(b.Y-a.Y):
		DrawDiagonalDashedLine(img, a, b, dash, c)
	default:
		bb := img.Bounds()
		i := 0
		bresenham(a, b, func(pt image.Point) {
			if (i/dash)%2 == 0 && pt.In(bb) {
				img.Set(pt.X, pt.Y, c)
			}
			i++
		})
	}
}

// DrawPath draws an open polyline through pts.
func DrawPath(img draw.Image, pts []image.Point, c color.Color) {
	for i := 1; i < len(pts); i++ {
		DrawLine(img, pts[i-1], pts[i], c)
	}
}

// bresenham walks the standard all-octant line from a to b inclusive,
// calling plot for every position. Callers clip.
func bresenham(a, b image.Point, plot func(image.Point)) {
	dx, sx := abs(b.X-a.X), 1
	if a.X > b.X {
		sx = -1
	}
	dy, sy := -abs(b.Y-a.Y), 1
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	for {
		plot(a)
		if a == b {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			a.X += sx
		}
		if e2 <= dx {
			err += dx
			a.Y += sy
		}
	}
}
