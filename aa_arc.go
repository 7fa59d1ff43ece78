package freehand

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// AntialiasedArc rasterizes a circular arc with antialiasing. At each
// step it blends the color into the two pixels bracketing the true
// circle, splitting full coverage between them by the circle's
// fractional offset, so the energy deposited per step always sums to
// full opacity.
//
// The walk covers one quadrant at a time, sampling columns while the
// slope is shallow and rows once it passes the diagonal. Antialiased
// drawing requires direct pixel access, so Draw takes *image.RGBA
// rather than draw.Image.
type AntialiasedArc struct {
	x, y    float64
	r, r2   float64
	c       Point
	quad    int
	endQuad int
	ex, ey  float64
	revisit bool
}

// NewAntialiasedArc builds an antialiased arc from startAngle to
// endAngle with the given radius around center. Integer angles are
// degrees, floating-point angles are radians. Identical start and end
// angles draw a full circle, and sweeps beyond a full revolution are
// clamped to one. It panics if radius is not positive.
func NewAntialiasedArc[A Angle](startAngle, endAngle A, radius int, center image.Point) *AntialiasedArc {
	if radius <= 0 {
		panic(fmt.Sprintf("freehand: arc radius must be positive, got %d", radius))
	}
	sr := Radians(startAngle)
	er := clampSweep(sr, Radians(endAngle))
	start := normalizeAngle(sr)
	end := normalizeAngle(er - tinyAngle)
	r := float64(radius)
	a := &AntialiasedArc{
		r:       r,
		r2:      r * r,
		c:       fpt(center),
		quad:    angleToQuad(start),
		endQuad: angleToQuad(end),
	}
	a.revisit = a.quad == a.endQuad && start > end
	// Snap the start to the pixel grid along the fast coordinate and
	// project back onto the circle.
	ts := start - quadStartAngle(a.quad)
	a.x = math.Floor(r * math.Sin(ts))
	a.y = math.Sqrt(a.r2 - a.x*a.x)
	te := end - quadStartAngle(a.endQuad)
	a.ex = r * math.Sin(te)
	a.ey = r * math.Cos(te)
	Logger().Debug("antialiased arc constructed",
		"start", start, "end", end,
		"startQuad", a.quad, "endQuad", a.endQuad,
		"radius", radius, "revisit", a.revisit)
	return a
}

// Center returns the arc's center.
func (a *AntialiasedArc) Center() image.Point { return a.c.ImagePoint() }

// Radius returns the arc's radius.
func (a *AntialiasedArc) Radius() int { return int(a.r) }

// done reports whether the walk has passed the end angle in the end
// quadrant.
func (a *AntialiasedArc) done() bool {
	if a.quad != a.endQuad || a.revisit {
		return false
	}
	if a.y <= 0 {
		return true
	}
	if a.x <= a.y {
		return a.x > a.ex
	}
	return a.y < a.ey
}

// nextQuad moves the walk into the next quadrant once the current one
// is exhausted.
func (a *AntialiasedArc) nextQuad() bool {
	if a.y > 0 {
		return false
	}
	a.x = 0
	a.y = a.r
	a.quad = a.quad%4 + 1
	a.revisit = false
	return true
}

// step emits the two pixels bracketing the true circle at the current
// position and the circle's fractional offset between them, then
// advances the fast coordinate and reprojects the slow one.
func (a *AntialiasedArc) step() (p1, p2 image.Point, frac float64) {
	if a.x <= a.y {
		row := math.Floor(a.y)
		frac = a.y - row
		p1 = a.point(a.x, row)
		p2 = a.point(a.x, row+1)
		a.x++
		a.y = math.Sqrt(a.r2 - a.x*a.x)
		return
	}
	col := math.Floor(a.x)
	frac = a.x - col
	p1 = a.point(col, a.y)
	p2 = a.point(col+1, a.y)
	a.y--
	a.x = math.Sqrt(a.r2 - a.y*a.y)
	return
}

func (a *AntialiasedArc) point(x, y float64) image.Point {
	p := quadToImage(x, y, a.quad, a.c)
	return image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// Draw rasterizes the arc onto img, blending c into the covered
// pixels. The color's alpha is replaced per pixel by the computed
// coverage before blending. Pixels outside the image bounds are
// dropped. The arc is consumed: a second call is a no-op.
func (a *AntialiasedArc) Draw(img *image.RGBA, c color.RGBA) {
	for {
		if a.done() {
			return
		}
		if a.nextQuad() {
			continue
		}
		p1, p2, frac := a.step()
		o := uint8(iround(frac * 255))
		blendPx(img, p1, c, 255-o)
		blendPx(img, p2, c, o)
	}
}

// DrawAntialiasedArc draws an antialiased arc from startAngle to
// endAngle with the given radius around center onto img. Integer
// angles are degrees, floating-point angles are radians. It panics if
// radius is not positive.
func DrawAntialiasedArc[A Angle](img *image.RGBA, startAngle, endAngle A, radius int, center image.Point, c color.RGBA) {
	NewAntialiasedArc(startAngle, endAngle, radius, center).Draw(img, c)
}
