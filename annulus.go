package freehand

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// ringPos walks one radius of an annulus across one octant. It is the
// same midpoint walk as an arc's pos but keeps both of the segment's
// local endpoints, with (x, y) always the lower-x end regardless of
// which angular boundary it came from.
type ringPos struct {
	x, y   int
	ex, ey int
	d      int
	r      int
}

func newRingPos(start, end float64, oct, r int, c image.Point) ringPos {
	p1 := localPoint(start, float64(r), oct, c)
	p2 := localPoint(end, float64(r), oct, c)
	if p1.X > p2.X {
		p1, p2 = p2, p1
	}
	return ringPos{
		x:  iround(p1.X),
		y:  iround(p1.Y),
		ex: iround(p2.X),
		ey: iround(p2.Y),
		d:  calcError(p1, r),
		r:  r,
	}
}

// matchY returns the walker's row when it sits on column x and has not
// passed its final column.
func (p *ringPos) matchY(x int) (int, bool) {
	if p.x == x && p.x <= p.ex {
		return p.y, true
	}
	return 0, false
}

func (p *ringPos) inc() {
	p.x++
	if p.d > 0 {
		p.y--
		p.d += 2*(p.x-p.y) + 1
	} else {
		p.d += 2*p.x + 1
	}
}

// Annulus rasterizes a filled ring segment between two radii and two
// angles. An inner radius of zero produces a filled pie slice.
//
// Each octant is filled column by column in the octant's local frame.
// A column's span runs between the inner and outer midpoint walks
// where both cover the column, and is completed by the straight cap
// chords where one has already ended or not yet begun.
type Annulus struct {
	end      edge
	curStart edge
	curEnd   edge
	oct      int
	inr      ringPos
	otr      ringPos
	x        int
	c        image.Point
}

// NewAnnulus builds an annulus between startAngle and endAngle whose
// ring spans innerRadius to outerRadius around center. The radii are
// swapped if given in reverse order. Identical start and end angles
// draw a full ring. It panics if either radius is negative.
func NewAnnulus[A Angle](startAngle, endAngle A, innerRadius, outerRadius int, center image.Point) *Annulus {
	if innerRadius < 0 || outerRadius < 0 {
		panic(fmt.Sprintf("freehand: annulus radii must not be negative, got %d and %d",
			innerRadius, outerRadius))
	}
	if innerRadius > outerRadius {
		innerRadius, outerRadius = outerRadius, innerRadius
	}
	sr := Radians(startAngle)
	er := clampSweep(sr, Radians(endAngle))
	start := normalizeAngle(sr)
	end := normalizeAngle(er)
	if math.Abs(start-end) <= epsilon {
		end = normalizeAngle(end - tinyAngle)
	}
	segEnd := end
	if sameOct := angleToOctant(start) == angleToOctant(end); sameOct && start > end {
		segEnd = octantEndAngle(angleToOctant(start))
	}
	a := newAnnulusSegment(start, segEnd, innerRadius, outerRadius, center)
	a.end = newEdge(end)
	Logger().Debug("annulus constructed",
		"start", start, "end", end,
		"inner", innerRadius, "outer", outerRadius,
		"startOct", a.oct, "endOct", a.end.oct)
	return a
}

// newAnnulusSegment positions a fill segment beginning at start. The
// segment covers start's whole octant unless end falls in the same
// octant, in which case it stops there.
func newAnnulusSegment(start, end float64, ri, ro int, c image.Point) *Annulus {
	oct := angleToOctant(start)
	segEnd := octantEndAngle(oct)
	if oct == angleToOctant(end) {
		segEnd = end
	}
	curStart := newEdge(start)
	curEnd := newEdge(segEnd)
	inr := newRingPos(start, segEnd, oct, ri, c)
	otr := newRingPos(start, segEnd, oct, ro, c)
	curStart.setChord(inr.x, inr.y, otr.x, otr.y)
	curEnd.setChord(inr.ex, inr.ey, otr.ex, otr.ey)
	return &Annulus{
		end:      newEdge(end),
		curStart: curStart,
		curEnd:   curEnd,
		oct:      oct,
		inr:      inr,
		otr:      otr,
		x:        min(inr.x, otr.x),
		c:        c,
	}
}

// Center returns the annulus' center.
func (a *Annulus) Center() image.Point { return a.c }

// InnerRadius returns the ring's inner radius.
func (a *Annulus) InnerRadius() int { return a.inr.r }

// OuterRadius returns the ring's outer radius.
func (a *Annulus) OuterRadius() int { return a.otr.r }

// done reports whether the fill has reached its final column in the
// end octant.
func (a *Annulus) done() bool {
	return a.oct == a.end.oct && a.x >= a.inr.ex && a.x >= a.otr.ex &&
		a.curStart.angle <= a.end.angle
}

// nextOctant rebuilds the segment state in the next octant once both
// walkers have run out of columns.
func (a *Annulus) nextOctant() bool {
	if a.x < a.inr.ex || a.x < a.otr.ex {
		return false
	}
	oct := a.oct%8 + 1
	*a = *newAnnulusSegment(octantStartAngle(oct), a.end.angle, a.inr.r, a.otr.r, a.c)
	return true
}

// step computes the span of the current column and advances past it.
// Rows come from the walkers where they cover the column and from the
// cap chords where they do not.
func (a *Annulus) step() (x, y1, y2 int) {
	x = a.x
	a.x++
	yi, iok := a.inr.matchY(x)
	yo, ook := a.otr.matchY(x)
	switch {
	case iok && ook:
		a.inr.inc()
		a.otr.inc()
		return x, yi, yo
	case !iok && !ook:
		return x, a.curStart.lineY(x), a.curEnd.lineY(x)
	default:
		chord := &a.curEnd
		if x <= a.inr.ex && x <= a.otr.ex {
			chord = &a.curStart
		}
		if iok {
			a.inr.inc()
			yo = chord.lineY(x)
		} else {
			a.otr.inc()
			yi = chord.lineY(x)
		}
		return x, yi, yo
	}
}

// putLine fills one local column between rows y1 and y2 inclusive.
func (a *Annulus) putLine(img draw.Image, x, y1, y2 int, c color.Color) {
	b := img.Bounds()
	lo, hi := min(y1, y2), max(y1, y2)
	for y := lo; y <= hi; y++ {
		if pt := localToImage(x, y, a.oct, a.c); pt.In(b) {
			img.Set(pt.X, pt.Y, c)
		}
	}
}

// Draw rasterizes the annulus onto img in the given color. Pixels
// outside the image bounds are dropped. The annulus is consumed: a
// second call is a no-op.
func (a *Annulus) Draw(img draw.Image, c color.Color) {
	for {
		if a.done() {
			return
		}
		if a.nextOctant() {
			continue
		}
		x, y1, y2 := a.step()
		a.putLine(img, x, max(y1, x), max(y2, x), c)
	}
}

// DrawAnnulus draws a filled ring segment between two angles and two
// radii around center onto img. Integer angles are degrees,
// floating-point angles are radians. It panics if either radius is
// negative.
func DrawAnnulus[A Angle](img draw.Image, startAngle, endAngle A, innerRadius, outerRadius int, center image.Point, c color.Color) {
	NewAnnulus(startAngle, endAngle, innerRadius, outerRadius, center).Draw(img, c)
}
