package freehand

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Arc rasterizes a circular arc using the midpoint circle algorithm.
//
// Angles follow the package convention: integers are degrees and
// floating-point values are radians, growing counterclockwise from the
// positive x axis. Identical start and end angles draw a full circle,
// and sweeps beyond a full revolution are clamped to one.
//
// The walk covers one octant at a time. Within an octant the pixels
// match those of a full midpoint circle exactly, so arcs meet at
// octant seams without gaps or stray pixels.
type Arc struct {
	pos     pos
	start   edge
	end     edge
	c       image.Point
	r       int
	revisit bool
}

// NewArc builds an arc from startAngle to endAngle with the given
// radius around center. It panics if radius is not positive.
func NewArc[A Angle](startAngle, endAngle A, radius int, center image.Point) *Arc {
	if radius <= 0 {
		panic(fmt.Sprintf("freehand: arc radius must be positive, got %d", radius))
	}
	sr := Radians(startAngle)
	er := clampSweep(sr, Radians(endAngle))
	start := normalizeAngle(sr)
	end := normalizeAngle(er - tinyAngle)
	a := &Arc{
		start: newEdge(start),
		end:   newEdge(end),
		c:     center,
		r:     radius,
	}
	a.revisit = a.start.oct == a.end.oct && start > end
	a.pos = newPos(a.start.oct, a.segmentBounds(a.start.oct, &a.start), radius, center)
	Logger().Debug("arc constructed",
		"start", start, "end", end,
		"startOct", a.start.oct, "endOct", a.end.oct,
		"radius", radius, "revisit", a.revisit)
	return a
}

// NewOctantArc builds an arc covering exactly one octant. Octants are
// numbered 1..8 counterclockwise from the positive x axis. It panics
// if radius is not positive or oct is out of range.
func NewOctantArc(oct, radius int, center image.Point) *Arc {
	if radius <= 0 {
		panic(fmt.Sprintf("freehand: arc radius must be positive, got %d", radius))
	}
	if oct < 1 || oct > 8 {
		panic(fmt.Sprintf("freehand: octant must be in 1..8, got %d", oct))
	}
	a := &Arc{
		start: newEdge(octantStartAngle(oct)),
		end:   newEdge(octantEndAngle(oct)),
		c:     center,
		r:     radius,
	}
	// The trailing boundary belongs to the next octant; pin it here so
	// the walk ends instead of restarting.
	a.end.oct = oct
	a.pos = newPos(oct, bounds{}, radius, center)
	return a
}

// Center returns the arc's center.
func (a *Arc) Center() image.Point { return a.c }

// Radius returns the arc's radius.
func (a *Arc) Radius() int { return a.r }

// segmentBounds returns the angular bounds of the walk across oct.
// start is non-nil only for the arc's first octant. The end bound
// applies only once a pending revisit has been consumed.
func (a *Arc) segmentBounds(oct int, start *edge) bounds {
	b := bounds{start: start}
	if oct == a.end.oct && !a.revisit {
		b.end = &a.end
	}
	return b
}

// done reports whether the current octant is the arc's last.
func (a *Arc) done() bool {
	return a.pos.oct == a.end.oct && !a.revisit
}

// restart moves the walk into the next octant.
func (a *Arc) restart() {
	oct := a.pos.oct%8 + 1
	a.revisit = false
	a.pos = newPos(oct, a.segmentBounds(oct, nil), a.r, a.c)
}

// Draw rasterizes the arc onto img in the given color. Pixels outside
// the image bounds are dropped. The arc is consumed: a second call is
// a no-op.
func (a *Arc) Draw(img draw.Image, c color.Color) {
	b := img.Bounds()
	for {
		if a.pos.stop() {
			if a.done() {
				return
			}
			a.restart()
			continue
		}
		if pt := a.pos.point(a.c); pt.In(b) {
			img.Set(pt.X, pt.Y, c)
		}
		a.pos.inc()
	}
}

// DrawArc draws an arc from startAngle to endAngle with the given
// radius around center onto img. Integer angles are degrees,
// floating-point angles are radians. It panics if radius is not
// positive.
func DrawArc[A Angle](img draw.Image, startAngle, endAngle A, radius int, center image.Point, c color.Color) {
	NewArc(startAngle, endAngle, radius, center).Draw(img, c)
}
