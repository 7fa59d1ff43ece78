package freehand

import (
	"image"
	"math"
)

// unbounded marks a walk with no mid-octant stop column.
const unbounded = math.MaxInt32

// calcError seeds the midpoint decision variable for a walk whose
// next candidate column is one past pt. At the octant start (0, r)
// this yields the classic 1-r.
func calcError(pt Point, r int) int {
	x := math.Round(pt.X)
	y := math.Round(pt.Y)
	return iround((x+1)*(x+1) + (y-0.5)*(y-0.5) - float64(r*r))
}

// bounds carries the angular limits of one octant segment of an arc.
// A nil start means the segment begins at the octant's leading edge; a
// nil end means it runs through to the trailing edge.
type bounds struct {
	start *edge
	end   *edge
}

// pos is the iteration state of an arc walk across one octant,
// in octant-local coordinates.
type pos struct {
	oct  int
	x, y int
	d    int // midpoint decision variable
	ex   int // stop column
}

// newPos positions a walk inside oct honoring the given bounds. Odd
// octants walk in the direction of increasing angle, so the start
// bound seeds the walk and the end bound caps it; even octants walk
// in decreasing angle and the roles flip.
func newPos(oct int, b bounds, r int, c image.Point) pos {
	p := pos{oct: oct, x: 0, y: r, d: 1 - r, ex: unbounded}
	begin, limit := b.start, b.end
	if oct%2 == 0 {
		begin, limit = b.end, b.start
	}
	if begin != nil {
		pt := localPoint(begin.angle, float64(r), oct, c)
		p.x = iround(pt.X)
		p.y = iround(pt.Y)
		p.d = calcError(pt, r)
	}
	if limit != nil {
		pt := localPoint(limit.angle, float64(r), oct, c)
		p.ex = iround(pt.X)
	}
	return p
}

// stop reports whether the walk has left the octant or reached its
// stop column.
func (p *pos) stop() bool {
	return p.x > p.y || p.x >= p.ex
}

// inc advances one column, stepping y inward when the midpoint falls
// outside the circle.
func (p *pos) inc() {
	p.x++
	if p.d > 0 {
		p.y--
		p.d += 2*(p.x-p.y) + 1
	} else {
		p.d += 2*p.x + 1
	}
}

// point returns the current position in image coordinates.
func (p *pos) point(c image.Point) image.Point {
	return localToImage(p.x, p.y, p.oct, c)
}
