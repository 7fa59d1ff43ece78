package freehand

// edge is an angular boundary of an arc or annulus segment. For
// annulus segments it additionally carries the cap chord joining the
// inner and outer walkers at that boundary, as a line in octant-local
// coordinates.
type edge struct {
	angle float64
	oct   int
	slope float64
	icept int
}

func newEdge(angle float64) edge {
	return edge{angle: angle, oct: angleToOctant(angle)}
}

// setChord fits the cap chord through the two local endpoints. A cap
// whose endpoints share a column degenerates to that column.
func (e *edge) setChord(x1, y1, x2, y2 int) {
	if x1 == x2 {
		e.slope = 0
		e.icept = y1
		return
	}
	e.slope = float64(y2-y1) / float64(x2-x1)
	e.icept = iround(e.slope*float64(-x1) + float64(y1))
}

// lineY returns the chord's y value at column x.
func (e *edge) lineY(x int) int {
	return iround(float64(x)*e.slope) + e.icept
}
