package freehand

import "math"

// Angle constrains the angle parameters accepted by the drawing
// functions. Integer values are interpreted as degrees while
// floating-point values are interpreted as radians.
type Angle interface {
	int | int32 | int64 | float32 | float64
}

const (
	// octantRads is the angular range of a single octant (π/4).
	octantRads = math.Pi / 4
	// quadRads is the angular range of a single quadrant (π/2).
	quadRads = math.Pi / 2
	// pi2 is the angular range of a full circle.
	pi2 = math.Pi * 2
	// epsilon is the difference between 1.0 and the next larger float64.
	epsilon = 2.220446049250313e-16
	// tinyAngle is subtracted from end angles so that an end falling
	// exactly on a sector boundary stays in the sector below it, and a
	// full revolution is not normalized down to a zero-length range.
	tinyAngle = 3 * epsilon
	// degRad converts degrees to radians.
	degRad = math.Pi / 180
)

// Radians converts an angle to radians following the package
// convention: integers are degrees, floating-point values are radians.
func Radians[A Angle](angle A) float64 {
	switch v := any(angle).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v) * degRad
	case int32:
		return float64(v) * degRad
	case int64:
		return float64(v) * degRad
	}
	return 0
}

// normalizeAngle reduces an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, pi2)
	if a < 0 {
		a += pi2
	}
	return a
}

// clampSweep limits an angular range to a single full revolution.
// Ranges of 2π or more draw exactly one full circle.
func clampSweep(start, end float64) float64 {
	if end-start >= pi2 {
		return start + pi2
	}
	return end
}

// angleToOctant maps a normalized angle to its octant in 1..8.
// An angle on a boundary belongs to the octant above it.
func angleToOctant(a float64) int {
	oct := int(a/octantRads) + 1
	if oct > 8 {
		oct = 8
	}
	return oct
}

// angleToQuad maps a normalized angle to its quadrant in 1..4.
func angleToQuad(a float64) int {
	quad := int(a/quadRads) + 1
	if quad > 4 {
		quad = 4
	}
	return quad
}

// octantStartAngle returns the angle at which the octant begins.
func octantStartAngle(oct int) float64 {
	return float64(oct-1) * octantRads
}

// octantEndAngle returns the angle at which the octant ends.
func octantEndAngle(oct int) float64 {
	return float64(oct) * octantRads
}

// quadStartAngle returns the angle at which the quadrant begins.
func quadStartAngle(quad int) float64 {
	return float64(quad-1) * quadRads
}
