package freehand

import "image"

// The arc walkers operate in octant-local coordinates. Each octant is
// mapped onto a canonical frame where the walk starts on an axis at
// (0, r) and advances x by one per step until it crosses the diagonal
// at (r/√2, r/√2), with y²+x²=r² throughout. Odd octants advance in
// the direction of increasing angle, even octants in the direction of
// decreasing angle.

// localToImage maps octant-local coordinates to image coordinates.
func localToImage(x, y, oct int, c image.Point) image.Point {
	switch oct {
	case 1:
		return image.Pt(c.X+y, c.Y-x)
	case 2:
		return image.Pt(c.X+x, c.Y-y)
	case 3:
		return image.Pt(c.X-x, c.Y-y)
	case 4:
		return image.Pt(c.X-y, c.Y-x)
	case 5:
		return image.Pt(c.X-y, c.Y+x)
	case 6:
		return image.Pt(c.X-x, c.Y+y)
	case 7:
		return image.Pt(c.X+x, c.Y+y)
	default:
		return image.Pt(c.X+y, c.Y+x)
	}
}

// imageToLocal maps a point in image coordinates to the local frame of
// the given octant. It is the inverse of localToImage, kept in floats
// so that fractional positions survive until the caller rounds.
func imageToLocal(p Point, oct int, c Point) Point {
	switch oct {
	case 1:
		return Pt(c.Y-p.Y, p.X-c.X)
	case 2:
		return Pt(p.X-c.X, c.Y-p.Y)
	case 3:
		return Pt(c.X-p.X, c.Y-p.Y)
	case 4:
		return Pt(c.Y-p.Y, c.X-p.X)
	case 5:
		return Pt(p.Y-c.Y, c.X-p.X)
	case 6:
		return Pt(c.X-p.X, p.Y-c.Y)
	case 7:
		return Pt(p.X-c.X, p.Y-c.Y)
	default:
		return Pt(p.Y-c.Y, p.X-c.X)
	}
}

// localPoint returns the position at angle a on the circle of radius
// r, expressed in the local frame of oct.
func localPoint(a, r float64, oct int, c image.Point) Point {
	fc := fpt(c)
	return imageToLocal(fromRadians(a, r, fc), oct, fc)
}

// quadToImage maps quadrant-local coordinates to image coordinates.
// The quadrant frame starts on an axis at (0, r) like the octant
// frame, but spans a quarter turn, crossing the diagonal mid-walk.
func quadToImage(x, y float64, quad int, c Point) Point {
	switch quad {
	case 1:
		return Pt(c.X+y, c.Y-x)
	case 2:
		return Pt(c.X-x, c.Y-y)
	case 3:
		return Pt(c.X-y, c.Y+x)
	default:
		return Pt(c.X+x, c.Y+y)
	}
}
