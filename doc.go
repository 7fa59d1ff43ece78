// Package freehand draws arcs, circles, annuli, lines and rectangles
// directly onto images.
//
// # Overview
//
// freehand rasterizes shapes pixel by pixel with integer walks rather
// than paths and fills. Arcs and circles use the midpoint circle
// algorithm, annuli fill the area between two such walks, and an
// antialiased variant distributes coverage between the two pixels
// bracketing the true circle. Everything draws onto a draw.Image (or
// *image.RGBA for the blending operations), so it composes with the
// standard library image packages.
//
// # Quick Start
//
//	import "github.com/vishusandy/freehand"
//
//	cv := freehand.NewCanvas(400, 400, freehand.WithBackground(color.White))
//	center := image.Pt(200, 200)
//
//	freehand.DrawArc(cv, 0, 180, 190, center, color.RGBA{R: 255, A: 255})
//	freehand.DrawAnnulus(cv, 45, 270, 150, 190, center, color.RGBA{B: 255, A: 255})
//
//	cv.SavePNG("output.png")
//
// # Angles
//
// Every angle parameter is generic over both integers and floats:
// integer values are degrees and floating-point values are radians.
// Angle 0 is to the right and angles increase counter-clockwise.
// Identical start and end angles draw a full revolution, and sweeps
// beyond a full revolution are clamped to one.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Shapes are clipped to the target image's bounds; drawing outside
// them is a no-op rather than an error.
//
// # Blending
//
// The *Alpha functions and BlendAt mix the new color into the
// existing pixels at a given opacity, and the antialiased functions
// composite with straight-alpha source-over. Both interpret pixel
// values as straight (non-premultiplied) alpha.
package freehand
