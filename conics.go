package freehand

import (
	"image"
	"image/color"
	"image/draw"
)

// DrawCircle draws a full circle of the given radius around center.
// It panics if radius is not positive.
func DrawCircle(img draw.Image, radius int, center image.Point, c color.Color) {
	NewArc(0, 360, radius, center).Draw(img, c)
}

// DrawThickArc draws an arc whose stroke extends from radius to
// radius+thickness. A negative thickness extends inward instead. It
// panics if either resulting radius is negative.
func DrawThickArc[A Angle](img draw.Image, startAngle, endAngle A, radius, thickness int, center image.Point, c color.Color) {
	NewAnnulus(startAngle, endAngle, radius, radius+thickness, center).Draw(img, c)
}

// DrawThickCircle draws a full circle whose stroke extends from
// radius to radius+thickness. A negative thickness extends inward
// instead. It panics if either resulting radius is negative.
func DrawThickCircle(img draw.Image, radius, thickness int, center image.Point, c color.Color) {
	NewAnnulus(0, 360, radius, radius+thickness, center).Draw(img, c)
}

// DrawPieSlice fills the circular sector between two angles out to
// the given radius. It panics if radius is negative.
func DrawPieSlice[A Angle](img draw.Image, startAngle, endAngle A, radius int, center image.Point, c color.Color) {
	NewAnnulus(startAngle, endAngle, 0, radius, center).Draw(img, c)
}
