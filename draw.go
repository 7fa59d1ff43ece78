package freehand

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Draw wraps a drawing target so operations can be chained:
//
//	freehand.New(cv).
//		Circle(190, center, blue).
//		Line(image.Pt(10, 10), image.Pt(390, 390), red)
//
// Methods taking angles always take radians; the package-level
// functions additionally accept integer degrees.
//
// The antialiased and alpha-blending methods need direct pixel
// access. They work when the wrapped target is an *image.RGBA or a
// *Canvas, and log a warning and draw nothing otherwise.
type Draw struct {
	img  draw.Image
	rgba *image.RGBA
}

// New wraps img for chained drawing.
func New(img draw.Image) *Draw {
	d := &Draw{img: img}
	switch t := img.(type) {
	case *image.RGBA:
		d.rgba = t
	case *Canvas:
		d.rgba = t.RGBA()
	}
	return d
}

// Target returns the wrapped image.
func (d *Draw) Target() draw.Image { return d.img }

func (d *Draw) needRGBA(op string) (*image.RGBA, bool) {
	if d.rgba == nil {
		Logger().Warn("target does not expose RGBA pixels; operation skipped", "op", op)
		return nil, false
	}
	return d.rgba, true
}

// Line draws a line between two points.
func (d *Draw) Line(a, b image.Point, c color.Color) *Draw {
	DrawLine(d.img, a, b, c)
	return d
}

// DashedLine draws a dashed line between two points. A dash length of
// zero draws nothing.
func (d *Draw) DashedLine(a, b image.Point, dash int, c color.Color) *Draw {
	DrawDashedLine(d.img, a, b, dash, c)
	return d
}

// Path draws an open polyline through pts.
func (d *Draw) Path(pts []image.Point, c color.Color) *Draw {
	DrawPath(d.img, pts, c)
	return d
}

// Rect draws a rectangle outline.
func (d *Draw) Rect(pt image.Point, w, h int, c color.Color) *Draw {
	DrawRect(d.img, pt, w, h, c)
	return d
}

// RectFilled draws a filled rectangle.
func (d *Draw) RectFilled(pt image.Point, w, h int, c color.Color) *Draw {
	DrawRectFilled(d.img, pt, w, h, c)
	return d
}

// Arc draws an arc between two angles in radians.
func (d *Draw) Arc(start, end float64, radius int, center image.Point, c color.Color) *Draw {
	DrawArc(d.img, start, end, radius, center, c)
	return d
}

// Circle draws a full circle.
func (d *Draw) Circle(radius int, center image.Point, c color.Color) *Draw {
	DrawCircle(d.img, radius, center, c)
	return d
}

// PieSlice fills a circular sector between two angles in radians.
func (d *Draw) PieSlice(start, end float64, radius int, center image.Point, c color.Color) *Draw {
	DrawPieSlice(d.img, start, end, radius, center, c)
	return d
}

// ThickArc draws an arc with a stroke from radius to radius+thickness
// between two angles in radians.
func (d *Draw) ThickArc(start, end float64, radius, thickness int, center image.Point, c color.Color) *Draw {
	DrawThickArc(d.img, start, end, radius, thickness, center, c)
	return d
}

// ThickCircle draws a circle with a stroke from radius to
// radius+thickness.
func (d *Draw) ThickCircle(radius, thickness int, center image.Point, c color.Color) *Draw {
	DrawThickCircle(d.img, radius, thickness, center, c)
	return d
}

// Annulus fills a ring segment between two angles in radians.
func (d *Draw) Annulus(start, end float64, innerRadius, outerRadius int, center image.Point, c color.Color) *Draw {
	DrawAnnulus(d.img, start, end, innerRadius, outerRadius, center, c)
	return d
}

// AntialiasedArc draws an antialiased arc between two angles in
// radians.
func (d *Draw) AntialiasedArc(start, end float64, radius int, center image.Point, c color.RGBA) *Draw {
	if img, ok := d.needRGBA("antialiased arc"); ok {
		DrawAntialiasedArc(img, start, end, radius, center, c)
	}
	return d
}

// AntialiasedLine draws an antialiased line between two points.
func (d *Draw) AntialiasedLine(a, b image.Point, c color.RGBA) *Draw {
	if img, ok := d.needRGBA("antialiased line"); ok {
		DrawAntialiasedLine(img, a, b, c)
	}
	return d
}

// LineAlpha blends a line at the given opacity.
func (d *Draw) LineAlpha(a, b image.Point, opacity float64, c color.RGBA) *Draw {
	if img, ok := d.needRGBA("alpha line"); ok {
		DrawLineAlpha(img, a, b, opacity, c)
	}
	return d
}

// DashedLineAlpha blends a dashed line at the given opacity. A dash
// length of zero draws nothing.
func (d *Draw) DashedLineAlpha(a, b image.Point, dash int, opacity float64, c color.RGBA) *Draw {
	if img, ok := d.needRGBA("alpha dashed line"); ok {
		DrawDashedLineAlpha(img, a, b, dash, opacity, c)
	}
	return d
}

// RectAlpha blends a rectangle outline at the given opacity.
func (d *Draw) RectAlpha(pt image.Point, w, h int, opacity float64, c color.RGBA) *Draw {
	if img, ok := d.needRGBA("alpha rect"); ok {
		DrawRectAlpha(img, pt, w, h, opacity, c)
	}
	return d
}

// RectFilledAlpha blends a filled rectangle at the given opacity.
func (d *Draw) RectFilledAlpha(pt image.Point, w, h int, opacity float64, c color.RGBA) *Draw {
	if img, ok := d.needRGBA("alpha filled rect"); ok {
		DrawRectFilledAlpha(img, pt, w, h, opacity, c)
	}
	return d
}

// BlendAt blends c into a single pixel at the given opacity.
func (d *Draw) BlendAt(x, y int, opacity float64, c color.RGBA) *Draw {
	if img, ok := d.needRGBA("blend at"); ok {
		BlendAt(img, x, y, opacity, c)
	}
	return d
}

// Image composites src over the target with its top-left corner at
// at.
func (d *Draw) Image(src image.Image, at image.Point) *Draw {
	b := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(b.Size())}
	xdraw.Draw(d.img, r, src, b.Min, xdraw.Over)
	return d
}

// ImageScaled composites src over the target scaled to fill the
// rectangle to, using bilinear interpolation.
func (d *Draw) ImageScaled(src image.Image, to image.Rectangle) *Draw {
	xdraw.ApproxBiLinear.Scale(d.img, to, src, src.Bounds(), xdraw.Over, nil)
	return d
}
