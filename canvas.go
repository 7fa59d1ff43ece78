package freehand

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Canvas is a rectangular RGBA pixel buffer for the package's drawing
// functions. It implements draw.Image, and RGBA exposes the backing
// buffer for the antialiased and alpha-blending operations that need
// direct pixel access.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas with the given dimensions, transparent
// unless configured otherwise.
//
// Example:
//
//	// White 800x600 canvas
//	cv := freehand.NewCanvas(800, 600, freehand.WithBackground(color.White))
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	if o.background != nil {
		c.Clear(o.background)
	}
	if o.source != nil {
		drawSource(c.img, o.source)
	}
	return c
}

// FromImage creates a canvas holding a copy of img. The canvas origin
// is (0, 0) regardless of img's bounds.
func FromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))}
	drawSource(c.img, img)
	return c
}

// drawSource copies src into dst aligned at the origin.
func drawSource(dst *image.RGBA, src image.Image) {
	b := src.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// RGBA returns the backing image. Mutating it mutates the canvas.
func (c *Canvas) RGBA() *image.RGBA {
	return c.img
}

// SetPixel sets the color of a single pixel. Out-of-bounds
// coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, col color.Color) {
	if !image.Pt(x, y).In(c.img.Rect) {
		return
	}
	c.img.Set(x, y, col)
}

// GetPixel returns the color of a single pixel, or zero for
// out-of-bounds coordinates.
func (c *Canvas) GetPixel(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col color.Color) {
	r, g, b, a := col.RGBA()
	px := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	for i := 0; i < len(c.img.Pix); i += 4 {
		c.img.Pix[i+0] = px[0]
		c.img.Pix[i+1] = px[1]
		c.img.Pix[i+2] = px[2]
		c.img.Pix[i+3] = px[3]
	}
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, c.img)
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.At(x, y)
}

// Set implements the draw.Image interface. Out-of-bounds coordinates
// are ignored.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.img.Set(x, y, col)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
