// Command freehand-demo renders a sample sheet of the library's primitives.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/vishusandy/freehand"
)

var (
	coral = color.RGBA{R: 240, G: 110, B: 90, A: 255}
	mint  = color.RGBA{R: 110, G: 220, B: 160, A: 255}
	sky   = color.RGBA{R: 120, G: 180, B: 250, A: 255}
	gold  = color.RGBA{R: 245, G: 200, B: 80, A: 255}
	ink   = color.RGBA{R: 235, G: 235, B: 240, A: 255}
)

func main() {
	var (
		width  = flag.Int("width", 900, "image width")
		height = flag.Int("height", 520, "image height")
		output = flag.String("output", "freehand.png", "output file")
	)
	flag.Parse()

	cv := freehand.NewCanvas(*width, *height,
		freehand.WithBackground(color.RGBA{R: 18, G: 18, B: 26, A: 255}))
	img := cv.RGBA()

	face := mustFace(13)
	defer func() {
		_ = face.Close()
	}()

	label(img, 16, 24, "freehand sampler", face)

	drawCircles(img, face)
	drawArcs(img, face)
	drawAnnuli(img, face)
	drawPies(img, face)
	drawAntialiased(img, face)
	drawRects(img, face)
	drawLines(img, face)
	drawDashed(img, face)

	if err := cv.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// mustFace builds a Go Regular face at the given point size.
func mustFace(size float64) font.Face {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatalf("Failed to create face: %v", err)
	}
	return face
}

// label draws a caption with its baseline origin at (x, y).
func label(img *image.RGBA, x, y int, s string, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 190, G: 190, B: 200, A: 255}),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func drawCircles(img *image.RGBA, face font.Face) {
	c := image.Pt(115, 150)
	freehand.New(img).
		Circle(80, c, ink).
		ThickCircle(62, 10, c, sky).
		Circle(40, c, mint)
	label(img, c.X-22, 268, "circles", face)
}

func drawArcs(img *image.RGBA, face font.Face) {
	c := image.Pt(340, 150)
	freehand.DrawArc(img, 0, 90, 80, c, coral)
	freehand.DrawArc(img, 90, 180, 70, c, mint)
	freehand.DrawArc(img, 180, 270, 60, c, sky)
	freehand.DrawArc(img, 270, 360, 50, c, gold)
	label(img, c.X-14, 268, "arcs", face)
}

func drawAnnuli(img *image.RGBA, face font.Face) {
	c := image.Pt(565, 150)
	freehand.DrawAnnulus(img, 30, 150, 45, 78, c, coral)
	freehand.DrawAnnulus(img, 210, 330, 45, 78, c, mint)
	label(img, c.X-24, 268, "annulus", face)
}

func drawPies(img *image.RGBA, face font.Face) {
	c := image.Pt(790, 150)
	// Pac-man plus the slice it is missing, nudged out of the mouth.
	freehand.DrawPieSlice(img, 35, 325, 78, c, gold)
	freehand.DrawPieSlice(img, 325, 35, 50, image.Pt(c.X+34, c.Y), coral)
	label(img, c.X-30, 268, "pie slices", face)
}

func drawAntialiased(img *image.RGBA, face font.Face) {
	freehand.DrawCircle(img, 38, image.Pt(70, 390), ink)
	freehand.DrawAntialiasedArc(img, 0, 360, 38, image.Pt(160, 390), ink)
	label(img, 40, 508, "aliased vs antialiased", face)
}

func drawRects(img *image.RGBA, face font.Face) {
	freehand.DrawRect(img, image.Pt(270, 330), 90, 70, ink)
	freehand.DrawRectFilledAlpha(img, image.Pt(300, 352), 90, 70, 0.5, sky)
	freehand.DrawRectAlpha(img, image.Pt(330, 374), 80, 56, 0.75, coral)
	label(img, 310, 508, "rects", face)
}

func drawLines(img *image.RGBA, face font.Face) {
	origin := image.Pt(500, 445)
	for i := 0; i < 9; i++ {
		a := float64(i) * math.Pi / 16
		end := image.Pt(
			origin.X+int(math.Round(130*math.Cos(a))),
			origin.Y-int(math.Round(130*math.Sin(a))),
		)
		if i%2 == 0 {
			freehand.DrawLine(img, origin, end, mint)
		} else {
			freehand.DrawAntialiasedLine(img, origin, end, mint)
		}
	}
	label(img, 540, 508, "lines", face)
}

func drawDashed(img *image.RGBA, face font.Face) {
	freehand.DrawHorizontalDashedLine(img, 340, 700, 870, 4, sky)
	freehand.DrawDashedLine(img, image.Pt(700, 365), image.Pt(870, 395), 6, gold)
	freehand.DrawDashedLine(img, image.Pt(700, 430), image.Pt(870, 405), 10, coral)
	freehand.DrawPath(img, []image.Point{
		{X: 700, Y: 470}, {X: 730, Y: 450}, {X: 760, Y: 470},
		{X: 790, Y: 450}, {X: 820, Y: 470}, {X: 850, Y: 450},
	}, ink)
	label(img, 745, 508, "dashed", face)
}
