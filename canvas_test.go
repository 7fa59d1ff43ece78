package freehand

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var _ draw.Image = (*Canvas)(nil)

func TestNewCanvasDefaults(t *testing.T) {
	cv := NewCanvas(100, 80)
	if cv.Width() != 100 || cv.Height() != 80 {
		t.Errorf("size = %dx%d, want 100x80", cv.Width(), cv.Height())
	}
	if got := cv.Bounds(); got != image.Rect(0, 0, 100, 80) {
		t.Errorf("Bounds() = %v", got)
	}
	if cv.ColorModel() != color.RGBAModel {
		t.Error("color model is not RGBA")
	}
	if got := cv.GetPixel(50, 40); got != (color.RGBA{}) {
		t.Errorf("default canvas pixel = %v, want transparent", got)
	}
}

func TestNewCanvasWithBackground(t *testing.T) {
	cv := NewCanvas(20, 20, WithBackground(color.White))
	want := color.RGBA{255, 255, 255, 255}
	for _, p := range []image.Point{{0, 0}, {19, 19}, {7, 13}} {
		if got := cv.GetPixel(p.X, p.Y); got != want {
			t.Errorf("pixel %v = %v, want white", p, got)
		}
	}
}

func TestNewCanvasWithImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 12))
	src.SetRGBA(10, 10, testRed)
	src.SetRGBA(11, 11, testRed)
	cv := NewCanvas(30, 30, WithBackground(color.White), WithImage(src))
	if got := cv.GetPixel(0, 0); got != testRed {
		t.Errorf("source pixel = %v, want red aligned at the origin", got)
	}
	if got := cv.GetPixel(20, 20); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background pixel = %v, want white", got)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 15, 15))
	src.SetRGBA(7, 9, testRed)
	cv := FromImage(src)
	if cv.Width() != 10 || cv.Height() != 10 {
		t.Fatalf("size = %dx%d, want 10x10", cv.Width(), cv.Height())
	}
	if got := cv.GetPixel(2, 4); got != testRed {
		t.Errorf("copied pixel = %v, want red shifted to the origin", got)
	}

	// The canvas holds a copy, not a reference.
	src.SetRGBA(7, 9, testGreen)
	if got := cv.GetPixel(2, 4); got != testRed {
		t.Errorf("canvas pixel changed to %v after mutating the source", got)
	}
}

func TestCanvasSetGetPixel(t *testing.T) {
	cv := NewCanvas(10, 10)
	cv.SetPixel(3, 4, testRed)
	if got := cv.GetPixel(3, 4); got != testRed {
		t.Errorf("GetPixel = %v, want %v", got, testRed)
	}

	cv.SetPixel(-1, 0, testRed)
	cv.SetPixel(0, -1, testRed)
	cv.SetPixel(10, 0, testRed)
	cv.SetPixel(0, 10, testRed)
	if n := len(drawnSet(cv.RGBA())); n != 1 {
		t.Errorf("out-of-bounds SetPixel touched the canvas: %d pixels set", n)
	}
	if got := cv.GetPixel(-1, 0); got != (color.RGBA{}) {
		t.Errorf("out-of-bounds GetPixel = %v, want zero", got)
	}
}

func TestCanvasClear(t *testing.T) {
	cv := NewCanvas(10, 10)
	cv.SetPixel(3, 3, testRed)
	cv.Clear(color.Gray{Y: 128})
	want := color.RGBA{128, 128, 128, 255}
	for _, p := range []image.Point{{0, 0}, {3, 3}, {9, 9}} {
		if got := cv.GetPixel(p.X, p.Y); got != want {
			t.Errorf("cleared pixel %v = %v, want %v", p, got, want)
		}
	}
}

func TestCanvasRGBASharesBuffer(t *testing.T) {
	cv := NewCanvas(10, 10)
	cv.RGBA().SetRGBA(2, 2, testRed)
	if got := cv.GetPixel(2, 2); got != testRed {
		t.Error("mutating the backing image did not reach the canvas")
	}
}

func TestCanvasSavePNG(t *testing.T) {
	cv := NewCanvas(16, 12, WithBackground(color.White))
	cv.SetPixel(2, 3, testRed)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := cv.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved file: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(16, 12) {
		t.Errorf("decoded size = %v, want 16x12", got)
	}
	if got := color.RGBAModel.Convert(img.At(2, 3)); got != testRed {
		t.Errorf("decoded pixel = %v, want %v", got, testRed)
	}
}

func TestCanvasSavePNGError(t *testing.T) {
	cv := NewCanvas(4, 4)
	if err := cv.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory did not fail")
	}
}
