package freehand

import (
	"image"
	"image/color"
	"testing"
)

func TestDrawHorizontalLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawHorizontalLine(img, 5, 3, 8, testRed)
	set := drawnSet(img)
	if len(set) != 6 {
		t.Fatalf("drew %d pixels, want 6", len(set))
	}
	for x := 3; x <= 8; x++ {
		if !set[image.Pt(x, 5)] {
			t.Errorf("pixel (%d,5) not drawn", x)
		}
	}

	// Reversed endpoints draw the same span.
	img2 := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawHorizontalLine(img2, 5, 8, 3, testRed)
	if len(drawnSet(img2)) != 6 {
		t.Error("reversed endpoints drew a different span")
	}
}

func TestDrawVerticalLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawVerticalLine(img, 7, 10, 4, testRed)
	set := drawnSet(img)
	if len(set) != 7 {
		t.Fatalf("drew %d pixels, want 7", len(set))
	}
	for y := 4; y <= 10; y++ {
		if !set[image.Pt(7, y)] {
			t.Errorf("pixel (7,%d) not drawn", y)
		}
	}
}

func TestDrawLineClipped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	DrawHorizontalLine(img, 20, 0, 9, testRed)
	if len(drawnSet(img)) != 0 {
		t.Error("off-image row drew pixels")
	}
	DrawHorizontalLine(img, 5, -100, 100, testRed)
	if n := len(drawnSet(img)); n != 10 {
		t.Errorf("clipped row drew %d pixels, want 10", n)
	}
	DrawVerticalLine(img, 3, -5, 100, testGreen)
	found := 0
	for p := range drawnSet(img) {
		if p.X == 3 {
			found++
		}
	}
	if found != 10 {
		t.Errorf("clipped column drew %d pixels, want 10", found)
	}
}

func TestDrawDiagonalLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawDiagonalLine(img, image.Pt(2, 3), image.Pt(7, 8), testRed)
	set := drawnSet(img)
	if len(set) != 6 {
		t.Fatalf("drew %d pixels, want 6", len(set))
	}
	for i := 0; i <= 5; i++ {
		if !set[image.Pt(2+i, 3+i)] {
			t.Errorf("pixel (%d,%d) not drawn", 2+i, 3+i)
		}
	}

	// A non-exact diagonal stops at the shorter axis span.
	img2 := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawDiagonalLine(img2, image.Pt(0, 10), image.Pt(12, 5), testRed)
	set2 := drawnSet(img2)
	if len(set2) != 6 {
		t.Fatalf("short-span diagonal drew %d pixels, want 6", len(set2))
	}
	for i := 0; i <= 5; i++ {
		if !set2[image.Pt(i, 10-i)] {
			t.Errorf("pixel (%d,%d) not drawn", i, 10-i)
		}
	}
}

// TestDrawLineFastPathsMatchWalk checks that the horizontal, vertical
// and diagonal fast paths emit exactly the pixels of the generic walk.
func TestDrawLineFastPathsMatchWalk(t *testing.T) {
	pairs := []struct {
		a, b image.Point
	}{
		{image.Pt(2, 5), image.Pt(14, 5)},
		{image.Pt(6, 1), image.Pt(6, 12)},
		{image.Pt(3, 3), image.Pt(11, 11)},
		{image.Pt(12, 2), image.Pt(4, 10)},
	}
	for _, pp := range pairs {
		img := image.NewRGBA(image.Rect(0, 0, 20, 20))
		DrawLine(img, pp.a, pp.b, testRed)
		got := drawnSet(img)
		want := make(map[image.Point]bool)
		bresenham(pp.a, pp.b, func(pt image.Point) { want[pt] = true })
		if len(got) != len(want) {
			t.Errorf("%v-%v: drew %d pixels, walk has %d", pp.a, pp.b, len(got), len(want))
		}
		for p := range want {
			if !got[p] {
				t.Errorf("%v-%v: missing pixel %v", pp.a, pp.b, p)
			}
		}
	}
}

// TestBresenhamWalk checks the generic walk: pixel count equals the
// longer axis span plus one, consecutive pixels touch, and both
// endpoints are plotted, in every direction.
func TestBresenhamWalk(t *testing.T) {
	o := image.Pt(20, 20)
	for _, d := range []image.Point{
		{7, 3}, {3, 7}, {-7, 3}, {-3, 7}, {-7, -3}, {-3, -7}, {7, -3}, {3, -7},
	} {
		b := o.Add(d)
		var pts []image.Point
		bresenham(o, b, func(pt image.Point) { pts = append(pts, pt) })
		want := max(abs(d.X), abs(d.Y)) + 1
		if len(pts) != want {
			t.Errorf("to %v: %d pixels, want %d", d, len(pts), want)
		}
		if pts[0] != o || pts[len(pts)-1] != b {
			t.Errorf("to %v: endpoints %v..%v, want %v..%v", d, pts[0], pts[len(pts)-1], o, b)
		}
		for i := 1; i < len(pts); i++ {
			dx, dy := abs(pts[i].X-pts[i-1].X), abs(pts[i].Y-pts[i-1].Y)
			if dx > 1 || dy > 1 || dx+dy == 0 {
				t.Errorf("to %v: gap between %v and %v", d, pts[i-1], pts[i])
			}
		}
	}
}

func TestDrawHorizontalDashedLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 10))
	DrawHorizontalDashedLine(img, 5, 0, 20, 2, testRed)
	set := drawnSet(img)
	want := []int{0, 1, 4, 5, 8, 9, 12, 13, 16, 17}
	if len(set) != len(want) {
		t.Fatalf("drew %d pixels, want %d", len(set), len(want))
	}
	for _, x := range want {
		if !set[image.Pt(x, 5)] {
			t.Errorf("pixel (%d,5) not drawn", x)
		}
	}
}

func TestDrawVerticalDashedLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 30))
	DrawVerticalDashedLine(img, 5, 0, 11, 1, testRed)
	set := drawnSet(img)
	want := []int{0, 2, 4, 6, 8, 10}
	if len(set) != len(want) {
		t.Fatalf("drew %d pixels, want %d", len(set), len(want))
	}
	for _, y := range want {
		if !set[image.Pt(5, y)] {
			t.Errorf("pixel (5,%d) not drawn", y)
		}
	}
}

func TestDrawDiagonalDashedLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawDiagonalDashedLine(img, image.Pt(0, 0), image.Pt(9, 9), 2, testRed)
	set := drawnSet(img)
	want := []int{0, 1, 4, 5, 8, 9}
	if len(set) != len(want) {
		t.Fatalf("drew %d pixels, want %d", len(set), len(want))
	}
	for _, i := range want {
		if !set[image.Pt(i, i)] {
			t.Errorf("pixel (%d,%d) not drawn", i, i)
		}
	}
}

// TestDashedLineEndpointExcluded pins the asymmetry with solid lines:
// dashed spans stop one short of the end coordinate.
func TestDashedLineEndpointExcluded(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawHorizontalDashedLine(img, 5, 0, 6, 10, testRed)
	set := drawnSet(img)
	if len(set) != 6 {
		t.Fatalf("drew %d pixels, want 6", len(set))
	}
	if set[image.Pt(6, 5)] {
		t.Error("dashed line drew its end coordinate")
	}
}

func TestDashedLineZeroDash(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawHorizontalDashedLine(img, 5, 0, 10, 0, testRed)
	DrawVerticalDashedLine(img, 5, 0, 10, 0, testRed)
	DrawDiagonalDashedLine(img, image.Pt(0, 0), image.Pt(9, 9), 0, testRed)
	DrawDashedLine(img, image.Pt(0, 0), image.Pt(9, 4), -1, testRed)
	if len(drawnSet(img)) != 0 {
		t.Error("zero or negative dash length drew pixels")
	}
}

func TestDrawDashedLineGenericPattern(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawDashedLine(img, image.Pt(0, 0), image.Pt(9, 4), 3, testRed)
	var pts []image.Point
	bresenham(image.Pt(0, 0), image.Pt(9, 4), func(pt image.Point) { pts = append(pts, pt) })
	set := drawnSet(img)
	for i, p := range pts {
		on := (i/3)%2 == 0
		if set[p] != on {
			t.Errorf("pixel %v (step %d): drawn=%v, want %v", p, i, set[p], on)
		}
	}
}

func TestDrawPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawPath(img, []image.Point{{0, 0}, {5, 0}, {5, 5}}, testRed)
	set := drawnSet(img)
	if len(set) != 11 {
		t.Fatalf("drew %d pixels, want 11", len(set))
	}
	for x := 0; x <= 5; x++ {
		if !set[image.Pt(x, 0)] {
			t.Errorf("pixel (%d,0) not drawn", x)
		}
	}
	for y := 0; y <= 5; y++ {
		if !set[image.Pt(5, y)] {
			t.Errorf("pixel (5,%d) not drawn", y)
		}
	}

	img2 := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawPath(img2, []image.Point{{3, 3}}, testRed)
	DrawPath(img2, nil, testRed)
	if len(drawnSet(img2)) != 0 {
		t.Error("degenerate paths drew pixels")
	}
}

func TestDrawLineAlphaBlending(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawLineAlpha(img, image.Pt(2, 5), image.Pt(9, 5), 0.5, testRed)
	want := color.RGBA{R: 128, A: 255}
	for x := 2; x <= 9; x++ {
		if got := img.RGBAAt(x, 5); got != want {
			t.Errorf("pixel (%d,5) = %v, want %v", x, got, want)
		}
	}

	// Over an opaque white background.
	img2 := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for i := range img2.Pix {
		img2.Pix[i] = 255
	}
	DrawLineAlpha(img2, image.Pt(2, 5), image.Pt(9, 5), 0.5, testRed)
	want2 := color.RGBA{R: 255, G: 127, B: 127, A: 255}
	if got := img2.RGBAAt(5, 5); got != want2 {
		t.Errorf("pixel over white = %v, want %v", got, want2)
	}

	// Opacity beyond 1 clamps to full.
	img3 := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawLineAlpha(img3, image.Pt(2, 5), image.Pt(9, 5), 3.5, testRed)
	if got := img3.RGBAAt(5, 5); got != testRed {
		t.Errorf("clamped opacity pixel = %v, want %v", got, testRed)
	}
}

func TestDrawDashedLineAlphaPattern(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 30, 10))
	b := image.NewRGBA(image.Rect(0, 0, 30, 10))
	DrawDashedLineAlpha(a, image.Pt(0, 5), image.Pt(20, 5), 2, 1.0, testRed)
	DrawDashedLine(b, image.Pt(0, 5), image.Pt(20, 5), 2, testRed)
	as, bs := drawnSet(a), drawnSet(b)
	if len(as) != len(bs) {
		t.Fatalf("alpha dashed drew %d pixels, solid drew %d", len(as), len(bs))
	}
	for p := range bs {
		if !as[p] {
			t.Errorf("alpha dashed missing pixel %v", p)
		}
	}
}

func TestDrawAntialiasedLineAxisAligned(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawAntialiasedLine(img, image.Pt(2, 5), image.Pt(9, 5), testRed)
	for x := 2; x <= 9; x++ {
		if got := img.RGBAAt(x, 5); got != testRed {
			t.Errorf("pixel (%d,5) = %v, want opaque", x, got)
		}
		if a := img.RGBAAt(x, 6).A; a != 0 {
			t.Errorf("pixel (%d,6) has alpha %d, want 0", x, a)
		}
	}

	img2 := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawAntialiasedLine(img2, image.Pt(4, 1), image.Pt(4, 8), testRed)
	for y := 1; y <= 8; y++ {
		if got := img2.RGBAAt(4, y); got != testRed {
			t.Errorf("pixel (4,%d) = %v, want opaque", y, got)
		}
	}
}

func TestDrawAntialiasedLineDiagonal(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawAntialiasedLine(img, image.Pt(1, 1), image.Pt(8, 8), testRed)
	for i := 1; i <= 8; i++ {
		if got := img.RGBAAt(i, i); got != testRed {
			t.Errorf("pixel (%d,%d) = %v, want opaque", i, i, got)
		}
	}
}

// TestDrawAntialiasedLineEnergy checks the coverage invariant on a
// sloped line: each column receives exactly full opacity split across
// its bracket pair, and the endpoints land on the grid fully opaque.
func TestDrawAntialiasedLineEnergy(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawAntialiasedLine(img, image.Pt(0, 3), image.Pt(9, 6), testRed)
	for x := 0; x <= 9; x++ {
		sum := 0
		for y := 0; y < 20; y++ {
			sum += int(img.RGBAAt(x, y).A)
		}
		if sum != 255 {
			t.Errorf("column %d: alpha sum %d, want 255", x, sum)
		}
	}
	if img.RGBAAt(0, 3) != testRed || img.RGBAAt(9, 6) != testRed {
		t.Error("endpoints are not fully opaque")
	}
}

// TestDrawAntialiasedLineSteep checks the row-major split of a steep
// line: full opacity per row.
func TestDrawAntialiasedLineSteep(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawAntialiasedLine(img, image.Pt(3, 0), image.Pt(6, 9), testRed)
	for y := 0; y <= 9; y++ {
		sum := 0
		for x := 0; x < 20; x++ {
			sum += int(img.RGBAAt(x, y).A)
		}
		if sum != 255 {
			t.Errorf("row %d: alpha sum %d, want 255", y, sum)
		}
	}
}

func TestDrawAntialiasedLinePoint(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	DrawAntialiasedLine(img, image.Pt(4, 4), image.Pt(4, 4), testRed)
	if got := img.RGBAAt(4, 4); got != testRed {
		t.Errorf("single point = %v, want opaque", got)
	}
	if len(drawnSet(img)) != 1 {
		t.Error("single point drew more than one pixel")
	}
}

func TestAlphaLinesClipped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	DrawLineAlpha(img, image.Pt(-5, 5), image.Pt(15, 5), 0.5, testRed)
	DrawLineAlpha(img, image.Pt(5, -5), image.Pt(5, 15), 0.5, testRed)
	DrawAntialiasedLine(img, image.Pt(-3, -3), image.Pt(12, 14), testRed)
	for p := range drawnSet(img) {
		if !p.In(img.Bounds()) {
			t.Errorf("pixel %v outside bounds", p)
		}
	}
}
