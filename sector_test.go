package freehand

import (
	"image"
	"math"
	"testing"
)

// TestLocalToImageKnownPoints pins the local frame of each octant: the
// walk origin (0, r) sits on the octant's leading axis or diagonal
// side, counterclockwise from the positive x axis.
func TestLocalToImageKnownPoints(t *testing.T) {
	c := image.Pt(100, 100)
	const r = 50
	tests := []struct {
		oct  int
		want image.Point // image position of local (0, r)
	}{
		{1, image.Pt(150, 100)}, // angle 0
		{2, image.Pt(100, 50)},  // angle π/2 approached from below
		{3, image.Pt(100, 50)},  // angle π/2
		{4, image.Pt(50, 100)},  // angle π approached from below
		{5, image.Pt(50, 100)},  // angle π
		{6, image.Pt(100, 150)}, // angle 3π/2 approached from below
		{7, image.Pt(100, 150)}, // angle 3π/2
		{8, image.Pt(150, 100)}, // angle 2π approached from below
	}
	for _, tt := range tests {
		if got := localToImage(0, r, tt.oct, c); got != tt.want {
			t.Errorf("octant %d: localToImage(0, r) = %v, want %v", tt.oct, got, tt.want)
		}
	}
}

func TestLocalToImageRoundTrip(t *testing.T) {
	c := image.Pt(37, 81)
	fc := fpt(c)
	for oct := 1; oct <= 8; oct++ {
		for x := 0; x <= 10; x++ {
			for y := 10; y <= 20; y++ {
				img := localToImage(x, y, oct, c)
				back := imageToLocal(fpt(img), oct, fc)
				if iround(back.X) != x || iround(back.Y) != y {
					t.Fatalf("octant %d: (%d,%d) -> %v -> %v", oct, x, y, img, back)
				}
			}
		}
	}
}

// TestLocalPointTracksAngle checks that within any octant the local x
// coordinate starts at the walk origin side and ends at the diagonal.
func TestLocalPointTracksAngle(t *testing.T) {
	c := image.Pt(200, 200)
	const r = 100.0
	diag := r / math.Sqrt2
	for oct := 1; oct <= 8; oct++ {
		lo := octantStartAngle(oct)
		hi := octantEndAngle(oct) - 1e-9
		p1 := localPoint(lo, r, oct, c)
		p2 := localPoint(hi, r, oct, c)
		// Odd octants run from the axis side, even octants from the
		// diagonal side.
		first, last := p1, p2
		if oct%2 == 0 {
			first, last = p2, p1
		}
		if math.Abs(first.X) > 1e-6 || math.Abs(first.Y-r) > 1e-6 {
			t.Errorf("octant %d: origin-side point = %v, want (0, %v)", oct, first, r)
		}
		if math.Abs(last.X-diag) > 1e-3 || math.Abs(last.Y-diag) > 1e-3 {
			t.Errorf("octant %d: diagonal-side point = %v, want (%v, %v)", oct, last, diag, diag)
		}
	}
}

// TestLocalFrameOnCircle checks the local frame invariant x²+y²=r² for
// sampled angles in every octant.
func TestLocalFrameOnCircle(t *testing.T) {
	c := image.Pt(300, 140)
	const r = 190.0
	for i := 0; i < 64; i++ {
		a := (pi2 / 64) * float64(i)
		oct := angleToOctant(a)
		p := localPoint(a, r, oct, c)
		if d := math.Abs(p.X*p.X + p.Y*p.Y - r*r); d > 1e-6 {
			t.Errorf("angle %v: local point %v off circle by %v", a, p, d)
		}
		if p.X < -1e-9 || p.Y < p.X-1e-9 {
			t.Errorf("angle %v: local point %v outside octant frame", a, p)
		}
	}
}

func TestQuadToImageKnownPoints(t *testing.T) {
	c := Pt(100, 100)
	const r = 50.0
	tests := []struct {
		quad int
		want Point // image position of local (0, r)
	}{
		{1, Pt(150, 100)}, // angle 0
		{2, Pt(100, 50)},  // angle π/2
		{3, Pt(50, 100)},  // angle π
		{4, Pt(100, 150)}, // angle 3π/2
	}
	for _, tt := range tests {
		if got := quadToImage(0, r, tt.quad, c); got != tt.want {
			t.Errorf("quadrant %d: quadToImage(0, r) = %v, want %v", tt.quad, got, tt.want)
		}
	}
}
