package blend

// The div255 family avoids integer division by 255 with shifts and
// addition. mulDiv255 runs for every channel of every blended pixel,
// so this matters for antialiased drawing.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/

// div255 divides x by 255 using the fast shift approximation
// (x + 255) >> 8. The result may be one higher than exact division
// for some inputs. Summing complementary products keeps the error
// bounded: div255(a*t) + div255(b*(255-t)) never exceeds 255.
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// div255Exact divides x by 255 exactly without division, using Alvy
// Ray Smith's formula ((x + 1) + ((x + 1) >> 8)) >> 8.
func div255Exact(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 using the fast
// approximation.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// mulDiv255Exact multiplies two bytes and divides by 255 exactly.
// Used as the reference in tests.
func mulDiv255Exact(a, b byte) byte {
	return byte(div255Exact(uint16(a) * uint16(b)))
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) byte {
	return 255 - x
}
