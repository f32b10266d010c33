package colorspace

import "testing"

// LMSFromLinear and LMS.Linear must invert each other to within 2^-19 per
// channel: only the dichromacy simulation methods (protan/deutan/tritan) are
// lossy by design.
func TestLMSRoundTripsOverFullCube(t *testing.T) {
	if testing.Short() {
		t.Skip("full 2^24 sweep skipped in -short mode")
	}
	const tol = 1.0 / (1 << 19)
	for i := 0; i < 1<<24; i++ {
		c := FromIndex(i)
		lin := c.LSRGB()
		got := LMSFromLinear(lin).Linear()
		if absf(got.R-lin.R) > tol || absf(got.G-lin.G) > tol || absf(got.B-lin.B) > tol {
			t.Fatalf("LMS round trip broke at index %d: %v -> %v", i, lin, got)
		}
	}
}

func TestDichromacySimulationDoesNotPanic(t *testing.T) {
	colors := []SRGB8{
		{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{128, 64, 200}, {10, 240, 30},
	}
	for _, c := range colors {
		_ = SimulateProtan(c)
		_ = SimulateDeutan(c)
		_ = SimulateTritan(c)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
