package optimizer

import (
	"math/rand"
	"testing"

	"github.com/soypat/paletteopt/colorspace"
)

func TestApplyColorUpdateSaturatesAtBoundaries(t *testing.T) {
	cases := []struct {
		c    colorspace.SRGB8
		cu   colorUpdate
		want uint8
	}{
		{colorspace.SRGB8{R: 0}, colorUpdate{axis: axisR, sign: signNegative}, 1},
		{colorspace.SRGB8{R: 0xFF}, colorUpdate{axis: axisR, sign: signPositive}, 0xFE},
		{colorspace.SRGB8{R: 10}, colorUpdate{axis: axisR, sign: signPositive}, 11},
		{colorspace.SRGB8{R: 10}, colorUpdate{axis: axisR, sign: signNegative}, 9},
	}
	for _, c := range cases {
		got := applyColorUpdate(c.c, c.cu).R
		if got != c.want {
			t.Errorf("applyColorUpdate(%v, %+v).R = %d, want %d", c.c, c.cu, got, c.want)
		}
	}
}

func TestPerturbConstraintNeverLeavesChannelRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	palette := []colorspace.SRGB8{{0, 0, 255}, {255, 0, 0}}
	for i := 0; i < 10000; i++ {
		idx, c := perturbConstraint(rng, palette, rng.Intn(len(palette)))
		_ = idx
		_ = c // uint8 channels are range-safe by construction; this just exercises every branch
	}
}

func TestPerturbPairPicksEitherIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	palette := []colorspace.SRGB8{{10, 10, 10}, {200, 200, 200}}
	seenFirst, seenSecond := false, false
	for i := 0; i < 1000; i++ {
		idx, _ := perturbPair(rng, palette, 0, 1)
		if idx == 0 {
			seenFirst = true
		} else if idx == 1 {
			seenSecond = true
		} else {
			t.Fatalf("perturbPair returned out-of-range index %d", idx)
		}
	}
	if !seenFirst || !seenSecond {
		t.Errorf("expected both indices to be drawn over 1000 samples, got first=%v second=%v", seenFirst, seenSecond)
	}
}
