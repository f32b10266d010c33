package colorspace

import (
	"math/rand"
	"testing"
)

func TestSrgbLutMatchesFunctionOnRandomSample(t *testing.T) {
	lut := NewSrgbLut(func(c SRGB8) float32 {
		return float32(c.R) + float32(c.G)*256 + float32(c.B)*65536
	})
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		c := SRGB8{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}
		want := float32(c.R) + float32(c.G)*256 + float32(c.B)*65536
		if got := lut.Get(c); got != want {
			t.Fatalf("lut.Get(%v) = %v, want %v", c, got, want)
		}
	}
}

func TestNewConstraintLutRejectsEmptyBackgrounds(t *testing.T) {
	_, err := NewConstraintLut(nil, APCA)
	if err != ErrEmptyBackgroundSet {
		t.Fatalf("got err %v, want %v", err, ErrEmptyBackgroundSet)
	}
}

func TestNewConstraintLutIsMinOverBackgrounds(t *testing.T) {
	bgs := []SRGB8{{0, 0, 0}, {255, 255, 255}}
	lut, err := NewConstraintLut(bgs, APCA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		c := SRGB8{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}
		want := APCA(c, bgs[0])
		if v := APCA(c, bgs[1]); v < want {
			want = v
		}
		if got := lut.Get(c); got != want {
			t.Fatalf("lut.Get(%v) = %v, want min-over-backgrounds %v", c, got, want)
		}
	}
}
