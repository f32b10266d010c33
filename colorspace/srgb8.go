package colorspace

import "fmt"

// SRGB8 is an 8-bit-per-channel sRGB color, the unit the palette optimizer
// actually works over. Every [SrgbLut] is indexed by [SRGB8.Index].
type SRGB8 struct {
	R, G, B uint8
}

// Index returns the canonical 24-bit index (R<<16)|(G<<8)|B used to address
// an [SrgbLut] entry for this color.
func (c SRGB8) Index() int {
	return int(c.B) | int(c.G)<<8 | int(c.R)<<16
}

// FromIndex reconstructs the color addressed by a canonical 24-bit index.
func FromIndex(index int) SRGB8 {
	return SRGB8{
		R: uint8(index >> 16),
		G: uint8(index >> 8),
		B: uint8(index),
	}
}

// String renders the color as an uppercase "#RRGGBB" hex string.
func (c SRGB8) String() string {
	return fmt.Sprintf("#%06X", c.Index())
}

// SRGB converts to the continuous, normalized sRGB representation.
func (c SRGB8) SRGB() SRGB {
	return SRGB{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255}
}

// FromSRGB quantizes a continuous sRGB color back to 8 bits per channel,
// clamping out-of-gamut channels and rounding to the nearest integer.
func FromSRGB(c SRGB) SRGB8 {
	return SRGB8{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B)}
}

func quantize(v float32) uint8 {
	v = v*255 + 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// srgbToLinearTable is the precomputed 256-entry sRGB EOTF used to turn an
// 8-bit channel into its linear-light float32 value in O(1).
var srgbToLinearTable = func() (table [256]float32) {
	for i := range table {
		table[i] = transferFunc(float32(i) / 255)
	}
	return table
}()

// LSRGB converts to linear-light RGB via the precomputed per-channel table.
func (c SRGB8) LSRGB() LSRGB {
	return LSRGB{
		R: srgbToLinearTable[c.R],
		G: srgbToLinearTable[c.G],
		B: srgbToLinearTable[c.B],
	}
}
