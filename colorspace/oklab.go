package colorspace

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// oklabScale lines Oklab components up with CIELAB's numeric range so L runs
// roughly 0..100 instead of 0..1. Purely a convenience scale factor.
const oklabScale = 100

// m1LinearToLMS and m2LMSToOklab are Björn Ottosson's published matrices for
// converting linear sRGB directly to Oklab, reproduced from
// https://bottosson.github.io/posts/oklab/#converting-from-linear-srgb-to-oklab.
var (
	m1LinearToLMS = ms3.NewMat3([]float32{
		0.4122214708, 0.5363325363, 0.0514459929,
		0.2119034982, 0.6806995451, 0.1073969566,
		0.0883024619, 0.2817188376, 0.6299787005,
	})
	m2LMSToOklab = ms3.NewMat3([]float32{
		0.2104542553 * oklabScale, 0.7936177850 * oklabScale, -0.0040720468 * oklabScale,
		1.9779984951 * oklabScale, -2.4285922050 * oklabScale, 0.4505937099 * oklabScale,
		0.0259040371 * oklabScale, 0.7827717662 * oklabScale, -0.8086757660 * oklabScale,
	})
)

// Oklab is Björn Ottosson's perceptually uniform color space, scaled so L
// ranges roughly 0..100. This is the representation every [PairDistance]
// metric's [SrgbLut] stores; [HyAB] measures distance in this space.
type Oklab struct {
	L, A, B float32
}

// Oklch is the cylindrical (polar) form of [Oklab]: lightness unchanged,
// chroma and hue derived from A and B. Used only for previewing a palette;
// the optimizer itself never needs it.
type Oklch struct {
	L, C, H float32
}

// OklabFromLinear converts a linear-light RGB triple to [Oklab] via the
// direct linear-sRGB-to-LMS-to-Oklab matrix pair (§4.1 of the design).
func OklabFromLinear(c LSRGB) Oklab {
	lms := ms3.MulMatVec(m1LinearToLMS, c.vec())
	v := ms3.MulMatVec(m2LMSToOklab, ms3.Vec{
		X: math32.Cbrt(lms.X),
		Y: math32.Cbrt(lms.Y),
		Z: math32.Cbrt(lms.Z),
	})
	return Oklab{L: v.X, A: v.Y, B: v.Z}
}

// OklabFromSRGB8 converts an 8-bit sRGB color directly to [Oklab].
func OklabFromSRGB8(c SRGB8) Oklab {
	return OklabFromLinear(c.LSRGB())
}

func (c Oklab) vec() ms3.Vec { return ms3.Vec{X: c.L, Y: c.A, Z: c.B} }

// Oklch converts to the cylindrical representation.
func (c Oklab) Oklch() Oklch {
	chroma := math32.Sqrt(c.A*c.A + c.B*c.B)
	hue := math32.Atan2(c.B, c.A) * 180 / math32.Pi
	if hue < 0 {
		hue += 360
	}
	return Oklch{L: c.L, C: chroma, H: hue}
}

// HyAB is the hybrid Lab distance `|ΔL| + sqrt(Δa² + Δb²)`, preferred over
// Euclidean ΔE for suprathreshold perceptual differences. Symmetric,
// non-negative, and zero iff the two colors are equal.
func HyAB(c1, c2 Oklab) float32 {
	dl := math32.Abs(c1.L - c2.L)
	da := c1.A - c2.A
	db := c1.B - c2.B
	return dl + math32.Sqrt(da*da+db*db)
}
