package colorspace

import "github.com/soypat/geometry/ms3"

// lmsCone holds the Smith & Pokorny-style linear cone-response matrices used
// only for dichromacy simulation; this is a different LMS space than the one
// [OklabFromLinear] routes through, and the two must not be confused.
var (
	linearToLMSCone = ms3.NewMat3([]float32{
		0.178824041258, 0.43516090570, 0.04119349692,
		0.034556423182, 0.27155382458, 0.03867130836,
		0.000299565576, 0.00184308960, 0.01467086130,
	})
	lmsConeToLinear = ms3.NewMat3([]float32{
		8.09443559803, -13.05043146050, 11.67205845392,
		-1.02485055866, 5.40193130967, -11.36147149060,
		-0.03652974716, -0.41216280700, 69.35132423821,
	})
)

// LMS is long/medium/short linear cone response, used as an intermediate
// representation for simulating color-vision deficiencies.
type LMS struct {
	L, M, S float32
}

func (c LMS) vec() ms3.Vec { return ms3.Vec{X: c.L, Y: c.M, Z: c.S} }

// LMSFromLinear converts linear-light RGB to cone response.
func LMSFromLinear(c LSRGB) LMS {
	v := ms3.MulMatVec(linearToLMSCone, c.vec())
	return LMS{L: v.X, M: v.Y, S: v.Z}
}

// Linear converts cone response back to linear-light RGB.
func (c LMS) Linear() LSRGB {
	v := ms3.MulMatVec(lmsConeToLinear, c.vec())
	return LSRGB{R: v.X, G: v.Y, B: v.Z}
}

// protan replaces the long-cone response along the dichromat confusion axis.
func (c LMS) protan() LMS {
	var l float32
	if -0.016813516536*c.M+0.344781556122*c.S > 0 {
		l = 2.168306154*c.M - 5.496382983*c.S
	} else {
		l = 2.186148123*c.M - 5.862254192*c.S
	}
	return LMS{L: l, M: c.M, S: c.S}
}

// deutan replaces the medium-cone response along the dichromat confusion axis.
func (c LMS) deutan() LMS {
	var m float32
	if -0.016813516536*c.L+0.655178443878*c.S > 0 {
		m = 0.461189486*c.L + 2.534874041*c.S
	} else {
		m = 0.457425547*c.L + 2.681544828*c.S
	}
	return LMS{L: c.L, M: m, S: c.S}
}

// tritan replaces the short-cone response along the dichromat confusion axis.
func (c LMS) tritan() LMS {
	var s float32
	if -0.344781556121*c.L+0.655178443878*c.M > 0 {
		s = -0.060109594*c.L + 0.162990236*c.M
	} else {
		s = -0.002574364*c.L + 0.053657697*c.M
	}
	return LMS{L: c.L, M: c.M, S: s}
}

// SimulateProtan returns the Oklab appearance of c to a protanope.
func SimulateProtan(c SRGB8) Oklab {
	return OklabFromLinear(LMSFromLinear(c.LSRGB()).protan().Linear())
}

// SimulateDeutan returns the Oklab appearance of c to a deuteranope.
func SimulateDeutan(c SRGB8) Oklab {
	return OklabFromLinear(LMSFromLinear(c.LSRGB()).deutan().Linear())
}

// SimulateTritan returns the Oklab appearance of c to a tritanope.
func SimulateTritan(c SRGB8) Oklab {
	return OklabFromLinear(LMSFromLinear(c.LSRGB()).tritan().Linear())
}
