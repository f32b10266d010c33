package colorspace

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms1"
	"github.com/soypat/geometry/ms3"
)

// This file holds the continuous-domain color toolkit for previewing a
// palette: gamma-encoded/linear sRGB, CIE XYZ and
// OKLab/OKLCH, plus perceptually aware interpolation between two colors.
// The optimizer itself works in the discrete 8-bit domain (see srgb8.go,
// oklab.go, lms.go, contrast.go); this file is the bridge a caller uses to
// render a smooth gradient between two chosen palette entries.

// Transposed due to being defined in column major format.
var (
	linSRGBToXYZ = ms3.NewMat3([]float32{
		506752. / 1228815, 87881. / 245763, 12673. / 70218,
		87098. / 409605, 175762. / 245763, 12673. / 175545,
		7918. / 409605, 87881. / 737289, 1001167. / 1053270,
	})
	xyzToLMSok = ms3.NewMat3([]float32{0.8190224379967030, 0.3619062600528904, -0.1288737815209879,
		0.0329836539323885, 0.9292868615863434, 0.0361446663506424,
		0.0481771893596242, 0.2642395317527308, 0.6335478284694309})
	lmsokToOklab = ms3.NewMat3([]float32{0.2104542683093140, 0.7936177747023054, -0.0040720430116193,
		1.9779985324311684, -2.4285922420485799, 0.4505937096174110,
		0.0259040424655478, 0.7827717124575296, -0.8086757549230774})
)

// SRGB is gamma-encoded Red-Green-Blue color with each channel normalized to [0,1].
// It is the continuous counterpart of [SRGB8], the 8-bit triple the optimizer operates on.
type SRGB struct {
	R, G, B float32
}

// LSRGB is linear-light (un-companded) color space.
type LSRGB struct {
	R, G, B float32
}

// CIEXYZ is the 1931 CIE color space. A mixture of two colors in some
// proportion lies on the line between those two colors in this space.
type CIEXYZ struct {
	X, Y, Z float32
}

// OKLAB is Björn Ottosson's perceptually uniform color space, unscaled
// (L in [0,1]). [Oklab] in oklab.go is the optimizer's x100-scaled sibling.
type OKLAB struct {
	L, A, B float32
}

// OKLCH is the cylindrical representation of [OKLAB].
type OKLCH struct {
	L, C, H float32
}

func (c SRGB) vec() ms3.Vec   { return ms3.Vec{X: c.R, Y: c.G, Z: c.B} }
func (c LSRGB) vec() ms3.Vec  { return ms3.Vec{X: c.R, Y: c.G, Z: c.B} }
func (c CIEXYZ) vec() ms3.Vec { return ms3.Vec{X: c.X, Y: c.Y, Z: c.Z} }
func (c OKLAB) vec() ms3.Vec  { return ms3.Vec{X: c.L, Y: c.A, Z: c.B} }
func (c OKLCH) vec() ms3.Vec  { return ms3.Vec{X: c.L, Y: c.C, Z: c.H} }

// transferFunc is the sRGB EOTF (gamma decode).
func transferFunc(v float32) float32 {
	sign := math32.Copysign(1, v)
	abs := math32.Abs(v)
	if abs <= 0.04045 {
		return v / 12.92
	}
	return sign * math32.Pow((abs+0.055)/1.055, 2.4)
}

// invTransferFunc is the inverse sRGB EOTF (gamma encode), per IEC2003.
func invTransferFunc(v float32) float32 {
	sign := math32.Copysign(1, v)
	abs := math32.Abs(v)
	if abs <= 0.0031308 {
		return 12.92 * v
	}
	return sign * (1.055*math32.Pow(abs, 1./2.4) - 0.055)
}

func (c SRGB) LSRGB() LSRGB {
	return LSRGB{R: transferFunc(c.R), G: transferFunc(c.G), B: transferFunc(c.B)}
}
func (c LSRGB) SRGB() SRGB {
	return SRGB{R: invTransferFunc(c.R), G: invTransferFunc(c.G), B: invTransferFunc(c.B)}
}

// ColorToSRGB converts the color to [SRGB], discarding alpha.
func ColorToSRGB(c color.Color) SRGB {
	r, g, b, _ := c.RGBA()
	return SRGB{R: float32(r) / 0xffff, G: float32(g) / 0xffff, B: float32(b) / 0xffff}
}

func (c SRGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R*0xffff + 0.5)
	g = uint32(c.G*0xffff + 0.5)
	b = uint32(c.B*0xffff + 0.5)
	return r, g, b, 0xffff
}

func (c LSRGB) CIEXYZ() CIEXYZ {
	v := ms3.MulMatVec(linSRGBToXYZ, c.vec())
	return CIEXYZ{X: v.X, Y: v.Y, Z: v.Z}
}

func (c CIEXYZ) OKLAB() OKLAB {
	lms := ms3.MulMatVec(xyzToLMSok, c.vec())
	v := ms3.MulMatVec(lmsokToOklab, ms3.Vec{
		X: math32.Cbrt(lms.X),
		Y: math32.Cbrt(lms.Y),
		Z: math32.Cbrt(lms.Z),
	})
	return OKLAB{L: v.X, A: v.Y, B: v.Z}
}

func (c OKLAB) OKLCH() OKLCH {
	const eps = 0.000004
	hue := math32.Atan2(c.B, c.A) * 180 / math32.Pi
	chroma := math32.Sqrt(c.A*c.A + c.B*c.B)
	if hue < 0 {
		hue += 360
	}
	if chroma <= eps {
		hue = 0
	}
	return OKLCH{L: c.L, C: chroma, H: hue}
}

// OKLAB converts the cylindrical representation back to Cartesian form.
func (c OKLCH) OKLAB() OKLAB {
	sin, cos := math32.Sincos(c.H * math32.Pi / 180)
	return OKLAB{L: c.L, A: c.C * cos, B: c.C * sin}
}

// InGamut reports whether the linear-light color lies inside the sRGB gamut.
func (c LSRGB) InGamut() bool {
	return c.R <= 1 && c.G <= 1 && c.B <= 1 && c.R >= 0 && c.G >= 0 && c.B >= 0
}

// ClipToGamut clamps each channel to [0,1].
func (c LSRGB) ClipToGamut() LSRGB {
	return LSRGB{R: ms1.Clamp(c.R, 0, 1), G: ms1.Clamp(c.G, 0, 1), B: ms1.Clamp(c.B, 0, 1)}
}

func (from OKLCH) lerp(to OKLCH, v float32) OKLCH {
	const eps = 0.000004
	fromPowerless := from.C < eps
	toPowerless := to.C < eps
	if fromPowerless || toPowerless {
		if fromPowerless && toPowerless {
			return OKLCH{L: ms1.Interp(from.L, to.L, v), C: 0, H: 0}
		} else if !toPowerless {
			from.H = to.H
		} else {
			to.H = from.H
		}
	}
	return OKLCH{
		L: ms1.Interp(from.L, to.L, v),
		H: ms1.InterpWrap(360, from.H, to.H, v),
		C: ms1.Interp(from.C, to.C, v),
	}
}

func (reference OKLAB) deltaE(sample OKLAB) float32 {
	e := ms3.Sub(reference.vec(), sample.vec())
	return math32.Sqrt(ms3.Dot(e, e))
}

// GamutMappedLSRGB maps an OKLCH color into the sRGB gamut, reducing chroma
// until the color is representable while keeping lightness and hue stable.
func (c OKLCH) GamutMappedLSRGB() OKLCH {
	origin := c
	if origin.L < 0 || origin.L > 1 {
		return OKLCH{L: math32.Min(math32.Max(origin.L, 0), 1), C: 0, H: 0}
	}
	const (
		jnd = 0.02
		eps = 0.0001
	)
	current := origin
	clipped := current.OKLAB().oklabToCIEXYZ().LSRGB().ClipToGamut()
	e := origin.OKLAB().deltaE(clipped.CIEXYZ().OKLAB())
	if e < jnd {
		return clipped.CIEXYZ().OKLAB().OKLCH()
	}
	var cmin, cmax float32 = 0, origin.C
	minInGamut := true
	for cmax-cmin > eps {
		chroma := 0.5 * (cmin + cmax)
		current.C = chroma
		currentRGB := current.OKLAB().oklabToCIEXYZ().LSRGB()
		if minInGamut && currentRGB.InGamut() {
			cmin = chroma
			minInGamut = OKLCH{L: current.L, C: chroma, H: current.H}.OKLAB().oklabToCIEXYZ().LSRGB().InGamut()
			continue
		}
		clipped = currentRGB.ClipToGamut()
		e = clipped.CIEXYZ().OKLAB().deltaE(current.OKLAB())
		if e < jnd {
			if jnd-e < eps {
				return clipped.CIEXYZ().OKLAB().OKLCH()
			}
			minInGamut = false
			cmin = chroma
			minInGamut = OKLCH{L: current.L, C: chroma, H: current.H}.OKLAB().oklabToCIEXYZ().LSRGB().InGamut()
		} else {
			cmax = chroma
		}
	}
	return clipped.CIEXYZ().OKLAB().OKLCH()
}

var (
	oklabToLMSok = ms3.NewMat3([]float32{1.0000000000000000, 0.3963377773761749, 0.2158037573099136,
		1.0000000000000000, -0.1055613458156586, -0.0638541728258133,
		1.0000000000000000, -0.0894841775298119, -1.2914855480194092})
	lmsokToXYZ = ms3.NewMat3([]float32{1.2268798758459243, -0.5578149944602171, 0.2813910456659647,
		-0.0405757452148008, 1.1122868032803170, -0.0717110580655164,
		-0.0763729366746601, -0.4214933324022432, 1.5869240198367816})
	xyzToLinSRGB = ms3.NewMat3([]float32{12831. / 3959, -329. / 214, -1974. / 3959,
		-851781. / 878810, 1648619. / 878810, 36519. / 878810,
		705. / 12673, -2585. / 12673, 705. / 667,
	})
)

func (c OKLAB) oklabToCIEXYZ() CIEXYZ {
	lmsNonlinear := ms3.MulMatVec(oklabToLMSok, c.vec())
	v := ms3.MulMatVec(lmsokToXYZ, ms3.Vec{
		X: lmsNonlinear.X * lmsNonlinear.X * lmsNonlinear.X,
		Y: lmsNonlinear.Y * lmsNonlinear.Y * lmsNonlinear.Y,
		Z: lmsNonlinear.Z * lmsNonlinear.Z * lmsNonlinear.Z,
	})
	return CIEXYZ{X: v.X, Y: v.Y, Z: v.Z}
}

func (c CIEXYZ) LSRGB() LSRGB {
	v := ms3.MulMatVec(xyzToLinSRGB, c.vec())
	return LSRGB{R: v.X, G: v.Y, B: v.Z}
}

// LerpOKLCH interpolates two colors in OKLCH (lightness, chroma, hue),
// gamut-mapping the result back into sRGB, for previewing a gradient
// between two palette entries. The demo driver does not call it.
func LerpOKLCH(c1, c2 SRGB8, v float32) SRGB8 {
	o1 := c1.SRGB().LSRGB().CIEXYZ().OKLAB().OKLCH()
	o2 := c2.SRGB().LSRGB().CIEXYZ().OKLAB().OKLCH()
	mapped := o1.lerp(o2, v).GamutMappedLSRGB()
	result := mapped.OKLAB().oklabToCIEXYZ().LSRGB().ClipToGamut().SRGB()
	return FromSRGB(result)
}
