package colorspace

import "github.com/chewxy/math32"

// APCA constants, per
// https://github.com/Myndex/SAPC-APCA/blob/master/documentation/APCA-W3-LaTeX.md
// (accessed during the original implementation, 2024-03-19).
const (
	apcaTextExp  = 0.57
	apcaBgExp    = 0.56
	apcaTextExpR = 0.62
	apcaBgExpR   = 0.65
	apcaScale    = 1.14
	apcaOffset   = 0.027

	apcaTRC    = 2.4
	apcaBThrsh = 0.022
	apcaBClip  = 1.414
)

// APCALuminance computes the APCA relative luminance of an 8-bit sRGB color,
// including the soft-clip applied near black.
func APCALuminance(c SRGB8) float32 {
	r := math32.Pow(float32(c.R)/255, apcaTRC)
	g := math32.Pow(float32(c.G)/255, apcaTRC)
	b := math32.Pow(float32(c.B)/255, apcaTRC)
	y := r*0.2126729 + g*0.7151522 + b*0.0721750
	switch {
	case y < 0:
		return 0
	case y < apcaBThrsh:
		return y + math32.Pow(apcaBThrsh-y, apcaBClip)
	default:
		return y
	}
}

// APCA computes the Accessible Perceptual Contrast Algorithm score between
// text color and background color bg. Unlike WCAG 2.x contrast, APCA is
// asymmetric: APCA(text, bg) != APCA(bg, text) in general, so callers must
// be consistent about argument order.
func APCA(text, bg SRGB8) float32 {
	yText := APCALuminance(text)
	yBg := APCALuminance(bg)

	var s float32
	if yText < yBg {
		s = (math32.Pow(yBg, apcaBgExp) - math32.Pow(yText, apcaTextExp)) * apcaScale
	} else {
		s = (math32.Pow(yBg, apcaBgExpR) - math32.Pow(yText, apcaTextExpR)) * apcaScale
	}

	switch {
	case math32.Abs(s) < apcaOffset:
		return 0
	case s > 0:
		return 100 * (s - apcaOffset)
	default:
		return -100 * (s + apcaOffset)
	}
}
