package optimizer

import (
	"math/rand"

	"github.com/soypat/paletteopt/colorspace"
)

type axis int

const (
	axisR axis = iota
	axisG
	axisB
)

type sign int

const (
	signPositive sign = iota
	signNegative
)

type which int

const (
	whichFirst which = iota
	whichSecond
)

type colorUpdate struct {
	axis axis
	sign sign
}

type pairColorUpdate struct {
	which which
	cu    colorUpdate
}

// constraintUpdates and pairUpdates are the immutable 6- and 8-outcome
// perturbation distributions from the design: {axis, sign} for a
// single-color constraint move, {which, axis, sign} for a pair move.
// Built once at package initialization; never mutated afterward.
var constraintUpdates = buildConstraintUpdates()
var pairUpdates = buildPairUpdates()

func buildConstraintUpdates() []colorUpdate {
	us := make([]colorUpdate, 0, 6)
	for _, a := range [...]axis{axisR, axisG, axisB} {
		for _, s := range [...]sign{signPositive, signNegative} {
			us = append(us, colorUpdate{axis: a, sign: s})
		}
	}
	return us
}

func buildPairUpdates() []pairColorUpdate {
	us := make([]pairColorUpdate, 0, 8)
	for _, w := range [...]which{whichFirst, whichSecond} {
		for _, a := range [...]axis{axisR, axisG, axisB} {
			for _, s := range [...]sign{signPositive, signNegative} {
				us = append(us, pairColorUpdate{which: w, cu: colorUpdate{axis: a, sign: s}})
			}
		}
	}
	return us
}

func getChannel(c colorspace.SRGB8, a axis) uint8 {
	switch a {
	case axisR:
		return c.R
	case axisG:
		return c.G
	default:
		return c.B
	}
}

func setChannel(c colorspace.SRGB8, a axis, v uint8) colorspace.SRGB8 {
	switch a {
	case axisR:
		c.R = v
	case axisG:
		c.G = v
	default:
		c.B = v
	}
	return c
}

// applyColorUpdate steps one channel of c by one unit in the requested
// direction, saturating at 0/255 by forcing the step to move away from the
// boundary rather than overflowing.
func applyColorUpdate(c colorspace.SRGB8, cu colorUpdate) colorspace.SRGB8 {
	ch := getChannel(c, cu.axis)
	var delta int
	switch {
	case ch == 0x00:
		delta = 1
	case cu.sign == signPositive && ch != 0xFF:
		delta = 1
	default:
		delta = -1
	}
	return setChannel(c, cu.axis, uint8(int(ch)+delta))
}

// perturbConstraint draws a random single-channel step for palette slot i.
func perturbConstraint(rng *rand.Rand, palette []colorspace.SRGB8, i int) (int, colorspace.SRGB8) {
	cu := constraintUpdates[rng.Intn(len(constraintUpdates))]
	return i, applyColorUpdate(palette[i], cu)
}

// perturbPair draws a random single-channel step for one of the two slots
// in the nearest-neighbor pair (i, j).
func perturbPair(rng *rand.Rand, palette []colorspace.SRGB8, i, j int) (int, colorspace.SRGB8) {
	pu := pairUpdates[rng.Intn(len(pairUpdates))]
	idx := i
	if pu.which == whichSecond {
		idx = j
	}
	return idx, applyColorUpdate(palette[idx], pu.cu)
}
