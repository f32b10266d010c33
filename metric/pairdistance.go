package metric

import (
	"math"

	"github.com/soypat/paletteopt/colorspace"
	"github.com/soypat/paletteopt/internal/scores"
)

// PairDistanceMetric scores each palette slot by its distance to its
// current nearest neighbor. It is generic over the color representation T
// the distance function operates on (typically [colorspace.Oklab] with
// [colorspace.HyAB]) so the same implementation serves the native-vision
// metric and the three dichromacy-simulation metrics, each supplied with a
// different LUT.
//
// Internally it keeps, for every slot i, the upper-triangular nearest
// neighbor among slots k > i: every unordered pair of slots is therefore
// represented exactly once, halving memory against a full N×N table.
type PairDistanceMetric[T any] struct {
	lut       *colorspace.SrgbLut[T]
	dist      func(a, b T) float32
	preColors []T
	heap      *scores.Scores[scores.PairKey]
}

// NewPairDistanceMetric builds a PairDistance metric from an initial
// palette, a LUT mapping sRGB to the distance space T, and the distance
// function itself. Returns [ErrPaletteTooSmall] if palette has fewer than
// two colors.
func NewPairDistanceMetric[T any](palette []colorspace.SRGB8, lut *colorspace.SrgbLut[T], dist func(a, b T) float32) (*PairDistanceMetric[T], error) {
	n := len(palette)
	if n < 2 {
		return nil, ErrPaletteTooSmall
	}
	preColors := make([]T, n)
	for i, c := range palette {
		preColors[i] = lut.Get(c)
	}
	values := make([]float32, n)
	partners := make([]int, n)
	for i := 0; i < n; i++ {
		d, j := nearestPartner(i, preColors, dist)
		values[i] = d
		partners[i] = j
	}
	return &PairDistanceMetric[T]{
		lut:       lut,
		dist:      dist,
		preColors: preColors,
		heap:      scores.NewPairScores(values, partners),
	}, nil
}

// nearestPartner scans the upper triangle k > i and returns the distance to
// i's nearest neighbor and that neighbor's index. For the last slot there is
// no k > i, so the sentinel (+Inf, i) is returned.
func nearestPartner[T any](i int, colors []T, dist func(a, b T) float32) (float32, int) {
	best := float32(math.Inf(1))
	bestJ := i
	for k := i + 1; k < len(colors); k++ {
		d := dist(colors[i], colors[k])
		if d < best {
			best = d
			bestJ = k
		}
	}
	return best, bestJ
}

// MinScore returns the smallest pair distance currently held and the
// (owner, partner) indices of the pair that produced it.
func (m *PairDistanceMetric[T]) MinScore() (float32, int, int) {
	v, key := m.heap.Min()
	return v, key.OwnerIndex, key.Partner
}

// Update informs the metric that palette slot i has just become c,
// following the two-pass upper-triangular update: slots k < i whose
// nearest-neighbor record might now point at i are fixed up first, then
// i's own outgoing scan is recomputed. Amortized O(N) per move: the full
// rescan inside the loop is rare, since most k will not have been pointing
// at i.
func (m *PairDistanceMetric[T]) Update(i int, c colorspace.SRGB8) {
	newColor := m.lut.Get(c)
	m.preColors[i] = newColor

	for k := 0; k < i; k++ {
		d := m.dist(m.preColors[k], newColor)
		curVal, curKey := m.heap.ValueOf(k)
		switch {
		case d < curVal:
			m.heap.Update(scores.PairKey{OwnerIndex: k, Partner: i}, d)
		case curKey.Partner == i:
			nd, nj := nearestPartner(k, m.preColors, m.dist)
			m.heap.Update(scores.PairKey{OwnerIndex: k, Partner: nj}, nd)
		}
	}

	nd, nj := nearestPartner(i, m.preColors, m.dist)
	m.heap.Update(scores.PairKey{OwnerIndex: i, Partner: nj}, nd)
}

// TestImprovement cheaply predicts whether setting slot i to c would raise
// the current minimum pair distance. It checks only that i's distance to
// the current weakest pair's other member would strictly improve — a
// necessary, not sufficient, condition, but cheap enough to call on every
// proposed move.
func (m *PairDistanceMetric[T]) TestImprovement(i int, c colorspace.SRGB8) bool {
	dOld, key := m.heap.Min()
	other := key.OwnerIndex
	if key.OwnerIndex == i {
		other = key.Partner
	}
	newColor := m.lut.Get(c)
	return m.dist(newColor, m.preColors[other]) > dOld
}
