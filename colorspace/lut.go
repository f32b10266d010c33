package colorspace

import "errors"

// ErrEmptyBackgroundSet is returned by [NewConstraintLut] when given no
// background colors: a min-over-backgrounds table needs at least one.
var ErrEmptyBackgroundSet = errors.New("colorspace: empty background set")

// lutSize is the number of entries in a full 8-bit-per-channel sRGB cube:
// 2^24, one per possible [SRGB8] value.
const lutSize = 1 << 24

// SrgbLut is a dense, read-only lookup table over every possible 8-bit sRGB
// color, built once by evaluating a pure function at every canonical index.
// Reads are O(1): table[c.Index()], no bounds branching beyond what Go
// requires. For T = float32 this costs 64 MiB; for T = [Oklab] (three
// float32 fields) it costs 192 MiB — the memory trade that keeps the
// optimizer's inner loop allocation-free.
type SrgbLut[T any] struct {
	data []T
}

// NewSrgbLut materializes f at every sRGB value, in canonical-index order.
func NewSrgbLut[T any](f func(SRGB8) T) *SrgbLut[T] {
	data := make([]T, lutSize)
	for i := range data {
		data[i] = f(FromIndex(i))
	}
	return &SrgbLut[T]{data: data}
}

// Get reads the table entry for c in O(1).
func (lut *SrgbLut[T]) Get(c SRGB8) T {
	return lut.data[c.Index()]
}

// NewConstraintLut builds an SrgbLut[float32] whose entry for c is the
// minimum of f(c, bg) over every background in bgs — typically
// f = APCA so that lut.Get(c) is c's worst-case contrast as text against any
// configured background. Returns [ErrEmptyBackgroundSet] if bgs is empty.
func NewConstraintLut(bgs []SRGB8, f func(c, bg SRGB8) float32) (*SrgbLut[float32], error) {
	if len(bgs) == 0 {
		return nil, ErrEmptyBackgroundSet
	}
	return NewSrgbLut(func(c SRGB8) float32 {
		min := f(c, bgs[0])
		for _, bg := range bgs[1:] {
			if v := f(c, bg); v < min {
				min = v
			}
		}
		return min
	}), nil
}
