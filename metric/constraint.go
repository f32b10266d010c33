package metric

import (
	"github.com/soypat/paletteopt/colorspace"
	"github.com/soypat/paletteopt/internal/scores"
)

// ConstraintMetric scores each palette slot individually against an
// SrgbLut[float32], typically built as the min-over-backgrounds APCA
// contrast for that color. Its min_score is the palette's worst
// individually-scored color.
type ConstraintMetric struct {
	lut  *colorspace.SrgbLut[float32]
	heap *scores.Scores[scores.Index]
}

// NewConstraintMetric builds a Constraint metric from an initial palette and
// a constraint LUT. Returns [ErrEmptyPalette] if palette is empty.
func NewConstraintMetric(palette []colorspace.SRGB8, lut *colorspace.SrgbLut[float32]) (*ConstraintMetric, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	values := make([]float32, len(palette))
	for i, c := range palette {
		values[i] = lut.Get(c)
	}
	return &ConstraintMetric{lut: lut, heap: scores.NewIndexScores(values)}, nil
}

// MinScore returns the smallest constraint value currently held and the
// palette index that produced it.
func (m *ConstraintMetric) MinScore() (float32, int) {
	v, k := m.heap.Min()
	return v, k.Owner()
}

// Update informs the metric that palette slot i is now c.
func (m *ConstraintMetric) Update(i int, c colorspace.SRGB8) {
	m.heap.Update(scores.Index(i), m.lut.Get(c))
}

// TestImprovement cheaply predicts whether setting slot i to c would raise
// the metric's current minimum. Conservative: raising an unrelated slot's
// LUT value above the current minimum is necessary but not sufficient for
// the global minimum to rise, so this may return true when the minimum in
// fact stays put, but never tells the optimizer to reject an improving move.
func (m *ConstraintMetric) TestImprovement(i int, c colorspace.SRGB8) bool {
	v, _ := m.heap.Min()
	return m.lut.Get(c) > v
}
