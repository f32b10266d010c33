// Package metric implements the two Metric variants the Optimizer
// coordinates: Constraint, which scores each color individually against an
// SrgbLut, and PairDistance, which scores each color by its distance to its
// current nearest neighbor in the palette. Both variants keep an
// internal/scores indexed heap so that min_score is O(1) and update after a
// single palette change is cheap.
package metric

import "errors"

// ErrEmptyPalette is returned when constructing a Constraint metric from a
// zero-length palette.
var ErrEmptyPalette = errors.New("metric: empty palette")

// ErrPaletteTooSmall is returned when constructing a PairDistance metric
// from fewer than two colors: upper-triangular pair scores need at least
// one pair to exist.
var ErrPaletteTooSmall = errors.New("metric: pair-distance metric requires at least 2 colors")
