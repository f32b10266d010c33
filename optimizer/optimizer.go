// Package optimizer implements the stochastic local-search driver: it holds
// a live palette and a set of weighted metrics, repeatedly perturbs the
// color responsible for the globally weakest metric, and commits either a
// move that a cheap predictor expects to improve things or, failing that,
// one more random move.
package optimizer

import (
	"errors"
	"math/rand"

	"github.com/soypat/paletteopt/colorspace"
	"github.com/soypat/paletteopt/metric"
)

// ErrNoMetrics is returned by [New] when given neither pair-distance nor
// constraint metrics: there would be nothing to optimize against.
var ErrNoMetrics = errors.New("optimizer: at least one metric is required")

// PairMetric is a weighted pair-distance metric, typically one per
// color-vision model (native vision plus protan/deutan/tritan simulation).
type PairMetric struct {
	Weight float32
	Metric *metric.PairDistanceMetric[colorspace.Oklab]
}

// ConstraintMetric is a weighted constraint metric, typically one built
// from worst-case APCA contrast against a fixed background set.
type ConstraintMetric struct {
	Weight float32
	Metric *metric.ConstraintMetric
}

type activeKind int

const (
	activePair activeKind = iota
	activeConstraint
)

// active identifies which metric currently holds the global weighted
// minimum, and which palette slot(s) produced it.
type active struct {
	kind      activeKind
	metricIdx int
	i, j      int // j is meaningless when kind == activeConstraint
}

// Optimizer coordinates a live palette against every configured metric. The
// palette and every metric's internal state are exclusively owned by the
// Optimizer and mutated only through [Optimizer.Update] and
// [Optimizer.RestoreBest].
type Optimizer struct {
	palette      []colorspace.SRGB8
	pairMetrics  []PairMetric
	constMetrics []ConstraintMetric
	active       active
	bestScore    float32
	bestPalette  []colorspace.SRGB8
	rng          *rand.Rand
}

// New builds an Optimizer from an initial palette and the metric lists.
// rng drives every perturbation; pass a seeded source for determinism.
func New(palette []colorspace.SRGB8, pairMetrics []PairMetric, constMetrics []ConstraintMetric, rng *rand.Rand) (*Optimizer, error) {
	if len(pairMetrics) == 0 && len(constMetrics) == 0 {
		return nil, ErrNoMetrics
	}
	o := &Optimizer{
		palette:      palette,
		pairMetrics:  pairMetrics,
		constMetrics: constMetrics,
		bestPalette:  append([]colorspace.SRGB8(nil), palette...),
		rng:          rng,
	}
	o.active, o.bestScore = o.globalMin()
	return o, nil
}

// globalMin scans every metric's min_score()/weight and returns the
// smallest, tagged with which metric produced it.
func (o *Optimizer) globalMin() (active, float32) {
	var best active
	bestScore := float32(0)
	first := true
	for idx, pm := range o.pairMetrics {
		v, i, j := pm.Metric.MinScore()
		score := v / pm.Weight
		if first || score < bestScore {
			best = active{kind: activePair, metricIdx: idx, i: i, j: j}
			bestScore = score
			first = false
		}
	}
	for idx, cm := range o.constMetrics {
		v, i := cm.Metric.MinScore()
		score := v / cm.Weight
		if first || score < bestScore {
			best = active{kind: activeConstraint, metricIdx: idx, i: i}
			bestScore = score
			first = false
		}
	}
	return best, bestScore
}

// BestScore returns the best (largest) global score observed so far.
func (o *Optimizer) BestScore() float32 { return o.bestScore }

// BestPalette returns a copy of the palette snapshot that achieved
// BestScore().
func (o *Optimizer) BestPalette() []colorspace.SRGB8 {
	return append([]colorspace.SRGB8(nil), o.bestPalette...)
}

// Palette returns a copy of the current live palette.
func (o *Optimizer) Palette() []colorspace.SRGB8 {
	return append([]colorspace.SRGB8(nil), o.palette...)
}

// Update performs one optimization step: propose a perturbation to the
// color responsible for the current weakest metric; if that metric's cheap
// test does not predict an improvement, draw one more perturbation and use
// it without testing it. Then commit, propagate the change to every metric,
// and recompute the global minimum.
func (o *Optimizer) Update() {
	m := o.active
	var targetIdx int
	var candidate colorspace.SRGB8
	var improves bool

	switch m.kind {
	case activePair:
		pm := o.pairMetrics[m.metricIdx].Metric
		targetIdx, candidate = perturbPair(o.rng, o.palette, m.i, m.j)
		improves = pm.TestImprovement(targetIdx, candidate)
		if !improves {
			targetIdx, candidate = perturbPair(o.rng, o.palette, m.i, m.j)
		}
	case activeConstraint:
		cm := o.constMetrics[m.metricIdx].Metric
		targetIdx, candidate = perturbConstraint(o.rng, o.palette, m.i)
		improves = cm.TestImprovement(targetIdx, candidate)
		if !improves {
			targetIdx, candidate = perturbConstraint(o.rng, o.palette, m.i)
		}
	}

	o.palette[targetIdx] = candidate
	for _, pm := range o.pairMetrics {
		pm.Metric.Update(targetIdx, candidate)
	}
	for _, cm := range o.constMetrics {
		cm.Metric.Update(targetIdx, candidate)
	}

	newActive, newScore := o.globalMin()
	o.active = newActive
	if newScore > o.bestScore {
		o.bestScore = newScore
		copy(o.bestPalette, o.palette)
	}
}

// RestoreBest overwrites the live palette with the best-so-far snapshot and
// re-derives every metric's internal state from it. Cheaper than rebuilding
// from scratch because the heaps already hold most of the right values.
// Panics if the recomputed global score does not bitwise equal bestScore:
// that would mean a metric failed to restore its invariants, a programmer
// error in this package rather than a recoverable condition.
func (o *Optimizer) RestoreBest() {
	copy(o.palette, o.bestPalette)
	for _, pm := range o.pairMetrics {
		for k, c := range o.palette {
			pm.Metric.Update(k, c)
		}
	}
	for _, cm := range o.constMetrics {
		for k, c := range o.palette {
			cm.Metric.Update(k, c)
		}
	}
	newActive, newScore := o.globalMin()
	o.active = newActive
	if newScore != o.bestScore {
		panic("optimizer: restored global score does not match best_score")
	}
}
