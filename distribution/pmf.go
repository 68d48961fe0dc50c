// Package distribution provides the primitive operations on discrete
// probability mass functions (PMFs) that every engine in this module is
// built from: convolution, linear mixing, expectation, and percentile
// extraction. Nothing in this package knows about sectors, players, or
// loadouts — it operates purely on integer-keyed probability maps.
package distribution

import (
	"math"
	"math/rand"
	"sort"

	"github.com/nicoberrocal/expedicalc/xlog"
)

// MassTolerance is the maximum allowed deviation of a PMF's total mass from
// 1.0 before it is considered a NumericalWarning (spec.md §7/§8 invariant 1).
const MassTolerance = 1e-6

// PMF is a finite, sparse mapping from an integer outcome to its
// probability. Entries are expected to sum to 1 within MassTolerance;
// zero-probability entries may be omitted. A nil or empty PMF represents
// "no mass anywhere" and is a valid value, not an error.
type PMF map[int]float64

// Single returns a PMF with all mass on one value, the degenerate
// distribution used as the convolution identity and as a Bernoulli building
// block's complement.
func Single(value int) PMF {
	return PMF{value: 1.0}
}

// Bernoulli returns {0: 1-p, hit: p}, the per-sector building block used by
// OccurrenceEngine: a sector either fires an event (contributing hit) or it
// doesn't (contributing 0).
func Bernoulli(p float64, hit int) PMF {
	if p <= 0 {
		return PMF{0: 1}
	}
	if p >= 1 {
		return PMF{hit: 1}
	}
	out := PMF{0: 1 - p}
	out[hit] += p
	return out
}

// Mass returns the total probability mass in the PMF.
func (p PMF) Mass() float64 {
	total := 0.0
	for _, v := range p {
		total += v
	}
	return total
}

// Normalize rescales the PMF so its mass sums to exactly 1. If the input
// mass deviates from 1 by more than MassTolerance, a NumericalWarning is
// logged (spec.md §7) before renormalising; calculation continues either
// way. An empty PMF is returned unchanged.
func Normalize(p PMF) PMF {
	if len(p) == 0 {
		return p
	}
	mass := p.Mass()
	if mass == 0 {
		return PMF{}
	}
	if math.Abs(mass-1.0) > MassTolerance {
		xlog.Warn("pmf mass deviates from 1, renormalizing",
			xlog.F("mass", mass), xlog.F("deviation", mass-1.0))
	}
	if math.Abs(mass-1.0) < 1e-12 {
		return p
	}
	out := make(PMF, len(p))
	for k, v := range p {
		out[k] = v / mass
	}
	return out
}

// Convolve combines two independent PMFs into the PMF of their sum. This is
// the fundamental operation behind every multi-sector distribution in the
// system: convolving across sectors is commutative and associative (spec.md
// §8 invariant 3), so callers may fold sectors in any order.
func Convolve(a, b PMF) PMF {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(PMF, len(a)+len(b))
	for av, ap := range a {
		if ap == 0 {
			continue
		}
		for bv, bp := range b {
			if bp == 0 {
				continue
			}
			out[av+bv] += ap * bp
		}
	}
	return out
}

// ConvolveAll folds Convolve across a slice of PMFs, left to right. An empty
// slice returns the identity distribution {0: 1}.
func ConvolveAll(pmfs []PMF) PMF {
	out := PMF{0: 1}
	for _, p := range pmfs {
		out = Convolve(out, p)
	}
	return out
}

// WeightedPMF pairs a PMF with its mixture weight, used by Mix and by
// MixingOrchestrator when combining sampled sector compositions.
type WeightedPMF struct {
	Weight float64
	PMF    PMF
}

// Mix linearly combines a set of PMFs weighted by probability:
// P_mixed(x) = Σ_c π_c · P_c(x). Weights need not already sum to 1; the
// result is normalised at the end so small floating point drift in the
// caller's weights doesn't propagate.
func Mix(parts []WeightedPMF) PMF {
	out := PMF{}
	for _, part := range parts {
		if part.Weight == 0 || len(part.PMF) == 0 {
			continue
		}
		for v, p := range part.PMF {
			out[v] += part.Weight * p
		}
	}
	return Normalize(out)
}

// Shift translates every outcome in the PMF left by delta, flooring at 0.
// This models FightDamageEngine's grenade reduction: probability mass that
// would land below zero after the shift collapses onto zero instead.
func Shift(p PMF, delta int) PMF {
	if delta <= 0 {
		return p
	}
	out := make(PMF, len(p))
	for v, prob := range p {
		nv := v - delta
		if nv < 0 {
			nv = 0
		}
		out[nv] += prob
	}
	return out
}

// Expectation returns Σ x·P(x), the mean of the distribution.
func Expectation(p PMF) float64 {
	sum := 0.0
	for v, prob := range p {
		sum += float64(v) * prob
	}
	return sum
}

// MaxSupport returns the largest outcome with nonzero probability, used to
// derive the "worst" scenario value (spec.md §4.13).
func MaxSupport(p PMF) int {
	max := 0
	first := true
	for v := range p {
		if first || v > max {
			max = v
			first = false
		}
	}
	return max
}

// sortedSupport returns the PMF's outcomes sorted ascending, for CDF walks
// and tail-conditional-expectation computations.
func sortedSupport(p PMF) []int {
	out := make([]int, 0, len(p))
	for v := range p {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// SampleOnce draws a single outcome from the PMF, weighted by probability.
// This is a convenience for UI previews that want "one example roll" and is
// NOT used by any exact engine in this module — every scenario value in the
// result bundle is computed by exact percentile extraction, never by Monte
// Carlo sampling (spec.md §1 Non-goals). A nil rng is replaced by a fresh one
// seeded with 1, so nil-rng calls on the same PMF always return the same
// value; pass your own *rand.Rand to choose the seed.
func SampleOnce(p PMF, rng *rand.Rand) int {
	if len(p) == 0 {
		return 0
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	support := sortedSupport(p)
	r := rng.Float64() * p.Mass()
	cumulative := 0.0
	for _, v := range support {
		cumulative += p[v]
		if r <= cumulative {
			return v
		}
	}
	return support[len(support)-1]
}
