package engine

import (
	"math"
	"sort"

	"github.com/nicoberrocal/expedicalc/distribution"
	"github.com/nicoberrocal/expedicalc/sectors"
)

// SectorBreakdown summarises how often a sector type appears across the
// retained compositions of a movement-limited expedition (spec.md §4.9):
// ExpectedCount is the probability-weighted mean visit count, Nominal is
// the largest count seen in any single retained composition.
type SectorBreakdown struct {
	ExpectedCount float64
	Nominal       int
}

// MixSectorBreakdown computes the per-sector-type breakdown across a set of
// retained, already-normalised compositions (spec.md §4.9).
func MixSectorBreakdown(compositions []Composition) map[sectors.Type]SectorBreakdown {
	out := map[sectors.Type]SectorBreakdown{}
	for _, c := range compositions {
		for t, count := range c.Counts {
			b := out[t]
			b.ExpectedCount += float64(count) * c.Probability
			if count > b.Nominal {
				b.Nominal = count
			}
			out[t] = b
		}
	}
	return out
}

// WeightedResult pairs one composition's full-pipeline output for a single
// metric (a resource, an occurrence count, fight damage, or event damage)
// with that composition's probability — the unit MixingOrchestrator
// combines (spec.md §4.9).
type WeightedResult struct {
	Probability float64
	PMF         distribution.PMF
	Scenario    distribution.Scenario
	Instances   map[string]DamageInstance // scenario quadrant -> instance
}

// MixResults implements MixingOrchestrator's combination rules (spec.md
// §4.9): linear PMF mixture, weighted-mean scenario scalars, and
// nearest-match DamageInstance selection per scenario quadrant. The
// single-composition shortcut returns that composition's result unchanged.
func MixResults(weighted []WeightedResult) WeightedResult {
	if len(weighted) == 1 {
		return weighted[0]
	}
	if len(weighted) == 0 {
		return WeightedResult{}
	}

	parts := make([]distribution.WeightedPMF, len(weighted))
	for i, w := range weighted {
		parts[i] = distribution.WeightedPMF{Weight: w.Probability, PMF: w.PMF}
	}
	mixedPMF := distribution.Mix(parts)

	mixedScenario := distribution.Scenario{
		Optimist:      weightedMean(weighted, func(s distribution.Scenario) float64 { return s.Optimist }),
		Average:       weightedMean(weighted, func(s distribution.Scenario) float64 { return s.Average }),
		Pessimist:     weightedMean(weighted, func(s distribution.Scenario) float64 { return s.Pessimist }),
		Worst:         weightedMean(weighted, func(s distribution.Scenario) float64 { return s.Worst }),
		OptimistProb:  weightedMean(weighted, func(s distribution.Scenario) float64 { return s.OptimistProb }),
		AverageProb:   weightedMean(weighted, func(s distribution.Scenario) float64 { return s.AverageProb }),
		PessimistProb: weightedMean(weighted, func(s distribution.Scenario) float64 { return s.PessimistProb }),
		WorstProb:     weightedMean(weighted, func(s distribution.Scenario) float64 { return s.WorstProb }),
	}

	instances := map[string]DamageInstance{}
	for _, quadrant := range []string{"optimist", "average", "pessimist", "worst"} {
		target := quadrantValue(mixedScenario, quadrant)
		instances[quadrant] = nearestInstance(weighted, quadrant, target)
	}

	return WeightedResult{Probability: 1, PMF: mixedPMF, Scenario: mixedScenario, Instances: instances}
}

func weightedMean(weighted []WeightedResult, f func(distribution.Scenario) float64) float64 {
	var sum, totalWeight float64
	for _, w := range weighted {
		sum += f(w.Scenario) * w.Probability
		totalWeight += w.Probability
	}
	if totalWeight == 0 {
		return 0
	}
	return sum / totalWeight
}

func quadrantValue(s distribution.Scenario, quadrant string) float64 {
	switch quadrant {
	case "optimist":
		return s.Optimist
	case "average":
		return s.Average
	case "pessimist":
		return s.Pessimist
	default:
		return s.Worst
	}
}

// nearestInstance implements the "among compositions whose scenario damage
// equals the mixed scenario value exactly, pick the most probable
// composition's instances; if no exact match, pick the closest by absolute
// difference" rule of spec.md §4.9.
func nearestInstance(weighted []WeightedResult, quadrant string, target float64) DamageInstance {
	type candidate struct {
		diff float64
		prob float64
		inst DamageInstance
	}
	var candidates []candidate
	for _, w := range weighted {
		inst, ok := w.Instances[quadrant]
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{
			diff: math.Abs(float64(inst.DamagePerInstance) - target),
			prob: w.Probability,
			inst: inst,
		})
	}
	if len(candidates) == 0 {
		return DamageInstance{}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].diff != candidates[j].diff {
			return candidates[i].diff < candidates[j].diff
		}
		return candidates[i].prob > candidates[j].prob
	})
	return candidates[0].inst
}
