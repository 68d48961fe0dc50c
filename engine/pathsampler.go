package engine

import (
	"fmt"
	"math/rand"

	"github.com/nicoberrocal/expedicalc/sectors"
)

// Outcome is one entry in a sector's outcome menu (spec.md §4.10): a
// possible event at that sector position, its team damage, and the
// probability of that specific outcome occurring there.
type Outcome struct {
	EventType   string
	Damage      int
	Probability float64
	SectorIndex int
	SectorType  sectors.Type
}

// SectorMenu is one sector position's outcome menu, merging its fight and
// event PMFs (spec.md §4.10). Every menu must include a zero-damage outcome
// (the sector contributes nothing) with whatever residual probability that
// carries.
type SectorMenu []Outcome

// SamplePath implements PathSampler (spec.md §4.10): given an outcome menu
// per sector and a target total damage, samples one assignment of outcomes
// summing exactly to target, proportional to the joint probability of all
// assignments reaching it. Uses an exact backward DP table (ways[i][s] =
// the summed joint probability of assignments to sectors i..N-1 totalling
// s) followed by forward sampling. d=0 is special-cased to just take each
// sector's zero-damage outcome, skipping the DP entirely.
func SamplePath(menus []SectorMenu, target int, rng *rand.Rand) ([]Outcome, error) {
	n := len(menus)
	if target < 0 {
		return nil, fmt.Errorf("pathsampler: negative target %d", target)
	}
	if target == 0 {
		out := make([]Outcome, 0, n)
		for _, menu := range menus {
			if o, ok := zeroOutcome(menu); ok {
				out = append(out, o)
			}
		}
		return out, nil
	}

	ways := make([][]float64, n+1)
	for i := range ways {
		ways[i] = make([]float64, target+1)
	}
	ways[n][0] = 1

	for i := n - 1; i >= 0; i-- {
		for s := 0; s <= target; s++ {
			var total float64
			for _, o := range menus[i] {
				if o.Damage > s {
					continue
				}
				total += o.Probability * ways[i+1][s-o.Damage]
			}
			ways[i][s] = total
		}
	}

	if ways[0][target] == 0 {
		return nil, fmt.Errorf("pathsampler: target %d unreachable from the given menus", target)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	out := make([]Outcome, 0, n)
	remaining := target
	for i := 0; i < n; i++ {
		denom := ways[i][remaining]
		if denom == 0 {
			return nil, fmt.Errorf("pathsampler: no feasible outcome at sector %d for remaining damage %d", i, remaining)
		}
		r := rng.Float64() * denom
		cumulative := 0.0
		chosen := -1
		for idx, o := range menus[i] {
			if o.Damage > remaining {
				continue
			}
			cumulative += o.Probability * ways[i+1][remaining-o.Damage]
			if r <= cumulative {
				chosen = idx
				break
			}
		}
		if chosen == -1 {
			for idx := len(menus[i]) - 1; idx >= 0; idx-- {
				if menus[i][idx].Damage <= remaining {
					chosen = idx
					break
				}
			}
		}
		o := menus[i][chosen]
		out = append(out, o)
		remaining -= o.Damage
	}
	return out, nil
}

func zeroOutcome(menu SectorMenu) (Outcome, bool) {
	for _, o := range menu {
		if o.Damage == 0 {
			return o, true
		}
	}
	return Outcome{}, false
}
