package engine

import (
	"sort"

	"github.com/nicoberrocal/expedicalc/loadout"
	"github.com/nicoberrocal/expedicalc/sectors"
	"github.com/nicoberrocal/expedicalc/xlog"
)

// PlanetComposition is the sector layout of one planet: how many instances
// of each non-LANDING sector type it contains (spec.md §4.8). LANDING is
// always visited and is never part of this map.
type PlanetComposition map[sectors.Type]int

// Composition is one retained size-K sub-multiset of a planet's sectors,
// with its normalised probability of being the one the team actually
// visits (spec.md §4.8).
type Composition struct {
	Counts      map[sectors.Type]int
	Probability float64
}

// PruneThreshold is the cumulative probability mass SectorSampler keeps
// (spec.md §4.8: prune compositions until cumulative mass reaches it).
const PruneThreshold = 0.999

// MaxCompositionsSafety bounds enumeration so a pathological planet layout
// still terminates (spec.md §4.8's "implementer-visible knob").
const MaxCompositionsSafety = 10000

// binomialMemo memoises C(n,k) for one Sample call. Not shared across
// calculations (spec.md §5: every calculation owns its own caches).
type binomialMemo struct {
	cache map[[2]int]float64
}

func newBinomialMemo() *binomialMemo { return &binomialMemo{cache: make(map[[2]int]float64)} }

func (m *binomialMemo) C(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	key := [2]int{n, k}
	if v, ok := m.cache[key]; ok {
		return v
	}
	v := m.C(n-1, k-1) + m.C(n-1, k)
	m.cache[key] = v
	return v
}

type sampleType struct {
	t      sectors.Type
	n      int
	weight float64
}

// Sample implements SectorSampler (spec.md §4.8): enumerates every
// composition of size k drawn from a planet's sector counts, weighting each
// by the noncentral multivariate hypergeometric mass Π C(n_t,k_t)·ω_t^{k_t}
// (ω_t is weightAtPlanetExploration scaled by item discovery multipliers
// like ECHO_SOUNDER), then prunes to the smallest descending-probability
// prefix whose cumulative mass reaches PruneThreshold.
func Sample(table sectors.Table, l loadout.Loadout, planet PlanetComposition, k int) ([]Composition, error) {
	types := make([]sampleType, 0, len(planet))
	for t, n := range planet {
		if n <= 0 {
			continue
		}
		cfg, err := table.Lookup(t)
		if err != nil {
			return nil, err
		}
		weight := float64(cfg.WeightAtPlanetExploration)
		for _, item := range l.Items {
			weight *= sectors.DiscoveryMultiplier(item, t)
		}
		types = append(types, sampleType{t: t, n: n, weight: weight})
	}
	sort.Slice(types, func(i, j int) bool { return types[i].t < types[j].t })

	suffixMax := make([]int, len(types)+1)
	for i := len(types) - 1; i >= 0; i-- {
		suffixMax[i] = suffixMax[i+1] + types[i].n
	}

	memo := newBinomialMemo()
	var results []Composition
	capped := false

	var recurse func(i, remaining int, counts map[sectors.Type]int, mass float64)
	recurse = func(i, remaining int, counts map[sectors.Type]int, mass float64) {
		if capped {
			return
		}
		if i == len(types) {
			if remaining == 0 {
				cp := make(map[sectors.Type]int, len(counts))
				for t, v := range counts {
					cp[t] = v
				}
				results = append(results, Composition{Counts: cp, Probability: mass})
				if len(results) >= MaxCompositionsSafety {
					capped = true
				}
			}
			return
		}
		st := types[i]
		lo := remaining - suffixMax[i+1]
		if lo < 0 {
			lo = 0
		}
		hi := st.n
		if remaining < hi {
			hi = remaining
		}
		for kt := lo; kt <= hi; kt++ {
			counts[st.t] = kt
			m := memo.C(st.n, kt) * intPow(st.weight, kt)
			recurse(i+1, remaining-kt, counts, mass*m)
			if capped {
				break
			}
		}
		delete(counts, st.t)
	}

	recurse(0, k, map[sectors.Type]int{}, 1)

	if capped {
		xlog.Warn("sector sampler hit safety cap, truncating enumeration",
			xlog.F("cap", MaxCompositionsSafety))
	}

	total := 0.0
	for _, c := range results {
		total += c.Probability
	}
	if total == 0 {
		return nil, nil
	}
	for i := range results {
		results[i].Probability /= total
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Probability > results[j].Probability })

	cumulative := 0.0
	cut := len(results)
	for i, c := range results {
		cumulative += c.Probability
		if cumulative >= PruneThreshold {
			cut = i + 1
			break
		}
	}
	survivors := results[:cut]

	survivorTotal := 0.0
	for _, c := range survivors {
		survivorTotal += c.Probability
	}
	if survivorTotal > 0 {
		for i := range survivors {
			survivors[i].Probability /= survivorTotal
		}
	}

	return survivors, nil
}

func intPow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
