package engine

import (
	"github.com/nicoberrocal/expedicalc/distribution"
	"github.com/nicoberrocal/expedicalc/sectors"
)

// FightResult is FightDamageEngine's output (spec.md §4.5): the team-damage
// PMF and its scenario quadruple, plus COMBINED summary instances for
// callers that don't need per-sector attribution.
type FightResult struct {
	PMF       distribution.PMF
	Scenario  distribution.Scenario
	Instances map[string]DamageInstance
}

// fightSectorPMF builds one sector position's fight-damage PMF: each
// FIGHT_k event contributes max(0, k-FP) at its probability; the variable
// fight event spreads its probability evenly across its six base damages
// before the same FP reduction; everything else (including the sector's
// non-fight mass) lands on 0.
func fightSectorPMF(probs sectors.Probabilities, fp int) distribution.PMF {
	pmf := distribution.PMF{}
	fightMass := 0.0
	for event, p := range probs {
		if p <= 0 {
			continue
		}
		if k, ok := sectors.FightEventK(event); ok {
			pmf[reduceByFP(k, fp)] += p
			fightMass += p
		} else if event == sectors.VariableFightEvent {
			share := p / float64(len(sectors.VariableFightValues))
			for _, base := range sectors.VariableFightValues {
				pmf[reduceByFP(base, fp)] += share
			}
			fightMass += p
		}
	}
	if rest := 1 - fightMass; rest > 0 {
		pmf[0] += rest
	}
	return pmf
}

func reduceByFP(base, fp int) int {
	d := base - fp
	if d < 0 {
		return 0
	}
	return d
}

// CalculateFightDamage implements FightDamageEngine (spec.md §4.5): builds
// the normal and worst-case team-damage distributions via
// DamageDistributionEngine, applies grenade post-processing (shifting both
// variants left by 3·grenades), and extracts the scenario quadruple with
// worst sourced from the worst-case variant.
func CalculateFightDamage(resolver *sectors.Resolver, sectorList []sectors.Type, fp, grenades int, comparator ComparatorResult) (FightResult, error) {
	n := len(sectorList)
	probsByIndex := make([]sectors.Probabilities, n)
	for i, t := range sectorList {
		probs, err := resolver.Probabilities(t)
		if err != nil {
			return FightResult{}, err
		}
		probsByIndex[i] = probs
	}

	normal, worst := damageDistribution(n, func(i int) distribution.PMF {
		return fightSectorPMF(probsByIndex[i], fp)
	}, comparator.FightExclusions)

	shift := 3 * grenades
	normal = distribution.Shift(normal, shift)
	worst = distribution.Shift(worst, shift)

	scenario := distribution.ExtractScenarioWithWorst(normal, worst, false)
	return FightResult{
		PMF:       normal,
		Scenario:  scenario,
		Instances: combinedInstances("FIGHT", scenario),
	}, nil
}

// combinedInstances builds the four backward-compatible COMBINED
// DamageInstances (one per scenario quadrant) that spec.md §4.5/§4.6 asks
// FightDamageEngine and EventDamageEngine to produce for the spreader's
// path-free path.
func combinedInstances(eventType string, s distribution.Scenario) map[string]DamageInstance {
	mk := func(damage float64) DamageInstance {
		return DamageInstance{EventType: eventType, Count: 1, DamagePerInstance: int(damage)}
	}
	return map[string]DamageInstance{
		"optimist":  mk(s.Optimist),
		"average":   mk(s.Average),
		"pessimist": mk(s.Pessimist),
		"worst":     mk(s.Worst),
	}
}
