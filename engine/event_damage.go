package engine

import (
	"github.com/nicoberrocal/expedicalc/distribution"
	"github.com/nicoberrocal/expedicalc/sectors"
)

// EventResult is EventDamageEngine's output (spec.md §4.6): the team-damage
// PMF for non-combat damage events and its scenario quadruple, plus
// COMBINED summary instances.
type EventResult struct {
	PMF       distribution.PMF
	Scenario  distribution.Scenario
	Instances map[string]DamageInstance
}

// eventSectorPMF builds one sector position's non-combat damage-event PMF
// (spec.md §4.6): every present damage event contributes its team cost —
// baseDamage×participantCount when it affects everyone, baseDamage
// otherwise — spread evenly across its uniform {Low..High} base-damage
// range. Multi-event sectors (LANDING, MOUNTAIN, COLD, HOT) naturally fall
// out of this since only one of their damage events ever has nonzero
// probability at a time.
func eventSectorPMF(probs sectors.Probabilities, participantCount int) distribution.PMF {
	pmf := distribution.PMF{}
	damageMass := 0.0
	for event, p := range probs {
		if p <= 0 || !sectors.IsDamageEvent(event) {
			continue
		}
		spec, ok := sectors.DamageEventSpecOf(event)
		if !ok {
			continue
		}
		values := spec.High - spec.Low + 1
		share := p / float64(values)
		for base := spec.Low; base <= spec.High; base++ {
			cost := base
			if spec.AffectsAll {
				cost = base * participantCount
			}
			pmf[cost] += share
		}
		damageMass += p
	}
	if rest := 1 - damageMass; rest > 0 {
		pmf[0] += rest
	}
	return pmf
}

// CalculateEventDamage implements EventDamageEngine (spec.md §4.6): builds
// the normal and worst-case team-damage distributions via
// DamageDistributionEngine, applying DamageComparator's event-exclusion set
// in the worst-case variant, then extracts the scenario quadruple.
func CalculateEventDamage(resolver *sectors.Resolver, sectorList []sectors.Type, participantCount int, comparator ComparatorResult) (EventResult, error) {
	n := len(sectorList)
	probsByIndex := make([]sectors.Probabilities, n)
	for i, t := range sectorList {
		probs, err := resolver.Probabilities(t)
		if err != nil {
			return EventResult{}, err
		}
		probsByIndex[i] = probs
	}

	normal, worst := damageDistribution(n, func(i int) distribution.PMF {
		return eventSectorPMF(probsByIndex[i], participantCount)
	}, comparator.EventExclusions)

	scenario := distribution.ExtractScenarioWithWorst(normal, worst, false)
	return EventResult{
		PMF:      normal,
		Scenario: scenario,
		// The path-free COMBINED instance can't preserve which of
		// TIRED_2/DISASTER_3_5/ACCIDENT_3_5 actually contributed; it is
		// dispatched as an affects-all event for DamageSpreader's backward-
		// compatible route (spec.md §4.5's "for backward compatibility with
		// the spreader's path-free path"). Exact per-event attribution is
		// available via PathSampler.
		Instances: combinedInstances(string(sectors.DisasterEvent), scenario),
	}, nil
}
