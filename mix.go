package expedicalc

import (
	"github.com/nicoberrocal/expedicalc/distribution"
	"github.com/nicoberrocal/expedicalc/engine"
	"github.com/nicoberrocal/expedicalc/sectors"
)

// mixMetric runs MixingOrchestrator over one metric's per-run PMF/scenario
// pair, weighted by each run's composition probability. instances is nil
// for metrics with no DamageInstance concept (resources, occurrences).
func mixMetric(runs []weightedRun, pmfOf func(pipelineOutput) distribution.PMF, scenarioOf func(pipelineOutput) distribution.Scenario, instancesOf func(pipelineOutput) map[string]engine.DamageInstance) engine.WeightedResult {
	weighted := make([]engine.WeightedResult, len(runs))
	for i, r := range runs {
		wr := engine.WeightedResult{
			Probability: r.probability,
			PMF:         pmfOf(r.out),
			Scenario:    scenarioOf(r.out),
		}
		if instancesOf != nil {
			wr.Instances = instancesOf(r.out)
		}
		weighted[i] = wr
	}
	return engine.MixResults(weighted)
}

func toScenarioValues(s distribution.Scenario, withDistribution distribution.PMF, includeDistribution bool) ScenarioValues {
	v := ScenarioValues{
		Optimist:      s.Optimist,
		Average:       s.Average,
		Pessimist:     s.Pessimist,
		WorstCase:     s.Worst,
		OptimistProb:  s.OptimistProb,
		AverageProb:   s.AverageProb,
		PessimistProb: s.PessimistProb,
		WorstCaseProb: s.WorstProb,
	}
	if includeDistribution && len(withDistribution) > 0 {
		v.Distribution = make(map[int]float64, len(withDistribution))
		for value, p := range withDistribution {
			v.Distribution[value] = p
		}
	}
	return v
}

func toBasicScenario(s distribution.Scenario) BasicScenario {
	return BasicScenario{Optimist: s.Optimist, Average: s.Average, Pessimist: s.Pessimist}
}

func toOccurrenceValues(s distribution.Scenario, pmf distribution.PMF) OccurrenceValues {
	v := OccurrenceValues{Optimist: s.Optimist, Average: s.Average, Pessimist: s.Pessimist}
	if len(pmf) > 0 {
		v.PMF = make(map[int]float64, len(pmf))
		for value, p := range pmf {
			v.PMF[value] = p
		}
	}
	return v
}

// quadrantJSONKey renames MixingOrchestrator's internal "worst" quadrant to
// the external interface's "worstCase" (spec.md §6).
func quadrantJSONKey(quadrant string) string {
	if quadrant == "worst" {
		return "worstCase"
	}
	return quadrant
}

func toDamageInstances(m map[string]engine.DamageInstance) map[string][]engine.DamageInstance {
	out := make(map[string][]engine.DamageInstance, len(m))
	for quadrant, inst := range m {
		out[quadrantJSONKey(quadrant)] = []engine.DamageInstance{inst}
	}
	return out
}

// buildSectorBreakdown combines each run's literal sector counts into the
// external sectorBreakdown section, attaching every present sector type's
// per-event probability table from a loadout-only resolver (event
// probabilities don't depend on which composition is visited, only on the
// team's loadout — spec.md §4.2).
func buildSectorBreakdown(runs []weightedRun, resolver *sectors.Resolver) (map[string]SectorBreakdownEntry, error) {
	comps := make([]engine.Composition, len(runs))
	for i, r := range runs {
		comps[i] = engine.Composition{Counts: r.out.sectorCounts, Probability: r.probability}
	}
	breakdown := engine.MixSectorBreakdown(comps)

	out := make(map[string]SectorBreakdownEntry, len(breakdown))
	for t, b := range breakdown {
		probs, err := resolver.Probabilities(t)
		if err != nil {
			return nil, err
		}
		events := make(map[string]float64, len(probs))
		for event, p := range probs {
			events[string(event)] = p
		}
		out[string(t)] = SectorBreakdownEntry{Count: b.ExpectedCount, Events: events}
	}
	return out, nil
}
