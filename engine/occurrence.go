package engine

import (
	"github.com/nicoberrocal/expedicalc/distribution"
	"github.com/nicoberrocal/expedicalc/sectors"
)

// Occurrence is the result of convolving one event type's per-sector
// Bernoulli PMFs across the whole sector list (spec.md §4.3): how many
// sectors fire the event, as a full PMF plus its scenario quadruple, along
// with the maximum possible count (the sector list length).
type Occurrence struct {
	PMF         distribution.PMF
	Scenario    distribution.Scenario
	MaxPossible int
}

// OccurrenceResult pairs an Occurrence with the sector positions that can
// actually produce it, used later by PathSampler to attribute individual
// occurrences back to sectors.
type OccurrenceResult struct {
	Occurrence Occurrence
	Sources    []EventSource
}

// CalculateForType implements OccurrenceEngine (spec.md §4.3): for each
// sector position, look up its probability of firing eventName, treat it
// as an independent Bernoulli trial, and convolve across all positions.
func CalculateForType(resolver *sectors.Resolver, sectorList []sectors.Type, eventName sectors.EventName) (OccurrenceResult, error) {
	pmfs := make([]distribution.PMF, 0, len(sectorList))
	var sources []EventSource

	for i, t := range sectorList {
		p, err := resolver.Probability(t, eventName)
		if err != nil {
			return OccurrenceResult{}, err
		}
		pmfs = append(pmfs, distribution.Bernoulli(p, 1))
		if p > 0 {
			sources = append(sources, EventSource{Index: i, SectorType: t, Probability: p})
		}
	}

	combined := distribution.ConvolveAll(pmfs)
	return OccurrenceResult{
		Occurrence: Occurrence{
			PMF:         combined,
			Scenario:    distribution.ExtractScenario(combined, false),
			MaxPossible: len(sectorList),
		},
		Sources: sources,
	}, nil
}

// CombineOccurrences convolves every type's occurrence PMF into one PMF
// representing "any damaging event anywhere" (spec.md §4.3), used to
// derive scenario probabilities for damage.
func CombineOccurrences(perType map[sectors.EventName]distribution.PMF) distribution.PMF {
	pmfs := make([]distribution.PMF, 0, len(perType))
	for _, pmf := range perType {
		pmfs = append(pmfs, pmf)
	}
	return distribution.ConvolveAll(pmfs)
}
