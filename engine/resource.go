package engine

import (
	"github.com/nicoberrocal/expedicalc/distribution"
	"github.com/nicoberrocal/expedicalc/sectors"
)

// ResourceResult bundles a resource's full distribution and derived
// scenario for one calculation run (spec.md §4.4).
type ResourceResult struct {
	PMF      distribution.PMF
	Scenario distribution.Scenario
}

// ResourceModifiers carries the loadout-derived counts ResourceEngine
// needs: how many botanists (BOTANIC, with SKILLFUL expanded) and how
// many drillers the team fields. Both act per resource type, not
// uniformly (spec.md §4.4).
type ResourceModifiers struct {
	BotanistCount int
	DrillerCount  int
}

// sectorResourcePMF builds one sector's yield distribution for the named
// resource, applying botanist/driller modifiers where they apply.
func sectorResourcePMF(probs sectors.Probabilities, resource string, mods ResourceModifiers) distribution.PMF {
	pmf := distribution.PMF{}
	for event, p := range probs {
		if p == 0 {
			continue
		}
		matched := false
		for _, yield := range sectors.ResourceYields(event) {
			if yield.Resource != resource {
				continue
			}
			amount := yield.Amount
			if resource == sectors.ResourceFruits && amount > 0 && mods.BotanistCount > 0 {
				amount++
			}
			if resource == sectors.ResourceFuel {
				amount *= mods.DrillerCount + 1
			}
			pmf[amount] += p * yield.Weight
			if yield.Weight < 1 {
				pmf[0] += p * (1 - yield.Weight)
			}
			matched = true
		}
		if !matched {
			pmf[0] += p
		}
	}
	return pmf
}

// CalculateResource implements ResourceEngine (spec.md §4.4) for one
// resource type: build each sector's yield PMF, convolve across the
// sector list, and extract the tail-conditional-expectation scenario.
// oxygen's pessimist is forced to 0 per the special rule in spec.md §4.4.
func CalculateResource(resolver *sectors.Resolver, sectorList []sectors.Type, resource string, mods ResourceModifiers) (ResourceResult, error) {
	pmfs := make([]distribution.PMF, 0, len(sectorList))
	for _, t := range sectorList {
		probs, err := resolver.Probabilities(t)
		if err != nil {
			return ResourceResult{}, err
		}
		pmfs = append(pmfs, sectorResourcePMF(probs, resource, mods))
	}

	combined := distribution.Normalize(distribution.ConvolveAll(pmfs))
	forcePessimistZero := resource == sectors.ResourceOxygen
	return ResourceResult{
		PMF:      combined,
		Scenario: distribution.ExtractResourceScenario(combined, forcePessimistZero),
	}, nil
}

// AllResources is the closed set of resource names ResourceEngine tracks
// (spec.md §4.4 / §6).
var AllResources = []string{
	sectors.ResourceFruits,
	sectors.ResourceSteaks,
	sectors.ResourceFuel,
	sectors.ResourceOxygen,
	sectors.ResourceArtefacts,
	sectors.ResourceMapFragments,
}

// CalculateAllResources runs CalculateResource for every tracked resource.
func CalculateAllResources(resolver *sectors.Resolver, sectorList []sectors.Type, mods ResourceModifiers) (map[string]ResourceResult, error) {
	out := make(map[string]ResourceResult, len(AllResources))
	for _, resource := range AllResources {
		result, err := CalculateResource(resolver, sectorList, resource, mods)
		if err != nil {
			return nil, err
		}
		out[resource] = result
	}
	return out, nil
}
