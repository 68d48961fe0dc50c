package expedicalc

import (
	"github.com/nicoberrocal/expedicalc/distribution"
	"github.com/nicoberrocal/expedicalc/engine"
	"github.com/nicoberrocal/expedicalc/loadout"
	"github.com/nicoberrocal/expedicalc/sectors"
)

// pipelineOutput is every per-metric PMF/scenario the full §4 pipeline
// produces for one concrete, literal sector list. Calculate runs this once
// directly, or once per SectorSampler composition when movement capacity
// falls short of the planet, mixing the results via MixingOrchestrator.
type pipelineOutput struct {
	resourcePMF      map[string]distribution.PMF
	resourceScenario map[string]distribution.Scenario

	fightOccurrencePMF      map[sectors.EventName]distribution.PMF
	fightOccurrenceScenario map[sectors.EventName]distribution.Scenario

	negativePMF      map[sectors.EventName]distribution.PMF
	negativeScenario map[sectors.EventName]distribution.Scenario

	damageEventPMF      map[sectors.EventName]distribution.PMF
	damageEventScenario map[sectors.EventName]distribution.Scenario

	fightDamagePMF      distribution.PMF
	fightDamageScenario distribution.Scenario
	fightInstances      map[string]engine.DamageInstance

	eventDamagePMF      distribution.PMF
	eventDamageScenario distribution.Scenario
	eventInstances      map[string]engine.DamageInstance

	sectorCounts map[sectors.Type]int
}

// runPipeline runs every §4 engine over one literal sector list, given the
// team's already-gated participants, fighting power, and grenade count
// (fixed for the whole calculation — see Calculate's doc comment on why
// gating is resolved once against the full planet rather than per
// composition).
func runPipeline(resolver *sectors.Resolver, sectorList []sectors.Type, participantCount, fp, grenades int, mods engine.ResourceModifiers) (pipelineOutput, error) {
	out := pipelineOutput{
		resourcePMF:             map[string]distribution.PMF{},
		resourceScenario:        map[string]distribution.Scenario{},
		fightOccurrencePMF:      map[sectors.EventName]distribution.PMF{},
		fightOccurrenceScenario: map[sectors.EventName]distribution.Scenario{},
		negativePMF:             map[sectors.EventName]distribution.PMF{},
		negativeScenario:        map[sectors.EventName]distribution.Scenario{},
		damageEventPMF:          map[sectors.EventName]distribution.PMF{},
		damageEventScenario:     map[sectors.EventName]distribution.Scenario{},
		sectorCounts:            map[sectors.Type]int{},
	}
	for _, t := range sectorList {
		out.sectorCounts[t]++
	}

	resources, err := engine.CalculateAllResources(resolver, sectorList, mods)
	if err != nil {
		return pipelineOutput{}, err
	}
	for name, r := range resources {
		out.resourcePMF[name] = r.PMF
		out.resourceScenario[name] = r.Scenario
	}

	for _, eventName := range sectors.AllFightEventNames {
		occ, err := engine.CalculateForType(resolver, sectorList, eventName)
		if err != nil {
			return pipelineOutput{}, err
		}
		out.fightOccurrencePMF[eventName] = occ.Occurrence.PMF
		out.fightOccurrenceScenario[eventName] = occ.Occurrence.Scenario
	}
	for _, eventName := range sectors.AllNegativeEvents {
		occ, err := engine.CalculateForType(resolver, sectorList, eventName)
		if err != nil {
			return pipelineOutput{}, err
		}
		out.negativePMF[eventName] = occ.Occurrence.PMF
		out.negativeScenario[eventName] = occ.Occurrence.Scenario
	}

	for _, eventName := range sectors.AllDamageEventNames {
		occ, err := engine.CalculateForType(resolver, sectorList, eventName)
		if err != nil {
			return pipelineOutput{}, err
		}
		out.damageEventPMF[eventName] = occ.Occurrence.PMF
		out.damageEventScenario[eventName] = occ.Occurrence.Scenario
	}

	comparator, err := engine.Compare(resolver, sectorList, participantCount, fp, grenades)
	if err != nil {
		return pipelineOutput{}, err
	}

	fightResult, err := engine.CalculateFightDamage(resolver, sectorList, fp, grenades, comparator)
	if err != nil {
		return pipelineOutput{}, err
	}
	out.fightDamagePMF = fightResult.PMF
	out.fightDamageScenario = fightResult.Scenario
	out.fightInstances = fightResult.Instances

	eventResult, err := engine.CalculateEventDamage(resolver, sectorList, participantCount, comparator)
	if err != nil {
		return pipelineOutput{}, err
	}
	out.eventDamagePMF = eventResult.PMF
	out.eventDamageScenario = eventResult.Scenario
	out.eventInstances = eventResult.Instances

	return out, nil
}

// weightedRun pairs one composition's pipelineOutput with the probability
// SectorSampler assigned it. A direct, non-sampled calculation is a single
// weightedRun with probability 1.
type weightedRun struct {
	probability float64
	out         pipelineOutput
}

func resourceModifiersFor(l loadout.Loadout) engine.ResourceModifiers {
	return engine.ResourceModifiers{
		BotanistCount: l.CountAbility(loadout.Botanic),
		DrillerCount:  l.CountItem(loadout.Driller),
	}
}
