package expedicalc

import (
	"math/rand"

	"github.com/nicoberrocal/expedicalc/distribution"
	"github.com/nicoberrocal/expedicalc/engine"
	"github.com/nicoberrocal/expedicalc/loadout"
	"github.com/nicoberrocal/expedicalc/sectors"
)

// assembleResult mixes every per-composition run (or passes the single
// direct run through unchanged) into the external Result shape.
func assembleResult(runs []weightedRun, resolver *sectors.Resolver, fp, grenades int, participants []loadout.Player, req Request) (Result, error) {
	resources := map[string]ScenarioValues{}
	for _, name := range engine.AllResources {
		mixed := mixMetric(runs,
			func(o pipelineOutput) distribution.PMF { return o.resourcePMF[name] },
			func(o pipelineOutput) distribution.Scenario { return o.resourceScenario[name] },
			nil,
		)
		resources[name] = toScenarioValues(mixed.Scenario, mixed.PMF, true)
	}

	fightOccurrence := map[string]OccurrenceValues{}
	for _, name := range sectors.AllFightEventNames {
		mixed := mixMetric(runs,
			func(o pipelineOutput) distribution.PMF { return o.fightOccurrencePMF[name] },
			func(o pipelineOutput) distribution.Scenario { return o.fightOccurrenceScenario[name] },
			nil,
		)
		fightOccurrence[string(name)] = toOccurrenceValues(mixed.Scenario, mixed.PMF)
	}

	negativeEvents := map[string]BasicScenario{}
	for _, name := range sectors.AllNegativeEvents {
		mixed := mixMetric(runs,
			func(o pipelineOutput) distribution.PMF { return o.negativePMF[name] },
			func(o pipelineOutput) distribution.Scenario { return o.negativeScenario[name] },
			nil,
		)
		negativeEvents[string(name)] = toBasicScenario(mixed.Scenario)
	}

	damageEventOccurrence := map[string]OccurrenceValues{}
	for _, name := range sectors.AllDamageEventNames {
		mixed := mixMetric(runs,
			func(o pipelineOutput) distribution.PMF { return o.damageEventPMF[name] },
			func(o pipelineOutput) distribution.Scenario { return o.damageEventScenario[name] },
			nil,
		)
		damageEventOccurrence[string(name)] = toOccurrenceValues(mixed.Scenario, mixed.PMF)
	}

	mixedFight := mixMetric(runs,
		func(o pipelineOutput) distribution.PMF { return o.fightDamagePMF },
		func(o pipelineOutput) distribution.Scenario { return o.fightDamageScenario },
		func(o pipelineOutput) map[string]engine.DamageInstance { return o.fightInstances },
	)
	mixedEvent := mixMetric(runs,
		func(o pipelineOutput) distribution.PMF { return o.eventDamagePMF },
		func(o pipelineOutput) distribution.Scenario { return o.eventDamageScenario },
		func(o pipelineOutput) map[string]engine.DamageInstance { return o.eventInstances },
	)

	breakdown, err := buildSectorBreakdown(runs, resolver)
	if err != nil {
		return Result{}, err
	}

	rng := rngFor(req)
	health, effects := healthAndEffects(participants, mixedFight.Instances, mixedEvent.Instances, rng)

	return Result{
		Resources: resources,
		Combat: CombatResult{
			Occurrence:      fightOccurrence,
			Damage:          toScenarioValues(mixedFight.Scenario, mixedFight.PMF, true),
			DamageInstances: toDamageInstances(mixedFight.Instances),
			FightingPower:   fp,
			GrenadeCount:    grenades,
			PlayerCount:     len(participants),
		},
		EventDamage: EventDamageResult{
			Occurrence:      damageEventOccurrence,
			Damage:          toScenarioValues(mixedEvent.Scenario, mixedEvent.PMF, true),
			DamageInstances: toDamageInstances(mixedEvent.Instances),
		},
		NegativeEvents:    negativeEvents,
		SectorBreakdown:   breakdown,
		HealthByScenario:  health,
		EffectsByScenario: effects,
	}, nil
}

var quadrants = []string{"optimist", "average", "pessimist", "worst"}

// healthAndEffects runs DamageSpreader once per scenario quadrant over the
// mixed COMBINED fight and event damage instances (spec.md §4.11). Event
// instances carry no sector identity at this point (the COMBINED route
// collapses per-sector attribution away), so item-granted sector-specific
// immunity never triggers here — only PathSampler's exact per-sector
// instances support that; see event_damage.go's CalculateEventDamage.
func healthAndEffects(participants []loadout.Player, fightInstances, eventInstances map[string]engine.DamageInstance, rng *rand.Rand) (HealthByScenario, map[string][][]engine.DamageEffect) {
	health := HealthByScenario{}
	effects := make(map[string][][]engine.DamageEffect, len(quadrants))

	for _, quadrant := range quadrants {
		fight := toSourced(fightInstances[quadrant])
		event := toSourcedEvent(eventInstances[quadrant], len(participants))
		result := engine.Spread(participants, fight, event, rng)

		switch quadrant {
		case "optimist":
			health.Optimist = result.Health
		case "average":
			health.Average = result.Health
		case "pessimist":
			health.Pessimist = result.Health
		case "worst":
			health.WorstCase = result.Health
		}
		effects[quadrantJSONKey(quadrant)] = perPlayerEffects(len(participants), result.EffectsTriggered)
	}
	return health, effects
}

func toSourced(inst engine.DamageInstance) []engine.SourcedInstance {
	if inst.Count == 0 && inst.DamagePerInstance == 0 {
		return nil
	}
	out := make([]engine.SourcedInstance, 0, inst.Count)
	n := inst.Count
	if n == 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		out = append(out, engine.SourcedInstance{EventType: inst.EventType, Damage: inst.DamagePerInstance})
	}
	return out
}

// toSourcedEvent converts a COMBINED event DamageInstance into the
// SourcedInstance DamageSpreader expects for its affects-all branch.
// CalculateEventDamage's Instances carry the team *total* for the scenario
// (spec.md:116, "containing the total per scenario") — eventSectorPMF bakes
// baseDamage×participantCount into that total for affectsAll events (spec.md
// §4.6) — but Spread's TiredEvent/DisasterEvent case applies Damage to every
// participant undivided, so the COMBINED route must convert the team total
// back down to the per-participant share before handing it to Spread.
func toSourcedEvent(inst engine.DamageInstance, participantCount int) []engine.SourcedInstance {
	if participantCount < 1 {
		participantCount = 1
	}
	perParticipant := inst
	perParticipant.DamagePerInstance = inst.DamagePerInstance / participantCount
	return toSourced(perParticipant)
}

func perPlayerEffects(n int, triggered []engine.DamageEffect) [][]engine.DamageEffect {
	out := make([][]engine.DamageEffect, n)
	for _, e := range triggered {
		if e.PlayerIndex < 0 || e.PlayerIndex >= n {
			continue
		}
		out[e.PlayerIndex] = append(out[e.PlayerIndex], e)
	}
	return out
}

// participationStatus reports OxygenGate's verdict for every team player in
// team order (spec.md §6).
func participationStatus(req Request, excluded []loadout.Player) []ParticipationEntry {
	excludedSet := make(map[loadout.Player]bool, len(excluded))
	for _, p := range excluded {
		excludedSet[p] = true
	}
	out := make([]ParticipationEntry, len(req.Team.Players))
	for i, p := range req.Team.Players {
		if excludedSet[p] {
			out[i] = ParticipationEntry{CanParticipate: false, Reason: "no oxygen sector on an oxygenless planet and no space suit"}
			continue
		}
		out[i] = ParticipationEntry{CanParticipate: true}
	}
	return out
}

// emptyResult implements the EmptyCalculation rule (spec.md §7): an empty
// sector list is well-defined, not an error — every scenario is zero, no
// player takes damage, and nobody is excluded (there is nothing to gate).
func emptyResult(req Request) Result {
	resources := map[string]ScenarioValues{}
	for _, name := range engine.AllResources {
		resources[name] = ScenarioValues{}
	}
	fightOccurrence := map[string]OccurrenceValues{}
	for _, name := range sectors.AllFightEventNames {
		fightOccurrence[string(name)] = OccurrenceValues{}
	}
	negativeEvents := map[string]BasicScenario{}
	for _, name := range sectors.AllNegativeEvents {
		negativeEvents[string(name)] = BasicScenario{}
	}
	damageEventOccurrence := map[string]OccurrenceValues{}
	for _, name := range sectors.AllDamageEventNames {
		damageEventOccurrence[string(name)] = OccurrenceValues{}
	}

	health := make([]int, len(req.Team.Players))
	effects := make([][]engine.DamageEffect, len(req.Team.Players))
	for i, p := range req.Team.Players {
		health[i] = p.MaxHealth
	}

	zeroHealth := HealthByScenario{Optimist: health, Average: health, Pessimist: health, WorstCase: health}
	zeroEffects := map[string][][]engine.DamageEffect{
		"optimist": effects, "average": effects, "pessimist": effects, "worstCase": effects,
	}
	participation := make([]ParticipationEntry, len(req.Team.Players))
	for i := range participation {
		participation[i] = ParticipationEntry{CanParticipate: true}
	}

	return Result{
		Resources: resources,
		Combat: CombatResult{
			Occurrence:      fightOccurrence,
			DamageInstances: map[string][]engine.DamageInstance{},
			PlayerCount:     len(req.Team.Players),
		},
		EventDamage: EventDamageResult{
			Occurrence:      damageEventOccurrence,
			DamageInstances: map[string][]engine.DamageInstance{},
		},
		NegativeEvents:      negativeEvents,
		SectorBreakdown:     map[string]SectorBreakdownEntry{},
		HealthByScenario:    zeroHealth,
		EffectsByScenario:   zeroEffects,
		ParticipationStatus: participation,
	}
}
