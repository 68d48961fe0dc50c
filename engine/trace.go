package engine

import (
	"math/rand"

	"github.com/nicoberrocal/expedicalc/distribution"
	"github.com/nicoberrocal/expedicalc/sectors"
)

// TraceOutcome is one scenario quadrant's PathSampler attribution for a
// single sector position: which fight and event outcome (if any exact
// assignment was found) contributed at that position (spec.md §5.1).
type TraceOutcome struct {
	FightEventType string `json:"fightEventType,omitempty"`
	FightDamage    int    `json:"fightDamage"`
	EventEventType string `json:"eventEventType,omitempty"`
	EventDamage    int    `json:"eventDamage"`
}

// SectorTraceEntry is one visited sector position's resolved event
// probabilities, plus its per-scenario PathSampler attribution when one
// was found (spec.md §5.1).
type SectorTraceEntry struct {
	Index         int                     `json:"index"`
	SectorType    sectors.Type            `json:"sectorType"`
	Probabilities map[string]float64      `json:"probabilities"`
	Outcomes      map[string]TraceOutcome `json:"outcomes,omitempty"`
}

// CalculationTrace is the optional battle-report-style explanation of one
// calculation (spec.md §5.1), additive to the result bundle of spec.md §6.
type CalculationTrace struct {
	Sectors []SectorTraceEntry `json:"sectors"`
}

var traceQuadrants = []string{"optimist", "average", "pessimist", "worst"}

// BuildTrace implements the §5.1 supplemented CalculationTrace feature: it
// resolves every sector position's event probabilities, then — for each
// scenario quadrant — runs PathSampler separately over the fight and event
// outcome menus to attribute one concrete outcome per sector that sums
// exactly to that quadrant's scenario damage. fightScenario/eventScenario
// must come from the same sectorList the caller actually ran (a single
// SectorSampler composition's own scenario, not a MixingOrchestrator-mixed
// one across compositions), or the targets may not be exactly reachable
// from sectorList's per-sector menus. A quadrant whose target turns out to
// be unreachable (can happen once grenade shifting or FP reduction
// collapses distinct outcomes together) is simply omitted from the
// affected sectors' Outcomes map — this trace is a UI convenience, never
// authoritative, matching spec.md:116's COMBINED-instance fallback.
func BuildTrace(resolver *sectors.Resolver, sectorList []sectors.Type, fp, grenades, participantCount int, fightScenario, eventScenario distribution.Scenario, rng *rand.Rand) (*CalculationTrace, error) {
	n := len(sectorList)
	probsByIndex := make([]sectors.Probabilities, n)
	for i, t := range sectorList {
		probs, err := resolver.Probabilities(t)
		if err != nil {
			return nil, err
		}
		probsByIndex[i] = probs
	}

	entries := make([]SectorTraceEntry, n)
	fightMenus := make([]SectorMenu, n)
	eventMenus := make([]SectorMenu, n)
	for i, t := range sectorList {
		probs := make(map[string]float64, len(probsByIndex[i]))
		for name, p := range probsByIndex[i] {
			if p > 0 {
				probs[string(name)] = p
			}
		}
		entries[i] = SectorTraceEntry{Index: i, SectorType: t, Probabilities: probs}
		fightMenus[i] = menuFromPMF(fightEventType, i, t, fightSectorPMF(probsByIndex[i], fp))
		eventMenus[i] = menuFromPMF(string(sectors.DisasterEvent), i, t, eventSectorPMF(probsByIndex[i], participantCount))
	}

	grenadeOffset := 3 * grenades
	targetsFor := func(quadrant string) (fightTarget, eventTarget int) {
		switch quadrant {
		case "optimist":
			return int(fightScenario.Optimist) + grenadeOffset, int(eventScenario.Optimist)
		case "average":
			return int(fightScenario.Average) + grenadeOffset, int(eventScenario.Average)
		case "pessimist":
			return int(fightScenario.Pessimist) + grenadeOffset, int(eventScenario.Pessimist)
		default: // "worst"
			return int(fightScenario.Worst) + grenadeOffset, int(eventScenario.Worst)
		}
	}

	for _, quadrant := range traceQuadrants {
		fightTarget, eventTarget := targetsFor(quadrant)

		if fightTarget >= 0 {
			if outcomes, err := SamplePath(fightMenus, fightTarget, rng); err == nil {
				for _, o := range outcomes {
					attributeFight(entries, o, quadrant)
				}
			}
		}
		if eventTarget >= 0 {
			if outcomes, err := SamplePath(eventMenus, eventTarget, rng); err == nil {
				for _, o := range outcomes {
					attributeEvent(entries, o, quadrant)
				}
			}
		}
	}

	return &CalculationTrace{Sectors: entries}, nil
}

func attributeFight(entries []SectorTraceEntry, o Outcome, quadrant string) {
	if o.Damage == 0 {
		return
	}
	entry := &entries[o.SectorIndex]
	if entry.Outcomes == nil {
		entry.Outcomes = map[string]TraceOutcome{}
	}
	t := entry.Outcomes[quadrant]
	t.FightEventType = o.EventType
	t.FightDamage = o.Damage
	entry.Outcomes[quadrant] = t
}

func attributeEvent(entries []SectorTraceEntry, o Outcome, quadrant string) {
	if o.Damage == 0 {
		return
	}
	entry := &entries[o.SectorIndex]
	if entry.Outcomes == nil {
		entry.Outcomes = map[string]TraceOutcome{}
	}
	t := entry.Outcomes[quadrant]
	t.EventEventType = o.EventType
	t.EventDamage = o.Damage
	entry.Outcomes[quadrant] = t
}

// menuFromPMF turns one sector's per-damage PMF into a PathSampler outcome
// menu, guaranteeing a zero-damage entry is always present (SamplePath's
// d=0 special case requires one; ordinary PMFs already carry their own
// residual-probability zero entry, but a fully-saturated one might not).
func menuFromPMF(eventType string, index int, sectorType sectors.Type, pmf distribution.PMF) SectorMenu {
	damages := make(map[int]float64, len(pmf)+1)
	for d, p := range pmf {
		damages[d] = p
	}
	if _, ok := damages[0]; !ok {
		damages[0] = 0
	}
	menu := make(SectorMenu, 0, len(damages))
	for damage, p := range damages {
		et := eventType
		if damage == 0 {
			et = ""
		}
		menu = append(menu, Outcome{EventType: et, Damage: damage, Probability: p, SectorIndex: index, SectorType: sectorType})
	}
	return menu
}
