package engine

import (
	"math"
	"sort"

	"github.com/nicoberrocal/expedicalc/sectors"
)

// SectorOutcome is DamageComparator's per-sector verdict (spec.md §4.7):
// which damaging family — fight or non-combat event — represents the
// worst-case outcome for that sector, and whether a grenade was allocated
// to it during the greedy pass.
type SectorOutcome struct {
	EventType   string // "fight", "event", or "none"
	WorstEvent  sectors.EventName
	Score       int
	GrenadeUsed bool
}

// ComparatorResult is DamageComparator's output: the per-sector verdicts
// plus the two exclusion sets worst-case engines consult (spec.md §4.7).
// Invariant (spec.md §8 #8): for every sector index, at most one of
// FightExclusions, EventExclusions is set.
type ComparatorResult struct {
	BySector        []SectorOutcome
	FightExclusions map[int]bool
	EventExclusions map[int]bool
}

type fightCandidate struct {
	index    int
	baseDamage int
}

// Compare implements DamageComparator (spec.md §4.7): for each sector,
// scores the worst present damaging outcome (fight vs. non-combat event),
// greedily allocating grenades to the highest-base-damage fights first,
// and derives the mutual-exclusion sets worst-case engines use.
func Compare(resolver *sectors.Resolver, sectorList []sectors.Type, participantCount, fp, grenades int) (ComparatorResult, error) {
	n := len(sectorList)
	bestFightBase := make([]int, n)
	bestFightEvent := make([]sectors.EventName, n)
	bestDamageSpec := make([]sectors.DamageEventSpec, n)
	bestDamageEvent := make([]sectors.EventName, n)
	hasFight := make([]bool, n)
	hasDamage := make([]bool, n)

	for i, t := range sectorList {
		probs, err := resolver.Probabilities(t)
		if err != nil {
			return ComparatorResult{}, err
		}
		for event, p := range probs {
			if p <= 0 {
				continue
			}
			if k, ok := sectors.FightEventK(event); ok {
				if !hasFight[i] || k > bestFightBase[i] {
					hasFight[i] = true
					bestFightBase[i] = k
					bestFightEvent[i] = event
				}
			} else if event == sectors.VariableFightEvent {
				maxBase := sectors.VariableFightValues[0]
				for _, v := range sectors.VariableFightValues {
					if v > maxBase {
						maxBase = v
					}
				}
				if !hasFight[i] || maxBase > bestFightBase[i] {
					hasFight[i] = true
					bestFightBase[i] = maxBase
					bestFightEvent[i] = event
				}
			} else if spec, ok := sectors.DamageEventSpecOf(event); ok {
				score := damageEventScore(spec, participantCount)
				if !hasDamage[i] || score > damageEventScore(bestDamageSpec[i], participantCount) {
					hasDamage[i] = true
					bestDamageSpec[i] = spec
					bestDamageEvent[i] = event
				}
			}
		}
	}

	// Greedy grenade allocation: highest base fight damage first.
	candidates := make([]fightCandidate, 0, n)
	for i := range sectorList {
		if hasFight[i] {
			candidates = append(candidates, fightCandidate{index: i, baseDamage: bestFightBase[i]})
		}
	}
	sort.Slice(candidates, func(a, b int) bool { return candidates[a].baseDamage > candidates[b].baseDamage })

	effectiveFP := make([]int, n)
	for i := range effectiveFP {
		effectiveFP[i] = fp
	}
	grenadesRemaining := grenades
	grenadeUsed := make([]bool, n)
	for _, c := range candidates {
		if grenadesRemaining <= 0 {
			break
		}
		current := teamDamage(c.baseDamage, fp)
		withGrenade := teamDamage(c.baseDamage, fp+3)
		if withGrenade < current {
			effectiveFP[c.index] = fp + 3
			grenadeUsed[c.index] = true
			grenadesRemaining--
		}
	}

	outcomes := make([]SectorOutcome, n)
	fightExclusions := map[int]bool{}
	eventExclusions := map[int]bool{}

	for i := range sectorList {
		var fightScore, eventScore int
		if hasFight[i] {
			total := teamDamage(bestFightBase[i], effectiveFP[i])
			maxToOne := splitDamage(total, participantCount)
			fightScore = total*100 + maxToOne*10
		}
		if hasDamage[i] {
			eventScore = damageEventScore(bestDamageSpec[i], participantCount)
		}

		switch {
		case hasFight[i] && hasDamage[i]:
			if fightScore >= eventScore {
				outcomes[i] = SectorOutcome{EventType: "fight", WorstEvent: bestFightEvent[i], Score: fightScore, GrenadeUsed: grenadeUsed[i]}
				eventExclusions[i] = true
			} else {
				outcomes[i] = SectorOutcome{EventType: "event", WorstEvent: bestDamageEvent[i], Score: eventScore}
				fightExclusions[i] = true
			}
		case hasFight[i]:
			outcomes[i] = SectorOutcome{EventType: "fight", WorstEvent: bestFightEvent[i], Score: fightScore, GrenadeUsed: grenadeUsed[i]}
		case hasDamage[i]:
			outcomes[i] = SectorOutcome{EventType: "event", WorstEvent: bestDamageEvent[i], Score: eventScore}
		default:
			outcomes[i] = SectorOutcome{EventType: "none"}
		}
	}

	return ComparatorResult{BySector: outcomes, FightExclusions: fightExclusions, EventExclusions: eventExclusions}, nil
}

func teamDamage(base, fp int) int {
	d := base - fp
	if d < 0 {
		return 0
	}
	return d
}

func splitDamage(total, participants int) int {
	if participants <= 0 {
		return total
	}
	return int(math.Ceil(float64(total) / float64(participants)))
}

func damageEventScore(spec sectors.DamageEventSpec, participantCount int) int {
	if spec.High == 0 && spec.Low == 0 {
		return 0
	}
	var total, maxToOne int
	if spec.AffectsAll {
		total = spec.High * participantCount
		maxToOne = spec.High
	} else {
		total = spec.High
		maxToOne = spec.High
	}
	return total*100 + maxToOne*10
}
