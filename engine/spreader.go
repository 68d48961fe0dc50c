package engine

import (
	"math/rand"

	"github.com/nicoberrocal/expedicalc/loadout"
	"github.com/nicoberrocal/expedicalc/sectors"
)

// SourcedInstance pairs one fight/event DamageInstance with the sector
// identity its damage came from, needed for sector-specific immunity checks
// like ROPE on MOUNTAIN (spec.md §4.11).
type SourcedInstance struct {
	EventType  string
	Damage     int
	SectorType sectors.Type
}

// PlayerDamageSource is one attributable entry in a participant's damage
// breakdown (spec.md §4.11).
type PlayerDamageSource struct {
	EventType string
	Damage    int
}

// DamageEffect records one reduction or immunity applied while spreading
// damage, for UI effect-badge rendering (spec.md §4.11).
type DamageEffect struct {
	PlayerIndex int
	Effect      string // "SURVIVAL", "PLASTENITE_ARMOR", or "ROPE"
}

// SpreadResult is DamageSpreader's per-scenario output (spec.md §4.11).
// Health is parallel to the participants slice passed to Spread;
// non-participants are not represented here and keep their own maxHealth.
type SpreadResult struct {
	Health           []int
	Breakdown        [][]PlayerDamageSource
	EffectsTriggered []DamageEffect
}

const fightEventType = "FIGHT"

// Spread implements DamageSpreader (spec.md §4.11) for one scenario: fight
// instances split their total evenly across participants, leading players
// absorbing the remainder; event instances dispatch by eventType, checking
// each target's item-granted sector-specific immunity first; then SURVIVAL
// and PLASTENITE_ARMOR reductions apply per damage instance, in that order,
// each floored at 0 (PLASTENITE_ARMOR only reduces fight instances).
func Spread(participants []loadout.Player, fightInstances, eventInstances []SourcedInstance, rng *rand.Rand) SpreadResult {
	n := len(participants)
	breakdown := make([][]PlayerDamageSource, n)
	var effects []DamageEffect
	if n == 0 {
		return SpreadResult{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	for _, inst := range fightInstances {
		if inst.Damage <= 0 {
			continue
		}
		share := inst.Damage / n
		remainder := inst.Damage % n
		for i := 0; i < n; i++ {
			d := share
			if i < remainder {
				d++
			}
			breakdown[i] = append(breakdown[i], PlayerDamageSource{EventType: fightEventType, Damage: d})
		}
	}

	for _, inst := range eventInstances {
		if inst.Damage <= 0 {
			continue
		}
		switch sectors.EventName(inst.EventType) {
		case sectors.TiredEvent, sectors.DisasterEvent:
			for i, p := range participants {
				applyEventDamage(&breakdown[i], &effects, i, p, inst)
			}
		case sectors.AccidentEvent:
			i := rng.Intn(n)
			applyEventDamage(&breakdown[i], &effects, i, participants[i], inst)
		}
	}

	for i, p := range participants {
		hasSurvival := p.HasAbility(loadout.Survival)
		hasArmor := p.HasItem(loadout.PlastiniteArmor)
		for j := range breakdown[i] {
			entry := &breakdown[i][j]
			if hasSurvival && entry.Damage > 0 {
				entry.Damage--
				effects = append(effects, DamageEffect{PlayerIndex: i, Effect: "SURVIVAL"})
			}
			if hasArmor && entry.EventType == fightEventType && entry.Damage > 0 {
				entry.Damage--
				effects = append(effects, DamageEffect{PlayerIndex: i, Effect: "PLASTENITE_ARMOR"})
			}
		}
	}

	health := make([]int, n)
	for i, p := range participants {
		total := 0
		for _, entry := range breakdown[i] {
			total += entry.Damage
		}
		h := p.MaxHealth - total
		if h < 0 {
			h = 0
		}
		health[i] = h
	}

	return SpreadResult{Health: health, Breakdown: breakdown, EffectsTriggered: effects}
}

// applyEventDamage records one event-damage instance against participant
// index i, unless an item they carry grants sector-specific immunity
// against this exact (sectorType, eventType) pair, in which case the
// instance contributes 0 and a ROPE-style effect is logged instead.
func applyEventDamage(breakdown *[]PlayerDamageSource, effects *[]DamageEffect, i int, p loadout.Player, inst SourcedInstance) {
	for _, item := range p.NonEmptyItems() {
		if immuneEvent, ok := sectors.ImmunityEvent(item, inst.SectorType); ok && string(immuneEvent) == inst.EventType {
			*effects = append(*effects, DamageEffect{PlayerIndex: i, Effect: string(item)})
			return
		}
	}
	*breakdown = append(*breakdown, PlayerDamageSource{EventType: inst.EventType, Damage: inst.Damage})
}
