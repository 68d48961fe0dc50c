package sectors

import "github.com/nicoberrocal/expedicalc/loadout"

// ModifierApplicator transforms a sector's raw event-weight table
// according to the team's loadout (spec.md §4.1). It never mutates its
// input; every transformation step works on a fresh clone.
//
// Rules are applied in the fixed order spec.md §4.1 lists: ability-driven
// removals, then item-driven removals/reweights, then project-driven
// scaling. Removed events are deleted from the map entirely (not zeroed)
// so EventWeightResolver's normalisation never sees them.

// itemDiscoveryMultiplier holds SectorSampler's weight multipliers
// (spec.md §4.1 rule 2: "ECHO_SOUNDER multiplies HYDROCARBON discovery
// weight by 5 — applied by SectorSampler, not by normal modifier pass").
// Kept here because SectorSampler (engine package) needs a sector-type-
// keyed item effect table, and this package already depends on loadout.
var itemDiscoveryMultiplier = map[loadout.ItemID]map[Type]float64{
	loadout.EchoSounder: {Hydrocarbon: 5},
}

// DiscoveryMultiplier returns the sampling-weight multiplier item id
// grants for sector type t, or 1 if it grants none.
func DiscoveryMultiplier(id loadout.ItemID, t Type) float64 {
	if bySector, ok := itemDiscoveryMultiplier[id]; ok {
		if m, ok := bySector[t]; ok {
			return m
		}
	}
	return 1
}

// itemSectorImmunity holds sector-specific damage immunities granted by an
// item (spec.md §4.11: "ROPE on MOUNTAIN" against ACCIDENT_3_5).
var itemSectorImmunity = map[loadout.ItemID]map[Type]EventName{
	loadout.Rope: {Mountain: AccidentEvent},
}

// ImmunityEvent reports the event, if any, that item id neutralises on
// sector type t. ok is false if the item grants no immunity there.
func ImmunityEvent(id loadout.ItemID, t Type) (EventName, bool) {
	bySector, ok := itemSectorImmunity[id]
	if !ok {
		return "", false
	}
	e, ok := bySector[t]
	return e, ok
}

// ApplyModifiers returns a new weight table for sector type t, with the
// loadout's ability/item/project effects applied. base is never mutated.
// Returns ConfigError only if t is outside the closed SectorType set.
func ApplyModifiers(base Weights, t Type, l loadout.Loadout) (Weights, error) {
	if !t.IsValid() {
		return nil, &ConfigError{Msg: "unknown sector type in ApplyModifiers: " + string(t)}
	}
	w := base.Clone()

	applyAbilityRemovals(w, t, l)
	applyItemRules(w, t, l)
	applyProjectScaling(w, t, l)

	return w, nil
}

// applyAbilityRemovals implements spec.md §4.1 rule 1.
func applyAbilityRemovals(w Weights, t Type, l loadout.Loadout) {
	if t == Landing && l.HasAbility(loadout.Pilot) {
		delete(w, TiredEvent)
		delete(w, AccidentEvent)
		delete(w, DisasterEvent)
	}
	if l.HasAbility(loadout.Diplomacy) {
		removeFightEvents(w)
	}
	if t == Lost && l.HasAbility(loadout.Tracker) {
		delete(w, KillLostEvent)
	}
}

// applyItemRules implements spec.md §4.1 rule 2 (except the ECHO_SOUNDER
// discovery-weight rule, which SectorSampler applies directly via
// DiscoveryMultiplier).
func applyItemRules(w Weights, t Type, l loadout.Loadout) {
	if t == Intelligent && l.HasItem(loadout.WhiteFlag) {
		removeFightEvents(w)
	}
	if l.HasItem(loadout.QuadCompass) {
		delete(w, AgainEvent)
	}
	if t == Intelligent && l.HasItem(loadout.TradModule) {
		if v, ok := w[ArtefactEvent]; ok {
			w[ArtefactEvent] = v * 2
		}
	}
}

// applyProjectScaling implements spec.md §4.1 rule 3.
func applyProjectScaling(w Weights, t Type, l loadout.Loadout) {
	if t == Landing && l.HasProject(loadout.AntigravPropeller) {
		if v, ok := w[NothingToReportEvent]; ok {
			w[NothingToReportEvent] = v * 2
		}
	}
}

func removeFightEvents(w Weights) {
	for e := range w {
		if IsFightEvent(e) {
			delete(w, e)
		}
	}
}
