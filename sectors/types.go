// Package sectors owns the closed SectorType/EventName enums, the static
// SectorConfig table, and the two components that turn a sector's raw
// event weights into per-run probabilities: ModifierApplicator and
// EventWeightResolver (spec.md §4.1–§4.2).
package sectors

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the closed set of sector tags a planet position may carry.
// spec.md §3 fixes this set; ParseType is the single parse layer the
// redesign notes (spec.md §9) ask for in place of raw strings.
type Type string

const (
	Landing           Type = "LANDING"
	Forest            Type = "FOREST"
	Desert            Type = "DESERT"
	Ocean             Type = "OCEAN"
	Mountain          Type = "MOUNTAIN"
	Cold              Type = "COLD"
	Hot               Type = "HOT"
	Insect            Type = "INSECT"
	Predator          Type = "PREDATOR"
	Intelligent       Type = "INTELLIGENT"
	Hydrocarbon       Type = "HYDROCARBON"
	Oxygen            Type = "OXYGEN"
	CristalField      Type = "CRISTAL_FIELD"
	Ruins             Type = "RUINS"
	Wreck             Type = "WRECK"
	Cave              Type = "CAVE"
	Swamp             Type = "SWAMP"
	Mankarog          Type = "MANKAROG"
	Ruminant          Type = "RUMINANT"
	FruitTrees        Type = "FRUIT_TREES"
	VolcanicActivity  Type = "VOLCANIC_ACTIVITY"
	SeismicActivity   Type = "SEISMIC_ACTIVITY"
	StrongWind        Type = "STRONG_WIND"
	Lost              Type = "LOST"
)

// AllTypes enumerates the closed set, in the order they appear in spec.md §3.
var AllTypes = []Type{
	Landing, Forest, Desert, Ocean, Mountain, Cold, Hot, Insect, Predator,
	Intelligent, Hydrocarbon, Oxygen, CristalField, Ruins, Wreck, Cave,
	Swamp, Mankarog, Ruminant, FruitTrees, VolcanicActivity, SeismicActivity,
	StrongWind, Lost,
}

// IsValid reports whether t belongs to the closed sector-type set.
func (t Type) IsValid() bool {
	for _, v := range AllTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ParseType validates and normalises a raw sector type string. Returns
// ConfigError for anything outside the closed set (spec.md §4.1).
func ParseType(raw string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return "", &ConfigError{Msg: fmt.Sprintf("unknown sector type %q", raw)}
	}
	return t, nil
}

// ConfigError is returned for malformed or unrecognised static
// configuration (spec.md §7); it is fatal at startup.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config error: " + e.Msg }

// EventName is the closed set of event identifiers a sector's exploration
// table may weight, partitioned into resource, damage, fight, negative, and
// neutral events (spec.md §3).
type EventName string

const (
	ArtefactEvent         EventName = "ARTEFACT"
	StarmapEvent          EventName = "STARMAP"
	TiredEvent            EventName = "TIRED_2"
	AccidentEvent         EventName = "ACCIDENT_3_5"
	DisasterEvent         EventName = "DISASTER_3_5"
	VariableFightEvent    EventName = "FIGHT_8_10_12_15_18_32"
	KillLostEvent         EventName = "KILL_LOST"
	PlayerLostEvent       EventName = "PLAYER_LOST"
	AgainEvent            EventName = "AGAIN"
	DiseaseEvent          EventName = "DISEASE"
	ItemLostEvent         EventName = "ITEM_LOST"
	MushTrapEvent         EventName = "MUSH_TRAP"
	NothingToReportEvent  EventName = "NOTHING_TO_REPORT"
)

// FixedFightValues is the closed set of fixed fight strengths spec.md §3
// allows for FIGHT_k events.
var FixedFightValues = []int{8, 10, 12, 15, 18, 32}

// VariableFightValues are the six equally-likely base damages rolled by
// FIGHT_8_10_12_15_18_32 (spec.md §4.5).
var VariableFightValues = []int{8, 10, 12, 15, 18, 32}

var negativeEvents = map[EventName]struct{}{
	KillLostEvent: {}, PlayerLostEvent: {}, AgainEvent: {},
	DiseaseEvent: {}, ItemLostEvent: {}, MushTrapEvent: {},
}

// AllNegativeEvents enumerates the negative-but-not-damaging event set, in
// a stable order, for callers that need to run OccurrenceEngine over all of
// them (spec.md §6 "negativeEvents").
var AllNegativeEvents = []EventName{
	KillLostEvent, PlayerLostEvent, AgainEvent, DiseaseEvent, ItemLostEvent, MushTrapEvent,
}

// AllFightEventNames enumerates every fight event name in the closed set:
// the six fixed FIGHT_k events plus the variable one (spec.md §6
// "combat.occurrence").
var AllFightEventNames = func() []EventName {
	out := make([]EventName, 0, len(FixedFightValues)+1)
	for _, k := range FixedFightValues {
		out = append(out, EventName(fmt.Sprintf("FIGHT_%d", k)))
	}
	out = append(out, VariableFightEvent)
	return out
}()

// AllDamageEventNames enumerates the non-combat damage event set, in a
// stable order (spec.md §6 "eventDamage.occurrence").
var AllDamageEventNames = []EventName{TiredEvent, DisasterEvent, AccidentEvent}

// FightEventK reports whether e is a fixed-value fight event (FIGHT_k for k
// in FixedFightValues) and, if so, its k.
func FightEventK(e EventName) (k int, ok bool) {
	const prefix = "FIGHT_"
	if e == VariableFightEvent || !strings.HasPrefix(string(e), prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(string(e), prefix))
	if err != nil {
		return 0, false
	}
	for _, v := range FixedFightValues {
		if v == n {
			return n, true
		}
	}
	return 0, false
}

// IsFightEvent reports whether e is any fight event, fixed or variable.
func IsFightEvent(e EventName) bool {
	if e == VariableFightEvent {
		return true
	}
	_, ok := FightEventK(e)
	return ok
}

// IsDamageEvent reports whether e is a non-combat harmful event.
func IsDamageEvent(e EventName) bool {
	return e == TiredEvent || e == AccidentEvent || e == DisasterEvent
}

// IsNegativeEvent reports whether e is a negative-but-not-damaging event.
func IsNegativeEvent(e EventName) bool {
	_, ok := negativeEvents[e]
	return ok
}

// IsNeutral reports whether e is the neutral NOTHING_TO_REPORT event.
func IsNeutral(e EventName) bool {
	return e == NothingToReportEvent
}

// ResourceYield describes the resource(s) and quantity an event produces.
// ARTEFACT is split across two resources (8/9 artefacts, 1/9 map
// fragments) so it is modelled as up to two yields.
type ResourceYield struct {
	Resource string
	Amount   int
	Weight   float64 // fraction of this event's own probability mass
}

// Resource name constants, matching spec.md §4.4 and §6.
const (
	ResourceFruits       = "fruits"
	ResourceSteaks       = "steaks"
	ResourceFuel         = "fuel"
	ResourceOxygen       = "oxygen"
	ResourceArtefacts    = "artefacts"
	ResourceMapFragments = "mapFragments"
)

// ResourceYields reports what resource(s) event e produces and how much,
// implementing the parsing rule of spec.md §4.4: "the yield is the integer
// after the event's underscore" for HARVEST_n/PROVISION_n/FUEL_n/OXYGEN_n,
// with ARTEFACT and STARMAP as special cases. Events that yield nothing
// (damage, fight, negative, neutral) return nil.
func ResourceYields(e EventName) []ResourceYield {
	switch {
	case e == ArtefactEvent:
		return []ResourceYield{
			{Resource: ResourceArtefacts, Amount: 1, Weight: 8.0 / 9.0},
			{Resource: ResourceMapFragments, Amount: 1, Weight: 1.0 / 9.0},
		}
	case e == StarmapEvent:
		return []ResourceYield{{Resource: ResourceMapFragments, Amount: 1, Weight: 1}}
	}
	resource, amount, ok := parseYieldPrefix(e)
	if !ok {
		return nil
	}
	return []ResourceYield{{Resource: resource, Amount: amount, Weight: 1}}
}

func parseYieldPrefix(e EventName) (resource string, amount int, ok bool) {
	prefixes := map[string]string{
		"HARVEST_":   ResourceFruits,
		"PROVISION_": ResourceSteaks,
		"FUEL_":      ResourceFuel,
		"OXYGEN_":    ResourceOxygen,
	}
	for prefix, resource := range prefixes {
		if strings.HasPrefix(string(e), prefix) {
			n, err := strconv.Atoi(strings.TrimPrefix(string(e), prefix))
			if err != nil {
				return "", 0, false
			}
			return resource, n, true
		}
	}
	return "", 0, false
}

// DamageEventSpec describes the dispersion rule for a damage event
// (spec.md §4.6): the uniform range of per-instance base damage, and
// whether it affects every participant (affectsAll) or a single randomly
// chosen one.
type DamageEventSpec struct {
	Low, High  int
	AffectsAll bool
}

var damageEventSpecs = map[EventName]DamageEventSpec{
	TiredEvent:    {Low: 2, High: 2, AffectsAll: true},
	DisasterEvent: {Low: 3, High: 5, AffectsAll: true},
	AccidentEvent: {Low: 3, High: 5, AffectsAll: false},
}

// DamageEventSpecOf returns the dispersion rule for a damage event name.
func DamageEventSpecOf(e EventName) (DamageEventSpec, bool) {
	spec, ok := damageEventSpecs[e]
	return spec, ok
}

// MultiEventSectors are the sector types whose exploration table mixes
// several mutually-exclusive damage events with NOTHING_TO_REPORT
// (spec.md §4.6). No code in this module reads the table; DamageComparator
// and EventDamageEngine do not consult it.
var MultiEventSectors = map[Type]EventName{
	Landing:  DisasterEvent,
	Cold:     AccidentEvent,
	Hot:      AccidentEvent,
	Mountain: AccidentEvent,
}
