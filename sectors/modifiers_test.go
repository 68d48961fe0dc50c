package sectors

import (
	"testing"

	"github.com/nicoberrocal/expedicalc/loadout"
)

func baseWeights() Weights {
	return Weights{
		TiredEvent:           15,
		AccidentEvent:        10,
		DisasterEvent:        5,
		NothingToReportEvent: 40,
	}
}

func TestApplyModifiersRejectsUnknownType(t *testing.T) {
	_, err := ApplyModifiers(baseWeights(), Type("NOT_A_SECTOR"), loadout.Loadout{})
	if err == nil {
		t.Fatal("expected ConfigError for unknown sector type, got nil")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}

func TestApplyModifiersDoesNotMutateInput(t *testing.T) {
	base := baseWeights()
	snapshot := base.Clone()

	_, err := ApplyModifiers(base, Landing, loadout.Loadout{Abilities: []loadout.AbilityID{loadout.Pilot}})
	if err != nil {
		t.Fatalf("ApplyModifiers: %v", err)
	}
	for k, v := range snapshot {
		if base[k] != v {
			t.Errorf("ApplyModifiers mutated its input: base[%v] = %v, want %v", k, base[k], v)
		}
	}
}

func TestPilotRemovesLandingDamageEvents(t *testing.T) {
	l := loadout.Loadout{Abilities: []loadout.AbilityID{loadout.Pilot}}
	w, err := ApplyModifiers(baseWeights(), Landing, l)
	if err != nil {
		t.Fatalf("ApplyModifiers: %v", err)
	}
	for _, e := range []EventName{TiredEvent, AccidentEvent, DisasterEvent} {
		if _, ok := w[e]; ok {
			t.Errorf("PILOT should remove %v on LANDING, still present", e)
		}
	}
}

func TestDiplomacyRemovesFightEvents(t *testing.T) {
	w := Weights{VariableFightEvent: 20, "FIGHT_8": 10, NothingToReportEvent: 40}
	l := loadout.Loadout{Abilities: []loadout.AbilityID{loadout.Diplomacy}}
	got, err := ApplyModifiers(w, Forest, l)
	if err != nil {
		t.Fatalf("ApplyModifiers: %v", err)
	}
	if _, ok := got[VariableFightEvent]; ok {
		t.Error("DIPLOMACY should remove the variable fight event")
	}
	if _, ok := got["FIGHT_8"]; ok {
		t.Error("DIPLOMACY should remove FIGHT_8")
	}
	if got[NothingToReportEvent] != 40 {
		t.Error("DIPLOMACY should not touch unrelated events")
	}
}

func TestTrackerRemovesKillLostOnLost(t *testing.T) {
	w := Weights{KillLostEvent: 20, NothingToReportEvent: 80}
	l := loadout.Loadout{Abilities: []loadout.AbilityID{loadout.Tracker}}
	got, err := ApplyModifiers(w, Lost, l)
	if err != nil {
		t.Fatalf("ApplyModifiers: %v", err)
	}
	if _, ok := got[KillLostEvent]; ok {
		t.Error("TRACKER should remove KILL_LOST on LOST")
	}
}

func TestAntigravDoublesNothingToReportOnLanding(t *testing.T) {
	l := loadout.Loadout{Projects: []loadout.ProjectID{loadout.AntigravPropeller}}
	got, err := ApplyModifiers(baseWeights(), Landing, l)
	if err != nil {
		t.Fatalf("ApplyModifiers: %v", err)
	}
	if got[NothingToReportEvent] != 80 {
		t.Errorf("ANTIGRAV_PROPELLER should double NOTHING_TO_REPORT on LANDING, got %v", got[NothingToReportEvent])
	}
}

func TestTradModuleDoublesArtefactOnIntelligent(t *testing.T) {
	w := Weights{ArtefactEvent: 10, NothingToReportEvent: 90}
	l := loadout.Loadout{Items: []loadout.ItemID{loadout.TradModule}}
	got, err := ApplyModifiers(w, Intelligent, l)
	if err != nil {
		t.Fatalf("ApplyModifiers: %v", err)
	}
	if got[ArtefactEvent] != 20 {
		t.Errorf("TRAD_MODULE should double ARTEFACT on INTELLIGENT, got %v", got[ArtefactEvent])
	}
}

func TestWhiteFlagRemovesFightOnlyOnIntelligent(t *testing.T) {
	w := Weights{"FIGHT_8": 10, NothingToReportEvent: 90}
	l := loadout.Loadout{Items: []loadout.ItemID{loadout.WhiteFlag}}

	got, err := ApplyModifiers(w, Intelligent, l)
	if err != nil {
		t.Fatalf("ApplyModifiers: %v", err)
	}
	if _, ok := got["FIGHT_8"]; ok {
		t.Error("WHITE_FLAG should remove fight events on INTELLIGENT")
	}

	got, err = ApplyModifiers(w, Forest, l)
	if err != nil {
		t.Fatalf("ApplyModifiers: %v", err)
	}
	if _, ok := got["FIGHT_8"]; !ok {
		t.Error("WHITE_FLAG should not affect fight events outside INTELLIGENT")
	}
}

func TestDiscoveryMultiplier(t *testing.T) {
	if got := DiscoveryMultiplier(loadout.EchoSounder, Hydrocarbon); got != 5 {
		t.Errorf("ECHO_SOUNDER on HYDROCARBON = %v, want 5", got)
	}
	if got := DiscoveryMultiplier(loadout.EchoSounder, Forest); got != 1 {
		t.Errorf("ECHO_SOUNDER on FOREST = %v, want 1 (no effect)", got)
	}
	if got := DiscoveryMultiplier(loadout.Rope, Hydrocarbon); got != 1 {
		t.Errorf("unrelated item should have multiplier 1, got %v", got)
	}
}

func TestImmunityEvent(t *testing.T) {
	event, ok := ImmunityEvent(loadout.Rope, Mountain)
	if !ok || event != AccidentEvent {
		t.Errorf("ROPE on MOUNTAIN should grant immunity to ACCIDENT_3_5, got (%v, %v)", event, ok)
	}
	if _, ok := ImmunityEvent(loadout.Rope, Forest); ok {
		t.Error("ROPE should grant no immunity on FOREST")
	}
}
