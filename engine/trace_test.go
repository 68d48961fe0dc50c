package engine

import (
	"testing"

	"github.com/nicoberrocal/expedicalc/loadout"
	"github.com/nicoberrocal/expedicalc/sectors"
)

func TestBuildTraceOneEntryPerSector(t *testing.T) {
	resolver := sectors.NewResolver(sectors.DefaultTable(), loadout.Loadout{})
	sectorList := []sectors.Type{sectors.Landing, sectors.Mountain, sectors.Predator}

	comparator, err := Compare(resolver, sectorList, 2, 0, 0)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	fight, err := CalculateFightDamage(resolver, sectorList, 0, 0, comparator)
	if err != nil {
		t.Fatalf("CalculateFightDamage: %v", err)
	}
	event, err := CalculateEventDamage(resolver, sectorList, 2, comparator)
	if err != nil {
		t.Fatalf("CalculateEventDamage: %v", err)
	}

	trace, err := BuildTrace(resolver, sectorList, 0, 0, 2, fight.Scenario, event.Scenario, nil)
	if err != nil {
		t.Fatalf("BuildTrace: %v", err)
	}
	if len(trace.Sectors) != len(sectorList) {
		t.Fatalf("expected %d trace entries, got %d", len(sectorList), len(trace.Sectors))
	}
	for i, entry := range trace.Sectors {
		if entry.Index != i {
			t.Errorf("entry %d has Index %d", i, entry.Index)
		}
		if entry.SectorType != sectorList[i] {
			t.Errorf("entry %d has SectorType %s, want %s", i, entry.SectorType, sectorList[i])
		}
		if len(entry.Probabilities) == 0 {
			t.Errorf("entry %d has no probabilities", i)
		}
	}
}

func TestBuildTraceAttributesZeroDamageFightOnAllNothingSectors(t *testing.T) {
	table := sectors.Table{
		sectors.Forest: {
			WeightAtPlanetExploration: 10,
			ExplorationEvents:         sectors.Weights{sectors.NothingToReportEvent: 100},
		},
	}
	resolver := sectors.NewResolver(table, loadout.Loadout{})
	sectorList := []sectors.Type{sectors.Forest, sectors.Forest}

	comparator, err := Compare(resolver, sectorList, 1, 0, 0)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	fight, err := CalculateFightDamage(resolver, sectorList, 0, 0, comparator)
	if err != nil {
		t.Fatalf("CalculateFightDamage: %v", err)
	}
	event, err := CalculateEventDamage(resolver, sectorList, 1, comparator)
	if err != nil {
		t.Fatalf("CalculateEventDamage: %v", err)
	}
	if fight.Scenario.Average != 0 || event.Scenario.Average != 0 {
		t.Fatalf("a certain NOTHING_TO_REPORT sector should deal no damage, got fight=%v event=%v", fight.Scenario, event.Scenario)
	}

	trace, err := BuildTrace(resolver, sectorList, 0, 0, 1, fight.Scenario, event.Scenario, nil)
	if err != nil {
		t.Fatalf("BuildTrace: %v", err)
	}
	for _, entry := range trace.Sectors {
		for quadrant, outcome := range entry.Outcomes {
			if outcome.FightDamage != 0 || outcome.EventDamage != 0 {
				t.Errorf("quadrant %s attributed nonzero damage to a NOTHING_TO_REPORT-only sector: %+v", quadrant, outcome)
			}
		}
	}
}

func TestMenuFromPMFAlwaysHasAZeroEntry(t *testing.T) {
	pmf := map[int]float64{5: 1}
	menu := menuFromPMF("FIGHT", 0, sectors.Forest, pmf)
	found := false
	for _, o := range menu {
		if o.Damage == 0 {
			found = true
		}
	}
	if !found {
		t.Error("menuFromPMF must always include a zero-damage entry")
	}
}
