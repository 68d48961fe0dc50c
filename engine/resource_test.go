package engine

import (
	"math"
	"testing"

	"github.com/nicoberrocal/expedicalc/loadout"
	"github.com/nicoberrocal/expedicalc/sectors"
)

func TestCalculateResourcePMFSumsToOne(t *testing.T) {
	resolver := sectors.NewResolver(sectors.DefaultTable(), loadout.Loadout{})
	sectorList := []sectors.Type{sectors.Intelligent, sectors.FruitTrees}
	result, err := CalculateResource(resolver, sectorList, sectors.ResourceFruits, ResourceModifiers{})
	if err != nil {
		t.Fatalf("CalculateResource: %v", err)
	}
	total := 0.0
	for _, p := range result.PMF {
		total += p
	}
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("resource PMF sums to %v, want 1", total)
	}
}

func TestCalculateResourceOxygenPessimistForcedZero(t *testing.T) {
	resolver := sectors.NewResolver(sectors.DefaultTable(), loadout.Loadout{})
	sectorList := []sectors.Type{sectors.Oxygen}
	result, err := CalculateResource(resolver, sectorList, sectors.ResourceOxygen, ResourceModifiers{})
	if err != nil {
		t.Fatalf("CalculateResource: %v", err)
	}
	if result.Scenario.Pessimist != 0 {
		t.Errorf("oxygen pessimist should be forced to 0, got %v", result.Scenario.Pessimist)
	}
}

func TestCalculateResourceBotanistBoostsFruitYield(t *testing.T) {
	resolver := sectors.NewResolver(sectors.DefaultTable(), loadout.Loadout{})
	sectorList := []sectors.Type{sectors.FruitTrees}
	without, err := CalculateResource(resolver, sectorList, sectors.ResourceFruits, ResourceModifiers{})
	if err != nil {
		t.Fatalf("CalculateResource: %v", err)
	}
	with, err := CalculateResource(resolver, sectorList, sectors.ResourceFruits, ResourceModifiers{BotanistCount: 1})
	if err != nil {
		t.Fatalf("CalculateResource: %v", err)
	}
	if with.Scenario.Average <= without.Scenario.Average {
		t.Errorf("a botanist should raise average fruit yield, got %v vs %v", with.Scenario.Average, without.Scenario.Average)
	}
}

func TestCalculateResourceDrillerMultipliesFuelYield(t *testing.T) {
	resolver := sectors.NewResolver(sectors.DefaultTable(), loadout.Loadout{})
	sectorList := []sectors.Type{sectors.Hydrocarbon}
	oneDriller, err := CalculateResource(resolver, sectorList, sectors.ResourceFuel, ResourceModifiers{DrillerCount: 0})
	if err != nil {
		t.Fatalf("CalculateResource: %v", err)
	}
	twoDriller, err := CalculateResource(resolver, sectorList, sectors.ResourceFuel, ResourceModifiers{DrillerCount: 1})
	if err != nil {
		t.Fatalf("CalculateResource: %v", err)
	}
	if twoDriller.Scenario.Average <= oneDriller.Scenario.Average {
		t.Errorf("a driller should multiply fuel yield, got %v vs %v", twoDriller.Scenario.Average, oneDriller.Scenario.Average)
	}
}

func TestCalculateAllResourcesCoversEveryTrackedResource(t *testing.T) {
	resolver := sectors.NewResolver(sectors.DefaultTable(), loadout.Loadout{})
	sectorList := []sectors.Type{sectors.Forest}
	out, err := CalculateAllResources(resolver, sectorList, ResourceModifiers{})
	if err != nil {
		t.Fatalf("CalculateAllResources: %v", err)
	}
	if len(out) != len(AllResources) {
		t.Errorf("CalculateAllResources returned %d entries, want %d", len(out), len(AllResources))
	}
	for _, r := range AllResources {
		if _, ok := out[r]; !ok {
			t.Errorf("missing resource %v in result", r)
		}
	}
}
