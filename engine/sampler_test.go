package engine

import (
	"math"
	"testing"

	"github.com/nicoberrocal/expedicalc/loadout"
	"github.com/nicoberrocal/expedicalc/sectors"
)

func TestSampleProbabilitiesSumToOneAfterPruning(t *testing.T) {
	planet := PlanetComposition{sectors.Forest: 3, sectors.Desert: 3}
	results, err := Sample(sectors.DefaultTable(), loadout.Loadout{}, planet, 4)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	total := 0.0
	for _, c := range results {
		total += c.Probability
	}
	if math.Abs(total-1) > 1e-6 {
		t.Errorf("retained composition probabilities sum to %v, want 1", total)
	}
}

func TestSampleEveryCompositionSumsToK(t *testing.T) {
	planet := PlanetComposition{sectors.Forest: 2, sectors.Ocean: 2}
	k := 3
	results, err := Sample(sectors.DefaultTable(), loadout.Loadout{}, planet, k)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	for _, c := range results {
		sum := 0
		for _, n := range c.Counts {
			sum += n
		}
		if sum != k {
			t.Errorf("composition %+v sums to %d, want %d", c.Counts, sum, k)
		}
	}
}

func TestSampleFullSizeIsTheOnlyComposition(t *testing.T) {
	planet := PlanetComposition{sectors.Forest: 2, sectors.Ocean: 1}
	results, err := Sample(sectors.DefaultTable(), loadout.Loadout{}, planet, 3)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("k equal to the planet's total size should yield exactly one composition, got %d", len(results))
	}
	if math.Abs(results[0].Probability-1) > 1e-9 {
		t.Errorf("the only composition should carry probability 1, got %v", results[0].Probability)
	}
}

func TestSampleZeroCountTypesAreIgnored(t *testing.T) {
	planet := PlanetComposition{sectors.Forest: 3, sectors.Ocean: 0}
	results, err := Sample(sectors.DefaultTable(), loadout.Loadout{}, planet, 2)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	for _, c := range results {
		if n, ok := c.Counts[sectors.Ocean]; ok && n != 0 {
			t.Errorf("a zero-count type should never appear with a nonzero draw, got %d", n)
		}
	}
}

func TestSampleDiscoveryMultiplierBiasesTowardMatchingSectors(t *testing.T) {
	planet := PlanetComposition{sectors.Hydrocarbon: 2, sectors.Forest: 2}
	plain, err := Sample(sectors.DefaultTable(), loadout.Loadout{}, planet, 2)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	boosted, err := Sample(sectors.DefaultTable(), loadout.Loadout{Items: []loadout.ItemID{loadout.EchoSounder}}, planet, 2)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	topComposition := func(results []Composition, t sectors.Type) float64 {
		best := 0.0
		for _, c := range results {
			if float64(c.Counts[t])*c.Probability > best {
				best = float64(c.Counts[t]) * c.Probability
			}
		}
		return best
	}
	if topComposition(boosted, sectors.Hydrocarbon) < topComposition(plain, sectors.Hydrocarbon) {
		t.Error("ECHO_SOUNDER should bias composition weight toward HYDROCARBON, not away from it")
	}
}
