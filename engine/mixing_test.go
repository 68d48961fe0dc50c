package engine

import (
	"math"
	"testing"

	"github.com/nicoberrocal/expedicalc/distribution"
	"github.com/nicoberrocal/expedicalc/sectors"
)

func TestMixResultsSingleCompositionShortcut(t *testing.T) {
	only := WeightedResult{Probability: 1, PMF: distribution.PMF{5: 1}, Scenario: distribution.Scenario{Average: 5}}
	got := MixResults([]WeightedResult{only})
	if got.Scenario.Average != 5 {
		t.Errorf("single-composition MixResults should pass through unchanged, got %+v", got)
	}
}

func TestMixResultsEmptyIsZeroValue(t *testing.T) {
	got := MixResults(nil)
	if got.Probability != 0 || got.PMF != nil || got.Scenario != (distribution.Scenario{}) || got.Instances != nil {
		t.Errorf("MixResults(nil) = %+v, want zero value", got)
	}
}

func TestMixResultsWeightedMeanOfScalars(t *testing.T) {
	a := WeightedResult{Probability: 0.5, PMF: distribution.PMF{0: 1}, Scenario: distribution.Scenario{Average: 0}}
	b := WeightedResult{Probability: 0.5, PMF: distribution.PMF{10: 1}, Scenario: distribution.Scenario{Average: 10}}
	got := MixResults([]WeightedResult{a, b})
	if math.Abs(got.Scenario.Average-5) > 1e-9 {
		t.Errorf("mixed average = %v, want 5", got.Scenario.Average)
	}
	if math.Abs(got.PMF.Mass()-1) > 1e-9 {
		t.Errorf("mixed PMF mass = %v, want 1", got.PMF.Mass())
	}
}

func TestMixResultsNearestInstancePicksClosestMatch(t *testing.T) {
	a := WeightedResult{
		Probability: 0.9,
		PMF:         distribution.PMF{0: 1},
		Scenario:    distribution.Scenario{Average: 2},
		Instances:   map[string]DamageInstance{"average": {EventType: "FIGHT", DamagePerInstance: 2}},
	}
	b := WeightedResult{
		Probability: 0.1,
		PMF:         distribution.PMF{0: 1},
		Scenario:    distribution.Scenario{Average: 20},
		Instances:   map[string]DamageInstance{"average": {EventType: "FIGHT", DamagePerInstance: 20}},
	}
	got := MixResults([]WeightedResult{a, b})
	inst := got.Instances["average"]
	// mixed average = 0.9*2 + 0.1*20 = 3.8, closest instance is a's (2) over b's (20)
	if inst.DamagePerInstance != 2 {
		t.Errorf("nearestInstance picked %v, want the instance closest to the mixed average (2)", inst.DamagePerInstance)
	}
}

func TestMixSectorBreakdownExpectedCountIsProbabilityWeighted(t *testing.T) {
	compositions := []Composition{
		{Counts: map[sectors.Type]int{sectors.Forest: 2}, Probability: 0.5},
		{Counts: map[sectors.Type]int{sectors.Forest: 4}, Probability: 0.5},
	}
	breakdown := MixSectorBreakdown(compositions)
	entry := breakdown[sectors.Forest]
	if math.Abs(entry.ExpectedCount-3) > 1e-9 {
		t.Errorf("ExpectedCount = %v, want 3", entry.ExpectedCount)
	}
	if entry.Nominal != 4 {
		t.Errorf("Nominal = %v, want 4 (largest single-composition count)", entry.Nominal)
	}
}
