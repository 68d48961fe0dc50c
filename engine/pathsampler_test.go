package engine

import (
	"math/rand"
	"testing"
)

func menuWithZero(nonZero ...Outcome) SectorMenu {
	zeroProb := 1.0
	for _, o := range nonZero {
		zeroProb -= o.Probability
	}
	return append(SectorMenu{{EventType: "NONE", Damage: 0, Probability: zeroProb}}, nonZero...)
}

func TestSamplePathZeroTargetTakesZeroOutcomeEverywhere(t *testing.T) {
	menus := []SectorMenu{
		menuWithZero(Outcome{EventType: "FIGHT", Damage: 5, Probability: 0.5}),
		menuWithZero(Outcome{EventType: "FIGHT", Damage: 3, Probability: 0.5}),
	}
	out, err := SamplePath(menus, 0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("SamplePath: %v", err)
	}
	for _, o := range out {
		if o.Damage != 0 {
			t.Errorf("target 0 should pick only zero-damage outcomes, got %+v", o)
		}
	}
}

func TestSamplePathSumsExactlyToTarget(t *testing.T) {
	menus := []SectorMenu{
		menuWithZero(Outcome{EventType: "FIGHT", Damage: 5, Probability: 0.5}),
		menuWithZero(Outcome{EventType: "FIGHT", Damage: 3, Probability: 0.5}),
	}
	out, err := SamplePath(menus, 8, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("SamplePath: %v", err)
	}
	sum := 0
	for _, o := range out {
		sum += o.Damage
	}
	if sum != 8 {
		t.Errorf("sampled path sums to %d, want 8", sum)
	}
}

func TestSamplePathUnreachableTargetErrors(t *testing.T) {
	menus := []SectorMenu{
		menuWithZero(Outcome{EventType: "FIGHT", Damage: 5, Probability: 0.5}),
	}
	if _, err := SamplePath(menus, 100, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected an error for an unreachable target total")
	}
}

func TestSamplePathNegativeTargetErrors(t *testing.T) {
	if _, err := SamplePath(nil, -1, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected an error for a negative target")
	}
}

func TestSamplePathDeterministicWithSeed(t *testing.T) {
	menus := []SectorMenu{
		menuWithZero(Outcome{EventType: "FIGHT", Damage: 5, Probability: 0.3}, Outcome{EventType: "FIGHT", Damage: 2, Probability: 0.3}),
	}
	a, err := SamplePath(menus, 5, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("SamplePath: %v", err)
	}
	b, err := SamplePath(menus, 5, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("SamplePath: %v", err)
	}
	if len(a) != len(b) || (len(a) > 0 && a[0].Damage != b[0].Damage) {
		t.Errorf("SamplePath not deterministic for the same seed: %v vs %v", a, b)
	}
}
