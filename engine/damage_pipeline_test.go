package engine

import (
	"testing"

	"github.com/nicoberrocal/expedicalc/distribution"
)

func TestDamageDistributionNormalIgnoresExclusions(t *testing.T) {
	pmfFor := func(i int) distribution.PMF {
		return distribution.PMF{i + 1: 1}
	}
	normal, _ := damageDistribution(2, pmfFor, map[int]bool{0: true})
	// normal should convolve both sectors regardless of exclusions: support at 1+2=3
	if normal[3] != 1 {
		t.Errorf("normal variant should ignore exclusions, got %v", normal)
	}
}

func TestDamageDistributionWorstZeroesExcludedSectors(t *testing.T) {
	pmfFor := func(i int) distribution.PMF {
		return distribution.PMF{i + 1: 1}
	}
	_, worst := damageDistribution(2, pmfFor, map[int]bool{0: true})
	// sector 0 forced to 0, sector 1 contributes 2: support at 0+2=2
	if worst[2] != 1 {
		t.Errorf("worst variant should zero excluded sectors, got %v", worst)
	}
}

func TestDamageDistributionNoExclusionsMatches(t *testing.T) {
	pmfFor := func(i int) distribution.PMF {
		return distribution.PMF{1: 1}
	}
	normal, worst := damageDistribution(3, pmfFor, nil)
	if normal[3] != 1 || worst[3] != 1 {
		t.Errorf("with no exclusions normal and worst should match: %v vs %v", normal, worst)
	}
}
