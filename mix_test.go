package expedicalc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nicoberrocal/expedicalc/distribution"
	"github.com/nicoberrocal/expedicalc/engine"
)

func distributionScenarioFixture() distribution.Scenario {
	return distribution.Scenario{Optimist: 1, Average: 3, Pessimist: 5, Worst: 9}
}

func pmfFixture() distribution.PMF {
	return distribution.PMF{0: 0.5, 5: 0.5}
}

func TestQuadrantJSONKeyRenamesWorst(t *testing.T) {
	assert.Equal(t, "worstCase", quadrantJSONKey("worst"))
	assert.Equal(t, "average", quadrantJSONKey("average"))
}

func TestToDamageInstancesWrapsEachQuadrantInASlice(t *testing.T) {
	m := map[string]engine.DamageInstance{
		"optimist": {EventType: "FIGHT", DamagePerInstance: 1},
		"worst":    {EventType: "FIGHT", DamagePerInstance: 9},
	}
	out := toDamageInstances(m)
	assert.Len(t, out["optimist"], 1)
	assert.Len(t, out["worstCase"], 1)
	assert.Equal(t, 9, out["worstCase"][0].DamagePerInstance)
}

func TestToScenarioValuesCarriesDistributionWhenRequested(t *testing.T) {
	s := distributionScenarioFixture()
	v := toScenarioValues(s, pmfFixture(), true)
	assert.Equal(t, s.Optimist, v.Optimist)
	assert.Equal(t, s.Worst, v.WorstCase)
	assert.NotEmpty(t, v.Distribution)
}

func TestToScenarioValuesOmitsDistributionWhenNotRequested(t *testing.T) {
	s := distributionScenarioFixture()
	v := toScenarioValues(s, pmfFixture(), false)
	assert.Nil(t, v.Distribution)
}

func TestToBasicScenarioDropsWorst(t *testing.T) {
	s := distributionScenarioFixture()
	b := toBasicScenario(s)
	assert.Equal(t, s.Optimist, b.Optimist)
	assert.Equal(t, s.Pessimist, b.Pessimist)
}
