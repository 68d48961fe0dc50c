package expedicalc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nicoberrocal/expedicalc/engine"
	"github.com/nicoberrocal/expedicalc/loadout"
)

func TestToSourcedExpandsCountIntoRepeatedInstances(t *testing.T) {
	inst := engine.DamageInstance{EventType: "FIGHT", Count: 3, DamagePerInstance: 2}
	out := toSourced(inst)
	assert.Len(t, out, 3)
	for _, o := range out {
		assert.Equal(t, 2, o.Damage)
		assert.Equal(t, "FIGHT", o.EventType)
	}
}

func TestToSourcedZeroInstanceIsNil(t *testing.T) {
	assert.Nil(t, toSourced(engine.DamageInstance{}))
}

func TestToSourcedZeroCountDefaultsToOne(t *testing.T) {
	inst := engine.DamageInstance{EventType: "FIGHT", DamagePerInstance: 5}
	out := toSourced(inst)
	assert.Len(t, out, 1)
}

func TestToSourcedEventDividesTeamTotalByParticipantCount(t *testing.T) {
	// eventSectorPMF bakes baseDamage*participantCount into the team total
	// for an affects-all event; toSourcedEvent must undo that before Spread
	// applies the instance to every participant, or damage triples for a
	// 3-player team instead of landing at 2 each.
	inst := engine.DamageInstance{EventType: "DISASTER_3_5", Count: 1, DamagePerInstance: 6}
	out := toSourcedEvent(inst, 3)
	assert.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Damage)
}

func TestToSourcedEventGuardsAgainstZeroParticipants(t *testing.T) {
	inst := engine.DamageInstance{EventType: "DISASTER_3_5", Count: 1, DamagePerInstance: 6}
	out := toSourcedEvent(inst, 0)
	assert.Equal(t, 6, out[0].Damage)
}

func TestPerPlayerEffectsGroupsByPlayerIndex(t *testing.T) {
	triggered := []engine.DamageEffect{
		{PlayerIndex: 0, Effect: "SURVIVAL"},
		{PlayerIndex: 0, Effect: "PLASTENITE_ARMOR"},
		{PlayerIndex: 1, Effect: "ROPE"},
	}
	out := perPlayerEffects(2, triggered)
	assert.Len(t, out[0], 2)
	assert.Len(t, out[1], 1)
}

func TestPerPlayerEffectsIgnoresOutOfRangeIndex(t *testing.T) {
	triggered := []engine.DamageEffect{{PlayerIndex: 5, Effect: "SURVIVAL"}}
	out := perPlayerEffects(2, triggered)
	assert.Len(t, out[0], 0)
	assert.Len(t, out[1], 0)
}

func TestParticipationStatusMarksExcludedPlayersWithReason(t *testing.T) {
	excludedPlayer := loadout.Player{MaxHealth: 5}
	includedPlayer := loadout.Player{MaxHealth: 10}
	req := Request{Team: loadout.Team{Players: []loadout.Player{includedPlayer, excludedPlayer}}}

	status := participationStatus(req, []loadout.Player{excludedPlayer})
	assert.True(t, status[0].CanParticipate)
	assert.False(t, status[1].CanParticipate)
	assert.NotEmpty(t, status[1].Reason)
}

func TestEmptyResultGivesEveryPlayerFullHealth(t *testing.T) {
	req := Request{Team: loadout.Team{Players: []loadout.Player{{MaxHealth: 7}, {MaxHealth: 12}}}}
	result := emptyResult(req)
	assert.Equal(t, []int{7, 12}, result.HealthByScenario.Average)
	assert.Equal(t, []int{7, 12}, result.HealthByScenario.WorstCase)
	for _, p := range result.ParticipationStatus {
		assert.True(t, p.CanParticipate)
	}
	for _, r := range result.Resources {
		assert.Zero(t, r.Average)
	}
}
