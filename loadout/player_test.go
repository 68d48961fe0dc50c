package loadout

import "testing"

func TestNonEmptyAbilitiesSkipsBlankSlots(t *testing.T) {
	p := Player{Abilities: [5]AbilityID{Survival, "", Pilot, "", ""}}
	got := p.NonEmptyAbilities()
	want := []AbilityID{Survival, Pilot}
	if len(got) != len(want) {
		t.Fatalf("NonEmptyAbilities() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NonEmptyAbilities()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHasAbilityExpandsSkillful(t *testing.T) {
	p := Player{Abilities: [5]AbilityID{Skillful}}
	if !p.HasAbility(Botanic) {
		t.Error("SKILLFUL should expand to include BOTANIC")
	}
	if !p.HasAbility(Survival) {
		t.Error("SKILLFUL should expand to include SURVIVAL")
	}
	if p.HasAbility(Gunman) {
		t.Error("SKILLFUL should not grant GUNMAN")
	}
}

func TestHasItem(t *testing.T) {
	p := Player{Items: [3]ItemID{Blaster, "", Rope}}
	if !p.HasItem(Blaster) || !p.HasItem(Rope) {
		t.Error("HasItem should find both carried items")
	}
	if p.HasItem(Grenade) {
		t.Error("HasItem should not find an uncarried item")
	}
}

func TestHasFirearm(t *testing.T) {
	withBlaster := Player{Items: [3]ItemID{Blaster}}
	if !withBlaster.HasFirearm() {
		t.Error("a player carrying BLASTER should have a firearm")
	}
	withoutFirearm := Player{Items: [3]ItemID{Rope, Grenade}}
	if withoutFirearm.HasFirearm() {
		t.Error("ROPE and GRENADE are not firearms")
	}
}

func TestCombinedLoadoutAggregatesTeam(t *testing.T) {
	team := Team{
		Players: []Player{
			{Abilities: [5]AbilityID{Pilot}, Items: [3]ItemID{Blaster}},
			{Abilities: [5]AbilityID{Sprint}, Items: [3]ItemID{Grenade}},
		},
		AntigravActive: true,
	}
	l := team.CombinedLoadout()
	if !l.HasAbility(Pilot) || !l.HasAbility(Sprint) {
		t.Error("CombinedLoadout should aggregate every player's abilities")
	}
	if l.CountItem(Blaster) != 1 || l.CountItem(Grenade) != 1 {
		t.Error("CombinedLoadout should aggregate every player's items")
	}
	if !l.HasProject(AntigravPropeller) {
		t.Error("AntigravActive should add the ANTIGRAV_PROPELLER project")
	}
	if l.HasProject(CentauriBase) {
		t.Error("CentauriActive is false, CENTAURI_BASE should not be active")
	}
}

func TestMovementCapacityBaseByMode(t *testing.T) {
	icarus := Team{Mode: Icarus}
	if got := icarus.MovementCapacity(); got != 9 {
		t.Errorf("ICARUS base movement capacity = %v, want 9", got)
	}
	patrol := Team{Mode: Patrol}
	if got := patrol.MovementCapacity(); got != 3 {
		t.Errorf("PATROL base movement capacity = %v, want 3", got)
	}
}

func TestMovementCapacitySprintBonusCountsEverySprinter(t *testing.T) {
	team := Team{
		Mode: Icarus,
		Players: []Player{
			{Abilities: [5]AbilityID{Sprint}},
			{Abilities: [5]AbilityID{Sprint}},
			{Abilities: [5]AbilityID{Survival}},
		},
	}
	if got := team.MovementCapacity(); got != 11 {
		t.Errorf("MovementCapacity with two sprinters = %v, want 11 (9 base + 2)", got)
	}
}

func TestUnknownModeFallsBackToIcarusBase(t *testing.T) {
	team := Team{Mode: "BOGUS"}
	if got := team.MovementCapacity(); got != 9 {
		t.Errorf("unknown mode should fall back to ICARUS base, got %v", got)
	}
}
