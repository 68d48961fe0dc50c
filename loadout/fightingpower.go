package loadout

// abilityPowerBonus is the flat fighting-power contribution of an ability,
// before any carry conditions (spec.md §4.12). Abilities not listed
// contribute 0.
var abilityPowerBonus = map[AbilityID]int{
	Gunman: 3,
}

// itemPowerBonus is the flat fighting-power contribution of an item
// (spec.md §4.12). Items not listed (including GRENADE, which is pooled
// separately) contribute 0.
var itemPowerBonus = map[ItemID]int{
	Blaster:         2,
	MachineGun:      3,
	NatamyRifle:     3,
	SniperRifle:     4,
	MissileLauncher: 5,
	HeatSeeker:      4,
}

// centauriBlasterBonus is the per-blaster fighting-power bonus granted by
// the CENTAURI_BASE project while active (spec.md §4.12).
const centauriBlasterBonus = 1

// FightingPower aggregates the team's fighting power (FP) and grenade pool
// (G) from the given participants and active projects (spec.md §4.12).
// participants should already be filtered by oxygen gating — non-
// participating players contribute nothing to either value.
func FightingPower(participants []Player, projects []ProjectID) (fp int, grenades int) {
	fp = len(participants)
	centauriActive := false
	for _, p := range projects {
		if p == CentauriBase {
			centauriActive = true
			break
		}
	}

	for _, player := range participants {
		for _, ability := range ExpandAbilities(player.NonEmptyAbilities()) {
			bonus, ok := abilityPowerBonus[ability]
			if !ok {
				continue
			}
			if ability == Gunman && !player.HasFirearm() {
				continue
			}
			fp += bonus
		}
		for _, item := range player.NonEmptyItems() {
			fp += itemPowerBonus[item]
			if item == Grenade {
				grenades++
			}
			if item == Blaster && centauriActive {
				fp += centauriBlasterBonus
			}
		}
	}
	return fp, grenades
}
