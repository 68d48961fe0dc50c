// Package loadout models the team side of a calculation: players, their
// ability/item loadouts, global mode/project toggles, and the pure
// aggregation rules (fighting power, movement capacity) that only need
// that data — never a sector. Anything that needs to know about sector
// types (oxygen participation, sector-specific item immunity) lives in
// sectors or engine instead, to keep this package free of that dependency.
package loadout

// AbilityID is the stable identifier for a player ability (spec.md §3).
type AbilityID string

const (
	Survival  AbilityID = "SURVIVAL"
	Botanic   AbilityID = "BOTANIC"
	Pilot     AbilityID = "PILOT"
	Gunman    AbilityID = "GUNMAN"
	Diplomacy AbilityID = "DIPLOMACY"
	Sprint    AbilityID = "SPRINT"
	Skillful  AbilityID = "SKILLFUL" // alias, expands to {Botanic, Survival}
	Tracker   AbilityID = "TRACKER"
	Traitor   AbilityID = "TRAITOR"
)

// AbilityAliases expands a composite ability into the primitive abilities
// it grants (spec.md §3: "SKILLFUL alias expanding to {BOTANIC, SURVIVAL}").
var AbilityAliases = map[AbilityID][]AbilityID{
	Skillful: {Botanic, Survival},
}

// ExpandAbilities resolves aliases in ids, returning the flat multiset of
// primitive abilities. Non-alias abilities pass through unchanged.
func ExpandAbilities(ids []AbilityID) []AbilityID {
	out := make([]AbilityID, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if expansion, ok := AbilityAliases[id]; ok {
			out = append(out, expansion...)
			continue
		}
		out = append(out, id)
	}
	return out
}

// ItemID is the stable identifier for a carriable item (spec.md §3).
type ItemID string

const (
	Blaster         ItemID = "BLASTER"
	Grenade         ItemID = "GRENADE"
	PlastiniteArmor ItemID = "PLASTENITE_ARMOR"
	SpaceSuit       ItemID = "SPACE_SUIT"
	Rope            ItemID = "ROPE"
	Driller         ItemID = "DRILLER"
	WhiteFlag       ItemID = "WHITE_FLAG"
	QuadCompass     ItemID = "QUAD_COMPASS"
	TradModule      ItemID = "TRAD_MODULE"
	EchoSounder     ItemID = "ECHO_SOUNDER"

	// Additional firearms, relevant only to whether GUNMAN's bonus applies
	// (spec.md §4.12).
	MachineGun     ItemID = "MACHINE_GUN"
	NatamyRifle    ItemID = "NATAMY_RIFLE"
	SniperRifle    ItemID = "SNIPER_RIFLE"
	MissileLauncher ItemID = "MISSILE_LAUNCHER"
	HeatSeeker     ItemID = "HEAT_SEEKER"
)

// Firearms is the closed set of items that satisfy GUNMAN's "carries at
// least one firearm" precondition (spec.md §4.12).
var Firearms = map[ItemID]struct{}{
	Blaster: {}, MachineGun: {}, NatamyRifle: {}, SniperRifle: {},
	MissileLauncher: {}, HeatSeeker: {},
}

// ProjectID is the stable identifier for a team-wide special project
// (spec.md §3).
type ProjectID string

const (
	AntigravPropeller ProjectID = "ANTIGRAV_PROPELLER"
	CentauriBase      ProjectID = "CENTAURI_BASE"
)

// Mode is the team's movement mode, affecting base movement capacity
// (spec.md §4.8).
type Mode string

const (
	Icarus Mode = "ICARUS"
	Patrol Mode = "PATROL"
)
