package expedicalc

import (
	"github.com/nicoberrocal/expedicalc/loadout"
	"github.com/nicoberrocal/expedicalc/sectors"
)

// MaxPlayers is the hard cap on team size (spec.md §7 InvalidInput: "player
// count > 8").
const MaxPlayers = 8

// MaxSectors bounds the planet a single Request may describe. It is the only
// size check: no per-sector-type multiplicity cap is enforced, and
// config.GameData carries none. This is the overall cap spec.md §3 calls out
// as "a configuration constant" — chosen here since nothing in the distilled
// spec pins a concrete number.
const MaxSectors = 64

// Request is the single entry point's input (spec.md §6): the planet laid
// out as an ordered sector sequence (LANDING included explicitly, unlike
// PlanetComposition), the expedition team with its mode and toggles already
// folded in, and an optional movement-capacity override for callers that
// don't want Team.MovementCapacity's SPRINT-derived default.
type Request struct {
	Sectors []sectors.Type `json:"sectors"`
	Team    loadout.Team   `json:"team"`

	// MovementCapacity overrides Team.MovementCapacity() when set. Most
	// callers leave this nil and let the team's mode and SPRINT count
	// determine it.
	MovementCapacity *int `json:"movementCapacity,omitempty"`

	// Seed fixes DamageSpreader's ACCIDENT_3_5 target selection for
	// reproducible health/effect breakdowns. Nil falls back to
	// engine.Spread's own default seed.
	Seed *int64 `json:"seed,omitempty"`
}
