package engine

import (
	"github.com/nicoberrocal/expedicalc/loadout"
	"github.com/nicoberrocal/expedicalc/sectors"
)

// Gate implements OxygenGate (spec.md §3 invariant 9): filters a team down
// to the players who may leave the ship. Gating only applies when the
// sector list contains no OXYGEN sector and the oxygenlessPlanet toggle is
// set; otherwise every player participates regardless of loadout. Excluded
// players still count toward MovementCapacity's SPRINT bonus (spec.md
// §4.8) — that computation never consults this function.
func Gate(team loadout.Team, sectorList []sectors.Type, oxygenlessPlanet bool) (participants, excluded []loadout.Player) {
	hasOxygenSector := false
	for _, t := range sectorList {
		if t == sectors.Oxygen {
			hasOxygenSector = true
			break
		}
	}
	gated := !hasOxygenSector && oxygenlessPlanet

	for _, p := range team.Players {
		if gated && !p.HasItem(loadout.SpaceSuit) {
			excluded = append(excluded, p)
			continue
		}
		participants = append(participants, p)
	}
	return participants, excluded
}
