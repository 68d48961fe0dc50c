package expedicalc

import "fmt"

// InvalidInputError is returned by ValidateRequest and Calculate for
// requests rejected at entry (spec.md §7): too many players, a sector
// sequence over the planet cap, or a player with negative health.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string { return "invalid input: " + e.Msg }

// ValidateRequest implements the InvalidInput checks of spec.md §7. An
// empty sector list is valid input — Calculate treats it as
// EmptyCalculation, not an error.
func ValidateRequest(req Request) error {
	if len(req.Team.Players) > MaxPlayers {
		return &InvalidInputError{Msg: fmt.Sprintf("team has %d players, max is %d", len(req.Team.Players), MaxPlayers)}
	}
	if len(req.Sectors) > MaxSectors {
		return &InvalidInputError{Msg: fmt.Sprintf("planet has %d sectors, max is %d", len(req.Sectors), MaxSectors)}
	}
	for i, p := range req.Team.Players {
		if p.MaxHealth < 0 {
			return &InvalidInputError{Msg: fmt.Sprintf("player %d has negative max health (%d)", i, p.MaxHealth)}
		}
	}
	for i, t := range req.Sectors {
		if !t.IsValid() {
			return &InvalidInputError{Msg: fmt.Sprintf("sector %d has unknown type %q", i, t)}
		}
	}
	if req.MovementCapacity != nil && *req.MovementCapacity < 0 {
		return &InvalidInputError{Msg: "movementCapacity must not be negative"}
	}
	return nil
}
