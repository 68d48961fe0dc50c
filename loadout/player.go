package loadout

import "go.mongodb.org/mongo-driver/v2/bson"

// Player is one member of the expedition team (spec.md §3). Ability and
// item slots may be empty (represented by the zero value ""); the pink
// fifth ability slot has no special handling here beyond "ordered sequence
// of length 5" — the calculation engine does not distinguish slot 4.
type Player struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Avatar    string        `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Abilities [5]AbilityID  `bson:"abilities" json:"abilities"`
	Items     [3]ItemID     `bson:"items" json:"items"`
	MaxHealth int           `bson:"maxHealth" json:"maxHealth"`
}

// NonEmptyAbilities returns the player's filled ability slots, in order.
func (p Player) NonEmptyAbilities() []AbilityID {
	out := make([]AbilityID, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// NonEmptyItems returns the player's filled item slots, in order.
func (p Player) NonEmptyItems() []ItemID {
	out := make([]ItemID, 0, len(p.Items))
	for _, it := range p.Items {
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}

// HasAbility reports whether the player carries ability id, after
// expanding composite abilities like SKILLFUL.
func (p Player) HasAbility(id AbilityID) bool {
	for _, a := range ExpandAbilities(p.NonEmptyAbilities()) {
		if a == id {
			return true
		}
	}
	return false
}

// HasItem reports whether the player carries item id.
func (p Player) HasItem(id ItemID) bool {
	for _, it := range p.Items {
		if it == id {
			return true
		}
	}
	return false
}

// HasFirearm reports whether the player carries at least one item in the
// Firearms set (spec.md §4.12, gates GUNMAN's bonus).
func (p Player) HasFirearm() bool {
	for _, it := range p.NonEmptyItems() {
		if _, ok := Firearms[it]; ok {
			return true
		}
	}
	return false
}

// Team is the ordered expedition party plus global toggles (spec.md §3).
type Team struct {
	Players          []Player `json:"players"`
	Mode             Mode     `json:"mode"`
	AntigravActive   bool     `json:"antigravActive"`
	CentauriActive   bool     `json:"centauriActive"`
	OxygenlessPlanet bool     `json:"oxygenlessPlanet"`
}

// Loadout is the aggregated multiset of abilities/items across the whole
// team, plus the set of active special projects (spec.md §3). This is the
// shape ModifierApplicator and EventWeightResolver consume — one Loadout
// per calculation run.
type Loadout struct {
	Abilities []AbilityID
	Items     []ItemID
	Projects  []ProjectID
}

// CombinedLoadout aggregates every player's filled ability/item slots into
// one team-wide multiset, and turns the team's active toggles into the
// corresponding project set.
func (t Team) CombinedLoadout() Loadout {
	var l Loadout
	for _, p := range t.Players {
		l.Abilities = append(l.Abilities, p.NonEmptyAbilities()...)
		l.Items = append(l.Items, p.NonEmptyItems()...)
	}
	if t.AntigravActive {
		l.Projects = append(l.Projects, AntigravPropeller)
	}
	if t.CentauriActive {
		l.Projects = append(l.Projects, CentauriBase)
	}
	return l
}

// HasAbility reports whether any player in the loadout carries ability id
// (after alias expansion).
func (l Loadout) HasAbility(id AbilityID) bool {
	return l.CountAbility(id) > 0
}

// CountAbility returns how many players effectively carry ability id,
// after expanding composite abilities (e.g. SKILLFUL counts toward both
// BOTANIC and SURVIVAL).
func (l Loadout) CountAbility(id AbilityID) int {
	n := 0
	for _, a := range ExpandAbilities(l.Abilities) {
		if a == id {
			n++
		}
	}
	return n
}

// HasItem reports whether the loadout contains at least one of item id.
func (l Loadout) HasItem(id ItemID) bool {
	return l.CountItem(id) > 0
}

// CountItem returns how many of item id the loadout contains.
func (l Loadout) CountItem(id ItemID) int {
	n := 0
	for _, it := range l.Items {
		if it == id {
			n++
		}
	}
	return n
}

// HasProject reports whether project id is active for this loadout.
func (l Loadout) HasProject(id ProjectID) bool {
	for _, p := range l.Projects {
		if p == id {
			return true
		}
	}
	return false
}

// baseMovementCapacity is the per-mode movement capacity before SPRINT
// bonuses (spec.md §4.8).
var baseMovementCapacity = map[Mode]int{
	Icarus: 9,
	Patrol: 3,
}

// MovementCapacity returns K, the number of sectors the team can visit:
// a base value per mode, plus one per SPRINT ability across the whole
// team. Sprinters count toward the bonus even if they can't personally
// participate due to oxygen (spec.md §4.8) — this function intentionally
// does not consult participation.
func (t Team) MovementCapacity() int {
	base, ok := baseMovementCapacity[t.Mode]
	if !ok {
		base = baseMovementCapacity[Icarus]
	}
	sprinters := 0
	for _, p := range t.Players {
		if p.HasAbility(Sprint) {
			sprinters++
		}
	}
	return base + sprinters
}
