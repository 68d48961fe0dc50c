package sectors

import "github.com/nicoberrocal/expedicalc/loadout"

// Probabilities is a normalised per-sector event probability table: event
// name to probability in [0,1], summing to 1 (or empty if the sector's
// modified weight table has zero total weight).
type Probabilities map[EventName]float64

// Resolver is EventWeightResolver (spec.md §4.2): it turns a sector type's
// modified weight table into per-event probabilities, caching by sector
// type for the lifetime of one calculation run. A Resolver is built with
// one fixed Loadout — spec.md §4.2 notes the loadout intentionally does
// not participate in the cache key, since one calculation run uses one
// loadout throughout.
type Resolver struct {
	table   Table
	loadout loadout.Loadout
	cache   map[Type]Probabilities
}

// NewResolver builds a Resolver over the given static sector table and the
// team's combined loadout for this run. Each calculation allocates its own
// Resolver (spec.md §5: "every calculation allocates its own caches").
func NewResolver(table Table, l loadout.Loadout) *Resolver {
	return &Resolver{table: table, loadout: l, cache: make(map[Type]Probabilities)}
}

// Probabilities returns event → probability for sector type t, applying
// ModifierApplicator and normalising so the result sums to 1 (or is empty
// if every weight was removed). Results are cached per sector type.
func (r *Resolver) Probabilities(t Type) (Probabilities, error) {
	if cached, ok := r.cache[t]; ok {
		return cached, nil
	}

	cfg, err := r.table.Lookup(t)
	if err != nil {
		return nil, err
	}

	modified, err := ApplyModifiers(cfg.ExplorationEvents, t, r.loadout)
	if err != nil {
		return nil, err
	}

	total := modified.Sum()
	var probs Probabilities
	if total == 0 {
		probs = Probabilities{}
	} else {
		probs = make(Probabilities, len(modified))
		for event, weight := range modified {
			probs[event] = float64(weight) / float64(total)
		}
	}

	r.cache[t] = probs
	return probs, nil
}

// Probability returns the probability of a single event on sector type t,
// or 0 if the event does not appear in its modified table.
func (r *Resolver) Probability(t Type, event EventName) (float64, error) {
	probs, err := r.Probabilities(t)
	if err != nil {
		return 0, err
	}
	return probs[event], nil
}
