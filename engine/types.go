// Package engine implements the calculation pipeline of spec.md §4: the
// occurrence, resource, fight, and event damage engines, the damage
// comparator and its exclusion sets, the movement-limited sector sampler
// and mixing orchestrator, the explanation-path sampler, and the final
// per-player damage spreader. Every engine here is a pure function (or a
// small value type with no shared mutable state) over a Resolver and a
// sector list — the calling convention spec.md §5 requires.
package engine

import "github.com/nicoberrocal/expedicalc/sectors"

// DamageSource attributes part of a DamageInstance back to one sector
// position (spec.md §3), used by PathSampler enrichment and surfaced to
// callers for "explanation path" rendering.
type DamageSource struct {
	SectorType  sectors.Type `json:"sectorType"`
	SectorIndex int          `json:"sectorIndex"`
	Probability float64      `json:"probability"`
	ZeroDamage  bool         `json:"zeroDamage,omitempty"`
}

// DamageInstance is one attributable chunk of damage produced by an
// engine for one scenario (spec.md §3): an event type, how many times it
// fired, the damage each instance deals, and the sector positions it could
// plausibly have come from.
type DamageInstance struct {
	EventType         string         `json:"eventType"`
	Count             int            `json:"count"`
	DamagePerInstance int            `json:"damagePerInstance"`
	Sources           []DamageSource `json:"sources"`
}

// EventSource records a sector position whose probability of firing a
// given event is nonzero (spec.md §4.3), used to attribute occurrences
// back to sectors.
type EventSource struct {
	Index       int          `json:"index"`
	SectorType  sectors.Type `json:"sectorType"`
	Probability float64      `json:"probability"`
}
