package expedicalc

import "github.com/nicoberrocal/expedicalc/engine"

// ScenarioValues is the four-point scenario quadruple as it crosses the
// external interface (spec.md §6), with an optional full distribution for
// callers that want to render a histogram rather than four numbers.
type ScenarioValues struct {
	Optimist      float64        `json:"optimist"`
	Average       float64        `json:"average"`
	Pessimist     float64        `json:"pessimist"`
	WorstCase     float64        `json:"worstCase,omitempty"`
	OptimistProb  float64        `json:"optimistProb,omitempty"`
	AverageProb   float64        `json:"averageProb,omitempty"`
	PessimistProb float64        `json:"pessimistProb,omitempty"`
	WorstCaseProb float64        `json:"worstCaseProb,omitempty"`
	Distribution  map[int]float64 `json:"distribution,omitempty"`
}

// BasicScenario is the three-point summary negativeEvents uses (spec.md
// §6): these events have no comparator-derived worst-case variant, so no
// worst field is published.
type BasicScenario struct {
	Optimist  float64 `json:"optimist"`
	Average   float64 `json:"average"`
	Pessimist float64 `json:"pessimist"`
}

// OccurrenceValues is one fight type's (or damage event's) occurrence
// summary plus its raw PMF, keyed by occurrence count (spec.md §6
// "combat.occurrence").
type OccurrenceValues struct {
	Optimist  float64         `json:"optimist"`
	Average   float64         `json:"average"`
	Pessimist float64         `json:"pessimist"`
	PMF       map[int]float64 `json:"pmf,omitempty"`
}

// CombatResult is the "combat" section of Result (spec.md §6): per-fight-
// type occurrence, the combined team-damage scenario and its COMBINED
// damage instances, and the team's fighting stats for this run.
type CombatResult struct {
	Occurrence      map[string]OccurrenceValues       `json:"occurrence"`
	Damage          ScenarioValues                    `json:"damage"`
	DamageInstances map[string][]engine.DamageInstance `json:"damageInstances"`
	FightingPower   int                               `json:"fightingPower"`
	GrenadeCount    int                               `json:"grenadeCount"`
	PlayerCount     int                               `json:"playerCount"`
}

// EventDamageResult is the "eventDamage" section (spec.md §6): the
// non-combat damage events' occurrence and combined team-damage scenario.
type EventDamageResult struct {
	Occurrence      map[string]OccurrenceValues       `json:"occurrence"`
	Damage          ScenarioValues                    `json:"damage"`
	DamageInstances map[string][]engine.DamageInstance `json:"damageInstances"`
}

// SectorBreakdownEntry is one sector type's visit-count summary across the
// retained compositions (or the single literal run), plus its per-event
// probability table (spec.md §6).
type SectorBreakdownEntry struct {
	Count  float64            `json:"count"`
	Events map[string]float64 `json:"events"`
}

// HealthByScenario is the per-scenario final health of every participant,
// in participant order (spec.md §6).
type HealthByScenario struct {
	Optimist  []int `json:"optimist"`
	Average   []int `json:"average"`
	Pessimist []int `json:"pessimist"`
	WorstCase []int `json:"worstCase"`
}

// ParticipationEntry reports, for every team player in team order, whether
// OxygenGate let them participate and why not if it didn't (spec.md §6).
type ParticipationEntry struct {
	CanParticipate bool   `json:"canParticipate"`
	Reason         string `json:"reason,omitempty"`
}

// CompositionInfo is one retained SectorSampler composition surfaced to
// callers that want to render the sampling behind a movement-limited
// calculation (spec.md §6 "_sampling").
type CompositionInfo struct {
	Composition map[string]int `json:"composition"`
	Probability float64        `json:"probability"`
}

// SamplingInfo is present only when movement capacity forced SectorSampler
// to run (spec.md §6 "_sampling?").
type SamplingInfo struct {
	Enabled          bool              `json:"enabled"`
	CompositionCount int               `json:"compositionCount"`
	Compositions     []CompositionInfo `json:"compositions,omitempty"`
}

// Result is Calculate's output (spec.md §6): every section a caller might
// render, in one deterministic (given a request and an rng seed) value.
type Result struct {
	Resources            map[string]ScenarioValues    `json:"resources"`
	Combat               CombatResult                 `json:"combat"`
	EventDamage          EventDamageResult            `json:"eventDamage"`
	NegativeEvents       map[string]BasicScenario     `json:"negativeEvents"`
	SectorBreakdown      map[string]SectorBreakdownEntry `json:"sectorBreakdown"`
	HealthByScenario     HealthByScenario             `json:"healthByScenario"`
	EffectsByScenario    map[string][][]engine.DamageEffect `json:"effectsByScenario"`
	ParticipationStatus  []ParticipationEntry         `json:"participationStatus"`
	Sampling             *SamplingInfo                `json:"_sampling,omitempty"`

	// Trace is the optional battle-report-style explanation of how this
	// calculation's scenario values were reached, sector by sector
	// (spec.md §5.1). Always populated for a non-empty calculation; it is
	// a UI convenience, never authoritative over the PMFs/scenarios above.
	Trace *engine.CalculationTrace `json:"trace,omitempty"`

	// CalculationID correlates this result with the structured log lines
	// Calculate emits for it (spec.md §5's ambient logging concern).
	CalculationID string `json:"calculationId,omitempty"`
}
