package sectors

// Weights is a sector's raw, unnormalised exploration event table: event
// name to positive integer weight (spec.md §3). It is the type
// ModifierApplicator consumes and produces.
type Weights map[EventName]int

// Clone returns an independent copy, so callers can hand it to
// ModifierApplicator without risking a shared mutation (spec.md §4.1:
// "Never mutates input").
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// Sum returns the total weight across all events.
func (w Weights) Sum() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}

// Config is the immutable, per-SectorType static configuration: its
// exploration event weights and its discovery weight when sampling which
// sectors a movement-limited team visits (spec.md §3).
type Config struct {
	ExplorationEvents        Weights `yaml:"explorationEvents"`
	WeightAtPlanetExploration int    `yaml:"weightAtPlanetExploration"`
}

// Table maps each sector type to its static configuration. The zero value
// is not usable; construct with DefaultTable or a loaded config.GameData.
type Table map[Type]Config

// Lookup returns the configuration for t, or a ConfigError if t has no
// entry (spec.md §3 invariant: "each type has at most one base
// configuration entry" — and every type in the closed set must have one).
func (t Table) Lookup(sector Type) (Config, error) {
	cfg, ok := t[sector]
	if !ok {
		return Config{}, &ConfigError{Msg: "sector type " + string(sector) + " has no base configuration"}
	}
	return cfg, nil
}

// DefaultTable is the compiled-in static game data used when no override
// file is supplied to config.Load (spec.md §6). Weight values are a
// reasonable baseline, not a balance guarantee — hosts are expected to
// override them via YAML configuration for their own ruleset.
func DefaultTable() Table {
	return Table{
		Landing: {
			WeightAtPlanetExploration: 0, // always present, never discovered
			ExplorationEvents: Weights{
				NothingToReportEvent: 40,
				TiredEvent:           15,
				AccidentEvent:        10,
				DisasterEvent:        5,
			},
		},
		Forest: {
			WeightAtPlanetExploration: 20,
			ExplorationEvents: Weights{
				"HARVEST_2":          30,
				"HARVEST_3":          15,
				NothingToReportEvent: 25,
				AgainEvent:           10,
			},
		},
		Desert: {
			WeightAtPlanetExploration: 12,
			ExplorationEvents: Weights{
				NothingToReportEvent: 30,
				"PROVISION_1":        10,
				TiredEvent:           10,
				AgainEvent:           10,
			},
		},
		Ocean: {
			WeightAtPlanetExploration: 14,
			ExplorationEvents: Weights{
				"PROVISION_2":        25,
				"FUEL_1":             10,
				NothingToReportEvent: 25,
			},
		},
		Mountain: {
			WeightAtPlanetExploration: 10,
			ExplorationEvents: Weights{
				NothingToReportEvent: 25,
				AccidentEvent:        20,
				"FIGHT_8":            10,
			},
		},
		Cold: {
			WeightAtPlanetExploration: 10,
			ExplorationEvents: Weights{
				NothingToReportEvent: 25,
				AccidentEvent:        18,
				"HARVEST_1":          8,
			},
		},
		Hot: {
			WeightAtPlanetExploration: 10,
			ExplorationEvents: Weights{
				NothingToReportEvent: 25,
				AccidentEvent:        18,
				"PROVISION_1":        8,
			},
		},
		Insect: {
			WeightAtPlanetExploration: 10,
			ExplorationEvents: Weights{
				"FIGHT_10":           25,
				NothingToReportEvent: 20,
				DiseaseEvent:         8,
			},
		},
		Predator: {
			WeightAtPlanetExploration: 8,
			ExplorationEvents: Weights{
				"FIGHT_15":           30,
				NothingToReportEvent: 15,
			},
		},
		Intelligent: {
			WeightAtPlanetExploration: 6,
			ExplorationEvents: Weights{
				VariableFightEvent:   20,
				ArtefactEvent:        15,
				NothingToReportEvent: 20,
			},
		},
		Hydrocarbon: {
			WeightAtPlanetExploration: 9,
			ExplorationEvents: Weights{
				"FUEL_2":             30,
				NothingToReportEvent: 20,
			},
		},
		Oxygen: {
			WeightAtPlanetExploration: 9,
			ExplorationEvents: Weights{
				"OXYGEN_2":           30,
				NothingToReportEvent: 20,
			},
		},
		CristalField: {
			WeightAtPlanetExploration: 5,
			ExplorationEvents: Weights{
				StarmapEvent:         10,
				ItemLostEvent:        8,
				NothingToReportEvent: 20,
			},
		},
		Ruins: {
			WeightAtPlanetExploration: 6,
			ExplorationEvents: Weights{
				ArtefactEvent:        20,
				"FIGHT_12":           15,
				NothingToReportEvent: 15,
			},
		},
		Wreck: {
			WeightAtPlanetExploration: 6,
			ExplorationEvents: Weights{
				ItemLostEvent:        15,
				ArtefactEvent:        10,
				NothingToReportEvent: 20,
			},
		},
		Cave: {
			WeightAtPlanetExploration: 7,
			ExplorationEvents: Weights{
				MushTrapEvent:        15,
				"FIGHT_8":            10,
				NothingToReportEvent: 20,
			},
		},
		Swamp: {
			WeightAtPlanetExploration: 7,
			ExplorationEvents: Weights{
				DiseaseEvent:         15,
				"HARVEST_1":          10,
				NothingToReportEvent: 20,
			},
		},
		Mankarog: {
			WeightAtPlanetExploration: 4,
			ExplorationEvents: Weights{
				"FIGHT_18":           25,
				PlayerLostEvent:      5,
				NothingToReportEvent: 15,
			},
		},
		Ruminant: {
			WeightAtPlanetExploration: 10,
			ExplorationEvents: Weights{
				"PROVISION_3":        25,
				NothingToReportEvent: 20,
			},
		},
		FruitTrees: {
			WeightAtPlanetExploration: 12,
			ExplorationEvents: Weights{
				"HARVEST_3":          30,
				NothingToReportEvent: 20,
			},
		},
		VolcanicActivity: {
			WeightAtPlanetExploration: 5,
			ExplorationEvents: Weights{
				"FIGHT_32":           10,
				TiredEvent:           15,
				NothingToReportEvent: 15,
			},
		},
		SeismicActivity: {
			WeightAtPlanetExploration: 5,
			ExplorationEvents: Weights{
				AccidentEvent:        20,
				NothingToReportEvent: 15,
			},
		},
		StrongWind: {
			WeightAtPlanetExploration: 6,
			ExplorationEvents: Weights{
				AgainEvent:           15,
				NothingToReportEvent: 20,
			},
		},
		Lost: {
			WeightAtPlanetExploration: 3,
			ExplorationEvents: Weights{
				KillLostEvent:        10,
				AgainEvent:           20,
				NothingToReportEvent: 15,
			},
		},
	}
}
