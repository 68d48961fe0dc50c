// Package expedicalc computes the four-scenario probability breakdown of an
// expedition onto a planet: resource yields, fight and event damage,
// occurrence counts for every fight and negative event, and the resulting
// per-player health — all as discrete probability distributions rather
// than single expected-value numbers.
//
// Calculate is the single entry point. Everything else in this module
// (distribution, sectors, loadout, engine) is plumbing Calculate wires
// together; host applications needing finer control (explanation paths,
// per-composition detail) can call into the engine package directly.
package expedicalc

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"github.com/nicoberrocal/expedicalc/config"
	"github.com/nicoberrocal/expedicalc/engine"
	"github.com/nicoberrocal/expedicalc/loadout"
	"github.com/nicoberrocal/expedicalc/sectors"
	"github.com/nicoberrocal/expedicalc/xlog"
)

// Calculate runs the full §4 pipeline for req against game's static sector
// table and returns the four-scenario breakdown (spec.md §6).
//
// Participation (OxygenGate) is resolved once, against the planet's full
// sector sequence, before any movement-capacity sampling: oxygen
// availability is a property of the planet being explored, not of which
// particular sub-composition SectorSampler happens to retain, so every
// retained composition shares one participant list, fighting power, and
// grenade count. Only the per-sector-type engines (resources, occurrence,
// fight/event damage) vary across compositions and get mixed via
// MixingOrchestrator.
func Calculate(ctx context.Context, req Request, game config.GameData) (Result, error) {
	calcID := uuid.NewString()
	xlog.Debug("calculation started", xlog.F("calculationId", calcID), xlog.F("sectorCount", len(req.Sectors)), xlog.F("playerCount", len(req.Team.Players)))

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := ValidateRequest(req); err != nil {
		return Result{}, err
	}
	if len(req.Sectors) == 0 {
		result := emptyResult(req)
		result.CalculationID = calcID
		return result, nil
	}

	combinedLoadout := req.Team.CombinedLoadout()
	resolver := sectors.NewResolver(game.SectorTable, combinedLoadout)

	participants, excluded := engine.Gate(req.Team, req.Sectors, req.Team.OxygenlessPlanet)
	fp, grenades := loadout.FightingPower(participants, combinedLoadout.Projects)
	mods := resourceModifiersFor(combinedLoadout)

	landingCount := 0
	planet := engine.PlanetComposition{}
	for _, t := range req.Sectors {
		if t == sectors.Landing {
			landingCount++
			continue
		}
		planet[t]++
	}
	totalNonLanding := 0
	for _, n := range planet {
		totalNonLanding += n
	}

	movementCapacity := req.Team.MovementCapacity()
	if req.MovementCapacity != nil {
		movementCapacity = *req.MovementCapacity
	}

	var runs []weightedRun
	sampling := SamplingInfo{}

	var traceSectorList []sectors.Type
	var traceOut pipelineOutput

	if movementCapacity >= totalNonLanding {
		out, err := runPipeline(resolver, req.Sectors, len(participants), fp, grenades, mods)
		if err != nil {
			return Result{}, err
		}
		runs = []weightedRun{{probability: 1, out: out}}
		traceSectorList = req.Sectors
		traceOut = out
	} else {
		sampling.Enabled = true
		compositions, err := engine.Sample(game.SectorTable, combinedLoadout, planet, movementCapacity)
		if err != nil {
			return Result{}, err
		}
		sampling.CompositionCount = len(compositions)
		runs = make([]weightedRun, 0, len(compositions))
		bestProbability := -1.0
		for _, c := range compositions {
			sectorList := make([]sectors.Type, 0, movementCapacity+landingCount)
			for i := 0; i < landingCount; i++ {
				sectorList = append(sectorList, sectors.Landing)
			}
			for t, n := range c.Counts {
				for i := 0; i < n; i++ {
					sectorList = append(sectorList, t)
				}
			}
			out, err := runPipeline(resolver, sectorList, len(participants), fp, grenades, mods)
			if err != nil {
				return Result{}, err
			}
			runs = append(runs, weightedRun{probability: c.Probability, out: out})
			if c.Probability > bestProbability {
				bestProbability = c.Probability
				traceSectorList = sectorList
				traceOut = out
			}

			composition := make(map[string]int, len(c.Counts))
			for t, n := range c.Counts {
				composition[string(t)] = n
			}
			sampling.Compositions = append(sampling.Compositions, CompositionInfo{
				Composition: composition,
				Probability: c.Probability,
			})
		}
	}

	result, err := assembleResult(runs, resolver, fp, grenades, participants, req)
	if err != nil {
		return Result{}, err
	}
	if sampling.Enabled {
		result.Sampling = &sampling
	}
	result.ParticipationStatus = participationStatus(req, excluded)

	// CalculationTrace (spec.md §5.1) is built against the single most
	// probable composition's own sectorList and scenario, not the mixed
	// result, so PathSampler's exact-sum targets stay reachable from that
	// composition's own per-sector outcome menus.
	trace, err := engine.BuildTrace(resolver, traceSectorList, fp, grenades, len(participants), traceOut.fightDamageScenario, traceOut.eventDamageScenario, rngFor(req))
	if err != nil {
		return Result{}, err
	}
	result.Trace = trace

	result.CalculationID = calcID
	xlog.Debug("calculation finished", xlog.F("calculationId", calcID))
	return result, nil
}

func rngFor(req Request) *rand.Rand {
	if req.Seed == nil {
		return nil
	}
	return rand.New(rand.NewSource(*req.Seed))
}
