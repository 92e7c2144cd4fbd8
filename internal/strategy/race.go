package strategy

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Glocktoyou/f1-simulation/internal/sim"
	"github.com/Glocktoyou/f1-simulation/internal/track"
	"github.com/Glocktoyou/f1-simulation/internal/vehicle"
)

// Strategy is a complete race plan: compounds in order of use and the
// laps on which to pit. Compounds must number one more than pit stops.
type Strategy struct {
	Name      string
	Compounds []string
	PitLaps   []int
}

func (s Strategy) String() string {
	return fmt.Sprintf("%s: %s", s.Name, strings.Join(s.Compounds, " -> "))
}

// RaceConfig holds race-level parameters on top of the per-lap engine
// configuration.
type RaceConfig struct {
	Laps       int
	PitLoss    float64 // s lost per stop
	FuelEffect float64 // s gained per lap as fuel burns off
	Dt         float64 // engine timestep; 0 means the engine default
}

// LapResult is the strategy-level view of a single lap.
type LapResult struct {
	Lap      int     `json:"lap"`
	Compound string  `json:"compound"`
	TireAge  int     `json:"tire_age"`
	Grip     float64 `json:"grip"`
	Time     float64 `json:"time"`
	PitStop  bool    `json:"pit_stop"`
}

// RaceResult is the outcome of one simulated race.
type RaceResult struct {
	Strategy  Strategy    `json:"strategy"`
	TotalTime float64     `json:"total_time"`
	Laps      []LapResult `json:"laps"`
}

// RaceSimulator drives the lap engine lap by lap, feeding it the grip
// multiplier from the degradation model and accumulating race time. The
// engine is treated as a stateless per-lap function.
type RaceSimulator struct {
	vehicle *vehicle.Vehicle
	track   *track.Track
	cfg     RaceConfig
}

// NewRaceSimulator returns a race simulator for the given car, circuit
// and race parameters.
func NewRaceSimulator(veh *vehicle.Vehicle, trk *track.Track, cfg RaceConfig) (*RaceSimulator, error) {
	if cfg.Laps <= 0 {
		return nil, fmt.Errorf("race must have at least one lap, got %d", cfg.Laps)
	}
	if cfg.Dt == 0 {
		cfg.Dt = sim.DefaultDt
	}
	return &RaceSimulator{vehicle: veh, track: trk, cfg: cfg}, nil
}

// abrasionKey maps a circuit display name onto the abrasiveness table.
func abrasionKey(trackName string) string {
	for key := range TrackAbrasiveness {
		if strings.Contains(trackName, key) {
			return key
		}
	}
	return "Silverstone"
}

// SimulateStrategy runs a full race on the given strategy.
func (r *RaceSimulator) SimulateStrategy(ctx context.Context, s Strategy) (*RaceResult, error) {
	if len(s.Compounds) != len(s.PitLaps)+1 {
		return nil, fmt.Errorf("strategy %q: %d compounds need %d pit stops, have %d",
			s.Name, len(s.Compounds), len(s.Compounds)-1, len(s.PitLaps))
	}

	stint := 0
	tires, err := NewDegradationModel(s.Compounds[stint], abrasionKey(r.track.Name))
	if err != nil {
		return nil, err
	}

	result := &RaceResult{Strategy: s, Laps: make([]LapResult, 0, r.cfg.Laps)}

	for lap := 1; lap <= r.cfg.Laps; lap++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		pitted := false
		for _, pitLap := range s.PitLaps {
			if lap == pitLap && stint+1 < len(s.Compounds) {
				stint++
				tires, err = NewDegradationModel(s.Compounds[stint], abrasionKey(r.track.Name))
				if err != nil {
					return nil, err
				}
				result.TotalTime += r.cfg.PitLoss
				pitted = true
			}
		}

		grip := tires.GripMultiplier()
		cfg := sim.Config{Dt: r.cfg.Dt, GripScale: grip}
		lapRes, err := sim.Simulate(r.vehicle, r.track, cfg)
		if err != nil {
			return nil, err
		}

		lapTime := lapRes.LapTime - r.cfg.FuelEffect*float64(lap-1)
		result.TotalTime += lapTime
		result.Laps = append(result.Laps, LapResult{
			Lap:      lap,
			Compound: tires.Compound.Code,
			TireAge:  tires.Age(),
			Grip:     grip,
			Time:     lapTime,
			PitStop:  pitted,
		})

		tires.CompleteLap()
	}

	return result, nil
}

// Compare simulates every strategy concurrently, one goroutine per
// strategy. Each run allocates its own state, so no locking is needed
// beyond joining the results.
func (r *RaceSimulator) Compare(ctx context.Context, strategies []Strategy) ([]*RaceResult, error) {
	results := make([]*RaceResult, len(strategies))
	errs := make([]error, len(strategies))

	var wg sync.WaitGroup
	for i, s := range strategies {
		wg.Add(1)
		go func(idx int, strat Strategy) {
			defer wg.Done()
			results[idx], errs[idx] = r.SimulateStrategy(ctx, strat)
		}(i, s)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// Best returns the result with the lowest total time.
func Best(results []*RaceResult) *RaceResult {
	var best *RaceResult
	for _, res := range results {
		if best == nil || res.TotalTime < best.TotalTime {
			best = res
		}
	}
	return best
}
