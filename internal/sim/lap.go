package sim

import (
	"fmt"
	"math"

	"github.com/Glocktoyou/f1-simulation/internal/track"
	"github.com/Glocktoyou/f1-simulation/internal/vehicle"
)

// Throttle is applied below this fraction of the target speed; between it
// and the target the vehicle coasts.
const coastFraction = 0.95

// Simulate integrates one lap of the given vehicle around the given track
// and returns the telemetry trace and lap time. It is a pure function of
// (vehicle, track, config): state is allocated per call and never shared,
// so independent laps may run concurrently.
//
// The run is rejected with a configuration error before the first step if
// the timestep, grip scale, vehicle parameters, or track geometry are
// invalid.
func Simulate(veh *vehicle.Vehicle, trk *track.Track, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 || math.IsNaN(cfg.Dt) {
		return nil, &ConfigError{Field: "dt", Reason: fmt.Sprintf("%v must be positive", cfg.Dt)}
	}
	if cfg.GripScale == 0 {
		cfg.GripScale = 1
	}
	if cfg.GripScale < 0 || cfg.GripScale > 1 {
		return nil, &ConfigError{Field: "grip scale", Reason: fmt.Sprintf("%v must be in (0, 1]", cfg.GripScale)}
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = defaultMaxSteps
	}
	if err := veh.Validate(); err != nil {
		return nil, err
	}
	if err := trk.Validate(); err != nil {
		return nil, err
	}

	// Work on a copy so the caller's vehicle is untouched; the per-lap
	// grip multiplier composes with whatever scale the vehicle carries.
	work := *veh
	work.GripScale = veh.GripScale * cfg.GripScale

	// Backward pass: per-segment corner-speed caps, then braking-limited
	// entry caps propagated toward the start line.
	caps := cornerCaps(&work, trk)
	entry := entryCaps(&work, trk, caps)

	segments := trk.Segments()
	total := trk.TotalLength()

	result := &Result{
		Track:     trk.Name,
		Telemetry: make([]Record, 0, int(total/(cfg.Dt*40))+16),
	}

	var elapsed, distance, velocity float64

	for step := 0; step < cfg.MaxSteps; step++ {
		if distance >= total {
			result.LapTime = elapsed
			return result, nil
		}

		idx, err := trk.IndexAt(distance)
		if err != nil {
			return nil, err
		}
		seg := &segments[idx]
		mass := work.CurrentMass(distance / 1000)

		drs := work.CanUseDRS(seg.Type.DRSZone(), velocity*3.6)
		drag, downforce, _, _ := work.AeroForces(velocity, drs)

		// Target speed: the current segment's cap, tightened by the speed
		// from which the next segment's entry cap is still reachable under
		// braking over the remaining distance. The plan uses the
		// deceleration available at the entry-cap speed: downforce, and
		// with it braking force, drops as the car slows, so that is the
		// weakest braking in the zone and the bound stays conservative.
		target := caps[idx]
		if idx+1 < len(entry) && !math.IsInf(entry[idx+1], 1) {
			decel := planDecel(&work, entry[idx+1])
			remaining := seg.End - distance
			allowed := math.Sqrt(entry[idx+1]*entry[idx+1] + 2*decel*remaining)
			if allowed < target {
				target = allowed
			}
		}

		var netForce, throttle, brake float64
		switch {
		case velocity > target:
			brake = 1
			netForce = -(work.MaxBraking(velocity, downforce) + drag)
		case velocity < coastFraction*target:
			throttle = 1
			netForce = work.MaxAcceleration(velocity, downforce) - drag
		default:
			netForce = -drag
		}

		accel := netForce / mass

		var latAccel float64
		if !seg.IsStraight() {
			latAccel = velocity * velocity / seg.Radius
		}

		frontLoad, rearLoad := work.AxleLoads(accel, latAccel)

		velocity = math.Max(0, velocity+accel*cfg.Dt)
		distance += velocity * cfg.Dt
		elapsed += cfg.Dt

		result.Telemetry = append(result.Telemetry, Record{
			Time:         elapsed,
			Distance:     distance,
			Speed:        velocity,
			Acceleration: accel,
			LateralAccel: latAccel,
			Throttle:     throttle,
			Brake:        brake,
			DRS:          drs,
			Drag:         drag,
			Downforce:    downforce,
			FrontLoad:    frontLoad,
			RearLoad:     rearLoad,
			Segment:      seg.Name,
		})
	}

	if distance >= total {
		result.LapTime = elapsed
		return result, nil
	}
	return nil, fmt.Errorf("%w: %q after %d steps at %.1f m", ErrIncomplete, trk.Name, cfg.MaxSteps, distance)
}
