package sim

import (
	"math"

	"github.com/Glocktoyou/f1-simulation/internal/track"
	"github.com/Glocktoyou/f1-simulation/internal/vehicle"
)

const (
	// Fixed-point iteration for the downforce/corner-speed coupling. The
	// map contracts slowly for wide corners, so the budget is generous;
	// anything that has not settled by then has no reachable fixed point.
	capIterations = 64
	capTolerance  = 0.01 // m/s

	// flatOutSpeed is well above anything the power unit can reach. A cap
	// beyond it constrains nothing and collapses to +Inf.
	flatOutSpeed = 150.0 // m/s

	// Fraction of peak braking assumed by the backward pass. Planning with
	// a margin guarantees the forward pass, braking at full force, arrives
	// at each corner under its cap.
	planBrakingFraction = 0.9
)

// cornerCaps computes the maximum sustainable speed for every segment.
// Corner speed depends on downforce, which depends on speed; the loop
// resolves the coupling by fixed-point iteration from a low trial speed.
// Straights carry no constraint and get +Inf.
//
// For wide corners the iteration map is expansive: every extra m/s of
// speed buys enough downforce to sustain more than one extra m/s, so no
// finite cap exists and the corner is flat-out. A run that exhausts the
// iteration budget without converging is exactly that case and yields
// +Inf rather than whatever speed the loop stopped at.
func cornerCaps(veh *vehicle.Vehicle, trk *track.Track) []float64 {
	segments := trk.Segments()
	caps := make([]float64, len(segments))

	for i, seg := range segments {
		if seg.IsStraight() {
			caps[i] = math.Inf(1)
			continue
		}

		v := 20.0
		converged := false
		for iter := 0; iter < capIterations; iter++ {
			_, downforce, _, _ := veh.AeroForces(v, false)
			next, err := veh.CornerSpeed(seg.Radius, downforce, veh.Mass)
			if err != nil {
				// Radii are validated at AddSegment; treat a degenerate
				// value as an unconstrained segment rather than fail here.
				next = math.Inf(1)
			}
			if next > flatOutSpeed {
				v = math.Inf(1)
				converged = true
				break
			}
			if math.Abs(next-v) < capTolerance {
				v = next
				converged = true
				break
			}
			v = next
		}
		if !converged {
			v = math.Inf(1)
		}
		caps[i] = v
	}
	return caps
}

// entryCaps propagates braking-limited speed limits backward through the
// lap. The entry cap of segment i is the highest speed at its start line
// from which the vehicle can still slow to the entry cap of segment i+1
// over segment i's length:
//
//	v_entry(i)^2 <= v_entry(i+1)^2 + 2 * a_brake * length(i)
//
// A single reverse sweep suffices because each cap already accounts for
// everything downstream of it.
func entryCaps(veh *vehicle.Vehicle, trk *track.Track, caps []float64) []float64 {
	segments := trk.Segments()
	entry := make([]float64, len(caps))
	copy(entry, caps)

	for i := len(entry) - 2; i >= 0; i-- {
		next := entry[i+1]
		if math.IsInf(next, 1) {
			continue
		}

		decel := planDecel(veh, next)
		allowed := math.Sqrt(next*next + 2*decel*segments[i].Length)
		if allowed < entry[i] {
			entry[i] = allowed
		}
	}
	return entry
}

// planDecel is the braking deceleration the backward pass plans with at
// the given speed, using the downforce available there and the planning
// margin.
func planDecel(veh *vehicle.Vehicle, speed float64) float64 {
	_, downforce, _, _ := veh.AeroForces(speed, false)
	return planBrakingFraction * veh.MaxBraking(speed, downforce) / veh.Mass
}
