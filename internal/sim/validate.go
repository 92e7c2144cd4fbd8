package sim

import (
	"github.com/Glocktoyou/f1-simulation/internal/track"
)

// Validation compares a simulated lap time against a recorded reference.
// Negative values mean the simulation was faster than the reference; they
// are meaningful and never clamped.
type Validation struct {
	Track         string  `json:"track,omitempty"`
	ReferenceTime float64 `json:"reference_time"`
	SimulatedTime float64 `json:"simulated_time"`
	Difference    float64 `json:"difference"`
	ErrorPercent  float64 `json:"error_percent"`
}

// Validate compares a simulated lap time against a reference time. Pure,
// no side effects.
func Validate(simulated, reference float64) Validation {
	diff := simulated - reference
	return Validation{
		ReferenceTime: reference,
		SimulatedTime: simulated,
		Difference:    diff,
		ErrorPercent:  100 * diff / reference,
	}
}

// ValidateLap compares a lap result against the track's recorded
// reference lap, labeling the result with the track name.
func ValidateLap(res *Result, trk *track.Track) Validation {
	v := Validate(res.LapTime, trk.RecordTime)
	v.Track = trk.Name
	return v
}
