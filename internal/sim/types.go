package sim

// Record is one immutable telemetry snapshot, appended once per
// integration step. Speeds are in m/s, forces in N, accelerations in
// m/s^2.
type Record struct {
	Time         float64 `json:"time"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Acceleration float64 `json:"acceleration"`
	LateralAccel float64 `json:"lateral_accel"`
	Throttle     float64 `json:"throttle"`
	Brake        float64 `json:"brake"`
	DRS          bool    `json:"drs"`
	Drag         float64 `json:"drag"`
	Downforce    float64 `json:"downforce"`
	FrontLoad    float64 `json:"front_load"`
	RearLoad     float64 `json:"rear_load"`
	Segment      string  `json:"segment"`
}

// Result is the output of one lap simulation: the ordered telemetry
// sequence and the total lap time.
type Result struct {
	Track     string   `json:"track"`
	LapTime   float64  `json:"lap_time"`
	Telemetry []Record `json:"telemetry"`
}

// TopSpeed returns the maximum speed reached during the lap, m/s.
func (r *Result) TopSpeed() float64 {
	top := 0.0
	for _, rec := range r.Telemetry {
		if rec.Speed > top {
			top = rec.Speed
		}
	}
	return top
}

// AverageSpeed returns the mean speed over the lap, m/s.
func (r *Result) AverageSpeed() float64 {
	if r.LapTime == 0 || len(r.Telemetry) == 0 {
		return 0
	}
	return r.Telemetry[len(r.Telemetry)-1].Distance / r.LapTime
}

// Config holds per-run integration parameters.
type Config struct {
	// Dt is the integration timestep in seconds.
	Dt float64

	// GripScale is the per-lap tire grip multiplier in (0, 1] supplied by
	// the degradation collaborator. Zero means "unset" and defaults to 1.
	GripScale float64

	// MaxSteps bounds the integration loop. Zero means the default.
	MaxSteps int
}

const (
	// DefaultDt is the integration step. Explicit Euler at this step
	// carries roughly a 0.1% per-lap error; the final partial step is not
	// overshoot-corrected, which is part of that error.
	DefaultDt = 0.05

	defaultMaxSteps = 150_000
)

// DefaultConfig returns the standard integration parameters for fresh
// tires.
func DefaultConfig() Config {
	return Config{Dt: DefaultDt, GripScale: 1, MaxSteps: defaultMaxSteps}
}
