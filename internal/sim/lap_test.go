package sim

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/Glocktoyou/f1-simulation/internal/track"
	"github.com/Glocktoyou/f1-simulation/internal/vehicle"
)

func simpleTrack(t *testing.T) *track.Track {
	t.Helper()
	trk := track.New("simple")
	if err := trk.AddSegment(track.Segment{Name: "straight", Length: 1000, Radius: math.Inf(1)}); err != nil {
		t.Fatal(err)
	}
	return trk
}

func TestSimulateInvalidConfig(t *testing.T) {
	veh := vehicle.NewF1Vehicle()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0}},
		{"negative dt", Config{Dt: -0.05}},
		{"nan dt", Config{Dt: math.NaN()}},
		{"negative grip", Config{Dt: 0.05, GripScale: -0.5}},
		{"grip above one", Config{Dt: 0.05, GripScale: 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Simulate(veh, simpleTrack(t), tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestSimulateInvalidTrack(t *testing.T) {
	veh := vehicle.NewF1Vehicle()
	empty := track.New("empty")

	_, err := Simulate(veh, empty, DefaultConfig())
	if !errors.Is(err, track.ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestSimulateInvalidVehicle(t *testing.T) {
	veh := vehicle.NewF1Vehicle()
	veh.Mass = 100

	_, err := Simulate(veh, simpleTrack(t), DefaultConfig())
	if !errors.Is(err, vehicle.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestSimulateIdempotent(t *testing.T) {
	trk, err := track.ByName("monza")
	if err != nil {
		t.Fatal(err)
	}

	first, err := Simulate(vehicle.NewF1Vehicle(), trk, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Simulate(vehicle.NewF1Vehicle(), trk, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if first.LapTime != second.LapTime {
		t.Errorf("lap times differ: %v vs %v", first.LapTime, second.LapTime)
	}
	if !reflect.DeepEqual(first.Telemetry, second.Telemetry) {
		t.Error("telemetry traces differ between identical runs")
	}
}

func TestSimulateDoesNotMutateVehicle(t *testing.T) {
	veh := vehicle.NewF1Vehicle()
	before := *veh

	cfg := DefaultConfig()
	cfg.GripScale = 0.8
	if _, err := Simulate(veh, simpleTrack(t), cfg); err != nil {
		t.Fatal(err)
	}

	if *veh != before {
		t.Error("Simulate mutated the caller's vehicle")
	}
}

func TestSimulateTelemetryFinite(t *testing.T) {
	trk, err := track.ByName("monaco")
	if err != nil {
		t.Fatal(err)
	}

	res, err := Simulate(vehicle.NewF1Vehicle(), trk, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	for i, rec := range res.Telemetry {
		for name, val := range map[string]float64{
			"speed":         rec.Speed,
			"acceleration":  rec.Acceleration,
			"lateral accel": rec.LateralAccel,
			"drag":          rec.Drag,
			"downforce":     rec.Downforce,
			"front load":    rec.FrontLoad,
			"rear load":     rec.RearLoad,
		} {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				t.Fatalf("step %d: %s is %f", i, name, val)
			}
		}
	}
}

func TestBrakingFromHighSpeedArrivesUnderCap(t *testing.T) {
	veh := vehicle.NewF1Vehicle()
	trk := track.New("long straight into hairpin")
	segments := []track.Segment{
		{Name: "straight", Length: 1500, Radius: math.Inf(1)},
		{Name: "hairpin", Type: track.SlowCorner, Length: 90, Radius: 12},
	}
	for _, s := range segments {
		if err := trk.AddSegment(s); err != nil {
			t.Fatal(err)
		}
	}

	res, err := Simulate(veh, trk, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	// After 1.5 km at full power the car is deep in the downforce regime,
	// where braking force collapses as it slows. The plan must account for
	// that: the car may never cross into the hairpin above the corner's
	// sustainable speed, and never exceed it inside.
	limit := cornerCaps(veh, trk)[1]
	entered := false
	for _, rec := range res.Telemetry {
		if rec.Segment != "hairpin" {
			continue
		}
		if !entered {
			entered = true
			if rec.Speed > limit+0.5 {
				t.Fatalf("entered hairpin at %.2f m/s, cap %.2f", rec.Speed, limit)
			}
		}
		if rec.Speed > limit+0.5 {
			t.Errorf("overspeed %.2f m/s inside hairpin, cap %.2f", rec.Speed, limit)
		}
	}
	if !entered {
		t.Fatal("car never reached the hairpin")
	}
}

func TestGripScaleSlowsLap(t *testing.T) {
	trk, err := track.ByName("monza")
	if err != nil {
		t.Fatal(err)
	}

	fresh, err := Simulate(vehicle.NewF1Vehicle(), trk, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	worn := DefaultConfig()
	worn.GripScale = 0.8
	degraded, err := Simulate(vehicle.NewF1Vehicle(), trk, worn)
	if err != nil {
		t.Fatal(err)
	}

	if degraded.LapTime <= fresh.LapTime {
		t.Errorf("worn tires should be slower: %f vs %f", degraded.LapTime, fresh.LapTime)
	}
}

func BenchmarkSimulateMonza(b *testing.B) {
	trk, err := track.ByName("monza")
	if err != nil {
		b.Fatal(err)
	}
	veh := vehicle.NewF1Vehicle()
	cfg := DefaultConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Simulate(veh, trk, cfg); err != nil {
			b.Fatal(err)
		}
	}
}
