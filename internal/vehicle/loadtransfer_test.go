package vehicle

import (
	"math"
	"testing"
)

func TestAxleLoadsConserveWeight(t *testing.T) {
	v := NewF1Vehicle()
	weight := v.Mass * Gravity

	for accel := -50.0; accel <= 50.0; accel += 2.5 {
		front, rear := v.AxleLoads(accel, 0)
		if math.Abs(front+rear-weight) > 1e-9*weight {
			t.Fatalf("accel %.1f: front %f + rear %f != weight %f", accel, front, rear, weight)
		}
	}
}

func TestAxleLoadsTransferDirection(t *testing.T) {
	v := NewF1Vehicle()

	prevFront, prevRear := v.AxleLoads(-50, 0)
	for accel := -49.0; accel <= 50.0; accel += 1 {
		front, rear := v.AxleLoads(accel, 0)
		if front >= prevFront {
			t.Fatalf("front load not strictly decreasing at accel %.1f", accel)
		}
		if rear <= prevRear {
			t.Fatalf("rear load not strictly increasing at accel %.1f", accel)
		}
		prevFront, prevRear = front, rear
	}
}

func TestAxleLoadsStatic(t *testing.T) {
	v := NewF1Vehicle()

	front, rear := v.AxleLoads(0, 0)
	weight := v.Mass * Gravity

	if math.Abs(front-weight*v.FrontWeightDist) > 1e-9 {
		t.Errorf("static front load %f, want %f", front, weight*v.FrontWeightDist)
	}
	if math.Abs(rear-weight*(1-v.FrontWeightDist)) > 1e-9 {
		t.Errorf("static rear load %f, want %f", rear, weight*(1-v.FrontWeightDist))
	}
}

func TestWheelLoadsConserveAxles(t *testing.T) {
	v := NewF1Vehicle()

	for _, lat := range []float64{-30.0, 0.0, 15.0, 40.0} {
		front, rear := v.AxleLoads(10, lat)
		fl, fr, rl, rr := v.WheelLoads(10, lat)

		if math.Abs(fl+fr-front) > 1e-9 {
			t.Errorf("lat %.0f: front wheels %f != axle %f", lat, fl+fr, front)
		}
		if math.Abs(rl+rr-rear) > 1e-9 {
			t.Errorf("lat %.0f: rear wheels %f != axle %f", lat, rl+rr, rear)
		}
	}
}

func TestWheelLoadsLateralSplit(t *testing.T) {
	v := NewF1Vehicle()

	fl, fr, rl, rr := v.WheelLoads(0, 20)
	if fl <= fr || rl <= rr {
		t.Errorf("positive lateral accel should load the left side: fl=%f fr=%f rl=%f rr=%f", fl, fr, rl, rr)
	}
}
