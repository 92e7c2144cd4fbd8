package track

import (
	"math"
	"testing"
)

func TestCircuitLengths(t *testing.T) {
	tests := []struct {
		name    string
		factory func() *Track
		length  float64
	}{
		{"silverstone", Silverstone, 5891},
		{"monaco", Monaco, 3337},
		{"spa", Spa, 7004},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trk := tt.factory()
			if math.Abs(trk.TotalLength()-tt.length) > 1e-9 {
				t.Errorf("total length %f, want %f", trk.TotalLength(), tt.length)
			}
			if err := trk.Validate(); err != nil {
				t.Errorf("circuit invalid: %v", err)
			}
			if trk.RecordTime <= 0 {
				t.Error("real circuit must carry a reference lap time")
			}
		})
	}
}

func TestCircuitsWellFormed(t *testing.T) {
	for _, name := range Names() {
		trk, err := ByName(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}

		for i, seg := range trk.Segments() {
			if seg.Length <= 0 {
				t.Errorf("%s segment %d has non-positive length", name, i)
			}
			if !seg.IsStraight() && seg.Radius <= 0 {
				t.Errorf("%s segment %d has invalid radius %f", name, i, seg.Radius)
			}
			if seg.Type == "" {
				t.Errorf("%s segment %d has no type", name, i)
			}
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, err := ByName("nordschleife"); err == nil {
		t.Error("expected error for unknown circuit")
	}
}

func TestByNameFreshInstances(t *testing.T) {
	a, _ := ByName("monaco")
	b, _ := ByName("monaco")
	if a == b {
		t.Error("factories must return fresh tracks, not a shared instance")
	}
}
