package track

import (
	"errors"
	"math"
	"testing"
)

func TestAddSegmentGeometry(t *testing.T) {
	tests := []struct {
		name    string
		segment Segment
		wantErr bool
	}{
		{"straight", Segment{Name: "s", Length: 500, Radius: math.Inf(1)}, false},
		{"corner", Segment{Name: "c", Length: 100, Radius: 50}, false},
		{"zero length", Segment{Length: 0, Radius: 50}, true},
		{"negative length", Segment{Length: -10, Radius: 50}, true},
		{"infinite length", Segment{Length: math.Inf(1), Radius: 50}, true},
		{"zero radius", Segment{Length: 100, Radius: 0}, true},
		{"negative radius", Segment{Length: 100, Radius: -70}, true},
		{"nan radius", Segment{Length: 100, Radius: math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trk := New("test")
			err := trk.AddSegment(tt.segment)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGeometry) {
					t.Errorf("expected ErrInvalidGeometry, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSegmentOffsets(t *testing.T) {
	trk := New("test")
	lengths := []float64{200, 120, 300, 80}

	for i, l := range lengths {
		seg := Segment{Name: "seg", Length: l, Radius: math.Inf(1)}
		if i%2 == 1 {
			seg.Radius = 60
		}
		if err := trk.AddSegment(seg); err != nil {
			t.Fatalf("add segment %d: %v", i, err)
		}
	}

	want := 0.0
	for i, seg := range trk.Segments() {
		if seg.Start != want {
			t.Errorf("segment %d start %f, want %f", i, seg.Start, want)
		}
		want += lengths[i]
		if seg.End != want {
			t.Errorf("segment %d end %f, want %f", i, seg.End, want)
		}
	}
	if trk.TotalLength() != want {
		t.Errorf("total length %f, want %f", trk.TotalLength(), want)
	}
}

func TestLookupRoundTrip(t *testing.T) {
	trk := New("test")
	lengths := []float64{300, 100, 450, 75, 600}
	for _, l := range lengths {
		if err := trk.AddSegment(Segment{Length: l, Radius: math.Inf(1)}); err != nil {
			t.Fatal(err)
		}
	}

	// Every distance in [0, total) must resolve to exactly the segment
	// whose interval contains it.
	for d := 0.0; d < trk.TotalLength(); d += 0.5 {
		seg, err := trk.SegmentAt(d)
		if err != nil {
			t.Fatalf("lookup at %.1f: %v", d, err)
		}
		if d < seg.Start || d >= seg.End {
			t.Fatalf("lookup at %.1f returned segment [%.1f, %.1f)", d, seg.Start, seg.End)
		}
	}
}

func TestLookupBoundaries(t *testing.T) {
	trk := New("test")
	mustAdd(trk, Segment{Name: "first", Length: 100, Radius: math.Inf(1)})
	mustAdd(trk, Segment{Name: "second", Length: 50, Radius: 40})

	seg, err := trk.SegmentAt(100)
	if err != nil {
		t.Fatalf("lookup at boundary: %v", err)
	}
	if seg.Name != "second" {
		t.Errorf("boundary belongs to the next segment, got %q", seg.Name)
	}

	seg, err = trk.SegmentAt(0)
	if err != nil || seg.Name != "first" {
		t.Errorf("lookup at 0 should give the first segment, got %v, %v", seg, err)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	trk := New("test")
	mustAdd(trk, Segment{Length: 150, Radius: math.Inf(1)})

	for _, d := range []float64{-1, -0.001, 150, 151, math.NaN()} {
		if _, err := trk.SegmentAt(d); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("distance %f: expected ErrOutOfRange, got %v", d, err)
		}
	}

	empty := New("empty")
	if _, err := empty.SegmentAt(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("empty track lookup: expected ErrOutOfRange, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	empty := New("empty")
	if err := empty.Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("empty track should be invalid, got %v", err)
	}

	trk := New("ok")
	mustAdd(trk, Segment{Length: 100, Radius: math.Inf(1)})
	if err := trk.Validate(); err != nil {
		t.Errorf("valid track rejected: %v", err)
	}
}

func TestSegmentTypeDefaults(t *testing.T) {
	trk := New("test")
	mustAdd(trk, Segment{Length: 100, Radius: math.Inf(1)})
	mustAdd(trk, Segment{Length: 100, Radius: 60})

	segs := trk.Segments()
	if segs[0].Type != Straight {
		t.Errorf("untyped straight defaulted to %q", segs[0].Type)
	}
	if segs[1].Type != MediumCorner {
		t.Errorf("untyped corner defaulted to %q", segs[1].Type)
	}
}

func TestDRSZones(t *testing.T) {
	if !Straight.DRSZone() || !FastCorner.DRSZone() {
		t.Error("straights and fast corners are DRS zones")
	}
	if SlowCorner.DRSZone() || MediumCorner.DRSZone() || Chicane.DRSZone() {
		t.Error("slow sections must not be DRS zones")
	}
}
