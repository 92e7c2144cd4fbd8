package track

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Domain errors for track construction and lookup.
var (
	// ErrInvalidGeometry indicates a segment with impossible geometry.
	ErrInvalidGeometry = errors.New("track: invalid segment geometry")

	// ErrOutOfRange indicates a distance query outside the track bounds.
	ErrOutOfRange = errors.New("track: distance out of range")
)

// SegmentType classifies a segment for control logic such as DRS zones.
type SegmentType string

const (
	Straight     SegmentType = "straight"
	FastCorner   SegmentType = "fast_corner"
	MediumCorner SegmentType = "medium_corner"
	SlowCorner   SegmentType = "slow_corner"
	Chicane      SegmentType = "chicane"
)

// DRSZone reports whether DRS may be armed in segments of this type.
func (t SegmentType) DRSZone() bool {
	return t == Straight || t == FastCorner
}

// Segment is one geometric piece of a circuit. Start and End are filled in
// by AddSegment from the cumulative track length.
type Segment struct {
	Name      string
	Type      SegmentType
	Start     float64 // m from the start line
	End       float64 // m from the start line
	Length    float64 // m, > 0
	Radius    float64 // m, +Inf for straights, finite > 0 for corners
	Banking   float64 // degrees
	Elevation float64 // m gained over the segment
}

// IsStraight reports whether the segment has no cornering constraint.
func (s *Segment) IsStraight() bool {
	return math.IsInf(s.Radius, 1)
}

// Track is an ordered, contiguous sequence of segments. It is built once
// with AddSegment and immutable during simulation.
type Track struct {
	Name         string
	RecordTime   float64 // s, reference lap for validation; 0 if none
	RecordHolder string
	RecordYear   int

	segments    []Segment
	starts      []float64 // cumulative start offsets for binary search
	totalLength float64
}

// New returns an empty track with the given name.
func New(name string) *Track {
	return &Track{Name: name}
}

// AddSegment appends a segment at the current end of the track. The
// segment's Start and End are derived from the lengths added so far.
// Non-positive lengths and finite non-positive radii are rejected. A zero
// radius is rejected rather than interpreted as a straight; use
// math.Inf(1) explicitly.
func (t *Track) AddSegment(s Segment) error {
	if s.Length <= 0 || math.IsNaN(s.Length) || math.IsInf(s.Length, 0) {
		return fmt.Errorf("%w: segment %q length %.2f must be positive and finite", ErrInvalidGeometry, s.Name, s.Length)
	}
	if math.IsNaN(s.Radius) || (!math.IsInf(s.Radius, 1) && s.Radius <= 0) {
		return fmt.Errorf("%w: segment %q radius %.2f must be positive or +Inf", ErrInvalidGeometry, s.Name, s.Radius)
	}
	if s.Type == "" {
		if math.IsInf(s.Radius, 1) {
			s.Type = Straight
		} else {
			s.Type = MediumCorner
		}
	}

	s.Start = t.totalLength
	s.End = t.totalLength + s.Length
	t.segments = append(t.segments, s)
	t.starts = append(t.starts, s.Start)
	t.totalLength = s.End
	return nil
}

// IndexAt returns the index of the segment whose [start, end) interval
// contains the given distance. Queries below zero or at and beyond the
// total length are out of range.
func (t *Track) IndexAt(distance float64) (int, error) {
	if len(t.segments) == 0 || distance < 0 || distance >= t.totalLength || math.IsNaN(distance) {
		return 0, fmt.Errorf("%w: %.2f m on %.2f m track", ErrOutOfRange, distance, t.totalLength)
	}
	// First start strictly greater than distance; the segment before it
	// contains the query point.
	i := sort.Search(len(t.starts), func(i int) bool { return t.starts[i] > distance })
	return i - 1, nil
}

// SegmentAt returns the segment containing the given distance.
func (t *Track) SegmentAt(distance float64) (*Segment, error) {
	i, err := t.IndexAt(distance)
	if err != nil {
		return nil, err
	}
	return &t.segments[i], nil
}

// Segments returns the ordered segment sequence. Callers must treat it as
// read-only.
func (t *Track) Segments() []Segment {
	return t.segments
}

// TotalLength returns the cumulative length of all segments in meters.
func (t *Track) TotalLength() float64 {
	return t.totalLength
}

// Validate checks structural well-formedness before simulation: a track
// must have at least one segment and positive total length.
func (t *Track) Validate() error {
	if len(t.segments) == 0 {
		return fmt.Errorf("%w: track %q has no segments", ErrInvalidGeometry, t.Name)
	}
	if t.totalLength <= 0 {
		return fmt.Errorf("%w: track %q has zero length", ErrInvalidGeometry, t.Name)
	}
	return nil
}
