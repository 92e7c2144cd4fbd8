package strategy

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownCompound indicates a compound code outside the database.
var ErrUnknownCompound = errors.New("strategy: unknown tire compound")

const (
	// Wear accumulated per lap on the C3 baseline at baseline abrasion.
	baseWearPerLap = 0.025

	// Grip lost linearly over a tire's full wear life.
	wearGripPenalty = 0.25

	// Additional grip lost across the cliff region.
	cliffGripPenalty = 0.30

	// The multiplier never drops below this; a car on destroyed tires
	// still rolls.
	minGripMultiplier = 0.50
)

// DegradationModel accumulates tire wear lap by lap and exposes the grip
// multiplier the lap engine accepts. No temperature state is modeled;
// degradation is purely wear-driven.
type DegradationModel struct {
	Compound     Compound
	Abrasiveness float64

	wear float64 // 0 (fresh) .. 1 (fully worn)
	age  int     // completed laps
}

// NewDegradationModel returns fresh tires of the given compound for the
// given circuit. Unknown circuits use baseline abrasion.
func NewDegradationModel(compoundCode, trackName string) (*DegradationModel, error) {
	compound, ok := Compounds[compoundCode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompound, compoundCode)
	}

	abrasion, ok := TrackAbrasiveness[trackName]
	if !ok {
		abrasion = 1.0
	}

	return &DegradationModel{Compound: compound, Abrasiveness: abrasion}, nil
}

// GripMultiplier returns the per-lap grip scaling in (0, 1]. Grip decays
// linearly with wear until the compound's cliff threshold, then falls
// steeply across the cliff region.
func (m *DegradationModel) GripMultiplier() float64 {
	grip := m.Compound.PeakGrip * (1 - wearGripPenalty*m.wear)

	if m.wear > m.Compound.CliffThreshold {
		over := (m.wear - m.Compound.CliffThreshold) / (1 - m.Compound.CliffThreshold)
		grip -= cliffGripPenalty * over
	}

	return math.Min(1.0, math.Max(minGripMultiplier, grip))
}

// CompleteLap advances wear by one lap.
func (m *DegradationModel) CompleteLap() {
	m.wear = math.Min(1, m.wear+baseWearPerLap*m.Compound.WearRate*m.Abrasiveness)
	m.age++
}

// Wear returns the accumulated wear fraction in [0, 1].
func (m *DegradationModel) Wear() float64 { return m.wear }

// Age returns the number of completed laps on this set.
func (m *DegradationModel) Age() int { return m.age }
