package vehicle

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Gravity is the gravitational acceleration used throughout the engine, m/s^2.
	Gravity = 9.81

	// MinimumMass is the regulation minimum vehicle mass including driver, kg.
	MinimumMass = 798.0

	// fuelBurnPerKm is the simplified fuel consumption rate, kg/km.
	fuelBurnPerKm = 1.5
)

// ErrInvalidParameter indicates a vehicle parameter outside its valid range.
var ErrInvalidParameter = errors.New("vehicle: parameter out of valid bounds")

// Vehicle holds the point-mass vehicle parameters. It is treated as
// immutable for the duration of a simulation run; the only state that
// evolves during a lap is fuel mass, exposed through CurrentMass.
type Vehicle struct {
	// Mass properties
	Mass            float64 // kg, at the start line (fuel included)
	Wheelbase       float64 // m
	TrackWidth      float64 // m
	CGHeight        float64 // m
	FrontWeightDist float64 // static front weight fraction, 0..1

	// Aerodynamics
	Cd          float64 // drag coefficient
	ClFront     float64 // front downforce coefficient
	ClRear      float64 // rear downforce coefficient
	FrontalArea float64 // m^2
	AirDensity  float64 // kg/m^3

	// Powertrain
	MaxPower float64 // W

	// Tire model (Pacejka parameters)
	TireB  float64 // stiffness factor
	TireC  float64 // shape factor
	TireD  float64 // peak factor
	TireE  float64 // curvature factor
	MuPeak float64 // peak friction coefficient on fresh tires

	// GripScale is the per-lap grip multiplier in (0, 1] supplied by the
	// tire degradation collaborator. 1 means fresh tires.
	GripScale float64
}

// NewF1Vehicle returns a vehicle populated with current-regulation
// reference values. Callers get a fresh value every time; there is no
// shared default instance.
func NewF1Vehicle() *Vehicle {
	return &Vehicle{
		Mass:            798,
		Wheelbase:       3.6,
		TrackWidth:      1.8,
		CGHeight:        0.35,
		FrontWeightDist: 0.45,

		Cd:          0.70,
		ClFront:     1.8,
		ClRear:      1.7,
		FrontalArea: 1.5,
		AirDensity:  1.225,

		MaxPower: 746_000,

		TireB:  10,
		TireC:  1.9,
		TireD:  1.0,
		TireE:  0.97,
		MuPeak: 1.8,

		GripScale: 1.0,
	}
}

// Validate checks the vehicle parameters before a run. Any violation is a
// configuration error and the run must not start.
func (v *Vehicle) Validate() error {
	if v.Mass < MinimumMass {
		return fmt.Errorf("%w: mass %.1f kg below regulation minimum %.0f kg", ErrInvalidParameter, v.Mass, MinimumMass)
	}
	if v.Wheelbase <= 0 || v.TrackWidth <= 0 || v.CGHeight <= 0 {
		return fmt.Errorf("%w: geometry must be positive (wheelbase=%.2f track=%.2f cg=%.2f)", ErrInvalidParameter, v.Wheelbase, v.TrackWidth, v.CGHeight)
	}
	if v.FrontWeightDist <= 0 || v.FrontWeightDist >= 1 {
		return fmt.Errorf("%w: front weight fraction %.2f must be in (0, 1)", ErrInvalidParameter, v.FrontWeightDist)
	}
	if v.Cd <= 0 || v.FrontalArea <= 0 || v.AirDensity <= 0 {
		return fmt.Errorf("%w: aero parameters must be positive", ErrInvalidParameter)
	}
	if v.ClFront < 0 || v.ClRear < 0 || v.ClFront+v.ClRear == 0 {
		return fmt.Errorf("%w: lift coefficients must be non-negative with a positive sum", ErrInvalidParameter)
	}
	if v.MaxPower <= 0 {
		return fmt.Errorf("%w: max power %.0f W must be positive", ErrInvalidParameter, v.MaxPower)
	}
	if v.MuPeak <= 0 {
		return fmt.Errorf("%w: peak friction %.2f must be positive", ErrInvalidParameter, v.MuPeak)
	}
	if v.GripScale <= 0 || v.GripScale > 1 {
		return fmt.Errorf("%w: grip scale %.3f must be in (0, 1]", ErrInvalidParameter, v.GripScale)
	}
	return nil
}

// CurrentMass returns the vehicle mass after burning fuel over the given
// distance, floored at the regulation minimum.
func (v *Vehicle) CurrentMass(distanceKm float64) float64 {
	return math.Max(MinimumMass, v.Mass-distanceKm*fuelBurnPerKm)
}

// peakMu is the effective peak friction coefficient for the current lap,
// with the degradation multiplier applied.
func (v *Vehicle) peakMu() float64 {
	return v.MuPeak * v.GripScale
}
