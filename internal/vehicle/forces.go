package vehicle

import (
	"fmt"
	"math"
)

const (
	// Below this speed the power limit P/v is meaningless; launch is
	// traction-limited instead of power-limited.
	launchSpeedCutoff = 5.0 // m/s

	// Fraction of total grip usable under braking (brake balance and
	// driver margin).
	brakeGripFraction = 0.85
)

// MaxAcceleration returns the largest tractive force available at the
// given speed: the lesser of the power-limited engine force and the
// grip-limited force on the driven rear axle. Rear axle load includes the
// rear share of downforce and the load transferred rearward under
// power-on acceleration, resolved with a short fixed-point refinement.
//
// At near-zero speed the power limit would divide by zero; launch is
// treated as unconstrained by power so the tire limit governs.
func (v *Vehicle) MaxAcceleration(velocity, downforceTotal float64) float64 {
	engineForce := math.Inf(1)
	if velocity > launchSpeedCutoff {
		engineForce = v.MaxPower / velocity
	}

	rearShare := v.ClRear / (v.ClFront + v.ClRear)
	rearStatic := v.Mass*Gravity*(1-v.FrontWeightDist) + downforceTotal*rearShare

	gripForce := v.MuVsNormal(rearStatic/2) * rearStatic
	for i := 0; i < 2; i++ {
		force := math.Min(engineForce, gripForce)
		accel := force / v.Mass
		rear := rearStatic + accel*v.Mass*v.CGHeight/v.Wheelbase
		gripForce = v.MuVsNormal(rear/2) * rear
	}

	return math.Min(engineForce, gripForce)
}

// MaxBraking returns the largest deceleration force the tires can
// deliver at the given speed, using the full normal load (weight plus
// downforce) scaled by the usable braking fraction.
func (v *Vehicle) MaxBraking(velocity, downforceTotal float64) float64 {
	normal := v.Mass*Gravity + downforceTotal
	mu := v.MuVsNormal(normal / 4)
	return mu * normal * brakeGripFraction
}

// CornerSpeed returns the maximum sustainable speed through a corner of
// the given radius. Downforce raises the effective vertical acceleration
// the tires push against:
//
//	v = sqrt(mu * (g + downforce/m) * r)
//
// An infinite radius means a straight and returns +Inf (no cornering
// constraint). A non-positive or NaN radius is invalid configuration.
func (v *Vehicle) CornerSpeed(radius, downforceTotal, mass float64) (float64, error) {
	if math.IsInf(radius, 1) {
		return math.Inf(1), nil
	}
	if math.IsNaN(radius) || radius <= 0 {
		return 0, fmt.Errorf("%w: corner radius %.2f must be positive or +Inf", ErrInvalidParameter, radius)
	}
	if mass <= 0 {
		return 0, fmt.Errorf("%w: mass %.2f must be positive", ErrInvalidParameter, mass)
	}

	perTire := (mass*Gravity + downforceTotal) / 4
	mu := v.MuVsNormal(perTire)
	return math.Sqrt(mu * (Gravity + downforceTotal/mass) * radius), nil
}
