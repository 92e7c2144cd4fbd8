package vehicle

import "math"

// Friction-vs-load breakpoints. Below UnderloadNormal the tire loses grip
// roughly in proportion to load; between the breakpoints grip is at its
// peak; above NominalNormal carcass deformation erodes it logarithmically.
const (
	UnderloadNormal = 2000.0 // N, per tire
	NominalNormal   = 5000.0 // N, per tire
	MuFloor         = 0.8
)

// TireForce evaluates the Pacejka magic formula for a single tire.
//
//	F = D * sin(C * atan(B*slip - E*(B*slip - atan(B*slip))))
//
// slip is a dimensionless ratio for longitudinal force or tan(slip angle)
// for lateral force. The result is odd-symmetric in slip and bounded in
// magnitude by the peak friction times the normal force.
func (v *Vehicle) TireForce(slip, normalForce float64) float64 {
	b := v.TireB
	c := v.TireC
	d := v.TireD * v.peakMu() * normalForce
	e := v.TireE

	bs := b * slip
	return d * math.Sin(c*math.Atan(bs-e*(bs-math.Atan(bs))))
}

// MuVsNormal returns the friction coefficient available at the given
// per-tire normal load. The curve is continuous and piecewise monotone:
// rising toward the peak below UnderloadNormal, flat at the peak through
// NominalNormal, and falling logarithmically beyond it. It never drops
// below MuFloor.
func (v *Vehicle) MuVsNormal(normalForce float64) float64 {
	base := v.peakMu()

	switch {
	case normalForce <= 0:
		return MuFloor
	case normalForce < UnderloadNormal:
		return math.Max(MuFloor, base*normalForce/UnderloadNormal)
	case normalForce <= NominalNormal:
		return base
	default:
		return math.Max(MuFloor, base*(1-0.05*math.Log10(normalForce/NominalNormal)))
	}
}

// CombinedTireForce computes longitudinal and lateral tire forces for a
// combined slip state and clamps them to the friction circle. The returned
// pair never exceeds mu * normalForce in magnitude; when the unconstrained
// forces would, both are rescaled proportionally so the force vector keeps
// its direction.
func (v *Vehicle) CombinedTireForce(slipRatio, slipAngle, normalForce float64) (fx, fy float64) {
	if normalForce <= 0 {
		return 0, 0
	}

	fx = v.TireForce(slipRatio, normalForce)
	fy = v.TireForce(math.Tan(slipAngle), normalForce)

	mu := v.MuVsNormal(normalForce)
	limit := mu * normalForce
	combined := math.Hypot(fx, fy)
	if combined > limit {
		scale := limit / combined
		fx *= scale
		fy *= scale
	}
	return fx, fy
}
