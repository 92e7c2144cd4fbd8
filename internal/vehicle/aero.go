package vehicle

const (
	// DRS effect: open rear wing cuts drag to 70% and rear downforce to 50%.
	drsDragFactor     = 0.7
	drsRearLiftFactor = 0.5

	// DRSMinSpeedKmh is the minimum speed for DRS activation.
	DRSMinSpeedKmh = 100.0
)

// AeroForces returns drag and downforce at the given speed. All forces
// scale with velocity squared, so they vanish at standstill. With DRS
// active, drag and rear downforce are reduced; front downforce is
// unaffected.
func (v *Vehicle) AeroForces(velocity float64, drs bool) (drag, downforceTotal, downforceFront, downforceRear float64) {
	cd := v.Cd
	clRear := v.ClRear
	if drs {
		cd *= drsDragFactor
		clRear *= drsRearLiftFactor
	}

	q := 0.5 * v.AirDensity * v.FrontalArea * velocity * velocity

	drag = cd * q
	downforceFront = v.ClFront * q
	downforceRear = clRear * q
	downforceTotal = downforceFront + downforceRear
	return drag, downforceTotal, downforceFront, downforceRear
}

// CanUseDRS implements the activation rule: the current segment must be a
// DRS zone (straight or fast corner) and the vehicle must exceed the
// minimum activation speed.
func (v *Vehicle) CanUseDRS(drsZone bool, speedKmh float64) bool {
	return drsZone && speedKmh > DRSMinSpeedKmh
}
