package vehicle

// AxleLoads returns the normal load carried by the front and rear axles
// under the given accelerations. Longitudinal acceleration shifts load
// between the axles without changing their sum: front + rear equals
// mass * g for any input. Positive (forward) acceleration loads the rear
// axle and unloads the front.
//
// Lateral acceleration redistributes load between the inside and outside
// wheels of each axle, not between the axles; see WheelLoads.
func (v *Vehicle) AxleLoads(longAccel, latAccel float64) (front, rear float64) {
	weight := v.Mass * Gravity
	transfer := longAccel * v.Mass * v.CGHeight / v.Wheelbase

	front = weight*v.FrontWeightDist - transfer
	rear = weight*(1-v.FrontWeightDist) + transfer
	return front, rear
}

// WheelLoads refines AxleLoads to the four corners, splitting each axle
// across the track width according to lateral acceleration. Positive
// lateral acceleration loads the left side.
func (v *Vehicle) WheelLoads(longAccel, latAccel float64) (frontLeft, frontRight, rearLeft, rearRight float64) {
	front, rear := v.AxleLoads(longAccel, latAccel)
	lateral := latAccel * v.Mass * v.CGHeight / v.TrackWidth

	frontLeft = front/2 + lateral*v.FrontWeightDist
	frontRight = front/2 - lateral*v.FrontWeightDist
	rearLeft = rear/2 + lateral*(1-v.FrontWeightDist)
	rearRight = rear/2 - lateral*(1-v.FrontWeightDist)
	return frontLeft, frontRight, rearLeft, rearRight
}
