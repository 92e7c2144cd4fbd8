package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Glocktoyou/f1-simulation/internal/sim"
	"github.com/Glocktoyou/f1-simulation/internal/track"
	"github.com/Glocktoyou/f1-simulation/internal/vehicle"
)

var _ = Describe("lap simulation", func() {
	var veh *vehicle.Vehicle

	BeforeEach(func() {
		veh = vehicle.NewF1Vehicle()
	})

	Describe("a pure straight", func() {
		var res *sim.Result

		BeforeEach(func() {
			trk := track.New("drag strip")
			Expect(trk.AddSegment(track.Segment{
				Name: "straight", Length: 1000, Radius: math.Inf(1),
			})).To(Succeed())

			var err error
			res, err = sim.Simulate(veh, trk, sim.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
		})

		It("accelerates monotonically until top speed", func() {
			top := 0
			for i, rec := range res.Telemetry {
				if rec.Speed > res.Telemetry[top].Speed {
					top = i
				}
			}
			for i := 0; i < top; i++ {
				Expect(res.Telemetry[i+1].Speed).To(BeNumerically(">=", res.Telemetry[i].Speed-1e-9),
					"speed dipped at step %d before top speed", i)
			}
		})

		It("covers the full track length within one step", func() {
			last := res.Telemetry[len(res.Telemetry)-1]
			Expect(last.Distance).To(BeNumerically(">=", 1000))
			Expect(last.Distance).To(BeNumerically("<", 1000+last.Speed*sim.DefaultDt+1e-9))
		})

		It("reports a positive lap time", func() {
			Expect(res.LapTime).To(BeNumerically(">", 0))
		})

		It("arms DRS once above the activation speed", func() {
			sawDRS := false
			for _, rec := range res.Telemetry {
				if rec.Speed*3.6 > vehicle.DRSMinSpeedKmh+5 {
					Expect(rec.DRS).To(BeTrue(), "DRS closed at %.0f km/h on a straight", rec.Speed*3.6)
					sawDRS = true
				}
			}
			Expect(sawDRS).To(BeTrue())
		})
	})

	Describe("a straight into a corner", func() {
		const (
			straightLen  = 300.0
			cornerRadius = 50.0
		)

		var (
			res *sim.Result
			trk *track.Track
		)

		BeforeEach(func() {
			trk = track.New("brake test")
			Expect(trk.AddSegment(track.Segment{
				Name: "approach", Length: straightLen, Radius: math.Inf(1),
			})).To(Succeed())
			Expect(trk.AddSegment(track.Segment{
				Name: "corner", Length: 100, Radius: cornerRadius, Type: track.SlowCorner,
			})).To(Succeed())

			var err error
			res, err = sim.Simulate(veh, trk, sim.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
		})

		It("arrives at the corner no faster than its corner speed", func() {
			// Resolve the corner's speed cap the same way the engine does:
			// downforce and corner speed are coupled through velocity.
			cap := 20.0
			for i := 0; i < 32; i++ {
				_, downforce, _, _ := veh.AeroForces(cap, false)
				next, err := veh.CornerSpeed(cornerRadius, downforce, veh.Mass)
				Expect(err).NotTo(HaveOccurred())
				cap = next
			}

			var entrySpeed float64
			for _, rec := range res.Telemetry {
				if rec.Distance >= straightLen {
					entrySpeed = rec.Speed
					break
				}
			}
			Expect(entrySpeed).To(BeNumerically(">", 0))
			Expect(entrySpeed).To(BeNumerically("<=", cap+0.5))
		})

		It("brakes before the corner", func() {
			braked := false
			for _, rec := range res.Telemetry {
				if rec.Distance < straightLen && rec.Brake > 0 {
					braked = true
					break
				}
			}
			Expect(braked).To(BeTrue())
		})
	})

	Describe("real circuits", func() {
		It("completes Monaco with a plausible lap time", func() {
			trk, err := track.ByName("monaco")
			Expect(err).NotTo(HaveOccurred())

			res, err := sim.Simulate(veh, trk, sim.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
			Expect(res.LapTime).To(BeNumerically(">", 30))
			Expect(res.LapTime).To(BeNumerically("<", 300))
			Expect(res.Telemetry).NotTo(BeEmpty())
		})

		It("produces one record per timestep", func() {
			trk, err := track.ByName("spa")
			Expect(err).NotTo(HaveOccurred())

			res, err := sim.Simulate(veh, trk, sim.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
			Expect(float64(len(res.Telemetry)) * sim.DefaultDt).To(BeNumerically("~", res.LapTime, sim.DefaultDt))
		})
	})
})
