package report

import (
	"github.com/guptarohit/asciigraph"

	"github.com/Glocktoyou/f1-simulation/internal/sim"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// downsample keeps the trace readable at terminal width by averaging
// consecutive samples into at most plotWidth points.
func downsample(data []float64) []float64 {
	if len(data) <= plotWidth {
		return data
	}

	bucket := float64(len(data)) / plotWidth
	out := make([]float64, 0, plotWidth)
	for i := 0; i < plotWidth; i++ {
		lo := int(float64(i) * bucket)
		hi := int(float64(i+1) * bucket)
		if hi > len(data) {
			hi = len(data)
		}
		var sum float64
		for _, v := range data[lo:hi] {
			sum += v
		}
		out = append(out, sum/float64(hi-lo))
	}
	return out
}

// SpeedTrace plots speed in km/h over the lap distance.
func SpeedTrace(res *sim.Result) string {
	data := make([]float64, len(res.Telemetry))
	for i, rec := range res.Telemetry {
		data[i] = rec.Speed * 3.6
	}
	return asciigraph.Plot(downsample(data),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("speed (km/h) over lap distance"),
	)
}

// PedalTrace plots throttle minus brake, so full throttle reads +1 and
// full braking -1.
func PedalTrace(res *sim.Result) string {
	data := make([]float64, len(res.Telemetry))
	for i, rec := range res.Telemetry {
		data[i] = rec.Throttle - rec.Brake
	}
	return asciigraph.Plot(downsample(data),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("throttle(+) / brake(-) over lap distance"),
	)
}

// LoadTrace plots front and rear axle loads in kN on one chart.
func LoadTrace(res *sim.Result) string {
	front := make([]float64, len(res.Telemetry))
	rear := make([]float64, len(res.Telemetry))
	for i, rec := range res.Telemetry {
		front[i] = rec.FrontLoad / 1000
		rear[i] = rec.RearLoad / 1000
	}
	return asciigraph.PlotMany([][]float64{downsample(front), downsample(rear)},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("axle load (kN): front, rear"),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Yellow),
	)
}
