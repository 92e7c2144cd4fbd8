package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Glocktoyou/f1-simulation/internal/sim"
	"github.com/Glocktoyou/f1-simulation/internal/track"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	goodStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	badStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))
)

// FormatLapTime renders seconds as m:ss.mmm.
func FormatLapTime(seconds float64) string {
	mins := int(seconds) / 60
	return fmt.Sprintf("%d:%06.3f", mins, seconds-float64(mins)*60)
}

func row(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-14s", label)) + valueStyle.Render(value)
}

// LapSummary renders a boxed summary of a single lap.
func LapSummary(res *sim.Result, trk *track.Track) string {
	var b strings.Builder

	b.WriteString(row("Track", trk.Name))
	b.WriteString("\n")
	b.WriteString(row("Lap time", FormatLapTime(res.LapTime)))
	b.WriteString("\n")
	b.WriteString(row("Top speed", fmt.Sprintf("%.1f km/h", res.TopSpeed()*3.6)))
	b.WriteString("\n")
	b.WriteString(row("Avg speed", fmt.Sprintf("%.1f km/h", res.AverageSpeed()*3.6)))
	b.WriteString("\n")
	b.WriteString(row("Length", fmt.Sprintf("%.0f m", trk.TotalLength())))
	b.WriteString("\n")
	b.WriteString(row("Samples", fmt.Sprintf("%d", len(res.Telemetry))))

	title := titleStyle.Render("Lap Report")
	return title + "\n" + panelStyle.Render(b.String())
}

// ValidationReport renders the comparison against a real-world reference
// lap, with the error percentage banded: under 5% reads as calibrated,
// under 10% as usable, anything above as off.
func ValidationReport(val sim.Validation) string {
	var b strings.Builder

	ref := val.ReferenceTime
	b.WriteString(row("Reference", FormatLapTime(ref)))
	b.WriteString("\n")
	b.WriteString(row("Simulated", FormatLapTime(val.SimulatedTime)))
	b.WriteString("\n")

	sign := "+"
	if val.Difference < 0 {
		sign = "-"
	}
	b.WriteString(row("Delta", fmt.Sprintf("%s%.3f s", sign, math.Abs(val.Difference))))
	b.WriteString("\n")

	pct := fmt.Sprintf("%.2f%%", math.Abs(val.ErrorPercent))
	var verdict string
	switch {
	case math.Abs(val.ErrorPercent) < 5:
		verdict = goodStyle.Render(pct + "  calibrated")
	case math.Abs(val.ErrorPercent) < 10:
		verdict = warnStyle.Render(pct + "  usable")
	default:
		verdict = badStyle.Render(pct + "  off")
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", "Error")) + verdict)

	title := titleStyle.Render("Validation  " + subtleStyle.Render(val.Track))
	return title + "\n" + panelStyle.Render(b.String())
}

// SegmentBreakdown renders min/max speed per track segment from the
// telemetry trace.
func SegmentBreakdown(res *sim.Result) string {
	type span struct {
		name     string
		min, max float64
	}
	var spans []span

	for _, rec := range res.Telemetry {
		if len(spans) == 0 || spans[len(spans)-1].name != rec.Segment {
			spans = append(spans, span{name: rec.Segment, min: rec.Speed, max: rec.Speed})
			continue
		}
		last := &spans[len(spans)-1]
		last.min = math.Min(last.min, rec.Speed)
		last.max = math.Max(last.max, rec.Speed)
	}

	var b strings.Builder
	for _, s := range spans {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-24s", s.name)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%6.1f", s.min*3.6)))
		b.WriteString(subtleStyle.Render(" – "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%6.1f km/h", s.max*3.6)))
		b.WriteString("\n")
	}

	title := titleStyle.Render("Segments")
	return title + "\n" + panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
