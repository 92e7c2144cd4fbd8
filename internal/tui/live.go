package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Glocktoyou/f1-simulation/internal/sim"
)

const (
	graphWidth   = 70
	graphHeight  = 10
	speedWindow  = 400
	framesPerSec = 60
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	drsOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	brakeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model replays a recorded lap in the terminal. The playhead advances
// through the telemetry at a configurable multiple of real time.
type Model struct {
	trackName string
	lapTime   float64
	telemetry []sim.Record
	dt        float64

	playHead int
	speed    float64
	running  bool
	done     bool
}

// NewModel builds a replay over a finished lap. Speed is the playback
// multiple of real time; values outside [0.25, 16] are clamped.
func NewModel(res *sim.Result, dt, speed float64) Model {
	if speed < 0.25 {
		speed = 0.25
	}
	if speed > 16 {
		speed = 16
	}
	return Model{
		trackName: res.Track,
		lapTime:   res.LapTime,
		telemetry: res.Telemetry,
		dt:        dt,
		speed:     speed,
		running:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/framesPerSec, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and advances the playhead.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.playHead = 0
			m.done = false
			m.running = true
		case "[":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		case "]":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}
		}
		return m, nil

	case TickMsg:
		if m.running && !m.done {
			// samples of dt seconds shown at framesPerSec
			step := int(m.speed / (m.dt * framesPerSec))
			if step < 1 {
				step = 1
			}
			m.playHead += step
			if m.playHead >= len(m.telemetry) {
				m.playHead = len(m.telemetry) - 1
				m.done = true
			}
		}
		return m, tea.Tick(time.Second/framesPerSec, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) current() sim.Record {
	if len(m.telemetry) == 0 {
		return sim.Record{}
	}
	return m.telemetry[m.playHead]
}

func (m Model) speedGraph() string {
	if len(m.telemetry) == 0 {
		return asciigraph.Plot([]float64{0, 0},
			asciigraph.Height(graphHeight), asciigraph.Width(graphWidth))
	}
	lo := m.playHead - speedWindow
	if lo < 0 {
		lo = 0
	}
	data := make([]float64, 0, speedWindow)
	for _, rec := range m.telemetry[lo : m.playHead+1] {
		data = append(data, rec.Speed*3.6)
	}
	if len(data) < 2 {
		data = append(data, 0)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("speed (km/h)"),
	)
}

func (m Model) statsPanel() string {
	rec := m.current()

	var b strings.Builder
	write := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}

	write("time", fmt.Sprintf("%7.2f s / %.2f s", rec.Time, m.lapTime))
	write("distance", fmt.Sprintf("%7.0f m", rec.Distance))
	write("speed", fmt.Sprintf("%7.1f km/h", rec.Speed*3.6))
	write("long accel", fmt.Sprintf("%+7.2f g", rec.Acceleration/9.81))
	write("lat accel", fmt.Sprintf("%7.2f g", rec.LateralAccel/9.81))
	write("downforce", fmt.Sprintf("%7.1f kN", rec.Downforce/1000))
	write("segment", rec.Segment)

	pedal := "coast"
	if rec.Throttle > 0 {
		pedal = valueStyle.Render(fmt.Sprintf("throttle %.0f%%", rec.Throttle*100))
	} else if rec.Brake > 0 {
		pedal = brakeStyle.Render(fmt.Sprintf("BRAKE %.0f%%", rec.Brake*100))
	}
	b.WriteString(labelStyle.Render("pedal") + pedal + "\n")

	drs := "closed"
	if rec.DRS {
		drs = drsOnStyle.Render("OPEN")
	}
	b.WriteString(labelStyle.Render("drs") + drs + "\n")

	return statsStyle.Render(b.String())
}

func (m Model) View() string {
	status := fmt.Sprintf("replay %gx", m.speed)
	if !m.running {
		status = "paused"
	}
	if m.done {
		status = "finished"
	}

	header := headerStyle.Render(fmt.Sprintf("%s  —  %s", m.trackName, status))
	graph := graphStyle.Render(m.speedGraph())
	body := lipgloss.JoinHorizontal(lipgloss.Top, graph, m.statsPanel())
	help := helpStyle.Render("space pause · [ ] speed · r restart · q quit")

	return header + "\n" + body + "\n" + help
}

// Run launches the replay in the alternate screen.
func Run(res *sim.Result, dt, speed float64) error {
	p := tea.NewProgram(NewModel(res, dt, speed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
