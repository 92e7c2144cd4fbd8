package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Glocktoyou/f1-simulation/internal/config"
	"github.com/Glocktoyou/f1-simulation/internal/sim"
	"github.com/Glocktoyou/f1-simulation/internal/track"
	"github.com/Glocktoyou/f1-simulation/internal/vehicle"
)

// trackInfo is the list entry for GET /api/tracks.
type trackInfo struct {
	Name         string  `json:"name"`
	Length       float64 `json:"length_m"`
	Segments     int     `json:"segments"`
	RecordTime   float64 `json:"record_time,omitempty"`
	RecordHolder string  `json:"record_holder,omitempty"`
	RecordYear   int     `json:"record_year,omitempty"`
}

func (s *Server) handleTracks(w http.ResponseWriter, r *http.Request) {
	names := track.Names()
	infos := make([]trackInfo, 0, len(names))
	for _, name := range names {
		trk, err := track.ByName(name)
		if err != nil {
			continue
		}
		infos = append(infos, trackInfo{
			Name:         trk.Name,
			Length:       trk.TotalLength(),
			Segments:     len(trk.Segments()),
			RecordTime:   trk.RecordTime,
			RecordHolder: trk.RecordHolder,
			RecordYear:   trk.RecordYear,
		})
	}
	s.writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, config.PresetNames())
}

// simulateRequest carries the track choice plus optional setup
// overrides. Percent fields scale the baseline: 100 means unchanged.
type simulateRequest struct {
	Track            string   `json:"track"`
	Preset           string   `json:"preset,omitempty"`
	Dt               float64  `json:"dt,omitempty"`
	GripScale        float64  `json:"grip_scale,omitempty"`
	PowerHP          *float64 `json:"power_hp,omitempty"`
	MassKg           *float64 `json:"mass_kg,omitempty"`
	DownforcePercent *float64 `json:"downforce_percent,omitempty"`
	DragPercent      *float64 `json:"drag_percent,omitempty"`
	TirePercent      *float64 `json:"tire_percent,omitempty"`
	Telemetry        bool     `json:"telemetry,omitempty"`
}

// segmentSummary aggregates the trace over one track segment.
type segmentSummary struct {
	Name     string  `json:"name"`
	MinSpeed float64 `json:"min_speed_kmh"`
	MaxSpeed float64 `json:"max_speed_kmh"`
	Time     float64 `json:"time_s"`
}

// simulateResponse summarizes the lap, with the full trace only when
// asked for.
type simulateResponse struct {
	Track      string           `json:"track"`
	LapTime    float64          `json:"lap_time"`
	TopSpeed   float64          `json:"top_speed_kmh"`
	AvgSpeed   float64          `json:"avg_speed_kmh"`
	Validation *sim.Validation  `json:"validation,omitempty"`
	Segments   []segmentSummary `json:"segments"`
	Telemetry  []sim.Record     `json:"telemetry,omitempty"`
}

func summarizeSegments(telemetry []sim.Record, dt float64) []segmentSummary {
	var out []segmentSummary
	for _, rec := range telemetry {
		if len(out) == 0 || out[len(out)-1].Name != rec.Segment {
			out = append(out, segmentSummary{
				Name:     rec.Segment,
				MinSpeed: rec.Speed * 3.6,
				MaxSpeed: rec.Speed * 3.6,
			})
		}
		last := &out[len(out)-1]
		kmh := rec.Speed * 3.6
		if kmh < last.MinSpeed {
			last.MinSpeed = kmh
		}
		if kmh > last.MaxSpeed {
			last.MaxSpeed = kmh
		}
		last.Time += dt
	}
	return out
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Track == "" {
		s.writeError(w, http.StatusBadRequest, "track is required")
		return
	}

	trk, err := track.ByName(req.Track)
	if err != nil {
		s.writeError(w, http.StatusNotFound, "unknown track: "+req.Track)
		return
	}

	cfg := config.DefaultConfig()
	if req.Preset != "" {
		preset, ok := config.Preset(req.Preset)
		if !ok {
			s.writeError(w, http.StatusBadRequest, "unknown preset: "+req.Preset)
			return
		}
		cfg = preset
	}
	if req.Dt != 0 {
		cfg.Dt = req.Dt
	}
	if req.GripScale != 0 {
		cfg.GripScale = req.GripScale
	}

	veh := cfg.BuildVehicle()
	if req.PowerHP != nil {
		veh.MaxPower = *req.PowerHP * 746
	}
	if req.MassKg != nil {
		veh.Mass = *req.MassKg
	}
	if req.DownforcePercent != nil {
		veh.ClFront *= *req.DownforcePercent / 100
		veh.ClRear *= *req.DownforcePercent / 100
	}
	if req.DragPercent != nil {
		veh.Cd *= *req.DragPercent / 100
	}
	if req.TirePercent != nil {
		veh.MuPeak *= *req.TirePercent / 100
	}

	res, err := sim.Simulate(veh, trk, cfg.SimConfig())
	if err != nil {
		switch {
		case errors.Is(err, sim.ErrInvalidConfig),
			errors.Is(err, vehicle.ErrInvalidParameter),
			errors.Is(err, track.ErrInvalidGeometry):
			s.writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.logger.WithError(err).Error("simulation failed")
			s.writeError(w, http.StatusInternalServerError, "simulation failed")
		}
		return
	}

	resp := simulateResponse{
		Track:    res.Track,
		LapTime:  res.LapTime,
		TopSpeed: res.TopSpeed() * 3.6,
		AvgSpeed: res.AverageSpeed() * 3.6,
		Segments: summarizeSegments(res.Telemetry, cfg.SimConfig().Dt),
	}
	if trk.RecordTime > 0 {
		val := sim.ValidateLap(res, trk)
		resp.Validation = &val
	}
	if req.Telemetry {
		resp.Telemetry = res.Telemetry
	}

	s.writeJSON(w, http.StatusOK, resp)
}
