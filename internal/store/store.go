package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Glocktoyou/f1-simulation/internal/sim"
)

// Store persists simulation runs under a base directory, one
// subdirectory per run holding metadata.json and telemetry.csv.
type Store struct {
	baseDir string
}

// New returns a store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the base directory if needed.
func (s *Store) Init() error {
	return errors.Wrap(os.MkdirAll(s.baseDir, 0755), "init store")
}

// RunMetadata summarizes one persisted run.
type RunMetadata struct {
	ID         string          `json:"id"`
	Track      string          `json:"track"`
	Timestamp  time.Time       `json:"timestamp"`
	Dt         float64         `json:"dt"`
	GripScale  float64         `json:"grip_scale"`
	LapTime    float64         `json:"lap_time"`
	TopSpeed   float64         `json:"top_speed"`
	Validation *sim.Validation `json:"validation,omitempty"`
}

// Save persists a run and returns its id. The validation argument may be
// nil for tracks without a reference lap.
func (s *Store) Save(res *sim.Result, cfg sim.Config, val *sim.Validation) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}

	slug := "run"
	if fields := strings.Fields(res.Track); len(fields) > 0 {
		slug = strings.ToLower(fields[0])
	}
	runID := slug + "_" + uuid.NewString()[:8]
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrap(err, "create run dir")
	}

	meta := RunMetadata{
		ID:         runID,
		Track:      res.Track,
		Timestamp:  time.Now().UTC(),
		Dt:         cfg.Dt,
		GripScale:  cfg.GripScale,
		LapTime:    res.LapTime,
		TopSpeed:   res.TopSpeed(),
		Validation: val,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", errors.Wrap(err, "create metadata file")
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", errors.Wrap(err, "encode metadata")
	}

	telFile, err := os.Create(filepath.Join(runDir, "telemetry.csv"))
	if err != nil {
		return "", errors.Wrap(err, "create telemetry file")
	}
	defer telFile.Close()

	if err := WriteCSV(telFile, res.Telemetry); err != nil {
		return "", err
	}

	return runID, nil
}

// Load reads one run's metadata by id.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, errors.Wrapf(err, "load run %s", runID)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "decode run %s", runID)
	}
	return &meta, nil
}

// List returns metadata for all persisted runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "list runs")
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

// TelemetryPath returns the path of a run's telemetry csv.
func (s *Store) TelemetryPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "telemetry.csv")
}
