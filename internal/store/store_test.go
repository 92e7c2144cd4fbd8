package store

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Glocktoyou/f1-simulation/internal/sim"
)

func sampleResult() *sim.Result {
	return &sim.Result{
		Track:   "Test Circuit",
		LapTime: 12.3,
		Telemetry: []sim.Record{
			{Time: 0.05, Distance: 0.5, Speed: 10, Acceleration: 9.81, Throttle: 1, Segment: "straight"},
			{Time: 0.10, Distance: 1.6, Speed: 22, Acceleration: 9.81, DRS: true, Segment: "straight"},
			{Time: 0.15, Distance: 3.1, Speed: 30, Acceleration: -19.62, Brake: 1, Segment: "corner"},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResult().Telemetry); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "time" || rows[0][len(rows[0])-1] != "segment" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][2] != "36.00" {
		t.Errorf("speed should be exported in km/h, got %s", rows[1][2])
	}
	if rows[2][7] != "1" {
		t.Errorf("DRS flag should be 1, got %s", rows[2][7])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}

	var decoded sim.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.LapTime != 12.3 || len(decoded.Telemetry) != 3 {
		t.Errorf("round trip lost data: %+v", decoded)
	}
}

func TestStoreSaveLoadList(t *testing.T) {
	st := New(t.TempDir())

	cfg := sim.DefaultConfig()
	val := sim.Validate(12.3, 12.0)

	runID, err := st.Save(sampleResult(), cfg, &val)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(runID, "test_") {
		t.Errorf("run id %q should carry the track slug", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.LapTime != 12.3 || meta.Track != "Test Circuit" {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Validation == nil || meta.Validation.ReferenceTime != 12.0 {
		t.Errorf("validation not persisted: %+v", meta.Validation)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Errorf("list should return the saved run, got %+v", runs)
	}
}

func TestStoreSaveUnnamedTrack(t *testing.T) {
	st := New(t.TempDir())

	res := sampleResult()
	res.Track = ""
	runID, err := st.Save(res, sim.DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(runID, "run_") {
		t.Errorf("unnamed track should fall back to the run_ slug, got %q", runID)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestStoreListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/never_created")
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
