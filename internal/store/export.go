package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/Glocktoyou/f1-simulation/internal/sim"
)

var csvHeader = []string{
	"time", "distance", "speed_kmh", "acceleration_g", "lateral_g",
	"throttle", "brake", "drs", "drag_kn", "downforce_kn",
	"front_load", "rear_load", "segment",
}

// WriteCSV streams the telemetry trace as CSV in report units: km/h for
// speed, g for accelerations, kN for aero forces.
func WriteCSV(w io.Writer, telemetry []sim.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	row := make([]string, len(csvHeader))
	for i, rec := range telemetry {
		drs := "0"
		if rec.DRS {
			drs = "1"
		}
		row[0] = strconv.FormatFloat(rec.Time, 'f', 3, 64)
		row[1] = strconv.FormatFloat(rec.Distance, 'f', 2, 64)
		row[2] = strconv.FormatFloat(rec.Speed*3.6, 'f', 2, 64)
		row[3] = strconv.FormatFloat(rec.Acceleration/9.81, 'f', 3, 64)
		row[4] = strconv.FormatFloat(rec.LateralAccel/9.81, 'f', 3, 64)
		row[5] = strconv.FormatFloat(rec.Throttle, 'f', 1, 64)
		row[6] = strconv.FormatFloat(rec.Brake, 'f', 1, 64)
		row[7] = drs
		row[8] = strconv.FormatFloat(rec.Drag/1000, 'f', 3, 64)
		row[9] = strconv.FormatFloat(rec.Downforce/1000, 'f', 3, 64)
		row[10] = strconv.FormatFloat(rec.FrontLoad, 'f', 1, 64)
		row[11] = strconv.FormatFloat(rec.RearLoad, 'f', 1, 64)
		row[12] = rec.Segment

		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write csv row %d", i)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}

// WriteJSON streams the full result, telemetry included, as indented
// JSON.
func WriteJSON(w io.Writer, res *sim.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(res), "encode result")
}
