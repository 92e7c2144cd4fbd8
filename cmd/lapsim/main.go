package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Glocktoyou/f1-simulation/internal/api"
	"github.com/Glocktoyou/f1-simulation/internal/config"
	"github.com/Glocktoyou/f1-simulation/internal/report"
	"github.com/Glocktoyou/f1-simulation/internal/sim"
	"github.com/Glocktoyou/f1-simulation/internal/store"
	"github.com/Glocktoyou/f1-simulation/internal/strategy"
	"github.com/Glocktoyou/f1-simulation/internal/track"
	"github.com/Glocktoyou/f1-simulation/internal/tui"
	"github.com/Glocktoyou/f1-simulation/internal/vehicle"
)

var (
	dataDir    string
	dt         float64
	gripScale  float64
	preset     string
	configFile string
	csvPath    string
	saveRun    bool
	showPlots  bool
	// Race flags
	raceLaps   int
	compounds  string
	pitLaps    string
	pitLoss    float64
	fuelEffect float64
	pitWindows string
	// Serve flags
	addr string
	// Live flags
	playSpeed float64
)

var log = logrus.New()

func main() {
	rootCmd := &cobra.Command{
		Use:   "lapsim",
		Short: "f1 lap time simulation",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lapsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [track]",
		Short: "simulate a lap",
		Args:  cobra.ExactArgs(1),
		RunE:  runLap,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep (s)")
	runCmd.Flags().Float64Var(&gripScale, "grip", 0, "grip scale (0,1]")
	runCmd.Flags().StringVar(&preset, "preset", "", "setup preset")
	runCmd.Flags().StringVar(&configFile, "config", "", "yaml config file")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "export telemetry csv to path")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "persist run to data directory")
	runCmd.Flags().BoolVar(&showPlots, "plot", true, "render ascii traces")

	tracksCmd := &cobra.Command{
		Use:   "tracks",
		Short: "list circuits",
		RunE:  listTracks,
	}

	validateCmd := &cobra.Command{
		Use:   "validate [track]",
		Short: "compare against the real lap record",
		Args:  cobra.ExactArgs(1),
		RunE:  validateTrack,
	}
	validateCmd.Flags().Float64Var(&dt, "dt", 0, "timestep (s)")
	validateCmd.Flags().StringVar(&preset, "preset", "", "setup preset")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list setup presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.PresetNames() {
				fmt.Println(name)
			}
			return nil
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print a saved run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	raceCmd := &cobra.Command{
		Use:   "race [track]",
		Short: "simulate a race with tire strategy",
		Args:  cobra.ExactArgs(1),
		RunE:  runRace,
	}
	raceCmd.Flags().IntVar(&raceLaps, "laps", 50, "race length in laps")
	raceCmd.Flags().StringVar(&compounds, "compounds", "C3,C2", "compounds in stint order")
	raceCmd.Flags().StringVar(&pitLaps, "pits", "25", "pit stop laps")
	raceCmd.Flags().Float64Var(&pitLoss, "pit-loss", 22.0, "time lost per stop (s)")
	raceCmd.Flags().Float64Var(&fuelEffect, "fuel-effect", 0.06, "s/lap gained as fuel burns")
	raceCmd.Flags().StringVar(&pitWindows, "windows", "", "search pit windows instead, e.g. 15-25 or 12-18,30-36")
	raceCmd.Flags().Float64Var(&dt, "dt", 0, "timestep (s)")

	liveCmd := &cobra.Command{
		Use:   "live [track]",
		Short: "simulate a lap and replay it in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", 0, "timestep (s)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "setup preset")
	liveCmd.Flags().Float64Var(&playSpeed, "speed", 1.0, "playback speed multiplier")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "run the http api",
		RunE: func(cmd *cobra.Command, args []string) error {
			return api.NewServer(addr, log).Listen()
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	rootCmd.AddCommand(runCmd, tracksCmd, validateCmd, presetsCmd, runsCmd, exportCmd, raceCmd, liveCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildSetup resolves the preset/config/flag layering into a vehicle and
// engine config. Flags win over the config file, which wins over the
// preset.
func buildSetup() (*vehicle.Vehicle, sim.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, ok := config.Preset(preset)
		if !ok {
			return nil, sim.Config{}, fmt.Errorf("unknown preset: %s (available: %s)",
				preset, strings.Join(config.PresetNames(), ", "))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, sim.Config{}, err
		}
		cfg = loaded
	}

	if dt != 0 {
		cfg.Dt = dt
	}
	if gripScale != 0 {
		cfg.GripScale = gripScale
	}

	return cfg.BuildVehicle(), cfg.SimConfig(), nil
}

func runLap(cmd *cobra.Command, args []string) error {
	trk, err := track.ByName(args[0])
	if err != nil {
		return err
	}

	veh, simCfg, err := buildSetup()
	if err != nil {
		return err
	}

	res, err := sim.Simulate(veh, trk, simCfg)
	if err != nil {
		return err
	}

	fmt.Println(report.LapSummary(res, trk))

	var val *sim.Validation
	if trk.RecordTime > 0 {
		v := sim.ValidateLap(res, trk)
		val = &v
		fmt.Println(report.ValidationReport(v))
	}

	if showPlots {
		fmt.Println(report.SpeedTrace(res))
		fmt.Println()
		fmt.Println(report.PedalTrace(res))
	}

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := store.WriteCSV(f, res.Telemetry); err != nil {
			return err
		}
		log.WithField("path", csvPath).Info("telemetry exported")
	}

	if saveRun {
		st := store.New(dataDir)
		runID, err := st.Save(res, simCfg, val)
		if err != nil {
			return err
		}
		log.WithField("run", runID).Info("run saved")
	}

	return nil
}

func listTracks(cmd *cobra.Command, args []string) error {
	for _, name := range track.Names() {
		trk, err := track.ByName(name)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%-12s %6.0f m  %2d segments", name, trk.TotalLength(), len(trk.Segments()))
		if trk.RecordTime > 0 {
			line += fmt.Sprintf("  record %s (%s, %d)",
				report.FormatLapTime(trk.RecordTime), trk.RecordHolder, trk.RecordYear)
		}
		fmt.Println(line)
	}
	return nil
}

func validateTrack(cmd *cobra.Command, args []string) error {
	trk, err := track.ByName(args[0])
	if err != nil {
		return err
	}
	if trk.RecordTime <= 0 {
		return fmt.Errorf("track %s has no reference lap", trk.Name)
	}

	veh, simCfg, err := buildSetup()
	if err != nil {
		return err
	}

	res, err := sim.Simulate(veh, trk, simCfg)
	if err != nil {
		return err
	}

	fmt.Println(report.ValidationReport(sim.ValidateLap(res, trk)))
	fmt.Println(report.SegmentBreakdown(res))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := store.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}
	for _, run := range runs {
		fmt.Printf("%-22s %-14s %s  %s\n",
			run.ID, run.Track, report.FormatLapTime(run.LapTime),
			run.Timestamp.Format("2006-01-02 15:04"))
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("telemetry: %s\n", st.TelemetryPath(meta.ID))
	return store.WriteJSON(os.Stdout, &sim.Result{Track: meta.Track, LapTime: meta.LapTime})
}

func parseInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad lap number %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseWindows(s string) ([]strategy.PitWindow, error) {
	parts := strings.Split(s, ",")
	out := make([]strategy.PitWindow, 0, len(parts))
	for _, part := range parts {
		var from, to int
		if _, err := fmt.Sscanf(strings.TrimSpace(part), "%d-%d", &from, &to); err != nil {
			return nil, fmt.Errorf("bad pit window %q, want from-to", part)
		}
		out = append(out, strategy.PitWindow{From: from, To: to})
	}
	return out, nil
}

func runRace(cmd *cobra.Command, args []string) error {
	trk, err := track.ByName(args[0])
	if err != nil {
		return err
	}

	veh, _, err := buildSetup()
	if err != nil {
		return err
	}

	race, err := strategy.NewRaceSimulator(veh, trk, strategy.RaceConfig{
		Laps:       raceLaps,
		PitLoss:    pitLoss,
		FuelEffect: fuelEffect,
		Dt:         dt,
	})
	if err != nil {
		return err
	}

	names := strings.Split(compounds, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	var result *strategy.RaceResult
	if pitWindows != "" {
		windows, err := parseWindows(pitWindows)
		if err != nil {
			return err
		}
		result, err = race.SearchPitWindows(context.Background(), "optimized", names, windows)
		if err != nil {
			return err
		}
	} else {
		pits, err := parseInts(pitLaps)
		if err != nil {
			return err
		}
		result, err = race.SimulateStrategy(context.Background(), strategy.Strategy{
			Name:      "cli",
			Compounds: names,
			PitLaps:   pits,
		})
		if err != nil {
			return err
		}
	}

	printRace(result)
	return nil
}

func printRace(result *strategy.RaceResult) {
	fmt.Printf("%s\n", result.Strategy)
	fmt.Printf("total: %s over %d laps\n\n", report.FormatLapTime(result.TotalTime), len(result.Laps))

	for _, lap := range result.Laps {
		marker := ""
		if lap.PitStop {
			marker = "  <- pit"
		}
		fmt.Printf("lap %2d  %s  %s age %2d  grip %.3f%s\n",
			lap.Lap, report.FormatLapTime(lap.Time), lap.Compound, lap.TireAge, lap.Grip, marker)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	trk, err := track.ByName(args[0])
	if err != nil {
		return err
	}

	veh, simCfg, err := buildSetup()
	if err != nil {
		return err
	}

	res, err := sim.Simulate(veh, trk, simCfg)
	if err != nil {
		return err
	}

	return tui.Run(res, simCfg.Dt, playSpeed)
}
