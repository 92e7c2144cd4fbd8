package config

// Presets are named vehicle trims for common setups. Each call through
// Preset returns a fresh copy.
var presets = map[string]Config{
	"baseline": {
		Track: "monza", Dt: DefaultDt, GripScale: 1.0,
		Vehicle: VehicleConfig{MassKg: 798, PowerHP: 1000, DragScale: 1.0, DownforceScale: 1.0, TireScale: 1.0},
	},
	"low_downforce": {
		Track: "monza", Dt: DefaultDt, GripScale: 1.0,
		Vehicle: VehicleConfig{MassKg: 798, PowerHP: 1000, DragScale: 0.85, DownforceScale: 0.7, TireScale: 1.0},
	},
	"high_downforce": {
		Track: "monaco", Dt: DefaultDt, GripScale: 1.0,
		Vehicle: VehicleConfig{MassKg: 798, PowerHP: 1000, DragScale: 1.1, DownforceScale: 1.15, TireScale: 1.0},
	},
	"race_trim": {
		Track: "silverstone", Dt: DefaultDt, GripScale: 1.0,
		Vehicle: VehicleConfig{MassKg: 898, PowerHP: 1000, DragScale: 1.0, DownforceScale: 1.0, TireScale: 1.0},
	},
	"worn_tires": {
		Track: "silverstone", Dt: DefaultDt, GripScale: 0.85,
		Vehicle: VehicleConfig{MassKg: 798, PowerHP: 1000, DragScale: 1.0, DownforceScale: 1.0, TireScale: 1.0},
	},
}

// Preset returns a copy of the named preset, or false if unknown.
func Preset(name string) (*Config, bool) {
	cfg, ok := presets[name]
	if !ok {
		return nil, false
	}
	clone := cfg
	return &clone, true
}

// PresetNames lists the available presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
