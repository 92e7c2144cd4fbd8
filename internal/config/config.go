package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Glocktoyou/f1-simulation/internal/sim"
	"github.com/Glocktoyou/f1-simulation/internal/vehicle"
)

const (
	DefaultTrack = "monza"
	DefaultDt    = sim.DefaultDt
)

// Config is a complete simulation setup: circuit selection, integration
// parameters, and vehicle trim relative to the reference car.
type Config struct {
	Track     string        `yaml:"track"`
	Dt        float64       `yaml:"dt"`
	GripScale float64       `yaml:"grip_scale"`
	Vehicle   VehicleConfig `yaml:"vehicle"`
}

// VehicleConfig adjusts the reference vehicle. Scales are multiplicative
// with 1.0 meaning the baseline; absolute fields override directly.
type VehicleConfig struct {
	MassKg         float64 `yaml:"mass_kg"`
	PowerHP        float64 `yaml:"power_hp"`
	DragScale      float64 `yaml:"drag_scale"`
	DownforceScale float64 `yaml:"downforce_scale"`
	TireScale      float64 `yaml:"tire_scale"`
}

// DefaultConfig returns the baseline setup. A fresh value every call; no
// shared instance.
func DefaultConfig() *Config {
	return &Config{
		Track:     DefaultTrack,
		Dt:        DefaultDt,
		GripScale: 1.0,
		Vehicle: VehicleConfig{
			MassKg:         798,
			PowerHP:        1000,
			DragScale:      1.0,
			DownforceScale: 1.0,
			TireScale:      1.0,
		},
	}
}

// Load reads a yaml setup file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the setup to a yaml file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildVehicle constructs the vehicle this setup describes, starting from
// the reference car.
func (c *Config) BuildVehicle() *vehicle.Vehicle {
	v := vehicle.NewF1Vehicle()

	if c.Vehicle.MassKg > 0 {
		v.Mass = c.Vehicle.MassKg
	}
	if c.Vehicle.PowerHP > 0 {
		v.MaxPower = c.Vehicle.PowerHP * 746
	}
	if c.Vehicle.DragScale > 0 {
		v.Cd *= c.Vehicle.DragScale
	}
	if c.Vehicle.DownforceScale > 0 {
		v.ClFront *= c.Vehicle.DownforceScale
		v.ClRear *= c.Vehicle.DownforceScale
	}
	if c.Vehicle.TireScale > 0 {
		v.MuPeak *= c.Vehicle.TireScale
	}
	return v
}

// SimConfig returns the engine configuration this setup describes.
func (c *Config) SimConfig() sim.Config {
	cfg := sim.DefaultConfig()
	if c.Dt != 0 {
		cfg.Dt = c.Dt
	}
	if c.GripScale != 0 {
		cfg.GripScale = c.GripScale
	}
	return cfg
}
