package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMapSizePixels = 800
	DefaultMapSizeMeters = 32.0
	DefaultTitle         = "roboviz"
	DefaultFrameRate     = 60
	DefaultObstacles     = 12
)

// Config holds everything the CLI needs to open a visualizer and drive
// the demo data source.
type Config struct {
	MapSizePixels  int        `yaml:"map_size_pixels"`
	MapSizeMeters  float64    `yaml:"map_size_meters"`
	Title          string     `yaml:"title"`
	ShowTrajectory bool       `yaml:"show_trajectory"`
	ZeroAngle      *float64   `yaml:"zero_angle"`
	FrameRate      int        `yaml:"frame_rate"`
	Seed           int64      `yaml:"seed"`
	Demo           DemoConfig `yaml:"demo"`
}

// DemoConfig tunes the wandering demo rover.
type DemoConfig struct {
	SpeedMPS      float64 `yaml:"speed_mps"`
	TurnRateDeg   float64 `yaml:"turn_rate_deg"`
	RevealRadiusM float64 `yaml:"reveal_radius_m"`
	Obstacles     int     `yaml:"obstacles"`
}

func DefaultConfig() *Config {
	return &Config{
		MapSizePixels: DefaultMapSizePixels,
		MapSizeMeters: DefaultMapSizeMeters,
		Title:         DefaultTitle,
		FrameRate:     DefaultFrameRate,
		Demo: DemoConfig{
			SpeedMPS:      1.0,
			TurnRateDeg:   60.0,
			RevealRadiusM: 4.0,
			Obstacles:     DefaultObstacles,
		},
	}
}

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

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
