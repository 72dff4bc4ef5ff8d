package config

import "sort"

var Presets = map[string]*Config{
	"apartment": {
		MapSizePixels: 500, MapSizeMeters: 10.0,
		Title: "apartment", ShowTrajectory: true, FrameRate: 60,
		Demo: DemoConfig{SpeedMPS: 0.6, TurnRateDeg: 90.0, RevealRadiusM: 2.0, Obstacles: 6},
	},
	"warehouse": {
		MapSizePixels: 800, MapSizeMeters: 32.0,
		Title: "warehouse", FrameRate: 60,
		Demo: DemoConfig{SpeedMPS: 1.5, TurnRateDeg: 45.0, RevealRadiusM: 5.0, Obstacles: 16},
	},
	"hires": {
		MapSizePixels: 1000, MapSizeMeters: 20.0,
		Title: "hires", ShowTrajectory: true, FrameRate: 30,
		Demo: DemoConfig{SpeedMPS: 1.0, TurnRateDeg: 60.0, RevealRadiusM: 3.0, Obstacles: 10},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
