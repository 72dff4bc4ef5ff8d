package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MapSizePixels != DefaultMapSizePixels {
		t.Errorf("expected %d pixels, got %d", DefaultMapSizePixels, cfg.MapSizePixels)
	}
	if cfg.MapSizeMeters <= 0 {
		t.Error("map size in meters should be positive")
	}
	if cfg.FrameRate <= 0 {
		t.Error("frame rate should be positive")
	}
	if cfg.ZeroAngle != nil {
		t.Error("zero angle should be unset by default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roboviz.yaml")
	cfg := DefaultConfig()
	cfg.MapSizePixels = 500
	cfg.ShowTrajectory = true
	zero := 90.0
	cfg.ZeroAngle = &zero

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.MapSizePixels != 500 {
		t.Errorf("expected 500 pixels, got %d", loaded.MapSizePixels)
	}
	if !loaded.ShowTrajectory {
		t.Error("expected trajectory enabled")
	}
	if loaded.ZeroAngle == nil || *loaded.ZeroAngle != 90.0 {
		t.Errorf("expected zero angle 90, got %v", loaded.ZeroAngle)
	}
	// Fields absent from the file keep their defaults.
	if loaded.FrameRate != DefaultFrameRate {
		t.Errorf("expected default frame rate, got %d", loaded.FrameRate)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("apartment")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.MapSizePixels != 500 {
		t.Errorf("expected 500 pixels, got %d", cfg.MapSizePixels)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected at least one preset")
	}
}
