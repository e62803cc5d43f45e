package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scheme != "stratonovich" {
		t.Errorf("expected scheme stratonovich, got %s", cfg.Scheme)
	}
	if cfg.Paths <= 0 {
		t.Error("paths should be positive")
	}
	if cfg.DtMin >= cfg.DtMax {
		t.Error("dt_min should be below dt_max")
	}
}

func TestStepSizes(t *testing.T) {
	cfg := DefaultConfig()
	hs := cfg.StepSizes()

	if len(hs) != cfg.DtCount {
		t.Fatalf("expected %d step sizes, got %d", cfg.DtCount, len(hs))
	}
	if math.Abs(hs[0]-cfg.DtMin) > 1e-12 {
		t.Errorf("expected first step %v, got %v", cfg.DtMin, hs[0])
	}
	if math.Abs(hs[len(hs)-1]-cfg.DtMax) > 1e-12 {
		t.Errorf("expected last step %v, got %v", cfg.DtMax, hs[len(hs)-1])
	}
	for i := 1; i < len(hs); i++ {
		if hs[i] <= hs[i-1] {
			t.Error("step sizes should ascend")
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")

	cfg := DefaultConfig()
	cfg.Scheme = "ito"
	cfg.Paths = 500

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Scheme != "ito" {
		t.Errorf("expected scheme ito, got %s", loaded.Scheme)
	}
	if loaded.Paths != 500 {
		t.Errorf("expected 500 paths, got %d", loaded.Paths)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("quick")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Paths != 100 {
		t.Errorf("expected 100 paths, got %d", cfg.Paths)
	}

	// Mutating the returned copy must not change the preset table.
	cfg.Paths = 1
	if Presets["quick"].Paths != 100 {
		t.Error("preset table mutated through returned config")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets()) == 0 {
		t.Error("expected presets")
	}
}
