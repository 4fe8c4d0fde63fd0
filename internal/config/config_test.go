package config

import (
	"math"
	"path/filepath"
	"sort"
	"testing"

	"github.com/san-kum/nmrsim/internal/nmr"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Relaxivity <= 0 {
		t.Error("relaxivity should be positive")
	}
	if cfg.Radius <= 0 {
		t.Error("radius should be positive")
	}
	if len(cfg.Porosities) != 3 {
		t.Errorf("expected 3 porosities, got %d", len(cfg.Porosities))
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("sandstone")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Radius != 5.0 {
		t.Errorf("expected radius 5.0, got %f", cfg.Radius)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
	if !sort.StringsAreSorted(presets) {
		t.Errorf("expected sorted preset names, got %v", presets)
	}
}

func TestScenarios(t *testing.T) {
	cfg := DefaultConfig()
	scenarios := cfg.Scenarios()
	if len(scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(scenarios))
	}
	if scenarios[0].Label != "porosity_1" {
		t.Errorf("expected label porosity_1, got %s", scenarios[0].Label)
	}
	if scenarios[0].Porosity != 30 {
		t.Errorf("expected porosity 30, got %f", float64(scenarios[0].Porosity))
	}
}

func TestRadiusUnit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Radius = 500
	cfg.RadiusUnit = "nm"
	if r := cfg.RadiusMicrometers(); math.Abs(float64(r)-0.5) > 1e-12 {
		t.Errorf("expected 0.5 µm, got %f", float64(r))
	}
}

func TestDomainKinds(t *testing.T) {
	cfg := DefaultConfig()

	domain, err := cfg.Domain(1.0)
	if err != nil {
		t.Fatalf("geometric domain: %v", err)
	}
	if len(domain) != DefaultSamples {
		t.Errorf("expected %d samples, got %d", DefaultSamples, len(domain))
	}

	cfg.TimeDomain = TimeDomainConfig{Kind: "uniform", Samples: 100}
	domain, err = cfg.Domain(2.0)
	if err != nil {
		t.Fatalf("uniform domain: %v", err)
	}
	if math.Abs(float64(domain[len(domain)-1])-10.0) > 1e-9 {
		t.Errorf("expected uniform grid to end at 10, got %f", float64(domain[len(domain)-1]))
	}

	cfg.TimeDomain = TimeDomainConfig{Kind: "custom", Values: []float64{0.001, 0.002}}
	cfg.TimeUnit = "s"
	domain, err = cfg.Domain(2.0)
	if err != nil {
		t.Fatalf("custom domain: %v", err)
	}
	if domain[0] != nmr.Milliseconds(1) || domain[1] != nmr.Milliseconds(2) {
		t.Errorf("expected seconds converted to ms, got %v", domain)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nmrsim.yaml")

	cfg := DefaultConfig()
	cfg.Radius = 2.5
	cfg.Porosities = []float64{42}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Radius != 2.5 {
		t.Errorf("expected radius 2.5, got %f", loaded.Radius)
	}
	if len(loaded.Porosities) != 1 || loaded.Porosities[0] != 42 {
		t.Errorf("expected porosities [42], got %v", loaded.Porosities)
	}
}
