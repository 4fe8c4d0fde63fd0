package config

import "sort"

// Presets cover common rock scenarios. "default" mirrors the classic
// three-porosity setup; the rest vary pore size and relaxivity.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"micrite": {
		Relaxivity: 0.005, Radius: 0.2, RadiusUnit: "um",
		Porosities: []float64{15, 10, 5}, TimeUnit: "ms",
		TimeDomain: TimeDomainConfig{Kind: "geometric", Start: 0.5, Stop: 256, Samples: 10},
	},
	"chalk": {
		Relaxivity: 0.003, Radius: 0.5, RadiusUnit: "um",
		Porosities: []float64{40, 30, 20}, TimeUnit: "ms",
		TimeDomain: TimeDomainConfig{Kind: "geometric", Start: 0.5, Stop: 512, Samples: 11},
	},
	"sandstone": {
		Relaxivity: 0.003, Radius: 5.0, RadiusUnit: "um",
		Porosities: []float64{25, 20, 15}, TimeUnit: "ms",
		TimeDomain: TimeDomainConfig{Kind: "geometric", Start: 0.5, Stop: 1024, Samples: 12},
	},
	"vuggy": {
		Relaxivity: 0.001, Radius: 50.0, RadiusUnit: "um",
		Porosities: []float64{20, 10, 5}, TimeUnit: "ms",
		TimeDomain: TimeDomainConfig{Kind: "uniform", Samples: 200},
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
