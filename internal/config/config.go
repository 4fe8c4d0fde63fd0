package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/nmrsim/internal/nmr"
)

const (
	DefaultRelaxivity = 0.003
	DefaultRadius     = 1.0
	DefaultStart      = 0.5
	DefaultStop       = 1024.0
	DefaultSamples    = 12
)

// Config is a full input snapshot: everything the core needs to recompute
// all curves from scratch.
type Config struct {
	Relaxivity float64          `yaml:"relaxivity"` // µm/ms
	Radius     float64          `yaml:"radius"`
	RadiusUnit string           `yaml:"radius_unit"` // um or nm
	Porosities []float64        `yaml:"porosities"`  // percent, one scenario each
	TimeUnit   string           `yaml:"time_unit"`   // ms or s
	TimeDomain TimeDomainConfig `yaml:"time_domain"`
}

// TimeDomainConfig selects the acquisition grid.
type TimeDomainConfig struct {
	Kind    string    `yaml:"kind"` // geometric, uniform, or custom
	Start   float64   `yaml:"start"`
	Stop    float64   `yaml:"stop"`
	Samples int       `yaml:"samples"`
	Values  []float64 `yaml:"values"`
}

func DefaultConfig() *Config {
	return &Config{
		Relaxivity: DefaultRelaxivity,
		Radius:     DefaultRadius,
		RadiusUnit: "um",
		Porosities: []float64{30, 20, 10},
		TimeUnit:   "ms",
		TimeDomain: TimeDomainConfig{
			Kind:    "geometric",
			Start:   DefaultStart,
			Stop:    DefaultStop,
			Samples: DefaultSamples,
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

// RadiusMicrometers applies the configured radius unit.
func (c *Config) RadiusMicrometers() nmr.Micrometers {
	if c.RadiusUnit == "nm" {
		return nmr.FromNanometers(c.Radius)
	}
	return nmr.Micrometers(c.Radius)
}

// Scenarios builds the ordered scenario list, labeled porosity_1..n.
func (c *Config) Scenarios() []nmr.Scenario {
	scenarios := make([]nmr.Scenario, len(c.Porosities))
	for i, p := range c.Porosities {
		scenarios[i] = nmr.Scenario{
			Label:    fmt.Sprintf("porosity_%d", i+1),
			Porosity: nmr.Percent(p),
		}
	}
	return scenarios
}

// Domain materializes the configured time grid in milliseconds. Uniform
// grids span [0, 5*t2] and so depend on the computed t2.
func (c *Config) Domain(t2 nmr.Milliseconds) (nmr.TimeDomain, error) {
	scale := 1.0
	if c.TimeUnit == "s" {
		scale = 1000.0
	}

	switch c.TimeDomain.Kind {
	case "uniform":
		samples := c.TimeDomain.Samples
		if samples == 0 {
			samples = nmr.DefaultSamples
		}
		return nmr.UniformDomain(t2, samples)
	case "custom":
		domain := make(nmr.TimeDomain, len(c.TimeDomain.Values))
		for i, v := range c.TimeDomain.Values {
			domain[i] = nmr.Milliseconds(v * scale)
		}
		if err := domain.Validate(); err != nil {
			return nil, err
		}
		return domain, nil
	default:
		return nmr.GeometricDomain(
			nmr.Milliseconds(c.TimeDomain.Start*scale),
			nmr.Milliseconds(c.TimeDomain.Stop*scale),
			c.TimeDomain.Samples,
		)
	}
}
