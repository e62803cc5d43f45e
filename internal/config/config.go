// Package config loads and saves sweep configurations.
package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScheme    = "stratonovich"
	DefaultSeed      = 1
	DefaultPaths     = 100
	DefaultDtMin     = 0.001
	DefaultDtMax     = 0.1
	DefaultDtCount   = 3
	DefaultDrift     = 1.0
	DefaultDiffusion = 1.0
)

type Config struct {
	Scheme    string  `yaml:"scheme"`
	Seed      int64   `yaml:"seed"`
	Paths     int     `yaml:"paths"`
	DtMin     float64 `yaml:"dt_min"`
	DtMax     float64 `yaml:"dt_max"`
	DtCount   int     `yaml:"dt_count"`
	Drift     float64 `yaml:"drift"`
	Diffusion float64 `yaml:"diffusion"`
}

func DefaultConfig() *Config {
	return &Config{
		Scheme:    DefaultScheme,
		Seed:      DefaultSeed,
		Paths:     DefaultPaths,
		DtMin:     DefaultDtMin,
		DtMax:     DefaultDtMax,
		DtCount:   DefaultDtCount,
		Drift:     DefaultDrift,
		Diffusion: DefaultDiffusion,
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

// StepSizes expands the dt range into a geometric sweep from DtMin to
// DtMax with DtCount entries.
func (c *Config) StepSizes() []float64 {
	if c.DtCount < 2 {
		return []float64{c.DtMin, c.DtMax}
	}
	out := make([]float64, c.DtCount)
	ratio := math.Log(c.DtMax / c.DtMin)
	for i := range out {
		out[i] = c.DtMin * math.Exp(ratio*float64(i)/float64(c.DtCount-1))
	}
	return out
}
