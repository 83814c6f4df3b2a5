package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLength      = 300.0
	DefaultDx          = 0.5
	DefaultDiffusivity = 100.0
	DefaultSteps       = 5000
	DefaultLeft        = 500.0
	DefaultRight       = 0.0
)

type Config struct {
	Profile     string  `yaml:"profile"`
	Length      float64 `yaml:"length"`
	Dx          float64 `yaml:"dx"`
	Diffusivity float64 `yaml:"diffusivity"`
	Steps       int     `yaml:"steps"`
	Left        float64 `yaml:"left_value"`
	Right       float64 `yaml:"right_value"`
	Dt          float64 `yaml:"dt"`           // 0 = stability-limited
	FrameStride int     `yaml:"frame_stride"` // 0 = final frame only
}

func DefaultConfig() *Config {
	return &Config{
		Profile:     "step",
		Length:      DefaultLength,
		Dx:          DefaultDx,
		Diffusivity: DefaultDiffusivity,
		Steps:       DefaultSteps,
		Left:        DefaultLeft,
		Right:       DefaultRight,
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
