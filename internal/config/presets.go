package config

import "sort"

// Presets are named run configurations. "reference" is the canonical
// step-relaxation scenario.
var Presets = map[string]*Config{
	"reference": {
		Profile: "step", Length: 300, Dx: 0.5, Diffusivity: 100,
		Steps: 5000, Left: 500, Right: 0,
	},
	"quick": {
		Profile: "step", Length: 100, Dx: 1.0, Diffusivity: 50,
		Steps: 500, Left: 100, Right: 0,
	},
	"bump": {
		Profile: "gaussian", Length: 200, Dx: 0.5, Diffusivity: 100,
		Steps: 2000, Left: 100, Right: 0,
	},
	"steady": {
		Profile: "linear", Length: 300, Dx: 0.5, Diffusivity: 100,
		Steps: 1000, Left: 500, Right: 0,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
