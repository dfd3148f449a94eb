package config

import "sort"

var Presets = map[string]func(*Config){
	"reference": func(c *Config) {},
	"slow": func(c *Config) {
		c.Animation.Speed = 0.25
	},
	"fast": func(c *Config) {
		c.Animation.Speed = 2.0
	},
	"steep": func(c *Config) {
		c.Curve.A = 0.05
	},
	"shifted": func(c *Config) {
		c.Curve.A, c.Curve.B, c.Curve.C = 0.002, 0.5, -200
	},
	"dense": func(c *Config) {
		c.Curve.Points = 1000
		c.Animation.Speed = 2.5
	},
	"eased": func(c *Config) {
		c.Animation.Ease = "in-out-cubic"
	},
}

// GetPreset returns DefaultConfig with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
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
