package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Curve.Points != 200 {
		t.Errorf("expected 200 points, got %d", cfg.Curve.Points)
	}
	if cfg.Curve.A != 0.01 || cfg.Curve.B != 0 || cfg.Curve.C != 0 {
		t.Errorf("unexpected coefficients: %+v", cfg.Quadratic())
	}
	if cfg.Animation.Speed != 0.5 {
		t.Errorf("expected speed 0.5, got %g", cfg.Animation.Speed)
	}
	if cfg.Curve.Padding != 50 || cfg.Style.AxisOffset != 30 {
		t.Errorf("unexpected padding/offset: %g/%g", cfg.Curve.Padding, cfg.Style.AxisOffset)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestPalette(t *testing.T) {
	p, err := DefaultConfig().Palette()
	if err != nil {
		t.Fatalf("palette failed: %v", err)
	}

	if p.Curve.R != 0xff || p.Curve.G != 0 || p.Curve.B != 0 || p.Curve.A != 0xff {
		t.Errorf("expected opaque red curve, got %+v", p.Curve)
	}
	if p.Axis.R != 0x80 || p.Axis.G != 0x80 || p.Axis.B != 0x80 {
		t.Errorf("expected grey axis, got %+v", p.Axis)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"one point", func(c *Config) { c.Curve.Points = 1 }},
		{"zero speed", func(c *Config) { c.Animation.Speed = 0 }},
		{"negative padding", func(c *Config) { c.Curve.Padding = -1 }},
		{"negative offset", func(c *Config) { c.Style.AxisOffset = -5 }},
		{"zero width canvas", func(c *Config) { c.Canvas.Width = 0 }},
		{"zero fps", func(c *Config) { c.Canvas.FPS = 0 }},
		{"zero stroke", func(c *Config) { c.Style.CurveWidth = 0 }},
		{"bad color", func(c *Config) { c.Style.Curve = "crimson" }},
		{"unknown ease", func(c *Config) { c.Animation.Ease = "bounce" }},
		{"nan speed", func(c *Config) { c.Animation.Speed = math.NaN() }},
		{"infinite speed", func(c *Config) { c.Animation.Speed = math.Inf(1) }},
		{"nan canvas height", func(c *Config) { c.Canvas.Height = math.NaN() }},
		{"nan padding", func(c *Config) { c.Curve.Padding = math.NaN() }},
		{"nan offset", func(c *Config) { c.Style.AxisOffset = math.NaN() }},
		{"nan axis width", func(c *Config) { c.Style.AxisWidth = math.NaN() }},
		{"nan label size", func(c *Config) { c.Style.LabelSize = math.NaN() }},
		{"nan a", func(c *Config) { c.Curve.A = math.NaN() }},
		{"infinite b", func(c *Config) { c.Curve.B = math.Inf(-1) }},
		{"nan c", func(c *Config) { c.Curve.C = math.NaN() }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tt.name, err)
		}
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	data := []byte("curve:\n  points: 50\nanimation:\n  speed: 1.5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Curve.Points != 50 {
		t.Errorf("expected 50 points, got %d", cfg.Curve.Points)
	}
	if cfg.Animation.Speed != 1.5 {
		t.Errorf("expected speed 1.5, got %g", cfg.Animation.Speed)
	}
	if cfg.Curve.A != 0.01 {
		t.Errorf("omitted coefficient should keep default, got %g", cfg.Curve.A)
	}
	if cfg.Canvas.Width != DefaultWidth {
		t.Errorf("omitted canvas width should keep default, got %g", cfg.Canvas.Width)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := GetPreset("shifted")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", cfg, loaded)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("slow")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Animation.Speed != 0.25 {
		t.Errorf("expected speed 0.25, got %g", cfg.Animation.Speed)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestLoadNaNSpeedFailsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	if err := os.WriteFile(path, []byte("animation:\n  speed: .nan\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for NaN speed, got %v", err)
	}
}

func TestResolveLayersPresetUnderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("theme: ocean\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Resolve("steep", path)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.Curve.A != 0.05 {
		t.Errorf("preset coefficient lost: expected a=0.05, got %g", cfg.Curve.A)
	}
	if cfg.Theme != "ocean" {
		t.Errorf("expected theme from file, got %q", cfg.Theme)
	}
}

func TestResolveFileOverridesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speed.yaml")
	if err := os.WriteFile(path, []byte("animation:\n  speed: 3\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Resolve("slow", path)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.Animation.Speed != 3 {
		t.Errorf("expected file speed 3, got %g", cfg.Animation.Speed)
	}
}

func TestResolveUnknownPreset(t *testing.T) {
	if _, err := Resolve("nope", ""); err == nil {
		t.Error("expected error for unknown preset")
	}
}
