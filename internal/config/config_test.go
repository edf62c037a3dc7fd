package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML = %+v, Default() = %+v", cfg, Default())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("lives: 7\nplayfield:\n  height: 20\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Lives)
	}
	if cfg.Playfield.Height != 20 {
		t.Errorf("Height = %d, expected 20", cfg.Playfield.Height)
	}
	if cfg.Playfield.Width != 33 {
		t.Errorf("Width should keep default 33, got %d", cfg.Playfield.Width)
	}
	if cfg.Paddle.Symbol != "^" {
		t.Errorf("Paddle symbol should keep default, got %q", cfg.Paddle.Symbol)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("lives: [oops")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too narrow for grid", func(c *Config) { c.Playfield.Width = 20 }},
		{"too short", func(c *Config) { c.Playfield.Height = 5 }},
		{"no lives", func(c *Config) { c.Lives = 0 }},
		{"paddle too narrow", func(c *Config) { c.Paddle.Width = 1 }},
		{"paddle wider than field", func(c *Config) { c.Paddle.Width = 40 }},
		{"centered paddle touches left wall", func(c *Config) { c.Paddle.Width = 32 }},
		{"paddle speed zero", func(c *Config) { c.Paddle.Speed = 0 }},
		{"ball speed zero", func(c *Config) { c.Ball.Speed = 0 }},
		{"tick zero", func(c *Config) { c.Tick.PeriodMS = 0 }},
		{"wall glyph too long", func(c *Config) { c.Playfield.Wall = "||" }},
		{"empty ball glyph", func(c *Config) { c.Ball.Symbol = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v should wrap ErrInvalid", err)
			}
		})
	}
}

func TestValidateWidestPaddle(t *testing.T) {
	tests := []struct {
		field  int
		paddle int
	}{
		{33, 31},
		{34, 33},
	}

	for _, tc := range tests {
		cfg := Default()
		cfg.Playfield.Width = tc.field
		cfg.Paddle.Width = tc.paddle
		if err := cfg.Validate(); err != nil {
			t.Errorf("field %d paddle %d: %v", tc.field, tc.paddle, err)
		}
		cfg.Paddle.Width++
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("field %d paddle %d should be rejected, got %v", tc.field, cfg.Paddle.Width, err)
		}
	}
}

func TestValidateAcceptsMultibyteGlyph(t *testing.T) {
	cfg := Default()
	cfg.Ball.Symbol = "●"
	if err := cfg.Validate(); err != nil {
		t.Errorf("single multibyte glyph should be valid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("tick:\n  period_ms: 64\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickPeriod() != 64*time.Millisecond {
		t.Errorf("TickPeriod() = %v, expected 64ms", cfg.TickPeriod())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("lives: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset      string
		lives       int
		paddleWidth int
	}{
		{"", 3, 6},
		{"normal", 3, 6},
		{"easy", 5, 8},
		{"hard", 2, 4},
	}

	for _, tc := range tests {
		t.Run("preset_"+tc.preset, func(t *testing.T) {
			p, err := ParsePreset(tc.preset)
			if err != nil {
				t.Fatalf("ParsePreset(%q) failed: %v", tc.preset, err)
			}
			cfg := Default()
			ApplyPreset(&cfg, p)
			if cfg.Lives != tc.lives || cfg.Paddle.Width != tc.paddleWidth {
				t.Errorf("lives=%d width=%d, expected %d/%d", cfg.Lives, cfg.Paddle.Width, tc.lives, tc.paddleWidth)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	if _, err := ParsePreset("insane"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParsePreset(insane) error = %v, expected ErrInvalid", err)
	}
}
