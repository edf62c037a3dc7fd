// Package config provides YAML-based configuration loading, validation and
// difficulty presets for terminoid.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// The block grid is fixed and never read from YAML.
const (
	GridRows    = 5
	GridCols    = 8
	GridSymbol  = "[==]"
	GridOffsetX = 1
	GridOffsetY = 1
)

// Config contains all tunable settings for a game session.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Lives     int             `yaml:"lives"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Ball      BallConfig      `yaml:"ball"`
	Tick      TickConfig      `yaml:"tick"`
}

// PlayfieldConfig defines the bounded area the ball moves in.
type PlayfieldConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Wall   string `yaml:"wall"`
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Symbol string `yaml:"symbol"`
	Width  int    `yaml:"width"`
	Speed  int    `yaml:"speed"` // Cells per key press
}

// BallConfig defines the ball.
type BallConfig struct {
	Symbol string `yaml:"symbol"`
	Speed  int    `yaml:"speed"` // Cells per tick on each axis
}

// TickConfig defines the simulation clock.
type TickConfig struct {
	PeriodMS int `yaml:"period_ms"`
}

// TickPeriod returns the tick interval as a duration.
func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.Tick.PeriodMS) * time.Millisecond
}

// GridWidth returns the number of columns the block grid spans, offset included.
func GridWidth() int {
	return GridOffsetX + GridCols*len(GridSymbol)
}

// Validate checks that the config can produce a playable, invariant-preserving game.
func (c Config) Validate() error {
	pf := c.Playfield

	if pf.Width < GridWidth() {
		return fmt.Errorf("%w: playfield width %d cannot hold the block grid (need %d)", ErrInvalid, pf.Width, GridWidth())
	}
	if minH := GridOffsetY + GridRows + 3; pf.Height < minH {
		return fmt.Errorf("%w: playfield height %d too small (need %d)", ErrInvalid, pf.Height, minH)
	}
	if c.Lives < 1 {
		return fmt.Errorf("%w: lives must be at least 1, got %d", ErrInvalid, c.Lives)
	}
	// The paddle starts centered and must sit between the walls.
	if x := pf.Width/2 - c.Paddle.Width/2; c.Paddle.Width < 2 || x < 1 || x+c.Paddle.Width > pf.Width {
		return fmt.Errorf("%w: paddle width %d does not fit centered in a playfield of width %d", ErrInvalid, c.Paddle.Width, pf.Width)
	}
	if c.Paddle.Speed < 1 {
		return fmt.Errorf("%w: paddle speed must be positive, got %d", ErrInvalid, c.Paddle.Speed)
	}
	if c.Ball.Speed < 1 {
		return fmt.Errorf("%w: ball speed must be positive, got %d", ErrInvalid, c.Ball.Speed)
	}
	if c.Tick.PeriodMS < 1 {
		return fmt.Errorf("%w: tick period must be positive, got %dms", ErrInvalid, c.Tick.PeriodMS)
	}

	for name, glyph := range map[string]string{
		"playfield.wall": pf.Wall,
		"paddle.symbol":  c.Paddle.Symbol,
		"ball.symbol":    c.Ball.Symbol,
	} {
		if utf8.RuneCountInString(glyph) != 1 {
			return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalid, name, glyph)
		}
	}

	return nil
}
