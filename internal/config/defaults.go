package config

import (
	_ "embed"
)

//go:embed defaults/terminoid.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 33x14 playfield, three lives
// and a 128ms tick.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:  33,
			Height: 14,
			Wall:   "|",
		},
		Lives: 3,
		Paddle: PaddleConfig{
			Symbol: "^",
			Width:  6,
			Speed:  2,
		},
		Ball: BallConfig{
			Symbol: "o",
			Speed:  1,
		},
		Tick: TickConfig{
			PeriodMS: 128,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
