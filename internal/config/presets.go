package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}

// ApplyPreset adjusts lives and paddle width for a difficulty preset.
// Normal and empty presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lives = 5
		cfg.Paddle.Width = 8
	case DifficultyHard:
		cfg.Lives = 2
		cfg.Paddle.Width = 4
	}
}
