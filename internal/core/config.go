package core

import "time"

// RuntimeConfig contains the platform-side settings for a session.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	TickPeriod time.Duration // Interval between simulation ticks
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickPeriod: 128 * time.Millisecond,
	}
}
