package core

// RuntimeConfig describes the host a frontend is running in.
// Frontends fill it from the terminal (or SSH PTY) and CLI flags.
type RuntimeConfig struct {
	ScreenW int   // Viewport width in characters
	ScreenH int   // Viewport height in characters
	Seed    int64 // RNG seed for food placement, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}
