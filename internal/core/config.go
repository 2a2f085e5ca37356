package core

// RuntimeConfig contains the per-run values that come from the environment
// rather than from the config file.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed for item placement
}

