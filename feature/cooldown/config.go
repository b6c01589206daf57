package cooldown

// Config holds configuration for the cooldown tracker.
type Config struct {
	// SuppressContains lists name fragments for which cooldown tracking
	// is disabled. A skill whose name contains any fragment
	// (case-insensitive) never holds a cooldown end-time.
	SuppressContains []string `mapstructure:"suppress_contains"`
}

// DefaultSuppressed returns the stock suppression list: instant and
// movement actions that report as unusable every animation frame and
// would otherwise flicker through phantom cooldowns.
func DefaultSuppressed() []string {
	return []string{"move", "interact"}
}

// Normalize fills unset fields with defaults.
func (c *Config) Normalize() {
	if len(c.SuppressContains) == 0 {
		c.SuppressContains = DefaultSuppressed()
	}
}
