package skills

// Config holds configuration for the skill scanner.
type Config struct {
	// Owner describes where the skill vector hangs off an owner.
	Owner OwnerLayout `mapstructure:"owner"`
	// Entries lists the candidate element shapes to scan.
	Entries []EntryLayout `mapstructure:"entries"`
	// Weights maps known metric labels to their scoring weight. Labels
	// absent from the map score UnknownLabelWeight.
	Weights map[string]float64 `mapstructure:"weights"`
	// UnknownLabelWeight is the flat credit for an unrecognized label.
	UnknownLabelWeight float64 `mapstructure:"unknown_label_weight" default:"0.25"`
	// MaxNameChars caps decoded skill name length.
	MaxNameChars int `mapstructure:"max_name_chars" default:"64"`
}

// DefaultWeights returns the tuned per-label scoring weights. The values
// are externally tuned constants carried as configuration data; they have
// no derivation worth encoding here.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		"dps":         3.0,
		"aps":         2.0,
		"cooldown":    2.0,
		"mana cost":   1.5,
		"cast time":   1.5,
		"crit chance": 1.0,
		"damage":      1.0,
		"level":       0.5,
		"quality":     0.5,
	}
}

// Normalize fills unset fields with build defaults.
func (c *Config) Normalize() {
	if c.Owner == (OwnerLayout{}) {
		c.Owner = DefaultOwnerLayout()
	}
	if len(c.Entries) == 0 {
		c.Entries = DefaultEntryLayouts()
	}
	if len(c.Weights) == 0 {
		c.Weights = DefaultWeights()
	}
	if c.UnknownLabelWeight == 0 {
		c.UnknownLabelWeight = 0.25
	}
	if c.MaxNameChars == 0 {
		c.MaxNameChars = 64
	}
}
