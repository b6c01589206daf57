package config

import (
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/misternay/Poe2-SkillEye/core/logger"
	"github.com/misternay/Poe2-SkillEye/core/memory"
	"github.com/misternay/Poe2-SkillEye/feature/cooldown"
	"github.com/misternay/Poe2-SkillEye/feature/icons"
	"github.com/misternay/Poe2-SkillEye/feature/skills"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Memory holds configuration for the remote memory reader.
	Memory memory.Config `mapstructure:"memory"`
	// Skills holds configuration for the skill scanner.
	Skills skills.Config `mapstructure:"skills"`
	// Cooldown holds configuration for the cooldown tracker.
	Cooldown cooldown.Config `mapstructure:"cooldown"`
	// Icons holds configuration for the icon cache.
	Icons icons.Config `mapstructure:"icons"`
	// Watch holds configuration for the polling loop.
	Watch WatchConfig `mapstructure:"watch"`
}

// WatchConfig holds configuration for the polling loop.
type WatchConfig struct {
	// IntervalMS is the poll interval in milliseconds.
	IntervalMS int `mapstructure:"interval_ms" default:"250"`
	// PlayerAddress is the address (hex accepted) holding the pointer to
	// the local player's entity, per deployment.
	PlayerAddress string `mapstructure:"player_address" default:"0"`
	// SummaryEveryTicks is how often the loop logs a state summary.
	SummaryEveryTicks int `mapstructure:"summary_every_ticks" default:"40"`
}

// Load loads configuration from environment variables and .env file.
func Load(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SKILLS_MAX_NAME_CHARS -> skills.max_name_chars)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Fill the structured defaults that don't fit in tags (layouts,
	// scoring weights, suppression list).
	config.Skills.Normalize()
	config.Cooldown.Normalize()

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Maps carry their defaults in code (Normalize), not in tags.
		if field.Type.Kind() == reflect.Map {
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
