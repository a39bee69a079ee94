// Package config provides Viper-based configuration loading for charsim.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override, e.g. CHARSIM_DICE_SEED.
const EnvPrefix = "CHARSIM"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// DiceConfig selects the random source behind every roll.
type DiceConfig struct {
	// Seed makes rolls reproducible. Zero selects the non-reproducible crypto source.
	Seed uint64 `mapstructure:"seed"`
}

// ContentConfig points at YAML content directories. An empty directory selects
// the embedded default content.
type ContentConfig struct {
	RacesDir   string `mapstructure:"races_dir"`
	ClassesDir string `mapstructure:"classes_dir"`
	WeaponsDir string `mapstructure:"weapons_dir"`
	ArmorsDir  string `mapstructure:"armors_dir"`
	ItemsDir   string `mapstructure:"items_dir"`
}

// ScriptingConfig holds Lua hook settings.
type ScriptingConfig struct {
	// ScriptDir holds *.lua files defining on_death and on_level_up hooks.
	// Empty disables scripting.
	ScriptDir string `mapstructure:"script_dir"`
	// InstructionLimit caps VM instructions per hook call. Zero selects the default limit.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// SimulationConfig bounds simulated encounters.
type SimulationConfig struct {
	// MaxRounds caps the number of rounds in a duel.
	MaxRounds int `mapstructure:"max_rounds"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Dice       DiceConfig       `mapstructure:"dice"`
	Content    ContentConfig    `mapstructure:"content"`
	Scripting  ScriptingConfig  `mapstructure:"scripting"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateScripting(c.Scripting); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateScripting(s ScriptingConfig) error {
	if s.InstructionLimit < 0 {
		return fmt.Errorf("scripting.instruction_limit must be >= 0, got %d", s.InstructionLimit)
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	if s.MaxRounds < 1 {
		return errors.New("simulation.max_rounds must be >= 1")
	}
	return nil
}

// Option customizes the Viper instance Load reads from.
type Option func(v *viper.Viper) error

// WithFlags binds command-line flags over file and environment values.
// bindings maps a configuration key such as "dice.seed" to a flag name in fs.
// A flag only overrides when it was set explicitly.
func WithFlags(fs *pflag.FlagSet, bindings map[string]string) Option {
	return func(v *viper.Viper) error {
		for key, name := range bindings {
			flag := fs.Lookup(name)
			if flag == nil {
				return fmt.Errorf("binding %q: no flag named %q", key, name)
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return fmt.Errorf("binding %q: %w", key, err)
			}
		}
		return nil
	}
}

// Load reads configuration from the given file path, applies environment variable
// and option overrides, and validates the result. An empty path skips the file
// and uses defaults plus overrides.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string, opts ...Option) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return Config{}, err
		}
	}
	return loadFromViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func loadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("dice.seed", 0)

	v.SetDefault("content.races_dir", "")
	v.SetDefault("content.classes_dir", "")
	v.SetDefault("content.weapons_dir", "")
	v.SetDefault("content.armors_dir", "")
	v.SetDefault("content.items_dir", "")

	v.SetDefault("scripting.script_dir", "")
	v.SetDefault("scripting.instruction_limit", 100000)

	v.SetDefault("simulation.max_rounds", 50)
}
