// Package config loads run settings for the qlp pipeline from YAML with
// QLP_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qlp/logging"
	"github.com/katalvlaran/qlp/offset"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// EnvPrefix prefixes every override variable.
const EnvPrefix = "QLP_"

// Store selects where experiment records live.
type Store struct {
	Path     string `yaml:"path" json:"path"`
	InMemory bool   `yaml:"in_memory" json:"in_memory"`
}

// Config is the full run configuration.
type Config struct {
	Machine        string         `yaml:"machine" json:"machine" validate:"required"`
	Tries          int            `yaml:"tries" json:"tries" validate:"gte=1"`
	Policy         string         `yaml:"policy" json:"policy" validate:"required"`
	Penalty        float64        `yaml:"penalty" json:"penalty" validate:"gt=0"`
	ChainStrength  float64        `yaml:"chain_strength" json:"chain_strength" validate:"gt=0"`
	NumReads       int            `yaml:"num_reads" json:"num_reads" validate:"gte=1"`
	QubitCount     int            `yaml:"qubit_count" json:"qubit_count" validate:"gte=1"`
	MinOffsetRange float64        `yaml:"min_offset_range" json:"min_offset_range" validate:"gte=0"`
	Seed           int64          `yaml:"seed" json:"seed"`
	Settings       map[string]any `yaml:"settings" json:"settings"`
	Store          Store          `yaml:"store" json:"store"`
	Log            logging.Config `yaml:"log" json:"log"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Machine:        "simulator",
		Tries:          10,
		Policy:         offset.TagLinear,
		Penalty:        2,
		ChainStrength:  2,
		NumReads:       100,
		QubitCount:     2048,
		MinOffsetRange: 0.1,
		Seed:           1,
		Settings:       map[string]any{},
		Store:          Store{InMemory: true},
		Log:            logging.Config{Level: "info", Format: logging.FormatText},
	}
}

// Load reads path (optional) over Default, applies environment overrides
// and validates. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints, the policy tag and the store target.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := offset.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("%w: store.path is required unless store.in_memory", ErrInvalid)
	}

	return nil
}

// SettingsMap returns the sampler settings plus the fields that identify an
// experiment, ready for hashing.
func (c Config) SettingsMap() map[string]any {
	out := make(map[string]any, len(c.Settings)+2)
	for k, v := range c.Settings {
		out[k] = v
	}
	out["num_reads"] = c.NumReads
	out["policy"] = c.Policy

	return out
}

type lookupFunc func(string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	integer := func(name string, dst *int) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, name, v, err)
		}
		*dst = n
		return nil
	}
	float := func(name string, dst *float64) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, name, v, err)
		}
		*dst = f
		return nil
	}

	str("MACHINE", &c.Machine)
	str("POLICY", &c.Policy)
	str("STORE_PATH", &c.Store.Path)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	if v, ok := lookup(EnvPrefix + "STORE_IN_MEMORY"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %sSTORE_IN_MEMORY=%q: %w", EnvPrefix, v, err)
		}
		c.Store.InMemory = b
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sSEED=%q: %w", EnvPrefix, v, err)
		}
		c.Seed = n
	}

	for _, f := range []error{
		integer("TRIES", &c.Tries),
		integer("NUM_READS", &c.NumReads),
		integer("QUBIT_COUNT", &c.QubitCount),
		float("PENALTY", &c.Penalty),
		float("CHAIN_STRENGTH", &c.ChainStrength),
		float("MIN_OFFSET_RANGE", &c.MinOffsetRange),
	} {
		if f != nil {
			return f
		}
	}

	return nil
}
