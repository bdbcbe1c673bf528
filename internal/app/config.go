package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"rsakit/internal/numtheory"
	"rsakit/internal/rsa"
)

// Config holds runtime options for building the app.
type Config struct {
	Bits        int    // bits per prime
	Exponent    int64  // public exponent
	Rounds      int    // Miller-Rabin rounds
	MaxAttempts int    // caps candidates per prime and prime pairs per key, 0 for unbounded
	OutDir      string // where generate writes key.public and key.private
	LogLevel    string // debug, info, warn or error
}

// flagKeys maps config keys to the CLI flags that may override them.
var flagKeys = map[string]string{
	"bits":         "bits",
	"exponent":     "exponent",
	"rounds":       "rounds",
	"max_attempts": "max-attempts",
	"out_dir":      "dir",
	"log_level":    "log-level",
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		Bits:     rsa.DefaultBits,
		Exponent: rsa.DefaultExponent,
		Rounds:   numtheory.DefaultRounds,
		OutDir:   ".",
		LogLevel: "info",
	}
}

// LoadConfig resolves configuration from defaults, the optional YAML file at
// path, RSAKIT_* environment variables and finally any flags in fs that were
// set explicitly. Either path or fs may be empty.
func LoadConfig(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("bits", def.Bits)
	v.SetDefault("exponent", def.Exponent)
	v.SetDefault("rounds", def.Rounds)
	v.SetDefault("max_attempts", def.MaxAttempts)
	v.SetDefault("out_dir", def.OutDir)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix("RSAKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if fs != nil {
		for key, name := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg := Config{
		Bits:        v.GetInt("bits"),
		Exponent:    v.GetInt64("exponent"),
		Rounds:      v.GetInt("rounds"),
		MaxAttempts: v.GetInt("max_attempts"),
		OutDir:      v.GetString("out_dir"),
		LogLevel:    v.GetString("log_level"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no command could run with.
func (c Config) Validate() error {
	var errs []error
	if c.Bits < rsa.MinBits {
		errs = append(errs, fmt.Errorf("bits must be at least %d, got %d", rsa.MinBits, c.Bits))
	}
	if c.Rounds < 1 {
		errs = append(errs, fmt.Errorf("rounds must be positive, got %d", c.Rounds))
	}
	if c.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("max_attempts must not be negative, got %d", c.MaxAttempts))
	}
	if c.OutDir == "" {
		errs = append(errs, errors.New("out_dir must not be empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
