// Package config loads the calculator settings from flags, environment
// variables and an optional configuration file.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/govalues/bigdecimal"
)

// EnvPrefix is the prefix of the environment variables read by [Load].
// For example, BIGCALC_DP sets the number of decimal places.
const EnvPrefix = "BIGCALC"

// Keys of the settings, matching the flag names registered by [RegisterFlags].
const (
	KeyDecimalPlaces    = "dp"
	KeyRounding         = "rounding"
	KeyMaxDecimalPlaces = "max-dp"
	KeyMaxPower         = "max-power"
	KeyNegExpThreshold  = "neg-exp"
	KeyPosExpThreshold  = "pos-exp"
	KeyStrict           = "strict"
	KeyWorkers          = "workers"
	KeyDebug            = "debug"
)

// Config holds the calculator settings.
type Config struct {
	DecimalPlaces    int    `mapstructure:"dp"`
	Rounding         string `mapstructure:"rounding"`
	MaxDecimalPlaces int    `mapstructure:"max-dp"`
	MaxPower         int    `mapstructure:"max-power"`
	NegExpThreshold  int    `mapstructure:"neg-exp"`
	PosExpThreshold  int    `mapstructure:"pos-exp"`
	Strict           bool   `mapstructure:"strict"`
	Workers          int    `mapstructure:"workers"`
	Debug            bool   `mapstructure:"debug"`
}

// setDefaults sets the values of bigdecimal.DefaultContext
func setDefaults(v *viper.Viper) {
	c := bigdecimal.DefaultContext()
	v.SetDefault(KeyDecimalPlaces, c.DecimalPlaces)
	v.SetDefault(KeyRounding, c.Rounding.String())
	v.SetDefault(KeyMaxDecimalPlaces, c.MaxDecimalPlaces)
	v.SetDefault(KeyMaxPower, c.MaxPower)
	v.SetDefault(KeyNegExpThreshold, c.NegExpThreshold)
	v.SetDefault(KeyPosExpThreshold, c.PosExpThreshold)
	v.SetDefault(KeyStrict, c.Strict)
	v.SetDefault(KeyWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(KeyDebug, false)
}

// RegisterFlags adds the flags read by [Load] to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	c := bigdecimal.DefaultContext()
	fs.Int(KeyDecimalPlaces, c.DecimalPlaces, "decimal places of division, square root and negative powers")
	fs.String(KeyRounding, c.Rounding.String(), "rounding mode: toward-zero, half-up, half-even or away-from-zero")
	fs.Int(KeyMaxDecimalPlaces, c.MaxDecimalPlaces, "upper bound of decimal places and precision arguments")
	fs.Int(KeyMaxPower, c.MaxPower, "upper bound of the magnitude of an exponent")
	fs.Int(KeyNegExpThreshold, c.NegExpThreshold, "exponent at and beneath which results use exponential notation")
	fs.Int(KeyPosExpThreshold, c.PosExpThreshold, "exponent at and above which results use exponential notation")
	fs.Bool(KeyStrict, c.Strict, "reject lossy conversions")
	fs.Int(KeyWorkers, runtime.GOMAXPROCS(0), "number of expressions evaluated concurrently")
	fs.Bool(KeyDebug, false, "enable debug logging")
}

// Load reads the settings in priority order:
//  1. flags of fs that were set explicitly;
//  2. environment variables with the BIGCALC_ prefix;
//  3. the configuration file at path, if path is not empty;
//  4. the defaults of bigdecimal.DefaultContext.
//
// The result is validated with [Config.Validate].
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	keys := []string{
		KeyDecimalPlaces, KeyRounding, KeyMaxDecimalPlaces, KeyMaxPower,
		KeyNegExpThreshold, KeyPosExpThreshold, KeyStrict, KeyWorkers, KeyDebug,
	}
	for _, key := range keys {
		f := fs.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}
	return nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := c.Context(); err != nil {
		return err
	}
	return nil
}

// Context returns the arithmetic context described by the settings.
func (c *Config) Context() (bigdecimal.Context, error) {
	mode, err := bigdecimal.ParseRoundingMode(c.Rounding)
	if err != nil {
		return bigdecimal.Context{}, err
	}
	return bigdecimal.NewContext(
		bigdecimal.WithMaxDecimalPlaces(c.MaxDecimalPlaces),
		bigdecimal.WithDecimalPlaces(c.DecimalPlaces),
		bigdecimal.WithRounding(mode),
		bigdecimal.WithMaxPower(c.MaxPower),
		bigdecimal.WithExpThresholds(c.NegExpThreshold, c.PosExpThreshold),
		bigdecimal.WithStrict(c.Strict),
	)
}
