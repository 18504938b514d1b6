// Package config holds the mipsdis runtime configuration.
//
// Configuration is assembled by viper from (lowest to highest priority) defaults, the
// config file, MIPSDIS_* environment variables and command line flags.
package config

import (
	"errors"
	"slices"
	"strings"

	"github.com/Manu343726/mipsdis/pkg/utils"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Prefix of the environment variables overriding configuration keys
const EnvPrefix = "MIPSDIS"

// Configuration keys
const (
	Key_ByteOrder   = "byte-order"
	Key_BaseAddress = "base-address"
	Key_Addresses   = "addresses"
	Key_Raw         = "raw"
	Key_Annotate    = "annotate"
	Key_Format      = "format"
	Key_Jobs        = "jobs"
	Key_Strict      = "strict"
	Key_Color       = "color"
	Key_LogLevel    = "log.level"
	Key_LogFile     = "log.file"
)

var (
	ByteOrders = []string{"little", "big"}
	Formats    = []string{"text", "yaml", "dump"}
	ColorModes = []string{"auto", "always", "never"}
	LogLevels  = []string{"debug", "info", "warn", "error"}
)

type Log struct {
	// Minimum level of terminal logs
	Level string `mapstructure:"level" yaml:"level"`
	// JSON log file. Empty disables file logging
	File string `mapstructure:"file" yaml:"file"`
}

type Config struct {
	// Byte order of the instruction words in the input file
	ByteOrder string `mapstructure:"byte-order" yaml:"byte-order"`
	// Address of the first instruction of the input file
	BaseAddress uint32 `mapstructure:"base-address" yaml:"base-address"`
	// Print the address of each instruction
	Addresses bool `mapstructure:"addresses" yaml:"addresses"`
	// Print the raw instruction word
	Raw bool `mapstructure:"raw" yaml:"raw"`
	// Annotate REGIMM instructions with their branch condition
	Annotate bool `mapstructure:"annotate" yaml:"annotate"`
	// Listing format
	Format string `mapstructure:"format" yaml:"format"`
	// Max number of decoding goroutines. 0 decodes sequentially
	Jobs int `mapstructure:"jobs" yaml:"jobs"`
	// Fail if any word cannot be decoded
	Strict bool `mapstructure:"strict" yaml:"strict"`
	// Listing colors
	Color string `mapstructure:"color" yaml:"color"`
	Log   Log    `mapstructure:"log" yaml:"log"`
}

// Returns the default configuration
func Default() Config {
	return Config{
		ByteOrder: "little",
		Annotate:  true,
		Format:    "text",
		Color:     "auto",
		Log: Log{
			Level: "warn",
		},
	}
}

// Registers the default value of every configuration key
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault(Key_ByteOrder, defaults.ByteOrder)
	v.SetDefault(Key_BaseAddress, defaults.BaseAddress)
	v.SetDefault(Key_Addresses, defaults.Addresses)
	v.SetDefault(Key_Raw, defaults.Raw)
	v.SetDefault(Key_Annotate, defaults.Annotate)
	v.SetDefault(Key_Format, defaults.Format)
	v.SetDefault(Key_Jobs, defaults.Jobs)
	v.SetDefault(Key_Strict, defaults.Strict)
	v.SetDefault(Key_Color, defaults.Color)
	v.SetDefault(Key_LogLevel, defaults.Log.Level)
	v.SetDefault(Key_LogFile, defaults.Log.File)
}

// Makes MIPSDIS_* environment variables override configuration keys (log.level -> MIPSDIS_LOG_LEVEL)
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Builds the configuration from the given viper instance and validates it
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	BindEnv(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, utils.MakeError(ErrInvalidConfig, "%v", err)
	}

	config.normalize()

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Lower-cases enumerated values, which are matched case-insensitively
func (c *Config) normalize() {
	c.ByteOrder = strings.ToLower(c.ByteOrder)
	c.Format = strings.ToLower(c.Format)
	c.Color = strings.ToLower(c.Color)
	c.Log.Level = strings.ToLower(c.Log.Level)
}

func checkOneOf(key string, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}

	return utils.MakeError(ErrInvalidConfig, "%v must be one of %v, got '%v'", key, utils.FormatSlice(allowed, ", "), value)
}

// Checks all configuration values are in range
func (c *Config) Validate() error {
	if err := checkOneOf(Key_ByteOrder, c.ByteOrder, ByteOrders); err != nil {
		return err
	}

	if err := checkOneOf(Key_Format, c.Format, Formats); err != nil {
		return err
	}

	if err := checkOneOf(Key_Color, c.Color, ColorModes); err != nil {
		return err
	}

	if err := checkOneOf(Key_LogLevel, c.Log.Level, LogLevels); err != nil {
		return err
	}

	if c.Jobs < 0 {
		return utils.MakeError(ErrInvalidConfig, "%v must not be negative, got %v", Key_Jobs, c.Jobs)
	}

	if c.BaseAddress%4 != 0 {
		return utils.MakeError(ErrInvalidConfig, "%v must be word aligned, got %v", Key_BaseAddress, utils.FormatUintHex(uint64(c.BaseAddress), 8))
	}

	return nil
}

// Serializes the configuration as YAML
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
