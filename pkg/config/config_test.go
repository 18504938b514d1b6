package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestLoadFromFile(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
byte-order: big
base-address: 0x400000
addresses: true
format: yaml
jobs: 4
log:
  level: debug
  file: mipsdis.log
`)))

	config, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "big", config.ByteOrder)
	assert.Equal(t, uint32(0x400000), config.BaseAddress)
	assert.True(t, config.Addresses)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, 4, config.Jobs)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "mipsdis.log", config.Log.File)
	assert.Equal(t, "auto", config.Color)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MIPSDIS_BYTE_ORDER", "big")
	t.Setenv("MIPSDIS_LOG_LEVEL", "error")

	config, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "big", config.ByteOrder)
	assert.Equal(t, "error", config.Log.Level)
}

func TestLoadIsCaseInsensitive(t *testing.T) {
	t.Setenv("MIPSDIS_BYTE_ORDER", "Big")

	v := viper.New()
	v.Set(Key_Format, "YAML")
	v.Set(Key_Color, "Never")
	v.Set(Key_LogLevel, "DEBUG")

	config, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "big", config.ByteOrder)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "never", config.Color)
	assert.Equal(t, "debug", config.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		key    string
	}{
		{"byte order", func(c *Config) { c.ByteOrder = "middle" }, Key_ByteOrder},
		{"format", func(c *Config) { c.Format = "html" }, Key_Format},
		{"color", func(c *Config) { c.Color = "sometimes" }, Key_Color},
		{"log level", func(c *Config) { c.Log.Level = "verbose" }, Key_LogLevel},
		{"jobs", func(c *Config) { c.Jobs = -1 }, Key_Jobs},
		{"base address", func(c *Config) { c.BaseAddress = 0x401 }, Key_BaseAddress},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := Default()
			test.modify(&config)

			err := config.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), test.key)
		})
	}

	config := Default()
	assert.NoError(t, config.Validate())
}

func TestYAML(t *testing.T) {
	config := Default()
	config.BaseAddress = 0x1000

	text, err := config.YAML()
	require.NoError(t, err)
	assert.Contains(t, text, "byte-order: little")

	var parsed Config
	require.NoError(t, yaml.Unmarshal([]byte(text), &parsed))
	assert.Equal(t, config, parsed)
}
