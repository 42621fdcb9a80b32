package shim

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunables of the translation layer.
//
// A configuration file looks like:
//
//	backend = "d3d9"
//	log_level = "debug"
//
//	[d3d9]
//	max_render_targets = 4
//	adapter_format = 22
//	format_cache_size = 128
//
//	[d3d10]
//	format_cache_size = 64
type Config struct {
	// Backend names the preferred native generation ("d3d9", "d3d10").
	// Empty selects the highest-priority registered backend.
	Backend string `toml:"backend"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	D3D9  D3D9Config  `toml:"d3d9"`
	D3D10 D3D10Config `toml:"d3d10"`
}

// D3D9Config holds settings specific to the older API generation.
type D3D9Config struct {
	// MaxRenderTargets caps the simultaneous render target count taken
	// from the device caps. Values above 8 are clamped to 8.
	MaxRenderTargets int `toml:"max_render_targets"`

	// AdapterFormat is the display format format-support queries are
	// made against. The native capability query is always relative to it.
	AdapterFormat uint32 `toml:"adapter_format"`

	// FormatCacheSize bounds the memo of format-support answers.
	// Zero disables the limit.
	FormatCacheSize int `toml:"format_cache_size"`
}

// D3D10Config holds settings specific to the newer API generation.
type D3D10Config struct {
	// FormatCacheSize bounds the memo of native format-support bits.
	// Zero disables the limit.
	FormatCacheSize int `toml:"format_cache_size"`
}

// Default configuration values.
const (
	DefaultMaxRenderTargets = 8
	// DefaultAdapterFormat is D3DFMT_X8R8G8B8.
	DefaultAdapterFormat   = 22
	DefaultFormatCacheSize = 256
)

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		D3D9: D3D9Config{
			MaxRenderTargets: DefaultMaxRenderTargets,
			AdapterFormat:    DefaultAdapterFormat,
			FormatCacheSize:  DefaultFormatCacheSize,
		},
		D3D10: D3D10Config{
			FormatCacheSize: DefaultFormatCacheSize,
		},
	}
}

// WithDefaults returns c with every unset field taken from DefaultConfig.
// Format cache sizes are left alone since zero is a valid limit.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.D3D9.MaxRenderTargets == 0 {
		c.D3D9.MaxRenderTargets = d.D3D9.MaxRenderTargets
	}
	if c.D3D9.AdapterFormat == 0 {
		c.D3D9.AdapterFormat = d.D3D9.AdapterFormat
	}
	return c
}

// ParseConfig decodes TOML data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("shim: parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and decodes the TOML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("shim: load config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Backend {
	case "", APID3D9.String(), APID3D10.String():
	default:
		return fmt.Errorf("shim: unknown backend %q", c.Backend)
	}
	if c.D3D9.MaxRenderTargets < 1 {
		return fmt.Errorf("shim: d3d9.max_render_targets must be positive, got %d", c.D3D9.MaxRenderTargets)
	}
	if c.D3D9.FormatCacheSize < 0 {
		return fmt.Errorf("shim: d3d9.format_cache_size must not be negative, got %d", c.D3D9.FormatCacheSize)
	}
	if c.D3D10.FormatCacheSize < 0 {
		return fmt.Errorf("shim: d3d10.format_cache_size must not be negative, got %d", c.D3D10.FormatCacheSize)
	}
	return nil
}
