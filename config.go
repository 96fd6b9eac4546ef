package eventsystem

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("eventsystem: invalid config")

// Config holds the settings of an EventSystem that are persisted outside the
// program, usually in a TOML file:
//
//	pixel_drag_threshold = 8
//	send_navigation_events = false
//	log_level = "debug"
type Config struct {
	PixelDragThreshold   int    `toml:"pixel_drag_threshold"`
	SendNavigationEvents bool   `toml:"send_navigation_events"`
	LogLevel             string `toml:"log_level"`
}

// DefaultConfig returns a drag threshold of 5 pixels, navigation events on,
// and info-level logging.
func DefaultConfig() Config {
	return Config{
		PixelDragThreshold:   5,
		SendNavigationEvents: true,
		LogLevel:             "info",
	}
}

// ParseConfig decodes TOML data on top of DefaultConfig and validates it.
// Keys missing from data keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be applied.
func (c Config) Validate() error {
	if c.PixelDragThreshold < 0 {
		return fmt.Errorf("%w: pixel_drag_threshold %d is negative", ErrInvalidConfig, c.PixelDragThreshold)
	}
	if _, ok := levelNames[strings.ToLower(c.LogLevel)]; !ok && c.LogLevel != "" {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
