// Package config provides persistent configuration for hisab.
//
// Configuration is stored as JSON at ~/.config/hisab/config.json
// (XDG-compliant). The merge priority is: CLI flags > environment
// (HISAB_*, optionally from a .env file) > config file > defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

const (
	configDirName  = "hisab"
	configFileName = "config.json"
)

// ErrUnknownKey is returned by Set and Get for keys not in ValidKeys.
var ErrUnknownKey = errors.New("unknown config key")

// Location modes.
const (
	ModeDefault = "default" // built-in site unless coordinates are set
	ModeManual  = "manual"  // coordinates must be set
	ModeAuto    = "auto"    // detect by IP address
)

// Built-in site used by ModeDefault.
const (
	DefaultLatitude  = -6.786
	DefaultLongitude = 107.173
	DefaultTimezone  = 7.0
)

// ValidKeys lists all config keys that can be set via `config set`.
var ValidKeys = []string{
	"latitude", "longitude",
	"timezone",
	"elevation", "use_elevation",
	"ihtiyat",
	"location_mode",
	"horizon",
	"time_format",
	"prayers",
	"visibility_tier",
	"cache_dir",
	"server_address",
	"log_level",
}

// Config holds all user-configurable settings.
// Nil pointers and zero values mean "not set" (use defaults).
type Config struct {
	Latitude       *float64 `json:"latitude,omitempty"` // pointer so 0 is a valid coordinate
	Longitude      *float64 `json:"longitude,omitempty"`
	Timezone       *float64 `json:"timezone,omitempty"`
	Elevation      float64  `json:"elevation,omitempty"`
	UseElevation   *bool    `json:"use_elevation,omitempty"`
	Ihtiyat        float64  `json:"ihtiyat,omitempty"` // minutes
	LocationMode   string   `json:"location_mode,omitempty"`
	Horizon        string   `json:"horizon,omitempty"`
	TimeFormat     string   `json:"time_format,omitempty"` // "12h" or "24h"
	Prayers        string   `json:"prayers,omitempty"`     // comma-separated list
	VisibilityTier int      `json:"visibility_tier,omitempty"`
	CacheDir       string   `json:"cache_dir,omitempty"`
	ServerAddress  string   `json:"server_address,omitempty"`
	LogLevel       string   `json:"log_level,omitempty"`
}

// Defaults returns a Config with all default values applied.
func Defaults() Config {
	useElevation := true
	return Config{
		UseElevation:   &useElevation,
		LocationMode:   ModeDefault,
		Horizon:        string(prayer.HorizonStandard),
		TimeFormat:     "24h",
		VisibilityTier: 1,
		ServerAddress:  ":8080",
		LogLevel:       "warn",
	}
}

// Dir returns the config directory path.
// It respects $XDG_CONFIG_HOME if set, otherwise uses ~/.config/.
func Dir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file from disk.
// If the file does not exist, it returns an empty Config (not an error).
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from a specific file path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to a specific file path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Reset deletes the config file.
func Reset() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return ResetAt(path)
}

// ResetAt deletes the config file at a specific path.
func ResetAt(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete config file: %w", err)
	}
	return nil
}

func parseFloat(key, value string, lo, hi float64) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", key, value)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("invalid %s %q: must be between %g and %g", key, value, lo, hi)
	}
	return v, nil
}

// Set sets a config key to the given value.
// It validates the key name and parses the value into the correct type.
func (c *Config) Set(key, value string) error {
	switch key {
	case "latitude":
		v, err := parseFloat(key, value, -90, 90)
		if err != nil {
			return err
		}
		c.Latitude = &v
	case "longitude":
		v, err := parseFloat(key, value, -180, 180)
		if err != nil {
			return err
		}
		c.Longitude = &v
	case "timezone":
		v, err := parseFloat(key, value, -12, 14)
		if err != nil {
			return err
		}
		c.Timezone = &v
	case "elevation":
		v, err := parseFloat(key, value, 0, 9000)
		if err != nil {
			return err
		}
		c.Elevation = v
	case "use_elevation":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid use_elevation %q: must be true or false", value)
		}
		c.UseElevation = &v
	case "ihtiyat":
		v, err := parseFloat(key, value, 0, 10)
		if err != nil {
			return err
		}
		c.Ihtiyat = v
	case "location_mode":
		switch value {
		case ModeDefault, ModeManual, ModeAuto:
		default:
			return fmt.Errorf("invalid location_mode %q: must be %q, %q or %q", value, ModeDefault, ModeManual, ModeAuto)
		}
		c.LocationMode = value
	case "horizon":
		if _, err := prayer.ParseHorizon(value); err != nil {
			return err
		}
		c.Horizon = value
	case "time_format":
		if value != "12h" && value != "24h" {
			return fmt.Errorf("invalid time_format %q: must be \"12h\" or \"24h\"", value)
		}
		c.TimeFormat = value
	case "prayers":
		for _, n := range strings.Split(value, ",") {
			n = strings.TrimSpace(n)
			if !isValidPrayerName(n) {
				return fmt.Errorf("invalid prayer name %q in prayers list", n)
			}
		}
		c.Prayers = value
	case "visibility_tier":
		v, err := strconv.Atoi(value)
		if err != nil || v < 1 || v > 4 {
			return fmt.Errorf("invalid visibility_tier %q: must be 1, 2, 3 or 4", value)
		}
		c.VisibilityTier = v
	case "cache_dir":
		c.CacheDir = value
	case "server_address":
		c.ServerAddress = value
	case "log_level":
		if _, err := zerolog.ParseLevel(value); err != nil {
			return fmt.Errorf("invalid log_level %q: %w", value, err)
		}
		c.LogLevel = value
	default:
		return fmt.Errorf("%w %q; valid keys: %s", ErrUnknownKey, key, strings.Join(ValidKeys, ", "))
	}
	return nil
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Get returns the string value of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "latitude":
		return formatFloat(c.Latitude), nil
	case "longitude":
		return formatFloat(c.Longitude), nil
	case "timezone":
		return formatFloat(c.Timezone), nil
	case "elevation":
		if c.Elevation == 0 {
			return "", nil
		}
		return formatFloat(&c.Elevation), nil
	case "use_elevation":
		if c.UseElevation == nil {
			return "", nil
		}
		return strconv.FormatBool(*c.UseElevation), nil
	case "ihtiyat":
		if c.Ihtiyat == 0 {
			return "", nil
		}
		return formatFloat(&c.Ihtiyat), nil
	case "location_mode":
		return c.LocationMode, nil
	case "horizon":
		return c.Horizon, nil
	case "time_format":
		return c.TimeFormat, nil
	case "prayers":
		return c.Prayers, nil
	case "visibility_tier":
		if c.VisibilityTier == 0 {
			return "", nil
		}
		return strconv.Itoa(c.VisibilityTier), nil
	case "cache_dir":
		return c.CacheDir, nil
	case "server_address":
		return c.ServerAddress, nil
	case "log_level":
		return c.LogLevel, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
}

func isValidPrayerName(name string) bool {
	for _, n := range prayer.AllPrayerNames {
		if n == name {
			return true
		}
	}
	return false
}

// Merge overlays every key set in o onto c.
func (c *Config) Merge(o *Config) {
	if o.Latitude != nil {
		c.Latitude = o.Latitude
	}
	if o.Longitude != nil {
		c.Longitude = o.Longitude
	}
	if o.Timezone != nil {
		c.Timezone = o.Timezone
	}
	if o.Elevation != 0 {
		c.Elevation = o.Elevation
	}
	if o.UseElevation != nil {
		c.UseElevation = o.UseElevation
	}
	if o.Ihtiyat != 0 {
		c.Ihtiyat = o.Ihtiyat
	}
	if o.LocationMode != "" {
		c.LocationMode = o.LocationMode
	}
	if o.Horizon != "" {
		c.Horizon = o.Horizon
	}
	if o.TimeFormat != "" {
		c.TimeFormat = o.TimeFormat
	}
	if o.Prayers != "" {
		c.Prayers = o.Prayers
	}
	if o.VisibilityTier != 0 {
		c.VisibilityTier = o.VisibilityTier
	}
	if o.CacheDir != "" {
		c.CacheDir = o.CacheDir
	}
	if o.ServerAddress != "" {
		c.ServerAddress = o.ServerAddress
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}
