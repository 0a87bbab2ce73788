package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the optional spark configuration file.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Theme    ThemeConfig    `toml:"theme"`
}

// DefaultsConfig holds persistent flag defaults.
type DefaultsConfig struct {
	Lines     *int     `toml:"lines"`
	Wrap      *int     `toml:"wrap"`
	Min       *float64 `toml:"min"`
	Max       *float64 `toml:"max"`
	Color     *string  `toml:"color"`
	Emphasize []string `toml:"emphasize"`
}

// ThemeConfig overrides the terminal color behind each rule color name.
type ThemeConfig struct {
	Grey    *string `toml:"grey"`
	Red     *string `toml:"red"`
	Green   *string `toml:"green"`
	Yellow  *string `toml:"yellow"`
	Blue    *string `toml:"blue"`
	Magenta *string `toml:"magenta"`
	Cyan    *string `toml:"cyan"`
	White   *string `toml:"white"`
}

// Overrides returns the set theme entries keyed by color name.
func (tc ThemeConfig) Overrides() map[string]string {
	out := make(map[string]string)
	for name, v := range map[string]*string{
		"grey":    tc.Grey,
		"red":     tc.Red,
		"green":   tc.Green,
		"yellow":  tc.Yellow,
		"blue":    tc.Blue,
		"magenta": tc.Magenta,
		"cyan":    tc.Cyan,
		"white":   tc.White,
	} {
		if v != nil {
			out[name] = *v
		}
	}
	return out
}

// ConfigPath returns the resolved path to the config file.
func ConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "spark", "config.toml")
}

// Load reads the config file from the XDG path. Returns a zero Config
// (no error) if the file does not exist. Config is always optional.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return Config{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads a config file from an explicit path. A missing file yields
// a zero Config.
func LoadFile(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	return cfg, nil
}
