package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML form of the tunable settings. Input and output
// paths are positional arguments only.
type FileConfig struct {
	Resampler   string `toml:"resampler"`
	SizeCheck   string `toml:"size_check"`
	JPEGQuality int    `toml:"jpeg_quality"`
	Sidecar     *bool  `toml:"sidecar"`
	LogLevel    string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.imgweave/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".imgweave", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file settings into cfg, skipping flags in changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("resampler", fc.Resampler, &cfg.Resampler)
	s.setString("size-check", fc.SizeCheck, &cfg.SizeCheck)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setInt("jpeg-quality", fc.JPEGQuality, &cfg.JPEGQuality)
	s.setBool("sidecar", fc.Sidecar, &cfg.Sidecar)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
