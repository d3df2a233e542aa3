package config

import (
	"fmt"
	"strconv"

	"github.com/davesmith10/imgweave/internal/output"
	"github.com/davesmith10/imgweave/internal/resample"
)

// Config holds everything a weave run needs. It is built once in main and
// passed down; nothing below the command reads process state.
type Config struct {
	Image1 string
	Image2 string
	Output string

	Resampler   string
	SizeCheck   string
	JPEGQuality int
	Sidecar     bool
	LogLevel    string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Resampler:   resample.Default,
		SizeCheck:   output.PolicyCapacity.String(),
		JPEGQuality: 95,
		LogLevel:    "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Image1 == "" || c.Image2 == "" {
		return fmt.Errorf("two input images are required")
	}
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if _, err := resample.New(c.Resampler); err != nil {
		return err
	}
	if _, err := output.ParseSizePolicy(c.SizeCheck); err != nil {
		return err
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be between 1 and 100, got %d", c.JPEGQuality)
	}
	return nil
}

// SizePolicy returns the parsed size check. Call Validate first.
func (c *Config) SizePolicy() output.SizePolicy {
	p, _ := output.ParseSizePolicy(c.SizeCheck)
	return p
}

// configSetter applies values only where the matching flag was not set on
// the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses an environment value as a positive int.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString treats "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

// Resolve layers the config file at path (when it exists) and the
// environment over cfg, then validates it. Flags named in changed keep the
// values already in cfg.
func Resolve(cfg *Config, path string, changed map[string]bool) error {
	if path != "" && FileExists(path) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		ApplyFileConfig(cfg, fc, changed)
	}
	if err := ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}
