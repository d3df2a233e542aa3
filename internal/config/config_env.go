package config

import "os"

// ApplyEnvConfig applies IMGWEAVE_* environment variables to cfg, skipping
// flags in changed.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("resampler", os.Getenv("IMGWEAVE_RESAMPLER"), &cfg.Resampler)
	s.setString("size-check", os.Getenv("IMGWEAVE_SIZE_CHECK"), &cfg.SizeCheck)
	s.setString("log-level", os.Getenv("IMGWEAVE_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("jpeg-quality", os.Getenv("IMGWEAVE_JPEG_QUALITY"), &cfg.JPEGQuality); err != nil {
		return err
	}

	s.setBoolFromString("sidecar", os.Getenv("IMGWEAVE_SIDECAR"), &cfg.Sidecar)

	return nil
}
