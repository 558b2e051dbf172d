// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds runtime configuration. All values come from environment
// variables with sensible defaults; a .env file can populate the environment
// before this is read.
type Config struct {
	// Port is the HTTP listen port (PORT, default 8080).
	Port int
	// TaxonomyPath optionally points at a JSON taxonomy override file
	// (TAXONOMY_PATH). Empty means the compiled-in catalog.
	TaxonomyPath string
	// BatchConcurrency bounds parallel resume analysis in batch mode
	// (BATCH_CONCURRENCY, default 4).
	BatchConcurrency int
	// MaxUploadBytes caps the size of an uploaded resume
	// (MAX_UPLOAD_BYTES, default 10 MiB).
	MaxUploadBytes int64
}

// FromEnv creates a Config from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:             8080,
		TaxonomyPath:     os.Getenv("TAXONOMY_PATH"),
		BatchConcurrency: 4,
		MaxUploadBytes:   10 << 20,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if concStr := os.Getenv("BATCH_CONCURRENCY"); concStr != "" {
		conc, err := strconv.Atoi(concStr)
		if err != nil {
			return nil, fmt.Errorf("invalid BATCH_CONCURRENCY: %v", err)
		}
		cfg.BatchConcurrency = conc
	}

	if sizeStr := os.Getenv("MAX_UPLOAD_BYTES"); sizeStr != "" {
		size, err := strconv.ParseInt(sizeStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %v", err)
		}
		cfg.MaxUploadBytes = size
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port must be in 1-65535, got: %d", c.Port)
	}
	if c.BatchConcurrency < 1 {
		return fmt.Errorf("config error: batch concurrency must be at least 1, got: %d", c.BatchConcurrency)
	}
	if c.MaxUploadBytes < 1 {
		return fmt.Errorf("config error: max upload size must be positive, got: %d", c.MaxUploadBytes)
	}
	if c.TaxonomyPath != "" {
		if _, err := os.Stat(c.TaxonomyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.TaxonomyPath)
		}
	}
	return nil
}
