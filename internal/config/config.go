package config

import (
	"os"
	"strconv"

	"disasterscope/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Pipeline PipelineConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig holds file upload limits and allow-lists
type UploadConfig struct {
	MaxFileMB  int
	Extensions []string
}

// PipelineConfig holds data-preparation settings
type PipelineConfig struct {
	// Sentinel replaces every null cell during cleaning
	Sentinel string
	// CategoryColumn is the geographic-origin column that gets title-cased
	CategoryColumn string
	// PreviewRows is the size of the raw preview section
	PreviewRows int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Upload: UploadConfig{
			MaxFileMB:  getEnvIntOrDefault("MAX_UPLOAD_MB", 50),
			Extensions: []string{".csv", ".xlsx"},
		},
		Pipeline: PipelineConfig{
			Sentinel:       getEnvOrDefault("SENTINEL", "Unknown"),
			CategoryColumn: getEnvOrDefault("CATEGORY_COLUMN", "country"),
			PreviewRows:    getEnvIntOrDefault("PREVIEW_ROWS", 5),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if cfg.Upload.MaxFileMB <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	if cfg.Pipeline.Sentinel == "" {
		return errors.ConfigInvalid("SENTINEL must not be empty")
	}
	if cfg.Pipeline.PreviewRows <= 0 {
		return errors.ConfigInvalid("PREVIEW_ROWS must be positive")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
