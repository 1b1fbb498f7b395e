package app

import "fmt"

// Generation modes.
const (
	// ModeProject renders the project descriptor directly.
	ModeProject = "project"
	// ModeManifest writes a Swift package manifest and delegates project
	// synthesis to the external package tool.
	ModeManifest = "manifest"
)

// Config carries the validated run configuration.
type Config struct {
	Mode           string
	DescriptorPath string
	OutputDir      string
	Interactive    bool
	LogLevel       string
	LogFormat      string
}

// NewConfig validates and normalizes a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Mode == "" {
		cfg.Mode = ModeProject
	}
	if cfg.Mode != ModeProject && cfg.Mode != ModeManifest {
		return nil, fmt.Errorf("invalid mode %q: must be %q or %q", cfg.Mode, ModeProject, ModeManifest)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return &cfg, nil
}
