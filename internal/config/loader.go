package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
	cfgFile string
}

// NewLoader creates a configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// NewLoaderWithFile creates a loader that reads an explicit config file
// instead of searching the root directory.
func NewLoaderWithFile(rootDir, cfgFile string) Loader {
	return &loader{rootDir: rootDir, cfgFile: cfgFile}
}

// Load loads configuration with the following priority (highest first):
// 1. Environment variables (PY2UML_*)
// 2. Config file (.py2uml.yaml in the root directory)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.cfgFile != "" {
		v.SetConfigFile(l.cfgFile)
	} else {
		v.SetConfigName(".py2uml")
		v.SetConfigType("yaml")
		v.AddConfigPath(l.rootDir)
	}

	v.SetEnvPrefix("PY2UML")
	v.AutomaticEnv()
	// Map nested keys to env var names, e.g. PY2UML_EXTRACTION_WORKERS.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("extraction.workers")
	v.BindEnv("extraction.cache_capacity")
	v.BindEnv("render.plantuml_path")
	v.BindEnv("render.image_format")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is acceptable: defaults plus env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("paths.sources", defaults.Paths.Sources)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)

	v.SetDefault("extraction.workers", defaults.Extraction.Workers)
	v.SetDefault("extraction.cache_capacity", defaults.Extraction.CacheCapacity)

	v.SetDefault("render.plantuml_path", defaults.Render.PlantUMLPath)
	v.SetDefault("render.image_format", defaults.Render.ImageFormat)
}
