// Package config holds the run configuration: which files feed the
// pipeline, how extraction is parallelized, and how diagrams are rendered.
// Values are loaded with defaults → config file → environment priority.
package config

// Config is the complete py2uml configuration. It can be loaded from
// .py2uml.yaml with PY2UML_* environment overrides.
type Config struct {
	Paths      PathsConfig      `yaml:"paths" mapstructure:"paths"`
	Extraction ExtractionConfig `yaml:"extraction" mapstructure:"extraction"`
	Render     RenderConfig     `yaml:"render" mapstructure:"render"`
}

// PathsConfig defines which files to extract from and which to skip.
type PathsConfig struct {
	Sources []string `yaml:"sources" mapstructure:"sources"` // glob patterns for source files
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to ignore
}

// ExtractionConfig tunes the per-file extraction stage.
type ExtractionConfig struct {
	Workers       int `yaml:"workers" mapstructure:"workers"`               // parallel file workers
	CacheCapacity int `yaml:"cache_capacity" mapstructure:"cache_capacity"` // watch-mode result cache entries
}

// RenderConfig controls the optional image-rendering collaborator.
type RenderConfig struct {
	PlantUMLPath string `yaml:"plantuml_path" mapstructure:"plantuml_path"` // plantuml binary, looked up on PATH when empty
	ImageFormat  string `yaml:"image_format" mapstructure:"image_format"`   // "png" or "svg"
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Sources: []string{"**/*.py"},
			Ignore: []string{
				".venv/**",
				"venv/**",
				"__pycache__/**",
				".git/**",
			},
		},
		Extraction: ExtractionConfig{
			Workers:       4,
			CacheCapacity: 1024,
		},
		Render: RenderConfig{
			PlantUMLPath: "",
			ImageFormat:  "png",
		},
	}
}
