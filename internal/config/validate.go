package config

import "fmt"

// Validate checks a loaded configuration for values the pipeline cannot
// run with. It is separate from loading so programmatically constructed
// configs go through the same checks.
func Validate(cfg *Config) error {
	if len(cfg.Paths.Sources) == 0 {
		return fmt.Errorf("paths.sources must contain at least one pattern")
	}

	if cfg.Extraction.Workers < 1 {
		return fmt.Errorf("extraction.workers must be at least 1, got %d", cfg.Extraction.Workers)
	}
	if cfg.Extraction.CacheCapacity < 1 {
		return fmt.Errorf("extraction.cache_capacity must be at least 1, got %d", cfg.Extraction.CacheCapacity)
	}

	switch cfg.Render.ImageFormat {
	case "png", "svg":
	default:
		return fmt.Errorf("render.image_format must be png or svg, got %q", cfg.Render.ImageFormat)
	}

	return nil
}
