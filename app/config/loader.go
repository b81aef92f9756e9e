package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the site configuration
type Loader struct {
	path string
}

// NewLoader creates a new site configuration loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the site configuration file. A missing file is not an error:
// the built-in defaults describe a complete site on their own.
func (l *Loader) Load() (*SiteConfig, error) {
	config := &SiteConfig{}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("Site configuration file not found, using defaults", "path", l.path)
			l.setDefaults(config)
			return config, nil
		}
		return nil, fmt.Errorf("failed to read site configuration: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse site configuration: %w", err)
	}

	l.setDefaults(config)

	if err := l.validate(config); err != nil {
		return nil, fmt.Errorf("invalid site configuration %s: %w", l.path, err)
	}

	slog.Debug("Site configuration loaded", "path", l.path, "routes", len(config.Routes), "categories", len(config.Categories))

	return config, nil
}

// setDefaults applies default values to configuration
func (l *Loader) setDefaults(config *SiteConfig) {
	defaults := defaultSiteInfo()
	if config.Site.Title == "" {
		config.Site.Title = defaults.Title
	}
	if config.Site.BaseURL == "" {
		config.Site.BaseURL = defaults.BaseURL
	}
	if config.Site.Author == "" {
		config.Site.Author = defaults.Author
	}
	if config.Site.SocialHandle == "" {
		config.Site.SocialHandle = defaults.SocialHandle
	}
	if config.Site.DefaultImage == "" {
		config.Site.DefaultImage = defaults.DefaultImage
	}
	if len(config.Routes) == 0 {
		config.Routes = DefaultRoutes()
	}
	if len(config.Categories) == 0 {
		config.Categories = DefaultCategories()
	}
}

// validate validates the configuration
func (l *Loader) validate(config *SiteConfig) error {
	if config.Site.BaseURL == "" {
		return fmt.Errorf("site base URL is required")
	}
	if config.Site.Author == "" {
		return fmt.Errorf("site author is required")
	}

	validFreqs := map[string]bool{
		"always":  true,
		"hourly":  true,
		"daily":   true,
		"weekly":  true,
		"monthly": true,
		"yearly":  true,
		"never":   true,
	}

	for i, route := range config.Routes {
		if route.Path == "" {
			return fmt.Errorf("route at index %d has no path", i)
		}
		if !validFreqs[route.ChangeFreq] {
			return fmt.Errorf("invalid change frequency for route %s: %s", route.Path, route.ChangeFreq)
		}
		if route.Priority < 0 || route.Priority > 1 {
			return fmt.Errorf("priority for route %s must be between 0.0 and 1.0", route.Path)
		}
	}

	for i, rule := range config.Categories {
		if rule.Name == "" {
			return fmt.Errorf("category rule at index %d has no name", i)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("category rule %s must have at least one keyword", rule.Name)
		}
	}

	return nil
}
