package config

// SiteConfig represents the complete site configuration
type SiteConfig struct {
	Site       SiteInfo       `yaml:"site"`
	Routes     []StaticRoute  `yaml:"routes"`
	Categories []CategoryRule `yaml:"categories"`
}

// SiteInfo contains the site identity embedded in generated artifacts
type SiteInfo struct {
	Title        string `yaml:"title"`
	BaseURL      string `yaml:"base_url"`
	Author       string `yaml:"author"`
	SocialHandle string `yaml:"social_handle"`
	DefaultImage string `yaml:"default_image"`
}

// StaticRoute is one fixed top-level route listed in the sitemap and
// robots policy alongside the generated article routes
type StaticRoute struct {
	Path       string  `yaml:"path"`
	ChangeFreq string  `yaml:"change_freq"`
	Priority   float64 `yaml:"priority"`
}

// CategoryRule assigns a category to articles whose filename contains any
// of the listed fragments. Rules are evaluated in order, first match wins.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}
