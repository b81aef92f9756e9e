package cfg

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// Content pipeline paths
	ContentDir    string `long:"content-dir" env:"CONTENT_DIR" default:"./content-factory" description:"Content factory root directory holding draft subdirectories"`
	PagesDir      string `long:"pages-dir" env:"PAGES_DIR" default:"./src/app" description:"Directory where generated page sources are written"`
	PublicDir     string `long:"public-dir" env:"PUBLIC_DIR" default:"./public" description:"Public assets root for sitemap, robots and feed documents"`
	BlogIndexFile string `long:"blog-index" env:"BLOG_INDEX_FILE" default:"./src/app/blog/page.tsx" description:"Hand-maintained blog index page updated in place"`
	SiteConfig    string `long:"site-config" env:"SITE_CONFIG" default:"./site.yml" description:"Site configuration file (optional, defaults apply when missing)"`

	// Site overrides
	BaseUrl string `long:"base-url" env:"BASE_URL" description:"Public base URL, overrides the site configuration (e.g., https://www.example.com)"`

	// Feature toggles
	NoPages   bool `long:"no-pages" env:"NO_PAGES" description:"Skip page generation"`
	NoSitemap bool `long:"no-sitemap" env:"NO_SITEMAP" description:"Skip sitemap generation"`
	NoRobots  bool `long:"no-robots" env:"NO_ROBOTS" description:"Skip robots policy update"`
	NoFeed    bool `long:"no-feed" env:"NO_FEED" description:"Skip RSS feed generation"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)
	parser.Usage = "[OPTIONS] <sync|deploy|watch|help>"

	args, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	command := "sync"
	if len(args) > 0 {
		command = args[0]
	}

	cfg := &Cfg{
		ContentDir:      raw.ContentDir,
		PagesDir:        raw.PagesDir,
		PublicDir:       raw.PublicDir,
		BlogIndexFile:   raw.BlogIndexFile,
		SiteConfig:      raw.SiteConfig,
		BaseUrl:         raw.BaseUrl,
		AutoDeployPages: !raw.NoPages,
		GenerateSitemap: !raw.NoSitemap,
		UpdateRobots:    !raw.NoRobots,
		GenerateFeed:    !raw.NoFeed,
		Command:         command,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	return cfg, nil
}
