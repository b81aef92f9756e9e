package generator

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/contentfab/pageforge/app/config"
	"github.com/contentfab/pageforge/app/content"
)

// RobotsFileName is the robots policy document under the public assets root.
const RobotsFileName = "robots.txt"

const crawlDelay = 1

// RobotsGenerator emits the robots policy: crawl access for every static
// route and article route, a crawl delay, and the sitemap reference. Fully
// regenerated each run, same rationale as the sitemap.
type RobotsGenerator struct {
	publicDir string
	baseURL   string
	routes    []config.StaticRoute
}

func NewRobotsGenerator(publicDir, baseURL string, routes []config.StaticRoute) *RobotsGenerator {
	return &RobotsGenerator{publicDir: publicDir, baseURL: baseURL, routes: routes}
}

func (g *RobotsGenerator) Run(index *content.Index) error {
	path := filepath.Join(g.publicDir, RobotsFileName)

	if err := os.MkdirAll(g.publicDir, 0755); err != nil {
		return fmt.Errorf("failed to create public directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(g.render(index)), 0644); err != nil {
		return fmt.Errorf("failed to write robots policy: %w", err)
	}

	slog.Debug("Robots policy written", "path", path)

	return nil
}

func (g *RobotsGenerator) render(index *content.Index) string {
	var buf bytes.Buffer

	buf.WriteString("User-agent: *\n")

	for _, route := range g.routes {
		buf.WriteString("Allow: ")
		buf.WriteString(route.Path)
		buf.WriteString("\n")
	}

	for _, article := range index.Articles() {
		buf.WriteString("Allow: ")
		buf.WriteString(article.URL)
		buf.WriteString("\n")
	}

	buf.WriteString(fmt.Sprintf("\nCrawl-delay: %d\n", crawlDelay))
	buf.WriteString(fmt.Sprintf("\nSitemap: %s/%s\n", g.baseURL, SitemapFileName))

	return buf.String()
}
