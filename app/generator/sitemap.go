package generator

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/contentfab/pageforge/app/config"
	"github.com/contentfab/pageforge/app/content"
)

// SitemapFileName is the sitemap document under the public assets root.
const SitemapFileName = "sitemap.xml"

// SitemapGenerator emits the sitemap document: every static route followed
// by every article route. The sitemap is fully regenerated each run; the
// Article Index is its single source of truth, so staleness cannot
// accumulate.
type SitemapGenerator struct {
	publicDir string
	baseURL   string
	routes    []config.StaticRoute
}

func NewSitemapGenerator(publicDir, baseURL string, routes []config.StaticRoute) *SitemapGenerator {
	return &SitemapGenerator{publicDir: publicDir, baseURL: baseURL, routes: routes}
}

func (g *SitemapGenerator) Run(index *content.Index) error {
	path := filepath.Join(g.publicDir, SitemapFileName)

	if err := os.MkdirAll(g.publicDir, 0755); err != nil {
		return fmt.Errorf("failed to create public directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(g.render(index)), 0644); err != nil {
		return fmt.Errorf("failed to write sitemap: %w", err)
	}

	slog.Debug("Sitemap written", "path", path, "routes", len(g.routes), "articles", index.Len())

	return nil
}

func (g *SitemapGenerator) render(index *content.Index) string {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	buf.WriteString("\n")

	for _, route := range g.routes {
		g.writeURL(&buf, g.baseURL+routePath(route.Path), "", route.ChangeFreq, route.Priority)
	}

	for _, article := range index.Articles() {
		changeFreq, priority := "monthly", 0.7
		if article.Featured {
			changeFreq, priority = "weekly", 0.9
		}
		g.writeURL(&buf, g.baseURL+article.URL, article.LastModified.Format("2006-01-02"), changeFreq, priority)
	}

	buf.WriteString("</urlset>\n")

	return buf.String()
}

func (g *SitemapGenerator) writeURL(buf *bytes.Buffer, loc, lastMod, changeFreq string, priority float64) {
	buf.WriteString("  <url>\n")
	g.writeElement(buf, "loc", loc, 4)
	if lastMod != "" {
		g.writeElement(buf, "lastmod", lastMod, 4)
	}
	g.writeElement(buf, "changefreq", changeFreq, 4)
	g.writeElement(buf, "priority", strconv.FormatFloat(priority, 'f', 1, 64), 4)
	buf.WriteString("  </url>\n")
}

func (g *SitemapGenerator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

// routePath keeps the root route from doubling the trailing slash.
func routePath(path string) string {
	if path == "/" {
		return ""
	}
	return path
}
