package generator

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/contentfab/pageforge/app/config"
	"github.com/contentfab/pageforge/app/content"
)

// FeedFileName is the RSS document under the public assets root.
const FeedFileName = "feed.xml"

// FeedGenerator emits an RSS 2.0 document listing every article, newest
// channel metadata from the site configuration. Fully regenerated each run.
type FeedGenerator struct {
	publicDir string
	site      config.SiteInfo
	version   string
}

func NewFeedGenerator(publicDir string, site config.SiteInfo, version string) *FeedGenerator {
	return &FeedGenerator{publicDir: publicDir, site: site, version: version}
}

func (g *FeedGenerator) Run(index *content.Index) error {
	path := filepath.Join(g.publicDir, FeedFileName)

	if err := os.MkdirAll(g.publicDir, 0755); err != nil {
		return fmt.Errorf("failed to create public directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(g.render(index)), 0644); err != nil {
		return fmt.Errorf("failed to write feed: %w", err)
	}

	slog.Debug("Feed written", "path", path, "items", index.Len())

	return nil
}

func (g *FeedGenerator) render(index *content.Index) string {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", g.site.Title, 4)
	g.writeElement(&buf, "link", g.site.BaseURL, 4)
	g.writeElement(&buf, "description", fmt.Sprintf("Latest articles from %s", g.site.Title), 4)

	selfLink := fmt.Sprintf("%s/%s", g.site.BaseURL, FeedFileName)
	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(selfLink)))

	lastBuildDate := time.Now()
	if articles := index.Articles(); len(articles) > 0 {
		lastBuildDate = articles[0].LastModified
	}
	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("PageForge/%s", g.version), 4)

	for _, article := range index.Articles() {
		g.writeItem(&buf, article)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String()
}

func (g *FeedGenerator) writeItem(buf *bytes.Buffer, article content.Article) {
	link := g.site.BaseURL + article.URL

	buf.WriteString("    <item>\n")
	buf.WriteString("      <guid isPermaLink=\"true\">")
	xml.EscapeText(buf, []byte(link))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "title", article.Title, 6)
	g.writeElement(buf, "link", link, 6)
	g.writeElement(buf, "description", article.Description, 6)
	g.writeElement(buf, "category", article.Category, 6)
	g.writeElement(buf, "pubDate", article.LastModified.Format(time.RFC1123Z), 6)

	buf.WriteString("    </item>\n")
}

func (g *FeedGenerator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
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
