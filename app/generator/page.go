package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/contentfab/pageforge/app/config"
	"github.com/contentfab/pageforge/app/content"
	"github.com/contentfab/pageforge/app/markup"
	"github.com/contentfab/pageforge/app/seo"
)

// PageFileName is the generated page source file inside each route directory.
const PageFileName = "page.tsx"

var ErrSlugCollision = errors.New("articles collapse to the same url")

var wordSplitRe = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Page describes one generated page source file before serialization.
type Page struct {
	Article content.Article
	SEO     seo.Metadata
	Body    string
}

// PageGenerator emits one page source file per article. The pipeline is the
// sole owner of generated pages: existing files are overwritten, hand-edits
// are not preserved.
type PageGenerator struct {
	pagesDir    string
	site        config.SiteInfo
	converter   *markup.Converter
	synthesizer *seo.Synthesizer
}

func NewPageGenerator(pagesDir string, site config.SiteInfo) *PageGenerator {
	return &PageGenerator{
		pagesDir:    pagesDir,
		site:        site,
		converter:   markup.NewConverter(),
		synthesizer: seo.NewSynthesizer(site),
	}
}

// Run writes a page for every article in the index and returns the written
// and failed counts. A single article's write failure is logged and skipped;
// a slug collision aborts generation with ErrSlugCollision before the
// colliding page overwrites its predecessor.
func (g *PageGenerator) Run(index *content.Index) (int, int, error) {
	owners := make(map[string]string)
	written, failed := 0, 0

	for _, article := range index.Articles() {
		if prev, ok := owners[article.URL]; ok {
			return written, failed, fmt.Errorf("%w: %s and %s both map to %s",
				ErrSlugCollision, prev, article.ID, article.URL)
		}
		owners[article.URL] = article.ID

		page := Page{
			Article: article,
			SEO:     g.synthesizer.Run(article),
			Body:    g.converter.Run(article.RawContent),
		}

		if err := g.writePage(page); err != nil {
			slog.Error("Failed to write page", "article", article.ID, "error", err)
			failed++
			continue
		}

		written++
		slog.Debug("Page written", "article", article.ID, "url", article.URL)
	}

	return written, failed, nil
}

func (g *PageGenerator) writePage(page Page) error {
	dir := filepath.Join(g.pagesDir, strings.TrimPrefix(page.Article.URL, "/"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create page directory: %w", err)
	}

	path := filepath.Join(dir, PageFileName)
	if err := os.WriteFile(path, []byte(g.render(page)), 0644); err != nil {
		return fmt.Errorf("failed to write page file: %w", err)
	}

	return nil
}

// render serializes the page description into Next.js page source. The Page
// struct plus this serializer is the single place where user content meets
// generated code, so escaping stays centralized.
func (g *PageGenerator) render(p Page) string {
	var buf bytes.Buffer

	buf.WriteString("// Generated by pageforge. Do not edit: the next sync run overwrites this file.\n")
	buf.WriteString("import type { Metadata } from \"next\";\n")
	buf.WriteString("import Link from \"next/link\";\n\n")

	buf.WriteString("export const metadata: Metadata = {\n")
	writeStringField(&buf, "title", p.SEO.MetaTitle, 2)
	writeStringField(&buf, "description", p.SEO.MetaDescription, 2)
	writeStringListField(&buf, "keywords", p.SEO.Keywords, 2)
	buf.WriteString("  alternates: {\n")
	writeStringField(&buf, "canonical", p.SEO.CanonicalURL, 4)
	buf.WriteString("  },\n")
	buf.WriteString("  openGraph: {\n")
	writeStringField(&buf, "title", p.SEO.MetaTitle, 4)
	writeStringField(&buf, "description", p.SEO.MetaDescription, 4)
	writeStringField(&buf, "url", p.SEO.OgURL, 4)
	buf.WriteString("    type: \"article\",\n")
	writeStringListField(&buf, "images", []string{p.SEO.OgImage}, 4)
	buf.WriteString("  },\n")
	buf.WriteString("  twitter: {\n")
	buf.WriteString("    card: \"summary_large_image\",\n")
	writeStringField(&buf, "site", g.site.SocialHandle, 4)
	writeStringField(&buf, "title", p.SEO.MetaTitle, 4)
	writeStringField(&buf, "description", p.SEO.MetaDescription, 4)
	writeStringListField(&buf, "images", []string{p.SEO.TwitterImage}, 4)
	buf.WriteString("  },\n")
	buf.WriteString("};\n\n")

	schema, _ := json.Marshal(p.SEO.Schema)

	buf.WriteString(fmt.Sprintf("export default function %s() {\n", componentName(p.Article.ID)))
	buf.WriteString("  return (\n")
	buf.WriteString("    <article className=\"mx-auto max-w-4xl px-6 py-16\">\n")
	buf.WriteString("      <script\n")
	buf.WriteString("        type=\"application/ld+json\"\n")
	buf.WriteString(fmt.Sprintf("        dangerouslySetInnerHTML={{ __html: \"%s\" }}\n", escapeJS(string(schema))))
	buf.WriteString("      />\n")

	buf.WriteString("      <header className=\"mb-12\">\n")
	buf.WriteString(fmt.Sprintf("        <p className=\"text-sm uppercase tracking-wide text-blue-600\">%s &middot; %s</p>\n",
		escapeJSX(p.Article.Category), escapeJSX(p.Article.ReadTime)))
	buf.WriteString(fmt.Sprintf("        <h1 className=\"mt-4 text-5xl font-bold\">%s</h1>\n",
		escapeJSX(p.Article.Title)))
	buf.WriteString(fmt.Sprintf("        <p className=\"mt-6 text-xl text-gray-600\">%s</p>\n",
		escapeJSX(p.Article.Description)))
	buf.WriteString("        <div className=\"mt-8 flex gap-4\">\n")
	buf.WriteString("          <Link href=\"/contact\" className=\"rounded-lg bg-blue-600 px-6 py-3 text-white\">Get Started</Link>\n")
	buf.WriteString("          <Link href=\"/product\" className=\"rounded-lg border border-blue-600 px-6 py-3 text-blue-600\">See the Platform</Link>\n")
	buf.WriteString("        </div>\n")
	buf.WriteString("      </header>\n")

	buf.WriteString("      <div className=\"prose prose-lg max-w-none\">\n")
	writeIndented(&buf, p.Body, 8)
	buf.WriteString("      </div>\n")

	buf.WriteString("      <footer className=\"mt-16 rounded-2xl bg-gray-50 p-8 text-center\">\n")
	buf.WriteString("        <h2 className=\"text-2xl font-bold\">Ready to get started?</h2>\n")
	buf.WriteString(fmt.Sprintf("        <p className=\"mt-2 text-gray-600\">See how %s works in practice.</p>\n",
		escapeJSX(p.Article.Keyword)))
	buf.WriteString("        <Link href=\"/contact\" className=\"mt-6 inline-block rounded-lg bg-blue-600 px-8 py-3 text-white\">Book a Demo</Link>\n")
	buf.WriteString("      </footer>\n")

	buf.WriteString("    </article>\n")
	buf.WriteString("  );\n")
	buf.WriteString("}\n")

	return buf.String()
}

func writeStringField(buf *bytes.Buffer, key, value string, indent int) {
	buf.WriteString(strings.Repeat(" ", indent))
	buf.WriteString(key)
	buf.WriteString(`: "`)
	buf.WriteString(escapeJS(value))
	buf.WriteString("\",\n")
}

func writeStringListField(buf *bytes.Buffer, key string, values []string, indent int) {
	buf.WriteString(strings.Repeat(" ", indent))
	buf.WriteString(key)
	buf.WriteString(": [")
	for i, value := range values {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(`"`)
		buf.WriteString(escapeJS(value))
		buf.WriteString(`"`)
	}
	buf.WriteString("],\n")
}

func writeIndented(buf *bytes.Buffer, body string, indent int) {
	pad := strings.Repeat(" ", indent)
	for _, line := range strings.Split(body, "\n") {
		if line == "" {
			buf.WriteString("\n")
			continue
		}
		buf.WriteString(pad)
		buf.WriteString(line)
		buf.WriteString("\n")
	}
}

// componentName derives the exported component symbol from the draft id,
// e.g. "my-feature" becomes MyFeaturePage. An id starting with a digit
// ("2024-review") gets the marker as a prefix instead, since a JS
// identifier cannot begin with a digit.
func componentName(id string) string {
	var b strings.Builder
	for _, part := range wordSplitRe.Split(id, -1) {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}

	name := b.String()
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		return "Page" + name
	}
	return name + "Page"
}
