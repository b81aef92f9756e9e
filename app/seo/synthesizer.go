package seo

import (
	"strings"
	"time"

	"github.com/contentfab/pageforge/app/config"
	"github.com/contentfab/pageforge/app/content"
)

const maxKeywords = 10

// vocabulary is the fixed domain term list scanned for keyword extraction.
// Matching is a case-insensitive substring check against the raw draft text.
var vocabulary = []string{
	"resource management",
	"capacity planning",
	"project management",
	"team utilization",
	"workload management",
	"resource allocation",
	"project planning",
	"team scheduling",
	"resource forecasting",
	"operational intelligence",
	"strategic planning",
	"AI insights",
}

// Synthesizer derives the SEO metadata set for an article. Run is a pure
// function of the article and the site configuration: no I/O, identical
// output on repeated calls.
type Synthesizer struct {
	site config.SiteInfo
}

func NewSynthesizer(site config.SiteInfo) *Synthesizer {
	return &Synthesizer{site: site}
}

func (s *Synthesizer) Run(article content.Article) Metadata {
	canonical := s.site.BaseURL + article.URL
	image := s.site.BaseURL + s.site.DefaultImage
	published := article.LastModified.Format(time.RFC3339)

	return Metadata{
		MetaTitle:       article.Title,
		MetaDescription: article.Description,
		Keywords:        s.extractKeywords(article),
		CanonicalURL:    canonical,
		OgURL:           canonical,
		OgImage:         image,
		TwitterImage:    image,
		Schema: SchemaMarkup{
			Context:       "https://schema.org",
			Type:          "Article",
			Headline:      article.Title,
			Description:   article.Description,
			URL:           canonical,
			DatePublished: published,
			DateModified:  published,
			Author:        Person{Type: "Person", Name: s.site.Author},
			Publisher:     Publisher{Type: "Organization", Name: s.site.Title, URL: s.site.BaseURL},
		},
	}
}

// extractKeywords builds the ordered keyword set: the canonical keyword
// first, then vocabulary terms found in the raw content, no duplicates,
// capped at maxKeywords.
func (s *Synthesizer) extractKeywords(article content.Article) []string {
	keywords := make([]string, 0, maxKeywords)
	seen := make(map[string]bool)

	if article.Keyword != "" {
		keywords = append(keywords, article.Keyword)
		seen[strings.ToLower(article.Keyword)] = true
	}

	haystack := strings.ToLower(article.RawContent)
	for _, term := range vocabulary {
		if len(keywords) >= maxKeywords {
			break
		}
		lower := strings.ToLower(term)
		if seen[lower] {
			continue
		}
		if strings.Contains(haystack, lower) {
			keywords = append(keywords, term)
			seen[lower] = true
		}
	}

	return keywords
}
