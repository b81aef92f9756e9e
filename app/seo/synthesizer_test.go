package seo

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/contentfab/pageforge/app/config"
	"github.com/contentfab/pageforge/app/content"
)

func testSite() config.SiteInfo {
	return config.SiteInfo{
		Title:        "Acme",
		BaseURL:      "https://www.acme.test",
		Author:       "Acme Team",
		SocialHandle: "@acmehq",
		DefaultImage: "/og-image.png",
	}
}

func testArticle() content.Article {
	return content.Article{
		ID:           "capacity-basics",
		Title:        "Capacity Basics",
		Description:  "A primer on capacity planning.",
		Keyword:      "Capacity Basics",
		URL:          "/capacity-basics",
		RawContent:   "Teams need capacity planning and resource allocation to avoid workload management surprises.",
		LastModified: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
	}
}

func TestSynthesizerURLs(t *testing.T) {
	meta := NewSynthesizer(testSite()).Run(testArticle())

	if meta.CanonicalURL != "https://www.acme.test/capacity-basics" {
		t.Errorf("Expected canonical URL, got '%s'", meta.CanonicalURL)
	}
	if meta.OgURL != meta.CanonicalURL {
		t.Errorf("Expected og URL to match canonical, got '%s'", meta.OgURL)
	}
	if meta.OgImage != "https://www.acme.test/og-image.png" {
		t.Errorf("Expected default share image, got '%s'", meta.OgImage)
	}
	if meta.TwitterImage != meta.OgImage {
		t.Errorf("Expected twitter image to match og image, got '%s'", meta.TwitterImage)
	}
}

func TestSynthesizerKeywords(t *testing.T) {
	meta := NewSynthesizer(testSite()).Run(testArticle())

	if len(meta.Keywords) == 0 || meta.Keywords[0] != "Capacity Basics" {
		t.Fatalf("Expected canonical keyword first, got %v", meta.Keywords)
	}

	found := false
	for _, keyword := range meta.Keywords {
		if keyword == "capacity planning" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected 'capacity planning' to be extracted, got %v", meta.Keywords)
	}

	seen := make(map[string]bool)
	for _, keyword := range meta.Keywords {
		if keyword == "" {
			t.Error("Expected no empty keywords")
		}
		lower := strings.ToLower(keyword)
		if seen[lower] {
			t.Errorf("Expected no duplicate keywords, got %v", meta.Keywords)
		}
		seen[lower] = true
	}
}

func TestSynthesizerKeywordCap(t *testing.T) {
	article := testArticle()
	article.RawContent = strings.Join(vocabulary, " ")

	meta := NewSynthesizer(testSite()).Run(article)
	if len(meta.Keywords) > 10 {
		t.Errorf("Expected at most 10 keywords, got %d", len(meta.Keywords))
	}
}

func TestSynthesizerKeywordDedupesCanonical(t *testing.T) {
	article := testArticle()
	article.Keyword = "Capacity Planning"
	article.RawContent = "All about capacity planning."

	meta := NewSynthesizer(testSite()).Run(article)

	count := 0
	for _, keyword := range meta.Keywords {
		if strings.EqualFold(keyword, "capacity planning") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected canonical keyword deduplicated against vocabulary, got %v", meta.Keywords)
	}
}

func TestSynthesizerSchema(t *testing.T) {
	meta := NewSynthesizer(testSite()).Run(testArticle())

	if meta.Schema.Type != "Article" {
		t.Errorf("Expected schema type 'Article', got '%s'", meta.Schema.Type)
	}
	if meta.Schema.Author.Name != "Acme Team" {
		t.Errorf("Expected configured author, got '%s'", meta.Schema.Author.Name)
	}
	if meta.Schema.Publisher.URL != "https://www.acme.test" {
		t.Errorf("Expected publisher URL to be the base URL, got '%s'", meta.Schema.Publisher.URL)
	}
	if meta.Schema.DatePublished != "2026-08-25T10:00:00Z" {
		t.Errorf("Expected RFC3339 publish date, got '%s'", meta.Schema.DatePublished)
	}
}

func TestSynthesizerIsIdempotent(t *testing.T) {
	synthesizer := NewSynthesizer(testSite())
	article := testArticle()

	first := synthesizer.Run(article)
	second := synthesizer.Run(article)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output on repeated runs")
	}
}
