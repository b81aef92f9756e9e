package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"

	"github.com/contentfab/pageforge/app/content"
)

func TestFeedGeneratorRoundTrip(t *testing.T) {
	publicDir := t.TempDir()
	index := content.NewIndex([]content.Article{testArticle("my-feature")})

	gen := NewFeedGenerator(publicDir, testSite(), "test")
	if err := gen.Run(index); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(publicDir, FeedFileName))
	if err != nil {
		t.Fatal(err)
	}

	// The emitted document must survive a real feed parser
	parsed, err := gofeed.NewParser().ParseString(string(data))
	if err != nil {
		t.Fatalf("Expected parseable RSS, got: %v", err)
	}

	if parsed.Title != "Acme" {
		t.Errorf("Expected channel title 'Acme', got '%s'", parsed.Title)
	}
	if parsed.Link != "https://www.acme.test" {
		t.Errorf("Expected channel link, got '%s'", parsed.Link)
	}
	if len(parsed.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(parsed.Items))
	}

	item := parsed.Items[0]
	if item.Title != "My Feature" {
		t.Errorf("Expected item title 'My Feature', got '%s'", item.Title)
	}
	if item.Link != "https://www.acme.test/my-feature" {
		t.Errorf("Expected item link, got '%s'", item.Link)
	}
	if item.PublishedParsed == nil {
		t.Error("Expected a parseable pubDate")
	}
	if len(item.Categories) != 1 || item.Categories[0] != "Product Management" {
		t.Errorf("Expected item category, got %v", item.Categories)
	}
}

func TestFeedEscapesContent(t *testing.T) {
	publicDir := t.TempDir()

	article := testArticle("tricky")
	article.Title = `Ampersands & <angles>`
	index := content.NewIndex([]content.Article{article})

	gen := NewFeedGenerator(publicDir, testSite(), "test")
	if err := gen.Run(index); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(filepath.Join(publicDir, FeedFileName))
	feed := string(data)

	if strings.Contains(feed, "<title>Ampersands & <angles></title>") {
		t.Error("Expected title escaped for XML")
	}
	if !strings.Contains(feed, "Ampersands &amp; &lt;angles&gt;") {
		t.Errorf("Expected escaped entities, got: %s", feed)
	}
}
