package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contentfab/pageforge/app/config"
	"github.com/contentfab/pageforge/app/content"
)

func TestRobotsGenerator(t *testing.T) {
	publicDir := t.TempDir()
	index := content.NewIndex([]content.Article{testArticle("my-feature")})

	gen := NewRobotsGenerator(publicDir, "https://www.acme.test", config.DefaultRoutes())
	if err := gen.Run(index); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(publicDir, RobotsFileName))
	if err != nil {
		t.Fatal(err)
	}
	robots := string(data)

	if !strings.HasPrefix(robots, "User-agent: *\n") {
		t.Error("Robots policy should open with the wildcard user agent")
	}
	if !strings.Contains(robots, "Allow: /\n") {
		t.Error("Robots policy should allow the root route")
	}
	if !strings.Contains(robots, "Allow: /pricing\n") {
		t.Error("Robots policy should allow static routes")
	}
	if !strings.Contains(robots, "Allow: /my-feature\n") {
		t.Error("Robots policy should allow article routes")
	}
	if !strings.Contains(robots, "Crawl-delay: 1\n") {
		t.Error("Robots policy should set the crawl delay")
	}
	if !strings.Contains(robots, "Sitemap: https://www.acme.test/sitemap.xml\n") {
		t.Error("Robots policy should reference the sitemap")
	}
}
