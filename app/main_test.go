package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contentfab/pageforge/app/cfg"
	"github.com/contentfab/pageforge/app/content"
	"github.com/contentfab/pageforge/app/generator"
)

func setupSyncWorkspace(t *testing.T) *cfg.Cfg {
	t.Helper()
	root := t.TempDir()

	bucketDir := filepath.Join(root, "content-factory", content.BlogPostsBucket)
	if err := os.MkdirAll(bucketDir, 0755); err != nil {
		t.Fatal(err)
	}
	draft := "# My Feature\n\nResource management for busy teams.\n"
	if err := os.WriteFile(filepath.Join(bucketDir, "my-feature.md"), []byte(draft), 0644); err != nil {
		t.Fatal(err)
	}

	publicDir := filepath.Join(root, "public")
	if err := os.MkdirAll(publicDir, 0755); err != nil {
		t.Fatal(err)
	}

	blogIndex := filepath.Join(root, "blog-page.tsx")
	blogBody := "// BEGIN GENERATED ARTICLES\nconst blogArticles = [];\n// END GENERATED ARTICLES\n"
	if err := os.WriteFile(blogIndex, []byte(blogBody), 0644); err != nil {
		t.Fatal(err)
	}

	return &cfg.Cfg{
		ContentDir:      filepath.Join(root, "content-factory"),
		PagesDir:        filepath.Join(root, "src", "app"),
		PublicDir:       publicDir,
		BlogIndexFile:   blogIndex,
		SiteConfig:      filepath.Join(root, "absent-site.yml"),
		AutoDeployPages: true,
		GenerateSitemap: true,
		UpdateRobots:    true,
		GenerateFeed:    true,
		Command:         "sync",
		Version:         "test",
	}
}

func writeStaleArtifacts(t *testing.T, publicDir string) {
	t.Helper()
	for _, name := range []string{generator.SitemapFileName, generator.RobotsFileName, generator.FeedFileName} {
		if err := os.WriteFile(filepath.Join(publicDir, name), []byte("stale"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunSyncDisabledTogglesLeaveArtifactsUntouched(t *testing.T) {
	appCfg := setupSyncWorkspace(t)
	appCfg.AutoDeployPages = false
	appCfg.GenerateSitemap = false
	appCfg.UpdateRobots = false
	appCfg.GenerateFeed = false
	writeStaleArtifacts(t, appCfg.PublicDir)

	if err := runSync(appCfg, false); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	for _, name := range []string{generator.SitemapFileName, generator.RobotsFileName, generator.FeedFileName} {
		data, err := os.ReadFile(filepath.Join(appCfg.PublicDir, name))
		if err != nil {
			t.Fatalf("Expected %s to survive, got: %v", name, err)
		}
		if string(data) != "stale" {
			t.Errorf("Expected %s untouched with its feature disabled, got: %s", name, data)
		}
	}

	if _, err := os.Stat(filepath.Join(appCfg.PagesDir, "my-feature")); !os.IsNotExist(err) {
		t.Error("Expected no page directory with page generation disabled")
	}

	// The blog index has no toggle and still refreshes
	data, _ := os.ReadFile(appCfg.BlogIndexFile)
	if !strings.Contains(string(data), `id: "my-feature",`) {
		t.Error("Expected blog index updated regardless of toggles")
	}
}

func TestRunSyncEnabledTogglesRegenerateArtifacts(t *testing.T) {
	appCfg := setupSyncWorkspace(t)
	writeStaleArtifacts(t, appCfg.PublicDir)

	if err := runSync(appCfg, false); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	sitemap, _ := os.ReadFile(filepath.Join(appCfg.PublicDir, generator.SitemapFileName))
	if !strings.Contains(string(sitemap), "<urlset") {
		t.Error("Expected sitemap regenerated")
	}
	robots, _ := os.ReadFile(filepath.Join(appCfg.PublicDir, generator.RobotsFileName))
	if !strings.HasPrefix(string(robots), "User-agent: *") {
		t.Error("Expected robots policy regenerated")
	}
	feed, _ := os.ReadFile(filepath.Join(appCfg.PublicDir, generator.FeedFileName))
	if !strings.Contains(string(feed), "<rss") {
		t.Error("Expected feed regenerated")
	}

	page := filepath.Join(appCfg.PagesDir, "my-feature", generator.PageFileName)
	if _, err := os.Stat(page); err != nil {
		t.Errorf("Expected generated page at %s, got: %v", page, err)
	}
}

func TestRunSyncDeployOnlySkipsDocuments(t *testing.T) {
	appCfg := setupSyncWorkspace(t)
	writeStaleArtifacts(t, appCfg.PublicDir)
	original, _ := os.ReadFile(appCfg.BlogIndexFile)

	if err := runSync(appCfg, true); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	for _, name := range []string{generator.SitemapFileName, generator.RobotsFileName, generator.FeedFileName} {
		data, _ := os.ReadFile(filepath.Join(appCfg.PublicDir, name))
		if string(data) != "stale" {
			t.Errorf("Expected %s untouched in deploy mode, got: %s", name, data)
		}
	}

	data, _ := os.ReadFile(appCfg.BlogIndexFile)
	if string(data) != string(original) {
		t.Error("Expected blog index untouched in deploy mode")
	}

	page := filepath.Join(appCfg.PagesDir, "my-feature", generator.PageFileName)
	if _, err := os.Stat(page); err != nil {
		t.Errorf("Expected generated page in deploy mode, got: %v", err)
	}
}
