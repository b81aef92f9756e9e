package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/contentfab/pageforge/app/cfg"
	"github.com/contentfab/pageforge/app/config"
	"github.com/contentfab/pageforge/app/content"
	"github.com/contentfab/pageforge/app/generator"
	"github.com/contentfab/pageforge/app/tasks"
	"github.com/contentfab/pageforge/app/watcher"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	switch appCfg.Command {
	case "sync":
		if err := runSync(appCfg, false); err != nil {
			slog.Error("Sync failed", "error", err)
			os.Exit(1)
		}
	case "deploy":
		if err := runSync(appCfg, true); err != nil {
			slog.Error("Deploy failed", "error", err)
			os.Exit(1)
		}
	case "watch":
		if err := runWatch(appCfg); err != nil {
			slog.Error("Watch failed", "error", err)
			os.Exit(1)
		}
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", appCfg.Command)
		printUsage()
		os.Exit(1)
	}
}

// runSync executes one pipeline run. deployOnly restricts the run to page
// generation, skipping the blog index, sitemap, robots and feed updates.
// Per-article failures are logged and excluded without touching the exit
// code; only configuration errors are returned.
func runSync(appCfg *cfg.Cfg, deployOnly bool) error {
	start := time.Now()
	runID := uuid.NewString()

	slog.Info("Starting content sync",
		"run", runID,
		"version", appCfg.Version,
		"content_dir", appCfg.ContentDir)

	siteConfig, err := config.NewLoader(appCfg.SiteConfig).Load()
	if err != nil {
		return err
	}
	if appCfg.BaseUrl != "" {
		siteConfig.Site.BaseURL = appCfg.BaseUrl
	}

	scanner := content.NewScanner(appCfg.ContentDir)
	drafts, counts, err := scanner.Run()
	if err != nil {
		return err
	}
	slog.Info("Drafts discovered",
		"run", runID,
		"product_pages", counts[content.ProductPagesBucket],
		"blog_posts", counts[content.BlogPostsBucket])

	extractor := content.NewExtractor(siteConfig.Categories)
	articles := make([]content.Article, 0, len(drafts))
	extractFailed := 0
	for _, draft := range drafts {
		article, err := extractor.Run(draft)
		if err != nil {
			slog.Error("Failed to extract draft", "path", draft.Path, "error", err)
			extractFailed++
			continue
		}
		articles = append(articles, *article)
	}

	// From here on the index is frozen: downstream tasks only read it.
	index := content.NewIndex(articles)

	var taskList []tasks.TaskInterface

	if appCfg.AutoDeployPages {
		pageGen := generator.NewPageGenerator(appCfg.PagesDir, siteConfig.Site)
		taskList = append(taskList, tasks.NewGeneratePagesTask(pageGen, index))
	} else {
		slog.Info("Page generation disabled, skipping")
	}

	if !deployOnly {
		updater := generator.NewBlogIndexUpdater(appCfg.BlogIndexFile)
		taskList = append(taskList, tasks.NewUpdateBlogIndexTask(updater, index))

		if appCfg.GenerateSitemap {
			sitemapGen := generator.NewSitemapGenerator(appCfg.PublicDir, siteConfig.Site.BaseURL, siteConfig.Routes)
			taskList = append(taskList, tasks.NewGenerateSitemapTask(sitemapGen, index))
		}
		if appCfg.UpdateRobots {
			robotsGen := generator.NewRobotsGenerator(appCfg.PublicDir, siteConfig.Site.BaseURL, siteConfig.Routes)
			taskList = append(taskList, tasks.NewUpdateRobotsTask(robotsGen, index))
		}
		if appCfg.GenerateFeed {
			feedGen := generator.NewFeedGenerator(appCfg.PublicDir, siteConfig.Site, appCfg.Version)
			taskList = append(taskList, tasks.NewGenerateFeedTask(feedGen, index))
		}
	}

	results := tasks.NewRunner().Run(context.Background(), taskList)

	slog.Info("Sync finished",
		"run", runID,
		"articles", index.Len(),
		"extract_failed", extractFailed,
		"tasks", len(results),
		"task_failures", tasks.Failed(results),
		"duration", time.Since(start))

	return nil
}

// runWatch performs one full sync, then re-runs it whenever drafts change.
func runWatch(appCfg *cfg.Cfg) error {
	if err := runSync(appCfg, false); err != nil {
		return err
	}

	w, err := watcher.New(appCfg.ContentDir)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		slog.Info("Received signal, stopping watch", "signal", sig.String())
		cancel()
	}()

	slog.Info("Watching for draft changes", "content_dir", appCfg.ContentDir)

	buckets := []string{content.ProductPagesBucket, content.BlogPostsBucket}
	return w.Run(ctx, buckets, func() {
		if err := runSync(appCfg, false); err != nil {
			slog.Error("Sync failed", "error", err)
		}
	})
}

func printUsage() {
	fmt.Println("Usage: pageforge [OPTIONS] <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sync     Run the full pipeline: pages, blog index, sitemap, robots, feed (default)")
	fmt.Println("  deploy   Scan drafts and generate pages only")
	fmt.Println("  watch    Run sync, then re-run it when drafts change")
	fmt.Println("  help     Show this message")
	fmt.Println()
	fmt.Println("Run 'pageforge --help' for the full option list.")
}
