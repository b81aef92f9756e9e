package tasks

import (
	"context"
	"log/slog"

	"github.com/contentfab/pageforge/app/content"
	"github.com/contentfab/pageforge/app/generator"
)

type GenerateSitemapTask struct {
	Task
	generator *generator.SitemapGenerator
	index     *content.Index
}

func NewGenerateSitemapTask(gen *generator.SitemapGenerator, index *content.Index) *GenerateSitemapTask {
	return &GenerateSitemapTask{
		Task:      NewTask(TaskTypeGenerateSitemap),
		generator: gen,
		index:     index,
	}
}

func (t *GenerateSitemapTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.generator.Run(t.index); err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", t.Type,
		"duration", t.GetDuration(),
		"articles", t.index.Len())

	return nil
}
