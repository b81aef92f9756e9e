package tasks

import (
	"context"
	"log/slog"

	"github.com/contentfab/pageforge/app/content"
	"github.com/contentfab/pageforge/app/generator"
)

type GenerateFeedTask struct {
	Task
	generator *generator.FeedGenerator
	index     *content.Index
}

func NewGenerateFeedTask(gen *generator.FeedGenerator, index *content.Index) *GenerateFeedTask {
	return &GenerateFeedTask{
		Task:      NewTask(TaskTypeGenerateFeed),
		generator: gen,
		index:     index,
	}
}

func (t *GenerateFeedTask) Execute(ctx context.Context) error {
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
		"items", t.index.Len())

	return nil
}
