package tasks

import (
	"context"
	"errors"
	"log/slog"

	"github.com/contentfab/pageforge/app/content"
	"github.com/contentfab/pageforge/app/generator"
)

type UpdateBlogIndexTask struct {
	Task
	updater *generator.BlogIndexUpdater
	index   *content.Index
}

func NewUpdateBlogIndexTask(updater *generator.BlogIndexUpdater, index *content.Index) *UpdateBlogIndexTask {
	return &UpdateBlogIndexTask{
		Task:    NewTask(TaskTypeUpdateBlogIndex),
		updater: updater,
		index:   index,
	}
}

func (t *UpdateBlogIndexTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.updater.Run(t.index); err != nil {
		// A missing marker is structural, not fatal: the listing simply is
		// not updated this run.
		if errors.Is(err, generator.ErrMarkerNotFound) {
			slog.Warn("Blog index not updated", "reason", err)
			return nil
		}
		return err
	}

	slog.Info("Task completed",
		"type", t.Type,
		"duration", t.GetDuration(),
		"articles", t.index.Len())

	return nil
}
