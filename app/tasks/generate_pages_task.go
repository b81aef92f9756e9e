package tasks

import (
	"context"
	"log/slog"

	"github.com/contentfab/pageforge/app/content"
	"github.com/contentfab/pageforge/app/generator"
)

type GeneratePagesTask struct {
	Task
	generator *generator.PageGenerator
	index     *content.Index
}

func NewGeneratePagesTask(gen *generator.PageGenerator, index *content.Index) *GeneratePagesTask {
	return &GeneratePagesTask{
		Task:      NewTask(TaskTypeGeneratePages),
		generator: gen,
		index:     index,
	}
}

func (t *GeneratePagesTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	written, failed, err := t.generator.Run(t.index)
	if err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", t.Type,
		"duration", t.GetDuration(),
		"written", written,
		"failed", failed)

	return nil
}
