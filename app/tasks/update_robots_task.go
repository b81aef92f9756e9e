package tasks

import (
	"context"
	"log/slog"

	"github.com/contentfab/pageforge/app/content"
	"github.com/contentfab/pageforge/app/generator"
)

type UpdateRobotsTask struct {
	Task
	generator *generator.RobotsGenerator
	index     *content.Index
}

func NewUpdateRobotsTask(gen *generator.RobotsGenerator, index *content.Index) *UpdateRobotsTask {
	return &UpdateRobotsTask{
		Task:      NewTask(TaskTypeUpdateRobots),
		generator: gen,
		index:     index,
	}
}

func (t *UpdateRobotsTask) Execute(ctx context.Context) error {
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
		"duration", t.GetDuration())

	return nil
}
