package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Result records one task's outcome for the run report.
type Result struct {
	Type     TaskType
	Err      error
	Duration time.Duration
}

// Runner executes the enabled generation tasks over the frozen Article
// Index. Tasks run concurrently: the index is read-only and every task
// writes to its own route namespace. One task failing never cancels the
// others; failures are collected into the results.
type Runner struct{}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Run(ctx context.Context, taskList []TaskInterface) []Result {
	results := make([]Result, len(taskList))

	var wg sync.WaitGroup
	for i, task := range taskList {
		wg.Add(1)
		go func(i int, task TaskInterface) {
			defer wg.Done()

			task.Start()
			err := task.Execute(ctx)
			if err != nil {
				slog.Error("Task failed", "type", task.GetType(), "id", task.GetID(), "error", err)
			}

			results[i] = Result{
				Type:     task.GetType(),
				Err:      err,
				Duration: task.GetDuration(),
			}
		}(i, task)
	}
	wg.Wait()

	return results
}

// Failed counts the tasks that ended in error.
func Failed(results []Result) int {
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	return failed
}
