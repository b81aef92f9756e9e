package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type fakeTask struct {
	Task
	err      error
	executed *atomic.Int32
}

func newFakeTask(taskType TaskType, err error, executed *atomic.Int32) *fakeTask {
	return &fakeTask{Task: NewTask(taskType), err: err, executed: executed}
}

func (t *fakeTask) Execute(ctx context.Context) error {
	t.executed.Add(1)
	return t.err
}

func TestRunnerExecutesAllTasks(t *testing.T) {
	var executed atomic.Int32
	taskList := []TaskInterface{
		newFakeTask(TaskTypeGenerateSitemap, nil, &executed),
		newFakeTask(TaskTypeUpdateRobots, nil, &executed),
		newFakeTask(TaskTypeGenerateFeed, nil, &executed),
	}

	results := NewRunner().Run(context.Background(), taskList)

	if executed.Load() != 3 {
		t.Errorf("Expected 3 tasks executed, got %d", executed.Load())
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if Failed(results) != 0 {
		t.Errorf("Expected no failures, got %d", Failed(results))
	}
}

func TestRunnerIsolatesFailures(t *testing.T) {
	var executed atomic.Int32
	boom := errors.New("boom")
	taskList := []TaskInterface{
		newFakeTask(TaskTypeGeneratePages, boom, &executed),
		newFakeTask(TaskTypeGenerateSitemap, nil, &executed),
	}

	results := NewRunner().Run(context.Background(), taskList)

	if executed.Load() != 2 {
		t.Errorf("Expected the healthy task to run despite the failure, got %d executions", executed.Load())
	}
	if Failed(results) != 1 {
		t.Errorf("Expected exactly 1 failure, got %d", Failed(results))
	}

	for _, result := range results {
		if result.Type == TaskTypeGeneratePages && !errors.Is(result.Err, boom) {
			t.Error("Expected the page task result to carry its error")
		}
		if result.Type == TaskTypeGenerateSitemap && result.Err != nil {
			t.Errorf("Expected the sitemap task to succeed, got: %v", result.Err)
		}
	}
}
