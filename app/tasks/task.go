package tasks

import (
	"time"

	"github.com/google/uuid"
)

type TaskType string

const (
	TaskTypeGeneratePages   TaskType = "generate_pages"
	TaskTypeUpdateBlogIndex TaskType = "update_blog_index"
	TaskTypeGenerateSitemap TaskType = "generate_sitemap"
	TaskTypeUpdateRobots    TaskType = "update_robots"
	TaskTypeGenerateFeed    TaskType = "generate_feed"
)

type Task struct {
	ID        string
	Type      TaskType
	StartedAt *time.Time
}

func (t *Task) GetID() string {
	return t.ID
}

func (t *Task) GetType() TaskType {
	return t.Type
}

func (t *Task) Start() {
	now := time.Now()
	t.StartedAt = &now
}

func (t *Task) GetDuration() time.Duration {
	if t.StartedAt == nil {
		return 0
	}
	return time.Since(*t.StartedAt)
}

func NewTask(taskType TaskType) Task {
	return Task{
		ID:   uuid.NewString(),
		Type: taskType,
	}
}
