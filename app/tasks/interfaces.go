package tasks

import (
	"context"
	"time"
)

// TaskInterface is one unit of downstream generation work. Tasks read the
// frozen Article Index and write to disjoint filesystem namespaces, so the
// runner may execute them concurrently without locking.
type TaskInterface interface {
	Execute(ctx context.Context) error
	GetID() string
	GetType() TaskType
	Start()
	GetDuration() time.Duration
}
