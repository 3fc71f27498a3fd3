package tasks

import (
	"context"
	"time"
)

// Task is a unit of background work scheduled after a commit
type Task struct {
	ID         string
	Name       string
	Queue      string
	Payload    map[string]any
	EnqueuedAt time.Time
}

// Handler processes a dequeued task
type Handler func(ctx context.Context, task Task) error

// Dispatcher hands tasks to background workers
type Dispatcher interface {
	// Enqueue schedules a task; it does not wait for the task to run
	Enqueue(ctx context.Context, task Task) error
}
