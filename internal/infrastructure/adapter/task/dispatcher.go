package task

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/tasks"
)

// DefaultQueue receives tasks that do not name a queue
const DefaultQueue = "default"

// Config controls the worker pool of a Dispatcher
type Config struct {
	Queues          []string
	WorkersPerQueue int
	QueueSize       int
	MaxRetries      int
	RetryDelay      coreport.Duration
}

// DefaultConfig returns a Config with one worker on the default queue
func DefaultConfig() Config {
	return Config{
		Queues:          []string{DefaultQueue},
		WorkersPerQueue: 1,
		QueueSize:       100,
		MaxRetries:      3,
		RetryDelay:      coreport.Second,
	}
}

// Stats counts processed tasks
type Stats struct {
	Succeeded int64
	Failed    int64
	Retried   int64
}

// queuedTask is a task waiting in a queue
type queuedTask struct {
	ctx  context.Context
	task tasks.Task
}

// Dispatcher runs registered task handlers on per-queue worker goroutines.
// Tasks of one queue are processed in enqueue order when the queue has a single worker.
type Dispatcher struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	config       Config

	handlers   map[string]tasks.Handler
	handlersMu sync.RWMutex

	queues  sync.Map // map[string]chan *queuedTask
	workers sync.WaitGroup

	// sendMu is held for reading while sending, so Shutdown never closes a queue under a sender
	sendMu   sync.RWMutex
	done     chan struct{}
	shutOnce sync.Once
	closed   bool

	succeeded atomic.Int64
	failed    atomic.Int64
	retried   atomic.Int64
}

var _ tasks.Dispatcher = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher and starts the workers of the configured queues
func NewDispatcher(config Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Dispatcher {
	if config.WorkersPerQueue <= 0 {
		config.WorkersPerQueue = 1
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 100
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}

	d := &Dispatcher{
		logger:       logger,
		timeProvider: timeProvider,
		config:       config,
		handlers:     make(map[string]tasks.Handler),
		done:         make(chan struct{}),
	}
	for _, name := range config.Queues {
		d.queue(name)
	}
	return d
}

// Register binds a handler to a task name, replacing any previous one
func (d *Dispatcher) Register(name string, handler tasks.Handler) {
	d.handlersMu.Lock()
	defer d.handlersMu.Unlock()
	d.handlers[name] = handler
}

func (d *Dispatcher) handler(name string) (tasks.Handler, bool) {
	d.handlersMu.RLock()
	defer d.handlersMu.RUnlock()
	h, ok := d.handlers[name]
	return h, ok
}

// Enqueue adds a task to its queue and returns without waiting for it to run.
// Missing ids, queues and timestamps are filled in.
func (d *Dispatcher) Enqueue(ctx context.Context, task tasks.Task) error {
	if _, ok := d.handler(task.Name); !ok {
		return fmt.Errorf("%w: %s", errs.ErrUnknownTask, task.Name)
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Queue == "" {
		task.Queue = DefaultQueue
	}
	if task.EnqueuedAt.IsZero() {
		task.EnqueuedAt = d.timeProvider.Now()
	}

	d.sendMu.RLock()
	defer d.sendMu.RUnlock()
	if d.closed {
		return errs.ErrDispatcherClosed
	}

	item := &queuedTask{
		// the task outlives the request that scheduled it
		ctx:  context.WithoutCancel(ctx),
		task: task,
	}

	select {
	case d.queue(task.Queue) <- item:
		d.logger.Debug("Task enqueued", map[string]any{
			"task_id": task.ID,
			"task":    task.Name,
			"queue":   task.Queue,
		})
		return nil
	case <-d.done:
		return errs.ErrDispatcherClosed
	case <-ctx.Done():
		d.logger.Warn("Context canceled while enqueueing task", map[string]any{
			"task_id": task.ID,
			"task":    task.Name,
			"queue":   task.Queue,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// queue returns the channel of a queue, starting its workers on first use
func (d *Dispatcher) queue(name string) chan *queuedTask {
	if q, ok := d.queues.Load(name); ok {
		return q.(chan *queuedTask)
	}

	q, loaded := d.queues.LoadOrStore(name, make(chan *queuedTask, d.config.QueueSize))
	ch := q.(chan *queuedTask)
	if !loaded {
		d.logger.Info("Starting task queue workers", map[string]any{
			"queue":   name,
			"workers": d.config.WorkersPerQueue,
		})
		for i := 0; i < d.config.WorkersPerQueue; i++ {
			d.workers.Add(1)
			go d.work(name, ch)
		}
	}
	return ch
}

func (d *Dispatcher) work(queue string, ch chan *queuedTask) {
	defer d.workers.Done()

	for item := range ch {
		d.process(item)
	}

	d.logger.Debug("Task queue worker stopped", map[string]any{
		"queue": queue,
	})
}

// process runs a task, retrying failures with a linear backoff
func (d *Dispatcher) process(item *queuedTask) {
	task := item.task
	handler, ok := d.handler(task.Name)
	if !ok {
		d.failed.Add(1)
		d.logger.Error("Task handler disappeared", map[string]any{"task": task.Name})
		return
	}

	var err error
	for attempt := 0; attempt <= d.config.MaxRetries; attempt++ {
		if attempt > 0 {
			d.retried.Add(1)
			d.timeProvider.Sleep(d.config.RetryDelay * coreport.Duration(attempt))
		}

		err = d.run(item.ctx, handler, task)
		if err == nil {
			d.succeeded.Add(1)
			d.logger.Debug("Task completed", map[string]any{
				"task_id": task.ID,
				"task":    task.Name,
				"attempt": attempt + 1,
			})
			return
		}

		d.logger.Warn("Task failed", map[string]any{
			"task_id": task.ID,
			"task":    task.Name,
			"attempt": attempt + 1,
			"error":   err.Error(),
		})
	}

	d.failed.Add(1)
	d.logger.Error("Task failed permanently", map[string]any{
		"task_id":  task.ID,
		"task":     task.Name,
		"queue":    task.Queue,
		"attempts": d.config.MaxRetries + 1,
		"error":    err.Error(),
	})
}

func (d *Dispatcher) run(ctx context.Context, handler tasks.Handler, task tasks.Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return handler(ctx, task)
}

// Stats returns the task counters
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Succeeded: d.succeeded.Load(),
		Failed:    d.failed.Load(),
		Retried:   d.retried.Load(),
	}
}

// Shutdown stops accepting tasks, lets the workers drain their queues and waits for them
func (d *Dispatcher) Shutdown() {
	d.shutOnce.Do(func() {
		d.logger.Info("Shutting down task dispatcher", nil)

		close(d.done)

		d.sendMu.Lock()
		d.closed = true
		d.queues.Range(func(name, q any) bool {
			d.logger.Debug("Closing task queue", map[string]any{"queue": name})
			close(q.(chan *queuedTask))
			return true
		})
		d.sendMu.Unlock()

		d.workers.Wait()
		d.logger.Info("Task dispatcher shut down successfully", nil)
	})
}
