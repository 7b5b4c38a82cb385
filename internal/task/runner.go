package task

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// TaskRunnerConfig holds configuration for the task runner
type TaskRunnerConfig struct {
	// WorkerCount determines how many concurrent workers process tasks
	WorkerCount int

	// QueueSize determines the buffer size for the in-memory task queue
	QueueSize int

	// DrainTimeout bounds how long Stop waits for queued tasks to finish.
	// If zero, defaults to 10 seconds.
	DrainTimeout time.Duration
}

// DefaultTaskRunnerConfig returns a TaskRunnerConfig with reasonable defaults
func DefaultTaskRunnerConfig() TaskRunnerConfig {
	return TaskRunnerConfig{
		WorkerCount:  2,
		QueueSize:    100,
		DrainTimeout: 10 * time.Second,
	}
}

// TaskRunner owns a TaskQueue and the WorkerPool consuming it.
type TaskRunner struct {
	queue    *TaskQueue
	pool     *WorkerPool
	config   TaskRunnerConfig
	logger   *slog.Logger
	stopOnce sync.Once
}

// NewTaskRunner creates a new TaskRunner. Call Start before submitting work.
func NewTaskRunner(config TaskRunnerConfig, logger *slog.Logger) *TaskRunner {
	if config.DrainTimeout == 0 {
		config.DrainTimeout = 10 * time.Second
	}
	logger = logger.With("component", "task_runner")

	queue := NewTaskQueue(config.QueueSize, logger)
	pool := NewWorkerPool(queue, WorkerPoolConfig{WorkerCount: config.WorkerCount}, logger)
	pool.SetErrorHandler(func(task Task, err error) {
		logger.Warn("task execution failed",
			"task_id", task.ID(),
			"task_type", task.Type(),
			"error", err)
	})

	return &TaskRunner{
		queue:  queue,
		pool:   pool,
		config: config,
		logger: logger,
	}
}

// Start begins processing tasks
func (r *TaskRunner) Start() {
	r.pool.Start()
}

// Submit adds a task to the queue without blocking.
// Returns ErrQueueFull or ErrQueueClosed when the task cannot be accepted.
func (r *TaskRunner) Submit(ctx context.Context, task Task) error {
	if err := r.queue.Enqueue(task); err != nil {
		return fmt.Errorf("failed to submit task: %w", err)
	}
	return nil
}

// Dispatch wraps fn in a task of the given type and submits it.
func (r *TaskRunner) Dispatch(taskType string, fn func(ctx context.Context) error) error {
	return r.Submit(context.Background(), NewFuncTask(taskType, fn))
}

// Stop closes the queue, lets the workers drain what is already queued,
// and cancels anything still running after DrainTimeout.
func (r *TaskRunner) Stop() {
	r.stopOnce.Do(func() {
		r.queue.Close()

		drained := make(chan struct{})
		go func() {
			r.pool.Wait()
			close(drained)
		}()

		select {
		case <-drained:
			r.logger.Info("task runner drained")
		case <-time.After(r.config.DrainTimeout):
			r.logger.Warn("task runner drain timed out, cancelling remaining tasks",
				"timeout", r.config.DrainTimeout)
		}
		r.pool.Stop()
	})
}
