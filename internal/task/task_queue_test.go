package task

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func noopTask() Task {
	return NewFuncTask("noop", func(context.Context) error { return nil })
}

func TestNewTaskQueue(t *testing.T) {
	queue := NewTaskQueue(10, setupTestLogger())

	assert.NotNil(t, queue)
	assert.Equal(t, 10, cap(queue.tasks))
	assert.False(t, queue.closed)
}

func TestEnqueue(t *testing.T) {
	queue := NewTaskQueue(2, setupTestLogger())

	require.NoError(t, queue.Enqueue(noopTask()))
	require.NoError(t, queue.Enqueue(noopTask()))

	err := queue.Enqueue(noopTask())
	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Equal(t, 2, queue.Len())
}

func TestEnqueueAfterClose(t *testing.T) {
	queue := NewTaskQueue(2, setupTestLogger())
	first := noopTask()
	require.NoError(t, queue.Enqueue(first))

	queue.Close()
	queue.Close()

	assert.ErrorIs(t, queue.Enqueue(noopTask()), ErrQueueClosed)

	got, ok := <-queue.GetChannel()
	require.True(t, ok, "buffered task survives close")
	assert.Equal(t, first.ID(), got.ID())

	_, ok = <-queue.GetChannel()
	assert.False(t, ok)
}

func TestEnqueueConcurrentWithClose(t *testing.T) {
	queue := NewTaskQueue(100, setupTestLogger())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := queue.Enqueue(noopTask())
			if err != nil {
				assert.ErrorIs(t, err, ErrQueueClosed)
			}
		}()
	}
	queue.Close()
	wg.Wait()
}

func TestFuncTask(t *testing.T) {
	called := false
	task := NewFuncTask(TaskTypeUpstreamMirror, func(context.Context) error {
		called = true
		return nil
	})

	assert.Equal(t, TaskTypeUpstreamMirror, task.Type())
	assert.NotEqual(t, task.ID(), NewFuncTask("x", nil).ID())
	require.NoError(t, task.Execute(context.Background()))
	assert.True(t, called)
}
