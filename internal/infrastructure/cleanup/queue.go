package cleanup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultRemoveTimeout = 30 * time.Second

// Remover deletes a named entry from the scratch store
type Remover interface {
	Remove(ctx context.Context, name string) error
}

// Queue runs best-effort deletions of scratch files off the request path.
// Enqueue never blocks: when the buffer is full the deletion runs on its own
// goroutine. Stop drains everything already accepted.
type Queue struct {
	remover Remover
	logger  *zap.Logger
	workers int
	timeout time.Duration

	jobs     chan string
	wg       sync.WaitGroup
	detached sync.WaitGroup
	mu       sync.Mutex
	running  bool
	closed   bool
}

// NewQueue creates a cleanup queue with the given worker count and buffer size
func NewQueue(remover Remover, workers, buffer int, logger *zap.Logger) *Queue {
	if workers < 1 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Queue{
		remover: remover,
		logger:  logger,
		workers: workers,
		timeout: defaultRemoveTimeout,
		jobs:    make(chan string, buffer),
	}
}

// Start launches the worker goroutines
func (q *Queue) Start() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return fmt.Errorf("cleanup queue already stopped")
	}
	if q.running {
		return fmt.Errorf("cleanup queue already running")
	}
	q.running = true

	if q.logger != nil {
		q.logger.Info("🧹 Starting cleanup workers", zap.Int("worker_count", q.workers))
	}

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	return nil
}

// Enqueue schedules deletion of name. Once the queue is stopped the
// deletion runs on the caller's goroutine.
func (q *Queue) Enqueue(name string) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.remove(name)
		return
	}
	defer q.mu.Unlock()

	select {
	case q.jobs <- name:
		return
	default:
	}

	// detached.Add only happens before closed is set, so Stop's Wait never races it
	q.detached.Add(1)
	go func() {
		defer q.detached.Done()
		q.remove(name)
	}()
}

// Stop stops accepting work, lets the workers drain the buffer and waits
// for them until ctx is done
func (q *Queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return fmt.Errorf("cleanup queue already stopped")
	}
	q.closed = true
	close(q.jobs)
	running := q.running
	q.mu.Unlock()

	if !running {
		for name := range q.jobs {
			q.remove(name)
		}
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		q.detached.Wait()
		close(done)
	}()

	select {
	case <-done:
		if q.logger != nil {
			q.logger.Info("✅ Cleanup queue drained")
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("cleanup queue drain: %w", ctx.Err())
	}
}

func (q *Queue) worker(id int) {
	defer q.wg.Done()
	for name := range q.jobs {
		q.remove(name)
	}
	if q.logger != nil {
		q.logger.Debug("cleanup worker stopped", zap.Int("worker_id", id))
	}
}

func (q *Queue) remove(name string) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	if err := q.remover.Remove(ctx, name); err != nil {
		if q.logger != nil {
			q.logger.Warn("failed to remove scratch file",
				zap.String("filename", name),
				zap.Error(err),
			)
		}
		return
	}
	if q.logger != nil {
		q.logger.Info("removed scratch file", zap.String("filename", name))
	}
}
