package cleanup

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingRemover struct {
	mu      sync.Mutex
	removed []string
	fail    map[string]error
	block   chan struct{}
}

func (r *recordingRemover) Remove(ctx context.Context, name string) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.fail[name]; ok {
		return err
	}
	r.removed = append(r.removed, name)
	return nil
}

func (r *recordingRemover) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string(nil), r.removed...)
	sort.Strings(out)
	return out
}

func stopQueue(t *testing.T, q *Queue) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := q.Stop(ctx); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}

func TestQueue_DrainsOnStop(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		buffer  int
	}{
		{name: "buffered", workers: 2, buffer: 8},
		{name: "unbuffered falls back to goroutines", workers: 1, buffer: 0},
		{name: "overflowing buffer", workers: 1, buffer: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remover := &recordingRemover{}
			q := NewQueue(remover, tt.workers, tt.buffer, nil)
			if err := q.Start(); err != nil {
				t.Fatalf("Start() error = %v", err)
			}

			for _, n := range []string{"a.mp3", "b.wav", "c.mp4"} {
				q.Enqueue(n)
			}
			stopQueue(t, q)

			got := remover.names()
			want := []string{"a.mp3", "b.wav", "c.mp4"}
			if len(got) != len(want) {
				t.Fatalf("removed = %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("removed = %v, want %v", got, want)
				}
			}
		})
	}
}

func TestQueue_StopWithoutStartDrainsBuffer(t *testing.T) {
	remover := &recordingRemover{}
	q := NewQueue(remover, 1, 4, nil)
	q.Enqueue("x.mp3")
	stopQueue(t, q)

	if got := remover.names(); len(got) != 1 || got[0] != "x.mp3" {
		t.Fatalf("removed = %v", got)
	}
}

func TestQueue_EnqueueAfterStop(t *testing.T) {
	remover := &recordingRemover{}
	q := NewQueue(remover, 1, 4, nil)
	if err := q.Start(); err != nil {
		t.Fatal(err)
	}
	stopQueue(t, q)

	q.Enqueue("late.mp3")

	if got := remover.names(); len(got) != 1 || got[0] != "late.mp3" {
		t.Fatalf("removed = %v", got)
	}
}

func TestQueue_EnqueueWhileStopping(t *testing.T) {
	remover := &recordingRemover{block: make(chan struct{})}
	q := NewQueue(remover, 1, 0, nil)
	if err := q.Start(); err != nil {
		t.Fatal(err)
	}
	// unbuffered with the only worker idle: first job goes to the worker
	q.Enqueue("slow.mp3")

	stopped := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		stopped <- q.Stop(ctx)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for {
		q.mu.Lock()
		closed := q.closed
		q.mu.Unlock()
		if closed {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("queue never closed")
		}
		time.Sleep(time.Millisecond)
	}

	enqueued := make(chan struct{})
	go func() {
		q.Enqueue("late.mp3")
		close(enqueued)
	}()

	close(remover.block)
	<-enqueued
	if err := <-stopped; err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	got := remover.names()
	if len(got) != 2 || got[0] != "late.mp3" || got[1] != "slow.mp3" {
		t.Fatalf("removed = %v", got)
	}
}

func TestQueue_StartStopErrors(t *testing.T) {
	q := NewQueue(&recordingRemover{}, 1, 1, nil)
	if err := q.Start(); err != nil {
		t.Fatal(err)
	}
	if err := q.Start(); err == nil {
		t.Error("expected error starting twice")
	}
	stopQueue(t, q)
	if err := q.Stop(context.Background()); err == nil {
		t.Error("expected error stopping twice")
	}
	if err := q.Start(); err == nil {
		t.Error("expected error starting a stopped queue")
	}
}

func TestQueue_StopHonoursContext(t *testing.T) {
	remover := &recordingRemover{block: make(chan struct{})}
	q := NewQueue(remover, 1, 1, nil)
	if err := q.Start(); err != nil {
		t.Fatal(err)
	}
	q.Enqueue("slow.mp3")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := q.Stop(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Stop() error = %v, want deadline exceeded", err)
	}
	close(remover.block)
}

func TestQueue_RemoveFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	remover := &recordingRemover{fail: map[string]error{"gone.mp3": errors.New("permission denied")}}
	q := NewQueue(remover, 1, 1, zap.New(core))
	if err := q.Start(); err != nil {
		t.Fatal(err)
	}
	q.Enqueue("gone.mp3")
	stopQueue(t, q)

	entries := logs.FilterMessage("failed to remove scratch file").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(entries))
	}
	if entries[0].ContextMap()["filename"] != "gone.mp3" {
		t.Fatalf("unexpected fields %v", entries[0].ContextMap())
	}
}
