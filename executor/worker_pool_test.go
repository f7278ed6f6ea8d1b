package executor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestWorkerPoolBasic verifies a submitted task runs.
func TestWorkerPoolBasic(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	if pool.Size() != 2 {
		t.Fatalf("Expected 2 workers, got %d", pool.Size())
	}

	done := make(chan struct{})
	if err := pool.Submit(context.Background(), func() { close(done) }); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for task")
	}
}

// TestWorkerPoolConcurrency verifies concurrent submission from many goroutines.
func TestWorkerPoolConcurrency(t *testing.T) {
	const numWorkers = 4
	const numTasks = 200

	pool := NewWorkerPool(numWorkers)
	defer pool.Close()

	var ran atomic.Int32
	var tasks sync.WaitGroup
	tasks.Add(numTasks)

	var submitters sync.WaitGroup
	for i := 0; i < numTasks; i++ {
		submitters.Add(1)
		go func() {
			defer submitters.Done()
			if err := pool.Submit(context.Background(), func() {
				defer tasks.Done()
				ran.Add(1)
			}); err != nil {
				t.Errorf("Submit failed: %v", err)
				tasks.Done()
			}
		}()
	}
	submitters.Wait()
	tasks.Wait()

	if got := ran.Load(); got != numTasks {
		t.Errorf("Expected %d tasks, got %d", numTasks, got)
	}
}

// TestWorkerPoolContextCancellation verifies Submit honours ctx under backpressure.
func TestWorkerPoolContextCancellation(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	block := make(chan struct{})
	defer close(block)

	// One running task plus a full queue (2x workers).
	for i := 0; i < 3; i++ {
		if err := pool.Submit(context.Background(), func() { <-block }); err != nil {
			t.Fatalf("Submit %d failed: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := pool.Submit(ctx, func() {})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected DeadlineExceeded, got %v", err)
	}
}

// TestWorkerPoolShutdown verifies Close drains queued work and rejects new work.
func TestWorkerPoolShutdown(t *testing.T) {
	pool := NewWorkerPool(2)

	var ran atomic.Int32
	for i := 0; i < 4; i++ {
		if err := pool.Submit(context.Background(), func() {
			time.Sleep(time.Millisecond)
			ran.Add(1)
		}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	pool.Close()
	pool.Close() // idempotent

	if got := ran.Load(); got != 4 {
		t.Errorf("Expected 4 drained tasks, got %d", got)
	}

	if err := pool.Submit(context.Background(), func() {}); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed after Close, got %v", err)
	}
}
