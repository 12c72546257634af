package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type testJob struct {
	id      int
	counter *atomic.Int64
	err     error
}

type testResult struct {
	id  int
	err error
}

func (r *testResult) GetError() error { return r.err }

func (j *testJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	return &testResult{id: j.id, err: j.err}
}

func TestPoolRunsAllJobs(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(4)
	pool.Start()

	for i := 0; i < 20; i++ {
		pool.Submit(&testJob{id: i, counter: &counter})
	}
	results := pool.Wait()

	if len(results) != 20 {
		t.Fatalf("expected 20 results, got %d", len(results))
	}
	if counter.Load() != 20 {
		t.Errorf("executed %d jobs, want 20", counter.Load())
	}
}

func TestPoolCollectsErrors(t *testing.T) {
	var counter atomic.Int64
	wantErr := errors.New("boom")

	pool := NewPool(2)
	pool.Start()
	pool.Submit(&testJob{id: 0, counter: &counter})
	pool.Submit(&testJob{id: 1, counter: &counter, err: wantErr})
	results := pool.Wait()

	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failed result, got %d", failures)
	}
}

func TestPoolZeroWorkers(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(0)
	pool.Start()
	pool.Submit(&testJob{id: 0, counter: &counter})
	results := pool.Wait()

	if len(results) != 1 {
		t.Errorf("expected 1 result, got %d", len(results))
	}
}

func TestPoolShutdownDropsLateSubmits(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	// Must not block or panic.
	pool.Submit(&testJob{id: 0, counter: &counter})
}
