package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiterAllowsWithinBurst(t *testing.T) {
	l := NewLimiter(100, 5)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 5; i++ {
		if err := l.Wait(ctx, "https://example.com/page"); err != nil {
			t.Fatalf("Wait %d: %v", i, err)
		}
	}
}

func TestLimiterIsPerDomain(t *testing.T) {
	l := NewLimiter(100, 1)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Each domain gets its own burst allowance.
	if err := l.Wait(ctx, "https://a.example.com/"); err != nil {
		t.Fatalf("first domain: %v", err)
	}
	if err := l.Wait(ctx, "https://b.example.com/"); err != nil {
		t.Fatalf("second domain: %v", err)
	}

	if len(l.limiters) != 2 {
		t.Errorf("expected 2 domain limiters, got %d", len(l.limiters))
	}
}

func TestLimiterRejectsBadURL(t *testing.T) {
	l := NewLimiter(100, 1)
	if err := l.Wait(context.Background(), "://not a url"); err == nil {
		t.Error("expected an error for an unparseable URL")
	}
}

func TestWaitWithDelay(t *testing.T) {
	l := NewLimiter(100, 5)
	ctx := context.Background()

	start := time.Now()
	if err := l.WaitWithDelay(ctx, "https://example.com/", 20*time.Millisecond); err != nil {
		t.Fatalf("WaitWithDelay: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("delay not honored, elapsed %v", elapsed)
	}
}

func TestWaitWithDelayCancelled(t *testing.T) {
	l := NewLimiter(100, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.WaitWithDelay(ctx, "https://example.com/", time.Minute); err == nil {
		t.Error("expected a context error")
	}
}
