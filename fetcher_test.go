package web2pdf

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSettle(t *testing.T) {
	t.Parallel()

	t.Run("elapses normally", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		if err := settle(context.Background(), 10*time.Millisecond); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
			t.Errorf("settle returned after %v, want at least 10ms", elapsed)
		}
	})

	t.Run("zero delay is a no-op", func(t *testing.T) {
		t.Parallel()

		if err := settle(context.Background(), 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("aborts on cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(5 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		err := settle(ctx, 5*time.Second)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("settle() = %v, want context.Canceled", err)
		}
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("settle took %v to abort, expected prompt cancellation", elapsed)
		}
	})

	t.Run("already-cancelled context with zero delay", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := settle(ctx, 0); !errors.Is(err, context.Canceled) {
			t.Errorf("settle() = %v, want context.Canceled", err)
		}
	})
}

func TestChromeFetcherCancelledContext(t *testing.T) {
	t.Parallel()

	// The context check happens before any browser is launched, so this
	// test runs without Chrome.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := newChromeFetcher(DefaultTimeout, DefaultSettleDelay)
	if _, err := fetcher.Fetch(ctx, "https://example.com/"); !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() = %v, want context.Canceled", err)
	}
}
