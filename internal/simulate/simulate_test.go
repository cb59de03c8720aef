package simulate

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSleep(t *testing.T) {
	t.Run("elapses", func(t *testing.T) {
		start := time.Now()
		if err := Sleep(context.Background(), 10*time.Millisecond); err != nil {
			t.Fatalf("Sleep() unexpected error: %v", err)
		}
		if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
			t.Fatalf("returned after %v, want at least 10ms", elapsed)
		}
	})

	t.Run("zero duration returns immediately", func(t *testing.T) {
		if err := Sleep(context.Background(), 0); err != nil {
			t.Fatalf("Sleep(0) unexpected error: %v", err)
		}
	})

	t.Run("cancellation interrupts", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := Sleep(ctx, time.Minute)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("Sleep() error = %v, want context.DeadlineExceeded", err)
		}
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Fatalf("cancellation took %v, should interrupt promptly", elapsed)
		}
	})

	t.Run("already cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := Sleep(ctx, 0); !errors.Is(err, context.Canceled) {
			t.Fatalf("Sleep() error = %v, want context.Canceled", err)
		}
	})
}
