package util

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestParallelRunsEverything(t *testing.T) {
	inputs := []int{1, 2, 3, 4, 5, 6, 7, 8}
	var sum int64

	err := Parallel(inputs, 3, func(ctx context.Context, n int) error {
		atomic.AddInt64(&sum, int64(n))
		return nil
	})
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	if sum != 36 {
		t.Errorf("sum = %d, want 36", sum)
	}
}

func TestParallelLimitsWorkers(t *testing.T) {
	const limit = 2
	var mu sync.Mutex
	active, peak := 0, 0

	wait := make(chan struct{})
	close(wait)

	err := Parallel(make([]struct{}, 20), limit, func(ctx context.Context, _ struct{}) error {
		mu.Lock()
		active++
		if active > peak {
			peak = active
		}
		mu.Unlock()

		<-wait

		mu.Lock()
		active--
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	if peak > limit {
		t.Errorf("peak concurrency = %d, want at most %d", peak, limit)
	}
}

func TestParallelReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")

	err := Parallel([]int{1, 2, 3}, 1, func(ctx context.Context, n int) error {
		if n == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Parallel error = %v, want boom", err)
	}
}

func TestParallelEmptyInput(t *testing.T) {
	if err := Parallel(nil, 4, func(ctx context.Context, _ int) error {
		t.Error("fn called for empty input")
		return nil
	}); err != nil {
		t.Fatalf("Parallel: %v", err)
	}
}
