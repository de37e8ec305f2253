package player

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(NewRemote("a", "url-a", EncodeOptions{}))
	q.Push(NewRemote("b", "url-b", EncodeOptions{}), NewRemote("c", "url-c", EncodeOptions{}))

	if q.Len() != 3 {
		t.Fatalf("Len = %d, want 3", q.Len())
	}

	for _, want := range []string{"a", "b", "c"} {
		tr, err := q.PopWait(context.Background(), time.Second)
		if err != nil {
			t.Fatalf("PopWait: %v", err)
		}
		if tr.Title != want {
			t.Errorf("popped %q, want %q", tr.Title, want)
		}
	}
}

func TestQueuePushFront(t *testing.T) {
	q := NewQueue()
	q.Push(NewRemote("a", "url-a", EncodeOptions{}))
	q.PushFront(NewRemote("front", "url-f", EncodeOptions{}))

	tr, err := q.PopWait(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("PopWait: %v", err)
	}
	if tr.Title != "front" {
		t.Errorf("popped %q, want %q", tr.Title, "front")
	}
}

func TestQueuePopWaitTimeout(t *testing.T) {
	q := NewQueue()

	start := time.Now()
	_, err := q.PopWait(context.Background(), 30*time.Millisecond)
	if !errors.Is(err, errPopTimeout) {
		t.Fatalf("PopWait error = %v, want errPopTimeout", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("PopWait returned after %s, before the timeout", elapsed)
	}
}

func TestQueuePopWaitCancel(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := q.PopWait(ctx, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("PopWait error = %v, want context.Canceled", err)
	}
}

func TestQueuePopWaitWakesOnPush(t *testing.T) {
	q := NewQueue()

	go func() {
		time.Sleep(20 * time.Millisecond)
		q.Push(NewRemote("late", "url", EncodeOptions{}))
	}()

	tr, err := q.PopWait(context.Background(), time.Minute)
	if err != nil {
		t.Fatalf("PopWait: %v", err)
	}
	if tr.Title != "late" {
		t.Errorf("popped %q, want %q", tr.Title, "late")
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const producers = 8
	const perProducer = 25

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Push(NewRemote("t", "url", EncodeOptions{}))
			}
		}()
	}
	wg.Wait()

	if got := q.Len(); got != producers*perProducer {
		t.Fatalf("Len = %d, want %d", got, producers*perProducer)
	}

	popped := 0
	for {
		_, err := q.PopWait(context.Background(), 10*time.Millisecond)
		if err != nil {
			break
		}
		popped++
	}
	if popped != producers*perProducer {
		t.Errorf("popped %d tracks, want %d", popped, producers*perProducer)
	}
}

func TestQueueDrain(t *testing.T) {
	q := NewQueue()
	q.Push(NewRemote("a", "", EncodeOptions{}), NewRemote("b", "", EncodeOptions{}))

	if n := q.Drain(); n != 2 {
		t.Errorf("Drain = %d, want 2", n)
	}
	if q.Len() != 0 {
		t.Errorf("Len after Drain = %d, want 0", q.Len())
	}
	if q.Peek() != nil {
		t.Error("Peek after Drain should be nil")
	}
}
