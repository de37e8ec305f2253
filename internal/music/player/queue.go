package player

import (
	"context"
	"sync"
	"time"
)

// Queue is the per-guild track queue: many producers (command handlers,
// seek), one consumer (the playback loop).
type Queue struct {
	mu     sync.Mutex
	items  []*Track
	notify chan struct{}
}

func NewQueue() *Queue {
	return &Queue{notify: make(chan struct{}, 1)}
}

// Push appends tracks in play order.
func (q *Queue) Push(tracks ...*Track) {
	if len(tracks) == 0 {
		return
	}
	q.mu.Lock()
	q.items = append(q.items, tracks...)
	q.mu.Unlock()
	q.wake()
}

// PushFront inserts a track at the head of the queue so it is the very next
// one consumed. Used by seek.
func (q *Queue) PushFront(t *Track) {
	q.mu.Lock()
	q.items = append([]*Track{t}, q.items...)
	q.mu.Unlock()
	q.wake()
}

// PopWait blocks until a track is available, the timeout elapses
// (errPopTimeout) or ctx is cancelled.
func (q *Queue) PopWait(ctx context.Context, timeout time.Duration) (*Track, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		if t := q.tryPop(); t != nil {
			return t, nil
		}
		select {
		case <-q.notify:
		case <-timer.C:
			return nil, errPopTimeout
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Peek returns the next track without removing it, or nil.
func (q *Queue) Peek() *Track {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

// Drain empties the queue and returns how many tracks were discarded.
func (q *Queue) Drain() int {
	q.mu.Lock()
	n := len(q.items)
	q.items = nil
	q.mu.Unlock()
	return n
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Snapshot returns a copy of the pending tracks in play order.
func (q *Queue) Snapshot() []*Track {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]*Track, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue) tryPop() *Track {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	t := q.items[0]
	q.items = q.items[1:]
	return t
}

func (q *Queue) wake() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}
