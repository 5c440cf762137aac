package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vitality-edu/wellness-hub/internal/core/ports"
)

type countingRecorder struct {
	mu     sync.Mutex
	counts map[string]int
	done   chan struct{}
	expect int
	seen   int
}

func newCountingRecorder(expect int) *countingRecorder {
	return &countingRecorder{
		counts: make(map[string]int),
		done:   make(chan struct{}),
		expect: expect,
	}
}

func (r *countingRecorder) RecordView(ctx context.Context, resourceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[resourceID]++
	r.seen++
	if r.seen == r.expect {
		close(r.done)
	}
	return nil
}

func (r *countingRecorder) count(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[id]
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorder := newCountingRecorder(30)
	d := NewDispatcher(4, recorder, zerolog.Nop())
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Enqueue(ports.ViewEvent{ResourceID: "res-001"})
		d.Enqueue(ports.ViewEvent{ResourceID: "res-002"})
		d.Enqueue(ports.ViewEvent{ResourceID: "res-003"})
	}

	select {
	case <-recorder.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events, saw %d", recorder.seen)
	}

	for _, id := range []string{"res-001", "res-002", "res-003"} {
		if got := recorder.count(id); got != 10 {
			t.Fatalf("expected 10 views for %s, got %d", id, got)
		}
	}
}

func TestDispatcher_ShardIsStablePerResource(t *testing.T) {
	d := NewDispatcher(4, newCountingRecorder(0), zerolog.Nop())

	for _, id := range []string{"res-001", "res-007", "prog-003", ""} {
		first := d.shardIndex(id)
		for i := 0; i < 5; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shard for %q moved from %d to %d", id, first, got)
			}
		}
		if first < 0 || first >= 4 {
			t.Fatalf("shard %d out of range for %q", first, id)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newCountingRecorder(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
