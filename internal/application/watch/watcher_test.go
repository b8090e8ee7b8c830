package watch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sellora/pos-gateway/internal/domain/entity"
)

// stubFetcher serves canned responses and counts calls.
type stubFetcher struct {
	mu    sync.Mutex
	batch *entity.Batch
	err   error
	calls int
}

func (s *stubFetcher) fetch(ctx context.Context, id int64) (*entity.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.batch, nil
}

func (s *stubFetcher) set(batch *entity.Batch, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batch = batch
	s.err = err
}

func (s *stubFetcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestWatchReplacesSnapshotWholesale(t *testing.T) {
	fetcher := &stubFetcher{batch: &entity.Batch{ID: 1, Items: []entity.BatchItem{{ID: 1}}}}
	m := NewManager(fetcher.fetch, 10*time.Millisecond, time.Minute)
	defer m.StopAll()

	m.Put(&entity.Batch{ID: 1})
	m.Watch(context.Background(), 1)

	waitFor(t, func() bool {
		b, ok := m.Snapshot(1)
		return ok && len(b.Items) == 1
	})
}

func TestWatchSwallowsFetchFailures(t *testing.T) {
	fetcher := &stubFetcher{batch: &entity.Batch{ID: 1, BatchCode: "good"}}
	m := NewManager(fetcher.fetch, 10*time.Millisecond, time.Minute)
	defer m.StopAll()

	m.Watch(context.Background(), 1)
	waitFor(t, func() bool {
		_, ok := m.Snapshot(1)
		return ok
	})

	// Upstream starts failing; the last good snapshot must keep serving.
	fetcher.set(nil, errors.New("poll failed"))
	before := fetcher.callCount()
	waitFor(t, func() bool { return fetcher.callCount() > before+2 })

	b, ok := m.Snapshot(1)
	if !ok || b.BatchCode != "good" {
		t.Errorf("snapshot = %+v, ok=%v; want last good state", b, ok)
	}
}

func TestWatchIsIdempotentPerID(t *testing.T) {
	fetcher := &stubFetcher{batch: &entity.Batch{ID: 1}}
	m := NewManager(fetcher.fetch, 10*time.Millisecond, time.Minute)
	defer m.StopAll()

	m.Watch(context.Background(), 1)
	m.Watch(context.Background(), 1)
	m.Watch(context.Background(), 1)

	m.mu.Lock()
	n := len(m.cancels)
	m.mu.Unlock()
	if n != 1 {
		t.Errorf("running loops = %d, want 1", n)
	}
}

func TestWatchNewBatchTearsDownOldLoop(t *testing.T) {
	fetcher := &stubFetcher{batch: &entity.Batch{ID: 1}}
	m := NewManager(fetcher.fetch, 10*time.Millisecond, time.Minute)
	defer m.StopAll()

	m.Watch(context.Background(), 1)
	m.Watch(context.Background(), 2)

	m.mu.Lock()
	_, oldRunning := m.cancels[1]
	_, newRunning := m.cancels[2]
	m.mu.Unlock()

	if oldRunning {
		t.Error("loop for batch 1 should have been torn down")
	}
	if !newRunning {
		t.Error("loop for batch 2 should be running")
	}
}

func TestStopDropsSnapshotAndLoop(t *testing.T) {
	fetcher := &stubFetcher{batch: &entity.Batch{ID: 1}}
	m := NewManager(fetcher.fetch, 10*time.Millisecond, time.Minute)

	m.Watch(context.Background(), 1)
	waitFor(t, func() bool {
		_, ok := m.Snapshot(1)
		return ok
	})

	m.Stop(1)

	if _, ok := m.Snapshot(1); ok {
		t.Error("snapshot should be dropped on Stop")
	}

	calls := fetcher.callCount()
	time.Sleep(50 * time.Millisecond)
	if fetcher.callCount() > calls+1 {
		// One in-flight tick may still land; more means the loop survived.
		t.Error("poll loop kept running after Stop")
	}
}
