// Package watch runs the cashier screen's background batch refresh: a
// fixed-interval reconciliation against the upstream source of truth with no
// merge strategy. Each successful poll replaces the cached snapshot
// wholesale; poll failures are swallowed and the last good snapshot stays.
package watch

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/sellora/pos-gateway/internal/domain/entity"
)

// Fetcher loads a batch by id from the upstream.
type Fetcher func(ctx context.Context, id int64) (*entity.Batch, error)

// Manager owns at most one poll loop per batch id. Snapshots expire on their
// own once nothing has refreshed them, so an abandoned watcher cannot pin a
// stale batch forever.
type Manager struct {
	fetch    Fetcher
	interval time.Duration

	snapshots *cache.Cache

	mu      sync.Mutex
	cancels map[int64]context.CancelFunc
}

// NewManager creates a watch manager. interval is the poll cadence,
// snapshotTTL bounds how long an unrefreshed snapshot survives.
func NewManager(fetch Fetcher, interval, snapshotTTL time.Duration) *Manager {
	return &Manager{
		fetch:     fetch,
		interval:  interval,
		snapshots: cache.New(snapshotTTL, snapshotTTL),
		cancels:   make(map[int64]context.CancelFunc),
	}
}

// Put stores a freshly fetched batch as the current snapshot.
func (m *Manager) Put(batch *entity.Batch) {
	m.snapshots.SetDefault(key(batch.ID), batch)
}

// Snapshot returns the last successfully fetched state of a batch.
func (m *Manager) Snapshot(id int64) (*entity.Batch, bool) {
	v, ok := m.snapshots.Get(key(id))
	if !ok {
		return nil, false
	}
	return v.(*entity.Batch), true
}

// Watch starts the poll loop for a batch. Exactly one batch is active per
// cashier session, so watching a new id tears down every other loop first.
// Watching an id that is already being watched is a no-op. ctx carries the
// credentials the loop polls with and outlives the initiating request.
func (m *Manager) Watch(ctx context.Context, id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, running := m.cancels[id]; running {
		return
	}
	for other, cancel := range m.cancels {
		cancel()
		delete(m.cancels, other)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	m.cancels[id] = cancel
	go m.loop(loopCtx, id)
}

// Stop tears down the poll loop for a batch and drops its snapshot. Called on
// checkout success so the next load re-enters the fetch-or-create cycle.
func (m *Manager) Stop(id int64) {
	m.mu.Lock()
	if cancel, ok := m.cancels[id]; ok {
		cancel()
		delete(m.cancels, id)
	}
	m.mu.Unlock()
	m.snapshots.Delete(key(id))
}

// StopAll tears down every poll loop. Used on shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, cancel := range m.cancels {
		cancel()
		delete(m.cancels, id)
	}
}

func (m *Manager) loop(ctx context.Context, id int64) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			batch, err := m.fetch(ctx, id)
			if err != nil {
				// Silent by contract: no surfaced error, no retry counter,
				// no backoff. The last good snapshot keeps being served.
				continue
			}
			m.snapshots.SetDefault(key(id), batch)
		}
	}
}

func key(id int64) string {
	return strconv.FormatInt(id, 10)
}
