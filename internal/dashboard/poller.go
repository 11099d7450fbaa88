package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"spicegate/internal/marketerrors"
	"spicegate/utils"
)

// DefaultPollInterval is how often the live dashboard refreshes.
const DefaultPollInterval = 30 * time.Second

// Source produces dashboard snapshots.
type Source interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// Poller keeps the latest snapshot of a Source, refreshed on a fixed interval.
// A failed refresh blanks the snapshot until the next successful one.
type Poller struct {
	source   Source
	interval time.Duration

	mu      sync.RWMutex
	latest  *Snapshot
	lastErr error
}

// NewPoller creates a Poller; a non-positive interval means DefaultPollInterval.
func NewPoller(source Source, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{source: source, interval: interval}
}

// Run refreshes immediately and then on every tick until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}

// Refresh fetches one snapshot and stores the outcome.
func (p *Poller) Refresh(ctx context.Context) {
	snap, err := p.source.Snapshot(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.latest = nil
		p.lastErr = err
		utils.Warn("dashboard poller: refresh failed", map[string]any{"error": err.Error()})
		return
	}
	p.latest = &snap
	p.lastErr = nil
}

// Latest returns the most recent snapshot, or an error wrapping
// ErrSnapshotUnavailable if none has succeeded since the last failure.
func (p *Poller) Latest() (Snapshot, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.latest != nil {
		return *p.latest, nil
	}
	if p.lastErr != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", marketerrors.ErrSnapshotUnavailable, p.lastErr)
	}
	return Snapshot{}, fmt.Errorf("%w: first refresh pending", marketerrors.ErrSnapshotUnavailable)
}
