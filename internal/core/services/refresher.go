package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-site/internal/logger"
)

// Refresher rebuilds the index on a fixed interval and when content files
// change. Bursts of change events are coalesced into one rebuild.
type Refresher struct {
	index   driving.IndexService
	watcher driven.ChangeWatcher
	sources []domain.SourceConfig
	config  domain.RefreshSettings

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewRefresher creates a refresher. The watcher is optional (can be nil).
func NewRefresher(
	index driving.IndexService,
	watcher driven.ChangeWatcher,
	sources []domain.SourceConfig,
	config domain.RefreshSettings,
) *Refresher {
	return &Refresher{
		index:   index,
		watcher: watcher,
		sources: sources,
		config:  config,
	}
}

// Start runs the refresh loop. This method blocks until Stop is called or
// ctx is cancelled. It does not build the first snapshot.
func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil // Already running
	}
	r.running = true
	r.stopCh = make(chan struct{})
	stopCh := r.stopCh
	r.wg.Add(1)
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		if r.stopCh == stopCh {
			r.running = false
		}
		r.mu.Unlock()
		r.wg.Done()
	}()

	var changes <-chan domain.ChangeEvent
	if r.watcher != nil && r.config.Watch {
		ch, err := r.watcher.Watch(ctx, r.sources)
		if err != nil {
			logger.Warn("refresher: file watching disabled: %v", err)
		} else {
			changes = ch
		}
	}

	return r.run(ctx, stopCh, changes)
}

// Stop shuts the loop down and waits for an in-flight rebuild to finish.
func (r *Refresher) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = false
	close(r.stopCh)
	r.mu.Unlock()

	r.wg.Wait()
	return nil
}

// run is the main refresh loop.
func (r *Refresher) run(ctx context.Context, stopCh <-chan struct{}, changes <-chan domain.ChangeEvent) error {
	var tick <-chan time.Time
	if r.config.Interval > 0 {
		ticker := time.NewTicker(r.config.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	debounce := r.config.Debounce
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-tick:
			r.rebuild(ctx, "interval")
		case change, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			logger.Debug("refresher: %s %s (%s)", change.Type, change.Path, change.SourceType)
			timer.Reset(debounce)
		case <-timer.C:
			r.rebuild(ctx, "content change")
		}
	}
}

func (r *Refresher) rebuild(ctx context.Context, reason string) {
	logger.Info("refresher: rebuilding index (%s)", reason)
	if _, err := r.index.Rebuild(ctx); err != nil {
		logger.Error("refresher: rebuild failed: %v", err)
	}
}
