package feed

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Poller drives one data source on its own interval. Each tick is tagged
// with a monotonic generation; a response whose generation is at or below
// the last applied one is dropped, so a slow in-flight request can never
// overwrite a newer snapshot.
type Poller[T any] struct {
	name     string
	interval time.Duration
	fetch    func(ctx context.Context) (T, error)
	apply    func(T)
	log      *zap.Logger

	mu      sync.Mutex
	issued  uint64
	applied uint64
}

func NewPoller[T any](name string, interval time.Duration, fetch func(ctx context.Context) (T, error), apply func(T), log *zap.Logger) *Poller[T] {
	return &Poller[T]{
		name:     name,
		interval: interval,
		fetch:    fetch,
		apply:    apply,
		log:      log.With(zap.String("source", name)),
	}
}

// Run polls until ctx is cancelled. An immediate first tick fills the view
// before the first interval elapses. Fetch errors are logged and the
// source retries on the next tick; there is no backoff.
func (p *Poller[T]) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller[T]) tick(ctx context.Context) {
	p.mu.Lock()
	p.issued++
	gen := p.issued
	p.mu.Unlock()

	go func() {
		v, err := p.fetch(ctx)
		if err != nil {
			if ctx.Err() == nil {
				p.log.Warn("poll failed", zap.Uint64("generation", gen), zap.Error(err))
			}
			return
		}

		p.mu.Lock()
		defer p.mu.Unlock()
		if gen <= p.applied {
			p.log.Debug("dropping stale poll response",
				zap.Uint64("generation", gen),
				zap.Uint64("applied", p.applied))
			return
		}
		p.applied = gen
		p.apply(v)
	}()
}
