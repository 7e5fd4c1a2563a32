// Package refresh runs a fetch function on a fixed interval and keeps the
// most recent successful result.
package refresh

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/diogo/thrivemum/internal/logging"
)

// DefaultInterval is used when a non-positive interval is given
const DefaultInterval = 5 * time.Minute

// FetchFunc produces a fresh value
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Refresher manages a background refresh loop
type Refresher[T any] struct {
	name     string
	fetch    FetchFunc[T]
	interval time.Duration
	logger   *zap.Logger

	mu       sync.Mutex
	latest   T
	hasValue bool
	running  bool
	cancel   context.CancelFunc
	done     chan struct{}
	onUpdate func(T)
}

// Option configures a Refresher
type Option[T any] func(*Refresher[T])

// WithLogger sets the logger used for fetch errors
func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(r *Refresher[T]) {
		r.logger = logging.OrNop(logger)
	}
}

// WithOnUpdate registers a callback invoked after every successful fetch
func WithOnUpdate[T any](fn func(T)) Option[T] {
	return func(r *Refresher[T]) {
		r.onUpdate = fn
	}
}

// New creates a Refresher. It does nothing until Start is called.
func New[T any](name string, interval time.Duration, fetch FetchFunc[T], opts ...Option[T]) *Refresher[T] {
	if interval <= 0 {
		interval = DefaultInterval
	}
	r := &Refresher[T]{
		name:     name,
		fetch:    fetch,
		interval: interval,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start fetches once immediately, then on every tick until ctx is done or
// Stop is called. Calling Start on a running Refresher is a no-op.
func (r *Refresher[T]) Start(ctx context.Context) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	r.running = true
	r.cancel = cancel
	r.done = make(chan struct{})
	done := r.done
	r.mu.Unlock()

	r.logger.Debug("refresh started", zap.String("name", r.name), zap.Duration("interval", r.interval))

	go func() {
		defer close(done)

		r.refresh(ctx)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.refresh(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the loop and waits for it to exit. Safe to call more than once.
func (r *Refresher[T]) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	cancel()
	<-done
}

// Latest returns the last successful value and whether one exists
func (r *Refresher[T]) Latest() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest, r.hasValue
}

// Refresh runs one fetch synchronously
func (r *Refresher[T]) Refresh(ctx context.Context) error {
	return r.refresh(ctx)
}

func (r *Refresher[T]) refresh(ctx context.Context) error {
	value, err := r.fetch(ctx)
	if err != nil {
		// keep the previous value
		r.logger.Warn("refresh failed", zap.String("name", r.name), zap.Error(err))
		return err
	}

	r.mu.Lock()
	r.latest = value
	r.hasValue = true
	onUpdate := r.onUpdate
	r.mu.Unlock()

	if onUpdate != nil {
		onUpdate(value)
	}
	r.logger.Debug("refreshed", zap.String("name", r.name))
	return nil
}
