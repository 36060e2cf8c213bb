package leads

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Status is the lifecycle stage of a dashboard's snapshot.
type Status string

const (
	StatusPending Status = "pending"
	StatusLoaded  Status = "loaded"
	StatusFailed  Status = "failed"
)

// State is the load result seen by readers. Snapshot is set only when
// Status is StatusLoaded.
type State struct {
	Status   Status
	Snapshot *Snapshot
}

// Loaded reports whether a snapshot is available.
func (s State) Loaded() bool {
	return s.Status == StatusLoaded && s.Snapshot != nil
}

// Option customises a Dashboard.
type Option func(*Dashboard)

// WithObserver registers a callback invoked once the fetch resolves.
func WithObserver(fn func(Status)) Option {
	return func(d *Dashboard) {
		if fn != nil {
			d.observers = append(d.observers, fn)
		}
	}
}

// Dashboard owns one mounted instance: its snapshot and load lifecycle.
type Dashboard struct {
	id        string
	fetcher   Fetcher
	logger    *slog.Logger
	observers []func(Status)

	mountOnce sync.Once
	done      chan struct{}

	mu        sync.RWMutex
	state     State
	discarded bool
}

// NewDashboard creates an unmounted dashboard in the pending state.
func NewDashboard(fetcher Fetcher, logger *slog.Logger, opts ...Option) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dashboard{
		id:      uuid.NewString(),
		fetcher: fetcher,
		logger:  logger,
		done:    make(chan struct{}),
		state:   State{Status: StatusPending},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ID identifies the instance in diagnostics.
func (d *Dashboard) ID() string { return d.id }

// Mount starts the single snapshot fetch. Later calls do nothing.
func (d *Dashboard) Mount(ctx context.Context) {
	d.mountOnce.Do(func() {
		go d.load(ctx)
	})
}

func (d *Dashboard) load(ctx context.Context) {
	defer close(d.done)

	logger := d.logger.With(slog.String("dashboard", d.id))
	if d.fetcher == nil {
		logger.Error("load snapshot", slog.Any("error", ErrLoad))
		d.resolve(logger, State{Status: StatusFailed})
		return
	}
	snapshot, err := d.fetcher.Fetch(ctx)
	if err != nil {
		logger.Error("load snapshot", slog.Any("error", err))
		d.resolve(logger, State{Status: StatusFailed})
		return
	}
	if snapshot == nil {
		snapshot = &Snapshot{}
	}
	d.resolve(logger, State{Status: StatusLoaded, Snapshot: snapshot})
}

func (d *Dashboard) resolve(logger *slog.Logger, next State) {
	d.mu.Lock()
	if d.discarded {
		d.mu.Unlock()
		logger.Debug("dropping snapshot result after unmount", slog.String("status", string(next.Status)))
		return
	}
	d.state = next
	d.mu.Unlock()

	if next.Status == StatusLoaded {
		logger.Info("snapshot loaded", slog.Int64("total_leads", next.Snapshot.TotalLeads))
	}
	for _, fn := range d.observers {
		fn(next.Status)
	}
}

// Unmount discards the instance state. A fetch still in flight is ignored
// when it completes.
func (d *Dashboard) Unmount() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.discarded = true
	d.state = State{Status: StatusPending}
}

// State returns the current load state.
func (d *Dashboard) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Wait blocks until the fetch has completed or ctx is done.
func (d *Dashboard) Wait(ctx context.Context) error {
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
