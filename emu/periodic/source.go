package periodic

import (
	"context"
	"time"
)

// A Source paces a driver: each value received from C is one tick.
type Source interface {
	C() <-chan time.Time
	Stop()
}

type ticker struct{ t *time.Ticker }

// NewTicker returns a Source ticking every period of wall-clock time.
func NewTicker(period time.Duration) Source {
	return ticker{t: time.NewTicker(period)}
}

func (s ticker) C() <-chan time.Time { return s.t.C }
func (s ticker) Stop()               { s.t.Stop() }

// Refresh is a Source signaled by the display, once per refresh. A signal
// sent while the previous one hasn't been consumed yet is dropped.
type Refresh struct {
	ch chan time.Time
}

func NewRefresh() *Refresh {
	return &Refresh{ch: make(chan time.Time, 1)}
}

// Signal notifies a display refresh.
func (r *Refresh) Signal() {
	select {
	case r.ch <- time.Now():
	default:
	}
}

func (r *Refresh) C() <-chan time.Time { return r.ch }
func (r *Refresh) Stop()               {}

// Manual is a Source ticked explicitly, for deterministic runs.
type Manual struct {
	ch chan time.Time
}

func NewManual() *Manual {
	return &Manual{ch: make(chan time.Time)}
}

// Tick sends one tick and blocks until the driver received it, or ctx is
// done.
func (m *Manual) Tick(ctx context.Context) error {
	select {
	case m.ch <- time.Now():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manual) C() <-chan time.Time { return m.ch }
func (m *Manual) Stop()               {}
