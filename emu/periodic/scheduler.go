// Package periodic runs the tick drivers of the emulator: functions invoked
// on their own goroutine each time their source ticks.
package periodic

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"vboy/emu/log"
)

// A Driver invokes a function on each tick of its source.
type Driver struct {
	name string
	src  Source
	fn   func()

	cancel context.CancelFunc
	done   chan struct{}
	ticks  atomic.Uint64

	sched *Scheduler
}

func (d *Driver) Name() string { return d.name }

// Ticks returns the number of ticks processed so far.
func (d *Driver) Ticks() uint64 { return d.ticks.Load() }

// Stop stops the driver and waits for its goroutine to exit: once Stop
// returns the driver function is not running and won't run again. Stop must
// not be called from the driver function itself.
func (d *Driver) Stop() {
	d.cancel()
	<-d.done
	d.sched.remove(d)
}

// Done returns a channel closed when the driver goroutine has exited.
func (d *Driver) Done() <-chan struct{} { return d.done }

func (d *Driver) run(ctx context.Context) error {
	defer close(d.done)
	defer d.src.Stop()

	log.ModSched.DebugZ("driver started").String("name", d.name).End()
	defer log.ModSched.DebugZ("driver stopped").String("name", d.name).End()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-d.src.C():
			d.fn()
			d.ticks.Add(1)
		}
	}
}

// Scheduler manages a group of drivers.
type Scheduler struct {
	mu       sync.Mutex
	ctx      context.Context
	cancel   context.CancelFunc
	group    *errgroup.Group
	drivers  map[string]*Driver
	refreshs []*Refresh
}

func NewScheduler() *Scheduler {
	s := &Scheduler{}
	s.init()
	return s
}

func (s *Scheduler) init() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.group, s.ctx = errgroup.WithContext(s.ctx)
	s.drivers = make(map[string]*Driver)
	s.refreshs = nil
}

// Start starts a driver named name, calling fn on each tick of src. Driver
// names are unique among running drivers.
func (s *Scheduler) Start(name string, src Source, fn func()) (*Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drivers[name]; ok {
		src.Stop()
		return nil, fmt.Errorf("driver %q already running", name)
	}

	ctx, cancel := context.WithCancel(s.ctx)
	d := &Driver{
		name:   name,
		src:    src,
		fn:     fn,
		cancel: cancel,
		done:   make(chan struct{}),
		sched:  s,
	}
	s.drivers[name] = d
	s.group.Go(func() error { return d.run(ctx) })
	return d, nil
}

// Every starts a driver ticking every period of wall-clock time.
func (s *Scheduler) Every(name string, period time.Duration, fn func()) (*Driver, error) {
	if period <= 0 {
		return nil, fmt.Errorf("driver %q: invalid period %v", name, period)
	}
	return s.Start(name, NewTicker(period), fn)
}

// OnRefresh starts a driver ticking on each display refresh, as notified
// with SignalRefresh.
func (s *Scheduler) OnRefresh(name string, fn func()) (*Driver, error) {
	r := NewRefresh()
	d, err := s.Start(name, r, fn)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.refreshs = append(s.refreshs, r)
	s.mu.Unlock()
	return d, nil
}

// SignalRefresh notifies a display refresh to all refresh drivers.
func (s *Scheduler) SignalRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.refreshs {
		r.Signal()
	}
}

// Stop stops the driver named name, if running.
func (s *Scheduler) Stop(name string) {
	s.mu.Lock()
	d := s.drivers[name]
	s.mu.Unlock()

	if d != nil {
		d.Stop()
	}
}

func (s *Scheduler) remove(d *Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drivers[d.name] == d {
		delete(s.drivers, d.name)
	}
	if r, ok := d.src.(*Refresh); ok {
		for i := range s.refreshs {
			if s.refreshs[i] == r {
				s.refreshs = append(s.refreshs[:i], s.refreshs[i+1:]...)
				break
			}
		}
	}
}

// Running returns the number of running drivers.
func (s *Scheduler) Running() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.drivers)
}

// StopAll stops all drivers and waits for them to exit. The scheduler can
// be reused afterwards.
func (s *Scheduler) StopAll() error {
	s.mu.Lock()
	cancel, group := s.cancel, s.group
	s.mu.Unlock()

	cancel()
	err := group.Wait()

	s.mu.Lock()
	s.init()
	s.mu.Unlock()
	return err
}
