package emu

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"vboy/emu/log"
	"vboy/emu/periodic"
	"vboy/hw"
	"vboy/hw/hwdefs"
	"vboy/rom"
)

// Emulator drives a Machine in real time: a timer driver feeds CPU cycles to
// the machine timer and a refresh driver runs the video unit on each display
// refresh.
type Emulator struct {
	Machine *hw.Machine

	cfg   DriversConfig
	sched *periodic.Scheduler

	// These are accessed concurrently by the drivers and the controlling
	// goroutine.
	timer   atomic.Pointer[periodic.Driver]
	refresh atomic.Pointer[periodic.Driver]
	paused  atomic.Bool
	reset   atomic.Bool
	restart atomic.Bool
}

// Launch powers up a machine with the cartridge inserted. It doesn't start
// the drivers, call Start or Run for that. cart can be nil.
func Launch(cart *rom.Rom, cfg Config) (*Emulator, error) {
	cfg.Check()

	m, err := hw.NewMachine(cfg.hwConfig())
	if err != nil {
		return nil, fmt.Errorf("power up failed: %w", err)
	}
	if cart != nil {
		if err := m.LoadROM(cart.Image()); err != nil {
			return nil, fmt.Errorf("power up failed: %w", err)
		}
		log.ModEmu.InfoZ("Cartridge inserted").String("title", cart.Header.Title).End()
	}

	return &Emulator{
		Machine: m,
		cfg:     cfg.Drivers,
		sched:   periodic.NewScheduler(),
	}, nil
}

// timerCycles is the number of CPU cycles elapsing during a timer driver tick.
func (e *Emulator) timerCycles() uint32 {
	return uint32(e.cfg.timerPeriod() * hwdefs.CPUClock / time.Second)
}

func (e *Emulator) timerStep() {
	if e.isPaused() {
		return
	}
	e.Machine.AddCycles(e.timerCycles())
}

func (e *Emulator) refreshStep() {
	e.handleReset()
	if e.isPaused() {
		return
	}
	e.Machine.RefreshTick()
}

// Start starts the tick drivers.
func (e *Emulator) Start() error {
	if e.cfg.Timer {
		d, err := e.sched.Every("timer", e.cfg.timerPeriod(), e.timerStep)
		if err != nil {
			return err
		}
		e.timer.Store(d)
	}
	d, err := e.sched.OnRefresh("refresh", e.refreshStep)
	if err != nil {
		e.sched.StopAll()
		return err
	}
	e.refresh.Store(d)

	log.ModEmu.InfoZ("Drivers started").
		Bool("timer", e.cfg.Timer).
		Duration("timer_period", e.cfg.timerPeriod()).
		End()
	return nil
}

// VSync notifies a display refresh.
func (e *Emulator) VSync() { e.sched.SignalRefresh() }

// Stop stops all drivers. Once it returns the machine isn't ticked anymore.
func (e *Emulator) Stop() error {
	err := e.sched.StopAll()
	log.ModEmu.InfoZ("Drivers stopped").End()
	return err
}

// Run starts the drivers and paces display refreshes at the configured rate
// until ctx is done.
func (e *Emulator) Run(ctx context.Context) error {
	if err := e.Start(); err != nil {
		return err
	}

	vsync := time.NewTicker(e.cfg.refreshPeriod())
	defer vsync.Stop()

	for {
		select {
		case <-ctx.Done():
			return e.Stop()
		case <-vsync.C:
			e.VSync()
		}
	}
}

type Stats struct {
	TimerTicks uint64
	Refreshes  uint64
	IRQ        hwdefs.IRQSource
}

func (e *Emulator) Stats() Stats {
	var st Stats
	if d := e.timer.Load(); d != nil {
		st.TimerTicks = d.Ticks()
	}
	if d := e.refresh.Load(); d != nil {
		st.Refreshes = d.Ticks()
	}
	st.IRQ = e.Machine.IRQSources()
	return st
}

// SetPause, Reset and Restart allows to control the drivers in a
// concurrent-safe way. Resets are performed on the next display refresh.

func (e *Emulator) SetPause(pause bool) { e.paused.CompareAndSwap(!pause, pause) }
func (e *Emulator) Reset()              { e.reset.Store(true) }
func (e *Emulator) Restart()            { e.restart.Store(true) }

func (e *Emulator) isPaused() bool {
	return e.paused.Load()
}

func (e *Emulator) handleReset() {
	if e.reset.CompareAndSwap(true, false) {
		log.ModEmu.InfoZ("Performing soft reset").End()
		e.Machine.Reset(hwdefs.SoftReset)
	} else if e.restart.CompareAndSwap(true, false) {
		log.ModEmu.InfoZ("Performing hard reset").End()
		e.Machine.Reset(hwdefs.HardReset)
	}
}
