package emu

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"vboy/emu/log"
	"vboy/hw/hwdefs"
)

func init() {
	log.Disable()
}

func launch(t *testing.T, cfg Config) *Emulator {
	t.Helper()
	e, err := Launch(nil, cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { e.Stop() })
	return e
}

// waitFor polls cond until it returns true, or fails the test after a while.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timeout waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestLaunchInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Emulation.SRAMSize = 0x2000000
	if _, err := Launch(nil, cfg); err == nil {
		t.Fatal("Launch() succeeded with a too large cartridge RAM")
	}
}

func TestRefreshDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drivers.Timer = false
	e := launch(t, cfg)

	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	e.Machine.VIPWrite16(0x02, 0x0010) // INTENB: FRAMESTART

	e.VSync()
	waitFor(t, "refresh", func() bool { return e.Stats().Refreshes == 1 })

	if !e.Machine.IRQ() {
		t.Error("IRQ() = false after a refresh")
	}
	if got := e.Stats().IRQ; got != hwdefs.VIPIRQ {
		t.Errorf("Stats().IRQ = %v, want %v", got, hwdefs.VIPIRQ)
	}
}

func TestTimerDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drivers.TimerPeriodUS = 100
	e := launch(t, cfg)

	// Run the machine timer, 100µs resolution, from 0xFFFF.
	e.Machine.PeriphWrite8(0x20, 0x01)

	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "timer ticks", func() bool { return e.Stats().TimerTicks >= 10 })
	if err := e.Stop(); err != nil {
		t.Fatal(err)
	}

	// Each driver tick is one timer tick.
	st := e.Stats()
	counter := uint16(e.Machine.PeriphRead8(0x1C))<<8 | uint16(e.Machine.PeriphRead8(0x18))
	if want := uint16(0xFFFF - st.TimerTicks); counter != want {
		t.Errorf("counter = 0x%04x, want 0x%04x (%d driver ticks)", counter, want, st.TimerTicks)
	}

	// Nothing runs once stopped.
	before := e.Machine.Snapshot()
	time.Sleep(10 * time.Millisecond)
	if diff := cmp.Diff(before, e.Machine.Snapshot()); diff != "" {
		t.Errorf("machine changed after Stop (-before +after):\n%s", diff)
	}
}

func TestPauseAndReset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drivers.Timer = false
	e := launch(t, cfg)
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}

	e.Machine.Write8(0x05000000, 0x42)
	e.Machine.VIPWrite16(0x24, 0x0033) // BRTA

	e.SetPause(true)
	e.VSync()
	waitFor(t, "refresh", func() bool { return e.Stats().Refreshes == 1 })
	if got := e.Machine.VIPRead16(0x00); got != 0 {
		t.Errorf("INTPND = 0x%04x while paused, want 0", got)
	}

	e.Reset()
	e.VSync()
	waitFor(t, "refresh", func() bool { return e.Stats().Refreshes == 2 })
	if got := e.Machine.VIPRead16(0x24); got != 0 {
		t.Errorf("BRTA = 0x%04x after reset, want 0", got)
	}
	if got := e.Machine.Read8(0x05000000); got != 0x42 {
		t.Errorf("WRAM = 0x%02x after soft reset, want 0x42", got)
	}

	e.SetPause(false)
	e.Restart()
	e.VSync()
	waitFor(t, "refresh", func() bool { return e.Stats().Refreshes == 3 })
	if got := e.Machine.Read8(0x05000000); got != 0 {
		t.Errorf("WRAM = 0x%02x after hard reset, want 0", got)
	}
	if got := e.Machine.VIPRead16(0x00); got == 0 {
		t.Error("INTPND = 0 after an unpaused refresh")
	}
}

func TestRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drivers.RefreshHz = 1000
	e := launch(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	waitFor(t, "refreshes", func() bool { return e.Stats().Refreshes >= 5 })
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() didn't return after cancel")
	}
}
