package hw

import (
	"time"

	"vboy/emu/log"
	"vboy/hw/hwdefs"
)

// TCR bits.
const (
	tcrEnable  = 1 << 0 // T-Enb: timer running
	tcrZStat   = 1 << 1 // Z-Stat: counter reached zero (read-only)
	tcrZClr    = 1 << 2 // Z-Stat-Clr: write strobe
	tcrIntEn   = 1 << 3 // Tim-Z-Int: interrupt on zero
	tcrClkSel  = 1 << 4 // T-Clk-Sel: 0=100µs, 1=20µs
	tcrAuto    = 1 << 5 // T-Auto: reload on zero
	tcrLoad    = 1 << 6 // T-Load: write strobe, commit the reload latch
	tcrStrobes = tcrZClr | tcrLoad
)

const (
	slowInterval = 100 * time.Microsecond
	fastInterval = 20 * time.Microsecond

	slowCycles uint32 = hwdefs.CPUClock / uint32(time.Second/slowInterval)
	fastCycles uint32 = hwdefs.CPUClock / uint32(time.Second/fastInterval)
)

// Timer is the 16-bit down-counter of the peripheral block.
//
// TLR/THR writes only touch the staged reload latch: the live counter picks
// the latch up on a T-Load strobe, or on expiry when auto-reload is on.
type Timer struct {
	tcr *uint8

	reload    uint16 // staged reload latch
	counter   uint16 // live counter
	subcycles uint32 // CPU cycles elapsed since the last tick
}

func (t *Timer) reset(tcr *uint8) {
	*t = Timer{
		tcr:     tcr,
		reload:  0xFFFF,
		counter: 0xFFFF,
	}
}

func (t *Timer) running() bool {
	return *t.tcr&tcrEnable != 0
}

// interval returns the duration of a timer tick at the selected resolution.
func (t *Timer) interval() time.Duration {
	if *t.tcr&tcrClkSel != 0 {
		return fastInterval
	}
	return slowInterval
}

func (t *Timer) cyclesPerTick() uint32 {
	if *t.tcr&tcrClkSel != 0 {
		return fastCycles
	}
	return slowCycles
}

// tick runs one timer interval. It reports whether the counter expired.
func (t *Timer) tick() bool {
	if !t.running() {
		return false
	}
	if t.counter != 0 {
		t.counter--
	}
	if t.counter != 0 {
		return false
	}

	*t.tcr |= tcrZStat
	if *t.tcr&tcrAuto != 0 {
		t.counter = t.reload
	} else {
		*t.tcr &^= tcrEnable
	}
	log.ModTimer.DebugZ("timer expired").
		Bool("auto", *t.tcr&tcrAuto != 0).
		Hex16("reload", t.reload).
		End()
	return true
}

// addCycles accounts n CPU cycles, ticking once per elapsed interval.
func (t *Timer) addCycles(n uint32) {
	if !t.running() {
		t.subcycles = 0
		return
	}
	// A single call can carry up to 2^32-1 cycles, on top of the pending
	// ones.
	per := uint64(t.cyclesPerTick())
	total := uint64(t.subcycles) + uint64(n)
	for total >= per {
		total -= per
		t.tick()
		if !t.running() {
			t.subcycles = 0
			return
		}
	}
	t.subcycles = uint32(total)
}

// commit loads the staged latch into the live counter.
func (t *Timer) commit() {
	t.counter = t.reload
	t.subcycles = 0
	log.ModTimer.DebugZ("timer load").Hex16("counter", t.counter).End()
}
