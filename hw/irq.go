package hw

import (
	"sync/atomic"

	"vboy/emu/log"
	"vboy/hw/hwdefs"
)

// irqLine aggregates the interrupt sources of the machine into the single
// line polled by the CPU. The state is recomputed, with the machine lock
// held, each time a source may have changed and published atomically so
// that it can be polled without taking the lock.
type irqLine struct {
	vip    *VIP
	periph *Peripherals

	sources atomic.Uint32 // hwdefs.IRQSource
}

func (l *irqLine) compute() hwdefs.IRQSource {
	var src hwdefs.IRQSource
	if l.vip.INTPND.Value&l.vip.INTENB.Value != 0 {
		src |= hwdefs.VIPIRQ
	}
	if tcr := l.periph.TCR.Value; tcr&tcrZStat != 0 && tcr&tcrIntEn != 0 {
		src |= hwdefs.TimerIRQ
	}
	return src
}

func (l *irqLine) update() {
	src := l.compute()
	old := hwdefs.IRQSource(l.sources.Swap(uint32(src)))
	if old != src {
		log.ModIRQ.DebugZ("irq line").
			Stringer("sources", src).
			Bool("asserted", src != 0).
			End()
	}
}

func (l *irqLine) load() hwdefs.IRQSource {
	return hwdefs.IRQSource(l.sources.Load())
}
