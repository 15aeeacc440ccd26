package hwdefs

import (
	"strings"
	"time"
)

type IRQSource uint8

const (
	TimerIRQ IRQSource = 1 << iota
	VIPIRQ

	numSources = 2
)

var irqSrcNames = [numSources]string{
	"timer",
	"vip",
}

// CPU interrupt level of each source.
var irqLevels = [numSources]int{
	1,
	4,
}

func (irq IRQSource) String() string {
	var names []string
	for i := range numSources {
		if irq&(1<<i) != 0 {
			names = append(names, irqSrcNames[i])
		}
	}
	return strings.Join(names, "|")
}

// Level returns the interrupt level of the highest priority source in irq,
// or -1 if irq is empty.
func (irq IRQSource) Level() int {
	lvl := -1
	for i := range numSources {
		if irq&(1<<i) != 0 {
			lvl = max(lvl, irqLevels[i])
		}
	}
	return lvl
}

const (
	SoftReset = true
	HardReset = false
)

const (
	CPUClock    = 20_000_000 // CPU clock in Hz
	RefreshRate = 50         // display refresh rate in Hz

	RefreshPeriod = time.Second / RefreshRate
)
