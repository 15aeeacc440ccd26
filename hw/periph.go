package hw

import (
	"vboy/emu/log"
	"vboy/hw/hwio"
)

// SCR bits.
const (
	scrAbort = 1 << 0 // Abt-Dis
	scrBusy  = 1 << 1 // Si-Stat: read in progress (read-only)
	scrHwSi  = 1 << 2 // Hw-Si: write strobe, latch the pad word
	scrIntEn = 1 << 7 // K-Int-Inh
)

// Peripherals is the register block of the communication port, the game pad
// serial interface, the timer and the wait controller. Registers are one
// byte wide and sit on the low lane of 4-byte slots.
type Peripherals struct {
	CCR  hwio.Reg8 `hwio:"offset=0x00,rwmask=0x94,reset=0x6D"`
	CCSR hwio.Reg8 `hwio:"offset=0x04,rwmask=0x82,reset=0xFF"`
	CDTR hwio.Reg8 `hwio:"offset=0x08,writeonly,wcb"`
	CDRR hwio.Reg8 `hwio:"offset=0x0C,readonly"`
	SDLR hwio.Reg8 `hwio:"offset=0x10,readonly"`
	SDHR hwio.Reg8 `hwio:"offset=0x14,readonly"`
	TLR  hwio.Reg8 `hwio:"offset=0x18,reset=0xFF,rcb,wcb"`
	THR  hwio.Reg8 `hwio:"offset=0x1C,reset=0xFF,rcb,wcb"`
	TCR  hwio.Reg8 `hwio:"offset=0x20,rwmask=0x7D,reset=0xA0,wcb"`
	WCR  hwio.Reg8 `hwio:"offset=0x24,rwmask=0x03,reset=0xFC"`
	SCR  hwio.Reg8 `hwio:"offset=0x28,rwmask=0xA5,reset=0x48,wcb"`

	Timer Timer

	keypad uint16 // pad word presented by the input side
	tx     []byte // bytes written to CDTR, not yet drained

	irq *irqLine
}

func (p *Peripherals) reset() {
	hwio.MustInitRegs(p)
	p.Timer.reset(&p.TCR.Value)
	p.keypad = 0
	p.tx = nil
}

// CDTR: $02000008
func (p *Peripherals) WriteCDTR(_, val uint8) {
	log.ModSerial.DebugZ("comm transmit").Hex8("val", val).End()
	p.tx = append(p.tx, val)
}

// SCR: $02000028
func (p *Peripherals) WriteSCR(_, val uint8) {
	if val&scrHwSi == 0 {
		return
	}
	p.SDLR.Value = uint8(p.keypad)
	p.SDHR.Value = uint8(p.keypad >> 8)
	p.SCR.Value &^= scrHwSi | scrBusy

	log.ModSerial.DebugZ("keypad latched").Hex16("keys", p.keypad).End()
}

// TLR: $02000018
func (p *Peripherals) ReadTLR(_ uint8, _ bool) uint8 {
	return uint8(p.Timer.counter)
}

func (p *Peripherals) WriteTLR(_, val uint8) {
	p.Timer.reload = p.Timer.reload&0xFF00 | uint16(val)
	log.ModTimer.DebugZ("Write to TLR").Hex16("reload", p.Timer.reload).End()
}

// THR: $0200001C
func (p *Peripherals) ReadTHR(_ uint8, _ bool) uint8 {
	return uint8(p.Timer.counter >> 8)
}

func (p *Peripherals) WriteTHR(_, val uint8) {
	p.Timer.reload = p.Timer.reload&0x00FF | uint16(val)<<8
	log.ModTimer.DebugZ("Write to THR").Hex16("reload", p.Timer.reload).End()
}

// TCR: $02000020
func (p *Peripherals) WriteTCR(old, val uint8) {
	log.ModTimer.DebugZ("Write to TCR").Hex8("old", old).Hex8("val", val).End()

	if val&tcrZClr != 0 {
		p.TCR.Value &^= tcrZStat
	}
	if val&tcrLoad != 0 {
		p.Timer.commit()
	}
	if (old^val)&tcrClkSel != 0 {
		p.Timer.subcycles = 0
	}
	p.TCR.Value &^= tcrStrobes
	p.irq.update()
}
