package hw

import (
	"vboy/emu/log"
	"vboy/hw/hwio"
)

// INTPND/INTENB/INTCLR bits.
const (
	intScanErr    = 0x0001 // drawing exceeded the scanline budget
	intLFBEnd     = 0x0002 // left frame buffer display finished
	intRFBEnd     = 0x0004 // right frame buffer display finished
	intGameStart  = 0x0008 // game frame started
	intFrameStart = 0x0010 // display frame started
	intSBHit      = 0x2000 // drawing reached SBCMP
	intXPEnd      = 0x4000 // drawing finished
	intTimeErr    = 0x8000 // drawing overran the game frame

	intMask = intScanErr | intLFBEnd | intRFBEnd | intGameStart | intFrameStart |
		intSBHit | intXPEnd | intTimeErr

	// pending bits cleared by DPCTRL.DPRST.
	intDisplay = intScanErr | intLFBEnd | intRFBEnd | intGameStart | intFrameStart | intTimeErr
	// pending bits cleared by XPCTRL.XPRST.
	intDrawing = intXPEnd | intSBHit
)

// DPCTRL/DPSTTS bits.
const (
	dpRST     = 0x0001 // DPCTRL only
	dpDISP    = 0x0002
	dpSCANRDY = 0x0040 // DPSTTS only
	dpFCLK    = 0x0080 // DPSTTS only
	dpRE      = 0x0100
	dpSYNCE   = 0x0200
	dpLOCK    = 0x0400

	// DPCTRL bits reflected in DPSTTS.
	dpMirror = dpDISP | dpRE | dpSYNCE | dpLOCK
)

// XPCTRL/XPSTTS bits.
const (
	xpRST   = 0x0001 // XPCTRL only
	xpEN    = 0x0002
	xpBSY0  = 0x0004 // XPSTTS only
	xpBSY1  = 0x0008 // XPSTTS only
	xpBSY   = xpBSY0 | xpBSY1
	xpSBCMP = 0x1F00 // XPCTRL only
)

// VIP is the register block of the video unit.
//
// Only the register semantics are emulated: the rendering pipeline is driven
// by the refresh engine, which raises the interrupts a real display would.
type VIP struct {
	INTPND hwio.Reg16 `hwio:"offset=0x00,readonly"`
	INTENB hwio.Reg16 `hwio:"offset=0x02,rwmask=0xE01F,wcb"`
	INTCLR hwio.Reg16 `hwio:"offset=0x04,rwmask=0xE01F,writeonly,wcb"`

	DPSTTS hwio.Reg16 `hwio:"offset=0x20,readonly,reset=0x0040"`
	DPCTRL hwio.Reg16 `hwio:"offset=0x22,rwmask=0x0703,wcb"`
	BRTA   hwio.Reg16 `hwio:"offset=0x24,rwmask=0x00FF"`
	BRTB   hwio.Reg16 `hwio:"offset=0x26,rwmask=0x00FF"`
	BRTC   hwio.Reg16 `hwio:"offset=0x28,rwmask=0x00FF"`
	REST   hwio.Reg16 `hwio:"offset=0x2A,rwmask=0x00FF"`
	FRMCYC hwio.Reg16 `hwio:"offset=0x2E,rwmask=0x000F"`
	CTA    hwio.Reg16 `hwio:"offset=0x30,readonly"`

	XPSTTS hwio.Reg16 `hwio:"offset=0x40,readonly"`
	XPCTRL hwio.Reg16 `hwio:"offset=0x42,rwmask=0x1F03,wcb"`
	VER    hwio.Reg16 `hwio:"offset=0x44,readonly,reset=0x0002"`

	SPT0 hwio.Reg16 `hwio:"offset=0x48,rwmask=0x03FF"`
	SPT1 hwio.Reg16 `hwio:"offset=0x4A,rwmask=0x03FF"`
	SPT2 hwio.Reg16 `hwio:"offset=0x4C,rwmask=0x03FF"`
	SPT3 hwio.Reg16 `hwio:"offset=0x4E,rwmask=0x03FF"`

	GPLT0 hwio.Reg16 `hwio:"offset=0x60,rwmask=0x00FC"`
	GPLT1 hwio.Reg16 `hwio:"offset=0x62,rwmask=0x00FC"`
	GPLT2 hwio.Reg16 `hwio:"offset=0x64,rwmask=0x00FC"`
	GPLT3 hwio.Reg16 `hwio:"offset=0x66,rwmask=0x00FC"`
	JPLT0 hwio.Reg16 `hwio:"offset=0x68,rwmask=0x00FC"`
	JPLT1 hwio.Reg16 `hwio:"offset=0x6A,rwmask=0x00FC"`
	JPLT2 hwio.Reg16 `hwio:"offset=0x6C,rwmask=0x00FC"`
	JPLT3 hwio.Reg16 `hwio:"offset=0x6E,rwmask=0x00FC"`
	BKCOL hwio.Reg16 `hwio:"offset=0x70,rwmask=0x0003"`

	frame uint16 // display frames elapsed in the current game frame

	irq *irqLine
}

func (v *VIP) reset() {
	hwio.MustInitRegs(v)
	v.frame = 0
}

// raise sets bits in INTPND.
func (v *VIP) raise(bits uint16) {
	v.INTPND.Value |= bits & intMask
}

// INTENB: $0005F802
func (v *VIP) WriteINTENB(old, val uint16) {
	log.ModVIP.DebugZ("Write to INTENB").Hex16("old", old).Hex16("val", val).End()
	v.irq.update()
}

// INTCLR: $0005F804
func (v *VIP) WriteINTCLR(_, val uint16) {
	log.ModVIP.DebugZ("Write to INTCLR").Hex16("val", val).End()
	v.INTPND.Value &^= val
	v.INTCLR.Value = 0
	v.irq.update()
}

// DPCTRL: $0005F822
func (v *VIP) WriteDPCTRL(old, val uint16) {
	log.ModVIP.DebugZ("Write to DPCTRL").Hex16("val", val).End()

	if val&dpRST != 0 {
		v.INTPND.Value &^= intDisplay
		v.DPCTRL.Value &^= dpRST
		v.irq.update()
	}
	v.DPSTTS.Value = v.DPSTTS.Value&^dpMirror | v.DPCTRL.Value&dpMirror
}

// XPCTRL: $0005F842
func (v *VIP) WriteXPCTRL(old, val uint16) {
	log.ModVIP.DebugZ("Write to XPCTRL").Hex16("val", val).End()

	if val&xpRST != 0 {
		v.INTPND.Value &^= intDrawing
		v.XPCTRL.Value &^= xpRST
		v.irq.update()
	}
	v.XPSTTS.Value = v.XPSTTS.Value&^xpEN | v.XPCTRL.Value&xpEN
	if v.XPCTRL.Value&xpEN == 0 {
		v.XPSTTS.Value &^= xpBSY
	}
}

// refresh runs one display refresh.
func (v *VIP) refresh() {
	v.raise(intFrameStart)

	dpctrl := v.DPCTRL.Value
	v.DPSTTS.Value = v.DPSTTS.Value&^dpMirror | dpctrl&dpMirror | dpSCANRDY
	v.DPSTTS.Value ^= dpFCLK
	if dpctrl&dpDISP != 0 {
		v.raise(intLFBEnd | intRFBEnd)
	}

	v.frame++
	if v.frame > v.FRMCYC.Value {
		v.frame = 0
		v.gameFrame()
	}

	log.ModVIP.DebugZ("refresh").
		Hex16("intpnd", v.INTPND.Value).
		Uint("frame", uint64(v.frame)).
		End()
}

// gameFrame starts a new game frame. When drawing is enabled the frame
// buffer pair being drawn is swapped and drawing completes right away.
func (v *VIP) gameFrame() {
	v.raise(intGameStart)
	if v.XPCTRL.Value&xpEN == 0 {
		return
	}

	switch v.XPSTTS.Value & xpBSY {
	case xpBSY0:
		v.XPSTTS.Value = v.XPSTTS.Value&^xpBSY | xpBSY1
	default:
		v.XPSTTS.Value = v.XPSTTS.Value&^xpBSY | xpBSY0
	}
	v.raise(intXPEnd)
}
