package hwio

import (
	"fmt"

	"vboy/emu/log"
)

type RWFlags uint8

const (
	ReadWriteFlag RWFlags = 0
	ReadOnlyFlag  RWFlags = (1 << iota)
	WriteOnlyFlag
)

// Reg8 is an 8-bit register. Bits set in RoMask are never changed by CPU
// writes. Wider accesses see the register zero-extended and only the low
// byte of a wider write reaches it.
type Reg8 struct {
	Name   string
	Value  uint8
	RoMask uint8

	Flags   RWFlags
	ReadCb  func(val uint8, peek bool) uint8
	WriteCb func(old uint8, val uint8)
}

func (reg Reg8) String() string {
	s := fmt.Sprintf("%s{%02x", reg.Name, reg.Value)
	if reg.ReadCb != nil {
		s += ",r!"
	}
	if reg.WriteCb != nil {
		s += ",w!"
	}
	return s + "}"
}

func (reg *Reg8) write(val uint8) {
	old := reg.Value
	reg.Value = (reg.Value & reg.RoMask) | (val &^ reg.RoMask)
	if reg.WriteCb != nil {
		reg.WriteCb(old, reg.Value)
	}
}

func (reg *Reg8) Write8(addr uint32, val uint8) {
	if reg.Flags&ReadOnlyFlag != 0 {
		log.ModHwIo.DebugZ("write to readonly reg").
			String("name", reg.Name).
			Hex32("addr", addr).
			Hex8("val", val).
			End()
		return
	}
	reg.write(val)
}

func (reg *Reg8) Write16(addr uint32, val uint16) { reg.Write8(addr, uint8(val)) }
func (reg *Reg8) Write32(addr uint32, val uint32) { reg.Write8(addr, uint8(val)) }

func (reg *Reg8) Read8(addr uint32, peek bool) uint8 {
	if reg.Flags&WriteOnlyFlag != 0 {
		if !peek {
			log.ModHwIo.DebugZ("read from writeonly reg").
				String("name", reg.Name).
				Hex32("addr", addr).
				End()
		}
		return 0
	}
	if reg.ReadCb != nil {
		return reg.ReadCb(reg.Value, peek)
	}
	return reg.Value
}

func (reg *Reg8) Read16(addr uint32, peek bool) uint16 { return uint16(reg.Read8(addr, peek)) }
func (reg *Reg8) Read32(addr uint32, peek bool) uint32 { return uint32(reg.Read8(addr, peek)) }

// Reg16 is a 16-bit register occupying two consecutive addresses. Byte
// accesses select the lane with bit 0 of the address; a byte write merges
// into the current value before masking.
type Reg16 struct {
	Name   string
	Value  uint16
	RoMask uint16

	Flags   RWFlags
	ReadCb  func(val uint16, peek bool) uint16
	WriteCb func(old uint16, val uint16)
}

func (reg Reg16) String() string {
	s := fmt.Sprintf("%s{%04x", reg.Name, reg.Value)
	if reg.ReadCb != nil {
		s += ",r!"
	}
	if reg.WriteCb != nil {
		s += ",w!"
	}
	return s + "}"
}

func (reg *Reg16) write(val uint16) {
	old := reg.Value
	reg.Value = (reg.Value & reg.RoMask) | (val &^ reg.RoMask)
	if reg.WriteCb != nil {
		reg.WriteCb(old, reg.Value)
	}
}

func (reg *Reg16) Write16(addr uint32, val uint16) {
	if reg.Flags&ReadOnlyFlag != 0 {
		log.ModHwIo.DebugZ("write to readonly reg").
			String("name", reg.Name).
			Hex32("addr", addr).
			Hex16("val", val).
			End()
		return
	}
	reg.write(val)
}

func (reg *Reg16) Write8(addr uint32, val uint8) {
	shift := (addr & 1) * 8
	cur := reg.Value
	if reg.Flags&WriteOnlyFlag != 0 {
		// Nothing to merge with: the other lane is written as zero.
		cur = 0
	}
	cur = cur&^(0xFF<<shift) | uint16(val)<<shift
	reg.Write16(addr, cur)
}

func (reg *Reg16) Read16(addr uint32, peek bool) uint16 {
	if reg.Flags&WriteOnlyFlag != 0 {
		if !peek {
			log.ModHwIo.DebugZ("read from writeonly reg").
				String("name", reg.Name).
				Hex32("addr", addr).
				End()
		}
		return 0
	}
	if reg.ReadCb != nil {
		return reg.ReadCb(reg.Value, peek)
	}
	return reg.Value
}

func (reg *Reg16) Read8(addr uint32, peek bool) uint8 {
	return uint8(reg.Read16(addr, peek) >> ((addr & 1) * 8))
}
