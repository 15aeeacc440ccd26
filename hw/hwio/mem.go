package hwio

import (
	"encoding/binary"

	"vboy/emu/log"
)

// mem is the adaptor used for linear memory access. Offsets wrap with a
// power-of-two mask, which mirrors the buffer over its whole mapped range.
//
// We use this structure by pointer rather than by value because it is stored
// as BankIO interface within Table, and checking if a concrete pointer type
// is behind the interface is faster than checking a non-pointer type.
type mem struct {
	name     string
	buf      []byte
	mask     uint32
	readonly bool
}

func newMem(name string, buf []byte, flags MemFlags) *mem {
	if !IsPow2(len(buf)) {
		panic("memory buffer size is not pow2")
	}
	return &mem{
		name:     name,
		buf:      buf,
		mask:     uint32(len(buf) - 1),
		readonly: flags&MemFlagReadOnly != 0,
	}
}

func (m *mem) Read8(addr uint32, _ bool) uint8 {
	return m.buf[addr&m.mask]
}

func (m *mem) Read16(addr uint32, _ bool) uint16 {
	off := addr & m.mask
	if off+2 <= uint32(len(m.buf)) {
		return binary.LittleEndian.Uint16(m.buf[off:])
	}
	return uint16(m.buf[off]) | uint16(m.buf[(off+1)&m.mask])<<8
}

func (m *mem) Read32(addr uint32, peek bool) uint32 {
	off := addr & m.mask
	if off+4 <= uint32(len(m.buf)) {
		return binary.LittleEndian.Uint32(m.buf[off:])
	}
	return uint32(m.Read16(addr, peek)) | uint32(m.Read16(addr+2, peek))<<16
}

func (m *mem) writable(addr uint32) bool {
	if m.readonly {
		log.ModMem.DebugZ("write to readonly memory").
			String("area", m.name).
			Hex32("addr", addr).
			End()
		return false
	}
	return true
}

func (m *mem) Write8(addr uint32, val uint8) {
	if m.writable(addr) {
		m.buf[addr&m.mask] = val
	}
}

func (m *mem) Write16(addr uint32, val uint16) {
	if !m.writable(addr) {
		return
	}
	off := addr & m.mask
	if off+2 <= uint32(len(m.buf)) {
		binary.LittleEndian.PutUint16(m.buf[off:], val)
		return
	}
	m.buf[off] = uint8(val)
	m.buf[(off+1)&m.mask] = uint8(val >> 8)
}

func (m *mem) Write32(addr uint32, val uint32) {
	if !m.writable(addr) {
		return
	}
	off := addr & m.mask
	if off+4 <= uint32(len(m.buf)) {
		binary.LittleEndian.PutUint32(m.buf[off:], val)
		return
	}
	for i := range uint32(4) {
		m.buf[(off+i)&m.mask] = uint8(val >> (8 * i))
	}
}

type MemFlags int

const (
	MemFlagReadWrite MemFlags = 0
	MemFlagReadOnly  MemFlags = 1 // CPU writes are discarded
)

// Mem is a linear memory area that can be mapped into a Table.
//
// NOTE: this structure does not directly implement the BankIO interface;
// Table.MapMem builds the adaptor from the current configuration.
type Mem struct {
	Name  string   // name of the memory area (for debugging)
	Data  []byte   // actual memory buffer, size must be a power of 2
	VSize int      // virtual size of the memory (can be bigger than physical size)
	Flags MemFlags // flags determining how the memory can be accessed
}

func (m *Mem) BankIO() BankIO {
	return newMem(m.Name, m.Data, m.Flags)
}

// Clear zeroes the whole memory buffer.
func (m *Mem) Clear() {
	clear(m.Data)
}
