package hwio

import (
	"fmt"
	"slices"
	"sort"

	"vboy/emu/log"
)

// log unmapped accesses (useful for debugging but verbose since some games
// read open bus)
const logUnmapped = false

// BankIO is implemented by anything that can be mapped into a Table.
type BankIO interface {
	// Read8 reads a byte from the given address. If peek is true, the read
	// shouldn't have any side effects (debugging/tracing).
	Read8(addr uint32, peek bool) uint8
	Read16(addr uint32, peek bool) uint16
	Write8(addr uint32, val uint8)
	Write16(addr uint32, val uint16)
}

// BankIO32 is implemented by devices handling word accesses natively. Word
// accesses to other devices are split in two halfword accesses, low half
// first.
type BankIO32 interface {
	Read32(addr uint32, peek bool) uint32
	Write32(addr uint32, val uint32)
}

// OpenBus answers every access to unmapped addresses: reads return the
// (truncated) fill value, writes are ignored.
type OpenBus struct {
	Value uint32
}

func (ob *OpenBus) Read8(uint32, bool) uint8   { return uint8(ob.Value) }
func (ob *OpenBus) Read16(uint32, bool) uint16 { return uint16(ob.Value) }
func (ob *OpenBus) Read32(uint32, bool) uint32 { return ob.Value }
func (ob *OpenBus) Write8(uint32, uint8)       {}
func (ob *OpenBus) Write16(uint32, uint16)     {}
func (ob *OpenBus) Write32(uint32, uint32)     {}

// span is a closed address range [begin, end] served by io.
type span struct {
	begin, end uint32
	io         BankIO
	name       string
}

// Table dispatches accesses to the devices mapped over an address space.
// Mapped ranges never overlap: mapping over an existing range is a
// configuration error and panics.
type Table struct {
	Name     string
	Unmapped BankIO

	spans []span // sorted by begin
}

func NewTable(name string) *Table {
	t := new(Table)
	t.Name = name
	t.Reset()
	return t
}

// Reset removes all mappings.
func (t *Table) Reset() {
	t.spans = nil
	if t.Unmapped == nil {
		t.Unmapped = &OpenBus{Value: 0xFFFFFFFF}
	}
}

// Map a register bank (that is, a structure containing multiple Reg*, Mem or
// Device fields). For this function to work, registers must have a struct
// tag "hwio", containing the following fields:
//
//	offset=0x12     Byte-offset within the register bank at which this
//	                register is mapped. There is no default value: if this
//	                option is missing, the register is assumed not to be
//	                part of the bank, and is ignored by this call.
//
//	bank=NN         Ordinal bank number (if not specified, default to zero).
//	                This option allows for a structure to expose multiple
//	                banks, as regs can be grouped by bank by specified the
//	                bank number.
func (t *Table) MapBank(addr uint32, bank any, bankNum int) {
	regs, err := bankGetRegs(bank, bankNum)
	if err != nil {
		panic(err)
	}

	for _, reg := range regs {
		switch r := reg.regPtr.(type) {
		case *Mem:
			t.MapMem(addr+reg.offset, r)
		case *Reg8:
			t.MapReg8(addr+reg.offset, r)
		case *Reg16:
			t.MapReg16(addr+reg.offset, r)
		case *Device:
			t.MapDevice(addr+reg.offset, r)
		default:
			panic(fmt.Errorf("invalid reg type: %T", r))
		}
	}
}

func (t *Table) UnmapBank(addr uint32, bank any, bankNum int) {
	regs, err := bankGetRegs(bank, bankNum)
	if err != nil {
		panic(err)
	}

	for _, reg := range regs {
		begin := addr + reg.offset
		switch r := reg.regPtr.(type) {
		case *Mem:
			t.Unmap(begin, begin+uint32(r.VSize)-1)
		case *Reg8:
			t.Unmap(begin, begin)
		case *Reg16:
			t.Unmap(begin, begin+1)
		case *Device:
			t.Unmap(begin, begin+uint32(r.Size)-1)
		default:
			panic(fmt.Errorf("invalid reg type: %T", r))
		}
	}
}

func (t *Table) mapBus(begin, size uint32, io BankIO, name string) {
	if size == 0 {
		panic(fmt.Errorf("%s: mapping %q with zero size", t.Name, name))
	}
	end := begin + size - 1
	if end < begin {
		panic(fmt.Errorf("%s: mapping %q at %08x overflows the address space", t.Name, name, begin))
	}

	i := sort.Search(len(t.spans), func(i int) bool { return t.spans[i].end >= begin })
	if i < len(t.spans) && t.spans[i].begin <= end {
		panic(fmt.Errorf("%s: mapping %q [%08x-%08x] overlaps %q [%08x-%08x]",
			t.Name, name, begin, end, t.spans[i].name, t.spans[i].begin, t.spans[i].end))
	}
	t.spans = slices.Insert(t.spans, i, span{begin: begin, end: end, io: io, name: name})
}

func (t *Table) MapReg8(addr uint32, io *Reg8) {
	t.mapBus(addr, 1, io, io.Name)
}

func (t *Table) MapReg16(addr uint32, io *Reg16) {
	t.mapBus(addr, 2, io, io.Name)
}

func (t *Table) MapDevice(addr uint32, io *Device) {
	t.mapBus(addr, uint32(io.Size), io, io.Name)
}

func (t *Table) MapMem(addr uint32, mem *Mem) {
	log.ModHwIo.DebugZ("mapping mem").
		Hex32("addr", addr).
		Hex32("size", uint32(mem.VSize)).
		String("area", mem.Name).
		String("bus", t.Name).
		End()

	if !IsPow2(len(mem.Data)) {
		panic(fmt.Errorf("%s: memory %q size %#x is not pow2", t.Name, mem.Name, len(mem.Data)))
	}
	vsize := mem.VSize
	if vsize == 0 {
		vsize = len(mem.Data)
	}
	t.mapBus(addr, uint32(vsize), mem.BankIO(), mem.Name)
}

// Unmap removes all mappings in [begin, end]. Ranges partially covered are
// trimmed.
func (t *Table) Unmap(begin, end uint32) {
	var out []span
	for _, s := range t.spans {
		if s.end < begin || s.begin > end {
			out = append(out, s)
			continue
		}
		if s.begin < begin {
			out = append(out, span{begin: s.begin, end: begin - 1, io: s.io, name: s.name})
		}
		if s.end > end {
			out = append(out, span{begin: end + 1, end: s.end, io: s.io, name: s.name})
		}
	}
	t.spans = out
}

// Search returns the device mapped at addr, or nil.
func (t *Table) Search(addr uint32) BankIO {
	i := sort.Search(len(t.spans), func(i int) bool { return t.spans[i].end >= addr })
	if i < len(t.spans) && t.spans[i].begin <= addr {
		return t.spans[i].io
	}
	return nil
}

func (t *Table) lookup(addr uint32, peek bool, op string) BankIO {
	if io := t.Search(addr); io != nil {
		return io
	}
	if logUnmapped && !peek {
		log.ModHwIo.DebugZ("unmapped access").
			String("name", t.Name).
			String("op", op).
			Hex32("addr", addr).
			End()
	}
	return t.Unmapped
}

// Read8 searches in the table for the device mapped at the given address and
// forward the read to it.
func (t *Table) Read8(addr uint32, peek bool) uint8 {
	return t.lookup(addr, peek, "Read8").Read8(addr, peek)
}

func (t *Table) Read16(addr uint32, peek bool) uint16 {
	return t.lookup(addr, peek, "Read16").Read16(addr, peek)
}

func (t *Table) Read32(addr uint32, peek bool) uint32 {
	io := t.lookup(addr, peek, "Read32")
	if io32, ok := io.(BankIO32); ok {
		return io32.Read32(addr, peek)
	}
	lo := io.Read16(addr, peek)
	hi := t.Read16(addr+2, peek)
	return uint32(hi)<<16 | uint32(lo)
}

func (t *Table) Write8(addr uint32, val uint8) {
	t.lookup(addr, false, "Write8").Write8(addr, val)
}

func (t *Table) Write16(addr uint32, val uint16) {
	t.lookup(addr, false, "Write16").Write16(addr, val)
}

func (t *Table) Write32(addr uint32, val uint32) {
	io := t.lookup(addr, false, "Write32")
	if io32, ok := io.(BankIO32); ok {
		io32.Write32(addr, val)
		return
	}
	io.Write16(addr, uint16(val))
	t.Write16(addr+2, uint16(val>>16))
}
