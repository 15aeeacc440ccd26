package hwio_test

import (
	"bytes"
	"testing"

	"vboy/hw/hwio"
)

type testTable struct {
	t   testing.TB
	Bus *hwio.Table

	// mapped to $0000-$07FF, mirrored up to $1FFF
	RAM hwio.Mem `hwio:"bank=0,offset=0x0,size=0x800,vsize=0x2000"`

	// $2000
	Reg0 hwio.Reg16 `hwio:"bank=1,offset=0x0,reset=0x7777"`
	// $2002
	Reg1 hwio.Reg16 `hwio:"bank=1,offset=0x2,rwmask=0xF0F0,rcb,reset=0x9999"`
	// $2004
	Reg2 hwio.Reg8 `hwio:"bank=1,offset=0x4,readonly,reset=0x42"`

	// $4000-$40FF
	DEV hwio.Device `hwio:"bank=2,offset=0x0,size=0x100,rcb,wcb"`

	// buffer provided by the test, mirrored up to 0x200 bytes
	ROM hwio.Mem `hwio:"bank=3,offset=0x0,vsize=0x200,readonly"`

	devval uint8
}

func newTestTable(tb testing.TB) *testTable {
	tbl := &testTable{t: tb}
	hwio.MustInitRegs(tbl)

	tbl.Bus = hwio.NewTable("bus")
	tbl.Bus.Unmapped = &hwio.OpenBus{Value: 0xD3D3D3D3}
	tbl.Bus.MapBank(0x0000, tbl, 0)
	tbl.Bus.MapBank(0x2000, tbl, 1)
	tbl.Bus.MapBank(0x4000, tbl, 2)
	return tbl
}

// $2002
func (tbl *testTable) ReadREG1(val uint16, peek bool) uint16 {
	if peek {
		return val
	}
	return val + 1
}

// $4000-40FF
func (tbl *testTable) ReadDEV(addr uint32, peek bool) uint8 { return uint8(addr) ^ 0xE1 }
func (tbl *testTable) WriteDEV(addr uint32, val uint8)      { tbl.devval = uint8(addr) & val }

func (tbl *testTable) wantRead8(addr uint32, want uint8) {
	tbl.t.Helper()

	if got := tbl.Bus.Read8(addr, false); got != want {
		tbl.t.Errorf("Read8(%08X) = %02X, want %02X", addr, got, want)
	}
}

func (tbl *testTable) wantRead16(addr uint32, want uint16) {
	tbl.t.Helper()

	if got := tbl.Bus.Read16(addr, false); got != want {
		tbl.t.Errorf("Read16(%08X) = %04X, want %04X", addr, got, want)
	}
}

func (tbl *testTable) wantRead32(addr uint32, want uint32) {
	tbl.t.Helper()

	if got := tbl.Bus.Read32(addr, false); got != want {
		tbl.t.Errorf("Read32(%08X) = %08X, want %08X", addr, got, want)
	}
}

func TestTableMem(t *testing.T) {
	tbl := newTestTable(t)

	tbl.wantRead8(0x00, 0)
	tbl.Bus.Write8(0x00, 0x12)
	tbl.wantRead8(0x00, 0x12)
	tbl.wantRead8(0x800, 0x12)

	tbl.Bus.Write16(0x10, 0xBEEF)
	tbl.wantRead8(0x10, 0xEF)
	tbl.wantRead8(0x11, 0xBE)
	tbl.wantRead16(0x1810, 0xBEEF)

	tbl.Bus.Write32(0x20, 0xCAFEBABE)
	tbl.wantRead32(0x20, 0xCAFEBABE)
	tbl.wantRead16(0x22, 0xCAFE)
	tbl.wantRead32(0x1020, 0xCAFEBABE)
}

func TestTableMemWrapAround(t *testing.T) {
	tbl := newTestTable(t)

	// A word straddling the end of the physical buffer wraps to its start.
	tbl.Bus.Write32(0x7FE, 0x44332211)
	tbl.wantRead8(0x7FE, 0x11)
	tbl.wantRead8(0x7FF, 0x22)
	tbl.wantRead8(0x000, 0x33)
	tbl.wantRead8(0x001, 0x44)
	tbl.wantRead32(0x7FE, 0x44332211)
}

func TestTableRegs(t *testing.T) {
	tbl := newTestTable(t)

	// Reg1
	tbl.wantRead16(0x2002, 0x999a)
	if got := tbl.Bus.Read16(0x2002, true); got != 0x9999 {
		t.Errorf("peek Reg1 = %04X, want 9999", got)
	}
	tbl.Bus.Write16(0x2002, 0xFFFF)
	tbl.wantRead16(0x2002, 0xF9FA)
	tbl.Bus.Write16(0x2002, 0x0F0F)
	tbl.wantRead16(0x2002, 0x090A)

	// Word accesses are split over both registers.
	tbl.wantRead32(0x2000, 0x090A7777)
	tbl.Bus.Write32(0x2000, 0xFFFF1234)
	tbl.wantRead16(0x2000, 0x1234)
	tbl.wantRead16(0x2002, 0xF9FA)

	// Reg2 is readonly, and zero-extended on wider reads.
	tbl.Bus.Write8(0x2004, 0x00)
	tbl.wantRead8(0x2004, 0x42)
	tbl.wantRead16(0x2004, 0x0042)
}

func TestTableUnmapped(t *testing.T) {
	tbl := newTestTable(t)

	tbl.wantRead8(0x2020, 0xd3)
	tbl.wantRead16(0x2020, 0xd3d3)
	tbl.wantRead32(0x2020, 0xd3d3d3d3)
	tbl.wantRead32(0xFFFFFFFC, 0xd3d3d3d3)

	// Byte registers answer word accesses zero-extended.
	tbl.wantRead32(0x2004, 0x00000042)
}

func TestTableReadonlyMem(t *testing.T) {
	tbl := newTestTable(t)

	tbl.ROM.Data = bytes.Repeat([]byte("\x12\x34"), 0x80)
	tbl.Bus.MapBank(0x3000, tbl, 3)

	tbl.wantRead8(0x3000, 0x12)
	tbl.wantRead8(0x3001, 0x34)
	tbl.wantRead8(0x31FF, 0x34) // mirror
	tbl.wantRead8(0x3200, 0xd3) // unmapped

	tbl.Bus.Write8(0x3000, 0xFF) // readonly
	tbl.Bus.Write16(0x3102, 0xFFFF)
	tbl.wantRead8(0x3000, 0x12)
	tbl.wantRead16(0x3102, 0x3412)
}

func TestTableMapDevice(t *testing.T) {
	tbl := newTestTable(t)

	tbl.wantRead8(0x4000, 0xE1)
	tbl.wantRead16(0x4010, 0xF0F1)
	tbl.Bus.Write8(0x4020, 0x27)
	if tbl.devval != 0x20 {
		t.Errorf("devval = %02X, want 0x20", tbl.devval)
	}
}

func TestTableOverlapPanics(t *testing.T) {
	tbl := newTestTable(t)

	defer func() {
		if recover() == nil {
			t.Fatal("mapping over an existing range should panic")
		}
	}()
	tbl.Bus.MapMem(0x1F00, &hwio.Mem{Name: "overlap", Data: make([]byte, 0x200)})
}

func TestUnmapBank(t *testing.T) {
	t.Run("hwio.Mem", func(t *testing.T) {
		tbl := newTestTable(t)

		tbl.Bus.Write8(0x40, 0x12)
		tbl.Bus.UnmapBank(0x0000, tbl, 0)
		tbl.wantRead8(0x40, 0xd3)
	})
	t.Run("hwio.Reg16", func(t *testing.T) {
		tbl := newTestTable(t)

		tbl.Bus.UnmapBank(0x2000, tbl, 1)
		tbl.wantRead16(0x2002, 0xd3d3)
	})
	t.Run("hwio.Device", func(t *testing.T) {
		tbl := newTestTable(t)

		tbl.Bus.UnmapBank(0x4000, tbl, 2)
		tbl.wantRead8(0x407F, 0xd3)
	})
}

func TestUnmap(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		tbl := newTestTable(t)

		tbl.Bus.Write8(0x40, 0x12)
		tbl.Bus.Unmap(0x0000, 0x003F)
		tbl.wantRead8(0x00, 0xd3)
		tbl.wantRead8(0x40, 0x12)
	})
	t.Run("middle", func(t *testing.T) {
		tbl := newTestTable(t)

		tbl.Bus.Write8(0x40, 0x12)
		tbl.Bus.Unmap(0x0100, 0x01FF)
		tbl.wantRead8(0x40, 0x12)
		tbl.wantRead8(0x100, 0xd3)
		tbl.wantRead8(0x840, 0x12)
	})
	t.Run("overshoot", func(t *testing.T) {
		tbl := newTestTable(t)

		tbl.Bus.Unmap(0x0000, 0x2000) // overshoot bank0 end
		tbl.wantRead8(0x2000, 0xD3)
		tbl.wantRead16(0x2002, 0x999a)
	})
}
