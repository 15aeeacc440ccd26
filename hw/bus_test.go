package hw

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBusReadWrite(t *testing.T) {
	regions := []struct {
		name string
		base uint32
	}{
		{"VRAM", 0x00000000},
		{"audio", 0x01000000},
		{"WRAM", 0x05000000},
		{"SRAM", 0x06000000},
	}

	for _, r := range regions {
		t.Run(r.name, func(t *testing.T) {
			m := newTestMachine(t)

			m.Write8(r.base+0x11, 0xAB)
			m.wantRead8(t, r.base+0x11, 0xAB)

			m.Write16(r.base+0x20, 0xBEEF)
			m.wantRead16(t, r.base+0x20, 0xBEEF)
			m.wantRead8(t, r.base+0x20, 0xEF)
			m.wantRead8(t, r.base+0x21, 0xBE)

			m.Write32(r.base+0x40, 0x11223344)
			m.wantRead32(t, r.base+0x40, 0x11223344)
			m.wantRead16(t, r.base+0x40, 0x3344)
			m.wantRead16(t, r.base+0x42, 0x1122)
			m.wantRead8(t, r.base+0x43, 0x11)
		})
	}
}

func TestBusMisaligned(t *testing.T) {
	m := newTestMachine(t)

	m.Write16(0x05000001, 0xABCD)
	m.wantRead16(t, 0x05000000, 0xABCD)
	m.wantRead16(t, 0x05000001, 0xABCD)

	m.Write32(0x05000013, 0x01020304)
	m.wantRead32(t, 0x05000010, 0x01020304)
	m.wantRead32(t, 0x05000012, 0x01020304)
	m.wantRead8(t, 0x05000013, 0x01)
}

func TestBusMirrors(t *testing.T) {
	m := newTestMachine(t)

	// The upper 5 address bits are ignored.
	m.Write8(0x05000100, 0x5A)
	m.wantRead8(t, 0xFD000100, 0x5A)
	m.wantRead8(t, 0x0D000100, 0x5A)

	// WRAM repeats every 64KiB.
	m.wantRead8(t, 0x05010100, 0x5A)
	m.wantRead8(t, 0x05FF0100, 0x5A)

	// Audio RAM repeats every 2KiB.
	m.Write16(0x01000010, 0x1234)
	m.wantRead16(t, 0x01000810, 0x1234)
	m.wantRead16(t, 0x01FFF810, 0x1234)

	// The VIP window repeats every 512KiB, registers included.
	m.Write16(0x00000010, 0x4321)
	m.wantRead16(t, 0x00080010, 0x4321)
	m.wantRead16(t, 0x00F80010, 0x4321)
	m.Write16(0x00F5F824, 0x0077) // BRTA
	m.wantRead16(t, 0x0005F824, 0x0077)

	// Peripheral registers repeat every 256 bytes.
	m.Write8(0x02000124, 0x01) // WCR
	m.wantRead8(t, 0x02000024, 0xFD)
	m.wantRead8(t, 0x02FFFF24, 0xFD)
}

func TestBusOpenBus(t *testing.T) {
	m := newTestMachine(t)

	for _, addr := range []uint32{
		0x00040000, // past VRAM
		0x0005F808, // hole in VIP registers
		0x0005F880, // past VIP registers
		0x0006FFFC, // between VIP registers and CHR
		0x0200002C, // past peripheral registers
		0x03000000, // unused window
		0x04ABCDE0, // expansion window
		0x07000000, // no cartridge
	} {
		m.wantRead8(t, addr, 0xFF)
		m.wantRead16(t, addr, 0xFFFF)
		m.wantRead32(t, addr, 0xFFFFFFFF)

		m.Write8(addr, 0)
		m.Write16(addr, 0)
		m.Write32(addr, 0)
		m.wantRead32(t, addr, 0xFFFFFFFF)
	}

	// Only the first lane of each peripheral slot is backed.
	m.wantRead8(t, 0x02000021, 0xFF)
	m.wantRead8(t, 0x02000023, 0xFF)
}

func TestBusPeriphWidths(t *testing.T) {
	m := newTestMachine(t)

	// Byte registers answer wider reads zero-extended, without reaching
	// into the open lanes of their slot.
	m.wantRead32(t, 0x02000018, 0x000000FF) // TLR
	m.wantRead16(t, 0x02000024, 0x00FC)     // WCR
	m.wantRead16(t, 0x02000022, 0xFFFF)     // lanes 2-3 of the TCR slot

	// Only the low byte of wider writes reaches the register.
	m.Write32(0x02000024, 0xFFFFFF01)
	m.wantRead32(t, 0x02000024, 0x000000FD)
	m.Write16(0x02000008, 0x1234) // CDTR
	if diff := cmp.Diff([]byte{0x34}, m.DrainTx()); diff != "" {
		t.Errorf("transmitted bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestBusCHR(t *testing.T) {
	m := newTestMachine(t)

	tests := []struct {
		addr uint32
		vram uint32
	}{
		{0x00078000, 0x06000},
		{0x00079FFF, 0x07FFF},
		{0x0007A001, 0x0E001},
		{0x0007C123, 0x16123},
		{0x0007FFFF, 0x1FFFF},
	}
	for i, tt := range tests {
		val := uint8(0x10 + i)
		m.Write8(tt.addr, val)
		m.wantRead8(t, tt.vram, val)

		m.Write8(tt.vram, val+1)
		m.wantRead8(t, tt.addr, val+1)
	}

	m.Write16(0x00078010, 0xCAFE)
	m.wantRead16(t, 0x00006010, 0xCAFE)
	m.wantRead32(t, 0x00078010, 0x0000CAFE)
}

func TestBusPeek(t *testing.T) {
	m := newTestMachine(t)
	if err := m.LoadROM(testROM(0x400)); err != nil {
		t.Fatal(err)
	}

	if got := m.Peek32(0x07000010); got != 0x13121110 {
		t.Errorf("Peek32() = 0x%08x, want 0x13121110", got)
	}
	if got := m.Peek16(0x07000011); got != 0x1110 {
		t.Errorf("Peek16() = 0x%04x, want 0x1110", got)
	}
	if got := m.Peek8(0x0005F844); got != 0x02 {
		t.Errorf("Peek8(VER) = 0x%02x, want 0x02", got)
	}
	// Write-only registers peek as zero.
	if got := m.Peek16(0x0005F804); got != 0 {
		t.Errorf("Peek16(INTCLR) = 0x%04x, want 0", got)
	}
}
