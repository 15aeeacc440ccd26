package hw

// The CPU decodes 27 address bits, the upper 5 are ignored.
const addrMask = 0x07FFFFFF

const (
	windowMask = 0x07000000
	vipMirror  = 0x0007FFFF // VIP window repeats every 512KiB
	periphMask = 0x000000FF // peripheral registers repeat every 256 bytes
)

// decode returns the canonical address of addr, folding the ignored high
// bits and the window mirrors that the region mappings don't cover. Mirrors
// within a region come from its power-of-two mask.
func decode(addr uint32) uint32 {
	addr &= addrMask
	switch addr & windowMask {
	case vramBase:
		return addr & vipMirror
	case periphBase:
		return periphBase | addr&periphMask
	}
	return addr
}

// Read8 reads a byte from the bus.
func (m *Machine) Read8(addr uint32) uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.bus.Read8(decode(addr), false)
}

// Read16 reads a halfword from the bus. addr is aligned down to 2 bytes.
func (m *Machine) Read16(addr uint32) uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.bus.Read16(decode(addr&^1), false)
}

// Read32 reads a word from the bus. addr is aligned down to 4 bytes. Word
// accesses to 16-bit registers are split into two halfword accesses, low
// halfword first.
func (m *Machine) Read32(addr uint32) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.bus.Read32(decode(addr&^3), false)
}

func (m *Machine) Write8(addr uint32, val uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bus.Write8(decode(addr), val)
}

func (m *Machine) Write16(addr uint32, val uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bus.Write16(decode(addr&^1), val)
}

func (m *Machine) Write32(addr uint32, val uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bus.Write32(decode(addr&^3), val)
}

// Peek8, Peek16 and Peek32 read the bus without side effects.
func (m *Machine) Peek8(addr uint32) uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.bus.Read8(decode(addr), true)
}

func (m *Machine) Peek16(addr uint32) uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.bus.Read16(decode(addr&^1), true)
}

func (m *Machine) Peek32(addr uint32) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.bus.Read32(decode(addr&^3), true)
}

// VIPRead8 reads a byte of the VIP register block at offset off.
func (m *Machine) VIPRead8(off uint32) uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.vipRegs.Read8(off, false)
}

// VIPRead16 reads the VIP register at offset off, aligned down to 2 bytes.
func (m *Machine) VIPRead16(off uint32) uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.vipRegs.Read16(off&^1, false)
}

func (m *Machine) VIPWrite8(off uint32, val uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.vipRegs.Write8(off, val)
}

func (m *Machine) VIPWrite16(off uint32, val uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.vipRegs.Write16(off&^1, val)
}

// PeriphRead8 reads the peripheral register at offset off.
func (m *Machine) PeriphRead8(off uint32) uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.periphRegs.Read8(off&periphMask, false)
}

func (m *Machine) PeriphWrite8(off uint32, val uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.periphRegs.Write8(off&periphMask, val)
}
