package hw

import (
	"errors"
	"fmt"
	"hash/crc32"
	"sync"
	"time"

	"vboy/emu/log"
	"vboy/hw/hwdefs"
	"vboy/hw/hwio"
)

const DefaultSRAMSize = 0x2000

type Config struct {
	SRAMSize int    // cartridge RAM size, a power of 2
	OpenBus  uint32 // value read from unmapped addresses
}

func DefaultConfig() Config {
	return Config{
		SRAMSize: DefaultSRAMSize,
		OpenBus:  0xFFFFFFFF,
	}
}

// Machine holds the memory regions and register blocks of the console, and
// the interrupt line they drive.
//
// All methods are safe for concurrent use: each bus access or tick step
// runs with the machine lock held. The interrupt line can be polled without
// taking the lock.
type Machine struct {
	mu sync.Mutex

	Mem    Regions
	VIP    VIP
	Periph Peripherals

	bus        *hwio.Table
	vipRegs    *hwio.Table // VIP registers at block-relative offsets
	periphRegs *hwio.Table // peripheral registers at block-relative offsets

	irq    irqLine
	cfg    Config
	romCRC uint32
}

// NewMachine builds a powered-on machine, without cartridge ROM.
func NewMachine(cfg Config) (m *Machine, err error) {
	if cfg.SRAMSize <= 0 || cfg.SRAMSize > windowSize || !hwio.IsPow2(cfg.SRAMSize) {
		return nil, fmt.Errorf("invalid cartridge RAM size %#x: must be a power of 2, up to %#x", cfg.SRAMSize, windowSize)
	}

	// Mapping conflicts are programming errors, reported by hwio with panics.
	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = fmt.Errorf("machine setup: %v", r)
		}
	}()

	m = &Machine{cfg: cfg}
	m.irq.vip = &m.VIP
	m.irq.periph = &m.Periph
	m.VIP.irq = &m.irq
	m.Periph.irq = &m.irq

	m.Mem.SRAM.Data = make([]byte, cfg.SRAMSize)
	hwio.MustInitRegs(&m.Mem)
	m.VIP.reset()
	m.Periph.reset()

	m.bus = m.newTable("bus")
	m.bus.MapBank(0, &m.Mem, 0)
	m.bus.MapBank(0, &m.Mem, 1)
	m.bus.MapBank(vipBase, &m.VIP, 0)
	m.bus.MapBank(periphBase, &m.Periph, 0)

	m.vipRegs = m.newTable("vip")
	m.vipRegs.MapBank(0, &m.VIP, 0)
	m.periphRegs = m.newTable("periph")
	m.periphRegs.MapBank(0, &m.Periph, 0)

	m.irq.update()
	return m, nil
}

func (m *Machine) newTable(name string) *hwio.Table {
	t := hwio.NewTable(name)
	t.Unmapped = &hwio.OpenBus{Value: m.cfg.OpenBus}
	return t
}

var errROMSize = errors.New("rom size must be a power of 2")

// LoadROM inserts a cartridge ROM image, replacing the current one. The
// image is mirrored over the whole ROM window. data is not copied.
func (m *Machine) LoadROM(data []byte) error {
	if len(data) == 0 || !hwio.IsPow2(len(data)) {
		return fmt.Errorf("%w, got %#x bytes", errROMSize, len(data))
	}
	if len(data) > maxROMSize {
		return fmt.Errorf("rom too large: %#x bytes, max %#x", len(data), maxROMSize)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Mem.ROM.Data != nil {
		m.bus.UnmapBank(0, &m.Mem, 2)
	}
	m.Mem.ROM.Data = data
	m.bus.MapBank(0, &m.Mem, 2)
	m.romCRC = crc32.ChecksumIEEE(data)

	log.ModEmu.InfoZ("rom loaded").
		Hex32("size", uint32(len(data))).
		Hex32("crc32", m.romCRC).
		End()
	return nil
}

// Reset brings back all registers to their power-on values. A hard reset
// also clears the console memories.
func (m *Machine) Reset(soft bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.VIP.reset()
	m.Periph.reset()
	if !soft {
		m.Mem.clear()
	}
	m.irq.update()

	log.ModEmu.InfoZ("reset").Bool("soft", soft).End()
}

// TimerTick advances the timer by one interval of its selected resolution.
func (m *Machine) TimerTick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Periph.Timer.tick()
	m.irq.update()
}

// AddCycles advances the timer by n CPU cycles.
func (m *Machine) AddCycles(n uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Periph.Timer.addCycles(n)
	m.irq.update()
}

// TimerPeriod returns the interval of a timer tick at the currently selected
// resolution.
func (m *Machine) TimerPeriod() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Periph.Timer.interval()
}

// RefreshTick runs the video unit for one display refresh.
func (m *Machine) RefreshTick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.VIP.refresh()
	m.irq.update()
}

// IRQ reports whether the interrupt line is asserted.
func (m *Machine) IRQ() bool {
	return m.irq.load() != 0
}

// IRQSources returns the sources currently asserting the interrupt line.
func (m *Machine) IRQSources() hwdefs.IRQSource {
	return m.irq.load()
}

// IRQLevel returns the interrupt level presented to the CPU, -1 if none.
func (m *Machine) IRQLevel() int {
	return m.irq.load().Level()
}

// SetKeypad presents the game pad word, latched into SDLR/SDHR on the next
// Hw-Si strobe.
func (m *Machine) SetKeypad(keys uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Periph.keypad = keys
}

// Receive stores a byte received by the communication port into CDRR.
func (m *Machine) Receive(val uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Periph.CDRR.Value = val
	log.ModSerial.DebugZ("comm receive").Hex8("val", val).End()
}

// DrainTx returns and forgets the bytes written to CDTR since the last call.
func (m *Machine) DrainTx() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := m.Periph.tx
	m.Periph.tx = nil
	return tx
}
