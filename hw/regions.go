package hw

import (
	"vboy/hw/hwio"
)

// Normalized addresses of the memory windows, once the decoder has stripped
// the ignored high bits and folded the mirrors.
const (
	vramBase   = 0x00000000
	vipBase    = 0x0005F800
	chrBase    = 0x00078000
	audioBase  = 0x01000000
	periphBase = 0x02000000
	wramBase   = 0x05000000
	sramBase   = 0x06000000
	romBase    = 0x07000000

	windowSize = 0x01000000
	maxROMSize = windowSize
)

// Regions holds the memory areas of the machine. Bank 0 holds the fixed
// areas, bank 1 the cartridge RAM, whose size depends on the configuration,
// and bank 2 the cartridge ROM, remapped when a cartridge is inserted.
type Regions struct {
	VRAM  hwio.Mem    `hwio:"offset=0x00000000,size=0x40000"`
	CHR   hwio.Device `hwio:"offset=0x00078000,size=0x8000,rcb,wcb"`
	Audio hwio.Mem    `hwio:"offset=0x01000000,size=0x800,vsize=0x1000000"`
	WRAM  hwio.Mem    `hwio:"offset=0x05000000,size=0x10000,vsize=0x1000000"`

	SRAM hwio.Mem `hwio:"bank=1,offset=0x06000000,vsize=0x1000000"`
	ROM  hwio.Mem `hwio:"bank=2,offset=0x07000000,vsize=0x1000000,readonly"`
}

// chrOffset converts an address of the character table window into the
// VRAM offset of the character segment it mirrors. The window holds four
// 8KiB segments which are spread in VRAM every 32KiB, starting at 0x6000.
func chrOffset(addr uint32) uint32 {
	n := addr & 0x7FFF
	return (n>>13)*0x8000 + 0x6000 + n&0x1FFF
}

func (r *Regions) ReadCHR(addr uint32, _ bool) uint8 {
	return r.VRAM.Data[chrOffset(addr)]
}

func (r *Regions) WriteCHR(addr uint32, val uint8) {
	r.VRAM.Data[chrOffset(addr)] = val
}

// clear zeroes the console memories. Cartridge RAM is battery backed and
// survives resets.
func (r *Regions) clear() {
	r.VRAM.Clear()
	r.Audio.Clear()
	r.WRAM.Clear()
}
