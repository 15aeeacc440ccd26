package hwio

// Device is a BankIO implementation that allows manual management of an entire
// range of memory, one byte at a time. Wider accesses are composed of byte
// accesses, low address first.
type Device struct {
	Name  string // name of the memory area (for debugging)
	Size  int    // size of the memory area
	Flags RWFlags

	ReadCb  func(addr uint32, peek bool) uint8
	WriteCb func(addr uint32, val uint8)
}

func (d *Device) Read8(addr uint32, peek bool) uint8 {
	if d.Flags&WriteOnlyFlag != 0 || d.ReadCb == nil {
		return 0
	}
	return d.ReadCb(addr, peek)
}

func (d *Device) Read16(addr uint32, peek bool) uint16 {
	return uint16(d.Read8(addr, peek)) | uint16(d.Read8(addr+1, peek))<<8
}

func (d *Device) Write8(addr uint32, val uint8) {
	if d.Flags&ReadOnlyFlag != 0 || d.WriteCb == nil {
		return
	}
	d.WriteCb(addr, val)
}

func (d *Device) Write16(addr uint32, val uint16) {
	d.Write8(addr, uint8(val))
	d.Write8(addr+1, uint8(val>>8))
}
