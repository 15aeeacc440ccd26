package snapshot

//go:generate go tool msgp -tests=false -io=false

// Version of the snapshot format.
const Version = 1

type Machine struct {
	Version     int
	ROMChecksum uint32 // CRC32 of the cartridge ROM the state belongs to

	VIP    VIP
	Periph Periph
	Timer  Timer

	VRAM  []byte
	Audio []byte
	WRAM  []byte
	SRAM  []byte
}

type VIP struct {
	INTPND uint16
	INTENB uint16
	DPSTTS uint16
	DPCTRL uint16
	BRTA   uint16
	BRTB   uint16
	BRTC   uint16
	REST   uint16
	FRMCYC uint16
	CTA    uint16
	XPSTTS uint16
	XPCTRL uint16
	SPT    [4]uint16
	GPLT   [4]uint16
	JPLT   [4]uint16
	BKCOL  uint16

	Frame uint16
}

type Periph struct {
	CCR  uint8
	CCSR uint8
	CDTR uint8
	CDRR uint8
	SDLR uint8
	SDHR uint8
	TCR  uint8
	WCR  uint8
	SCR  uint8

	Keypad uint16
	Tx     []byte
}

type Timer struct {
	Reload    uint16
	Counter   uint16
	Subcycles uint32
}
