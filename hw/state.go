package hw

import (
	"fmt"
	"slices"

	"vboy/hw/snapshot"
)

// Snapshot captures the whole register and memory state of the machine. The
// cartridge ROM is not part of it, only its checksum.
func (m *Machine) Snapshot() *snapshot.Machine {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, p := &m.VIP, &m.Periph
	return &snapshot.Machine{
		Version:     snapshot.Version,
		ROMChecksum: m.romCRC,
		VIP: snapshot.VIP{
			INTPND: v.INTPND.Value,
			INTENB: v.INTENB.Value,
			DPSTTS: v.DPSTTS.Value,
			DPCTRL: v.DPCTRL.Value,
			BRTA:   v.BRTA.Value,
			BRTB:   v.BRTB.Value,
			BRTC:   v.BRTC.Value,
			REST:   v.REST.Value,
			FRMCYC: v.FRMCYC.Value,
			CTA:    v.CTA.Value,
			XPSTTS: v.XPSTTS.Value,
			XPCTRL: v.XPCTRL.Value,
			SPT:    [4]uint16{v.SPT0.Value, v.SPT1.Value, v.SPT2.Value, v.SPT3.Value},
			GPLT:   [4]uint16{v.GPLT0.Value, v.GPLT1.Value, v.GPLT2.Value, v.GPLT3.Value},
			JPLT:   [4]uint16{v.JPLT0.Value, v.JPLT1.Value, v.JPLT2.Value, v.JPLT3.Value},
			BKCOL:  v.BKCOL.Value,
			Frame:  v.frame,
		},
		Periph: snapshot.Periph{
			CCR:    p.CCR.Value,
			CCSR:   p.CCSR.Value,
			CDTR:   p.CDTR.Value,
			CDRR:   p.CDRR.Value,
			SDLR:   p.SDLR.Value,
			SDHR:   p.SDHR.Value,
			TCR:    p.TCR.Value,
			WCR:    p.WCR.Value,
			SCR:    p.SCR.Value,
			Keypad: p.keypad,
			Tx:     slices.Clone(p.tx),
		},
		Timer: snapshot.Timer{
			Reload:    p.Timer.reload,
			Counter:   p.Timer.counter,
			Subcycles: p.Timer.subcycles,
		},
		VRAM:  slices.Clone(m.Mem.VRAM.Data),
		Audio: slices.Clone(m.Mem.Audio.Data),
		WRAM:  slices.Clone(m.Mem.WRAM.Data),
		SRAM:  slices.Clone(m.Mem.SRAM.Data),
	}
}

func checkSize(name string, got []byte, want int) error {
	if len(got) != want {
		return fmt.Errorf("snapshot: %s size mismatch: got %#x bytes, want %#x", name, len(got), want)
	}
	return nil
}

// Restore replaces the machine state with the one in state. The snapshot
// must have been taken with the same cartridge ROM and RAM size.
func (m *Machine) Restore(state *snapshot.Machine) error {
	if state.Version != snapshot.Version {
		return fmt.Errorf("snapshot: unsupported version %d", state.Version)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if state.ROMChecksum != m.romCRC {
		return fmt.Errorf("snapshot: rom checksum mismatch: %08x, loaded rom is %08x", state.ROMChecksum, m.romCRC)
	}
	for _, r := range []struct {
		name string
		got  []byte
		mem  []byte
	}{
		{"VRAM", state.VRAM, m.Mem.VRAM.Data},
		{"audio RAM", state.Audio, m.Mem.Audio.Data},
		{"WRAM", state.WRAM, m.Mem.WRAM.Data},
		{"cartridge RAM", state.SRAM, m.Mem.SRAM.Data},
	} {
		if err := checkSize(r.name, r.got, len(r.mem)); err != nil {
			return err
		}
	}

	copy(m.Mem.VRAM.Data, state.VRAM)
	copy(m.Mem.Audio.Data, state.Audio)
	copy(m.Mem.WRAM.Data, state.WRAM)
	copy(m.Mem.SRAM.Data, state.SRAM)

	v, sv := &m.VIP, &state.VIP
	v.INTPND.Value = sv.INTPND
	v.INTENB.Value = sv.INTENB
	v.DPSTTS.Value = sv.DPSTTS
	v.DPCTRL.Value = sv.DPCTRL
	v.BRTA.Value = sv.BRTA
	v.BRTB.Value = sv.BRTB
	v.BRTC.Value = sv.BRTC
	v.REST.Value = sv.REST
	v.FRMCYC.Value = sv.FRMCYC
	v.CTA.Value = sv.CTA
	v.XPSTTS.Value = sv.XPSTTS
	v.XPCTRL.Value = sv.XPCTRL
	v.SPT0.Value, v.SPT1.Value, v.SPT2.Value, v.SPT3.Value = sv.SPT[0], sv.SPT[1], sv.SPT[2], sv.SPT[3]
	v.GPLT0.Value, v.GPLT1.Value, v.GPLT2.Value, v.GPLT3.Value = sv.GPLT[0], sv.GPLT[1], sv.GPLT[2], sv.GPLT[3]
	v.JPLT0.Value, v.JPLT1.Value, v.JPLT2.Value, v.JPLT3.Value = sv.JPLT[0], sv.JPLT[1], sv.JPLT[2], sv.JPLT[3]
	v.BKCOL.Value = sv.BKCOL
	v.frame = sv.Frame

	p, sp := &m.Periph, &state.Periph
	p.CCR.Value = sp.CCR
	p.CCSR.Value = sp.CCSR
	p.CDTR.Value = sp.CDTR
	p.CDRR.Value = sp.CDRR
	p.SDLR.Value = sp.SDLR
	p.SDHR.Value = sp.SDHR
	p.TCR.Value = sp.TCR
	p.WCR.Value = sp.WCR
	p.SCR.Value = sp.SCR
	p.keypad = sp.Keypad
	p.tx = slices.Clone(sp.Tx)

	p.Timer.reload = state.Timer.Reload
	p.Timer.counter = state.Timer.Counter
	p.Timer.subcycles = state.Timer.Subcycles

	m.irq.update()
	return nil
}

// SaveState encodes a snapshot of the machine.
func (m *Machine) SaveState() ([]byte, error) {
	return m.Snapshot().MarshalMsg(nil)
}

// LoadState decodes a snapshot encoded by SaveState and restores it.
func (m *Machine) LoadState(buf []byte) error {
	var state snapshot.Machine
	if _, err := state.UnmarshalMsg(buf); err != nil {
		return fmt.Errorf("snapshot: decode: %w", err)
	}
	return m.Restore(&state)
}
