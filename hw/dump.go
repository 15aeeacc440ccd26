package hw

import (
	"github.com/go-faster/jx"

	"vboy/hw/hwio"
)

func encodeReg16(e *jx.Encoder, regs ...*hwio.Reg16) {
	for _, r := range regs {
		e.Field(r.Name, func(e *jx.Encoder) { e.UInt16(r.Value) })
	}
}

func encodeReg8(e *jx.Encoder, regs ...*hwio.Reg8) {
	for _, r := range regs {
		e.Field(r.Name, func(e *jx.Encoder) { e.UInt8(r.Value) })
	}
}

// EncodeRegs writes the machine registers as a JSON object, grouped by
// register block. Register values are raw stored values, not what a bus
// read would return.
func (m *Machine) EncodeRegs(e *jx.Encoder) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, p := &m.VIP, &m.Periph
	e.Obj(func(e *jx.Encoder) {
		e.Field("vip", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				encodeReg16(e,
					&v.INTPND, &v.INTENB, &v.DPSTTS, &v.DPCTRL,
					&v.BRTA, &v.BRTB, &v.BRTC, &v.REST, &v.FRMCYC, &v.CTA,
					&v.XPSTTS, &v.XPCTRL, &v.VER,
					&v.SPT0, &v.SPT1, &v.SPT2, &v.SPT3,
					&v.GPLT0, &v.GPLT1, &v.GPLT2, &v.GPLT3,
					&v.JPLT0, &v.JPLT1, &v.JPLT2, &v.JPLT3,
					&v.BKCOL)
			})
		})
		e.Field("periph", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				encodeReg8(e,
					&p.CCR, &p.CCSR, &p.CDRR, &p.SDLR, &p.SDHR,
					&p.TCR, &p.WCR, &p.SCR)
			})
		})
		e.Field("timer", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("reload", func(e *jx.Encoder) { e.UInt16(p.Timer.reload) })
				e.Field("counter", func(e *jx.Encoder) { e.UInt16(p.Timer.counter) })
				e.Field("running", func(e *jx.Encoder) { e.Bool(p.Timer.running()) })
				e.Field("interval", func(e *jx.Encoder) { e.Str(p.Timer.interval().String()) })
			})
		})
		e.Field("irq", func(e *jx.Encoder) {
			src := m.irq.load()
			e.Obj(func(e *jx.Encoder) {
				e.Field("asserted", func(e *jx.Encoder) { e.Bool(src != 0) })
				e.Field("sources", func(e *jx.Encoder) { e.Str(src.String()) })
				e.Field("level", func(e *jx.Encoder) { e.Int(src.Level()) })
			})
		})
	})
}

// RegsJSON returns the register dump produced by EncodeRegs.
func (m *Machine) RegsJSON() []byte {
	var e jx.Encoder
	m.EncodeRegs(&e)
	return e.Bytes()
}
