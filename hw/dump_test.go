package hw

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegsJSON(t *testing.T) {
	m := newTestMachine(t)
	m.VIPWrite16(0x02, intFrameStart)
	m.VIPWrite16(0x24, 0x0020)
	m.RefreshTick()
	m.loadTimer(0x1234, tcrEnable|tcrClkSel)

	var dump struct {
		VIP    map[string]uint16 `json:"vip"`
		Periph map[string]uint8  `json:"periph"`
		Timer  struct {
			Reload   uint16 `json:"reload"`
			Counter  uint16 `json:"counter"`
			Running  bool   `json:"running"`
			Interval string `json:"interval"`
		} `json:"timer"`
		IRQ struct {
			Asserted bool   `json:"asserted"`
			Sources  string `json:"sources"`
			Level    int    `json:"level"`
		} `json:"irq"`
	}
	buf := m.RegsJSON()
	if err := json.Unmarshal(buf, &dump); err != nil {
		t.Fatalf("invalid JSON %s: %v", buf, err)
	}

	if len(dump.VIP) != 26 {
		t.Errorf("got %d VIP registers, want 26", len(dump.VIP))
	}
	for name, want := range map[string]uint16{
		"INTPND": intFrameStart | intGameStart,
		"INTENB": intFrameStart,
		"BRTA":   0x0020,
		"VER":    2,
	} {
		if got := dump.VIP[name]; got != want {
			t.Errorf("vip.%s = 0x%04x, want 0x%04x", name, got, want)
		}
	}

	wantPeriph := map[string]uint8{
		"CCR":  0x6D,
		"CCSR": 0xFF,
		"CDRR": 0x00,
		"SDLR": 0x00,
		"SDHR": 0x00,
		"TCR":  0x80 | tcrEnable | tcrClkSel,
		"WCR":  0xFC,
		"SCR":  0x48,
	}
	if diff := cmp.Diff(wantPeriph, dump.Periph); diff != "" {
		t.Errorf("periph mismatch (-want +got):\n%s", diff)
	}

	if dump.Timer.Reload != 0x1234 || dump.Timer.Counter != 0x1234 || !dump.Timer.Running || dump.Timer.Interval != "20µs" {
		t.Errorf("timer = %+v", dump.Timer)
	}
	if !dump.IRQ.Asserted || dump.IRQ.Sources != "vip" || dump.IRQ.Level != 4 {
		t.Errorf("irq = %+v", dump.IRQ)
	}
}
