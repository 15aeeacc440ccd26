package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"

	"vboy/emu"
	"vboy/emu/log"
	"vboy/rom"
)

// runMain runs the emulator drivers in real time with the given rom.
func runMain(args Run, cfg emu.Config) {
	cart, err := rom.Open(args.RomPath)
	checkf(err, "failed to open rom")

	e, err := emu.Launch(cart, cfg)
	checkf(err, "failed to start emulator")

	if args.CPUProfile != "" {
		f, err := os.Create(args.CPUProfile)
		checkf(err, "failed to create cpu profile file")
		checkf(pprof.StartCPUProfile(f), "failed to start cpu profile")
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
			fmt.Println("CPU profile written to", args.CPUProfile)
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if args.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, args.Duration)
		defer cancel()
	}

	log.ModEmu.InfoZ("Emulation started").String("rom", args.RomPath).End()
	checkf(e.Run(ctx), "emulation failed")

	st := e.Stats()
	fmt.Printf("timer ticks: %d\nrefreshes:   %d\nirq:         %v (level %d)\n",
		st.TimerTicks, st.Refreshes, st.IRQ, st.IRQ.Level())
}

func romInfosMain(args RomInfos) {
	cart, err := rom.Open(args.RomPath)
	checkf(err, "failed to open rom")
	cart.PrintInfos(os.Stdout)
}

// powerUp returns an emulator with the rom inserted, with drivers stopped so
// that the machine can be stepped deterministically.
func powerUp(romPath string, cfg emu.Config) *emu.Emulator {
	cart, err := rom.Open(romPath)
	checkf(err, "failed to open rom")

	e, err := emu.Launch(cart, cfg)
	checkf(err, "failed to start emulator")
	return e
}

func regsMain(args Regs, cfg emu.Config) {
	e := powerUp(args.RomPath, cfg)

	if args.State != "" {
		buf, err := os.ReadFile(args.State)
		checkf(err, "failed to read save state")
		checkf(e.Machine.LoadState(buf), "failed to load save state")
	}
	for range args.Refreshes {
		e.Machine.RefreshTick()
	}

	out := os.Stdout.Write
	if args.Out != nil {
		defer args.Out.Close()
		out = args.Out.Write
	}
	_, err := out(append(e.Machine.RegsJSON(), '\n'))
	checkf(err, "failed to write registers")
}

func stateMain(args State, cfg emu.Config) {
	defer args.Out.Close()

	e := powerUp(args.RomPath, cfg)
	for range args.Refreshes {
		e.Machine.RefreshTick()
	}
	if args.Cycles > 0 {
		e.Machine.AddCycles(args.Cycles)
	}

	buf, err := e.Machine.SaveState()
	checkf(err, "failed to encode save state")
	_, err = args.Out.Write(buf)
	checkf(err, "failed to write save state")

	log.ModEmu.InfoZ("State saved").String("file", args.Out.String()).Int("size", len(buf)).End()
}
