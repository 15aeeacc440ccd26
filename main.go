package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"vboy/emu"
)

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case runMode:
		runMain(cli.Run, loadConfig(cli.Config))
	case romInfosMode:
		romInfosMain(cli.RomInfos)
	case regsMode:
		regsMain(cli.Regs, loadConfig(cli.Config))
	case stateMode:
		stateMain(cli.State, loadConfig(cli.Config))
	case versionMode:
		printVersion()
	}
}

func loadConfig(path string) emu.Config {
	cfg, err := emu.LoadConfigOrDefault(path)
	checkf(err, "failed to load configuration")
	return cfg
}

func printVersion() {
	version := "(devel)"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		version = bi.Main.Version
	}
	fmt.Println("vboy", version)
}
