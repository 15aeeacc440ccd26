package emu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"vboy/emu/log"
	"vboy/hw"
	"vboy/hw/hwio"
)

type Config struct {
	Emulation EmulationConfig `toml:"emulation"`
	Drivers   DriversConfig   `toml:"drivers"`
}

type EmulationConfig struct {
	SRAMSize int    `toml:"sram_size"`
	OpenBus  uint32 `toml:"open_bus"`
}

type DriversConfig struct {
	Timer         bool `toml:"timer"`
	TimerPeriodUS int  `toml:"timer_period_us"`
	RefreshHz     int  `toml:"refresh_hz"`
}

func DefaultConfig() Config {
	hwcfg := hw.DefaultConfig()
	return Config{
		Emulation: EmulationConfig{
			SRAMSize: hwcfg.SRAMSize,
			OpenBus:  hwcfg.OpenBus,
		},
		Drivers: DriversConfig{
			Timer:         true,
			TimerPeriodUS: 1000,
			RefreshHz:     50,
		},
	}
}

// Check replaces invalid settings with their default value.
func (cfg *Config) Check() {
	def := DefaultConfig()
	if cfg.Emulation.SRAMSize <= 0 || !hwio.IsPow2(cfg.Emulation.SRAMSize) {
		log.ModEmu.Warnf("Invalid sram_size %d, fallback to %d", cfg.Emulation.SRAMSize, def.Emulation.SRAMSize)
		cfg.Emulation.SRAMSize = def.Emulation.SRAMSize
	}
	if cfg.Drivers.TimerPeriodUS <= 0 {
		log.ModEmu.Warnf("Invalid timer_period_us %d, fallback to %d", cfg.Drivers.TimerPeriodUS, def.Drivers.TimerPeriodUS)
		cfg.Drivers.TimerPeriodUS = def.Drivers.TimerPeriodUS
	}
	if cfg.Drivers.RefreshHz <= 0 || cfg.Drivers.RefreshHz > 1000 {
		log.ModEmu.Warnf("Invalid refresh_hz %d, fallback to %d", cfg.Drivers.RefreshHz, def.Drivers.RefreshHz)
		cfg.Drivers.RefreshHz = def.Drivers.RefreshHz
	}
}

func (cfg *Config) hwConfig() hw.Config {
	return hw.Config{
		SRAMSize: cfg.Emulation.SRAMSize,
		OpenBus:  cfg.Emulation.OpenBus,
	}
}

func (cfg *DriversConfig) timerPeriod() time.Duration {
	return time.Duration(cfg.TimerPeriodUS) * time.Microsecond
}

func (cfg *DriversConfig) refreshPeriod() time.Duration {
	return time.Second / time.Duration(cfg.RefreshHz)
}

// ConfigDir returns the vboy config directory, creating it if needed.
var ConfigDir = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("vboy")
	if err := configdir.MakePath(dir); err != nil {
		log.ModEmu.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})

const cfgFilename = "config.toml"

// ConfigPath returns the default path of the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), cfgFilename)
}

// LoadConfigOrDefault loads the configuration at path, or the one in the vboy
// config directory if path is empty. Settings missing from the file keep
// their default value, a missing file gives the default configuration.
func LoadConfigOrDefault(path string) (Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.ModEmu.WarnZ("Unknown config key").String("key", key.String()).String("file", path).End()
	}
	cfg.Check()
	return cfg, nil
}

// SaveConfig writes cfg at path, or into the vboy config directory if path
// is empty.
func SaveConfig(path string, cfg Config) error {
	if path == "" {
		path = ConfigPath()
	}
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, buf, 0644)
}
