package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lklein/serimon/internal/log"
	"github.com/lklein/serimon/internal/serialport"
	"github.com/lklein/serimon/vk"
)

// Key taps a single key by its technical name.
type Key struct {
	Serial serialport.Config `embed:"" prefix:"serial."`
	Name   string            `arg:"" help:"Technical key name, e.g. ENTER, F4, LEFT_CTRL, PAGE_UP"`
}

// Run is called by Kong when the key command is executed.
func (k *Key) Run(logger *slog.Logger, raw log.LineLogger) error {
	key, ok := vk.Lookup(k.Name)
	if !ok {
		return fmt.Errorf("unknown key name %q", k.Name)
	}

	m, port, err := openMonitor(k.Serial, logger, raw)
	if err != nil {
		return err
	}
	defer port.Close()

	return m.TapKey(key)
}
