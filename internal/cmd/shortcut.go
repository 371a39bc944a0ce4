package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lklein/serimon/internal/log"
	"github.com/lklein/serimon/internal/serialport"
)

// Shortcut sends a common keyboard shortcut.
type Shortcut struct {
	Serial serialport.Config `embed:"" prefix:"serial."`
	Name   string            `arg:"" enum:"copy,paste,cut,undo,redo,select-all,alt-tab,alt-f4" help:"Shortcut to send"`
}

// Run is called by Kong when the shortcut command is executed.
func (s *Shortcut) Run(logger *slog.Logger, raw log.LineLogger) error {
	m, port, err := openMonitor(s.Serial, logger, raw)
	if err != nil {
		return err
	}
	defer port.Close()

	actions := map[string]func() error{
		"copy":       m.Copy,
		"paste":      m.Paste,
		"cut":        m.Cut,
		"undo":       m.Undo,
		"redo":       m.Redo,
		"select-all": m.SelectAll,
		"alt-tab":    m.AltTab,
		"alt-f4":     m.AltF4,
	}
	action, ok := actions[s.Name]
	if !ok {
		return fmt.Errorf("unknown shortcut %q", s.Name)
	}
	return action()
}
