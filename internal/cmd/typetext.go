package cmd

import (
	"log/slog"
	"strings"

	"github.com/lklein/serimon/internal/log"
	"github.com/lklein/serimon/internal/serialport"
)

// Type types text on the remote host.
type Type struct {
	Serial  serialport.Config `embed:"" prefix:"serial."`
	Newline bool              `help:"Tap Enter after the text" short:"n"`
	Text    []string          `arg:"" help:"Text to type on the remote host"`
}

// Run is called by Kong when the type command is executed.
func (t *Type) Run(logger *slog.Logger, raw log.LineLogger) error {
	m, port, err := openMonitor(t.Serial, logger, raw)
	if err != nil {
		return err
	}
	defer port.Close()

	text := strings.Join(t.Text, " ")
	if t.Newline {
		return m.TypeTextLine(text)
	}
	return m.TypeText(text)
}
