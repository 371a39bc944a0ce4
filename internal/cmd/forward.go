package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/lklein/serimon/internal/log"
	"github.com/lklein/serimon/internal/serialport"
)

// escapeByte ends a forwarding session (Ctrl+]).
const escapeByte = 0x1D

// Forward puts the local terminal in raw mode and types every keystroke on
// the remote host until Ctrl+] is pressed.
type Forward struct {
	Serial serialport.Config `embed:"" prefix:"serial."`
}

// Run is called by Kong when the forward command is executed.
func (f *Forward) Run(logger *slog.Logger, raw log.LineLogger) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("forward requires an interactive terminal")
	}

	m, port, err := openMonitor(f.Serial, logger, raw)
	if err != nil {
		return err
	}
	defer port.Close()

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("switch terminal to raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	fmt.Printf("Forwarding keystrokes to %s. Press Ctrl+] to stop.\r\n", f.Serial.Port)

	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return err
		}
		c := buf[0]
		if c == escapeByte {
			return nil
		}
		if c == '\r' {
			c = '\n'
		}
		if err := m.TypeCharacter(c); err != nil {
			return err
		}
	}
}
