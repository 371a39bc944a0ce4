package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lklein/serimon/internal/log"
	"github.com/lklein/serimon/internal/serialport"
)

// Mouse groups the mouse subcommands.
type Mouse struct {
	Position    MousePosition    `cmd:"" help:"Set the absolute cursor position"`
	Move        MouseMove        `cmd:"" help:"Move the cursor relative to its current position"`
	Click       MouseClick       `cmd:"" help:"Click a mouse button"`
	DoubleClick MouseDoubleClick `cmd:"" name:"double-click" help:"Double-click the left button"`
	Scroll      MouseScroll      `cmd:"" help:"Scroll the wheel"`
}

// MousePosition sets the absolute cursor position.
type MousePosition struct {
	Serial serialport.Config `embed:"" prefix:"serial."`
	X      int               `arg:"" help:"X coordinate in pixels"`
	Y      int               `arg:"" help:"Y coordinate in pixels"`
}

func (c *MousePosition) Run(logger *slog.Logger, raw log.LineLogger) error {
	m, port, err := openMonitor(c.Serial, logger, raw)
	if err != nil {
		return err
	}
	defer port.Close()
	return m.SetMousePosition(c.X, c.Y)
}

// MouseMove moves the cursor relative to its current position.
type MouseMove struct {
	Serial serialport.Config `embed:"" prefix:"serial."`
	DX     int               `arg:"" help:"X displacement, may be negative"`
	DY     int               `arg:"" help:"Y displacement, may be negative"`
}

func (c *MouseMove) Run(logger *slog.Logger, raw log.LineLogger) error {
	m, port, err := openMonitor(c.Serial, logger, raw)
	if err != nil {
		return err
	}
	defer port.Close()
	return m.MoveMouseRelative(c.DX, c.DY)
}

// MouseClick clicks a mouse button.
type MouseClick struct {
	Serial serialport.Config `embed:"" prefix:"serial."`
	Button string            `help:"Button to click" enum:"left,right" default:"left"`
}

func (c *MouseClick) Run(logger *slog.Logger, raw log.LineLogger) error {
	m, port, err := openMonitor(c.Serial, logger, raw)
	if err != nil {
		return err
	}
	defer port.Close()

	switch c.Button {
	case "left":
		return m.ClickLeft()
	case "right":
		return m.ClickRight()
	default:
		return fmt.Errorf("unknown button %q", c.Button)
	}
}

// MouseDoubleClick double-clicks the left button.
type MouseDoubleClick struct {
	Serial serialport.Config `embed:"" prefix:"serial."`
}

func (c *MouseDoubleClick) Run(logger *slog.Logger, raw log.LineLogger) error {
	m, port, err := openMonitor(c.Serial, logger, raw)
	if err != nil {
		return err
	}
	defer port.Close()
	return m.DoubleClickLeft()
}

// MouseScroll scrolls the wheel.
type MouseScroll struct {
	Serial serialport.Config `embed:"" prefix:"serial."`
	Amount int               `arg:"" help:"Scroll amount; positive scrolls up, negative down"`
}

func (c *MouseScroll) Run(logger *slog.Logger, raw log.LineLogger) error {
	m, port, err := openMonitor(c.Serial, logger, raw)
	if err != nil {
		return err
	}
	defer port.Close()
	return m.ScrollMouse(c.Amount)
}
