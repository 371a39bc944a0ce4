package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lklein/serimon/internal/host"
	"github.com/lklein/serimon/internal/log"
	"github.com/lklein/serimon/internal/serialport"
)

// Monitor reads the serial link and logs every decoded input event.
type Monitor struct {
	Serial serialport.Config `embed:"" prefix:"serial."`
}

// Run is called by Kong when the monitor command is executed.
func (c *Monitor) Run(logger *slog.Logger, raw log.LineLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port, baud, err := c.Serial.OpenDetected(logger)
	if err != nil {
		return err
	}
	defer port.Close()

	logger.Info("monitoring serial link", "port", c.Serial.Port, "baud", baud)
	h := host.New(port, logger, raw)
	return h.Run(ctx)
}
