// Package cmd implements the serimon CLI subcommands.
package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/lklein/serimon/internal/log"
	"github.com/lklein/serimon/internal/serialport"
	"github.com/lklein/serimon/monitor"
)

// rawTee mirrors every outbound protocol line into the raw line logger
// before it reaches the port. The encoder writes exactly one line per call.
type rawTee struct {
	w   io.Writer
	raw log.LineLogger
}

func (t rawTee) Write(p []byte) (int, error) {
	t.raw.Log(false, strings.TrimRight(string(p), "\n"))
	return t.w.Write(p)
}

// openMonitor opens the configured serial port and wraps it in a command
// encoder. The returned closer shuts the port.
func openMonitor(cfg serialport.Config, logger *slog.Logger, raw log.LineLogger) (*monitor.Monitor, io.Closer, error) {
	port, err := cfg.Open()
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("serial port open", "port", cfg.Port, "baud", cfg.Baud)
	m := monitor.New(rawTee{w: port, raw: raw}, monitor.WithLogger(logger))
	return m, port, nil
}
