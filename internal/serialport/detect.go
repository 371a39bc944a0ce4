package serialport

import (
	"bufio"
	"io"
	"log/slog"
	"strings"

	"github.com/lklein/serimon/protocol"
)

// CommonBaudRates lists the rates the detector probes, most common first.
var CommonBaudRates = []int{9600, 115200, 57600, 38400, 19200, 14400, 4800, 2400, 1200}

// PrioritizedBaudRates returns CommonBaudRates with the preferred rate moved
// to the front. A previously detected or configured rate gets probed first.
func PrioritizedBaudRates(preferred int) []int {
	rates := make([]int, 0, len(CommonBaudRates)+1)
	if preferred > 0 {
		rates = append(rates, preferred)
	}
	for _, r := range CommonBaudRates {
		if r != preferred {
			rates = append(rates, r)
		}
	}
	return rates
}

// DetectBaud probes candidate rates and returns the first one over which
// protocol-valid traffic is observed. A rate producing traffic that does not
// parse is still accepted (the device may be mid-line). With no traffic at
// all, the configured rate is returned unchanged.
func (c Config) DetectBaud(logger *slog.Logger) int {
	return c.detectBaud(logger, func(baud int) (io.ReadWriteCloser, error) {
		return c.openAt(baud)
	})
}

func (c Config) detectBaud(logger *slog.Logger, open func(int) (io.ReadWriteCloser, error)) int {
	rates := PrioritizedBaudRates(c.Baud)
	for i, baud := range rates {
		logger.Debug("probing baud rate", "baud", baud, "attempt", i+1, "of", len(rates))

		port, err := open(baud)
		if err != nil {
			logger.Debug("baud probe failed", "baud", baud, "error", err)
			continue
		}
		valid, any := probeLines(port)
		_ = port.Close()

		if valid {
			logger.Info("baud rate detected", "baud", baud)
			return baud
		}
		if any {
			logger.Info("baud rate accepted, traffic seen but not parseable", "baud", baud)
			return baud
		}
	}
	logger.Info("baud detection saw no traffic, using configured rate", "baud", c.Baud)
	return c.Baud
}

// probeLines reads up to three lines from the port within its read timeout
// and reports whether any of them looked like protocol traffic.
func probeLines(r io.Reader) (valid, any bool) {
	br := bufio.NewReader(r)
	for i := 0; i < 3; i++ {
		line, err := br.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			any = true
			if protocol.Valid(line) {
				return true, true
			}
		}
		if err != nil {
			break
		}
	}
	return false, any
}

// OpenDetected opens the port, probing for the baud rate first when AutoBaud
// is set. The rate actually used is returned alongside the port.
func (c Config) OpenDetected(logger *slog.Logger) (io.ReadWriteCloser, int, error) {
	baud := c.Baud
	if c.AutoBaud {
		baud = c.DetectBaud(logger)
	}
	port, err := c.openAt(baud)
	if err != nil {
		return nil, 0, err
	}
	return port, baud, nil
}
