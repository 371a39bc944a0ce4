// Package serialport opens the serial link carrying the wire protocol and
// knows how to probe for the link's baud rate when it is not configured.
package serialport

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Config describes the serial link. The struct doubles as the kong flag set
// embedded by every CLI command that talks to a port.
type Config struct {
	Port        string        `help:"Serial device path (e.g. /dev/ttyUSB0, COM3)" short:"p" env:"SERIMON_PORT" required:""`
	Baud        int           `help:"Baud rate" default:"9600" env:"SERIMON_BAUD"`
	AutoBaud    bool          `help:"Probe common baud rates until protocol traffic is seen" env:"SERIMON_AUTO_BAUD"`
	ReadTimeout time.Duration `help:"Serial read timeout" default:"1s" env:"SERIMON_READ_TIMEOUT"`
}

// Open opens the port at the configured baud rate.
func (c Config) Open() (io.ReadWriteCloser, error) {
	return c.openAt(c.Baud)
}

func (c Config) openAt(baud int) (io.ReadWriteCloser, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        c.Port,
		Baud:        baud,
		ReadTimeout: c.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s at %d baud: %w", c.Port, baud, err)
	}
	return port, nil
}
