// Package host implements the receiving side of the wire protocol: it reads
// lines from the serial link, decodes them and reports each input event
// through the logger and an optional command handler.
package host

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lklein/serimon/internal/log"
	"github.com/lklein/serimon/protocol"
	"github.com/lklein/serimon/vk"
)

// pollInterval paces the read loop while the port has no pending data.
const pollInterval = 10 * time.Millisecond

// Host consumes protocol lines from a serial link.
type Host struct {
	r       io.Reader
	logger  *slog.Logger
	raw     log.LineLogger
	handler func(protocol.Command)
}

// New returns a Host reading from r. raw may be a no-op logger.
func New(r io.Reader, logger *slog.Logger, raw log.LineLogger) *Host {
	return &Host{r: r, logger: logger, raw: raw}
}

// SetHandler installs a callback invoked for every successfully decoded
// command, after it has been logged.
func (h *Host) SetHandler(f func(protocol.Command)) {
	h.handler = f
}

// Run reads and dispatches lines until ctx is done or the link fails.
// Serial read timeouts surface as io.EOF and keep the loop alive; any other
// read error ends it.
func (h *Host) Run(ctx context.Context) error {
	buf := make([]byte, 256)
	var pending []byte

	for {
		if ctx.Err() != nil {
			return nil
		}

		n, err := h.r.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			for {
				idx := bytes.IndexByte(pending, '\n')
				if idx < 0 {
					break
				}
				line := string(pending[:idx])
				pending = pending[idx+1:]
				h.handleLine(line)
			}
		}
		if err != nil {
			if err == io.EOF {
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(pollInterval):
				}
				continue
			}
			return fmt.Errorf("read serial link: %w", err)
		}
	}
}

func (h *Host) handleLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	h.raw.Log(true, line)

	if protocol.IsComment(line) {
		h.logger.Info("device comment", "text", protocol.CommentText(line))
		return
	}

	cmd, err := protocol.ParseLine(line)
	if err != nil {
		h.logger.Warn("unrecognized line", "line", line)
		return
	}

	switch cmd.Device {
	case protocol.DeviceKeyboard:
		h.logKeyEvent(cmd)
	case protocol.DeviceMouse:
		h.logMouseEvent(cmd)
	}

	if h.handler != nil {
		h.handler(cmd)
	}
}

func (h *Host) logKeyEvent(cmd protocol.Command) {
	ev := protocol.KeyEvent(cmd.Event)
	if ev != protocol.KeyPress && ev != protocol.KeyRelease {
		h.logger.Warn("invalid keyboard event", "event", cmd.Event, "code", cmd.Param1)
		return
	}

	key := vk.Key(cmd.Param1)
	name := key.Name()
	if name == "" {
		name = fmt.Sprintf("UNKNOWN_0x%02X", cmd.Param1)
	}
	h.logger.Info("key "+ev.String()+"ed",
		"key", name,
		"code", fmt.Sprintf("0x%02X", cmd.Param1))
}

func (h *Host) logMouseEvent(cmd protocol.Command) {
	ev := protocol.MouseEvent(cmd.Event)
	switch ev {
	case protocol.MousePosition, protocol.MouseMove:
		h.logger.Info("mouse "+ev.String(), "x", cmd.Param1, "y", cmd.Param2)
	case protocol.MouseScroll:
		direction := "neutral"
		if cmd.Param1 > 0 {
			direction = "up"
		} else if cmd.Param1 < 0 {
			direction = "down"
		}
		h.logger.Info("mouse scroll", "amount", cmd.Param1, "direction", direction)
	case protocol.MouseRightPress, protocol.MouseRightRelease,
		protocol.MouseLeftPress, protocol.MouseLeftRelease,
		protocol.MouseMiddlePress, protocol.MouseMiddleRelease:
		h.logger.Info("mouse " + ev.String())
	default:
		h.logger.Warn("unknown mouse event", "event", cmd.Event)
	}
}
