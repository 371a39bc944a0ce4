package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// LineLogger records raw protocol lines with optional file output.
type LineLogger interface {
	Log(rx bool, line string)
}

// lineLogger implements LineLogger with thread-safe writes.
type lineLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewLine creates a new LineLogger. If writer is nil, returns a no-op logger.
func NewLine(w io.Writer) LineLogger {
	return &lineLogger{w: w}
}

// Log emits one timestamped raw protocol line. rx=true means host<-device
// traffic (monitoring), rx=false means host->device traffic (sending).
func (l *lineLogger) Log(rx bool, line string) {
	if l.w == nil {
		return
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return
	}

	dir := "TX"
	if rx {
		dir = "RX"
	}

	out := fmt.Sprintf("%s %s %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		dir,
		line)

	l.mu.Lock()
	_, _ = l.w.Write([]byte(out))
	l.mu.Unlock()
}
