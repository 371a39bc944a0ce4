package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineLoggerDirections(t *testing.T) {
	var buf bytes.Buffer
	l := NewLine(&buf)

	l.Log(false, "1 1 72")
	l.Log(true, "0 7 100 -50\r\n")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "TX 1 1 72")
	assert.Contains(t, lines[1], "RX 0 7 100 -50")
}

func TestLineLoggerSkipsEmptyLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewLine(&buf)

	l.Log(true, "")
	l.Log(true, "\r\n")
	assert.Zero(t, buf.Len())
}

func TestLineLoggerNilWriterIsNoOp(t *testing.T) {
	l := NewLine(nil)
	l.Log(false, "0 2") // must not panic
}
