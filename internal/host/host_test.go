package host

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/lklein/serimon/internal/log"
	"github.com/lklein/serimon/protocol"

	"github.com/stretchr/testify/assert"
)

func newTestHost(r io.Reader) (*Host, *bytes.Buffer) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	return New(r, logger, log.NewLine(nil)), &logBuf
}

func TestHandleLine(t *testing.T) {
	type testCase struct {
		name        string
		line        string
		logContains []string
	}

	cases := []testCase{
		{
			name:        "key press",
			line:        "1 1 72",
			logContains: []string{"key pressed", "key=H", "code=0x48"},
		},
		{
			name:        "key release of shift",
			line:        "1 0 160",
			logContains: []string{"key released", "key=LEFT_SHIFT"},
		},
		{
			name:        "unknown key code",
			line:        "1 1 159",
			logContains: []string{"key pressed", "key=UNKNOWN_0x9F"},
		},
		{
			name:        "invalid keyboard event",
			line:        "1 5 72",
			logContains: []string{"invalid keyboard event"},
		},
		{
			name:        "mouse position",
			line:        "0 7 100 -50",
			logContains: []string{"mouse position", "x=100", "y=-50"},
		},
		{
			name:        "mouse scroll up",
			line:        "0 6 3",
			logContains: []string{"mouse scroll", "amount=3", "direction=up"},
		},
		{
			name:        "mouse scroll down",
			line:        "0 6 -3",
			logContains: []string{"direction=down"},
		},
		{
			name:        "mouse button",
			line:        "0 2",
			logContains: []string{"mouse left-press"},
		},
		{
			name:        "comment",
			line:        "# firmware ready",
			logContains: []string{"device comment", "firmware ready"},
		},
		{
			name:        "garbage",
			line:        "!!nonsense!!",
			logContains: []string{"unrecognized line"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, logBuf := newTestHost(nil)
			h.handleLine(tc.line)
			for _, want := range tc.logContains {
				assert.Contains(t, logBuf.String(), want)
			}
		})
	}
}

func TestHandlerReceivesDecodedCommands(t *testing.T) {
	h, _ := newTestHost(nil)
	var got []protocol.Command
	h.SetHandler(func(c protocol.Command) { got = append(got, c) })

	h.handleLine("1 1 72")
	h.handleLine("# comment does not reach the handler")
	h.handleLine("bogus")
	h.handleLine("0 6 -3")

	assert.Equal(t, []protocol.Command{
		{Device: protocol.DeviceKeyboard, Event: 1, Param1: 72},
		{Device: protocol.DeviceMouse, Event: 6, Param1: -3},
	}, got)
}

func TestRunDispatchesAndStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	h, logBuf := newTestHost(pr)

	var mu sync.Mutex
	var got []protocol.Command
	h.SetHandler(func(c protocol.Command) {
		mu.Lock()
		got = append(got, c)
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()

	_, err := pw.Write([]byte("1 1 72\n0 7 10 20\n"))
	assert.NoError(t, err)
	assert.NoError(t, pw.Close())

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []protocol.Command{
		{Device: protocol.DeviceKeyboard, Event: 1, Param1: 72},
		{Device: protocol.DeviceMouse, Event: 7, Param1: 10, Param2: 20},
	}, got)
	assert.Contains(t, logBuf.String(), "key pressed")
}

type scriptReader struct {
	data []byte
	err  error
	pos  int
}

func (r *scriptReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, r.err
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func TestRunReturnsLinkError(t *testing.T) {
	wantErr := errors.New("device unplugged")
	h, _ := newTestHost(&scriptReader{data: []byte("0 2\n"), err: wantErr})

	var got []protocol.Command
	h.SetHandler(func(c protocol.Command) { got = append(got, c) })

	err := h.Run(context.Background())
	assert.ErrorIs(t, err, wantErr)
	assert.Len(t, got, 1)
}

func TestRunSplitsChunkedLines(t *testing.T) {
	// Lines arriving split across reads are reassembled.
	r := &chunkedReader{chunks: []string{"1 1 ", "72\n0", " 3\n"}, err: errors.New("closed")}
	h, _ := newTestHost(r)

	var got []protocol.Command
	h.SetHandler(func(c protocol.Command) { got = append(got, c) })

	err := h.Run(context.Background())
	assert.Error(t, err)
	assert.Equal(t, []protocol.Command{
		{Device: protocol.DeviceKeyboard, Event: 1, Param1: 72},
		{Device: protocol.DeviceMouse, Event: 3},
	}, got)
}

type chunkedReader struct {
	chunks []string
	err    error
	pos    int
}

func (r *chunkedReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.chunks) {
		return 0, r.err
	}
	n := copy(p, r.chunks[r.pos])
	r.pos++
	return n, nil
}
