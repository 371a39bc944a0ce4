package serialport

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrioritizedBaudRates(t *testing.T) {
	rates := PrioritizedBaudRates(57600)
	assert.Equal(t, 57600, rates[0])
	assert.Len(t, rates, len(CommonBaudRates))

	// A preferred rate outside the common set is still probed first.
	rates = PrioritizedBaudRates(250000)
	assert.Equal(t, 250000, rates[0])
	assert.Len(t, rates, len(CommonBaudRates)+1)

	// No preference keeps the default order.
	assert.Equal(t, CommonBaudRates, PrioritizedBaudRates(0))
}

type fakePort struct{ io.Reader }

func (f fakePort) Write(p []byte) (int, error) { return len(p), nil }
func (f fakePort) Close() error                { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDetectBaudPicksRateWithValidTraffic(t *testing.T) {
	cfg := Config{Port: "COM9", Baud: 9600}

	var opened []int
	open := func(baud int) (io.ReadWriteCloser, error) {
		opened = append(opened, baud)
		switch baud {
		case 9600:
			return nil, errors.New("open failed")
		case 115200:
			return fakePort{strings.NewReader("")}, nil
		case 57600:
			return fakePort{strings.NewReader("1 1 72\n")}, nil
		default:
			return fakePort{strings.NewReader("")}, nil
		}
	}

	got := cfg.detectBaud(discardLogger(), open)
	assert.Equal(t, 57600, got)
	assert.Equal(t, []int{9600, 115200, 57600}, opened)
}

func TestDetectBaudAcceptsUnparseableTraffic(t *testing.T) {
	cfg := Config{Port: "COM9", Baud: 9600}

	// Garbled data still pins the rate: the device may be mid-line or the
	// protocol may have grown new events.
	open := func(baud int) (io.ReadWriteCloser, error) {
		return fakePort{strings.NewReader("~~garbled~~\n")}, nil
	}

	got := cfg.detectBaud(discardLogger(), open)
	assert.Equal(t, 9600, got)
}

func TestDetectBaudPrefersValidOverGarbled(t *testing.T) {
	cfg := Config{Port: "COM9", Baud: 9600}

	open := func(baud int) (io.ReadWriteCloser, error) {
		// The third line parses; the probe reads up to three.
		return fakePort{strings.NewReader("??\n??\n0 7 10 20\n")}, nil
	}

	got := cfg.detectBaud(discardLogger(), open)
	assert.Equal(t, 9600, got)
}

func TestDetectBaudFallsBackToConfiguredRate(t *testing.T) {
	cfg := Config{Port: "COM9", Baud: 38400}

	open := func(baud int) (io.ReadWriteCloser, error) {
		return fakePort{strings.NewReader("")}, nil
	}

	got := cfg.detectBaud(discardLogger(), open)
	assert.Equal(t, 38400, got)
}
