package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// IsComment reports whether a line is a passthrough comment. Firmware builds
// prefix free-form diagnostics with '#'; they carry no event and are shown
// verbatim by the host.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// CommentText strips the comment marker and surrounding whitespace.
func CommentText(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "#"))
}

// ParseLine decodes one protocol line into a Command. Leading and trailing
// whitespace is ignored. Comment lines and free-form text are rejected with
// an error; use IsComment to filter comments first.
func ParseLine(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Command{}, fmt.Errorf("protocol: short line %q", line)
	}
	if len(fields) > 4 {
		return Command{}, fmt.Errorf("protocol: too many fields in %q", line)
	}

	device, err := strconv.ParseUint(fields[0], 10, 8)
	if err != nil {
		return Command{}, fmt.Errorf("protocol: bad device in %q: %w", line, err)
	}
	if Device(device) != DeviceMouse && Device(device) != DeviceKeyboard {
		return Command{}, fmt.Errorf("protocol: unknown device %d in %q", device, line)
	}

	event, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil {
		return Command{}, fmt.Errorf("protocol: bad event in %q: %w", line, err)
	}

	cmd := Command{Device: Device(device), Event: uint8(event)}
	if len(fields) >= 3 {
		cmd.Param1, err = strconv.Atoi(fields[2])
		if err != nil {
			return Command{}, fmt.Errorf("protocol: bad param1 in %q: %w", line, err)
		}
	}
	if len(fields) == 4 {
		cmd.Param2, err = strconv.Atoi(fields[3])
		if err != nil {
			return Command{}, fmt.Errorf("protocol: bad param2 in %q: %w", line, err)
		}
	}
	return cmd, nil
}

// Valid reports whether a line looks like protocol traffic. It is more
// lenient than ParseLine and mirrors the heuristic the host uses while
// probing baud rates: a device/event pair with a small event code, or a
// single bare integer (a partially received line), counts as valid.
func Valid(line string) bool {
	fields := strings.Fields(line)

	if len(fields) >= 2 {
		device, err1 := strconv.Atoi(fields[0])
		event, err2 := strconv.Atoi(fields[1])
		if err1 == nil && err2 == nil &&
			(device == 0 || device == 1) && event >= 0 && event <= 20 {
			return true
		}
	}

	if len(fields) == 1 {
		if v, err := strconv.Atoi(fields[0]); err == nil && v >= 0 && v <= 65535 {
			return true
		}
	}

	return false
}
