package protocol_test

import (
	"testing"

	"github.com/lklein/serimon/protocol"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	type testCase struct {
		name     string
		cmd      protocol.Command
		expected string
	}

	cases := []testCase{
		{
			name:     "no params",
			cmd:      protocol.Mouse(protocol.MouseLeftPress, 0, 0),
			expected: "0 2",
		},
		{
			name:     "both params",
			cmd:      protocol.Mouse(protocol.MousePosition, 100, -50),
			expected: "0 7 100 -50",
		},
		{
			name:     "negative first param only",
			cmd:      protocol.Mouse(protocol.MouseScroll, -3, 0),
			expected: "0 6 -3",
		},
		{
			name:     "zero scroll omits the amount",
			cmd:      protocol.Mouse(protocol.MouseScroll, 0, 0),
			expected: "0 6",
		},
		{
			// Param1 is written whenever either parameter is non-zero, so a
			// zero X coordinate survives alongside a non-zero Y.
			name:     "zero first param with non-zero second",
			cmd:      protocol.Mouse(protocol.MousePosition, 0, -50),
			expected: "0 7 0 -50",
		},
		{
			name:     "keyboard press",
			cmd:      protocol.Keyboard(protocol.KeyPress, 0x48),
			expected: "1 1 72",
		},
		{
			name:     "keyboard release",
			cmd:      protocol.Keyboard(protocol.KeyRelease, 0xA0),
			expected: "1 0 160",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cmd.Encode())
			assert.Equal(t, tc.expected+"\n", string(tc.cmd.AppendTo(nil)))
		})
	}
}

func TestParseLine(t *testing.T) {
	type testCase struct {
		name     string
		line     string
		expected protocol.Command
	}

	cases := []testCase{
		{
			name:     "mouse position",
			line:     "0 7 100 -50",
			expected: protocol.Command{Device: protocol.DeviceMouse, Event: 7, Param1: 100, Param2: -50},
		},
		{
			name:     "keyboard press",
			line:     "1 1 72",
			expected: protocol.Command{Device: protocol.DeviceKeyboard, Event: 1, Param1: 72},
		},
		{
			name:     "bare press without params",
			line:     "0 2",
			expected: protocol.Command{Device: protocol.DeviceMouse, Event: 2},
		},
		{
			name:     "surrounding whitespace",
			line:     "  1 0 160 \r",
			expected: protocol.Command{Device: protocol.DeviceKeyboard, Event: 0, Param1: 160},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := protocol.ParseLine(tc.line)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, cmd)
		})
	}
}

func TestParseLineErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"1",
		"garbage",
		"2 1 72",       // unknown device
		"1 one",        // non-numeric event
		"1 1 x",        // bad param
		"0 7 1 2 3",    // too many fields
		"# comment",    // comments are not commands
	} {
		_, err := protocol.ParseLine(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	cmds := []protocol.Command{
		protocol.Mouse(protocol.MouseMove, -5, 12),
		protocol.Mouse(protocol.MouseMiddlePress, 0, 0),
		protocol.Keyboard(protocol.KeyPress, 0x73),
	}
	for _, cmd := range cmds {
		parsed, err := protocol.ParseLine(cmd.Encode())
		assert.NoError(t, err)
		assert.Equal(t, cmd, parsed)
	}
}

func TestComments(t *testing.T) {
	assert.True(t, protocol.IsComment("# booted"))
	assert.True(t, protocol.IsComment("  # indented"))
	assert.False(t, protocol.IsComment("1 1 72"))
	assert.Equal(t, "booted", protocol.CommentText("# booted"))
}

func TestValid(t *testing.T) {
	valid := []string{
		"0 2",
		"1 1 72",
		"0 7 100 -50",
		"42", // bare integer, likely a partially received line
	}
	for _, line := range valid {
		assert.True(t, protocol.Valid(line), "line %q", line)
	}

	invalid := []string{
		"",
		"hello world",
		"9 1",    // unknown device
		"0 99",   // event code out of range
		"70000",  // bare integer too large
	}
	for _, line := range invalid {
		assert.False(t, protocol.Valid(line), "line %q", line)
	}
}
