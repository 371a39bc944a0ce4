// Package protocol implements the line-based text protocol spoken over the
// serial link. Each input event is one newline-terminated line of
// space-separated decimal fields:
//
//	DEVICE EVENT [PARAM1 [PARAM2]]
//
// DEVICE selects the target device (0=mouse, 1=keyboard), EVENT is a
// device-specific event code and the parameters carry coordinates, scroll
// deltas or virtual-key codes. Parameters equal to zero are omitted from the
// tail of the line: PARAM1 is written when either parameter is non-zero,
// PARAM2 only when it is itself non-zero.
package protocol

import (
	"strconv"
)

// Device identifies the input device a command is addressed to.
type Device uint8

const (
	DeviceMouse    Device = 0
	DeviceKeyboard Device = 1
)

// String returns the lower-case device name for logging.
func (d Device) String() string {
	switch d {
	case DeviceMouse:
		return "mouse"
	case DeviceKeyboard:
		return "keyboard"
	default:
		return "device(" + strconv.Itoa(int(d)) + ")"
	}
}

// MouseEvent codes, valid when Device is DeviceMouse.
type MouseEvent uint8

const (
	MouseRightPress    MouseEvent = 0
	MouseRightRelease  MouseEvent = 1
	MouseLeftPress     MouseEvent = 2
	MouseLeftRelease   MouseEvent = 3
	MouseMiddlePress   MouseEvent = 4
	MouseMiddleRelease MouseEvent = 5
	MouseScroll        MouseEvent = 6
	MousePosition      MouseEvent = 7
	MouseMove          MouseEvent = 8
)

var mouseEventNames = map[MouseEvent]string{
	MouseRightPress:    "right-press",
	MouseRightRelease:  "right-release",
	MouseLeftPress:     "left-press",
	MouseLeftRelease:   "left-release",
	MouseMiddlePress:   "middle-press",
	MouseMiddleRelease: "middle-release",
	MouseScroll:        "scroll",
	MousePosition:      "position",
	MouseMove:          "move",
}

func (e MouseEvent) String() string {
	if s, ok := mouseEventNames[e]; ok {
		return s
	}
	return "mouse-event(" + strconv.Itoa(int(e)) + ")"
}

// KeyEvent codes, valid when Device is DeviceKeyboard.
type KeyEvent uint8

const (
	KeyRelease KeyEvent = 0
	KeyPress   KeyEvent = 1
)

func (e KeyEvent) String() string {
	switch e {
	case KeyRelease:
		return "release"
	case KeyPress:
		return "press"
	default:
		return "key-event(" + strconv.Itoa(int(e)) + ")"
	}
}

// Command is one protocol line in decoded form. It is an ephemeral value:
// built, serialized and written in a single call.
type Command struct {
	Device Device
	Event  uint8
	Param1 int
	Param2 int
}

// Mouse builds a mouse command.
func Mouse(event MouseEvent, param1, param2 int) Command {
	return Command{Device: DeviceMouse, Event: uint8(event), Param1: param1, Param2: param2}
}

// Keyboard builds a keyboard command.
func Keyboard(event KeyEvent, keyCode uint16) Command {
	return Command{Device: DeviceKeyboard, Event: uint8(event), Param1: int(keyCode)}
}

// AppendTo appends the serialized line, including the trailing newline, to b.
func (c Command) AppendTo(b []byte) []byte {
	b = strconv.AppendUint(b, uint64(c.Device), 10)
	b = append(b, ' ')
	b = strconv.AppendUint(b, uint64(c.Event), 10)
	if c.Param1 != 0 || c.Param2 != 0 {
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(c.Param1), 10)
		if c.Param2 != 0 {
			b = append(b, ' ')
			b = strconv.AppendInt(b, int64(c.Param2), 10)
		}
	}
	return append(b, '\n')
}

// Encode returns the serialized line without the trailing newline.
func (c Command) Encode() string {
	b := c.AppendTo(nil)
	return string(b[:len(b)-1])
}

// String describes the command for logging, e.g. "mouse position x=100 y=-50".
func (c Command) String() string {
	switch c.Device {
	case DeviceMouse:
		ev := MouseEvent(c.Event)
		switch ev {
		case MousePosition, MouseMove:
			return "mouse " + ev.String() +
				" x=" + strconv.Itoa(c.Param1) + " y=" + strconv.Itoa(c.Param2)
		case MouseScroll:
			return "mouse scroll amount=" + strconv.Itoa(c.Param1)
		default:
			return "mouse " + ev.String()
		}
	case DeviceKeyboard:
		return "keyboard " + KeyEvent(c.Event).String() +
			" code=" + strconv.Itoa(c.Param1)
	default:
		return c.Device.String() + " event=" + strconv.Itoa(int(c.Event))
	}
}
