// Package monitor implements the command encoder that drives a remote host
// through the serial line protocol. A Monitor turns high-level actions (type
// text, click, scroll) into protocol commands, writes them to the outbound
// transport and blocks for the fixed inter-event delays the receiving side
// expects.
//
// A Monitor is synchronous and not safe for concurrent use: each operation,
// including all internal delays, runs to completion on the calling goroutine.
package monitor

import (
	"io"
	"log/slog"
	"time"

	"github.com/lklein/serimon/protocol"
	"github.com/lklein/serimon/vk"
)

// Fixed inter-event delays. The receiving host assumes a short settle time
// between dependent events; these are not configurable.
const (
	// comboGap separates a modifier from its key and consecutive characters
	// in a sequence.
	comboGap = 10 * time.Millisecond
	// tapHold is how long a tapped key or clicked button stays down.
	tapHold = 50 * time.Millisecond
	// doubleClickGap separates the two clicks of a double-click.
	doubleClickGap = 100 * time.Millisecond
)

// Monitor encodes input events onto an outbound transport. It tracks mouse
// button latch state so that redundant press/release calls emit nothing.
type Monitor struct {
	w      io.Writer
	logger *slog.Logger
	sleep  func(time.Duration)

	leftPressed   bool
	rightPressed  bool
	middlePressed bool
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithLogger attaches a logger; every transmitted command is logged at debug
// level.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Monitor) { m.logger = logger }
}

// WithSleep replaces the blocking delay between dependent events. Passing nil
// disables delays entirely. Used by tests and by callers that schedule their
// own pacing.
func WithSleep(sleep func(time.Duration)) Option {
	return func(m *Monitor) {
		if sleep == nil {
			sleep = func(time.Duration) {}
		}
		m.sleep = sleep
	}
}

// New returns a Monitor writing protocol lines to w. All mouse buttons start
// released.
func New(w io.Writer, opts ...Option) *Monitor {
	m := &Monitor{
		w:     w,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Monitor) send(cmd protocol.Command) error {
	if m.logger != nil {
		m.logger.Debug("send", "cmd", cmd.String(), "line", cmd.Encode())
	}
	_, err := m.w.Write(cmd.AppendTo(nil))
	return err
}

// SetMousePosition moves the cursor to absolute screen coordinates.
func (m *Monitor) SetMousePosition(x, y int) error {
	return m.send(protocol.Mouse(protocol.MousePosition, x, y))
}

// MoveMouseRelative moves the cursor relative to its current position.
func (m *Monitor) MoveMouseRelative(dx, dy int) error {
	return m.send(protocol.Mouse(protocol.MouseMove, dx, dy))
}

// PressLeftButton presses the left mouse button. If the button is already
// latched down, nothing is emitted.
func (m *Monitor) PressLeftButton() error {
	if m.leftPressed {
		return nil
	}
	if err := m.send(protocol.Mouse(protocol.MouseLeftPress, 0, 0)); err != nil {
		return err
	}
	m.leftPressed = true
	return nil
}

// ReleaseLeftButton releases the left mouse button if it is latched down.
func (m *Monitor) ReleaseLeftButton() error {
	if !m.leftPressed {
		return nil
	}
	if err := m.send(protocol.Mouse(protocol.MouseLeftRelease, 0, 0)); err != nil {
		return err
	}
	m.leftPressed = false
	return nil
}

// PressRightButton presses the right mouse button on a released-to-pressed
// edge.
func (m *Monitor) PressRightButton() error {
	if m.rightPressed {
		return nil
	}
	if err := m.send(protocol.Mouse(protocol.MouseRightPress, 0, 0)); err != nil {
		return err
	}
	m.rightPressed = true
	return nil
}

// ReleaseRightButton releases the right mouse button if it is latched down.
func (m *Monitor) ReleaseRightButton() error {
	if !m.rightPressed {
		return nil
	}
	if err := m.send(protocol.Mouse(protocol.MouseRightRelease, 0, 0)); err != nil {
		return err
	}
	m.rightPressed = false
	return nil
}

// PressMiddleButton presses the middle mouse button on a released-to-pressed
// edge.
func (m *Monitor) PressMiddleButton() error {
	if m.middlePressed {
		return nil
	}
	if err := m.send(protocol.Mouse(protocol.MouseMiddlePress, 0, 0)); err != nil {
		return err
	}
	m.middlePressed = true
	return nil
}

// ReleaseMiddleButton releases the middle mouse button if it is latched down.
func (m *Monitor) ReleaseMiddleButton() error {
	if !m.middlePressed {
		return nil
	}
	if err := m.send(protocol.Mouse(protocol.MouseMiddleRelease, 0, 0)); err != nil {
		return err
	}
	m.middlePressed = false
	return nil
}

// ClickLeft performs a left click: press, hold, release.
func (m *Monitor) ClickLeft() error {
	if err := m.PressLeftButton(); err != nil {
		return err
	}
	m.sleep(tapHold)
	return m.ReleaseLeftButton()
}

// ClickRight performs a right click: press, hold, release.
func (m *Monitor) ClickRight() error {
	if err := m.PressRightButton(); err != nil {
		return err
	}
	m.sleep(tapHold)
	return m.ReleaseRightButton()
}

// DoubleClickLeft performs two left clicks separated by the double-click gap.
func (m *Monitor) DoubleClickLeft() error {
	if err := m.ClickLeft(); err != nil {
		return err
	}
	m.sleep(doubleClickGap)
	return m.ClickLeft()
}

// ScrollMouse scrolls the wheel. Positive amounts scroll up, negative down.
func (m *Monitor) ScrollMouse(amount int) error {
	return m.send(protocol.Mouse(protocol.MouseScroll, amount, 0))
}

// IsLeftButtonPressed reports the left button latch state.
func (m *Monitor) IsLeftButtonPressed() bool { return m.leftPressed }

// IsRightButtonPressed reports the right button latch state.
func (m *Monitor) IsRightButtonPressed() bool { return m.rightPressed }

// IsMiddleButtonPressed reports the middle button latch state.
func (m *Monitor) IsMiddleButtonPressed() bool { return m.middlePressed }

// PressKey presses a key by virtual-key code.
func (m *Monitor) PressKey(key vk.Key) error {
	return m.send(protocol.Keyboard(protocol.KeyPress, uint16(key)))
}

// ReleaseKey releases a key by virtual-key code.
func (m *Monitor) ReleaseKey(key vk.Key) error {
	return m.send(protocol.Keyboard(protocol.KeyRelease, uint16(key)))
}

// TapKey presses and releases a key with the standard hold time.
func (m *Monitor) TapKey(key vk.Key) error {
	if err := m.PressKey(key); err != nil {
		return err
	}
	m.sleep(tapHold)
	return m.ReleaseKey(key)
}

// PressChar presses the key producing an ASCII character. When the character
// needs Shift, Left Shift is pressed first with a short gap before the key.
func (m *Monitor) PressChar(c byte) error {
	key := vk.FromChar(c)
	if vk.NeedsShift(c) {
		if err := m.PressKey(vk.LeftShift); err != nil {
			return err
		}
		m.sleep(comboGap)
	}
	return m.PressKey(key)
}

// ReleaseChar releases the key producing an ASCII character, mirroring
// PressChar: the key is released first, then Shift when it was required.
// The shift requirement is recomputed from c, so press and release must be
// given the same character or the Shift bracketing comes out unbalanced.
func (m *Monitor) ReleaseChar(c byte) error {
	key := vk.FromChar(c)
	if vk.NeedsShift(c) {
		if err := m.ReleaseKey(key); err != nil {
			return err
		}
		m.sleep(comboGap)
		return m.ReleaseKey(vk.LeftShift)
	}
	return m.ReleaseKey(key)
}

// TypeCharacter types one ASCII character: press, hold, release.
func (m *Monitor) TypeCharacter(c byte) error {
	if err := m.PressChar(c); err != nil {
		return err
	}
	m.sleep(tapHold)
	return m.ReleaseChar(c)
}

// sendKeySequence types text character by character with a short gap after
// each one, optionally tapping Enter at the end. Empty text is a no-op.
func (m *Monitor) sendKeySequence(newline bool, text string) error {
	for i := 0; i < len(text); i++ {
		if err := m.TypeCharacter(text[i]); err != nil {
			return err
		}
		m.sleep(comboGap)
	}
	if newline {
		return m.TapKey(vk.Enter)
	}
	return nil
}

// TypeText types the text without a trailing line break.
func (m *Monitor) TypeText(text string) error {
	return m.sendKeySequence(false, text)
}

// TypeTextLine types the text followed by an Enter tap.
func (m *Monitor) TypeTextLine(text string) error {
	return m.sendKeySequence(true, text)
}

// combo holds a modifier while tapping a key: modifier down, gap, tap, gap,
// modifier up.
func (m *Monitor) combo(modifier, key vk.Key) error {
	if err := m.PressKey(modifier); err != nil {
		return err
	}
	m.sleep(comboGap)
	if err := m.TapKey(key); err != nil {
		return err
	}
	m.sleep(comboGap)
	return m.ReleaseKey(modifier)
}

// Copy sends Ctrl+C.
func (m *Monitor) Copy() error { return m.combo(vk.LeftControl, vk.C) }

// Paste sends Ctrl+V.
func (m *Monitor) Paste() error { return m.combo(vk.LeftControl, vk.V) }

// Cut sends Ctrl+X.
func (m *Monitor) Cut() error { return m.combo(vk.LeftControl, vk.X) }

// Undo sends Ctrl+Z.
func (m *Monitor) Undo() error { return m.combo(vk.LeftControl, vk.Z) }

// Redo sends Ctrl+Y.
func (m *Monitor) Redo() error { return m.combo(vk.LeftControl, vk.Y) }

// SelectAll sends Ctrl+A.
func (m *Monitor) SelectAll() error { return m.combo(vk.LeftControl, vk.A) }

// AltTab sends Alt+Tab.
func (m *Monitor) AltTab() error { return m.combo(vk.LeftAlt, vk.Tab) }

// AltF4 sends Alt+F4.
func (m *Monitor) AltF4() error { return m.combo(vk.LeftAlt, vk.F4) }
