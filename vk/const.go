// Package vk defines the virtual-key code space used on the keyboard side of
// the wire protocol. Values follow the Windows virtual-key numbering so the
// receiving host can hand codes straight to native key-injection calls.
package vk

// Key is a virtual-key code.
type Key uint16

// Basic control keys
const (
	Backspace Key = 0x08
	Tab       Key = 0x09
	Clear     Key = 0x0C
	Enter     Key = 0x0D
)

// Generic modifiers and locks
const (
	Shift    Key = 0x10
	Control  Key = 0x11
	Alt      Key = 0x12
	Pause    Key = 0x13
	CapsLock Key = 0x14
)

// IME keys
const (
	Kana    Key = 0x15
	Hangeul Key = 0x15 // alias of Kana
	Hangul  Key = 0x15 // alias of Kana
	IMEOn   Key = 0x16
	Junja   Key = 0x17
	Final   Key = 0x18
	Hanja   Key = 0x19
	Kanji   Key = 0x19 // alias of Hanja
	IMEOff  Key = 0x1A

	Escape     Key = 0x1B
	Convert    Key = 0x1C
	NonConvert Key = 0x1D
	Accept     Key = 0x1E
	ModeChange Key = 0x1F
)

// Navigation and editing keys
const (
	Space    Key = 0x20
	PageUp   Key = 0x21
	PageDown Key = 0x22
	End      Key = 0x23
	Home     Key = 0x24

	ArrowLeft  Key = 0x25
	ArrowUp    Key = 0x26
	ArrowRight Key = 0x27
	ArrowDown  Key = 0x28

	Select      Key = 0x29
	Print       Key = 0x2A
	Execute     Key = 0x2B
	PrintScreen Key = 0x2C
	Insert      Key = 0x2D
	Delete      Key = 0x2E
	Help        Key = 0x2F
)

// Digits 0-9 (top row)
const (
	Num0 Key = 0x30
	Num1 Key = 0x31
	Num2 Key = 0x32
	Num3 Key = 0x33
	Num4 Key = 0x34
	Num5 Key = 0x35
	Num6 Key = 0x36
	Num7 Key = 0x37
	Num8 Key = 0x38
	Num9 Key = 0x39
)

// Letters A-Z
const (
	A Key = 0x41
	B Key = 0x42
	C Key = 0x43
	D Key = 0x44
	E Key = 0x45
	F Key = 0x46
	G Key = 0x47
	H Key = 0x48
	I Key = 0x49
	J Key = 0x4A
	K Key = 0x4B
	L Key = 0x4C
	M Key = 0x4D
	N Key = 0x4E
	O Key = 0x4F
	P Key = 0x50
	Q Key = 0x51
	R Key = 0x52
	S Key = 0x53
	T Key = 0x54
	U Key = 0x55
	V Key = 0x56
	W Key = 0x57
	X Key = 0x58
	Y Key = 0x59
	Z Key = 0x5A
)

// Windows keys
const (
	LeftWin  Key = 0x5B
	RightWin Key = 0x5C
	Apps     Key = 0x5D

	Sleep Key = 0x5F
)

// Numeric keypad
const (
	Numpad0 Key = 0x60
	Numpad1 Key = 0x61
	Numpad2 Key = 0x62
	Numpad3 Key = 0x63
	Numpad4 Key = 0x64
	Numpad5 Key = 0x65
	Numpad6 Key = 0x66
	Numpad7 Key = 0x67
	Numpad8 Key = 0x68
	Numpad9 Key = 0x69

	Multiply  Key = 0x6A
	Add       Key = 0x6B
	Separator Key = 0x6C
	Subtract  Key = 0x6D
	Decimal   Key = 0x6E
	Divide    Key = 0x6F
)

// Function keys F1-F24
const (
	F1  Key = 0x70
	F2  Key = 0x71
	F3  Key = 0x72
	F4  Key = 0x73
	F5  Key = 0x74
	F6  Key = 0x75
	F7  Key = 0x76
	F8  Key = 0x77
	F9  Key = 0x78
	F10 Key = 0x79
	F11 Key = 0x7A
	F12 Key = 0x7B
	F13 Key = 0x7C
	F14 Key = 0x7D
	F15 Key = 0x7E
	F16 Key = 0x7F
	F17 Key = 0x80
	F18 Key = 0x81
	F19 Key = 0x82
	F20 Key = 0x83
	F21 Key = 0x84
	F22 Key = 0x85
	F23 Key = 0x86
	F24 Key = 0x87
)

// Lock keys
const (
	NumLock    Key = 0x90
	ScrollLock Key = 0x91
)

// Side-specific modifiers
const (
	LeftShift    Key = 0xA0
	RightShift   Key = 0xA1
	LeftControl  Key = 0xA2
	RightControl Key = 0xA3
	LeftAlt      Key = 0xA4
	RightAlt     Key = 0xA5
)

// Browser keys
const (
	BrowserBack      Key = 0xA6
	BrowserForward   Key = 0xA7
	BrowserRefresh   Key = 0xA8
	BrowserStop      Key = 0xA9
	BrowserSearch    Key = 0xAA
	BrowserFavorites Key = 0xAB
	BrowserHome      Key = 0xAC
)

// Volume and media controls
const (
	VolumeMute Key = 0xAD
	VolumeDown Key = 0xAE
	VolumeUp   Key = 0xAF

	MediaNextTrack Key = 0xB0
	MediaPrevTrack Key = 0xB1
	MediaStop      Key = 0xB2
	MediaPlayPause Key = 0xB3

	LaunchMail        Key = 0xB4
	LaunchMediaSelect Key = 0xB5
	LaunchApp1        Key = 0xB6
	LaunchApp2        Key = 0xB7
)

// OEM keys; comments give the US-layout legends
const (
	OEM1      Key = 0xBA // ; :
	OEMPlus   Key = 0xBB // = +
	OEMComma  Key = 0xBC // , <
	OEMMinus  Key = 0xBD // - _
	OEMPeriod Key = 0xBE // . >
	OEM2      Key = 0xBF // / ?
	OEM3      Key = 0xC0 // ` ~

	OEM4 Key = 0xDB // [ {
	OEM5 Key = 0xDC // \ |
	OEM6 Key = 0xDD // ] }
	OEM7 Key = 0xDE // ' "
	OEM8 Key = 0xDF

	OEM102     Key = 0xE2 // <> or \| on RT-102 keyboards
	ProcessKey Key = 0xE5
	Packet     Key = 0xE7
)

// Remaining control keys
const (
	Attn     Key = 0xF6
	CrSel    Key = 0xF7
	ExSel    Key = 0xF8
	ErEOF    Key = 0xF9
	Play     Key = 0xFA
	Zoom     Key = 0xFB
	PA1      Key = 0xFD
	OEMClear Key = 0xFE
)
