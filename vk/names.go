package vk

import "strings"

// KeyName maps virtual-key codes to their technical names as shown in host
// logs and accepted by Lookup. Aliased codes (Kana/Hangul, Hanja/Kanji) carry
// their primary name.
var KeyName = map[Key]string{
	Backspace: "BACKSPACE",
	Tab:       "TAB",
	Clear:     "CLEAR",
	Enter:     "ENTER",

	Shift:    "SHIFT",
	Control:  "CTRL",
	Alt:      "ALT",
	Pause:    "PAUSE",
	CapsLock: "CAPS_LOCK",

	Kana:   "KANA",
	IMEOn:  "IME_ON",
	Junja:  "JUNJA",
	Final:  "FINAL",
	Hanja:  "HANJA",
	IMEOff: "IME_OFF",

	Escape:     "ESC",
	Convert:    "CONVERT",
	NonConvert: "NONCONVERT",
	Accept:     "ACCEPT",
	ModeChange: "MODECHANGE",

	Space:    "SPACE",
	PageUp:   "PAGE_UP",
	PageDown: "PAGE_DOWN",
	End:      "END",
	Home:     "HOME",

	ArrowLeft:  "LEFT_ARROW",
	ArrowUp:    "UP_ARROW",
	ArrowRight: "RIGHT_ARROW",
	ArrowDown:  "DOWN_ARROW",

	Select:      "SELECT",
	Print:       "PRINT",
	Execute:     "EXECUTE",
	PrintScreen: "PRINT_SCREEN",
	Insert:      "INSERT",
	Delete:      "DELETE",
	Help:        "HELP",

	Num0: "0", Num1: "1", Num2: "2", Num3: "3", Num4: "4",
	Num5: "5", Num6: "6", Num7: "7", Num8: "8", Num9: "9",

	A: "A", B: "B", C: "C", D: "D", E: "E", F: "F", G: "G",
	H: "H", I: "I", J: "J", K: "K", L: "L", M: "M", N: "N",
	O: "O", P: "P", Q: "Q", R: "R", S: "S", T: "T", U: "U",
	V: "V", W: "W", X: "X", Y: "Y", Z: "Z",

	LeftWin:  "LEFT_WIN",
	RightWin: "RIGHT_WIN",
	Apps:     "APPS",
	Sleep:    "SLEEP",

	Numpad0: "NUMPAD_0", Numpad1: "NUMPAD_1", Numpad2: "NUMPAD_2",
	Numpad3: "NUMPAD_3", Numpad4: "NUMPAD_4", Numpad5: "NUMPAD_5",
	Numpad6: "NUMPAD_6", Numpad7: "NUMPAD_7", Numpad8: "NUMPAD_8",
	Numpad9: "NUMPAD_9",

	Multiply:  "MULTIPLY",
	Add:       "ADD",
	Separator: "SEPARATOR",
	Subtract:  "SUBTRACT",
	Decimal:   "DECIMAL",
	Divide:    "DIVIDE",

	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	F13: "F13", F14: "F14", F15: "F15", F16: "F16", F17: "F17", F18: "F18",
	F19: "F19", F20: "F20", F21: "F21", F22: "F22", F23: "F23", F24: "F24",

	NumLock:    "NUM_LOCK",
	ScrollLock: "SCROLL_LOCK",

	LeftShift:    "LEFT_SHIFT",
	RightShift:   "RIGHT_SHIFT",
	LeftControl:  "LEFT_CTRL",
	RightControl: "RIGHT_CTRL",
	LeftAlt:      "LEFT_ALT",
	RightAlt:     "RIGHT_ALT",

	BrowserBack:      "BROWSER_BACK",
	BrowserForward:   "BROWSER_FORWARD",
	BrowserRefresh:   "BROWSER_REFRESH",
	BrowserStop:      "BROWSER_STOP",
	BrowserSearch:    "BROWSER_SEARCH",
	BrowserFavorites: "BROWSER_FAVORITES",
	BrowserHome:      "BROWSER_HOME",

	VolumeMute: "VOLUME_MUTE",
	VolumeDown: "VOLUME_DOWN",
	VolumeUp:   "VOLUME_UP",

	MediaNextTrack: "MEDIA_NEXT_TRACK",
	MediaPrevTrack: "MEDIA_PREV_TRACK",
	MediaStop:      "MEDIA_STOP",
	MediaPlayPause: "MEDIA_PLAY_PAUSE",

	LaunchMail:        "LAUNCH_MAIL",
	LaunchMediaSelect: "LAUNCH_MEDIA_SELECT",
	LaunchApp1:        "LAUNCH_APP1",
	LaunchApp2:        "LAUNCH_APP2",

	OEM1:      "OEM_1",
	OEMPlus:   "OEM_PLUS",
	OEMComma:  "OEM_COMMA",
	OEMMinus:  "OEM_MINUS",
	OEMPeriod: "OEM_PERIOD",
	OEM2:      "OEM_2",
	OEM3:      "OEM_3",
	OEM4:      "OEM_4",
	OEM5:      "OEM_5",
	OEM6:      "OEM_6",
	OEM7:      "OEM_7",
	OEM8:      "OEM_8",

	OEM102:     "OEM_102",
	ProcessKey: "PROCESS_KEY",
	Packet:     "PACKET",

	Attn:     "ATTN",
	CrSel:    "CRSEL",
	ExSel:    "EXSEL",
	ErEOF:    "EREOF",
	Play:     "PLAY",
	Zoom:     "ZOOM",
	PA1:      "PA1",
	OEMClear: "OEM_CLEAR",
}

var nameToKey = func() map[string]Key {
	m := make(map[string]Key, len(KeyName))
	for k, name := range KeyName {
		m[name] = k
	}
	// Accepted spellings beyond the canonical names.
	m["ESCAPE"] = Escape
	m["RETURN"] = Enter
	m["CONTROL"] = Control
	m["LEFT_CONTROL"] = LeftControl
	m["RIGHT_CONTROL"] = RightControl
	m["HANGEUL"] = Kana
	m["HANGUL"] = Kana
	m["KANJI"] = Hanja
	return m
}()

// Name returns the technical name for a key, or an empty string for codes
// outside the defined enumeration.
func (k Key) Name() string {
	return KeyName[k]
}

// Lookup resolves a technical key name (case-insensitive, '-' and ' '
// accepted in place of '_') to its virtual-key code.
func Lookup(name string) (Key, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "_", " ", "_").Replace(n)
	k, ok := nameToKey[n]
	return k, ok
}
