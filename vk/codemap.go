package vk

// CharToKey maps ASCII characters to the virtual-key code of the physical
// key that produces them on a US layout. Shifted characters (uppercase
// letters, symbols) map to their unshifted key; pair with NeedsShift.
var CharToKey = map[byte]Key{
	// Lowercase letters
	'a': A, 'b': B, 'c': C, 'd': D, 'e': E, 'f': F, 'g': G,
	'h': H, 'i': I, 'j': J, 'k': K, 'l': L, 'm': M, 'n': N,
	'o': O, 'p': P, 'q': Q, 'r': R, 's': S, 't': T, 'u': U,
	'v': V, 'w': W, 'x': X, 'y': Y, 'z': Z,

	// Uppercase letters (same keys, need shift)
	'A': A, 'B': B, 'C': C, 'D': D, 'E': E, 'F': F, 'G': G,
	'H': H, 'I': I, 'J': J, 'K': K, 'L': L, 'M': M, 'N': N,
	'O': O, 'P': P, 'Q': Q, 'R': R, 'S': S, 'T': T, 'U': U,
	'V': V, 'W': W, 'X': X, 'Y': Y, 'Z': Z,

	// Digits (top row)
	'0': Num0, '1': Num1, '2': Num2, '3': Num3, '4': Num4,
	'5': Num5, '6': Num6, '7': Num7, '8': Num8, '9': Num9,

	// Shifted number row symbols
	'!': Num1, '@': Num2, '#': Num3, '$': Num4, '%': Num5,
	'^': Num6, '&': Num7, '*': Num8, '(': Num9, ')': Num0,

	// Unshifted punctuation
	',':  OEMComma,
	'.':  OEMPeriod,
	'/':  OEM2,
	';':  OEM1,
	'\'': OEM7,
	'[':  OEM4,
	']':  OEM6,
	'\\': OEM5,
	'`':  OEM3,
	'-':  OEMMinus,
	'=':  OEMPlus,

	// Shifted punctuation
	'_': OEMMinus,
	'+': OEMPlus,
	'{': OEM4,
	'}': OEM6,
	'|': OEM5,
	':': OEM1,
	'"': OEM7,
	'<': OEMComma,
	'>': OEMPeriod,
	'?': OEM2,
	'~': OEM3,

	// Whitespace and control
	' ':  Space,
	'\t': Tab,
	'\r': Enter,
	'\n': Enter,
	'\b': Backspace,
}

// ShiftChars lists the characters that require the Shift modifier.
var ShiftChars = map[byte]bool{
	// Uppercase letters
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,

	// Shifted number row
	'!': true, '@': true, '#': true, '$': true, '%': true,
	'^': true, '&': true, '*': true, '(': true, ')': true,

	// Shifted punctuation
	'_': true, '+': true, '{': true, '}': true, '|': true,
	':': true, '"': true, '<': true, '>': true, '?': true,
	'~': true,
}

// FromChar converts an ASCII character to its virtual-key code. The mapping
// is total: characters with no defined key fall back to Space.
func FromChar(c byte) Key {
	if k, ok := CharToKey[c]; ok {
		return k
	}
	return Space
}

// NeedsShift reports whether typing the character requires holding Shift.
func NeedsShift(c byte) bool {
	return ShiftChars[c]
}
