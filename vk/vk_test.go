package vk_test

import (
	"testing"

	"github.com/lklein/serimon/vk"

	"github.com/stretchr/testify/assert"
)

func TestLettersMapCaseInsensitive(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		upper := c - 'a' + 'A'
		assert.Equal(t, vk.FromChar(c), vk.FromChar(upper), "char %c", c)
		assert.Equal(t, vk.Key(0x41+uint16(c-'a')), vk.FromChar(c), "char %c", c)

		assert.False(t, vk.NeedsShift(c), "char %c", c)
		assert.True(t, vk.NeedsShift(upper), "char %c", upper)
	}
}

func TestDigitsMapWithoutShift(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		assert.Equal(t, vk.Key(0x30+uint16(c-'0')), vk.FromChar(c), "char %c", c)
		assert.False(t, vk.NeedsShift(c), "char %c", c)
	}
}

func TestShiftedSymbolsMapToUnshiftedKeys(t *testing.T) {
	type testCase struct {
		char byte
		key  vk.Key
	}

	cases := []testCase{
		{'!', vk.Num1},
		{'@', vk.Num2},
		{'#', vk.Num3},
		{'$', vk.Num4},
		{'%', vk.Num5},
		{'^', vk.Num6},
		{'&', vk.Num7},
		{'*', vk.Num8},
		{'(', vk.Num9},
		{')', vk.Num0},
		{'_', vk.OEMMinus},
		{'+', vk.OEMPlus},
		{'{', vk.OEM4},
		{'}', vk.OEM6},
		{'|', vk.OEM5},
		{':', vk.OEM1},
		{'"', vk.OEM7},
		{'<', vk.OEMComma},
		{'>', vk.OEMPeriod},
		{'?', vk.OEM2},
		{'~', vk.OEM3},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.key, vk.FromChar(tc.char), "char %c", tc.char)
		assert.True(t, vk.NeedsShift(tc.char), "char %c", tc.char)
	}
}

func TestUnshiftedPunctuation(t *testing.T) {
	type testCase struct {
		char byte
		key  vk.Key
	}

	cases := []testCase{
		{',', vk.OEMComma},
		{'.', vk.OEMPeriod},
		{'/', vk.OEM2},
		{';', vk.OEM1},
		{'\'', vk.OEM7},
		{'[', vk.OEM4},
		{']', vk.OEM6},
		{'\\', vk.OEM5},
		{'`', vk.OEM3},
		{'-', vk.OEMMinus},
		{'=', vk.OEMPlus},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.key, vk.FromChar(tc.char), "char %c", tc.char)
		assert.False(t, vk.NeedsShift(tc.char), "char %c", tc.char)
	}
}

func TestWhitespaceAndControl(t *testing.T) {
	assert.Equal(t, vk.Space, vk.FromChar(' '))
	assert.Equal(t, vk.Tab, vk.FromChar('\t'))
	assert.Equal(t, vk.Enter, vk.FromChar('\n'))
	assert.Equal(t, vk.Enter, vk.FromChar('\r'))
	assert.Equal(t, vk.Backspace, vk.FromChar('\b'))
}

func TestFromCharIsTotal(t *testing.T) {
	// Every 8-bit value maps to some key; unmapped ones fall back to Space.
	for c := 0; c < 256; c++ {
		key := vk.FromChar(byte(c))
		assert.NotZero(t, key, "char %d", c)
	}
	assert.Equal(t, vk.Space, vk.FromChar(0x07))
	assert.Equal(t, vk.Space, vk.FromChar(0xC8))
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "ENTER", vk.Enter.Name())
	assert.Equal(t, "LEFT_SHIFT", vk.LeftShift.Name())
	assert.Equal(t, "F12", vk.F12.Name())
	assert.Equal(t, "", vk.Key(0x9F).Name())
}

func TestLookup(t *testing.T) {
	type testCase struct {
		name     string
		expected vk.Key
	}

	cases := []testCase{
		{"ENTER", vk.Enter},
		{"enter", vk.Enter},
		{"Escape", vk.Escape},
		{"esc", vk.Escape},
		{"left-ctrl", vk.LeftControl},
		{"page up", vk.PageUp},
		{"F4", vk.F4},
		{"hangul", vk.Kana},
	}

	for _, tc := range cases {
		key, ok := vk.Lookup(tc.name)
		assert.True(t, ok, "name %q", tc.name)
		assert.Equal(t, tc.expected, key, "name %q", tc.name)
	}

	_, ok := vk.Lookup("NOT_A_KEY")
	assert.False(t, ok)
}
