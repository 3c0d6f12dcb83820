// keyboard_test.go - Keyboard piano mapping tests

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package fmsynth

import "testing"

func TestKeyToNote(t *testing.T) {
	tests := []struct {
		key  rune
		want uint8
		ok   bool
	}{
		{'z', 51, true},
		{'s', 52, true},
		{'m', 62, true},
		{'q', 63, true},
		{'2', 64, true},
		{'u', 74, true},
		{'a', 0, false},
		{'Z', 0, false},
		{' ', 0, false},
	}
	for _, tt := range tests {
		got, ok := KeyToNote(tt.key, DEFAULT_NOTE)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KeyToNote(%q) = %d, %v; want %d, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyToNote_RowsAreChromatic(t *testing.T) {
	prev := uint8(DEFAULT_NOTE)
	for _, k := range lowerKeyRow + upperKeyRow {
		n, ok := KeyToNote(k, DEFAULT_NOTE)
		if !ok || n != prev+1 {
			t.Fatalf("key %q = %d, want %d", k, n, prev+1)
		}
		prev = n
	}
}

func TestKeyToNote_TopOfRange(t *testing.T) {
	if _, ok := KeyToNote('u', 240); ok {
		t.Fatal("note above 255 accepted")
	}
	if n, ok := KeyToNote('z', 254); !ok || n != 255 {
		t.Fatalf("got %d, %v", n, ok)
	}
}
