// pitch_test.go - Note to frequency tests

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package fmsynth

import (
	"math"
	"testing"
)

func TestNoteToFrequency_ReferencePitches(t *testing.T) {
	tests := []struct {
		note uint8
		want float32
		name string
	}{
		{21, 27.5, "A0"},
		{33, 55, "A1"},
		{57, 220, "A3"},
		{60, 261.6256, "C4"},
		{69, 440, "A4"},
		{81, 880, "A5"},
		{108, 4186.009, "C8"},
	}
	for _, tt := range tests {
		got := NoteToFrequency(tt.note)
		if math.Abs(float64(got-tt.want)) > 1e-3*math.Max(1, float64(tt.want)/1000) {
			t.Errorf("%s: NoteToFrequency(%d) = %f, want %f", tt.name, tt.note, got, tt.want)
		}
	}
}

func TestNoteToFrequency_MonotonicOverFullDomain(t *testing.T) {
	prev := NoteToFrequency(0)
	if prev <= 0 {
		t.Fatalf("NoteToFrequency(0) = %f, want > 0", prev)
	}
	for n := 1; n <= 255; n++ {
		f := NoteToFrequency(uint8(n))
		if f < prev {
			t.Fatalf("NoteToFrequency(%d) = %f < NoteToFrequency(%d) = %f", n, f, n-1, prev)
		}
		if math.IsInf(float64(f), 0) || math.IsNaN(float64(f)) {
			t.Fatalf("NoteToFrequency(%d) = %f is not finite", n, f)
		}
		prev = f
	}
}

func TestNoteToFrequency_OctaveDoubles(t *testing.T) {
	for n := 0; n+12 <= 255; n++ {
		lo := float64(NoteToFrequency(uint8(n)))
		hi := float64(NoteToFrequency(uint8(n + 12)))
		if math.Abs(hi/lo-2) > 1e-5 {
			t.Fatalf("note %d -> %d ratio %f, want 2", n, n+12, hi/lo)
		}
	}
}
