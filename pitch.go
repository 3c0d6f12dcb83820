// pitch.go - Note number to frequency mapping

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package fmsynth

import "math"

// NoteToFrequency maps an equal-tempered note number to Hz, anchored at
// A0 (note 21) = 27.5 Hz, so note 69 is A4 = 440 Hz. Every uint8 is accepted.
func NoteToFrequency(note uint8) float32 {
	return float32(REF_NOTE_FREQ * math.Pow(2, (float64(note)-REF_NOTE)/12))
}
