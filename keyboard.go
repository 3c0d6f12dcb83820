// keyboard.go - Two-row computer keyboard piano mapping

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package fmsynth

import "strings"

const (
	lowerKeyRow = "zsxdcvgbhnjm"
	upperKeyRow = "q2w3er5t6y7u"
)

// KeyToNote maps a key to a note number relative to base. The bottom row
// (z s x d c v g b h n j m) plays base+1 .. base+12 and the top row
// (q 2 w 3 e r 5 t 6 y 7 u) the same an octave higher. Notes past 255 and
// other keys report false.
func KeyToNote(key rune, base uint8) (uint8, bool) {
	delta := strings.IndexRune(lowerKeyRow, key) + 1
	if delta == 0 {
		delta = strings.IndexRune(upperKeyRow, key) + 1
		if delta == 0 {
			return 0, false
		}
		delta += 12
	}
	note := int(base) + delta
	if note > 255 {
		return 0, false
	}
	return uint8(note), true
}
