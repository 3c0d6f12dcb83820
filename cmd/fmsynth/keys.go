// keys.go - Raw terminal input decoding

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package main

type keyKind int

const (
	keyChar keyKind = iota
	keyEsc
	keyUp
	keyDown
	keyLeft
	keyRight
)

const (
	asciiEsc      = 0x1B
	maxPendingSeq = 16 // Longest escape sequence kept across reads
	csiFinalLow   = 0x40
	csiFinalHigh  = 0x7E
	csiIntroducer = '['
	ss3Introducer = 'O'

	keyReadBatch  = 64 // Bytes per read; pasted text and key repeat arrive together
	keyPollMillis = 50
)

type keyEvent struct {
	kind keyKind
	ch   byte // keyChar only
}

// keyDecoder turns raw terminal bytes into key events. CSI (ESC [) and
// SS3 (ESC O) sequences become arrow events or are dropped, so their bytes
// never reach the note and control keys. An ESC that ends a read with
// nothing after it is the Escape key; an ESC in front of any other byte
// is an Alt prefix and is discarded.
type keyDecoder struct {
	pending []byte
}

func (d *keyDecoder) feed(p []byte) []keyEvent {
	buf := append(d.pending, p...)
	d.pending = nil

	var events []keyEvent
	for i := 0; i < len(buf); {
		b := buf[i]
		if b != asciiEsc {
			events = append(events, keyEvent{kind: keyChar, ch: b})
			i++
			continue
		}
		if i+1 == len(buf) || buf[i+1] == asciiEsc {
			events = append(events, keyEvent{kind: keyEsc})
			i++
			continue
		}
		if intro := buf[i+1]; intro != csiIntroducer && intro != ss3Introducer {
			i++
			continue
		}

		end := -1
		for j := i + 2; j < len(buf); j++ {
			if buf[j] >= csiFinalLow && buf[j] <= csiFinalHigh {
				end = j
				break
			}
		}
		if end < 0 {
			// Sequence split across reads
			if len(buf)-i <= maxPendingSeq {
				d.pending = append([]byte(nil), buf[i:]...)
			}
			break
		}
		switch buf[end] {
		case 'A':
			events = append(events, keyEvent{kind: keyUp})
		case 'B':
			events = append(events, keyEvent{kind: keyDown})
		case 'C':
			events = append(events, keyEvent{kind: keyRight})
		case 'D':
			events = append(events, keyEvent{kind: keyLeft})
		}
		i = end + 1
	}
	return events
}
