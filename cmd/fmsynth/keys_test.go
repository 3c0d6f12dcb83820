// keys_test.go - Raw terminal input decoding tests

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package main

import (
	"slices"
	"testing"
)

func TestKeyDecoder(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []keyEvent
	}{
		{"plain chars", "zq[", []keyEvent{char('z'), char('q'), char('[')}},
		{"csi arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []keyEvent{{kind: keyUp}, {kind: keyDown}, {kind: keyRight}, {kind: keyLeft}}},
		{"ss3 arrows", "\x1bOA\x1bOD", []keyEvent{{kind: keyUp}, {kind: keyLeft}}},
		{"modified arrow", "\x1b[1;5C", []keyEvent{{kind: keyRight}}},
		{"function key dropped", "\x1b[15~z", []keyEvent{char('z')}},
		{"lone escape", "\x1b", []keyEvent{{kind: keyEsc}}},
		{"escape then arrow", "\x1b\x1b[A", []keyEvent{{kind: keyEsc}, {kind: keyUp}}},
		{"alt prefix dropped", "\x1bz", []keyEvent{char('z')}},
		{"ctrl-c", "\x03", []keyEvent{char(keyCtrlC)}},
	}
	for _, tt := range tests {
		var d keyDecoder
		got := d.feed([]byte(tt.in))
		if !slices.Equal(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyDecoder_SequenceSplitAcrossReads(t *testing.T) {
	var d keyDecoder
	if got := d.feed([]byte("z\x1b[")); !slices.Equal(got, []keyEvent{char('z')}) {
		t.Fatalf("first read = %v", got)
	}
	if got := d.feed([]byte("1;2Ax")); !slices.Equal(got, []keyEvent{{kind: keyUp}, char('x')}) {
		t.Fatalf("second read = %v", got)
	}
	if len(d.pending) != 0 {
		t.Fatalf("pending = %q", d.pending)
	}
}

func TestKeyDecoder_RunawaySequenceDiscarded(t *testing.T) {
	var d keyDecoder
	junk := append([]byte("\x1b["), make([]byte, 2*maxPendingSeq)...)
	for i := 2; i < len(junk); i++ {
		junk[i] = '1'
	}
	if got := d.feed(junk); len(got) != 0 {
		t.Fatalf("events = %v", got)
	}
	if len(d.pending) != 0 {
		t.Fatalf("kept %d pending bytes", len(d.pending))
	}
	if got := d.feed([]byte("z")); !slices.Equal(got, []keyEvent{char('z')}) {
		t.Fatalf("after runaway = %v", got)
	}
}
