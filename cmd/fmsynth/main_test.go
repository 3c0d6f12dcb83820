// main_test.go - Host program flag and key handling tests

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package main

import (
	"flag"
	"testing"

	"github.com/intuitionamiga/fmsynth"
)

func newNullEngine(t *testing.T) *fmsynth.SynthEngine {
	t.Helper()
	cfg := fmsynth.DefaultConfig()
	cfg.Backend = fmsynth.AUDIO_BACKEND_NULL
	e, err := fmsynth.NewSynthEngine(cfg)
	if err != nil {
		t.Fatalf("NewSynthEngine: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-note", "69", "-wave2", "saw", "-fm21", "2.5", "-ratio2", "3", "-render", "x.wav"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if o.note != 69 || o.wave[fmsynth.Osc2] != "saw" || o.fm[fmsynth.PathTwoToOne] != 2.5 || o.ratio2 != 3 || o.render != "x.wav" {
		t.Fatalf("options = %+v", o)
	}
	if o.wave[fmsynth.Osc1] != "sin" || o.master != fmsynth.DEFAULT_MASTER_GAIN {
		t.Fatalf("defaults = %+v", o)
	}

	if _, err := parseFlags([]string{"-note", "300"}); err == nil {
		t.Error("note 300 accepted")
	}
	if _, err := parseFlags([]string{"-bogus"}); err == nil {
		t.Error("unknown flag accepted")
	}
	if _, err := parseFlags([]string{"-h"}); err != flag.ErrHelp {
		t.Errorf("-h: err = %v", err)
	}
}

func TestApplyOptions(t *testing.T) {
	e := newNullEngine(t)
	o, err := parseFlags([]string{"-note", "69", "-wave1", "tri", "-gain2", "0.5", "-ratio2", "2", "-fm12", "0.5", "-master", "0.3"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	applyOptions(e, o)

	if e.BaseFrequency() < 439.9 || e.BaseFrequency() > 440.1 {
		t.Errorf("base = %v", e.BaseFrequency())
	}
	if e.Oscillator(fmsynth.Osc1).Waveform() != fmsynth.WaveTriangle {
		t.Errorf("wave1 = %v", e.Oscillator(fmsynth.Osc1).Waveform())
	}
	if f := e.Oscillator(fmsynth.Osc2).Frequency(); f < 879.9 || f > 880.1 {
		t.Errorf("osc2 = %v", f)
	}
	if g := e.PathGain(fmsynth.PathOneToTwo); g < 219.9 || g > 220.1 {
		t.Errorf("path gain = %v", g)
	}
	if e.Oscillator(fmsynth.Osc2).Gain() != 0.5 || e.MasterGain() != 0.3 {
		t.Errorf("levels = %v/%v", e.Oscillator(fmsynth.Osc2).Gain(), e.MasterGain())
	}
}

func char(b byte) keyEvent {
	return keyEvent{kind: keyChar, ch: b}
}

func TestKeyboardPatch(t *testing.T) {
	e := newNullEngine(t)
	quit := false
	var lines []string
	k := &keyboardPatch{
		engine: e,
		quit:   func() { quit = true },
		print:  func(format string, args ...any) { lines = append(lines, format) },
	}

	k.handleKey(char('z'))
	if want := fmsynth.NoteToFrequency(fmsynth.DEFAULT_NOTE + 1); e.BaseFrequency() != want {
		t.Errorf("base = %v, want %v", e.BaseFrequency(), want)
	}

	k.handleKey(char(']'))
	k.handleKey(keyEvent{kind: keyUp})
	if c := e.Matrix().Coefficient(fmsynth.PathTwoToOne); c < 0.19 || c > 0.21 {
		t.Errorf("fm index = %v", c)
	}
	k.handleKey(keyEvent{kind: keyDown})
	k.handleKey(char('['))
	if c := e.Matrix().Coefficient(fmsynth.PathTwoToOne); c < -0.01 || c > 0.01 {
		t.Errorf("fm index after nudging back = %v", c)
	}

	k.handleKey(char('='))
	if r := e.Oscillator(fmsynth.Osc2).Ratio(); r != 1.5 {
		t.Errorf("ratio = %v", r)
	}
	k.handleKey(keyEvent{kind: keyRight})
	if r := e.Oscillator(fmsynth.Osc2).Ratio(); r != 2 {
		t.Errorf("ratio = %v", r)
	}
	for range 5 {
		k.handleKey(keyEvent{kind: keyLeft})
	}
	if r := e.Oscillator(fmsynth.Osc2).Ratio(); r != ratioStep {
		t.Errorf("ratio floor = %v", r)
	}

	k.handleKey(char('9'))
	if w := e.Oscillator(fmsynth.Osc2).Waveform(); w != fmsynth.WaveTriangle {
		t.Errorf("wave2 = %v", w)
	}
	k.handleKey(char('0'))
	if e.Oscillator(fmsynth.Osc2).Gain() != 1 {
		t.Errorf("osc2 gain = %v", e.Oscillator(fmsynth.Osc2).Gain())
	}

	if quit {
		t.Fatal("quit before Esc")
	}
	k.handleKey(keyEvent{kind: keyEsc})
	if !quit {
		t.Fatal("Esc did not quit")
	}
	quit = false
	k.handleKey(char(keyCtrlC))
	if !quit {
		t.Fatal("Ctrl-C did not quit")
	}
	t.Logf("%d status lines", len(lines))
}

func TestKeyboardPatch_ArrowSequenceIsNotFMKey(t *testing.T) {
	// ESC [ A must nudge once, not also act on '['
	e := newNullEngine(t)
	k := &keyboardPatch{engine: e, quit: func() {}, print: func(string, ...any) {}}
	var d keyDecoder
	for _, ev := range d.feed([]byte("\x1b[A\x1b[A")) {
		k.handleKey(ev)
	}
	if c := e.Matrix().Coefficient(fmsynth.PathTwoToOne); c < 0.19 || c > 0.21 {
		t.Fatalf("fm index = %v, want two up steps", c)
	}
}

func TestNextWave(t *testing.T) {
	if w := nextWave(fmsynth.WaveSawtooth, false); w != fmsynth.WaveSine {
		t.Errorf("saw -> %v without custom", w)
	}
	if w := nextWave(fmsynth.WaveSawtooth, true); w != fmsynth.WaveCustom {
		t.Errorf("saw -> %v with custom", w)
	}
	if w := nextWave(fmsynth.WaveUnrecognized, true); w != fmsynth.WaveSine {
		t.Errorf("unrecognized -> %v", w)
	}
}
