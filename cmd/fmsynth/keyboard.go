// keyboard.go - Interactive keyboard control of a running engine

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/intuitionamiga/fmsynth"
	"golang.org/x/term"
)

const (
	keyCtrlC = 0x03

	fmStep    = 0.1
	ratioStep = 0.5
)

var waveCycle = []fmsynth.Waveform{
	fmsynth.WaveSine, fmsynth.WaveTriangle, fmsynth.WaveSquare, fmsynth.WaveSawtooth, fmsynth.WaveCustom,
}

// keyboardPatch turns key presses into engine parameter changes.
type keyboardPatch struct {
	engine *fmsynth.SynthEngine
	quit   context.CancelFunc
	print  func(format string, args ...any)
}

func nextWave(w fmsynth.Waveform, hasCustom bool) fmsynth.Waveform {
	n := len(waveCycle)
	if !hasCustom {
		n--
	}
	for i, c := range waveCycle[:n] {
		if c == w {
			return waveCycle[(i+1)%n]
		}
	}
	return fmsynth.WaveSine
}

// handleKey applies one key. Notes play from the two piano rows; the rest:
//
//	[ ] or Down/Up     FM index osc2 -> osc1 down/up
//	- = or Left/Right  osc2 ratio down/up
//	8 9                cycle osc1/osc2 waveform
//	0                  toggle osc2 into the mix
//	Esc, Ctrl-C        quit
func (k *keyboardPatch) handleKey(ev keyEvent) {
	switch ev.kind {
	case keyEsc:
		k.quit()
	case keyUp:
		k.nudgeFM(fmStep)
	case keyDown:
		k.nudgeFM(-fmStep)
	case keyRight:
		k.nudgeRatio(ratioStep)
	case keyLeft:
		k.nudgeRatio(-ratioStep)
	case keyChar:
		k.handleChar(ev.ch)
	}
}

func (k *keyboardPatch) handleChar(b byte) {
	e := k.engine
	if note, ok := fmsynth.KeyToNote(rune(b), fmsynth.DEFAULT_NOTE); ok {
		e.SetNote(note)
		k.print("note %d  %.2f Hz", note, e.BaseFrequency())
		return
	}

	switch b {
	case keyCtrlC:
		k.quit()
	case '[':
		k.nudgeFM(-fmStep)
	case ']':
		k.nudgeFM(fmStep)
	case '-':
		k.nudgeRatio(-ratioStep)
	case '=':
		k.nudgeRatio(ratioStep)
	case '8', '9':
		id := fmsynth.Osc1
		if b == '9' {
			id = fmsynth.Osc2
		}
		w := nextWave(e.Oscillator(id).Waveform(), e.HasCustomWave())
		e.SetOscWaveform(id, w)
		k.print("%s %s", id, w)
	case '0':
		g := float32(1)
		if e.Oscillator(fmsynth.Osc2).Gain() > 0 {
			g = 0
		}
		e.SetGain(fmsynth.Osc2, g)
		k.print("osc2 gain %.0f", g)
	}
}

func (k *keyboardPatch) nudgeFM(delta float32) {
	e := k.engine
	c := e.Matrix().Coefficient(fmsynth.PathTwoToOne) + delta
	e.SetFMCoefficient(fmsynth.PathTwoToOne, c)
	k.print("fm 2->1  index %.2f  gain %.2f", c, e.PathGain(fmsynth.PathTwoToOne))
}

// nudgeRatio never takes the ratio below one step.
func (k *keyboardPatch) nudgeRatio(delta float32) {
	e := k.engine
	r := max(ratioStep, e.Oscillator(fmsynth.Osc2).Ratio()+delta)
	e.SetFrequencyRatio(fmsynth.Osc2, r)
	k.print("osc2 ratio %.2f", r)
}

// runKeyboard plays the engine from stdin until ctx ends or a quit key.
// Without a terminal it just waits.
func runKeyboard(ctx context.Context, e *fmsynth.SynthEngine) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		<-ctx.Done()
		return
	}

	fmt.Println("Keys: z..m / q..u play, arrows or [ ] - = for FM and ratio, 8 9 waveform, 0 osc2, Esc quits")
	patch := &keyboardPatch{
		engine: e,
		quit:   cancel,
		print: func(format string, args ...any) {
			// Raw mode: no implicit carriage return
			fmt.Printf(format+"\r\n", args...)
		},
	}
	host := NewKeyboardHost(patch.handleKey)
	if err := host.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "keyboard: %v, keys disabled\n", err)
		<-ctx.Done()
		return
	}
	<-ctx.Done()
	host.Stop()
}
