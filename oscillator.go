// oscillator.go - Tone generator with selectable waveform

/*
 █████  ██   █▓   ███▓  ██  ▓█  ██   ██  █▓████  ▓█  ██
 ██     ███ █▓█  ██      ██▓█   ██▓  ██    ██    ██  ██
 ████   ██ █ ██   █▓█     ▓█    █▓ █ ██    ██    █████▓
 ██     ██   ██     ██    ██    ▓█  ███    ██    ██  ▓█
 ██     ██   ██  ▓███     ██    ██   █▓    ██    ██  ██
 ▒▒     ▒▒   ▒▒  ▒▒▒▒     ▒▒    ▒▒   ▒▒    ▒▒    ▒▒  ▒▒
 ░░     ░░   ░░  ░░░░     ░░    ░░   ░░    ░░    ░░  ░░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package fmsynth

import (
	"math"
	"sync/atomic"
)

// OscID selects one of the two oscillator slots.
type OscID int

const (
	Osc1 OscID = iota
	Osc2
	numOscillators
)

func (id OscID) Valid() bool {
	return id >= Osc1 && id < numOscillators
}

func (id OscID) String() string {
	switch id {
	case Osc1:
		return "osc1"
	case Osc2:
		return "osc2"
	}
	return "osc?"
}

// Waveform is the shape an oscillator renders.
type Waveform int32

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSquare
	WaveSawtooth
	WaveCustom
	WaveUnrecognized // Silent sentinel for names we do not know
)

var waveformNames = map[string]Waveform{
	"sin":    WaveSine,
	"tri":    WaveTriangle,
	"sqr":    WaveSquare,
	"saw":    WaveSawtooth,
	"custom": WaveCustom,
}

// ParseWaveform maps a short waveform name to its Waveform. Unknown names
// yield WaveUnrecognized rather than an error.
func ParseWaveform(name string) Waveform {
	if w, ok := waveformNames[name]; ok {
		return w
	}
	return WaveUnrecognized
}

func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sin"
	case WaveTriangle:
		return "tri"
	case WaveSquare:
		return "sqr"
	case WaveSawtooth:
		return "saw"
	case WaveCustom:
		return "custom"
	}
	return "unrecognized"
}

// Oscillator holds one tone generator's parameters. Setters may be called
// from any goroutine; next() belongs to the single render goroutine.
type Oscillator struct {
	// Control-written, render-read (atomic)
	waveform  atomic.Int32
	frequency atomicFloat32 // Hz, unbounded
	ratio     atomicFloat32 // multiple of the engine base frequency
	gain      atomicFloat32 // wet level, also the matrix send
	bypass    atomicFloat32 // dry level
	custom    atomic.Pointer[PeriodicWave]

	// Render-only
	phase float32 // cycles, [0,1)
}

// NewOscillator returns a sine oscillator at 0 Hz with unit ratio and both
// levels at zero.
func NewOscillator() *Oscillator {
	o := &Oscillator{}
	o.waveform.Store(int32(WaveSine))
	o.ratio.Store(1)
	return o
}

// SetWaveform selects the shape. Values outside the known set are stored as
// WaveUnrecognized, which renders silence.
func (o *Oscillator) SetWaveform(w Waveform) {
	if w < WaveSine || w > WaveUnrecognized {
		w = WaveUnrecognized
	}
	o.waveform.Store(int32(w))
}

func (o *Oscillator) Waveform() Waveform {
	return Waveform(o.waveform.Load())
}

// SetFrequency sets the oscillator's own frequency in Hz. Zero and negative
// values are passed through to the generator.
func (o *Oscillator) SetFrequency(freq float32) {
	o.frequency.Store(freq)
}

func (o *Oscillator) Frequency() float32 {
	return o.frequency.Load()
}

func (o *Oscillator) SetRatio(ratio float32) {
	o.ratio.Store(ratio)
}

func (o *Oscillator) Ratio() float32 {
	return o.ratio.Load()
}

func (o *Oscillator) SetGain(gain float32) {
	o.gain.Store(ClampGain(gain))
}

func (o *Oscillator) Gain() float32 {
	return o.gain.Load()
}

func (o *Oscillator) SetBypass(gain float32) {
	o.bypass.Store(ClampGain(gain))
}

func (o *Oscillator) Bypass() float32 {
	return o.bypass.Load()
}

// SetCustomWave installs the table used by WaveCustom. A nil table makes
// WaveCustom silent.
func (o *Oscillator) SetCustomWave(w *PeriodicWave) {
	o.custom.Store(w)
}

// next renders one raw sample with fmInput Hz added to the oscillator's own
// frequency, then advances the phase.
func (o *Oscillator) next(fmInput, sampleRate float32) float32 {
	freq := o.frequency.Load() + fmInput
	dt := freq / sampleRate
	phase := o.phase

	// polyBLEP needs a forward step below Nyquist
	blepDt := float32(math.Abs(float64(dt)))
	useBLEP := blepDt > 0 && blepDt < 0.5

	var s float32
	switch Waveform(o.waveform.Load()) {
	case WaveSine:
		s = cycleSin(phase)
	case WaveTriangle:
		s = 2.0*float32(math.Abs(float64(2.0*phase-1.0))) - 1.0
	case WaveSquare:
		if phase < 0.5 {
			s = 1.0
		} else {
			s = -1.0
		}
		if useBLEP {
			s += polyBLEP32(phase, blepDt)
			t := phase + 0.5
			if t >= 1.0 {
				t -= 1.0
			}
			s -= polyBLEP32(t, blepDt)
		}
	case WaveSawtooth:
		s = 2.0*phase - 1.0
		if useBLEP {
			s -= polyBLEP32(phase, blepDt)
		}
	case WaveCustom:
		if w := o.custom.Load(); w != nil {
			s = tableLookup(w.table, phase)
		}
	default:
		s = 0
	}

	phase += dt
	if phase >= 1.0 || phase < 0 {
		phase -= float32(math.Floor(float64(phase)))
	}
	// Runaway feedback can push the frequency to Inf
	if phase != phase || phase >= 1.0 {
		phase = 0
	}
	o.phase = phase
	return s
}
