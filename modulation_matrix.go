// modulation_matrix.go - Two-oscillator FM routing matrix

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
	"sync"
	"sync/atomic"
)

// PathID names one of the four oscillator-to-frequency-input routes.
type PathID int

const (
	PathOneToOne PathID = iota // osc1 -> osc1 frequency
	PathOneToTwo               // osc1 -> osc2 frequency
	PathTwoToOne               // osc2 -> osc1 frequency
	PathTwoToTwo               // osc2 -> osc2 frequency
	numPaths
)

var pathNames = map[string]PathID{
	"11": PathOneToOne,
	"12": PathOneToTwo,
	"21": PathTwoToOne,
	"22": PathTwoToTwo,
}

// ParsePath accepts "11", "12", "21" or "22" (source digit, then target).
func ParsePath(name string) (PathID, bool) {
	p, ok := pathNames[name]
	return p, ok
}

func (p PathID) Valid() bool {
	return p >= PathOneToOne && p < numPaths
}

// Source is the oscillator whose output feeds the path.
func (p PathID) Source() OscID {
	return OscID(int(p) / int(numOscillators))
}

// Target is the oscillator whose frequency input the path drives.
func (p PathID) Target() OscID {
	return OscID(int(p) % int(numOscillators))
}

func (p PathID) String() string {
	if !p.Valid() {
		return "path?"
	}
	return p.Source().String() + "->" + p.Target().String()
}

// ModulationMatrix stores four unclamped coefficients and the path gains
// derived from them. Path gain = coefficient * base frequency, so a
// coefficient is a modulation index relative to the current pitch.
//
// Every write, to a coefficient or to the base frequency, rewrites all four
// gains. Writers serialise on mu; the render path only does atomic loads.
type ModulationMatrix struct {
	mu          sync.Mutex
	coefficient [numPaths]atomicFloat32
	gain        [numPaths]atomicFloat32
	baseFreq    atomicFloat32
	recomputes  atomic.Uint64
}

func NewModulationMatrix() *ModulationMatrix {
	return &ModulationMatrix{}
}

// SetCoefficient stores a coefficient and recomputes every path gain from
// the current base frequency. Values above 1.0 are kept as is.
func (m *ModulationMatrix) SetCoefficient(p PathID, c float32) {
	if !p.Valid() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coefficient[p].Store(c)
	m.recomputeLocked(m.baseFreq.Load())
}

func (m *ModulationMatrix) Coefficient(p PathID) float32 {
	if !p.Valid() {
		return 0
	}
	return m.coefficient[p].Load()
}

// Recompute sets the base frequency and rewrites all four path gains.
func (m *ModulationMatrix) Recompute(baseFreq float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recomputeLocked(baseFreq)
}

func (m *ModulationMatrix) recomputeLocked(baseFreq float32) {
	m.baseFreq.Store(baseFreq)
	for p := PathOneToOne; p < numPaths; p++ {
		m.gain[p].Store(m.coefficient[p].Load() * baseFreq)
	}
	m.recomputes.Add(1)
}

func (m *ModulationMatrix) BaseFrequency() float32 {
	return m.baseFreq.Load()
}

// PathGain is the Hz of frequency deviation per unit of source signal.
func (m *ModulationMatrix) PathGain(p PathID) float32 {
	if !p.Valid() {
		return 0
	}
	return m.gain[p].Load()
}

// Recomputes counts full gain rewrites since construction.
func (m *ModulationMatrix) Recomputes() uint64 {
	return m.recomputes.Load()
}

// modulate returns the frequency deviation for each oscillator given the
// previous sample's matrix sends.
func (m *ModulationMatrix) modulate(send *[numOscillators]float32) [numOscillators]float32 {
	var fm [numOscillators]float32
	for p := PathOneToOne; p < numPaths; p++ {
		fm[p.Target()] += m.gain[p].Load() * send[p.Source()]
	}
	return fm
}
