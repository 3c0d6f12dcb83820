// engine.go - FM synthesizer engine: fixed two-oscillator topology

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
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Config is the one-shot construction input for a SynthEngine.
type Config struct {
	SampleRate  int
	FFTSize     int     // Analysis window, power of two
	Backend     int     // AUDIO_BACKEND_*
	MinDecibels float64 // Frequency snapshot floor
	MaxDecibels float64 // Frequency snapshot ceiling

	// CustomSeed, when non-empty, is run through Transform once and the
	// resulting table backs WaveCustom on both oscillators.
	CustomSeed []float32

	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		SampleRate:  SAMPLE_RATE,
		FFTSize:     DEFAULT_FFT_SIZE,
		Backend:     AUDIO_BACKEND_OTO,
		MinDecibels: DEFAULT_MIN_DECIBELS,
		MaxDecibels: DEFAULT_MAX_DECIBELS,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SampleRate == 0 {
		c.SampleRate = d.SampleRate
	}
	if c.FFTSize == 0 {
		c.FFTSize = d.FFTSize
	}
	if c.MinDecibels == 0 && c.MaxDecibels == 0 {
		c.MinDecibels, c.MaxDecibels = d.MinDecibels, d.MaxDecibels
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// SynthEngine wires two oscillators, the modulation matrix, the voice
// mixer and the master bus, and fans the bus out to an audio backend and a
// spectral analyser:
//
//	osc1 ─┬─ gain ──┬──────────────┐
//	      │         └─> matrix ─> osc1/osc2 frequency
//	      └─ bypass ───────────────┤
//	osc2 ─┬─ gain ──┬──────────────┤
//	      │         └─> matrix ─> osc1/osc2 frequency
//	      └─ bypass ───────────────┴─> master ─┬─> output
//	                                           └─> analyser
//
// Setters are safe from any goroutine and never fail. Render must only be
// driven by one goroutine at a time (the backend's, or the host's when the
// backend is AUDIO_BACKEND_NULL).
type SynthEngine struct {
	sampleRate float32
	osc        [numOscillators]*Oscillator
	mixer      VoiceMixer
	matrix     *ModulationMatrix
	master     *MasterBus
	analyser   *SpectralAnalyser
	custom     *PeriodicWave
	output     AudioOutput
	logger     *slog.Logger

	ctrlMu    sync.Mutex // Serialises control writers; never taken by Render
	closeOnce sync.Once
	closed    atomic.Bool

	// Render-only
	send [numOscillators]float32 // Previous sample's matrix sends
}

// NewSynthEngine builds the topology, seeds the custom waveform and
// acquires the audio backend, which is started before returning. On error
// nothing stays acquired.
func NewSynthEngine(cfg Config) (*SynthEngine, error) {
	cfg = cfg.withDefaults()
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrAudioBackend, cfg.SampleRate)
	}

	analyser, err := NewSpectralAnalyser(cfg.FFTSize, cfg.MinDecibels, cfg.MaxDecibels)
	if err != nil {
		return nil, err
	}

	e := &SynthEngine{
		sampleRate: float32(cfg.SampleRate),
		matrix:     NewModulationMatrix(),
		master:     NewMasterBus(DEFAULT_MASTER_GAIN),
		analyser:   analyser,
		logger:     cfg.Logger,
	}
	for i := range e.osc {
		e.osc[i] = NewOscillator()
	}
	e.mixer = VoiceMixer{osc: &e.osc}

	if len(cfg.CustomSeed) > 0 {
		spectrum, err := Transform(cfg.CustomSeed)
		if err != nil {
			return nil, fmt.Errorf("custom waveform seed: %w", err)
		}
		wave, err := NewPeriodicWave(spectrum, PERIODIC_TABLE_SIZE)
		if err != nil {
			return nil, fmt.Errorf("custom waveform table: %w", err)
		}
		e.custom = wave
		for _, o := range e.osc {
			o.SetCustomWave(wave)
		}
		e.logger.Debug("custom waveform seeded", "seed_len", len(cfg.CustomSeed), "table_len", wave.Size())
	}

	e.osc[Osc1].SetGain(DEFAULT_OSC1_GAIN)
	e.osc[Osc2].SetGain(DEFAULT_OSC2_GAIN)
	e.SetNote(DEFAULT_NOTE)

	// Device last: nothing after this point can fail
	output, err := NewAudioOutput(cfg.Backend, cfg.SampleRate, e)
	if err != nil {
		return nil, err
	}
	e.output = output
	output.Start()

	e.logger.Info("engine started",
		"backend", BackendName(cfg.Backend),
		"sample_rate", cfg.SampleRate,
		"fft_size", cfg.FFTSize,
	)
	return e, nil
}

// SetNote sets the base frequency from a note number.
func (e *SynthEngine) SetNote(note uint8) {
	e.SetFrequency(NoteToFrequency(note))
}

// SetFrequency sets the base frequency directly. Each oscillator follows at
// base*ratio and every matrix path gain is recomputed.
func (e *SynthEngine) SetFrequency(freq float32) {
	e.ctrlMu.Lock()
	defer e.ctrlMu.Unlock()

	for _, o := range e.osc {
		o.SetFrequency(freq * o.Ratio())
	}
	e.matrix.Recompute(freq)
}

func (e *SynthEngine) BaseFrequency() float32 {
	return e.matrix.BaseFrequency()
}

// SetFrequencyRatio sets an oscillator's frequency as a multiple of the
// base frequency and retunes it immediately.
func (e *SynthEngine) SetFrequencyRatio(id OscID, ratio float32) {
	if !id.Valid() {
		return
	}
	e.ctrlMu.Lock()
	defer e.ctrlMu.Unlock()

	o := e.osc[id]
	o.SetRatio(ratio)
	o.SetFrequency(e.matrix.BaseFrequency() * ratio)
}

// SetWaveform selects a waveform by name ("sin", "tri", "sqr", "saw",
// "custom"). Unknown names leave the oscillator in WaveUnrecognized.
func (e *SynthEngine) SetWaveform(id OscID, name string) {
	w := ParseWaveform(name)
	if w == WaveUnrecognized {
		e.logger.Debug("unrecognized waveform", "osc", id.String(), "name", name)
	}
	e.SetOscWaveform(id, w)
}

func (e *SynthEngine) SetOscWaveform(id OscID, w Waveform) {
	if !id.Valid() {
		return
	}
	e.osc[id].SetWaveform(w)
}

// SetGain sets the oscillator's wet level, which is also its matrix send.
func (e *SynthEngine) SetGain(id OscID, gain float32) {
	if !id.Valid() {
		return
	}
	e.osc[id].SetGain(gain)
}

// SetBypass sets the oscillator's dry level into the bus.
func (e *SynthEngine) SetBypass(id OscID, gain float32) {
	if !id.Valid() {
		return
	}
	e.osc[id].SetBypass(gain)
}

// SetFMCoefficient sets a modulation index. All four path gains are
// recomputed from the current base frequency.
func (e *SynthEngine) SetFMCoefficient(p PathID, c float32) {
	e.ctrlMu.Lock()
	defer e.ctrlMu.Unlock()
	e.matrix.SetCoefficient(p, c)
}

func (e *SynthEngine) PathGain(p PathID) float32 {
	return e.matrix.PathGain(p)
}

func (e *SynthEngine) SetMasterGain(gain float32) {
	e.master.SetGain(gain)
}

func (e *SynthEngine) MasterGain() float32 {
	return e.master.Gain()
}

// Oscillator exposes a slot for inspection. Returns nil for invalid ids.
func (e *SynthEngine) Oscillator(id OscID) *Oscillator {
	if !id.Valid() {
		return nil
	}
	return e.osc[id]
}

func (e *SynthEngine) Matrix() *ModulationMatrix {
	return e.matrix
}

func (e *SynthEngine) Analyser() *SpectralAnalyser {
	return e.analyser
}

// HasCustomWave reports whether a seed buffer was supplied at construction.
func (e *SynthEngine) HasCustomWave() bool {
	return e.custom != nil
}

func (e *SynthEngine) SampleRate() int {
	return int(e.sampleRate)
}

func (e *SynthEngine) BufferLength() int {
	return e.analyser.BufferLength()
}

func (e *SynthEngine) SnapshotTimeDomain() []uint8 {
	return e.analyser.SnapshotTimeDomain()
}

func (e *SynthEngine) SnapshotFrequencyDomain() []uint8 {
	return e.analyser.SnapshotFrequencyDomain()
}

// ReadSample renders one master-bus sample and feeds it to the analyser.
func (e *SynthEngine) ReadSample() float32 {
	fm := e.matrix.modulate(&e.send)
	bus, send := e.mixer.mix(fm, e.sampleRate)
	e.send = send
	out := e.master.process(bus)
	e.analyser.write(out)
	return out
}

// Render fills dst with consecutive samples. Hosts call it themselves only
// on AUDIO_BACKEND_NULL engines; every other backend drives it.
func (e *SynthEngine) Render(dst []float32) {
	for i := range dst {
		dst[i] = e.ReadSample()
	}
}

// Closed reports whether Close has run.
func (e *SynthEngine) Closed() bool {
	return e.closed.Load()
}

// Close stops and releases the audio backend. Later calls do nothing.
func (e *SynthEngine) Close() error {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		if e.output != nil {
			e.output.Stop()
			e.output.Close()
		}
		e.logger.Info("engine closed")
	})
	return nil
}
