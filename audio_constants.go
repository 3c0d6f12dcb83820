// audio_constants.go - Shared constants for the FM synthesizer

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package fmsynth

const (
	SAMPLE_RATE = 44100

	TWO_PI = 2 * 3.14159265358979323846
)

// Pitch reference: A0 is MIDI note 21 at 27.5 Hz.
const (
	REF_NOTE      = 21
	REF_NOTE_FREQ = 27.5
	DEFAULT_NOTE  = 50
)

// Analysis window limits (power of two only).
const (
	DEFAULT_FFT_SIZE     = 2048
	MIN_FFT_SIZE         = 32
	MAX_FFT_SIZE         = 32768
	DEFAULT_MIN_DECIBELS = -100.0
	DEFAULT_MAX_DECIBELS = -30.0
)

const PERIODIC_TABLE_SIZE = 4096 // Samples per cycle of a custom waveform

// Power-on mix levels
const (
	DEFAULT_OSC1_GAIN   = 1.0
	DEFAULT_OSC2_GAIN   = 0.0
	DEFAULT_MASTER_GAIN = 0.8
)

const (
	MAX_SAMPLE = 1.0
	MIN_SAMPLE = -1.0
)
