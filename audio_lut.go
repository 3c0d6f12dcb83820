// audio_lut.go - Lookup tables for oscillator rendering

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

import "math"

const (
	sinLUTSize = 8192           // ~0.00077 radian resolution
	sinLUTMask = sinLUTSize - 1 // Mask for fast modulo
)

// sinLUT holds one cycle of sine, indexed by phase in cycles * sinLUTSize.
var sinLUT [sinLUTSize]float32

func init() {
	for i := 0; i < sinLUTSize; i++ {
		sinLUT[i] = float32(math.Sin(float64(i) * TWO_PI / sinLUTSize))
	}
}

// cycleSin returns sin(2π·phase) for phase in cycles [0,1), interpolating
// linearly between table entries.
//
//go:nosplit
func cycleSin(phase float32) float32 {
	indexF := phase * sinLUTSize
	index := int(indexF)
	frac := indexF - float32(index)

	index &= sinLUTMask
	next := (index + 1) & sinLUTMask
	return sinLUT[index] + frac*(sinLUT[next]-sinLUT[index])
}

// tableLookup reads a single-cycle table at phase in cycles [0,1).
func tableLookup(table []float32, phase float32) float32 {
	n := len(table)
	if n == 0 {
		return 0
	}
	indexF := phase * float32(n)
	index := int(indexF)
	frac := indexF - float32(index)
	if index >= n {
		index -= n
	}
	next := index + 1
	if next == n {
		next = 0
	}
	return table[index] + frac*(table[next]-table[index])
}

// polyBLEP32 is the polynomial band-limited step correction.
// t is the normalized phase position (0.0-1.0)
// dt is the phase increment per sample (frequency/sampleRate)
//
//go:nosplit
func polyBLEP32(t, dt float32) float32 {
	if t < dt {
		t /= dt
		return t + t - t*t - 1.0
	} else if t > 1.0-dt {
		t = (t - 1.0) / dt
		return t*t + t + t + 1.0
	}
	return 0.0
}
