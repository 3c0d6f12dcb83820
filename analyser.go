// analyser.go - Spectral analysis tap on the master bus

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
	"math"
	"math/cmplx"
	"sync/atomic"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// SpectralAnalyser keeps the last windowSize master-bus samples in a ring
// and turns them into byte or float snapshots on request.
//
// write is called by the render goroutine only and never blocks. Snapshots
// may be taken from any goroutine; they read the ring with atomic loads and
// allocate their own result, so nothing is cached between calls.
type SpectralAnalyser struct {
	windowSize  int
	mask        uint64
	ring        []atomic.Uint32 // float32 bits
	written     atomic.Uint64   // total samples written
	blackman    []float64       // read-only after construction
	minDecibels float64
	maxDecibels float64
}

// NewSpectralAnalyser builds an analyser over a power-of-two window in
// [MIN_FFT_SIZE, MAX_FFT_SIZE]. Magnitudes map to bytes linearly between
// minDecibels and maxDecibels.
func NewSpectralAnalyser(windowSize int, minDecibels, maxDecibels float64) (*SpectralAnalyser, error) {
	if windowSize < MIN_FFT_SIZE || windowSize > MAX_FFT_SIZE || windowSize&(windowSize-1) != 0 {
		return nil, fmt.Errorf("analysis window %d must be a power of two in [%d, %d]", windowSize, MIN_FFT_SIZE, MAX_FFT_SIZE)
	}
	if !(minDecibels < maxDecibels) {
		return nil, fmt.Errorf("decibel range [%v, %v] is empty", minDecibels, maxDecibels)
	}
	return &SpectralAnalyser{
		windowSize:  windowSize,
		mask:        uint64(windowSize - 1),
		ring:        make([]atomic.Uint32, windowSize),
		blackman:    window.Blackman(windowSize),
		minDecibels: minDecibels,
		maxDecibels: maxDecibels,
	}, nil
}

func (a *SpectralAnalyser) WindowSize() int {
	return a.windowSize
}

// BufferLength is the number of values in every snapshot: half the window.
func (a *SpectralAnalyser) BufferLength() int {
	return a.windowSize / 2
}

// write appends one sample. Only the render goroutine calls it.
func (a *SpectralAnalyser) write(sample float32) {
	n := a.written.Load()
	a.ring[n&a.mask].Store(math.Float32bits(sample))
	a.written.Store(n + 1)
}

// latest copies the most recent n samples, oldest first. Slots never
// written read as silence.
func (a *SpectralAnalyser) latest(n int) []float64 {
	end := a.written.Load()
	out := make([]float64, n)
	start := end - uint64(n)
	for i := range out {
		out[i] = float64(math.Float32frombits(a.ring[(start+uint64(i))&a.mask].Load()))
	}
	return out
}

// FloatTimeDomain returns the most recent BufferLength samples.
func (a *SpectralAnalyser) FloatTimeDomain() []float32 {
	src := a.latest(a.BufferLength())
	out := make([]float32, len(src))
	for i, v := range src {
		out[i] = float32(v)
	}
	return out
}

// SnapshotTimeDomain quantises the most recent BufferLength samples to
// bytes centred on 128 (silence); 0 and 255 are the rails.
func (a *SpectralAnalyser) SnapshotTimeDomain() []uint8 {
	src := a.latest(a.BufferLength())
	out := make([]uint8, len(src))
	for i, v := range src {
		out[i] = quantizeByte(128 * (v + 1))
	}
	return out
}

// FloatFrequencyDomain returns per-bin magnitude in dB over a Blackman
// window of the last WindowSize samples. Empty bins are -Inf.
func (a *SpectralAnalyser) FloatFrequencyDomain() []float32 {
	db := a.decibels()
	out := make([]float32, len(db))
	for i, v := range db {
		out[i] = float32(v)
	}
	return out
}

// SnapshotFrequencyDomain maps per-bin dB onto bytes: minDecibels and
// below is 0, maxDecibels and above is 255.
func (a *SpectralAnalyser) SnapshotFrequencyDomain() []uint8 {
	db := a.decibels()
	scale := 255 / (a.maxDecibels - a.minDecibels)
	out := make([]uint8, len(db))
	for i, v := range db {
		out[i] = quantizeByte(scale * (v - a.minDecibels))
	}
	return out
}

func (a *SpectralAnalyser) decibels() []float64 {
	x := a.latest(a.windowSize)
	for i := range x {
		x[i] *= a.blackman[i]
	}
	bins := fft.FFTReal(x)
	db := make([]float64, a.BufferLength())
	norm := 1 / float64(a.windowSize)
	for k := range db {
		db[k] = 20 * math.Log10(cmplx.Abs(bins[k])*norm)
	}
	return db
}

// quantizeByte truncates into [0,255]; NaN and -Inf map to 0.
func quantizeByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
