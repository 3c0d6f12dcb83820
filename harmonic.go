// harmonic.go - DFT harmonic extraction and custom waveform tables

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
	"errors"
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// ErrMalformedInput reports a sample buffer that cannot be used as numeric
// input to the harmonic transform.
var ErrMalformedInput = errors.New("malformed sample input")

// HarmonicSpectrum is the DFT of a real buffer: X[k] = Real[k] + i·Imag[k]
// for k in [0,N), with X[k] = Σ x[n]·e^(-2πikn/N).
type HarmonicSpectrum struct {
	Real []float32
	Imag []float32
}

func (s HarmonicSpectrum) Len() int {
	return len(s.Real)
}

// Transform computes the DFT of samples. Empty buffers and non-finite
// samples are rejected with ErrMalformedInput.
func Transform(samples []float32) (HarmonicSpectrum, error) {
	if len(samples) == 0 {
		return HarmonicSpectrum{}, fmt.Errorf("%w: empty buffer", ErrMalformedInput)
	}
	x := make([]float64, len(samples))
	for i, v := range samples {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return HarmonicSpectrum{}, fmt.Errorf("%w: sample %d is %v", ErrMalformedInput, i, v)
		}
		x[i] = f
	}

	bins := fft.FFTReal(x)
	spectrum := HarmonicSpectrum{
		Real: make([]float32, len(bins)),
		Imag: make([]float32, len(bins)),
	}
	for k, c := range bins {
		spectrum.Real[k] = float32(real(c))
		spectrum.Imag[k] = float32(imag(c))
	}
	return spectrum, nil
}

// InverseTransform reconstructs the time-domain buffer of a spectrum.
func InverseTransform(spectrum HarmonicSpectrum) ([]float32, error) {
	n := len(spectrum.Real)
	if n == 0 || len(spectrum.Imag) != n {
		return nil, fmt.Errorf("%w: spectrum has %d real and %d imaginary terms", ErrMalformedInput, n, len(spectrum.Imag))
	}
	bins := make([]complex128, n)
	for k := range bins {
		bins[k] = complex(float64(spectrum.Real[k]), float64(spectrum.Imag[k]))
	}
	x := fft.IFFT(bins)
	out := make([]float32, n)
	for i, c := range x {
		out[i] = float32(real(c))
	}
	return out, nil
}

// PeriodicWave is a single-cycle table built from harmonic coefficients.
// Tables are immutable once built and may be shared between oscillators.
type PeriodicWave struct {
	table []float32
}

// NewPeriodicWave rebuilds one cycle of the buffer a spectrum was taken
// from (the output of Transform over one period), resampled to size points:
//
//	w(t) = Σ Re X[k]·cos(2πkt) - Im X[k]·sin(2πkt),  k = 1 .. min(N/2, size/2-1)
//
// Bins above N/2 are conjugate mirrors of the lower ones and are skipped;
// for even N the Nyquist bin is a single term at half weight. The DC term is
// dropped and the peak normalised to 1. A spectrum with no energy above DC
// produces a silent table.
func NewPeriodicWave(spectrum HarmonicSpectrum, size int) (*PeriodicWave, error) {
	if size < 4 || size&(size-1) != 0 {
		return nil, fmt.Errorf("periodic wave size %d is not a power of two >= 4", size)
	}
	n := spectrum.Len()
	if n == 0 || len(spectrum.Imag) != n {
		return nil, fmt.Errorf("%w: spectrum has %d real and %d imaginary terms", ErrMalformedInput, n, len(spectrum.Imag))
	}

	harmonics := min(n/2, size/2-1)
	half := float64(size) / 2
	bins := make([]complex128, size)
	for k := 1; k <= harmonics; k++ {
		re := float64(spectrum.Real[k])
		im := float64(spectrum.Imag[k])
		if math.IsNaN(re) || math.IsNaN(im) || math.IsInf(re, 0) || math.IsInf(im, 0) {
			return nil, fmt.Errorf("%w: harmonic %d is not finite", ErrMalformedInput, k)
		}
		if 2*k == n {
			re, im = re/2, 0
		}
		// IFFT(Y)[t] = Σ re·cos - im·sin when Y[k] = X[k]·size/2 and Y[size-k] = conj(Y[k])
		bins[k] = complex(re*half, im*half)
		bins[size-k] = complex(re*half, -im*half)
	}

	x := fft.IFFT(bins)
	table := make([]float32, size)
	var peak float64
	for _, c := range x {
		peak = math.Max(peak, math.Abs(real(c)))
	}
	if peak > 0 {
		for i, c := range x {
			table[i] = float32(real(c) / peak)
		}
	}
	return &PeriodicWave{table: table}, nil
}

// Size is the number of samples in one cycle.
func (w *PeriodicWave) Size() int {
	return len(w.table)
}

// At returns the table value at phase (cycles, wrapped into [0,1)).
func (w *PeriodicWave) At(phase float32) float32 {
	phase -= float32(math.Floor(float64(phase)))
	if phase >= 1 {
		phase = 0
	}
	return tableLookup(w.table, phase)
}
