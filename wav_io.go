// wav_io.go - WAV seed loading and offline render export

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package fmsynth

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavExportBitDepth = 16

// DecodeWAV reads an integer PCM WAV stream and returns its samples mixed
// down to mono in [-1,1]. Anything the decoder rejects is ErrMalformedInput.
func DecodeWAV(r io.ReadSeeker) ([]float32, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: not a WAV stream", ErrMalformedInput)
	}
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, fmt.Errorf("%w: missing format chunk", ErrMalformedInput)
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = int(decoder.BitDepth)
	}
	if bitDepth == 0 {
		return nil, fmt.Errorf("%w: unknown bit depth", ErrMalformedInput)
	}
	factor := float32(math.Pow(2, float64(bitDepth-1)))
	nchannels := buf.Format.NumChannels
	nframes := len(buf.Data) / nchannels
	if nframes == 0 {
		return nil, fmt.Errorf("%w: no PCM frames", ErrMalformedInput)
	}

	out := make([]float32, nframes)
	for f := 0; f < nframes; f++ {
		var sum float32
		for c := 0; c < nchannels; c++ {
			sum += float32(buf.Data[f*nchannels+c]) / factor
		}
		out[f] = sum / float32(nchannels)
	}
	return out, nil
}

// LoadWAV opens path and decodes it with DecodeWAV.
func LoadWAV(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	samples, err := DecodeWAV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// EncodeWAV writes mono 16-bit PCM.
func EncodeWAV(w io.WriteSeeker, samples []float32, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, wavExportBitDepth, 1, 1)
	scale := float32(math.MaxInt16)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: wavExportBitDepth,
	}
	for i, s := range samples {
		buf.Data[i] = int(clampSample(s) * scale)
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

// SaveWAV creates path and writes samples with EncodeWAV.
func SaveWAV(path string, samples []float32, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeWAV(f, samples, sampleRate); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ErrLiveBackend reports an offline render on an engine whose backend is
// already pulling samples.
var ErrLiveBackend = errors.New("engine is driven by a live audio backend")

// RenderWAV renders seconds of audio and writes it to path. Only engines
// on AUDIO_BACKEND_NULL can render offline; any other backend owns the
// render path and the call fails with ErrLiveBackend.
func (e *SynthEngine) RenderWAV(path string, seconds float64) error {
	if _, ok := e.output.(*NullOutput); !ok {
		return fmt.Errorf("%w: offline render needs the null backend", ErrLiveBackend)
	}
	if !(seconds > 0) {
		return fmt.Errorf("render length %v must be positive", seconds)
	}
	buf := make([]float32, int(seconds*float64(e.sampleRate)))
	e.Render(buf)
	if err := SaveWAV(path, buf, int(e.sampleRate)); err != nil {
		return err
	}
	e.logger.Info("rendered", "path", path, "samples", len(buf))
	return nil
}
