// audio_output.go - Audio backend selection

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package fmsynth

import (
	"errors"
	"fmt"
	"slices"
)

// compiledFeatures tracks build-time backend choices via init() registration.
var compiledFeatures []string

// CompiledFeatures lists the build-time features, sorted.
func CompiledFeatures() []string {
	out := slices.Clone(compiledFeatures)
	slices.Sort(out)
	return out
}

const (
	AUDIO_BACKEND_OTO      = iota // System audio device via oto
	AUDIO_BACKEND_HEADLESS        // Real-time clocked render, output discarded
	AUDIO_BACKEND_NULL            // No render goroutine; host calls Render
)

// ErrAudioBackend reports that the output device or graph could not be
// acquired.
var ErrAudioBackend = errors.New("audio backend unavailable")

// SampleSource is what a backend pulls audio from. Render is only ever
// called from the backend's own goroutine.
type SampleSource interface {
	Render(dst []float32)
}

// AudioOutput is a started/stopped sink. Close releases the device and is
// safe to call more than once.
type AudioOutput interface {
	Start()
	Stop()
	Close()
	IsStarted() bool
}

// BackendName returns the flag spelling of a backend constant.
func BackendName(backend int) string {
	switch backend {
	case AUDIO_BACKEND_OTO:
		return "oto"
	case AUDIO_BACKEND_HEADLESS:
		return "headless"
	case AUDIO_BACKEND_NULL:
		return "null"
	}
	return fmt.Sprintf("backend(%d)", backend)
}

// ParseBackend is the inverse of BackendName.
func ParseBackend(name string) (int, error) {
	switch name {
	case "oto":
		return AUDIO_BACKEND_OTO, nil
	case "headless":
		return AUDIO_BACKEND_HEADLESS, nil
	case "null":
		return AUDIO_BACKEND_NULL, nil
	}
	return 0, fmt.Errorf("unknown audio backend %q (want oto, headless or null)", name)
}

func NewAudioOutput(backend int, sampleRate int, src SampleSource) (AudioOutput, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrAudioBackend, sampleRate)
	}
	switch backend {
	case AUDIO_BACKEND_OTO:
		player, err := NewOtoPlayer(sampleRate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAudioBackend, err)
		}
		player.SetupPlayer(src)
		return player, nil
	case AUDIO_BACKEND_HEADLESS:
		return NewHeadlessPlayer(sampleRate, src), nil
	case AUDIO_BACKEND_NULL:
		return &NullOutput{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrAudioBackend, BackendName(backend))
}
