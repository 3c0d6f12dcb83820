//go:build headless

// audio_backend_oto_stub.go - oto is compiled out of headless builds

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package fmsynth

import "errors"

func init() {
	compiledFeatures = append(compiledFeatures, "audio:headless")
}

type OtoPlayer struct{}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	return nil, errors.New("oto backend not compiled in (headless build)")
}

func (op *OtoPlayer) SetupPlayer(src SampleSource) {}
func (op *OtoPlayer) Start()                       {}
func (op *OtoPlayer) Stop()                        {}
func (op *OtoPlayer) Close()                       {}
func (op *OtoPlayer) IsStarted() bool              { return false }
