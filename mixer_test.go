// mixer_test.go - Voice mixer and master bus tests

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package fmsynth

import "testing"

func newTriangleMixer(gain, bypass [numOscillators]float32) VoiceMixer {
	var osc [numOscillators]*Oscillator
	for i := range osc {
		osc[i] = NewOscillator()
		osc[i].SetWaveform(WaveTriangle)
		osc[i].SetFrequency(100)
		osc[i].SetGain(gain[i])
		osc[i].SetBypass(bypass[i])
	}
	return VoiceMixer{osc: &osc}
}

func TestVoiceMixer_WetAndDryPaths(t *testing.T) {
	// Triangle starts at +1, so the first sample exposes the raw levels
	vm := newTriangleMixer([numOscillators]float32{0.5, 0.2}, [numOscillators]float32{0.25, 0})
	bus, send := vm.mix([numOscillators]float32{}, SAMPLE_RATE)

	if !approx(send[Osc1], 0.5, 1e-6) || !approx(send[Osc2], 0.2, 1e-6) {
		t.Fatalf("send = %v, want wet levels only", send)
	}
	if !approx(bus, 0.95, 1e-6) {
		t.Fatalf("bus = %v, want 0.95", bus)
	}
}

func TestVoiceMixer_BypassDoesNotFeedMatrix(t *testing.T) {
	vm := newTriangleMixer([numOscillators]float32{}, [numOscillators]float32{1, 1})
	bus, send := vm.mix([numOscillators]float32{}, SAMPLE_RATE)
	if send != ([numOscillators]float32{}) {
		t.Fatalf("send = %v, want silence", send)
	}
	if !approx(bus, 2, 1e-6) {
		t.Fatalf("bus = %v, want 2", bus)
	}
}

func TestMasterBus(t *testing.T) {
	b := NewMasterBus(0.5)
	if got := b.process(0.5); got != 0.25 {
		t.Errorf("process(0.5) = %v", got)
	}
	b.SetGain(4)
	if b.Gain() != 1 {
		t.Errorf("gain = %v, want clamp to 1", b.Gain())
	}
	if got := b.process(3); got != MAX_SAMPLE {
		t.Errorf("process(3) = %v, want rail", got)
	}
	if got := b.process(-3); got != MIN_SAMPLE {
		t.Errorf("process(-3) = %v, want rail", got)
	}
	b.SetGain(0)
	if got := b.process(1); got != 0 {
		t.Errorf("muted bus = %v", got)
	}
}
