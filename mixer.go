// mixer.go - Voice mixing and master bus

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

// VoiceMixer sums each oscillator's wet (gain) and dry (bypass) paths.
// The wet signal doubles as that oscillator's send into the matrix.
type VoiceMixer struct {
	osc *[numOscillators]*Oscillator
}

// mix renders one sample from every oscillator and returns the bus sum
// along with the matrix sends for the next sample.
func (vm VoiceMixer) mix(fm [numOscillators]float32, sampleRate float32) (bus float32, send [numOscillators]float32) {
	for i, o := range vm.osc {
		raw := o.next(fm[i], sampleRate)
		wet := raw * o.gain.Load()
		dry := raw * o.bypass.Load()
		send[i] = wet
		bus += wet + dry
	}
	return bus, send
}

// MasterBus is the single gain stage ahead of the output/analyser fan-out.
type MasterBus struct {
	gain atomicFloat32
}

func NewMasterBus(gain float32) *MasterBus {
	b := &MasterBus{}
	b.SetGain(gain)
	return b
}

// SetGain clamps to [0,1].
func (b *MasterBus) SetGain(gain float32) {
	b.gain.Store(ClampGain(gain))
}

func (b *MasterBus) Gain() float32 {
	return b.gain.Load()
}

func (b *MasterBus) process(bus float32) float32 {
	return clampSample(bus * b.gain.Load())
}
