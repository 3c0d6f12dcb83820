// params.go - Wait-free parameter cells shared between control and render

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package fmsynth

import (
	"math"
	"sync/atomic"
)

// atomicFloat32 stores a float32 as its IEEE bits so the render path can
// read it with a single atomic load.
type atomicFloat32 struct {
	bits atomic.Uint32
}

func (a *atomicFloat32) Load() float32 {
	return math.Float32frombits(a.bits.Load())
}

func (a *atomicFloat32) Store(v float32) {
	a.bits.Store(math.Float32bits(v))
}

// ClampGain limits a gain-like value to [0,1]. NaN maps to 0.
func ClampGain(g float32) float32 {
	switch {
	case g != g:
		return 0
	case g < 0:
		return 0
	case g > 1:
		return 1
	}
	return g
}

func clampSample(s float32) float32 {
	if s != s {
		return 0
	}
	if s > MAX_SAMPLE {
		return MAX_SAMPLE
	}
	if s < MIN_SAMPLE {
		return MIN_SAMPLE
	}
	return s
}
