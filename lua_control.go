// lua_control.go - Lua scripting of engine parameters

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package fmsynth

import (
	"context"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// ScriptHost runs Lua scripts against one engine. Oscillators are numbered
// 1 and 2 and matrix paths are strings "11", "12", "21", "22" on the Lua
// side. Exposed functions:
//
//	note(n)  freq(hz)  wave(osc, name)  gain(osc, g)  bypass(osc, g)
//	ratio(osc, r)  fm(path, c)  master(g)  sleep(ms)
//	base_freq()  path_gain(path)  buffer_length()
type ScriptHost struct {
	engine *SynthEngine
	L      *lua.LState
}

func NewScriptHost(e *SynthEngine) *ScriptHost {
	h := &ScriptHost{engine: e, L: lua.NewState()}
	for name, fn := range map[string]lua.LGFunction{
		"note":          h.luaNote,
		"freq":          h.luaFreq,
		"wave":          h.luaWave,
		"gain":          h.luaGain,
		"bypass":        h.luaBypass,
		"ratio":         h.luaRatio,
		"fm":            h.luaFM,
		"master":        h.luaMaster,
		"sleep":         h.luaSleep,
		"base_freq":     h.luaBaseFreq,
		"path_gain":     h.luaPathGain,
		"buffer_length": h.luaBufferLength,
	} {
		h.L.SetGlobal(name, h.L.NewFunction(fn))
	}
	return h
}

func (h *ScriptHost) Close() {
	h.L.Close()
}

// Run executes src. Cancelling ctx aborts the script, including a pending
// sleep.
func (h *ScriptHost) Run(ctx context.Context, src string) error {
	h.L.SetContext(ctx)
	return h.L.DoString(src)
}

// RunFile executes the script at path.
func (h *ScriptHost) RunFile(ctx context.Context, path string) error {
	h.L.SetContext(ctx)
	return h.L.DoFile(path)
}

func checkOsc(L *lua.LState, n int) OscID {
	id := OscID(L.CheckInt(n) - 1)
	if !id.Valid() {
		L.ArgError(n, "oscillator must be 1 or 2")
	}
	return id
}

func checkPath(L *lua.LState, n int) PathID {
	p, ok := ParsePath(L.CheckString(n))
	if !ok {
		L.ArgError(n, `path must be "11", "12", "21" or "22"`)
	}
	return p
}

func checkFloat(L *lua.LState, n int) float32 {
	return float32(L.CheckNumber(n))
}

func (h *ScriptHost) luaNote(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 || n > 255 {
		L.ArgError(1, "note must be in 0..255")
	}
	h.engine.SetNote(uint8(n))
	return 0
}

func (h *ScriptHost) luaFreq(L *lua.LState) int {
	h.engine.SetFrequency(checkFloat(L, 1))
	return 0
}

func (h *ScriptHost) luaWave(L *lua.LState) int {
	h.engine.SetWaveform(checkOsc(L, 1), L.CheckString(2))
	return 0
}

func (h *ScriptHost) luaGain(L *lua.LState) int {
	h.engine.SetGain(checkOsc(L, 1), checkFloat(L, 2))
	return 0
}

func (h *ScriptHost) luaBypass(L *lua.LState) int {
	h.engine.SetBypass(checkOsc(L, 1), checkFloat(L, 2))
	return 0
}

func (h *ScriptHost) luaRatio(L *lua.LState) int {
	h.engine.SetFrequencyRatio(checkOsc(L, 1), checkFloat(L, 2))
	return 0
}

func (h *ScriptHost) luaFM(L *lua.LState) int {
	h.engine.SetFMCoefficient(checkPath(L, 1), checkFloat(L, 2))
	return 0
}

func (h *ScriptHost) luaMaster(L *lua.LState) int {
	h.engine.SetMasterGain(checkFloat(L, 1))
	return 0
}

func (h *ScriptHost) luaSleep(L *lua.LState) int {
	ms := L.CheckNumber(1)
	if ms <= 0 {
		return 0
	}
	ctx := L.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	timer := time.NewTimer(time.Duration(float64(ms) * float64(time.Millisecond)))
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		L.RaiseError("sleep interrupted: %v", ctx.Err())
	}
	return 0
}

func (h *ScriptHost) luaBaseFreq(L *lua.LState) int {
	L.Push(lua.LNumber(h.engine.BaseFrequency()))
	return 1
}

func (h *ScriptHost) luaPathGain(L *lua.LState) int {
	L.Push(lua.LNumber(h.engine.PathGain(checkPath(L, 1))))
	return 1
}

func (h *ScriptHost) luaBufferLength(L *lua.LState) int {
	L.Push(lua.LNumber(h.engine.BufferLength()))
	return 1
}
