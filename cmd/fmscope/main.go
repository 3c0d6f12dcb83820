// main.go - Oscilloscope and spectrum viewer for the FM synthesizer

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/intuitionamiga/fmsynth"
)

func main() {
	var (
		backend string
		note    uint
		wave2   string
		fm21    float64
		fftSize int
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&backend, "backend", "oto", "Audio backend: oto or headless")
	flagSet.UintVar(&note, "note", fmsynth.DEFAULT_NOTE, "Initial note number (0-255)")
	flagSet.StringVar(&wave2, "wave2", "sin", "Oscillator 2 waveform")
	flagSet.Float64Var(&fm21, "fm21", 0, "FM index, oscillator 2 into oscillator 1")
	flagSet.IntVar(&fftSize, "fft", fmsynth.DEFAULT_FFT_SIZE, "Analyser window size (power of two)")
	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./fmscope [-backend oto|headless] [-note 50] [-wave2 saw] [-fm21 1]")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cfg := fmsynth.DefaultConfig()
	cfg.FFTSize = fftSize
	var err error
	if cfg.Backend, err = fmsynth.ParseBackend(backend); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Backend == fmsynth.AUDIO_BACKEND_NULL {
		// Nothing would drive Render and the traces would stay flat
		cfg.Backend = fmsynth.AUDIO_BACKEND_HEADLESS
	}

	engine, err := fmsynth.NewSynthEngine(cfg)
	if err != nil {
		fmt.Printf("Failed to initialize synth: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	engine.SetWaveform(fmsynth.Osc2, wave2)
	engine.SetFMCoefficient(fmsynth.PathTwoToOne, float32(fm21))
	engine.SetNote(uint8(min(note, 255)))

	scope := NewScope(engine)
	ebiten.SetWindowSize(SCOPE_WIDTH, SCOPE_HEIGHT)
	ebiten.SetWindowTitle("fmscope (c) 2024 - 2026 Zayn Otley")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	if err := ebiten.RunGame(scope); err != nil && err != ebiten.Termination {
		fmt.Printf("Display error: %v\n", err)
	}
}
