// main.go - Command-line host for the FM synthesizer engine

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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/intuitionamiga/fmsynth"
)

// Version is set at link time with -ldflags "-X main.Version=...".
var Version = "dev"

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m █████  ██   █▓   ███▓  ██  ▓█  ██   ██  █▓████  ▓█  ██\033[0m\n\033[38;2;255;55;147m ██     ███ █▓█  ██      ██▓█   ██▓  ██    ██    ██  ██\033[0m\n\033[38;2;255;90;147m ████   ██ █ ██   █▓█     ▓█    █▓ █ ██    ██    █████▓\033[0m\n\033[38;2;255;125;147m ██     ██   ██     ██    ██    ▓█  ███    ██    ██  ▓█\033[0m\n\033[38;2;255;160;147m ██     ██   ██  ▓███     ██    ██   █▓    ██    ██  ██\033[0m\n\033[38;2;255;195;147m ▒▒     ▒▒   ▒▒  ▒▒▒▒     ▒▒    ▒▒   ▒▒    ▒▒    ▒▒  ▒▒\033[0m\n\033[38;2;255;230;147m ░░     ░░   ░░  ░░░░     ░░    ░░   ░░    ░░    ░░  ░░\033[0m")
	fmt.Println("\nA two-operator FM synthesizer with a live spectrum tap.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/fmsynth")
	fmt.Println("License: GPLv3 or later")
}

type options struct {
	backend string
	note    uint
	wave    [2]string
	gain    [2]float64
	bypass  [2]float64
	ratio2  float64
	fm      [4]float64
	master  float64
	fftSize int
	seed    string
	script  string
	render  string
	seconds float64
	verbose bool
	version bool
}

func parseFlags(args []string) (*options, error) {
	o := &options{}
	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&o.backend, "backend", "oto", "Audio backend: oto, headless or null")
	flagSet.UintVar(&o.note, "note", fmsynth.DEFAULT_NOTE, "Initial note number (0-255, 69 = A4)")
	flagSet.StringVar(&o.wave[fmsynth.Osc1], "wave1", "sin", "Oscillator 1 waveform: sin, tri, sqr, saw, custom")
	flagSet.StringVar(&o.wave[fmsynth.Osc2], "wave2", "sin", "Oscillator 2 waveform: sin, tri, sqr, saw, custom")
	flagSet.Float64Var(&o.gain[fmsynth.Osc1], "gain1", fmsynth.DEFAULT_OSC1_GAIN, "Oscillator 1 wet gain (0-1)")
	flagSet.Float64Var(&o.gain[fmsynth.Osc2], "gain2", fmsynth.DEFAULT_OSC2_GAIN, "Oscillator 2 wet gain (0-1)")
	flagSet.Float64Var(&o.bypass[fmsynth.Osc1], "bypass1", 0, "Oscillator 1 dry gain (0-1)")
	flagSet.Float64Var(&o.bypass[fmsynth.Osc2], "bypass2", 0, "Oscillator 2 dry gain (0-1)")
	flagSet.Float64Var(&o.ratio2, "ratio2", 1, "Oscillator 2 frequency as a multiple of the base")
	flagSet.Float64Var(&o.fm[fmsynth.PathOneToOne], "fm11", 0, "FM index, oscillator 1 into itself")
	flagSet.Float64Var(&o.fm[fmsynth.PathOneToTwo], "fm12", 0, "FM index, oscillator 1 into oscillator 2")
	flagSet.Float64Var(&o.fm[fmsynth.PathTwoToOne], "fm21", 0, "FM index, oscillator 2 into oscillator 1")
	flagSet.Float64Var(&o.fm[fmsynth.PathTwoToTwo], "fm22", 0, "FM index, oscillator 2 into itself")
	flagSet.Float64Var(&o.master, "master", fmsynth.DEFAULT_MASTER_GAIN, "Master gain (0-1)")
	flagSet.IntVar(&o.fftSize, "fft", fmsynth.DEFAULT_FFT_SIZE, "Analyser window size (power of two)")
	flagSet.StringVar(&o.seed, "seed", "", "WAV file whose spectrum seeds the custom waveform")
	flagSet.StringVar(&o.script, "script", "", "Lua script to run against the engine")
	flagSet.StringVar(&o.render, "render", "", "Render offline to this WAV file and exit")
	flagSet.Float64Var(&o.seconds, "seconds", 2, "Offline render length")
	flagSet.BoolVar(&o.verbose, "v", false, "Log engine events to stderr")
	flagSet.BoolVar(&o.version, "version", false, "Print version and compiled features")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./fmsynth [-note 50] [-wave1 sin] [-wave2 saw -gain2 0 -fm21 2] [-seed cycle.wav] [-script patch.lua] [-render out.wav -seconds 2]")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	if o.note > 255 {
		return nil, fmt.Errorf("note %d out of range 0-255", o.note)
	}
	return o, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if opts.version {
		printFeatures()
		return
	}

	boilerPlate()

	cfg := fmsynth.DefaultConfig()
	cfg.FFTSize = opts.fftSize
	if opts.verbose {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if opts.render != "" {
		cfg.Backend = fmsynth.AUDIO_BACKEND_NULL
	} else if cfg.Backend, err = fmsynth.ParseBackend(opts.backend); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if opts.seed != "" {
		if cfg.CustomSeed, err = fmsynth.LoadWAV(opts.seed); err != nil {
			fmt.Printf("Error loading seed: %v\n", err)
			os.Exit(1)
		}
	}

	engine, err := fmsynth.NewSynthEngine(cfg)
	if err != nil {
		fmt.Printf("Failed to initialize synth: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	applyOptions(engine, opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.script != "" {
		host := fmsynth.NewScriptHost(engine)
		err := host.RunFile(ctx, opts.script)
		host.Close()
		if err != nil {
			fmt.Printf("Script error: %v\n", err)
			engine.Close()
			os.Exit(1)
		}
	}

	if opts.render != "" {
		if err := engine.RenderWAV(opts.render, opts.seconds); err != nil {
			fmt.Printf("Render failed: %v\n", err)
			engine.Close()
			os.Exit(1)
		}
		fmt.Printf("Wrote %.2fs to %s\n", opts.seconds, opts.render)
		return
	}

	fmt.Printf("Playing at %.2f Hz via %s. Ctrl-C to quit.\n", engine.BaseFrequency(), opts.backend)
	runKeyboard(ctx, engine)
}

func applyOptions(e *fmsynth.SynthEngine, o *options) {
	for _, id := range []fmsynth.OscID{fmsynth.Osc1, fmsynth.Osc2} {
		e.SetWaveform(id, o.wave[id])
		e.SetGain(id, float32(o.gain[id]))
		e.SetBypass(id, float32(o.bypass[id]))
	}
	e.SetFrequencyRatio(fmsynth.Osc2, float32(o.ratio2))
	for _, p := range []fmsynth.PathID{fmsynth.PathOneToOne, fmsynth.PathOneToTwo, fmsynth.PathTwoToOne, fmsynth.PathTwoToTwo} {
		e.SetFMCoefficient(p, float32(o.fm[p]))
	}
	e.SetMasterGain(float32(o.master))
	e.SetNote(uint8(o.note))
}
