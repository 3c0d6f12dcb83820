//go:build windows

// keyboard_host_windows.go - Raw console key reader for the keyboard piano

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// Console focus and mouse records signal the input handle without giving
// ReadFile anything to return, so a read can still block after a wait
// succeeds. Stop waits this long for the reader before giving up on it.
const keyStopGrace = 200 * time.Millisecond

// KeyboardHost puts the console in raw mode (which also turns arrow keys
// into VT sequences) and delivers decoded key events to onKey from its
// own goroutine.
type KeyboardHost struct {
	onKey   func(keyEvent)
	decoder keyDecoder
	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once
	fd      int
	saved   *term.State
}

func NewKeyboardHost(onKey func(keyEvent)) *KeyboardHost {
	return &KeyboardHost{
		onKey:  onKey,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (h *KeyboardHost) Start() error {
	h.fd = int(os.Stdin.Fd())
	saved, err := term.MakeRaw(h.fd)
	if err != nil {
		close(h.done)
		return fmt.Errorf("raw mode: %w", err)
	}
	h.saved = saved
	go h.run()
	return nil
}

func (h *KeyboardHost) run() {
	defer close(h.done)
	handle := windows.Handle(h.fd)
	buf := make([]byte, keyReadBatch)

	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		event, err := windows.WaitForSingleObject(handle, keyPollMillis)
		if err != nil {
			return
		}
		if event == uint32(windows.WAIT_TIMEOUT) {
			continue
		}

		r, err := os.Stdin.Read(buf)
		for _, ev := range h.decoder.feed(buf[:r]) {
			h.onKey(ev)
		}
		if err != nil {
			return
		}
	}
}

// Stop restores the console. A reader stuck in ReadFile (see keyStopGrace)
// is left to exit on the next key press; its events arrive after Stop and
// only touch engine setters, which stay safe after Close.
func (h *KeyboardHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
		select {
		case <-h.done:
		case <-time.After(keyStopGrace):
		}
		if h.saved != nil {
			_ = term.Restore(h.fd, h.saved)
		}
	})
}
