//go:build unix

// keyboard_host.go - Raw stdin key reader for the keyboard piano

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

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// KeyboardHost puts the terminal in raw mode and delivers decoded key
// events to onKey from its own goroutine. Reads wait in poll(2) with a
// short timeout, so stdin stays blocking and Stop returns within one
// timeout.
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
	fds := []unix.PollFd{{Fd: int32(h.fd), Events: unix.POLLIN}}
	buf := make([]byte, keyReadBatch)

	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		n, err := unix.Poll(fds, keyPollMillis)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		if fds[0].Revents&unix.POLLIN == 0 {
			// Hangup or error on the terminal
			return
		}

		r, err := unix.Read(h.fd, buf)
		for _, ev := range h.decoder.feed(buf[:max(r, 0)]) {
			h.onKey(ev)
		}
		if err == unix.EINTR || err == unix.EAGAIN {
			continue
		}
		if err != nil || r == 0 {
			return
		}
	}
}

// Stop ends the reader and restores the terminal. Safe to call twice.
func (h *KeyboardHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
		<-h.done
		if h.saved != nil {
			_ = term.Restore(h.fd, h.saved)
		}
	})
}
