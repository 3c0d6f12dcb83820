//go:build !unix && !windows

package main

import (
	"errors"
	"runtime"
)

type KeyboardHost struct{}

func NewKeyboardHost(onKey func(keyEvent)) *KeyboardHost {
	return &KeyboardHost{}
}

func (h *KeyboardHost) Start() error {
	return errors.New("no raw keyboard on " + runtime.GOOS)
}

func (h *KeyboardHost) Stop() {}
