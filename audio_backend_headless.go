// audio_backend_headless.go - Device-free backends

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package fmsynth

import (
	"sync"
	"time"
)

const headlessBlockDuration = 10 * time.Millisecond

// HeadlessPlayer renders in real time on its own goroutine and discards
// the output, standing in for a device in CI and for the scope viewer.
type HeadlessPlayer struct {
	src       SampleSource
	blockSize int
	started   bool
	closed    bool
	stopCh    chan struct{}
	done      chan struct{}
	mutex     sync.Mutex
}

func NewHeadlessPlayer(sampleRate int, src SampleSource) *HeadlessPlayer {
	return &HeadlessPlayer{
		src:       src,
		blockSize: max(1, int(int64(sampleRate)*int64(headlessBlockDuration)/int64(time.Second))),
	}
}

func (hp *HeadlessPlayer) Start() {
	hp.mutex.Lock()
	defer hp.mutex.Unlock()

	if hp.started || hp.closed {
		return
	}
	hp.started = true
	hp.stopCh = make(chan struct{})
	hp.done = make(chan struct{})
	go hp.run(hp.stopCh, hp.done)
}

func (hp *HeadlessPlayer) run(stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	buf := make([]float32, hp.blockSize)
	ticker := time.NewTicker(headlessBlockDuration)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			hp.src.Render(buf)
		}
	}
}

func (hp *HeadlessPlayer) Stop() {
	hp.mutex.Lock()
	defer hp.mutex.Unlock()

	if !hp.started {
		return
	}
	close(hp.stopCh)
	<-hp.done
	hp.started = false
}

func (hp *HeadlessPlayer) Close() {
	hp.Stop()
	hp.mutex.Lock()
	hp.closed = true
	hp.mutex.Unlock()
}

func (hp *HeadlessPlayer) IsStarted() bool {
	hp.mutex.Lock()
	defer hp.mutex.Unlock()
	return hp.started
}

// NullOutput has no render goroutine; the host drives SynthEngine.Render
// itself (tests, offline rendering).
type NullOutput struct {
	started bool
	mutex   sync.Mutex
}

func (n *NullOutput) Start() {
	n.mutex.Lock()
	n.started = true
	n.mutex.Unlock()
}

func (n *NullOutput) Stop() {
	n.mutex.Lock()
	n.started = false
	n.mutex.Unlock()
}

func (n *NullOutput) Close() {
	n.Stop()
}

func (n *NullOutput) IsStarted() bool {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return n.started
}
