// scope.go - ebiten game drawing analyser snapshots

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/fmsynth
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/intuitionamiga/fmsynth"
	"golang.org/x/image/font/basicfont"
)

const (
	SCOPE_WIDTH  = 800
	SCOPE_HEIGHT = 600
	SCOPE_MARGIN = 16
	LABEL_HEIGHT = 18
)

var (
	backgroundColor = color.RGBA{16, 16, 24, 255}
	gridColor       = color.RGBA{48, 48, 64, 255}
	waveColor       = color.RGBA{0, 220, 90, 255}
	spectrumColor   = color.RGBA{255, 110, 147, 255}
	labelColor      = color.RGBA{190, 190, 190, 255}
)

// Scope polls the engine's analyser once per frame and draws the time
// domain in the top half and the spectrum in the bottom half.
type Scope struct {
	engine   *fmsynth.SynthEngine
	timeBuf  []uint8
	freqBuf  []uint8
	lastNote uint8
}

func NewScope(e *fmsynth.SynthEngine) *Scope {
	return &Scope{engine: e, lastNote: fmsynth.DEFAULT_NOTE}
}

func (s *Scope) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if note, ok := fmsynth.KeyToNote(r, fmsynth.DEFAULT_NOTE); ok {
			s.engine.SetNote(note)
			s.lastNote = note
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.nudgeFM(0.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.nudgeFM(-0.1)
	}
	s.timeBuf = s.engine.SnapshotTimeDomain()
	s.freqBuf = s.engine.SnapshotFrequencyDomain()
	return nil
}

func (s *Scope) nudgeFM(delta float32) {
	c := s.engine.Matrix().Coefficient(fmsynth.PathTwoToOne) + delta
	s.engine.SetFMCoefficient(fmsynth.PathTwoToOne, c)
}

func (s *Scope) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	top, bottom := panels(w, h)

	drawPanel(screen, top, s.timeBuf, waveColor)
	drawPanel(screen, bottom, s.freqBuf, spectrumColor)

	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("note %d  %.2f Hz  fm2->1 %.2f",
		s.lastNote, s.engine.BaseFrequency(), s.engine.Matrix().Coefficient(fmsynth.PathTwoToOne)),
		face, top.x, top.y-4, labelColor)
	text.Draw(screen, fmt.Sprintf("spectrum  %d bins", len(s.freqBuf)), face, bottom.x, bottom.y-4, labelColor)
}

func (s *Scope) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func drawPanel(screen *ebiten.Image, r panel, data []uint8, c color.Color) {
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, gridColor, false)
	pts := tracePoints(data, r)
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(screen, pts[i-1].x, pts[i-1].y, pts[i].x, pts[i].y, 1, c, true)
	}
}
