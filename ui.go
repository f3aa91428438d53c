package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/GMartigny/jogabonito/game"
)

const promptText = "Allow camera access and keep your head in view"

// drawHUD renders the phase-dependent chrome: the instructional prompt, the
// sticky countdown, the live counter, or the final score card.
func (s *Scene) drawHUD(screen *ebiten.Image) {
	cfg := s.match.Config()

	switch p := s.match.Phase().(type) {
	case game.Loading:
		s.drawCentered(screen, promptText, cfg.SceneHeight/2)
	case game.Sticky:
		s.drawCentered(screen, fmt.Sprintf("Ready in %d...", p.Seconds()), cfg.SceneHeight/2)
	case game.Active:
		text.Draw(screen, fmt.Sprintf("Juggles: %d", p.JuggleCount),
			basicfont.Face7x13, 12, 20, colorText)
	case game.Dropped:
		score := fmt.Sprintf("%d %s", p.FinalCount, game.ScoreEmoji(p.FinalCount))
		s.drawCentered(screen, score, cfg.SceneHeight/2)
	}

	if height, shown := s.match.Overhead(); shown {
		marker := fmt.Sprintf("^ %.0f", height)
		text.Draw(screen, marker, basicfont.Face7x13,
			int(s.match.Ball.Position.X), 16, colorText)
	}
}

// drawCentered draws one line horizontally centered at height y.
func (s *Scene) drawCentered(screen *ebiten.Image, line string, y float64) {
	cfg := s.match.Config()
	bound := text.BoundString(basicfont.Face7x13, line)
	x := (cfg.SceneWidth - float64(bound.Dx())) / 2
	text.Draw(screen, line, basicfont.Face7x13, int(x), int(y), colorText)
}
