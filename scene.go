package main

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/GMartigny/jogabonito/game"
)

// Scene adapts a game.Match to ebiten's frame loop. All game state lives in
// the match; the scene only steps and draws it.
type Scene struct {
	match *game.Match
}

func (s *Scene) Update() error {
	s.match.Step(context.Background())
	return nil
}

func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s.drawPlayfield(screen)
	s.drawHUD(screen)
}

func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := s.match.Config()
	return int(cfg.SceneWidth), int(cfg.SceneHeight)
}
