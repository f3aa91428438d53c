package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Color constants
var (
	colorBackground = color.NRGBA{R: 24, G: 96, B: 52, A: 255}
	colorHeadRing   = color.NRGBA{R: 255, G: 255, B: 255, A: 90}
	colorBall       = color.NRGBA{R: 240, G: 240, B: 235, A: 255}
	colorText       = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
)

// drawPlayfield renders the head target, the ball, and the floating counter
// label in playfield coordinates (the layout is 1:1 with the screen).
func (s *Scene) drawPlayfield(screen *ebiten.Image) {
	m := s.match

	if m.Head.Seen() {
		vector.StrokeCircle(screen,
			float32(m.Head.Position.X), float32(m.Head.Position.Y),
			float32(m.Head.Radius), 2, colorHeadRing, true)
	}

	s.drawBall(screen)
	s.drawLabel(screen)
}

func (s *Scene) drawBall(screen *ebiten.Image) {
	ball := &s.match.Ball

	if ballSprite == nil {
		vector.DrawFilledCircle(screen,
			float32(ball.Position.X), float32(ball.Position.Y),
			float32(ball.Radius), colorBall, true)
		return
	}

	bounds := ballSprite.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(2*ball.Radius/w, 2*ball.Radius/h)
	op.GeoM.Rotate(ball.Rotation)
	op.GeoM.Translate(ball.Position.X, ball.Position.Y)
	screen.DrawImage(ballSprite, op)
}

func (s *Scene) drawLabel(screen *ebiten.Image) {
	label := &s.match.Label
	if label.Opacity < 0.01 {
		return // faded out, skip the draw call
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Rotate(label.Rotation)
	op.GeoM.Translate(label.Position.X, label.Position.Y)
	op.ColorScale.ScaleWithColor(colorText)
	op.ColorScale.ScaleAlpha(float32(label.Opacity))
	text.DrawWithOptions(screen, label.Text, basicfont.Face7x13, op)
}
