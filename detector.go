package main

import (
	"context"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/GMartigny/jogabonito/detect"
	"github.com/GMartigny/jogabonito/game"
)

// Detector source frame defaults, overridable with JOGABONITO_SOURCE_W/H
// when the external detector works on a different capture resolution.
const (
	defaultSourceWidth  = 640.0
	defaultSourceHeight = 480.0
)

// noDetector is the stand-in when no head source could be acquired.
type noDetector struct{}

func (noDetector) Detect(context.Context) (game.Detection, bool, error) {
	return game.Detection{}, false, nil
}

// cursorDetector plays the head with the mouse, so the game runs without any
// detection service at all.
type cursorDetector struct {
	radius float64
}

func (d cursorDetector) Detect(context.Context) (game.Detection, bool, error) {
	x, y := ebiten.CursorPosition()
	return game.Detection{
		Center: game.Vec2{X: float64(x), Y: float64(y)},
		Radius: d.radius,
	}, true, nil
}

// scaledDetector rescales raw boxes from detector source-frame coordinates
// to playfield coordinates.
type scaledDetector struct {
	src    detect.Detector
	scaleX float64
	scaleY float64
}

func newScaledDetector(src detect.Detector, cfg game.Config) scaledDetector {
	return scaledDetector{
		src:    src,
		scaleX: cfg.SceneWidth / envFloat("JOGABONITO_SOURCE_W", defaultSourceWidth),
		scaleY: cfg.SceneHeight / envFloat("JOGABONITO_SOURCE_H", defaultSourceHeight),
	}
}

func (d scaledDetector) Detect(ctx context.Context) (game.Detection, bool, error) {
	box, found, err := d.src.Detect(ctx)
	if err != nil || !found {
		return game.Detection{}, false, err
	}
	cx, cy := box.Center()
	return game.Detection{
		Center: game.Vec2{X: cx * d.scaleX, Y: cy * d.scaleY},
		Radius: box.Radius() * (d.scaleX + d.scaleY) / 2,
	}, true, nil
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}
