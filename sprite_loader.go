package main

import (
	"bytes"
	_ "embed"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/ball.svg
var ballSVGData []byte

var (
	ballSprite     *ebiten.Image
	ballSpriteSize = 96
)

// initSprites rasterizes the embedded SVG assets.
func initSprites() error {
	img, err := svgToImage(ballSVGData, ballSpriteSize, ballSpriteSize)
	if err != nil {
		return err
	}
	ballSprite = ebiten.NewImageFromImage(img)
	return nil
}

// svgToImage rasterizes SVG data at the given pixel size.
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return img, nil
}
