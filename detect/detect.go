// Package detect carries head-detection results into the game. The actual
// face inference and camera acquisition run outside this process; the types
// here only adapt its output.
package detect

import (
	"context"
	"math"
)

// Box is a face bounding box in detector source-frame coordinates. Callers
// rescale to playfield coordinates before handing it to the game.
type Box struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the box midpoint.
func (b Box) Center() (x, y float64) {
	return b.Left + b.Width/2, b.Top + b.Height/2
}

// Radius returns the radius of the circle spanning the box's larger side.
func (b Box) Radius() float64 {
	return math.Max(b.Width, b.Height) / 2
}

// Detector yields the freshest face box, if any. A false found is the normal
// no-face-this-frame case, not an error.
type Detector interface {
	Detect(ctx context.Context) (box Box, found bool, err error)
}
