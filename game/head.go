package game

// HeadTarget is the smoothed head estimate the ball bounces off. It is not a
// Body: there is no physics history, only the latest exponentially smoothed
// circle. When the detector misses a frame the previous value simply stays.
type HeadTarget struct {
	Position Vec2
	Radius   float64

	seen bool
}

// Observe folds one raw detection into the smoothed estimate. The first
// observation snaps directly so the head does not glide in from the origin;
// after that both center and radius lerp toward the raw value.
func (h *HeadTarget) Observe(center Vec2, radius, smoothing float64) {
	if !h.seen {
		h.Position = center
		h.Radius = radius
		h.seen = true
		return
	}
	h.Position = h.Position.Lerp(center, smoothing)
	h.Radius += (radius - h.Radius) * smoothing
}

// Seen reports whether at least one detection has ever been observed.
func (h *HeadTarget) Seen() bool {
	return h.seen
}
