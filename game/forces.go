package game

// repulsion returns the force pushing a body at pos away from other when the
// two are closer than field. The magnitude grows linearly with overlap depth
// and is zero at exact touch. A zero separation is degenerate (no direction
// to push along) and yields no force rather than dividing by zero.
func repulsion(pos, other Vec2, field, bounce float64) Vec2 {
	dist := pos.Distance(other)
	if dist >= field || dist == 0 {
		return Vec2{}
	}
	return other.Sub(pos).Div(dist).Mul(bounce * (field - dist)).Mul(-1)
}

// forces aggregates every applicable contribution on the ball for one tick.
// This is the producer the Verlet integrator invokes.
//
//   - head repulsion, only during active play
//   - left, right and bottom wall repulsion (there is no top wall: the ball
//     may fly above the visible area), only during active play
//   - gravity, except during the sticky grace period
func (m *Match) forces() Vec2 {
	var f Vec2

	switch m.phase.(type) {
	case Active:
		if m.Head.Seen() {
			f = f.Add(repulsion(m.Ball.Position, m.Head.Position, m.Ball.Radius+m.Head.Radius, m.cfg.Bounce))
		}
		f = f.Add(m.wallForces())
		f = f.Add(m.cfg.Gravity)
	case Dropped:
		// Collision is off while the score screen runs; the ball keeps
		// falling out of view.
		f = f.Add(m.cfg.Gravity)
	}

	return f
}

// wallForces sums the repulsion of the three playfield walls. Each wall is
// treated as a point at the ball's perpendicular foot, so the generic circle
// repulsion applies with the ball's own radius as the field. Simultaneous
// contacts (corners) sum their contributions.
func (m *Match) wallForces() Vec2 {
	pos := m.Ball.Position
	r := m.Ball.Radius
	bounce := m.cfg.Bounce

	var f Vec2
	f = f.Add(repulsion(pos, Vec2{0, pos.Y}, r, bounce))                 // left
	f = f.Add(repulsion(pos, Vec2{m.cfg.SceneWidth, pos.Y}, r, bounce))  // right
	f = f.Add(repulsion(pos, Vec2{pos.X, m.cfg.SceneHeight}, r, bounce)) // bottom
	return f
}
