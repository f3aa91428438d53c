package game

// Body is a point mass advanced with position Verlet: velocity is implied by
// the gap between the current and previous position, so a teleport that
// resyncs both never injects a spurious impulse.
type Body struct {
	Position Vec2

	previous Vec2
	hasPrev  bool
}

// Integrate advances the body by one tick. The implied velocity is damped by
// friction, then the force producer is invoked once and its output added to
// the position. A body with no history (fresh or just teleported without one)
// moves by exactly the force output.
func (b *Body) Integrate(friction float64, force func() Vec2) {
	prev := b.Position
	if b.hasPrev {
		vel := b.Position.Sub(b.previous).Mul(1 - friction)
		b.Position = b.Position.Add(vel)
	}
	b.Position = b.Position.Add(force())
	b.previous = prev
	b.hasPrev = true
}

// Teleport moves the body to p with zero implied velocity.
func (b *Body) Teleport(p Vec2) {
	b.Position = p
	b.previous = p
	b.hasPrev = true
}

// Velocity reports the displacement of the last integration step.
func (b *Body) Velocity() Vec2 {
	if !b.hasPrev {
		return Vec2{}
	}
	return b.Position.Sub(b.previous)
}
