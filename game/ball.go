package game

// Ball is the juggled ball: a Verlet body with a fixed radius and a roll
// angle derived from horizontal motion.
type Ball struct {
	Body
	Radius   float64
	Rotation float64
}

// roll spins the ball proportionally to its last horizontal displacement.
func (b *Ball) roll() {
	b.Rotation += b.Velocity().X / b.Radius
}

// FloatingLabel is the decorative counter text that pops when a juggle
// registers. It falls under gravity like any other body, spins with the
// impulse it got at spawn, and fades toward invisible without ever being
// removed.
type FloatingLabel struct {
	Body
	Text     string
	Opacity  float64
	Rotation float64

	spin float64
}

// Spawn resets the label at p with full opacity and a fresh spin impulse.
func (l *FloatingLabel) Spawn(p Vec2, text string, spin float64) {
	l.Teleport(p)
	l.Text = text
	l.Opacity = 1
	l.spin = spin
}

// fade blends opacity toward zero and applies the spin. Asymptotic: the
// label becomes invisible but is never forcibly hidden.
func (l *FloatingLabel) fade(blend float64) {
	l.Opacity += (0 - l.Opacity) * blend
	l.Rotation += l.spin
}
