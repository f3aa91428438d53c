package game

import (
	"context"
	"math/rand"
	"time"
)

// Detection is one head estimate, already rescaled by the caller from
// detector source-frame coordinates to playfield coordinates.
type Detection struct {
	Center Vec2
	Radius float64
}

// Detector produces at most one head estimate per frame. found is false when
// no face was seen, which is normal steady-state behavior, not an error.
// Adapter failures reported through err are treated the same as a miss: the
// match keeps playing against the last smoothed head position.
type Detector interface {
	Detect(ctx context.Context) (d Detection, found bool, err error)
}

// DetectorFunc adapts a plain function to the Detector interface.
type DetectorFunc func(ctx context.Context) (Detection, bool, error)

// Detect implements Detector.
func (f DetectorFunc) Detect(ctx context.Context) (Detection, bool, error) {
	return f(ctx)
}

// Match owns all mutable game state and advances it once per rendered frame.
// Everything runs on the caller's goroutine; the detector query is the only
// suspension point and Step blocks on it, so detector calls never overlap.
type Match struct {
	Ball  Ball
	Head  HeadTarget
	Label FloatingLabel

	cfg      Config
	phase    Phase
	detector Detector
	rng      *rand.Rand

	overheadHeight float64
	overheadShown  bool
}

// NewMatch creates a match in the Loading phase with the ball parked at
// top-center.
func NewMatch(cfg Config, det Detector) *Match {
	m := &Match{
		cfg:      cfg,
		phase:    Loading{},
		detector: det,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	m.Ball.Radius = cfg.BallRadius
	m.Ball.Teleport(m.resetPosition())
	return m
}

// Phase returns the live state machine variant.
func (m *Match) Phase() Phase {
	return m.phase
}

// Config returns the match tuning.
func (m *Match) Config() Config {
	return m.cfg
}

// Overhead reports how far the ball is above the top edge, and whether the
// out-of-bounds marker should show at all.
func (m *Match) Overhead() (float64, bool) {
	return m.overheadHeight, m.overheadShown
}

// Ready signals that the external detector finished warming up. Before this
// is called Step does nothing, and if the camera can never be acquired it is
// simply never called.
func (m *Match) Ready() {
	if p, ok := m.phase.(Loading); ok {
		m.phase = p.Ready(m.cfg.StickyTicks)
	}
}

// Step advances the match by one rendered frame.
func (m *Match) Step(ctx context.Context) {
	// Loading gate: nothing happens until the detector is ready.
	if _, loading := m.phase.(Loading); loading {
		return
	}

	// Countdown phases. Leaving Dropped is the round reset: ball back to
	// top-center with no carried velocity, count back to zero (the fresh
	// Active variant starts at zero by construction).
	switch p := m.phase.(type) {
	case Sticky:
		m.phase = p.Tick()
	case Dropped:
		m.phase = p.Tick(m.cfg.StickyTicksAfterDrop)
		if _, reset := m.phase.(Sticky); reset {
			m.Ball.Teleport(m.resetPosition())
			m.Ball.Rotation = 0
		}
	}

	m.Label.fade(m.cfg.LabelFade)

	// Detector query, only during active play. A miss or an adapter error
	// leaves the smoothed head where it was and physics continues against
	// stale geometry.
	if p, ok := m.phase.(Active); ok {
		if d, found, err := m.detector.Detect(ctx); err == nil && found {
			m.Head.Observe(d.Center, d.Radius, m.cfg.HeadSmoothing)
			if gap := m.surfaceGap(); gap > p.Furthest {
				p.Furthest = gap
				m.phase = p
			}
		}
	}

	m.Ball.roll()

	topEdge := m.Ball.Position.Y + m.Ball.Radius
	m.overheadShown = topEdge < 0
	m.overheadHeight = -topEdge

	m.Ball.Integrate(m.cfg.Friction, m.forces)
	m.Label.Integrate(m.cfg.Friction, func() Vec2 { return m.cfg.Gravity })

	// Juggle and drop conditions are evaluated on the resulting geometry.
	if p, ok := m.phase.(Active); ok {
		if m.Head.Seen() && p.Furthest > m.cfg.MinDistance &&
			m.Ball.Position.Distance(m.Head.Position) < m.Ball.Radius+m.Head.Radius {
			p = p.Juggle()
			m.spawnLabel()
		}
		m.phase = p
		if m.Ball.Position.Y+m.Ball.Radius > m.cfg.SceneHeight {
			m.phase = p.Drop(m.cfg.DroppedTicks)
		}
	}
}

// surfaceGap is the gap between the ball and head surfaces, negative while
// they overlap.
func (m *Match) surfaceGap() float64 {
	return m.Ball.Position.Distance(m.Head.Position) - m.Ball.Radius - m.Head.Radius
}

func (m *Match) resetPosition() Vec2 {
	return Vec2{m.cfg.SceneWidth / 2, 0}
}

func (m *Match) spawnLabel() {
	mid := m.Ball.Position.Lerp(m.Head.Position, 0.5)
	spin := (m.rng.Float64() - 0.5) * 0.2
	m.Label.Spawn(mid, "+1", spin)
}
