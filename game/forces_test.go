package game

import (
	"math"
	"testing"
)

func TestRepulsionZeroAtExactTouch(t *testing.T) {
	f := repulsion(Vec2{0, 0}, Vec2{100, 0}, 100, 0.1)
	if f != (Vec2{}) {
		t.Fatalf("force at exact touch = %+v, want zero", f)
	}
}

func TestRepulsionGrowsWithOverlapAndPointsAway(t *testing.T) {
	const field, bounce = 100.0, 0.1
	other := Vec2{100, 0}

	var prev float64
	for _, d := range []float64{80, 60, 40, 20} {
		f := repulsion(Vec2{100 - d, 0}, other, field, bounce)
		if f.X >= 0 {
			t.Fatalf("at distance %f force.X = %f, want negative (away from other)", d, f.X)
		}
		mag := math.Hypot(f.X, f.Y)
		if mag <= prev {
			t.Fatalf("at distance %f magnitude = %f, want > %f", d, mag, prev)
		}
		prev = mag
	}
}

func TestRepulsionCoincidentIsNoOp(t *testing.T) {
	f := repulsion(Vec2{50, 50}, Vec2{50, 50}, 100, 0.1)
	if f != (Vec2{}) {
		t.Fatalf("force at zero separation = %+v, want zero", f)
	}
	if math.IsNaN(f.X) || math.IsNaN(f.Y) {
		t.Fatalf("zero separation produced NaN force")
	}
}

func TestWallForcesSumAtCorner(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMatch(cfg, nil)
	m.Ball.Teleport(Vec2{10, cfg.SceneHeight - 10})

	f := m.wallForces()
	if f.X <= 0 {
		t.Fatalf("corner force.X = %f, want positive (away from left wall)", f.X)
	}
	if f.Y >= 0 {
		t.Fatalf("corner force.Y = %f, want negative (away from floor)", f.Y)
	}
}

func TestForcesDisabledDuringSticky(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMatch(cfg, nil)
	m.phase = Sticky{TicksLeft: 10}
	m.Ball.Teleport(Vec2{cfg.SceneWidth / 2, cfg.SceneHeight / 2})

	if f := m.forces(); f != (Vec2{}) {
		t.Fatalf("sticky forces = %+v, want zero", f)
	}
}

func TestForcesActiveIsGravityAwayFromWalls(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMatch(cfg, nil)
	m.phase = Active{}
	m.Ball.Teleport(Vec2{cfg.SceneWidth / 2, cfg.SceneHeight / 2})

	// No head seen yet and no wall contact: gravity is the whole force.
	if f := m.forces(); f != cfg.Gravity {
		t.Fatalf("active mid-field forces = %+v, want %+v", f, cfg.Gravity)
	}
}

func TestForcesAddHeadRepulsionOnceSeen(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMatch(cfg, nil)
	m.phase = Active{}
	m.Ball.Teleport(Vec2{cfg.SceneWidth / 2, cfg.SceneHeight / 2})

	// Head overlapping from directly below: the aggregate force must gain
	// an upward push on top of gravity.
	m.Head.Observe(m.Ball.Position.Add(Vec2{0, 30}), 50, cfg.HeadSmoothing)

	f := m.forces()
	if f.Y >= cfg.Gravity.Y {
		t.Fatalf("force.Y = %f, want < gravity %f (head pushing up)", f.Y, cfg.Gravity.Y)
	}
	if f.X != cfg.Gravity.X {
		t.Fatalf("force.X = %f, want %f (vertical contact only)", f.X, cfg.Gravity.X)
	}
}

func TestForcesDroppedKeepsGravityDropsCollision(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMatch(cfg, nil)
	m.phase = Dropped{TicksLeft: 10}
	// Sitting on the floor: an active ball would be pushed back up, a
	// dropped one keeps falling out of view.
	m.Ball.Teleport(Vec2{cfg.SceneWidth / 2, cfg.SceneHeight})

	if f := m.forces(); f != cfg.Gravity {
		t.Fatalf("dropped forces = %+v, want pure gravity %+v", f, cfg.Gravity)
	}
}
