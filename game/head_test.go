package game

import (
	"math"
	"testing"
)

func TestObserveSnapsOnFirstDetection(t *testing.T) {
	var h HeadTarget
	h.Observe(Vec2{100, 120}, 50, 0.3)

	if h.Position != (Vec2{100, 120}) || h.Radius != 50 {
		t.Fatalf("first observation smoothed to %+v r=%f, want exact", h.Position, h.Radius)
	}
}

func TestObserveLerpsTowardRawDetection(t *testing.T) {
	var h HeadTarget
	h.Observe(Vec2{100, 100}, 50, 0.3)
	h.Observe(Vec2{200, 100}, 60, 0.3)

	if math.Abs(h.Position.X-130) > 1e-9 || h.Position.Y != 100 {
		t.Fatalf("smoothed center = %+v, want {130 100}", h.Position)
	}
	if math.Abs(h.Radius-53) > 1e-9 {
		t.Fatalf("smoothed radius = %f, want 53", h.Radius)
	}
}

func TestObserveConvergesToStationaryTarget(t *testing.T) {
	var h HeadTarget
	h.Observe(Vec2{0, 0}, 40, 0.3)
	for i := 0; i < 100; i++ {
		h.Observe(Vec2{300, 200}, 70, 0.3)
	}

	if h.Position.Distance(Vec2{300, 200}) > 0.01 {
		t.Fatalf("center failed to converge: %+v", h.Position)
	}
	if math.Abs(h.Radius-70) > 0.01 {
		t.Fatalf("radius failed to converge: %f", h.Radius)
	}
}
