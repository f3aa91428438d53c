package detect

import (
	"context"
	"testing"
)

func TestScriptProducesBoxPerTick(t *testing.T) {
	s, err := NewScript(`function head(t) { return {x: t * 10, y: 50, w: 80, h: 100}; }`)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}

	box, found, err := s.Detect(context.Background())
	if err != nil || !found {
		t.Fatalf("first detect: found=%v err=%v", found, err)
	}
	cx, cy := box.Center()
	if cx != 40 || cy != 100 {
		t.Fatalf("center = (%f, %f), want (40, 100)", cx, cy)
	}
	if r := box.Radius(); r != 50 {
		t.Fatalf("radius = %f, want 50", r)
	}

	box, _, _ = s.Detect(context.Background())
	if box.Left != 10 {
		t.Fatalf("second tick left = %f, want 10", box.Left)
	}
}

func TestScriptNullMeansNoFace(t *testing.T) {
	s, err := NewScript(`function head(t) { return t % 2 === 0 ? {x: 0, y: 0, w: 10, h: 10} : null; }`)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}

	if _, found, err := s.Detect(context.Background()); !found || err != nil {
		t.Fatalf("even tick: found=%v err=%v", found, err)
	}
	if _, found, err := s.Detect(context.Background()); found || err != nil {
		t.Fatalf("odd tick: found=%v err=%v, want miss without error", found, err)
	}
}

func TestScriptWithoutHeadFunctionIsRejected(t *testing.T) {
	if _, err := NewScript(`var nothing = 1;`); err == nil {
		t.Fatalf("expected error for script without head(t)")
	}
}

func TestScriptMalformedResultIsAnError(t *testing.T) {
	s, err := NewScript(`function head(t) { return {x: 1, y: 2}; }`)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if _, _, err := s.Detect(context.Background()); err == nil {
		t.Fatalf("expected error for box missing w/h")
	}
}
