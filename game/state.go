package game

// Phase is the juggle state machine. Exactly one variant is live at any tick
// and each variant carries only the fields that mean something in it, so the
// invalid combinations a flag-and-counter record would allow cannot be
// expressed at all.
//
//	Loading -> Sticky -> Active -> Dropped -> Sticky -> ...
type Phase interface {
	phase()
}

// Loading lasts until the external detector signals readiness. Nothing is
// simulated; the front end shows its instructional prompt. If the camera can
// never be acquired the match stays here forever.
type Loading struct{}

// Sticky is the grace countdown after loading or a drop: the ball is held at
// top-center, collision and gravity are off.
type Sticky struct {
	TicksLeft int
}

// Active is normal play.
type Active struct {
	// JuggleCount is the running score
	JuggleCount int

	// Furthest is the widest ball/head surface gap observed since the
	// last registered juggle
	Furthest float64
}

// Dropped shows the final score for a fixed time before everything resets.
type Dropped struct {
	TicksLeft  int
	FinalCount int
}

func (Loading) phase() {}
func (Sticky) phase()  {}
func (Active) phase()  {}
func (Dropped) phase() {}

// Ready leaves Loading once the detector is up.
func (Loading) Ready(stickyTicks int) Phase {
	return Sticky{TicksLeft: stickyTicks}
}

// Tick counts the grace period down and enters active play when it expires.
func (s Sticky) Tick() Phase {
	if s.TicksLeft <= 1 {
		return Active{}
	}
	return Sticky{TicksLeft: s.TicksLeft - 1}
}

// Seconds is the whole seconds remaining, rounded up for display.
func (s Sticky) Seconds() int {
	return (s.TicksLeft + ticksPerSecond - 1) / ticksPerSecond
}

const ticksPerSecond = 60

// Juggle registers one head bounce: the count goes up and the separation
// tracking starts over.
func (a Active) Juggle() Active {
	return Active{JuggleCount: a.JuggleCount + 1}
}

// Drop ends play with the achieved count frozen for display.
func (a Active) Drop(droppedTicks int) Phase {
	return Dropped{TicksLeft: droppedTicks, FinalCount: a.JuggleCount}
}

// Tick counts the score screen down and starts the next round's grace
// period when it expires. The juggle count does not survive the reset.
func (d Dropped) Tick(stickyTicks int) Phase {
	if d.TicksLeft <= 1 {
		return Sticky{TicksLeft: stickyTicks}
	}
	return Dropped{TicksLeft: d.TicksLeft - 1, FinalCount: d.FinalCount}
}
