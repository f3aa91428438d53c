package game

// Config holds the fixed tuning constants of a match. These are not meant to
// be user-configurable; DefaultConfig is the game as designed.
type Config struct {
	// SceneWidth is the playfield width in pixels
	SceneWidth float64

	// SceneHeight is the playfield height in pixels
	SceneHeight float64

	// BallRadius is the ball's collision radius in pixels
	BallRadius float64

	// Friction is the fraction of implied velocity lost per tick
	Friction float64

	// Bounce scales repulsion strength per pixel of overlap
	Bounce float64

	// Gravity is the constant per-tick force on free bodies
	Gravity Vec2

	// MinDistance is the ball/head surface gap that must be exceeded
	// between two consecutive juggles for the second one to count
	MinDistance float64

	// StickyTicks is the grace period after loading completes
	StickyTicks int

	// StickyTicksAfterDrop is the longer grace period after a drop
	StickyTicksAfterDrop int

	// DroppedTicks is how long the final score stays on screen
	DroppedTicks int

	// HeadSmoothing is the lerp factor from the smoothed head estimate
	// toward each raw detection
	HeadSmoothing float64

	// LabelFade is the per-frame opacity blend of the floating counter
	// label toward zero
	LabelFade float64
}

// DefaultConfig returns the fixed game tuning.
func DefaultConfig() Config {
	return Config{
		SceneWidth:           640,
		SceneHeight:          480,
		BallRadius:           45,
		Friction:             0.005,
		Bounce:               0.1,
		Gravity:              Vec2{0, 0.2},
		MinDistance:          50,
		StickyTicks:          180, // 3s at 60fps
		StickyTicksAfterDrop: 240,
		DroppedTicks:         180,
		HeadSmoothing:        0.3,
		LabelFade:            0.04,
	}
}
