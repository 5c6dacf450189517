package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// EventKind classifies something noteworthy that happened inside a game.
type EventKind string

const (
	EventRestart EventKind = "restart" // simulation was reset after a rule violation
	EventGrowth  EventKind = "growth"  // an entity grew (fruit eaten)
	EventFocus   EventKind = "focus"   // a board cell gained focus
	EventBlur    EventKind = "blur"    // focus was cleared
)

// Event is reported by games to the platform, which only logs it.
type Event struct {
	Kind   EventKind
	Reason string // Short machine-friendly cause, e.g. "wall"
	At     Point  // Where it happened (grid coordinates)
}

// StepResult is returned by a game after each update.
// Contains any events that occurred during the call.
type StepResult struct {
	Events []Event
}

// Control documents one key binding for the help footer.
type Control struct {
	Keys string // e.g. "w/a/s/d"
	Help string // e.g. "move"
}
