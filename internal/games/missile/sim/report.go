package sim

// Cause tags why a sound should be played.
type Cause uint8

const (
	CauseCollision Cause = iota // a hostile projectile hit a structure
	CauseExplosion              // a blast volume appeared
	CausePickup                 // a pickup was collected
	CauseLaunch                 // a defender projectile left its installation
	CauseUI                     // a state transition
	CauseGameOver
)

func (c Cause) String() string {
	switch c {
	case CauseCollision:
		return "collision"
	case CauseExplosion:
		return "explosion"
	case CausePickup:
		return "pickup"
	case CauseLaunch:
		return "launch"
	case CauseUI:
		return "ui"
	case CauseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Sound asks the audio collaborator to play a cue.
type Sound struct {
	Cause Cause
}

// ScoreChanged carries the cumulative score after a change.
type ScoreChanged struct {
	Total int
}

// AmmoChanged carries an installation's new ammunition count.
type AmmoChanged struct {
	Location Location
	Ammo     int
}

// Notice announces an entity appearing or disappearing.
type Notice struct {
	Handle  Handle
	Kind    Kind
	Team    Team
	Pos     Vec2
	Spawned bool
}

// Transition records a state change applied at the end of a tick.
type Transition struct {
	From State
	To   State
}

// Report is everything the presentation and audio collaborators need from
// one tick. Slices are freshly allocated per tick.
type Report struct {
	Tick         uint64
	State        State
	Transitions  []Transition
	ScoreChanges []ScoreChanged
	AmmoChanges  []AmmoChanged
	Notices      []Notice
	Sounds       []Sound
}
