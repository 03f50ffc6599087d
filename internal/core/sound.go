package core

// Sound is an audio cue a game raises for the platform to play.
type Sound uint8

const (
	SoundNone Sound = iota
	SoundLaunch
	SoundExplosion
	SoundCollision
	SoundPickup
	SoundUI
	SoundGameOver
)

// String returns a human-readable name for the cue.
func (s Sound) String() string {
	switch s {
	case SoundLaunch:
		return "launch"
	case SoundExplosion:
		return "explosion"
	case SoundCollision:
		return "collision"
	case SoundPickup:
		return "pickup"
	case SoundUI:
		return "ui"
	case SoundGameOver:
		return "game-over"
	default:
		return "none"
	}
}

// SoundSink plays cues. Implementations must not block the caller.
type SoundSink interface {
	Play(s Sound)
}

// SilentSink discards every cue.
type SilentSink struct{}

// Play does nothing.
func (SilentSink) Play(Sound) {}
