package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/missile-arcade/internal/core"
)

// maxVoices caps how many cues play at once; extra cues are dropped.
const maxVoices = 8

// Player mixes cues into the speaker. It satisfies core.SoundSink and
// never blocks the game loop.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	ready   bool
}

// NewPlayer creates a player at the given volume (0 to 1). Call Init before
// cues are audible.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: true,
	}
}

// Init opens the speaker. On machines without an audio device it returns
// an error and the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Play starts the cue for s.
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || !p.enabled {
		return
	}
	cue := Cue(s, p.volume)
	if cue == nil {
		return
	}

	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(cue)
	}
	speaker.Unlock()
}

// SetEnabled toggles sound without closing the device.
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = on
	if !on && p.ready {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

// Enabled reports whether cues are played.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Close stops all cues and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

var _ core.SoundSink = (*Player)(nil)
