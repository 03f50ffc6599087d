// Package missile adapts the missile-defense simulation to the arcade
// platform: it loads the YAML config, translates platform actions into
// engine input, and draws the scene into a cell screen.
package missile

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/missile-arcade/internal/config"
	"github.com/vovakirdan/missile-arcade/internal/core"
	"github.com/vovakirdan/missile-arcade/internal/games/missile/sim"
	"github.com/vovakirdan/missile-arcade/internal/registry"
)

// Variant selects the rule set.
type Variant int

const (
	VariantStandard Variant = iota // pickups enabled
	VariantClassic                 // no pickups
)

const (
	hudRows = 1 // rows above the playfield

	maxDelta = 0.1 // longest step in seconds after a stalled frame

	minScreenW = 40
	minScreenH = 16
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes adapter diagnostics to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// CheckConfig loads the configured file and preset and reports whether the
// engine can lay out a scene from them. Errors wrap sim.ErrConfig when the
// values load but the scene does not fit.
func CheckConfig() (config.MissileConfig, error) {
	cfg, err := config.LoadMissile(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyMissilePreset(&cfg, difficultyPreset)
	}
	if _, err := sim.New(buildParams(cfg, cfg.Pickups.Enabled, 1, config.NewPacer(cfg.Difficulty))); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Game implements registry.Game for missile defense.
type Game struct {
	variant Variant

	runtime core.RuntimeConfig
	cfg     config.MissileConfig
	preset  config.DifficultyPreset
	pacer   *config.Pacer
	engine  *sim.Engine
	theme   Theme

	vp       core.Viewport
	aim      sim.Vec2
	pointer  core.Pointer
	cursor   int
	soundOn  bool
	uiSound  bool // a menu toggle asked for a click this step
	bindings map[core.Action][]string

	screenTooSmall bool
}

// New creates the standard game with pickups.
func New() *Game {
	return &Game{variant: VariantStandard}
}

// NewClassic creates the game without pickups.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "missile_classic"
	}
	return "missile"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Missile Defense (Classic)"
	}
	return "Missile Defense"
}

// Reset loads the config and builds a fresh engine sitting in the main menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadMissile(configPath)
	if err != nil {
		logger.Warn("config rejected, using defaults", "err", err)
		cfg = config.DefaultMissileConfig()
	}

	g.preset = config.DifficultyNormal
	if difficultyPreset != "" {
		config.ApplyMissilePreset(&cfg, difficultyPreset)
		g.preset = difficultyPreset
	}

	g.pacer = config.NewPacer(cfg.Difficulty)
	engine, err := sim.New(buildParams(cfg, g.variant == VariantStandard, runtime.Seed, g.pacer))
	if err != nil {
		logger.Warn("scene unavailable, using defaults", "err", err)
		cfg = config.DefaultMissileConfig()
		g.pacer = config.NewPacer(cfg.Difficulty)
		engine, _ = sim.New(buildParams(cfg, g.variant == VariantStandard, runtime.Seed, g.pacer))
	}

	g.cfg = cfg
	g.engine = engine
	g.theme = buildTheme(cfg.Theme)
	g.aim = sim.V(0, 0)
	g.pointer = core.Pointer{}
	g.cursor = 0
	g.soundOn = runtime.Sound
	if g.bindings == nil {
		g.bindings, _ = config.DefaultKeymap().Resolve()
	}
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	logger.Debug("reset", "game", g.ID(), "seed", runtime.Seed, "difficulty", g.preset)
}

// Resize fits the playfield to a new screen without touching the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < minScreenW || h < minScreenH
	g.vp = core.Viewport{
		HalfW: g.cfg.World.HalfWidth,
		HalfH: g.cfg.World.HalfHeight,
		Cols:  w,
		Rows:  max(h-hudRows, 1),
	}
}

// SetBindings tells the options menu which keys trigger each action.
func (g *Game) SetBindings(b map[core.Action][]string) {
	g.bindings = b
}

// Step advances the simulation by the frame's elapsed time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.uiSound = false
	actions, quit := g.translate(in)
	report := g.engine.Tick(g.delta(in), sim.Input{Actions: actions, Target: g.aim})

	for _, t := range report.Transitions {
		logger.Debug("transition", "from", t.From, "to", t.To, "score", g.engine.Score())
		g.cursor = 0
		if t.To == sim.StateGame && t.From != sim.StatePaused {
			g.aim = sim.V(0, 0)
		}
	}

	return core.StepResult{
		State:  g.State(),
		Sounds: g.sounds(report),
		Quit:   quit,
	}
}

func (g *Game) delta(in core.InputFrame) float64 {
	if in.Elapsed <= 0 {
		return g.runtime.TickInterval().Seconds()
	}
	return min(in.Elapsed.Seconds(), maxDelta)
}

// translate turns platform actions into engine actions. Menu states consume
// navigation here; the engine only sees the chosen item.
func (g *Game) translate(in core.InputFrame) ([]sim.Action, bool) {
	state := g.engine.State()
	if state == sim.StateGame {
		return g.playActions(in), false
	}

	var out []sim.Action
	items := menuFor(state)
	switch {
	case in.Has(core.ActionUp):
		g.cursor = (g.cursor + len(items) - 1) % len(items)
	case in.Has(core.ActionDown):
		g.cursor = (g.cursor + 1) % len(items)
	}
	if in.Has(core.ActionConfirm) {
		act, ok, quit := g.choose(state, items[g.cursor])
		if quit {
			return nil, true
		}
		if ok {
			out = append(out, act)
		}
	}

	for _, pass := range []struct {
		from core.Action
		to   sim.Action
	}{
		{core.ActionBack, sim.ActBack},
		{core.ActionPause, sim.ActPause},
		{core.ActionOptions, sim.ActOptions},
		{core.ActionRestart, sim.ActRestart},
	} {
		if in.Has(pass.from) {
			out = append(out, pass.to)
		}
	}
	return out, false
}

func (g *Game) playActions(in core.InputFrame) []sim.Action {
	if in.Pointer.Valid && in.Pointer != g.pointer {
		g.pointer = in.Pointer
		g.aimAtCell(in.Pointer.X, in.Pointer.Y)
	}

	cw, ch := g.vp.CellSize()
	switch {
	case in.Has(core.ActionLeft):
		g.moveAim(-2*cw, 0)
	case in.Has(core.ActionRight):
		g.moveAim(2*cw, 0)
	}
	switch {
	case in.Has(core.ActionUp):
		g.moveAim(0, ch)
	case in.Has(core.ActionDown):
		g.moveAim(0, -ch)
	}

	var out []sim.Action
	if in.Has(core.ActionFireLeft) {
		out = append(out, sim.ActFireLeft)
	}
	if in.Has(core.ActionFireMiddle) {
		out = append(out, sim.ActFireMiddle)
	}
	if in.Has(core.ActionFireRight) {
		out = append(out, sim.ActFireRight)
	}
	if in.Has(core.ActionPause) {
		out = append(out, sim.ActPause)
	}
	return out
}

// aimAtCell points the crosshair at the center of a screen cell.
func (g *Game) aimAtCell(col, row int) {
	x, y := g.vp.ToWorld(col, row-hudRows)
	g.aim = sim.V(x, y)
	g.moveAim(0, 0)
}

// moveAim shifts the crosshair, keeping it above the ground and on screen.
func (g *Game) moveAim(dx, dy float64) {
	p := g.engine.Params()
	g.aim = sim.V(
		core.ClampF(g.aim.X+dx, -p.HalfWidth, p.HalfWidth),
		core.ClampF(g.aim.Y+dy, p.GroundY(), p.HalfHeight),
	)
}

// Aim returns the crosshair position in world units.
func (g *Game) Aim() sim.Vec2 {
	return g.aim
}

var causeSounds = map[sim.Cause]core.Sound{
	sim.CauseCollision: core.SoundCollision,
	sim.CauseExplosion: core.SoundExplosion,
	sim.CausePickup:    core.SoundPickup,
	sim.CauseLaunch:    core.SoundLaunch,
	sim.CauseUI:        core.SoundUI,
	sim.CauseGameOver:  core.SoundGameOver,
}

func (g *Game) sounds(r sim.Report) []core.Sound {
	if !g.soundOn {
		return nil
	}
	var out []core.Sound
	if g.uiSound {
		out = append(out, core.SoundUI)
	}
	for _, s := range r.Sounds {
		if cue, ok := causeSounds[s.Cause]; ok {
			out = append(out, cue)
		}
	}
	return out
}

// SoundEnabled reports whether the game emits cues.
func (g *Game) SoundEnabled() bool {
	return g.soundOn
}

// Difficulty returns the active preset.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.preset
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{InMenu: true}
	}
	s := g.engine.State()
	st := g.engine.Stats()
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: s == sim.StateGameOver,
		Paused:   s == sim.StatePaused,
		InMenu:   s == sim.StateMainMenu || s == sim.StateOptionsMenu,
		Stats: core.RunStats{
			Intercepts:     st.Intercepts,
			Shots:          st.Shots,
			Pickups:        st.Pickups,
			StructuresLost: st.StructuresLost,
			Duration:       time.Duration(st.Elapsed * float64(time.Second)),
		},
	}
}

// Engine exposes the simulation for tests and tools.
func (g *Game) Engine() *sim.Engine {
	return g.engine
}

func init() {
	registry.Register("missile", func() registry.Game {
		return New()
	})
	registry.Register("missile_classic", func() registry.Game {
		return NewClassic()
	})
}
