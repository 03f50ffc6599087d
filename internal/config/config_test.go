package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/missile-arcade/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMissile(path)
	if err != nil {
		t.Fatalf("LoadMissile() failed: %v", err)
	}
	if cfg != DefaultMissileConfig() {
		t.Errorf("embedded defaults drifted from hardcoded defaults:\n%+v\n%+v", cfg, DefaultMissileConfig())
	}
}

func TestLoadMissileOverridesOnlyWhatIsSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missile.yaml")
	data := []byte("defender:\n  max_ammo: 5\npickups:\n  enabled: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMissile(path)
	if err != nil {
		t.Fatalf("LoadMissile() failed: %v", err)
	}
	if cfg.Defender.MaxAmmo != 5 || cfg.Pickups.Enabled {
		t.Errorf("overrides not applied: ammo=%d pickups=%v", cfg.Defender.MaxAmmo, cfg.Pickups.Enabled)
	}
	if cfg.Defender.MissileSpeed != 200 || cfg.Blast.Radius != 32 {
		t.Errorf("unset fields lost their defaults: %+v", cfg.Defender)
	}
}

func TestLoadMissileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMissile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMissile(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  half_width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMissile(invalid); err == nil {
		t.Error("zero viewport should fail validation")
	}
}

func TestApplyMissilePreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		reload  float64
	}{
		{DifficultyEasy, true, 0, 2},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 4},
		{DifficultyFixed, false, 0.3, 3},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMissileConfig()
			ApplyMissilePreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Defender.ReloadTime != tc.reload {
				t.Errorf("ReloadTime = %f, expected %f", cfg.Defender.ReloadTime, tc.reload)
			}
		})
	}
}

func TestPresetNames(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("brutal"); err == nil {
		t.Error("unknown preset should fail")
	}

	p := DifficultyEasy
	for range len(Presets()) {
		p = NextPreset(p)
	}
	if p != DifficultyEasy {
		t.Errorf("cycling every preset should wrap to easy, got %q", p)
	}
}

func TestPacerProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1, IntervalReduction: 0.5},
	}
	d := NewPacer(cfg)

	if got := d.Level(0, 0); got != 0.2 {
		t.Errorf("Level at start = %f, expected 0.2", got)
	}
	if got := d.Level(0, 50); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("Level halfway = %f, expected 0.6", got)
	}
	if got := d.Level(0, 1000); got != 1 {
		t.Errorf("Level past max = %f, expected 1", got)
	}

	if got := d.Speed(100, 0, 1000); got != 200 {
		t.Errorf("Speed at max = %f, expected 200", got)
	}
	if got := d.Interval(4, 0, 1000); got != 2 {
		t.Errorf("Interval at max = %f, expected 2", got)
	}

	d.SetEnabled(false)
	if d.Enabled() || d.Level(0, 1000) != 0.2 {
		t.Error("disabled pacer should stay at the initial level")
	}
}

func TestPacerScoreAndNone(t *testing.T) {
	d := NewPacer(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
	})
	if got := d.Level(250, 9999); got != 0.25 {
		t.Errorf("Level at 250 points = %f, expected 0.25", got)
	}
	d.SetInitialLevel(2)
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("initial level above 1 = %f, expected clamp to 1", got)
	}

	none := NewPacer(DifficultyConfig{Enabled: true, InitialLevel: 0.4, Progression: ProgressionConfig{Type: "none"}})
	if none.Enabled() || none.Level(5000, 500) != 0.4 {
		t.Error("progression none should pin the initial level")
	}
}

func TestDifficultyIntervalFloor(t *testing.T) {
	d := NewPacer(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{IntervalReduction: 3},
	})
	if got := d.Interval(10, 0, 0); math.Abs(got-2) > 1e-12 {
		t.Errorf("Interval = %f, expected the floor of 2", got)
	}
}

func TestKeymapDefaultsResolve(t *testing.T) {
	actions, err := DefaultKeymap().Resolve()
	if err != nil {
		t.Fatalf("default keymap does not resolve: %v", err)
	}
	for _, a := range core.Actions() {
		if len(actions[a]) == 0 {
			t.Errorf("action %s has no default key", a)
		}
	}
}

func TestKeymapSetReleasesKeys(t *testing.T) {
	km := DefaultKeymap()
	if err := km.Set("fire_left", []string{"z", "x"}); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	actions, err := km.Resolve()
	if err != nil {
		t.Fatalf("Resolve() after Set failed: %v", err)
	}
	for _, k := range actions[core.ActionFireMiddle] {
		if k == "x" {
			t.Error("x should have been released from fire_middle")
		}
	}

	err = km.Set("launch_nukes", []string{"n"})
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Set(unknown) error = %v, expected ErrUnknownAction", err)
	}
}

func TestKeymapSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "keymap.yaml")

	km, err := LoadKeymap(path)
	if err != nil {
		t.Fatalf("LoadKeymap(missing) failed: %v", err)
	}
	if err := km.Set("pause", []string{"space"}); err != nil {
		t.Fatal(err)
	}
	if err := SaveKeymap(path, km); err != nil {
		t.Fatalf("SaveKeymap() failed: %v", err)
	}

	loaded, err := LoadKeymap(path)
	if err != nil {
		t.Fatalf("LoadKeymap() failed: %v", err)
	}
	if got := loaded.Bindings["pause"]; len(got) != 1 || got[0] != "space" {
		t.Errorf("pause = %v, expected [space]", got)
	}
	if got := loaded.Bindings["quit"]; len(got) == 0 {
		t.Error("unrelated bindings lost on reload")
	}
}

func TestKeymapLoadRejectsUnknownAction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.yaml")
	if err := os.WriteFile(path, []byte("bindings:\n  teleport: [t]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadKeymap(path)
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("LoadKeymap() error = %v, expected ErrUnknownAction", err)
	}
}
