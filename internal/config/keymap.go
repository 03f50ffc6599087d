package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/missile-arcade/internal/core"
)

// KeymapConfig binds terminal key names (as Bubble Tea reports them) to actions.
type KeymapConfig struct {
	Bindings map[string][]string `yaml:"bindings"`
}

// Resolve converts the bindings to actions, failing on unknown action names
// or on a key bound to two actions.
func (k KeymapConfig) Resolve() (map[core.Action][]string, error) {
	out := make(map[core.Action][]string, len(k.Bindings))
	owner := make(map[string]string)

	names := make([]string, 0, len(k.Bindings))
	for name := range k.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a, ok := core.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		for _, key := range k.Bindings[name] {
			if prev, taken := owner[key]; taken {
				return nil, fmt.Errorf("config: key %q bound to both %s and %s", key, prev, name)
			}
			owner[key] = name
		}
		out[a] = slices.Clone(k.Bindings[name])
	}
	return out, nil
}

// Set replaces the keys of one action. Keys taken by other actions are
// released from them.
func (k *KeymapConfig) Set(action string, keys []string) error {
	if _, ok := core.ParseAction(action); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	if k.Bindings == nil {
		k.Bindings = make(map[string][]string)
	}
	for name, bound := range k.Bindings {
		if name == action {
			continue
		}
		k.Bindings[name] = slices.DeleteFunc(bound, func(key string) bool {
			return slices.Contains(keys, key)
		})
	}
	k.Bindings[action] = slices.Clone(keys)
	return nil
}

// KeymapPath returns ~/.missile/keymap.yaml, or empty if home is unavailable.
func KeymapPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, appDir, "keymap.yaml")
}

// LoadKeymap reads bindings from path. A missing file yields the defaults;
// actions the file leaves out keep their default keys.
func LoadKeymap(path string) (KeymapConfig, error) {
	km := DefaultKeymap()
	if path == "" {
		return km, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return km, nil
	}
	if err != nil {
		return km, fmt.Errorf("config: read keymap %s: %w", path, err)
	}

	var user KeymapConfig
	if err := yaml.Unmarshal(data, &user); err != nil {
		return km, fmt.Errorf("config: parse keymap %s: %w", path, err)
	}
	for action, keys := range user.Bindings {
		if err := km.Set(action, keys); err != nil {
			return DefaultKeymap(), fmt.Errorf("config: keymap %s: %w", path, err)
		}
	}
	if _, err := km.Resolve(); err != nil {
		return DefaultKeymap(), fmt.Errorf("config: keymap %s: %w", path, err)
	}
	return km, nil
}

// SaveKeymap writes bindings to path, creating parent directories.
func SaveKeymap(path string, km KeymapConfig) error {
	if _, err := km.Resolve(); err != nil {
		return err
	}
	data, err := yaml.Marshal(km)
	if err != nil {
		return fmt.Errorf("config: encode keymap: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("config: create keymap dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: write keymap %s: %w", path, err)
	}
	return nil
}
