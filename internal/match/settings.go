package match

import (
	"fmt"
	"sync"

	"github.com/peterkuimelis/arcomage/internal/game"
)

// SettingsStorage holds the preset the next match starts from.
type SettingsStorage interface {
	Get() game.Preset
	Set(preset game.Preset)
}

// MemorySettings is a SettingsStorage kept in process memory.
type MemorySettings struct {
	mu     sync.Mutex
	preset game.Preset
}

func NewMemorySettings(preset game.Preset) *MemorySettings {
	return &MemorySettings{preset: preset}
}

func (s *MemorySettings) Get() game.Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preset
}

func (s *MemorySettings) Set(preset game.Preset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preset = preset
}

// ResolvePreset looks a preset up by name among extra presets and the
// built-ins. The empty name selects the default preset.
func ResolvePreset(name string, extra []game.NamedPreset) (game.Preset, error) {
	if name == "" {
		return game.DefaultPreset(), nil
	}
	p, ok := game.ResolvePreset(name, extra)
	if !ok {
		return game.Preset{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
	}
	return p, nil
}
