package gamedata

import (
	"errors"
	"fmt"
)

// PresetRegistry holds loaded level presets and provides lookup utilities.
type PresetRegistry struct {
	presets  map[string]*PresetDef
	all      []PresetDef
	fallback string
}

// NewPresetRegistry creates a registry from loaded presets. fallback names
// the preset returned for an empty ID.
func NewPresetRegistry(presets []PresetDef, fallback string) (*PresetRegistry, error) {
	registry := &PresetRegistry{
		presets:  make(map[string]*PresetDef),
		all:      presets,
		fallback: fallback,
	}
	for i := range presets {
		if _, dup := registry.presets[presets[i].ID]; dup {
			return nil, fmt.Errorf("duplicate preset %q", presets[i].ID)
		}
		registry.presets[presets[i].ID] = &presets[i]
	}
	if registry.presets[fallback] == nil {
		return nil, fmt.Errorf("default preset %q not found", fallback)
	}
	return registry, nil
}

// LoadPresetRegistry loads and creates a registry from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	file, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(file.Presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewPresetRegistry(file.Presets, file.Default)
}

// MustLoadPresetRegistry loads a registry, panicking on error.
func MustLoadPresetRegistry() *PresetRegistry {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found. An
// empty ID selects the default preset.
func (r *PresetRegistry) GetByID(id string) *PresetDef {
	if id == "" {
		id = r.fallback
	}
	return r.presets[id]
}

// Default returns the default preset.
func (r *PresetRegistry) Default() *PresetDef {
	return r.presets[r.fallback]
}

// All returns all presets.
func (r *PresetRegistry) All() []PresetDef {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *PresetRegistry) Count() int {
	return len(r.all)
}
