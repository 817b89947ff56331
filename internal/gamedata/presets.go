package gamedata

import (
	"fmt"

	"github.com/samdwyer/duskcrawl/internal/dungeon"
)

// PresetDef describes a level layout loaded from JSON.
type PresetDef struct {
	ID          string         `json:"id"`          // Unique identifier (e.g., "standard")
	Name        string         `json:"name"`        // Display name
	Width       int            `json:"width"`       // Map columns
	Height      int            `json:"height"`      // Map rows
	MaxRooms    int            `json:"maxRooms"`    // Room placement attempts
	RoomMinSize int            `json:"roomMinSize"` // Smallest room side
	RoomMaxSize int            `json:"roomMaxSize"` // Largest room side
	Items       map[string]int `json:"items"`       // Item name to count (e.g., "monster": 5)
	MaxLights   int            `json:"maxLights"`   // Upper bound on ambient lights
	ViewRadius  int            `json:"viewRadius"`  // Player sight radius
	Diagonals   bool           `json:"diagonals"`   // 8-connected reachability checks
}

// Params converts the preset into generation parameters for code.
func (p *PresetDef) Params(code string) (dungeon.Params, error) {
	params := dungeon.DefaultParams(code)
	params.Width = p.Width
	params.Height = p.Height
	params.MaxRooms = p.MaxRooms
	params.RoomMinSize = p.RoomMinSize
	params.RoomMaxSize = p.RoomMaxSize
	params.MaxLights = p.MaxLights
	params.Diagonals = p.Diagonals

	params.ItemCounts = make(map[dungeon.ItemType]int, len(p.Items))
	for name, n := range p.Items {
		t, err := dungeon.ParseItemType(name)
		if err != nil {
			return dungeon.Params{}, fmt.Errorf("preset %s: %w", p.ID, err)
		}
		params.ItemCounts[t] = n
	}
	return params, nil
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Default string      `json:"default"`
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads level presets from the embedded presets.json file.
func LoadPresets() (PresetsFile, error) {
	return Load[PresetsFile]("presets.json")
}
