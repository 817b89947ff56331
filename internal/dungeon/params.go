package dungeon

import (
	"fmt"
	"slices"

	"github.com/samdwyer/duskcrawl/internal/world"
)

const (
	DefaultMonsters             = 5
	DefaultPits                 = 5
	DefaultMaxLights            = 5
	DefaultGlyphSpriteCount     = 16
	DefaultMaxPlacementAttempts = 2000
)

// Params controls dungeon generation.
type Params struct {
	Code string // Four-character game code the level is seeded from

	Width, Height int
	MaxRooms      int
	RoomMinSize   int
	RoomMaxSize   int

	ItemCounts map[ItemType]int
	MaxLights  int

	// GlyphSpriteCount is the size of the passcode sprite sheet. Sprite 0
	// is blank and never drawn.
	GlyphSpriteCount int

	// MaxPlacementAttempts caps rejected candidates per item.
	MaxPlacementAttempts int

	// Diagonals lets reachability checks step diagonally.
	Diagonals bool
}

// DefaultParams returns the standard level for the given code.
func DefaultParams(code string) Params {
	return Params{
		Code:        code,
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		MaxRooms:    world.DefaultMaxRooms,
		RoomMinSize: world.DefaultRoomMinSize,
		RoomMaxSize: world.DefaultRoomMaxSize,
		ItemCounts: map[ItemType]int{
			ItemMonster: DefaultMonsters,
			ItemPit:     DefaultPits,
		},
		MaxLights:            DefaultMaxLights,
		GlyphSpriteCount:     DefaultGlyphSpriteCount,
		MaxPlacementAttempts: DefaultMaxPlacementAttempts,
	}
}

// World returns the map generator's share of the parameters.
func (p Params) World() world.Params {
	return world.Params{
		Width:       p.Width,
		Height:      p.Height,
		MaxRooms:    p.MaxRooms,
		RoomMinSize: p.RoomMinSize,
		RoomMaxSize: p.RoomMaxSize,
	}
}

// Validate checks everything that can be checked before any RNG draw.
func (p Params) Validate() error {
	if err := p.World().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	switch {
	case p.MaxLights < 0:
		return fmt.Errorf("%w: negative light count %d", ErrInvalidParams, p.MaxLights)
	case p.GlyphSpriteCount < 2:
		return fmt.Errorf("%w: glyph sprite count %d leaves nothing but the blank sprite", ErrInvalidParams, p.GlyphSpriteCount)
	case p.MaxPlacementAttempts < 1:
		return fmt.Errorf("%w: placement attempts must be positive, got %d", ErrInvalidParams, p.MaxPlacementAttempts)
	}
	for _, t := range p.itemTypes() {
		n := p.ItemCounts[t]
		if n < 0 {
			return fmt.Errorf("%w: negative %s count %d", ErrInvalidParams, t, n)
		}
		if n > 0 && !placeable(t) {
			return fmt.Errorf("%w: %s", ErrUnsupportedItemType, t)
		}
	}
	return nil
}

// itemTypes returns the requested item types in ascending order, so
// placement consumes the RNG the same way on every run.
func (p Params) itemTypes() []ItemType {
	types := make([]ItemType, 0, len(p.ItemCounts))
	for t := range p.ItemCounts {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// placeable reports whether the generator knows how to place t.
func placeable(t ItemType) bool {
	switch t {
	case ItemMonster, ItemPit, ItemMonument:
		return true
	}
	return false
}
