package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/duskcrawl/internal/dungeon"
)

// TileDef is how one kind of ground or item is drawn.
type TileDef struct {
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "~")
	Color string `json:"color"` // Hex color code (e.g., "#3366FF")
}

// GlyphRune returns the glyph as a rune for rendering.
func (t TileDef) GlyphRune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (t TileDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Ground map[string]TileDef `json:"ground"` // Keyed by ground kind name
	Items  map[string]TileDef `json:"items"`  // Keyed by item type name
	Player TileDef            `json:"player"`
	Status string             `json:"status"` // Status line colour
}

// Palette resolves tile definitions by ground kind and item type.
type Palette struct {
	ground map[dungeon.GroundKind]TileDef
	items  map[dungeon.ItemType]TileDef
	player TileDef
	status tcell.Color
}

// NewPalette validates a palette file. Every ground kind must be present;
// items without an entry fall back to '?'.
func NewPalette(file PaletteFile) (*Palette, error) {
	p := &Palette{
		ground: make(map[dungeon.GroundKind]TileDef),
		items:  make(map[dungeon.ItemType]TileDef),
		player: file.Player,
	}

	for _, kind := range []dungeon.GroundKind{dungeon.GroundWall, dungeon.GroundGrass, dungeon.GroundWater, dungeon.GroundBridge} {
		def, ok := file.Ground[kind.String()]
		if !ok {
			return nil, fmt.Errorf("palette: no tile for ground %s", kind)
		}
		if _, err := ParseHexColor(def.Color); err != nil {
			return nil, fmt.Errorf("palette: ground %s: %w", kind, err)
		}
		p.ground[kind] = def
	}

	for name, def := range file.Items {
		t, err := dungeon.ParseItemType(name)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		if _, err := ParseHexColor(def.Color); err != nil {
			return nil, fmt.Errorf("palette: item %s: %w", name, err)
		}
		p.items[t] = def
	}

	status, err := ParseHexColor(file.Status)
	if err != nil {
		return nil, fmt.Errorf("palette: status: %w", err)
	}
	p.status = status
	return p, nil
}

// LoadPalette loads the palette from the embedded palette.json file.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file)
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Ground returns the tile for a ground kind.
func (p *Palette) Ground(kind dungeon.GroundKind) TileDef {
	return p.ground[kind]
}

// Item returns the tile for an item type.
func (p *Palette) Item(t dungeon.ItemType) TileDef {
	if def, ok := p.items[t]; ok {
		return def
	}
	return TileDef{Glyph: "?", Color: "#FFFFFF"}
}

// Player returns the tile for the player.
func (p *Palette) Player() TileDef {
	return p.player
}

// Status returns the status line colour.
func (p *Palette) Status() tcell.Color {
	return p.status
}
