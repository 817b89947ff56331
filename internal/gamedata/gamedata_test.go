package gamedata

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/duskcrawl/internal/dungeon"
)

func TestLoadPresets(t *testing.T) {
	file, err := LoadPresets()
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}

	if len(file.Presets) != 3 {
		t.Errorf("Expected 3 presets, got %d", len(file.Presets))
	}
	if file.Default != "standard" {
		t.Errorf("Expected default preset 'standard', got %q", file.Default)
	}
}

func TestPresetRegistry(t *testing.T) {
	registry, err := LoadPresetRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 presets, got %d", registry.Count())
	}
	if registry.GetByID("") != registry.Default() {
		t.Error("Empty ID should select the default preset")
	}
	if registry.GetByID("ruins") == nil {
		t.Error("Ruins preset not found by ID")
	}
	if registry.GetByID("missing") != nil {
		t.Error("Unknown preset should be nil")
	}
}

func TestPresetRegistryRejectsBadInput(t *testing.T) {
	presets := []PresetDef{{ID: "a"}, {ID: "a"}}
	if _, err := NewPresetRegistry(presets, "a"); err == nil {
		t.Error("Duplicate preset IDs should be rejected")
	}
	if _, err := NewPresetRegistry([]PresetDef{{ID: "a"}}, "b"); err == nil {
		t.Error("Missing default preset should be rejected")
	}
}

// The standard preset must match the built-in defaults so the two paths
// into the generator agree.
func TestStandardPresetMatchesDefaults(t *testing.T) {
	registry := MustLoadPresetRegistry()

	got, err := registry.GetByID("standard").Params("AAAA")
	if err != nil {
		t.Fatalf("Params() error = %v", err)
	}
	want := dungeon.DefaultParams("AAAA")

	if got.Width != want.Width || got.Height != want.Height || got.MaxRooms != want.MaxRooms ||
		got.RoomMinSize != want.RoomMinSize || got.RoomMaxSize != want.RoomMaxSize ||
		got.MaxLights != want.MaxLights {
		t.Errorf("Standard preset %+v differs from defaults %+v", got, want)
	}
	if len(got.ItemCounts) != len(want.ItemCounts) {
		t.Fatalf("Item counts %v, want %v", got.ItemCounts, want.ItemCounts)
	}
	for item, n := range want.ItemCounts {
		if got.ItemCounts[item] != n {
			t.Errorf("%s count = %d, want %d", item, got.ItemCounts[item], n)
		}
	}
}

func TestPresetWithUnknownItem(t *testing.T) {
	preset := PresetDef{ID: "bad", Items: map[string]int{"dragon": 1}}
	if _, err := preset.Params("AAAA"); !errors.Is(err, dungeon.ErrUnsupportedItemType) {
		t.Errorf("Params() error = %v, want ErrUnsupportedItemType", err)
	}
}

func TestLoadPalette(t *testing.T) {
	palette, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	if got := palette.Ground(dungeon.GroundWater).GlyphRune(); got != '~' {
		t.Errorf("Water glyph = %q, want '~'", got)
	}
	if got := palette.Item(dungeon.ItemExit).GlyphRune(); got != '>' {
		t.Errorf("Exit glyph = %q, want '>'", got)
	}
	if got := palette.Player().GlyphRune(); got != '@' {
		t.Errorf("Player glyph = %q, want '@'", got)
	}
	if got := palette.Item(dungeon.ItemType(99)).GlyphRune(); got != '?' {
		t.Errorf("Unknown item glyph = %q, want '?'", got)
	}
}

func TestNewPaletteRequiresEveryGround(t *testing.T) {
	file := PaletteFile{
		Ground: map[string]TileDef{"wall": {Glyph: "#", Color: "#000000"}},
		Status: "#FFFFFF",
	}
	if _, err := NewPalette(file); err == nil {
		t.Error("Palette missing ground tiles should be rejected")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  tcell.Color
		valid bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), true},
		{"FF0000", tcell.NewRGBColor(255, 0, 0), true},
		{"#00FF00", tcell.NewRGBColor(0, 255, 0), true},
		{"#0000ff", tcell.NewRGBColor(0, 0, 255), true},
		{"#000000", tcell.NewRGBColor(0, 0, 0), true},
		{"invalid", tcell.ColorDefault, false},
		{"#FFF", tcell.ColorDefault, false}, // Too short
		{"#GG0000", tcell.ColorDefault, false},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
		if tt.valid && got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDim(t *testing.T) {
	c := tcell.NewRGBColor(200, 100, 50)

	if got := Dim(c, 1); got != c {
		t.Errorf("Dim(c, 1) = %v, want %v", got, c)
	}
	if got := Dim(c, 0.5); got != tcell.NewRGBColor(100, 50, 25) {
		t.Errorf("Dim(c, 0.5) = %v", got)
	}
	if got := Dim(c, -3); got != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("Dim(c, -3) = %v, want black", got)
	}
	if got := Dim(c, 7); got != c {
		t.Errorf("Dim(c, 7) = %v, want unchanged", got)
	}
}

func TestPresetsGenerate(t *testing.T) {
	for _, preset := range MustLoadPresetRegistry().All() {
		params, err := preset.Params("AAAA")
		if err != nil {
			t.Fatalf("%s: Params() error = %v", preset.ID, err)
		}
		if _, err := dungeon.New(context.Background(), params); err != nil {
			t.Errorf("%s: dungeon.New() error = %v", preset.ID, err)
		}
	}
}
