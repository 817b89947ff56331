package ui

import (
	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/duskcrawl/internal/dungeon"
	"github.com/samdwyer/duskcrawl/internal/gamedata"
)

// Unseen cells revealed by Override are drawn at this brightness.
const overrideBrightness = 0.35

// View selects what the renderer shows.
type View struct {
	Player     dungeon.PlayerType // Whose items are drawn
	Position   gruid.Point        // Player position, the viewer's light source
	ViewRadius int
	Override   bool // Draw the whole map and every item regardless of sight
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// ScreenPos maps a dungeon cell to a screen cell. The dungeon's y axis
// points up, the screen's points down.
func ScreenPos(d *dungeon.Dungeon, p gruid.Point) (int, int) {
	return p.X, d.Height() - 1 - p.Y
}

// Render draws the dungeon and the player to the screen.
func (r *Renderer) Render(d *dungeon.Dungeon, view View) {
	r.screen.Clear()

	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			p := gruid.Point{X: x, Y: y}
			ch, style, ok := r.cell(d, p, view)
			if !ok {
				continue
			}
			sx, sy := ScreenPos(d, p)
			r.screen.SetContent(sx, sy, ch, style)
		}
	}

	player := r.palette.Player()
	sx, sy := ScreenPos(d, view.Position)
	r.screen.SetContent(sx, sy, player.GlyphRune(), tcell.StyleDefault.
		Foreground(player.TCellColor()).
		Bold(true))

	r.screen.Show()
}

// cell picks the glyph and style for p, or reports false when p is dark.
func (r *Renderer) cell(d *dungeon.Dungeon, p gruid.Point, view View) (rune, tcell.Style, bool) {
	_, ground, err := d.At(p)
	if err != nil {
		return 0, tcell.StyleDefault, false
	}

	seen := d.IsVisible(p) || d.IsLit(p)
	if !seen && !view.Override {
		return 0, tcell.StyleDefault, false
	}

	brightness := d.Brightness(p, view.Position, view.ViewRadius)
	if !seen {
		brightness = overrideBrightness
	}

	tile := r.palette.Ground(ground.Kind)
	if ground.HasItem() && (view.Override || ground.Item.Visibility.Has(view.Player)) {
		tile = r.palette.Item(ground.Item.Type)
	}
	style := tcell.StyleDefault.Foreground(gamedata.Dim(tile.TCellColor(), brightness))
	return tile.GlyphRune(), style, true
}

// RenderMessage displays a message on screen row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(r.palette.Status())
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	r.screen.Show()
}
