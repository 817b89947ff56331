package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/duskcrawl/internal/dungeon"
	"github.com/samdwyer/duskcrawl/internal/entity"
	"github.com/samdwyer/duskcrawl/internal/gamedata"
	"github.com/samdwyer/duskcrawl/internal/logger"
	"github.com/samdwyer/duskcrawl/internal/rng"
	"github.com/samdwyer/duskcrawl/internal/telemetry"
	"github.com/samdwyer/duskcrawl/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	presets  *gamedata.PresetRegistry
	preset   *gamedata.PresetDef
	config   Config
	session  uuid.UUID

	dungeon    *dungeon.Dungeon
	party      *entity.Party
	viewRadius int
	override   bool
	state      State
	running    bool
	message    string
}

// New creates a new game drawing to screen.
func New(cfg Config, screen *ui.Screen) (*Game, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}
	presets, err := gamedata.LoadPresetRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading presets: %w", err)
	}
	preset := presets.GetByID(cfg.Preset)
	if preset == nil {
		return nil, fmt.Errorf("unknown preset %q", cfg.Preset)
	}

	viewRadius := preset.ViewRadius
	if cfg.ViewRadius > 0 {
		viewRadius = cfg.ViewRadius
	}

	return &Game{
		screen:     screen,
		renderer:   ui.NewRenderer(screen, palette),
		presets:    presets,
		preset:     preset,
		config:     cfg,
		session:    uuid.New(),
		viewRadius: viewRadius,
		override:   cfg.Override,
		running:    true,
	}, nil
}

// Start generates the first level. Run calls it when needed.
func (g *Game) Start(ctx context.Context) error {
	code := g.config.Code
	if code == "" {
		code = randomCode()
	}
	return g.newLevel(ctx, code)
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	if g.dungeon == nil {
		if err := g.Start(ctx); err != nil {
			return err
		}
	}

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// newLevel generates the level for code and puts the party on its entrance.
func (g *Game) newLevel(ctx context.Context, code string) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.level")
	defer span.End()

	params, err := g.preset.Params(code)
	if err != nil {
		telemetry.Fail(span, err)
		return err
	}
	d, err := dungeon.New(ctx, params)
	if err != nil {
		telemetry.Fail(span, err)
		return fmt.Errorf("generating level %s: %w", code, err)
	}

	g.dungeon = d
	g.party = entity.NewParty(d.Entrance())
	g.state = StateExplore
	g.message = "find the exit"
	d.RegenerateVisible(g.party.Pos, g.viewRadius)

	span.SetAttributes(
		attribute.String("game.session_id", g.session.String()),
		attribute.String("game.code", code),
		attribute.String("game.preset", g.preset.ID),
		attribute.Int("party.start_x", g.party.Pos.X),
		attribute.Int("party.start_y", g.party.Pos.Y),
	)

	logger.Log.WithFields(logrus.Fields{
		"session": g.session.String(),
		"code":    code,
		"preset":  g.preset.ID,
	}).Info("level started")

	return nil
}

func (g *Game) render() {
	g.renderer.Render(g.dungeon, ui.View{
		Player:     g.party.Viewer,
		Position:   g.party.Pos,
		ViewRadius: g.viewRadius,
		Override:   g.override,
	})
	g.renderer.RenderMessage(g.status(), g.dungeon.Height())
}

// status is the line shown under the map.
func (g *Game) status() string {
	viewer := 1
	if g.party.Viewer == dungeon.Player2 {
		viewer = 2
	}
	return fmt.Sprintf("%s  %s  player %d  glyph %d  %s",
		g.dungeon.Code(), g.preset.Name, viewer, g.dungeon.GlyphForPlayer(g.party.Viewer), g.message)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input. The map's y axis points up, so
// the up arrow adds to y.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(gruid.Point{X: 0, Y: 1})
	case tcell.KeyDown:
		g.tryMove(gruid.Point{X: 0, Y: -1})
	case tcell.KeyLeft:
		g.tryMove(gruid.Point{X: -1, Y: 0})
	case tcell.KeyRight:
		g.tryMove(gruid.Point{X: 1, Y: 0})

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'p', 'P':
			g.party.SwapViewer()
		case 'o', 'O':
			g.override = !g.override
		case 'n', 'N':
			if err := g.newLevel(ctx, randomCode()); err != nil {
				g.message = err.Error()
			}
		case 'r', 'R':
			if err := g.newLevel(ctx, g.dungeon.Code()); err != nil {
				g.message = err.Error()
			}
		}
	}
}

// tryMove attempts to move the party by delta. A legal move lets the
// monsters act and refreshes the view.
func (g *Game) tryMove(delta gruid.Point) {
	if g.state.Over() {
		return
	}
	target := g.party.Target(delta)
	if !g.dungeon.IsWalkable(target) {
		return
	}
	g.party.Move(delta)

	if g.resolve() {
		return
	}
	g.dungeon.UpdateMovableItems()
	g.resolve()
	g.dungeon.RegenerateVisible(g.party.Pos, g.viewRadius)
}

// resolve applies whatever is on the party's cell and reports whether the
// level ended.
func (g *Game) resolve() bool {
	_, ground, err := g.dungeon.At(g.party.Pos)
	if err != nil {
		return false
	}

	switch ground.Item.Type {
	case dungeon.ItemExit:
		g.end(StateWon, "you escaped! n: new level, q: quit")
	case dungeon.ItemMonster, dungeon.ItemPit:
		// The cell is in bounds, so the splat cannot fail.
		_ = g.dungeon.BloodSplat(g.party.Pos)
		g.party.Alive = false
		g.end(StateLost, fmt.Sprintf("killed by a %s. r: retry, n: new level", ground.Item.Type))
	default:
		return false
	}
	g.dungeon.RegenerateVisible(g.party.Pos, g.viewRadius)
	return true
}

func (g *Game) end(state State, msg string) {
	g.state = state
	g.message = msg
	logger.Log.WithFields(logrus.Fields{
		"session": g.session.String(),
		"code":    g.dungeon.Code(),
		"state":   state.String(),
		"x":       g.party.Pos.X,
		"y":       g.party.Pos.Y,
	}).Info("level over")
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Dungeon returns the current level.
func (g *Game) Dungeon() *dungeon.Dungeon { return g.dungeon }

// Party returns the party.
func (g *Game) Party() *entity.Party { return g.party }

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}

func randomCode() string {
	seed := uint64(time.Now().UnixNano())
	return rng.NewGameCode(rand.New(rand.NewPCG(seed, seed>>1)))
}
