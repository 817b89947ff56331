// Package dungeon builds a playable level on top of a generated room map.
//
// Generation runs once, in a fixed order: seed the RNG from the game code,
// draw the passcode glyphs, generate rooms, carve an entrance, a river and an
// exit, place items by rejection sampling, then place lights. Every item is
// checked against a goal map anchored on the exit so the level stays
// solvable. The same code and parameters always produce the same level.
package dungeon

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/duskcrawl/internal/fov"
	"github.com/samdwyer/duskcrawl/internal/goalmap"
	"github.com/samdwyer/duskcrawl/internal/logger"
	"github.com/samdwyer/duskcrawl/internal/rng"
	"github.com/samdwyer/duskcrawl/internal/telemetry"
	"github.com/samdwyer/duskcrawl/internal/world"
)

// Dungeon is a generated level. It is not safe for concurrent use.
type Dungeon struct {
	params Params
	rng    *rng.RNG

	grid   *world.Grid
	ground []Ground

	glyphs [2]int

	entrance       gruid.Point
	entranceCorner Corner
	exit           gruid.Point
	exitCorner     Corner

	goals  *goalmap.GoalMap // toward the exit
	reach  *goalmap.GoalMap // toward the entrance, used while placing items
	view   *fov.FOV
	lights []Light

	nbs paths.Neighbors
}

// New generates the level described by p.
func New(ctx context.Context, p Params) (*Dungeon, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	r, err := rng.FromGameCode(p.Code)
	if err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("dungeon")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	d, err := generate(ctx, p, r)
	if err != nil {
		telemetry.Fail(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("dungeon.code", p.Code),
		attribute.Int("dungeon.seed", int(r.Seed())),
		attribute.Int("dungeon.room_count", len(d.grid.Rooms())),
		attribute.Int("dungeon.light_count", len(d.lights)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	logger.Log.WithFields(logrus.Fields{
		"code":     p.Code,
		"entrance": d.entranceCorner.String(),
		"exit":     d.exitCorner.String(),
		"rooms":    len(d.grid.Rooms()),
		"lights":   len(d.lights),
	}).Debug("dungeon generated")

	return d, nil
}

func generate(ctx context.Context, p Params, r *rng.RNG) (*Dungeon, error) {
	// The passcode takes the first draws.
	var glyphs [2]int
	for i := range glyphs {
		glyphs[i] = r.IntRange(1, p.GlyphSpriteCount-1)
	}

	grid, err := world.Generate(ctx, p.World(), r)
	if err != nil {
		return nil, fmt.Errorf("generating map: %w", err)
	}

	d := assemble(p, r, grid)
	d.glyphs = glyphs

	if err := d.placeEntrance(); err != nil {
		return nil, err
	}
	d.placeRiver()
	if err := d.placeExit(); err != nil {
		return nil, err
	}
	if err := d.placeItems(ctx); err != nil {
		return nil, err
	}
	d.placeLights(ctx)

	return d, nil
}

// assemble wraps a finished room map with ground data and the derived
// structures every later phase needs.
func assemble(p Params, r *rng.RNG, grid *world.Grid) *Dungeon {
	d := &Dungeon{
		params: p,
		rng:    r,
		grid:   grid,
		ground: make([]Ground, grid.Len()),
	}
	for i := range d.ground {
		if grid.IsWalkable(grid.Point(i)) {
			d.ground[i].Kind = GroundGrass
		}
	}
	d.goals = goalmap.New(grid, p.Diagonals)
	d.reach = goalmap.New(grid, p.Diagonals)
	d.view = fov.New(grid)
	return d
}

// cornerPosition returns the cell just inside corner c.
func (d *Dungeon) cornerPosition(c Corner) gruid.Point {
	w, h := d.grid.Width(), d.grid.Height()
	switch c {
	case BottomLeft:
		return gruid.Point{X: 1, Y: 1}
	case BottomRight:
		return gruid.Point{X: w - 2, Y: 1}
	case TopLeft:
		return gruid.Point{X: 1, Y: h - 2}
	case TopRight:
		return gruid.Point{X: w - 2, Y: h - 2}
	default:
		panic(fmt.Sprintf("dungeon: invalid corner %d", int(c)))
	}
}

func (d *Dungeon) placeEntrance() error {
	d.entranceCorner = Corner(d.rng.Intn(int(cornerCount)))
	d.entrance = d.cornerPosition(d.entranceCorner)
	return d.carvePath(d.entrance, d.entranceCorner.CarveDirection())
}

func (d *Dungeon) placeExit() error {
	candidates := make([]Corner, 0, cornerCount-1)
	for c := range cornerCount {
		if c != d.entranceCorner {
			candidates = append(candidates, c)
		}
	}
	d.exitCorner = candidates[d.rng.Intn(len(candidates))]
	d.exit = d.cornerPosition(d.exitCorner)

	if err := d.carvePath(d.exit, d.exitCorner.CarveDirection()); err != nil {
		return err
	}

	i := d.grid.Index(d.exit)
	d.ground[i] = Ground{
		Kind: GroundGrass,
		Item: Item{Type: ItemExit, Visibility: PlayerBoth},
	}
	d.goals.AddGoal(d.exit, 1)
	return nil
}

// Width returns the number of columns.
func (d *Dungeon) Width() int { return d.grid.Width() }

// Height returns the number of rows.
func (d *Dungeon) Height() int { return d.grid.Height() }

// Code returns the game code the level was generated from.
func (d *Dungeon) Code() string { return d.params.Code }

// Entrance returns the player's starting cell.
func (d *Dungeon) Entrance() gruid.Point { return d.entrance }

// Exit returns the cell holding the exit.
func (d *Dungeon) Exit() gruid.Point { return d.exit }

// Glyphs returns the two passcode sprite indices.
func (d *Dungeon) Glyphs() [2]int { return d.glyphs }

// GlyphForPlayer returns the passcode glyph shown to player.
func (d *Dungeon) GlyphForPlayer(player PlayerType) int {
	if player == Player1 {
		return d.glyphs[0]
	}
	return d.glyphs[1]
}

// Rooms returns the rooms the level was built from.
func (d *Dungeon) Rooms() []world.Room { return d.grid.Rooms() }

// String renders the walkability dump, top row first.
func (d *Dungeon) String() string { return d.grid.String() }
