package dungeon

import (
	"context"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/duskcrawl/internal/logger"
	"github.com/samdwyer/duskcrawl/internal/telemetry"
)

// validator decides whether an item may stand on a candidate cell.
type validator func(candidate gruid.Point) bool

func (d *Dungeon) placeItems(ctx context.Context) error {
	tracer := telemetry.Tracer("dungeon")
	_, span := tracer.Start(ctx, "dungeon.place_items")
	defer span.End()

	placed := 0
	for _, t := range d.params.itemTypes() {
		n := d.params.ItemCounts[t]
		if n == 0 {
			continue
		}
		var err error
		switch t {
		case ItemMonster:
			err = d.placeN(t, n, d.canCircumvent, d.newMonster)
		case ItemPit:
			err = d.placeN(t, n, d.canCircumvent, d.newPit)
		case ItemMonument:
			err = d.placeN(t, n, d.canReach, d.newMonument)
		default:
			err = ErrUnsupportedItemType
		}
		if err != nil {
			telemetry.Fail(span, err)
			return err
		}
		placed += n
	}

	span.SetAttributes(attribute.Int("dungeon.item_count", placed))
	return nil
}

// placeN places n items of type t by rejection sampling. Each candidate is
// drawn from the empty cells and kept only if valid accepts it; validation
// never consumes RNG draws.
func (d *Dungeon) placeN(t ItemType, n int, valid validator, place func(gruid.Point)) error {
	for placed := 0; placed < n; placed++ {
		empty := d.emptyCells()
		attempts := 0
		for {
			if len(empty) == 0 || attempts >= d.params.MaxPlacementAttempts {
				return &PlacementError{Item: t, Placed: placed, Requested: n, Attempts: attempts}
			}
			candidate := empty[d.rng.Intn(len(empty))]

			var ok bool
			d.rng.Probe(func() { ok = valid(candidate) })
			if ok {
				place(candidate)
				break
			}
			attempts++
		}
		if attempts > 0 {
			logger.Log.WithFields(logrus.Fields{
				"item":     t.String(),
				"rejected": attempts,
			}).Debug("placement candidates rejected")
		}
	}
	return nil
}

// canCircumvent reports whether the entrance still reaches the exit with an
// item on candidate, and every blocking item stays reachable.
func (d *Dungeon) canCircumvent(candidate gruid.Point) bool {
	d.blockItems()
	d.goals.AddObstacles(candidate)
	if !d.goals.IsReachable(d.entrance) {
		return false
	}
	return d.itemsStayReachable(candidate)
}

// canReach reports whether candidate itself reaches the exit and every
// blocking item stays reachable from the entrance.
func (d *Dungeon) canReach(candidate gruid.Point) bool {
	d.blockItems()
	if !d.goals.IsReachable(candidate) {
		return false
	}
	return d.itemsStayReachable(candidate)
}

// itemsStayReachable floods from the entrance around every blocking item and
// candidate, then checks that each of them borders the flooded area.
func (d *Dungeon) itemsStayReachable(candidate gruid.Point) bool {
	blocked := append(d.blockingCells(), candidate)
	d.reach.ClearGoals()
	d.reach.ClearObstacles()
	d.reach.AddGoal(d.entrance, 0)
	d.reach.AddObstacles(blocked...)

	for _, p := range blocked {
		if !d.bordersReach(p) {
			return false
		}
	}
	return true
}

// bordersReach reports whether a move from some cell the entrance reaches
// lands on p.
func (d *Dungeon) bordersReach(p gruid.Point) bool {
	var nbs []gruid.Point
	if d.params.Diagonals {
		nbs = d.nbs.All(p, d.grid.InBounds)
	} else {
		nbs = d.nbs.Cardinal(p, d.grid.InBounds)
	}
	for _, q := range nbs {
		if d.reach.IsReachable(q) {
			return true
		}
	}
	return false
}

// blockItems makes every blocking item an obstacle of the exit goal map.
func (d *Dungeon) blockItems() {
	d.goals.ClearObstacles()
	d.goals.AddObstacles(d.blockingCells()...)
}

// blockingCells lists the cells holding a blocking item in index order.
func (d *Dungeon) blockingCells() []gruid.Point {
	var cells []gruid.Point
	for i, g := range d.ground {
		if g.Item.Type.Blocking() {
			cells = append(cells, d.grid.Point(i))
		}
	}
	return cells
}

func (d *Dungeon) newMonster(p gruid.Point) {
	visibility := Player2
	if d.rng.Bool() {
		visibility = Player1
	}
	d.ground[d.grid.Index(p)].Item = Item{
		Type:       ItemMonster,
		Visibility: visibility,
		Origin:     p,
		Direction:  cardinals[d.rng.Intn(len(cardinals))],
	}
}

func (d *Dungeon) newPit(p gruid.Point) {
	visibility := Player2
	if d.rng.Bool() {
		visibility = Player1
	}
	d.ground[d.grid.Index(p)].Item = Item{Type: ItemPit, Visibility: visibility}
}

func (d *Dungeon) newMonument(p gruid.Point) {
	d.ground[d.grid.Index(p)] = Ground{
		Kind: GroundGrass,
		Item: Item{Type: ItemMonument, Visibility: PlayerBoth},
	}
}

// isEmpty reports whether p can take a new item: walkable, unoccupied and
// not the entrance.
func (d *Dungeon) isEmpty(p gruid.Point) bool {
	if !d.grid.InBounds(p) || !d.grid.IsWalkable(p) || p == d.entrance {
		return false
	}
	return !d.ground[d.grid.Index(p)].HasItem()
}

// emptyCells lists the empty cells in index order.
func (d *Dungeon) emptyCells() []gruid.Point {
	occupied := mapset.New[gruid.Point]()
	occupied.Put(d.entrance)
	for i, g := range d.ground {
		if g.HasItem() {
			occupied.Put(d.grid.Point(i))
		}
	}

	var empty []gruid.Point
	for _, p := range d.grid.FloorCells() {
		if !occupied.Has(p) {
			empty = append(empty, p)
		}
	}
	return empty
}

// placeLights scatters point lights over empty cells.
func (d *Dungeon) placeLights(ctx context.Context) {
	tracer := telemetry.Tracer("dungeon")
	_, span := tracer.Start(ctx, "dungeon.place_lights")
	defer span.End()

	count := d.rng.Intn(d.params.MaxLights + 1)
	empty := d.emptyCells()
	for range count {
		if len(empty) == 0 {
			break
		}
		p := empty[d.rng.Intn(len(empty))]
		radius := d.rng.IntRange(minLightRadius, maxLightRadius)
		d.lights = append(d.lights, newLight(d.grid, p, radius))
	}

	span.SetAttributes(
		attribute.Int("dungeon.light_count", len(d.lights)),
		attribute.Int("dungeon.max_lights", d.params.MaxLights),
	)
}
