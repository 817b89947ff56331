package dungeon

import (
	"codeberg.org/anaseto/gruid"
)

// UpdateMovableItems advances every monster by one tick. A monster away
// from its anchor walks back onto it when the anchor is free. A monster on
// its anchor steps to a random free cardinal neighbour, or waits when boxed
// in. Monsters are collected before any moves, so each acts once per tick.
func (d *Dungeon) UpdateMovableItems() {
	var monsters []gruid.Point
	for i, g := range d.ground {
		if g.Item.Type == ItemMonster {
			monsters = append(monsters, d.grid.Point(i))
		}
	}

	for _, p := range monsters {
		m := d.ground[d.grid.Index(p)].Item
		if p != m.Origin {
			if d.isEmpty(m.Origin) {
				d.moveItem(p, m.Origin)
			}
			continue
		}

		free := d.nbs.Cardinal(p, d.isEmpty)
		if len(free) == 0 {
			continue
		}
		d.moveItem(p, free[d.rng.Intn(len(free))])
	}
}

// moveItem moves the item on from to the empty cell to, recording the step
// as the item's heading.
func (d *Dungeon) moveItem(from, to gruid.Point) {
	src := d.grid.Index(from)
	item := d.ground[src].Item
	item.Direction = gruid.Point{X: to.X - from.X, Y: to.Y - from.Y}
	d.ground[src].Item = Item{}
	d.ground[d.grid.Index(to)].Item = item
}
