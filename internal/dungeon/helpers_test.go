package dungeon

import (
	"testing"

	"codeberg.org/anaseto/gruid"

	"github.com/samdwyer/duskcrawl/internal/rng"
	"github.com/samdwyer/duskcrawl/internal/world"
)

// handBuilt wraps a grid whose floor is exactly the listed cells.
func handBuilt(t *testing.T, w, h int, floor []gruid.Point) *Dungeon {
	t.Helper()
	g := world.NewGrid(w, h)
	for _, p := range floor {
		g.Set(p, world.Cell{Walkable: true, Transparent: true})
	}
	p := DefaultParams("AAAA")
	p.Width, p.Height = w, h
	return assemble(p, rng.New(7), g)
}

// openRoom is a w×h map whose interior is all floor.
func openRoom(t *testing.T, w, h int) *Dungeon {
	t.Helper()
	var floor []gruid.Point
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			floor = append(floor, gruid.Point{X: x, Y: y})
		}
	}
	return handBuilt(t, w, h, floor)
}

// corridor is a single row of floor from (1,1) to (length,1).
func corridor(t *testing.T, length int) *Dungeon {
	t.Helper()
	var floor []gruid.Point
	for x := 1; x <= length; x++ {
		floor = append(floor, gruid.Point{X: x, Y: 1})
	}
	return handBuilt(t, length+2, 3, floor)
}

func (d *Dungeon) putItem(p gruid.Point, item Item) {
	d.ground[d.grid.Index(p)].Item = item
}

func (d *Dungeon) itemAt(p gruid.Point) Item {
	return d.ground[d.grid.Index(p)].Item
}

// cellsWith lists every cell holding an item of type t.
func (d *Dungeon) cellsWith(t ItemType) []gruid.Point {
	var cells []gruid.Point
	for i, g := range d.ground {
		if g.Item.Type == t {
			cells = append(cells, d.grid.Point(i))
		}
	}
	return cells
}

// unreachableItems floods cardinally from the entrance over walkable cells
// free of blocking items and returns every blocking item with no flooded
// neighbour.
func (d *Dungeon) unreachableItems() []gruid.Point {
	seen := map[gruid.Point]bool{d.entrance: true}
	queue := []gruid.Point{d.entrance}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, dir := range cardinals {
			q := p.Add(dir)
			if seen[q] || !d.grid.InBounds(q) || !d.grid.IsWalkable(q) || d.itemAt(q).Type.Blocking() {
				continue
			}
			seen[q] = true
			queue = append(queue, q)
		}
	}

	var cut []gruid.Point
	for i, g := range d.ground {
		if !g.Item.Type.Blocking() {
			continue
		}
		p := d.grid.Point(i)
		touched := false
		for _, dir := range cardinals {
			if seen[p.Add(dir)] {
				touched = true
			}
		}
		if !touched {
			cut = append(cut, p)
		}
	}
	return cut
}
