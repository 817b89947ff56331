package dungeon

import (
	"fmt"

	"codeberg.org/anaseto/gruid"

	"github.com/samdwyer/duskcrawl/internal/world"
)

const (
	riverPasses   = 2
	riverMaxSteps = 100
)

// interior reports whether p lies inside the outer wall ring.
func (d *Dungeon) interior(p gruid.Point) bool {
	return p.X > 0 && p.X < d.grid.Width()-1 && p.Y > 0 && p.Y < d.grid.Height()-1
}

// carvePath digs from start toward dir until it meets floor, alternating
// horizontal and vertical steps so the tunnel stays 4-connected.
func (d *Dungeon) carvePath(start, dir gruid.Point) error {
	p := start
	for i := 0; !d.grid.IsWalkable(p); i++ {
		if !d.interior(p) {
			return fmt.Errorf("%w: tunnel from %v reached %v without meeting floor", ErrCarveFailed, start, p)
		}
		d.dig(p)
		if i%2 == 0 {
			p.X += dir.X
		} else {
			p.Y += dir.Y
		}
	}
	return nil
}

// dig turns p into walkable ground. Digging through water leaves a bridge.
func (d *Dungeon) dig(p gruid.Point) {
	i := d.grid.Index(p)
	d.grid.Set(p, world.Cell{Walkable: true, Transparent: true})
	if d.ground[i].Kind == GroundWater {
		d.ground[i].Kind = GroundBridge
	} else {
		d.ground[i].Kind = GroundGrass
	}
}

// placeRiver runs the river from a random corner toward the opposite one.
func (d *Dungeon) placeRiver() {
	c := Corner(d.rng.Intn(int(cornerCount)))
	start := d.cornerPosition(c)
	dir := c.CarveDirection()
	for range riverPasses {
		d.carveRiver(start, dir)
	}
}

// carveRiver meanders from start, advancing zero or one cell per axis each
// step, and floods a band one to two cells wide across the heading.
func (d *Dungeon) carveRiver(start, dir gruid.Point) {
	across := gruid.Point{X: dir.X, Y: -dir.Y}
	p := start
	for step := 0; step < riverMaxSteps && d.grid.InBounds(p); step++ {
		d.flood(p)
		d.flood(p.Add(across))
		if d.rng.Bool() {
			d.flood(gruid.Point{X: p.X - across.X, Y: p.Y - across.Y})
		}
		p.X += d.rng.Intn(2) * dir.X
		p.Y += d.rng.Intn(2) * dir.Y
	}
}

// flood turns rock into water and floor into a bridge. Walkability never
// changes, so the river cannot cut the level in two.
func (d *Dungeon) flood(p gruid.Point) {
	if !d.grid.InBounds(p) {
		return
	}
	i := d.grid.Index(p)
	if d.grid.IsWalkable(p) {
		d.ground[i].Kind = GroundBridge
		return
	}
	d.grid.Set(p, world.Cell{Transparent: true})
	d.ground[i].Kind = GroundWater
}
