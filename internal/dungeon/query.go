package dungeon

import (
	"fmt"

	"codeberg.org/anaseto/gruid"

	"github.com/samdwyer/duskcrawl/internal/goalmap"
)

// At returns whether p is walkable and the ground on it.
func (d *Dungeon) At(p gruid.Point) (bool, Ground, error) {
	if !d.grid.InBounds(p) {
		return false, Ground{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return d.grid.IsWalkable(p), d.ground[d.grid.Index(p)], nil
}

// IsWalkable reports whether p can be stood on. Off-grid cells are not.
func (d *Dungeon) IsWalkable(p gruid.Point) bool {
	return d.grid.IsWalkable(p)
}

// RegenerateVisible recomputes what can be seen from at. Call it after every
// move.
func (d *Dungeon) RegenerateVisible(at gruid.Point, radius int) {
	d.view.Compute(at, radius, true)
}

// IsVisible reports whether p was in view at the last RegenerateVisible.
func (d *Dungeon) IsVisible(p gruid.Point) bool {
	return d.view.IsInFov(p)
}

// Lights returns the level's lights.
func (d *Dungeon) Lights() []Light {
	lights := make([]Light, len(d.lights))
	copy(lights, d.lights)
	return lights
}

// IsLit reports whether any light reaches p.
func (d *Dungeon) IsLit(p gruid.Point) bool {
	for _, l := range d.lights {
		if l.Illuminates(p) {
			return true
		}
	}
	return false
}

// Brightness sums the light reaching p from every lamp plus the viewer, who
// carries a light of viewRadius. The viewer only counts inside the live view,
// so RegenerateVisible must have been called from viewer. The sum may exceed
// one where lights overlap.
func (d *Dungeon) Brightness(p, viewer gruid.Point, viewRadius int) float64 {
	var b float64
	for _, l := range d.lights {
		b += l.Intensity(p)
	}
	if d.view.IsInFov(p) {
		b += falloff(viewer, p, viewRadius)
	}
	return b
}

// BloodSplat replaces whatever item is on p with blood. Blood never blocks,
// so reachability is not rechecked.
func (d *Dungeon) BloodSplat(p gruid.Point) error {
	if !d.grid.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	d.ground[d.grid.Index(p)].Item = Item{Type: ItemBlood, Visibility: PlayerBoth}
	return nil
}

// PathToExit returns the shortest path from p to the exit around every
// blocking item.
func (d *Dungeon) PathToExit(p gruid.Point) (goalmap.Path, bool) {
	d.blockItems()
	return d.goals.TryFindPath(p)
}

// IsReachable reports whether the exit can be reached from p around every
// blocking item.
func (d *Dungeon) IsReachable(p gruid.Point) bool {
	d.blockItems()
	return d.goals.IsReachable(p)
}
