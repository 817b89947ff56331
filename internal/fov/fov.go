// Package fov computes fields of view with symmetric shadow casting.
//
// The scan itself is gruid's rl.FOV.SSCVisionMap: a floor cell is visible
// only when its center lies inside the visible arc, so if A sees B then B
// sees A for the same radius and occluders. This package trims that result
// to a euclidean radius and optionally hides the opaque cells on its edge.
package fov

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// Transparent is the terrain a field of view is computed over.
type Transparent interface {
	Size() gruid.Point
	IsTransparent(p gruid.Point) bool
}

// FOV holds the result of the most recent computation from one origin.
type FOV struct {
	grid    Transparent
	size    gruid.Point
	ssc     *rl.FOV
	visible []bool
}

// New creates an empty field of view over grid.
func New(grid Transparent) *FOV {
	size := grid.Size()
	return &FOV{
		grid:    grid,
		size:    size,
		ssc:     rl.NewFOV(gruid.NewRange(0, 0, size.X, size.Y)),
		visible: make([]bool, size.X*size.Y),
	}
}

// Compute recalculates the field of view from origin. Cells farther than
// radius (euclidean) are never visible. With lightWalls set, opaque cells
// on the edge of the view are reported visible as well.
func (f *FOV) Compute(origin gruid.Point, radius int, lightWalls bool) {
	clear(f.visible)
	if !f.inBounds(origin) || radius < 0 {
		return
	}
	f.visible[f.index(origin)] = true

	for _, p := range f.ssc.SSCVisionMap(origin, radius, f.transparent, true) {
		dx, dy := p.X-origin.X, p.Y-origin.Y
		if dx*dx+dy*dy > radius*radius {
			continue
		}
		if !lightWalls && !f.grid.IsTransparent(p) {
			continue
		}
		f.visible[f.index(p)] = true
	}
}

func (f *FOV) transparent(p gruid.Point) bool {
	return f.inBounds(p) && f.grid.IsTransparent(p)
}

// IsInFov reports whether p was visible in the last computation.
func (f *FOV) IsInFov(p gruid.Point) bool {
	return f.inBounds(p) && f.visible[f.index(p)]
}

func (f *FOV) inBounds(p gruid.Point) bool {
	return p.X >= 0 && p.X < f.size.X && p.Y >= 0 && p.Y < f.size.Y
}

func (f *FOV) index(p gruid.Point) int {
	return p.Y*f.size.X + p.X
}
