// Package world provides the cell grid and the random-rooms map generator.
package world

import (
	"strings"

	"codeberg.org/anaseto/gruid"
)

// Cell holds the movement and sight properties of a single grid position.
type Cell struct {
	Walkable    bool
	Transparent bool
}

// Rune returns the debug-dump character for the cell.
func (c Cell) Rune() rune {
	switch {
	case c.Walkable && c.Transparent:
		return '.'
	case c.Walkable:
		return 's'
	case c.Transparent:
		return 'o'
	default:
		return '#'
	}
}

// Grid is a width×height array of cells stored row by row. The origin is the
// bottom-left corner and y grows upwards.
type Grid struct {
	width  int
	height int
	cells  []Cell
	rooms  []Room
}

// NewGrid creates a grid filled with walls.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the grid dimensions as a point.
func (g *Grid) Size() gruid.Point {
	return gruid.Point{X: g.width, Y: g.height}
}

// Rooms returns the rooms carved by the generator, in generation order.
func (g *Grid) Rooms() []Room {
	return g.rooms
}

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p gruid.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Index returns the flat index of p. p must be in bounds.
func (g *Grid) Index(p gruid.Point) int {
	return p.Y*g.width + p.X
}

// Point returns the position of flat index i.
func (g *Grid) Point(i int) gruid.Point {
	return gruid.Point{X: i % g.width, Y: i / g.width}
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// At returns the cell at p. Out-of-bounds positions read as walls.
func (g *Grid) At(p gruid.Point) Cell {
	if !g.InBounds(p) {
		return Cell{}
	}
	return g.cells[g.Index(p)]
}

// Set overwrites the cell at p. Out-of-bounds writes are ignored.
func (g *Grid) Set(p gruid.Point, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[g.Index(p)] = c
}

// IsWalkable returns true if the given position can be walked on.
func (g *Grid) IsWalkable(p gruid.Point) bool {
	return g.At(p).Walkable
}

// IsTransparent returns true if light passes through the given position.
func (g *Grid) IsTransparent(p gruid.Point) bool {
	return g.At(p).Transparent
}

// String dumps the grid one row per line, top row first, so the output reads
// the same way the map is drawn on screen.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y*g.width+x].Rune())
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
