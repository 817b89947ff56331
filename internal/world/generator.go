package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codeberg.org/anaseto/gruid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/duskcrawl/internal/rng"
	"github.com/samdwyer/duskcrawl/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 32
	DefaultHeight = 32

	// Default room parameters
	DefaultMaxRooms    = 30
	DefaultRoomMinSize = 3
	DefaultRoomMaxSize = 10
)

// ErrInvalidParams is returned when generation parameters cannot produce a map.
var ErrInvalidParams = errors.New("invalid map parameters")

// Params controls the random-rooms generator.
type Params struct {
	Width, Height int
	MaxRooms      int
	RoomMinSize   int // Minimum bounding size of a room, per axis
	RoomMaxSize   int // Maximum bounding size of a room, per axis
}

// DefaultParams returns the standard 32×32 layout.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MaxRooms:    DefaultMaxRooms,
		RoomMinSize: DefaultRoomMinSize,
		RoomMaxSize: DefaultRoomMaxSize,
	}
}

// Validate checks that the parameters describe a map rooms can fit in.
func (p Params) Validate() error {
	switch {
	case p.Width < 3 || p.Height < 3:
		return fmt.Errorf("%w: map %dx%d is smaller than 3x3", ErrInvalidParams, p.Width, p.Height)
	case p.MaxRooms < 0:
		return fmt.Errorf("%w: negative room count %d", ErrInvalidParams, p.MaxRooms)
	case p.RoomMinSize < 2:
		return fmt.Errorf("%w: room min size %d is below 2", ErrInvalidParams, p.RoomMinSize)
	case p.RoomMaxSize < p.RoomMinSize:
		return fmt.Errorf("%w: room max size %d is below min size %d", ErrInvalidParams, p.RoomMaxSize, p.RoomMinSize)
	case p.RoomMaxSize > p.Width-2 || p.RoomMaxSize > p.Height-2:
		return fmt.Errorf("%w: room max size %d does not fit a %dx%d map", ErrInvalidParams, p.RoomMaxSize, p.Width, p.Height)
	}
	return nil
}

// Generate creates a map of non-overlapping rectangular rooms joined by
// corridors. Each room is connected to the one generated before it, so the
// union of floor cells is connected.
func Generate(ctx context.Context, p Params, r *rng.RNG) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	g := NewGrid(p.Width, p.Height)

	for i := 0; i < p.MaxRooms; i++ {
		roomWidth := r.IntRange(p.RoomMinSize, p.RoomMaxSize)
		roomHeight := r.IntRange(p.RoomMinSize, p.RoomMaxSize)

		// Keep one column/row of wall between the room and the map edge.
		room := Room{
			X:      r.Intn(p.Width - roomWidth - 1),
			Y:      r.Intn(p.Height - roomHeight - 1),
			Width:  roomWidth,
			Height: roomHeight,
		}

		overlaps := false
		for _, other := range g.rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			g.rooms = append(g.rooms, room)
		}
	}

	for _, room := range g.rooms {
		g.carveRoom(room)
	}

	for i := 1; i < len(g.rooms); i++ {
		g.carveCorridor(r, g.rooms[i-1], g.rooms[i])
	}

	span.SetAttributes(
		attribute.Int("map.width", p.Width),
		attribute.Int("map.height", p.Height),
		attribute.Int("map.room_count", len(g.rooms)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return g, nil
}

// carveRoom marks the interior of the room as floor.
func (g *Grid) carveRoom(room Room) {
	floor := room.Floor()
	for y := floor.Y; y < floor.Y+floor.Height; y++ {
		for x := floor.X; x < floor.X+floor.Width; x++ {
			g.carve(x, y)
		}
	}
}

// carveCorridor joins the centers of two rooms with an L-shaped corridor.
func (g *Grid) carveCorridor(r *rng.RNG, from, to Room) {
	x1, y1 := from.Center()
	x2, y2 := to.Center()

	if r.Intn(2) == 0 {
		g.carveHorizontalTunnel(x1, x2, y1)
		g.carveVerticalTunnel(y1, y2, x2)
	} else {
		g.carveVerticalTunnel(y1, y2, x1)
		g.carveHorizontalTunnel(x1, x2, y2)
	}
}

func (g *Grid) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.carve(x, y)
	}
}

func (g *Grid) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.carve(x, y)
	}
}

// carve turns an interior cell into floor. The outer ring is never touched.
func (g *Grid) carve(x, y int) {
	if x > 0 && x < g.width-1 && y > 0 && y < g.height-1 {
		g.cells[y*g.width+x] = Cell{Walkable: true, Transparent: true}
	}
}

// FloorCells returns the positions of every walkable cell in index order.
func (g *Grid) FloorCells() []gruid.Point {
	var floor []gruid.Point
	for i, c := range g.cells {
		if c.Walkable {
			floor = append(floor, g.Point(i))
		}
	}
	return floor
}
