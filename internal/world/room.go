package world

// Room is the bounding rectangle of a generated room. The outermost ring of
// the rectangle stays wall; only the floor returned by Floor is carved.
type Room struct {
	X, Y          int // Bottom-left corner of the bounding rectangle
	Width, Height int // Dimensions of the bounding rectangle
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Floor returns the carved interior of the room.
func (r Room) Floor() Room {
	return Room{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 1, Height: r.Height - 1}
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
