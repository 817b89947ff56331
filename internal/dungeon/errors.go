package dungeon

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParams is returned when generation parameters are unusable.
	ErrInvalidParams = errors.New("invalid dungeon parameters")

	// ErrUnsupportedItemType is returned when an item count names a type the
	// generator has no placement rule for.
	ErrUnsupportedItemType = errors.New("unsupported item type")

	// ErrPlacementInfeasible is returned when rejection sampling runs out of
	// attempts. Retrying with another code or fewer items may succeed.
	ErrPlacementInfeasible = errors.New("item placement infeasible")

	// ErrCarveFailed is returned when a carved path leaves the map without
	// meeting any floor.
	ErrCarveFailed = errors.New("path carving failed")

	// ErrOutOfBounds is returned by cell queries off the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// PlacementError describes an item type that could not be placed.
type PlacementError struct {
	Item      ItemType
	Placed    int // Items of this type placed before giving up
	Requested int
	Attempts  int // Candidates rejected for the item that failed
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%s: placed %d of %d %s items, gave up after %d attempts",
		ErrPlacementInfeasible, e.Placed, e.Requested, e.Item, e.Attempts)
}

func (e *PlacementError) Unwrap() error {
	return ErrPlacementInfeasible
}
