package dungeon

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
)

// GroundKind classifies the terrain of a cell.
type GroundKind int

const (
	GroundWall GroundKind = iota
	GroundGrass
	GroundWater
	GroundBridge
)

// String returns a human-readable ground name.
func (g GroundKind) String() string {
	switch g {
	case GroundWall:
		return "wall"
	case GroundGrass:
		return "grass"
	case GroundWater:
		return "water"
	case GroundBridge:
		return "bridge"
	default:
		return "unknown"
	}
}

// ItemType tags what occupies a cell. The zero value means no item.
type ItemType int

const (
	ItemNone ItemType = iota
	ItemExit
	ItemMonster
	ItemPit
	ItemMonument
	ItemBlood
	ItemDoor
	ItemKey
	ItemWeapon
	ItemPasscode
)

var itemNames = [...]string{
	ItemNone:     "none",
	ItemExit:     "exit",
	ItemMonster:  "monster",
	ItemPit:      "pit",
	ItemMonument: "monument",
	ItemBlood:    "blood",
	ItemDoor:     "door",
	ItemKey:      "key",
	ItemWeapon:   "weapon",
	ItemPasscode: "passcode",
}

// String returns a human-readable item name.
func (t ItemType) String() string {
	if t < 0 || int(t) >= len(itemNames) {
		return fmt.Sprintf("item(%d)", int(t))
	}
	return itemNames[t]
}

// ParseItemType looks an item type up by name.
func ParseItemType(name string) (ItemType, error) {
	for t, n := range itemNames {
		if n == name {
			return ItemType(t), nil
		}
	}
	return ItemNone, fmt.Errorf("%w: %q", ErrUnsupportedItemType, name)
}

// Blocking reports whether the item stops movement. Exits are goals and
// blood is cosmetic; everything else is in the way.
func (t ItemType) Blocking() bool {
	return t != ItemNone && t != ItemExit && t != ItemBlood
}

// PlayerType is a set of players.
type PlayerType int

const (
	PlayerNone PlayerType = 0
	Player1    PlayerType = 1 << 0
	Player2    PlayerType = 1 << 1
	PlayerBoth            = Player1 | Player2
)

// Has reports whether every player in q is in p.
func (p PlayerType) Has(q PlayerType) bool {
	return p&q == q
}

// String returns a human-readable player set.
func (p PlayerType) String() string {
	switch p {
	case PlayerNone:
		return "none"
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	case PlayerBoth:
		return "both"
	default:
		return fmt.Sprintf("players(%d)", int(p))
	}
}

// Item is a value stored in a cell.
type Item struct {
	Type       ItemType
	Visibility PlayerType // Players whose view renders the item

	// Patrol state, monsters only.
	Origin    gruid.Point // Anchor the monster returns to
	Direction gruid.Point // Last step taken (initially a random heading)
}

// Ground is the terrain of a cell plus whatever item sits on it.
type Ground struct {
	Kind GroundKind
	Item Item
}

// HasItem reports whether an item occupies the cell.
func (g Ground) HasItem() bool {
	return g.Item.Type != ItemNone
}

// Corner is one of the four cells just inside the map's corners.
type Corner int

const (
	BottomLeft Corner = iota
	BottomRight
	TopLeft
	TopRight

	cornerCount
)

// Diagonal headings toward the opposite corner.
var carveDirections = [cornerCount]gruid.Point{
	BottomLeft:  {X: 1, Y: 1},
	BottomRight: {X: -1, Y: 1},
	TopLeft:     {X: 1, Y: -1},
	TopRight:    {X: -1, Y: -1},
}

// CarveDirection returns the diagonal heading from c toward the opposite
// corner. It panics on a value outside the four corners.
func (c Corner) CarveDirection() gruid.Point {
	if c < 0 || c >= cornerCount {
		panic(fmt.Sprintf("dungeon: invalid corner %d", int(c)))
	}
	return carveDirections[c]
}

// String returns a human-readable corner name.
func (c Corner) String() string {
	switch c {
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	default:
		return "unknown"
	}
}

// cardinals are the patrol headings, in draw order.
var cardinals = [4]gruid.Point{
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
}
