// Package entity provides the party the players control.
package entity

import (
	"codeberg.org/anaseto/gruid"

	"github.com/samdwyer/duskcrawl/internal/dungeon"
)

// Party is the two players moving as one. Each player sees a different
// half of the hazards, so the party tracks whose view is on screen.
type Party struct {
	Pos    gruid.Point        // Current position in the dungeon
	Viewer dungeon.PlayerType // Player whose view is shown
	Alive  bool
}

// NewParty creates a party at the given position, showing Player1's view.
func NewParty(pos gruid.Point) *Party {
	return &Party{
		Pos:    pos,
		Viewer: dungeon.Player1,
		Alive:  true,
	}
}

// Target returns the cell one step of delta away.
func (p *Party) Target(delta gruid.Point) gruid.Point {
	return p.Pos.Add(delta)
}

// Move updates the party position by the given delta.
func (p *Party) Move(delta gruid.Point) {
	p.Pos = p.Pos.Add(delta)
}

// SwapViewer hands the screen to the other player.
func (p *Party) SwapViewer() {
	if p.Viewer == dungeon.Player1 {
		p.Viewer = dungeon.Player2
	} else {
		p.Viewer = dungeon.Player1
	}
}
