package dungeon

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

func monsterAt(origin gruid.Point) Item {
	return Item{Type: ItemMonster, Visibility: Player1, Origin: origin, Direction: gruid.Point{X: 1}}
}

func TestDisplacedMonsterReturnsToAnchor(t *testing.T) {
	d := openRoom(t, 7, 7)
	anchor := gruid.Point{X: 3, Y: 3}
	displaced := gruid.Point{X: 4, Y: 3}
	d.putItem(displaced, monsterAt(anchor))

	d.UpdateMovableItems()

	if got := d.itemAt(anchor); got.Type != ItemMonster {
		t.Fatalf("anchor holds %s, want the monster", got.Type)
	}
	if got := d.itemAt(displaced); got.Type != ItemNone {
		t.Errorf("old cell still holds %s", got.Type)
	}
	if got := d.itemAt(anchor).Direction; got != (gruid.Point{X: -1}) {
		t.Errorf("direction = %v, want (-1,0)", got)
	}
}

func TestDisplacedMonsterWaitsForBlockedAnchor(t *testing.T) {
	d := openRoom(t, 7, 7)
	anchor := gruid.Point{X: 3, Y: 3}
	displaced := gruid.Point{X: 3, Y: 4}
	d.putItem(displaced, monsterAt(anchor))
	d.putItem(anchor, Item{Type: ItemPit, Visibility: Player2})

	d.UpdateMovableItems()

	if got := d.itemAt(displaced); got.Type != ItemMonster {
		t.Fatalf("monster left %v while its anchor was blocked", displaced)
	}
	if got := d.itemAt(anchor); got.Type != ItemPit {
		t.Errorf("anchor holds %s, want the pit", got.Type)
	}
}

func TestAnchoredMonsterPatrols(t *testing.T) {
	d := openRoom(t, 7, 7)
	anchor := gruid.Point{X: 3, Y: 3}
	d.putItem(anchor, monsterAt(anchor))

	for tick := 0; tick < 10; tick++ {
		d.UpdateMovableItems()

		monsters := d.cellsWith(ItemMonster)
		if len(monsters) != 1 {
			t.Fatalf("tick %d: %d monsters, want 1", tick, len(monsters))
		}
		p := monsters[0]

		// Out on even ticks, home on odd ones.
		if tick%2 == 1 {
			if p != anchor {
				t.Fatalf("tick %d: monster at %v, want back on %v", tick, p, anchor)
			}
			continue
		}
		step := gruid.Point{X: p.X - anchor.X, Y: p.Y - anchor.Y}
		if abs(step.X)+abs(step.Y) != 1 {
			t.Fatalf("tick %d: monster moved %v from its anchor, want one cardinal step", tick, step)
		}
		m := d.itemAt(p)
		if m.Direction != step {
			t.Errorf("tick %d: direction = %v, want %v", tick, m.Direction, step)
		}
		if m.Origin != anchor {
			t.Errorf("tick %d: origin moved to %v", tick, m.Origin)
		}
	}
}

func TestBoxedInMonsterStays(t *testing.T) {
	d := handBuilt(t, 5, 5, []gruid.Point{{X: 2, Y: 2}})
	cell := gruid.Point{X: 2, Y: 2}
	d.putItem(cell, monsterAt(cell))

	d.UpdateMovableItems()

	if got := d.itemAt(cell); got.Type != ItemMonster {
		t.Fatalf("boxed-in monster left its cell")
	}
}

func TestMonsterNeverStepsOntoEntranceOrItems(t *testing.T) {
	d := corridor(t, 3)
	d.entrance = gruid.Point{X: 1, Y: 1}
	monster := gruid.Point{X: 2, Y: 1}
	d.putItem(monster, monsterAt(monster))
	d.putItem(gruid.Point{X: 3, Y: 1}, Item{Type: ItemExit, Visibility: PlayerBoth})

	for range 5 {
		d.UpdateMovableItems()
		if got := d.itemAt(monster); got.Type != ItemMonster {
			t.Fatal("monster moved onto the entrance or the exit")
		}
	}
}

func TestMonstersActInIndexOrder(t *testing.T) {
	d := corridor(t, 4)
	d.entrance = gruid.Point{X: 4, Y: 1}
	a, b := gruid.Point{X: 1, Y: 1}, gruid.Point{X: 2, Y: 1}
	// a wants b's cell back. a acts first and finds it taken, so it waits
	// even though b steps away later in the same tick.
	d.putItem(a, monsterAt(gruid.Point{X: 2, Y: 1}))
	d.putItem(b, monsterAt(b))

	d.UpdateMovableItems()
	if got := d.itemAt(gruid.Point{X: 3, Y: 1}); got.Type != ItemMonster {
		t.Fatalf("anchored monster did not step to the only free cell")
	}
	if got := d.itemAt(a); got.Type != ItemMonster {
		t.Fatalf("displaced monster reclaimed its anchor in the tick it was freed")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
