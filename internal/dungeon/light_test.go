package dungeon

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestLightFallsOffWithDistance(t *testing.T) {
	d := openRoom(t, 15, 15)
	source := gruid.Point{X: 7, Y: 7}
	l := newLight(d.grid, source, 5)

	if got := l.Intensity(source); got != 1 {
		t.Errorf("Intensity(source) = %v, want 1", got)
	}
	prev := l.Intensity(source)
	for x := 8; x <= 12; x++ {
		got := l.Intensity(gruid.Point{X: x, Y: 7})
		if got > prev {
			t.Errorf("Intensity at distance %d = %v, brighter than %v closer in", x-7, got, prev)
		}
		if got <= 0 {
			t.Errorf("Intensity at distance %d = %v, want lit", x-7, got)
		}
		prev = got
	}
	if got := l.Intensity(gruid.Point{X: 13, Y: 7}); got != 0 {
		t.Errorf("Intensity past radius = %v, want 0", got)
	}
	if a, b := l.Intensity(gruid.Point{X: 9, Y: 7}), l.Intensity(gruid.Point{X: 11, Y: 7}); a <= b {
		t.Errorf("Intensity(2) = %v is not above Intensity(4) = %v", a, b)
	}
}

func TestLightIsBlockedByWalls(t *testing.T) {
	// Two rooms split by a wall at x=5.
	var floor []gruid.Point
	for y := 1; y <= 5; y++ {
		for x := 1; x <= 9; x++ {
			if x != 5 {
				floor = append(floor, gruid.Point{X: x, Y: y})
			}
		}
	}
	d := handBuilt(t, 11, 7, floor)
	l := newLight(d.grid, gruid.Point{X: 3, Y: 3}, 6)

	if !l.Illuminates(gruid.Point{X: 5, Y: 3}) {
		t.Error("light does not reach the dividing wall")
	}
	if l.Illuminates(gruid.Point{X: 7, Y: 3}) {
		t.Error("light leaks through the wall")
	}
	if got := l.Intensity(gruid.Point{X: 7, Y: 3}); got != 0 {
		t.Errorf("Intensity behind wall = %v, want 0", got)
	}
}

func TestBrightnessSumsLightsAndViewer(t *testing.T) {
	d := openRoom(t, 15, 15)
	a := newLight(d.grid, gruid.Point{X: 4, Y: 7}, 4)
	b := newLight(d.grid, gruid.Point{X: 6, Y: 7}, 4)
	d.lights = []Light{a, b}

	viewer := gruid.Point{X: 11, Y: 7}
	d.RegenerateVisible(viewer, 3)

	p := gruid.Point{X: 5, Y: 7}
	want := a.Intensity(p) + b.Intensity(p)
	if got := d.Brightness(p, viewer, 3); got != want {
		t.Errorf("Brightness between lights = %v, want %v", got, want)
	}
	if d.IsVisible(p) {
		t.Fatalf("%v should be outside the viewer's radius", p)
	}

	near := gruid.Point{X: 12, Y: 7}
	if got := d.Brightness(near, viewer, 3); got != 1 {
		t.Errorf("Brightness next to viewer = %v, want 1", got)
	}

	dark := gruid.Point{X: 13, Y: 1}
	if got := d.Brightness(dark, viewer, 3); got != 0 {
		t.Errorf("Brightness in an unlit corner = %v, want 0", got)
	}
	if d.IsLit(dark) {
		t.Errorf("IsLit(%v) = true, want false", dark)
	}
	if !d.IsLit(p) {
		t.Errorf("IsLit(%v) = false, want true", p)
	}
}

func TestLightsReturnsCopy(t *testing.T) {
	d := openRoom(t, 9, 9)
	d.lights = []Light{newLight(d.grid, gruid.Point{X: 4, Y: 4}, 2)}

	lights := d.Lights()
	lights[0] = Light{}
	if d.Lights()[0].Point() != (gruid.Point{X: 4, Y: 4}) {
		t.Error("Lights() exposed internal storage")
	}
}
