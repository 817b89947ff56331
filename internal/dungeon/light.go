package dungeon

import (
	"math"

	"codeberg.org/anaseto/gruid"

	"github.com/samdwyer/duskcrawl/internal/fov"
)

const (
	minLightRadius = 2
	maxLightRadius = 6
)

// Light is a point light. Its lit area is computed once at creation.
type Light struct {
	point  gruid.Point
	radius int
	fov    *fov.FOV
}

func newLight(grid fov.Transparent, p gruid.Point, radius int) Light {
	f := fov.New(grid)
	f.Compute(p, radius, true)
	return Light{point: p, radius: radius, fov: f}
}

// Point returns the light's position.
func (l Light) Point() gruid.Point { return l.point }

// Radius returns how far the light reaches.
func (l Light) Radius() int { return l.radius }

// Illuminates reports whether the light reaches p.
func (l Light) Illuminates(p gruid.Point) bool { return l.fov.IsInFov(p) }

// Intensity returns the light's contribution at p, in [0, 1].
func (l Light) Intensity(p gruid.Point) float64 {
	if !l.Illuminates(p) {
		return 0
	}
	return falloff(l.point, p, l.radius)
}

// falloff is full brightness next to the source, fading linearly with
// euclidean distance to nothing just past radius.
func falloff(source, p gruid.Point, radius int) float64 {
	if radius <= 0 {
		if source == p {
			return 1
		}
		return 0
	}
	dx, dy := float64(p.X-source.X), float64(p.Y-source.Y)
	dist := math.Sqrt(dx*dx + dy*dy)
	b := 1 - (dist-1)/float64(radius)
	return min(max(b, 0), 1)
}
