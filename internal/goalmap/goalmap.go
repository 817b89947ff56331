// Package goalmap computes distance fields ("goal maps") over a walkable grid.
//
// A goal map is built by breadth-first expansion from every goal at once,
// using gruid's paths.PathRange. Each goal starts at its own weight and every
// step costs one, so the value of a cell is the weighted distance to its
// nearest goal. The same field answers shortest-path and reachability
// queries.
//
// Rebuilding costs O(width×height) per distinct goal weight. The map
// rebuilds lazily after goals or obstacles change; that is fine for level
// generation but callers should not change obstacles every frame.
package goalmap

import (
	"math"
	"slices"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"github.com/zyedidia/generic/mapset"
)

// Unreachable is the distance of cells that no goal can reach.
const Unreachable = math.MaxInt32

// Walkable is the terrain a goal map expands over.
type Walkable interface {
	Size() gruid.Point
	IsWalkable(p gruid.Point) bool
}

// Path is a sequence of adjacent cells, both endpoints included.
type Path []gruid.Point

// Steps returns the number of moves needed to follow the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether the path visits q.
func (p Path) Contains(q gruid.Point) bool {
	for _, c := range p {
		if c == q {
			return true
		}
	}
	return false
}

type goal struct {
	p      gruid.Point
	weight int
}

// GoalMap is a distance field toward a set of goals, with an obstacle set
// layered on top of the terrain. It is not safe for concurrent use.
type GoalMap struct {
	grid      Walkable
	size      gruid.Point
	diagonals bool

	goals     []goal
	obstacles mapset.Set[gruid.Point]

	dist  []int
	dirty bool
	nbs   paths.Neighbors
	pr    *paths.PathRange
}

// New creates an empty goal map over grid. With diagonals set, movement is
// 8-connected; otherwise it is 4-connected.
func New(grid Walkable, diagonals bool) *GoalMap {
	size := grid.Size()
	return &GoalMap{
		grid:      grid,
		size:      size,
		diagonals: diagonals,
		obstacles: mapset.New[gruid.Point](),
		dist:      make([]int, size.X*size.Y),
		dirty:     true,
		pr:        paths.NewPathRange(gruid.NewRange(0, 0, size.X, size.Y)),
	}
}

// AddGoal registers p as a goal. Lower weights attract more strongly;
// negative weights are treated as zero.
func (m *GoalMap) AddGoal(p gruid.Point, weight int) {
	if weight < 0 {
		weight = 0
	}
	m.goals = append(m.goals, goal{p: p, weight: weight})
	m.dirty = true
}

// ClearGoals removes every goal.
func (m *GoalMap) ClearGoals() {
	if len(m.goals) == 0 {
		return
	}
	m.goals = m.goals[:0]
	m.dirty = true
}

// ClearObstacles removes every obstacle.
func (m *GoalMap) ClearObstacles() {
	if m.obstacles.Size() == 0 {
		return
	}
	m.obstacles = mapset.New[gruid.Point]()
	m.dirty = true
}

// AddObstacles marks cells as blocked regardless of the terrain under them.
func (m *GoalMap) AddObstacles(points ...gruid.Point) {
	for _, p := range points {
		if !m.obstacles.Has(p) {
			m.obstacles.Put(p)
			m.dirty = true
		}
	}
}

// IsObstacle reports whether p is in the obstacle set.
func (m *GoalMap) IsObstacle(p gruid.Point) bool {
	return m.obstacles.Has(p)
}

// Distance returns the weighted distance from p to its nearest goal.
// The second result is false when p cannot reach any goal.
func (m *GoalMap) Distance(p gruid.Point) (int, bool) {
	if !m.inBounds(p) {
		return Unreachable, false
	}
	m.refresh()
	d := m.dist[m.index(p)]
	return d, d != Unreachable
}

// IsReachable reports whether some goal can be reached from p.
func (m *GoalMap) IsReachable(p gruid.Point) bool {
	_, ok := m.Distance(p)
	return ok
}

// TryFindPath returns a shortest path from p to the nearest goal. It fails
// when p is off the grid, blocked, or cut off from every goal.
func (m *GoalMap) TryFindPath(p gruid.Point) (Path, bool) {
	if !m.passable(p) {
		return nil, false
	}
	m.refresh()

	cur := p
	d := m.dist[m.index(cur)]
	if d == Unreachable {
		return nil, false
	}

	path := Path{cur}
	for {
		next, nd := cur, d
		for _, q := range m.neighbors(cur) {
			if qd := m.dist[m.index(q)]; qd < nd {
				next, nd = q, qd
			}
		}
		if next == cur {
			return path, true
		}
		path = append(path, next)
		cur, d = next, nd
	}
}

func (m *GoalMap) refresh() {
	if m.dirty {
		m.rebuild()
		m.dirty = false
	}
}

// rebuild runs one breadth-first map per distinct goal weight and keeps
// the lowest weighted distance of each cell.
func (m *GoalMap) rebuild() {
	for i := range m.dist {
		m.dist[i] = Unreachable
	}

	byWeight := make(map[int][]gruid.Point)
	for _, g := range m.goals {
		if m.passable(g.p) && !slices.Contains(byWeight[g.weight], g.p) {
			byWeight[g.weight] = append(byWeight[g.weight], g.p)
		}
	}
	weights := make([]int, 0, len(byWeight))
	for w := range byWeight {
		weights = append(weights, w)
	}
	slices.Sort(weights)

	maxCost := m.size.X * m.size.Y
	for _, w := range weights {
		for _, n := range m.pr.BreadthFirstMap(pather{m}, byWeight[w], maxCost) {
			i := m.index(n.P)
			if d := w + n.Cost; d < m.dist[i] {
				m.dist[i] = d
			}
		}
	}
}

// pather expands over passable cells only.
type pather struct {
	m *GoalMap
}

func (p pather) Neighbors(q gruid.Point) []gruid.Point {
	return p.m.neighbors(q)
}

// neighbors lists the passable neighbors of p in a fixed order. The returned
// slice is reused by the next call.
func (m *GoalMap) neighbors(p gruid.Point) []gruid.Point {
	if m.diagonals {
		return m.nbs.All(p, m.passable)
	}
	return m.nbs.Cardinal(p, m.passable)
}

func (m *GoalMap) passable(p gruid.Point) bool {
	return m.inBounds(p) && m.grid.IsWalkable(p) && !m.obstacles.Has(p)
}

func (m *GoalMap) inBounds(p gruid.Point) bool {
	return p.X >= 0 && p.X < m.size.X && p.Y >= 0 && p.Y < m.size.Y
}

func (m *GoalMap) index(p gruid.Point) int {
	return p.Y*m.size.X + p.X
}
