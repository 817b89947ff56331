// Package rng provides the deterministic random source that drives dungeon
// generation. Every draw is a function of the seed and the number of draws
// taken so far, so a (seed, draws) pair fully describes the generator state.
package rng

import "math/rand/v2"

// seedStream is the fixed second PCG word. Only the 16-bit game seed varies.
const seedStream = 0x9e3779b97f4a7c15

// State is a snapshot of an RNG that can be restored later.
type State struct {
	Seed  uint16
	Draws uint64
}

// countingSource wraps a PCG and counts the words it hands out.
type countingSource struct {
	pcg   *rand.PCG
	draws uint64
}

func (s *countingSource) Uint64() uint64 {
	s.draws++
	return s.pcg.Uint64()
}

// RNG is a seeded pseudo-random generator with save/restore support.
// It is not safe for concurrent use.
type RNG struct {
	seed uint16
	src  *countingSource
	rand *rand.Rand
}

// New returns an RNG seeded with seed.
func New(seed uint16) *RNG {
	src := &countingSource{pcg: rand.NewPCG(uint64(seed), seedStream)}
	return &RNG{
		seed: seed,
		src:  src,
		rand: rand.New(src),
	}
}

// FromGameCode decodes a game code and returns an RNG seeded from it.
func FromGameCode(code string) (*RNG, error) {
	seed, err := DecodeGameCode(code)
	if err != nil {
		return nil, err
	}
	return New(seed), nil
}

// Seed returns the seed the generator was created with.
func (r *RNG) Seed() uint16 {
	return r.seed
}

// Intn returns a value in [0, max). It panics if max <= 0.
func (r *RNG) Intn(max int) int {
	return r.rand.IntN(max)
}

// IntRange returns a value in [min, max], both ends inclusive.
func (r *RNG) IntRange(min, max int) int {
	return min + r.rand.IntN(max-min+1)
}

// Bool returns true or false with equal probability.
func (r *RNG) Bool() bool {
	return r.rand.IntN(2) == 1
}

// Save snapshots the generator.
func (r *RNG) Save() State {
	return State{Seed: r.seed, Draws: r.src.draws}
}

// Restore rewinds (or fast-forwards) the generator to a saved state by
// reseeding and replaying the recorded number of source draws.
func (r *RNG) Restore(s State) {
	if s == r.Save() {
		return
	}
	r.seed = s.Seed
	r.src.pcg.Seed(uint64(s.Seed), seedStream)
	r.src.draws = 0
	for r.src.draws < s.Draws {
		r.src.Uint64()
	}
}

// Probe runs fn and then restores the generator to the state it had before
// fn was called. Draws made inside fn never leak into the main sequence.
func (r *RNG) Probe(fn func()) {
	state := r.Save()
	defer r.Restore(state)
	fn()
}
