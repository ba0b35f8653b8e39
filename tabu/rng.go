// SPDX-License-Identifier: MIT

// RNG utilities shared by the engine and its strategies.
//
// Goals:
//   - Determinism: same seed ⇒ identical run, given the documented draw order.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every Engine owns its own stream.
//   - Use DeriveSeed to give independent engines decorrelated seeds.

package tabu

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer. Batch drivers use it to seed one engine per
// (instance, configuration) pair without correlated streams.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// drawCache memoizes uniform draws per enumeration position within one
// iteration. Positions are filled lazily and in order, so a phase that
// revisits a position reuses the earlier draw instead of consuming a new one.
type drawCache struct {
	rng   *rand.Rand
	draws []float64
}

func newDrawCache(rng *rand.Rand, capacity int) *drawCache {
	return &drawCache{rng: rng, draws: make([]float64, 0, capacity)}
}

// at returns the draw for pos, drawing every missing position up to pos first.
func (d *drawCache) at(pos int) float64 {
	for len(d.draws) <= pos {
		d.draws = append(d.draws, d.rng.Float64())
	}

	return d.draws[pos]
}

// drawn returns how many positions have been drawn so far.
func (d *drawCache) drawn() int { return len(d.draws) }
