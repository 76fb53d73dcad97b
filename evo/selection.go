package evo

import (
	"math/rand"
	"sort"
)

// MinPopulationSize is the smallest population the selector can work with:
// the elite slice never shrinks below two parents.
const MinPopulationSize = 2

// EliteCount returns the number of top-ranked cars whose brains are carried
// into the next generation unmutated: one fifth of the population, but never
// fewer than two.
func EliteCount(popSize int) int {
	n := popSize / 5
	if n < MinPopulationSize {
		n = MinPopulationSize
	}
	return n
}

// Rank returns the cars ordered by descending effective score. The sort is
// stable, so cars with equal scores keep their population order.
func Rank(cars []*Car, distanceWeight float64) []*Car {
	ranked := make([]*Car, len(cars))
	copy(ranked, cars)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score(distanceWeight) > ranked[j].Score(distanceWeight)
	})
	return ranked
}

// NextGeneration produces the brains for the next generation from a finished
// population. The elite slice is cloned verbatim, so fitness already reached
// is never lost across a generation boundary; every remaining slot is filled
// by cloning a uniformly sampled elite parent and mutating the copy.
// Non-elite cars never reproduce.
func NextGeneration(cars []*Car, cfg *Config, rng *rand.Rand) []*Brain {
	ranked := Rank(cars, cfg.Selection.DistanceWeight)
	size := len(ranked)
	elite := EliteCount(size)

	brains := make([]*Brain, 0, size)
	for i := 0; i < elite; i++ {
		brains = append(brains, ranked[i].Brain.Clone())
	}
	for len(brains) < size {
		parent := ranked[rng.Intn(elite)]
		child := parent.Brain.Clone()
		child.Mutate(rng, cfg.Mutation.Rate)
		brains = append(brains, child)
	}
	return brains
}
