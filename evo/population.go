package evo

import (
	"fmt"
	"math/rand"
)

// Run tracks the state that survives generation boundaries within a single
// run: the generation counter and the best fitness ever observed. It is
// owned by the simulation and threaded through explicitly; there are no
// package-level counters. A restart replaces it wholesale.
type Run struct {
	Generation  int
	BestFitness float64
}

// Observe folds a fitness value into the best-ever watermark.
func (r *Run) Observe(fitness float64) {
	if fitness > r.BestFitness {
		r.BestFitness = fitness
	}
}

// Population is the ordered set of cars sharing one generation. Order is
// stable for the whole generation; the selector's tie-break depends on it.
type Population struct {
	Cars []*Car
}

// NewPopulation creates a population at the given start pose. brains carries
// the controllers produced by the previous generation's selection; it may be
// nil for generation zero, in which case every car gets a fresh random brain.
func NewPopulation(cfg *Config, start Pose, brains []*Brain, rng *rand.Rand) (*Population, error) {
	size := cfg.Simulation.PopulationSize
	if size < MinPopulationSize {
		return nil, fmt.Errorf("config error: population_size %d is below the minimum elite count %d", size, MinPopulationSize)
	}
	if brains != nil && len(brains) != size {
		return nil, fmt.Errorf("population: got %d brains for %d slots", len(brains), size)
	}

	cars := make([]*Car, size)
	for i := range cars {
		brain := NewRandomBrain(rng)
		if brains != nil {
			brain = brains[i]
		}
		cars[i] = NewCar(i, start, brain)
	}
	return &Population{Cars: cars}, nil
}

// AliveCount returns the number of cars still alive.
func (p *Population) AliveCount() int {
	count := 0
	for _, c := range p.Cars {
		if c.Alive {
			count++
		}
	}
	return count
}
