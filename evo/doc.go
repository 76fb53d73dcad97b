// Package evo implements the neuroevolution engine behind the racing
// simulation: a fixed-topology feedforward controller, distance sensors cast
// against a collision oracle, per-tick car updates, and the generational
// selector that breeds the next population from the current one.
//
// The engine is single-threaded and host-driven. A Simulation advances one
// discrete tick per Step call and hands control back between ticks, so the
// host (a window loop or a batch runner) owns the clock. Rendering, input and
// track geometry live outside this package; the only capability the engine
// consumes is the World point-membership oracle.
//
// Basic usage:
//
//	cfg := evo.DefaultConfig()
//	sim, err := evo.NewSimulation(cfg, world, start, rng)
//	if err != nil {
//		log.Fatalf("Error creating simulation: %v", err)
//	}
//
//	for sim.State() != evo.StateEnded {
//		summary, err := sim.Step()
//		if err != nil {
//			log.Fatalf("Error stepping simulation: %v", err)
//		}
//		if summary != nil {
//			fmt.Printf("generation %d finished, best fitness %.1f\n",
//				summary.Generation, summary.BestFitness)
//		}
//	}
package evo
