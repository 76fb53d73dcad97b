// Command evorace-headless runs the full evolutionary schedule without a
// window, prints per-generation progress and optionally records each
// generation to SQLite and saves the best controller to a file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/evorace/evorace-go/evo"
	"github.com/evorace/evorace-go/stats"
	"github.com/evorace/evorace-go/track"
)

func main() {
	configPath := flag.String("config", "", "path to an INI config file (defaults apply when empty)")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	dbPath := flag.String("db", "", "SQLite file to record generation history to (optional)")
	bestOut := flag.String("best-out", "", "file to save the best controller to (optional)")
	flag.Parse()

	cfg := evo.DefaultConfig()
	if *configPath != "" {
		fmt.Printf("Loading configuration from: %s\n", *configPath)
		loaded, err := evo.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = loaded
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	ctx := context.Background()
	var recorder stats.Recorder = stats.NewMemoryRecorder()
	if *dbPath != "" {
		recorder = stats.NewSQLiteRecorder(*dbPath)
	}
	if err := recorder.Init(ctx); err != nil {
		log.Fatalf("Failed to initialize recorder: %v", err)
	}
	defer recorder.Close()

	tr := track.Generate(&cfg.Track)
	sim, err := evo.NewSimulation(cfg, tr, tr.StartPose(), rng)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	runID := uuid.NewString()
	fmt.Printf("Run %s: %d cars, %d generations, seed %d\n",
		runID, cfg.Simulation.PopulationSize, cfg.Simulation.MaxGenerations, *seed)

	started := time.Now()
	var totalTicks int
	var best *evo.Brain
	var bestFitness float64

	for sim.State() != evo.StateEnded {
		summary, err := sim.Step()
		if err != nil {
			log.Fatalf("Generation %d failed: %v", sim.Generation(), err)
		}
		if summary == nil {
			continue
		}

		totalTicks += summary.Ticks
		if best == nil || summary.BestFitness > bestFitness {
			best = summary.BestBrain
			bestFitness = summary.BestFitness
		}

		fmt.Printf("Generation %3d: %4d ticks, %2d survivors, best %.1f, mean %.1f\n",
			summary.Generation, summary.Ticks, summary.Survivors,
			summary.BestFitness, summary.MeanFitness)

		payload, err := evo.EncodeBrain(summary.BestBrain)
		if err != nil {
			log.Fatalf("Failed to encode best brain: %v", err)
		}
		rec := stats.GenerationRecord{
			RunID:       runID,
			Generation:  summary.Generation,
			Ticks:       summary.Ticks,
			Survivors:   summary.Survivors,
			BestFitness: summary.BestFitness,
			MeanFitness: summary.MeanFitness,
			BestBrain:   payload,
		}
		if err := recorder.RecordGeneration(ctx, rec); err != nil {
			log.Fatalf("Failed to record generation %d: %v", summary.Generation, err)
		}
	}

	fmt.Println("\n--- Evolution Complete ---")
	fmt.Printf("Generations: %d\n", sim.Generation())
	fmt.Printf("Ticks simulated: %s\n", humanize.Comma(int64(totalTicks)))
	fmt.Printf("Best fitness: %.1f\n", bestFitness)
	fmt.Printf("Elapsed: %s\n", time.Since(started).Round(time.Millisecond))

	if *bestOut != "" && best != nil {
		if err := evo.SaveBrain(best, *bestOut); err != nil {
			log.Fatalf("Failed to save best controller: %v", err)
		}
		fmt.Printf("Best controller saved to %s\n", *bestOut)
	}
}
