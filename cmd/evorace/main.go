// Command evorace runs the neural racing simulation in a window: the
// population drives the oval while the HUD tracks generations, and the
// keyboard controls pause, skip and restart.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/evorace/evorace-go/evo"
	"github.com/evorace/evorace-go/game"
	"github.com/evorace/evorace-go/track"
)

func main() {
	configPath := flag.String("config", "", "path to an INI config file (defaults apply when empty)")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
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
	fmt.Printf("Seed: %d\n", *seed)

	tr := track.Generate(&cfg.Track)
	sim, err := evo.NewSimulation(cfg, tr, tr.StartPose(), rng)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	w, h := tr.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	ebiten.SetTPS(cfg.Display.TPS)

	if err := ebiten.RunGame(game.New(cfg, sim, tr, *seed)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game loop failed: %v", err)
	}
}
