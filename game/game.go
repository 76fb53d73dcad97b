// Package game is the windowed host for the simulation: an Ebitengine game
// that steps the engine once per tick, polls input between ticks and renders
// the post-tick snapshot. It holds no simulation logic of its own.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/evorace/evorace-go/evo"
	"github.com/evorace/evorace-go/track"
)

// Game wires the simulation to the window: input, stepping, drawing.
type Game struct {
	cfg      *evo.Config
	sim      *evo.Simulation
	track    *track.Track
	backdrop *ebiten.Image
	sprites  []*ebiten.Image
}

// New creates the host for a prepared simulation and track. The seed only
// affects the backdrop texture.
func New(cfg *evo.Config, sim *evo.Simulation, tr *track.Track, seed int64) *Game {
	return &Game{
		cfg:      cfg,
		sim:      sim,
		track:    tr,
		backdrop: tr.Image(seed),
		sprites:  buildSprites(),
	}
}

// Update is called once per tick by Ebitengine: handle input at the tick
// boundary, then advance the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sim.SkipGeneration()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sim.Restart(); err != nil {
			return err
		}
		fmt.Println("Simulation restarted.")
	}

	summary, err := g.sim.Step()
	if err != nil {
		return err
	}
	if summary != nil {
		fmt.Printf("Generation %d finished: %d ticks, %d survivors, best fitness %.1f\n",
			summary.Generation, summary.Ticks, summary.Survivors, summary.BestFitness)
	}
	return nil
}

// Draw renders the backdrop, sensor rays, cars and HUD from the read-only
// snapshot taken at the last tick boundary.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.backdrop, nil)

	snap := g.sim.Snapshot()
	for _, car := range snap.Cars {
		if car.Alive {
			g.drawRadars(screen, car)
		}
	}
	for _, car := range snap.Cars {
		if car.Alive {
			g.drawCar(screen, car)
		}
	}

	g.drawHUD(screen, snap)
	switch snap.State {
	case evo.StatePaused:
		g.drawPauseOverlay(screen)
	case evo.StateEnded:
		g.drawCompletionScreen(screen, snap)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.track.Size()
}
