package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/evorace/evorace-go/evo"
)

var (
	panelColor   = color.RGBA{20, 25, 40, 200}
	accentColor  = color.RGBA{0, 200, 255, 255}
	overlayColor = color.RGBA{0, 0, 0, 150}
	barBackColor = color.RGBA{50, 50, 60, 255}
)

// drawHUD renders the stats panel and the key hints.
func (g *Game) drawHUD(screen *ebiten.Image, snap evo.Snapshot) {
	const (
		panelX = 15
		panelY = 15
		panelW = 250
		panelH = 120
	)

	vector.DrawFilledRect(screen, panelX, panelY, panelW, panelH, panelColor, true)

	lines := []string{
		"NEURAL RACING",
		fmt.Sprintf("Generation:   %d / %d", snap.Generation, snap.MaxGenerations),
		fmt.Sprintf("Cars alive:   %d / %d", snap.AliveCount, snap.PopulationSize),
		fmt.Sprintf("Time:         %d / %d", snap.Tick, snap.TickBudget),
		fmt.Sprintf("Best fitness: %.1f", snap.BestFitness),
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, panelX+10, panelY+8+i*16)
	}

	// Tick progress bar.
	progress := float32(snap.Tick) / float32(snap.TickBudget)
	vector.DrawFilledRect(screen, panelX+10, panelY+panelH-14, panelW-20, 8, barBackColor, true)
	vector.DrawFilledRect(screen, panelX+10, panelY+panelH-14, (panelW-20)*progress, 8, accentColor, true)

	_, h := g.track.Size()
	ebitenutil.DebugPrintAt(screen, "[R] Restart  [P/Space] Pause  [S] Skip  [Q/Esc] Quit", 15, h-24)
}

// drawPauseOverlay dims the screen and shows the resume hint.
func (g *Game) drawPauseOverlay(screen *ebiten.Image) {
	w, h := g.track.Size()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", w/2-24, h/2-20)
	ebitenutil.DebugPrintAt(screen, "Press P or Space to resume", w/2-80, h/2+4)
}

// drawCompletionScreen shows the final stats once every generation has run.
func (g *Game) drawCompletionScreen(screen *ebiten.Image, snap evo.Snapshot) {
	w, h := g.track.Size()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)
	lines := []string{
		"EVOLUTION COMPLETE",
		fmt.Sprintf("Generations:  %d", snap.Generation),
		fmt.Sprintf("Best fitness: %.1f", snap.BestFitness),
		"",
		"Press [R] to restart, [Q] to quit",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, w/2-110, h/3+i*18)
	}
}
