package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/evorace/evorace-go/evo"
)

// Sprite dimensions, matching the car's visual footprint. The engine treats
// cars as points; the sprite is presentation only.
const (
	carWidth  = 35
	carHeight = 18
)

// carPalette is the fixed set of body colors; cars cycle through it by id.
var carPalette = []color.RGBA{
	{255, 60, 60, 255},   // red
	{60, 180, 255, 255},  // blue
	{255, 200, 60, 255},  // yellow
	{60, 255, 120, 255},  // green
	{255, 120, 200, 255}, // pink
	{200, 120, 255, 255}, // purple
	{255, 150, 50, 255},  // orange
	{100, 255, 255, 255}, // cyan
}

// carColor returns the palette entry for a car id.
func carColor(id int) color.RGBA {
	return carPalette[id%len(carPalette)]
}

// buildSprites renders one sprite per palette color, once at startup.
func buildSprites() []*ebiten.Image {
	sprites := make([]*ebiten.Image, len(carPalette))
	for i, col := range carPalette {
		sprites[i] = buildSprite(col)
	}
	return sprites
}

func buildSprite(body color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(carWidth, carHeight)

	wheel := color.RGBA{30, 30, 30, 255}
	window := color.RGBA{80, 150, 200, 255}
	stripe := color.RGBA{255, 255, 255, 255}

	// Wheels first so the body overlaps them slightly.
	vector.DrawFilledRect(img, 2, 0, 8, 4, wheel, false)
	vector.DrawFilledRect(img, 2, carHeight-4, 8, 4, wheel, false)
	vector.DrawFilledRect(img, carWidth-14, 0, 8, 4, wheel, false)
	vector.DrawFilledRect(img, carWidth-14, carHeight-4, 8, 4, wheel, false)

	// Body with a rounded nose pointing along +x.
	vector.DrawFilledRect(img, 3, 3, carWidth-13, carHeight-6, body, false)
	vector.DrawFilledCircle(img, carWidth-10, carHeight/2, (carHeight-6)/2, body, false)

	// Cockpit window and racing stripe.
	vector.DrawFilledRect(img, 9, 6, 10, carHeight-12, window, false)
	vector.DrawFilledRect(img, 5, carHeight/2-1, carWidth-10, 2, stripe, false)

	return img
}

// drawCar draws a car sprite rotated to its heading. Headings grow
// counterclockwise on screen while Ebitengine rotates clockwise, hence the
// negation.
func (g *Game) drawCar(screen *ebiten.Image, car evo.CarSnapshot) {
	sprite := g.sprites[car.ID%len(g.sprites)]

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-carWidth/2, -carHeight/2)
	opts.GeoM.Rotate(-car.Heading * math.Pi / 180)
	opts.GeoM.Translate(car.X, car.Y)
	screen.DrawImage(sprite, opts)
}

// drawRadars draws the sensor rays, shaded green (clear) to red (about to
// hit) by proximity.
func (g *Game) drawRadars(screen *ebiten.Image, car evo.CarSnapshot) {
	for _, radar := range car.Radars {
		danger := 1 - radar.Distance/g.cfg.Sensors.MaxRange
		col := color.RGBA{uint8(255 * danger), uint8(255 * (1 - danger)), 0, 255}
		vector.StrokeLine(screen,
			float32(car.X), float32(car.Y),
			float32(radar.EndX), float32(radar.EndY),
			2, col, true)
		vector.DrawFilledCircle(screen, float32(radar.EndX), float32(radar.EndY), 4, col, true)
	}
}
