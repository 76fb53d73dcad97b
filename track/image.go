package track

import (
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
)

// Backdrop palette.
var (
	asphaltColor = color.RGBA{60, 60, 65, 255}
	grassColor   = color.RGBA{34, 120, 34, 255}
	sandColor    = color.RGBA{194, 178, 128, 255}
	curbRed      = color.RGBA{220, 50, 50, 255}
	curbWhite    = color.RGBA{240, 240, 240, 255}
	lineWhite    = color.RGBA{255, 255, 255, 255}
	pitColor     = color.RGBA{50, 50, 60, 255}
)

const (
	sandApron      = 25.0 // sand band outside the outer curb, in pixels
	grassNoiseAmp  = 15.0 // grass shade variation
	noiseScale     = 40.0 // world units per noise cell
	curbSpacing    = 12.0 // approximate arc length between curb dots
	curbRadius     = 6
	startGridRows  = 8
	startGridCols  = 4
	startGridCell  = 10
	startGridInset = 25.0
)

// Image renders the static track backdrop: textured grass, sand apron,
// asphalt lane, alternating curbs, edge lines and the checkered start grid.
// The seed only affects the grass texture.
func (t *Track) Image(seed int64) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
	noise := perlin.NewPerlin(2, 2, 3, seed)

	cx := float64(t.width) / 2
	cy := float64(t.height) / 2
	outerRx := t.cfg.OuterRadiusX
	outerRy := t.cfg.OuterRadiusY
	innerRx := outerRx - t.cfg.LaneWidth
	innerRy := outerRy - t.cfg.LaneWidth

	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			var col color.RGBA
			switch {
			case t.drivable[y*t.width+x]:
				col = asphaltColor
			case insideEllipse(dx, dy, outerRx+sandApron, outerRy+sandApron) &&
				!insideEllipse(dx, dy, innerRx, innerRy):
				col = sandColor
			default:
				v := noise.Noise2D(float64(x)/noiseScale, float64(y)/noiseScale)
				col = shade(grassColor, v*grassNoiseAmp)
			}
			img.SetRGBA(x, y, col)
		}
	}

	t.drawCurbs(img, cx, cy, outerRx, outerRy)
	t.drawCurbs(img, cx, cy, innerRx, innerRy)
	t.drawEdgeLine(img, cx, cy, outerRx, outerRy)
	t.drawEdgeLine(img, cx, cy, innerRx, innerRy)
	t.drawStartGrid(img, cx, cy, outerRx)
	t.drawPit(img, cx, cy)

	return ebiten.NewImageFromImage(img)
}

// drawCurbs places alternating red and white dots along an ellipse outline.
func (t *Track) drawCurbs(img *image.RGBA, cx, cy, rx, ry float64) {
	// Ramanujan's approximation is overkill here; the average radius gives a
	// close enough circumference for even dot spacing.
	circumference := math.Pi * (rx + ry)
	dots := int(circumference / curbSpacing)
	if dots < 8 {
		dots = 8
	}
	for i := 0; i < dots; i++ {
		angle := 2 * math.Pi * float64(i) / float64(dots)
		x := cx + rx*math.Cos(angle)
		y := cy + ry*math.Sin(angle)
		col := curbRed
		if i%2 == 1 {
			col = curbWhite
		}
		fillCircle(img, int(x), int(y), curbRadius, col)
	}
}

// drawEdgeLine traces a thin white line along an ellipse outline.
func (t *Track) drawEdgeLine(img *image.RGBA, cx, cy, rx, ry float64) {
	steps := int(2 * math.Pi * math.Max(rx, ry))
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + rx*math.Cos(angle)
		y := cy + ry*math.Sin(angle)
		fillCircle(img, int(x), int(y), 1, lineWhite)
	}
}

// drawStartGrid draws the checkered start/finish strip across the left
// straight, where every car begins.
func (t *Track) drawStartGrid(img *image.RGBA, cx, cy, outerRx float64) {
	x0 := int(cx - outerRx + startGridInset)
	y0 := int(cy) - startGridRows*startGridCell/2
	for row := 0; row < startGridRows; row++ {
		for col := 0; col < startGridCols; col++ {
			c := lineWhite
			if (row+col)%2 == 1 {
				c = color.RGBA{0, 0, 0, 255}
			}
			fillRect(img, x0+col*startGridCell, y0+row*startGridCell, startGridCell, startGridCell, c)
		}
	}
}

// drawPit draws the pit building in the infield.
func (t *Track) drawPit(img *image.RGBA, cx, cy float64) {
	fillRect(img, int(cx)-70, int(cy)-40, 140, 80, pitColor)
}

func fillRect(img *image.RGBA, x, y, w, h int, col color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if image.Pt(xx, yy).In(img.Rect) {
				img.SetRGBA(xx, yy, col)
			}
		}
	}
}

func fillCircle(img *image.RGBA, x, y, r int, col color.RGBA) {
	for yy := y - r; yy <= y+r; yy++ {
		for xx := x - r; xx <= x+r; xx++ {
			dx := xx - x
			dy := yy - y
			if dx*dx+dy*dy <= r*r && image.Pt(xx, yy).In(img.Rect) {
				img.SetRGBA(xx, yy, col)
			}
		}
	}
}

// shade lightens or darkens a color by delta, clamped to the byte range.
func shade(c color.RGBA, delta float64) color.RGBA {
	adj := func(v uint8) uint8 {
		n := float64(v) + delta
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return color.RGBA{adj(c.R), adj(c.G), adj(c.B), 255}
}
