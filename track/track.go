// Package track generates the oval racing circuit: a rasterized drivable
// field the simulation queries for collisions, and the static backdrop image
// the windowed host draws it from.
package track

import (
	"github.com/evorace/evorace-go/evo"
)

// Track is a rasterized oval circuit. Drivability is precomputed per pixel,
// so oracle queries are plain slice lookups.
type Track struct {
	width, height int
	drivable      []bool // row-major, width*height

	cfg   evo.TrackConfig
	start evo.Pose
}

// Track implements the simulation's collision oracle.
var _ evo.World = (*Track)(nil)

// Generate rasterizes an oval circuit from the configured geometry: the lane
// is the ring between the outer ellipse and the inner ellipse, centered on
// the canvas. The canonical start pose sits on the left straight, in the
// middle of the lane, heading up.
func Generate(cfg *evo.TrackConfig) *Track {
	t := &Track{
		width:    cfg.Width,
		height:   cfg.Height,
		drivable: make([]bool, cfg.Width*cfg.Height),
		cfg:      *cfg,
	}

	cx := float64(cfg.Width) / 2
	cy := float64(cfg.Height) / 2
	innerRx := cfg.OuterRadiusX - cfg.LaneWidth
	innerRy := cfg.OuterRadiusY - cfg.LaneWidth

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if insideEllipse(dx, dy, cfg.OuterRadiusX, cfg.OuterRadiusY) &&
				!insideEllipse(dx, dy, innerRx, innerRy) {
				t.drivable[y*cfg.Width+x] = true
			}
		}
	}

	t.start = evo.Pose{
		X:       cx - cfg.OuterRadiusX + cfg.LaneWidth/2,
		Y:       cy,
		Heading: 90, // facing up, counterclockwise around the oval
	}
	return t
}

func insideEllipse(dx, dy, rx, ry float64) bool {
	nx := dx / rx
	ny := dy / ry
	return nx*nx+ny*ny <= 1
}

// InBounds reports whether the point lies inside the track canvas.
func (t *Track) InBounds(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

// Drivable reports whether the point lies on the lane. Out-of-bounds points
// are never drivable.
func (t *Track) Drivable(x, y int) bool {
	if !t.InBounds(x, y) {
		return false
	}
	return t.drivable[y*t.width+x]
}

// Size returns the canvas dimensions in pixels.
func (t *Track) Size() (width, height int) {
	return t.width, t.height
}

// StartPose returns the canonical start pose shared by every car in every
// generation.
func (t *Track) StartPose() evo.Pose {
	return t.start
}
