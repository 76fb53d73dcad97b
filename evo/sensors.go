package evo

import "math"

// World is the collision oracle the engine drives against: a rasterized field
// over the same coordinate space as car positions. The engine only queries it
// and never owns it.
type World interface {
	// Drivable reports whether the integer point lies on drivable surface.
	// It must answer in O(1) and must return false for any out-of-bounds
	// point rather than erroring.
	Drivable(x, y int) bool
	// InBounds reports whether the point lies inside the world rectangle.
	InBounds(x, y int) bool
}

// SensorAngles are the fixed ray offsets, in degrees relative to the heading.
var SensorAngles = [...]float64{-90, -45, 0, 45, 90}

// NumSensors is the number of distance probes per car. It matches the
// controller's input width.
const NumSensors = BrainInputs

// Radar is the result of one sensor ray cast: the integer endpoint where the
// march stopped and the marched distance in world units.
type Radar struct {
	EndX, EndY int
	Distance   float64
}

// castRay marches outward from (x, y) along heading+offset in fixed
// increments, querying the oracle at each integer-rounded point, until the
// point is off-track, the point leaves the world, or the maximum range is
// reached. An off-track hit records the marched length at the blocked point;
// a step that would leave the world is not counted, so a ray that exits
// bounds immediately reads zero.
func castRay(w World, x, y, heading, offset float64, cfg *SensorConfig) Radar {
	sin, cos := math.Sincos((heading + offset) * math.Pi / 180)

	length := 0.0
	ex, ey := int(x), int(y)
	for length < cfg.MaxRange {
		next := length + cfg.Step
		if next > cfg.MaxRange {
			next = cfg.MaxRange
		}
		px := int(x + cos*next)
		py := int(y - sin*next)
		if !w.InBounds(px, py) {
			break
		}
		length = next
		ex, ey = px, py
		if !w.Drivable(px, py) {
			break
		}
	}
	return Radar{EndX: ex, EndY: ey, Distance: length}
}
