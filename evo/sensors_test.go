package evo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastRayOpenWorldReachesMaxRange(t *testing.T) {
	w := openWorld{w: 1000, h: 1000}
	cfg := &SensorConfig{MaxRange: 180, Step: 5}

	r := castRay(w, 500, 500, 0, 0, cfg)
	assert.Equal(t, 180.0, r.Distance)
	assert.Equal(t, 680, r.EndX)
	assert.Equal(t, 500, r.EndY)
}

func TestCastRayCapsAtMaxRange(t *testing.T) {
	// 12 is not a multiple of the step; the final increment is shortened.
	w := openWorld{w: 1000, h: 1000}
	cfg := &SensorConfig{MaxRange: 12, Step: 5}

	r := castRay(w, 500, 500, 0, 0, cfg)
	assert.Equal(t, 12.0, r.Distance)
}

func TestCastRayStopsAtWall(t *testing.T) {
	w := wallWorld{w: 1000, h: 1000, wallX: 507}
	cfg := &SensorConfig{MaxRange: 180, Step: 5}

	// First probe at x=505 is drivable, second at x=510 hits the wall. The
	// blocked probe still counts toward the marched length.
	r := castRay(w, 500, 500, 0, 0, cfg)
	assert.Equal(t, 10.0, r.Distance)
	assert.Equal(t, 510, r.EndX)
}

func TestCastRayFirstStepOutOfBoundsReadsZero(t *testing.T) {
	w := openWorld{w: 10, h: 10}
	cfg := &SensorConfig{MaxRange: 180, Step: 5}

	r := castRay(w, 8, 5, 0, 0, cfg)
	assert.Equal(t, 0.0, r.Distance)
	assert.Equal(t, 8, r.EndX)
	assert.Equal(t, 5, r.EndY)
}

func TestCastRayOutOfBoundsStepNotCounted(t *testing.T) {
	// Two probes fit before the ray exits the world; the exiting probe is
	// dropped, so the reading stays at the last in-bounds length.
	w := openWorld{w: 512, h: 1000}
	cfg := &SensorConfig{MaxRange: 180, Step: 5}

	r := castRay(w, 500, 500, 0, 0, cfg)
	assert.Equal(t, 10.0, r.Distance)
	assert.Equal(t, 510, r.EndX)
}

func TestCastRayHeadingUp(t *testing.T) {
	// Heading 90 points up on screen, so y decreases.
	w := openWorld{w: 1000, h: 1000}
	cfg := &SensorConfig{MaxRange: 20, Step: 5}

	r := castRay(w, 500, 500, 90, 0, cfg)
	assert.Equal(t, 20.0, r.Distance)
	assert.Equal(t, 500, r.EndX)
	assert.Equal(t, 480, r.EndY)
}

func TestSensorAnglesMatchInputWidth(t *testing.T) {
	assert.Equal(t, BrainInputs, len(SensorAngles))
	assert.Equal(t, BrainInputs, NumSensors)
}
