package evo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steeringBrain returns a brain whose outputs are pinned: a strongly positive
// or negative output bias dominates any hidden activity since all weights are
// zero.
func steeringBrain(left, right bool) *Brain {
	b := &Brain{}
	b.BiasO[0] = -5
	b.BiasO[1] = -5
	if left {
		b.BiasO[0] = 5
	}
	if right {
		b.BiasO[1] = 5
	}
	return b
}

func TestCarStepMovesAlongHeading(t *testing.T) {
	cfg := DefaultConfig()
	w := openWorld{w: 1000, h: 1000}
	c := NewCar(0, Pose{X: 500, Y: 500, Heading: 0}, steeringBrain(false, false))

	c.Step(w, cfg)

	assert.InDelta(t, 506, c.X, 1e-9)
	assert.InDelta(t, 500, c.Y, 1e-9)
	assert.InDelta(t, 6, c.Distance, 1e-9)
	assert.InDelta(t, 0.1, c.Fitness, 1e-9)
	assert.True(t, c.Alive)
}

func TestCarStepMovesUpAtHeading90(t *testing.T) {
	cfg := DefaultConfig()
	w := openWorld{w: 1000, h: 1000}
	c := NewCar(0, Pose{X: 500, Y: 500, Heading: 90}, steeringBrain(false, false))

	c.Step(w, cfg)

	assert.InDelta(t, 500, c.X, 1e-9)
	assert.InDelta(t, 494, c.Y, 1e-9)
}

func TestCarStepSteering(t *testing.T) {
	cfg := DefaultConfig()
	w := openWorld{w: 1000, h: 1000}

	left := NewCar(0, Pose{X: 500, Y: 500, Heading: 90}, steeringBrain(true, false))
	left.Step(w, cfg)
	assert.InDelta(t, 95, left.Heading, 1e-9)

	right := NewCar(1, Pose{X: 500, Y: 500, Heading: 90}, steeringBrain(false, true))
	right.Step(w, cfg)
	assert.InDelta(t, 85, right.Heading, 1e-9)

	// Both outputs firing cancel out.
	both := NewCar(2, Pose{X: 500, Y: 500, Heading: 90}, steeringBrain(true, true))
	both.Step(w, cfg)
	assert.InDelta(t, 90, both.Heading, 1e-9)
}

func TestCarStepCollisionKillsSameTick(t *testing.T) {
	cfg := DefaultConfig()
	w := blockedWorld{w: 1000, h: 1000}
	c := NewCar(0, Pose{X: 500, Y: 500, Heading: 0}, steeringBrain(false, false))

	c.Step(w, cfg)

	assert.False(t, c.Alive)
	// The dying tick's movement and rewards still count.
	assert.InDelta(t, 6, c.Distance, 1e-9)
	assert.InDelta(t, 0.1, c.Fitness, 1e-9)
	// Sensors never fired: the car died before sensing.
	assert.Equal(t, Radar{}, c.Radars[0])
}

func TestCarStepDeadIsNoOp(t *testing.T) {
	cfg := DefaultConfig()
	w := openWorld{w: 1000, h: 1000}
	c := NewCar(0, Pose{X: 500, Y: 500, Heading: 0}, steeringBrain(false, false))
	c.Alive = false

	c.Step(w, cfg)

	assert.InDelta(t, 500, c.X, 1e-9)
	assert.Zero(t, c.Fitness)
	assert.Zero(t, c.Distance)
}

func TestCarSenseNormalization(t *testing.T) {
	cfg := DefaultConfig()
	w := openWorld{w: 5000, h: 5000}
	rng := rand.New(rand.NewSource(1))
	c := NewCar(0, Pose{X: 2500, Y: 2500, Heading: 0}, NewRandomBrain(rng))

	inputs := c.sense(w, &cfg.Sensors)
	for i, v := range inputs {
		require.InDelta(t, 1.0, v, 1e-9, "sensor %d should read clear", i)
		assert.Equal(t, cfg.Sensors.MaxRange, c.Radars[i].Distance)
	}
}

func TestCarScore(t *testing.T) {
	c := &Car{Fitness: 10, Distance: 300}
	assert.InDelta(t, 13, c.Score(0.01), 1e-9)
	assert.InDelta(t, 10, c.Score(0), 1e-9)
}
