package evo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandomBrainRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewRandomBrain(rng)

	check := func(v float64) {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	for i := range b.WeightsIH {
		for j := range b.WeightsIH[i] {
			check(b.WeightsIH[i][j])
		}
	}
	for i := range b.WeightsHO {
		for j := range b.WeightsHO[i] {
			check(b.WeightsHO[i][j])
		}
	}
	for i := range b.BiasH {
		check(b.BiasH[i])
	}
	for i := range b.BiasO {
		check(b.BiasO[i])
	}
}

func TestForwardOutputsBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	b := NewRandomBrain(rng)

	inputs := [BrainInputs]float64{0.1, 0.5, 1.0, 0.0, 0.75}
	out := b.Forward(inputs)
	for _, v := range out {
		assert.Greater(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}

func TestForwardIsPure(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := NewRandomBrain(rng)
	before := *b

	inputs := [BrainInputs]float64{0.2, 0.4, 0.6, 0.8, 1.0}
	first := b.Forward(inputs)
	second := b.Forward(inputs)

	assert.Equal(t, first, second)
	assert.Equal(t, before, *b)
}

func TestForwardSurvivesExtremeWeights(t *testing.T) {
	b := &Brain{}
	for i := range b.WeightsIH {
		for j := range b.WeightsIH[i] {
			b.WeightsIH[i][j] = 1e6
		}
	}
	for i := range b.BiasH {
		b.BiasH[i] = 1e6
	}

	out := b.Forward([BrainInputs]float64{1, 1, 1, 1, 1})
	for _, v := range out {
		assert.False(t, v != v, "output must not be NaN")
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestCloneIsDeep(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	b := NewRandomBrain(rng)

	c := b.Clone()
	require.Equal(t, *b, *c)

	c.WeightsIH[0][0] = 42
	c.BiasO[1] = 42
	assert.NotEqual(t, 42.0, b.WeightsIH[0][0])
	assert.NotEqual(t, 42.0, b.BiasO[1])
}

func TestMutateRateZeroIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := NewRandomBrain(rng)
	before := *b

	b.Mutate(rng, 0)
	assert.Equal(t, before, *b)
}

func TestMutateClampsWeightsNotBiases(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	b := NewRandomBrain(rng)

	// Mutate everything many times so some perturbations stack up.
	for i := 0; i < 200; i++ {
		b.Mutate(rng, 1)
	}

	for i := range b.WeightsIH {
		for j := range b.WeightsIH[i] {
			assert.GreaterOrEqual(t, b.WeightsIH[i][j], -2.0)
			assert.LessOrEqual(t, b.WeightsIH[i][j], 2.0)
		}
	}
	for i := range b.WeightsHO {
		for j := range b.WeightsHO[i] {
			assert.GreaterOrEqual(t, b.WeightsHO[i][j], -2.0)
			assert.LessOrEqual(t, b.WeightsHO[i][j], 2.0)
		}
	}
}

func TestMutateRateOneChangesValues(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewRandomBrain(rng)
	before := *b

	b.Mutate(rng, 1)
	assert.NotEqual(t, before, *b)
}
