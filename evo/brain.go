package evo

import (
	"math"
	"math/rand"
)

// Network shape. The controller topology is fixed: five sensor readings feed a
// single hidden layer of six units, which feeds two steering outputs.
const (
	BrainInputs  = 5
	BrainHidden  = 6
	BrainOutputs = 2
)

// Mutation parameters. Weights are clamped after perturbation, biases are
// deliberately left unbounded.
const (
	weightMutateStdev = 0.5
	biasMutateStdev   = 0.3
	weightMaxValue    = 2.0

	// activationClamp bounds the pre-activation sum before tanh so extreme
	// weight/input combinations cannot overflow.
	activationClamp = 500.0
)

// Brain is the fixed-topology feedforward controller that maps normalized
// sensor distances to steering decisions. The weight matrices are fixed-size
// arrays, so the shape invariant (5-6-2, never changing after construction)
// is enforced structurally and Clone is a plain value copy.
type Brain struct {
	WeightsIH [BrainHidden][BrainInputs]float64  // input -> hidden, row per hidden unit
	WeightsHO [BrainOutputs][BrainHidden]float64 // hidden -> output, row per output unit
	BiasH     [BrainHidden]float64
	BiasO     [BrainOutputs]float64
}

// NewRandomBrain creates a brain with every weight and bias drawn uniformly
// from [-1, 1]. Used for generation zero and after a full restart.
func NewRandomBrain(rng *rand.Rand) *Brain {
	b := &Brain{}
	for i := range b.WeightsIH {
		for j := range b.WeightsIH[i] {
			b.WeightsIH[i][j] = rng.Float64()*2 - 1
		}
	}
	for i := range b.WeightsHO {
		for j := range b.WeightsHO[i] {
			b.WeightsHO[i][j] = rng.Float64()*2 - 1
		}
	}
	for i := range b.BiasH {
		b.BiasH[i] = rng.Float64()*2 - 1
	}
	for i := range b.BiasO {
		b.BiasO[i] = rng.Float64()*2 - 1
	}
	return b
}

// boundedTanh is the activation function: tanh with the input clamped to
// avoid overflow for extreme sums. Output is strictly within (-1, 1).
func boundedTanh(x float64) float64 {
	return math.Tanh(clamp(x, -activationClamp, activationClamp))
}

// Forward runs a single inference pass. It is pure: the same inputs always
// produce the same outputs and no state is mutated.
func (b *Brain) Forward(inputs [BrainInputs]float64) [BrainOutputs]float64 {
	var hidden [BrainHidden]float64
	for i := 0; i < BrainHidden; i++ {
		total := b.BiasH[i]
		for j := 0; j < BrainInputs; j++ {
			total += inputs[j] * b.WeightsIH[i][j]
		}
		hidden[i] = boundedTanh(total)
	}

	var outputs [BrainOutputs]float64
	for i := 0; i < BrainOutputs; i++ {
		total := b.BiasO[i]
		for j := 0; j < BrainHidden; j++ {
			total += hidden[j] * b.WeightsHO[i][j]
		}
		outputs[i] = boundedTanh(total)
	}
	return outputs
}

// Clone returns a deep copy sharing no storage with the receiver. Multiple
// offspring may derive from the same elite parent in one generation, so the
// copies must not alias each other's weights.
func (b *Brain) Clone() *Brain {
	c := *b // the weight containers are arrays, so this copies all values
	return &c
}

// Mutate perturbs each weight and bias independently with the given
// probability. Weights receive Gaussian noise with stdev 0.5 and are clamped
// to [-2, 2]; biases receive stdev 0.3 and stay unclamped. Mutation is the
// sole source of variation between generations; there is no crossover.
func (b *Brain) Mutate(rng *rand.Rand, rate float64) {
	for i := range b.WeightsIH {
		for j := range b.WeightsIH[i] {
			if rng.Float64() < rate {
				b.WeightsIH[i][j] = clamp(b.WeightsIH[i][j]+rng.NormFloat64()*weightMutateStdev, -weightMaxValue, weightMaxValue)
			}
		}
	}
	for i := range b.WeightsHO {
		for j := range b.WeightsHO[i] {
			if rng.Float64() < rate {
				b.WeightsHO[i][j] = clamp(b.WeightsHO[i][j]+rng.NormFloat64()*weightMutateStdev, -weightMaxValue, weightMaxValue)
			}
		}
	}
	for i := range b.BiasH {
		if rng.Float64() < rate {
			b.BiasH[i] += rng.NormFloat64() * biasMutateStdev
		}
	}
	for i := range b.BiasO {
		if rng.Float64() < rate {
			b.BiasO[i] += rng.NormFloat64() * biasMutateStdev
		}
	}
}
