// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given seed. A WeightFn that needs randomness and gets a
// nil RNG panics with ErrNeedRandSource; the build reports that as an error.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Negative weights are allowed so
// fixtures can exercise negative-edge shortest paths.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws integral weights uniformly from [min, max].
// Panics if min > max.
func UniformWeightFn(min, max int64) WeightFn {
	if min > max {
		panic(fmt.Sprintf("builder: UniformWeightFn: min=%d > max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			panic(ErrNeedRandSource)
		}

		return float64(min + rng.Int63n(span))
	}
}
