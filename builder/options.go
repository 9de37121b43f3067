// SPDX-License-Identifier: MIT
// Package: graphblas/builder
//
// options.go - functional options for BuildAdjacency.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a build by mutating builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithDirected emits each edge once, as i→j. Without it every edge is
// mirrored.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.directed = true }
}

// WithLoops lets RandomSparse sample self-loops i→i.
func WithLoops() BuilderOption {
	return func(c *builderConfig) { c.loops = true }
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}
