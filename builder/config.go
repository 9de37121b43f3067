// SPDX-License-Identifier: MIT
// Package: graphblas/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - directed = false (every edge is mirrored)
//   - loops    = false (self-loops requested by RandomSparse are skipped)
//   - rng      = nil   (pure unless seeded)
//   - weightFn = ConstantWeightFn(DefaultEdgeWeight)

package builder

import (
	"errors"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	directed bool
	loops    bool
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edge is one emitted arc before materialisation.
type edge struct {
	from, to uint64
	weight   float64
}

// edgeSet collects the arcs emitted by constructors and the vertex range
// they touch.
type edgeSet struct {
	n     uint64
	edges []edge
}

// touch grows the vertex range to at least n.
func (s *edgeSet) touch(n uint64) {
	if n > s.n {
		s.n = n
	}
}

// connect emits u→v with one weight drawn from cfg, mirrored as v→u for
// undirected builds.
func (s *edgeSet) connect(cfg builderConfig, u, v uint64) error {
	w, err := cfg.weight()
	if err != nil {
		return err
	}
	s.edges = append(s.edges, edge{from: u, to: v, weight: w})
	if !cfg.directed && u != v {
		s.edges = append(s.edges, edge{from: v, to: u, weight: w})
	}

	return nil
}

// weight draws one edge weight. Weight functions signal a missing RNG by
// panicking with ErrNeedRandSource; that panic is converted into an error.
func (c builderConfig) weight() (w float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, ErrNeedRandSource) {
				err = ErrNeedRandSource
				return
			}
			panic(r)
		}
	}()

	return c.weightFn(c.rng), nil
}
