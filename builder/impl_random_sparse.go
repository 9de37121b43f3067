// SPDX-License-Identifier: MIT
// Package: graphblas/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Directed builds trial every ordered pair; undirected builds trial each
//     unordered pair once. Self-loops are trialled only under WithLoops.
//   - Trial order is (i asc, j asc), so a fixed seed gives a fixed matrix.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that keeps each candidate edge
// independently with probability p.
func RandomSparse(n uint64, p float64) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		s.touch(n)

		keep := func() bool {
			switch {
			case p == probMin:
				return false
			case p == probMax:
				return true
			}

			return cfg.rng.Float64() < p
		}
		for i := uint64(0); i < n; i++ {
			start := uint64(0)
			if !cfg.directed {
				start = i
			}
			for j := start; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				if !keep() {
					continue
				}
				if err := s.connect(cfg, i, j); err != nil {
					return fmt.Errorf("%s: edge %d→%d: %w", methodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}
