// SPDX-License-Identifier: MIT
// Package: graphblas/builder
//
// impl_cycle.go - Cycle(n): edges i→(i+1)%n for i=0..n-1.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges are emitted in increasing i.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the n-vertex simple cycle C_n.
func Cycle(n uint64) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		s.touch(n)
		for i := uint64(0); i < n; i++ {
			j := (i + 1) % n
			if err := s.connect(cfg, i, j); err != nil {
				return fmt.Errorf("%s: edge %d→%d: %w", methodCycle, i, j, err)
			}
		}

		return nil
	}
}
