// SPDX-License-Identifier: MIT
// Package: graphblas/builder
//
// impl_path.go - Path(n): edges i→i+1 for i=0..n-2.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Complexity: O(n) edges.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the n-vertex path P_n.
func Path(n uint64) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		s.touch(n)
		for i := uint64(0); i+1 < n; i++ {
			if err := s.connect(cfg, i, i+1); err != nil {
				return fmt.Errorf("%s: edge %d→%d: %w", methodPath, i, i+1, err)
			}
		}

		return nil
	}
}
