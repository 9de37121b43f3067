// SPDX-License-Identifier: MIT
// Package: graphblas/builder
//
// impl_complete.go - Complete(n): every pair of distinct vertices.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected builds emit each unordered pair once (i<j) and mirror it;
//     directed builds emit every ordered pair.
//   - Complexity: O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n uint64) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		s.touch(n)
		for i := uint64(0); i < n; i++ {
			start := i + 1
			if cfg.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if err := s.connect(cfg, i, j); err != nil {
					return fmt.Errorf("%s: edge %d→%d: %w", methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}
