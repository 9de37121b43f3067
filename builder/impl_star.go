// SPDX-License-Identifier: MIT
// Package: graphblas/builder
//
// impl_star.go - Star(n): center 0 joined to leaves 1..n-1.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for the star S_n with center vertex 0. In a
// directed build the edges point outward from the center.
func Star(n uint64) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		s.touch(n)
		for leaf := uint64(1); leaf < n; leaf++ {
			if err := s.connect(cfg, 0, leaf); err != nil {
				return fmt.Errorf("%s: edge 0→%d: %w", methodStar, leaf, err)
			}
		}

		return nil
	}
}
