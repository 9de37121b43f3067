// SPDX-License-Identifier: MIT
// Package: graphblas/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbour lattice.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r, c) is vertex r*cols + c.
//   - Each cell links to its right and bottom neighbours; directed builds
//     also add the reverse arc so neighbourhoods stay symmetric.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols grid graph.
func Grid(rows, cols uint64) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		s.touch(rows * cols)

		link := func(u, v uint64) error {
			if err := s.connect(cfg, u, v); err != nil {
				return fmt.Errorf("%s: edge %d→%d: %w", methodGrid, u, v, err)
			}
			if cfg.directed {
				if err := s.connect(cfg, v, u); err != nil {
					return fmt.Errorf("%s: edge %d→%d: %w", methodGrid, v, u, err)
				}
			}

			return nil
		}
		for r := uint64(0); r < rows; r++ {
			for c := uint64(0); c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := link(u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
