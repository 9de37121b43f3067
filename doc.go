// SPDX-License-Identifier: MIT

// Package graphblas is a typed, generic layer for sparse linear algebra over
// semirings, in the style of the GraphBLAS C API.
//
// 🚀 What is graphblas?
//
//	A small set of packages that let Go code call a GraphBLAS-style engine
//	without touching untyped handles or integer status codes:
//		• Typed operators: unary, binary, monoid, semiring, accumulator
//		• Sparse collections: SparseVector[T], SparseMatrix[T]
//		• Appliers: element-wise add/mult, mxm, mxv, column extract, unary map
//		• Masks and operator options (transpose, replace, structural, complement)
//		• Compressed serialization of collections (LZ4, zstd)
//		• Graph algorithms written as semiring operations (BFS, Bellman-Ford)
//
// ✨ Guarantees
//
//   - Domain mismatches between operators, accumulators and appliers are
//     compile errors, not runtime checks.
//   - Every engine status is translated in exactly one place
//     (execution.Context.Call) into *execution.Error values matched with
//     errors.Is.
//   - Operators, options, masks and appliers are immutable once built and safe
//     to share between goroutines. Output collections are not; serialise
//     writes to a shared output.
//
// Under the hood, everything is organized under these subpackages:
//
//	engine/      reference GraphBLAS engine: handles, status codes, operations
//	execution/   Context gateway: init/finalize, error translation, logging, tracing
//	valuetype/   the eleven scalar domains and their engine types
//	algebra/     predefined and custom operators, monoids, semirings
//	options/     descriptor flags for appliers
//	mask/        output masks over vectors and matrices
//	collections/ SparseVector and SparseMatrix, element I/O, serialization
//	serialize/   compression envelopes for serialized collections
//	ewiseadd/    union element-wise combination
//	ewisemult/   intersection element-wise combination
//	multiply/    matrix-matrix and matrix-vector semiring products
//	extract/     column extraction
//	apply/       unary operator application
//	algorithms/  BFS levels and single-source shortest paths
//
// Quick example:
//
//	ctx, _ := execution.Init(execution.NonBlocking)
//	defer ctx.Release()
//	a, _ := collections.NewSparseMatrix[float64](ctx, collections.Size{Rows: 2, Columns: 2})
//	_ = a.SetElement(collections.Coordinate{Row: 0, Column: 1}, 3)
//	c, _ := collections.NewSparseMatrix[float64](ctx, a.Size())
//	mxm := multiply.NewMatrixMultiplication[float64](algebra.PlusTimes[float64](), options.NewDefault(), nil)
//	if err := mxm.Apply(a, a, c); err != nil {
//		log.Fatal(err)
//	}
package graphblas
