// SPDX-License-Identifier: MIT

package engine

import "math"

// Matrix is a sparse matrix handle of fixed shape and domain.
type Matrix struct {
	object
	nrows, ncols uint64
	data         *store
}

var _ Object = (*Matrix)(nil)

// NewMatrix creates an empty nrows×ncols matrix.
// The shape must fit the linearised key space (nrows*ncols ≤ MaxUint64).
func NewMatrix(typ *Type, nrows, ncols uint64) (*Matrix, Info) {
	if info := ready(); info != Success {
		return nil, info
	}
	if typ == nil {
		return nil, NullPointer
	}
	if nrows > MaxIndex || ncols > MaxIndex {
		return nil, InvalidValue
	}
	if ncols != 0 && nrows > math.MaxUint64/ncols {
		return nil, InvalidValue
	}
	m := &Matrix{nrows: nrows, ncols: ncols, data: newStore(typ)}
	m.session = currentSession()

	return m, Success
}

// key linearises (row, col) in row-major order.
func (m *Matrix) key(row, col uint64) uint64 { return row*m.ncols + col }

// matrixView is a private, possibly transposed copy of a matrix.
type matrixView struct {
	nrows, ncols uint64
	data         *store
}

func (v matrixView) key(row, col uint64) uint64 { return row*v.ncols + col }

func (v matrixView) coordinate(k uint64) (row, col uint64) {
	return k / v.ncols, k % v.ncols
}

// transposed returns the view of vᵀ.
func (v matrixView) transposed() matrixView {
	t := matrixView{nrows: v.ncols, ncols: v.nrows, data: newStore(v.data.typ)}
	v.data.each(func(k uint64, value any) {
		row, col := v.coordinate(k)
		t.data.set(t.key(col, row), value)
	})

	return t
}

// rows groups stored entries by row: row → ordered (col, value) pairs.
func (v matrixView) rows() map[uint64][]entry {
	out := make(map[uint64][]entry)
	v.data.each(func(k uint64, value any) {
		row, col := v.coordinate(k)
		out[row] = append(out[row], entry{index: col, value: value})
	})

	return out
}

// entry is one (index, value) pair of a row or vector.
type entry struct {
	index uint64
	value any
}

// snapshot returns a private view, transposed when requested.
func (m *Matrix) snapshot(transpose bool) matrixView {
	m.mu.RLock()
	view := matrixView{nrows: m.nrows, ncols: m.ncols, data: m.data.clone()}
	m.mu.RUnlock()
	if transpose {
		return view.transposed()
	}

	return view
}

func (m *Matrix) update(fn func(current *store) *store) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = fn(m.data)
}

func openMatrix(m *Matrix) Info {
	if m == nil {
		return NullPointer
	}

	return begin(&m.object)
}

// MatrixNrows returns the number of rows.
func MatrixNrows(m *Matrix) (uint64, Info) {
	if info := openMatrix(m); info != Success {
		return 0, info
	}

	return m.nrows, Success
}

// MatrixNcols returns the number of columns.
func MatrixNcols(m *Matrix) (uint64, Info) {
	if info := openMatrix(m); info != Success {
		return 0, info
	}

	return m.ncols, Success
}

// MatrixType returns the matrix's domain.
func MatrixType(m *Matrix) (*Type, Info) {
	if info := openMatrix(m); info != Success {
		return nil, info
	}

	return m.data.typ, Success
}

// MatrixNvals returns the number of stored entries.
func MatrixNvals(m *Matrix) (uint64, Info) {
	if info := openMatrix(m); info != Success {
		return 0, info
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.data.nvals(), Success
}

// MatrixSetElement stores value at (row, col), casting it into the matrix's domain.
func MatrixSetElement(m *Matrix, value any, row, col uint64) Info {
	if info := openMatrix(m); info != Success {
		return info
	}
	if TypeOfValue(value) == nil {
		return m.reject(DomainMismatch, "GrB_Matrix_setElement: unsupported value type %T", value)
	}
	if row >= m.nrows || col >= m.ncols {
		return m.reject(InvalidIndex, "GrB_Matrix_setElement: (%d,%d) out of range for %dx%d", row, col, m.nrows, m.ncols)
	}
	m.mu.Lock()
	m.data.set(m.key(row, col), value)
	m.mu.Unlock()

	return Success
}

// MatrixExtractElement returns the value at (row, col), or NoValue when absent.
func MatrixExtractElement(m *Matrix, row, col uint64) (any, Info) {
	if info := openMatrix(m); info != Success {
		return nil, info
	}
	if row >= m.nrows || col >= m.ncols {
		return nil, m.reject(InvalidIndex, "GrB_Matrix_extractElement: (%d,%d) out of range for %dx%d", row, col, m.nrows, m.ncols)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data.get(m.key(row, col))
	if !ok {
		return nil, NoValue
	}

	return value, Success
}

// MatrixRemoveElement deletes the entry at (row, col), if any.
func MatrixRemoveElement(m *Matrix, row, col uint64) Info {
	if info := openMatrix(m); info != Success {
		return info
	}
	if row >= m.nrows || col >= m.ncols {
		return m.reject(InvalidIndex, "GrB_Matrix_removeElement: (%d,%d) out of range for %dx%d", row, col, m.nrows, m.ncols)
	}
	m.mu.Lock()
	m.data.remove(m.key(row, col))
	m.mu.Unlock()

	return Success
}

// MatrixBuild fills an empty matrix from parallel row/col/value lists.
// Duplicate coordinates are combined with dup; without dup they are rejected.
func MatrixBuild(m *Matrix, rows, cols []uint64, values []any, dup *BinaryOp) Info {
	if info := openMatrix(m); info != Success {
		return info
	}
	if len(rows) != len(values) || len(cols) != len(values) {
		return m.reject(InvalidValue, "GrB_Matrix_build: %d rows, %d cols, %d values", len(rows), len(cols), len(values))
	}
	keys := make([]uint64, len(values))
	for n := range values {
		if rows[n] >= m.nrows || cols[n] >= m.ncols {
			return m.reject(IndexOutOfBounds, "GrB_Matrix_build: (%d,%d) out of bounds for %dx%d", rows[n], cols[n], m.nrows, m.ncols)
		}
		if TypeOfValue(values[n]) == nil {
			return m.reject(DomainMismatch, "GrB_Matrix_build: unsupported value type %T", values[n])
		}
		keys[n] = m.key(rows[n], cols[n])
	}

	return buildInto(&m.object, func() *store { return m.data }, func(s *store) { m.data = s }, keys, values, dup, "GrB_Matrix_build")
}

// MatrixExtractTuples returns every stored entry in row-major order.
func MatrixExtractTuples(m *Matrix) ([]uint64, []uint64, []any, Info) {
	if info := openMatrix(m); info != Success {
		return nil, nil, nil, info
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := m.data.nvals()
	rows := make([]uint64, 0, n)
	cols := make([]uint64, 0, n)
	values := make([]any, 0, n)
	m.data.each(func(k uint64, value any) {
		rows = append(rows, k/m.ncols)
		cols = append(cols, k%m.ncols)
		values = append(values, value)
	})

	return rows, cols, values, Success
}

// MatrixClear removes every entry; shape and domain are kept.
func MatrixClear(m *Matrix) Info {
	if info := openMatrix(m); info != Success {
		return info
	}
	m.update(func(current *store) *store { return newStore(current.typ) })

	return Success
}

// MatrixDup returns an independent copy.
func MatrixDup(m *Matrix) (*Matrix, Info) {
	if info := openMatrix(m); info != Success {
		return nil, info
	}
	view := m.snapshot(false)
	dup := &Matrix{nrows: view.nrows, ncols: view.ncols, data: view.data}
	dup.session = currentSession()

	return dup, Success
}

// buildInto is the shared body of VectorBuild and MatrixBuild.
func buildInto(o *object, current func() *store, install func(*store), keys []uint64, values []any, dup *BinaryOp, name string) Info {
	o.mu.Lock()
	cur := current()
	if cur.nvals() != 0 {
		o.mu.Unlock()
		return o.reject(OutputNotEmpty, "%s: output already holds %d entries", name, cur.nvals())
	}
	built := newStore(cur.typ)
	var duplicate uint64
	hasDuplicate := false
	info, detail := guard(func() {
		for n, k := range keys {
			existing, ok := built.get(k)
			switch {
			case !ok:
				built.set(k, values[n])
			case dup == nil:
				duplicate, hasDuplicate = k, true
				return
			default:
				built.set(k, dup.apply(existing, values[n]))
			}
		}
	})
	if info == Success && !hasDuplicate {
		install(built)
	}
	o.mu.Unlock()

	switch {
	case info != Success:
		return o.fail(info, name+": "+detail)
	case hasDuplicate:
		return o.reject(InvalidValue, "%s: duplicate key %d and no dup operator", name, duplicate)
	}

	return Success
}
