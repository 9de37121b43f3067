// SPDX-License-Identifier: MIT

package engine

// MaxIndex bounds every dimension (GrB_INDEX_MAX + 1).
const MaxIndex uint64 = 1 << 60

// Vector is a sparse vector handle of fixed size and domain.
type Vector struct {
	object
	size uint64
	data *store
}

var _ Object = (*Vector)(nil)

// NewVector creates an empty vector.
func NewVector(typ *Type, size uint64) (*Vector, Info) {
	if info := ready(); info != Success {
		return nil, info
	}
	if typ == nil {
		return nil, NullPointer
	}
	if size > MaxIndex {
		return nil, InvalidValue
	}
	v := &Vector{size: size, data: newStore(typ)}
	v.session = currentSession()

	return v, Success
}

// snapshot returns the vector's size and a private copy of its storage.
func (v *Vector) snapshot() (uint64, *store) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.size, v.data.clone()
}

// update replaces the vector's storage with fn(current) under the write lock.
func (v *Vector) update(fn func(current *store) *store) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.data = fn(v.data)
}

// openVector runs the common checks for element-level vector calls.
func openVector(v *Vector) Info {
	if v == nil {
		return NullPointer
	}

	return begin(&v.object)
}

// VectorSize returns the vector's length.
func VectorSize(v *Vector) (uint64, Info) {
	if info := openVector(v); info != Success {
		return 0, info
	}

	return v.size, Success
}

// VectorType returns the vector's domain.
func VectorType(v *Vector) (*Type, Info) {
	if info := openVector(v); info != Success {
		return nil, info
	}

	return v.data.typ, Success
}

// VectorNvals returns the number of stored entries.
func VectorNvals(v *Vector) (uint64, Info) {
	if info := openVector(v); info != Success {
		return 0, info
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.data.nvals(), Success
}

// VectorSetElement stores value at index, casting it into the vector's domain.
func VectorSetElement(v *Vector, value any, index uint64) Info {
	if info := openVector(v); info != Success {
		return info
	}
	if TypeOfValue(value) == nil {
		return v.reject(DomainMismatch, "GrB_Vector_setElement: unsupported value type %T", value)
	}
	if index >= v.size {
		return v.reject(InvalidIndex, "GrB_Vector_setElement: index %d out of range; must be < %d", index, v.size)
	}
	v.mu.Lock()
	v.data.set(index, value)
	v.mu.Unlock()

	return Success
}

// VectorExtractElement returns the value at index, or NoValue when absent.
func VectorExtractElement(v *Vector, index uint64) (any, Info) {
	if info := openVector(v); info != Success {
		return nil, info
	}
	if index >= v.size {
		return nil, v.reject(InvalidIndex, "GrB_Vector_extractElement: index %d out of range; must be < %d", index, v.size)
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	value, ok := v.data.get(index)
	if !ok {
		return nil, NoValue
	}

	return value, Success
}

// VectorRemoveElement deletes the entry at index, if any.
func VectorRemoveElement(v *Vector, index uint64) Info {
	if info := openVector(v); info != Success {
		return info
	}
	if index >= v.size {
		return v.reject(InvalidIndex, "GrB_Vector_removeElement: index %d out of range; must be < %d", index, v.size)
	}
	v.mu.Lock()
	v.data.remove(index)
	v.mu.Unlock()

	return Success
}

// VectorBuild fills an empty vector from parallel index/value lists.
// Duplicate indices are combined with dup; without dup they are rejected.
func VectorBuild(v *Vector, indices []uint64, values []any, dup *BinaryOp) Info {
	if info := openVector(v); info != Success {
		return info
	}
	if len(indices) != len(values) {
		return v.reject(InvalidValue, "GrB_Vector_build: %d indices but %d values", len(indices), len(values))
	}
	keys := make([]uint64, len(indices))
	for n, i := range indices {
		if i >= v.size {
			return v.reject(IndexOutOfBounds, "GrB_Vector_build: index %d out of bounds; must be < %d", i, v.size)
		}
		if TypeOfValue(values[n]) == nil {
			return v.reject(DomainMismatch, "GrB_Vector_build: unsupported value type %T", values[n])
		}
		keys[n] = i
	}

	return buildInto(&v.object, func() *store { return v.data }, func(s *store) { v.data = s }, keys, values, dup, "GrB_Vector_build")
}

// VectorExtractTuples returns every stored entry in ascending index order.
func VectorExtractTuples(v *Vector) ([]uint64, []any, Info) {
	if info := openVector(v); info != Success {
		return nil, nil, info
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	n := v.data.nvals()
	indices := make([]uint64, 0, n)
	values := make([]any, 0, n)
	v.data.each(func(k uint64, value any) {
		indices = append(indices, k)
		values = append(values, value)
	})

	return indices, values, Success
}

// VectorClear removes every entry; size and domain are kept.
func VectorClear(v *Vector) Info {
	if info := openVector(v); info != Success {
		return info
	}
	v.update(func(current *store) *store { return newStore(current.typ) })

	return Success
}

// VectorDup returns an independent copy.
func VectorDup(v *Vector) (*Vector, Info) {
	if info := openVector(v); info != Success {
		return nil, info
	}
	size, data := v.snapshot()
	dup := &Vector{size: size, data: data}
	dup.session = currentSession()

	return dup, Success
}
