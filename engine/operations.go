// SPDX-License-Identifier: MIT

package engine

import "fmt"

// Indices selects rows (or columns) for extraction: either all of them, in
// order, or an explicit list that may repeat entries.
type Indices struct {
	all  bool
	list []uint64
}

// All selects every index of the extracted dimension (GrB_ALL).
func All() Indices { return Indices{all: true} }

// List selects the given indices in the given order.
func List(indices ...uint64) Indices {
	list := make([]uint64, len(indices))
	copy(list, indices)

	return Indices{list: list}
}

// IsAll reports whether the selection is GrB_ALL.
func (ix Indices) IsAll() bool { return ix.all }

// Len returns the number of selected indices when the extracted dimension has
// length n.
func (ix Indices) Len(n uint64) uint64 {
	if ix.all {
		return n
	}

	return uint64(len(ix.list))
}

// at returns the k-th selected index.
func (ix Indices) at(k uint64) uint64 {
	if ix.all {
		return k
	}

	return ix.list[k]
}

// VectorEWiseAdd computes w<mask> = accum(w, u ⊕ v) over the union of the
// input patterns. Where only one input holds an entry, that entry is cast into
// op's output domain and copied.
func VectorEWiseAdd(w, mask *Vector, accum, op *BinaryOp, u, v *Vector, desc *Descriptor) Info {
	return vectorEWise("GrB_Vector_eWiseAdd", w, mask, accum, op, u, v, desc, true)
}

// VectorEWiseMult computes w<mask> = accum(w, u ⊗ v) over the intersection of
// the input patterns.
func VectorEWiseMult(w, mask *Vector, accum, op *BinaryOp, u, v *Vector, desc *Descriptor) Info {
	return vectorEWise("GrB_Vector_eWiseMult", w, mask, accum, op, u, v, desc, false)
}

// MatrixEWiseAdd computes C<mask> = accum(C, A ⊕ B) over the union of the
// input patterns. Both inputs honour their transpose settings.
func MatrixEWiseAdd(c, mask *Matrix, accum, op *BinaryOp, a, b *Matrix, desc *Descriptor) Info {
	return matrixEWise("GrB_Matrix_eWiseAdd", c, mask, accum, op, a, b, desc, true)
}

// MatrixEWiseMult computes C<mask> = accum(C, A ⊗ B) over the intersection of
// the input patterns.
func MatrixEWiseMult(c, mask *Matrix, accum, op *BinaryOp, a, b *Matrix, desc *Descriptor) Info {
	return matrixEWise("GrB_Matrix_eWiseMult", c, mask, accum, op, a, b, desc, false)
}

// MxM computes C<mask> = accum(C, A ⊕.⊗ B). An output position is stored
// when at least one k contributes, even if the reduced value is zero.
func MxM(c, mask *Matrix, accum *BinaryOp, semiring *Semiring, a, b *Matrix, desc *Descriptor) Info {
	const name = "GrB_mxm"
	if c == nil || a == nil || b == nil || semiring == nil {
		return NullPointer
	}
	cfg := desc.settings()
	if info := openMatrixCall(name, c, mask, &a.object, &b.object); info != Success {
		return info
	}
	av, bv := a.snapshot(cfg.TransposeInput0), b.snapshot(cfg.TransposeInput1)
	if av.ncols != bv.nrows || av.nrows != c.nrows || bv.ncols != c.ncols {
		return c.reject(DimensionMismatch, "%s: %dx%d times %dx%d into %dx%d", name, av.nrows, av.ncols, bv.nrows, bv.ncols, c.nrows, c.ncols)
	}

	var t *store
	info, detail := guard(func() {
		add, mul := semiring.add.op, semiring.mul
		t = newStore(add.ztype)
		brows := bv.rows()
		out := matrixView{nrows: c.nrows, ncols: c.ncols}
		av.data.each(func(k uint64, x any) {
			i, inner := av.coordinate(k)
			for _, e := range brows[inner] {
				key := out.key(i, e.index)
				z := mul.apply(x, e.value)
				if acc, ok := t.get(key); ok {
					z = add.apply(acc, z)
				}
				t.set(key, z)
			}
		})
	})
	if info != Success {
		return c.fail(info, name+": "+detail)
	}

	return commit(&c.object, &c.data, t, matrixMask(mask), accum, cfg, name)
}

// MxV computes w<mask> = accum(w, A ⊕.⊗ u).
func MxV(w, mask *Vector, accum *BinaryOp, semiring *Semiring, a *Matrix, u *Vector, desc *Descriptor) Info {
	const name = "GrB_mxv"
	if w == nil || a == nil || u == nil || semiring == nil {
		return NullPointer
	}
	cfg := desc.settings()
	if info := openVectorCall(name, w, mask, &a.object, &u.object); info != Success {
		return info
	}
	av := a.snapshot(cfg.TransposeInput0)
	usize, ud := u.snapshot()
	if av.ncols != usize || av.nrows != w.size {
		return w.reject(DimensionMismatch, "%s: %dx%d times %d into %d", name, av.nrows, av.ncols, usize, w.size)
	}

	var t *store
	info, detail := guard(func() {
		add, mul := semiring.add.op, semiring.mul
		t = newStore(add.ztype)
		av.data.each(func(k uint64, x any) {
			i, inner := av.coordinate(k)
			y, ok := ud.get(inner)
			if !ok {
				return
			}
			z := mul.apply(x, y)
			if acc, ok := t.get(i); ok {
				z = add.apply(acc, z)
			}
			t.set(i, z)
		})
	})
	if info != Success {
		return w.fail(info, name+": "+detail)
	}

	return commit(&w.object, &w.data, t, vectorMask(mask), accum, cfg, name)
}

// ColExtract computes w<mask> = accum(w, A(rows, col)). With TransposeInput0
// the call extracts a row of A instead. w's size must equal the number of
// selected rows.
func ColExtract(w, mask *Vector, accum *BinaryOp, a *Matrix, rows Indices, col uint64, desc *Descriptor) Info {
	const name = "GrB_Col_extract"
	if w == nil || a == nil {
		return NullPointer
	}
	cfg := desc.settings()
	if info := openVectorCall(name, w, mask, &a.object); info != Success {
		return info
	}
	av := a.snapshot(cfg.TransposeInput0)
	if n := rows.Len(av.nrows); n != w.size {
		return w.reject(DimensionMismatch, "%s: %d rows selected into vector of size %d", name, n, w.size)
	}
	if col >= av.ncols {
		return w.reject(InvalidIndex, "%s: column %d out of range; must be < %d", name, col, av.ncols)
	}

	t := newStore(av.data.typ)
	for k := uint64(0); k < w.size; k++ {
		row := rows.at(k)
		if row >= av.nrows {
			return w.fail(IndexOutOfBounds, fmt.Sprintf("%s: row %d out of bounds; must be < %d", name, row, av.nrows))
		}
		if value, ok := av.data.get(av.key(row, col)); ok {
			t.set(k, value)
		}
	}

	return commit(&w.object, &w.data, t, vectorMask(mask), accum, cfg, name)
}

// VectorApply computes w<mask> = accum(w, f(u)).
func VectorApply(w, mask *Vector, accum *BinaryOp, op *UnaryOp, u *Vector, desc *Descriptor) Info {
	const name = "GrB_Vector_apply"
	if w == nil || u == nil || op == nil {
		return NullPointer
	}
	cfg := desc.settings()
	if info := openVectorCall(name, w, mask, &u.object); info != Success {
		return info
	}
	usize, ud := u.snapshot()
	if usize != w.size {
		return w.reject(DimensionMismatch, "%s: input size %d, output size %d", name, usize, w.size)
	}

	var t *store
	info, detail := guard(func() { t = mapStore(ud, op) })
	if info != Success {
		return w.fail(info, name+": "+detail)
	}

	return commit(&w.object, &w.data, t, vectorMask(mask), accum, cfg, name)
}

// MatrixApply computes C<mask> = accum(C, f(A)).
func MatrixApply(c, mask *Matrix, accum *BinaryOp, op *UnaryOp, a *Matrix, desc *Descriptor) Info {
	const name = "GrB_Matrix_apply"
	if c == nil || a == nil || op == nil {
		return NullPointer
	}
	cfg := desc.settings()
	if info := openMatrixCall(name, c, mask, &a.object); info != Success {
		return info
	}
	av := a.snapshot(cfg.TransposeInput0)
	if av.nrows != c.nrows || av.ncols != c.ncols {
		return c.reject(DimensionMismatch, "%s: input %dx%d, output %dx%d", name, av.nrows, av.ncols, c.nrows, c.ncols)
	}

	var t *store
	info, detail := guard(func() { t = mapStore(av.data, op) })
	if info != Success {
		return c.fail(info, name+": "+detail)
	}

	return commit(&c.object, &c.data, t, matrixMask(mask), accum, cfg, name)
}

func vectorEWise(name string, w, mask *Vector, accum, op *BinaryOp, u, v *Vector, desc *Descriptor, union bool) Info {
	if w == nil || u == nil || v == nil || op == nil {
		return NullPointer
	}
	cfg := desc.settings()
	if info := openVectorCall(name, w, mask, &u.object, &v.object); info != Success {
		return info
	}
	usize, ud := u.snapshot()
	vsize, vd := v.snapshot()
	if usize != w.size || vsize != w.size {
		return w.reject(DimensionMismatch, "%s: inputs of size %d and %d into %d", name, usize, vsize, w.size)
	}

	var t *store
	info, detail := guard(func() { t = combine(ud, vd, op, union) })
	if info != Success {
		return w.fail(info, name+": "+detail)
	}

	return commit(&w.object, &w.data, t, vectorMask(mask), accum, cfg, name)
}

func matrixEWise(name string, c, mask *Matrix, accum, op *BinaryOp, a, b *Matrix, desc *Descriptor, union bool) Info {
	if c == nil || a == nil || b == nil || op == nil {
		return NullPointer
	}
	cfg := desc.settings()
	if info := openMatrixCall(name, c, mask, &a.object, &b.object); info != Success {
		return info
	}
	av, bv := a.snapshot(cfg.TransposeInput0), b.snapshot(cfg.TransposeInput1)
	if av.nrows != c.nrows || av.ncols != c.ncols || bv.nrows != c.nrows || bv.ncols != c.ncols {
		return c.reject(DimensionMismatch, "%s: inputs %dx%d and %dx%d into %dx%d", name, av.nrows, av.ncols, bv.nrows, bv.ncols, c.nrows, c.ncols)
	}

	var t *store
	info, detail := guard(func() { t = combine(av.data, bv.data, op, union) })
	if info != Success {
		return c.fail(info, name+": "+detail)
	}

	return commit(&c.object, &c.data, t, matrixMask(mask), accum, cfg, name)
}

// combine evaluates op over the union or the intersection of two patterns.
func combine(x, y *store, op *BinaryOp, union bool) *store {
	t := newStore(op.ztype)
	x.each(func(k uint64, xv any) {
		if yv, ok := y.get(k); ok {
			t.set(k, op.apply(xv, yv))
		} else if union {
			t.set(k, xv)
		}
	})
	if union {
		y.each(func(k uint64, yv any) {
			if _, ok := x.get(k); !ok {
				t.set(k, yv)
			}
		})
	}

	return t
}

// mapStore applies op to every stored entry.
func mapStore(x *store, op *UnaryOp) *store {
	t := newStore(op.ztype)
	x.each(func(k uint64, v any) { t.set(k, op.apply(v)) })

	return t
}

func openVectorCall(name string, w, mask *Vector, inputs ...*object) Info {
	if mask != nil {
		inputs = append(inputs, &mask.object)
	}
	if info := begin(&w.object, inputs...); info != Success {
		return info
	}
	if mask != nil && mask.size != w.size {
		return w.reject(DimensionMismatch, "%s: mask size %d, output size %d", name, mask.size, w.size)
	}

	return Success
}

func openMatrixCall(name string, c, mask *Matrix, inputs ...*object) Info {
	if mask != nil {
		inputs = append(inputs, &mask.object)
	}
	if info := begin(&c.object, inputs...); info != Success {
		return info
	}
	if mask != nil && (mask.nrows != c.nrows || mask.ncols != c.ncols) {
		return c.reject(DimensionMismatch, "%s: mask %dx%d, output %dx%d", name, mask.nrows, mask.ncols, c.nrows, c.ncols)
	}

	return Success
}

func vectorMask(mask *Vector) *store {
	if mask == nil {
		return nil
	}
	_, data := mask.snapshot()

	return data
}

func matrixMask(mask *Matrix) *store {
	if mask == nil {
		return nil
	}

	return mask.snapshot(false).data
}

// commit applies the write rule to the output's storage under its write lock.
func commit(o *object, slot **store, t, mask *store, accum *BinaryOp, cfg DescriptorConfig, name string) Info {
	sel := newSelection(mask, cfg)
	o.mu.Lock()
	var merged *store
	info, detail := guard(func() { merged = merge(*slot, t, sel, accum, cfg.ReplaceOutput) })
	if info == Success {
		*slot = merged
	}
	o.mu.Unlock()
	if info != Success {
		return o.fail(info, name+": "+detail)
	}

	return Success
}
