// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// store is the coordinate storage shared by vectors and matrices.
// pattern holds the stored keys; values holds one entry per key, already cast
// to typ. Keys are indices for vectors and row*ncols+col for matrices.
type store struct {
	typ     *Type
	pattern *roaring64.Bitmap
	values  map[uint64]any
}

func newStore(typ *Type) *store {
	return &store{typ: typ, pattern: roaring64.New(), values: make(map[uint64]any)}
}

// clone returns an independent deep copy.
func (s *store) clone() *store {
	values := make(map[uint64]any, len(s.values))
	for k, v := range s.values {
		values[k] = v
	}

	return &store{typ: s.typ, pattern: s.pattern.Clone(), values: values}
}

func (s *store) get(k uint64) (any, bool) {
	v, ok := s.values[k]
	return v, ok
}

// set stores v at k after casting it into the store's domain.
func (s *store) set(k uint64, v any) {
	s.pattern.Add(k)
	s.values[k] = Cast(v, s.typ)
}

func (s *store) remove(k uint64) {
	if _, ok := s.values[k]; !ok {
		return
	}
	s.pattern.Remove(k)
	delete(s.values, k)
}

func (s *store) nvals() uint64 { return s.pattern.GetCardinality() }

// each visits stored entries in ascending key order.
func (s *store) each(fn func(k uint64, v any)) {
	it := s.pattern.Iterator()
	for it.HasNext() {
		k := it.Next()
		fn(k, s.values[k])
	}
}

// selection is the set of output keys a mask allows to be written.
// A nil set means "no mask": everything is selected unless complemented.
type selection struct {
	set        *roaring64.Bitmap
	complement bool
}

// newSelection derives the selected keys from a mask's storage.
// Under a value mask only entries that cast to true are kept.
func newSelection(mask *store, cfg DescriptorConfig) selection {
	if mask == nil {
		return selection{complement: cfg.ComplementMask}
	}
	if cfg.StructuralMask {
		return selection{set: mask.pattern, complement: cfg.ComplementMask}
	}
	set := roaring64.New()
	mask.each(func(k uint64, v any) {
		if Truthy(v) {
			set.Add(k)
		}
	})

	return selection{set: set, complement: cfg.ComplementMask}
}

func (s selection) selects(k uint64) bool {
	if s.set == nil {
		return !s.complement
	}

	return s.set.Contains(k) != s.complement
}

// merge applies the write rule: C<M, replace> = accum(C, T).
// c is not modified; the merged result is returned as a new store.
func merge(c, t *store, sel selection, accum *BinaryOp, replace bool) *store {
	out := c.clone()
	candidates := roaring64.Or(c.pattern, t.pattern)
	it := candidates.Iterator()
	for it.HasNext() {
		k := it.Next()
		if !sel.selects(k) {
			if replace {
				out.remove(k)
			}
			continue
		}
		tv, inT := t.get(k)
		cv, inC := c.get(k)
		switch {
		case accum == nil && inT:
			out.set(k, tv)
		case accum == nil:
			out.remove(k)
		case inT && inC:
			out.set(k, accum.apply(cv, tv))
		case inT:
			out.set(k, tv)
		}
	}

	return out
}
