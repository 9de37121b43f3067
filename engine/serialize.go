// SPDX-License-Identifier: MIT

package engine

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// Serialized layout (all integers little-endian):
//
//	magic "GBSR" | version u8 | kind u8 | type code u8
//	dims: uvarint size (vector) or uvarint nrows, uvarint ncols (matrix)
//	pattern: uvarint length + roaring64 portable serialization
//	values: one fixed-width value per stored key, ascending key order
const (
	serialMagic   = "GBSR"
	serialVersion = 1

	kindVector byte = 1
	kindMatrix byte = 2
)

// VectorSerialize encodes v into a self-describing byte slice.
func VectorSerialize(v *Vector) ([]byte, Info) {
	if info := openVector(v); info != Success {
		return nil, info
	}
	size, data := v.snapshot()
	var buf bytes.Buffer
	writeHeader(&buf, kindVector, data.typ, size)
	if info := writeBody(&buf, data); info != Success {
		return nil, v.reject(info, "GxB_Vector_serialize: pattern encoding failed")
	}

	return buf.Bytes(), Success
}

// MatrixSerialize encodes m into a self-describing byte slice.
func MatrixSerialize(m *Matrix) ([]byte, Info) {
	if info := openMatrix(m); info != Success {
		return nil, info
	}
	view := m.snapshot(false)
	var buf bytes.Buffer
	writeHeader(&buf, kindMatrix, view.data.typ, view.nrows, view.ncols)
	if info := writeBody(&buf, view.data); info != Success {
		return nil, m.reject(info, "GxB_Matrix_serialize: pattern encoding failed")
	}

	return buf.Bytes(), Success
}

// VectorDeserialize decodes a blob produced by VectorSerialize. The stored
// domain must equal typ.
func VectorDeserialize(typ *Type, blob []byte) (*Vector, Info) {
	if info := ready(); info != Success {
		return nil, info
	}
	if typ == nil {
		return nil, NullPointer
	}
	r := bytes.NewReader(blob)
	dims, info := readHeader(r, kindVector, typ, 1)
	if info != Success {
		return nil, info
	}
	data, info := readBody(r, typ, dims[0])
	if info != Success {
		return nil, info
	}
	v := &Vector{size: dims[0], data: data}
	v.session = currentSession()

	return v, Success
}

// MatrixDeserialize decodes a blob produced by MatrixSerialize. The stored
// domain must equal typ.
func MatrixDeserialize(typ *Type, blob []byte) (*Matrix, Info) {
	if info := ready(); info != Success {
		return nil, info
	}
	if typ == nil {
		return nil, NullPointer
	}
	r := bytes.NewReader(blob)
	dims, info := readHeader(r, kindMatrix, typ, 2)
	if info != Success {
		return nil, info
	}
	nrows, ncols := dims[0], dims[1]
	if ncols != 0 && nrows > math.MaxUint64/ncols {
		return nil, InvalidObject
	}
	data, info := readBody(r, typ, nrows*ncols)
	if info != Success {
		return nil, info
	}
	m := &Matrix{nrows: nrows, ncols: ncols, data: data}
	m.session = currentSession()

	return m, Success
}

func writeHeader(buf *bytes.Buffer, kind byte, typ *Type, dims ...uint64) {
	buf.WriteString(serialMagic)
	buf.WriteByte(serialVersion)
	buf.WriteByte(kind)
	buf.WriteByte(byte(typ.code))
	for _, d := range dims {
		buf.Write(binary.AppendUvarint(nil, d))
	}
}

func writeBody(buf *bytes.Buffer, data *store) Info {
	data.pattern.RunOptimize()
	pattern, err := data.pattern.MarshalBinary()
	if err != nil {
		return InvalidObject
	}
	buf.Write(binary.AppendUvarint(nil, uint64(len(pattern))))
	buf.Write(pattern)
	scratch := make([]byte, 8)
	data.each(func(_ uint64, v any) {
		buf.Write(encodeValue(scratch, data.typ, v))
	})

	return Success
}

func readHeader(r *bytes.Reader, kind byte, typ *Type, ndims int) ([]uint64, Info) {
	head := make([]byte, len(serialMagic)+3)
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, InvalidObject
	}
	if string(head[:len(serialMagic)]) != serialMagic || head[4] != serialVersion || head[5] != kind {
		return nil, InvalidObject
	}
	stored := TypeFromCode(TypeCode(head[6]))
	if stored == nil {
		return nil, InvalidObject
	}
	if stored != typ {
		return nil, DomainMismatch
	}
	dims := make([]uint64, ndims)
	for n := range dims {
		d, err := binary.ReadUvarint(r)
		if err != nil || d > MaxIndex {
			return nil, InvalidObject
		}
		dims[n] = d
	}

	return dims, Success
}

// readBody decodes the pattern and values; every key must be below limit.
func readBody(r *bytes.Reader, typ *Type, limit uint64) (*store, Info) {
	data := newStore(typ)
	n, err := binary.ReadUvarint(r)
	if err != nil || n > uint64(r.Len()) {
		return nil, InvalidObject
	}
	pattern := make([]byte, n)
	if _, err := io.ReadFull(r, pattern); err != nil {
		return nil, InvalidObject
	}
	if info, _ := guard(func() { err = data.pattern.UnmarshalBinary(pattern) }); info != Success || err != nil {
		return nil, InvalidObject
	}
	if !data.pattern.IsEmpty() && data.pattern.Maximum() >= limit {
		return nil, InvalidObject
	}
	if uint64(r.Len()) != data.pattern.GetCardinality()*uint64(typ.size) {
		return nil, InvalidObject
	}
	raw := make([]byte, typ.size)
	it := data.pattern.Iterator()
	for it.HasNext() {
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, InvalidObject
		}
		data.values[it.Next()] = decodeValue(raw, typ)
	}

	return data, Success
}

func encodeValue(scratch []byte, typ *Type, v any) []byte {
	b := scratch[:typ.size]
	switch typ.code {
	case TypeBool:
		b[0] = 0
		if v.(bool) {
			b[0] = 1
		}
	case TypeInt8:
		b[0] = byte(v.(int8))
	case TypeUint8:
		b[0] = v.(uint8)
	case TypeInt16:
		binary.LittleEndian.PutUint16(b, uint16(v.(int16)))
	case TypeUint16:
		binary.LittleEndian.PutUint16(b, v.(uint16))
	case TypeInt32:
		binary.LittleEndian.PutUint32(b, uint32(v.(int32)))
	case TypeUint32:
		binary.LittleEndian.PutUint32(b, v.(uint32))
	case TypeInt64:
		binary.LittleEndian.PutUint64(b, uint64(v.(int64)))
	case TypeUint64:
		binary.LittleEndian.PutUint64(b, v.(uint64))
	case TypeFP32:
		binary.LittleEndian.PutUint32(b, math.Float32bits(v.(float32)))
	case TypeFP64:
		binary.LittleEndian.PutUint64(b, math.Float64bits(v.(float64)))
	}

	return b
}

func decodeValue(b []byte, typ *Type) any {
	switch typ.code {
	case TypeBool:
		return b[0] != 0
	case TypeInt8:
		return int8(b[0])
	case TypeUint8:
		return b[0]
	case TypeInt16:
		return int16(binary.LittleEndian.Uint16(b))
	case TypeUint16:
		return binary.LittleEndian.Uint16(b)
	case TypeInt32:
		return int32(binary.LittleEndian.Uint32(b))
	case TypeUint32:
		return binary.LittleEndian.Uint32(b)
	case TypeInt64:
		return int64(binary.LittleEndian.Uint64(b))
	case TypeUint64:
		return binary.LittleEndian.Uint64(b)
	case TypeFP32:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	default:
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	}
}
