// SPDX-License-Identifier: MIT

// Package serialize wraps raw engine snapshots in a small compressed envelope.
//
// Envelope layout:
//
//	[codec u8][uncompressed size u32][stored size u32][payload...]
//
// A stored size of 0 means the payload is kept uncompressed, which every codec
// falls back to when compression does not pay off.
package serialize

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Sentinel errors.
var (
	// ErrCorrupt reports an envelope that cannot be decoded.
	ErrCorrupt = errors.New("serialize: corrupt envelope")

	// ErrCodecMismatch reports an envelope written by another codec.
	ErrCodecMismatch = errors.New("serialize: codec mismatch")

	// ErrTooLarge reports a snapshot above the 4 GiB envelope limit.
	ErrTooLarge = errors.New("serialize: snapshot too large")
)

// Codec identifies the compression algorithm of an envelope.
type Codec uint8

const (
	// CodecNone stores snapshots as-is.
	CodecNone Codec = 0
	// CodecLZ4 uses LZ4 block compression (fast).
	CodecLZ4 Codec = 1
	// CodecZstd uses Zstandard (better ratio).
	CodecZstd Codec = 2
)

// String implements fmt.Stringer.
func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecLZ4:
		return "lz4"
	case CodecZstd:
		return "zstd"
	default:
		return fmt.Sprintf("codec(%d)", uint8(c))
	}
}

// Serializer turns raw snapshots into envelopes and back.
// Implementations are safe for concurrent use.
type Serializer interface {
	Codec() Codec
	Encode(raw []byte) ([]byte, error)
	Decode(envelope []byte) ([]byte, error)
}

const headerSize = 9

// skipRatio: compressed payloads above this share of the input are stored raw.
const skipRatio = 0.9

type uncompressed struct{}

// Uncompressed returns the pass-through serializer.
func Uncompressed() Serializer { return uncompressed{} }

func (uncompressed) Codec() Codec { return CodecNone }

func (uncompressed) Encode(raw []byte) ([]byte, error) { return seal(CodecNone, raw, nil) }

func (uncompressed) Decode(envelope []byte) ([]byte, error) {
	return open(CodecNone, envelope, nil)
}

type lz4Serializer struct{}

// LZ4 returns an LZ4 block serializer.
func LZ4() Serializer { return lz4Serializer{} }

func (lz4Serializer) Codec() Codec { return CodecLZ4 }

func (lz4Serializer) Encode(raw []byte) ([]byte, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := lz4.CompressBlock(raw, buf, nil)
	if err != nil {
		return nil, fmt.Errorf("serialize: lz4: %w", err)
	}
	if n == 0 {
		return seal(CodecLZ4, raw, nil) // incompressible
	}

	return seal(CodecLZ4, raw, buf[:n])
}

func (lz4Serializer) Decode(envelope []byte) ([]byte, error) {
	return open(CodecLZ4, envelope, func(payload []byte, size uint32) ([]byte, error) {
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %v", ErrCorrupt, err)
		}

		return out[:n], nil
	})
}

type zstdSerializer struct {
	encoders sync.Pool
	decoders sync.Pool
	level    zstd.EncoderLevel
}

// Zstd returns a Zstandard serializer at level (zstd's 1..22 scale; values
// outside map to the nearest supported speed).
func Zstd(level int) Serializer {
	return &zstdSerializer{level: zstd.EncoderLevelFromZstd(level)}
}

func (*zstdSerializer) Codec() Codec { return CodecZstd }

func (z *zstdSerializer) encoder() (*zstd.Encoder, error) {
	if enc, ok := z.encoders.Get().(*zstd.Encoder); ok {
		return enc, nil
	}

	return zstd.NewWriter(nil, zstd.WithEncoderLevel(z.level))
}

func (z *zstdSerializer) decoder() (*zstd.Decoder, error) {
	if dec, ok := z.decoders.Get().(*zstd.Decoder); ok {
		return dec, nil
	}

	return zstd.NewReader(nil)
}

func (z *zstdSerializer) Encode(raw []byte) ([]byte, error) {
	enc, err := z.encoder()
	if err != nil {
		return nil, fmt.Errorf("serialize: zstd: %w", err)
	}
	defer z.encoders.Put(enc)

	return seal(CodecZstd, raw, enc.EncodeAll(raw, nil))
}

func (z *zstdSerializer) Decode(envelope []byte) ([]byte, error) {
	return open(CodecZstd, envelope, func(payload []byte, size uint32) ([]byte, error) {
		dec, err := z.decoder()
		if err != nil {
			return nil, fmt.Errorf("serialize: zstd: %w", err)
		}
		defer z.decoders.Put(dec)

		out, err := dec.DecodeAll(payload, make([]byte, 0, size))
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrCorrupt, err)
		}

		return out, nil
	})
}

// seal writes the envelope. A nil or unprofitable compressed payload stores
// raw instead.
func seal(codec Codec, raw, compressed []byte) ([]byte, error) {
	if uint64(len(raw)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}
	payload, stored := raw, uint32(0)
	if compressed != nil && float64(len(compressed)) <= float64(len(raw))*skipRatio {
		payload, stored = compressed, uint32(len(compressed))
	}
	out := make([]byte, headerSize+len(payload))
	out[0] = byte(codec)
	binary.LittleEndian.PutUint32(out[1:], uint32(len(raw)))
	binary.LittleEndian.PutUint32(out[5:], stored)
	copy(out[headerSize:], payload)

	return out, nil
}

// open validates the envelope and decompresses its payload with inflate.
func open(codec Codec, envelope []byte, inflate func(payload []byte, size uint32) ([]byte, error)) ([]byte, error) {
	if len(envelope) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(envelope))
	}
	if got := Codec(envelope[0]); got != codec {
		return nil, fmt.Errorf("%w: envelope is %s, serializer is %s", ErrCodecMismatch, got, codec)
	}
	size := binary.LittleEndian.Uint32(envelope[1:])
	stored := binary.LittleEndian.Uint32(envelope[5:])
	body := envelope[headerSize:]

	if stored == 0 {
		if uint64(len(body)) != uint64(size) {
			return nil, fmt.Errorf("%w: raw payload of %d bytes, header says %d", ErrCorrupt, len(body), size)
		}
		out := make([]byte, size)
		copy(out, body)

		return out, nil
	}
	if inflate == nil || uint64(len(body)) != uint64(stored) {
		return nil, fmt.Errorf("%w: compressed payload of %d bytes, header says %d", ErrCorrupt, len(body), stored)
	}
	out, err := inflate(body, size)
	if err != nil {
		return nil, err
	}
	if uint32(len(out)) != size {
		return nil, fmt.Errorf("%w: decompressed %d bytes, header says %d", ErrCorrupt, len(out), size)
	}

	return out, nil
}
