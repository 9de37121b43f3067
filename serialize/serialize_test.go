// SPDX-License-Identifier: MIT

package serialize_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphblas/serialize"
)

func serializers() []serialize.Serializer {
	return []serialize.Serializer{serialize.Uncompressed(), serialize.LZ4(), serialize.Zstd(3)}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := map[string][]byte{
		"empty":          {},
		"repetitive":     bytes.Repeat([]byte("graphblas"), 500),
		"incompressible": {0x01, 0x9f, 0x33, 0xc2, 0x7a},
	}
	for _, s := range serializers() {
		for name, raw := range inputs {
			t.Run(s.Codec().String()+"/"+name, func(t *testing.T) {
				blob, err := s.Encode(raw)
				require.NoError(t, err)
				back, err := s.Decode(blob)
				require.NoError(t, err)
				require.Equal(t, len(raw), len(back))
				require.True(t, bytes.Equal(raw, back))
			})
		}
	}
}

func TestCompressionShrinksRepetitiveInput(t *testing.T) {
	t.Parallel()

	raw := bytes.Repeat([]byte{1, 2, 3, 4}, 4096)
	for _, s := range []serialize.Serializer{serialize.LZ4(), serialize.Zstd(1)} {
		blob, err := s.Encode(raw)
		require.NoError(t, err)
		require.Less(t, len(blob), len(raw)/4, s.Codec().String())
	}
}

func TestDecode_Rejects(t *testing.T) {
	t.Parallel()

	blob, err := serialize.Zstd(3).Encode(bytes.Repeat([]byte("x"), 1000))
	require.NoError(t, err)

	_, err = serialize.LZ4().Decode(blob)
	require.ErrorIs(t, err, serialize.ErrCodecMismatch)

	_, err = serialize.Zstd(3).Decode(blob[:len(blob)-1])
	require.ErrorIs(t, err, serialize.ErrCorrupt)

	_, err = serialize.Uncompressed().Decode([]byte{0, 1})
	require.ErrorIs(t, err, serialize.ErrCorrupt)

	corrupt := append([]byte(nil), blob...)
	for i := 9; i < len(corrupt); i++ {
		corrupt[i] ^= 0xff
	}
	_, err = serialize.Zstd(3).Decode(corrupt)
	require.ErrorIs(t, err, serialize.ErrCorrupt)
}
