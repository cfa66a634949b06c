package ir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Exercises this package's own EncodeInt32/LoadInt32 implementation
// against known signed-LEB128 fixtures.
func TestEncodeDecodeInt32(t *testing.T) {
	for _, c := range []struct {
		input    int32
		expected []byte
	}{
		{input: -165675008, expected: []byte{0x80, 0x80, 0x80, 0xb1, 0x7f}},
		{input: -624485, expected: []byte{0x9b, 0xf1, 0x59}},
		{input: -4, expected: []byte{0x7c}},
		{input: -1, expected: []byte{0x7f}},
		{input: 0, expected: []byte{0x00}},
		{input: 1, expected: []byte{0x01}},
		{input: 16256, expected: []byte{0x80, 0xff, 0x0}},
		{input: 624485, expected: []byte{0xe5, 0x8e, 0x26}},
		{input: int32(math.MaxInt32), expected: []byte{0xff, 0xff, 0xff, 0xff, 0x7}},
	} {
		require.Equal(t, c.expected, EncodeInt32(c.input))
		decoded, n, err := LoadInt32(c.expected)
		require.NoError(t, err)
		require.Equal(t, c.input, decoded)
		require.Equal(t, uint64(len(c.expected)), n)
	}
}

func TestEncodeDecodeUint32(t *testing.T) {
	for _, c := range []struct {
		input    uint32
		expected []byte
	}{
		{input: 0, expected: []byte{0x00}},
		{input: 1, expected: []byte{0x01}},
		{input: 16256, expected: []byte{0x80, 0x7f}},
		{input: 624485, expected: []byte{0xe5, 0x8e, 0x26}},
		{input: uint32(math.MaxUint32), expected: []byte{0xff, 0xff, 0xff, 0xff, 0xf}},
	} {
		require.Equal(t, c.expected, EncodeUint32(c.input))
		decoded, n, err := LoadUint32(c.expected)
		require.NoError(t, err)
		require.Equal(t, c.input, decoded)
		require.Equal(t, uint64(len(c.expected)), n)
	}
}

func TestLoadUint32_errors(t *testing.T) {
	for _, b := range [][]byte{
		{0x83, 0x80, 0x80, 0x80, 0x80, 0x00},
		{0x82, 0x80, 0x80, 0x80, 0x70},
	} {
		_, _, err := LoadUint32(b)
		require.Error(t, err)
	}
}

func TestEncodeDecodeInt64_MaxInt64(t *testing.T) {
	encoded := EncodeInt64(math.MaxInt64)
	decoded, n, err := LoadInt64(encoded)
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), decoded)
	require.Equal(t, uint64(len(encoded)), n)
}
