package ir

import "fmt"

// Wasm-domain instructions store their integer immediates pre-encoded as
// LEB128 in Instruction.Bytes: i32/i64 constants as signed LEB128
// (EncodeInt32 / EncodeInt64), local indices as unsigned LEB128
// (EncodeUint32).

// EncodeUint32 encodes v as unsigned LEB128, the encoding Wasm local and
// global indices use.
func EncodeUint32(v uint32) []byte { return encodeUint64(uint64(v)) }

func encodeUint64(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
		} else {
			out = append(out, b)
			return out
		}
	}
}

// EncodeInt32 encodes v as signed LEB128.
func EncodeInt32(v int32) []byte { return encodeInt64(int64(v)) }

// EncodeInt64 encodes v as signed LEB128.
func EncodeInt64(v int64) []byte { return encodeInt64(v) }

func encodeInt64(v int64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			out = append(out, b)
			return out
		}
		out = append(out, b|0x80)
	}
}

// LoadUint32 decodes an unsigned LEB128 value from the start of b,
// returning the value, the number of bytes consumed, and an error if b is
// malformed or encodes a value wider than 32 bits.
func LoadUint32(b []byte) (uint32, uint64, error) {
	v, n, err := loadUint(b, 32)
	return uint32(v), n, err
}

func loadUint(b []byte, bitWidth uint) (uint64, uint64, error) {
	maxBytes := (bitWidth + 6) / 7
	var result uint64
	var shift uint
	for i := 0; ; i++ {
		if uint(i) >= maxBytes {
			return 0, 0, fmt.Errorf("fuzzil/ir: leb128: too many bytes for uint%d", bitWidth)
		}
		if i >= len(b) {
			return 0, 0, fmt.Errorf("fuzzil/ir: leb128: unexpected end of input")
		}
		c := b[i]
		chunk := uint64(c & 0x7f)
		result |= chunk << shift
		if c&0x80 == 0 {
			if bitWidth < 64 && result>>bitWidth != 0 {
				return 0, 0, fmt.Errorf("fuzzil/ir: leb128: value overflows %d bits", bitWidth)
			}
			return result, uint64(i + 1), nil
		}
		shift += 7
	}
}

// LoadInt32 decodes a signed LEB128 value from the start of b.
func LoadInt32(b []byte) (int32, uint64, error) {
	v, n, err := loadInt(b, 32)
	return int32(v), n, err
}

// LoadInt64 decodes a signed LEB128 value from the start of b.
func LoadInt64(b []byte) (int64, uint64, error) {
	return loadInt(b, 64)
}

func loadInt(b []byte, bitWidth uint) (int64, uint64, error) {
	maxBytes := (bitWidth + 6) / 7
	var result int64
	var shift uint
	var c byte
	i := 0
	for {
		if uint(i) >= maxBytes {
			return 0, 0, fmt.Errorf("fuzzil/ir: leb128: too many bytes for int%d", bitWidth)
		}
		if i >= len(b) {
			return 0, 0, fmt.Errorf("fuzzil/ir: leb128: unexpected end of input")
		}
		c = b[i]
		result |= int64(c&0x7f) << shift
		shift += 7
		i++
		if c&0x80 == 0 {
			break
		}
	}
	if shift < 64 && c&0x40 != 0 {
		result |= -1 << shift
	}
	if bitWidth < 64 {
		top := result >> bitWidth
		if top != 0 && top != -1 {
			return 0, 0, fmt.Errorf("fuzzil/ir: leb128: value overflows %d bits", bitWidth)
		}
	}
	return result, uint64(i), nil
}
