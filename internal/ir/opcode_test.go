package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestOpcode_metaExhaustive checks that every declared opcode constant
// between the JS and Wasm range markers has an opcodeMetas entry, and
// that every entry's declared arity is either a fixed non-negative
// count or the -1 "variadic" sentinel.
func TestOpcode_metaExhaustive(t *testing.T) {
	for op := OpcodeLoadInt; op < opcodeJSEnd; op++ {
		m, ok := opcodeMetas[op]
		require.Truef(t, ok, "JS opcode %d missing opcodeMetas entry", op)
		require.NotEmpty(t, m.name)
	}
	for op := opcodeWasmBit; op < opcodeWasmEnd; op++ {
		m, ok := opcodeMetas[op]
		require.Truef(t, ok, "wasm opcode %d missing opcodeMetas entry", op)
		require.NotEmpty(t, m.name)
	}
}

func TestOpcode_classPartition(t *testing.T) {
	for op, m := range opcodeMetas {
		switch m.class {
		case ClassValueCreating:
			require.GreaterOrEqualf(t, m.numOutputs, 1, "%s: value-creating opcode must have >=1 output", m.name)
		case ClassBlockClosing:
			require.Truef(t, len(m.closes) > 0, "%s: block-closing opcode must declare closes", m.name)
		case ClassBlockOpening:
			require.Truef(t, m.opens != BlockKindNone, "%s: block-opening opcode must declare opens", m.name)
		}
		_ = op
	}
}

func TestOpcode_IsWasm(t *testing.T) {
	require.False(t, OpcodeLoadInt.IsWasm())
	require.True(t, OpcodeWasmConstI32.IsWasm())
}

func TestOpcode_String(t *testing.T) {
	require.Equal(t, "LoadInt", OpcodeLoadInt.String())
	require.Equal(t, "WasmConstI32", OpcodeWasmConstI32.String())
	require.Equal(t, "Opcode(?)", Opcode(0xffff).String())
}

func TestContext_HasAndIs(t *testing.T) {
	c := ContextJavaScript | ContextLoop
	require.True(t, c.Has(ContextLoop))
	require.False(t, c.Has(ContextSwitchCase))
	require.True(t, c.Is(ContextLoop))
	require.False(t, c.Is(ContextLoop|ContextSwitchCase))
	require.Contains(t, c.String(), "loop")
}
