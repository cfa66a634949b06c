package environment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_builtinLookup(t *testing.T) {
	env := Default()
	b, ok := env.Builtin("Math")
	require.True(t, ok)
	require.Equal(t, "Math", b.Name)

	_, ok = env.Builtin("DoesNotExist")
	require.False(t, ok)
}

func TestDefault_randBuiltinDeterministic(t *testing.T) {
	env := Default()
	a, ok := env.RandBuiltin(rand.New(rand.NewSource(7)))
	require.True(t, ok)
	b, ok := env.RandBuiltin(rand.New(rand.NewSource(7)))
	require.True(t, ok)
	require.Equal(t, a, b)
}

func TestDefault_groupTypeSubset(t *testing.T) {
	env := Default()
	arr := env.GroupType("Array")
	require.True(t, arr.Is(env.GroupType("Array")))
	_, ok := arr.RandomMethod(rand.New(rand.NewSource(1)))
	require.True(t, ok)
}

func TestDefault_wasmConstants(t *testing.T) {
	env := Default()
	c := env.Wasm()
	require.Equal(t, uint32(65536), c.PageSize)
	require.Equal(t, c.PageSize, c.MaxPagesMem32)
}

func TestDefault_wellKnownSymbols(t *testing.T) {
	env := Default()
	require.Contains(t, env.WellKnownSymbolNames(), "Symbol.iterator")
	name, ok := env.RandWellKnownSymbol(rand.New(rand.NewSource(3)))
	require.True(t, ok)
	require.Contains(t, env.WellKnownSymbolNames(), name)
}
