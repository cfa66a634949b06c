package types

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs_primitives(t *testing.T) {
	require.True(t, Integer().Is(Integer()))
	require.False(t, Integer().Is(Float()))
	require.True(t, Integer().Is(Anything()))
	require.True(t, Nothing().Is(Integer()))
	require.False(t, Integer().Is(Nothing()))
}

func TestIs_objectSubset(t *testing.T) {
	array := Object("Array", []string{"length"}, []string{"push", "pop", "slice"})
	requireLength := Object("", []string{"length"}, nil)
	requireMissing := Object("", []string{"byteLength"}, nil)

	require.True(t, array.Is(requireLength))
	require.False(t, array.Is(requireMissing))
	require.True(t, array.Is(Object("Array", nil, nil)))
	require.False(t, array.Is(Object("WasmMemory", nil, nil)))
}

func TestIs_functionAnySignature(t *testing.T) {
	fn := Function(&Signature{Parameters: []Type{Integer()}, Return: String()})
	require.True(t, fn.Is(Function(nil)))
	require.False(t, fn.Is(Constructor(nil)))

	exact := Function(&Signature{Parameters: []Type{Integer()}, Return: String()})
	require.True(t, fn.Is(exact))

	mismatched := Function(&Signature{Parameters: []Type{Float()}, Return: String()})
	require.False(t, fn.Is(mismatched))

	unknownSig := Function(nil)
	require.False(t, unknownSig.Is(exact))
}

func TestUnion_distributesOverIs(t *testing.T) {
	u := Union(Integer(), Float())
	require.True(t, u.Is(Union(Integer(), Float(), String())))
	require.False(t, u.Is(Integer()))
	require.True(t, Integer().Is(u))
	require.False(t, String().Is(u))
}

func TestUnion_collapsesAndFlattens(t *testing.T) {
	require.Equal(t, Nothing(), Union())
	require.Equal(t, Integer(), Union(Integer()))
	require.Equal(t, Anything(), Union(Integer(), Anything()))

	flat := Union(Union(Integer(), Float()), String())
	require.Len(t, flat.Elements, 3)
}

func TestIs_wasmAtomsAndRefs(t *testing.T) {
	require.True(t, Wasm(WasmI32).Is(Wasm(WasmI32)))
	require.False(t, Wasm(WasmI32).Is(Wasm(WasmI64)))

	nonNull := WasmIndexed(WasmTypeRef{Kind: WasmRefStruct, Index: 3, Nullable: false})
	nullable := WasmIndexed(WasmTypeRef{Kind: WasmRefStruct, Index: 3, Nullable: true})
	require.True(t, nonNull.Is(nullable))
	require.False(t, nullable.Is(nonNull))
	require.False(t, nonNull.Is(WasmIndexed(WasmTypeRef{Kind: WasmRefStruct, Index: 4})))
}

func TestRandomProperty_empty(t *testing.T) {
	_, ok := Integer().RandomProperty(rand.New(rand.NewSource(1)))
	require.False(t, ok)

	array := Object("Array", []string{"length"}, nil)
	name, ok := array.RandomProperty(rand.New(rand.NewSource(1)))
	require.True(t, ok)
	require.Equal(t, "length", name)
}

func TestRandomType_deterministic(t *testing.T) {
	a := RandomType(rand.New(rand.NewSource(42)), nil)
	b := RandomType(rand.New(rand.NewSource(42)), nil)
	require.Equal(t, a, b)
}
