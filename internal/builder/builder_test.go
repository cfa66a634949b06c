package builder

import (
	"testing"

	"github.com/fuzzil-dev/fuzzil/internal/environment"
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/types"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(seed int64) *Builder {
	return New(seed, environment.Default())
}

func TestBuilder_EmitLoadInt(t *testing.T) {
	b := newTestBuilder(1)
	ins := b.Emit(ir.OpcodeLoadInt, nil, int64(42))
	require.Len(t, ins.Outputs, 1)
	require.Equal(t, int64(42), ins.IntLiteral())
	require.Equal(t, types.Integer(), b.TypeOf(ins.Outputs[0]))
	require.NoError(t, b.Code().Check())
}

func TestBuilder_EmitPanicsOnOutOfScope(t *testing.T) {
	b := newTestBuilder(1)
	require.Panics(t, func() {
		b.Emit(ir.OpcodeExpressionStatement, []ir.Variable{99})
	})
}

func TestBuilder_BlockProtocol_functionScope(t *testing.T) {
	b := newTestBuilder(1)
	b.Block(ir.OpcodeBeginPlainFunction, nil, []types.Type{types.Integer()}, ir.OpcodeEndPlainFunction, func(open ir.Instruction, inner []ir.Variable) {
		require.Len(t, inner, 1)
		require.True(t, b.TypeOf(inner[0]).Is(types.Integer()))
		b.Emit(ir.OpcodeReturn, []ir.Variable{inner[0]})
	})
	require.NoError(t, b.Code().Check())

	// the parameter is out of scope after the block closes
	param := b.Code()[0].InnerOutputs[0]
	require.False(t, b.inScope[param])
	last := b.Code()[0].Outputs[0] // the function's own value, still visible
	require.True(t, b.inScope[last])
}

func TestBuilder_RandVarOfType(t *testing.T) {
	b := newTestBuilder(2)
	b.Emit(ir.OpcodeLoadInt, nil, int64(1))
	b.Emit(ir.OpcodeLoadString, nil, "x")
	v, ok := b.RandVarOfType(types.Integer())
	require.True(t, ok)
	require.True(t, b.TypeOf(v).Is(types.Integer()))
}

func TestBuilder_GenerateVariable_reusesExisting(t *testing.T) {
	b := newTestBuilder(3)
	first := b.GenerateVariable(types.Integer())
	before := len(b.Code())
	second := b.GenerateVariable(types.Integer())
	require.Equal(t, before, len(b.Code()))
	require.Equal(t, first, second)
}

func TestBuilder_Reset_clearsState(t *testing.T) {
	b := newTestBuilder(5)
	b.Emit(ir.OpcodeLoadInt, nil, int64(7))
	require.NotEmpty(t, b.Code())
	b.Reset(5)
	require.Empty(t, b.Code())
	require.Equal(t, ir.ContextRoot, b.Context())
}

func TestBuilder_Determinism_sameSeedSameOutput(t *testing.T) {
	b1 := newTestBuilder(123)
	b2 := newTestBuilder(123)
	for i := 0; i < 10; i++ {
		b1.GenerateVariable(types.RandomType(b1.Rng(), nil))
		b2.GenerateVariable(types.RandomType(b2.Rng(), nil))
	}
	require.Equal(t, b1.Code(), b2.Code())
}

func TestBuilder_BuildRecursive_noEngineReturnsZero(t *testing.T) {
	b := newTestBuilder(1)
	require.Equal(t, 0, b.Build(5))
	require.Equal(t, 0, b.BuildRecursive(0, 2, 10))
}
