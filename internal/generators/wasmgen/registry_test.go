package wasmgen_test

import (
	"testing"

	"github.com/fuzzil-dev/fuzzil/internal/builder"
	"github.com/fuzzil-dev/fuzzil/internal/dispatch"
	"github.com/fuzzil-dev/fuzzil/internal/environment"
	"github.com/fuzzil-dev/fuzzil/internal/generators/wasmgen"
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/stretchr/testify/require"
)

// openWasmFunction emits a BeginWasmModule/BeginWasmFunction pair, the
// block nesting every descriptor in this registry requires.
func openWasmFunction(b *builder.Builder) {
	b.EmitBlock(ir.OpcodeBeginWasmModule, nil, 0)
	b.EmitBlock(ir.OpcodeBeginWasmFunction, nil, 0)
}

func closeWasmFunction(b *builder.Builder) {
	b.Emit(ir.OpcodeEndWasmFunction, nil)
	b.Emit(ir.OpcodeEndWasmModule, nil)
}

func TestRegistry_buildsWellFormedCodeInsideAWasmFunction(t *testing.T) {
	b := builder.New(0, environment.Default())
	e := dispatch.New(b, wasmgen.Registry())

	openWasmFunction(b)
	emitted := e.Build(60)
	closeWasmFunction(b)

	require.Greater(t, emitted, 0)
	require.NoError(t, b.Code().Check())
}

func TestRegistry_noOpcodesAreApplicableOutsideAWasmFunction(t *testing.T) {
	b := builder.New(0, environment.Default())
	e := dispatch.New(b, wasmgen.Registry())

	emitted := e.Build(30)
	require.Equal(t, 0, emitted)
	require.Empty(t, b.Code())
}

func TestRegistry_isDeterministicForAGivenSeed(t *testing.T) {
	b1 := builder.New(9, environment.Default())
	e1 := dispatch.New(b1, wasmgen.Registry())
	openWasmFunction(b1)
	e1.Build(80)
	closeWasmFunction(b1)

	b2 := builder.New(9, environment.Default())
	e2 := dispatch.New(b2, wasmgen.Registry())
	openWasmFunction(b2)
	e2.Build(80)
	closeWasmFunction(b2)

	require.Equal(t, b1.Code(), b2.Code())
}
