package dispatch

import (
	"testing"

	"github.com/fuzzil-dev/fuzzil/internal/builder"
	"github.com/fuzzil-dev/fuzzil/internal/environment"
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/registry"
	"github.com/fuzzil-dev/fuzzil/internal/types"
	"github.com/stretchr/testify/require"
)

func intGenerator() registry.Descriptor {
	return registry.Descriptor{
		Name:             "IntegerGenerator",
		IsValueGenerator: true,
		RequiredContext:  ir.ContextJavaScript,
		Produces:         []types.Type{types.Integer()},
		Body: registry.BodyFunc(func(e registry.Emitter, inputs []ir.Variable) {
			e.Emit(ir.OpcodeLoadInt, nil, int64(e.Rng().Intn(1000)))
		}),
	}
}

func stringGenerator() registry.Descriptor {
	return registry.Descriptor{
		Name:             "StringGenerator",
		IsValueGenerator: true,
		RequiredContext:  ir.ContextJavaScript,
		Produces:         []types.Type{types.String()},
		Body: registry.BodyFunc(func(e registry.Emitter, inputs []ir.Variable) {
			e.Emit(ir.OpcodeLoadString, nil, "s")
		}),
	}
}

func addGenerator() registry.Descriptor {
	return registry.Descriptor{
		Name:            "IntegerAddGenerator",
		InputTypes:      []types.Type{types.Integer(), types.Integer()},
		RequiredContext: ir.ContextJavaScript,
		Produces:        []types.Type{types.Integer()},
		Body: registry.BodyFunc(func(e registry.Emitter, inputs []ir.Variable) {
			ins := e.Emit(ir.OpcodeBinaryOperation, inputs, "+")
			e.SetType(ins.Outputs[0], types.Integer())
			e.Emit(ir.OpcodeExpressionStatement, []ir.Variable{ins.Outputs[0]})
		}),
	}
}

func selfAbortGenerator() registry.Descriptor {
	return registry.Descriptor{
		Name:            "SelfAbortGenerator",
		RequiredContext: ir.ContextJavaScript,
		Body:            registry.BodyFunc(func(e registry.Emitter, inputs []ir.Variable) {}),
	}
}

func newTestEngine(seed int64, descs []registry.Descriptor, weights map[string]int) (*Engine, *builder.Builder) {
	b := builder.New(seed, environment.Default())
	reg := registry.New(descs, weights)
	return New(b, reg), b
}

func TestBootstrap_reachesTargetPerValueGenerator(t *testing.T) {
	e, b := newTestEngine(1, []registry.Descriptor{intGenerator(), stringGenerator()}, nil)
	emitted := e.Bootstrap(3)
	require.Greater(t, emitted, 0)
	require.NoError(t, b.Code().Check())

	var ints, strs int
	for _, ins := range b.Code() {
		switch ins.Kind {
		case ir.OpcodeLoadInt:
			ints++
		case ir.OpcodeLoadString:
			strs++
		}
	}
	require.Equal(t, 3, ints)
	require.Equal(t, 3, strs)
}

func TestBootstrap_singleValueGeneratorRunsExactlyTarget(t *testing.T) {
	e, b := newTestEngine(1, []registry.Descriptor{intGenerator()}, nil)
	e.Bootstrap(3)
	require.Len(t, b.Code(), 3)
	for _, ins := range b.Code() {
		require.Equal(t, ir.OpcodeLoadInt, ins.Kind)
	}
}

func TestBootstrap_noValueGeneratorsIsNoop(t *testing.T) {
	e, b := newTestEngine(1, []registry.Descriptor{addGenerator()}, nil)
	emitted := e.Bootstrap(3)
	require.Equal(t, 0, emitted)
	require.Empty(t, b.Code())
}

func TestBuild_forcesValueGeneratorWhenNoInputsAvailable(t *testing.T) {
	e, b := newTestEngine(2, []registry.Descriptor{intGenerator(), addGenerator()}, nil)
	emitted := e.Build(10)
	require.Greater(t, emitted, 0)
	require.NoError(t, b.Code().Check())
	// addGenerator needs two live integers and none exist yet, so it is
	// excluded from the applicable set until intGenerator has run.
	require.Equal(t, ir.OpcodeLoadInt, b.Code()[0].Kind)
}

func TestBuild_usesAddGeneratorOnceInputsExist(t *testing.T) {
	e, b := newTestEngine(3, []registry.Descriptor{intGenerator(), addGenerator()}, map[string]int{
		"IntegerGenerator":    1,
		"IntegerAddGenerator": 50,
	})
	e.Bootstrap(3)
	before := len(b.Code())
	e.Build(20)
	require.Greater(t, len(b.Code()), before)
	require.NoError(t, b.Code().Check())

	var sawAdd bool
	for _, ins := range b.Code() {
		if ins.Kind == ir.OpcodeBinaryOperation {
			sawAdd = true
		}
	}
	require.True(t, sawAdd)
}

func TestBuild_stallsTerminateRatherThanHang(t *testing.T) {
	e, b := newTestEngine(4, []registry.Descriptor{selfAbortGenerator()}, nil)
	emitted := e.Build(100)
	require.Equal(t, 0, emitted)
	require.Empty(t, b.Code())
}

func TestBuild_emptyRegistryTerminatesImmediately(t *testing.T) {
	e, b := newTestEngine(5, nil, nil)
	emitted := e.Build(50)
	require.Equal(t, 0, emitted)
	require.Empty(t, b.Code())
}

func TestEngine_installsRecurserOnBuilder(t *testing.T) {
	b := builder.New(6, environment.Default())
	reg := registry.New([]registry.Descriptor{intGenerator()}, nil)
	New(b, reg)
	// Builder.Build now routes through the installed Engine instead of
	// returning 0 (the no-engine fallback).
	emitted := b.Build(3)
	require.Equal(t, 3, emitted)
}

func TestActivate_handsTheRecurserBackToTheReinstalledEngine(t *testing.T) {
	b := builder.New(7, environment.Default())
	regA := registry.New([]registry.Descriptor{intGenerator()}, nil)
	regB := registry.New([]registry.Descriptor{stringGenerator()}, nil)
	a := New(b, regA)
	_ = New(b, regB) // steals the Recurser at construction time

	a.Activate()
	emitted := b.Build(3)
	require.Equal(t, 3, emitted)
	for _, ins := range b.Code() {
		require.Equal(t, ir.OpcodeLoadInt, ins.Kind)
	}
}

func TestDeterminism_sameSeedSameProgram(t *testing.T) {
	descs := []registry.Descriptor{intGenerator(), stringGenerator(), addGenerator()}
	weights := map[string]int{"IntegerGenerator": 3, "StringGenerator": 1, "IntegerAddGenerator": 5}

	e1, b1 := newTestEngine(42, descs, weights)
	e1.Bootstrap(3)
	e1.Build(30)

	e2, b2 := newTestEngine(42, descs, weights)
	e2.Bootstrap(3)
	e2.Build(30)

	require.Equal(t, b1.Code(), b2.Code())
}
