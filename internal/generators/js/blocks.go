package js

import (
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/registry"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

func recursiveGenerator(name string, requiredContext ir.Context, inputs []types.Type, body registry.BodyFunc) registry.Descriptor {
	return registry.Descriptor{
		Name:            name,
		IsRecursive:     true,
		InputTypes:      inputs,
		RequiredContext: requiredContext,
		Body:            body,
	}
}

func randomParamTypes(e registry.Emitter) []types.Type {
	n := e.Rng().Intn(4)
	out := make([]types.Type, n)
	for i := range out {
		out[i] = types.Integer()
	}
	return out
}

// buildFunctionBody runs the common recursive-function-body protocol
// shared by every function-shaped block generator: build a body, then
// optionally close with a value return.
func buildFunctionBody(e registry.Emitter, m int) {
	e.BuildRecursive(0, 1, m)
	if v, ok := e.RandVar(); ok {
		e.Emit(ir.OpcodeReturn, []ir.Variable{v})
	}
}

var blockGenerators = []registry.Descriptor{
	recursiveGenerator("PlainFunctionGenerator", ir.ContextRoot, nil, func(e registry.Emitter, _ []ir.Variable) {
		params := randomParamTypes(e)
		e.Block(ir.OpcodeBeginPlainFunction, nil, params, ir.OpcodeEndPlainFunction, func(_ ir.Instruction, _ []ir.Variable) {
			buildFunctionBody(e, 10)
		})
	}),
	recursiveGenerator("ArrowFunctionGenerator", ir.ContextRoot, nil, func(e registry.Emitter, _ []ir.Variable) {
		params := randomParamTypes(e)
		e.Block(ir.OpcodeBeginArrowFunction, nil, params, ir.OpcodeEndArrowFunction, func(_ ir.Instruction, _ []ir.Variable) {
			e.BuildRecursive(0, 1, 6)
		})
	}),
	recursiveGenerator("IfElseGenerator", ir.ContextRoot, []types.Type{types.Boolean()}, func(e registry.Emitter, in []ir.Variable) {
		e.Block(ir.OpcodeBeginIf, in, nil, ir.OpcodeEndIf, func(_ ir.Instruction, _ []ir.Variable) {
			e.BuildRecursive(0, 2, 8)
			e.Continuation(ir.OpcodeBeginElse, nil, func(_ []ir.Variable) {
				e.BuildRecursive(1, 2, 8)
			})
		})
	}),
	recursiveGenerator("ForLoopGenerator", ir.ContextRoot, []types.Type{types.Integer()}, func(e registry.Emitter, in []ir.Variable) {
		e.Block(ir.OpcodeBeginForLoop, in, []types.Type{types.Integer()}, ir.OpcodeEndForLoop, func(_ ir.Instruction, _ []ir.Variable) {
			e.BuildRecursive(0, 1, 10)
		})
	}),
	recursiveGenerator("WhileLoopGenerator", ir.ContextRoot, []types.Type{types.Boolean()}, func(e registry.Emitter, in []ir.Variable) {
		e.Block(ir.OpcodeBeginWhileLoop, in, nil, ir.OpcodeEndWhileLoop, func(_ ir.Instruction, _ []ir.Variable) {
			e.BuildRecursive(0, 1, 8)
		})
	}),
	recursiveGenerator("TryCatchGenerator", ir.ContextRoot, nil, func(e registry.Emitter, _ []ir.Variable) {
		e.Block(ir.OpcodeBeginTry, nil, nil, ir.OpcodeEndTry, func(_ ir.Instruction, _ []ir.Variable) {
			e.BuildRecursive(0, 2, 6)
			e.Continuation(ir.OpcodeBeginCatch, []types.Type{types.Anything()}, func(_ []ir.Variable) {
				e.BuildRecursive(1, 2, 6)
			})
		})
	}),
	recursiveGenerator("ClassDefinitionGenerator", ir.ContextRoot, nil, func(e registry.Emitter, _ []ir.Variable) {
		e.Block(ir.OpcodeBeginClassDefinition, nil, nil, ir.OpcodeEndClassDefinition, func(_ ir.Instruction, _ []ir.Variable) {
			e.BuildRecursive(0, 1, 10)
		})
	}),
	recursiveGenerator("AsyncFunctionGenerator", ir.ContextRoot, nil, func(e registry.Emitter, _ []ir.Variable) {
		params := randomParamTypes(e)
		e.Block(ir.OpcodeBeginAsyncFunction, nil, params, ir.OpcodeEndAsyncFunction, func(_ ir.Instruction, _ []ir.Variable) {
			buildFunctionBody(e, 8)
		})
	}),
	recursiveGenerator("GeneratorFunctionGenerator", ir.ContextRoot, nil, func(e registry.Emitter, _ []ir.Variable) {
		params := randomParamTypes(e)
		e.Block(ir.OpcodeBeginGeneratorFunction, nil, params, ir.OpcodeEndGeneratorFunction, func(_ ir.Instruction, _ []ir.Variable) {
			buildFunctionBody(e, 8)
		})
	}),
}
