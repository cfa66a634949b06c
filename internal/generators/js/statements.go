package js

import (
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/registry"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

func statementGenerator(name string, requiredContext ir.Context, inputs []types.Type, body registry.BodyFunc) registry.Descriptor {
	return registry.Descriptor{
		Name:            name,
		InputTypes:      inputs,
		RequiredContext: requiredContext,
		Body:            body,
	}
}

var statementGenerators = []registry.Descriptor{
	statementGenerator("ReassignGenerator", ir.ContextRoot, []types.Type{types.Integer(), types.Integer()}, func(e registry.Emitter, in []ir.Variable) {
		e.Emit(ir.OpcodeReassign, in)
	}),
	statementGenerator("SetPropertyGenerator", ir.ContextRoot, []types.Type{anyObjectType, types.Anything()}, func(e registry.Emitter, in []ir.Variable) {
		e.Emit(ir.OpcodeSetProperty, in, randomIdentifier(e))
	}),
	statementGenerator("SetElementGenerator", ir.ContextRoot, []types.Type{arrayType, types.Integer(), types.Anything()}, func(e registry.Emitter, in []ir.Variable) {
		e.Emit(ir.OpcodeSetElement, in)
	}),
	statementGenerator("DeletePropertyGenerator", ir.ContextRoot, []types.Type{anyObjectType}, func(e registry.Emitter, in []ir.Variable) {
		name, ok := e.TypeOf(in[0]).RandomProperty(e.Rng())
		if !ok {
			return
		}
		e.Emit(ir.OpcodeDeleteProperty, in, name)
	}),
	statementGenerator("ExpressionStatementGenerator", ir.ContextRoot, []types.Type{types.Anything()}, func(e registry.Emitter, in []ir.Variable) {
		e.Emit(ir.OpcodeExpressionStatement, in)
	}),
	statementGenerator("ReturnGenerator", ir.ContextSubroutine, []types.Type{types.Anything()}, func(e registry.Emitter, in []ir.Variable) {
		e.Emit(ir.OpcodeReturn, in)
	}),
	statementGenerator("ThrowGenerator", ir.ContextRoot, []types.Type{types.Anything()}, func(e registry.Emitter, in []ir.Variable) {
		e.Emit(ir.OpcodeThrow, in)
	}),
	statementGenerator("BreakLoopGenerator", ir.ContextLoop, nil, func(e registry.Emitter, _ []ir.Variable) {
		e.Emit(ir.OpcodeBreakLoop, nil)
	}),
	statementGenerator("ContinueGenerator", ir.ContextLoop, nil, func(e registry.Emitter, _ []ir.Variable) {
		e.Emit(ir.OpcodeContinue, nil)
	}),
	statementGenerator("CallFunctionVoidGenerator", ir.ContextRoot, []types.Type{types.Function(nil)}, func(e registry.Emitter, in []ir.Variable) {
		args := randomArgs(e, 0, 3)
		e.Emit(ir.OpcodeCallFunctionVoid, append(in, args...))
	}),
	statementGenerator("YieldGenerator", ir.ContextGeneratorFunction, []types.Type{types.Anything()}, func(e registry.Emitter, in []ir.Variable) {
		e.Emit(ir.OpcodeYield, in)
	}),
	{
		Name:            "WebAssemblyAPIGenerator",
		InputTypes:      []types.Type{types.Anything()},
		RequiredContext: ir.ContextRoot,
		Body: registry.BodyFunc(func(e registry.Emitter, in []ir.Variable) {
			b, ok := e.Env().Builtin("WebAssembly")
			if !ok {
				return
			}
			name, ok := b.Type.RandomMethod(e.Rng())
			if !ok {
				return
			}
			wasm, ok := e.RandVarOfType(b.Type)
			if !ok {
				ins := e.Emit(ir.OpcodeLoadBuiltin, nil, b.Name)
				e.SetType(ins.Outputs[0], b.Type)
				wasm = ins.Outputs[0]
			}
			e.Emit(ir.OpcodeCallMethod, []ir.Variable{wasm, in[0]}, name)
		}),
	},
}
