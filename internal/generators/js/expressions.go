package js

import (
	"github.com/fuzzil-dev/fuzzil/internal/environment"
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/registry"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

var arrayType = environment.Default().GroupType("Array")
var anyObjectType = types.Object("", nil, nil)
var promiseType = environment.Default().GroupType("Promise")

var binaryOperators = []string{"+", "-", "*", "/", "%", "&", "|", "^", "<<", ">>"}
var unaryOperators = []string{"-", "!", "~", "++", "--"}
var compareOperators = []string{"<", ">", "<=", ">=", "==", "!=", "===", "!=="}

func expressionGenerator(name string, inputs []types.Type, body registry.BodyFunc) registry.Descriptor {
	return registry.Descriptor{
		Name:            name,
		InputTypes:      inputs,
		RequiredContext: ir.ContextRoot,
		Body:            body,
	}
}

var expressionGenerators = []registry.Descriptor{
	expressionGenerator("BinaryOperationGenerator", []types.Type{types.Integer(), types.Integer()}, func(e registry.Emitter, in []ir.Variable) {
		op := binaryOperators[e.Rng().Intn(len(binaryOperators))]
		e.Emit(ir.OpcodeBinaryOperation, in, op)
	}),
	expressionGenerator("UnaryOperationGenerator", []types.Type{types.Integer()}, func(e registry.Emitter, in []ir.Variable) {
		op := unaryOperators[e.Rng().Intn(len(unaryOperators))]
		e.Emit(ir.OpcodeUnaryOperation, in, op)
	}),
	expressionGenerator("CompareOperationGenerator", []types.Type{types.Integer(), types.Integer()}, func(e registry.Emitter, in []ir.Variable) {
		op := compareOperators[e.Rng().Intn(len(compareOperators))]
		e.Emit(ir.OpcodeCompareOperation, in, op)
	}),
	expressionGenerator("TypeOfGenerator", []types.Type{types.Anything()}, func(e registry.Emitter, in []ir.Variable) {
		e.Emit(ir.OpcodeTypeOf, in)
	}),
	expressionGenerator("PropertyLoadGenerator", []types.Type{anyObjectType}, func(e registry.Emitter, in []ir.Variable) {
		target := withMembers(e, in[0])
		name, ok := e.TypeOf(target).RandomProperty(e.Rng())
		if !ok {
			name, ok = e.TypeOf(target).RandomMethod(e.Rng())
		}
		if !ok {
			return
		}
		e.Emit(ir.OpcodeLoadProperty, []ir.Variable{target}, name)
	}),
	expressionGenerator("ElementLoadGenerator", []types.Type{arrayType, types.Integer()}, func(e registry.Emitter, in []ir.Variable) {
		e.Emit(ir.OpcodeLoadElement, in)
	}),
	expressionGenerator("SpreadArrayGenerator", []types.Type{arrayType}, func(e registry.Emitter, in []ir.Variable) {
		if !e.Aggressive() {
			// hard to type-track precisely; self-disables in conservative mode
			return
		}
		e.Emit(ir.OpcodeSpreadArray, in)
	}),
	{
		Name:            "AwaitGenerator",
		InputTypes:      []types.Type{types.Anything()},
		RequiredContext: ir.ContextAsyncFunction,
		Body: registry.BodyFunc(func(e registry.Emitter, in []ir.Variable) {
			e.Emit(ir.OpcodeAwait, in)
		}),
	},
	expressionGenerator("CallFunctionGenerator", []types.Type{types.Function(nil)}, func(e registry.Emitter, in []ir.Variable) {
		args := randomArgs(e, 0, 3)
		e.Emit(ir.OpcodeCallFunction, append(in, args...))
	}),
	expressionGenerator("CallMethodGenerator", []types.Type{anyObjectType}, func(e registry.Emitter, in []ir.Variable) {
		target := withMembers(e, in[0])
		name, ok := e.TypeOf(target).RandomMethod(e.Rng())
		if !ok {
			return
		}
		args := randomArgs(e, 0, 3)
		e.Emit(ir.OpcodeCallMethod, append([]ir.Variable{target}, args...), name)
	}),
	expressionGenerator("ConstructGenerator", []types.Type{types.Constructor(nil)}, func(e registry.Emitter, in []ir.Variable) {
		args := randomArgs(e, 0, 3)
		e.Emit(ir.OpcodeConstruct, append(in, args...))
	}),
}

// withMembers prefers the most-recently-defined in-scope variable whose
// type actually declares a property or method, falling back to v when
// none is found — a constraint RandVarOfType's pure type match can't
// express, since anyObjectType matches plain objects with no members too.
func withMembers(e registry.Emitter, v ir.Variable) ir.Variable {
	found, ok := e.FindVariable(func(_ ir.Variable, t types.Type) bool {
		return len(t.Properties) > 0 || len(t.Methods) > 0
	})
	if !ok {
		return v
	}
	return found
}

func randomArgs(e registry.Emitter, min, max int) []ir.Variable {
	n := min + e.Rng().Intn(max-min+1)
	out := make([]ir.Variable, 0, n)
	for i := 0; i < n; i++ {
		v, ok := e.RandVar()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}
