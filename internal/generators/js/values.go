// Package js declares the primary generator registry: JavaScript value,
// expression, statement, and block generators, plus
// WebAssemblyAPIGenerator, which calls a method of the WebAssembly
// builtin from JavaScript.
package js

import (
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/registry"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

func valueGenerator(name string, produces types.Type, body registry.BodyFunc) registry.Descriptor {
	return registry.Descriptor{
		Name:             name,
		IsValueGenerator: true,
		RequiredContext:  ir.ContextRoot,
		Produces:         []types.Type{produces},
		Body:             body,
	}
}

var valueGenerators = []registry.Descriptor{
	valueGenerator("IntegerGenerator", types.Integer(), func(e registry.Emitter, _ []ir.Variable) {
		e.Emit(ir.OpcodeLoadInt, nil, int64(e.Rng().Intn(1<<20)-1<<19))
	}),
	valueGenerator("FloatGenerator", types.Float(), func(e registry.Emitter, _ []ir.Variable) {
		e.Emit(ir.OpcodeLoadFloat, nil, e.Rng().Float64()*1e6)
	}),
	valueGenerator("BigIntGenerator", types.BigInt(), func(e registry.Emitter, _ []ir.Variable) {
		e.Emit(ir.OpcodeLoadBigInt, nil, int64(e.Rng().Intn(1<<20)))
	}),
	valueGenerator("BooleanGenerator", types.Boolean(), func(e registry.Emitter, _ []ir.Variable) {
		e.Emit(ir.OpcodeLoadBoolean, nil, e.Rng().Intn(2) == 1)
	}),
	valueGenerator("StringGenerator", types.String(), func(e registry.Emitter, _ []ir.Variable) {
		e.Emit(ir.OpcodeLoadString, nil, randomIdentifier(e))
	}),
	valueGenerator("UndefinedGenerator", types.Undefined(), func(e registry.Emitter, _ []ir.Variable) {
		e.Emit(ir.OpcodeLoadUndefined, nil)
	}),
	valueGenerator("NullGenerator", types.Null(), func(e registry.Emitter, _ []ir.Variable) {
		e.Emit(ir.OpcodeLoadNull, nil)
	}),
	valueGenerator("RegExpGenerator", types.RegExp(), func(e registry.Emitter, _ []ir.Variable) {
		e.Emit(ir.OpcodeLoadRegExp, nil, randomRegExpSource(e))
	}),
	valueGenerator("ArrayGenerator", types.Object("Array", []string{"length"}, []string{"push", "pop", "slice"}), func(e registry.Emitter, _ []ir.Variable) {
		n := e.Rng().Intn(4)
		inputs := make([]ir.Variable, 0, n)
		for i := 0; i < n; i++ {
			v, ok := e.RandVar()
			if !ok {
				break
			}
			inputs = append(inputs, v)
		}
		e.Emit(ir.OpcodeCreateArray, inputs)
	}),
	valueGenerator("PlainObjectGenerator", types.Object("", nil, nil), func(e registry.Emitter, _ []ir.Variable) {
		n := e.Rng().Intn(4)
		inputs := make([]ir.Variable, 0, n)
		for i := 0; i < n; i++ {
			v, ok := e.RandVar()
			if !ok {
				break
			}
			inputs = append(inputs, v)
		}
		e.Emit(ir.OpcodeCreateObject, inputs)
	}),
	valueGenerator("BuiltinGenerator", types.Anything(), func(e registry.Emitter, _ []ir.Variable) {
		b, ok := e.Env().RandBuiltin(e.Rng())
		if !ok {
			return
		}
		ins := e.Emit(ir.OpcodeLoadBuiltin, nil, b.Name)
		e.SetType(ins.Outputs[0], b.Type)
	}),
	valueGenerator("CreatePromiseGenerator", promiseType, func(e registry.Emitter, _ []ir.Variable) {
		ins := e.Emit(ir.OpcodeCreatePromise, nil)
		e.SetType(ins.Outputs[0], promiseType)
	}),
}

func randomIdentifier(e registry.Emitter) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_$"
	n := e.Rng().Intn(10) + 1
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[e.Rng().Intn(len(alphabet))]
	}
	return string(out)
}

func randomRegExpSource(e registry.Emitter) string {
	patterns := []string{`[a-z]+`, `\d{2,4}`, `^foo.*bar$`, `(ab)+c?`, `\s*,\s*`}
	return patterns[e.Rng().Intn(len(patterns))]
}
