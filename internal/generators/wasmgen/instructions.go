package wasmgen

import (
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/registry"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

func wasmInstructionGenerator(name string, inputs []types.Type, body registry.BodyFunc) registry.Descriptor {
	return registry.Descriptor{
		Name:            name,
		InputTypes:      inputs,
		RequiredContext: ir.ContextWasmFunction,
		Body:            body,
	}
}

var wasmNumericOps = []string{"add", "sub", "mul", "div_s", "and", "or", "xor", "shl", "shr_s"}

// anyWasmValue matches a live variable of any Wasm numeric type, so
// WasmDropGenerator never reaches across the registry boundary to pop
// a JavaScript-domain value merely because it also happens to be in
// scope.
var anyWasmValue = types.Union(
	types.Wasm(types.WasmI32), types.Wasm(types.WasmI64),
	types.Wasm(types.WasmF32), types.Wasm(types.WasmF64),
)

var instructionGenerators = []registry.Descriptor{
	{
		Name:            "WasmNumericInstrGenerator",
		InputTypes:      []types.Type{types.Wasm(types.WasmI32), types.Wasm(types.WasmI32)},
		RequiredContext: ir.ContextWasmFunction,
		Produces:        []types.Type{types.Wasm(types.WasmI32)},
		Body: registry.BodyFunc(func(e registry.Emitter, in []ir.Variable) {
			op := wasmNumericOps[e.Rng().Intn(len(wasmNumericOps))]
			e.Emit(ir.OpcodeWasmNumericInstr, in, op)
		}),
	},
	wasmInstructionGenerator("WasmLocalSetGenerator", []types.Type{types.Wasm(types.WasmI32)}, func(e registry.Emitter, in []ir.Variable) {
		slot := uint32(e.Rng().Intn(8))
		e.Emit(ir.OpcodeWasmLocalSet, in, int64(slot), ir.EncodeUint32(slot))
	}),
	{
		Name:            "WasmLocalTeeGenerator",
		InputTypes:      []types.Type{types.Wasm(types.WasmI32)},
		RequiredContext: ir.ContextWasmFunction,
		Produces:        []types.Type{types.Wasm(types.WasmI32)},
		Body: registry.BodyFunc(func(e registry.Emitter, in []ir.Variable) {
			slot := uint32(e.Rng().Intn(8))
			e.Emit(ir.OpcodeWasmLocalTee, in, int64(slot), ir.EncodeUint32(slot))
		}),
	},
	wasmInstructionGenerator("WasmDropGenerator", []types.Type{anyWasmValue}, func(e registry.Emitter, in []ir.Variable) {
		e.Emit(ir.OpcodeWasmDrop, in)
	}),
	wasmInstructionGenerator("WasmReturnGenerator", nil, func(e registry.Emitter, _ []ir.Variable) {
		var in []ir.Variable
		if v, ok := e.RandVarOfType(types.Wasm(types.WasmI32)); ok {
			in = []ir.Variable{v}
		}
		e.Emit(ir.OpcodeWasmReturn, in)
	}),
	wasmInstructionGenerator("WasmUnreachableGenerator", nil, func(e registry.Emitter, _ []ir.Variable) {
		e.Emit(ir.OpcodeWasmUnreachable, nil)
	}),
	{
		Name:            "WasmBrGenerator",
		RequiredContext: ir.ContextWasmBlock,
		Body: registry.BodyFunc(func(e registry.Emitter, _ []ir.Variable) {
			e.Emit(ir.OpcodeWasmBr, nil)
		}),
	},
	{
		Name:            "WasmBrIfGenerator",
		InputTypes:      []types.Type{types.Wasm(types.WasmI32)},
		RequiredContext: ir.ContextWasmBlock,
		Body: registry.BodyFunc(func(e registry.Emitter, in []ir.Variable) {
			e.Emit(ir.OpcodeWasmBrIf, in)
		}),
	},
}
