package wasmgen

import (
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/registry"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

func wasmBlockGenerator(name string, inputs []types.Type, body registry.BodyFunc) registry.Descriptor {
	return registry.Descriptor{
		Name:            name,
		IsRecursive:     true,
		InputTypes:      inputs,
		RequiredContext: ir.ContextWasmFunction,
		Body:            body,
	}
}

var blockGenerators = []registry.Descriptor{
	wasmBlockGenerator("WasmBlockGenerator", nil, func(e registry.Emitter, _ []ir.Variable) {
		e.Block(ir.OpcodeBeginWasmBlock, nil, nil, ir.OpcodeEndWasmBlock, func(_ ir.Instruction, _ []ir.Variable) {
			e.BuildRecursive(0, 1, 8)
		})
	}),
	wasmBlockGenerator("WasmLoopGenerator", nil, func(e registry.Emitter, _ []ir.Variable) {
		e.Block(ir.OpcodeBeginWasmLoop, nil, nil, ir.OpcodeEndWasmLoop, func(_ ir.Instruction, _ []ir.Variable) {
			e.BuildRecursive(0, 1, 8)
		})
	}),
	wasmBlockGenerator("WasmIfGenerator", []types.Type{types.Wasm(types.WasmI32)}, func(e registry.Emitter, in []ir.Variable) {
		e.Block(ir.OpcodeBeginWasmIf, in, nil, ir.OpcodeEndWasmIf, func(_ ir.Instruction, _ []ir.Variable) {
			e.BuildRecursive(0, 1, 6)
			e.Continuation(ir.OpcodeBeginWasmElse, nil, func(_ []ir.Variable) {
				e.BuildRecursive(1, 1, 6)
			})
		})
	}),
}
