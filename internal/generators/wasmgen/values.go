package wasmgen

import (
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/registry"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

func wasmValueGenerator(name string, produces types.Type, body registry.BodyFunc) registry.Descriptor {
	return registry.Descriptor{
		Name:             name,
		IsValueGenerator: true,
		RequiredContext:  ir.ContextWasmFunction,
		Produces:         []types.Type{produces},
		Body:             body,
	}
}

var valueGenerators = []registry.Descriptor{
	wasmValueGenerator("WasmI32ConstGenerator", types.Wasm(types.WasmI32), func(e registry.Emitter, _ []ir.Variable) {
		v := e.Rng().Int31()
		e.Emit(ir.OpcodeWasmConstI32, nil, int64(v), ir.EncodeInt32(v))
	}),
	wasmValueGenerator("WasmI64ConstGenerator", types.Wasm(types.WasmI64), func(e registry.Emitter, _ []ir.Variable) {
		v := e.Rng().Int63()
		e.Emit(ir.OpcodeWasmConstI64, nil, v, ir.EncodeInt64(v))
	}),
	wasmValueGenerator("WasmF32ConstGenerator", types.Wasm(types.WasmF32), func(e registry.Emitter, _ []ir.Variable) {
		e.Emit(ir.OpcodeWasmConstF32, nil, e.Rng().Float64()*1000)
	}),
	wasmValueGenerator("WasmF64ConstGenerator", types.Wasm(types.WasmF64), func(e registry.Emitter, _ []ir.Variable) {
		e.Emit(ir.OpcodeWasmConstF64, nil, e.Rng().Float64()*1e9)
	}),
	// WasmLocalGetGenerator does not track a real local-slot allocation
	// table (no module-level locals section is modeled): Imm0/Bytes carry
	// a plausible slot index for a downstream lifter to resolve, not a
	// value this package cross-checks against a declared arity.
	wasmValueGenerator("WasmLocalGetGenerator", types.Wasm(types.WasmI32), func(e registry.Emitter, _ []ir.Variable) {
		slot := uint32(e.Rng().Intn(8))
		e.Emit(ir.OpcodeWasmLocalGet, nil, int64(slot), ir.EncodeUint32(slot))
	}),
}
