package template

import (
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

func init() {
	register("JSPI", jspi)
}

// jspi emits a Wasm module holding one Wasm function, then an async
// function that calls a method of the WebAssembly builtin with no
// arguments ("instantiate" when the builtin's type offers none), awaits
// the result, builds some JS and returns the awaited value. The Wasm
// function is not exported, no JS function is wrapped as a suspending
// import, and no Wasm export is called through a promising wrapper; the
// only suspend point in the program is the Await on the WebAssembly
// call.
func jspi(rt *Runtime) {
	rt.Bootstrap(3)

	rt.B.EmitBlock(ir.OpcodeBeginWasmModule, nil, 0)
	rt.B.EmitBlock(ir.OpcodeBeginWasmFunction, nil, 0)
	rt.Wasm(20)
	rt.B.Emit(ir.OpcodeEndWasmFunction, nil)
	rt.B.Emit(ir.OpcodeEndWasmModule, nil)

	rt.B.EmitBlock(ir.OpcodeBeginAsyncFunction, nil, 0)

	wasmBuiltin, ok := rt.B.RandVarOfType(rt.B.Env().GroupType("WasmInstance"))
	if !ok {
		ins := rt.B.Emit(ir.OpcodeLoadBuiltin, nil, "WebAssembly")
		wasmBuiltin = ins.Outputs[0]
	}
	method, ok := rt.B.TypeOf(wasmBuiltin).RandomMethod(rt.B.Rng())
	if !ok {
		method = "instantiate"
	}
	call := rt.B.Emit(ir.OpcodeCallMethod, []ir.Variable{wasmBuiltin}, method)
	rt.B.SetType(call.Outputs[0], types.Anything())
	await := rt.B.Emit(ir.OpcodeAwait, []ir.Variable{call.Outputs[0]})
	rt.B.SetType(await.Outputs[0], types.Anything())

	rt.JS(10)
	rt.B.Emit(ir.OpcodeReturn, []ir.Variable{await.Outputs[0]})
	rt.B.Emit(ir.OpcodeEndAsyncFunction, nil)
}
