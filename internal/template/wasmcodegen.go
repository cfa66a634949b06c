package template

import "github.com/fuzzil-dev/fuzzil/internal/ir"

func init() {
	register("WasmCodegen50", func(rt *Runtime) { wasmCodegen(rt, 50) })
	register("WasmCodegen100", func(rt *Runtime) { wasmCodegen(rt, 100) })
	register("MixedJsAndWasm1", mixedJsAndWasm1)
	register("MixedJsAndWasm2", mixedJsAndWasm2)
}

// wasmCodegen runs the JS value bootstrap, then opens a single Wasm
// module and function and drives the Wasm-in-module registry inside it,
// with no further JS after it — the Wasm counterpart to codegen.
func wasmCodegen(rt *Runtime, n int) {
	rt.Bootstrap(3)
	rt.B.EmitBlock(ir.OpcodeBeginWasmModule, nil, 0)
	rt.B.EmitBlock(ir.OpcodeBeginWasmFunction, nil, 0)
	rt.Wasm(n)
	rt.B.Emit(ir.OpcodeEndWasmFunction, nil)
	rt.B.Emit(ir.OpcodeEndWasmModule, nil)
}

// mixedJsAndWasm1 places one Wasm module between a JS prefix and a JS
// suffix: JS before and after, a single Wasm function in between.
func mixedJsAndWasm1(rt *Runtime) {
	rt.Bootstrap(3)
	rt.JS(20)
	rt.B.EmitBlock(ir.OpcodeBeginWasmModule, nil, 0)
	rt.B.EmitBlock(ir.OpcodeBeginWasmFunction, nil, 0)
	rt.Wasm(30)
	rt.B.Emit(ir.OpcodeEndWasmFunction, nil)
	rt.B.Emit(ir.OpcodeEndWasmModule, nil)
	rt.JS(20)
}

// mixedJsAndWasm2 interleaves two separate Wasm modules, each holding one
// function, with a JS segment built between them, exercising the
// Recurser hand-off back and forth more than once per program. Each
// Wasm module is fully closed before any JS runs, so JS generators are
// never applicable as direct children of an open module (boundary
// scenario 3).
func mixedJsAndWasm2(rt *Runtime) {
	rt.Bootstrap(3)
	rt.JS(15)

	rt.B.EmitBlock(ir.OpcodeBeginWasmModule, nil, 0)
	rt.B.EmitBlock(ir.OpcodeBeginWasmFunction, nil, 0)
	rt.Wasm(20)
	rt.B.Emit(ir.OpcodeEndWasmFunction, nil)
	rt.B.Emit(ir.OpcodeEndWasmModule, nil)

	rt.JS(10)

	rt.B.EmitBlock(ir.OpcodeBeginWasmModule, nil, 0)
	rt.B.EmitBlock(ir.OpcodeBeginWasmFunction, nil, 0)
	rt.Wasm(20)
	rt.B.Emit(ir.OpcodeEndWasmFunction, nil)
	rt.B.Emit(ir.OpcodeEndWasmModule, nil)

	rt.JS(15)
}
