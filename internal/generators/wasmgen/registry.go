// Package wasmgen declares the Wasm-in-module generator registry: the
// disjoint sibling of internal/generators/js consulted only once a
// template has opened a BeginWasmModule/BeginWasmFunction block. None of
// its descriptors declare a JavaScript-domain requiredContext, and none
// of internal/generators/js's descriptors declare a Wasm one. The
// javascript bit stays set inside Wasm blocks, so JS descriptors can
// match there too; which registry runs at a cursor is decided by which
// dispatch engine is active, not by context alone.
package wasmgen

import "github.com/fuzzil-dev/fuzzil/internal/registry"

// Registry builds the Wasm-in-module generator registry: numeric
// constants and locals as value generators, arithmetic/control
// instructions, and the recursive block/loop/if generators.
func Registry() *registry.Registry {
	var all []registry.Descriptor
	all = append(all, valueGenerators...)
	all = append(all, instructionGenerators...)
	all = append(all, blockGenerators...)
	return registry.New(all, Weights())
}

// Weights returns the default weight overrides for the Wasm registry:
// constants and arithmetic dominate, matching how a real Wasm function
// body is mostly straight-line numeric code punctuated by occasional
// control flow.
func Weights() map[string]int {
	return map[string]int{
		"WasmI32ConstGenerator":     6,
		"WasmI64ConstGenerator":     3,
		"WasmF32ConstGenerator":     2,
		"WasmF64ConstGenerator":     2,
		"WasmLocalGetGenerator":     6,
		"WasmNumericInstrGenerator": 8,
		"WasmLocalSetGenerator":     4,
		"WasmLocalTeeGenerator":     2,
		"WasmDropGenerator":         2,
		"WasmReturnGenerator":       1,
		"WasmUnreachableGenerator":  1,
		"WasmBrGenerator":           1,
		"WasmBrIfGenerator":         1,
		"WasmBlockGenerator":        2,
		"WasmIfGenerator":           2,
		"WasmLoopGenerator":         1,
	}
}
