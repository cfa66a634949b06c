package environment

import "github.com/fuzzil-dev/fuzzil/internal/types"

// Default builds the reference environment catalog: the builtins,
// groups, and well-known Symbol names a generic JS+Wasm engine exposes.
// It is not read from configuration — it is a process-wide immutable
// catalog describing the target runtime, declared directly in code the
// same way opcode tables are declared.
func Default() *Env {
	groups := map[string]Group{
		"Array": {
			Name:       "Array",
			Properties: []string{"length"},
			Methods:    []string{"push", "pop", "shift", "unshift", "slice", "splice", "map", "filter", "reduce", "forEach", "indexOf", "includes", "join", "concat", "sort", "reverse"},
		},
		"String": {
			Name:       "String",
			Properties: []string{"length"},
			Methods:    []string{"slice", "split", "indexOf", "includes", "replace", "toUpperCase", "toLowerCase", "charAt", "charCodeAt", "repeat", "padStart", "padEnd", "trim"},
		},
		"Object": {
			Name:    "Object",
			Methods: []string{"hasOwnProperty", "toString", "valueOf", "isPrototypeOf"},
		},
		"Promise": {
			Name:    "Promise",
			Methods: []string{"then", "catch", "finally"},
		},
		"Map": {
			Name:       "Map",
			Properties: []string{"size"},
			Methods:    []string{"get", "set", "has", "delete", "clear", "forEach"},
		},
		"Set": {
			Name:       "Set",
			Properties: []string{"size"},
			Methods:    []string{"add", "has", "delete", "clear", "forEach"},
		},
		"RegExp": {
			Name:       "RegExp",
			Properties: []string{"source", "flags", "lastIndex"},
			Methods:    []string{"test", "exec"},
		},
		"ArrayBuffer": {
			Name:       "ArrayBuffer",
			Properties: []string{"byteLength"},
			Methods:    []string{"slice"},
		},
		"TypedArray": {
			Name:       "TypedArray",
			Properties: []string{"length", "byteLength", "buffer"},
			Methods:    []string{"set", "subarray", "slice", "fill"},
		},
		"WasmMemory": {
			Name:       "WasmMemory",
			Properties: []string{"buffer"},
			Methods:    []string{"grow"},
		},
		"WasmModule": {
			Name:    "WasmModule",
			Methods: []string{"exports", "customSections"},
		},
		"WasmInstance": {
			Name:       "WasmInstance",
			Properties: []string{"exports"},
		},
	}

	builtins := []Builtin{
		{Name: "Math", Type: types.Object("", nil, []string{"floor", "ceil", "round", "abs", "max", "min", "random", "pow", "sqrt"})},
		{Name: "JSON", Type: types.Object("", nil, []string{"stringify", "parse"})},
		{Name: "Object", Type: types.Constructor(nil)},
		{Name: "Array", Type: types.Constructor(nil)},
		{Name: "String", Type: types.Constructor(nil)},
		{Name: "Number", Type: types.Constructor(nil)},
		{Name: "Boolean", Type: types.Constructor(nil)},
		{Name: "RegExp", Type: types.Constructor(nil)},
		{Name: "Map", Type: types.Constructor(nil)},
		{Name: "Set", Type: types.Constructor(nil)},
		{Name: "Promise", Type: types.Constructor(nil)},
		{Name: "ArrayBuffer", Type: types.Constructor(nil)},
		{Name: "Uint8Array", Type: types.Constructor(nil)},
		{Name: "Int32Array", Type: types.Constructor(nil)},
		{Name: "Float64Array", Type: types.Constructor(nil)},
		{Name: "WebAssembly", Type: types.Object("", nil, []string{"instantiate", "compile", "validate"})},
		{Name: "globalThis", Type: types.Anything()},
		{Name: "undefined", Type: types.Undefined()},
		{Name: "NaN", Type: types.Float()},
		{Name: "Infinity", Type: types.Float()},
	}

	byName := make(map[string]int, len(builtins))
	for i, b := range builtins {
		byName[b.Name] = i
	}

	return &Env{
		builtins:       builtins,
		builtinsByName: byName,
		groups:         groups,
		wellKnownNames: []string{
			"Symbol.iterator",
			"Symbol.asyncIterator",
			"Symbol.toPrimitive",
			"Symbol.hasInstance",
			"Symbol.toStringTag",
			"Symbol.species",
		},
		typeNames: []string{
			"number", "bigint", "string", "boolean", "undefined", "object", "function", "symbol",
		},
		wasm: WasmConstants{
			// PageSize is 1<<16 bytes per page. MaxPagesMem32 equals
			// PageSize: the maximum page count for a 32-bit memory
			// index keeps total addressable bytes within uint32 range
			// (65536 * 65536 == 1<<32). MaxPagesMem64 adds an explicit
			// 64-bit-memory limit for the memory64 proposal.
			PageSize:      1 << 16,
			MaxPagesMem32: 1 << 16,
			MaxPagesMem64: 1 << 48,
		},
	}
}
