// Package environment declares the process-wide, immutable catalog of
// the target runtime's surface — builtin names, structural object
// groups, well-known Symbol names, and Wasm constants — consulted by
// the builder to resolve randBuiltin() and property/method type hints.
// It is built once at init time, declared as package-level constants
// rather than configuration.
package environment

import (
	"math/rand"

	"github.com/fuzzil-dev/fuzzil/internal/types"
)

// WasmConstants carries the Wasm-domain numeric limits consulted by the
// wasm generators: linear-memory page size and the maximum page counts
// for 32-bit and 64-bit memory indices.
type WasmConstants struct {
	// PageSize is the number of bytes in one Wasm linear-memory page.
	PageSize uint32
	// MaxPagesMem32 is the largest page count addressable by a 32-bit
	// memory's index type.
	MaxPagesMem32 uint32
	// MaxPagesMem64 is the largest page count addressable by a 64-bit
	// memory's index type.
	MaxPagesMem64 uint64
}

// Builtin is a named value the target runtime makes globally available,
// e.g. "Math", "JSON", "WebAssembly".
type Builtin struct {
	Name string
	Type types.Type
}

// Group is a named structural object archetype, e.g. "Array" or
// "WasmMemory" — the referent of types.Type.Group.
type Group struct {
	Name       string
	Properties []string
	Methods    []string
}

// Env is an immutable snapshot of the target environment. The zero
// value is not useful; construct via Default().
type Env struct {
	builtins       []Builtin
	builtinsByName map[string]int
	groups         map[string]Group
	wellKnownNames []string
	typeNames      []string
	wasm           WasmConstants
}

// Builtins returns the full builtin catalog, in declaration order. The
// returned slice must not be mutated by callers.
func (e *Env) Builtins() []Builtin { return e.builtins }

// RandBuiltin returns a uniformly random builtin, or (Builtin{}, false)
// if the catalog is empty.
func (e *Env) RandBuiltin(rng *rand.Rand) (Builtin, bool) {
	if len(e.builtins) == 0 {
		return Builtin{}, false
	}
	return e.builtins[rng.Intn(len(e.builtins))], true
}

// Builtin looks up a builtin by exact name.
func (e *Env) Builtin(name string) (Builtin, bool) {
	i, ok := e.builtinsByName[name]
	if !ok {
		return Builtin{}, false
	}
	return e.builtins[i], true
}

// Group looks up a named structural archetype.
func (e *Env) Group(name string) (Group, bool) {
	g, ok := e.groups[name]
	return g, ok
}

// GroupType returns the types.Type value for a named group, suitable
// for use as a generator's declared input/produces type.
func (e *Env) GroupType(name string) types.Type {
	g, ok := e.groups[name]
	if !ok {
		return types.Nothing()
	}
	return types.Object(g.Name, g.Properties, g.Methods)
}

// GroupTypes returns every declared group rendered as a types.Type, for
// use by types.RandomType's object-archetype pool.
func (e *Env) GroupTypes() []types.Type {
	out := make([]types.Type, 0, len(e.groups))
	for _, g := range e.groups {
		out = append(out, types.Object(g.Name, g.Properties, g.Methods))
	}
	return out
}

// WellKnownSymbolNames returns the declared Symbol.* names, e.g.
// "Symbol.iterator".
func (e *Env) WellKnownSymbolNames() []string { return e.wellKnownNames }

// RandWellKnownSymbol returns a uniformly random well-known Symbol name.
func (e *Env) RandWellKnownSymbol(rng *rand.Rand) (string, bool) {
	if len(e.wellKnownNames) == 0 {
		return "", false
	}
	return e.wellKnownNames[rng.Intn(len(e.wellKnownNames))], true
}

// TypeNames returns the JS typeof result strings the environment
// declares, e.g. "number", "string", "object".
func (e *Env) TypeNames() []string { return e.typeNames }

// Wasm returns the Wasm numeric constants.
func (e *Env) Wasm() WasmConstants { return e.wasm }
