// Package template implements the eleven named program templates: the
// top-level scaffolds that seed a builder and drive one or both
// generator registries in a fixed, template-specific order, mirroring
// modgen.Gen's "call one method per section in a fixed order"
// orchestration style. Every template runs its builder in conservative
// mode and returns a sealed ir.Program.
package template

import (
	"fmt"

	"github.com/fuzzil-dev/fuzzil/internal/builder"
	"github.com/fuzzil-dev/fuzzil/internal/dispatch"
	"github.com/fuzzil-dev/fuzzil/internal/environment"
	"github.com/fuzzil-dev/fuzzil/internal/generators/js"
	"github.com/fuzzil-dev/fuzzil/internal/generators/wasmgen"
	"github.com/fuzzil-dev/fuzzil/internal/ir"
)

// Func is one named template's build recipe, given a freshly reset
// Runtime.
type Func func(rt *Runtime)

// registry maps template name to Func; populated by each template file's
// init so that adding a template never requires touching this file.
var registry = map[string]Func{}

func register(name string, f Func) {
	registry[name] = f
}

// Names returns every registered template name, in no particular order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Runtime bundles one Builder with the two Engines driving it — JS and
// Wasm-in-module — so a template can freely interleave both domains by
// calling JS/Wasm, each of which reinstalls the matching Engine as the
// Builder's Recurser before building.
type Runtime struct {
	B *builder.Builder

	js   *dispatch.Engine
	wasm *dispatch.Engine
}

func newRuntime(seed int64, env *environment.Env) *Runtime {
	b := builder.New(seed, env)
	return &Runtime{
		B:    b,
		js:   dispatch.New(b, js.Registry()),
		wasm: dispatch.New(b, wasmgen.Registry()),
	}
}

// Bootstrap runs the JS value-generator bootstrap ("Prefix"): every
// declared value generator runs at least targetPerKind times before any
// other generator is considered.
func (rt *Runtime) Bootstrap(targetPerKind int) int {
	rt.js.Activate()
	return rt.js.Bootstrap(targetPerKind)
}

// JS reinstalls the JS engine as the active Recurser and requests ~n
// more instructions from it.
func (rt *Runtime) JS(n int) int {
	rt.js.Activate()
	return rt.js.Build(n)
}

// Wasm reinstalls the Wasm-in-module engine as the active Recurser and
// requests ~n more instructions from it. Callers are responsible for
// having already opened a BeginWasmModule/BeginWasmFunction block (the
// two registries are disjoint by RequiredContext, so Wasm generators
// are inapplicable outside one regardless of which engine is active).
func (rt *Runtime) Wasm(n int) int {
	rt.wasm.Activate()
	return rt.wasm.Build(n)
}

// Generate runs the named template over a fresh Builder seeded with
// seed, against env, and seals the result into an ir.Program.
func Generate(name string, seed int64, env *environment.Env) (ir.Program, error) {
	f, ok := registry[name]
	if !ok {
		return ir.Program{}, UnknownTemplateError{Name: name}
	}
	rt := newRuntime(seed, env)
	f(rt)
	return ir.Program{
		Code:     rt.B.Code(),
		Metadata: ir.Metadata{TemplateName: name, Seed: seed},
	}, nil
}

// UnknownTemplateError is returned by Generate for a name with no
// registered Func.
type UnknownTemplateError struct{ Name string }

func (e UnknownTemplateError) Error() string {
	return fmt.Sprintf("template: unknown template %q", e.Name)
}
