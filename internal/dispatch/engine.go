// Package dispatch implements the weighted generator dispatch engine:
// applicable-set computation, weighted selection, value-generator
// bootstrap, and recursion-budget accounting. It is the only package
// that imports both internal/builder and internal/registry and wires
// them together — installing itself as the builder's Recurser (the
// builder owns the scope/variable map; the engine is given a mutable
// borrow for the duration of build) so that a generator body
// re-entering Builder.Build / Builder.BuildRecursive transparently
// re-enters this engine's loop.
package dispatch

import (
	"github.com/fuzzil-dev/fuzzil/internal/builder"
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/registry"
)

// defaultBootstrapTarget is the "3 values per kind" reference bootstrap
// population.
const defaultBootstrapTarget = 3

// recursionFloor is the per-call lower bound below which recursive
// generators are excluded from the applicable set, to suppress
// uncontrolled recursive growth.
const recursionFloor = 3

// maxStallsPerCall bounds how many consecutive zero-emission selections
// emitInstructions tolerates before giving up on the current build(n)
// call. Generators may legally emit nothing; without a floor a
// pathological weight table (every applicable generator self-aborts
// every time) could spin forever. This is an engineering safety valve,
// not a correctness invariant.
const maxStallsPerCall = 256

// Engine drives generator selection and invocation over one Builder
// using one Registry. It holds no state of its own beyond the
// configuration below — all generation state lives in the Builder.
type Engine struct {
	b               *builder.Builder
	reg             *registry.Registry
	bootstrapTarget int
}

// New builds an Engine over b and reg and installs it as b's Recurser,
// so that generator bodies invoking Builder.Build / BuildRecursive
// transparently re-enter this Engine.
func New(b *builder.Builder, reg *registry.Registry) *Engine {
	e := &Engine{b: b, reg: reg, bootstrapTarget: defaultBootstrapTarget}
	b.SetRecurser(e.recurse)
	return e
}

// Activate (re)installs e as b's Recurser. New already does this once at
// construction, but a template that drives two Engines over the same
// Builder — one per registry, switched at a block boundary such as
// BeginWasmModule/EndWasmModule — needs to explicitly hand the Recurser
// back and forth between them, since constructing the second Engine
// would otherwise silently steal it from the first for the rest of the
// build.
func (e *Engine) Activate() {
	e.b.SetRecurser(e.recurse)
}

func (e *Engine) recurse(blockIdx, ofN, n int) int {
	share := n
	if ofN > 0 {
		share = n / ofN
	}
	if share <= 0 {
		share = 1
	}
	return e.emitInstructions(share)
}

// Build emits ~n instructions at the builder's current cursor. It
// returns the number of instructions actually appended to the Code
// (which may overshoot n by the size of whatever generator was mid-run
// when the budget was exhausted).
func (e *Engine) Build(n int) int {
	return e.emitInstructions(n)
}

// Bootstrap runs the value-generator bootstrap: value generators are
// invoked, by the same weighted scheme restricted to
// IsValueGenerator descriptors, until each has run at least
// targetPerKind times (the reference value is "3 per kind"). It returns
// the number of instructions emitted.
func (e *Engine) Bootstrap(targetPerKind int) int {
	if targetPerKind <= 0 {
		targetPerKind = defaultBootstrapTarget
	}
	descs := e.reg.Descriptors()
	var valueGens []int
	for i, d := range descs {
		if d.IsValueGenerator {
			valueGens = append(valueGens, i)
		}
	}
	if len(valueGens) == 0 {
		return 0
	}

	counts := make(map[int]int, len(valueGens))
	emitted := 0
	maxAttempts := len(valueGens)*targetPerKind*20 + 50
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var pending []int
		for _, idx := range valueGens {
			if counts[idx] < targetPerKind {
				pending = append(pending, idx)
			}
		}
		if len(pending) == 0 {
			break
		}
		chosen := e.selectWeighted(pending)
		before := len(e.b.Code())
		descs[chosen].Body.Apply(e.b, nil)
		emitted += len(e.b.Code()) - before
		counts[chosen]++
	}
	return emitted
}

func (e *Engine) emitInstructions(n int) int {
	remaining := n
	emitted := 0
	stalls := 0
	for remaining > 0 && stalls < maxStallsPerCall {
		applicable := e.applicableSet(remaining)
		if len(applicable) == 0 {
			idx, ok := e.forcedValueGenerator()
			if !ok {
				// No generator can emit here (e.g. a terminal wasm
				// context); the caller's enclosing block-closer will
				// bring the cursor back to a productive context.
				break
			}
			before := len(e.b.Code())
			e.reg.Descriptors()[idx].Body.Apply(e.b, nil)
			delta := len(e.b.Code()) - before
			remaining -= delta
			emitted += delta
			if delta == 0 {
				stalls++
			} else {
				stalls = 0
			}
			continue
		}

		idx := e.selectWeighted(applicable)
		d := e.reg.Descriptors()[idx]
		inputs, ok := e.resolveInputs(d)
		if !ok {
			stalls++
			continue
		}
		before := len(e.b.Code())
		d.Body.Apply(e.b, inputs)
		delta := len(e.b.Code()) - before
		remaining -= delta
		emitted += delta
		if delta == 0 {
			stalls++
		} else {
			stalls = 0
		}
	}
	return emitted
}

// applicableSet computes the indices of generators applicable at the
// builder's current cursor: requiredContext must be a subset of the
// current context, a visible variable of each declared input type must
// be found, and (for recursive generators) the remaining budget must
// not be below recursionFloor.
func (e *Engine) applicableSet(remaining int) []int {
	var out []int
	ctx := e.b.Context()
	for i, d := range e.reg.Descriptors() {
		if !ctx.Is(d.RequiredContext) {
			continue
		}
		if d.IsRecursive && remaining < recursionFloor {
			continue
		}
		satisfiable := true
		for _, t := range d.InputTypes {
			if _, ok := e.b.RandVarOfType(t); !ok {
				satisfiable = false
				break
			}
		}
		if !satisfiable {
			continue
		}
		out = append(out, i)
	}
	return out
}

func (e *Engine) forcedValueGenerator() (int, bool) {
	var candidates []int
	ctx := e.b.Context()
	for i, d := range e.reg.Descriptors() {
		if d.IsValueGenerator && ctx.Is(d.RequiredContext) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return e.selectWeighted(candidates), true
}

func (e *Engine) resolveInputs(d registry.Descriptor) ([]ir.Variable, bool) {
	if len(d.InputTypes) == 0 {
		return nil, true
	}
	inputs := make([]ir.Variable, len(d.InputTypes))
	for i, t := range d.InputTypes {
		v, ok := e.b.RandVarOfType(t)
		if !ok {
			return nil, false
		}
		inputs[i] = v
	}
	return inputs, true
}
