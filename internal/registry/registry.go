// Package registry holds the immutable generator catalog: a
// name→Descriptor map plus a name→weight map, built once and
// never mutated afterward. It deliberately has no dependency on the
// builder package — Body operates over the Emitter interface declared
// here instead of a concrete *builder.Builder — and builder does not
// import registry either, so the two packages stay independent; the
// dispatch engine imports both. The split snapshots the
// name→descriptor mapping into a fixed, read-only list at construction
// time rather than resolving names dynamically per call.
package registry

import (
	"math/rand"

	"github.com/fuzzil-dev/fuzzil/internal/environment"
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

// Emitter is the subset of *builder.Builder's API a generator body is
// allowed to use. *builder.Builder implements it structurally; no
// import cycle is required for that to typecheck.
type Emitter interface {
	// Emit appends a new instruction, allocating fresh variables for its
	// outputs and inner-outputs.
	Emit(op ir.Opcode, inputs []ir.Variable, imm ...interface{}) ir.Instruction
	// EmitBlock is Emit for a block-opening opcode with a variadic
	// inner-output arity (function parameter lists, wasm block result
	// arities): innerCount supplies the actual count for this call.
	EmitBlock(op ir.Opcode, inputs []ir.Variable, innerCount int, imm ...interface{}) ir.Instruction
	// Block opens a block with openOp, types its inner outputs with
	// innerTypes, runs body, then closes the block with closeOp. The
	// block-protocol primitive recursive generators should prefer over
	// hand-rolled EmitBlock/Emit/End... sequences.
	Block(openOp ir.Opcode, inputs []ir.Variable, innerTypes []types.Type, closeOp ir.Opcode, body func(open ir.Instruction, inner []ir.Variable)) ir.Instruction
	// Continuation emits a continuation opcode (BeginElse, BeginCatch and
	// their Wasm analogues) that closes the currently open sibling frame
	// and opens a new one, typed with innerTypes, running body inside it.
	Continuation(op ir.Opcode, innerTypes []types.Type, body func(inner []ir.Variable)) ir.Instruction
	// SetType overrides the tracked type of v, for outputs whose type
	// the opcode alone cannot determine (e.g. a call's return type).
	SetType(v ir.Variable, t types.Type)

	// RandVar returns a uniformly random in-scope variable.
	RandVar() (ir.Variable, bool)
	// RandVarOfType returns a uniformly random in-scope variable whose
	// current type satisfies t.
	RandVarOfType(t types.Type) (ir.Variable, bool)
	// FindVariable returns the first in-scope variable satisfying pred,
	// walking the scope stack from innermost to outermost.
	FindVariable(pred func(ir.Variable, types.Type) bool) (ir.Variable, bool)
	// TypeOf returns the current tracked type of v.
	TypeOf(v ir.Variable) types.Type
	// GenerateVariable returns an in-scope variable of type t, emitting
	// a fresh literal (or loadUndefined) for it if none currently exists.
	GenerateVariable(t types.Type) ir.Variable

	// Context returns the Context bitset active at the current cursor.
	Context() ir.Context
	// Aggressive reports whether the builder is in aggressive mode; a
	// handful of generators self-disable unless this is true.
	Aggressive() bool
	// Rng exposes the per-builder PRNG — generators must never read a
	// global RNG, so that the same seed always reproduces the same Code.
	Rng() *rand.Rand
	// Env returns the declarative target-environment catalog.
	Env() *environment.Env

	// Build requests ~n more instructions be emitted at the current
	// cursor. It returns the number actually emitted.
	Build(n int) int
	// BuildRecursive requests ~m/ofN instructions for the blockIdx-th
	// sub-block of a recursive generator.
	BuildRecursive(blockIdx, ofN, m int) int
}

// Body is the generator's executable recipe: a closure of the shape
// (builder, inputs) → (). Apply is given no return value on purpose —
// the engine measures instruction-count delta itself rather than
// trusting a self-reported count.
type Body interface {
	Apply(e Emitter, inputs []ir.Variable)
}

// BodyFunc adapts a plain function to Body: the one-method-interface a
// func literal satisfies.
type BodyFunc func(e Emitter, inputs []ir.Variable)

func (f BodyFunc) Apply(e Emitter, inputs []ir.Variable) { f(e, inputs) }

// Descriptor is one generator's full declaration.
type Descriptor struct {
	Name             string
	IsValueGenerator bool
	IsRecursive      bool
	InputTypes       []types.Type
	RequiredContext  ir.Context
	Produces         []types.Type
	Body             Body
}

// Registry is an immutable name→Descriptor catalog plus a name→weight
// table.
type Registry struct {
	descriptors []Descriptor
	byName      map[string]int
	weights     []int
}

// New builds a Registry from descriptors and a weight-override map
// applied over a weight of 1 for any descriptor the map omits, the same
// With*-override-over-compiled-in-defaults shape used elsewhere for
// functional-options-style configuration.
func New(descriptors []Descriptor, weights map[string]int) *Registry {
	byName := make(map[string]int, len(descriptors))
	w := make([]int, len(descriptors))
	for i, d := range descriptors {
		byName[d.Name] = i
		if ov, ok := weights[d.Name]; ok {
			w[i] = ov
		} else {
			w[i] = 1
		}
	}
	return &Registry{descriptors: descriptors, byName: byName, weights: w}
}

// Descriptors returns the full catalog in registration order. The
// returned slice must not be mutated.
func (r *Registry) Descriptors() []Descriptor { return r.descriptors }

// Weight returns the configured weight for the descriptor at index i.
func (r *Registry) Weight(i int) int { return r.weights[i] }

// Lookup returns the descriptor index for name, or (-1, false).
func (r *Registry) Lookup(name string) (int, bool) {
	i, ok := r.byName[name]
	if !ok {
		return -1, false
	}
	return i, true
}

// DefaultWeights returns an empty override map — every descriptor
// defaults to weight 1 unless a generator package supplies its own
// table of name → integer overrides.
func DefaultWeights() map[string]int {
	return map[string]int{}
}
