// Package builder implements the program builder: the single mutable
// carrier of generation state (emitted Code, scope stack, per-variable
// type map, and per-builder PRNG). It has no dependency on
// internal/dispatch or internal/registry's concrete types: recursive
// re-entry into the dispatch engine is wired in by the dispatch package
// after construction (Builder.SetRecurser), so that the builder owns
// the scope/variable map while the engine is given a mutable borrow for
// the duration of build, without the two packages importing each other.
// This keeps the dependency edge one-directional (dispatch → builder),
// the same direction a compiler layer depends on its IR package rather
// than the reverse.
package builder

import (
	"math/rand"

	"github.com/fuzzil-dev/fuzzil/internal/environment"
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

// Mode is the builder's conservative/aggressive flag.
type Mode uint8

const (
	// ModeConservative is the default: generators whose outputs are
	// hard to type-track precisely (e.g. spreads, destructuring-in-
	// for-of) self-disable. Program templates always run in this mode.
	ModeConservative Mode = iota
	ModeAggressive
)

// Recurser is the callback a dispatch engine installs via SetRecurser
// so that Build/BuildRecursive (called from inside a generator body
// that only holds a *Builder) can re-enter the engine's emitInstructions
// loop.
type Recurser func(blockIdx, ofN, n int) int

type scope struct {
	kind         ir.BlockKind
	opensContext ir.Context
	vars         []ir.Variable
}

// Builder is the single mutable carrier of generation state for one
// program. It is not safe for concurrent use; each fuzzing worker owns
// exactly one Builder.
type Builder struct {
	code    ir.Code
	scopes  []scope
	context ir.Context

	types     map[ir.Variable]types.Type
	liveOrder []ir.Variable
	inScope   map[ir.Variable]bool
	nextVar   ir.Variable

	rng  *rand.Rand
	mode Mode
	env  *environment.Env

	recurser Recurser
}

// New constructs a Builder seeded for deterministic generation (P4),
// consulting env for builtin/group resolution. The builder starts with
// an empty scope stack save for the implicit root frame and
// ModeConservative.
func New(seed int64, env *environment.Env) *Builder {
	b := &Builder{env: env}
	b.Reset(seed)
	return b
}

// Reset clears all generation state and reseeds the PRNG, for reuse
// across programs without reallocating a Builder.
func (b *Builder) Reset(seed int64) {
	b.code = nil
	b.scopes = []scope{{kind: ir.BlockKindNone, opensContext: ir.ContextRoot}}
	b.context = ir.ContextRoot
	b.types = make(map[ir.Variable]types.Type)
	b.liveOrder = nil
	b.inScope = make(map[ir.Variable]bool)
	b.nextVar = 0
	b.rng = rand.New(rand.NewSource(seed))
	b.mode = ModeConservative
}

// SetMode sets the conservative/aggressive flag.
func (b *Builder) SetMode(m Mode) { b.mode = m }

// Aggressive reports whether the builder is in aggressive mode.
func (b *Builder) Aggressive() bool { return b.mode == ModeAggressive }

// SetRecurser installs the dispatch engine's re-entry callback. Called
// by dispatch.New and again by Engine.Activate whenever an engine takes
// over the builder; generator bodies never call it directly.
func (b *Builder) SetRecurser(r Recurser) { b.recurser = r }

// Rng exposes the per-builder PRNG for generator bodies that need
// uncommitted randomness (e.g. literal values). The PRNG is per-builder;
// generators must never read a global RNG.
func (b *Builder) Rng() *rand.Rand { return b.rng }

// Env returns the environment catalog this builder was constructed
// with.
func (b *Builder) Env() *environment.Env { return b.env }

// Context returns the Context bitset active at the current cursor, the
// bitwise-OR of every enclosing frame's opensContext plus the implicit
// root context.
func (b *Builder) Context() ir.Context { return b.context }

// Code returns the Code built so far. The caller must not mutate the
// returned slice directly; use ReplaceAt/Splice/TruncateAt.
func (b *Builder) Code() ir.Code { return b.code }

// Build requests ~n more instructions be emitted at the current cursor
// via the installed Recurser. It returns the number of instructions
// actually emitted, 0 if no Recurser
// is installed (a Builder exercised without an attached dispatch engine
// — e.g. in isolated unit tests of Emit/query methods).
func (b *Builder) Build(n int) int {
	if b.recurser == nil {
		return 0
	}
	return b.recurser(0, 1, n)
}

// BuildRecursive requests ~m/ofN instructions for the blockIdx-th
// sub-block of a recursive generator.
func (b *Builder) BuildRecursive(blockIdx, ofN, m int) int {
	if b.recurser == nil {
		return 0
	}
	return b.recurser(blockIdx, ofN, m)
}
