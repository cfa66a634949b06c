package builder

import (
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

// liveVars returns the currently in-scope variables in definition
// order. Iteration is always over this slice, never over b.inScope
// directly, so that variable selection is a deterministic function of
// the PRNG stream (P4) rather than of Go's randomized map iteration.
func (b *Builder) liveVars() []ir.Variable {
	out := make([]ir.Variable, 0, len(b.inScope))
	for _, v := range b.liveOrder {
		if b.inScope[v] {
			out = append(out, v)
		}
	}
	return out
}

// RandVar returns a uniformly random in-scope variable, or
// (ir.NoVariable, false) if none is in scope.
func (b *Builder) RandVar() (ir.Variable, bool) {
	live := b.liveVars()
	if len(live) == 0 {
		return ir.NoVariable, false
	}
	return live[b.rng.Intn(len(live))], true
}

// RandVarOfType returns a uniformly random in-scope variable whose
// tracked type satisfies t (v.Is(t)), or (ir.NoVariable, false).
func (b *Builder) RandVarOfType(t types.Type) (ir.Variable, bool) {
	var candidates []ir.Variable
	for _, v := range b.liveVars() {
		if b.types[v].Is(t) {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return ir.NoVariable, false
	}
	return candidates[b.rng.Intn(len(candidates))], true
}

// FindVariable returns the most-recently-defined in-scope variable
// satisfying pred, or (ir.NoVariable, false).
func (b *Builder) FindVariable(pred func(ir.Variable, types.Type) bool) (ir.Variable, bool) {
	live := b.liveVars()
	for i := len(live) - 1; i >= 0; i-- {
		v := live[i]
		if pred(v, b.types[v]) {
			return v, true
		}
	}
	return ir.NoVariable, false
}

// TypeOf returns the current tracked type of v, or types.Anything() if
// v has no recorded type (should not happen for a variable obtained
// through this package's own query methods).
func (b *Builder) TypeOf(v ir.Variable) types.Type {
	if t, ok := b.types[v]; ok {
		return t
	}
	return types.Anything()
}

// GenerateVariable returns an in-scope variable of type t, reusing an
// existing one when available and otherwise synthesizing a fresh
// primitive literal matching t (or loadUndefined when t has no direct
// literal form). The richer path — invoking one of the registered value
// generators for T — is the dispatch engine's bootstrap
// responsibility; this method is the builder-local fallback guaranteed
// to always succeed.
func (b *Builder) GenerateVariable(t types.Type) ir.Variable {
	if v, ok := b.RandVarOfType(t); ok {
		return v
	}
	return b.literalFor(t)
}

func (b *Builder) literalFor(t types.Type) ir.Variable {
	switch t.Kind {
	case types.KindPrimitive:
		switch t.Primitive {
		case types.PrimInteger:
			return b.Emit(ir.OpcodeLoadInt, nil, int64(b.rng.Intn(1<<20))).Outputs[0]
		case types.PrimFloat:
			return b.Emit(ir.OpcodeLoadFloat, nil, b.rng.Float64()*1000).Outputs[0]
		case types.PrimBigInt:
			return b.Emit(ir.OpcodeLoadBigInt, nil, int64(b.rng.Intn(1<<20))).Outputs[0]
		case types.PrimBoolean:
			return b.Emit(ir.OpcodeLoadBoolean, nil, b.rng.Intn(2) == 1).Outputs[0]
		case types.PrimString:
			return b.Emit(ir.OpcodeLoadString, nil, randomShortString(b.rng)).Outputs[0]
		case types.PrimUndefined:
			return b.Emit(ir.OpcodeLoadUndefined, nil).Outputs[0]
		case types.PrimNull:
			return b.Emit(ir.OpcodeLoadNull, nil).Outputs[0]
		}
	case types.KindWasm:
		if t.WasmAtom == types.WasmI32 && b.context.Has(ir.ContextWasmFunction) {
			return b.Emit(ir.OpcodeWasmConstI32, nil, int64(b.rng.Int31())).Outputs[0]
		}
	}
	v := b.Emit(ir.OpcodeLoadUndefined, nil).Outputs[0]
	return v
}

var shortStringAlphabet = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

func randomShortString(rng interface{ Intn(int) int }) string {
	n := rng.Intn(8) + 1
	out := make([]byte, n)
	for i := range out {
		out[i] = shortStringAlphabet[rng.Intn(len(shortStringAlphabet))]
	}
	return string(out)
}
