package ir

import "fmt"

// Code is an ordered sequence of Instructions. It is kept as a flat,
// append-only slice — Builder.Emit only ever appends at the end, the
// same shape as an append-only encoded-instruction stream.
type Code []Instruction

type frame struct {
	kind         BlockKind
	opensContext Context
	vars         []Variable
}

// Check validates that c satisfies the well-formedness invariant (P1),
// the context-requirement invariant (P2), and context monotonicity (P6).
// It never panics: a Code failing Check is exactly the situation Check
// exists to report, not a bug in Check itself.
func (c Code) Check() error {
	stack := []frame{{kind: BlockKindNone, opensContext: ContextRoot}}
	inScope := map[Variable]bool{}
	everDefined := map[Variable]bool{}
	currentContext := ContextRoot

	defineIn(&stack[len(stack)-1], inScope, everDefined)

	for idx, ins := range c {
		m, ok := opcodeMetas[ins.Kind]
		if !ok {
			return violation("UnknownOpcode", idx, "opcode %d has no metadata", ins.Kind)
		}

		if m.numInputs >= 0 && len(ins.Inputs) != m.numInputs {
			return violation("ArityMismatch", idx, "%s expects %d inputs, got %d", m.name, m.numInputs, len(ins.Inputs))
		}
		if len(ins.Outputs) != m.numOutputs {
			return violation("ArityMismatch", idx, "%s expects %d outputs, got %d", m.name, m.numOutputs, len(ins.Outputs))
		}
		if m.numInnerOutputs >= 0 && len(ins.InnerOutputs) != m.numInnerOutputs {
			return violation("ArityMismatch", idx, "%s expects %d inner outputs, got %d", m.name, m.numInnerOutputs, len(ins.InnerOutputs))
		}

		closes := len(m.closes) > 0
		if closes {
			top := stack[len(stack)-1]
			if len(stack) == 1 || !blockKindIn(top.kind, m.closes) {
				return violation("UnbalancedBlocks", idx, "%s cannot close a surrounding block of kind %v", m.name, top.kind)
			}
			for _, v := range top.vars {
				delete(inScope, v)
			}
			stack = stack[:len(stack)-1]
			currentContext = ContextRoot
			for _, f := range stack {
				currentContext |= f.opensContext
			}
		}

		if !currentContext.Is(m.requiresContext) {
			return violation("ContextRequirementUnmet", idx, "%s requires context %v, have %v", m.name, m.requiresContext, currentContext)
		}

		for _, v := range ins.Inputs {
			if !inScope[v] {
				return violation("OutOfScopeInput", idx, "%s references variable %d which is undefined or out of scope", m.name, v)
			}
		}

		if err := checkWasmImmediateEncoding(ins); err != nil {
			return violation("ImmediateEncodingMismatch", idx, "%s: %v", m.name, err)
		}

		for _, v := range ins.Outputs {
			if everDefined[v] {
				return violation("DuplicateDefinition", idx, "%s redefines variable %d", m.name, v)
			}
			everDefined[v] = true
			inScope[v] = true
			stack[len(stack)-1].vars = append(stack[len(stack)-1].vars, v)
		}

		if m.class == ClassBlockOpening {
			newFrame := frame{kind: m.opens, opensContext: m.opensContext}
			stack = append(stack, newFrame)
			currentContext |= m.opensContext
			for _, v := range ins.InnerOutputs {
				if everDefined[v] {
					return violation("DuplicateDefinition", idx, "%s redefines variable %d", m.name, v)
				}
				everDefined[v] = true
				inScope[v] = true
				stack[len(stack)-1].vars = append(stack[len(stack)-1].vars, v)
			}
		}
	}

	if len(stack) != 1 {
		return violation("UnbalancedBlocks", len(c), "%d block(s) left open at end of Code", len(stack)-1)
	}
	return nil
}

// checkWasmImmediateEncoding verifies that an instruction's pre-encoded
// LEB128 Bytes (see leb128.go) decode back to the same value carried in
// Imm0, catching a generator that updates one without the other.
// Instructions with no Bytes (anything outside the Wasm opcodes that
// populate it) are unchecked.
func checkWasmImmediateEncoding(ins Instruction) error {
	if len(ins.Bytes) == 0 {
		return nil
	}
	switch ins.Kind {
	case OpcodeWasmConstI32:
		v, _, err := LoadInt32(ins.Bytes)
		if err != nil {
			return err
		}
		if int64(v) != ins.Imm0 {
			return fmt.Errorf("decoded LEB128 i32 %d does not match Imm0 %d", v, ins.Imm0)
		}
	case OpcodeWasmConstI64:
		v, _, err := LoadInt64(ins.Bytes)
		if err != nil {
			return err
		}
		if v != ins.Imm0 {
			return fmt.Errorf("decoded LEB128 i64 %d does not match Imm0 %d", v, ins.Imm0)
		}
	case OpcodeWasmLocalGet, OpcodeWasmLocalSet, OpcodeWasmLocalTee:
		v, _, err := LoadUint32(ins.Bytes)
		if err != nil {
			return err
		}
		if int64(v) != ins.Imm0 {
			return fmt.Errorf("decoded LEB128 slot index %d does not match Imm0 %d", v, ins.Imm0)
		}
	}
	return nil
}

func defineIn(f *frame, inScope, everDefined map[Variable]bool) {
	for _, v := range f.vars {
		inScope[v] = true
		everDefined[v] = true
	}
}

func blockKindIn(k BlockKind, set []BlockKind) bool {
	for _, s := range set {
		if s == k {
			return true
		}
	}
	return false
}

// ContextAt returns the Context bitset in effect immediately before
// instruction index i would be emitted, by replaying c from the start.
// It is used by tests asserting (P2)/(P6) and by tooling that needs to
// reason about a Code without a live Builder.
func (c Code) ContextAt(i int) Context {
	stack := []frame{{kind: BlockKindNone, opensContext: ContextRoot}}
	currentContext := ContextRoot
	for idx := 0; idx < i && idx < len(c); idx++ {
		m, ok := opcodeMetas[c[idx].Kind]
		if !ok {
			continue
		}
		if len(m.closes) > 0 && len(stack) > 1 {
			stack = stack[:len(stack)-1]
			currentContext = ContextRoot
			for _, f := range stack {
				currentContext |= f.opensContext
			}
		}
		if m.class == ClassBlockOpening {
			stack = append(stack, frame{kind: m.opens, opensContext: m.opensContext})
			currentContext |= m.opensContext
		}
	}
	return currentContext
}

// ReplaceAt substitutes the instruction at index i, for use by the
// mutation engine.
// It does not itself re-validate c; callers are expected to call Check
// after a batch of mutations.
func (c Code) ReplaceAt(i int, ins Instruction) error {
	if i < 0 || i >= len(c) {
		return violation("IndexOutOfRange", i, "ReplaceAt: index out of range [0,%d)", len(c))
	}
	c[i] = ins
	return nil
}

// Splice inserts other's instructions into c at position at, renumbering
// every Variable other defines or references via renumber so the result
// can keep the SSA-like uniqueness invariant. Uniqueness holds only if
// renumber maps other's variables to ids c does not use; Splice does not
// check this itself.
func (c Code) Splice(at int, other Code, renumber func(Variable) Variable) (Code, error) {
	if at < 0 || at > len(c) {
		return nil, violation("IndexOutOfRange", at, "Splice: index out of range [0,%d]", len(c))
	}
	renamed := make(Code, len(other))
	for i, ins := range other {
		renamed[i] = renameInstruction(ins, renumber)
	}
	out := make(Code, 0, len(c)+len(renamed))
	out = append(out, c[:at]...)
	out = append(out, renamed...)
	out = append(out, c[at:]...)
	return out, nil
}

func renameInstruction(ins Instruction, renumber func(Variable) Variable) Instruction {
	out := ins
	out.Inputs = renameAll(ins.Inputs, renumber)
	out.Outputs = renameAll(ins.Outputs, renumber)
	out.InnerOutputs = renameAll(ins.InnerOutputs, renumber)
	return out
}

func renameAll(vs []Variable, renumber func(Variable) Variable) []Variable {
	if len(vs) == 0 {
		return vs
	}
	out := make([]Variable, len(vs))
	for i, v := range vs {
		out[i] = renumber(v)
	}
	return out
}

// TruncateAt returns the prefix of c ending at instruction index i
// (exclusive), widened forward as needed so every block opened inside the
// prefix is also closed inside it, preserving block balance.
func (c Code) TruncateAt(i int) (Code, error) {
	if i < 0 || i > len(c) {
		return nil, violation("IndexOutOfRange", i, "TruncateAt: index out of range [0,%d]", len(c))
	}
	// Replay from the start to find how many blocks are open at i itself;
	// widen the truncation point until they are all closed.
	openAtI := 0
	{
		stack := 0
		for idx := 0; idx < i && idx < len(c); idx++ {
			m, ok := opcodeMetas[c[idx].Kind]
			if !ok {
				continue
			}
			if len(m.closes) > 0 && stack > 0 {
				stack--
			}
			if m.class == ClassBlockOpening {
				stack++
			}
		}
		openAtI = stack
	}
	end := i
	open := openAtI
	for open > 0 && end < len(c) {
		m, ok := opcodeMetas[c[end].Kind]
		end++
		if !ok {
			continue
		}
		if m.class == ClassBlockOpening {
			open++
		}
		if len(m.closes) > 0 {
			open--
		}
	}
	result := make(Code, end)
	copy(result, c[:end])
	return result, nil
}
