package builder

import (
	"fmt"
	"math"

	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

// Emit appends a new instruction for a non-block-opening opcode (or a
// block opener/closer with zero or exactly-declared inner outputs),
// allocating fresh variables for its outputs. Panics with
// *ir.InvariantViolation on a programming error — an out-of-scope
// input, a context requirement unmet, or mismatched block nesting —
// since these can only arise from a bug in this module or in a
// generator, never from valid caller input.
func (b *Builder) Emit(op ir.Opcode, inputs []ir.Variable, imm ...interface{}) ir.Instruction {
	return b.emit(op, inputs, -1, imm...)
}

// EmitBlock is Emit for a block-opening opcode whose numInnerOutputs is
// variadic (-1 in its opcodeMeta, e.g. BeginPlainFunction's parameter
// list or BeginWasmBlock's result arity): innerCount supplies the
// actual count for this invocation.
func (b *Builder) EmitBlock(op ir.Opcode, inputs []ir.Variable, innerCount int, imm ...interface{}) ir.Instruction {
	return b.emit(op, inputs, innerCount, imm...)
}

func (b *Builder) emit(op ir.Opcode, inputs []ir.Variable, innerCount int, imm ...interface{}) ir.Instruction {
	numIn, numOut, numInner, ok := ir.Meta(op)
	if !ok {
		panic(&ir.InvariantViolation{Rule: "UnknownOpcode", Index: len(b.code), Msg: fmt.Sprintf("opcode %d has no metadata", op)})
	}
	if numIn >= 0 && len(inputs) != numIn {
		panic(&ir.InvariantViolation{Rule: "ArityMismatch", Index: len(b.code), Msg: fmt.Sprintf("%s expects %d inputs, got %d", op, numIn, len(inputs))})
	}

	opensCtx, blockKind, closesKinds, requiresCtx, _ := ir.BlockInfo(op)

	if len(closesKinds) > 0 {
		top := b.scopes[len(b.scopes)-1]
		if len(b.scopes) == 1 || !kindIn(top.kind, closesKinds) {
			panic(&ir.InvariantViolation{Rule: "UnbalancedBlocks", Index: len(b.code), Msg: fmt.Sprintf("%s cannot close a surrounding block of kind %v", op, top.kind)})
		}
		for _, v := range top.vars {
			delete(b.inScope, v)
		}
		b.scopes = b.scopes[:len(b.scopes)-1]
		// Recompute from the remaining stack rather than clearing
		// top.opensContext unconditionally: an outer scope sharing a
		// context bit with the one just closed (e.g. a function nested
		// in another function, both opening ContextSubroutine) must keep
		// that bit set after the inner one closes.
		b.context = ir.ContextRoot
		for _, s := range b.scopes {
			b.context |= s.opensContext
		}
	}

	if !b.context.Is(requiresCtx) {
		panic(&ir.InvariantViolation{Rule: "ContextRequirementUnmet", Index: len(b.code), Msg: fmt.Sprintf("%s requires context %v, have %v", op, requiresCtx, b.context)})
	}

	for _, v := range inputs {
		if !b.inScope[v] {
			panic(&ir.InvariantViolation{Rule: "OutOfScopeInput", Index: len(b.code), Msg: fmt.Sprintf("%s references variable %d which is undefined or out of scope", op, v)})
		}
	}

	ins := ir.Instruction{Kind: op}
	ins.Inputs = append([]ir.Variable(nil), inputs...)
	setImmediates(&ins, imm)

	for i := 0; i < numOut; i++ {
		v := b.define(inferOutputType(op, inputs, b))
		ins.Outputs = append(ins.Outputs, v)
		b.addToTopFrame(v)
	}

	if op.Class() == ir.ClassBlockOpening {
		b.scopes = append(b.scopes, scope{kind: blockKind, opensContext: opensCtx})
		b.context |= opensCtx
	}

	innerN := numInner
	if innerN < 0 {
		innerN = innerCount
	}
	for i := 0; i < innerN; i++ {
		v := b.define(types.Anything())
		ins.InnerOutputs = append(ins.InnerOutputs, v)
		b.addToTopFrame(v)
	}

	b.code = append(b.code, ins)
	return ins
}

func kindIn(k ir.BlockKind, set []ir.BlockKind) bool {
	for _, s := range set {
		if s == k {
			return true
		}
	}
	return false
}

func (b *Builder) define(t types.Type) ir.Variable {
	v := b.nextVar
	b.nextVar++
	b.types[v] = t
	b.inScope[v] = true
	b.liveOrder = append(b.liveOrder, v)
	return v
}

func (b *Builder) addToTopFrame(v ir.Variable) {
	top := len(b.scopes) - 1
	b.scopes[top].vars = append(b.scopes[top].vars, v)
}

func setImmediates(ins *ir.Instruction, imm []interface{}) {
	intsSeen := 0
	for _, a := range imm {
		switch v := a.(type) {
		case int64:
			setInt(ins, &intsSeen, v)
		case int:
			setInt(ins, &intsSeen, int64(v))
		case float64:
			bits := int64(math.Float64bits(v))
			setInt(ins, &intsSeen, bits)
		case string:
			ins.Str = v
		case []byte:
			ins.Bytes = v
		case bool:
			if v {
				ins.Flags |= 1
			}
		}
	}
}

func setInt(ins *ir.Instruction, seen *int, v int64) {
	if *seen == 0 {
		ins.Imm0 = v
	} else {
		ins.Imm1 = v
	}
	*seen++
}

// inferOutputType assigns a best-effort static type to an opcode's sole
// value output, refined by the operation itself (e.g. loadInt ⇒
// integer; binary(int,int,+) ⇒ integer). Opcodes not special-cased here
// produce types.Anything(), which is
// always safe (every type Is(Anything()) as a requirement) but not
// informative; generator bodies that need a precise output type supply
// one explicitly via Builder.SetType after Emit.
func inferOutputType(op ir.Opcode, inputs []ir.Variable, b *Builder) types.Type {
	switch op {
	case ir.OpcodeLoadInt:
		return types.Integer()
	case ir.OpcodeLoadBigInt:
		return types.BigInt()
	case ir.OpcodeLoadFloat:
		return types.Float()
	case ir.OpcodeLoadString, ir.OpcodeCreateTemplateString:
		return types.String()
	case ir.OpcodeLoadBoolean:
		return types.Boolean()
	case ir.OpcodeLoadUndefined:
		return types.Undefined()
	case ir.OpcodeLoadNull:
		return types.Null()
	case ir.OpcodeLoadRegExp:
		return types.RegExp()
	case ir.OpcodeCreateArray, ir.OpcodeSpreadArray:
		return types.Object("Array", []string{"length"}, []string{"push", "pop", "slice"})
	case ir.OpcodeCreateObject:
		return types.Object("", nil, nil)
	case ir.OpcodeBinaryOperation:
		if len(inputs) == 2 && b.TypeOf(inputs[0]).Is(types.Integer()) && b.TypeOf(inputs[1]).Is(types.Integer()) {
			return types.Integer()
		}
		return types.Anything()
	case ir.OpcodeCompareOperation:
		return types.Boolean()
	case ir.OpcodeTypeOf:
		return types.String()
	case ir.OpcodeWasmConstI32, ir.OpcodeWasmLocalGet, ir.OpcodeWasmGlobalGet:
		return types.Wasm(types.WasmI32)
	case ir.OpcodeWasmConstI64:
		return types.Wasm(types.WasmI64)
	case ir.OpcodeWasmConstF32:
		return types.Wasm(types.WasmF32)
	case ir.OpcodeWasmConstF64:
		return types.Wasm(types.WasmF64)
	default:
		return types.Anything()
	}
}

// SetType overrides the tracked type of v, for use by generator bodies
// whose output type is refined beyond what inferOutputType can know
// from the opcode alone (e.g. a call's return type from a known
// signature).
func (b *Builder) SetType(v ir.Variable, t types.Type) { b.types[v] = t }
