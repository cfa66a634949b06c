package ir

// Instruction is the IL model's only composite type: an opcode, its
// ordered inputs and outputs, the innerOutputs only visible inside the
// block it opens, and any opcode-parameterized literal. This
// mirrors internal/wazeroir's UnionOperation: one flat struct carrying a
// Kind tag and a small fixed set of payload fields, rather than one Go
// type per opcode, so Code stays a single append-only slice.
type Instruction struct {
	Kind Opcode

	Inputs       []Variable
	Outputs      []Variable
	InnerOutputs []Variable

	// Flags carries opcode-specific bit flags (e.g. a property access
	// being computed vs. literal, a binary operator flavor).
	Flags uint32

	// Imm0/Imm1 hold small fixed-width immediates (e.g. an integer
	// literal, a float64 bit pattern, a builtin or group index).
	Imm0, Imm1 int64
	// Str holds a string-typed immediate (property name, builtin name,
	// regexp source, label name).
	Str string
	// Bytes holds a variable-length encoded immediate, used by Wasm
	// opcodes for pre-encoded LEB128 constants (see leb128.go) so that a
	// downstream lifter need not re-derive the wire encoding.
	Bytes []byte
}

// IntLiteral reads Imm0 as a signed integer literal (OpcodeLoadInt,
// OpcodeWasmConstI32/I64; for the Wasm constants Bytes holds the same
// value LEB128-encoded).
func (i Instruction) IntLiteral() int64 { return i.Imm0 }

// FloatBits reads Imm0 as the bit pattern of a float64 literal
// (OpcodeLoadFloat, OpcodeWasmConstF64, and OpcodeWasmConstF32, whose
// value is also stored as float64 bits).
func (i Instruction) FloatBits() int64 { return i.Imm0 }

// StringLiteral reads Str as a string-typed immediate (OpcodeLoadString,
// property/builtin/label names, regexp source).
func (i Instruction) StringLiteral() string { return i.Str }

// NumInputs, NumOutputs and NumInnerOutputs report the arity actually
// present on this instance, for callers that only have an Instruction and
// not the static opcodeMeta (e.g. the mutation engine).
func (i Instruction) NumInputs() int       { return len(i.Inputs) }
func (i Instruction) NumOutputs() int      { return len(i.Outputs) }
func (i Instruction) NumInnerOutputs() int { return len(i.InnerOutputs) }

// Class reports which of the four OpcodeClass values Kind belongs to.
func (i Instruction) Class() OpcodeClass { return i.Kind.Class() }

// definedVariables returns every Variable this instruction introduces
// into scope: its Outputs plus its InnerOutputs.
func (i Instruction) definedVariables() []Variable {
	if len(i.InnerOutputs) == 0 {
		return i.Outputs
	}
	all := make([]Variable, 0, len(i.Outputs)+len(i.InnerOutputs))
	all = append(all, i.Outputs...)
	all = append(all, i.InnerOutputs...)
	return all
}
