package builder

import (
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

// Block opens a block with openOp, assigns innerTypes to its inner
// outputs (e.g. function parameters, loop-bound variables), invokes
// body with the opened instruction and its inner-output variables, and
// finally closes the block with closeOp. It is the block-protocol
// primitive the generator packages call directly for functions, loops,
// conditionals and the other block kinds.
func (b *Builder) Block(openOp ir.Opcode, inputs []ir.Variable, innerTypes []types.Type, closeOp ir.Opcode, body func(open ir.Instruction, inner []ir.Variable)) ir.Instruction {
	open := b.EmitBlock(openOp, inputs, len(innerTypes))
	for i, v := range open.InnerOutputs {
		if i < len(innerTypes) {
			b.SetType(v, innerTypes[i])
		}
	}
	body(open, open.InnerOutputs)
	b.Emit(closeOp, nil)
	return open
}

// Continuation emits a continuation opcode (BeginElse, BeginCatch,
// BeginFinally and their Wasm analogues) that closes the currently open
// sibling frame and opens a new one in the same LIFO-preserving step —
// Else requires a currently-open If. innerTypes is assigned to the new
// frame's inner outputs exactly as in Block.
func (b *Builder) Continuation(op ir.Opcode, innerTypes []types.Type, body func(inner []ir.Variable)) ir.Instruction {
	ins := b.EmitBlock(op, nil, len(innerTypes))
	for i, v := range ins.InnerOutputs {
		if i < len(innerTypes) {
			b.SetType(v, innerTypes[i])
		}
	}
	body(ins.InnerOutputs)
	return ins
}
