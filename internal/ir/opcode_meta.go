package ir

// opcodeMeta statically describes everything the Builder and Code.Check
// need to know about an Opcode without inspecting a live Instruction:
// opcode constants paired with fixed, exhaustively-tested lookup tables
// rather than attaching behavior to each opcode individually.
type opcodeMeta struct {
	name            string
	class           OpcodeClass
	numInputs       int
	numOutputs      int
	numInnerOutputs int

	// opensContext is OR'd into the current Context for the duration of
	// the block this instruction opens (zero for non-openers).
	opensContext Context
	// requiresContext must be a subset of the Context at the point this
	// opcode is emitted.
	requiresContext Context

	// opens is the BlockKind pushed onto the scope stack by this
	// instruction (BlockKindNone if this opcode does not open a scope).
	opens BlockKind
	// closes lists the BlockKind(s) of the currently open frame this
	// instruction is allowed to pop. Empty for opcodes that do not close
	// anything.
	closes []BlockKind
	// continuation marks an opcode such as BeginElse/BeginCatch that
	// both closes a sibling frame (one of `closes`) and immediately
	// opens a new one (`opens`), as a single LIFO-preserving step — Else
	// requires a currently-open If, Catch/Finally require an open Try.
	continuation bool
}

func meta(name string, class OpcodeClass, in, out, inner int) opcodeMeta {
	return opcodeMeta{name: name, class: class, numInputs: in, numOutputs: out, numInnerOutputs: inner}
}

func (m opcodeMeta) withContext(requires, opensBits Context) opcodeMeta {
	m.requiresContext = requires
	m.opensContext = opensBits
	return m
}

func (m opcodeMeta) opening(kind BlockKind) opcodeMeta {
	m.opens = kind
	return m
}

func (m opcodeMeta) closing(kinds ...BlockKind) opcodeMeta {
	m.closes = kinds
	return m
}

func (m opcodeMeta) continuing(open BlockKind, closeAny ...BlockKind) opcodeMeta {
	m.opens = open
	m.closes = closeAny
	m.continuation = true
	return m
}

var opcodeMetas = map[Opcode]opcodeMeta{
	// ---------------- JS value-creating ----------------
	OpcodeLoadInt:              meta("LoadInt", ClassValueCreating, 0, 1, 0),
	OpcodeLoadBigInt:           meta("LoadBigInt", ClassValueCreating, 0, 1, 0),
	OpcodeLoadFloat:            meta("LoadFloat", ClassValueCreating, 0, 1, 0),
	OpcodeLoadString:           meta("LoadString", ClassValueCreating, 0, 1, 0),
	OpcodeLoadBoolean:          meta("LoadBoolean", ClassValueCreating, 0, 1, 0),
	OpcodeLoadUndefined:        meta("LoadUndefined", ClassValueCreating, 0, 1, 0),
	OpcodeLoadNull:             meta("LoadNull", ClassValueCreating, 0, 1, 0),
	OpcodeLoadRegExp:           meta("LoadRegExp", ClassValueCreating, 0, 1, 0),
	OpcodeCreateArray:          meta("CreateArray", ClassValueCreating, -1, 1, 0),
	OpcodeCreateObject:         meta("CreateObject", ClassValueCreating, -1, 1, 0),
	OpcodeCreateTemplateString: meta("CreateTemplateString", ClassValueCreating, -1, 1, 0),
	OpcodeBinaryOperation:      meta("BinaryOperation", ClassValueCreating, 2, 1, 0),
	OpcodeUnaryOperation:       meta("UnaryOperation", ClassValueCreating, 1, 1, 0),
	OpcodeTypeOf:               meta("TypeOf", ClassValueCreating, 1, 1, 0),
	OpcodeCompareOperation:     meta("CompareOperation", ClassValueCreating, 2, 1, 0),
	OpcodeLoadProperty:         meta("LoadProperty", ClassValueCreating, 1, 1, 0),
	OpcodeLoadElement:          meta("LoadElement", ClassValueCreating, 2, 1, 0),
	OpcodeLoadBuiltin:          meta("LoadBuiltin", ClassValueCreating, 0, 1, 0),
	OpcodeCallFunction:         meta("CallFunction", ClassValueCreating, -1, 1, 0),
	OpcodeCallMethod:           meta("CallMethod", ClassValueCreating, -1, 1, 0),
	OpcodeConstruct:            meta("Construct", ClassValueCreating, -1, 1, 0),
	OpcodeSpreadArray:          meta("SpreadArray", ClassValueCreating, 1, 1, 0),
	OpcodeAwait: meta("Await", ClassValueCreating, 1, 1, 0).
		withContext(ContextAsyncFunction, 0),
	OpcodeCreatePromise: meta("CreatePromise", ClassValueCreating, 0, 1, 0),

	// ---------------- JS effectful ----------------
	OpcodeReassign:           meta("Reassign", ClassEffectful, 2, 0, 0),
	OpcodeSetProperty:        meta("SetProperty", ClassEffectful, 2, 0, 0),
	OpcodeSetElement:         meta("SetElement", ClassEffectful, 3, 0, 0),
	OpcodeDeleteProperty:     meta("DeleteProperty", ClassEffectful, 1, 0, 0),
	OpcodeCallFunctionVoid:   meta("CallFunctionVoid", ClassEffectful, -1, 0, 0),
	OpcodeExpressionStatement: meta("ExpressionStatement", ClassEffectful, 1, 0, 0),
	OpcodeReturn:             meta("Return", ClassEffectful, -1, 0, 0).withContext(ContextSubroutine, 0),
	OpcodeYield: meta("Yield", ClassEffectful, -1, 0, 0).
		withContext(ContextGeneratorFunction, 0),
	OpcodeThrow: meta("Throw", ClassEffectful, 1, 0, 0),
	OpcodeBreakLoop: meta("BreakLoop", ClassEffectful, 0, 0, 0).
		withContext(ContextLoop, 0),
	OpcodeBreakSwitch: meta("BreakSwitch", ClassEffectful, 0, 0, 0).
		withContext(ContextSwitchCase, 0),
	OpcodeContinue: meta("Continue", ClassEffectful, 0, 0, 0).
		withContext(ContextLoop, 0),
	OpcodeLabeledStatement: meta("LabeledStatement", ClassEffectful, 0, 0, 0),
	OpcodeNop:              meta("Nop", ClassEffectful, 0, 0, 0),

	// ---------------- JS block-opening ----------------
	OpcodeBeginPlainFunction: meta("BeginPlainFunction", ClassBlockOpening, 0, 1, -1).
		withContext(0, ContextJavaScript|ContextSubroutine).opening(BlockKindFunction),
	OpcodeBeginArrowFunction: meta("BeginArrowFunction", ClassBlockOpening, 0, 1, -1).
		withContext(0, ContextJavaScript|ContextSubroutine).opening(BlockKindFunction),
	OpcodeBeginGeneratorFunction: meta("BeginGeneratorFunction", ClassBlockOpening, 0, 1, -1).
		withContext(0, ContextJavaScript|ContextSubroutine|ContextGeneratorFunction).opening(BlockKindFunction),
	OpcodeBeginAsyncFunction: meta("BeginAsyncFunction", ClassBlockOpening, 0, 1, -1).
		withContext(0, ContextJavaScript|ContextSubroutine|ContextAsyncFunction).opening(BlockKindFunction),
	OpcodeBeginIf: meta("BeginIf", ClassBlockOpening, 1, 0, 0).
		withContext(0, 0).opening(BlockKindIf),
	OpcodeBeginElse: meta("BeginElse", ClassBlockOpening, 0, 0, 0).
		continuing(BlockKindElse, BlockKindIf),
	OpcodeBeginForLoop: meta("BeginForLoop", ClassBlockOpening, 1, 0, 1).
		withContext(0, ContextLoop).opening(BlockKindForLoop),
	OpcodeBeginWhileLoop: meta("BeginWhileLoop", ClassBlockOpening, 1, 0, 0).
		withContext(0, ContextLoop).opening(BlockKindWhileLoop),
	OpcodeBeginDoWhileLoop: meta("BeginDoWhileLoop", ClassBlockOpening, 1, 0, 0).
		withContext(0, ContextLoop).opening(BlockKindDoWhileLoop),
	OpcodeBeginForInLoop: meta("BeginForInLoop", ClassBlockOpening, 1, 0, 1).
		withContext(0, ContextLoop).opening(BlockKindForInLoop),
	OpcodeBeginForOfLoop: meta("BeginForOfLoop", ClassBlockOpening, 1, 0, 1).
		withContext(0, ContextLoop).opening(BlockKindForOfLoop),
	OpcodeBeginSwitch: meta("BeginSwitch", ClassBlockOpening, 1, 0, 0).
		withContext(0, ContextSwitchBlock).opening(BlockKindSwitch),
	OpcodeBeginSwitchCase: meta("BeginSwitchCase", ClassBlockOpening, 1, 0, 0).
		withContext(ContextSwitchBlock, ContextSwitchCase).opening(BlockKindSwitchCase),
	OpcodeBeginSwitchDefault: meta("BeginSwitchDefault", ClassBlockOpening, 0, 0, 0).
		withContext(ContextSwitchBlock, ContextSwitchCase).opening(BlockKindSwitchDefault),
	OpcodeBeginTry: meta("BeginTry", ClassBlockOpening, 0, 0, 0).
		opening(BlockKindTry),
	OpcodeBeginCatch: meta("BeginCatch", ClassBlockOpening, 0, 0, 1).
		continuing(BlockKindCatch, BlockKindTry),
	OpcodeBeginFinally: meta("BeginFinally", ClassBlockOpening, 0, 0, 0).
		continuing(BlockKindFinally, BlockKindTry, BlockKindCatch),
	OpcodeBeginClassDefinition: meta("BeginClassDefinition", ClassBlockOpening, 0, 1, 0).
		withContext(0, ContextClassDefinition).opening(BlockKindClassDefinition),
	OpcodeBeginWith: meta("BeginWith", ClassBlockOpening, 1, 0, 0).
		withContext(0, ContextWith).opening(BlockKindWith),
	OpcodeBeginObjectLiteral: meta("BeginObjectLiteral", ClassBlockOpening, 0, 1, 0).
		withContext(0, ContextObjectLiteral).opening(BlockKindObjectLiteral),
	OpcodeBeginBlockStatement: meta("BeginBlockStatement", ClassBlockOpening, 0, 0, 0).
		opening(BlockKindFunction), // plain lexical block; reuses Function's 1:1 End discipline

	// ---------------- JS block-closing ----------------
	OpcodeEndPlainFunction:     meta("EndPlainFunction", ClassBlockClosing, 0, 0, 0).closing(BlockKindFunction),
	OpcodeEndArrowFunction:     meta("EndArrowFunction", ClassBlockClosing, 0, 0, 0).closing(BlockKindFunction),
	OpcodeEndGeneratorFunction: meta("EndGeneratorFunction", ClassBlockClosing, 0, 0, 0).closing(BlockKindFunction),
	OpcodeEndAsyncFunction:     meta("EndAsyncFunction", ClassBlockClosing, 0, 0, 0).closing(BlockKindFunction),
	OpcodeEndIf:                meta("EndIf", ClassBlockClosing, 0, 0, 0).closing(BlockKindIf, BlockKindElse),
	OpcodeEndElse:              meta("EndElse", ClassBlockClosing, 0, 0, 0).closing(BlockKindElse),
	OpcodeEndForLoop:           meta("EndForLoop", ClassBlockClosing, 0, 0, 0).closing(BlockKindForLoop),
	OpcodeEndWhileLoop:         meta("EndWhileLoop", ClassBlockClosing, 0, 0, 0).closing(BlockKindWhileLoop),
	OpcodeEndDoWhileLoop:       meta("EndDoWhileLoop", ClassBlockClosing, 1, 0, 0).closing(BlockKindDoWhileLoop),
	OpcodeEndForInLoop:         meta("EndForInLoop", ClassBlockClosing, 0, 0, 0).closing(BlockKindForInLoop),
	OpcodeEndForOfLoop:         meta("EndForOfLoop", ClassBlockClosing, 0, 0, 0).closing(BlockKindForOfLoop),
	OpcodeEndSwitch:            meta("EndSwitch", ClassBlockClosing, 0, 0, 0).closing(BlockKindSwitch),
	OpcodeEndSwitchCase:        meta("EndSwitchCase", ClassBlockClosing, 0, 0, 0).closing(BlockKindSwitchCase),
	OpcodeEndSwitchDefault:     meta("EndSwitchDefault", ClassBlockClosing, 0, 0, 0).closing(BlockKindSwitchDefault),
	OpcodeEndTry:               meta("EndTry", ClassBlockClosing, 0, 0, 0).closing(BlockKindTry, BlockKindCatch, BlockKindFinally),
	OpcodeEndCatch:             meta("EndCatch", ClassBlockClosing, 0, 0, 0).closing(BlockKindCatch),
	OpcodeEndFinally:           meta("EndFinally", ClassBlockClosing, 0, 0, 0).closing(BlockKindFinally),
	OpcodeEndClassDefinition:   meta("EndClassDefinition", ClassBlockClosing, 0, 0, 0).closing(BlockKindClassDefinition),
	OpcodeEndWith:              meta("EndWith", ClassBlockClosing, 0, 0, 0).closing(BlockKindWith),
	OpcodeEndObjectLiteral:     meta("EndObjectLiteral", ClassBlockClosing, 0, 0, 0).closing(BlockKindObjectLiteral),
	OpcodeEndBlockStatement:    meta("EndBlockStatement", ClassBlockClosing, 0, 0, 0).closing(BlockKindFunction),

	OpcodeCreateNamedVariable: meta("CreateNamedVariable", ClassValueCreating, 0, 1, 0),

	// ---------------- Wasm value-creating ----------------
	OpcodeWasmConstI32:     meta("WasmConstI32", ClassValueCreating, 0, 1, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmConstI64:     meta("WasmConstI64", ClassValueCreating, 0, 1, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmConstF32:     meta("WasmConstF32", ClassValueCreating, 0, 1, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmConstF64:     meta("WasmConstF64", ClassValueCreating, 0, 1, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmLocalGet:     meta("WasmLocalGet", ClassValueCreating, 0, 1, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmGlobalGet:    meta("WasmGlobalGet", ClassValueCreating, 0, 1, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmNumericInstr: meta("WasmNumericInstr", ClassValueCreating, -1, 1, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmCall:         meta("WasmCall", ClassValueCreating, -1, 1, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmCallIndirect: meta("WasmCallIndirect", ClassValueCreating, -1, 1, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmLoad:         meta("WasmLoad", ClassValueCreating, 1, 1, 0).withContext(ContextWasmFunction, 0),

	// ---------------- Wasm effectful ----------------
	OpcodeWasmLocalSet:    meta("WasmLocalSet", ClassEffectful, 1, 0, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmLocalTee:    meta("WasmLocalTee", ClassEffectful, 1, 1, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmGlobalSet:   meta("WasmGlobalSet", ClassEffectful, 1, 0, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmStore:       meta("WasmStore", ClassEffectful, 2, 0, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmDrop:        meta("WasmDrop", ClassEffectful, 1, 0, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmReturn:      meta("WasmReturn", ClassEffectful, -1, 0, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmUnreachable: meta("WasmUnreachable", ClassEffectful, 0, 0, 0).withContext(ContextWasmFunction, 0),
	OpcodeWasmBr:          meta("WasmBr", ClassEffectful, 0, 0, 0).withContext(ContextWasmBlock, 0),
	OpcodeWasmBrIf:        meta("WasmBrIf", ClassEffectful, 1, 0, 0).withContext(ContextWasmBlock, 0),

	// ---------------- Wasm block-opening ----------------
	OpcodeBeginWasmModule: meta("BeginWasmModule", ClassBlockOpening, 0, 0, 0).
		withContext(0, ContextWasm).opening(BlockKindWasmModule),
	OpcodeBeginWasmFunction: meta("BeginWasmFunction", ClassBlockOpening, 0, 1, -1).
		withContext(ContextWasm, ContextWasmFunction).opening(BlockKindWasmFunction),
	OpcodeBeginWasmBlock: meta("BeginWasmBlock", ClassBlockOpening, 0, 0, -1).
		withContext(ContextWasmFunction, ContextWasmBlock).opening(BlockKindWasmBlock),
	OpcodeBeginWasmLoop: meta("BeginWasmLoop", ClassBlockOpening, 0, 0, -1).
		withContext(ContextWasmFunction, ContextWasmBlock).opening(BlockKindWasmLoop),
	OpcodeBeginWasmIf: meta("BeginWasmIf", ClassBlockOpening, 1, 0, -1).
		withContext(ContextWasmFunction, ContextWasmBlock).opening(BlockKindWasmIf),
	OpcodeBeginWasmElse: meta("BeginWasmElse", ClassBlockOpening, 0, 0, -1).
		continuing(BlockKindWasmElse, BlockKindWasmIf),
	OpcodeBeginWasmTry: meta("BeginWasmTry", ClassBlockOpening, 0, 0, -1).
		withContext(ContextWasmFunction, ContextWasmBlock|ContextWasmTry).opening(BlockKindWasmTry),
	OpcodeBeginWasmCatch: meta("BeginWasmCatch", ClassBlockOpening, 0, 0, -1).
		continuing(BlockKindWasmCatch, BlockKindWasmTry),
	OpcodeBeginWasmTypeGroup: meta("BeginWasmTypeGroup", ClassBlockOpening, 0, 0, 0).
		withContext(ContextWasm, ContextWasmTypeGroup).opening(BlockKindWasmTypeGroup),
	OpcodeWasmDefineForwardReference: meta("WasmDefineForwardReference", ClassValueCreating, 0, 1, 0).
		withContext(ContextWasmTypeGroup, 0),

	// ---------------- Wasm block-closing ----------------
	OpcodeEndWasmModule:     meta("EndWasmModule", ClassBlockClosing, 0, 0, 0).closing(BlockKindWasmModule),
	OpcodeEndWasmFunction:   meta("EndWasmFunction", ClassBlockClosing, 0, 0, 0).closing(BlockKindWasmFunction),
	OpcodeEndWasmBlock:      meta("EndWasmBlock", ClassBlockClosing, 0, 0, 0).closing(BlockKindWasmBlock),
	OpcodeEndWasmLoop:       meta("EndWasmLoop", ClassBlockClosing, 0, 0, 0).closing(BlockKindWasmLoop),
	OpcodeEndWasmIf:         meta("EndWasmIf", ClassBlockClosing, 0, 0, 0).closing(BlockKindWasmIf, BlockKindWasmElse),
	OpcodeEndWasmElse:       meta("EndWasmElse", ClassBlockClosing, 0, 0, 0).closing(BlockKindWasmElse),
	OpcodeEndWasmTry:        meta("EndWasmTry", ClassBlockClosing, 0, 0, 0).closing(BlockKindWasmTry, BlockKindWasmCatch),
	OpcodeEndWasmCatch:      meta("EndWasmCatch", ClassBlockClosing, 0, 0, 0).closing(BlockKindWasmCatch),
	OpcodeEndWasmTypeGroup:  meta("EndWasmTypeGroup", ClassBlockClosing, 0, 0, 0).closing(BlockKindWasmTypeGroup),
}

// Meta exposes the static opcode metadata read-only, for use by Code.Check
// and the Builder; there is deliberately no mutable access.
func Meta(op Opcode) (numInputs, numOutputs, numInnerOutputs int, ok bool) {
	m, ok := opcodeMetas[op]
	if !ok {
		return 0, 0, 0, false
	}
	return m.numInputs, m.numOutputs, m.numInnerOutputs, true
}

// BlockInfo exposes op's block-matching and context metadata, for use
// by internal/builder's live Emit path (Code.Check re-derives the same
// facts by replaying a finished Code; Builder needs them incrementally
// as it emits).
func BlockInfo(op Opcode) (opensContext Context, opens BlockKind, closes []BlockKind, requiresContext Context, ok bool) {
	m, ok := opcodeMetas[op]
	if !ok {
		return 0, BlockKindNone, nil, 0, false
	}
	return m.opensContext, m.opens, m.closes, m.requiresContext, true
}
