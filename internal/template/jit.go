package template

import (
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

// repeatCount is how many times JIT templates call their target
// function(s) in a tight loop to trigger an optimizing compiler's
// hot-function threshold; chosen well above any plausible real
// threshold so the resulting program reliably exercises it.
const repeatCount = 150

func init() {
	register("JIT1Function", func(rt *Runtime) { jitFunctions(rt, 1) })
	register("JIT2Functions", func(rt *Runtime) { jitFunctions(rt, 2) })
	register("JITTrickyFunction", jitTrickyFunction)
}

// jitFunctions defines n plain functions, calls all of them repeatCount
// times in a for loop to trigger optimizing compilation, then calls
// them once more outside the loop to exercise the optimized path
// (and, on a tiering engine, re-optimization).
func jitFunctions(rt *Runtime, n int) {
	rt.Bootstrap(3)

	funcs := make([]ir.Variable, n)
	for i := range funcs {
		open := rt.B.EmitBlock(ir.OpcodeBeginPlainFunction, nil, 0)
		rt.JS(15)
		if v, ok := rt.B.RandVar(); ok {
			rt.B.Emit(ir.OpcodeReturn, []ir.Variable{v})
		}
		rt.B.Emit(ir.OpcodeEndPlainFunction, nil)
		funcs[i] = open.Outputs[0]
	}

	bound := rt.B.Emit(ir.OpcodeLoadInt, nil, int64(repeatCount))
	loop := rt.B.EmitBlock(ir.OpcodeBeginForLoop, []ir.Variable{bound.Outputs[0]}, 1)
	rt.B.SetType(loop.InnerOutputs[0], types.Integer())
	for _, f := range funcs {
		rt.B.Emit(ir.OpcodeCallFunctionVoid, []ir.Variable{f})
	}
	rt.B.Emit(ir.OpcodeEndForLoop, nil)

	for _, f := range funcs {
		rt.B.Emit(ir.OpcodeCallFunctionVoid, []ir.Variable{f})
	}
}

// jitTrickyFunction defines a function whose body branches on its loop
// index argument (== a fixed N), then calls it repeatCount times inside
// a for loop so the branch taken only on one specific iteration forces
// a deoptimization of whatever speculative path the optimizer settled
// on for the common case.
func jitTrickyFunction(rt *Runtime) {
	rt.Bootstrap(3)

	open := rt.B.EmitBlock(ir.OpcodeBeginPlainFunction, nil, 1)
	param := open.InnerOutputs[0]
	rt.B.SetType(param, types.Integer())

	trigger := rt.B.Emit(ir.OpcodeLoadInt, nil, int64(97))
	cmp := rt.B.Emit(ir.OpcodeCompareOperation, []ir.Variable{param, trigger.Outputs[0]}, "===")
	rt.B.SetType(cmp.Outputs[0], types.Boolean())

	rt.B.EmitBlock(ir.OpcodeBeginIf, []ir.Variable{cmp.Outputs[0]}, 0)
	rt.JS(8)
	rt.B.EmitBlock(ir.OpcodeBeginElse, nil, 0)
	rt.JS(8)
	rt.B.Emit(ir.OpcodeEndIf, nil)

	if v, ok := rt.B.RandVar(); ok {
		rt.B.Emit(ir.OpcodeReturn, []ir.Variable{v})
	}
	rt.B.Emit(ir.OpcodeEndPlainFunction, nil)
	fn := open.Outputs[0]

	bound := rt.B.Emit(ir.OpcodeLoadInt, nil, int64(repeatCount))
	loop := rt.B.EmitBlock(ir.OpcodeBeginForLoop, []ir.Variable{bound.Outputs[0]}, 1)
	rt.B.SetType(loop.InnerOutputs[0], types.Integer())
	rt.B.Emit(ir.OpcodeCallFunctionVoid, []ir.Variable{fn, loop.InnerOutputs[0]})
	rt.B.Emit(ir.OpcodeEndForLoop, nil)
}
