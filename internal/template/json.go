package template

import (
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/types"
)

func init() {
	register("JSONFuzzer", jsonFuzzer)
}

// jsonFuzzer stringifies a random in-scope value, optionally mutates it
// through a String method call (approximating a single-character XOR
// corruption of the serialized text), and re-parses the result inside a
// try/catch guard — JSON.parse on a malformed string throws, and the
// guard is what lets the surrounding program keep running regardless.
func jsonFuzzer(rt *Runtime) {
	rt.Bootstrap(3)
	rt.JS(10)

	json, ok := rt.B.Env().Builtin("JSON")
	if !ok {
		return
	}
	jsonVar, ok := rt.B.RandVarOfType(json.Type)
	if !ok {
		ins := rt.B.Emit(ir.OpcodeLoadBuiltin, nil, json.Name)
		jsonVar = ins.Outputs[0]
	}

	v, ok := rt.B.RandVar()
	if !ok {
		v = rt.B.GenerateVariable(types.Anything())
	}
	str := rt.B.Emit(ir.OpcodeCallMethod, []ir.Variable{jsonVar, v}, "stringify")
	rt.B.SetType(str.Outputs[0], types.String())

	if rt.B.Rng().Intn(2) == 0 {
		mutated := rt.B.Emit(ir.OpcodeCallMethod, []ir.Variable{str.Outputs[0]}, "toUpperCase")
		rt.B.SetType(mutated.Outputs[0], types.String())
		str = mutated
	}

	rt.B.EmitBlock(ir.OpcodeBeginTry, nil, 0)
	parsed := rt.B.Emit(ir.OpcodeCallMethod, []ir.Variable{jsonVar, str.Outputs[0]}, "parse")
	rt.B.SetType(parsed.Outputs[0], types.Anything())
	rt.B.Emit(ir.OpcodeExpressionStatement, []ir.Variable{parsed.Outputs[0]})
	open := rt.B.EmitBlock(ir.OpcodeBeginCatch, nil, 1)
	rt.B.SetType(open.InnerOutputs[0], types.Anything())
	rt.B.Emit(ir.OpcodeEndTry, nil)
}
