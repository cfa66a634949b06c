package js

import "github.com/fuzzil-dev/fuzzil/internal/registry"

// Registry builds the primary (JS-domain) generator registry: value
// generators, expression/statement generators, and the recursive block
// generators for functions, conditionals, loops, try/catch and classes.
func Registry() *registry.Registry {
	var all []registry.Descriptor
	all = append(all, valueGenerators...)
	all = append(all, expressionGenerators...)
	all = append(all, statementGenerators...)
	all = append(all, blockGenerators...)
	return registry.New(all, Weights())
}

// Weights returns the default weight overrides for the JS registry:
// literals and the recursive control-flow generators are drawn more
// often than calls into builtins or class definitions, which tend to
// deepen the AST faster than they exercise new opcodes.
func Weights() map[string]int {
	return map[string]int{
		"IntegerGenerator":             8,
		"FloatGenerator":               4,
		"StringGenerator":              4,
		"BooleanGenerator":             4,
		"ArrayGenerator":               3,
		"PlainObjectGenerator":         2,
		"BinaryOperationGenerator":     6,
		"CompareOperationGenerator":    4,
		"ExpressionStatementGenerator": 5,
		"PlainFunctionGenerator":       2,
		"IfElseGenerator":              3,
		"ForLoopGenerator":             2,
		"WhileLoopGenerator":           2,
		"ClassDefinitionGenerator":     1,
		"TryCatchGenerator":            1,
		"WebAssemblyAPIGenerator":      1,
		"CreatePromiseGenerator":       2,
		"YieldGenerator":               2,
		"AsyncFunctionGenerator":       1,
		"GeneratorFunctionGenerator":   1,
	}
}
