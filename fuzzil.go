// Package fuzzil is the public facade over the program synthesis core:
// a Generator assembles typed IL programs (JavaScript statements and
// expressions, plus an embedded WebAssembly subsystem) by running one
// of the named program templates against a seed. Everything an upstream
// lifter, mutation engine, or corpus/coverage loop needs is exposed
// here and in the ir subpackage; generation internals live under
// internal/ and are not part of this package's API surface, mirroring
// how the teacher repo keeps its compiler/runtime internals under
// internal/ behind a root Runtime/CompiledModule facade.
package fuzzil

import (
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/fuzzil-dev/fuzzil/internal/template"
)

// Program is the sealed unit handed to a lifter: an instruction stream
// plus the metadata describing how it was produced. It is a type alias
// for ir.Program so that callers who only import the root package never
// need to reference internal/ir directly, while ir.Serialize/Deserialize
// remain the one gob-based round-trip format for both.
type Program = ir.Program

// Metadata is an alias for ir.Metadata; see Program.
type Metadata = ir.Metadata

// Generator produces Programs by running a named template against a
// Config's environment catalog.
type Generator struct {
	cfg *Config
}

// New constructs a Generator. A nil cfg is equivalent to NewConfig().
func New(cfg *Config) *Generator {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Generator{cfg: cfg}
}

// TemplateNames returns every registered program template name (e.g.
// "Codegen50", "JSPI"), in no particular order.
func TemplateNames() []string {
	return template.Names()
}

// Build runs the named template against seed, returning the resulting
// Program. Re-running the same template name with the same seed and
// Config reproduces an identical Program (P4): the builder's PRNG is
// seeded exactly once from seed, and neither the generator registries
// nor the environment catalog carry any mutable state between calls.
func (g *Generator) Build(templateName string, seed int64) (Program, error) {
	return template.Generate(templateName, seed, g.cfg.env)
}
