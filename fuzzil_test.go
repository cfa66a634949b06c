package fuzzil_test

import (
	"testing"

	"github.com/fuzzil-dev/fuzzil"
	"github.com/fuzzil-dev/fuzzil/internal/environment"
	"github.com/stretchr/testify/require"
)

func TestGenerator_buildProducesWellFormedCode(t *testing.T) {
	gen := fuzzil.New(nil)
	p, err := gen.Build("Codegen50", 1)
	require.NoError(t, err)
	require.NoError(t, p.Code.Check())
	require.Equal(t, "Codegen50", p.Metadata.TemplateName)
	require.Equal(t, int64(1), p.Metadata.Seed)
}

func TestGenerator_buildIsDeterministicForAGivenSeed(t *testing.T) {
	gen := fuzzil.New(nil)
	p1, err := gen.Build("Codegen50", 77)
	require.NoError(t, err)
	p2, err := gen.Build("Codegen50", 77)
	require.NoError(t, err)
	require.Equal(t, p1.Code, p2.Code)
}

func TestGenerator_buildUnknownTemplateErrors(t *testing.T) {
	gen := fuzzil.New(nil)
	_, err := gen.Build("NoSuchTemplate", 0)
	require.Error(t, err)
}

func TestNew_nilConfigDefaultsToNewConfig(t *testing.T) {
	gen := fuzzil.New(nil)
	_, err := gen.Build("Codegen50", 0)
	require.NoError(t, err)
}

func TestConfig_withEnvironmentIsHonoredByBuild(t *testing.T) {
	cfg := fuzzil.NewConfig().WithEnvironment(environment.Default())
	gen := fuzzil.New(cfg)
	p, err := gen.Build("Codegen50", 3)
	require.NoError(t, err)
	require.NotEmpty(t, p.Code)
}

func TestTemplateNames_includesEveryNamedTemplate(t *testing.T) {
	names := fuzzil.TemplateNames()
	require.Contains(t, names, "Codegen50")
	require.Contains(t, names, "WasmCodegen50")
	require.Contains(t, names, "JIT1Function")
	require.Contains(t, names, "JSPI")
	require.Contains(t, names, "JSONFuzzer")
}
