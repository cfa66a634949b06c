package template_test

import (
	"testing"

	"github.com/fuzzil-dev/fuzzil/internal/environment"
	"github.com/fuzzil-dev/fuzzil/internal/template"
	"github.com/stretchr/testify/require"
)

func TestGenerate_everyRegisteredTemplateProducesWellFormedCode(t *testing.T) {
	for _, name := range template.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			p, err := template.Generate(name, 0, environment.Default())
			require.NoError(t, err)
			require.NoError(t, p.Code.Check())
			require.Equal(t, name, p.Metadata.TemplateName)
			require.NotEmpty(t, p.Code)
		})
	}
}

func TestGenerate_unknownTemplateNameErrors(t *testing.T) {
	_, err := template.Generate("NoSuchTemplate", 0, environment.Default())
	require.Error(t, err)
}

func TestGenerate_isDeterministicForAGivenSeed(t *testing.T) {
	p1, err := template.Generate("Codegen50", 123, environment.Default())
	require.NoError(t, err)
	p2, err := template.Generate("Codegen50", 123, environment.Default())
	require.NoError(t, err)
	require.Equal(t, p1.Code, p2.Code)
}

func TestGenerate_codegen50EmitsAtLeastFiftyInstructions(t *testing.T) {
	p, err := template.Generate("Codegen50", 0, environment.Default())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(p.Code), 50)
}
