package js_test

import (
	"testing"

	"github.com/fuzzil-dev/fuzzil/internal/builder"
	"github.com/fuzzil-dev/fuzzil/internal/dispatch"
	"github.com/fuzzil-dev/fuzzil/internal/environment"
	"github.com/fuzzil-dev/fuzzil/internal/generators/js"
	"github.com/fuzzil-dev/fuzzil/internal/ir"
	"github.com/stretchr/testify/require"
)

func newEngine(seed int64) (*dispatch.Engine, *builder.Builder) {
	b := builder.New(seed, environment.Default())
	return dispatch.New(b, js.Registry()), b
}

func TestRegistry_bootstrapProducesWellFormedCode(t *testing.T) {
	e, b := newEngine(0)
	emitted := e.Bootstrap(3)
	require.Greater(t, emitted, 0)
	require.NoError(t, b.Code().Check())
}

func TestRegistry_buildFiftyInstructionsFromEmptyScope(t *testing.T) {
	e, b := newEngine(0)
	e.Bootstrap(3)
	e.Build(50)
	require.GreaterOrEqual(t, len(b.Code()), 50)
	require.NoError(t, b.Code().Check())

	var sawLoadInt bool
	for _, ins := range b.Code() {
		if ins.Kind == ir.OpcodeLoadInt {
			sawLoadInt = true
			break
		}
	}
	require.True(t, sawLoadInt)
}

func TestRegistry_isDeterministicForAGivenSeed(t *testing.T) {
	e1, b1 := newEngine(42)
	e1.Bootstrap(3)
	e1.Build(80)

	e2, b2 := newEngine(42)
	e2.Bootstrap(3)
	e2.Build(80)

	require.Equal(t, b1.Code(), b2.Code())
}

func TestRegistry_logsDescriptorsWithoutAWeightOverride(t *testing.T) {
	reg := js.Registry()
	weights := js.Weights()
	for _, d := range reg.Descriptors() {
		if _, ok := weights[d.Name]; !ok {
			t.Logf("descriptor %s has no explicit weight override, defaulting to 1", d.Name)
		}
	}
}

func TestRegistry_spreadArrayGeneratorSelfDisablesInConservativeMode(t *testing.T) {
	b := builder.New(7, environment.Default())
	e := dispatch.New(b, js.Registry())
	e.Bootstrap(3)
	e.Build(200)
	require.NoError(t, b.Code().Check())
	require.False(t, b.Aggressive())

	for _, ins := range b.Code() {
		require.NotEqual(t, ir.OpcodeSpreadArray, ins.Kind)
	}
}
