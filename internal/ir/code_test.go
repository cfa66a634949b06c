package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCode_Check_simpleSequence exercises (P1): a flat sequence with no
// blocks, inputs always defined before use, outputs always fresh.
func TestCode_Check_simpleSequence(t *testing.T) {
	c := Code{
		{Kind: OpcodeLoadInt, Outputs: []Variable{0}, Imm0: 42},
		{Kind: OpcodeLoadInt, Outputs: []Variable{1}, Imm0: 1},
		{Kind: OpcodeBinaryOperation, Inputs: []Variable{0, 1}, Outputs: []Variable{2}},
	}
	require.NoError(t, c.Check())
}

func TestCode_Check_outOfScopeReference(t *testing.T) {
	c := Code{
		{Kind: OpcodeLoadInt, Outputs: []Variable{0}},
		{Kind: OpcodeBinaryOperation, Inputs: []Variable{0, 5}, Outputs: []Variable{1}},
	}
	err := c.Check()
	require.Error(t, err)
	var iv *InvariantViolation
	require.ErrorAs(t, err, &iv)
	require.Equal(t, "OutOfScopeInput", iv.Rule)
}

func TestCode_Check_duplicateOutput(t *testing.T) {
	c := Code{
		{Kind: OpcodeLoadInt, Outputs: []Variable{0}},
		{Kind: OpcodeLoadInt, Outputs: []Variable{0}},
	}
	err := c.Check()
	require.Error(t, err)
	var iv *InvariantViolation
	require.ErrorAs(t, err, &iv)
	require.Equal(t, "DuplicateDefinition", iv.Rule)
}

// TestCode_Check_functionScopeIsolation is boundary scenario 2: inner
// parameters are not visible after EndPlainFunction.
func TestCode_Check_functionScopeIsolation(t *testing.T) {
	good := Code{
		{Kind: OpcodeBeginPlainFunction, Outputs: []Variable{0}, InnerOutputs: []Variable{1}},
		{Kind: OpcodeReturn, Inputs: []Variable{1}},
		{Kind: OpcodeEndPlainFunction},
	}
	require.NoError(t, good.Check())

	bad := Code{
		{Kind: OpcodeBeginPlainFunction, Outputs: []Variable{0}, InnerOutputs: []Variable{1}},
		{Kind: OpcodeEndPlainFunction},
		{Kind: OpcodeExpressionStatement, Inputs: []Variable{1}},
	}
	err := bad.Check()
	require.Error(t, err)
	var iv *InvariantViolation
	require.ErrorAs(t, err, &iv)
	require.Equal(t, "OutOfScopeInput", iv.Rule)
}

func TestCode_Check_unbalancedBlocks(t *testing.T) {
	open := Code{
		{Kind: OpcodeBeginIf, Inputs: []Variable{}, Outputs: nil},
	}
	// give BeginIf a defined input
	v := Code{
		{Kind: OpcodeLoadBoolean, Outputs: []Variable{0}},
		{Kind: OpcodeBeginIf, Inputs: []Variable{0}},
	}
	_ = open
	err := v.Check()
	require.Error(t, err)
	var iv *InvariantViolation
	require.ErrorAs(t, err, &iv)
	require.Equal(t, "UnbalancedBlocks", iv.Rule)
}

// TestCode_Check_ifElse exercises the continuation opener discipline:
// BeginElse implicitly closes the If arm and opens the Else arm; EndIf
// closes whichever arm is open.
func TestCode_Check_ifElse(t *testing.T) {
	c := Code{
		{Kind: OpcodeLoadBoolean, Outputs: []Variable{0}},
		{Kind: OpcodeBeginIf, Inputs: []Variable{0}},
		{Kind: OpcodeLoadInt, Outputs: []Variable{1}},
		{Kind: OpcodeBeginElse},
		{Kind: OpcodeLoadInt, Outputs: []Variable{2}},
		{Kind: OpcodeEndIf},
	}
	require.NoError(t, c.Check())
}

func TestCode_Check_elseWithoutIf(t *testing.T) {
	c := Code{
		{Kind: OpcodeBeginElse},
	}
	err := c.Check()
	require.Error(t, err)
}

// TestCode_Check_switchBreakContext is boundary scenario 6: break inside
// switchCase maps to BreakSwitch and requires ContextSwitchCase; break
// inside a loop maps to BreakLoop and requires ContextLoop; neither
// applies outside both.
func TestCode_Check_switchBreakContext(t *testing.T) {
	inSwitch := Code{
		{Kind: OpcodeLoadInt, Outputs: []Variable{0}},
		{Kind: OpcodeBeginSwitch, Inputs: []Variable{0}},
		{Kind: OpcodeLoadInt, Outputs: []Variable{1}},
		{Kind: OpcodeBeginSwitchCase, Inputs: []Variable{1}},
		{Kind: OpcodeBreakSwitch},
		{Kind: OpcodeEndSwitchCase},
		{Kind: OpcodeEndSwitch},
	}
	require.NoError(t, inSwitch.Check())

	outside := Code{
		{Kind: OpcodeBreakSwitch},
	}
	require.Error(t, outside.Check())

	inLoop := Code{
		{Kind: OpcodeLoadBoolean, Outputs: []Variable{0}},
		{Kind: OpcodeBeginWhileLoop, Inputs: []Variable{0}},
		{Kind: OpcodeBreakLoop},
		{Kind: OpcodeEndWhileLoop},
	}
	require.NoError(t, inLoop.Check())
}

func TestCode_ContextAt(t *testing.T) {
	c := Code{
		{Kind: OpcodeLoadBoolean, Outputs: []Variable{0}},
		{Kind: OpcodeBeginWhileLoop, Inputs: []Variable{0}},
		{Kind: OpcodeBreakLoop},
		{Kind: OpcodeEndWhileLoop},
	}
	require.False(t, c.ContextAt(0).Has(ContextLoop))
	require.True(t, c.ContextAt(2).Has(ContextLoop))
	require.True(t, c.ContextAt(3).Has(ContextLoop))
	require.False(t, c.ContextAt(4).Has(ContextLoop))
}

func TestCode_TruncateAt_preservesBalance(t *testing.T) {
	c := Code{
		{Kind: OpcodeLoadBoolean, Outputs: []Variable{0}},
		{Kind: OpcodeBeginWhileLoop, Inputs: []Variable{0}},
		{Kind: OpcodeBreakLoop},
		{Kind: OpcodeEndWhileLoop},
		{Kind: OpcodeLoadInt, Outputs: []Variable{1}},
	}
	trunc, err := c.TruncateAt(2)
	require.NoError(t, err)
	require.NoError(t, trunc.Check())
	require.True(t, len(trunc) >= 4)
}

func TestCode_Splice_renumbers(t *testing.T) {
	base := Code{
		{Kind: OpcodeLoadInt, Outputs: []Variable{0}},
	}
	other := Code{
		{Kind: OpcodeLoadInt, Outputs: []Variable{0}},
		{Kind: OpcodeExpressionStatement, Inputs: []Variable{0}},
	}
	spliced, err := base.Splice(1, other, func(v Variable) Variable { return v + 100 })
	require.NoError(t, err)
	require.NoError(t, spliced.Check())
	require.Equal(t, Variable(100), spliced[1].Outputs[0])
	require.Equal(t, Variable(100), spliced[2].Inputs[0])
}

func TestSerialize_roundTrip(t *testing.T) {
	p := Program{
		Code: Code{
			{Kind: OpcodeLoadInt, Outputs: []Variable{0}, Imm0: 7},
			{Kind: OpcodeLoadString, Outputs: []Variable{1}, Str: "hi"},
		},
		Metadata: Metadata{TemplateName: "Codegen50", Seed: 42},
	}
	data, err := Serialize(p)
	require.NoError(t, err)
	got, err := Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, p, got)
}
