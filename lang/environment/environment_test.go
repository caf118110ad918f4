package environment_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-lang/loop/lang/environment"
	"github.com/loop-lang/loop/lang/parser"
	"github.com/loop-lang/loop/lang/value"
)

func eval(t *testing.T, source string) value.Value {
	t.Helper()
	env := environment.New(parser.ParseString, 8, &bytes.Buffer{}, false)
	tree, err := parser.ParseString(source)
	require.NoError(t, err)
	v, err := tree.Eval(env)
	require.NoError(t, err)
	return v
}

func evalErr(t *testing.T, source string) error {
	t.Helper()
	env := environment.New(parser.ParseString, 8, &bytes.Buffer{}, false)
	tree, err := parser.ParseString(source)
	require.NoError(t, err)
	_, err = tree.Eval(env)
	return err
}

func TestFunctionCallPrefixNameResolution(t *testing.T) {
	v := eval(t, "fn add(a: i32, b: i32) -> i32 { ret a + b }\na1 := 1\nb1 := 2\nadd(a1, b1)")
	assert.Equal(t, value.Int(3), v)
}

func TestImmutableReassignmentIsError(t *testing.T) {
	err := evalErr(t, "x := 1\nx = 2")
	require.Error(t, err)
	_, ok := err.(*value.CannotAssignToImmutableError)
	assert.True(t, ok)
}

func TestMutableReassignmentSucceeds(t *testing.T) {
	v := eval(t, "mut x := 1\nx = 2\nx")
	assert.Equal(t, value.Int(2), v)
}

func TestBreakExitsLoop(t *testing.T) {
	v := eval(t, "mut i := 0\nloop { i = i + 1\nif i == 3 { break } }\ni")
	assert.Equal(t, value.Int(3), v)
}

func TestContinueSkipsRestOfBody(t *testing.T) {
	v := eval(t, "mut i := 0\nmut sum := 0\nwhile i < 5 { i = i + 1\nif i == 3 { continue }\nsum = sum + i }\nsum")
	assert.Equal(t, value.Int(12), v)
}

func TestForLoopRangeSum(t *testing.T) {
	v := eval(t, "mut sum := 0\nfor i in 0..5 { sum = sum + i }\nsum")
	assert.Equal(t, value.Int(10), v)
}

func TestDestructuringDeclaration(t *testing.T) {
	v := eval(t, "let (a, b) := (1, 2)\na + b")
	assert.Equal(t, value.Int(3), v)
}

func TestStringInterpolation(t *testing.T) {
	v := eval(t, `x := 2
"value is {x + 1}"`)
	str, ok := v.(value.String)
	require.True(t, ok)
	assert.Equal(t, "value is 3", str.Text)
}

func TestVariableNotFoundError(t *testing.T) {
	err := evalErr(t, "y")
	_, ok := err.(*value.VariableNotFoundError)
	assert.True(t, ok)
}
