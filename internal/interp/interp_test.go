package interp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-lang/loop/internal/config"
	"github.com/loop-lang/loop/internal/interp"
	"github.com/loop-lang/loop/lang/value"
)

func newTestInterp() *interp.Interp {
	return interp.New(config.Config{MaxInterpolationDepth: 8}, &bytes.Buffer{})
}

func TestEvalArithmeticFollowsBinaryPriorityOrder(t *testing.T) {
	// Add is tried before Mul in binaryPriority (it is the original
	// evaluator's per-operator order, not a conventional precedence
	// table), so `1 + 2 * 3` splits on `+` first: 1 + (2 * 3) = 7.
	ip := newTestInterp()
	v, err := ip.Eval("1 + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, value.Int(7), v)
}

func TestEvalParenthesizedGrouping(t *testing.T) {
	ip := newTestInterp()
	v, err := ip.Eval("(1 + 2) * 3")
	require.NoError(t, err)
	assert.Equal(t, value.Int(9), v)
}

func TestEvalDivBeforeMulInSharedExpr(t *testing.T) {
	// Div is tried before Mul: `7 * 3 / 2` splits on `/` first, giving
	// (7 * 3) / 2 = 10, not the leftmost-token split 7 * (3 / 2) = 7.
	ip := newTestInterp()
	v, err := ip.Eval("7 * 3 / 2")
	require.NoError(t, err)
	assert.Equal(t, value.Int(10), v)
}

func TestEvalPersistsAcrossCalls(t *testing.T) {
	ip := newTestInterp()
	_, err := ip.Eval("mut x: i32 = 1")
	require.NoError(t, err)
	v, err := ip.Eval("x = x + 1\nx")
	require.NoError(t, err)
	assert.Equal(t, value.Int(2), v)
}

func TestEvalTypedBoundsError(t *testing.T) {
	ip := newTestInterp()
	_, err := ip.Eval("x: u8 = 300")
	require.Error(t, err)
}

func TestGetTypeIntrospection(t *testing.T) {
	ip := newTestInterp()
	_, err := ip.Eval("x: i32 = 5")
	require.NoError(t, err)
	typ, err := ip.GetType("x")
	require.NoError(t, err)
	assert.Equal(t, value.I32Type.Kind, typ.Kind)
}

func TestHeapSnapshotReflectsBindings(t *testing.T) {
	ip := newTestInterp()
	_, err := ip.Eval("x := 1\ny := 2")
	require.NoError(t, err)
	snap := ip.HeapSnapshot()
	assert.Len(t, snap, 2)
}

func TestTokenizeAndCleanTokens(t *testing.T) {
	ip := newTestInterp()
	toks, err := ip.Tokenize("x := 1 -- comment\n")
	require.NoError(t, err)
	cleaned := ip.CleanTokens(toks)
	assert.Less(t, len(cleaned), len(toks))
}

func TestParseStringInterpolationCallback(t *testing.T) {
	ip := newTestInterp()
	ev, err := ip.ParseString("1 + 1")
	require.NoError(t, err)
	require.NotNil(t, ev)
}
