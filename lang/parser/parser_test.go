package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-lang/loop/lang/ast"
	"github.com/loop-lang/loop/lang/parser"
	"github.com/loop-lang/loop/lang/scanner"
)

func parseOne(t *testing.T, source string) ast.Node {
	t.Helper()
	toks, err := scanner.Tokenize(source)
	require.NoError(t, err)
	toks = scanner.CleanTokens(toks)
	tree, err := parser.Parse(toks)
	require.NoError(t, err)
	require.Len(t, tree.Children_, 1)
	return tree.Children_[0]
}

func parseAll(t *testing.T, source string) []ast.Node {
	t.Helper()
	toks, err := scanner.Tokenize(source)
	require.NoError(t, err)
	toks = scanner.CleanTokens(toks)
	tree, err := parser.Parse(toks)
	require.NoError(t, err)
	return tree.Children_
}

func TestParseArithmeticSplitsOnEarliestPriorityOperator(t *testing.T) {
	// SLASH (Div) is tried before STAR (Mul) in binaryPriority, so the `/`
	// becomes the outermost node even though it appears to the right of
	// `*` in the source: `7 * 3 / 2` parses as `(7 * 3) / 2`, not the
	// leftmost-token split `7 * (3 / 2)`.
	node := parseOne(t, "7 * 3 / 2")
	bin, ok := node.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "/", bin.Op.String())
	left, leftIsBin := bin.Left.(*ast.BinaryOp)
	require.True(t, leftIsBin)
	assert.Equal(t, "*", left.Op.String())
	_, rightIsLit := bin.Right.(*ast.Literal)
	assert.True(t, rightIsLit)
}

func TestParseParenthesizedGroupingOverridesOrder(t *testing.T) {
	node := parseOne(t, "(1 + 2) * 3")
	bin, ok := node.(*ast.BinaryOp)
	require.True(t, ok)
	_, leftIsBin := bin.Left.(*ast.BinaryOp)
	assert.True(t, leftIsBin)
}

func TestParseUnaryMinusNotMistakenForBinary(t *testing.T) {
	node := parseOne(t, "-x + 1")
	bin, ok := node.(*ast.BinaryOp)
	require.True(t, ok)
	unary, ok := bin.Left.(*ast.UnaryOp)
	require.True(t, ok)
	_, identOk := unary.Operand.(*ast.Identifier)
	assert.True(t, identOk)
}

func TestParseMultipleStatementsDoNotMerge(t *testing.T) {
	nodes := parseAll(t, "x := 1\ny := 2")
	require.Len(t, nodes, 2)
	_, ok0 := nodes[0].(*ast.VariableDeclarationAssignment)
	_, ok1 := nodes[1].(*ast.VariableDeclarationAssignment)
	assert.True(t, ok0)
	assert.True(t, ok1)
}

func TestParseFnDeclarationThenCallDoNotMerge(t *testing.T) {
	nodes := parseAll(t, "fn add(a: i32, b: i32) -> i32 { ret a + b }\nx := add(1,2)")
	require.Len(t, nodes, 2)
	_, ok0 := nodes[0].(*ast.FnDeclaration)
	require.True(t, ok0)
	decl, ok1 := nodes[1].(*ast.VariableDeclarationAssignment)
	require.True(t, ok1)
	call, ok := decl.Expr.(*ast.FnCall)
	require.True(t, ok)
	assert.Equal(t, "add", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestParseDuplicateParamNameIsError(t *testing.T) {
	toks, err := scanner.Tokenize("fn bad(a: i32, a: i32) { ret a }")
	require.NoError(t, err)
	toks = scanner.CleanTokens(toks)
	_, err = parser.Parse(toks)
	assert.Error(t, err)
}

func TestParseIfElifElseChain(t *testing.T) {
	node := parseOne(t, "if x { 1 } elif y { 2 } else { 3 }")
	cond, ok := node.(*ast.Conditional)
	require.True(t, ok)
	require.NotNil(t, cond.Next)
	require.NotNil(t, cond.Next.Next)
	assert.True(t, cond.Next.Next.IsElse)
}

func TestParseIfFollowedByUnrelatedStatement(t *testing.T) {
	nodes := parseAll(t, "if x { 1 }\ny := 2")
	require.Len(t, nodes, 2)
	_, ok0 := nodes[0].(*ast.Conditional)
	_, ok1 := nodes[1].(*ast.VariableDeclarationAssignment)
	assert.True(t, ok0)
	assert.True(t, ok1)
}

func TestParseForRangeLoop(t *testing.T) {
	node := parseOne(t, "for i in 0..10 { dbg i }")
	forNode, ok := node.(*ast.For)
	require.True(t, ok)
	assert.Equal(t, "i", forNode.Var)
	require.NotNil(t, forNode.Range)
}

func TestParseWhileLoop(t *testing.T) {
	node := parseOne(t, "while x { x = x - 1 }")
	_, ok := node.(*ast.While)
	assert.True(t, ok)
}

func TestParseDestructuringDeclaration(t *testing.T) {
	node := parseOne(t, "let (a, b): (i32, i32) = (1, 2)")
	decl, ok := node.(*ast.VariableDeclarationAssignment)
	require.True(t, ok)
	assert.True(t, decl.Names.IsList())
	assert.True(t, decl.Mutable == false)
}

func TestParseCompoundAssignment(t *testing.T) {
	node := parseOne(t, "x += 1")
	assign, ok := node.(*ast.VariableAssignment)
	require.True(t, ok)
	bin, ok := assign.Expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op.String())
}

func TestParseNamedFunctionArgs(t *testing.T) {
	nodes := parseAll(t, "fn f(a: i32, b: i32) -> i32 { ret a }\nf(b: 1, a: 2)")
	require.Len(t, nodes, 2)
	call, ok := nodes[1].(*ast.FnCall)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "b", call.Args[0].Name)
	assert.Equal(t, "a", call.Args[1].Name)
}
