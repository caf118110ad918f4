package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loop-lang/loop/lang/ast"
	"github.com/loop-lang/loop/lang/value"
)

func tree() ast.Node {
	return &ast.BinaryOp{
		Left:  &ast.Literal{Value: value.Int(1)},
		Right: &ast.BinaryOp{Left: &ast.Literal{Value: value.Int(2)}, Right: &ast.Literal{Value: value.Int(3)}},
	}
}

func TestWalkVisitsEveryNodeEnterThenExit(t *testing.T) {
	var events []string
	var visit ast.VisitorFunc
	visit = func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		name := "Literal"
		if _, ok := n.(*ast.BinaryOp); ok {
			name = "BinaryOp"
		}
		if dir == ast.VisitEnter {
			events = append(events, "enter:"+name)
		} else {
			events = append(events, "exit:"+name)
		}
		return visit
	}
	ast.Walk(visit, tree())

	// Root BinaryOp enters first and exits last; every leaf enters and
	// exits before its parent's own exit is recorded.
	assert.Equal(t, "enter:BinaryOp", events[0])
	assert.Equal(t, "exit:BinaryOp", events[len(events)-1])
	assert.Equal(t, 10, len(events)) // 5 nodes (3 literals + 2 BinaryOp), enter+exit each
}

func TestWalkSkipsChildrenWhenVisitorReturnsNil(t *testing.T) {
	var visited []ast.Node
	root := tree()
	ast.Walk(ast.VisitorFunc(func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		if dir != ast.VisitEnter {
			return nil
		}
		visited = append(visited, n)
		if n == root {
			return nil // skip descending into root's children entirely
		}
		return nil
	}), root)

	assert.Len(t, visited, 1)
	assert.Same(t, root, visited[0])
}

func TestWalkNilNodeIsNoOp(t *testing.T) {
	called := false
	ast.Walk(ast.VisitorFunc(func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		called = true
		return nil
	}), nil)
	assert.False(t, called)
}
