package value

import (
	"testing"

	"github.com/jamesoh3928/lunacore/ast"
	"github.com/stretchr/testify/assert"
)

func TestClosureCellSelfReferenceAfterFill(t *testing.T) {
	cell := NewClosureCell()
	captured := map[string]Value{"self": cell}

	cell.Params = []string{"n"}
	cell.Body = &ast.Block{}
	cell.Captured = captured

	self, ok := captured["self"].(*Closure)
	if assert.True(t, ok) {
		assert.Same(t, cell, self, "the snapshot must keep pointing at the same struct that gets filled in")
		assert.Equal(t, []string{"n"}, self.Params)
	}
}

func TestNewClosureAssignsDistinctIdentities(t *testing.T) {
	a := NewClosure(nil, false, &ast.Block{}, nil, nil)
	b := NewClosure(nil, false, &ast.Block{}, nil, nil)
	assert.False(t, Equal(a, b))
	assert.True(t, Equal(a, a))
}
