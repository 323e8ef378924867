package interp

import (
	"testing"

	"github.com/jamesoh3928/lunacore/ast"
	"github.com/jamesoh3928/lunacore/lunaenv"
	"github.com/jamesoh3928/lunacore/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// local a, b, c = 1, 2
func TestMultiAssignPadsMissingTargetsWithNil(t *testing.T) {
	it, _ := newTestInterpreter()
	env := lunaenv.New()

	stmt := &ast.AssignStmt{
		Targets: []ast.Var{&ast.NameVar{Name: "a"}, &ast.NameVar{Name: "b"}, &ast.NameVar{Name: "c"}},
		Values:  []ast.Expression{intLit(1), intLit(2)},
		Local:   true,
	}
	require.NoError(t, it.execAssign(env, stmt))

	assert.Equal(t, value.Int(1), env.Get("a"))
	assert.Equal(t, value.Int(2), env.Get("b"))
	assert.Equal(t, value.Nil{}, env.Get("c"))
}

// local a, b = f() where f returns 1, 2, 3 -- the last value's splice is
// truncated down to the number of targets.
func TestMultiAssignTruncatesExtraSplicedValues(t *testing.T) {
	it, _ := newTestInterpreter()
	env := lunaenv.New()

	multi := &ast.FunctionDefExpr{Body: &ast.Block{ReturnStat: []ast.Expression{intLit(1), intLit(2), intLit(3)}}}
	env.InsertLocal("f", mustEvalClosure(t, it, env, multi))

	stmt := &ast.AssignStmt{
		Targets: []ast.Var{&ast.NameVar{Name: "a"}, &ast.NameVar{Name: "b"}},
		Values: []ast.Expression{&ast.PrefixExpr{Prefix: &ast.CallExpr{Call: &ast.FunctionCall{
			Target: nameVar("f"), Args: &ast.ExprArgs{},
		}}}},
		Local: true,
	}
	require.NoError(t, it.execAssign(env, stmt))
	assert.Equal(t, value.Int(1), env.Get("a"))
	assert.Equal(t, value.Int(2), env.Get("b"))
}

func mustEvalClosure(t *testing.T, it *Interpreter, env *lunaenv.Env, e *ast.FunctionDefExpr) value.Value {
	t.Helper()
	vals, err := it.evalExpr(env, e)
	require.NoError(t, err)
	require.Len(t, vals, 1)
	return vals[0]
}

// t[1] = "x"; t.y = "z"
func TestIndexAndFieldAssignment(t *testing.T) {
	it, _ := newTestInterpreter()
	env := lunaenv.New()
	env.InsertLocal("t", value.NewTable())

	require.NoError(t, it.assignVar(env, &ast.IndexVar{Object: nameVar("t"), Key: intLit(1)}, value.Str("x")))
	require.NoError(t, it.assignVar(env, &ast.FieldVar{Object: nameVar("t"), Name: "y"}, value.Str("z")))

	table := env.Get("t").(*value.Table)
	assert.Equal(t, value.Str("x"), table.Get(value.Int(1)))
	assert.Equal(t, value.Str("z"), table.Get(value.Str("y")))
}

func TestNumericForRejectsFloatInitialValue(t *testing.T) {
	it, _ := newTestInterpreter()
	env := lunaenv.New()
	stmt := &ast.NumericForStmt{Name: "i", Start: &ast.NumberExpr{IsFloat: true, Float: 1.0}, Stop: intLit(3), Body: &ast.Block{}}
	_, err := it.execNumericFor(env, stmt)
	assert.Error(t, err)
}

func TestNumericForRejectsZeroStep(t *testing.T) {
	it, _ := newTestInterpreter()
	env := lunaenv.New()
	stmt := &ast.NumericForStmt{Name: "i", Start: intLit(1), Stop: intLit(3), Step: intLit(0), Body: &ast.Block{}}
	_, err := it.execNumericFor(env, stmt)
	assert.Error(t, err)
}

func TestLocalAssignTargetMustBeName(t *testing.T) {
	it, _ := newTestInterpreter()
	env := lunaenv.New()
	env.InsertLocal("t", value.NewTable())
	stmt := &ast.AssignStmt{
		Targets: []ast.Var{&ast.IndexVar{Object: nameVar("t"), Key: intLit(1)}},
		Values:  []ast.Expression{intLit(1)},
		Local:   true,
	}
	err := it.execAssign(env, stmt)
	assert.Error(t, err)
}
