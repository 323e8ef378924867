package interp

import (
	"testing"

	"github.com/jamesoh3928/lunacore/ast"
	"github.com/jamesoh3928/lunacore/lunaenv"
	"github.com/jamesoh3928/lunacore/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nameVar(n string) *ast.VarExpr { return &ast.VarExpr{Var: &ast.NameVar{Name: n}} }

func intLit(i int64) *ast.NumberExpr { return &ast.NumberExpr{Int: i} }

func binExpr(op ast.BinOp, l, r ast.Expression) *ast.BinaryExpr {
	return &ast.BinaryExpr{Op: op, Left: l, Right: r}
}

func printCall(exprs ...ast.Expression) *ast.ExprStmt {
	return &ast.ExprStmt{Call: &ast.FunctionCall{
		Target: nameVar("print"),
		Args:   &ast.ExprArgs{Exprs: exprs},
	}}
}

func newTestInterpreter() (*Interpreter, *TestPrinter) {
	p := &TestPrinter{}
	return New(Options{Printer: p}), p
}

// print(1 + 2 + 3); print("Hello, world!")
func TestArithmeticAndHelloWorld(t *testing.T) {
	it, printer := newTestInterpreter()
	env := lunaenv.New()

	block := &ast.Block{Statements: []ast.Statement{
		printCall(binExpr(ast.OpAdd, binExpr(ast.OpAdd, intLit(1), intLit(2)), intLit(3))),
		printCall(&ast.StringExpr{Value: "Hello, world!"}),
	}}

	_, err := it.Run(env, block)
	require.NoError(t, err)
	assert.Equal(t, []string{"6", "Hello, world!"}, printer.Lines)
}

// local function fact(n) if n<=1 then return 1 else return n*fact(n-1) end end
// print(fact(20))
func TestLocalRecursiveFactorial(t *testing.T) {
	it, printer := newTestInterpreter()
	env := lunaenv.New()

	n := nameVar("n")
	factBody := &ast.Block{Statements: []ast.Statement{
		&ast.IfStmt{
			Cond: binExpr(ast.OpLE, n, intLit(1)),
			Then: &ast.Block{ReturnStat: []ast.Expression{intLit(1)}},
			Else: &ast.Block{ReturnStat: []ast.Expression{
				binExpr(ast.OpMul, n, &ast.PrefixExpr{Prefix: &ast.CallExpr{Call: &ast.FunctionCall{
					Target: nameVar("fact"),
					Args:   &ast.ExprArgs{Exprs: []ast.Expression{binExpr(ast.OpSub, n, intLit(1))}},
				}}}),
			}},
		},
	}}

	block := &ast.Block{Statements: []ast.Statement{
		&ast.FunctionDeclStmt{Name: "fact", Params: ast.ParList{Names: []string{"n"}}, Body: factBody, Local: true},
		printCall(&ast.PrefixExpr{Prefix: &ast.CallExpr{Call: &ast.FunctionCall{
			Target: nameVar("fact"),
			Args:   &ast.ExprArgs{Exprs: []ast.Expression{intLit(20)}},
		}}}),
	}}

	_, err := it.Run(env, block)
	require.NoError(t, err)
	require.Len(t, printer.Lines, 1)
	assert.Equal(t, "2432902008176640000", printer.Lines[0])
}

// local a=1; local function f() return a end; a=2; print(f())
func TestClosureCapturesSnapshotAtDefinition(t *testing.T) {
	it, printer := newTestInterpreter()
	env := lunaenv.New()

	block := &ast.Block{Statements: []ast.Statement{
		&ast.AssignStmt{Targets: []ast.Var{&ast.NameVar{Name: "a"}}, Values: []ast.Expression{intLit(1)}, Local: true},
		&ast.FunctionDeclStmt{Name: "f", Body: &ast.Block{ReturnStat: []ast.Expression{nameVar("a")}}, Local: true},
		&ast.AssignStmt{Targets: []ast.Var{&ast.NameVar{Name: "a"}}, Values: []ast.Expression{intLit(2)}},
		printCall(&ast.PrefixExpr{Prefix: &ast.CallExpr{Call: &ast.FunctionCall{Target: nameVar("f"), Args: &ast.ExprArgs{}}}}),
	}}

	_, err := it.Run(env, block)
	require.NoError(t, err)
	require.Len(t, printer.Lines, 1)
	assert.Equal(t, "1", printer.Lines[0], "f closed over a snapshot of a taken before the later reassignment")
}

// for i=1,4 do print(i) end
func TestNumericForIteratesInclusiveRange(t *testing.T) {
	it, printer := newTestInterpreter()
	env := lunaenv.New()

	block := &ast.Block{Statements: []ast.Statement{
		&ast.NumericForStmt{
			Name:  "i",
			Start: intLit(1),
			Stop:  intLit(4),
			Body:  &ast.Block{Statements: []ast.Statement{printCall(nameVar("i"))}},
		},
	}}

	_, err := it.Run(env, block)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, printer.Lines)
}

// local i=0; repeat i=i+1; if i==3 then break end until false; print(i)
func TestRepeatUntilBreak(t *testing.T) {
	it, printer := newTestInterpreter()
	env := lunaenv.New()

	block := &ast.Block{Statements: []ast.Statement{
		&ast.AssignStmt{Targets: []ast.Var{&ast.NameVar{Name: "i"}}, Values: []ast.Expression{intLit(0)}, Local: true},
		&ast.RepeatStmt{
			Body: &ast.Block{Statements: []ast.Statement{
				&ast.AssignStmt{Targets: []ast.Var{&ast.NameVar{Name: "i"}}, Values: []ast.Expression{binExpr(ast.OpAdd, nameVar("i"), intLit(1))}},
				&ast.IfStmt{
					Cond: binExpr(ast.OpEq, nameVar("i"), intLit(3)),
					Then: &ast.Block{Statements: []ast.Statement{&ast.BreakStmt{}}},
				},
			}},
			Cond: &ast.BoolExpr{Value: false},
		},
		printCall(nameVar("i")),
	}}

	_, err := it.Run(env, block)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, printer.Lines)
}

// local f = function() return 10, 20 end; local t = {1, f()}; print(#t)
func TestMultiValueSpliceIntoLastTableField(t *testing.T) {
	it, printer := newTestInterpreter()
	env := lunaenv.New()

	multi := &ast.FunctionDefExpr{Body: &ast.Block{ReturnStat: []ast.Expression{intLit(10), intLit(20)}}}

	block := &ast.Block{Statements: []ast.Statement{
		&ast.AssignStmt{Targets: []ast.Var{&ast.NameVar{Name: "f"}}, Values: []ast.Expression{multi}, Local: true},
		&ast.AssignStmt{Targets: []ast.Var{&ast.NameVar{Name: "t"}}, Values: []ast.Expression{&ast.TableExpr{
			Fields: []ast.Field{
				&ast.ItemField{Value: intLit(1)},
				&ast.ItemField{Value: &ast.PrefixExpr{Prefix: &ast.CallExpr{Call: &ast.FunctionCall{Target: nameVar("f"), Args: &ast.ExprArgs{}}}}},
			},
		}}, Local: true},
		printCall(&ast.UnaryExpr{Op: ast.OpLen, Operand: nameVar("t")}),
	}}

	_, err := it.Run(env, block)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, printer.Lines, "the trailing item field splices both of f's return values as elements 2 and 3")
}

func TestBreakOutsideLoopIsAnError(t *testing.T) {
	it, _ := newTestInterpreter()
	env := lunaenv.New()
	block := &ast.Block{Statements: []ast.Statement{&ast.BreakStmt{}}}
	_, err := it.Run(env, block)
	assert.Error(t, err)
}

func TestShortCircuitAndOr(t *testing.T) {
	it, _ := newTestInterpreter()
	env := lunaenv.New()

	v, err := it.evalFirst(env, binExpr(ast.OpAnd, &ast.BoolExpr{Value: false}, intLit(1)))
	require.NoError(t, err)
	assert.Equal(t, value.Bool(false), v)

	v, err = it.evalFirst(env, binExpr(ast.OpOr, intLit(5), intLit(1)))
	require.NoError(t, err)
	assert.Equal(t, value.Int(5), v)
}
