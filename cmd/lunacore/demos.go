package main

import "github.com/jamesoh3928/lunacore/ast"

// There is no concrete-syntax parser in this module. Lacking one, the
// demo driver below builds a handful of representative programs'
// ASTs directly, in Go, the same way this repo's own tests construct
// ASTs to exercise the evaluator.

func callStmt(target ast.PrefixExp, exprs ...ast.Expression) *ast.ExprStmt {
	return &ast.ExprStmt{Call: &ast.FunctionCall{Target: target, Args: &ast.ExprArgs{Exprs: exprs}}}
}

func callExpr(target ast.PrefixExp, exprs ...ast.Expression) *ast.CallExpr {
	return &ast.CallExpr{Call: &ast.FunctionCall{Target: target, Args: &ast.ExprArgs{Exprs: exprs}}}
}

func name(n string) *ast.VarExpr { return &ast.VarExpr{Var: &ast.NameVar{Name: n}} }

func str(s string) *ast.StringExpr { return &ast.StringExpr{Value: s} }

func integer(i int64) *ast.NumberExpr { return &ast.NumberExpr{Int: i} }

func bin(op ast.BinOp, l, r ast.Expression) *ast.BinaryExpr {
	return &ast.BinaryExpr{Op: op, Left: l, Right: r}
}

func printName() ast.PrefixExp { return name("print") }

// demoArithmeticAndHello builds scenario 1:
//
//	print(1 + 2 + 3); print("Hello, world!")
func demoArithmeticAndHello() *ast.Block {
	sum := bin(ast.OpAdd, bin(ast.OpAdd, integer(1), integer(2)), integer(3))
	return &ast.Block{Statements: []ast.Statement{
		callStmt(printName(), sum),
		callStmt(printName(), str("Hello, world!")),
	}}
}

// demoFactorial builds scenario 2:
//
//	local function fact(n)
//	  if n <= 1 then return 1 else return n * fact(n-1) end
//	end
//	print(fact(20))
func demoFactorial() *ast.Block {
	n := name("n")
	factBody := &ast.Block{Statements: []ast.Statement{
		&ast.IfStmt{
			Cond: bin(ast.OpLE, n, integer(1)),
			Then: &ast.Block{ReturnStat: []ast.Expression{integer(1)}},
			Else: &ast.Block{ReturnStat: []ast.Expression{
				bin(ast.OpMul, n, callExpr(name("fact"), bin(ast.OpSub, n, integer(1)))),
			}},
		},
	}}
	factDecl := &ast.FunctionDeclStmt{
		Name:   "fact",
		Params: ast.ParList{Names: []string{"n"}},
		Body:   factBody,
		Local:  true,
	}
	return &ast.Block{Statements: []ast.Statement{
		factDecl,
		callStmt(printName(), callExpr(name("fact"), integer(20))),
	}}
}

// demoNumericFor builds scenario 3:
//
//	for i=1,4 do print(i) end
//	print("Loop ended")
func demoNumericFor() *ast.Block {
	return &ast.Block{Statements: []ast.Statement{
		&ast.NumericForStmt{
			Name:  "i",
			Start: integer(1),
			Stop:  integer(4),
			Body: &ast.Block{Statements: []ast.Statement{
				callStmt(printName(), name("i")),
			}},
		},
		callStmt(printName(), str("Loop ended")),
	}}
}

// demoClosureCapture builds scenario 4:
//
//	local a=1; local function f() return a end; a=2; print(f())
func demoClosureCapture() *ast.Block {
	return &ast.Block{Statements: []ast.Statement{
		&ast.AssignStmt{Targets: []ast.Var{&ast.NameVar{Name: "a"}}, Values: []ast.Expression{integer(1)}, Local: true},
		&ast.FunctionDeclStmt{Name: "f", Body: &ast.Block{ReturnStat: []ast.Expression{name("a")}}, Local: true},
		&ast.AssignStmt{Targets: []ast.Var{&ast.NameVar{Name: "a"}}, Values: []ast.Expression{integer(2)}},
		callStmt(printName(), callExpr(name("f"))),
	}}
}

// demoRepeatBreak builds scenario 6:
//
//	local i=0; repeat i=i+1; if i==3 then break end until false; print(i)
func demoRepeatBreak() *ast.Block {
	return &ast.Block{Statements: []ast.Statement{
		&ast.AssignStmt{Targets: []ast.Var{&ast.NameVar{Name: "i"}}, Values: []ast.Expression{integer(0)}, Local: true},
		&ast.RepeatStmt{
			Body: &ast.Block{Statements: []ast.Statement{
				&ast.AssignStmt{Targets: []ast.Var{&ast.NameVar{Name: "i"}}, Values: []ast.Expression{bin(ast.OpAdd, name("i"), integer(1))}},
				&ast.IfStmt{
					Cond: bin(ast.OpEq, name("i"), integer(3)),
					Then: &ast.Block{Statements: []ast.Statement{&ast.BreakStmt{}}},
				},
			}},
			Cond: &ast.BoolExpr{Value: false},
		},
		callStmt(printName(), name("i")),
	}}
}

var demos = map[string]func() *ast.Block{
	"hello":     demoArithmeticAndHello,
	"factorial": demoFactorial,
	"for":       demoNumericFor,
	"closure":   demoClosureCapture,
	"repeat":    demoRepeatBreak,
}
