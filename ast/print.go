package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a plain, indented text dump of an AST rooted at Block
// to w, in source order. Nested blocks, conditions, return lists and
// operator operands are expanded; assignment targets and values, call
// targets and arguments, numeric-for bounds, prefix expressions and
// table fields are summarised on one line and not expanded. Used
// behind the CLI's --ast flag.
func Print(w io.Writer, b *Block) {
	p := &printer{w: w}
	p.block(b, 0)
}

type printer struct {
	w io.Writer
}

func (p *printer) line(depth int, format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (p *printer) block(b *Block, depth int) {
	if b == nil {
		p.line(depth, "<nil block>")
		return
	}
	for _, s := range b.Statements {
		p.stmt(s, depth)
	}
	if b.ReturnStat != nil {
		p.line(depth, "return (%d values)", len(b.ReturnStat))
		for _, e := range b.ReturnStat {
			p.expr(e, depth+1)
		}
	}
}

func (p *printer) stmt(s Statement, depth int) {
	switch s := s.(type) {
	case *AssignStmt:
		p.line(depth, "Assign local=%v targets=%d values=%d", s.Local, len(s.Targets), len(s.Values))
	case *ExprStmt:
		p.line(depth, "ExprStmt")
	case *BreakStmt:
		p.line(depth, "Break")
	case *DoStmt:
		p.line(depth, "Do")
		p.block(s.Body, depth+1)
	case *WhileStmt:
		p.line(depth, "While")
		p.expr(s.Cond, depth+1)
		p.block(s.Body, depth+1)
	case *RepeatStmt:
		p.line(depth, "Repeat")
		p.block(s.Body, depth+1)
		p.expr(s.Cond, depth+1)
	case *IfStmt:
		p.line(depth, "If")
		p.expr(s.Cond, depth+1)
		p.block(s.Then, depth+1)
		for _, e := range s.ElseIfs {
			p.line(depth, "ElseIf")
			p.expr(e.Cond, depth+1)
			p.block(e.Body, depth+1)
		}
		if s.Else != nil {
			p.line(depth, "Else")
			p.block(s.Else, depth+1)
		}
	case *NumericForStmt:
		p.line(depth, "NumericFor name=%s", s.Name)
		p.block(s.Body, depth+1)
	case *GenericForStmt:
		p.line(depth, "GenericFor names=%v", s.Names)
		p.block(s.Body, depth+1)
	case *FunctionDeclStmt:
		p.line(depth, "FunctionDecl name=%s local=%v", s.Name, s.Local)
		p.block(s.Body, depth+1)
	case *EmptyStmt:
		p.line(depth, ";")
	default:
		p.line(depth, "<unknown statement %T>", s)
	}
}

func (p *printer) expr(e Expression, depth int) {
	switch e := e.(type) {
	case *NilExpr:
		p.line(depth, "nil")
	case *BoolExpr:
		p.line(depth, "bool(%v)", e.Value)
	case *NumberExpr:
		if e.IsFloat {
			p.line(depth, "float(%v)", e.Float)
		} else {
			p.line(depth, "int(%v)", e.Int)
		}
	case *StringExpr:
		p.line(depth, "string(%q)", e.Value)
	case *VarargExpr:
		p.line(depth, "...")
	case *FunctionDefExpr:
		p.line(depth, "function(%v)", e.Params.Names)
		p.block(e.Body, depth+1)
	case *PrefixExpr:
		p.line(depth, "prefix")
	case *TableExpr:
		p.line(depth, "table(%d fields)", len(e.Fields))
	case *BinaryExpr:
		p.line(depth, "binop(%s)", e.Op)
		p.expr(e.Left, depth+1)
		p.expr(e.Right, depth+1)
	case *UnaryExpr:
		p.line(depth, "unop(%s)", e.Op)
		p.expr(e.Operand, depth+1)
	default:
		p.line(depth, "<unknown expression %T>", e)
	}
}
