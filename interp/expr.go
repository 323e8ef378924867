package interp

import (
	"github.com/jamesoh3928/lunacore/ast"
	"github.com/jamesoh3928/lunacore/internal/lunaerr"
	"github.com/jamesoh3928/lunacore/lunaenv"
	"github.com/jamesoh3928/lunacore/value"
)

// first extracts the first element of a value list, or Nil if the
// list is empty: the single truncation primitive called at every
// non-tail consumer.
func first(vals []value.Value) value.Value {
	if len(vals) == 0 {
		return value.Nil{}
	}
	return vals[0]
}

// evalFirst evaluates e and applies the extract-first rule.
func (it *Interpreter) evalFirst(env *lunaenv.Env, e ast.Expression) (value.Value, error) {
	vals, err := it.evalExpr(env, e)
	if err != nil {
		return nil, err
	}
	return first(vals), nil
}

// evalExprListSplice evaluates exprs left-to-right using the splice
// rule shared by assignment right-hand sides, call argument lists and
// return statements: every expression but the last contributes only
// its first value, and the last contributes its entire value list.
func (it *Interpreter) evalExprListSplice(env *lunaenv.Env, exprs []ast.Expression) ([]value.Value, error) {
	var out []value.Value
	for i, e := range exprs {
		if i == len(exprs)-1 {
			vals, err := it.evalExpr(env, e)
			if err != nil {
				return nil, err
			}
			out = append(out, vals...)
		} else {
			v, err := it.evalFirst(env, e)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// evalExpr evaluates e to its full ordered value list: every
// expression yields a list, with only tail positions splicing more
// than the first element.
func (it *Interpreter) evalExpr(env *lunaenv.Env, e ast.Expression) ([]value.Value, error) {
	switch e := e.(type) {
	case *ast.NilExpr:
		return []value.Value{value.Nil{}}, nil
	case *ast.BoolExpr:
		return []value.Value{value.Bool(e.Value)}, nil
	case *ast.NumberExpr:
		if e.IsFloat {
			return []value.Value{value.Float(e.Float)}, nil
		}
		return []value.Value{value.Int(e.Int)}, nil
	case *ast.StringExpr:
		return []value.Value{value.Str(e.Value)}, nil
	case *ast.VarargExpr:
		return nil, lunaerr.New(lunaerr.ErrVarargUnsupported)
	case *ast.FunctionDefExpr:
		closure := value.NewClosure(e.Params.Names, e.Params.Vararg, e.Body, env.Capture(), env.Global)
		return []value.Value{closure}, nil
	case *ast.PrefixExpr:
		return it.evalPrefix(env, e.Prefix)
	case *ast.TableExpr:
		t, err := it.evalTableConstructor(env, e.Fields)
		if err != nil {
			return nil, err
		}
		return []value.Value{t}, nil
	case *ast.BinaryExpr:
		v, err := it.evalBinary(env, e)
		if err != nil {
			return nil, err
		}
		return []value.Value{v}, nil
	case *ast.UnaryExpr:
		operand, err := it.evalFirst(env, e.Operand)
		if err != nil {
			return nil, err
		}
		v, err := applyUnOp(e.Op, operand)
		if err != nil {
			return nil, err
		}
		return []value.Value{v}, nil
	default:
		return nil, lunaerr.Errorf("unhandled expression type %T", e)
	}
}

func (it *Interpreter) evalBinary(env *lunaenv.Env, e *ast.BinaryExpr) (value.Value, error) {
	// and/or are short-circuit: the right operand is not evaluated
	// when the left already decides the outcome.
	if e.Op == ast.OpAnd {
		left, err := it.evalFirst(env, e.Left)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(left) {
			return left, nil
		}
		return it.evalFirst(env, e.Right)
	}
	if e.Op == ast.OpOr {
		left, err := it.evalFirst(env, e.Left)
		if err != nil {
			return nil, err
		}
		if value.Truthy(left) {
			return left, nil
		}
		return it.evalFirst(env, e.Right)
	}

	left, err := it.evalFirst(env, e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalFirst(env, e.Right)
	if err != nil {
		return nil, err
	}
	return applyBinOp(e.Op, left, right)
}

// evalPrefix evaluates a PrefixExp to its full value list: variable
// reads and parenthesized expressions always yield exactly one value,
// calls may yield several.
func (it *Interpreter) evalPrefix(env *lunaenv.Env, p ast.PrefixExp) ([]value.Value, error) {
	switch p := p.(type) {
	case *ast.VarExpr:
		v, err := it.evalVar(env, p.Var)
		if err != nil {
			return nil, err
		}
		return []value.Value{v}, nil
	case *ast.CallExpr:
		return it.call(env, p.Call)
	case *ast.ParenExpr:
		v, err := it.evalFirst(env, p.Inner)
		if err != nil {
			return nil, err
		}
		return []value.Value{v}, nil
	default:
		return nil, lunaerr.Errorf("unhandled prefix expression type %T", p)
	}
}

// evalPrefixFirst evaluates a PrefixExp and applies the extract-first
// rule; used whenever a prefix expression is consumed as a single
// value (e.g. the object of an index/field access or call target).
func (it *Interpreter) evalPrefixFirst(env *lunaenv.Env, p ast.PrefixExp) (value.Value, error) {
	vals, err := it.evalPrefix(env, p)
	if err != nil {
		return nil, err
	}
	return first(vals), nil
}

func (it *Interpreter) evalVar(env *lunaenv.Env, v ast.Var) (value.Value, error) {
	switch v := v.(type) {
	case *ast.NameVar:
		return env.Get(v.Name), nil
	case *ast.IndexVar:
		obj, err := it.evalPrefixFirst(env, v.Object)
		if err != nil {
			return nil, err
		}
		table, ok := obj.(*value.Table)
		if !ok {
			return nil, lunaerr.New(lunaerr.ErrIndexNonTable)
		}
		key, err := it.evalFirst(env, v.Key)
		if err != nil {
			return nil, err
		}
		return table.Get(key), nil
	case *ast.FieldVar:
		obj, err := it.evalPrefixFirst(env, v.Object)
		if err != nil {
			return nil, err
		}
		table, ok := obj.(*value.Table)
		if !ok {
			return nil, lunaerr.New(lunaerr.ErrIndexNonTable)
		}
		return table.Get(value.Str(v.Name)), nil
	default:
		return nil, lunaerr.Errorf("unhandled variable type %T", v)
	}
}

// evalTableConstructor allocates a fresh table and evaluates fields in
// source order: bracketed/named fields assign their evaluated key,
// positional fields take consecutive integer keys starting at 1, and
// a final positional field splices every value of a multi-valued
// expression as successive integer keys.
func (it *Interpreter) evalTableConstructor(env *lunaenv.Env, fields []ast.Field) (*value.Table, error) {
	t := value.NewTable()
	counter := int64(1)
	for i, f := range fields {
		switch f := f.(type) {
		case *ast.IndexField:
			key, err := it.evalFirst(env, f.Key)
			if err != nil {
				return nil, err
			}
			val, err := it.evalFirst(env, f.Value)
			if err != nil {
				return nil, err
			}
			if err := t.Set(key, val); err != nil {
				return nil, err
			}
		case *ast.NameField:
			val, err := it.evalFirst(env, f.Value)
			if err != nil {
				return nil, err
			}
			t.SetIdent(f.Name, val)
		case *ast.ItemField:
			if i == len(fields)-1 {
				vals, err := it.evalExpr(env, f.Value)
				if err != nil {
					return nil, err
				}
				for _, v := range vals {
					t.Set(value.Int(counter), v)
					counter++
				}
			} else {
				val, err := it.evalFirst(env, f.Value)
				if err != nil {
					return nil, err
				}
				t.Set(value.Int(counter), val)
				counter++
			}
		default:
			return nil, lunaerr.Errorf("unhandled table field type %T", f)
		}
	}
	return t, nil
}
