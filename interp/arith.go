package interp

import (
	"math"

	"github.com/jamesoh3928/lunacore/ast"
	"github.com/jamesoh3928/lunacore/internal/lunaerr"
	"github.com/jamesoh3928/lunacore/value"
)

// applyBinOp implements every binary operator that is not and/or
// (those short-circuit and are handled in evalBinary before either
// operand beyond the left is evaluated).
func applyBinOp(op ast.BinOp, l, r value.Value) (value.Value, error) {
	switch op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpMod, ast.OpIDiv:
		return arith(op, l, r)
	case ast.OpDiv:
		lf, rf, err := bothFloat(l, r)
		if err != nil {
			return nil, err
		}
		return value.Float(lf / rf), nil
	case ast.OpPow:
		lf, rf, err := bothFloat(l, r)
		if err != nil {
			return nil, err
		}
		return value.Float(math.Pow(lf, rf)), nil
	case ast.OpBAnd, ast.OpBXor, ast.OpBOr, ast.OpShr, ast.OpShl:
		return bitwise(op, l, r)
	case ast.OpConcat:
		ls, err := value.CoerceString(l)
		if err != nil {
			return nil, err
		}
		rs, err := value.CoerceString(r)
		if err != nil {
			return nil, err
		}
		return value.Str(ls + rs), nil
	case ast.OpLT, ast.OpLE, ast.OpGT, ast.OpGE:
		cmp, err := value.Compare(l, r)
		if err != nil {
			return nil, err
		}
		switch op {
		case ast.OpLT:
			return value.Bool(cmp < 0), nil
		case ast.OpLE:
			return value.Bool(cmp <= 0), nil
		case ast.OpGT:
			return value.Bool(cmp > 0), nil
		default: // ast.OpGE
			return value.Bool(cmp >= 0), nil
		}
	case ast.OpEq:
		return value.Bool(value.Equal(l, r)), nil
	case ast.OpNE:
		return value.Bool(!value.Equal(l, r)), nil
	default:
		return nil, lunaerr.Errorf("unhandled binary operator %s", op)
	}
}

func applyUnOp(op ast.UnOp, v value.Value) (value.Value, error) {
	switch op {
	case ast.OpNeg:
		n, ok := v.(value.Number)
		if !ok {
			return nil, lunaerr.New(lunaerr.ErrCannotNegate)
		}
		if n.IsFloat {
			return value.Float(-n.Float64()), nil
		}
		return value.Int(-n.Int64()), nil
	case ast.OpNot:
		return value.Bool(!value.Truthy(v)), nil
	case ast.OpLen:
		switch v := v.(type) {
		case value.Str:
			return value.Int(int64(len(v))), nil
		case *value.Table:
			return value.Int(v.Len()), nil
		default:
			return nil, lunaerr.New(lunaerr.ErrCannotGetLength)
		}
	case ast.OpBNot:
		i, err := value.CoerceInt(v)
		if err != nil {
			return nil, err
		}
		return value.Int(^i), nil
	default:
		return nil, lunaerr.Errorf("unhandled unary operator %s", op)
	}
}

func bothFloat(l, r value.Value) (float64, float64, error) {
	ln, lok := l.(value.Number)
	rn, rok := r.(value.Number)
	if !lok || !rok {
		return 0, 0, lunaerr.New(lunaerr.ErrOperandsNotNumbers)
	}
	return ln.AsFloat64(), rn.AsFloat64(), nil
}

func bitwise(op ast.BinOp, l, r value.Value) (value.Value, error) {
	li, err := value.CoerceInt(l)
	if err != nil {
		return nil, err
	}
	ri, err := value.CoerceInt(r)
	if err != nil {
		return nil, err
	}
	switch op {
	case ast.OpBAnd:
		return value.Int(li & ri), nil
	case ast.OpBXor:
		return value.Int(li ^ ri), nil
	case ast.OpBOr:
		return value.Int(li | ri), nil
	case ast.OpShr:
		return value.Int(shiftRight(li, ri)), nil
	case ast.OpShl:
		return value.Int(shiftLeft(li, ri)), nil
	default:
		return nil, lunaerr.Errorf("unhandled bitwise operator %s", op)
	}
}

// shiftLeft/shiftRight implement Lua-style logical shifts: a negative
// count shifts the other way, and a count of 64 or more (in either
// direction) produces an all-zero result rather than following Go's
// >>64 behavior.
func shiftLeft(a, n int64) int64 {
	if n < 0 {
		return shiftRight(a, -n)
	}
	if n >= 64 {
		return 0
	}
	return int64(uint64(a) << uint(n))
}

func shiftRight(a, n int64) int64 {
	if n < 0 {
		return shiftLeft(a, -n)
	}
	if n >= 64 {
		return 0
	}
	return int64(uint64(a) >> uint(n))
}

// arith implements + - * % // with a simple integer/float promotion
// rule: both-integer operands produce an integer result; otherwise
// both operands promote to float. // (floor division) always
// produces an integer equal to floor(a/b), even when its operands
// are floats (a deliberate divergence from Lua's float-preserving //).
func arith(op ast.BinOp, l, r value.Value) (value.Value, error) {
	ln, lok := l.(value.Number)
	rn, rok := r.(value.Number)
	if !lok || !rok {
		return nil, lunaerr.New(lunaerr.ErrOperandsNotNumbers)
	}

	bothInt := !ln.IsFloat && !rn.IsFloat

	switch op {
	case ast.OpIDiv:
		if bothInt {
			a, b := ln.Int64(), rn.Int64()
			if b == 0 {
				return nil, lunaerr.New(lunaerr.ErrOperandsNotNumbers)
			}
			return value.Int(floorDivInt(a, b)), nil
		}
		af, bf := ln.AsFloat64(), rn.AsFloat64()
		return value.Int(int64(math.Floor(af / bf))), nil
	case ast.OpMod:
		if bothInt {
			a, b := ln.Int64(), rn.Int64()
			if b == 0 {
				return nil, lunaerr.New(lunaerr.ErrOperandsNotNumbers)
			}
			return value.Int(floorModInt(a, b)), nil
		}
		af, bf := ln.AsFloat64(), rn.AsFloat64()
		return value.Float(floorModFloat(af, bf)), nil
	}

	if bothInt {
		a, b := ln.Int64(), rn.Int64()
		switch op {
		case ast.OpAdd:
			return value.Int(a + b), nil
		case ast.OpSub:
			return value.Int(a - b), nil
		case ast.OpMul:
			return value.Int(a * b), nil
		}
	}
	af, bf := ln.AsFloat64(), rn.AsFloat64()
	switch op {
	case ast.OpAdd:
		return value.Float(af + bf), nil
	case ast.OpSub:
		return value.Float(af - bf), nil
	case ast.OpMul:
		return value.Float(af * bf), nil
	}
	return nil, lunaerr.Errorf("unhandled arithmetic operator %s", op)
}

func floorDivInt(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorModInt(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

func floorModFloat(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
