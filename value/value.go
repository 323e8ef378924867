// Package value implements the lunacore runtime value model: a
// tagged variant over nil, booleans, numbers (with integer/float
// duality), strings, tables and closures, plus the coercion and
// comparison rules the evaluator relies on.
//
// Reference-typed values (Table, Closure) are represented as Go
// pointers, so sharing and interior mutation fall out of normal Go
// semantics; no manual reference counting is needed, and reference
// cycles between tables or closures are reclaimed by the ordinary Go
// garbage collector.
package value

import (
	"math"
	"strconv"

	"github.com/jamesoh3928/lunacore/internal/lunaerr"
)

// Kind tags the variant a Value holds.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindTable
	KindClosure
	KindBuiltin
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindTable:
		return "table"
	case KindClosure:
		return "function"
	case KindBuiltin:
		return "function"
	default:
		return "unknown"
	}
}

// Value is implemented by every runtime value kind.
type Value interface {
	Kind() Kind
}

// Nil is the singleton nil value.
type Nil struct{}

func (Nil) Kind() Kind { return KindNil }

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// Str is an immutable string value.
type Str string

func (Str) Kind() Kind { return KindString }

// Number is a 64-bit numeric value with a companion flag
// distinguishing integer from float encoding: with IsFloat clear,
// Bits is the two's-complement encoding of an int64; with IsFloat
// set, Bits is the IEEE-754 binary64 encoding of a float64.
type Number struct {
	Bits    uint64
	IsFloat bool
}

func (Number) Kind() Kind { return KindNumber }

// Int makes an integer Number.
func Int(i int64) Number { return Number{Bits: uint64(i), IsFloat: false} }

// Float makes a float Number.
func Float(f float64) Number { return Number{Bits: math.Float64bits(f), IsFloat: true} }

// Int64 returns n's integer payload, reinterpreting the bits as
// two's-complement regardless of IsFloat (callers check IsFloat
// first, or use CoerceInt for the checked coercion rules).
func (n Number) Int64() int64 { return int64(n.Bits) }

// Float64 returns n's float payload, reinterpreting the bits as
// IEEE-754 binary64 regardless of IsFloat.
func (n Number) Float64() float64 { return math.Float64frombits(n.Bits) }

// AsFloat64 returns n as a float64, promoting an integer payload.
func (n Number) AsFloat64() float64 {
	if n.IsFloat {
		return n.Float64()
	}
	return float64(n.Int64())
}

// Builtin is an opaque handle to a host-provided capability.
type Builtin struct {
	Name string
}

func (Builtin) Kind() Kind { return KindBuiltin }

// BuiltinPrint is the only built-in this core requires.
var BuiltinPrint = Builtin{Name: "print"}

// Truthy reports whether v is truthy: only nil and false are falsy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil, Nil:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// CoerceInt coerces v to an integer: an integer value coerces to
// itself; a float coerces iff finite with an exact integer
// representation; anything else fails.
func CoerceInt(v Value) (int64, error) {
	n, ok := v.(Number)
	if !ok {
		return 0, lunaerr.New(lunaerr.ErrConvertToInteger)
	}
	if !n.IsFloat {
		return n.Int64(), nil
	}
	f := n.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, lunaerr.New(lunaerr.ErrConvertFloatExact)
	}
	return int64(f), nil
}

// CoerceString coerces v to its string rendering: numbers render in
// decimal form (floats always with a fractional part), strings return
// themselves, everything else fails.
func CoerceString(v Value) (string, error) {
	switch v := v.(type) {
	case Str:
		return string(v), nil
	case Number:
		return FormatNumber(v), nil
	default:
		return "", lunaerr.New(lunaerr.ErrConvertToString)
	}
}

// FormatNumber renders n as text: integers in plain decimal, floats
// with at least one fractional digit (whole floats render as "X.0").
func FormatNumber(n Number) string {
	if !n.IsFloat {
		return strconv.FormatInt(n.Int64(), 10)
	}
	f := n.Float64()
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !containsFloatMarker(s) {
		s += ".0"
	}
	return s
}

func containsFloatMarker(s string) bool {
	for _, r := range s {
		switch r {
		case '.', 'e', 'E', 'n', 'N': // '.', exponent, or Inf/NaN letters
			return true
		}
	}
	return false
}

// Render produces the display form of a value, the way print shows it.
func Render(v Value) string {
	switch v := v.(type) {
	case nil, Nil:
		return "nil"
	case Bool:
		if v {
			return "true"
		}
		return "false"
	case Number:
		return FormatNumber(v)
	case Str:
		return string(v)
	case *Table:
		return tagFor("table", v.id)
	case *Closure:
		return tagFor("function", v.id)
	case Builtin:
		return tagFor("function", 0)
	default:
		return "?"
	}
}

func tagFor(kind string, id uint64) string {
	return kind + ": 0x" + strconv.FormatUint(id, 16)
}

// Equal implements value equality: same-kind comparison, numbers
// promote across int/float, tables/closures compare by identity,
// cross-kind comparisons are false (never an error) except number
// cross-type promotion.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil, Nil:
		_, ok := asNil(b)
		return ok
	case Bool:
		bb, ok := b.(Bool)
		return ok && a == bb
	case Str:
		bs, ok := b.(Str)
		return ok && a == bs
	case Number:
		bn, ok := b.(Number)
		if !ok {
			return false
		}
		if a.IsFloat || bn.IsFloat {
			return a.AsFloat64() == bn.AsFloat64()
		}
		return a.Int64() == bn.Int64()
	case *Table:
		bt, ok := b.(*Table)
		return ok && a == bt
	case *Closure:
		bc, ok := b.(*Closure)
		return ok && a == bc
	case Builtin:
		bb, ok := b.(Builtin)
		return ok && a.Name == bb.Name
	default:
		return false
	}
}

func asNil(v Value) (Nil, bool) {
	switch v := v.(type) {
	case nil:
		return Nil{}, true
	case Nil:
		return v, true
	default:
		return Nil{}, false
	}
}

// Compare implements value ordering: defined only on number-vs-number
// (with promotion) and string-vs-string (lexicographic byte order).
// Returns -1/0/1, or an error for any other pairing.
func Compare(a, b Value) (int, error) {
	an, aIsNum := a.(Number)
	bn, bIsNum := b.(Number)
	if aIsNum && bIsNum {
		if an.IsFloat || bn.IsFloat {
			af, bf := an.AsFloat64(), bn.AsFloat64()
			switch {
			case af < bf:
				return -1, nil
			case af > bf:
				return 1, nil
			default:
				return 0, nil
			}
		}
		ai, bi := an.Int64(), bn.Int64()
		switch {
		case ai < bi:
			return -1, nil
		case ai > bi:
			return 1, nil
		default:
			return 0, nil
		}
	}
	as, aIsStr := a.(Str)
	bs, bIsStr := b.(Str)
	if aIsStr && bIsStr {
		switch {
		case as < bs:
			return -1, nil
		case as > bs:
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, lunaerr.New(lunaerr.ErrCannotCompare)
}
