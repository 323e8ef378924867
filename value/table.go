package value

import (
	"math"
	"sync/atomic"

	"github.com/jamesoh3928/lunacore/internal/lunaerr"
)

var nextID uint64

func newID() uint64 { return atomic.AddUint64(&nextID, 1) }

// Table is a mutable key->value mapping. Tables are always held and
// passed around via *Table, which is what gives them their shared,
// interior-mutable semantics: copying a *Table copies only the
// pointer.
type Table struct {
	id      uint64
	entries map[interface{}]Value
}

// NewTable allocates an empty table.
func NewTable() *Table {
	return &Table{id: newID(), entries: make(map[interface{}]Value)}
}

func (*Table) Kind() Kind { return KindTable }

// NormalizeKey converts a Value to the Go-native key lunacore's table
// uses internally: strings, integers and booleans are hashable as-is;
// a float that equals an integer normalizes to that integer; nil and
// NaN are rejected.
func NormalizeKey(v Value) (interface{}, error) {
	switch v := v.(type) {
	case Str:
		return string(v), nil
	case Bool:
		return bool(v), nil
	case Number:
		if !v.IsFloat {
			return v.Int64(), nil
		}
		f := v.Float64()
		if math.IsNaN(f) {
			return nil, lunaerr.New(lunaerr.ErrInvalidTableKey)
		}
		if i := int64(f); float64(i) == f {
			return i, nil
		}
		return f, nil
	default:
		return nil, lunaerr.New(lunaerr.ErrInvalidTableKey)
	}
}

// Get returns the value stored at key, or Nil if absent.
func (t *Table) Get(key Value) Value {
	k, err := NormalizeKey(key)
	if err != nil {
		return Nil{}
	}
	if v, ok := t.entries[k]; ok {
		return v
	}
	return Nil{}
}

// Set stores value at key. Setting a Nil value is allowed (it simply
// stores Nil); keys that fail normalization are an error.
func (t *Table) Set(key, val Value) error {
	k, err := NormalizeKey(key)
	if err != nil {
		return err
	}
	t.entries[k] = val
	return nil
}

// SetIdent is equivalent to Set(Str(name), value).
func (t *Table) SetIdent(name string, val Value) {
	t.entries[name] = val
}

// Len returns a border of the table: any n>=0 such that index n is
// non-nil and index n+1 is nil. This implementation
// does a straightforward linear scan upward from index 1, which is
// correct (if not asymptotically optimal) for any table shape, dense
// or not.
func (t *Table) Len() int64 {
	if _, ok := t.entries[int64(1)]; !ok {
		return 0
	}
	n := int64(1)
	for {
		if _, ok := t.entries[n+1]; !ok {
			return n
		}
		n++
	}
}
