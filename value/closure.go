package value

import "github.com/jamesoh3928/lunacore/ast"

// Closure is a first-class function value: the immutable description
// of a user function plus a captured snapshot of the lexical scopes
// visible at the point of definition.
//
// Captured is a copy of the enclosing local frames' bindings taken at
// definition time (innermost wins on shadowing): scalar Values are
// copied by value, reference-typed Values (*Table, *Closure) remain
// shared, because copying a Go map copies its Value entries but not
// what a pointer-typed entry points to. Global is the same map
// object as the defining environment's global table, so a closure and
// its creator always see the same globals.
type Closure struct {
	id       uint64
	Params   []string
	Vararg   bool
	Body     *ast.Block
	Captured map[string]Value
	Global   map[string]Value
}

// NewClosure builds a closure value, capturing captured and global by
// reference (callers must pass a snapshot copy of captured, not a live
// frame, to get definition-time capture semantics).
func NewClosure(params []string, vararg bool, body *ast.Block, captured, global map[string]Value) *Closure {
	return &Closure{
		id:       newID(),
		Params:   params,
		Vararg:   vararg,
		Body:     body,
		Captured: captured,
		Global:   global,
	}
}

// NewClosureCell allocates an empty closure identity with its fields
// left zero. It exists for `local function` declarations: the
// declaring frame binds the name to this pointer *before* the
// enclosing scope is captured, so the capture snapshot that interp
// fills in afterward contains a self-reference to the very closure
// being defined. Since Value stores a pointer for KindClosure, every
// copy of that snapshot keeps pointing at the same Closure struct, so
// filling in its fields afterward is visible through all of them --
// this is what lets a local recursive function see itself without
// requiring live (non-snapshot) upvalue semantics anywhere else.
func NewClosureCell() *Closure {
	return &Closure{id: newID()}
}

func (*Closure) Kind() Kind { return KindClosure }
