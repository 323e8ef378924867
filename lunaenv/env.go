// Package lunaenv implements the environment/scoping machinery: a
// single global binding table plus a stack of lexical local frames,
// with the lookup, insertion, reassignment and closure-capture
// operations the evaluator relies on.
package lunaenv

import "github.com/jamesoh3928/lunacore/value"

// Env holds a flat global map and a stack of local frames, innermost
// last.
type Env struct {
	Global map[string]value.Value
	locals []map[string]value.Value
}

// New creates an environment with an empty global map, the built-in
// print binding installed in it, and one empty local frame pushed.
func New() *Env {
	e := &Env{
		Global: map[string]value.Value{
			"print": value.BuiltinPrint,
		},
	}
	e.PushFrame()
	return e
}

// PushFrame pushes a fresh, empty local frame.
func (e *Env) PushFrame() {
	e.locals = append(e.locals, make(map[string]value.Value))
}

// PopFrame pops the innermost local frame. Popping the last remaining
// frame is a programming error in the host, so it panics rather than
// silently leaving the stack empty.
func (e *Env) PopFrame() {
	if len(e.locals) <= 1 {
		panic("lunaenv: pop of last local frame")
	}
	e.locals = e.locals[:len(e.locals)-1]
}

// GetLocal searches only the local frame stack, top-down.
func (e *Env) GetLocal(name string) (value.Value, bool) {
	for i := len(e.locals) - 1; i >= 0; i-- {
		if v, ok := e.locals[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetGlobal searches only the global map.
func (e *Env) GetGlobal(name string) (value.Value, bool) {
	v, ok := e.Global[name]
	return v, ok
}

// Get searches the local stack top-down, then falls back to global.
// A read of an unbound name yields Nil, never an error; callers that
// need the "bound at all" fact use the two-result form directly.
func (e *Env) Get(name string) value.Value {
	if v, ok := e.GetLocal(name); ok {
		return v
	}
	if v, ok := e.GetGlobal(name); ok {
		return v
	}
	return value.Nil{}
}

// InsertLocal places val into the topmost local frame, overwriting
// any existing binding in that exact frame.
func (e *Env) InsertLocal(name string, val value.Value) {
	e.locals[len(e.locals)-1][name] = val
}

// InsertGlobal overwrites or inserts name in the global map.
func (e *Env) InsertGlobal(name string, val value.Value) {
	e.Global[name] = val
}

// Update walks the local stack top-down; at the first frame containing
// name it overwrites the binding there and stops. If no local frame
// binds name, it overwrites (or inserts) the binding in global.
func (e *Env) Update(name string, val value.Value) {
	for i := len(e.locals) - 1; i >= 0; i-- {
		if _, ok := e.locals[i][name]; ok {
			e.locals[i][name] = val
			return
		}
	}
	e.Global[name] = val
}

// Capture produces a snapshot of all currently visible local bindings
// (innermost wins on shadowing), suitable for attaching to a closure.
// The returned map is a fresh copy: scalar values are copied by value,
// reference-typed values (*Table, *Closure) keep pointing at the same
// underlying object.
func (e *Env) Capture() map[string]value.Value {
	snapshot := make(map[string]value.Value)
	for _, frame := range e.locals {
		for name, v := range frame {
			snapshot[name] = v
		}
	}
	return snapshot
}

// FromCapture builds a fresh environment for a closure invocation: its
// global map is the same object as the defining environment's global
// (so functions see and mutate the same globals as their creator), and
// its local stack starts with one frame containing a copy of snapshot.
func FromCapture(snapshot map[string]value.Value, global map[string]value.Value) *Env {
	frame := make(map[string]value.Value, len(snapshot))
	for name, v := range snapshot {
		frame[name] = v
	}
	return &Env{
		Global: global,
		locals: []map[string]value.Value{frame},
	}
}
