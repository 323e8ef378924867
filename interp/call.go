package interp

import (
	"github.com/jamesoh3928/lunacore/ast"
	"github.com/jamesoh3928/lunacore/internal/lunaerr"
	"github.com/jamesoh3928/lunacore/lunaenv"
	"github.com/jamesoh3928/lunacore/value"
)

// call evaluates a FunctionCall AST node: its callee, its arguments
// (per the splice rule) and then dispatches.
func (it *Interpreter) call(env *lunaenv.Env, fc *ast.FunctionCall) ([]value.Value, error) {
	if fc.Method != "" {
		return nil, lunaerr.New(lunaerr.ErrMethodCallUnsupported)
	}

	callee, err := it.evalPrefixFirst(env, fc.Target)
	if err != nil {
		return nil, err
	}

	args, err := it.evalArgs(env, fc.Args)
	if err != nil {
		return nil, err
	}

	return it.Call(callee, args)
}

func (it *Interpreter) evalArgs(env *lunaenv.Env, args ast.Args) ([]value.Value, error) {
	switch args := args.(type) {
	case *ast.ExprArgs:
		return it.evalExprListSplice(env, args.Exprs)
	case *ast.TableArgs:
		t, err := it.evalTableConstructor(env, args.Fields)
		if err != nil {
			return nil, err
		}
		return []value.Value{t}, nil
	case *ast.StringArgs:
		return []value.Value{value.Str(args.Value)}, nil
	default:
		return nil, lunaerr.Errorf("unhandled call-argument type %T", args)
	}
}

// Call dispatches a call to an already-evaluated callee and already-
// evaluated argument list: closures get a fresh call environment
// built from their captured snapshot, the built-in print writes to
// the Printer, anything else is an error.
func (it *Interpreter) Call(callee value.Value, args []value.Value) ([]value.Value, error) {
	switch callee := callee.(type) {
	case *value.Closure:
		return it.callClosure(callee, args)
	case value.Builtin:
		return it.callBuiltin(callee, args)
	default:
		return nil, lunaerr.New(lunaerr.ErrCallNonFunction)
	}
}

func (it *Interpreter) callClosure(c *value.Closure, args []value.Value) ([]value.Value, error) {
	it.log.Trace("calling closure", "params", c.Params, "argc", len(args))

	callEnv := lunaenv.FromCapture(c.Captured, c.Global)
	callEnv.PushFrame()
	for i, name := range c.Params {
		var v value.Value = value.Nil{}
		if i < len(args) {
			v = args[i]
		}
		callEnv.InsertLocal(name, v)
	}
	// Extra arguments beyond the parameter list are ignored: varargs
	// are out of scope for this core.

	sig, err := it.execBlock(callEnv, c.Body)
	if err != nil {
		return nil, err
	}
	switch sig.kind {
	case sigReturn:
		return sig.values, nil
	case sigBreak:
		return nil, lunaerr.New(lunaerr.ErrBreakOutsideLoop)
	default:
		return nil, nil
	}
}

func (it *Interpreter) callBuiltin(b value.Builtin, args []value.Value) ([]value.Value, error) {
	if b.Name != value.BuiltinPrint.Name {
		return nil, lunaerr.New(lunaerr.ErrCallNonFunction)
	}
	it.log.Debug("built-in print dispatch", "argc", len(args))
	it.printer.Print(args)
	return nil, nil
}
