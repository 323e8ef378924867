package interp

import (
	"github.com/jamesoh3928/lunacore/ast"
	"github.com/jamesoh3928/lunacore/internal/lunaerr"
	"github.com/jamesoh3928/lunacore/lunaenv"
	"github.com/jamesoh3928/lunacore/value"
)

// execBlock runs block's statements in order, stopping as soon as one
// yields a non-Normal signal: a Break or Return from a nested
// construct propagates immediately, skipping the block's own trailing
// return statement. execBlock never pushes or pops a frame
// itself; every caller that introduces a new scope (do-block, loop
// body, if/elseif/else branch, for head, function body) does that
// around the call.
func (it *Interpreter) execBlock(env *lunaenv.Env, block *ast.Block) (signal, error) {
	for _, stmt := range block.Statements {
		sig, err := it.execStmt(env, stmt)
		if err != nil {
			return signal{}, err
		}
		if sig.kind != sigNormal {
			return sig, nil
		}
	}
	if block.ReturnStat != nil {
		vals, err := it.evalExprListSplice(env, block.ReturnStat)
		if err != nil {
			return signal{}, err
		}
		return returnSignal(vals), nil
	}
	return normalSignal, nil
}

func (it *Interpreter) execStmt(env *lunaenv.Env, stmt ast.Statement) (signal, error) {
	switch stmt := stmt.(type) {
	case *ast.AssignStmt:
		return normalSignal, it.execAssign(env, stmt)
	case *ast.ExprStmt:
		_, err := it.call(env, stmt.Call)
		return normalSignal, err
	case *ast.BreakStmt:
		return breakSignal, nil
	case *ast.DoStmt:
		return it.execScopedBlock(env, stmt.Body)
	case *ast.WhileStmt:
		return it.execWhile(env, stmt)
	case *ast.RepeatStmt:
		return it.execRepeat(env, stmt)
	case *ast.IfStmt:
		return it.execIf(env, stmt)
	case *ast.NumericForStmt:
		return it.execNumericFor(env, stmt)
	case *ast.GenericForStmt:
		return signal{}, lunaerr.New(lunaerr.ErrGenericForUnsupported)
	case *ast.FunctionDeclStmt:
		return normalSignal, it.execFunctionDecl(env, stmt)
	case *ast.EmptyStmt:
		return normalSignal, nil
	default:
		return signal{}, lunaerr.Errorf("unhandled statement type %T", stmt)
	}
}

// execScopedBlock pushes a fresh frame, runs block, and pops the frame
// on every exit path: normal completion, break or return.
func (it *Interpreter) execScopedBlock(env *lunaenv.Env, block *ast.Block) (signal, error) {
	env.PushFrame()
	defer env.PopFrame()
	return it.execBlock(env, block)
}

func (it *Interpreter) execAssign(env *lunaenv.Env, stmt *ast.AssignStmt) error {
	vals, err := it.evalExprListSplice(env, stmt.Values)
	if err != nil {
		return err
	}
	vals = padTruncate(vals, len(stmt.Targets))

	if stmt.Local {
		for i, target := range stmt.Targets {
			name, ok := target.(*ast.NameVar)
			if !ok {
				return lunaerr.New(lunaerr.ErrLocalTargetNotName)
			}
			env.InsertLocal(name.Name, vals[i])
		}
		return nil
	}

	for i, target := range stmt.Targets {
		if err := it.assignVar(env, target, vals[i]); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) assignVar(env *lunaenv.Env, target ast.Var, val value.Value) error {
	switch target := target.(type) {
	case *ast.NameVar:
		env.Update(target.Name, val)
		return nil
	case *ast.IndexVar:
		obj, err := it.evalPrefixFirst(env, target.Object)
		if err != nil {
			return err
		}
		table, ok := obj.(*value.Table)
		if !ok {
			return lunaerr.New(lunaerr.ErrIndexNonTable)
		}
		key, err := it.evalFirst(env, target.Key)
		if err != nil {
			return err
		}
		return table.Set(key, val)
	case *ast.FieldVar:
		obj, err := it.evalPrefixFirst(env, target.Object)
		if err != nil {
			return err
		}
		table, ok := obj.(*value.Table)
		if !ok {
			return lunaerr.New(lunaerr.ErrIndexNonTable)
		}
		table.SetIdent(target.Name, val)
		return nil
	default:
		return lunaerr.Errorf("unhandled assignment target %T", target)
	}
}

func (it *Interpreter) execWhile(env *lunaenv.Env, stmt *ast.WhileStmt) (signal, error) {
	for {
		cond, err := it.evalFirst(env, stmt.Cond)
		if err != nil {
			return signal{}, err
		}
		if !value.Truthy(cond) {
			return normalSignal, nil
		}
		sig, err := it.execScopedBlock(env, stmt.Body)
		if err != nil {
			return signal{}, err
		}
		switch sig.kind {
		case sigBreak:
			return normalSignal, nil
		case sigReturn:
			return sig, nil
		}
	}
}

func (it *Interpreter) execRepeat(env *lunaenv.Env, stmt *ast.RepeatStmt) (signal, error) {
	for {
		env.PushFrame()
		sig, err := it.execBlock(env, stmt.Body)
		if err != nil {
			env.PopFrame()
			return signal{}, err
		}
		switch sig.kind {
		case sigBreak:
			env.PopFrame()
			return normalSignal, nil
		case sigReturn:
			env.PopFrame()
			return sig, nil
		}
		// Evaluate the until-condition in the body's own frame, so it
		// may reference locals declared in the body.
		cond, err := it.evalFirst(env, stmt.Cond)
		env.PopFrame()
		if err != nil {
			return signal{}, err
		}
		if value.Truthy(cond) {
			return normalSignal, nil
		}
	}
}

func (it *Interpreter) execIf(env *lunaenv.Env, stmt *ast.IfStmt) (signal, error) {
	cond, err := it.evalFirst(env, stmt.Cond)
	if err != nil {
		return signal{}, err
	}
	if value.Truthy(cond) {
		return it.execScopedBlock(env, stmt.Then)
	}
	for _, elseif := range stmt.ElseIfs {
		cond, err := it.evalFirst(env, elseif.Cond)
		if err != nil {
			return signal{}, err
		}
		if value.Truthy(cond) {
			return it.execScopedBlock(env, elseif.Body)
		}
	}
	if stmt.Else != nil {
		return it.execScopedBlock(env, stmt.Else)
	}
	return normalSignal, nil
}

func (it *Interpreter) execNumericFor(env *lunaenv.Env, stmt *ast.NumericForStmt) (signal, error) {
	startVal, err := it.evalFirst(env, stmt.Start)
	if err != nil {
		return signal{}, err
	}
	start, ok := startVal.(value.Number)
	if !ok || start.IsFloat {
		return signal{}, lunaerr.New(lunaerr.ErrForInitNotInteger)
	}

	stopVal, err := it.evalFirst(env, stmt.Stop)
	if err != nil {
		return signal{}, err
	}
	if _, ok := stopVal.(value.Number); !ok {
		return signal{}, lunaerr.New(lunaerr.ErrOperandsNotNumbers)
	}

	step := int64(1)
	if stmt.Step != nil {
		stepVal, err := it.evalFirst(env, stmt.Step)
		if err != nil {
			return signal{}, err
		}
		stepNum, ok := stepVal.(value.Number)
		if !ok || stepNum.IsFloat {
			return signal{}, lunaerr.New(lunaerr.ErrForStepNotInteger)
		}
		step = stepNum.Int64()
	}
	if step == 0 {
		return signal{}, lunaerr.New(lunaerr.ErrForStepZero)
	}

	i := start.Int64()
	for {
		cmp, err := value.Compare(value.Int(i), stopVal)
		if err != nil {
			return signal{}, err
		}
		if step > 0 && cmp > 0 {
			return normalSignal, nil
		}
		if step < 0 && cmp < 0 {
			return normalSignal, nil
		}

		env.PushFrame()
		env.InsertLocal(stmt.Name, value.Int(i))
		sig, err := it.execBlock(env, stmt.Body)
		env.PopFrame()
		if err != nil {
			return signal{}, err
		}
		switch sig.kind {
		case sigBreak:
			return normalSignal, nil
		case sigReturn:
			return sig, nil
		}
		i += step
	}
}

func (it *Interpreter) execFunctionDecl(env *lunaenv.Env, stmt *ast.FunctionDeclStmt) error {
	if stmt.Local {
		// Bind the name to an (as yet empty) closure cell before
		// capturing, so the snapshot below -- and therefore the
		// function's own body -- can see itself. See
		// value.NewClosureCell's doc comment.
		cell := value.NewClosureCell()
		env.InsertLocal(stmt.Name, cell)
		cell.Params = stmt.Params.Names
		cell.Vararg = stmt.Params.Vararg
		cell.Body = stmt.Body
		cell.Captured = env.Capture()
		cell.Global = env.Global
		return nil
	}
	closure := value.NewClosure(stmt.Params.Names, stmt.Params.Vararg, stmt.Body, env.Capture(), env.Global)
	env.InsertGlobal(stmt.Name, closure)
	return nil
}

// padTruncate right-pads vals with Nil to length n, or truncates it to
// length n, matching the assignment rule for mismatched arities.
func padTruncate(vals []value.Value, n int) []value.Value {
	out := make([]value.Value, n)
	for i := range out {
		if i < len(vals) {
			out[i] = vals[i]
		} else {
			out[i] = value.Nil{}
		}
	}
	return out
}
