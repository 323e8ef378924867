package interp

import "github.com/jamesoh3928/lunacore/value"

// signalKind is one of the three outcomes of executing a statement:
// Normal, Return or Break. These are plain enumerated values threaded
// through exec's return path, not exceptions: flow control stays
// distinct from error handling.
type signalKind int

const (
	sigNormal signalKind = iota
	sigBreak
	sigReturn
)

type signal struct {
	kind   signalKind
	values []value.Value
}

var normalSignal = signal{kind: sigNormal}
var breakSignal = signal{kind: sigBreak}

func returnSignal(values []value.Value) signal {
	return signal{kind: sigReturn, values: values}
}
