// Package lunaerr implements lunacore's flat runtime-error taxonomy:
// every evaluator failure is a single error kind carrying a
// human-readable message and, via github.com/pkg/errors, a
// recoverable stack trace.
package lunaerr

import "github.com/pkg/errors"

// New builds a runtime error with the given message, stack trace
// attached at the call site.
func New(message string) error {
	return errors.New(message)
}

// Errorf builds a runtime error from a format string, stack trace
// attached at the call site.
func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// Wrap attaches message as context to err, preserving err's cause for
// errors.Is/errors.As and adding a stack trace at the call site.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Enumerated error kinds, identified by their message text.
const (
	ErrOperandsNotNumbers    = "cannot execute operation on values that are not numbers"
	ErrCannotCompare         = "cannot compare two values due to types"
	ErrCannotGetLength       = "cannot get length of value that is not a string or table"
	ErrCannotNegate          = "cannot negate values that are not numbers"
	ErrConvertToInteger      = "cannot convert value to integer"
	ErrConvertFloatExact     = "cannot convert float without exact integer representation to integer"
	ErrConvertToString       = "cannot convert value to string"
	ErrIndexNonTable         = "attempt to index a non-table value"
	ErrCallNonFunction       = "attempt to call a non-function value"
	ErrInvalidTableKey       = "invalid table key"
	ErrBreakOutsideLoop      = "break outside loop"
	ErrForInitNotInteger     = "initial value of numeric for must be an integer"
	ErrForStepNotInteger     = "step value of numeric for must be an integer"
	ErrForStepZero           = "step may not be zero"
	ErrLocalTargetNotName    = "local assignment targets must be plain names"
	ErrMethodCallUnsupported = "method call desugaring is not supported"
	ErrGenericForUnsupported = "generic for is not supported"
	ErrVarargUnsupported     = "varargs are not supported"
)
