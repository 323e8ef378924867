// Package interp implements the lunacore expression evaluator,
// statement executor and call machinery: it consumes an ast.Block and
// a lunaenv.Env and drives execution, producing printed output through
// the injected Printer and, for function bodies, lists of return
// values.
package interp

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/jamesoh3928/lunacore/ast"
	"github.com/jamesoh3928/lunacore/internal/lunaerr"
	"github.com/jamesoh3928/lunacore/lunaenv"
	"github.com/jamesoh3928/lunacore/value"
)

// Options configures a new Interpreter: callers override only what
// they need, with sensible zero-value defaults for everything else.
type Options struct {
	// Stdout backs the default Printer when Printer is not set.
	Stdout io.Writer

	// Printer overrides the default stdout-writing Printer.
	Printer Printer

	// Logger receives a Trace event for each closure call and a Debug
	// event for each built-in print dispatch. Scope push/pop and
	// closure capture are not logged, and Run recovers no panics.
	// Defaults to a no-op logger.
	Logger hclog.Logger

	// Stats, when non-nil, is invoked once after Run with the wall
	// clock duration of execution, mirroring the CLI's --stats flag.
	Stats func(time.Duration)
}

// Interpreter holds the resources shared across one evaluation run:
// the output sink and the structured logger.
type Interpreter struct {
	printer Printer
	log     hclog.Logger
	stats   func(time.Duration)
}

// New returns a new Interpreter.
func New(opts Options) *Interpreter {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	printer := opts.Printer
	if printer == nil {
		printer = StdoutPrinter{Writer: stdout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Interpreter{
		printer: printer,
		log:     logger,
		stats:   opts.Stats,
	}
}

// Run executes block's statements against env and returns the values
// of its trailing return statement, if any. A break that escapes
// every enclosing loop at the top level is reported as a "break
// outside loop" error, matching the rule call machinery applies to
// function bodies.
func (it *Interpreter) Run(env *lunaenv.Env, block *ast.Block) ([]value.Value, error) {
	start := time.Now()
	defer func() {
		if it.stats != nil {
			it.stats(time.Since(start))
		}
	}()

	sig, err := it.execBlock(env, block)
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
