/*
File    : golox/eval/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks the AST produced by parser and executes it,
// maintaining a current environment pointer and a builtins registry.
// `return` unwinds via a dedicated error type rather than an in-band
// return-value wrapper threaded through every statement visitor (see
// errors.go).
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/function"
	"github.com/akashmaji946/golox/object"
	"github.com/akashmaji946/golox/parser"
)

// Interpreter executes a parsed golox program. It holds the current
// environment pointer (the global environment at construction, swapped
// for the duration of blocks and calls) and the writer that `print`
// writes to.
type Interpreter struct {
	globals *environment.Environment
	current *environment.Environment
	Writer  io.Writer
}

// NewInterpreter creates an Interpreter with a fresh global environment,
// registers the native builtins (clock), and defaults output to stdout.
func NewInterpreter() *Interpreter {
	globals := environment.New(nil)
	it := &Interpreter{
		globals: globals,
		current: globals,
		Writer:  os.Stdout,
	}
	registerBuiltins(globals)
	return it
}

// SetWriter redirects `print` output — used by tests to capture output
// into a buffer.
func (it *Interpreter) SetWriter(w io.Writer) {
	it.Writer = w
}

// Run executes a parsed statement list against the interpreter's global
// environment, which is preserved across calls so a REPL can keep
// previously declared bindings alive between lines.
func (it *Interpreter) Run(stmts []parser.Stmt) error {
	for _, stmt := range stmts {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execute(stmt parser.Stmt) error {
	return stmt.AcceptStmt(it)
}

func (it *Interpreter) evaluate(expr parser.Expr) (object.Value, error) {
	v, err := expr.AcceptExpr(it)
	if err != nil {
		return nil, err
	}
	return v.(object.Value), nil
}

// registerBuiltins defines every native function in env. clock returns
// milliseconds since the Unix epoch as a Number.
func registerBuiltins(env *environment.Environment) {
	env.Define("clock", &function.NativeFunction{
		Name:   "clock",
		ArityN: 0,
		GoFunc: func(args []object.Value) (object.Value, error) {
			return &object.Number{Value: float64(nowMillis())}, nil
		},
	})
}
