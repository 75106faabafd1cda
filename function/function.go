/*
File    : golox/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function defines golox's two kinds of callable object: a
// user-defined Function closing over an *environment.Environment, and a
// NativeFunction wrapping a host-provided builtin as an ordinary Value
// so the evaluator can dispatch Call on either kind uniformly.
package function

import (
	"fmt"

	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/object"
	"github.com/akashmaji946/golox/parser"
)

// Function is a user-defined golox function: its name, declared
// parameters, body statements, and the environment it closed over at
// definition time. Closure is the same *environment.Environment pointer
// the defining scope used, so later mutations to that scope are visible
// on every subsequent call — a counter variable the function increments
// stays incremented on the next call.
type Function struct {
	Name    string
	Params  []lexer.Token
	Body    []parser.Stmt
	Closure *environment.Environment
}

func (f *Function) Type() object.ValueType { return object.FunctionType }

func (f *Function) String() string { return fmt.Sprintf("function %s()", f.Name) }

func (f *Function) GoString() string {
	args := ""
	for i, p := range f.Params {
		if i > 0 {
			args += ", "
		}
		args += p.Lexeme
	}
	return fmt.Sprintf("<fn %s(%s)>", f.Name, args)
}

// Arity reports the number of parameters this function declares, so the
// evaluator can check call arity before binding arguments.
func (f *Function) Arity() int { return len(f.Params) }

// NativeGoFunc is the Go function a NativeFunction wraps. It receives
// already-evaluated argument values and returns a result Value or an
// error, which the call expression returns unchanged.
type NativeGoFunc func(args []object.Value) (object.Value, error)

// NativeFunction wraps a host-provided builtin (e.g. clock) as a golox
// callable value, so the evaluator's Call handling does not need to
// special-case builtins versus user functions.
type NativeFunction struct {
	Name   string
	ArityN int
	GoFunc NativeGoFunc
}

func (n *NativeFunction) Type() object.ValueType { return object.NativeFunctionType }
func (n *NativeFunction) String() string         { return fmt.Sprintf("function %s()", n.Name) }
func (n *NativeFunction) GoString() string       { return fmt.Sprintf("<native fn %s>", n.Name) }
func (n *NativeFunction) Arity() int             { return n.ArityN }
