/*
File    : golox/eval/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/object"
)

// RuntimeError is any failure the evaluator reports while walking the
// AST: undefined variables, operator/operand type mismatches, calling a
// non-callable, and wrong call arity. It carries a formatted message plus
// the offending token's source position, and is an ordinary Go error so
// callers can use `errors.As` instead of type-asserting every result.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Token.Line, e.Message)
}

func newRuntimeError(tok lexer.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// returnSignal is how a `return` statement unwinds to its nearest
// enclosing call: rather than wrapping the value in an object.Value
// variant that every statement visitor would need to check its result
// for, `return` gets its own error type and rides Go's ordinary
// error-propagation up the call stack. callFunction is the only place
// that catches it.
type returnSignal struct {
	value object.Value
}

func (r *returnSignal) Error() string { return "return outside of call" }
