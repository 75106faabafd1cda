/*
File    : golox/eval/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/function"
	"github.com/akashmaji946/golox/object"
	"github.com/akashmaji946/golox/parser"
)

// VisitExpressionStmt evaluates Expr and discards the result.
func (it *Interpreter) VisitExpressionStmt(s *parser.ExpressionStmt) error {
	_, err := it.evaluate(s.Expr)
	return err
}

// VisitPrintStmt evaluates Expr and writes its display form followed by
// a newline to the interpreter's writer.
func (it *Interpreter) VisitPrintStmt(s *parser.PrintStmt) error {
	v, err := it.evaluate(s.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(it.Writer, v.String())
	return nil
}

// VisitDeclarationStmt evaluates Initializer (or uses Nil) and defines
// Name in the current environment, overwriting any existing local
// binding of the same name — re-declaration overwrites rather than
// erroring.
func (it *Interpreter) VisitDeclarationStmt(s *parser.DeclarationStmt) error {
	var value object.Value = object.NilValue
	if s.Initializer != nil {
		v, err := it.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	it.current.Define(s.Name.Lexeme, value)
	return nil
}

// VisitBlockStmt creates a new environment enclosing the current one,
// swaps it in, and executes the block's statements. The prior
// environment is restored via defer, so it is restored on every exit
// path — normal completion, a RuntimeError, or a returnSignal unwind —
// rather than only on the success path, which would leak the block's
// environment into the parent on an early return.
func (it *Interpreter) VisitBlockStmt(s *parser.BlockStmt) error {
	previous := it.current
	it.current = environment.New(previous)
	defer func() { it.current = previous }()

	for _, stmt := range s.Statements {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// VisitIfStmt evaluates Condition and executes Then only when the result
// is exactly Bool(true). Every other result — Bool(false), Nil, a
// Number, a String — takes the Else branch (or does nothing, if there is
// none): there is no truthiness coercion and no error for a non-Bool
// condition.
func (it *Interpreter) VisitIfStmt(s *parser.IfStmt) error {
	cond, err := it.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if b, ok := cond.(*object.Boolean); ok && b.Value {
		return it.execute(s.Then)
	}
	if s.Else != nil {
		return it.execute(s.Else)
	}
	return nil
}

// VisitFunctionStmt creates a Function capturing the current environment
// as its closure and binds it to Name in that same environment: function
// values capture the defining environment by shared reference, not by
// copy.
func (it *Interpreter) VisitFunctionStmt(s *parser.FunctionStmt) error {
	fn := &function.Function{
		Name:    s.Name.Lexeme,
		Params:  s.Params,
		Body:    s.Body,
		Closure: it.current,
	}
	it.current.Define(s.Name.Lexeme, fn)
	return nil
}

// VisitReturnStmt evaluates Value (or uses Nil) and unwinds to the
// nearest enclosing call via returnSignal.
func (it *Interpreter) VisitReturnStmt(s *parser.ReturnStmt) error {
	var value object.Value = object.NilValue
	if s.Value != nil {
		v, err := it.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &returnSignal{value: value}
}
