/*
File    : golox/eval/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/function"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/object"
	"github.com/akashmaji946/golox/parser"
)

// VisitLiteralExpr converts a parsed constant into its runtime Value.
func (it *Interpreter) VisitLiteralExpr(e *parser.LiteralExpr) (interface{}, error) {
	switch v := e.Value.(type) {
	case float64:
		return &object.Number{Value: v}, nil
	case string:
		return &object.String{Value: v}, nil
	case bool:
		return object.Bool(v), nil
	case nil:
		return object.NilValue, nil
	}
	return object.NilValue, nil
}

// VisitVariableExpr resolves Name by walking the environment chain
// outward, the first matching scope winning. Reading an undefined
// variable is a RuntimeError: a typo in a variable name should fail
// loudly rather than silently evaluate to Nil.
func (it *Interpreter) VisitVariableExpr(e *parser.VariableExpr) (interface{}, error) {
	v, ok := it.current.Get(e.Name.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Name, "undefined variable '%s'", e.Name.Lexeme)
	}
	return v, nil
}

// VisitAssignExpr evaluates Value and assigns it to the existing binding
// of Name, walking outward through enclosing environments; it never
// creates a new binding. The expression's own result is the assigned
// value itself, so `print a = 3;` and chained assignment (`a = b = 2;`)
// behave the way every C-family language's assignment expression does.
func (it *Interpreter) VisitAssignExpr(e *parser.AssignExpr) (interface{}, error) {
	value, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if !it.current.Assign(e.Name.Lexeme, value) {
		return nil, newRuntimeError(e.Name, "undefined variable '%s'", e.Name.Lexeme)
	}
	return value, nil
}

// VisitUnaryExpr implements `!` and unary `-`: `-Number → Number`,
// `!Bool → Bool`.
func (it *Interpreter) VisitUnaryExpr(e *parser.UnaryExpr) (interface{}, error) {
	operand, err := it.evaluate(e.Operand)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := operand.(*object.Number)
		if !ok {
			return nil, newRuntimeError(e.Operator, "unary '-' requires a number, got %s", operand.Type())
		}
		return &object.Number{Value: -n.Value}, nil
	case lexer.BANG:
		b, ok := operand.(*object.Boolean)
		if !ok {
			return nil, newRuntimeError(e.Operator, "unary '!' requires a bool, got %s", operand.Type())
		}
		return object.Bool(!b.Value), nil
	}
	return nil, newRuntimeError(e.Operator, "unknown unary operator '%s'", e.Operator.Lexeme)
}

// VisitBinaryExpr implements golox's binary operators:
//
//	+ - * /        Number, Number -> Number
//	== !=          any, any       -> Bool (type mismatch is false/true, not an error)
//	> >= < <=      Number, Number -> Bool
//	and or         Bool, Bool     -> Bool (non-short-circuiting: both sides always evaluate)
func (it *Interpreter) VisitBinaryExpr(e *parser.BinaryExpr) (interface{}, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH:
		return evalArithmetic(e.Operator, left, right)
	case lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL:
		return evalComparison(e.Operator, left, right)
	case lexer.EQUAL_EQUAL:
		return object.Bool(valuesEqual(left, right)), nil
	case lexer.BANG_EQUAL:
		return object.Bool(!valuesEqual(left, right)), nil
	case lexer.AND_KEY, lexer.OR_KEY:
		return evalLogical(e.Operator, left, right)
	}
	return nil, newRuntimeError(e.Operator, "unknown binary operator '%s'", e.Operator.Lexeme)
}

func evalArithmetic(op lexer.Token, left, right object.Value) (object.Value, error) {
	l, lok := left.(*object.Number)
	r, rok := right.(*object.Number)
	if !lok || !rok {
		return nil, newRuntimeError(op, "operator '%s' requires two numbers, got %s and %s", op.Lexeme, left.Type(), right.Type())
	}
	switch op.Type {
	case lexer.PLUS:
		return &object.Number{Value: l.Value + r.Value}, nil
	case lexer.MINUS:
		return &object.Number{Value: l.Value - r.Value}, nil
	case lexer.STAR:
		return &object.Number{Value: l.Value * r.Value}, nil
	case lexer.SLASH:
		return &object.Number{Value: l.Value / r.Value}, nil
	}
	panic("unreachable")
}

func evalComparison(op lexer.Token, left, right object.Value) (object.Value, error) {
	l, lok := left.(*object.Number)
	r, rok := right.(*object.Number)
	if !lok || !rok {
		return nil, newRuntimeError(op, "operator '%s' requires two numbers, got %s and %s", op.Lexeme, left.Type(), right.Type())
	}
	switch op.Type {
	case lexer.GREATER:
		return object.Bool(l.Value > r.Value), nil
	case lexer.GREATER_EQUAL:
		return object.Bool(l.Value >= r.Value), nil
	case lexer.LESS:
		return object.Bool(l.Value < r.Value), nil
	case lexer.LESS_EQUAL:
		return object.Bool(l.Value <= r.Value), nil
	}
	panic("unreachable")
}

// evalLogical implements non-short-circuiting `and`/`or`: both operands
// are always evaluated (already done by the caller), and both must be
// Bool.
func evalLogical(op lexer.Token, left, right object.Value) (object.Value, error) {
	l, lok := left.(*object.Boolean)
	r, rok := right.(*object.Boolean)
	if !lok || !rok {
		return nil, newRuntimeError(op, "operator '%s' requires two bools, got %s and %s", op.Lexeme, left.Type(), right.Type())
	}
	if op.Type == lexer.AND_KEY {
		return object.Bool(l.Value && r.Value), nil
	}
	return object.Bool(l.Value || r.Value), nil
}

// valuesEqual implements `==`'s extended equality: Number/Number and
// String/String compare by value, Bool/Bool by value, Nil/Nil is always
// true, and any type mismatch (or any other pairing) is simply false
// rather than a RuntimeError.
func valuesEqual(left, right object.Value) bool {
	switch l := left.(type) {
	case *object.Number:
		r, ok := right.(*object.Number)
		return ok && l.Value == r.Value
	case *object.String:
		r, ok := right.(*object.String)
		return ok && l.Value == r.Value
	case *object.Boolean:
		r, ok := right.(*object.Boolean)
		return ok && l.Value == r.Value
	case *object.Nil:
		_, ok := right.(*object.Nil)
		return ok
	}
	return false
}

// VisitCallExpr evaluates Callee, then each argument left-to-right,
// and invokes the result. NativeFunction and Function are dispatched
// uniformly since both satisfy object.Value and expose Arity().
func (it *Interpreter) VisitCallExpr(e *parser.CallExpr) (interface{}, error) {
	callee, err := it.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		arg, err := it.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	switch fn := callee.(type) {
	case *function.NativeFunction:
		if len(args) != fn.Arity() {
			return nil, newRuntimeError(e.Paren, "expected %d arguments but got %d", fn.Arity(), len(args))
		}
		return fn.GoFunc(args)
	case *function.Function:
		return it.callFunction(fn, args, e.Paren)
	}
	return nil, newRuntimeError(e.Paren, "can only call functions, got %s", callee.Type())
}

// callFunction invokes a user-defined Function: it checks arity, creates
// a fresh environment enclosed by the function's captured closure, binds
// parameters to arguments, and executes the body. A returnSignal unwind
// is caught here and becomes the call's result; falling off the end of
// the body yields Nil.
func (it *Interpreter) callFunction(fn *function.Function, args []object.Value, paren lexer.Token) (object.Value, error) {
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(paren, "expected %d arguments but got %d", fn.Arity(), len(args))
	}

	callEnv := environment.New(fn.Closure)
	for i, param := range fn.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	previous := it.current
	it.current = callEnv
	defer func() { it.current = previous }()

	for _, stmt := range fn.Body {
		err := it.execute(stmt)
		if err == nil {
			continue
		}
		if ret, ok := err.(*returnSignal); ok {
			return ret.value, nil
		}
		return nil, err
	}
	return object.NilValue, nil
}
