/*
File    : golox/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines the runtime values produced and consumed by the
// evaluator: numbers, strings, booleans, nil, and callables (native and
// user-defined functions). Every value implements the Value interface.
package object

import (
	"fmt"
	"strconv"
)

// ValueType identifies the runtime type of a Value.
type ValueType string

const (
	NumberType         ValueType = "number"
	StringType         ValueType = "string"
	BooleanType        ValueType = "bool"
	NilType            ValueType = "nil"
	FunctionType       ValueType = "function"
	NativeFunctionType ValueType = "native_function"
)

// Value is the interface every golox runtime value implements.
type Value interface {
	// Type reports the value's ValueType, used for dispatch in the
	// evaluator's binary/unary operator tables.
	Type() ValueType
	// String renders the value the way `print` displays it.
	String() string
	// GoString renders a debug form (e.g. "<number(3)>"), used by %#v
	// formatting such as test failure messages, never by `print`.
	GoString() string
}

// Number is a 64-bit floating point value — golox's only numeric type.
type Number struct {
	Value float64
}

func (n *Number) Type() ValueType { return NumberType }

// String renders the shortest decimal representation that round-trips
// back to the same float64.
func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Number) GoString() string { return fmt.Sprintf("<number(%s)>", n.String()) }

// String is a golox string value.
type String struct {
	Value string
}

func (s *String) Type() ValueType  { return StringType }
func (s *String) String() string   { return s.Value }
func (s *String) GoString() string { return fmt.Sprintf("<string(%s)>", s.Value) }

// Boolean is a golox true/false value.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BooleanType }
func (b *Boolean) String() string  { return strconv.FormatBool(b.Value) }
func (b *Boolean) GoString() string {
	return fmt.Sprintf("<bool(%s)>", b.String())
}

// Nil is golox's singular null value.
type Nil struct{}

func (n *Nil) Type() ValueType  { return NilType }
func (n *Nil) String() string   { return "nil" }
func (n *Nil) GoString() string { return "<nil>" }

// NilValue is the single shared Nil instance; golox never needs more than
// one since Nil carries no data.
var NilValue = &Nil{}

// Bool returns the shared Boolean for b, avoiding an allocation per use.
func Bool(b bool) *Boolean {
	if b {
		return trueValue
	}
	return falseValue
}

var (
	trueValue  = &Boolean{Value: true}
	falseValue = &Boolean{Value: false}
)

// IsTruthy reports whether v is exactly Bool(true) — golox has no
// implicit truthiness coercion, so this is only ever consulted for the
// literal Bool(true)/Bool(false) pair and never called on
// Number/String/Nil.
func IsTruthy(v Value) bool {
	b, ok := v.(*Boolean)
	return ok && b.Value
}
