/*
File    : golox/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/golox/lexer"
)

// ErrorType classifies a parse error.
type ErrorType string

const (
	InvalidBinaryOperator   ErrorType = "InvalidBinaryOperator"
	InvalidUnaryOperator    ErrorType = "InvalidUnaryOperator"
	UnexpectedCharacter     ErrorType = "UnexpectedCharacter"
	InvalidAssignmentTarget ErrorType = "InvalidAssignmentTarget"
)

// ParseError carries the offending token (with its line/column) alongside
// a classification, so callers can both report and programmatically
// inspect what went wrong.
type ParseError struct {
	Type    ErrorType
	Token   lexer.Token
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}
