/*
File    : golox/parser/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a lexer.Token stream into a typed AST and
// implements the recursive-descent grammar that builds it. Expression
// and statement node types each accept a Visitor, so the same AST can be
// walked by multiple independent consumers (an evaluator, a debug
// printer) without the node types knowing about either.
package parser

import "github.com/akashmaji946/golox/lexer"

// Visitor is implemented by anything that walks the AST: the evaluator,
// and astprint's debug printer.
type Visitor interface {
	VisitBinaryExpr(e *BinaryExpr) (interface{}, error)
	VisitUnaryExpr(e *UnaryExpr) (interface{}, error)
	VisitLiteralExpr(e *LiteralExpr) (interface{}, error)
	VisitVariableExpr(e *VariableExpr) (interface{}, error)
	VisitAssignExpr(e *AssignExpr) (interface{}, error)
	VisitCallExpr(e *CallExpr) (interface{}, error)

	VisitExpressionStmt(s *ExpressionStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitDeclarationStmt(s *DeclarationStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitReturnStmt(s *ReturnStmt) error
}

// Expr is any expression node. Expression nodes do not satisfy Stmt; an
// expression statement (an expression followed by ';') wraps one in an
// ExpressionStmt.
type Expr interface {
	AcceptExpr(v Visitor) (interface{}, error)
}

// Stmt is any statement node.
type Stmt interface {
	AcceptStmt(v Visitor) error
}

// BinaryExpr is `left OP right` for op in {+ - * / == != > >= < <= and or}.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *BinaryExpr) AcceptExpr(v Visitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// UnaryExpr is `OP operand` for op in {! -}.
type UnaryExpr struct {
	Operator lexer.Token
	Operand  Expr
}

func (e *UnaryExpr) AcceptExpr(v Visitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// LiteralExpr wraps a constant Number, String, Boolean, or Nil value.
// Value holds a float64, string, bool, or nil respectively.
type LiteralExpr struct {
	Value interface{}
}

func (e *LiteralExpr) AcceptExpr(v Visitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// VariableExpr reads the value bound to Name.Lexeme.
type VariableExpr struct {
	Name lexer.Token
}

func (e *VariableExpr) AcceptExpr(v Visitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// AssignExpr is `Name = Value`.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

func (e *AssignExpr) AcceptExpr(v Visitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// CallExpr is `Callee(Arguments...)`. Paren is the closing ')' token,
// retained so runtime errors (e.g. wrong arity) can report a source
// position.
type CallExpr struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func (e *CallExpr) AcceptExpr(v Visitor) (interface{}, error) { return v.VisitCallExpr(e) }

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

func (s *ExpressionStmt) AcceptStmt(v Visitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates Expr and writes its display form to stdout.
type PrintStmt struct {
	Expr Expr
}

func (s *PrintStmt) AcceptStmt(v Visitor) error { return v.VisitPrintStmt(s) }

// DeclarationStmt is `var Name = Initializer;` (Initializer may be nil,
// meaning "initialize to Nil").
type DeclarationStmt struct {
	Name        lexer.Token
	Initializer Expr
}

func (s *DeclarationStmt) AcceptStmt(v Visitor) error { return v.VisitDeclarationStmt(s) }

// BlockStmt is `{ Statements... }`, a nested lexical scope.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) AcceptStmt(v Visitor) error { return v.VisitBlockStmt(s) }

// IfStmt is `if (Condition) Then else Else` (Else may be nil).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) AcceptStmt(v Visitor) error { return v.VisitIfStmt(s) }

// FunctionStmt declares a named function: `fun Name(Params...) Body`.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) AcceptStmt(v Visitor) error { return v.VisitFunctionStmt(s) }

// ReturnStmt is `return Value;` (Value may be nil, meaning "return Nil").
// Keyword is the `return` token itself, retained for error reporting.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (s *ReturnStmt) AcceptStmt(v Visitor) error { return v.VisitReturnStmt(s) }
