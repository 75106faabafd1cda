/*
File    : golox/astprint/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package astprint implements a debug-printing parser.Visitor: it walks
// a parsed program the same way an evaluator would, but renders an
// indented trace of each node instead of executing it. It prints each
// binary/unary operator's own token lexeme directly rather than
// re-deriving a display symbol from a separate lookup table, so the two
// can never drift out of sync with each other.
package astprint

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/golox/parser"
)

const indentSize = 2

// Printer walks an AST and renders an indented, one-line-per-node trace
// of it into buf.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// New creates an empty Printer.
func New() *Printer {
	return &Printer{}
}

// Print renders stmts and returns the accumulated text.
func (p *Printer) Print(stmts []parser.Stmt) string {
	for _, s := range stmts {
		s.AcceptStmt(p)
	}
	return p.buf.String()
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
}

func (p *Printer) line(format string, args ...interface{}) {
	p.writeIndent()
	p.buf.WriteString(fmt.Sprintf(format, args...))
	p.buf.WriteByte('\n')
}

func (p *Printer) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

// ---- expressions ----

func (p *Printer) VisitBinaryExpr(e *parser.BinaryExpr) (interface{}, error) {
	p.line("Binary (%s)", e.Operator.Lexeme)
	p.nested(func() {
		e.Left.AcceptExpr(p)
		e.Right.AcceptExpr(p)
	})
	return nil, nil
}

func (p *Printer) VisitUnaryExpr(e *parser.UnaryExpr) (interface{}, error) {
	p.line("Unary (%s)", e.Operator.Lexeme)
	p.nested(func() {
		e.Operand.AcceptExpr(p)
	})
	return nil, nil
}

func (p *Printer) VisitLiteralExpr(e *parser.LiteralExpr) (interface{}, error) {
	p.line("Literal (%v)", e.Value)
	return nil, nil
}

func (p *Printer) VisitVariableExpr(e *parser.VariableExpr) (interface{}, error) {
	p.line("Variable (%s)", e.Name.Lexeme)
	return nil, nil
}

func (p *Printer) VisitAssignExpr(e *parser.AssignExpr) (interface{}, error) {
	p.line("Assign (%s)", e.Name.Lexeme)
	p.nested(func() {
		e.Value.AcceptExpr(p)
	})
	return nil, nil
}

func (p *Printer) VisitCallExpr(e *parser.CallExpr) (interface{}, error) {
	p.line("Call (%d args)", len(e.Arguments))
	p.nested(func() {
		e.Callee.AcceptExpr(p)
		for _, arg := range e.Arguments {
			arg.AcceptExpr(p)
		}
	})
	return nil, nil
}

// ---- statements ----

func (p *Printer) VisitExpressionStmt(s *parser.ExpressionStmt) error {
	p.line("ExpressionStmt")
	p.nested(func() {
		s.Expr.AcceptExpr(p)
	})
	return nil
}

func (p *Printer) VisitPrintStmt(s *parser.PrintStmt) error {
	p.line("PrintStmt")
	p.nested(func() {
		s.Expr.AcceptExpr(p)
	})
	return nil
}

func (p *Printer) VisitDeclarationStmt(s *parser.DeclarationStmt) error {
	p.line("DeclarationStmt (%s)", s.Name.Lexeme)
	if s.Initializer != nil {
		p.nested(func() {
			s.Initializer.AcceptExpr(p)
		})
	}
	return nil
}

func (p *Printer) VisitBlockStmt(s *parser.BlockStmt) error {
	p.line("BlockStmt")
	p.nested(func() {
		for _, stmt := range s.Statements {
			stmt.AcceptStmt(p)
		}
	})
	return nil
}

func (p *Printer) VisitIfStmt(s *parser.IfStmt) error {
	p.line("IfStmt")
	p.nested(func() {
		s.Condition.AcceptExpr(p)
		s.Then.AcceptStmt(p)
		if s.Else != nil {
			s.Else.AcceptStmt(p)
		}
	})
	return nil
}

func (p *Printer) VisitFunctionStmt(s *parser.FunctionStmt) error {
	names := ""
	for i, param := range s.Params {
		if i > 0 {
			names += ", "
		}
		names += param.Lexeme
	}
	p.line("FunctionStmt (%s(%s))", s.Name.Lexeme, names)
	p.nested(func() {
		for _, stmt := range s.Body {
			stmt.AcceptStmt(p)
		}
	})
	return nil
}

func (p *Printer) VisitReturnStmt(s *parser.ReturnStmt) error {
	p.line("ReturnStmt")
	if s.Value != nil {
		p.nested(func() {
			s.Value.AcceptExpr(p)
		})
	}
	return nil
}
