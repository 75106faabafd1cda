/*
File    : golox/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run scans, parses, and evaluates src against a fresh Interpreter,
// returning everything `print` wrote, one line per statement.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	lex := lexer.NewLexer(src)
	tokens := lex.ScanTokens()
	require.Empty(t, lex.Errors)

	p := parser.NewParser(tokens)
	stmts := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.Errors)

	var buf bytes.Buffer
	it := NewInterpreter()
	it.SetWriter(&buf)
	err := it.Run(stmts)
	return buf.String(), err
}

func TestEval_ArithmeticPrecedence(t *testing.T) {
	out, err := run(t, "print 1 + 2 * 3;")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestEval_NestedBlockShadowing(t *testing.T) {
	out, err := run(t, `
		var a = 4;
		{
			var a = 5;
			print a;
		}
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, "5\n4\n", out)
}

func TestEval_AssignmentReachesOuterScope(t *testing.T) {
	out, err := run(t, `
		var a = 1;
		{
			a = 2;
		}
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestEval_IfEquality(t *testing.T) {
	out, err := run(t, `
		if (2 + 2 == 4) {
			print 4;
		} else {
			print 0;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestEval_ClosureCounter(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestEval_ClockReturnsNonNegativeNumber(t *testing.T) {
	out, err := run(t, "print clock() >= 0;")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestEval_VarWithoutNameIsParseErrorNotEvaluated(t *testing.T) {
	lex := lexer.NewLexer("var = 3;")
	tokens := lex.ScanTokens()
	p := parser.NewParser(tokens)
	stmts := p.Parse()

	assert.Nil(t, stmts)
	require.True(t, p.HasErrors())
	assert.Equal(t, parser.UnexpectedCharacter, p.Errors[0].Type)
}

func TestEval_UndefinedVariableReadIsRuntimeError(t *testing.T) {
	_, err := run(t, "print missing;")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "undefined variable"))
}

func TestEval_AssignToUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, "missing = 1;")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "undefined variable"))
}

func TestEval_AssignmentExpressionYieldsAssignedValue(t *testing.T) {
	out, err := run(t, `
		var a = 1;
		var b = 1;
		print a = b = 2;
		print a;
		print b;
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n2\n2\n", out)
}

func TestEval_UnaryOperators(t *testing.T) {
	out, err := run(t, `
		print -5;
		print !true;
		print !false;
	`)
	require.NoError(t, err)
	assert.Equal(t, "-5\nfalse\ntrue\n", out)
}

func TestEval_EqualityAcrossTypesIsFalseNotError(t *testing.T) {
	out, err := run(t, `print 1 == "1";`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestEval_NilEqualsNil(t *testing.T) {
	out, err := run(t, `
		var a;
		print a == nil;
	`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestEval_LogicalAndOr(t *testing.T) {
	out, err := run(t, `
		print true and false;
		print true or false;
	`)
	require.NoError(t, err)
	assert.Equal(t, "false\ntrue\n", out)
}

func TestEval_FunctionArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "expected 2 arguments"))
}

func TestEval_CurriedCalls(t *testing.T) {
	out, err := run(t, `
		fun adder(a) {
			fun add(b) {
				return a + b;
			}
			return add;
		}
		print adder(1)(2);
	`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestEval_ReturnSkipsRemainingBodyStatements(t *testing.T) {
	out, err := run(t, `
		fun f() {
			return 1;
			print "unreachable";
		}
		print f();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestEval_TopLevelReturnSurfacesAsError(t *testing.T) {
	_, err := run(t, "return 1;")
	require.Error(t, err, "a return outside any function must reach the driver as an error")
}

func TestEval_RedeclarationOverwrites(t *testing.T) {
	out, err := run(t, `
		var a = 1;
		var a = 2;
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestEval_DivisionByZeroYieldsInfNotError(t *testing.T) {
	out, err := run(t, `print 1 / 0;`)
	require.NoError(t, err)
	assert.Equal(t, "+Inf\n", out)
}

func TestEval_StringConcatenationIsNotSupported(t *testing.T) {
	_, err := run(t, `print "a" + "b";`)
	require.Error(t, err, "'+' is numeric-only; it must surface as a RuntimeError, not silently concatenate")
}

func TestEval_IfWithNonBoolConditionTakesElseWithoutError(t *testing.T) {
	out, err := run(t, `
		if (1) {
			print "then";
		} else {
			print "else";
		}
		if (nil) {
			print "then";
		}
		print "after";
	`)
	require.NoError(t, err)
	assert.Equal(t, "else\nafter\n", out)
}

func TestEval_PrintFunctionValue(t *testing.T) {
	out, err := run(t, `
		fun greet() {}
		print greet;
		print clock;
	`)
	require.NoError(t, err)
	assert.Equal(t, "function greet()\nfunction clock()\n", out)
}
