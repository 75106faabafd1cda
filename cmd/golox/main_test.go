/*
File    : golox/cmd/golox/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/akashmaji946/golox/astprint"
	"github.com/akashmaji946/golox/eval"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseSrc scans and parses src, failing the test on any scan/parse error.
func parseSrc(t *testing.T, src string) []parser.Stmt {
	t.Helper()
	lex := lexer.NewLexer(src)
	tokens := lex.ScanTokens()
	require.Empty(t, lex.Errors)

	p := parser.NewParser(tokens)
	stmts := p.Parse()
	require.False(t, p.HasErrors())
	return stmts
}

func TestRunFile_ExecutesScriptAndReturnsZero(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "golox-*.lox")
	require.NoError(t, err)
	_, err = f.WriteString(`
		fun add(a, b) { return a + b; }
		print add(2, 3);
	`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	code := runFile(f.Name(), false)
	assert.Equal(t, exitOK, code)
}

func TestRunFile_ParseErrorReturnsDataErrCode(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "golox-*.lox")
	require.NoError(t, err)
	_, err = f.WriteString(`1 = 2;`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	code := runFile(f.Name(), false)
	assert.Equal(t, exitDataErr, code)
}

func TestRunFile_RuntimeErrorReturnsSoftwareCode(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "golox-*.lox")
	require.NoError(t, err)
	_, err = f.WriteString(`print missing;`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	code := runFile(f.Name(), false)
	assert.Equal(t, exitSoftware, code)
}

func TestRunFile_MissingFileReturnsOne(t *testing.T) {
	code := runFile("does-not-exist.lox", false)
	assert.Equal(t, 1, code)
}

// TestMain_ASTPrinterDemo exercises the astprint visitor the way golox
// -ast does, over a handful of representative programs.
func TestMain_ASTPrinterDemo(t *testing.T) {
	samples := []string{
		`1 + 2 * 3;`,
		`!!true;`,
		`4 - (1 + 2) + 2 + 3 * 4 / 2;`,
		`var a = 1;`,
		`var a = 11; var b = a + 10;`,
		`if (1 + 1 == 2) { print 2 + 3; }`,
		`if (1 + 1 == 2) { print 2 + 3; } else { print 2 + 4; }`,
		`{ var a = 10; var b = a + 100; }`,
		`fun foo() { var a = 1; var b = 2; return a + b; }`,
		`fun foo(a, b, c, d) { return a * b; }`,
		`foo(1, 2, 3, 4);`,
		`foo(1 + 2 * 3 - 8, true, (2 == 3), !!!!!true);`,
		`var a = 1; var a = 2; var c = a;`,
		`fun fib(n) { if (n == 0) { return 0; } else if (n == 1) { return 1; } else { return fib(n-1) + fib(n-2); } } fib(10);`,
	}

	for _, src := range samples {
		stmts := parseSrc(t, src)
		printer := astprint.New()
		out := printer.Print(stmts)
		assert.NotEmpty(t, out)
	}
}

func TestMain_EvaluatorDemo(t *testing.T) {
	stmts := parseSrc(t, `
		fun fib(n) {
			if (n == 0) { return 0; }
			else if (n == 1) { return 1; }
			else { return fib(n - 1) + fib(n - 2); }
		}
		print fib(10);
	`)

	var buf bytes.Buffer
	it := eval.NewInterpreter()
	it.SetWriter(&buf)
	require.NoError(t, it.Run(stmts))
	assert.Equal(t, "55\n", buf.String())
}
