/*
File    : golox/cmd/golox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for golox. It provides three modes of
operation:
 1. REPL mode (default): interactive read-eval-print loop
 2. File mode: execute a golox source file
 3. Serve mode: `golox serve <port>` runs a REPL server, one goroutine
    per connection
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/golox/astprint"
	"github.com/akashmaji946/golox/eval"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/repl"
	"github.com/fatih/color"
)

// VERSION is golox's version string.
var VERSION = "v1.0.0"

// AUTHOR is the interpreter's author contact.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE is golox's software license.
var LICENSE = "MIT"

// PROMPT is shown in REPL mode.
var PROMPT = "golox >>> "

// BANNER is the REPL's startup ASCII art.
var BANNER = `
   ▗▄▄▖ ▗▄▖ ▗▖    ▗▄▖ ▗▖  ▗▖
  ▐▌   ▐▌ ▐▌▐▌   ▐▌ ▐▌ ▝▚▞▘
  ▐▌▝▜▌▐▌ ▐▌▐▌   ▐▌ ▐▌  ▐▌
  ▝▚▄▞▘▝▚▄▞▘▐▙▄▄▖▝▚▄▞▘  ▐▌
`

// LINE separates sections of REPL/CLI output.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Exit codes follow the sysexits.h convention: 0 success, 65
// (EX_DATAERR) for scan/parse errors, 70 (EX_SOFTWARE) for a runtime
// error.
const (
	exitOK       = 0
	exitDataErr  = 65
	exitSoftware = 70
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(exitOK)
		case "--version", "-v":
			showVersion()
			os.Exit(exitOK)
		case "serve":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port. Usage: golox serve <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		printAST := false
		fileName := arg
		if arg == "-ast" {
			printAST = true
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing file. Usage: golox -ast <path>\n")
				os.Exit(1)
			}
			fileName = os.Args[2]
		}
		os.Exit(runFile(fileName, printAST))
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("golox - a small Lox-family scripting language interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  golox                    Start interactive REPL mode")
	yellowColor.Println("  golox <path-to-file>     Execute a golox file")
	yellowColor.Println("  golox -ast <path>        Print the parsed AST instead of running it")
	yellowColor.Println("  golox serve <port>       Start a REPL server on the given port")
	yellowColor.Println("  golox --help             Display this help message")
	yellowColor.Println("  golox --version          Display version information")
}

func showVersion() {
	cyanColor.Println("golox - a small Lox-family scripting language interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a golox source file, returning the process
// exit code: 0 on success, 65 on scan/parse errors, 70 on a runtime
// error that terminates the run.
func runFile(fileName string, printTree bool) int {
	src, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", fileName, err)
		return 1
	}

	lex := lexer.NewLexer(string(src))
	tokens := lex.ScanTokens()
	if len(lex.Errors) > 0 {
		for _, e := range lex.Errors {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		return exitDataErr
	}

	p := parser.NewParser(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		return exitDataErr
	}

	if printTree {
		printer := astprint.New()
		fmt.Print(printer.Print(stmts))
		return exitOK
	}

	interp := eval.NewInterpreter()
	if err := interp.Run(stmts); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		return exitSoftware
	}
	return exitOK
}
