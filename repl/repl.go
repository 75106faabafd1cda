/*
File    : golox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements golox's Read-Eval-Print Loop: an interactive
shell over the scanner, parser, and evaluator, presented with
chzyer/readline for line editing and history and fatih/color for
colorized output.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/golox/eval"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given banner/version/author/line/
// license/prompt.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to golox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop until the user exits (`.exit` or EOF).
// A single Interpreter is created up front and reused for every line, so
// the global environment persists across iterations: variables and
// functions declared on one line remain available on later lines.
// reader is kept for interface symmetry with writer but is not read
// directly — readline owns the input side.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	interp := eval.NewInterpreter()
	interp.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, interp)
	}
}

// executeWithRecovery scans, parses, and evaluates one line, recovering
// from any panic so a single bad input never takes down the session —
// unlike file mode, the REPL must keep running after an error.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, interp *eval.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	lex := lexer.NewLexer(line)
	tokens := lex.ScanTokens()
	if len(lex.Errors) > 0 {
		for _, e := range lex.Errors {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	p := parser.NewParser(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	if err := interp.Run(stmts); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}
