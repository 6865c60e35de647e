package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/cyderize/lexml"
	"github.com/cyderize/lexml/lexer"
)

// tracer traces with key 'lexml.repl'.
func tracer() tracing.Trace {
	return tracing.Select("lexml.repl")
}

// main starts an interactive CLI where users may enter lines of XML text.
// Each line is run through the lexer and the resulting token stream is
// printed, one token per row. This is a sandbox for inspecting how markup
// is sliced into lexemes, intended for development of the downstream
// parser; it is not part of the lexing API.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	strict := flag.Bool("strict", false, "Report invalid lexemes as errors instead of chunks")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to the lexml token REPL")
	pterm.Info.Println("Enter a line of XML text to see its token stream")
	tracer().Infof("Quit with <ctrl>D")
	//
	repl, err := readline.New("lexml> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		dump(line, *strict)
	}
	println("Good bye!")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// dump lexes one input line and prints every resulting token.
func dump(input string, strict bool) {
	l := lexer.New()
	if !strict {
		l.DisableErrors()
	}
	tokens, err := lexer.Collect(l, lexer.NewStringSource(input))
	it := tokens.Iterator()
	for it.Next() {
		tok := it.Value().(lexml.Token)
		pterm.Println(fmt.Sprintf(" %3d | %-16s | %q", it.Index(), tok.Kind, tok.String()))
	}
	if err != nil {
		pterm.Error.Println(err.Error())
	}
}
