package lexer

import (
	"errors"
	"io"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"

	"github.com/cyderize/lexml"
)

// tracer traces with key 'lexml.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("lexml.lexer")
}

// ErrEnd signals that the character source is exhausted and every pending
// token has been delivered. It is a terminal condition, not a failure.
var ErrEnd = errors.New("no more tokens")

// Lexer is a pull lexer for XML character streams.
//
// A Lexer is created once per input stream and owned by a single goroutine;
// it keeps row/column and recognition state across calls and must not be
// reused for a different source mid-stream. Main method is NextToken, which
// reads from a CharSource until one more token is complete.
type Lexer struct {
	pos         lexml.Position
	st          state
	sub         int  // progress within st, for multi-character sequences
	pushback    rune // a read character belonging to the next token
	hasPushback bool
	skipErrors  bool // lenient mode: recover fragments as Chunk tokens
	eofHandled  bool
}

// New returns a lexer in its initial state: position 0:0, no pending markup,
// strict error reporting.
func New() *Lexer {
	return &Lexer{}
}

// Position returns the current row/column in the input stream, zero-based.
func (l *Lexer) Position() lexml.Position {
	return l.pos
}

// EnableErrors makes NextToken return a *lexml.Error for invalid lexemes.
// This is the initial mode.
func (l *Lexer) EnableErrors() {
	l.skipErrors = false
}

// DisableErrors makes NextToken return invalid lexemes as Chunk tokens
// instead of errors. Lexing then never halts on malformed input.
func (l *Lexer) DisableErrors() {
	l.skipErrors = true
}

// NextToken reads characters from src until the next token is complete and
// returns it. It returns ErrEnd once src is exhausted and no token is
// pending; after that, every further call returns ErrEnd again.
//
// In strict mode an invalid lexeme is returned as a *lexml.Error carrying
// the row/column of the offending fragment. The fragment's characters are
// consumed by the report; calling NextToken again continues lexing from the
// character that followed the fragment, it does not repeat the error.
//
// Passing a different src on a later call is possible but leaves row/column
// tracking meaningless; a fresh Lexer per input is the supported use.
func (l *Lexer) NextToken(src CharSource) (lexml.Token, error) {
	if l.eofHandled {
		return lexml.Token{}, ErrEnd
	}
	if l.hasPushback {
		c := l.pushback
		l.hasPushback = false
		if tok, ok, err := l.dispatch(c); ok || err != nil {
			return tok, err
		}
	}
	for {
		c, err := src.ReadChar()
		if err == io.EOF {
			break
		} else if err != nil {
			return lexml.Token{}, err
		}
		l.pos.Advance(c)
		if tok, ok, err := l.dispatch(c); ok || err != nil {
			return tok, err
		}
	}
	return l.finalize()
}

// finalize resolves the lexer's state when the input is exhausted. States
// whose pending prefix is itself a valid character or chunk emit it; states
// in the middle of a longer markup sequence are a hard error. Runs at most
// once per lexer.
func (l *Lexer) finalize() (lexml.Token, error) {
	l.eofHandled = true
	tracer().Debugf("lexer reached end of input in state %d", l.st)
	switch l.st {
	case stateNormal:
		return lexml.Token{}, ErrEnd
	case statePIClosing:
		return lexml.Character('?'), nil
	case stateEmptyTagClosing:
		return lexml.Character('/'), nil
	case stateCommentClosing:
		if l.sub == 0 {
			return lexml.Character('-'), nil
		}
	case stateCDataClosing:
		if l.sub == 0 {
			return lexml.Character(']'), nil
		}
		return lexml.Chunk("]]"), nil
	}
	// TagOpened, MarkupDecl, CommentStarted, DoctypeStarted, CDataStarted
	// and the doubled comment dash have no shorter valid reading.
	return lexml.Token{}, &lexml.Error{Pos: l.pos, Msg: "Unexpected end of stream"}
}

// Collect drains the lexer over src and returns all produced tokens.
// With a lenient lexer the returned list covers the complete input; in
// strict mode collection stops at the first lexical error, returning the
// tokens gathered so far alongside it.
func Collect(l *Lexer, src CharSource) (*arraylist.List, error) {
	tokens := arraylist.New()
	for {
		tok, err := l.NextToken(src)
		if err == ErrEnd {
			return tokens, nil
		} else if err != nil {
			return tokens, err
		}
		tokens.Add(tok)
	}
}
