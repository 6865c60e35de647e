package lexer

import (
	"fmt"

	"github.com/cyderize/lexml"
)

// --- Lexer states -----------------------------------------------------------

// state is the lexer's memory of a partially recognized markup sequence.
// The doctype, cdata and closing states carry an additional progress marker
// in Lexer.sub.
type state int8

const (
	stateNormal          state = iota
	stateTagOpened             // '<'
	stateMarkupDecl            // '<!', branches into comment, cdata or doctype
	stateCommentStarted        // '<!-'
	stateDoctypeStarted        // '<!D' up to '<!DOCTYP', sub indexes doctypeRest
	stateCDataStarted          // '<![' up to '<![CDATA', sub indexes cdataRest
	statePIClosing             // '?'
	stateEmptyTagClosing       // '/'
	stateCommentClosing        // '-' (sub 0) or '--' (sub 1)
	stateCDataClosing          // ']' (sub 0) or ']]' (sub 1)
)

// Expected remainders of the two long keywords, matched one character at a
// time. The fragment seen so far at progress i is the prefix plus rest[:i];
// keeping these static avoids any string building on the hot path.
const (
	doctypePrefix = "<!D"
	doctypeRest   = "OCTYPE"
	cdataPrefix   = "<!["
	cdataRest     = "CDATA["
)

// dispatch feeds one character to the current state's transition function.
// It returns either a finished token, a lexical error, or neither when more
// input is needed.
func (l *Lexer) dispatch(c rune) (lexml.Token, bool, error) {
	switch l.st {
	case stateNormal:
		return l.normal(c)
	case stateTagOpened:
		return l.tagOpened(c)
	case stateMarkupDecl:
		return l.markupDecl(c)
	case stateCommentStarted:
		return l.commentStarted(c)
	case stateDoctypeStarted:
		return l.keyword(c, doctypePrefix, doctypeRest, lexml.DoctypeStart)
	case stateCDataStarted:
		return l.keyword(c, cdataPrefix, cdataRest, lexml.CDataStart)
	case statePIClosing:
		return l.piClosing(c)
	case stateEmptyTagClosing:
		return l.emptyTagClosing(c)
	case stateCommentClosing:
		return l.closing(c, '-', lexml.CommentEnd, lexml.Chunk("--"))
	case stateCDataClosing:
		return l.closing(c, ']', lexml.CDataEnd, lexml.Chunk("]]"))
	}
	panic(fmt.Sprintf("lexer in unknown state %d", l.st))
}

// --- Transition helpers -----------------------------------------------------

// moveTo enters st without producing a token.
func (l *Lexer) moveTo(st state) (lexml.Token, bool, error) {
	l.st = st
	l.sub = 0
	return lexml.Token{}, false, nil
}

// emit yields tok and resets to the normal state.
func (l *Lexer) emit(tok lexml.Token) (lexml.Token, bool, error) {
	l.st = stateNormal
	l.sub = 0
	return tok, true, nil
}

// emitUnread yields tok and re-queues c: the character just read belongs to
// the next token, not to this one.
func (l *Lexer) emitUnread(c rune, tok lexml.Token) (lexml.Token, bool, error) {
	l.pushback = c
	l.hasPushback = true
	return l.emit(tok)
}

// fail handles a character that does not continue the expected sequence.
// In lenient mode the partial fragment becomes a Chunk token and c is
// re-queued, so no input is lost. In strict mode an error is produced whose
// column points at the start of the fragment; the state machine still resets
// to normal with c re-queued, so a caller may keep lexing after reporting.
func (l *Lexer) fail(fragment string, c rune) (lexml.Token, bool, error) {
	l.pushback = c
	l.hasPushback = true
	l.st = stateNormal
	l.sub = 0
	if l.skipErrors {
		return lexml.Chunk(fragment), true, nil
	}
	err := &lexml.Error{
		Pos: lexml.Position{Row: l.pos.Row, Col: l.pos.Col - len(fragment) - 1},
		Msg: fmt.Sprintf("Unexpected token %s before %c", fragment, c),
	}
	tracer().Debugf("lexical error at %s: %v", err.Pos, err)
	return lexml.Token{}, false, err
}

// --- Transition functions ---------------------------------------------------

// normal classifies a character with no markup pending.
func (l *Lexer) normal(c rune) (lexml.Token, bool, error) {
	switch c {
	case '<':
		return l.moveTo(stateTagOpened)
	case '>':
		return l.emit(lexml.TagEnd)
	case '/':
		return l.moveTo(stateEmptyTagClosing)
	case '=':
		return l.emit(lexml.EqualsSign)
	case '"':
		return l.emit(lexml.DoubleQuote)
	case '\'':
		return l.emit(lexml.SingleQuote)
	case '?':
		return l.moveTo(statePIClosing)
	case '-':
		return l.moveTo(stateCommentClosing)
	case ']':
		return l.moveTo(stateCDataClosing)
	case '&':
		return l.emit(lexml.ReferenceStart)
	case ';':
		return l.emit(lexml.ReferenceEnd)
	}
	if lexml.IsXMLWhitespace(c) {
		return l.emit(lexml.Whitespace(c))
	}
	return l.emit(lexml.Character(c))
}

// tagOpened resolves what the '<' introduces.
func (l *Lexer) tagOpened(c rune) (lexml.Token, bool, error) {
	switch {
	case c == '?':
		return l.emit(lexml.PIStart)
	case c == '/':
		return l.emit(lexml.ClosingTagStart)
	case c == '!':
		return l.moveTo(stateMarkupDecl)
	case lexml.IsXMLWhitespace(c) || lexml.IsNameChar(c):
		// the '<' alone was the token
		return l.emitUnread(c, lexml.OpeningTagStart)
	}
	return l.fail("<", c)
}

// markupDecl branches on the character after '<!'.
func (l *Lexer) markupDecl(c rune) (lexml.Token, bool, error) {
	switch c {
	case '-':
		return l.moveTo(stateCommentStarted)
	case '[':
		return l.moveTo(stateCDataStarted)
	case 'D':
		return l.moveTo(stateDoctypeStarted)
	}
	return l.fail("<!", c)
}

// commentStarted expects the second '-' of '<!--'.
func (l *Lexer) commentStarted(c rune) (lexml.Token, bool, error) {
	if c == '-' {
		return l.emit(lexml.CommentStart)
	}
	return l.fail("<!-", c)
}

// keyword advances the progressive match of a long fixed keyword. Any
// mismatch fails with the fragment consumed so far.
func (l *Lexer) keyword(c rune, prefix, rest string, tok lexml.Token) (lexml.Token, bool, error) {
	if c != rune(rest[l.sub]) {
		return l.fail(prefix+rest[:l.sub], c)
	}
	if l.sub == len(rest)-1 {
		return l.emit(tok)
	}
	l.sub++
	return lexml.Token{}, false, nil
}

// piClosing expects '>' completing '?>'; anything else means the '?' was a
// plain character.
func (l *Lexer) piClosing(c rune) (lexml.Token, bool, error) {
	if c == '>' {
		return l.emit(lexml.PIEnd)
	}
	return l.emitUnread(c, lexml.Character('?'))
}

// emptyTagClosing expects '>' completing '/>'.
func (l *Lexer) emptyTagClosing(c rune) (lexml.Token, bool, error) {
	if c == '>' {
		return l.emit(lexml.EmptyTagEnd)
	}
	return l.emitUnread(c, lexml.Character('/'))
}

// closing tracks the two-step closers '-->' and ']]>'. mark is the repeated
// character, tok the token on a final '>', chunk the recovery token when the
// doubled mark is not followed by '>'.
func (l *Lexer) closing(c rune, mark rune, tok, chunk lexml.Token) (lexml.Token, bool, error) {
	if l.sub == 0 {
		if c == mark {
			l.sub = 1
			return lexml.Token{}, false, nil
		}
		return l.emitUnread(c, lexml.Character(mark))
	}
	if c == '>' {
		return l.emit(tok)
	}
	return l.emitUnread(c, chunk)
}
