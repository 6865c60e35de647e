package lexml

import (
	"fmt"
	"unicode"
)

// --- Token kinds ------------------------------------------------------------

// Kind is a category type for a Token. The set of kinds is closed: the lexer
// will never produce anything outside of it.
type Kind int8

// All token kinds the lexer can produce.
const (
	KindInvalid         Kind = iota
	KindOpeningTagStart      // <
	KindClosingTagStart      // </
	KindTagEnd               // >
	KindEmptyTagEnd          // />
	KindPIStart              // <?
	KindPIEnd                // ?>
	KindDoctypeStart         // <!DOCTYPE
	KindCommentStart         // <!--
	KindCommentEnd           // -->
	KindCDataStart           // <![CDATA[
	KindCDataEnd             // ]]>
	KindReferenceStart       // &
	KindReferenceEnd         // ;
	KindEqualsSign           // =
	KindSingleQuote          // '
	KindDoubleQuote          // "
	KindCharacter            // any single non-markup character
	KindWhitespace           // a single whitespace character
	KindChunk                // a literal fragment, used for error recovery
)

// kindText is the canonical text for every fixed-text kind. It is the single
// source of truth for token rendering and for error-message fragments.
var kindText = [...]string{
	KindOpeningTagStart: "<",
	KindClosingTagStart: "</",
	KindTagEnd:          ">",
	KindEmptyTagEnd:     "/>",
	KindPIStart:         "<?",
	KindPIEnd:           "?>",
	KindDoctypeStart:    "<!DOCTYPE",
	KindCommentStart:    "<!--",
	KindCommentEnd:      "-->",
	KindCDataStart:      "<![CDATA[",
	KindCDataEnd:        "]]>",
	KindReferenceStart:  "&",
	KindReferenceEnd:    ";",
	KindEqualsSign:      "=",
	KindSingleQuote:     "'",
	KindDoubleQuote:     `"`,
}

var kindNames = [...]string{
	KindInvalid:         "Invalid",
	KindOpeningTagStart: "OpeningTagStart",
	KindClosingTagStart: "ClosingTagStart",
	KindTagEnd:          "TagEnd",
	KindEmptyTagEnd:     "EmptyTagEnd",
	KindPIStart:         "PIStart",
	KindPIEnd:           "PIEnd",
	KindDoctypeStart:    "DoctypeStart",
	KindCommentStart:    "CommentStart",
	KindCommentEnd:      "CommentEnd",
	KindCDataStart:      "CDataStart",
	KindCDataEnd:        "CDataEnd",
	KindReferenceStart:  "ReferenceStart",
	KindReferenceEnd:    "ReferenceEnd",
	KindEqualsSign:      "EqualsSign",
	KindSingleQuote:     "SingleQuote",
	KindDoubleQuote:     "DoubleQuote",
	KindCharacter:       "Character",
	KindWhitespace:      "Whitespace",
	KindChunk:           "Chunk",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Invalid"
	}
	return kindNames[k]
}

// --- Tokens -----------------------------------------------------------------

// Token is a single lexeme of an XML document. Tokens are immutable values
// and comparable with ==; two tokens are equal iff kind and payload match.
//
// Only KindCharacter and KindWhitespace tokens carry a rune, only KindChunk
// tokens carry text. All other kinds render as their fixed markup text.
type Token struct {
	Kind Kind
	Ch   rune   // payload for KindCharacter and KindWhitespace
	Text string // payload for KindChunk
}

// The fixed-text tokens.
var (
	OpeningTagStart = Token{Kind: KindOpeningTagStart}
	ClosingTagStart = Token{Kind: KindClosingTagStart}
	TagEnd          = Token{Kind: KindTagEnd}
	EmptyTagEnd     = Token{Kind: KindEmptyTagEnd}
	PIStart         = Token{Kind: KindPIStart}
	PIEnd           = Token{Kind: KindPIEnd}
	DoctypeStart    = Token{Kind: KindDoctypeStart}
	CommentStart    = Token{Kind: KindCommentStart}
	CommentEnd      = Token{Kind: KindCommentEnd}
	CDataStart      = Token{Kind: KindCDataStart}
	CDataEnd        = Token{Kind: KindCDataEnd}
	ReferenceStart  = Token{Kind: KindReferenceStart}
	ReferenceEnd    = Token{Kind: KindReferenceEnd}
	EqualsSign      = Token{Kind: KindEqualsSign}
	SingleQuote     = Token{Kind: KindSingleQuote}
	DoubleQuote     = Token{Kind: KindDoubleQuote}
)

// Character returns a token for a single non-markup character.
func Character(c rune) Token {
	return Token{Kind: KindCharacter, Ch: c}
}

// Whitespace returns a token for a single whitespace character.
func Whitespace(c rune) Token {
	return Token{Kind: KindWhitespace, Ch: c}
}

// Chunk returns a literal-fragment token. Chunks are only ever produced
// during error recovery, carrying the partially matched markup text.
func Chunk(text string) Token {
	return Token{Kind: KindChunk, Text: text}
}

// String returns the canonical rendering of a token. Concatenating the
// renderings of a full leniently lexed token run reproduces the input.
func (t Token) String() string {
	switch t.Kind {
	case KindCharacter, KindWhitespace:
		return string(t.Ch)
	case KindChunk:
		return t.Text
	}
	if s, ok := t.Fixed(); ok {
		return s
	}
	return "<invalid token>"
}

// Fixed returns the fixed markup text of a token, if it has one. Character,
// whitespace and chunk tokens have none.
func (t Token) Fixed() (string, bool) {
	if t.Kind > KindInvalid && int(t.Kind) < len(kindText) && kindText[t.Kind] != "" {
		return kindText[t.Kind], true
	}
	return "", false
}

// ContainsCharData reports whether this token's text may be interpreted as
// part of character data. Surprisingly this includes '>', '=' and both
// quotes, which are all legal in raw text outside of markup.
func (t Token) ContainsCharData() bool {
	switch t.Kind {
	case KindWhitespace, KindChunk, KindCharacter,
		KindTagEnd, KindEqualsSign, KindDoubleQuote, KindSingleQuote:
		return true
	}
	return false
}

// IsWhitespace reports whether this token is a whitespace character.
func (t Token) IsWhitespace() bool {
	return t.Kind == KindWhitespace
}

// --- Character classes ------------------------------------------------------

// IsXMLWhitespace reports whether c is whitespace according to the XML
// specification (space, tab, carriage return or line feed).
func IsXMLWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// IsNameChar reports whether c may occur in an XML name. This follows the
// NameChar production loosely: Unicode letters and digits plus the few
// allowed punctuation characters.
func IsNameChar(c rune) bool {
	switch c {
	case '-', '.', '_', ':', '·':
		return true
	}
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

// --- Positions and errors ---------------------------------------------------

// Position is a zero-based row/column location in the input stream.
type Position struct {
	Row int
	Col int
}

// Advance moves the position past c: a newline starts the next row, any
// other character moves one column to the right.
func (p *Position) Advance(c rune) {
	if c == '\n' {
		p.Row++
		p.Col = 0
	} else {
		p.Col++
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Error is a lexical error, locating the offending fragment in the input.
// The column points at the first character of the fragment, not at the
// character that triggered detection.
type Error struct {
	Pos Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}
