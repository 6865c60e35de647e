package lexer

import (
	"bufio"
	"io"
	"strings"
)

// --- Character sources ------------------------------------------------------

// CharSource is the pull-style input boundary of the lexer: it delivers one
// decoded character per call and signals io.EOF when no characters remain.
// Decoding bytes into characters is the source's business, not the lexer's.
type CharSource interface {
	ReadChar() (rune, error)
}

// NewStringSource returns a CharSource reading the characters of s.
func NewStringSource(s string) CharSource {
	return &runeSource{reader: strings.NewReader(s)}
}

// NewReaderSource returns a CharSource reading UTF-8 characters from r.
// Input is buffered; r should not be read from elsewhere afterwards.
func NewReaderSource(r io.Reader) CharSource {
	return &runeSource{reader: bufio.NewReader(r)}
}

type runeSource struct {
	reader io.RuneReader
}

func (src *runeSource) ReadChar() (rune, error) {
	c, _, err := src.reader.ReadRune()
	if err != nil {
		return 0, err
	}
	return c, nil
}
