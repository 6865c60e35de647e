/*
Package lexer implements a pull lexer for XML character streams.

The lexer reads one character at a time from a CharSource and emits
lexml.Token values on demand. Multi-character markup sequences like
'<![CDATA[' or '<!DOCTYPE' are recognized by a hand-rolled state machine
with one character of lookahead; a character that turns out to belong to
the next token is held back in a one-character pushback slot across calls.

By default invalid lexemes are reported as *lexml.Error values with row and
column information. After DisableErrors, they are returned as Chunk tokens
instead and lexing continues, so a lenient token run always reproduces the
input text exactly.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lexer
