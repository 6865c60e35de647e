/*
Package lexml is the lexical layer of an XML processing library.

lexml slices a raw character stream into the small lexemes XML is made of:
markup delimiters ('<', '</', '<![CDATA[', …), quotes, whitespace and plain
characters. A higher-level parser assembles these tokens into tags,
attributes, comments, CDATA sections and doctype declarations; that layer is
not part of this module. Package structure is as follows:

■ lexml: The base package contains the token model, positions and error
values, which are used throughout the other packages.

■ lexer: Package lexer implements a pull-style lexer over a character
source, with one character of lookahead and a strict/lenient error
recovery mode.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lexml
