package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	line int
	col  int

	endLine int
	endCol  int

	offset    int
	endOffset int
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// End returns the line and column right after the last character of the
// lexical unit.
func (t Token) End() (int, int) {
	return t.endLine, t.endCol
}

// Offsets returns the byte offsets of the lexical unit within the input, the
// end offset is exclusive.
func (t Token) Offsets() (int, int) {
	return t.offset, t.endOffset
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
