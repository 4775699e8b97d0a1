package ast

import (
	"fmt"
)

// Position is a 1-based line and column pair.
type Position struct {
	Line   int
	Column int
}

// TokInfo is the decoration attached to parsed nodes: the exact source text
// of the node and where it starts and ends. End points right after the last
// character.
type TokInfo struct {
	Text  string
	Start Position
	End   Position
}

// Span returns a compact "line:col-line:col" representation.
func (t TokInfo) Span() string {
	return fmt.Sprintf("%d:%d-%d:%d", t.Start.Line, t.Start.Column, t.End.Line, t.End.Column)
}

func (t TokInfo) String() string {
	return fmt.Sprintf(
		"token starting at line %d, column %d and ending at line %d, column %d:\n%s",
		t.Start.Line, t.Start.Column,
		t.End.Line, t.End.Column,
		t.Text,
	)
}
