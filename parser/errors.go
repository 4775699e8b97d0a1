package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/wellformed/ast"
	"github.com/xiam/wellformed/lexer"
)

var (
	ErrUnexpectedEOF       = errors.New("unexpected EOF")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrMismatchedDelimiter = errors.New("mismatched delimiter")
	ErrBadNumeral          = errors.New("malformed numeral")
	ErrTooDeep             = errors.New("maximum nesting depth exceeded")
)

var (
	// ErrInvalidSyntax matches every *SyntaxError.
	ErrInvalidSyntax = errors.New("invalid syntax")

	// ErrGrammar matches every *GrammarError.
	ErrGrammar = errors.New("grammar failure")

	// ErrNothingToParse is returned when the input only holds a datum comment
	// ("#;..."). It is informational: callers usually skip it.
	ErrNothingToParse = errors.New("nothing to parse")
)

// SyntaxError reports a token that can't be interpreted where it was found.
type SyntaxError struct {
	// Info points at the offending source.
	Info ast.TokInfo
	// Token is the text of the offending token.
	Token string
	// Msg is an optional explanation.
	Msg string

	Err error
}

func (e *SyntaxError) Error() string {
	s := fmt.Sprintf("invalid syntax `%s`: %s", e.Token, e.Info)
	if e.Msg != "" {
		s = s + "\nerror: " + e.Msg
	}
	return s
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrInvalidSyntax
}

// GrammarError is returned when the input can't be split into tokens.
type GrammarError struct {
	Msg string

	Err error
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("grammar failure: %s", e.Msg)
}

func (e *GrammarError) Unwrap() error {
	return e.Err
}

func (e *GrammarError) Is(target error) bool {
	return target == ErrGrammar
}

// IsIncomplete returns true if err was caused by the input ending too early:
// an unclosed list, an unterminated string or block comment, or a quote
// prefix with nothing after it.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrUnexpectedEOF) || errors.Is(err, lexer.ErrUnexpectedEOF)
}
