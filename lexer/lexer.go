package lexer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"text/scanner"
	"unicode/utf8"
)

var (
	ErrUnexpectedEOF    = errors.New("unexpected EOF")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidEscape    = errors.New("invalid escape sequence")
)

// SyntaxError is returned when the input can't be split into tokens.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v: %s", e.Line, e.Col, e.Err, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

type lexState func(*Lexer) lexState

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)

	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)

	isOpenMap  = isTokenType(TokenOpenMap)
	isCloseMap = isTokenType(TokenCloseMap)

	isQuote      = isTokenType(TokenQuote)
	isQuasiQuote = isTokenType(TokenQuasiQuote)
	isUnquote    = isTokenType(TokenUnquote)
)

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	lx := &Lexer{
		buf:   []rune{},
		state: lexDefaultState,
		line:  1,
		col:   1,
	}

	s := &scanner.Scanner{}
	s.Init(r)
	s.Error = func(_ *scanner.Scanner, msg string) {
		lx.scanErr = msg
	}
	lx.in = s

	return lx
}

// Lexer represents a lexical analyzer. Whitespace, line comments and block
// comments are consumed by the lexer and never reach the parser.
type Lexer struct {
	in *scanner.Scanner

	state   lexState
	pending []Token
	eof     *Token

	lastErr error
	scanErr string

	buf []rune

	startLine   int
	startCol    int
	startOffset int

	line   int
	col    int
	offset int
}

// Next runs the lexer until a token is available and returns it. Once the
// input is exhausted every call returns a TokenEOF token.
func (lx *Lexer) Next() (*Token, error) {
	for len(lx.pending) == 0 {
		if lx.state == nil {
			if lx.lastErr != nil {
				return nil, lx.lastErr
			}
			return lx.eof, nil
		}
		lx.state = lx.state(lx)
	}

	tok := lx.pending[0]
	lx.pending = lx.pending[1:]

	if tok.tt == TokenEOF {
		lx.eof = &tok
	}
	return &tok, nil
}

func (lx *Lexer) mark() {
	lx.startLine, lx.startCol, lx.startOffset = lx.line, lx.col, lx.offset
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) emit(tt TokenType) {
	lx.pending = append(lx.pending, Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.startLine,
		col:  lx.startCol,

		endLine: lx.line,
		endCol:  lx.col,

		offset:    lx.startOffset,
		endOffset: lx.offset,
	})
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	line, col := lx.line, lx.col

	r := lx.in.Next()
	if lx.scanErr != "" {
		return rune(0), &SyntaxError{Line: line, Col: col, Msg: lx.scanErr, Err: ErrInvalidCharacter}
	}
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.buf = append(lx.buf, r)
	lx.offset += utf8.RuneLen(r)

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r, nil
}

// errorf builds an error that points at the start of the current token.
func (lx *Lexer) errorf(err error, format string, args ...interface{}) error {
	return &SyntaxError{
		Line: lx.startLine,
		Col:  lx.startCol,
		Msg:  fmt.Sprintf(format, args...),
		Err:  err,
	}
}

func lexDefaultState(lx *Lexer) lexState {
	lx.mark()

	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isWhitespace(r):
		return lexWhitespace
	case r == ';':
		return lexLineComment
	case r == '#':
		return lexHash
	case r == '"':
		return lexString

	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)

	case isOpenList(r):
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		return lexEmit(TokenCloseList)

	case isOpenMap(r):
		return lexEmit(TokenOpenMap)
	case isCloseMap(r):
		return lexEmit(TokenCloseMap)

	case isQuote(r):
		return lexEmit(TokenQuote)
	case isQuasiQuote(r):
		return lexEmit(TokenQuasiQuote)
	case isUnquote(r):
		return lexEmit(TokenUnquote)

	default:
		return lexAtom
	}
}

func lexWhitespace(lx *Lexer) lexState {
	for isWhitespace(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	return lexDefaultState
}

func lexLineComment(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == '\n' || p == scanner.EOF {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	return lexDefaultState
}

func lexHash(lx *Lexer) lexState {
	switch lx.peek() {
	case '|':
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
		return lexBlockComment
	case ';':
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
		return lexEmit(TokenSexprComment)
	}
	// "#t", "#false", "#:keyword" and friends
	return lexAtom
}

// lexBlockComment consumes a "#| ... |#" comment, inner block comments must
// be closed before the outer one ends.
func lexBlockComment(lx *Lexer) lexState {
	for depth := 1; depth > 0; {
		r, err := lx.next()
		if err == io.EOF {
			return lexStateError(lx.errorf(ErrUnexpectedEOF, "unterminated block comment"))
		}
		if err != nil {
			return lexStateError(err)
		}

		switch {
		case r == '|' && lx.peek() == '#':
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
			depth--
		case r == '#' && lx.peek() == '|':
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
			depth++
		}
	}
	return lexDefaultState
}

func lexString(lx *Lexer) lexState {
	for {
		r, err := lx.next()
		if err == io.EOF {
			return lexStateError(lx.errorf(ErrUnexpectedEOF, "unterminated string"))
		}
		if err != nil {
			return lexStateError(err)
		}

		switch r {
		case '"':
			return lexEmit(TokenString)
		case '\\':
			if err := lx.escape(); err != nil {
				return lexStateError(err)
			}
		}
	}
}

// escape consumes the body of an escape sequence, the backslash has already
// been read. Escapes are validated but kept verbatim.
func (lx *Lexer) escape() error {
	line, col := lx.line, lx.col-1

	invalid := func(msg string) error {
		return &SyntaxError{Line: line, Col: col, Msg: msg, Err: ErrInvalidEscape}
	}

	r, err := lx.next()
	if err == io.EOF {
		return lx.errorf(ErrUnexpectedEOF, "unterminated string")
	}
	if err != nil {
		return err
	}

	switch r {
	case 'x':
		for i := 0; i < 2; i++ {
			if !isHexDigit(lx.peek()) {
				return invalid(`expecting two hex digits after "\x"`)
			}
			if _, err := lx.next(); err != nil {
				return err
			}
		}

	case 'u':
		if lx.peek() != '{' {
			n := 0
			for n < 4 && isHexDigit(lx.peek()) {
				if _, err := lx.next(); err != nil {
					return err
				}
				n++
			}
			if n == 0 {
				return invalid(`expecting hex digits after "\u"`)
			}
			return nil
		}

		if _, err := lx.next(); err != nil {
			return err
		}
		n := 0
		for isHexDigit(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return err
			}
			n++
		}
		if n < 1 || n > 6 || lx.peek() != '}' {
			return invalid(`malformed "\u{...}" code point`)
		}
		if _, err := lx.next(); err != nil {
			return err
		}
	}

	return nil
}

func lexAtom(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF || isAtomBreak(p) {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	return lexEmit(TokenAtom)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return lexStateEOF
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

func lexStateEOF(lx *Lexer) lexState {
	lx.mark()
	lx.emit(TokenEOF)
	return nil
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(bytes.NewReader(in))
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, *tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}
