package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/xiam/wellformed/ast"
	"github.com/xiam/wellformed/lexer"
)

// DefaultMaxDepth is the nesting limit used when ParserOptions.MaxDepth is
// zero.
const DefaultMaxDepth = 4096

var bom = []byte("\xef\xbb\xbf")

// Node is a parsed S-expression decorated with its source position.
type Node = ast.Sexpr[ast.TokInfo]

// ParserOptions configures a Parser.
type ParserOptions struct {
	// MaxDepth bounds how deeply lists and quoting prefixes may nest.
	MaxDepth int
}

// Parser reads S-expressions from a source. A Parser is meant to be used
// once, either with ParseOne or with ParseMany.
type Parser struct {
	src []byte
	lx  *lexer.Lexer

	lastTok *lexer.Token
	nextTok *lexer.Token

	// open delimiters, innermost last
	open  []*lexer.Token
	depth int

	options ParserOptions
	lastErr error
}

// New creates a parser that reads its whole input from r.
func New(r io.Reader) *Parser {
	src, err := io.ReadAll(r)
	p := newParser(src)
	if err != nil {
		p.lastErr = fmt.Errorf("reading source: %w", err)
	}
	return p
}

func newParser(src []byte) *Parser {
	src = bytes.TrimPrefix(src, bom)
	return &Parser{
		src: src,
		lx:  lexer.New(bytes.NewReader(src)),
	}
}

// SetOptions replaces the parser options.
func (p *Parser) SetOptions(options ParserOptions) {
	p.options = options
}

// ParseOne parses exactly one top-level expression. Anything but comments
// and the end of the input after it is an error. If the expression is a datum
// comment ErrNothingToParse is returned.
func (p *Parser) ParseOne() (*Node, error) {
	if p.lastErr != nil {
		return nil, p.lastErr
	}

	node, err := p.parseUnit()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		switch tok.Type() {
		case lexer.TokenEOF:
			return node, nil
		case lexer.TokenSexprComment:
			if _, err := p.parseUnit(); !errors.Is(err, ErrNothingToParse) {
				return nil, err
			}
		default:
			return nil, p.syntaxError(p.tokInfo(tok), tok, ErrUnexpectedToken, "expecting end of input after a single expression")
		}
	}
}

// ParseMany parses all the top-level expressions of the input. Datum
// comments are skipped, the first error aborts the whole parse.
func (p *Parser) ParseMany() ([]*Node, error) {
	if p.lastErr != nil {
		return nil, p.lastErr
	}

	nodes := []*Node{}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Is(lexer.TokenEOF) {
			return nodes, nil
		}

		node, err := p.parseUnit()
		if errors.Is(err, ErrNothingToParse) {
			continue
		}
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

func (p *Parser) curr() *lexer.Token {
	return p.lastTok
}

func (p *Parser) read() (*lexer.Token, error) {
	tok, err := p.lx.Next()
	if err != nil {
		return nil, &GrammarError{Msg: err.Error(), Err: err}
	}
	return tok, nil
}

func (p *Parser) peek() (*lexer.Token, error) {
	if p.nextTok != nil {
		return p.nextTok, nil
	}

	tok, err := p.read()
	if err != nil {
		return nil, err
	}
	p.nextTok = tok
	return p.nextTok, nil
}

func (p *Parser) next() (*lexer.Token, error) {
	if p.nextTok != nil {
		tok := p.nextTok
		p.lastTok, p.nextTok = tok, nil
		return tok, nil
	}

	tok, err := p.read()
	if err != nil {
		return nil, err
	}
	p.lastTok, p.nextTok = tok, nil
	return tok, nil
}

func (p *Parser) maxDepth() int {
	if p.options.MaxDepth > 0 {
		return p.options.MaxDepth
	}
	return DefaultMaxDepth
}

func (p *Parser) enter(tok *lexer.Token) error {
	p.depth++
	if p.depth > p.maxDepth() {
		return p.syntaxError(p.tokInfo(tok), tok, ErrTooDeep, fmt.Sprintf("expressions can't nest more than %d levels deep", p.maxDepth()))
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// span builds the decoration of everything between the start of from and the
// end of to.
func (p *Parser) span(from *lexer.Token, to *lexer.Token) ast.TokInfo {
	startLine, startCol := from.Pos()
	endLine, endCol := to.End()
	start, _ := from.Offsets()
	_, end := to.Offsets()

	return ast.TokInfo{
		Text:  string(p.src[start:end]),
		Start: ast.Position{Line: startLine, Column: startCol},
		End:   ast.Position{Line: endLine, Column: endCol},
	}
}

func (p *Parser) tokInfo(tok *lexer.Token) ast.TokInfo {
	return p.span(tok, tok)
}

func (p *Parser) syntaxError(info ast.TokInfo, tok *lexer.Token, err error, msg string) error {
	return &SyntaxError{
		Info:  info,
		Token: tok.Text(),
		Msg:   msg,
		Err:   err,
	}
}

// parseUnit reads one expression. A datum comment is consumed together with
// the expression it comments out and reported as ErrNothingToParse.
func (p *Parser) parseUnit() (*Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Type() {
	case lexer.TokenEOF:
		return nil, p.syntaxError(p.tokInfo(tok), tok, ErrUnexpectedEOF, "expecting an expression")

	case lexer.TokenSexprComment:
		if err := p.enter(tok); err != nil {
			return nil, err
		}
		defer p.leave()

		if _, err := p.parseDatum(tok); err != nil {
			return nil, err
		}
		return nil, ErrNothingToParse

	case lexer.TokenOpenExpression, lexer.TokenOpenList, lexer.TokenOpenMap:
		return p.parseList(tok)

	case lexer.TokenQuote, lexer.TokenQuasiQuote, lexer.TokenUnquote:
		return p.parseWrapper(tok)

	case lexer.TokenString:
		info := p.tokInfo(tok)
		text := tok.Text()
		return ast.NewAtom(ast.NewString(text[1:len(text)-1], info), info), nil

	case lexer.TokenAtom:
		info := p.tokInfo(tok)
		atom, err := expectAtom(tok.Text(), info)
		if err != nil {
			return nil, p.syntaxError(info, tok, ErrBadNumeral, err.Error())
		}
		return ast.NewAtom(atom, info), nil

	case lexer.TokenCloseExpression, lexer.TokenCloseList, lexer.TokenCloseMap:
		return nil, p.syntaxError(p.tokInfo(tok), tok, ErrUnexpectedToken, "unexpected closing delimiter")
	}

	return nil, p.syntaxError(p.tokInfo(tok), tok, ErrUnexpectedToken, "")
}

// parseDatum reads the expression required by the "after" token, skipping
// datum comments in between.
func (p *Parser) parseDatum(after *lexer.Token) (*Node, error) {
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		switch {
		case tok.Is(lexer.TokenEOF):
			return nil, p.syntaxError(p.tokInfo(after), after, ErrUnexpectedEOF, fmt.Sprintf("expecting an expression after %q", after.Text()))
		case tok.Type().IsClose():
			return nil, p.syntaxError(p.tokInfo(tok), tok, ErrUnexpectedToken, fmt.Sprintf("expecting an expression after %q", after.Text()))
		}

		node, err := p.parseUnit()
		if errors.Is(err, ErrNothingToParse) {
			continue
		}
		return node, err
	}
}

func (p *Parser) parseWrapper(prefix *lexer.Token) (*Node, error) {
	if err := p.enter(prefix); err != nil {
		return nil, err
	}
	defer p.leave()

	inner, err := p.parseDatum(prefix)
	if err != nil {
		return nil, err
	}

	var atom *ast.Atom[ast.TokInfo]
	switch prefix.Type() {
	case lexer.TokenQuote:
		atom = ast.NewQuoted(inner, inner.Decoration())
	case lexer.TokenQuasiQuote:
		atom = ast.NewQuasiQuoted(inner, inner.Decoration())
	default:
		atom = ast.NewUnquoted(inner, inner.Decoration())
	}

	return ast.NewAtom(atom, p.span(prefix, p.curr())), nil
}

func (p *Parser) parseList(open *lexer.Token) (*Node, error) {
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	p.open = append(p.open, open)
	defer func() {
		p.open = p.open[:len(p.open)-1]
	}()

	items := []*Node{}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		if tok.Is(lexer.TokenEOF) || tok.Type().IsClose() {
			if err := p.closeList(tok); err != nil {
				return nil, err
			}
			if _, err := p.next(); err != nil {
				return nil, err
			}
			return ast.NewList(items, p.span(open, tok)), nil
		}

		node, err := p.parseUnit()
		if errors.Is(err, ErrNothingToParse) {
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, node)
	}
}

// closeList checks that tok closes the innermost open delimiter.
func (p *Parser) closeList(tok *lexer.Token) error {
	top := p.open[len(p.open)-1]
	line, col := top.Pos()
	want := top.Type().Closer()

	if tok.Is(lexer.TokenEOF) {
		return p.syntaxError(p.tokInfo(top), top, ErrUnexpectedEOF, fmt.Sprintf("missing %q to close %q at line %d, column %d", want.Delimiter(), top.Text(), line, col))
	}
	if !tok.Is(want) {
		return p.syntaxError(p.tokInfo(tok), tok, ErrMismatchedDelimiter, fmt.Sprintf("expecting %q to close %q at line %d, column %d", want.Delimiter(), top.Text(), line, col))
	}
	return nil
}

// ParseOne parses a single top-level expression from the given input.
func ParseOne(in []byte) (*Node, error) {
	return newParser(in).ParseOne()
}

// ParseMany parses all the top-level expressions from the given input.
func ParseMany(in []byte) ([]*Node, error) {
	return newParser(in).ParseMany()
}
