// Package expectation reads the files that describe what a submitted program
// must look like: the language it is written in and the functions it must
// define.
package expectation

import (
	"errors"
	"fmt"

	"github.com/xiam/wellformed/ast"
	"github.com/xiam/wellformed/parser"
)

// ErrMalformed is returned when an expectation doesn't have the expected
// shape.
var ErrMalformed = errors.New("malformed expectation")

// Expectation holds the declared language, the declared reader, or both,
// and the names of the definitions a program must provide. An empty Lang or
// Reader means it was not declared.
type Expectation struct {
	Lang   string   `toml:"lang" yaml:"lang"`
	Reader string   `toml:"reader" yaml:"reader"`
	Defs   []string `toml:"defs" yaml:"defs"`
}

// Validate checks that at least one of Lang and Reader is set.
func (e *Expectation) Validate() error {
	if e.Lang == "" && e.Reader == "" {
		return fmt.Errorf("%w: neither a language nor a reader was declared", ErrMalformed)
	}
	return nil
}

// Language returns the declared language, or the declared reader when no
// language was given.
func (e *Expectation) Language() string {
	if e.Lang != "" {
		return e.Lang
	}
	return e.Reader
}

// IsSameLang returns true if lang matches either the declared language or
// the declared reader.
func (e *Expectation) IsSameLang(lang string) bool {
	return (e.Lang != "" && e.Lang == lang) || (e.Reader != "" && e.Reader == lang)
}

// Parse reads an expectation written as an S-expression:
//
//	((lang "htdp/bsl" "htdp-beginner-reader.ss")
//	 (defs '(my-func other-func)))
//
// Either of the strings in the lang clause may be replaced by any other atom
// (#f, for instance) to leave it undeclared.
func Parse(in []byte) (*Expectation, error) {
	root, err := parser.ParseOne(in)
	if err != nil {
		return nil, fmt.Errorf("reading expectation: %w", err)
	}

	malformed := func(msg string) error {
		return fmt.Errorf("%w: %s: %s", ErrMalformed, msg, root.Decoration().Span())
	}

	clauses := root.List()
	if root.IsAtom() || len(clauses) != 2 || clauses[0].IsAtom() || clauses[1].IsAtom() {
		return nil, malformed("expecting a list with a lang clause and a defs clause")
	}

	exp := &Expectation{Defs: []string{}}

	lang := clauses[0].List()
	if len(lang) != 3 || !lang[0].IsSymbol("lang") || lang[1].IsList() || lang[2].IsList() {
		return nil, malformed(`expecting (lang "language" "reader")`)
	}
	if a := lang[1].Atom(); a.Type() == ast.NodeTypeString {
		exp.Lang = a.Text()
	}
	if a := lang[2].Atom(); a.Type() == ast.NodeTypeString {
		exp.Reader = a.Text()
	}
	if err := exp.Validate(); err != nil {
		return nil, err
	}

	defs := clauses[1].List()
	if len(defs) != 2 || !defs[0].IsSymbol("defs") || defs[1].Type() != ast.NodeTypeQuoted {
		return nil, malformed(`expecting (defs '(name ...))`)
	}
	names := defs[1].Atom().Inner()
	if !names.IsList() {
		return nil, malformed("expecting a quoted list of definition names")
	}
	for _, name := range names.List() {
		if name.Type() == ast.NodeTypeSymbol {
			exp.Defs = append(exp.Defs, name.Atom().Text())
		}
	}

	return exp, nil
}
