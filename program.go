// Package wellformed checks that a parsed program declares the expected
// language and provides the expected top-level definitions.
package wellformed

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xiam/wellformed/ast"
	"github.com/xiam/wellformed/hashlang"
	"github.com/xiam/wellformed/parser"
)

// Program is a source file split into its declared language and the
// top-level expressions of its body.
type Program struct {
	// Hashlang is the language declared by the "#lang" or "#reader" line, or
	// an empty string if there was none.
	Hashlang string

	Body []*ast.Sexpr[ast.TokInfo]
}

// NewProgram parses the given source.
func NewProgram(src []byte) (*Program, error) {
	return ReadProgram(bytes.NewReader(src))
}

// ReadProgram reads a whole source from r and parses it with the default
// parser options. The language declaration line is blanked before parsing,
// so positions in the body refer to the file as it was read.
func ReadProgram(r io.Reader) (*Program, error) {
	return ReadProgramWithOptions(r, parser.ParserOptions{})
}

// ReadProgramWithOptions is like ReadProgram but configures the parser with
// the given options.
func ReadProgramWithOptions(r io.Reader, options parser.ParserOptions) (*Program, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	body, lang, _ := hashlang.Strip(string(src))

	p := parser.New(bytes.NewReader([]byte(body)))
	p.SetOptions(options)

	nodes, err := p.ParseMany()
	if err != nil {
		return nil, err
	}

	return &Program{
		Hashlang: lang,
		Body:     nodes,
	}, nil
}
