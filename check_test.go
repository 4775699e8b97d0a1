package wellformed

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/wellformed/expectation"
	"github.com/xiam/wellformed/parser"
)

func TestNewProgram(t *testing.T) {
	prog, err := NewProgram([]byte("#lang htdp/bsl\n(define (f x) x)\n(f 1)\n"))
	require.NoError(t, err)

	assert.Equal(t, "htdp/bsl", prog.Hashlang)
	require.Len(t, prog.Body, 2)
	assert.Equal(t, "(define (f x) x)", prog.Body[0].Decoration().Text)

	// the directive line is blanked, not removed
	assert.Equal(t, 2, prog.Body[0].Decoration().Start.Line)
	assert.Equal(t, 3, prog.Body[1].Decoration().Start.Line)
}

func TestNewProgramByteOrderMark(t *testing.T) {
	prog, err := NewProgram([]byte("\xef\xbb\xbf#lang htdp/bsl\n(define (f x) x)\n"))
	require.NoError(t, err)

	assert.Equal(t, "htdp/bsl", prog.Hashlang)
	require.Len(t, prog.Body, 1)
	assert.Equal(t, "(define (f x) x)", prog.Body[0].Decoration().Text)
	assert.Equal(t, 2, prog.Body[0].Decoration().Start.Line)

	exp := &expectation.Expectation{Lang: "htdp/bsl", Defs: []string{"f"}}
	assert.NoError(t, Check(exp, prog))
}

func TestReadProgramWithOptions(t *testing.T) {
	src := "#lang htdp/bsl\n(define (f x) (g (h (i x))))\n"

	_, err := ReadProgramWithOptions(strings.NewReader(src), parser.ParserOptions{MaxDepth: 3})
	assert.True(t, errors.Is(err, parser.ErrTooDeep))

	prog, err := ReadProgramWithOptions(strings.NewReader(src), parser.ParserOptions{MaxDepth: 4})
	require.NoError(t, err)
	assert.Equal(t, "htdp/bsl", prog.Hashlang)
	assert.Len(t, prog.Body, 1)
}

func TestNewProgramWithoutHashlang(t *testing.T) {
	prog, err := NewProgram([]byte("(define (f x) x)"))
	require.NoError(t, err)

	assert.Equal(t, "", prog.Hashlang)
	assert.Len(t, prog.Body, 1)
}

func TestNewProgramSyntaxError(t *testing.T) {
	_, err := NewProgram([]byte("#lang racket\n(define (f x) x"))
	assert.True(t, errors.Is(err, parser.ErrInvalidSyntax))
	assert.True(t, parser.IsIncomplete(err))
}

func TestDefinitions(t *testing.T) {
	prog, err := NewProgram([]byte(`
		(define (a x) x)
		(define (a y) y)
		(define b 1)
		(define ((curried x) y) y)
		(define)
		(define ("str") 1)
		((define (c) 1))
		(let () (define (d) 1))
		[define (e) 2]
		'(define (f) 3)
	`))
	require.NoError(t, err)

	assert.Equal(t, map[string]struct{}{
		"a": {},
		"e": {},
	}, Definitions(prog.Body))
}

func TestCheck(t *testing.T) {
	prog, err := NewProgram([]byte("#lang htdp/bsl\n(define (my-func x) x)"))
	require.NoError(t, err)

	{
		exp := &expectation.Expectation{Lang: "htdp/bsl", Defs: []string{"my-func"}}
		assert.NoError(t, Check(exp, prog))
	}

	{
		exp := &expectation.Expectation{Lang: "htdp/bsl", Defs: []string{"other-func"}}
		err := Check(exp, prog)
		require.Error(t, err)

		var violations Violations
		require.True(t, errors.As(err, &violations))
		require.Len(t, violations, 1)
		assert.Equal(t, &MissingDefError{Name: "other-func"}, violations[0])
		assert.Equal(t, "Missing expected definition: other-func", err.Error())
	}

	{
		exp := &expectation.Expectation{Reader: "htdp/bsl", Defs: []string{}}
		assert.NoError(t, Check(exp, prog))
	}
}

func TestCheckAccumulates(t *testing.T) {
	prog, err := NewProgram([]byte("#lang racket\n(define (b) 1)"))
	require.NoError(t, err)

	exp := &expectation.Expectation{
		Lang:   "htdp/bsl",
		Reader: "htdp-beginner-reader.ss",
		Defs:   []string{"a", "b", "c"},
	}

	err = Check(exp, prog)
	require.Error(t, err)

	var violations Violations
	require.True(t, errors.As(err, &violations))
	assert.Equal(t, Violations{
		&MissingDefError{Name: "a"},
		&MissingDefError{Name: "c"},
		&WrongHashlangError{Expected: "htdp/bsl", Found: "racket"},
	}, violations)

	var wrongLang *WrongHashlangError
	require.True(t, errors.As(err, &wrongLang))
	assert.Equal(t, "Wrong language selected: expected htdp/bsl, found racket", wrongLang.Error())

	assert.Equal(t,
		"Missing expected definition: a\n"+
			"Missing expected definition: c\n"+
			"Wrong language selected: expected htdp/bsl, found racket",
		err.Error(),
	)
}

func TestCheckMissingHashlang(t *testing.T) {
	prog, err := NewProgram([]byte("(define (f) 1)"))
	require.NoError(t, err)

	err = Check(&expectation.Expectation{Reader: "r.ss", Defs: []string{"f"}}, prog)

	var violations Violations
	require.True(t, errors.As(err, &violations))
	assert.Equal(t, Violations{&WrongHashlangError{Expected: "r.ss", Found: ""}}, violations)
}

func TestCheckFiles(t *testing.T) {
	f, err := os.Open("testdata/geometry.rkt")
	require.NoError(t, err)
	defer f.Close()

	prog, err := ReadProgram(f)
	require.NoError(t, err)
	assert.Equal(t, "htdp-intermediate-lambda-reader.ss", prog.Hashlang)
	assert.Len(t, prog.Body, 3)

	exp, err := expectation.Load("testdata/geometry.yaml")
	require.NoError(t, err)

	err = Check(exp, prog)

	var violations Violations
	require.True(t, errors.As(err, &violations))
	assert.Equal(t, Violations{&MissingDefError{Name: "diagonal"}}, violations)
}
