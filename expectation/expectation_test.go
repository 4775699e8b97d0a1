package expectation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/wellformed/parser"
)

func TestLoad(t *testing.T) {
	expected := &Expectation{
		Lang:   "htdp/bsl",
		Reader: "htdp-beginner-reader.ss",
		Defs:   []string{"my-func"},
	}

	for _, path := range []string{
		"testdata/test1-style.cfg",
		"testdata/test1-style.toml",
		"testdata/test1-style.yaml",
	} {
		exp, err := Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, expected, exp, path)
	}
}

func TestLoadReaderOnly(t *testing.T) {
	exp, err := Load("testdata/reader-only.cfg")
	require.NoError(t, err)

	assert.Equal(t, "", exp.Lang)
	assert.Equal(t, "htdp-intermediate-lambda-reader.ss", exp.Reader)
	assert.Equal(t, []string{"area", "perimeter"}, exp.Defs)
	assert.Equal(t, "htdp-intermediate-lambda-reader.ss", exp.Language())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/does-not-exist.cfg")
	assert.Error(t, err)

	_, err = Load("testdata/unknown-key.toml")
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatTOML, DetectFormat("a/b.TOML"))
	assert.Equal(t, FormatYAML, DetectFormat("b.yml"))
	assert.Equal(t, FormatYAML, DetectFormat("b.yaml"))
	assert.Equal(t, FormatSexpr, DetectFormat("b.cfg"))
	assert.Equal(t, FormatSexpr, DetectFormat("b"))
	assert.Equal(t, "toml", FormatTOML.String())
}

func TestParse(t *testing.T) {
	testCases := []struct {
		In  string
		Out *Expectation
	}{
		{
			In:  `((lang "htdp/bsl" #f) (defs '()))`,
			Out: &Expectation{Lang: "htdp/bsl", Defs: []string{}},
		},
		{
			In:  `[(lang 1 "r") (defs '(a b c))]`,
			Out: &Expectation{Reader: "r", Defs: []string{"a", "b", "c"}},
		},
		{
			In: "((lang \"l\" \"r\") ; comment\n (defs '(a #;b (nested list) c)))",
			Out: &Expectation{Lang: "l", Reader: "r", Defs: []string{"a", "c"}},
		},
		{
			In:  "((lang \"htdp/bsl\" #f) (defs '(f)))\n#;((lang \"racket\" #f) (defs '()))\n",
			Out: &Expectation{Lang: "htdp/bsl", Defs: []string{"f"}},
		},
	}

	for i := range testCases {
		exp, err := Parse([]byte(testCases[i].In))
		require.NoError(t, err, testCases[i].In)
		assert.Equal(t, testCases[i].Out, exp, testCases[i].In)
	}
}

func TestParseMalformed(t *testing.T) {
	testCases := []string{
		`lang`,
		`((lang "a" "b"))`,
		`((lang "a" "b") (defs '(x)) (extra))`,
		`((lang #f #f) (defs '(x)))`,
		`((lang "a") (defs '(x)))`,
		`((lang "a" (b)) (defs '(x)))`,
		`((language "a" "b") (defs '(x)))`,
		`((lang "a" "b") (defs (x)))`,
		`((lang "a" "b") (defs 'x))`,
		`((lang "a" "b") (define '(x)))`,
		`((lang "a" "b") defs)`,
	}

	for i := range testCases {
		exp, err := Parse([]byte(testCases[i]))
		assert.Nil(t, exp)
		assert.True(t, errors.Is(err, ErrMalformed), "input: %q, error: %v", testCases[i], err)
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte(`((lang "a" "b") (defs '(x))`))
	assert.True(t, errors.Is(err, parser.ErrInvalidSyntax))
	assert.False(t, errors.Is(err, ErrMalformed))
}

func TestDecodeValidates(t *testing.T) {
	_, err := Decode([]byte("defs = [\"a\"]\n"), FormatTOML)
	assert.True(t, errors.Is(err, ErrMalformed))

	_, err = Decode([]byte("lang: [broken\n"), FormatYAML)
	assert.True(t, errors.Is(err, ErrMalformed))

	exp, err := Decode([]byte("reader: r.ss\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, &Expectation{Reader: "r.ss", Defs: []string{}}, exp)
}

func TestLanguage(t *testing.T) {
	both := &Expectation{Lang: "htdp/bsl", Reader: "htdp-beginner-reader.ss"}
	assert.Equal(t, "htdp/bsl", both.Language())
	assert.True(t, both.IsSameLang("htdp/bsl"))
	assert.True(t, both.IsSameLang("htdp-beginner-reader.ss"))
	assert.False(t, both.IsSameLang("racket"))
	assert.False(t, both.IsSameLang(""))

	readerOnly := &Expectation{Reader: "htdp-beginner-reader.ss"}
	assert.Equal(t, "htdp-beginner-reader.ss", readerOnly.Language())
	assert.False(t, readerOnly.IsSameLang(""))
	assert.NoError(t, readerOnly.Validate())

	assert.True(t, errors.Is((&Expectation{}).Validate(), ErrMalformed))
}
