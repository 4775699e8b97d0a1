package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/xiam/wellformed/parser"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// flags keep their values between runs
	parseFormat = "sexpr"
	checkOutput = "text"
	checkExpect = ""
	maxDepth = parser.DefaultMaxDepth

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTokensCommand(t *testing.T) {
	out, err := execute(t, "tokens", "testdata/square.cfg")
	require.NoError(t, err)

	assert.Contains(t, out, "token[0] (type: open_expression, from: 1:1, to: 1:2)\n\t-> \"(\"\n")
	assert.Contains(t, out, "(type: string, from: 1:8, to: 1:18)\n\t-> \"\\\"htdp/bsl\\\"\"\n")
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "parse", "testdata/submission.rkt")
	require.NoError(t, err)
	assert.Equal(t, "(define (square x) (* x x))\n", out)

	out, err = execute(t, "parse", "--format", "tree", "testdata/submission.rkt")
	require.NoError(t, err)
	assert.Contains(t, out, "(list): [3:1-3:28]\n")
	assert.Contains(t, out, "    (symbol): define [3:2-3:8]\n")

	out, err = execute(t, "parse", "--format", "xml", "testdata/submission.rkt")
	require.NoError(t, err)
	assert.Contains(t, out, "<list line=\"3\" col=\"1\">\n")
	assert.Contains(t, out, "  <symbol line=\"3\" col=\"2\">define</symbol>\n")

	_, err = execute(t, "parse", "--format", "json", "testdata/submission.rkt")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "--expect", "testdata/square.cfg", "testdata/submission.rkt")
	require.NoError(t, err)
	assert.Equal(t, "testdata/submission.rkt: ok\n", out)

	out, err = execute(t, "check", "--expect", "testdata/cube.toml", "testdata/submission.rkt")
	assert.True(t, errors.Is(err, errNotWellformed))
	assert.Equal(t,
		"testdata/submission.rkt: Missing expected definition: cube\n"+
			"testdata/submission.rkt: Wrong language selected: expected htdp/isl, found htdp/bsl\n",
		out,
	)
}

func TestCheckCommandYAML(t *testing.T) {
	out, err := execute(t, "check", "--expect", "testdata/cube.toml", "--output", "yaml", "testdata/submission.rkt")
	assert.True(t, errors.Is(err, errNotWellformed))

	var report checkReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))

	assert.Equal(t, checkReport{
		File:       "testdata/submission.rkt",
		Language:   "htdp/bsl",
		Expected:   []string{"square", "cube"},
		Wellformed: false,
		Violations: []violationReport{
			{Kind: "missing-def", Message: "Missing expected definition: cube", Name: "cube"},
			{Kind: "wrong-hashlang", Message: "Wrong language selected: expected htdp/isl, found htdp/bsl", Expected: "htdp/isl", Found: "htdp/bsl"},
		},
	}, report)
}

func TestCheckCommandErrors(t *testing.T) {
	_, err := execute(t, "check", "--expect", "testdata/missing.cfg", "testdata/submission.rkt")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, errNotWellformed))

	_, err = execute(t, "check", "--expect", "testdata/square.cfg", "--output", "xml", "testdata/submission.rkt")
	assert.Error(t, err)
}

func TestCheckCommandMaxDepth(t *testing.T) {
	_, err := execute(t, "check", "--max-depth", "1", "--expect", "testdata/square.cfg", "testdata/submission.rkt")
	assert.True(t, errors.Is(err, parser.ErrTooDeep))

	out, err := execute(t, "check", "--max-depth", "2", "--expect", "testdata/square.cfg", "testdata/submission.rkt")
	require.NoError(t, err)
	assert.Equal(t, "testdata/submission.rkt: ok\n", out)
}
