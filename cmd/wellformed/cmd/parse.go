package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/xiam/wellformed/ast"
	"github.com/xiam/wellformed/hashlang"
	"github.com/xiam/wellformed/parser"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the expressions of a source",
	Long: `Parses every top-level expression of a source and prints it back.

Formats:
  sexpr  - one expression per line
  tree   - indented tree with the source span of every node
  xml    - XML-like tree

Examples:
  wellformed parse program.rkt
  wellformed parse --format tree program.rkt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "sexpr", "Output format (sexpr, tree, xml)")
}

func runParse(cmd *cobra.Command, args []string) error {
	printer, err := exprPrinter(parseFormat)
	if err != nil {
		return err
	}

	name, src, err := readInput(args)
	if err != nil {
		return err
	}

	body, lang, ok := hashlang.Strip(string(src))
	if ok {
		log.Printf("%s: language %q", name, lang)
	}

	nodes, err := parseSource([]byte(body))
	if err != nil {
		return err
	}
	log.Printf("%s: %d expressions", name, len(nodes))

	out := cmd.OutOrStdout()
	for _, node := range nodes {
		printer(out, node)
	}
	return nil
}

func parseSource(src []byte) ([]*parser.Node, error) {
	p := parser.New(bytes.NewReader(src))
	p.SetOptions(parserOptions())
	return p.ParseMany()
}

func exprPrinter(format string) (func(io.Writer, *parser.Node), error) {
	switch format {
	case "sexpr":
		return func(w io.Writer, node *parser.Node) {
			fmt.Fprintf(w, "%s\n", ast.Encode(node))
		}, nil
	case "tree":
		return ast.Print[ast.TokInfo], nil
	case "xml":
		return printXML, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
