package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/wellformed/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the tokens of a source",
	Long: `Splits a source into tokens and prints them with their positions.

Examples:
  wellformed tokens program.rkt
  echo '(+ 1 2)' | wellformed tokens`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	_, src, err := readInput(args)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, tok := range tokens {
		line, col := tok.Pos()
		endLine, endCol := tok.End()
		fmt.Fprintf(out, "token[%d] (type: %v, from: %d:%d, to: %d:%d)\n\t-> %q\n", i, tok.Type(), line, col, endLine, endCol, tok.Text())
	}
	return nil
}
