package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/wellformed/parser"
)

var (
	verbose  bool
	maxDepth int
)

var rootCmd = &cobra.Command{
	Use:   "wellformed",
	Short: "Parse S-expressions and check student programs",
	Long: `wellformed reads Racket-style S-expression sources.

Commands:
  tokens  - print the tokens of a source
  parse   - print the expressions of a source
  check   - check a program against an expectation file
  repl    - read and print expressions interactively`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetPrefix("wellformed: ")
		log.SetFlags(0)
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "Maximum nesting depth")
}

func parserOptions() parser.ParserOptions {
	return parser.ParserOptions{MaxDepth: maxDepth}
}

// readInput reads the file named by the first argument, or stdin when there
// is none or it is "-".
func readInput(args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("reading stdin: %w", err)
		}
		return "<stdin>", data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, err
	}
	log.Printf("read %d bytes from %s", len(data), args[0])
	return args[0], data, nil
}
