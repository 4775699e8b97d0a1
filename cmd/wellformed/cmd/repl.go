package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/xiam/wellformed/parser"
)

const (
	historyFile = ".wellformed_history"
	promptMain  = "> "
	promptCont  = ". "
)

var replFormat string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read and print expressions interactively",
	Long: `Reads expressions and prints them back as they were parsed. Input
continues on the next line while a list, string or comment is left open.
Type :quit to exit.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVarP(&replFormat, "format", "f", "sexpr", "Output format (sexpr, tree, xml)")
}

func runRepl(cmd *cobra.Command, args []string) error {
	printer, err := exprPrinter(replFormat)
	if err != nil {
		return err
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	out := cmd.OutOrStdout()
	for {
		src, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		input := strings.TrimSpace(src)
		if input == "" {
			continue
		}
		if input == ":quit" {
			return nil
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		nodes, err := parseSource([]byte(src))
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		for _, node := range nodes {
			printer(out, node)
		}
	}
}

// readByParseProbe reads lines until they form a complete input: either it
// parses, or it fails for a reason other than ending too early.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := parseSource([]byte(src)); parser.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
