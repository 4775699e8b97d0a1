package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xiam/wellformed"
	"github.com/xiam/wellformed/expectation"
)

var errNotWellformed = errors.New("program is not wellformed")

var (
	checkExpect string
	checkOutput string
)

var checkCmd = &cobra.Command{
	Use:   "check --expect FILE [file]",
	Short: "Check a program against an expectation file",
	Long: `Checks that a program is written in the expected language and defines
every expected function.

Expectation files may be S-expressions, TOML (.toml) or YAML (.yaml, .yml):
  ((lang "htdp/bsl" "htdp-beginner-reader.ss")
   (defs '(my-func other-func)))

Examples:
  wellformed check --expect exercise.cfg submission.rkt
  wellformed check --expect exercise.toml --output yaml submission.rkt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkExpect, "expect", "e", "", "Expectation file")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "text", "Report format (text, yaml)")
	_ = checkCmd.MarkFlagRequired("expect")
}

type violationReport struct {
	Kind     string `yaml:"kind"`
	Message  string `yaml:"message"`
	Name     string `yaml:"name,omitempty"`
	Expected string `yaml:"expected,omitempty"`
	Found    string `yaml:"found,omitempty"`
}

type checkReport struct {
	File       string            `yaml:"file"`
	Language   string            `yaml:"language"`
	Expected   []string          `yaml:"expected"`
	Wellformed bool              `yaml:"wellformed"`
	Violations []violationReport `yaml:"violations,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkOutput != "text" && checkOutput != "yaml" {
		return fmt.Errorf("unknown output format %q", checkOutput)
	}

	exp, err := expectation.Load(checkExpect)
	if err != nil {
		return err
	}
	log.Printf("expecting language %q and definitions %v", exp.Language(), exp.Defs)

	name, src, err := readInput(args)
	if err != nil {
		return err
	}

	prog, err := wellformed.ReadProgramWithOptions(bytes.NewReader(src), parserOptions())
	if err != nil {
		return err
	}
	log.Printf("%s: language %q, %d expressions", name, prog.Hashlang, len(prog.Body))

	report := checkReport{
		File:       name,
		Language:   prog.Hashlang,
		Expected:   exp.Defs,
		Wellformed: true,
	}

	err = wellformed.Check(exp, prog)
	var violations wellformed.Violations
	if errors.As(err, &violations) {
		report.Wellformed = false
		for _, v := range violations {
			report.Violations = append(report.Violations, newViolationReport(v))
		}
	} else if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	if !report.Wellformed {
		return errNotWellformed
	}
	return nil
}

func newViolationReport(err error) violationReport {
	r := violationReport{Message: err.Error()}

	var missing *wellformed.MissingDefError
	var wrongLang *wellformed.WrongHashlangError
	switch {
	case errors.As(err, &missing):
		r.Kind = "missing-def"
		r.Name = missing.Name
	case errors.As(err, &wrongLang):
		r.Kind = "wrong-hashlang"
		r.Expected = wrongLang.Expected
		r.Found = wrongLang.Found
	default:
		r.Kind = "other"
	}
	return r
}

func writeReport(w io.Writer, report checkReport) error {
	if checkOutput == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	}

	if report.Wellformed {
		fmt.Fprintf(w, "%s: ok\n", report.File)
		return nil
	}
	for _, v := range report.Violations {
		fmt.Fprintf(w, "%s: %s\n", report.File, v.Message)
	}
	return nil
}
