package wellformed

import (
	"fmt"
	"strings"

	"github.com/xiam/wellformed/ast"
	"github.com/xiam/wellformed/expectation"
)

const defineKeyword = "define"

// MissingDefError reports an expected definition the program doesn't have.
type MissingDefError struct {
	Name string
}

func (e *MissingDefError) Error() string {
	return fmt.Sprintf("Missing expected definition: %s", e.Name)
}

// WrongHashlangError reports a program written in a language other than the
// expected one.
type WrongHashlangError struct {
	Expected string
	Found    string
}

func (e *WrongHashlangError) Error() string {
	return fmt.Sprintf("Wrong language selected: expected %s, found %s", e.Expected, e.Found)
}

// Violations is the list of problems found by Check.
type Violations []error

func (v Violations) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes every violation to errors.Is and errors.As.
func (v Violations) Unwrap() []error {
	return v
}

// Check validates prog against exp. It returns nil when the program is
// wellformed, otherwise a Violations value with every problem found:
// missing definitions first, in the order exp lists them, then the
// language mismatch, if any.
func Check(exp *expectation.Expectation, prog *Program) error {
	var violations Violations

	defined := Definitions(prog.Body)
	for _, name := range exp.Defs {
		if _, ok := defined[name]; !ok {
			violations = append(violations, &MissingDefError{Name: name})
		}
	}

	if !exp.IsSameLang(prog.Hashlang) {
		violations = append(violations, &WrongHashlangError{
			Expected: exp.Language(),
			Found:    prog.Hashlang,
		})
	}

	if len(violations) > 0 {
		return violations
	}
	return nil
}

// Definitions collects the names of the functions defined at the top level
// of body. Only the (define (name args...) body...) shape is recognized.
func Definitions[D any](body []*ast.Sexpr[D]) map[string]struct{} {
	names := map[string]struct{}{}
	for _, node := range body {
		if name, ok := definedName(node); ok {
			names[name] = struct{}{}
		}
	}
	return names
}

func definedName[D any](node *ast.Sexpr[D]) (string, bool) {
	items := node.List()
	if len(items) < 2 || !items[0].IsSymbol(defineKeyword) {
		return "", false
	}

	header := items[1].List()
	if len(header) == 0 || header[0].Type() != ast.NodeTypeSymbol {
		return "", false
	}
	return header[0].Atom().Text(), true
}
