package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xiam/wellformed/ast"
)

// expectAtom classifies a run of atom characters. Booleans come first, then
// hexadecimal and decimal integers, then floats; whatever is left is a
// symbol.
func expectAtom(text string, info ast.TokInfo) (*ast.Atom[ast.TokInfo], error) {
	switch text {
	case "#t", "#true":
		return ast.NewBool(true, info), nil
	case "#f", "#false":
		return ast.NewBool(false, info), nil
	}

	switch {
	case isHexInteger(text):
		i64, err := strconv.ParseInt(text[2:], 16, 64)
		if err != nil {
			return nil, numeralError("hexadecimal integer", err)
		}
		return ast.NewInt(i64, info), nil

	case isDecInteger(text):
		i64, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, numeralError("integer", err)
		}
		return ast.NewInt(i64, info), nil

	case isFloat(text):
		f64, err := strconv.ParseFloat(strings.TrimSuffix(text, "f"), 64)
		if err != nil {
			return nil, numeralError("float", err)
		}
		return ast.NewFloat(f64, info), nil
	}

	return ast.NewSymbol(text, info), nil
}

func numeralError(kind string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%s literal out of range", kind)
	}
	return fmt.Errorf("invalid %s literal", kind)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// countDigits returns the number of leading decimal digits of s.
func countDigits(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

// isHexInteger matches "0x" followed by at least one hex digit.
func isHexInteger(s string) bool {
	if len(s) < 3 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}
	for i := 2; i < len(s); i++ {
		if !isHex(s[i]) {
			return false
		}
	}
	return true
}

// isDecInteger matches an optional minus sign followed by decimal digits.
func isDecInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 0 && countDigits(s) == len(s)
}

// isFloat matches "digits.digits" where either side may be empty but not
// both, and "digits" followed by an "f" suffix. An optional minus sign is
// accepted, as for integers.
func isFloat(s string) bool {
	s = strings.TrimPrefix(s, "-")

	n := countDigits(s)
	rest := s[n:]

	if rest == "f" {
		return n > 0
	}
	if len(rest) == 0 || rest[0] != '.' {
		return false
	}

	m := countDigits(rest[1:])
	return n+m > 0 && m == len(rest)-1
}
