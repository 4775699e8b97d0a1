package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes a human-readable, indented representation of a tree to w.
func Print[D any](w io.Writer, n *Sexpr[D]) {
	printLevel(w, n, 0)
}

func printLevel[D any](w io.Writer, n *Sexpr[D], level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s):", indent, n.Type())

	switch {
	case n.IsList():
		fmt.Fprintf(w, "%s\n", describe(n.Decoration()))
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case n.Type().IsWrapper():
		fmt.Fprintf(w, "%s\n", describe(n.Decoration()))
		printLevel(w, n.Atom().Inner(), level+1)

	default:
		fmt.Fprintf(w, " %s%s\n", encodeAtom(n.Atom()), describe(n.Decoration()))
	}
}

func describe(deco interface{}) string {
	switch d := deco.(type) {
	case Unit:
		return ""
	case TokInfo:
		return " [" + d.Span() + "]"
	}
	return fmt.Sprintf(" [%v]", deco)
}

// Encode transforms a tree back into source-like text. Lists are always
// written with parentheses.
func Encode[D any](n *Sexpr[D]) []byte {
	if n == nil {
		return []byte(":nil")
	}
	if n.IsAtom() {
		return encodeAtom(n.Atom())
	}

	nodes := make([]string, 0, len(n.List()))
	for _, item := range n.List() {
		nodes = append(nodes, string(Encode(item)))
	}
	return []byte(fmt.Sprintf("(%s)", strings.Join(nodes, " ")))
}

func encodeAtom[D any](a *Atom[D]) []byte {
	switch a.nt {
	case NodeTypeSymbol:
		return []byte(a.text)
	case NodeTypeString:
		return []byte(`"` + a.text + `"`)
	case NodeTypeInt:
		return []byte(strconv.FormatInt(a.i, 10))
	case NodeTypeFloat:
		return []byte(strconv.FormatFloat(a.f, 'f', -1, 64))
	case NodeTypeBool:
		if a.b {
			return []byte("#t")
		}
		return []byte("#f")
	case NodeTypeQuoted, NodeTypeQuasiQuoted, NodeTypeUnquoted:
		return append([]byte(wrapperPrefix[a.nt]), Encode(a.sub)...)
	}

	panic("unreachable")
}
