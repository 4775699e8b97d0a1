package cmd

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/xiam/wellformed/parser"
)

func printXML(w io.Writer, node *parser.Node) {
	printIndentedXML(w, node, 0)
}

func printIndentedXML(w io.Writer, node *parser.Node, level int) {
	indent := strings.Repeat("  ", level)
	name := node.Type().String()
	pos := node.Decoration().Start

	switch {
	case node.IsList():
		fmt.Fprintf(w, "%s<%s line=\"%d\" col=\"%d\">\n", indent, name, pos.Line, pos.Column)
		for _, item := range node.List() {
			printIndentedXML(w, item, level+1)
		}
		fmt.Fprintf(w, "%s</%s>\n", indent, name)

	case node.Type().IsWrapper():
		fmt.Fprintf(w, "%s<%s line=\"%d\" col=\"%d\">\n", indent, name, pos.Line, pos.Column)
		printIndentedXML(w, node.Atom().Inner(), level+1)
		fmt.Fprintf(w, "%s</%s>\n", indent, name)

	default:
		value := html.EscapeString(fmt.Sprintf("%v", node.Atom().Value()))
		fmt.Fprintf(w, "%s<%s line=\"%d\" col=\"%d\">%s</%s>\n", indent, name, pos.Line, pos.Column, value, name)
	}
}
