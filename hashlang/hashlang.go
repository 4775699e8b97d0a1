// Package hashlang finds and removes the "#lang" or "#reader" directive that
// declares the language of a Racket source file.
package hashlang

import (
	"strings"
)

const (
	langPrefix   = "#lang"
	readerPrefix = "#reader(lib "

	bom = "\ufeff"
)

// Strip looks for the first line that declares the language of the source and
// blanks it, so the rest of the source keeps its line numbers. It returns the
// new source, the declared language and whether a declaration was found.
// A leading byte order mark is dropped.
func Strip(src string) (string, string, bool) {
	src = strings.TrimPrefix(src, bom)

	lines := strings.Split(src, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "#") {
			continue
		}
		lang, ok := Parse(strings.TrimSuffix(line, "\r"))
		if !ok {
			continue
		}
		lines[i] = ""
		return strings.Join(lines, "\n"), lang, true
	}
	return src, "", false
}

// Parse extracts the language from a single directive line:
//
//	#lang htdp/bsl                                -> htdp/bsl
//	#reader(lib "htdp-beginner-reader.ss" "lang") -> htdp-beginner-reader.ss
func Parse(line string) (string, bool) {
	if rest, ok := strings.CutPrefix(line, langPrefix); ok {
		lang := strings.TrimSpace(rest)
		if lang == "" || (len(rest) > 0 && rest[0] != ' ' && rest[0] != '\t') {
			return "", false
		}
		return lang, true
	}

	if rest, ok := strings.CutPrefix(line, readerPrefix); ok {
		rest, ok = strings.CutPrefix(rest, `"`)
		if !ok {
			return "", false
		}
		end := strings.IndexByte(rest, '"')
		if end < 1 {
			return "", false
		}
		return rest[:end], true
	}

	return "", false
}
