package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenOpenList                  // Open square bracket: "["
	TokenCloseList                 // Close square bracket: "]"
	TokenOpenMap                   // Open curly bracket: "{"
	TokenCloseMap                  // Close curly bracket: "}"
	TokenQuote                     // Quote: "'"
	TokenQuasiQuote                // Backquote: "`"
	TokenUnquote                   // Comma: ","
	TokenSexprComment              // Datum comment: "#;"
	TokenString                    // Double quoted string, quotes included
	TokenAtom                      // Any other run of characters
	TokenEOF                       // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  {'('},
	TokenCloseExpression: {')'},
	TokenOpenList:        {'['},
	TokenCloseList:       {']'},
	TokenOpenMap:         {'{'},
	TokenCloseMap:        {'}'},
	TokenQuote:           {'\''},
	TokenQuasiQuote:      {'`'},
	TokenUnquote:         {','},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenOpenList:        "open_list",
	TokenCloseList:       "close_list",
	TokenOpenMap:         "open_map",
	TokenCloseMap:        "close_map",
	TokenQuote:           "quote",
	TokenQuasiQuote:      "quasiquote",
	TokenUnquote:         "unquote",
	TokenSexprComment:    "sexpr_comment",
	TokenString:          "string",
	TokenAtom:            "atom",
	TokenEOF:             "EOF",
}

// closers maps every opening delimiter to the delimiter that closes it.
var closers = map[TokenType]TokenType{
	TokenOpenExpression: TokenCloseExpression,
	TokenOpenList:       TokenCloseList,
	TokenOpenMap:        TokenCloseMap,
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// IsOpen returns true for "(", "[" and "{".
func (tt TokenType) IsOpen() bool {
	_, ok := closers[tt]
	return ok
}

// IsClose returns true for ")", "]" and "}".
func (tt TokenType) IsClose() bool {
	switch tt {
	case TokenCloseExpression, TokenCloseList, TokenCloseMap:
		return true
	}
	return false
}

// Closer returns the token type that closes tt, or TokenInvalid if tt is not
// an opening delimiter.
func (tt TokenType) Closer() TokenType {
	if c, ok := closers[tt]; ok {
		return c
	}
	return TokenInvalid
}

// Delimiter returns the literal character of a single-character token type.
func (tt TokenType) Delimiter() string {
	if v, ok := tokenValues[tt]; ok {
		return string(v)
	}
	return ""
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// isAtomBreak reports whether r ends a run of atom characters.
func isAtomBreak(r rune) bool {
	if isWhitespace(r) {
		return true
	}
	switch r {
	case '(', ')', '[', ']', '{', '}', '"', ';', '\'', '`', ',':
		return true
	}
	return false
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
